//go:build darwin || (linux && (amd64 || arm64))

package fakeal

import (
	"strings"
	"unsafe"
)

func alcOpenDevice(name unsafe.Pointer) uintptr {
	l := locked()
	defer l.lock.Unlock()

	device := goString(name)
	if device == "" {
		device = l.DefaultAllDevice
	}

	if !contains(l.AllDevices, device) && !contains(l.Devices, device) {
		return 0
	}

	handle := l.newHandle()
	l.devices[handle] = device
	return handle
}

func alcCloseDevice(device uintptr) bool {
	l := locked()
	defer l.lock.Unlock()

	if _, ok := l.devices[device]; !ok {
		setALCError(l, alcInvalidDevice)
		return false
	}

	for _, dev := range l.contexts {
		if dev == device {
			return false
		}
	}

	delete(l.devices, device)
	return true
}

func alcCreateContext(device uintptr, attrs unsafe.Pointer) uintptr {
	l := locked()
	defer l.lock.Unlock()

	if _, ok := l.devices[device]; !ok {
		setALCError(l, alcInvalidDevice)
		return 0
	}

	var list []int32
	for ptr := attrs; ptr != nil && *(*int32)(ptr) != 0; ptr = unsafe.Add(ptr, 4) {
		list = append(list, *(*int32)(ptr))
	}

	handle := l.newHandle()
	l.contexts[handle] = device
	l.attrs[handle] = list
	return handle
}

func alcMakeContextCurrent(ctx uintptr) bool {
	l := locked()
	defer l.lock.Unlock()

	if _, ok := l.contexts[ctx]; ctx != 0 && !ok {
		setALCError(l, alcInvalidContext)
		return false
	}

	l.current = ctx
	return true
}

func alcDestroyContext(ctx uintptr) {
	l := locked()
	defer l.lock.Unlock()

	if _, ok := l.contexts[ctx]; !ok {
		setALCError(l, alcInvalidContext)
		return
	}

	delete(l.contexts, ctx)
	if l.current == ctx {
		l.current = 0
	}
}

func alcGetCurrentContext() uintptr {
	l := locked()
	defer l.lock.Unlock()

	return l.current
}

func alcGetContextsDevice(ctx uintptr) uintptr {
	l := locked()
	defer l.lock.Unlock()

	return l.contexts[ctx]
}

func alcGetError(device uintptr) int32 {
	l := locked()
	defer l.lock.Unlock()

	code := l.alcErr
	l.alcErr = 0
	return code
}

func alcIsExtensionPresent(device uintptr, name unsafe.Pointer) bool {
	l := locked()
	defer l.lock.Unlock()

	return hasExtension(l.ALCExtensions, goString(name))
}

func alcGetProcAddress(device uintptr, name unsafe.Pointer) uintptr {
	l := locked()
	defer l.lock.Unlock()

	symbol := goString(name)
	switch symbol {
	case "alcSetThreadContext", "alcGetThreadContext":
		if !hasExtension(l.ALCExtensions, "ALC_EXT_thread_local_context") {
			return 0
		}
	default:
		return 0
	}

	return extensionSymbols()[symbol]
}

func alcGetEnumValue(device uintptr, name unsafe.Pointer) int32 {
	l := locked()
	defer l.lock.Unlock()

	return l.Enums[goString(name)]
}

func alcGetString(device uintptr, param int32) unsafe.Pointer {
	l := locked()
	defer l.lock.Unlock()

	if device != 0 {
		name, ok := l.devices[device]
		if !ok {
			name, ok = l.captures[device]
		}
		if !ok {
			setALCError(l, alcInvalidDevice)
			return nil
		}

		switch param {
		case alcDeviceSpecifier, alcAllDevicesSpecifier, alcCaptureDeviceSpecifier:
			// Real implementations hand out a pointer into their enumeration list here, so
			// more names follow the terminator.
			list, offsets := l.cstrList(l.AllDevices)
			for idx, dev := range l.AllDevices {
				if dev == name {
					return unsafe.Add(list, offsets[idx])
				}
			}
			return l.cstr(name)
		case alcExtensions:
			return l.cstr(strings.Join(l.ALCExtensions, " "))
		}
	}

	switch param {
	case alcDeviceSpecifier:
		list, _ := l.cstrList(l.Devices)
		return list
	case alcDefaultDeviceSpecifier:
		return l.cstr(l.DefaultDevice)
	case alcAllDevicesSpecifier:
		list, _ := l.cstrList(l.AllDevices)
		return list
	case alcDefaultAllDevices:
		return l.cstr(l.DefaultAllDevice)
	case alcCaptureDeviceSpecifier:
		list, _ := l.cstrList(l.Captures)
		return list
	case alcCaptureDefaultSpecifier:
		return l.cstr(l.DefaultCapture)
	case alcExtensions:
		return l.cstr(strings.Join(l.ALCExtensions, " "))
	}

	setALCError(l, alcInvalidEnum)
	return nil
}

func alcGetIntegerv(device uintptr, param int32, size int32, values unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	if size < 1 || values == nil {
		setALCError(l, alcInvalidEnum)
		return
	}

	var value int32
	switch param {
	case alcMajorVersion, alcMinorVersion:
		value = 1
	case alcCaptureSamples:
		if _, ok := l.captures[device]; !ok {
			setALCError(l, alcInvalidDevice)
			return
		}
	default:
		setALCError(l, alcInvalidEnum)
		return
	}

	*(*int32)(values) = value
}

func alcCaptureOpenDevice(name unsafe.Pointer, frequency uint32, format int32, bufferSize int32) uintptr {
	l := locked()
	defer l.lock.Unlock()

	device := goString(name)
	if device == "" {
		device = l.DefaultCapture
	}
	if !contains(l.Captures, device) {
		return 0
	}

	handle := l.newHandle()
	l.captures[handle] = device
	return handle
}

func alcCaptureCloseDevice(device uintptr) bool {
	l := locked()
	defer l.lock.Unlock()

	if _, ok := l.captures[device]; !ok {
		return false
	}

	delete(l.captures, device)
	return true
}

func alcSetThreadContext(ctx uintptr) bool {
	l := locked()
	defer l.lock.Unlock()

	if _, ok := l.contexts[ctx]; ctx != 0 && !ok {
		setALCError(l, alcInvalidContext)
		return false
	}

	l.threadCtx = ctx
	return true
}

func alcGetThreadContext() uintptr {
	l := locked()
	defer l.lock.Unlock()

	return l.threadCtx
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
