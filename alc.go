package libopenal

import (
	"context"
	"unsafe"

	"github.com/rs/zerolog"

	"github.com/ngld/knossos/packages/libopenal/pkg/strlist"
)

// Device is an ALCdevice pointer. The zero value means "no device".
type Device uintptr

// Context is an ALCcontext pointer. The value is kept as an integer because some
// implementations hand out values that aren't valid Go pointers.
type Context uintptr

// ALC exposes the device and context management half of OpenAL.
type ALC struct {
	alcOpenDevice         func(name unsafe.Pointer) Device
	alcCloseDevice        func(device Device) bool
	alcCreateContext      func(device Device, attrs unsafe.Pointer) Context
	alcMakeContextCurrent func(ctx Context) bool
	alcProcessContext     func(ctx Context)
	alcSuspendContext     func(ctx Context)
	alcDestroyContext     func(ctx Context)
	alcGetCurrentContext  func() Context
	alcGetContextsDevice  func(ctx Context) Device
	alcGetError           func(device Device) int32
	alcIsExtensionPresent func(device Device, name unsafe.Pointer) bool
	alcGetProcAddress     func(device Device, name unsafe.Pointer) uintptr
	alcGetEnumValue       func(device Device, name unsafe.Pointer) int32
	alcGetString          func(device Device, param int32) unsafe.Pointer
	alcGetIntegerv        func(device Device, param int32, size int32, values unsafe.Pointer)

	alcCaptureOpenDevice  func(name unsafe.Pointer, frequency uint32, format int32, bufferSize int32) Device
	alcCaptureCloseDevice func(device Device) bool
	alcCaptureStart       func(device Device)
	alcCaptureStop        func(device Device)
	alcCaptureSamples     func(device Device, buffer unsafe.Pointer, samples int32)

	// ALC_EXT_thread_local_context, nil if unsupported
	alcSetThreadContext func(ctx Context) bool
	alcGetThreadContext func() Context
}

func bindALC(b *binder) *ALC {
	alc := new(ALC)
	b.bind(&alc.alcOpenDevice, "alcOpenDevice")
	b.bind(&alc.alcCloseDevice, "alcCloseDevice")
	b.bind(&alc.alcCreateContext, "alcCreateContext")
	b.bind(&alc.alcMakeContextCurrent, "alcMakeContextCurrent")
	b.bind(&alc.alcProcessContext, "alcProcessContext")
	b.bind(&alc.alcSuspendContext, "alcSuspendContext")
	b.bind(&alc.alcDestroyContext, "alcDestroyContext")
	b.bind(&alc.alcGetCurrentContext, "alcGetCurrentContext")
	b.bind(&alc.alcGetContextsDevice, "alcGetContextsDevice")
	b.bind(&alc.alcGetError, "alcGetError")
	b.bind(&alc.alcIsExtensionPresent, "alcIsExtensionPresent")
	b.bind(&alc.alcGetProcAddress, "alcGetProcAddress")
	b.bind(&alc.alcGetEnumValue, "alcGetEnumValue")
	b.bind(&alc.alcGetString, "alcGetString")
	b.bind(&alc.alcGetIntegerv, "alcGetIntegerv")
	b.bind(&alc.alcCaptureOpenDevice, "alcCaptureOpenDevice")
	b.bind(&alc.alcCaptureCloseDevice, "alcCaptureCloseDevice")
	b.bind(&alc.alcCaptureStart, "alcCaptureStart")
	b.bind(&alc.alcCaptureStop, "alcCaptureStop")
	b.bind(&alc.alcCaptureSamples, "alcCaptureSamples")
	return alc
}

func (c *ALC) bindExtensions(ctx context.Context, oal *OpenAL) {
	if !c.IsExtensionPresent(0, ExtThreadLocalContext) {
		return
	}

	set := bindOptional(&c.alcSetThreadContext, oal.resolveExtension(0, "alcSetThreadContext"))
	get := bindOptional(&c.alcGetThreadContext, oal.resolveExtension(0, "alcGetThreadContext"))
	if !set || !get {
		zerolog.Ctx(ctx).Debug().Msg("ALC_EXT_thread_local_context is advertised but its entry points are missing")
		c.alcSetThreadContext = nil
		c.alcGetThreadContext = nil
	}
}

// OpenDevice opens the named playback device. An empty name opens the default device.
func (c *ALC) OpenDevice(name string) (Device, error) {
	var device Device
	withCString(name, func(str unsafe.Pointer) {
		device = c.alcOpenDevice(str)
	})

	if device == 0 {
		if name == "" {
			return 0, ErrNoDevice
		}
		return 0, wrapDeviceName(name)
	}

	return device, nil
}

func (c *ALC) CloseDevice(device Device) bool {
	return c.alcCloseDevice(device)
}

// CreateContext creates a context on device. attrs is a list of attribute/value pairs;
// the terminating zero is appended automatically.
func (c *ALC) CreateContext(device Device, attrs []int32) (Context, error) {
	var list []int32
	if len(attrs) > 0 {
		list = make([]int32, len(attrs)+1)
		copy(list, attrs)
	}

	var ctx Context
	withPinned(list, func(ptr unsafe.Pointer) {
		ctx = c.alcCreateContext(device, ptr)
	})

	if ctx == 0 {
		if err := c.Error(device); err != nil {
			return 0, wrapContextError(err)
		}
		return 0, ErrNoContext
	}

	return ctx, nil
}

func (c *ALC) MakeContextCurrent(ctx Context) bool {
	return c.alcMakeContextCurrent(ctx)
}

func (c *ALC) ProcessContext(ctx Context) {
	c.alcProcessContext(ctx)
}

func (c *ALC) SuspendContext(ctx Context) {
	c.alcSuspendContext(ctx)
}

func (c *ALC) DestroyContext(ctx Context) {
	c.alcDestroyContext(ctx)
}

func (c *ALC) GetCurrentContext() Context {
	return c.alcGetCurrentContext()
}

func (c *ALC) GetContextsDevice(ctx Context) Device {
	return c.alcGetContextsDevice(ctx)
}

// HasThreadContext reports whether ALC_EXT_thread_local_context is usable.
func (c *ALC) HasThreadContext() bool {
	return c.alcSetThreadContext != nil
}

// SetThreadContext makes ctx current for the calling OS thread only. It returns false
// if the extension isn't available.
func (c *ALC) SetThreadContext(ctx Context) bool {
	if c.alcSetThreadContext == nil {
		return false
	}
	return c.alcSetThreadContext(ctx)
}

func (c *ALC) GetThreadContext() Context {
	if c.alcGetThreadContext == nil {
		return 0
	}
	return c.alcGetThreadContext()
}

func (c *ALC) GetError(device Device) int32 {
	return c.alcGetError(device)
}

// Error returns the pending ALC error for device, if any.
func (c *ALC) Error(device Device) error {
	return alcError(c.alcGetError(device))
}

func (c *ALC) IsExtensionPresent(device Device, name string) bool {
	var present bool
	withCString(name, func(str unsafe.Pointer) {
		present = c.alcIsExtensionPresent(device, str)
	})
	return present
}

func (c *ALC) GetProcAddress(device Device, name string) uintptr {
	var addr uintptr
	withCString(name, func(str unsafe.Pointer) {
		addr = c.alcGetProcAddress(device, str)
	})
	return addr
}

func (c *ALC) GetEnumValue(device Device, name string) int32 {
	var value int32
	withCString(name, func(str unsafe.Pointer) {
		value = c.alcGetEnumValue(device, str)
	})
	return value
}

// GetString returns the result of alcGetString. String lists keep their NUL separators;
// use GetStrings to split them.
func (c *ALC) GetString(device Device, param int32) string {
	return strlist.GoString(uintptr(device), param, c.alcGetString(device, param))
}

// GetStrings returns the elements of a string list. Queries that don't return a list
// yield at most one element.
func (c *ALC) GetStrings(device Device, param int32) []string {
	return strlist.GoStrings(uintptr(device), param, c.alcGetString(device, param))
}

// GetIntegerv reads count integers for param.
func (c *ALC) GetIntegerv(device Device, param int32, count int) []int32 {
	values := make([]int32, count)
	withPinned(values, func(ptr unsafe.Pointer) {
		c.alcGetIntegerv(device, param, int32(count), ptr)
	})
	return values
}

func (c *ALC) GetInteger(device Device, param int32) int32 {
	return c.GetIntegerv(device, param, 1)[0]
}

// CaptureOpenDevice opens a capture device. An empty name opens the default one.
func (c *ALC) CaptureOpenDevice(name string, frequency uint32, format int32, bufferSize int) (Device, error) {
	var device Device
	withCString(name, func(str unsafe.Pointer) {
		device = c.alcCaptureOpenDevice(str, frequency, format, int32(bufferSize))
	})

	if device == 0 {
		if name == "" {
			return 0, ErrNoDevice
		}
		return 0, wrapDeviceName(name)
	}

	return device, nil
}

func (c *ALC) CaptureCloseDevice(device Device) bool {
	return c.alcCaptureCloseDevice(device)
}

func (c *ALC) CaptureStart(device Device) {
	c.alcCaptureStart(device)
}

func (c *ALC) CaptureStop(device Device) {
	c.alcCaptureStop(device)
}

// CaptureSamples copies samples captured frames into buffer. buffer has to be large
// enough to hold them in the format the device was opened with.
func (c *ALC) CaptureSamples(device Device, buffer []byte, samples int) {
	withPinned(buffer, func(ptr unsafe.Pointer) {
		c.alcCaptureSamples(device, ptr, int32(samples))
	})
}

// CaptureAvailable returns the number of captured frames waiting to be read.
func (c *ALC) CaptureAvailable(device Device) int {
	return int(c.GetInteger(device, ALCCaptureSamples))
}
