//go:build darwin || (linux && (amd64 || arm64))

package fakeal

import (
	"strings"
	"unsafe"
)

var errorStrings = map[int32]string{
	0:                  "No Error",
	alInvalidName:      "Invalid Name",
	alInvalidEnum:      "Invalid Enum",
	alInvalidValue:     "Invalid Value",
	alInvalidOperation: "Invalid Operation",
}

func alEnable(capability int32) {
	l := locked()
	defer l.lock.Unlock()

	l.enabled[capability] = true
}

func alDisable(capability int32) {
	l := locked()
	defer l.lock.Unlock()

	l.enabled[capability] = false
}

func alIsEnabled(capability int32) bool {
	l := locked()
	defer l.lock.Unlock()

	return l.enabled[capability]
}

func alGetString(param int32) unsafe.Pointer {
	l := locked()
	defer l.lock.Unlock()

	switch param {
	case alVendor:
		return l.cstr(l.Vendor)
	case alVersion:
		return l.cstr(l.Version)
	case alRenderer:
		return l.cstr(l.Renderer)
	case alExtensions:
		return l.cstr(strings.Join(l.ALExtensions, " "))
	}

	if str, ok := errorStrings[param]; ok {
		return l.cstr(str)
	}

	setALError(l, alInvalidEnum)
	return nil
}

func alGetInteger(param int32) int32 {
	l := locked()
	defer l.lock.Unlock()

	value, ok := l.ints[param]
	if !ok {
		setALError(l, alInvalidEnum)
	}
	return value
}

// alGetFloat can't be faked: callbacks return through the integer registers only.
func alGetFloat(param int32) uintptr {
	return 0
}

func alGetError() int32 {
	l := locked()
	defer l.lock.Unlock()

	code := l.alErr
	l.alErr = 0
	return code
}

func alIsExtensionPresent(name unsafe.Pointer) bool {
	l := locked()
	defer l.lock.Unlock()

	return hasExtension(l.ALExtensions, goString(name))
}

func alGetProcAddress(name unsafe.Pointer) uintptr {
	l := locked()
	defer l.lock.Unlock()

	symbol := goString(name)
	switch symbol {
	case "EAXSet", "EAXGet":
		if !hasExtension(l.ALExtensions, "EAX2.0") {
			return 0
		}
	default:
		return 0
	}

	return extensionSymbols()[symbol]
}

func alGetEnumValue(name unsafe.Pointer) int32 {
	l := locked()
	defer l.lock.Unlock()

	return l.Enums[goString(name)]
}

func alDistanceModel(model int32) {
	l := locked()
	defer l.lock.Unlock()

	l.ints[alDistanceModelParam] = model
}

func alNonNegative(value float32) {
	l := locked()
	defer l.lock.Unlock()

	if value < 0 {
		setALError(l, alInvalidValue)
	}
}

func listenerCount(param int32) int {
	switch param {
	case alOrientation:
		return 6
	case 0x100A: // AL_GAIN
		return 1
	}
	return 3
}

func alListenerf(param int32, value float32) {
	l := locked()
	defer l.lock.Unlock()

	l.listener[param] = []float32{value}
}

func alListener3f(param int32, v1, v2, v3 float32) {
	l := locked()
	defer l.lock.Unlock()

	l.listener[param] = []float32{v1, v2, v3}
}

func alListenerfv(param int32, values unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	l.listener[param] = append([]float32(nil), unsafe.Slice((*float32)(values), listenerCount(param))...)
}

func alListeneri(param int32, value int32) {
	l := locked()
	defer l.lock.Unlock()

	l.listener[param] = []float32{float32(value)}
}

func alGetListenerf(param int32, value unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	copyFloats(value, l.listener[param], 1)
}

func alGetListener3f(param int32, v1, v2, v3 unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	values := l.listener[param]
	for idx, ptr := range []unsafe.Pointer{v1, v2, v3} {
		if idx < len(values) {
			*(*float32)(ptr) = values[idx]
		} else {
			*(*float32)(ptr) = 0
		}
	}
}

func alGetListenerfv(param int32, values unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	copyFloats(values, l.listener[param], listenerCount(param))
}

func copyFloats(dst unsafe.Pointer, values []float32, count int) {
	out := unsafe.Slice((*float32)(dst), count)
	for idx := range out {
		if idx < len(values) {
			out[idx] = values[idx]
		} else {
			out[idx] = 0
		}
	}
}

func alGenSources(n int32, sources unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	if n < 0 {
		setALError(l, alInvalidValue)
		return
	}

	ids := unsafe.Slice((*uint32)(sources), n)
	for idx := range ids {
		l.nextID++
		l.sources[l.nextID] = &SourceState{
			State: alInitial,
			Ints:  map[int32]int32{},
			Floats: map[int32][]float32{
				0x1003: {1}, // AL_PITCH
				0x100A: {1}, // AL_GAIN
				0x100E: {1}, // AL_MAX_GAIN
				0x1020: {1}, // AL_REFERENCE_DISTANCE
				0x1021: {1}, // AL_ROLLOFF_FACTOR
			},
		}
		ids[idx] = l.nextID
	}
}

func alDeleteSources(n int32, sources unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	ids := unsafe.Slice((*uint32)(sources), n)
	for _, id := range ids {
		if _, ok := l.sources[id]; !ok {
			setALError(l, alInvalidName)
			return
		}
	}

	for _, id := range ids {
		delete(l.sources, id)
	}
}

func alIsSource(source uint32) bool {
	l := locked()
	defer l.lock.Unlock()

	_, ok := l.sources[source]
	return ok
}

// source returns the state of id or records AL_INVALID_NAME.
func (l *Library) source(id uint32) *SourceState {
	src, ok := l.sources[id]
	if !ok {
		setALError(l, alInvalidName)
		return nil
	}
	return src
}

func alSourcef(source uint32, param int32, value float32) {
	l := locked()
	defer l.lock.Unlock()

	if src := l.source(source); src != nil {
		src.Floats[param] = []float32{value}
	}
}

func alSource3f(source uint32, param int32, v1, v2, v3 float32) {
	l := locked()
	defer l.lock.Unlock()

	if src := l.source(source); src != nil {
		src.Floats[param] = []float32{v1, v2, v3}
	}
}

func alSourcefv(source uint32, param int32, values unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	if src := l.source(source); src != nil {
		src.Floats[param] = append([]float32(nil), unsafe.Slice((*float32)(values), 3)...)
	}
}

func alSourcei(source uint32, param int32, value int32) {
	l := locked()
	defer l.lock.Unlock()

	src := l.source(source)
	if src == nil {
		return
	}

	if param != alBuffer {
		src.Ints[param] = value
		return
	}

	if src.State == alPlaying || src.State == alPaused {
		setALError(l, alInvalidOperation)
		return
	}

	if value == 0 {
		src.Queue = nil
	} else {
		if _, ok := l.buffers[uint32(value)]; !ok {
			setALError(l, alInvalidValue)
			return
		}
		src.Queue = []uint32{uint32(value)}
	}
	src.Processed = 0
}

func alGetSourcef(source uint32, param int32, value unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	if src := l.source(source); src != nil {
		copyFloats(value, src.Floats[param], 1)
	}
}

func alGetSource3f(source uint32, param int32, v1, v2, v3 unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	src := l.source(source)
	if src == nil {
		return
	}

	values := src.Floats[param]
	for idx, ptr := range []unsafe.Pointer{v1, v2, v3} {
		if idx < len(values) {
			*(*float32)(ptr) = values[idx]
		} else {
			*(*float32)(ptr) = 0
		}
	}
}

func alGetSourcei(source uint32, param int32, value unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	src := l.source(source)
	if src == nil {
		return
	}

	var result int32
	switch param {
	case alSourceState:
		result = src.State
	case alBuffersQueued:
		result = int32(len(src.Queue))
	case alBuffersProcessed:
		result = int32(src.Processed)
	case alBuffer:
		if len(src.Queue) > 0 {
			result = int32(src.Queue[len(src.Queue)-1])
		}
	default:
		result = src.Ints[param]
	}

	*(*int32)(value) = result
}

func alSourcePlay(source uint32) {
	l := locked()
	defer l.lock.Unlock()

	src := l.source(source)
	if src == nil {
		return
	}

	if src.State != alPaused {
		// a stopped source starts over from its first queued buffer
		src.Processed = 0
	}

	if len(src.Queue) == 0 {
		src.State = alStopped
	} else {
		src.State = alPlaying
	}
}

func alSourcePause(source uint32) {
	l := locked()
	defer l.lock.Unlock()

	if src := l.source(source); src != nil && src.State == alPlaying {
		src.State = alPaused
	}
}

func alSourceStop(source uint32) {
	l := locked()
	defer l.lock.Unlock()

	if src := l.source(source); src != nil {
		src.State = alStopped
		src.Processed = len(src.Queue)
	}
}

func alSourceRewind(source uint32) {
	l := locked()
	defer l.lock.Unlock()

	if src := l.source(source); src != nil {
		src.State = alInitial
		src.Processed = 0
	}
}

func alSourceQueueBuffers(source uint32, n int32, buffers unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	src := l.source(source)
	if src == nil || n == 0 {
		return
	}

	ids := unsafe.Slice((*uint32)(buffers), n)
	for _, id := range ids {
		if _, ok := l.buffers[id]; !ok {
			setALError(l, alInvalidName)
			return
		}
	}

	src.Queue = append(src.Queue, ids...)
}

func alSourceUnqueueBuffers(source uint32, n int32, buffers unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	src := l.source(source)
	if src == nil || n == 0 {
		return
	}

	if int(n) > src.Processed {
		setALError(l, alInvalidValue)
		return
	}

	copy(unsafe.Slice((*uint32)(buffers), n), src.Queue[:n])
	src.Queue = append([]uint32(nil), src.Queue[n:]...)
	src.Processed -= int(n)
}

func alGenBuffers(n int32, buffers unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	if n < 0 {
		setALError(l, alInvalidValue)
		return
	}

	ids := unsafe.Slice((*uint32)(buffers), n)
	for idx := range ids {
		l.nextID++
		l.buffers[l.nextID] = &BufferState{}
		ids[idx] = l.nextID
	}
}

func alDeleteBuffers(n int32, buffers unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	ids := unsafe.Slice((*uint32)(buffers), n)
	for _, id := range ids {
		if _, ok := l.buffers[id]; !ok {
			setALError(l, alInvalidName)
			return
		}

		for _, src := range l.sources {
			for _, queued := range src.Queue {
				if queued == id {
					setALError(l, alInvalidOperation)
					return
				}
			}
		}
	}

	for _, id := range ids {
		delete(l.buffers, id)
	}
}

func alIsBuffer(buffer uint32) bool {
	l := locked()
	defer l.lock.Unlock()

	_, ok := l.buffers[buffer]
	return ok
}

func alBufferData(buffer uint32, format int32, data unsafe.Pointer, size int32, frequency int32) {
	l := locked()
	defer l.lock.Unlock()

	buf, ok := l.buffers[buffer]
	if !ok {
		setALError(l, alInvalidName)
		return
	}

	if _, _, known := formatLayout(format); !known {
		setALError(l, alInvalidEnum)
		return
	}

	buf.Format = format
	buf.Frequency = frequency
	buf.Data = nil
	if size > 0 {
		buf.Data = append([]byte(nil), unsafe.Slice((*byte)(data), size)...)
	}
}

func alGetBufferi(buffer uint32, param int32, value unsafe.Pointer) {
	l := locked()
	defer l.lock.Unlock()

	buf, ok := l.buffers[buffer]
	if !ok {
		setALError(l, alInvalidName)
		return
	}

	channels, bits, _ := formatLayout(buf.Format)
	var result int32
	switch param {
	case alFrequency:
		result = buf.Frequency
	case alBits:
		result = bits
	case alChannels:
		result = channels
	case alSize:
		result = int32(len(buf.Data))
	default:
		setALError(l, alInvalidEnum)
		return
	}

	*(*int32)(value) = result
}

// formatLayout knows the core formats. Anything else is accepted as long as it isn't
// AL_NONE so tests can feed extension formats through alGetEnumValue.
func formatLayout(format int32) (channels, bits int32, known bool) {
	switch format {
	case 0x1100:
		return 1, 8, true
	case 0x1101:
		return 1, 16, true
	case 0x1102:
		return 2, 8, true
	case 0x1103:
		return 2, 16, true
	case 0:
		return 0, 0, false
	}

	return 0, 0, true
}

func eaxSet(guid unsafe.Pointer, property, source uint32, value unsafe.Pointer, size uint32) int32 {
	l := locked()
	defer l.lock.Unlock()

	key := eaxKey{set: *(*uint32)(guid), property: property &^ 0x80000000, source: source}
	l.eax[key] = append([]byte(nil), unsafe.Slice((*byte)(value), size)...)
	return 0
}

func eaxGet(guid unsafe.Pointer, property, source uint32, value unsafe.Pointer, size uint32) int32 {
	l := locked()
	defer l.lock.Unlock()

	stored, ok := l.eax[eaxKey{set: *(*uint32)(guid), property: property, source: source}]
	if !ok {
		return alInvalidOperation
	}

	copy(unsafe.Slice((*byte)(value), size), stored)
	return 0
}
