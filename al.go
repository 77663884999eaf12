package libopenal

import (
	"unsafe"

	"github.com/rotisserie/eris"

	"github.com/ngld/knossos/packages/libopenal/pkg/strlist"
)

// AL exposes the core OpenAL API. Most calls operate on the current context.
type AL struct {
	alEnable             func(capability int32)
	alDisable            func(capability int32)
	alIsEnabled          func(capability int32) bool
	alGetString          func(param int32) unsafe.Pointer
	alGetInteger         func(param int32) int32
	alGetFloat           func(param int32) float32
	alGetError           func() int32
	alIsExtensionPresent func(name unsafe.Pointer) bool
	alGetProcAddress     func(name unsafe.Pointer) uintptr
	alGetEnumValue       func(name unsafe.Pointer) int32
	alDistanceModel      func(model int32)
	alDopplerFactor      func(value float32)
	alSpeedOfSound       func(value float32)

	alListenerf     func(param int32, value float32)
	alListener3f    func(param int32, v1, v2, v3 float32)
	alListenerfv    func(param int32, values unsafe.Pointer)
	alListeneri     func(param int32, value int32)
	alGetListenerf  func(param int32, value unsafe.Pointer)
	alGetListener3f func(param int32, v1, v2, v3 unsafe.Pointer)
	alGetListenerfv func(param int32, values unsafe.Pointer)

	alGenSources           func(n int32, sources unsafe.Pointer)
	alDeleteSources        func(n int32, sources unsafe.Pointer)
	alIsSource             func(source uint32) bool
	alSourcef              func(source uint32, param int32, value float32)
	alSource3f             func(source uint32, param int32, v1, v2, v3 float32)
	alSourcefv             func(source uint32, param int32, values unsafe.Pointer)
	alSourcei              func(source uint32, param int32, value int32)
	alGetSourcef           func(source uint32, param int32, value unsafe.Pointer)
	alGetSource3f          func(source uint32, param int32, v1, v2, v3 unsafe.Pointer)
	alGetSourcei           func(source uint32, param int32, value unsafe.Pointer)
	alSourcePlay           func(source uint32)
	alSourcePause          func(source uint32)
	alSourceStop           func(source uint32)
	alSourceRewind         func(source uint32)
	alSourceQueueBuffers   func(source uint32, n int32, buffers unsafe.Pointer)
	alSourceUnqueueBuffers func(source uint32, n int32, buffers unsafe.Pointer)

	alGenBuffers    func(n int32, buffers unsafe.Pointer)
	alDeleteBuffers func(n int32, buffers unsafe.Pointer)
	alIsBuffer      func(buffer uint32) bool
	alBufferData    func(buffer uint32, format int32, data unsafe.Pointer, size int32, frequency int32)
	alGetBufferi    func(buffer uint32, param int32, value unsafe.Pointer)
}

func bindAL(b *binder) *AL {
	al := new(AL)
	b.bind(&al.alEnable, "alEnable")
	b.bind(&al.alDisable, "alDisable")
	b.bind(&al.alIsEnabled, "alIsEnabled")
	b.bind(&al.alGetString, "alGetString")
	b.bind(&al.alGetInteger, "alGetInteger")
	b.bind(&al.alGetFloat, "alGetFloat")
	b.bind(&al.alGetError, "alGetError")
	b.bind(&al.alIsExtensionPresent, "alIsExtensionPresent")
	b.bind(&al.alGetProcAddress, "alGetProcAddress")
	b.bind(&al.alGetEnumValue, "alGetEnumValue")
	b.bind(&al.alDistanceModel, "alDistanceModel")
	b.bind(&al.alDopplerFactor, "alDopplerFactor")
	b.bind(&al.alSpeedOfSound, "alSpeedOfSound")

	b.bind(&al.alListenerf, "alListenerf")
	b.bind(&al.alListener3f, "alListener3f")
	b.bind(&al.alListenerfv, "alListenerfv")
	b.bind(&al.alListeneri, "alListeneri")
	b.bind(&al.alGetListenerf, "alGetListenerf")
	b.bind(&al.alGetListener3f, "alGetListener3f")
	b.bind(&al.alGetListenerfv, "alGetListenerfv")

	b.bind(&al.alGenSources, "alGenSources")
	b.bind(&al.alDeleteSources, "alDeleteSources")
	b.bind(&al.alIsSource, "alIsSource")
	b.bind(&al.alSourcef, "alSourcef")
	b.bind(&al.alSource3f, "alSource3f")
	b.bind(&al.alSourcefv, "alSourcefv")
	b.bind(&al.alSourcei, "alSourcei")
	b.bind(&al.alGetSourcef, "alGetSourcef")
	b.bind(&al.alGetSource3f, "alGetSource3f")
	b.bind(&al.alGetSourcei, "alGetSourcei")
	b.bind(&al.alSourcePlay, "alSourcePlay")
	b.bind(&al.alSourcePause, "alSourcePause")
	b.bind(&al.alSourceStop, "alSourceStop")
	b.bind(&al.alSourceRewind, "alSourceRewind")
	b.bind(&al.alSourceQueueBuffers, "alSourceQueueBuffers")
	b.bind(&al.alSourceUnqueueBuffers, "alSourceUnqueueBuffers")

	b.bind(&al.alGenBuffers, "alGenBuffers")
	b.bind(&al.alDeleteBuffers, "alDeleteBuffers")
	b.bind(&al.alIsBuffer, "alIsBuffer")
	b.bind(&al.alBufferData, "alBufferData")
	b.bind(&al.alGetBufferi, "alGetBufferi")
	return al
}

func (a *AL) Enable(capability int32) {
	a.alEnable(capability)
}

func (a *AL) Disable(capability int32) {
	a.alDisable(capability)
}

func (a *AL) IsEnabled(capability int32) bool {
	return a.alIsEnabled(capability)
}

// GetString returns AL_VENDOR, AL_VERSION, AL_RENDERER, AL_EXTENSIONS or the
// description of an error code.
func (a *AL) GetString(param int32) string {
	return goString(a.alGetString(param))
}

func (a *AL) GetInteger(param int32) int32 {
	return a.alGetInteger(param)
}

func (a *AL) GetFloat(param int32) float32 {
	return a.alGetFloat(param)
}

func (a *AL) GetError() int32 {
	return a.alGetError()
}

// Error returns (and clears) the pending AL error, if any.
func (a *AL) Error() error {
	return alError(a.alGetError())
}

// Check wraps the pending AL error with op.
func (a *AL) Check(op string) error {
	err := a.Error()
	if err != nil {
		return eris.Wrap(err, op)
	}
	return nil
}

func (a *AL) IsExtensionPresent(name string) bool {
	var present bool
	withCString(name, func(str unsafe.Pointer) {
		present = a.alIsExtensionPresent(str)
	})
	return present
}

func (a *AL) GetProcAddress(name string) uintptr {
	var addr uintptr
	withCString(name, func(str unsafe.Pointer) {
		addr = a.alGetProcAddress(str)
	})
	return addr
}

func (a *AL) GetEnumValue(name string) int32 {
	var value int32
	withCString(name, func(str unsafe.Pointer) {
		value = a.alGetEnumValue(str)
	})
	return value
}

func (a *AL) DistanceModel(model int32) {
	a.alDistanceModel(model)
}

func (a *AL) DopplerFactor(value float32) {
	a.alDopplerFactor(value)
}

func (a *AL) SpeedOfSound(value float32) {
	a.alSpeedOfSound(value)
}

func (a *AL) Listenerf(param int32, value float32) {
	a.alListenerf(param, value)
}

func (a *AL) Listener3f(param int32, v1, v2, v3 float32) {
	a.alListener3f(param, v1, v2, v3)
}

func (a *AL) Listenerfv(param int32, values []float32) {
	withPinned(values, func(ptr unsafe.Pointer) {
		a.alListenerfv(param, ptr)
	})
}

func (a *AL) Listeneri(param int32, value int32) {
	a.alListeneri(param, value)
}

func (a *AL) GetListenerf(param int32) float32 {
	out := make([]float32, 1)
	withPinned(out, func(ptr unsafe.Pointer) {
		a.alGetListenerf(param, ptr)
	})
	return out[0]
}

func (a *AL) GetListener3f(param int32) (float32, float32, float32) {
	out := make([]float32, 3)
	withPinned(out, func(ptr unsafe.Pointer) {
		a.alGetListener3f(param, ptr, unsafe.Add(ptr, 4), unsafe.Add(ptr, 8))
	})
	return out[0], out[1], out[2]
}

// GetListenerfv reads count floats. AL_ORIENTATION needs 6, vectors need 3.
func (a *AL) GetListenerfv(param int32, count int) []float32 {
	out := make([]float32, count)
	withPinned(out, func(ptr unsafe.Pointer) {
		a.alGetListenerfv(param, ptr)
	})
	return out
}

func (a *AL) GenSources(n int) []uint32 {
	ids := make([]uint32, n)
	withPinned(ids, func(ptr unsafe.Pointer) {
		a.alGenSources(int32(n), ptr)
	})
	return ids
}

func (a *AL) DeleteSources(sources ...uint32) {
	withPinned(sources, func(ptr unsafe.Pointer) {
		a.alDeleteSources(int32(len(sources)), ptr)
	})
}

func (a *AL) IsSource(source uint32) bool {
	return a.alIsSource(source)
}

func (a *AL) Sourcef(source uint32, param int32, value float32) {
	a.alSourcef(source, param, value)
}

func (a *AL) Source3f(source uint32, param int32, v1, v2, v3 float32) {
	a.alSource3f(source, param, v1, v2, v3)
}

func (a *AL) Sourcefv(source uint32, param int32, values []float32) {
	withPinned(values, func(ptr unsafe.Pointer) {
		a.alSourcefv(source, param, ptr)
	})
}

func (a *AL) Sourcei(source uint32, param int32, value int32) {
	a.alSourcei(source, param, value)
}

func (a *AL) GetSourcef(source uint32, param int32) float32 {
	out := make([]float32, 1)
	withPinned(out, func(ptr unsafe.Pointer) {
		a.alGetSourcef(source, param, ptr)
	})
	return out[0]
}

func (a *AL) GetSource3f(source uint32, param int32) (float32, float32, float32) {
	out := make([]float32, 3)
	withPinned(out, func(ptr unsafe.Pointer) {
		a.alGetSource3f(source, param, ptr, unsafe.Add(ptr, 4), unsafe.Add(ptr, 8))
	})
	return out[0], out[1], out[2]
}

func (a *AL) GetSourcei(source uint32, param int32) int32 {
	out := make([]int32, 1)
	withPinned(out, func(ptr unsafe.Pointer) {
		a.alGetSourcei(source, param, ptr)
	})
	return out[0]
}

func (a *AL) SourcePlay(source uint32) {
	a.alSourcePlay(source)
}

func (a *AL) SourcePause(source uint32) {
	a.alSourcePause(source)
}

func (a *AL) SourceStop(source uint32) {
	a.alSourceStop(source)
}

func (a *AL) SourceRewind(source uint32) {
	a.alSourceRewind(source)
}

func (a *AL) SourceQueueBuffers(source uint32, buffers ...uint32) {
	withPinned(buffers, func(ptr unsafe.Pointer) {
		a.alSourceQueueBuffers(source, int32(len(buffers)), ptr)
	})
}

// SourceUnqueueBuffers removes n processed buffers from source and returns their names.
func (a *AL) SourceUnqueueBuffers(source uint32, n int) []uint32 {
	ids := make([]uint32, n)
	withPinned(ids, func(ptr unsafe.Pointer) {
		a.alSourceUnqueueBuffers(source, int32(n), ptr)
	})
	return ids
}

func (a *AL) GenBuffers(n int) []uint32 {
	ids := make([]uint32, n)
	withPinned(ids, func(ptr unsafe.Pointer) {
		a.alGenBuffers(int32(n), ptr)
	})
	return ids
}

func (a *AL) DeleteBuffers(buffers ...uint32) {
	withPinned(buffers, func(ptr unsafe.Pointer) {
		a.alDeleteBuffers(int32(len(buffers)), ptr)
	})
}

func (a *AL) IsBuffer(buffer uint32) bool {
	return a.alIsBuffer(buffer)
}

// BufferData copies data into buffer. OpenAL keeps its own copy so data may be reused
// as soon as this returns.
func (a *AL) BufferData(buffer uint32, format int32, data []byte, frequency int32) {
	withPinned(data, func(ptr unsafe.Pointer) {
		a.alBufferData(buffer, format, ptr, int32(len(data)), frequency)
	})
}

func (a *AL) GetBufferi(buffer uint32, param int32) int32 {
	out := make([]int32, 1)
	withPinned(out, func(ptr unsafe.Pointer) {
		a.alGetBufferi(buffer, param, ptr)
	})
	return out[0]
}

// goString copies a plain C string. AL never returns string lists.
func goString(str unsafe.Pointer) string {
	return strlist.GoString(0, 0, str)
}
