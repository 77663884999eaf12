//go:build darwin || (linux && (amd64 || arm64))

package fakeal

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
)

// purego keeps every callback for the lifetime of the process and has a hard limit on
// their number, so the tables are built once and shared by all fakes.
var (
	symbolsOnce sync.Once
	core        map[string]uintptr
	extensions  map[string]uintptr
)

func coreSymbols() map[string]uintptr {
	symbolsOnce.Do(buildSymbols)
	return core
}

func extensionSymbols() map[string]uintptr {
	symbolsOnce.Do(buildSymbols)
	return extensions
}

func nop(uintptr) {}

func buildSymbols() {
	core = map[string]uintptr{}
	for name, fn := range map[string]interface{}{
		"alcOpenDevice":         alcOpenDevice,
		"alcCloseDevice":        alcCloseDevice,
		"alcCreateContext":      alcCreateContext,
		"alcMakeContextCurrent": alcMakeContextCurrent,
		"alcProcessContext":     nop,
		"alcSuspendContext":     nop,
		"alcDestroyContext":     alcDestroyContext,
		"alcGetCurrentContext":  alcGetCurrentContext,
		"alcGetContextsDevice":  alcGetContextsDevice,
		"alcGetError":           alcGetError,
		"alcIsExtensionPresent": alcIsExtensionPresent,
		"alcGetProcAddress":     alcGetProcAddress,
		"alcGetEnumValue":       alcGetEnumValue,
		"alcGetString":          alcGetString,
		"alcGetIntegerv":        alcGetIntegerv,
		"alcCaptureOpenDevice":  alcCaptureOpenDevice,
		"alcCaptureCloseDevice": alcCaptureCloseDevice,
		"alcCaptureStart":       nop,
		"alcCaptureStop":        nop,
		"alcCaptureSamples":     func(device uintptr, buffer unsafe.Pointer, samples int32) {},

		"alEnable":             alEnable,
		"alDisable":            alDisable,
		"alIsEnabled":          alIsEnabled,
		"alGetString":          alGetString,
		"alGetInteger":         alGetInteger,
		"alGetFloat":           alGetFloat,
		"alGetError":           alGetError,
		"alIsExtensionPresent": alIsExtensionPresent,
		"alGetProcAddress":     alGetProcAddress,
		"alGetEnumValue":       alGetEnumValue,
		"alDistanceModel":      alDistanceModel,
		"alDopplerFactor":      alNonNegative,
		"alSpeedOfSound":       alNonNegative,

		"alListenerf":     alListenerf,
		"alListener3f":    alListener3f,
		"alListenerfv":    alListenerfv,
		"alListeneri":     alListeneri,
		"alGetListenerf":  alGetListenerf,
		"alGetListener3f": alGetListener3f,
		"alGetListenerfv": alGetListenerfv,

		"alGenSources":           alGenSources,
		"alDeleteSources":        alDeleteSources,
		"alIsSource":             alIsSource,
		"alSourcef":              alSourcef,
		"alSource3f":             alSource3f,
		"alSourcefv":             alSourcefv,
		"alSourcei":              alSourcei,
		"alGetSourcef":           alGetSourcef,
		"alGetSource3f":          alGetSource3f,
		"alGetSourcei":           alGetSourcei,
		"alSourcePlay":           alSourcePlay,
		"alSourcePause":          alSourcePause,
		"alSourceStop":           alSourceStop,
		"alSourceRewind":         alSourceRewind,
		"alSourceQueueBuffers":   alSourceQueueBuffers,
		"alSourceUnqueueBuffers": alSourceUnqueueBuffers,

		"alGenBuffers":    alGenBuffers,
		"alDeleteBuffers": alDeleteBuffers,
		"alIsBuffer":      alIsBuffer,
		"alBufferData":    alBufferData,
		"alGetBufferi":    alGetBufferi,
	} {
		core[name] = purego.NewCallback(fn)
	}

	extensions = map[string]uintptr{
		"alcSetThreadContext": purego.NewCallback(alcSetThreadContext),
		"alcGetThreadContext": purego.NewCallback(alcGetThreadContext),
		"EAXSet":              purego.NewCallback(eaxSet),
		"EAXGet":              purego.NewCallback(eaxGet),
	}
}
