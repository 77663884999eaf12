package libopenal

import (
	"encoding/binary"
	"sync"
	"unsafe"

	"github.com/rotisserie/eris"
)

// GUID mirrors the Windows GUID layout EAXSet and EAXGet expect.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// EAX 2.0 property sets
var (
	EAX20ListenerProperties = GUID{0x0306a6a8, 0xb224, 0x11d2, [8]byte{0x99, 0xe5, 0x00, 0x00, 0xe8, 0xd8, 0xc7, 0x22}}
	EAX20BufferProperties   = GUID{0x0306a6a7, 0xb224, 0x11d2, [8]byte{0x99, 0xe5, 0x00, 0x00, 0xe8, 0xd8, 0xc7, 0x22}}
)

// EAX 2.0 listener properties
const (
	EAXListenerNone = iota
	EAXListenerAllParameters
	EAXListenerRoom
	EAXListenerRoomHF
	EAXListenerRoomRolloffFactor
	EAXListenerDecayTime
	EAXListenerDecayHFRatio
	EAXListenerReflections
	EAXListenerReflectionsDelay
	EAXListenerReverb
	EAXListenerReverbDelay
	EAXListenerEnvironment
	EAXListenerEnvironmentSize
	EAXListenerEnvironmentDiffusion
	EAXListenerAirAbsorptionHF
	EAXListenerFlags
)

// EAX 2.0 buffer (source) properties
const (
	EAXBufferNone                = 0
	EAXBufferAllParameters       = 1
	EAXBufferDirect              = 2
	EAXBufferDirectHF            = 3
	EAXBufferRoom                = 4
	EAXBufferRoomHF              = 5
	EAXBufferRoomRolloffFactor   = 6
	EAXBufferObstruction         = 7
	EAXBufferObstructionLFRatio  = 8
	EAXBufferOcclusion           = 9
	EAXBufferOcclusionLFRatio    = 10
	EAXBufferOcclusionRoomRatio  = 11
	EAXBufferOutsideVolumeHF     = 13
	EAXBufferAirAbsorptionFactor = 14
	EAXBufferFlags               = 15
)

// OR these into a property id to defer the change until the next commit.
const (
	EAXImmediate uint32 = 0x00000000
	EAXDeferred  uint32 = 0x80000000
)

// EAX environment presets used with EAXListenerEnvironment
const (
	EAXEnvironmentGeneric = iota
	EAXEnvironmentPaddedCell
	EAXEnvironmentRoom
	EAXEnvironmentBathroom
	EAXEnvironmentLivingRoom
	EAXEnvironmentStoneRoom
	EAXEnvironmentAuditorium
	EAXEnvironmentConcertHall
	EAXEnvironmentCave
	EAXEnvironmentArena
	EAXEnvironmentHangar
	EAXEnvironmentCarpetedHallway
	EAXEnvironmentHallway
	EAXEnvironmentStoneCorridor
	EAXEnvironmentAlley
	EAXEnvironmentForest
	EAXEnvironmentCity
	EAXEnvironmentMountains
	EAXEnvironmentQuarry
	EAXEnvironmentPlain
	EAXEnvironmentParkingLot
	EAXEnvironmentSewerPipe
	EAXEnvironmentUnderwater
	EAXEnvironmentDrugged
	EAXEnvironmentDizzy
	EAXEnvironmentPsychotic
	EAXEnvironmentCount
)

// EAXListenerFlags bits
const (
	EAXListenerFlagDecayTimeScale        = 0x01
	EAXListenerFlagReflectionsScale      = 0x02
	EAXListenerFlagReflectionsDelayScale = 0x04
	EAXListenerFlagReverbScale           = 0x08
	EAXListenerFlagReverbDelayScale      = 0x10
	EAXListenerFlagDecayHFLimit          = 0x20

	EAXListenerDefaultFlags = EAXListenerFlagDecayTimeScale | EAXListenerFlagReflectionsScale |
		EAXListenerFlagReflectionsDelayScale | EAXListenerFlagReverbScale |
		EAXListenerFlagReverbDelayScale | EAXListenerFlagDecayHFLimit
)

// EAXBufferFlags bits
const (
	EAXBufferFlagDirectHFAuto = 0x01
	EAXBufferFlagRoomAuto     = 0x02
	EAXBufferFlagRoomHFAuto   = 0x04

	EAXBufferDefaultFlags = EAXBufferFlagDirectHFAuto | EAXBufferFlagRoomAuto | EAXBufferFlagRoomHFAuto
)

// EAX exposes the EAX 2.0 property interface of implementations that support it
// (mostly Creative's Windows drivers and OpenAL Soft builds with EAX enabled).
type EAX struct {
	oal *OpenAL

	lock     sync.Mutex
	resolved bool
	eaxSet   func(guid unsafe.Pointer, property, source uint32, value unsafe.Pointer, size uint32) int32
	eaxGet   func(guid unsafe.Pointer, property, source uint32, value unsafe.Pointer, size uint32) int32
}

// Available reports whether EAX 2.0 can be used. The check needs a current context and
// is repeated until it succeeds.
func (e *EAX) Available() bool {
	e.lock.Lock()
	defer e.lock.Unlock()

	return e.resolve()
}

func (e *EAX) resolve() bool {
	if e.resolved {
		return true
	}

	if !e.oal.AL.IsExtensionPresent(ExtEAX2) {
		return false
	}

	set := e.oal.resolveExtension(0, "EAXSet")
	get := e.oal.resolveExtension(0, "EAXGet")
	if set == 0 || get == 0 {
		return false
	}

	bindOptional(&e.eaxSet, set)
	bindOptional(&e.eaxGet, get)
	e.resolved = true
	return true
}

func (e *EAX) call(fn func() int32) error {
	e.lock.Lock()
	ok := e.resolve()
	e.lock.Unlock()

	if !ok {
		return ErrEAXUnavailable
	}

	return alError(fn())
}

func (e *EAX) set(set *GUID, property, source uint32, value []byte) error {
	return e.call(func() int32 {
		var result int32
		withPinned([]GUID{*set}, func(guid unsafe.Pointer) {
			withPinned(value, func(ptr unsafe.Pointer) {
				result = e.eaxSet(guid, property, source, ptr, uint32(len(value)))
			})
		})
		return result
	})
}

func (e *EAX) get(set *GUID, property, source uint32, value []byte) error {
	return e.call(func() int32 {
		var result int32
		withPinned([]GUID{*set}, func(guid unsafe.Pointer) {
			withPinned(value, func(ptr unsafe.Pointer) {
				result = e.eaxGet(guid, property, source, ptr, uint32(len(value)))
			})
		})
		return result
	})
}

// SetListenerProperty writes a raw listener property. value holds the property in
// native byte order.
func (e *EAX) SetListenerProperty(property uint32, value []byte) error {
	return eris.Wrapf(e.set(&EAX20ListenerProperties, property, 0, value), "failed to set EAX listener property %d", property)
}

// GetListenerProperty reads a listener property into value.
func (e *EAX) GetListenerProperty(property uint32, value []byte) error {
	return eris.Wrapf(e.get(&EAX20ListenerProperties, property, 0, value), "failed to read EAX listener property %d", property)
}

func (e *EAX) SetBufferProperty(source, property uint32, value []byte) error {
	return eris.Wrapf(e.set(&EAX20BufferProperties, property, source, value), "failed to set EAX property %d on source %d", property, source)
}

func (e *EAX) GetBufferProperty(source, property uint32, value []byte) error {
	return eris.Wrapf(e.get(&EAX20BufferProperties, property, source, value), "failed to read EAX property %d of source %d", property, source)
}

// SetEnvironment switches the listener to one of the EAXEnvironment presets.
func (e *EAX) SetEnvironment(environment uint32) error {
	if environment >= EAXEnvironmentCount {
		return eris.Wrapf(ErrInvalidValue, "unknown EAX environment %d", environment)
	}

	return e.SetListenerProperty(EAXListenerEnvironment, uint32Bytes(environment))
}

func (e *EAX) SetRoom(room int32) error {
	return e.SetListenerProperty(EAXListenerRoom, uint32Bytes(uint32(room)))
}

func uint32Bytes(value uint32) []byte {
	buf := make([]byte, 4)
	binary.NativeEndian.PutUint32(buf, value)
	return buf
}
