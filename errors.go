package libopenal

import "github.com/rotisserie/eris"

var (
	ErrInvalidName      = eris.New("OpenAL error: invalid name")
	ErrInvalidEnum      = eris.New("OpenAL error: invalid enum")
	ErrInvalidValue     = eris.New("OpenAL error: invalid value")
	ErrInvalidOperation = eris.New("OpenAL error: invalid operation")
	ErrOutOfMemory      = eris.New("OpenAL error: out of memory")
	ErrInvalidDevice    = eris.New("OpenAL error: invalid device")
	ErrInvalidContext   = eris.New("OpenAL error: invalid context")

	ErrEAXUnavailable = eris.New("EAX 2.0 is not available")
	ErrNoDevice       = eris.New("failed to open audio device")
	ErrNoContext      = eris.New("failed to create audio context")
)

// alError translates an alGetError code. AL_NO_ERROR maps to nil.
func alError(code int32) error {
	switch code {
	case NoError:
		return nil
	case InvalidName:
		return ErrInvalidName
	case InvalidEnum:
		return ErrInvalidEnum
	case InvalidValue:
		return ErrInvalidValue
	case InvalidOperation:
		return ErrInvalidOperation
	case OutOfMemory:
		return ErrOutOfMemory
	default:
		return eris.Errorf("OpenAL error: code 0x%x", code)
	}
}

// alcError translates an alcGetError code. ALC uses the same values as AL with
// different meanings.
func alcError(code int32) error {
	switch code {
	case ALCNoError:
		return nil
	case ALCInvalidDevice:
		return ErrInvalidDevice
	case ALCInvalidContext:
		return ErrInvalidContext
	case ALCInvalidEnum:
		return ErrInvalidEnum
	case ALCInvalidValue:
		return ErrInvalidValue
	case ALCOutOfMemory:
		return ErrOutOfMemory
	default:
		return eris.Errorf("OpenAL error: code 0x%x", code)
	}
}

func wrapDeviceName(name string) error {
	return eris.Wrapf(ErrNoDevice, "device %q", name)
}

func wrapContextError(err error) error {
	return eris.Wrap(err, "failed to create audio context")
}
