package libopenal

import "github.com/ngld/knossos/packages/libopenal/pkg/strlist"

// AL constants (al.h)
const (
	None  = 0
	False = 0
	True  = 1

	SourceRelative          = 0x202
	ConeInnerAngle          = 0x1001
	ConeOuterAngle          = 0x1002
	Pitch                   = 0x1003
	Position                = 0x1004
	Direction               = 0x1005
	Velocity                = 0x1006
	Looping                 = 0x1007
	Buffer                  = 0x1009
	Gain                    = 0x100A
	MinGain                 = 0x100D
	MaxGain                 = 0x100E
	Orientation             = 0x100F
	SourceState             = 0x1010
	Initial                 = 0x1011
	Playing                 = 0x1012
	Paused                  = 0x1013
	Stopped                 = 0x1014
	BuffersQueued           = 0x1015
	BuffersProcessed        = 0x1016
	ReferenceDistance       = 0x1020
	RolloffFactor           = 0x1021
	ConeOuterGain           = 0x1022
	MaxDistance             = 0x1023
	SecOffset               = 0x1024
	SampleOffset            = 0x1025
	ByteOffset              = 0x1026
	SourceType              = 0x1027
	Static                  = 0x1028
	Streaming               = 0x1029
	Undetermined            = 0x1030
	FormatMono8             = 0x1100
	FormatMono16            = 0x1101
	FormatStereo8           = 0x1102
	FormatStereo16          = 0x1103
	Frequency               = 0x2001
	Bits                    = 0x2002
	Channels                = 0x2003
	Size                    = 0x2004
	NoError                 = 0
	InvalidName             = 0xA001
	InvalidEnum             = 0xA002
	InvalidValue            = 0xA003
	InvalidOperation        = 0xA004
	OutOfMemory             = 0xA005
	Vendor                  = 0xB001
	VersionString           = 0xB002
	Renderer                = 0xB003
	Extensions              = 0xB004
	DopplerFactor           = 0xC000
	DopplerVelocity         = 0xC001
	SpeedOfSound            = 0xC003
	DistanceModel           = 0xD000
	InverseDistance         = 0xD001
	InverseDistanceClamped  = 0xD002
	LinearDistance          = 0xD003
	LinearDistanceClamped   = 0xD004
	ExponentDistance        = 0xD005
	ExponentDistanceClamped = 0xD006
)

// ALC constants (alc.h)
const (
	ALCFalse = 0
	ALCTrue  = 1

	ALCFrequency     = 0x1007
	ALCRefresh       = 0x1008
	ALCSync          = 0x1009
	ALCMonoSources   = 0x1010
	ALCStereoSources = 0x1011

	ALCNoError        = 0
	ALCInvalidDevice  = 0xA001
	ALCInvalidContext = 0xA002
	ALCInvalidEnum    = 0xA003
	ALCInvalidValue   = 0xA004
	ALCOutOfMemory    = 0xA005

	ALCMajorVersion   = 0x1000
	ALCMinorVersion   = 0x1001
	ALCAttributesSize = 0x1002
	ALCAllAttributes  = 0x1003

	ALCDefaultDeviceSpecifier        = 0x1004
	ALCDeviceSpecifier               = strlist.DeviceSpecifier
	ALCExtensions                    = 0x1006
	ALCCaptureDeviceSpecifier        = strlist.CaptureDeviceSpecifier
	ALCCaptureDefaultDeviceSpecifier = 0x311
	ALCCaptureSamples                = 0x312
	ALCDefaultAllDevicesSpecifier    = 0x1012
	ALCAllDevicesSpecifier           = strlist.AllDevicesSpecifier
)

// Extension names
const (
	ExtEnumerateAll        = "ALC_ENUMERATE_ALL_EXT"
	ExtEnumeration         = "ALC_ENUMERATION_EXT"
	ExtCapture             = "ALC_EXT_CAPTURE"
	ExtThreadLocalContext  = "ALC_EXT_thread_local_context"
	ExtEAX2                = "EAX2.0"
	ExtFloat32             = "AL_EXT_FLOAT32"
	ExtMultiChannelFormats = "AL_EXT_MCFORMATS"
	ExtDouble              = "AL_EXT_DOUBLE"
)
