package libopenal

import (
	"fmt"

	"github.com/rotisserie/eris"
)

var ErrUnsupportedFormat = eris.New("sample format is not supported by this implementation")

// ChannelLayout describes the speaker arrangement of sample data. The values match the
// AL_SOFT_buffer_samples channel enums.
type ChannelLayout int32

const (
	LayoutMono    ChannelLayout = 0x1500
	LayoutStereo  ChannelLayout = 0x1501
	LayoutRear    ChannelLayout = 0x1502
	LayoutQuad    ChannelLayout = 0x1503
	Layout51      ChannelLayout = 0x1504
	Layout61      ChannelLayout = 0x1505
	Layout71      ChannelLayout = 0x1506
	LayoutUnknown ChannelLayout = 0
)

// SampleType describes the encoding of a single sample. The values match the
// AL_SOFT_buffer_samples type enums.
type SampleType int32

const (
	SampleS8      SampleType = 0x1400
	SampleU8      SampleType = 0x1401
	SampleS16     SampleType = 0x1402
	SampleU16     SampleType = 0x1403
	SampleS32     SampleType = 0x1404
	SampleU32     SampleType = 0x1405
	SampleFloat32 SampleType = 0x1406
	SampleFloat64 SampleType = 0x1407
	SampleUnknown SampleType = 0
)

// DefaultChannelLayout picks the usual layout for a channel count. Counts without a
// standard layout return LayoutUnknown.
func DefaultChannelLayout(channels int) ChannelLayout {
	switch channels {
	case 1:
		return LayoutMono
	case 2:
		return LayoutStereo
	case 4:
		return LayoutQuad
	case 6:
		return Layout51
	case 7:
		return Layout61
	case 8:
		return Layout71
	default:
		return LayoutUnknown
	}
}

// Channels returns the number of channels in the layout.
func (c ChannelLayout) Channels() int {
	switch c {
	case LayoutMono:
		return 1
	case LayoutStereo, LayoutRear:
		return 2
	case LayoutQuad:
		return 4
	case Layout51:
		return 6
	case Layout61:
		return 7
	case Layout71:
		return 8
	default:
		return 0
	}
}

func (c ChannelLayout) String() string {
	switch c {
	case LayoutMono:
		return "mono"
	case LayoutStereo:
		return "stereo"
	case LayoutRear:
		return "rear"
	case LayoutQuad:
		return "quad"
	case Layout51:
		return "5.1"
	case Layout61:
		return "6.1"
	case Layout71:
		return "7.1"
	default:
		return fmt.Sprintf("layout(0x%x)", int32(c))
	}
}

// SampleTypeFor maps a sample description to a SampleType. Floating point samples
// ignore signed.
func SampleTypeFor(bits int, signed, fixedPoint bool) SampleType {
	if !fixedPoint {
		switch bits {
		case 32:
			return SampleFloat32
		case 64:
			return SampleFloat64
		}
		return SampleUnknown
	}

	switch {
	case bits == 8 && signed:
		return SampleS8
	case bits == 8:
		return SampleU8
	case bits == 16 && signed:
		return SampleS16
	case bits == 16:
		return SampleU16
	case bits == 32 && signed:
		return SampleS32
	case bits == 32:
		return SampleU32
	}
	return SampleUnknown
}

// Size returns the size of one sample in bytes.
func (t SampleType) Size() int {
	switch t {
	case SampleS8, SampleU8:
		return 1
	case SampleS16, SampleU16:
		return 2
	case SampleS32, SampleU32, SampleFloat32:
		return 4
	case SampleFloat64:
		return 8
	default:
		return 0
	}
}

func (t SampleType) String() string {
	switch t {
	case SampleS8:
		return "s8"
	case SampleU8:
		return "u8"
	case SampleS16:
		return "s16"
	case SampleU16:
		return "u16"
	case SampleS32:
		return "s32"
	case SampleU32:
		return "u32"
	case SampleFloat32:
		return "f32"
	case SampleFloat64:
		return "f64"
	default:
		return fmt.Sprintf("type(0x%x)", int32(t))
	}
}

// SamplesToBytes returns the size of samples frames.
func SamplesToBytes(samples int, layout ChannelLayout, sampleType SampleType) int {
	return samples * layout.Channels() * sampleType.Size()
}

// BytesToSamples returns the number of whole frames in bytes. Unknown layouts or types
// yield 0.
func BytesToSamples(bytes int, layout ChannelLayout, sampleType SampleType) int {
	frame := SamplesToBytes(1, layout, sampleType)
	if frame == 0 {
		return 0
	}
	return bytes / frame
}

// Format returns the buffer format for layout and sampleType. Only unsigned 8 bit and
// signed 16 bit mono and stereo are part of the core API. Everything else depends on
// AL_EXT_MCFORMATS, AL_EXT_FLOAT32 or AL_EXT_DOUBLE and is looked up by name.
func (a *AL) Format(layout ChannelLayout, sampleType SampleType) (int32, error) {
	switch sampleType {
	case SampleU8:
		switch layout {
		case LayoutMono:
			return FormatMono8, nil
		case LayoutStereo:
			return FormatStereo8, nil
		}
		return a.multiChannelFormat(layout, "8")
	case SampleS16:
		switch layout {
		case LayoutMono:
			return FormatMono16, nil
		case LayoutStereo:
			return FormatStereo16, nil
		}
		return a.multiChannelFormat(layout, "16")
	case SampleFloat32:
		if !a.IsExtensionPresent(ExtFloat32) {
			break
		}
		switch layout {
		case LayoutMono:
			return a.namedFormat("AL_FORMAT_MONO_FLOAT32", layout, sampleType)
		case LayoutStereo:
			return a.namedFormat("AL_FORMAT_STEREO_FLOAT32", layout, sampleType)
		}
		return a.multiChannelFormat(layout, "32")
	case SampleFloat64:
		if !a.IsExtensionPresent(ExtDouble) {
			break
		}
		switch layout {
		case LayoutMono:
			return a.namedFormat("AL_FORMAT_MONO_DOUBLE_EXT", layout, sampleType)
		case LayoutStereo:
			return a.namedFormat("AL_FORMAT_STEREO_DOUBLE_EXT", layout, sampleType)
		}
	}

	return None, unsupportedFormat(layout, sampleType)
}

func (a *AL) multiChannelFormat(layout ChannelLayout, suffix string) (int32, error) {
	var prefix string
	switch layout {
	case LayoutQuad:
		prefix = "AL_FORMAT_QUAD"
	case Layout51:
		prefix = "AL_FORMAT_51CHN"
	case Layout61:
		prefix = "AL_FORMAT_61CHN"
	case Layout71:
		prefix = "AL_FORMAT_71CHN"
	}

	if prefix == "" || !a.IsExtensionPresent(ExtMultiChannelFormats) {
		return None, eris.Wrapf(ErrUnsupportedFormat, "%s with %s-bit samples", layout, suffix)
	}

	format := a.GetEnumValue(prefix + suffix)
	if format == None || format == -1 {
		return None, eris.Wrapf(ErrUnsupportedFormat, "%s%s is unknown", prefix, suffix)
	}
	return format, nil
}

func (a *AL) namedFormat(name string, layout ChannelLayout, sampleType SampleType) (int32, error) {
	format := a.GetEnumValue(name)
	if format == None || format == -1 {
		return None, unsupportedFormat(layout, sampleType)
	}
	return format, nil
}

func unsupportedFormat(layout ChannelLayout, sampleType SampleType) error {
	return eris.Wrapf(ErrUnsupportedFormat, "%s %s", layout, sampleType)
}
