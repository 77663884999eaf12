package libopenal

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultChannelLayout(t *testing.T) {
	cases := map[int]ChannelLayout{
		1: LayoutMono,
		2: LayoutStereo,
		3: LayoutUnknown,
		4: LayoutQuad,
		5: LayoutUnknown,
		6: Layout51,
		7: Layout61,
		8: Layout71,
	}

	for channels, layout := range cases {
		assert.Equal(t, layout, DefaultChannelLayout(channels), "%d channels", channels)
		if layout != LayoutUnknown {
			assert.Equal(t, channels, layout.Channels())
		}
	}

	assert.Equal(t, 2, LayoutRear.Channels())
	assert.Equal(t, "5.1", Layout51.String())
	assert.Equal(t, "layout(0x42)", ChannelLayout(0x42).String())
}

func TestSampleTypeFor(t *testing.T) {
	assert.Equal(t, SampleS8, SampleTypeFor(8, true, true))
	assert.Equal(t, SampleU8, SampleTypeFor(8, false, true))
	assert.Equal(t, SampleS16, SampleTypeFor(16, true, true))
	assert.Equal(t, SampleU16, SampleTypeFor(16, false, true))
	assert.Equal(t, SampleS32, SampleTypeFor(32, true, true))
	assert.Equal(t, SampleU32, SampleTypeFor(32, false, true))
	assert.Equal(t, SampleFloat32, SampleTypeFor(32, true, false))
	assert.Equal(t, SampleFloat64, SampleTypeFor(64, false, false))
	assert.Equal(t, SampleUnknown, SampleTypeFor(24, true, true))
	assert.Equal(t, SampleUnknown, SampleTypeFor(16, true, false))

	assert.Equal(t, 8, SampleFloat64.Size())
	assert.Equal(t, "s16", SampleS16.String())
}

func TestSampleByteCounts(t *testing.T) {
	assert.Equal(t, 400, SamplesToBytes(100, LayoutStereo, SampleS16))
	assert.Equal(t, 2400, SamplesToBytes(100, Layout51, SampleFloat32))
	assert.Equal(t, 0, SamplesToBytes(100, LayoutUnknown, SampleS16))

	assert.Equal(t, 100, BytesToSamples(401, LayoutStereo, SampleS16))
	assert.Equal(t, 3, BytesToSamples(24, LayoutMono, SampleFloat64))
	assert.Equal(t, 0, BytesToSamples(100, LayoutMono, SampleUnknown))
}
