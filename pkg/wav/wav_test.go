package wav

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chunk struct {
	id   string
	data []byte
}

func fmtChunk(compression, channels uint16, rate uint32, bits uint16) chunk {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, formatChunk{
		Compression:   compression,
		Channels:      channels,
		SampleRate:    rate,
		ByteRate:      rate * uint32(channels) * uint32(bits) / 8,
		BlockAlign:    channels * bits / 8,
		BitsPerSample: bits,
	})
	return chunk{"fmt ", buf.Bytes()}
}

func buildWAV(chunks ...chunk) []byte {
	body := new(bytes.Buffer)
	body.WriteString("WAVE")
	for _, c := range chunks {
		body.WriteString(c.id)
		binary.Write(body, binary.LittleEndian, uint32(len(c.data)))
		body.Write(c.data)
		if len(c.data)%2 == 1 {
			body.WriteByte(0)
		}
	}

	out := new(bytes.Buffer)
	out.WriteString("RIFF")
	binary.Write(out, binary.LittleEndian, uint32(body.Len()))
	out.Write(body.Bytes())
	return out.Bytes()
}

func TestLoadMono16(t *testing.T) {
	samples := []byte{0x01, 0x02, 0x03, 0x04}
	data, err := Load(bytes.NewReader(buildWAV(fmtChunk(1, 1, 22050, 16), chunk{"data", samples})))
	require.NoError(t, err)

	assert.Equal(t, FormatMono16, data.Format)
	assert.Equal(t, int32(22050), data.Frequency)
	assert.Equal(t, 1, data.Channels)
	assert.Equal(t, 16, data.BitsPerSample)
	if littleEndianHost() {
		assert.Equal(t, samples, data.Samples)
	}
}

func TestLoadSkipsUnknownChunks(t *testing.T) {
	wav := buildWAV(
		chunk{"LIST", []byte("INFOsome odd")},
		fmtChunk(1, 2, 44100, 8),
		chunk{"fact", []byte{1, 2, 3, 4}},
		chunk{"odd ", []byte{1, 2, 3}},
		chunk{"data", []byte{1, 2, 3, 4, 5, 6}},
	)

	data, err := Load(bytes.NewReader(wav))
	require.NoError(t, err)
	assert.Equal(t, FormatStereo8, data.Format)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, data.Samples)
}

func TestLoadTruncatedData(t *testing.T) {
	wav := buildWAV(fmtChunk(1, 2, 44100, 16), chunk{"data", make([]byte, 16)})
	// cut the file in the middle of a frame
	wav = wav[:len(wav)-10]

	data, err := Load(bytes.NewReader(wav))
	require.NoError(t, err)
	assert.Len(t, data.Samples, 4)
}

func TestLoadOversizedDataLength(t *testing.T) {
	for _, claimed := range []uint32{0x40000000, 0xFFFFFFFF} {
		wav := buildWAV(fmtChunk(1, 1, 8000, 8))
		wav = append(wav, []byte("data")...)
		wav = binary.LittleEndian.AppendUint32(wav, claimed)
		wav = append(wav, 1, 2, 3, 4)

		data, err := Load(bytes.NewReader(wav))
		require.NoError(t, err)
		assert.Equal(t, []byte{1, 2, 3, 4}, data.Samples)
		assert.Less(t, cap(data.Samples), 1<<16, "allocation must follow the bytes present")
	}
}

func TestLoadRejectsBadInput(t *testing.T) {
	_, err := Load(bytes.NewReader([]byte("RIFX\x00\x00\x00\x00WAVE")))
	assert.True(t, eris.Is(err, ErrInvalidHeader))

	_, err = Load(bytes.NewReader([]byte("RIFF")))
	assert.True(t, eris.Is(err, ErrInvalidHeader))

	_, err = Load(bytes.NewReader(buildWAV(chunk{"data", []byte{1, 2}}, fmtChunk(1, 1, 8000, 8))))
	assert.True(t, eris.Is(err, ErrDataBeforeFormat))

	_, err = Load(bytes.NewReader(buildWAV(fmtChunk(1, 6, 48000, 16), chunk{"data", []byte{1, 2}})))
	assert.True(t, eris.Is(err, ErrUnsupportedFormat))

	_, err = Load(bytes.NewReader(buildWAV(fmtChunk(3, 1, 48000, 32), chunk{"data", []byte{1, 2, 3, 4}})))
	assert.True(t, eris.Is(err, ErrUnsupportedFormat))

	_, err = Load(bytes.NewReader(buildWAV(fmtChunk(1, 1, 8000, 8))))
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	cases := []struct {
		channels, bits int
		format         int32
	}{
		{1, 8, FormatMono8},
		{1, 16, FormatMono16},
		{2, 8, FormatStereo8},
		{2, 16, FormatStereo16},
	}

	for _, c := range cases {
		format, err := Format(c.channels, c.bits)
		require.NoError(t, err)
		assert.Equal(t, c.format, format)
	}

	_, err := Format(1, 24)
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "beep.wav")
	require.NoError(t, os.WriteFile(path, buildWAV(fmtChunk(1, 1, 8000, 8), chunk{"data", []byte{128, 129}}), 0o644))

	data, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, FormatMono8, data.Format)
	assert.Equal(t, []byte{128, 129}, data.Samples)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.wav"))
	assert.Error(t, err)
}
