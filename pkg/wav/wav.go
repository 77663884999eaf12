// Package wav decodes uncompressed PCM WAVE files into data OpenAL can buffer directly.
package wav

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/rotisserie/eris"
)

// Values of AL_FORMAT_*. They are repeated here to keep this package free of the
// native bindings.
const (
	FormatMono8    int32 = 0x1100
	FormatMono16   int32 = 0x1101
	FormatStereo8  int32 = 0x1102
	FormatStereo16 int32 = 0x1103
)

var (
	ErrInvalidHeader     = eris.New("invalid WAV header")
	ErrUnsupportedFormat = eris.New("unsupported WAV format")
	ErrDataBeforeFormat  = eris.New("WAV fmt chunks must be before data chunks")
)

const (
	chunkRIFF = "RIFF"
	chunkWAVE = "WAVE"
	chunkFmt  = "fmt "
	chunkData = "data"

	formatPCM = 1
)

// Data holds decoded samples in native byte order.
type Data struct {
	Samples       []byte
	Format        int32
	Frequency     int32
	Channels      int
	BitsPerSample int
}

type formatChunk struct {
	Compression   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// LoadFile decodes the WAV file at path.
func LoadFile(path string) (*Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to open %s", path)
	}
	defer f.Close()

	data, err := Load(f)
	if err != nil {
		return nil, eris.Wrapf(err, "failed to decode %s", path)
	}

	return data, nil
}

// Load decodes a WAV stream. Chunks other than "fmt " and "data" are skipped.
func Load(r io.Reader) (*Data, error) {
	br := bufio.NewReader(r)

	var header [12]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, eris.Wrap(ErrInvalidHeader, err.Error())
	}
	if string(header[0:4]) != chunkRIFF || string(header[8:12]) != chunkWAVE {
		return nil, ErrInvalidHeader
	}

	var (
		fmtChunk formatChunk
		foundFmt bool
	)

	for {
		var chunkHeader [8]byte
		if _, err := io.ReadFull(br, chunkHeader[:]); err != nil {
			return nil, eris.Wrap(err, "failed to read chunk header")
		}

		id := string(chunkHeader[0:4])
		length := binary.LittleEndian.Uint32(chunkHeader[4:8])

		switch id {
		case chunkFmt:
			if length < 16 {
				return nil, eris.Wrapf(ErrInvalidHeader, "fmt chunk is only %d bytes long", length)
			}

			if err := binary.Read(br, binary.LittleEndian, &fmtChunk); err != nil {
				return nil, eris.Wrap(err, "failed to read fmt chunk")
			}
			if err := skip(br, int64(length)-16+int64(length&1)); err != nil {
				return nil, err
			}
			foundFmt = true
		case chunkData:
			if !foundFmt {
				return nil, ErrDataBeforeFormat
			}

			return decode(br, fmtChunk, length)
		default:
			// chunks are word aligned
			if err := skip(br, int64(length)+int64(length&1)); err != nil {
				return nil, err
			}
		}
	}
}

func decode(r io.Reader, info formatChunk, length uint32) (*Data, error) {
	if info.Compression != formatPCM {
		return nil, eris.Wrapf(ErrUnsupportedFormat, "compression %d", info.Compression)
	}

	format, err := Format(int(info.Channels), int(info.BitsPerSample))
	if err != nil {
		return nil, err
	}

	// The chunk length is only an upper bound. Streamed files often claim 0xFFFFFFFF.
	samples, err := io.ReadAll(io.LimitReader(r, int64(length)))
	if err != nil {
		return nil, eris.Wrap(err, "failed to read samples")
	}

	// Truncated data chunks are accepted, partial frames are dropped.
	frameSize := int(info.Channels) * int(info.BitsPerSample) / 8
	samples = samples[:len(samples)-len(samples)%frameSize]

	if info.BitsPerSample == 16 && !littleEndianHost() {
		swap16(samples)
	}

	return &Data{
		Samples:       samples,
		Format:        format,
		Frequency:     int32(info.SampleRate),
		Channels:      int(info.Channels),
		BitsPerSample: int(info.BitsPerSample),
	}, nil
}

// Format returns the AL buffer format for the given layout.
func Format(channels, bits int) (int32, error) {
	switch {
	case channels == 1 && bits == 8:
		return FormatMono8, nil
	case channels == 1 && bits == 16:
		return FormatMono16, nil
	case channels == 2 && bits == 8:
		return FormatStereo8, nil
	case channels == 2 && bits == 16:
		return FormatStereo16, nil
	}

	return 0, eris.Wrapf(ErrUnsupportedFormat, "%d channels with %d bits per sample", channels, bits)
}

func skip(r io.Reader, n int64) error {
	if n <= 0 {
		return nil
	}

	_, err := io.CopyN(io.Discard, r, n)
	if err != nil {
		return eris.Wrap(err, "failed to skip chunk")
	}
	return nil
}

func littleEndianHost() bool {
	var probe [2]byte
	binary.NativeEndian.PutUint16(probe[:], 1)
	return probe[0] == 1
}

func swap16(samples []byte) {
	for i := 0; i+1 < len(samples); i += 2 {
		samples[i], samples[i+1] = samples[i+1], samples[i]
	}
}
