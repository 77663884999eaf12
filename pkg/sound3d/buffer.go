package sound3d

import (
	"github.com/rotisserie/eris"

	"github.com/ngld/knossos/packages/libopenal"
)

// Buffer holds sample data that sources can play.
type Buffer struct {
	al *libopenal.AL
	id uint32
}

func (b *Buffer) ID() uint32 {
	return b.id
}

// Configure uploads data to the buffer. format is one of the libopenal.Format* values.
func (b *Buffer) Configure(data []byte, format, frequency int32) error {
	if !b.Valid() {
		return eris.Wrap(libopenal.ErrInvalidName, "buffer has been deleted")
	}

	b.al.BufferData(b.id, format, data, frequency)
	return b.al.Check("failed to upload buffer data")
}

func (b *Buffer) BitDepth() int {
	return int(b.al.GetBufferi(b.id, libopenal.Bits))
}

func (b *Buffer) Channels() int {
	return int(b.al.GetBufferi(b.id, libopenal.Channels))
}

func (b *Buffer) Frequency() int {
	return int(b.al.GetBufferi(b.id, libopenal.Frequency))
}

// Size returns the size of the sample data in bytes.
func (b *Buffer) Size() int {
	return int(b.al.GetBufferi(b.id, libopenal.Size))
}

func (b *Buffer) Valid() bool {
	return b.id != 0 && b.al.IsBuffer(b.id)
}

// Delete frees the buffer. It fails if a source still uses it.
func (b *Buffer) Delete() error {
	if b.id == 0 {
		return nil
	}

	b.al.DeleteBuffers(b.id)
	if err := b.al.Check("failed to delete buffer"); err != nil {
		return err
	}
	b.id = 0
	return nil
}
