// Package sound3d is a small object layer over the OpenAL bindings. Buffers, sources and
// the listener are plain handles that forward to the AL calls of the loaded library.
package sound3d

import (
	"io"

	"github.com/rotisserie/eris"

	"github.com/ngld/knossos/packages/libopenal"
	"github.com/ngld/knossos/packages/libopenal/pkg/wav"
)

// System is the entry point for the object layer.
type System struct {
	oal      *libopenal.OpenAL
	listener *Listener
}

func New(oal *libopenal.OpenAL) *System {
	return &System{
		oal:      oal,
		listener: &Listener{al: oal.AL},
	}
}

// OpenAL returns the underlying bindings.
func (s *System) OpenAL() *libopenal.OpenAL {
	return s.oal
}

// OpenDevice opens a playback device. An empty name opens the default device.
func (s *System) OpenDevice(name string) (*Device, error) {
	handle, err := s.oal.ALC.OpenDevice(name)
	if err != nil {
		return nil, err
	}

	return &Device{alc: s.oal.ALC, handle: handle}, nil
}

// CreateContext creates a context on dev. attrs may be nil.
func (s *System) CreateContext(dev *Device, attrs []int32) (*Context, error) {
	if !dev.Valid() {
		return nil, eris.Wrap(libopenal.ErrInvalidDevice, "can't create a context on a closed device")
	}

	handle, err := s.oal.ALC.CreateContext(dev.handle, attrs)
	if err != nil {
		return nil, err
	}

	return &Context{alc: s.oal.ALC, device: dev, handle: handle}, nil
}

// CurrentContext returns the handle of the context that is current for the calling
// thread (or the process if no thread-local context is set).
func (s *System) CurrentContext() libopenal.Context {
	if ctx := s.oal.ALC.GetThreadContext(); ctx != 0 {
		return ctx
	}
	return s.oal.ALC.GetCurrentContext()
}

// GenerateBuffers creates n buffers in the current context.
func (s *System) GenerateBuffers(n int) ([]*Buffer, error) {
	ids := s.oal.AL.GenBuffers(n)
	if err := s.oal.AL.Check("failed to generate buffers"); err != nil {
		return nil, err
	}

	buffers := make([]*Buffer, n)
	for idx, id := range ids {
		buffers[idx] = &Buffer{al: s.oal.AL, id: id}
	}
	return buffers, nil
}

// GenerateSources creates n sources in the current context.
func (s *System) GenerateSources(n int) ([]*Source, error) {
	ids := s.oal.AL.GenSources(n)
	if err := s.oal.AL.Check("failed to generate sources"); err != nil {
		return nil, err
	}

	sources := make([]*Source, n)
	for idx, id := range ids {
		sources[idx] = &Source{al: s.oal.AL, id: id}
	}
	return sources, nil
}

// GenerateSource creates a single source and attaches buf to it if buf isn't nil.
func (s *System) GenerateSource(buf *Buffer) (*Source, error) {
	sources, err := s.GenerateSources(1)
	if err != nil {
		return nil, err
	}

	src := sources[0]
	if buf != nil {
		if err := src.SetBuffer(buf); err != nil {
			src.Delete()
			return nil, err
		}
	}
	return src, nil
}

// LoadBuffer decodes the WAV file at path into a new buffer.
func (s *System) LoadBuffer(path string) (*Buffer, error) {
	data, err := wav.LoadFile(path)
	if err != nil {
		return nil, err
	}

	return s.bufferFrom(data)
}

// LoadBufferFrom decodes a WAV stream into a new buffer.
func (s *System) LoadBufferFrom(r io.Reader) (*Buffer, error) {
	data, err := wav.Load(r)
	if err != nil {
		return nil, err
	}

	return s.bufferFrom(data)
}

// LoadSource decodes the WAV file at path and returns a source playing from it.
func (s *System) LoadSource(path string) (*Source, error) {
	buf, err := s.LoadBuffer(path)
	if err != nil {
		return nil, err
	}

	src, err := s.GenerateSource(buf)
	if err != nil {
		buf.Delete()
		return nil, err
	}
	return src, nil
}

func (s *System) bufferFrom(data *wav.Data) (*Buffer, error) {
	buffers, err := s.GenerateBuffers(1)
	if err != nil {
		return nil, err
	}

	buf := buffers[0]
	if err := buf.Configure(data.Samples, data.Format, data.Frequency); err != nil {
		buf.Delete()
		return nil, err
	}
	return buf, nil
}

// Listener returns the listener of the current context.
func (s *System) Listener() *Listener {
	return s.listener
}

// CheckError returns the pending ALC error of dev (or AL error if dev is nil) wrapped
// with prefix.
func (s *System) CheckError(dev *Device, prefix string) error {
	var err error
	if dev != nil {
		err = s.oal.ALC.Error(dev.handle)
	} else {
		err = s.oal.AL.Error()
	}

	if err != nil {
		return eris.Wrap(err, prefix)
	}
	return nil
}
