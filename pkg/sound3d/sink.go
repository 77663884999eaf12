package sound3d

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
)

var ErrSinkFull = eris.New("all sink buffers are queued")

// SinkOptions configures a Sink. Zero values pick the defaults.
type SinkOptions struct {
	// Format is the buffer format of the data passed to Enqueue (see libopenal.AL.Format).
	Format    int32
	Frequency int32

	// InitialBuffers are allocated up front (default 4). When they're all queued the pool
	// grows by GrowBy (default 2) up to MaxBuffers (default 32).
	InitialBuffers int
	GrowBy         int
	MaxBuffers     int

	// PollInterval is how often a blocked Enqueue checks for played buffers (default 10ms).
	PollInterval time.Duration
}

func (o *SinkOptions) applyDefaults() error {
	if o.Format == 0 {
		return eris.New("sink needs a buffer format")
	}
	if o.Frequency <= 0 {
		return eris.Errorf("invalid sink frequency %d", o.Frequency)
	}

	if o.InitialBuffers <= 0 {
		o.InitialBuffers = 4
	}
	if o.GrowBy <= 0 {
		o.GrowBy = 2
	}
	if o.MaxBuffers <= 0 {
		o.MaxBuffers = 32
	}
	if o.MaxBuffers < o.InitialBuffers {
		o.MaxBuffers = o.InitialBuffers
	}
	if o.PollInterval <= 0 {
		o.PollInterval = 10 * time.Millisecond
	}
	return nil
}

// Sink streams sample data through a single source. Data is copied into a pool of
// buffers which is recycled once the source has played them.
//
// A Sink is not safe for concurrent use and needs its context to be current.
type Sink struct {
	sys  *System
	src  *Source
	opts SinkOptions

	buffers []*Buffer
	free    []*Buffer
	sizes   map[*Buffer]int
	bytes   int
}

// NewSink creates a streaming source with its buffer pool in the current context.
func (s *System) NewSink(opts SinkOptions) (*Sink, error) {
	if err := opts.applyDefaults(); err != nil {
		return nil, err
	}

	src, err := s.GenerateSource(nil)
	if err != nil {
		return nil, eris.Wrap(err, "failed to create sink source")
	}

	sink := &Sink{
		sys:   s,
		src:   src,
		opts:  opts,
		sizes: make(map[*Buffer]int),
	}

	if err := sink.grow(opts.InitialBuffers); err != nil {
		src.Delete()
		return nil, err
	}
	return sink, nil
}

func (s *Sink) grow(n int) error {
	buffers, err := s.sys.GenerateBuffers(n)
	if err != nil {
		return eris.Wrap(err, "failed to grow sink")
	}

	s.buffers = append(s.buffers, buffers...)
	s.free = append(s.free, buffers...)
	return nil
}

// reclaim moves every processed buffer back into the free pool.
func (s *Sink) reclaim() error {
	processed := s.src.BuffersProcessed()
	if processed == 0 {
		return nil
	}

	buffers, err := s.src.UnqueueBuffers(processed)
	if err != nil {
		return err
	}

	for _, buf := range buffers {
		s.bytes -= s.sizes[buf]
		delete(s.sizes, buf)
		s.free = append(s.free, buf)
	}
	return nil
}

// nextFree returns an unused buffer. It grows the pool if it's exhausted and waits for
// the source to finish a buffer once the pool is at its limit. Waiting only makes sense
// while the source is playing; otherwise ErrSinkFull is returned.
func (s *Sink) nextFree(ctx context.Context) (*Buffer, error) {
	for {
		if len(s.free) > 0 {
			buf := s.free[len(s.free)-1]
			s.free = s.free[:len(s.free)-1]
			return buf, nil
		}

		if len(s.buffers) < s.opts.MaxBuffers {
			n := s.opts.GrowBy
			if left := s.opts.MaxBuffers - len(s.buffers); n > left {
				n = left
			}
			if err := s.grow(n); err != nil {
				return nil, err
			}
			continue
		}

		if !s.src.Playing() {
			return nil, ErrSinkFull
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.opts.PollInterval):
		}

		if err := s.reclaim(); err != nil {
			return nil, err
		}
	}
}

// Enqueue appends data to the stream. It blocks while the pool is exhausted and the
// source is playing.
func (s *Sink) Enqueue(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return nil
	}

	if err := s.reclaim(); err != nil {
		return err
	}

	buf, err := s.nextFree(ctx)
	if err != nil {
		return err
	}

	if err := buf.Configure(data, s.opts.Format, s.opts.Frequency); err != nil {
		s.free = append(s.free, buf)
		return err
	}

	if err := s.src.QueueBuffers(buf); err != nil {
		s.free = append(s.free, buf)
		return err
	}

	s.sizes[buf] = len(data)
	s.bytes += len(data)
	return nil
}

// Play starts the source if anything is queued. Calling it after the source ran dry
// resumes the stream.
func (s *Sink) Play() {
	if len(s.sizes) > 0 && !s.src.Playing() {
		s.src.Play()
	}
}

func (s *Sink) Pause() {
	s.src.Pause()
}

func (s *Sink) Stop() {
	s.src.Stop()
}

func (s *Sink) Playing() bool {
	return s.src.Playing()
}

// Flush stops playback and drops everything that's still queued.
func (s *Sink) Flush() error {
	s.src.Stop()
	return s.reclaim()
}

// QueuedBuffers returns the number of buffers the source hasn't given back yet.
func (s *Sink) QueuedBuffers() int {
	return len(s.sizes)
}

// QueuedBytes returns the size of the data that hasn't been reclaimed yet. Played
// buffers are only reclaimed by Enqueue and Flush.
func (s *Sink) QueuedBytes() int {
	return s.bytes
}

func (s *Sink) FreeBuffers() int {
	return len(s.free)
}

// Buffers returns the size of the pool.
func (s *Sink) Buffers() int {
	return len(s.buffers)
}

func (s *Sink) SetGain(value float32) {
	s.src.SetGain(value)
}

func (s *Sink) Gain() float32 {
	return s.src.Gain()
}

func (s *Sink) Source() *Source {
	return s.src
}

// Destroy deletes the source and the buffer pool.
func (s *Sink) Destroy() error {
	s.src.Delete()

	var firstErr error
	for _, buf := range s.buffers {
		if err := buf.Delete(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	s.buffers = nil
	s.free = nil
	s.sizes = make(map[*Buffer]int)
	s.bytes = 0
	return firstErr
}
