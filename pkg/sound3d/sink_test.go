//go:build darwin || (linux && (amd64 || arm64))

package sound3d

import (
	"context"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngld/knossos/packages/libopenal"
)

func newTestSink(t *testing.T, sys *System) *Sink {
	t.Helper()

	sink, err := sys.NewSink(SinkOptions{
		Format:         libopenal.FormatMono16,
		Frequency:      8000,
		InitialBuffers: 1,
		GrowBy:         2,
		MaxBuffers:     3,
		PollInterval:   time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, sink.Destroy())
	})

	return sink
}

func TestSinkOptions(t *testing.T) {
	sys, _, _ := setupFake(t)

	_, err := sys.NewSink(SinkOptions{Frequency: 8000})
	assert.Error(t, err)
	_, err = sys.NewSink(SinkOptions{Format: libopenal.FormatMono8})
	assert.Error(t, err)

	sink, err := sys.NewSink(SinkOptions{Format: libopenal.FormatMono8, Frequency: 8000})
	require.NoError(t, err)
	defer sink.Destroy()

	assert.Equal(t, 4, sink.Buffers())
	assert.Equal(t, 4, sink.FreeBuffers())
	assert.Equal(t, 32, sink.opts.MaxBuffers)
	assert.Equal(t, 10*time.Millisecond, sink.opts.PollInterval)
}

func TestSinkGrowsUpToLimit(t *testing.T) {
	sys, _, fake := setupFake(t)
	sink := newTestSink(t, sys)
	ctx := context.Background()

	assert.Equal(t, 1, sink.Buffers())
	for i := 0; i < 3; i++ {
		require.NoError(t, sink.Enqueue(ctx, make([]byte, 100)))
	}

	assert.Equal(t, 3, sink.Buffers())
	assert.Equal(t, 3, sink.QueuedBuffers())
	assert.Equal(t, 300, sink.QueuedBytes())
	assert.Len(t, fake.Source(sink.Source().ID()).Queue, 3)

	// nothing is playing so nothing will ever free up
	err := sink.Enqueue(ctx, make([]byte, 100))
	assert.True(t, eris.Is(err, ErrSinkFull))
	assert.Equal(t, 0, sink.FreeBuffers())

	assert.NoError(t, sink.Enqueue(ctx, nil))
}

func TestSinkRecyclesPlayedBuffers(t *testing.T) {
	sys, _, fake := setupFake(t)
	sink := newTestSink(t, sys)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, sink.Enqueue(ctx, make([]byte, 100)))
	}
	sink.Play()
	require.True(t, sink.Playing())

	fake.Process(sink.Source().ID(), 2)
	require.NoError(t, sink.Enqueue(ctx, make([]byte, 50)))

	assert.Equal(t, 3, sink.Buffers())
	assert.Equal(t, 2, sink.QueuedBuffers())
	assert.Equal(t, 150, sink.QueuedBytes())
	assert.Equal(t, 1, sink.FreeBuffers())

	src := fake.Source(sink.Source().ID())
	assert.Len(t, src.Queue, 2)
	assert.Len(t, fake.Buffer(src.Queue[1]).Data, 50)
}

func TestSinkWaitsWhilePlaying(t *testing.T) {
	sys, _, fake := setupFake(t)
	sink := newTestSink(t, sys)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	for i := 0; i < 3; i++ {
		require.NoError(t, sink.Enqueue(ctx, make([]byte, 100)))
	}
	sink.Play()

	go func() {
		time.Sleep(20 * time.Millisecond)
		fake.Process(sink.Source().ID(), 1)
	}()

	require.NoError(t, sink.Enqueue(ctx, make([]byte, 100)))
	assert.Equal(t, 3, sink.QueuedBuffers())
	assert.Equal(t, 3, sink.Buffers())
}

func TestSinkWaitHonorsContext(t *testing.T) {
	sys, _, _ := setupFake(t)
	sink := newTestSink(t, sys)

	for i := 0; i < 3; i++ {
		require.NoError(t, sink.Enqueue(context.Background(), make([]byte, 100)))
	}
	sink.Play()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := sink.Enqueue(ctx, make([]byte, 100))
	assert.True(t, eris.Is(err, context.DeadlineExceeded))
	assert.Equal(t, 3, sink.QueuedBuffers())
}

func TestSinkResumesAfterUnderrun(t *testing.T) {
	sys, _, fake := setupFake(t)
	sink := newTestSink(t, sys)
	ctx := context.Background()

	require.NoError(t, sink.Enqueue(ctx, make([]byte, 100)))
	sink.Play()

	// the source ran dry and stopped on its own
	fake.Process(sink.Source().ID(), 1)
	assert.False(t, sink.Playing())

	require.NoError(t, sink.Enqueue(ctx, make([]byte, 100)))
	assert.Equal(t, 1, sink.QueuedBuffers())
	assert.Equal(t, 1, sink.Buffers())

	sink.Play()
	assert.True(t, sink.Playing())
}

func TestSinkFlush(t *testing.T) {
	sys, _, fake := setupFake(t)
	sink := newTestSink(t, sys)
	ctx := context.Background()

	require.NoError(t, sink.Enqueue(ctx, make([]byte, 100)))
	require.NoError(t, sink.Enqueue(ctx, make([]byte, 100)))
	sink.Play()
	sink.SetGain(0.25)
	assert.Equal(t, float32(0.25), sink.Gain())

	require.NoError(t, sink.Flush())
	assert.False(t, sink.Playing())
	assert.Equal(t, 0, sink.QueuedBuffers())
	assert.Equal(t, 0, sink.QueuedBytes())
	assert.Equal(t, sink.Buffers(), sink.FreeBuffers())
	assert.Empty(t, fake.Source(sink.Source().ID()).Queue)
}

func TestSinkDestroy(t *testing.T) {
	sys, _, fake := setupFake(t)

	sink, err := sys.NewSink(SinkOptions{Format: libopenal.FormatStereo16, Frequency: 44100, InitialBuffers: 2})
	require.NoError(t, err)
	require.NoError(t, sink.Enqueue(context.Background(), make([]byte, 64)))
	sink.Play()

	assert.Equal(t, 2, fake.BufferCount())
	assert.Equal(t, 1, fake.SourceCount())

	require.NoError(t, sink.Destroy())
	assert.Equal(t, 0, fake.BufferCount())
	assert.Equal(t, 0, fake.SourceCount())
	assert.Equal(t, 0, sink.Buffers())
}
