//go:build darwin || (linux && (amd64 || arm64))

package sound3d

import (
	"context"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngld/knossos/packages/libopenal"
	"github.com/ngld/knossos/packages/libopenal/internal/fakeal"
)

// setupFake binds a fresh fake implementation and makes a context on its default device
// current.
func setupFake(t *testing.T) (*System, *Context, *fakeal.Library) {
	t.Helper()

	fake := fakeal.New()
	oal, err := libopenal.Bind(context.Background(), fake)
	require.NoError(t, err)
	t.Cleanup(func() {
		oal.Close()
	})

	sys := New(oal)
	dev, err := sys.OpenDevice("")
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, dev.Close())
	})

	ctx, err := sys.CreateContext(dev, nil)
	require.NoError(t, err)
	t.Cleanup(ctx.Destroy)

	require.NoError(t, ctx.MakeCurrent())
	t.Cleanup(func() {
		assert.NoError(t, ctx.Release())
	})

	return sys, ctx, fake
}

func TestContextLifecycleFake(t *testing.T) {
	sys, ctx, fake := setupFake(t)
	checkContextLifecycle(t, sys, ctx)
	assert.Equal(t, uintptr(ctx.Handle()), fake.CurrentContext())
}

func TestBufferAndSourceFake(t *testing.T) {
	sys, _, _ := setupFake(t)
	checkBufferAndSource(t, sys)
}

func TestListenerFake(t *testing.T) {
	sys, _, _ := setupFake(t)
	checkListener(t, sys)
}

func TestThreadLocalContextFake(t *testing.T) {
	fake := fakeal.New()
	fake.ALCExtensions = append(fake.ALCExtensions, libopenal.ExtThreadLocalContext)
	oal, err := libopenal.Bind(context.Background(), fake)
	require.NoError(t, err)
	defer oal.Close()

	sys := New(oal)
	dev, err := sys.OpenDevice("rear")
	require.NoError(t, err)
	ctx, err := sys.CreateContext(dev, []int32{libopenal.ALCFrequency, 48000})
	require.NoError(t, err)

	require.NoError(t, ctx.MakeCurrent())
	assert.Equal(t, uintptr(ctx.Handle()), fake.ThreadContext())
	assert.Equal(t, uintptr(0), fake.CurrentContext())
	assert.Equal(t, ctx.Handle(), sys.CurrentContext())
	require.NoError(t, ctx.Release())
	assert.Equal(t, uintptr(0), fake.ThreadContext())

	ctx.Destroy()
	assert.True(t, eris.Is(ctx.MakeCurrent(), ErrContextDestroyed))
	assert.NoError(t, dev.Close())
	assert.False(t, dev.Valid())
}

func TestCreateContextOnClosedDevice(t *testing.T) {
	sys, _, _ := setupFake(t)

	dev, err := sys.OpenDevice("rear")
	require.NoError(t, err)
	require.NoError(t, dev.Close())

	_, err = sys.CreateContext(dev, nil)
	assert.True(t, eris.Is(err, libopenal.ErrInvalidDevice))
}

func queueTestBuffers(t *testing.T, sys *System, n int) []*Buffer {
	t.Helper()

	buffers, err := sys.GenerateBuffers(n)
	require.NoError(t, err)
	for _, buf := range buffers {
		require.NoError(t, buf.Configure(make([]byte, 64), libopenal.FormatMono16, 8000))
	}
	return buffers
}

func TestUnqueueBuffersReturnsQueuedHandles(t *testing.T) {
	sys, _, fake := setupFake(t)

	buffers := queueTestBuffers(t, sys, 3)
	ids := []uint32{buffers[0].ID(), buffers[1].ID(), buffers[2].ID()}

	src, err := sys.GenerateSource(nil)
	require.NoError(t, err)
	require.NoError(t, src.QueueBuffers(buffers...))
	assert.Equal(t, 3, src.BuffersQueued())

	src.Play()
	fake.Process(src.ID(), 2)
	assert.Equal(t, 2, src.BuffersProcessed())

	played, err := src.UnqueueBuffers(2)
	require.NoError(t, err)
	require.Len(t, played, 2)
	assert.Same(t, buffers[0], played[0])
	assert.Same(t, buffers[1], played[1])

	// no handle changed its name
	assert.Equal(t, ids, []uint32{buffers[0].ID(), buffers[1].ID(), buffers[2].ID()})
	assert.Equal(t, 1, src.BuffersQueued())

	// the last buffer hasn't been played yet
	_, err = src.UnqueueBuffers(1)
	assert.True(t, eris.Is(err, libopenal.ErrInvalidValue))
	assert.Equal(t, 1, src.BuffersQueued())

	out, err := src.UnqueueBuffers(0)
	assert.NoError(t, err)
	assert.Empty(t, out)

	// requeued buffers come back as the same objects, in queue order
	require.NoError(t, src.QueueBuffers(played...))
	src.Stop()
	out, err = src.UnqueueBuffers(3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Same(t, buffers[2], out[0])
	assert.Same(t, buffers[0], out[1])
	assert.Same(t, buffers[1], out[2])
}

func TestUnqueueBuffersQueuedElsewhere(t *testing.T) {
	sys, _, fake := setupFake(t)

	buffers := queueTestBuffers(t, sys, 1)
	src, err := sys.GenerateSource(nil)
	require.NoError(t, err)

	// queued behind the object layer's back
	sys.OpenAL().AL.SourceQueueBuffers(src.ID(), buffers[0].ID())
	src.Play()
	fake.Process(src.ID(), 1)

	out, err := src.UnqueueBuffers(1)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.NotSame(t, buffers[0], out[0])
	assert.Equal(t, buffers[0].ID(), out[0].ID())
}

func TestSetBufferWhilePlaying(t *testing.T) {
	sys, _, _ := setupFake(t)

	buffers := queueTestBuffers(t, sys, 2)
	src, err := sys.GenerateSource(buffers[0])
	require.NoError(t, err)
	src.Play()
	require.True(t, src.Playing())

	err = src.SetBuffer(buffers[1])
	assert.True(t, eris.Is(err, libopenal.ErrInvalidOperation))

	// a queued buffer can't be deleted
	assert.True(t, eris.Is(buffers[0].Delete(), libopenal.ErrInvalidOperation))
	assert.NotZero(t, buffers[0].ID())

	src.Pause()
	assert.Equal(t, int32(libopenal.Paused), src.State())
	src.Rewind()
	assert.Equal(t, int32(libopenal.Initial), src.State())
	require.NoError(t, src.SetBuffer(nil))
	assert.Equal(t, 0, src.BuffersQueued())
}
