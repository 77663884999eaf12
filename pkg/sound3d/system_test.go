package sound3d

import (
	"bytes"
	"context"
	"encoding/binary"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngld/knossos/packages/libopenal"
)

func setupOrSkip(t *testing.T) (*System, *Context) {
	t.Helper()

	oal, err := libopenal.Load(context.Background(), libopenal.Options{PreferSystem: true})
	if err != nil {
		t.Skipf("OpenAL not available: %s", eris.ToString(err, false))
	}
	t.Cleanup(func() {
		oal.Close()
	})

	sys := New(oal)
	dev, err := sys.OpenDevice("")
	if err != nil {
		t.Skipf("no playback device: %s", err)
	}
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

	return sys, ctx
}

func silentWAV(samples int) []byte {
	buf := new(bytes.Buffer)
	size := uint32(samples * 2)

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+size)
	buf.WriteString("WAVEfmt ")
	for _, field := range []interface{}{
		uint32(16), uint16(1), uint16(1), uint32(22050), uint32(44100), uint16(2), uint16(16),
	} {
		binary.Write(buf, binary.LittleEndian, field)
	}
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, size)
	buf.Write(make([]byte, size))
	return buf.Bytes()
}

func TestContextLifecycle(t *testing.T) {
	sys, ctx := setupOrSkip(t)
	checkContextLifecycle(t, sys, ctx)
}

func checkContextLifecycle(t *testing.T, sys *System, ctx *Context) {
	assert.Equal(t, ctx.Handle(), sys.CurrentContext())
	assert.True(t, ctx.Device().Valid())
	assert.NoError(t, sys.CheckError(ctx.Device(), "context setup"))
}

func TestBufferAndSource(t *testing.T) {
	sys, _ := setupOrSkip(t)
	checkBufferAndSource(t, sys)
}

func checkBufferAndSource(t *testing.T, sys *System) {
	buf, err := sys.LoadBufferFrom(bytes.NewReader(silentWAV(2205)))
	require.NoError(t, err)
	assert.True(t, buf.Valid())
	assert.Equal(t, 16, buf.BitDepth())
	assert.Equal(t, 1, buf.Channels())
	assert.Equal(t, 22050, buf.Frequency())
	assert.Equal(t, 4410, buf.Size())

	src, err := sys.GenerateSource(buf)
	require.NoError(t, err)

	src.SetPosition(Vec3f{1, 2, 3})
	assert.Equal(t, Vec3f{1, 2, 3}, src.Position())
	src.SetGain(0.5)
	assert.Equal(t, float32(0.5), src.Gain())
	src.SetLooping(true)
	assert.True(t, src.Looping())
	src.SetRelative(true)
	assert.True(t, src.Relative())
	assert.Equal(t, int32(libopenal.Initial), src.State())

	src.Delete()
	assert.NoError(t, buf.Delete())
	assert.False(t, buf.Valid())
	assert.NoError(t, sys.CheckError(nil, "cleanup"))
}

func TestListener(t *testing.T) {
	sys, _ := setupOrSkip(t)
	checkListener(t, sys)
}

func checkListener(t *testing.T, sys *System) {
	l := sys.Listener()
	l.SetPosition(Vec3f{0, 1, 0})
	assert.Equal(t, Vec3f{0, 1, 0}, l.Position())

	l.SetOrientation(Vec3f{0, 0, -1}, Vec3f{0, 1, 0})
	at, up := l.Orientation()
	assert.Equal(t, Vec3f{0, 0, -1}, at)
	assert.Equal(t, Vec3f{0, 1, 0}, up)
}
