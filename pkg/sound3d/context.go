package sound3d

import (
	"runtime"
	"sync"

	"github.com/rotisserie/eris"

	"github.com/ngld/knossos/packages/libopenal"
)

var ErrContextDestroyed = eris.New("context has been destroyed")

// Device is an open playback device.
type Device struct {
	alc    *libopenal.ALC
	handle libopenal.Device
}

func (d *Device) Handle() libopenal.Device {
	return d.handle
}

func (d *Device) Valid() bool {
	return d != nil && d.handle != 0
}

// Close closes the device. All contexts on it have to be destroyed first.
func (d *Device) Close() error {
	if !d.Valid() {
		return nil
	}

	if !d.alc.CloseDevice(d.handle) {
		return eris.Wrap(libopenal.ErrInvalidDevice, "failed to close device")
	}
	d.handle = 0
	return nil
}

// Context is a rendering context. Only one goroutine can use it between MakeCurrent and
// Release. If the implementation supports ALC_EXT_thread_local_context the context is
// only bound to the calling OS thread, otherwise it becomes the process-wide context.
type Context struct {
	alc    *libopenal.ALC
	device *Device
	handle libopenal.Context

	lock        sync.Mutex
	threadLocal bool
}

func (c *Context) Handle() libopenal.Context {
	return c.handle
}

func (c *Context) Device() *Device {
	return c.device
}

// MakeCurrent locks the context and makes it current. Every successful call has to be
// paired with Release.
func (c *Context) MakeCurrent() error {
	c.lock.Lock()

	if c.handle == 0 {
		c.lock.Unlock()
		return ErrContextDestroyed
	}

	if c.alc.HasThreadContext() {
		runtime.LockOSThread()
		if c.alc.SetThreadContext(c.handle) {
			c.threadLocal = true
			return nil
		}
		runtime.UnlockOSThread()
	}

	if !c.alc.MakeContextCurrent(c.handle) {
		c.lock.Unlock()
		if err := c.alc.Error(c.device.handle); err != nil {
			return eris.Wrap(err, "failed to make context current")
		}
		return eris.New("failed to make context current")
	}

	c.threadLocal = false
	return nil
}

// Release unbinds the context and unlocks it.
func (c *Context) Release() error {
	defer c.lock.Unlock()

	if c.threadLocal {
		c.threadLocal = false
		ok := c.alc.SetThreadContext(0)
		runtime.UnlockOSThread()
		if !ok {
			return eris.New("failed to release thread context")
		}
		return nil
	}

	if !c.alc.MakeContextCurrent(0) {
		return eris.New("failed to release context")
	}
	return nil
}

func (c *Context) Suspend() {
	c.alc.SuspendContext(c.handle)
}

func (c *Context) Process() {
	c.alc.ProcessContext(c.handle)
}

// Destroy destroys the context. It must not be current.
func (c *Context) Destroy() {
	c.lock.Lock()
	defer c.lock.Unlock()

	if c.handle == 0 {
		return
	}

	c.alc.DestroyContext(c.handle)
	c.handle = 0
}
