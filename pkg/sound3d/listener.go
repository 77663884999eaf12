package sound3d

import (
	"github.com/ngld/knossos/packages/libopenal"
)

// Listener is the receiver of the current context. There is exactly one per context so
// every call affects whichever context is current.
type Listener struct {
	al *libopenal.AL
}

func (l *Listener) Gain() float32 {
	return l.al.GetListenerf(libopenal.Gain)
}

func (l *Listener) SetGain(value float32) {
	l.al.Listenerf(libopenal.Gain, value)
}

func (l *Listener) Position() Vec3f {
	return vec3(l.al.GetListener3f(libopenal.Position))
}

func (l *Listener) SetPosition(v Vec3f) {
	l.al.Listener3f(libopenal.Position, v.X, v.Y, v.Z)
}

func (l *Listener) Velocity() Vec3f {
	return vec3(l.al.GetListener3f(libopenal.Velocity))
}

func (l *Listener) SetVelocity(v Vec3f) {
	l.al.Listener3f(libopenal.Velocity, v.X, v.Y, v.Z)
}

// Orientation returns the "at" and "up" vectors.
func (l *Listener) Orientation() (at, up Vec3f) {
	values := l.al.GetListenerfv(libopenal.Orientation, 6)
	return Vec3f{values[0], values[1], values[2]}, Vec3f{values[3], values[4], values[5]}
}

func (l *Listener) SetOrientation(at, up Vec3f) {
	l.al.Listenerfv(libopenal.Orientation, orientation(at, up))
}

func orientation(at, up Vec3f) []float32 {
	return []float32{at.X, at.Y, at.Z, up.X, up.Y, up.Z}
}
