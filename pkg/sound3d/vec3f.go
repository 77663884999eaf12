package sound3d

import (
	"fmt"
	"math"
)

// Vec3f is a position, velocity or direction in OpenAL's right-handed coordinate system.
type Vec3f struct {
	X, Y, Z float32
}

func vec3(x, y, z float32) Vec3f {
	return Vec3f{x, y, z}
}

func (v Vec3f) Add(o Vec3f) Vec3f {
	return Vec3f{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3f) Sub(o Vec3f) Vec3f {
	return Vec3f{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3f) Scale(f float32) Vec3f {
	return Vec3f{v.X * f, v.Y * f, v.Z * f}
}

func (v Vec3f) Dot(o Vec3f) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3f) Cross(o Vec3f) Vec3f {
	return Vec3f{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3f) Length() float32 {
	return float32(math.Sqrt(float64(v.Dot(v))))
}

// Normalize returns v scaled to length 1. The zero vector is returned unchanged.
func (v Vec3f) Normalize() Vec3f {
	length := v.Length()
	if length == 0 {
		return v
	}
	return v.Scale(1 / length)
}

func (v Vec3f) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
