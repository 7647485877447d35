package geom

import "github.com/chewxy/math32"

// Vec3 is a 3D vector or point. Y is up.
// Kept separate from rl.Vector3 so the simulation packages build and test without a window.
type Vec3 struct {
	X, Y, Z float32
}

// Up is the world up axis.
var Up = Vec3{0, 1, 0}

// V returns a Vec3 from components.
func V(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// FromArray converts a config-style [3]float32 to a Vec3.
func FromArray(a [3]float32) Vec3 {
	return Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// Array returns v as [3]float32 (the layout the primitives registry and config use).
func (v Vec3) Array() [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float32 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns v × o (right-handed).
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// RotateAxis rotates v by angle radians around the unit vector axis (Rodrigues' formula).
func (v Vec3) RotateAxis(axis Vec3, angle float32) Vec3 {
	k := axis.Normalize()
	sin, cos := math32.Sincos(angle)
	// v·cos + (k×v)·sin + k(k·v)(1−cos)
	return v.Scale(cos).
		Add(k.Cross(v).Scale(sin)).
		Add(k.Scale(k.Dot(v) * (1 - cos)))
}

// AngleTo returns the unsigned angle between v and o in radians, in [0, π].
func (v Vec3) AngleTo(o Vec3) float32 {
	l := v.Length() * o.Length()
	if l == 0 {
		return 0
	}
	return math32.Acos(Clamp(v.Dot(o)/l, -1, 1))
}

// ApproxEqual reports whether every component of v and o differs by at most eps.
func (v Vec3) ApproxEqual(o Vec3, eps float32) bool {
	return math32.Abs(v.X-o.X) <= eps && math32.Abs(v.Y-o.Y) <= eps && math32.Abs(v.Z-o.Z) <= eps
}

// Clamp limits f to [lo, hi].
func Clamp(f, lo, hi float32) float32 {
	return max(lo, min(hi, f))
}
