package core

import (
	"github.com/chewxy/math32"
)

// componentCount is the number of components in a Vec3
const componentCount = 3

// Vec3 represents a point, a direction or an RGB color.
// Components are single precision; X/Y/Z double as R/G/B.
type Vec3 struct {
	X, Y, Z float32
}

// NewVec3 creates a new Vec3
func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Subtract returns the difference of two vectors
func (v Vec3) Subtract(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Multiply returns the vector scaled by a scalar
func (v Vec3) Multiply(scalar float32) Vec3 {
	return Vec3{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// Scale returns v scaled by s. It is the scalar-first form of Multiply.
func Scale(s float32, v Vec3) Vec3 {
	return Vec3{s * v.X, s * v.Y, s * v.Z}
}

// MultiplyVec returns component-wise multiplication of two vectors
func (v Vec3) MultiplyVec(other Vec3) Vec3 {
	return Vec3{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
	}
}

// Divide returns the vector divided by a scalar.
// A zero divisor yields IEEE infinities or NaN.
func (v Vec3) Divide(scalar float32) Vec3 {
	return Vec3{v.X / scalar, v.Y / scalar, v.Z / scalar}
}

// Dot returns the dot product of two vectors
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product of two vectors
func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the magnitude of the vector
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// UnitVector divides every component by the component count (3).
// This is not a normalization; rendered reference images depend on it.
// Use Normalize for a true unit vector.
func UnitVector(v Vec3) Vec3 {
	return v.Divide(componentCount)
}

// Normalize returns a unit vector in the same direction
func Normalize(v Vec3) Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{0, 0, 0}
	}
	return v.Divide(length)
}

// UnitFunc maps a vector to its "unit" form. UnitVector and Normalize both satisfy it.
type UnitFunc func(Vec3) Vec3

// Lerp linearly interpolates between a and b: (1-t)*a + t*b
func Lerp(a, b Vec3, t float32) Vec3 {
	return Scale(1-t, a).Add(Scale(t, b))
}

// IsFinite reports whether all components are finite
func (v Vec3) IsFinite() bool {
	for _, c := range [componentCount]float32{v.X, v.Y, v.Z} {
		if math32.IsNaN(c) || math32.IsInf(c, 0) {
			return false
		}
	}
	return true
}
