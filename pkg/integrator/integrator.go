package integrator

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
)

// Integrator computes the color seen along a ray
type Integrator interface {
	RayColor(ray core.Ray) core.Vec3
}

// IntegratorFunc adapts a plain function to the Integrator interface
type IntegratorFunc func(ray core.Ray) core.Vec3

// RayColor calls f(ray)
func (f IntegratorFunc) RayColor(ray core.Ray) core.Vec3 {
	return f(ray)
}

// Fixed scene contents
var (
	white   = core.NewVec3(1.0, 1.0, 1.0) // horizon end of the sky gradient
	skyBlue = core.NewVec3(0.5, 0.7, 1.0) // zenith end of the sky gradient
	red     = core.NewVec3(1.0, 0.0, 0.0) // flat sphere color

	defaultSphere = geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5)
)

// DefaultSphere returns the sphere every sphere scene renders
func DefaultSphere() geometry.Sphere {
	return defaultSphere
}

// Shader holds the knobs the shading routines depend on.
// The zero value reproduces the reference images.
type Shader struct {
	// Unit maps directions and normals to their unit form; nil means core.UnitVector
	Unit core.UnitFunc
	// FlatHit decides hits for SphereFlatColor
	FlatHit geometry.HitPolicy
}

// Reference is the shader whose output matches the reference images
var Reference = Shader{}

// Magnitude returns a shader that uses true magnitude-based normalization
func Magnitude() Shader {
	return Shader{Unit: core.Normalize}
}

func (s Shader) unit(v core.Vec3) core.Vec3 {
	if s.Unit == nil {
		return core.UnitVector(v)
	}
	return s.Unit(v)
}

// SkyColor returns the white to sky-blue background gradient for a ray, unscaled
func (s Shader) SkyColor(ray core.Ray) core.Vec3 {
	unitDirection := s.unit(ray.Direction)
	t := 0.5 * (unitDirection.Y + 1.0)
	return core.Lerp(white, skyBlue, t)
}

// SphereFlatColor returns solid red where the ray hits defaultSphere and the
// background gradient elsewhere, unscaled
func (s Shader) SphereFlatColor(ray core.Ray) core.Vec3 {
	if s.FlatHit.Hit(defaultSphere, ray) {
		return red
	}
	return s.SkyColor(ray)
}

// SphereNormalColor shades defaultSphere by its surface normal.
// Unlike the other routines the result is already scaled to pixel range by
// NormalColorScale, and so is the background fallback.
func (s Shader) SphereNormalColor(ray core.Ray) core.Vec3 {
	center := defaultSphere.Center
	t := defaultSphere.HitParametric(ray)
	if t > 0 {
		normal := s.unit(ray.At(t).Subtract(center))
		shifted := core.NewVec3(normal.X+1.0, normal.Y+1.0, normal.Z+1.0)
		return core.Scale(0.5, shifted.Multiply(core.NormalColorScale))
	}

	return s.SkyColor(ray).Multiply(core.NormalColorScale)
}

// SkyColor shades with the reference shader
func SkyColor(ray core.Ray) core.Vec3 {
	return Reference.SkyColor(ray)
}

// SphereFlatColor shades with the reference shader
func SphereFlatColor(ray core.Ray) core.Vec3 {
	return Reference.SphereFlatColor(ray)
}

// SphereNormalColor shades with the reference shader
func SphereNormalColor(ray core.Ray) core.Vec3 {
	return Reference.SphereNormalColor(ray)
}
