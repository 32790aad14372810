package geometry

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// NoHit is the parametric sentinel returned when a ray misses a sphere
const NoHit float32 = -1.0

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float32
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// discriminant returns b²-4ac of the ray/sphere quadratic along with a and b
func (s Sphere) discriminant(ray core.Ray) (discriminant, a, b float32) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + bt + c = 0
	a = ray.Direction.Dot(ray.Direction)
	b = 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	return b*b - 4.0*a*c, a, b
}

// HitBoolean reports whether the ray's line crosses the sphere.
// Tangent rays (discriminant == 0) are misses.
func (s Sphere) HitBoolean(ray core.Ray) bool {
	discriminant, _, _ := s.discriminant(ray)
	return discriminant > 0
}

// HitParametric returns the nearest root of the intersection quadratic, or NoHit
// when the discriminant is negative. The root may be negative or zero: callers
// must check t > 0 before treating it as a visible hit.
func (s Sphere) HitParametric(ray core.Ray) float32 {
	discriminant, a, b := s.discriminant(ray)
	if discriminant < 0 {
		return NoHit
	}
	return (-b - math32.Sqrt(discriminant)) / (2.0 * a)
}

// HitPolicy selects which intersection test decides a visible hit
type HitPolicy int

const (
	// HitBooleanPolicy uses HitBoolean
	HitBooleanPolicy HitPolicy = iota
	// HitParametricPolicy uses HitParametric and requires t > 0
	HitParametricPolicy
)

// ParseHitPolicy converts a policy name ("boolean" or "parametric") to a HitPolicy
func ParseHitPolicy(name string) (HitPolicy, error) {
	switch name {
	case "boolean", "":
		return HitBooleanPolicy, nil
	case "parametric":
		return HitParametricPolicy, nil
	}
	return HitBooleanPolicy, fmt.Errorf("unknown hit policy %q", name)
}

// String returns the policy name
func (p HitPolicy) String() string {
	switch p {
	case HitBooleanPolicy:
		return "boolean"
	case HitParametricPolicy:
		return "parametric"
	}
	return fmt.Sprintf("HitPolicy(%d)", int(p))
}

// Hit applies the policy to a ray and sphere
func (p HitPolicy) Hit(s Sphere, ray core.Ray) bool {
	if p == HitParametricPolicy {
		return s.HitParametric(ray) > 0
	}
	return s.HitBoolean(ray)
}
