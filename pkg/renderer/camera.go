package renderer

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// CameraConfig describes the virtual viewport rays are cast through
type CameraConfig struct {
	Origin         core.Vec3
	AspectRatio    float32 // Viewport width / height
	ViewportHeight float32
	FocalLength    float32 // Distance from origin to the viewport plane
}

// DefaultCameraConfig returns the 16:9 viewport used by every ray-traced scene
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		Origin:         core.NewVec3(0, 0, 0),
		AspectRatio:    16.0 / 9.0,
		ViewportHeight: 2.0,
		FocalLength:    1.0,
	}
}

// Camera generates rays for rendering
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
}

// NewCamera creates a simple camera
func NewCamera(config CameraConfig) *Camera {
	viewportWidth := config.ViewportHeight * config.AspectRatio

	origin := config.Origin
	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, config.ViewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Divide(2)).
		Subtract(vertical.Divide(2)).
		Subtract(core.NewVec3(0, 0, config.FocalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
	}
}

// GetRay generates a ray for viewport coordinates (s, t) where 0 <= s,t <= 1
func (c *Camera) GetRay(s, t float32) core.Ray {
	direction := c.lowerLeftCorner.
		Add(core.Scale(s, c.horizontal)).
		Add(core.Scale(t, c.vertical)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}

// GetPixelRay generates the ray through pixel (i, j) of a width x height raster
func (c *Camera) GetPixelRay(i, j, width, height int) core.Ray {
	s := float32(i) / float32(width-1)
	t := float32(j) / float32(height-1)
	return c.GetRay(s, t)
}

// LowerLeftCorner returns the viewport's lower-left corner
func (c *Camera) LowerLeftCorner() core.Vec3 {
	return c.lowerLeftCorner
}
