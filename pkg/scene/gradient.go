package scene

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
)

const gradientSize = 256

// NewGradientScene creates the 256x256 red/green gradient. No rays are cast:
// red grows left to right, green bottom to top, blue is a constant quarter.
func NewGradientScene() *Scene {
	width, height := gradientSize, gradientSize

	shader := renderer.PixelShaderFunc(func(i, j int) core.Vec3 {
		r := float32(i) / float32(width-1) * core.GradientColorScale
		g := float32(j) / float32(height-1) * core.GradientColorScale
		b := float32(0.25) * core.GradientColorScale
		return core.NewVec3(r, g, b)
	})

	return &Scene{
		Name:        "2",
		DisplayName: "Simple PPM",
		Description: "Red/green gradient written straight to the raster",
		OutputFile:  "simple.ppm",
		Width:       width,
		Height:      height,
		Shader:      shader,
	}
}
