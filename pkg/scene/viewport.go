package scene

import (
	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
)

// NewViewportScene creates the sky gradient seen through the viewport
func NewViewportScene(shader integrator.Shader) *Scene {
	return &Scene{
		Name:        "4",
		DisplayName: "Viewport",
		Description: "White to sky-blue background gradient, one ray per pixel",
		OutputFile:  "viewport.ppm",
		Width:       viewportWidth,
		Height:      viewportHeight,
		Shader:      newRayShader(integrator.IntegratorFunc(shader.SkyColor), core.GradientColorScale),
	}
}
