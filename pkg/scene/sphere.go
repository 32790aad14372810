package scene

import (
	"fmt"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
)

// NewFlatSphereScene creates a solid red sphere in front of the sky
func NewFlatSphereScene(shader integrator.Shader) *Scene {
	sphere := integrator.DefaultSphere()
	description := fmt.Sprintf("Red sphere at (%g,%g,%g), radius %g, hit policy %s",
		sphere.Center.X, sphere.Center.Y, sphere.Center.Z, sphere.Radius, shader.FlatHit)
	return &Scene{
		Name:        "5",
		DisplayName: "Simple Sphere",
		Description: description,
		OutputFile:  "simple_sphere.ppm",
		Width:       viewportWidth,
		Height:      viewportHeight,
		Shader:      newRayShader(integrator.IntegratorFunc(shader.SphereFlatColor), core.GradientColorScale),
	}
}

// NewNormalSphereScene creates the sphere shaded by its surface normals.
// The routine scales its own output, so no further scaling is applied.
func NewNormalSphereScene(shader integrator.Shader) *Scene {
	return &Scene{
		Name:        "6.1",
		DisplayName: "Surface Normals",
		Description: "Sphere colored by surface normal over a 256-scaled sky",
		OutputFile:  "sphere_normal.ppm",
		Width:       viewportWidth,
		Height:      viewportHeight,
		Shader:      newRayShader(integrator.IntegratorFunc(shader.SphereNormalColor), 1),
	}
}
