package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
)

var (
	ErrUnknownScene = errors.New("unknown scene")
)

// Scene is one of the fixed renders the program can produce
type Scene struct {
	Name        string // Selector passed on the command line
	DisplayName string
	Description string
	OutputFile  string // File name inside the output directory
	Width       int
	Height      int
	Shader      renderer.PixelShader
}

// NewRaytracer creates a sequential raytracer for the scene
func (s *Scene) NewRaytracer() *renderer.Raytracer {
	return renderer.NewRaytracer(s.Shader, s.Width, s.Height)
}

// Viewport raster used by every ray-traced scene (16:9)
const (
	viewportWidth  = 768
	viewportHeight = 432
)

// rayShader casts one ray per pixel through the camera and scales the result
type rayShader struct {
	camera        *renderer.Camera
	width, height int
	integrator    integrator.Integrator
	scale         float32
}

func newRayShader(integ integrator.Integrator, scale float32) *rayShader {
	return &rayShader{
		camera:     renderer.NewCamera(renderer.DefaultCameraConfig()),
		width:      viewportWidth,
		height:     viewportHeight,
		integrator: integ,
		scale:      scale,
	}
}

// Shade implements renderer.PixelShader
func (rs *rayShader) Shade(i, j int) core.Vec3 {
	ray := rs.camera.GetPixelRay(i, j, rs.width, rs.height)
	color := rs.integrator.RayColor(ray)
	if rs.scale == 1 {
		return color
	}
	return color.Multiply(rs.scale)
}

// constructors in selector order
var builtins = []struct {
	name   string
	create func(integrator.Shader) *Scene
}{
	{"2", func(integrator.Shader) *Scene { return NewGradientScene() }},
	{"4", NewViewportScene},
	{"5", NewFlatSphereScene},
	{"6.1", NewNormalSphereScene},
}

// Lookup returns the scene selected by name, shaded with the given shader
func Lookup(name string, shader integrator.Shader) (*Scene, error) {
	for _, b := range builtins {
		if b.name == name {
			return b.create(shader), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

// Names returns every scene selector in order
func Names() []string {
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, b.name)
	}
	return names
}
