package scene

import (
	"context"
	"errors"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name        string
		expectError bool
		outputFile  string
	}{
		{"2", false, "simple.ppm"},
		{"4", false, "viewport.ppm"},
		{"5", false, "simple_sphere.ppm"},
		{"6.1", false, "sphere_normal.ppm"},
		{"3", true, ""},
		{"", true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, err := Lookup(tt.name, integrator.Reference)

			if tt.expectError {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene, got %v", err)
				}
				if scene != nil {
					t.Errorf("Expected nil scene, got %v", scene)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if scene.OutputFile != tt.outputFile {
				t.Errorf("Expected output %s, got %s", tt.outputFile, scene.OutputFile)
			}
			if scene.Width <= 0 || scene.Height <= 0 {
				t.Errorf("Expected positive raster size, got %dx%d", scene.Width, scene.Height)
			}
		})
	}
}

func TestOutputFilesAreDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, info := range ListScenes(integrator.Reference) {
		if other, ok := seen[info.OutputFile]; ok {
			t.Errorf("Scenes %s and %s both write %s", other, info.Name, info.OutputFile)
		}
		seen[info.OutputFile] = info.Name
	}
	if len(seen) != len(Names()) {
		t.Errorf("Expected %d scenes, got %d", len(Names()), len(seen))
	}
}

func TestGradientScene_Corners(t *testing.T) {
	scene := NewGradientScene()
	raster, stats, err := scene.NewRaytracer().Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if stats.TotalPixels != 256*256 {
		t.Errorf("Expected %d pixels, got %d", 256*256, stats.TotalPixels)
	}
	if got := core.PixelRecord(raster.Pixels[0]); got != "0 255 64" {
		t.Errorf("Expected top-left record %q, got %q", "0 255 64", got)
	}
	if got := core.PixelRecord(raster.Pixels[len(raster.Pixels)-1]); got != "255 0 64" {
		t.Errorf("Expected bottom-right record %q, got %q", "255 0 64", got)
	}
}

func TestViewportScene_TopLeft(t *testing.T) {
	scene := NewViewportScene(integrator.Reference)

	// direction (-16/9, 1, -1): reference unit y = 1/3
	if got := core.PixelRecord(scene.Shader.Shade(0, viewportHeight-1)); got != "170 204 255" {
		t.Errorf("Expected %q, got %q", "170 204 255", got)
	}
}

func TestFlatSphereScene_Center(t *testing.T) {
	for _, policy := range []geometry.HitPolicy{geometry.HitBooleanPolicy, geometry.HitParametricPolicy} {
		t.Run(policy.String(), func(t *testing.T) {
			scene := NewFlatSphereScene(integrator.Shader{FlatHit: policy})

			got := core.PixelRecord(scene.Shader.Shade(viewportWidth/2, viewportHeight/2))
			if got != "255 0 0" {
				t.Errorf("Expected center record %q, got %q", "255 0 0", got)
			}

			// The corner looks past the sphere into the sky
			if got := core.PixelRecord(scene.Shader.Shade(0, viewportHeight-1)); got == "255 0 0" {
				t.Error("Expected sky in the top-left corner")
			}
		})
	}
}

func TestNormalSphereScene(t *testing.T) {
	scene := NewNormalSphereScene(integrator.Reference)

	tests := []struct {
		name     string
		i, j     int
		expected string
	}{
		{"center hit", viewportWidth / 2, viewportHeight / 2, "128 128 149"},
		// sky scaled by 256 instead of 255; blue saturates
		{"top-left miss", 0, viewportHeight - 1, "171 205 255"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := core.PixelRecord(scene.Shader.Shade(tt.i, tt.j)); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestFlatSphereScene_Description(t *testing.T) {
	s := NewFlatSphereScene(integrator.Shader{FlatHit: geometry.HitParametricPolicy})
	want := "Red sphere at (0,0,-1), radius 0.5, hit policy parametric"
	if s.Description != want {
		t.Errorf("Expected %q, got %q", want, s.Description)
	}
}
