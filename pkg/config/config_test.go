package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "raytracer.toml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate: %v", err)
	}
	if cfg.Workers != 1 || cfg.OutputDir != "data" {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output_dir = "renders"
workers = 4
normalize = "magnitude"
flat_hit = "parametric"
write_bmp = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.OutputDir != "renders" || cfg.Workers != 4 || !cfg.WriteBMP {
		t.Errorf("Unexpected config %+v", cfg)
	}
	// Unset keys keep their defaults
	if cfg.LogLevel != "info" || cfg.ProgressEvery != 16 {
		t.Errorf("Expected defaults for unset keys, got %+v", cfg)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Expected error for a missing named file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		contents string
	}{
		{"negative workers", "workers = -1"},
		{"unknown normalize", `normalize = "euclid"`},
		{"unknown hit policy", `flat_hit = "maybe"`},
		{"empty output dir", `output_dir = ""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.contents))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(writeConfig(t, "workers = [oops"))
	if err == nil || errors.Is(err, ErrInvalid) {
		t.Errorf("Expected parse error, got %v", err)
	}
}

func TestShader(t *testing.T) {
	cfg := Default()
	cfg.Normalize = NormalizeMagnitude
	cfg.FlatHit = "parametric"

	shader, err := cfg.Shader()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if shader.FlatHit != geometry.HitParametricPolicy {
		t.Errorf("Expected parametric policy, got %v", shader.FlatHit)
	}

	up := core.NewRay(core.Vec3{}, core.NewVec3(0, 1, 0))
	if got := shader.SkyColor(up); got != core.NewVec3(0.5, 0.7, 1.0) {
		t.Errorf("Expected magnitude normalization to reach sky blue, got %v", got)
	}

	ref, err := Default().Shader()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ref.SkyColor(up) != integrator.SkyColor(up) {
		t.Error("Expected default config to shade like the reference")
	}
}

func TestMarshal(t *testing.T) {
	data, err := Default().Marshal()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	path := writeConfig(t, string(data))
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected %+v, got %+v", Default(), cfg)
	}
}
