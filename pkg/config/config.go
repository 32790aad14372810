package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/geometry"
	"github.com/df07/go-ppm-raytracer/pkg/integrator"
	"github.com/pelletier/go-toml/v2"
)

// DefaultPath is read when present and no other file is named
const DefaultPath = "raytracer.toml"

// Normalization modes
const (
	NormalizeReference = "reference" // divide by the component count
	NormalizeMagnitude = "magnitude" // divide by the vector length
)

var (
	ErrInvalid = errors.New("invalid configuration")
)

// Config contains the render settings shared by the CLI and the web server
type Config struct {
	OutputDir     string `toml:"output_dir"`
	Workers       int    `toml:"workers"`   // 1 = sequential, 0 = CPU count
	Normalize     string `toml:"normalize"` // NormalizeReference or NormalizeMagnitude
	FlatHit       string `toml:"flat_hit"`  // "boolean" or "parametric"
	LogLevel      string `toml:"log_level"`
	WriteBMP      bool   `toml:"write_bmp"`
	ProgressEvery int    `toml:"progress_every"` // Rows between progress log lines
}

// Default returns the settings that reproduce the reference images
func Default() Config {
	return Config{
		OutputDir:     "data",
		Workers:       1,
		Normalize:     NormalizeReference,
		FlatHit:       geometry.HitBooleanPolicy.String(),
		LogLevel:      "info",
		ProgressEvery: 16,
	}
}

// Load reads a TOML file on top of the defaults. A missing DefaultPath is not
// an error; any other missing file is.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && path == DefaultPath {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every field
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is empty", ErrInvalid)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalid, c.Workers)
	}
	if c.Normalize != NormalizeReference && c.Normalize != NormalizeMagnitude {
		return fmt.Errorf("%w: normalize %q", ErrInvalid, c.Normalize)
	}
	if _, err := geometry.ParseHitPolicy(c.FlatHit); err != nil {
		return fmt.Errorf("%w: flat_hit: %v", ErrInvalid, err)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress_every must be >= 0, got %d", ErrInvalid, c.ProgressEvery)
	}
	return nil
}

// Shader builds the shading settings described by the config
func (c Config) Shader() (integrator.Shader, error) {
	policy, err := geometry.ParseHitPolicy(c.FlatHit)
	if err != nil {
		return integrator.Shader{}, fmt.Errorf("%w: flat_hit: %v", ErrInvalid, err)
	}

	shader := integrator.Shader{FlatHit: policy}
	switch c.Normalize {
	case NormalizeReference:
		shader.Unit = core.UnitVector
	case NormalizeMagnitude:
		shader.Unit = core.Normalize
	default:
		return integrator.Shader{}, fmt.Errorf("%w: normalize %q", ErrInvalid, c.Normalize)
	}
	return shader, nil
}

// Marshal encodes the config as TOML
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}
