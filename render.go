package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-ppm-raytracer/pkg/config"
	"github.com/df07/go-ppm-raytracer/pkg/logging"
	"github.com/df07/go-ppm-raytracer/pkg/ppm"
	"github.com/df07/go-ppm-raytracer/pkg/scene"
	"github.com/google/uuid"
)

// renderScene renders the named scene with cfg and writes it into
// cfg.OutputDir. It returns the path of the PPM written.
func renderScene(ctx context.Context, cfg config.Config, name string) (string, error) {
	shader, err := cfg.Shader()
	if err != nil {
		return "", err
	}
	selected, err := scene.Lookup(name, shader)
	if err != nil {
		return "", err
	}

	logger := logging.With("render", uuid.NewString(), "scene", selected.Name)
	logger.Info("starting render",
		"title", selected.DisplayName,
		"size", fmt.Sprintf("%dx%d", selected.Width, selected.Height),
		"workers", cfg.Workers,
		"normalize", cfg.Normalize)

	// Create output directory
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	raytracer := selected.NewRaytracer()
	raytracer.SetWorkers(cfg.Workers)
	raytracer.SetProgress(logging.Progress(logger, cfg.ProgressEvery))

	raster, stats, err := raytracer.Render(ctx)
	if err != nil {
		return "", err
	}
	logger.Info("render completed",
		"duration", stats.Duration,
		"pixels", stats.TotalPixels,
		"pixels_per_sec", fmt.Sprintf("%.0f", stats.PixelsPerSecond()),
		"workers", stats.Workers)

	path := filepath.Join(cfg.OutputDir, selected.OutputFile)
	if err := ppm.WriteFile(path, raster); err != nil {
		return "", err
	}
	logger.Info("render saved", "path", path)

	if cfg.WriteBMP {
		bmpPath := bitmapPath(path)
		if err := ppm.WriteBMPFile(bmpPath, raster); err != nil {
			return path, err
		}
		logger.Info("bitmap saved", "path", bmpPath)
	}

	return path, nil
}

// convertFile decodes a P3 image and writes it as a .bmp beside the input.
// It returns the path of the bitmap written.
func convertFile(path string) (string, error) {
	raster, err := ppm.ReadFile(path)
	if err != nil {
		return "", err
	}
	out := bitmapPath(path)
	if err := ppm.WriteBMPFile(out, raster); err != nil {
		return "", err
	}
	return out, nil
}

func bitmapPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".bmp"
}
