package renderer

import (
	"context"
	"time"

	"github.com/df07/go-ppm-raytracer/pkg/core"
)

// PixelShader computes the final, already scaled color of pixel (i, j)
type PixelShader interface {
	Shade(i, j int) core.Vec3
}

// PixelShaderFunc adapts a plain function to the PixelShader interface
type PixelShaderFunc func(i, j int) core.Vec3

// Shade calls f(i, j)
func (f PixelShaderFunc) Shade(i, j int) core.Vec3 {
	return f(i, j)
}

// ProgressFunc is called after each completed row
type ProgressFunc func(rowsDone, totalRows int)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width      int
	Height     int
	NumWorkers int          // 1 renders sequentially, 0 uses the CPU count
	Progress   ProgressFunc // Optional
}

// Raytracer handles the rendering process
type Raytracer struct {
	shader PixelShader
	config RenderConfig
}

// NewRaytracer creates a new sequential raytracer
func NewRaytracer(shader PixelShader, width, height int) *Raytracer {
	return &Raytracer{
		shader: shader,
		config: RenderConfig{
			Width:      width,
			Height:     height,
			NumWorkers: 1,
		},
	}
}

// SetWorkers sets the number of pixel-evaluation goroutines
func (rt *Raytracer) SetWorkers(n int) {
	rt.config.NumWorkers = n
}

// SetProgress installs a row-progress callback
func (rt *Raytracer) SetProgress(fn ProgressFunc) {
	rt.config.Progress = fn
}

// Render evaluates every pixel and returns the raster in output order.
// The context is only checked between rows.
func (rt *Raytracer) Render(ctx context.Context) (*Raster, RenderStats, error) {
	startTime := time.Now()
	raster := NewRaster(rt.config.Width, rt.config.Height)

	var (
		rows    int
		workers int
		err     error
	)
	if rt.config.NumWorkers == 1 {
		workers = 1
		rows, err = rt.renderSequential(ctx, raster)
	} else {
		workers, rows, err = rt.renderParallel(ctx, raster)
	}

	stats := RenderStats{
		TotalPixels: rows * raster.Width,
		TotalRows:   rows,
		Workers:     workers,
		Duration:    time.Since(startTime),
	}
	if err != nil {
		return nil, stats, err
	}
	return raster, stats, nil
}

// RenderRow evaluates row j into dst, left to right
func (rt *Raytracer) RenderRow(j int, dst []core.Vec3) {
	for i := range dst {
		dst[i] = rt.shader.Shade(i, j)
	}
}

// renderSequential walks rows top (j = Height-1) to bottom
func (rt *Raytracer) renderSequential(ctx context.Context, raster *Raster) (int, error) {
	rows := 0
	for j := raster.Height - 1; j >= 0; j-- {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		rt.RenderRow(j, raster.Row(j))
		rows++
		rt.reportProgress(rows, raster.Height)
	}
	return rows, nil
}

// renderParallel hands rows to a worker pool. Each row owns a disjoint slice of
// the raster, so completion order does not affect output order.
func (rt *Raytracer) renderParallel(ctx context.Context, raster *Raster) (int, int, error) {
	pool := NewWorkerPool(rt, raster.Height, rt.config.NumWorkers)
	pool.Start()

	// Submit in output order; the task queue holds every row so this never blocks
	for j := raster.Height - 1; j >= 0; j-- {
		pool.SubmitTask(RowTask{
			Ctx:    ctx,
			Row:    j,
			Pixels: raster.Row(j),
			TaskID: raster.Height - 1 - j,
		})
	}
	go pool.Stop()

	rows := 0
	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		rows++
		rt.reportProgress(rows, raster.Height)
	}

	return pool.GetNumWorkers(), rows, firstErr
}

func (rt *Raytracer) reportProgress(done, total int) {
	if rt.config.Progress != nil {
		rt.config.Progress(done, total)
	}
}
