package renderer

import "github.com/df07/go-ppm-raytracer/pkg/core"

// Raster is a width x height grid of pixel colors stored in output order:
// row j = Height-1 first, and columns left to right within a row.
type Raster struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewRaster creates a raster filled with black
func NewRaster(width, height int) *Raster {
	return &Raster{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// index maps pixel (i, j) to its position in Pixels
func (r *Raster) index(i, j int) int {
	return (r.Height-1-j)*r.Width + i
}

// At returns the color of pixel (i, j)
func (r *Raster) At(i, j int) core.Vec3 {
	return r.Pixels[r.index(i, j)]
}

// Set stores the color of pixel (i, j)
func (r *Raster) Set(i, j int, color core.Vec3) {
	r.Pixels[r.index(i, j)] = color
}

// Row returns the pixels of row j. The slice aliases the raster.
func (r *Raster) Row(j int) []core.Vec3 {
	start := r.index(0, j)
	return r.Pixels[start : start+r.Width]
}
