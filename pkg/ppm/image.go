package ppm

import (
	"image"
	"image/color"
	"io"

	"github.com/df07/go-ppm-raytracer/pkg/renderer"
	"golang.org/x/image/bmp"
)

// ToImage converts a raster to an RGBA image using the same byte conversion
// as the P3 records. Image row 0 is the raster's top row.
func ToImage(raster *renderer.Raster) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, raster.Width, raster.Height))
	for k, c := range raster.Pixels {
		r, g, b := c.RGB()
		img.SetRGBA(k%raster.Width, k/raster.Width, color.RGBA{R: r, G: g, B: b, A: 255})
	}
	return img
}

// EncodeBMP writes the raster as a BMP image
func EncodeBMP(w io.Writer, raster *renderer.Raster) error {
	return bmp.Encode(w, ToImage(raster))
}
