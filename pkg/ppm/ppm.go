package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/df07/go-ppm-raytracer/pkg/core"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
)

const (
	// MaxValue is the maximum color value written in the header
	MaxValue = 255
	// MaxDimension bounds the width and height Decode accepts
	MaxDimension = 1 << 14
)

var (
	ErrBadHeader = errors.New("ppm: bad header")
	ErrBadPixel  = errors.New("ppm: bad pixel data")
)

// Header returns the P3 header for a width x height image
func Header(width, height int) string {
	return fmt.Sprintf("P3\n%d %d\n%d\n", width, height, MaxValue)
}

// Encode writes the raster as a plain-text P3 image: the header followed by
// one "R G B" record per pixel in raster order.
func Encode(w io.Writer, raster *renderer.Raster) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(Header(raster.Width, raster.Height)); err != nil {
		return err
	}

	buf := make([]byte, 0, 12*raster.Width)
	for j := raster.Height - 1; j >= 0; j-- {
		buf = buf[:0]
		for _, color := range raster.Row(j) {
			buf = core.AppendPixelRecord(buf, color)
		}
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile creates path and encodes the raster into it as P3.
// A failed write leaves whatever was written in place.
func WriteFile(path string, raster *renderer.Raster) error {
	return writeFile(path, raster, Encode)
}

// WriteBMPFile creates path and encodes the raster into it as BMP
func WriteBMPFile(path string, raster *renderer.Raster) error {
	return writeFile(path, raster, EncodeBMP)
}

func writeFile(path string, raster *renderer.Raster, encode func(io.Writer, *renderer.Raster) error) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	if err := encode(file, raster); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// ReadFile opens path and decodes the P3 image in it
func ReadFile(path string) (*renderer.Raster, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	raster, err := Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return raster, nil
}

// Decode reads a P3 image. Pixel colors hold the integer values read.
func Decode(r io.Reader) (*renderer.Raster, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		return sc.Text(), true
	}
	nextInt := func(what string, sentinel error) (int, error) {
		tok, ok := next()
		if !ok {
			return 0, fmt.Errorf("%w: missing %s", sentinel, what)
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%w: %s %q", sentinel, what, tok)
		}
		return v, nil
	}

	magic, ok := next()
	if !ok || magic != "P3" {
		return nil, fmt.Errorf("%w: magic %q", ErrBadHeader, magic)
	}
	width, err := nextInt("width", ErrBadHeader)
	if err != nil {
		return nil, err
	}
	height, err := nextInt("height", ErrBadHeader)
	if err != nil {
		return nil, err
	}
	maxValue, err := nextInt("max value", ErrBadHeader)
	if err != nil {
		return nil, err
	}
	if width < 0 || height < 0 || maxValue <= 0 {
		return nil, fmt.Errorf("%w: %dx%d max %d", ErrBadHeader, width, height, maxValue)
	}
	if width > MaxDimension || height > MaxDimension {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d", ErrBadHeader, width, height, MaxDimension)
	}
	if width != 0 && height > math.MaxInt/width {
		return nil, fmt.Errorf("%w: %dx%d overflows", ErrBadHeader, width, height)
	}

	raster := renderer.NewRaster(width, height)
	for k := range raster.Pixels {
		var rgb [3]int
		for c := range rgb {
			if rgb[c], err = nextInt("component", ErrBadPixel); err != nil {
				return nil, fmt.Errorf("pixel %d: %w", k, err)
			}
		}
		raster.Pixels[k] = core.NewVec3(float32(rgb[0]), float32(rgb[1]), float32(rgb[2]))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return raster, nil
}
