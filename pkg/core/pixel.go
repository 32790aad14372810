package core

import (
	"strconv"

	"github.com/chewxy/math32"
)

// Color scaling constants. The background gradient scenes scale by 255 while
// the normal-shaded sphere scene scales by 256, including its sky fallback.
const (
	GradientColorScale float32 = 255
	NormalColorScale   float32 = 256
)

// PixelByte converts a color component to a byte: round half away from zero,
// then saturate to [0, 255]. NaN maps to 0.
func PixelByte(c float32) uint8 {
	r := math32.Round(c)
	switch {
	case math32.IsNaN(r), r <= 0:
		return 0
	case r >= 255:
		return 255
	}
	return uint8(r)
}

// RGB returns the three pixel bytes of a color
func (v Vec3) RGB() (r, g, b uint8) {
	return PixelByte(v.X), PixelByte(v.Y), PixelByte(v.Z)
}

// AppendPixelRecord appends the "R G B\n" record of a color to buf
func AppendPixelRecord(buf []byte, color Vec3) []byte {
	r, g, b := color.RGB()
	buf = strconv.AppendUint(buf, uint64(r), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(g), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendUint(buf, uint64(b), 10)
	return append(buf, '\n')
}

// PixelRecord formats a color as "R G B" without the trailing newline
func PixelRecord(color Vec3) string {
	buf := AppendPixelRecord(make([]byte, 0, 12), color)
	return string(buf[:len(buf)-1])
}
