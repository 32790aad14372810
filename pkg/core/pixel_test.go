package core

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestPixelByte(t *testing.T) {
	tests := []struct {
		name     string
		input    float32
		expected uint8
	}{
		{"zero", 0, 0},
		{"round down", 63.4, 63},
		{"round half away from zero", 63.5, 64},
		{"largest float32 below half", 0.49999997, 0},
		{"half below max rounds up", 254.5, 255},
		{"quarter of 255", 0.25 * 255, 64},
		{"max", 255, 255},
		{"above range saturates", 300, 255},
		{"slightly above range", 255.4, 255},
		{"negative saturates", -12, 0},
		{"small negative", -0.4, 0},
		{"NaN", math32.NaN(), 0},
		{"positive infinity", math32.Inf(1), 255},
		{"negative infinity", math32.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelByte(tt.input); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestPixelRecord(t *testing.T) {
	tests := []struct {
		color    Vec3
		expected string
	}{
		{NewVec3(0, 255, 63.75), "0 255 64"},
		{NewVec3(255, 0, 63.75), "255 0 64"},
		{NewVec3(1, 0, 0).Multiply(GradientColorScale), "255 0 0"},
		{NewVec3(0.5, 0.7, 1.0).Multiply(NormalColorScale), "128 179 255"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := PixelRecord(tt.color); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestAppendPixelRecord(t *testing.T) {
	buf := AppendPixelRecord(nil, NewVec3(1, 2, 3))
	buf = AppendPixelRecord(buf, NewVec3(4, 5, 6))
	if got := string(buf); got != "1 2 3\n4 5 6\n" {
		t.Errorf("Expected two newline-terminated records, got %q", got)
	}
}
