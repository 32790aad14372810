package core

import (
	"testing"

	"github.com/chewxy/math32"
)

const tolerance = 1e-6

func vecNear(a, b Vec3, eps float32) bool {
	return math32.Abs(a.X-b.X) <= eps &&
		math32.Abs(a.Y-b.Y) <= eps &&
		math32.Abs(a.Z-b.Z) <= eps
}

var samples = []Vec3{
	NewVec3(0, 0, 0),
	NewVec3(1, 2, 3),
	NewVec3(-0.5, 0.7, 1.0),
	NewVec3(3.25, -8, 0.125),
	NewVec3(1e3, -1e-3, 42),
}

func TestVec3_AddCommutative(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if a.Add(b) != b.Add(a) {
				t.Errorf("Expected %v + %v to commute, got %v and %v", a, b, a.Add(b), b.Add(a))
			}
			if got := a.Add(b).Subtract(b); !vecNear(got, a, 1e-3) {
				t.Errorf("Expected (%v + %v) - %v = %v, got %v", a, b, b, a, got)
			}
		}
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			if a.Dot(b) != b.Dot(a) {
				t.Errorf("Expected dot(%v, %v) to commute", a, b)
			}
			if got, want := a.Cross(b), b.Cross(a).Multiply(-1); !vecNear(got, want, tolerance) {
				t.Errorf("Expected cross(%v, %v) = %v, got %v", a, b, want, got)
			}
		}
	}

	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if got := x.Cross(y); got != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = (0,0,1), got %v", got)
	}
	if got := NewVec3(1, 2, 3).Dot(NewVec3(4, -5, 6)); got != 12 {
		t.Errorf("Expected dot = 12, got %f", got)
	}
}

func TestVec3_ScalarOperations(t *testing.T) {
	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"multiply", NewVec3(1, -2, 3).Multiply(2), NewVec3(2, -4, 6)},
		{"scale scalar first", Scale(2, NewVec3(1, -2, 3)), NewVec3(2, -4, 6)},
		{"multiply vec", NewVec3(1, 2, 3).MultiplyVec(NewVec3(0.5, 0.7, 1)), NewVec3(0.5, 1.4, 3)},
		{"divide", NewVec3(3, 6, -9).Divide(3), NewVec3(1, 2, -3)},
		{"lerp start", Lerp(NewVec3(1, 1, 1), NewVec3(0.5, 0.7, 1), 0), NewVec3(1, 1, 1)},
		{"lerp end", Lerp(NewVec3(1, 1, 1), NewVec3(0.5, 0.7, 1), 1), NewVec3(0.5, 0.7, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !vecNear(tt.got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DivideByZero(t *testing.T) {
	got := NewVec3(1, -1, 0).Divide(0)
	if !math32.IsInf(got.X, 1) || !math32.IsInf(got.Y, -1) || !math32.IsNaN(got.Z) {
		t.Errorf("Expected (+Inf, -Inf, NaN), got %v", got)
	}
	if got.IsFinite() {
		t.Error("Expected non-finite vector")
	}
}

func TestUnitVector_DividesByComponentCount(t *testing.T) {
	for _, v := range samples {
		want := v.Multiply(1.0 / 3.0)
		if got := UnitVector(v); !vecNear(got, want, 1e-4) {
			t.Errorf("Expected UnitVector(%v) = %v, got %v", v, want, got)
		}
	}

	// A true unit vector is not preserved.
	if got := UnitVector(NewVec3(0, 1, 0)); got.Length() >= 1 {
		t.Errorf("Expected UnitVector to shrink (0,1,0), got %v", got)
	}
}

func TestNormalize(t *testing.T) {
	got := Normalize(NewVec3(3, 0, 4))
	if !vecNear(got, NewVec3(0.6, 0, 0.8), tolerance) {
		t.Errorf("Expected (0.6, 0, 0.8), got %v", got)
	}
	if got := Normalize(Vec3{}); got != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", got)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(-1, 0.5, 2))

	if got := ray.At(0); got != ray.Origin {
		t.Errorf("Expected At(0) = origin %v, got %v", ray.Origin, got)
	}
	if got, want := ray.At(1), ray.Origin.Add(ray.Direction); !vecNear(got, want, tolerance) {
		t.Errorf("Expected At(1) = %v, got %v", want, got)
	}
	if got, want := ray.At(2.5), NewVec3(-1.5, 3.25, 8); !vecNear(got, want, tolerance) {
		t.Errorf("Expected At(2.5) = %v, got %v", want, got)
	}
}
