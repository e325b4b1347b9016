package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"Divide", b.Divide(2), NewVec3(2, -2.5, 3)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
		{"MinVec", MinVec(a, b), NewVec3(1, -5, 3)},
		{"MaxVec", MaxVec(a, b), NewVec3(4, 2, 6)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if a.Dot(b) != 12 {
		t.Errorf("Expected dot product 12, got %f", a.Dot(b))
	}
}

func TestVec3_Axis(t *testing.T) {
	v := NewVec3(7, 8, 9)
	for axis, expected := range []float64{7, 8, 9} {
		if got := v.Axis(axis); got != expected {
			t.Errorf("Axis(%d): expected %f, got %f", axis, expected, got)
		}
	}
}

func TestVec3_Normalize(t *testing.T) {
	n := NewVec3(3, 4, 0).Normalize()
	if math.Abs(n.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", n.Length())
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector to normalize to zero, got %v", zero)
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(0, 0.01, 0).NearZero() {
		t.Error("Expected 0.01 component to not be near zero")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRayAtTime(NewVec3(1, 2, 3), NewVec3(0, 0, -2), 0.25)

	if p := ray.At(1.5); p != NewVec3(1, 2, 0) {
		t.Errorf("Expected (1,2,0), got %v", p)
	}
	if ray.Time != 0.25 {
		t.Errorf("Expected time 0.25, got %f", ray.Time)
	}
	if NewRay(Vec3{}, NewVec3(1, 0, 0)).Time != 0 {
		t.Error("Expected NewRay to default time to 0")
	}
}

func TestClampAndLerp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("Integer clamp returned unexpected values")
	}
	if Clamp(0.5, 0.0, 1.0) != 0.5 {
		t.Error("Float clamp changed an in-range value")
	}
	if Lerp(2.0, 4.0, 0.25) != 2.5 {
		t.Errorf("Expected lerp 2.5, got %f", Lerp(2.0, 4.0, 0.25))
	}
	if math.Abs(DegreesToRadians(180)-math.Pi) > 1e-15 {
		t.Error("Expected 180 degrees to equal pi radians")
	}
}
