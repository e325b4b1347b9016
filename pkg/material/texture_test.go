package material

import (
	"math"
	"testing"

	"github.com/df07/go-motion-raytracer/pkg/core"
)

func TestCheckerTexture_Alternates(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	black := core.NewVec3(0, 0, 0)
	checker := NewCheckerTexture(white, black)

	// sin(10*0.1)^3 > 0
	if got := checker.Evaluate(core.Vec2{}, core.NewVec3(0.1, 0.1, 0.1)); got != white {
		t.Errorf("Expected even color, got %v", got)
	}
	// sin(-1) * sin(1) * sin(1) < 0
	if got := checker.Evaluate(core.Vec2{}, core.NewVec3(-0.1, 0.1, 0.1)); got != black {
		t.Errorf("Expected odd color, got %v", got)
	}
}

func TestImageTexture_Evaluate(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	blue := core.NewVec3(0, 0, 1)
	white := core.NewVec3(1, 1, 1)
	// 2x2 image: top row red, green; bottom row blue, white
	texture := NewImageTexture(2, 2, []core.Vec3{red, green, blue, white})

	tests := []struct {
		name     string
		uv       core.Vec2
		expected core.Vec3
	}{
		{"Top left", core.NewVec2(0.1, 0.9), red},
		{"Top right", core.NewVec2(0.9, 0.9), green},
		{"Bottom left", core.NewVec2(0.1, 0.1), blue},
		{"Bottom right", core.NewVec2(0.9, 0.1), white},
		{"Clamped above one", core.NewVec2(1.5, 1.5), green},
		{"Clamped below zero", core.NewVec2(-1, -1), blue},
		{"Exact one maps to last pixel", core.NewVec2(1, 0), white},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := texture.Evaluate(tt.uv, core.Vec3{}); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestImageTexture_MissingDataIsCyan(t *testing.T) {
	texture := NewImageTexture(0, 0, nil)
	if got := texture.Evaluate(core.NewVec2(0.5, 0.5), core.Vec3{}); got != core.NewVec3(0, 1, 1) {
		t.Errorf("Expected cyan debug color, got %v", got)
	}
}

func TestPerlin_DeterministicAndBounded(t *testing.T) {
	a := NewPerlin(core.NewSeededSampler(3))
	b := NewPerlin(core.NewSeededSampler(3))

	sampler := core.NewSeededSampler(11)
	for i := 0; i < 200; i++ {
		p := sampler.Get3D().Multiply(20).Subtract(core.NewVec3(10, 10, 10))
		na, nb := a.Noise(p), b.Noise(p)
		if na != nb {
			t.Fatalf("Same seed produced different noise at %v: %f vs %f", p, na, nb)
		}
		if math.Abs(na) > 1.8 {
			t.Fatalf("Noise %f at %v is out of the expected range", na, p)
		}
		if a.Turbulence(p, 7) < 0 {
			t.Fatalf("Turbulence must be non-negative")
		}
	}
}

func TestNoiseTexture_GreyInUnitRange(t *testing.T) {
	texture := NewNoiseTexture(4, core.NewSeededSampler(5))
	sampler := core.NewSeededSampler(9)
	for i := 0; i < 100; i++ {
		c := texture.Evaluate(core.Vec2{}, sampler.Get3D().Multiply(5))
		if c.X != c.Y || c.Y != c.Z {
			t.Fatalf("Expected grey, got %v", c)
		}
		if c.X < 0 || c.X > 1 {
			t.Fatalf("Grey level %f out of range", c.X)
		}
	}
}
