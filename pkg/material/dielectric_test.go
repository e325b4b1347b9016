package material

import (
	"math"
	"testing"

	"github.com/df07/go-motion-raytracer/pkg/core"
)

func TestDielectric_NormalIncidenceRefractsStraightThrough(t *testing.T) {
	glass := NewDielectric(1.5)
	// A sample of 0.99 is above the ~4% normal reflectance, so the ray refracts
	sampler := core.NewSequenceSampler(0.99)

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	scatter, ok := glass.Scatter(rayIn, hit, sampler)
	if !ok {
		t.Fatal("Dielectric should always scatter")
	}
	if scatter.Scattered.Direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("Expected straight-through refraction, got %v", scatter.Scattered.Direction)
	}
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected white attenuation, got %v", scatter.Attenuation)
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)
	sampler := core.NewSequenceSampler(0.99)

	// Exiting glass at a grazing angle: sin(theta)*1.5 > 1
	dir := core.NewVec3(math.Sin(1.2), 0, -math.Cos(1.2))
	rayIn := core.NewRay(core.NewVec3(0, 0, 1), dir)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: false}

	scatter, _ := glass.Scatter(rayIn, hit, sampler)
	if scatter.Scattered.Direction.Z <= 0 {
		t.Errorf("Expected reflection back above the surface, got %v", scatter.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	r := Reflectance(1.0, 1.0/1.5)
	if math.Abs(r-0.04) > 1e-9 {
		t.Errorf("Expected 4%% reflectance at normal incidence, got %f", r)
	}
	if math.Abs(Reflectance(0.0, 1.0/1.5)-1.0) > 1e-12 {
		t.Errorf("Expected full reflectance at grazing incidence")
	}
}
