package geometry

import (
	"math"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

// mediumExitEpsilon offsets the search for the exit crossing past the entry crossing
const mediumExitEpsilon = 0.0001

// ConstantMedium is a participating medium of constant density filling a
// convex boundary. Rays scatter inside it at an exponentially distributed
// distance. Non-convex boundaries give incorrect results.
type ConstantMedium struct {
	Boundary      Hittable
	NegInvDensity float64
	PhaseFunction material.Material
}

// NewConstantMedium creates a medium with a flat-colored isotropic phase function
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewTexturedConstantMedium creates a medium whose phase function albedo comes from a texture
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.ColorSource) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit finds where the ray enters and leaves the boundary and samples a
// scattering distance inside that span
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+mediumExitEpsilon, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, tMin)
	t2 := math.Min(exit.T, tMax)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.NegInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox delegates to the boundary
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}
