package geometry

import (
	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

// Hittable is implemented by everything a ray can be intersected with:
// primitives, aggregates and acceleration structures.
type Hittable interface {
	// Hit returns the intersection with parameter t in [tMin, tMax], if any.
	// The sampler is only consumed by stochastic hittables such as ConstantMedium.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the time window
	// [time0, time1], or false if the object cannot be bounded.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
