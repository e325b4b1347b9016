package geometry

import (
	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

// Box is an axis-aligned box made of six rectangles
type Box struct {
	Min   core.Vec3
	Max   core.Vec3
	sides *HittableList
}

// NewBox creates the box spanning the two opposite corners p0 and p1
func NewBox(p0, p1 core.Vec3, material material.Material) *Box {
	min := core.MinVec(p0, p1)
	max := core.MaxVec(p0, p1)

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	// Edge order keeps every face normal pointing out of the box
	sides := NewHittableList(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, material), // +z
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dy, dx, material), // -z
		NewQuad(core.NewVec3(min.X, max.Y, min.Z), dz, dx, material), // +y
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, material), // -y
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dy, dz, material), // +x
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, material), // -x
	)

	return &Box{Min: min, Max: max, sides: sides}
}

// Hit returns the closest face hit
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box itself
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}
