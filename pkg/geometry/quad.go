package geometry

import (
	"math"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

// quadBoxPadding is the minimum thickness of a quad's bounding box along any axis
const quadBoxPadding = 0.0001

// Quad represents a planar parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Normal vector (computed from U × V)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: normal · x = D
	W        core.Vec3         // Cached vector for planar coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material material.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		D:        normal.Dot(corner),
		W:        cross.Multiply(1.0 / cross.Dot(cross)),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := ray.Direction.Dot(q.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - ray.Origin.Dot(q.Normal)) / denominator
	if !(t >= tMin && t <= tMax) {
		return nil, false
	}

	hitPoint := ray.At(t)
	hitVector := hitPoint.Subtract(q.Corner)

	// Planar coordinates of the hit point along U and V
	alpha := q.W.Dot(hitVector.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the box around the four corners, padded so no axis is flat
func (q *Quad) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box := core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	)
	return padBox(box, quadBoxPadding), true
}

// padBox widens any axis thinner than padding to exactly padding, centered on the original extent
func padBox(box core.AABB, padding float64) core.AABB {
	size := box.Size()
	half := padding / 2
	if size.X < padding {
		box.Min.X -= half
		box.Max.X += half
	}
	if size.Y < padding {
		box.Min.Y -= half
		box.Max.Y += half
	}
	if size.Z < padding {
		box.Min.Z -= half
		box.Max.Z += half
	}
	return box
}

// NewXYRect creates an axis-aligned rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *Quad {
	return NewQuad(core.NewVec3(x0, y0, k), core.NewVec3(x1-x0, 0, 0), core.NewVec3(0, y1-y0, 0), material)
}

// NewXZRect creates an axis-aligned rectangle in the plane y = k.
// The edge order makes the normal point along +Y.
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *Quad {
	return NewQuad(core.NewVec3(x0, k, z0), core.NewVec3(0, 0, z1-z0), core.NewVec3(x1-x0, 0, 0), material)
}

// NewYZRect creates an axis-aligned rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *Quad {
	return NewQuad(core.NewVec3(k, y0, z0), core.NewVec3(0, y1-y0, 0), core.NewVec3(0, 0, z1-z0), material)
}
