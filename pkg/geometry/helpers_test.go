package geometry

import (
	"math"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

// taggedMaterial lets tests identify which primitive produced a hit
type taggedMaterial struct {
	id int
}

func (m *taggedMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// mockHittable records calls and delegates to hitFn
type mockHittable struct {
	box    core.AABB
	noBox  bool
	hitFn  func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
	calls  int
	lastTs [2]float64
}

func (m *mockHittable) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	m.calls++
	m.lastTs = [2]float64{tMin, tMax}
	if m.hitFn == nil {
		return nil, false
	}
	return m.hitFn(ray, tMin, tMax)
}

func (m *mockHittable) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.box, !m.noBox
}

// hitAt returns a hit function reporting a hit at a fixed t when it is in range
func hitAt(t float64) func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	return func(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
		if t < tMin || t > tMax {
			return nil, false
		}
		return &material.HitRecord{T: t, Point: ray.At(t)}, true
	}
}

func approxEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func vecApproxEqual(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}
