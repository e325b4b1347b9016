package geometry

import (
	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

// HittableList is a flat collection of hittables searched linearly
type HittableList struct {
	objects []Hittable
}

// NewHittableList creates a list holding the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.objects = append(l.objects, object)
}

// Clear removes all objects from the list
func (l *HittableList) Clear() {
	l.objects = nil
}

// Objects returns a copy of the list's members in insertion order
func (l *HittableList) Objects() []Hittable {
	objects := make([]Hittable, len(l.objects))
	copy(objects, l.objects)
	return objects
}

// Len returns the number of objects in the list
func (l *HittableList) Len() int {
	return len(l.objects)
}

// Hit returns the closest intersection among all members. Members hitting at
// exactly the same t keep the earliest one.
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.objects {
		hit, isHit := object.Hit(ray, tMin, closestSoFar, sampler)
		if isHit && (closestHit == nil || hit.T < closestSoFar) {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes. It fails for an empty
// list or when any member cannot be bounded.
func (l *HittableList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.objects) == 0 {
		return core.AABB{}, false
	}

	var outputBox core.AABB
	for i, object := range l.objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			outputBox = box
		} else {
			outputBox = core.SurroundingBox(outputBox, box)
		}
	}

	return outputBox, true
}
