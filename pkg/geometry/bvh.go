package geometry

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

var (
	// ErrEmptyBVH is returned when a BVH is built from no objects
	ErrEmptyBVH = errors.New("bvh: no objects to build from")
	// ErrNoBoundingBox is returned when an object passed to the BVH cannot be bounded
	ErrNoBoundingBox = errors.New("bvh: object has no bounding box")
)

// BVHNode is a node in a Bounding Volume Hierarchy. Children are either other
// nodes or leaf hittables; a node built over a single object holds that
// object in both children so traversal never has to check for nil.
// A built tree is immutable and safe for concurrent traversal.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB

	single bool     // Left and Right are the same leaf
	tree   *bvhTree // Shared by every node of one build
}

// bvhTree identifies the nodes created by a single NewBVHNode call
type bvhTree struct {
	objects int
}

// bvhEntry pairs an object with its bounding box over the build window
type bvhEntry struct {
	object Hittable
	box    core.AABB
}

// NewBVHNode builds a BVH over objects whose boxes are valid for [time0, time1].
// The split axis of every node is drawn from sampler. The objects slice is not modified.
func NewBVHNode(objects []Hittable, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyBVH
	}

	// Work on a private copy; the caller's slice must stay untouched
	entries := make([]bvhEntry, len(objects))
	for i, object := range objects {
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return nil, fmt.Errorf("%w: element %d (%T)", ErrNoBoundingBox, i, object)
		}
		entries[i] = bvhEntry{object: object, box: box}
	}

	return buildBVH(entries, sampler, &bvhTree{objects: len(entries)}), nil
}

// NewBVHFromList builds a BVH over the members of list
func NewBVHFromList(list *HittableList, time0, time1 float64, sampler core.Sampler) (*BVHNode, error) {
	return NewBVHNode(list.objects, time0, time1, sampler)
}

// buildBVH recursively splits entries at the median along a random axis
func buildBVH(entries []bvhEntry, sampler core.Sampler, tree *bvhTree) *BVHNode {
	axis := core.SampleInt(sampler, 0, 2)
	less := func(a, b bvhEntry) bool {
		return a.box.Min.Axis(axis) < b.box.Min.Axis(axis)
	}

	switch len(entries) {
	case 1:
		return &BVHNode{
			Left:   entries[0].object,
			Right:  entries[0].object,
			Box:    entries[0].box,
			single: true,
			tree:   tree,
		}
	case 2:
		first, second := entries[0], entries[1]
		if !less(first, second) {
			first, second = second, first
		}
		return &BVHNode{
			Left:  first.object,
			Right: second.object,
			Box:   core.SurroundingBox(first.box, second.box),
			tree:  tree,
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})

	mid := len(entries) / 2
	left := buildBVH(entries[:mid], sampler, tree)
	right := buildBVH(entries[mid:], sampler, tree)

	return &BVHNode{
		Left:  left,
		Right: right,
		Box:   core.SurroundingBox(left.Box, right.Box),
		tree:  tree,
	}
}

// Hit tests the ray against the node's box, then the left child, then the
// right child restricted to anything closer than the left hit
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)
	if hitLeft {
		tMax = leftHit.T
	}

	if rightHit, hitRight := n.Right.Hit(ray, tMin, tMax, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the box computed at construction time
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// BVHStats describes the shape of a built hierarchy
type BVHStats struct {
	TotalNodes int // Nodes of this hierarchy, including the root
	Leaves     int // Objects the hierarchy was built over; a nested BVH counts as one
	MaxDepth   int // Depth of the deepest node, root is 0
}

// Stats walks the tree and collects structural statistics. Nested BVHs
// passed in as objects are leaves and are not descended into.
func (n *BVHNode) Stats() BVHStats {
	var stats BVHStats
	n.collectStats(0, &stats)
	return stats
}

func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left, n.Right}
	if n.single {
		children = children[:1]
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok && node.tree == n.tree {
			node.collectStats(depth+1, stats)
		} else {
			stats.Leaves++
		}
	}
}
