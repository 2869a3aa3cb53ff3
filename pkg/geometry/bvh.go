package geometry

import (
	"fmt"
	"sort"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// BVHNode is a node of a Bounding Volume Hierarchy.
// Every node has exactly two children; a single object is stored as both.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	Box   core.AABB // Union of the children's boxes
}

// NewBVH builds a hierarchy over a list's objects
func NewBVH(list *HittableList, time0, time1 float64, sampler core.Sampler) *BVHNode {
	return NewBVHNode(list.Objects, time0, time1, sampler)
}

// NewBVHNode constructs a BVH from a slice of objects.
// It panics if the slice is empty or any object has no bounding box.
func NewBVHNode(objects []Hittable, time0, time1 float64, sampler core.Sampler) *BVHNode {
	if len(objects) == 0 {
		panic("bvh: no objects to partition")
	}

	// Make a copy of the objects slice to avoid reordering the caller's list
	objectsCopy := make([]Hittable, len(objects))
	copy(objectsCopy, objects)

	return buildBVH(objectsCopy, 0, len(objectsCopy), time0, time1, sampler)
}

// buildBVH recursively partitions objects[start:end] along a random axis
func buildBVH(objects []Hittable, start, end int, time0, time1 float64, sampler core.Sampler) *BVHNode {
	axis := core.RandomInt(sampler, 0, 2)
	less := func(a, b Hittable) bool {
		return boxMin(a, axis, time0, time1) < boxMin(b, axis, time0, time1)
	}

	node := &BVHNode{}
	span := end - start

	switch {
	case span == 1:
		node.Left = objects[start]
		node.Right = objects[start]
	case span == 2:
		if less(objects[start], objects[start+1]) {
			node.Left = objects[start]
			node.Right = objects[start+1]
		} else {
			node.Left = objects[start+1]
			node.Right = objects[start]
		}
	default:
		sub := objects[start:end]
		sort.Slice(sub, func(i, j int) bool {
			return less(sub[i], sub[j])
		})

		mid := start + span/2
		node.Left = buildBVH(objects, start, mid, time0, time1, sampler)
		node.Right = buildBVH(objects, mid, end, time0, time1, sampler)
	}

	node.Box = core.SurroundingBox(mustBox(node.Left, time0, time1), mustBox(node.Right, time0, time1))
	return node
}

// mustBox returns the object's box or panics: the hierarchy cannot hold unbounded objects
func mustBox(object Hittable, time0, time1 float64) core.AABB {
	box, ok := object.BoundingBox(time0, time1)
	if !ok {
		panic(fmt.Sprintf("bvh: no bounding box for %T", object))
	}
	return box
}

func boxMin(object Hittable, axis int, time0, time1 float64) float64 {
	return mustBox(object, time0, time1).Min.Axis(axis)
}

// Hit tests if a ray intersects any object in the BVH
func (n *BVHNode) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	// First check if ray hits the bounding box
	if !n.Box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, tMin, tMax, sampler)

	// The right child only needs to beat the left hit
	closestSoFar := tMax
	if hitLeft {
		closestSoFar = leftHit.T
	}
	if rightHit, hitRight := n.Right.Hit(ray, tMin, closestSoFar, sampler); hitRight {
		return rightHit, true
	}

	return leftHit, hitLeft
}

// BoundingBox returns the cached union box
func (n *BVHNode) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return n.Box, true
}

// Stats returns statistics about the BVH structure
func (n *BVHNode) Stats() BVHStats {
	stats := BVHStats{}
	n.collectStats(0, &stats)
	return stats
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes int // Interior nodes
	LeafNodes  int // Child slots holding a non-BVH object
	MaxDepth   int
}

// collectStats recursively collects statistics about the BVH
func (n *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	children := []Hittable{n.Left}
	if n.Right != n.Left {
		children = append(children, n.Right)
	}

	for _, child := range children {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(depth+1, stats)
		} else {
			stats.LeafNodes++
		}
	}
}
