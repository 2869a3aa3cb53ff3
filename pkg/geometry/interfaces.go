package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can intersect.
// Variants: Sphere, MovingSphere, XYRect, XZRect, YZRect, Box, Translate, RotateY,
// ConstantMedium, HittableList and BVHNode.
type Hittable interface {
	// Hit returns the closest intersection with tMin < t < tMax.
	// The sampler is only consumed by participating media; surfaces are deterministic.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box enclosing the object over the shutter interval,
	// or false when the object is unbounded.
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}
