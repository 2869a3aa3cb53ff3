package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// rectPadding thickens the flat axis of a rectangle's bounding box
const rectPadding = 0.0001

// XYRect is an axis-aligned rectangle in the plane z = K
type XYRect struct {
	X0, X1, Y0, Y1, K float64
	Material          material.Material
}

// NewXYRect creates a rectangle spanning [x0,x1]×[y0,y1] at z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *XYRect {
	return &XYRect{X0: x0, X1: x1, Y0: y0, Y1: y1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *XYRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, 0, 1, 2, r.X0, r.X1, r.Y0, r.Y1, r.K, core.NewVec3(0, 0, 1), r.Material)
}

// BoundingBox returns the rectangle's box, padded along z
func (r *XYRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.Y0, r.K-rectPadding),
		core.NewVec3(r.X1, r.Y1, r.K+rectPadding),
	), true
}

// XZRect is an axis-aligned rectangle in the plane y = K
type XZRect struct {
	X0, X1, Z0, Z1, K float64
	Material          material.Material
}

// NewXZRect creates a rectangle spanning [x0,x1]×[z0,z1] at y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *XZRect {
	return &XZRect{X0: x0, X1: x1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *XZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, 0, 2, 1, r.X0, r.X1, r.Z0, r.Z1, r.K, core.NewVec3(0, 1, 0), r.Material)
}

// BoundingBox returns the rectangle's box, padded along y
func (r *XZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.X0, r.K-rectPadding, r.Z0),
		core.NewVec3(r.X1, r.K+rectPadding, r.Z1),
	), true
}

// YZRect is an axis-aligned rectangle in the plane x = K
type YZRect struct {
	Y0, Y1, Z0, Z1, K float64
	Material          material.Material
}

// NewYZRect creates a rectangle spanning [y0,y1]×[z0,z1] at x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *YZRect {
	return &YZRect{Y0: y0, Y1: y1, Z0: z0, Z1: z1, K: k, Material: material}
}

// Hit tests if a ray intersects with the rectangle
func (r *YZRect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return hitAxisRect(ray, tMin, tMax, 1, 2, 0, r.Y0, r.Y1, r.Z0, r.Z1, r.K, core.NewVec3(1, 0, 0), r.Material)
}

// BoundingBox returns the rectangle's box, padded along x
func (r *YZRect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(
		core.NewVec3(r.K-rectPadding, r.Y0, r.Z0),
		core.NewVec3(r.K+rectPadding, r.Y1, r.Z1),
	), true
}

// hitAxisRect intersects the plane axis k = K and checks the extents along axes a and b.
// u runs along a and v along b.
func hitAxisRect(ray core.Ray, tMin, tMax float64, a, b, k int, a0, a1, b0, b1, plane float64, outwardNormal core.Vec3, mat material.Material) (*material.HitRecord, bool) {
	t := (plane - ray.Origin.Axis(k)) / ray.Direction.Axis(k)

	// Negated form also rejects the NaN of a ray lying in the plane
	if !(t > tMin && t < tMax) {
		return nil, false
	}

	pa := ray.Origin.Axis(a) + t*ray.Direction.Axis(a)
	pb := ray.Origin.Axis(b) + t*ray.Direction.Axis(b)
	if pa < a0 || pa > a1 || pb < b0 || pb > b1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (pa - a0) / (a1 - a0),
		V:        (pb - b0) / (b1 - b0),
		Material: mat,
	}
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
