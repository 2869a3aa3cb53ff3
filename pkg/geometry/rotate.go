package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// RotateY rotates a child object about the y axis
type RotateY struct {
	Object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
	hasBox   bool
}

// NewRotateY rotates object by angle degrees about the y axis.
// The box is computed from the eight rotated corners of the child's box over [0,1].
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box, ok := object.BoundingBox(0, 1)
	if !ok {
		return r
	}

	minCorner := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxCorner := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				corner := core.NewVec3(
					float64(i)*box.Max.X+float64(1-i)*box.Min.X,
					float64(j)*box.Max.Y+float64(1-j)*box.Min.Y,
					float64(k)*box.Max.Z+float64(1-k)*box.Min.Z,
				)
				rotated := corner.RotateY(r.sinTheta, r.cosTheta)

				minCorner = core.NewVec3(math.Min(minCorner.X, rotated.X), math.Min(minCorner.Y, rotated.Y), math.Min(minCorner.Z, rotated.Z))
				maxCorner = core.NewVec3(math.Max(maxCorner.X, rotated.X), math.Max(maxCorner.Y, rotated.Y), math.Max(maxCorner.Z, rotated.Z))
			}
		}
	}

	r.bbox = core.NewAABB(minCorner, maxCorner)
	r.hasBox = true
	return r
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	origin := ray.Origin.RotateY(-r.sinTheta, r.cosTheta)
	direction := ray.Direction.RotateY(-r.sinTheta, r.cosTheta)
	rotated := core.NewRayAtTime(origin, direction, ray.Time)

	hit, ok := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	outwardNormal := hit.OutwardNormal().RotateY(r.sinTheta, r.cosTheta)
	hit.Point = hit.Point.RotateY(r.sinTheta, r.cosTheta)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the precomputed box of the rotated child
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.bbox, r.hasBox
}
