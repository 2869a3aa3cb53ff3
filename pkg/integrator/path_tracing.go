package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShadowAcneEpsilon is the minimum hit distance for every bounce
const ShadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	Background Background
	MaxDepth   int // Maximum number of surface interactions per path
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background Background, maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		Background: background,
		MaxDepth:   maxDepth,
	}
}

// RayColor computes the color for a single ray using unidirectional path tracing.
// Each bounce adds the emitted light and multiplies the throughput by the attenuation;
// the path ends when it is absorbed, escapes to the background, or exhausts MaxDepth.
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Color {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for depth := pt.MaxDepth; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1), sampler)
		if !isHit {
			return color.Add(throughput.MultiplyVec(pt.Background.Color(ray)))
		}

		// Start with emitted light from the hit material
		emitted := material.Emitted(hit.Material, hit.U, hit.V, hit.Point)
		color = color.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			// Material absorbed the ray, only emitted light remains
			return color
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	// If we've exceeded the ray bounce limit, no more light is gathered
	return color
}
