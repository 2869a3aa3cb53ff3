package integrator

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

// createTestWorld creates a simple scene with a sphere for testing
func createTestWorld() geometry.Hittable {
	lambertian := material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))
	return geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, lambertian))
}

// rayColorRecursive is the textbook recursive estimator the loop must agree with
func rayColorRecursive(ray core.Ray, world geometry.Hittable, background Background, depth int, sampler core.Sampler) core.Color {
	if depth <= 0 {
		return core.Vec3{}
	}
	hit, isHit := world.Hit(ray, ShadowAcneEpsilon, math.Inf(1), sampler)
	if !isHit {
		return background.Color(ray)
	}
	emitted := material.Emitted(hit.Material, hit.U, hit.V, hit.Point)
	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}
	return emitted.Add(scatter.Attenuation.MultiplyVec(rayColorRecursive(scatter.Scattered, world, background, depth-1, sampler)))
}

func TestPathTracingDepthTermination(t *testing.T) {
	world := createTestWorld()
	sampler := core.NewSeededSampler(42)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	white := NewSolidBackground(core.NewVec3(1, 1, 1))

	tests := []struct {
		name     string
		depth    int
		expected core.Color
	}{
		{"zero depth is black", 0, core.Vec3{}},
		{"negative depth is black", -3, core.Vec3{}},
		{"one bounce cannot reach the background", 1, core.Vec3{}},
		{"two bounces see the background through the albedo", 2, core.NewVec3(0.7, 0.3, 0.3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator := NewPathTracingIntegrator(white, tt.depth)
			color := integrator.RayColor(ray, world, sampler)
			if !color.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, color)
			}
		})
	}
}

func TestPathTracingMissReturnsBackground(t *testing.T) {
	world := createTestWorld()
	sampler := core.NewSeededSampler(1)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	backgrounds := []Background{
		NewSolidBackground(core.NewVec3(0.2, 0.4, 0.6)),
		NewSkyBackground(),
	}

	for _, background := range backgrounds {
		integrator := NewPathTracingIntegrator(background, 10)
		got := integrator.RayColor(ray, world, sampler)
		if want := background.Color(ray); !got.Equals(want) {
			t.Errorf("%T: expected background %v, got %v", background, want, got)
		}
	}
}

func TestPathTracingEmitterOnly(t *testing.T) {
	emission := core.NewVec3(4, 3, 2)
	light := geometry.NewXYRect(-1, 1, -1, 1, -2, material.NewDiffuseLight(emission))
	world := geometry.NewHittableList(light)

	// Lights absorb, so the bright background never contributes
	integrator := NewPathTracingIntegrator(NewSolidBackground(core.NewVec3(100, 100, 100)), 5)
	got := integrator.RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), world, core.NewSeededSampler(3))
	if !got.Equals(emission) {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}

func TestPathTracingMatchesRecursiveForm(t *testing.T) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	world := geometry.NewHittableList(
		geometry.NewYZRect(0, 555, 0, 555, 555, red),
		geometry.NewYZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(213, 343, 227, 332, 554, light),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
		geometry.NewSphere(core.NewVec3(190, 90, 190), 90, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(400, 100, 300), 80, material.NewMetal(core.NewVec3(0.8, 0.85, 0.88), 0.1)),
	)
	background := NewSolidBackground(core.NewVec3(0.1, 0.1, 0.1))
	integrator := NewPathTracingIntegrator(background, 20)

	rays := core.NewSeededSampler(77)
	for i := 0; i < 50; i++ {
		target := core.NewVec3(core.RandomRange(rays, 0, 555), core.RandomRange(rays, 0, 555), 555)
		origin := core.NewVec3(278, 278, -800)
		ray := core.NewRay(origin, target.Subtract(origin))

		seed := int64(1000 + i)
		got := integrator.RayColor(ray, world, core.NewSeededSampler(seed))
		want := rayColorRecursive(ray, world, background, 20, core.NewSeededSampler(seed))

		tolerance := 1e-9 * math.Max(1, want.Length())
		if !got.ApproxEquals(want, tolerance) {
			t.Errorf("ray %d: loop %v, recursive %v", i, got, want)
		}
	}
}

func TestGradientBackground(t *testing.T) {
	top := core.NewVec3(0.5, 0.7, 1.0)
	bottom := core.NewVec3(1, 1, 1)
	background := NewGradientBackground(top, bottom)

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Color
	}{
		{"straight up", core.NewVec3(0, 5, 0), top},
		{"straight down", core.NewVec3(0, -2, 0), bottom},
		{"horizon", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := background.Color(core.NewRay(core.Vec3{}, tt.direction))
			if !got.ApproxEquals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
