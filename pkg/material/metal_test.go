package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Clamp below 0.0", -0.5, 0.0},
		{"Clamp large positive", 10.0, 1.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 0, 1),
		FrontFace: true,
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	if !scatter.Scattered.Direction.ApproxEquals(expected, 1e-10) {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, scatter.Scattered.Direction)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
}

func TestMetal_AbsorbedBelowSurface(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	sampler := core.NewSeededSampler(1)

	// Mirror direction of a ray travelling along the normal points into the surface
	rayIn := core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1)}

	if _, didScatter := metal.Scatter(rayIn, hit, sampler); didScatter {
		t.Error("Metal should absorb rays reflected below the surface")
	}
}

func TestMetal_FuzzyReflectionStaysNearMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.3)
	sampler := core.NewSeededSampler(3)

	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1))
	hit := HitRecord{Normal: core.NewVec3(0, 0, 1), FrontFace: true}
	mirror := core.NewVec3(0, -1, 1).Normalize()

	for i := 0; i < 100; i++ {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			continue
		}
		if scatter.Scattered.Direction.Subtract(mirror).Length() > 0.3+1e-9 {
			t.Errorf("Fuzzy reflection %v strays further than fuzz from mirror direction", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Direction.Dot(hit.Normal) <= 0 {
			t.Errorf("Scattered direction %v should be above surface", scatter.Scattered.Direction)
		}
	}
}
