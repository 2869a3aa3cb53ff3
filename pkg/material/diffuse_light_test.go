package material

import (
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_Scatter(t *testing.T) {
	tests := []struct {
		name     string
		emission core.Vec3
	}{
		{"Red emission", core.NewVec3(1.0, 0.0, 0.0)},
		{"White emission", core.NewVec3(1.0, 1.0, 1.0)},
		{"Zero emission", core.NewVec3(0.0, 0.0, 0.0)},
		{"High intensity emission", core.NewVec3(10.0, 5.0, 2.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			light := NewDiffuseLight(tt.emission)

			ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
			hit := HitRecord{
				Point:     core.NewVec3(1, 0, 0),
				Normal:    core.NewVec3(-1, 0, 0),
				FrontFace: true,
			}

			if _, didScatter := light.Scatter(ray, hit, core.NewSeededSampler(42)); didScatter {
				t.Error("Diffuse lights should not scatter rays")
			}

			emitted := Emitted(light, 0.5, 0.5, hit.Point)
			if !emitted.Equals(tt.emission) {
				t.Errorf("Expected emission %v, got %v", tt.emission, emitted)
			}
		})
	}
}

func TestEmitted_NonEmitterIsBlack(t *testing.T) {
	materials := []Material{
		NewLambertian(core.NewVec3(1, 1, 1)),
		NewMetal(core.NewVec3(1, 1, 1), 0),
		NewDielectric(1.5),
		NewIsotropic(core.NewVec3(1, 1, 1)),
	}

	for _, m := range materials {
		if got := Emitted(m, 0, 0, core.Vec3{}); !got.Equals(core.Vec3{}) {
			t.Errorf("%T should not emit, got %v", m, got)
		}
	}
}

func TestDiffuseLight_TexturedEmission(t *testing.T) {
	light := NewTexturedDiffuseLight(NewCheckerColors(core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0)))

	if got := light.Emitted(0, 0, core.NewVec3(-0.1, 0.1, 0.1)); !got.Equals(core.NewVec3(4, 0, 0)) {
		t.Errorf("Expected odd emission, got %v", got)
	}
	if got := light.Emitted(0, 0, core.NewVec3(0.1, 0.1, 0.1)); !got.Equals(core.NewVec3(0, 4, 0)) {
		t.Errorf("Expected even emission, got %v", got)
	}
}

func TestIsotropic_ScatterIsUniform(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	phase := NewIsotropic(albedo)
	sampler := core.NewSeededSampler(5)
	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: core.NewVec3(1, 0, 0), FrontFace: true}
	rayIn := core.NewRayAtTime(core.Vec3{}, core.NewVec3(1, 0, 0), 0.5)

	var sum core.Vec3
	const n = 2000
	for i := 0; i < n; i++ {
		scatter, didScatter := phase.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatal("Isotropic should always scatter")
		}
		if !scatter.Attenuation.Equals(albedo) {
			t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Direction.Length() > 1+1e-9 {
			t.Errorf("Direction %v should lie in the unit ball", scatter.Scattered.Direction)
		}
		if scatter.Scattered.Time != 0.5 {
			t.Errorf("Expected time 0.5, got %f", scatter.Scattered.Time)
		}
		sum = sum.Add(scatter.Scattered.Direction)
	}

	mean := sum.Divide(n)
	if mean.Length() > 0.1 {
		t.Errorf("Mean scatter direction %v should be near zero", mean)
	}
}
