package core

import (
	"math"
	"testing"
)

func TestRandomInUnitSphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(sampler)
		if p.Length() > 1.0+1e-12 {
			t.Fatalf("Point %v lies outside the unit sphere", p)
		}
	}
}

func TestRandomUnitVector(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(sampler)
		if math.Abs(v.Length()-1.0) > 1e-9 {
			t.Fatalf("Expected unit length, got %f", v.Length())
		}
	}
}

func TestRandomInHemisphere(t *testing.T) {
	sampler := NewSeededSampler(42)
	normal := NewVec3(0, 0, 1)
	for i := 0; i < 1000; i++ {
		v := RandomInHemisphere(normal, sampler)
		if v.Dot(normal) < 0 {
			t.Fatalf("Direction %v points away from the hemisphere", v)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	sampler := NewSeededSampler(42)
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(sampler)
		if p.Z != 0 {
			t.Fatalf("Expected z=0, got %f", p.Z)
		}
		if p.X*p.X+p.Y*p.Y > 1.0+1e-12 {
			t.Fatalf("Point %v lies outside the unit disk", p)
		}
	}
}

func TestRandomRangeAndInt(t *testing.T) {
	sampler := NewSeededSampler(1)
	for i := 0; i < 1000; i++ {
		if v := RandomRange(sampler, -2, 3); v < -2 || v >= 3 {
			t.Fatalf("RandomRange out of bounds: %f", v)
		}
		if n := RandomInt(sampler, 0, 255); n < 0 || n > 255 {
			t.Fatalf("RandomInt out of bounds: %d", n)
		}
	}
}

func TestSeededSampler_Deterministic(t *testing.T) {
	a := NewSeededSampler(99)
	b := NewSeededSampler(99)
	for i := 0; i < 10; i++ {
		if a.Get1D() != b.Get1D() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
	}
}

func TestSequenceSampler(t *testing.T) {
	s := NewSequenceSampler(0.1, 0.2)
	got := []float64{s.Get1D(), s.Get1D(), s.Get1D()}
	want := []float64{0.1, 0.2, 0.1}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Value %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}
