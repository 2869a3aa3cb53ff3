package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

const (
	earthContinentScale = 2.5  // Noise frequency over the unit sphere
	earthSeaLevel       = 0.05 // Noise level above which the surface is land
	earthIceCap         = 0.08 // Fraction of v at each pole covered in ice
)

// EarthTexture is a procedural planet: Perlin continents over an ocean, with polar ice.
// It is a function of (u, v) only, so the map follows the sphere it is wrapped on.
type EarthTexture struct {
	Noise *Perlin
	Ocean core.Color
	Land  core.Color
	Ice   core.Color
}

// NewEarthTexture creates a planet texture with its own Perlin generator
func NewEarthTexture(sampler core.Sampler) *EarthTexture {
	return &EarthTexture{
		Noise: NewPerlin(sampler),
		Ocean: core.NewVec3(0.05, 0.15, 0.45),
		Land:  core.NewVec3(0.25, 0.45, 0.15),
		Ice:   core.NewVec3(0.9, 0.9, 0.95),
	}
}

// Value returns ice near the poles, otherwise land or ocean by the noise height
func (e *EarthTexture) Value(u, v float64, point core.Vec3) core.Color {
	if v < earthIceCap || v > 1-earthIceCap {
		return e.Ice
	}

	dir := unitSphereDirection(u, v).Multiply(earthContinentScale)
	height := e.Noise.Noise(dir) + 0.5*e.Noise.Noise(dir.Multiply(2))
	if height <= earthSeaLevel {
		return e.Ocean
	}

	// Higher ground is drier
	dryness := math.Min((height-earthSeaLevel)*1.5, 1)
	return e.Land.Multiply(1 - 0.4*dryness).Add(core.NewVec3(0.4, 0.3, 0.15).Multiply(dryness))
}

func (e *EarthTexture) texture() {}

// unitSphereDirection inverts the sphere's (u, v) mapping back to a point on the unit sphere
func unitSphereDirection(u, v float64) core.Vec3 {
	phi := (1-u)*2*math.Pi - math.Pi
	theta := v * math.Pi
	return core.NewVec3(math.Sin(theta)*math.Cos(phi), -math.Cos(theta), math.Sin(theta)*math.Sin(phi))
}
