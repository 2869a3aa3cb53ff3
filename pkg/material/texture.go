package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials.
// Variants: SolidColor, CheckerTexture, ImageTexture, NoiseTexture and EarthTexture.
// All textures are immutable and safe for concurrent reads.
type Texture interface {
	// Value returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Value(u, v float64, point core.Vec3) core.Color

	texture()
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Color {
	return s.Color
}

func (s *SolidColor) texture() {}

// CheckerTexture alternates two textures in a 3D checker pattern
type CheckerTexture struct {
	Odd  Texture
	Even Texture
}

// NewCheckerTexture creates a checker pattern from two sub-textures
func NewCheckerTexture(odd, even Texture) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even}
}

// NewCheckerColors creates a checker pattern from two solid colors
func NewCheckerColors(odd, even core.Color) *CheckerTexture {
	return NewCheckerTexture(NewSolidColor(odd), NewSolidColor(even))
}

// Value picks the sub-texture from the sign of sin(10x)·sin(10y)·sin(10z)
func (c *CheckerTexture) Value(u, v float64, point core.Vec3) core.Color {
	sines := math.Sin(10*point.X) * math.Sin(10*point.Y) * math.Sin(10*point.Z)
	if sines < 0 {
		return c.Odd.Value(u, v, point)
	}
	return c.Even.Value(u, v, point)
}

func (c *CheckerTexture) texture() {}

// NoiseTexture is a marble-like pattern driven by Perlin turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a noise texture with its own Perlin generator
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(sampler), Scale: scale}
}

// Value returns a gray level 0.5·(1 + sin(scale·z + 10·turb(p)))
func (n *NoiseTexture) Value(u, v float64, point core.Vec3) core.Color {
	level := 0.5 * (1 + math.Sin(n.Scale*point.Z+10*n.Noise.Turbulence(point, DefaultTurbulenceDepth)))
	return core.NewVec3(level, level, level)
}

func (n *NoiseTexture) texture() {}
