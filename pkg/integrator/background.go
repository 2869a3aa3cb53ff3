package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Background is the radiance returned for rays that escape the scene
type Background interface {
	Color(ray core.Ray) core.Color
}

// SolidBackground returns the same color in every direction
type SolidBackground struct {
	Value core.Color
}

// NewSolidBackground creates a constant background; black makes emitters the only light
func NewSolidBackground(color core.Color) *SolidBackground {
	return &SolidBackground{Value: color}
}

// Color implements Background
func (b *SolidBackground) Color(ray core.Ray) core.Color {
	return b.Value
}

// GradientBackground blends between two colors by the height of the ray direction
type GradientBackground struct {
	Top    core.Color
	Bottom core.Color
}

// NewGradientBackground creates a vertical gradient background
func NewGradientBackground(top, bottom core.Color) *GradientBackground {
	return &GradientBackground{Top: top, Bottom: bottom}
}

// NewSkyBackground returns the white-to-blue sky used by daylight scenes
func NewSkyBackground() *GradientBackground {
	return NewGradientBackground(core.NewVec3(0.5, 0.7, 1.0), core.NewVec3(1.0, 1.0, 1.0))
}

// Color returns a gradient color based on ray direction
func (b *GradientBackground) Color(ray core.Ray) core.Color {
	// Normalize the ray direction to get consistent results
	unitDirection := ray.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return b.Bottom.Multiply(1.0 - t).Add(b.Top.Multiply(t))
}
