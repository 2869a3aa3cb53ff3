package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// missingImageColor flags textures without pixel data
var missingImageColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x], components in [0,1]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV is clamped to [0,1]; V=0 is the bottom row of the image.
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Color {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingImageColor
	}

	u = clamp01(u)
	v = 1.0 - clamp01(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))

	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}

func (t *ImageTexture) texture() {}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
