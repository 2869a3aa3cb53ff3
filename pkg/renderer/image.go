package renderer

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Image holds averaged linear radiance, row-major with the top row first
type Image struct {
	Width  int
	Height int
	Pixels []core.Color
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the pixel in column x of row y (0 = top)
func (img *Image) At(x, y int) core.Color {
	return img.Pixels[y*img.Width+x]
}

// Set stores the pixel in column x of row y (0 = top)
func (img *Image) Set(x, y int, c core.Color) {
	img.Pixels[y*img.Width+x] = c
}

// Quantize converts a linear component to an 8-bit value with gamma 2.
// NaN quantizes to 0.
func Quantize(component float64) int {
	c := math.Sqrt(component)
	if !(c > 0) {
		return 0
	}
	if c > 0.999 {
		c = 0.999
	}
	return int(256 * c)
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(c core.Color) color.RGBA {
	return color.RGBA{
		R: uint8(Quantize(c.X)),
		G: uint8(Quantize(c.Y)),
		B: uint8(Quantize(c.Z)),
		A: 255,
	}
}

// ToRGBA converts the image to a gamma-corrected 8-bit image
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			rgba.SetRGBA(x, y, vec3ToColor(img.At(x, y)))
		}
	}
	return rgba
}

// WritePNG encodes the image as PNG
func WritePNG(w io.Writer, img *Image) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// WritePPM writes the image as plain-text PPM: a P3 header followed by one line per row
func WritePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "P3\n%d %d\n255\n", img.Width, img.Height)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			if x > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%d %d %d", Quantize(c.X), Quantize(c.Y), Quantize(c.Z))
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write PPM: %w", err)
	}
	return nil
}
