package renderer

import (
	"bytes"
	"image/png"
	"math"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected int
	}{
		{"black", 0, 0},
		{"negative", -1, 0},
		{"NaN", math.NaN(), 0},
		{"quarter becomes half after gamma", 0.25, 128},
		{"one", 1, 255},
		{"overexposed", 10, 255},
		{"infinite", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.input); got != tt.expected {
				t.Errorf("Quantize(%f) = %d, want %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWritePPM(t *testing.T) {
	img := NewImage(2, 2)
	img.Set(0, 0, core.NewVec3(1, 0, 0))
	img.Set(1, 0, core.NewVec3(0, 1, 0))
	img.Set(0, 1, core.NewVec3(0, 0, 1))
	img.Set(1, 1, core.NewVec3(0.25, 0.25, 0.25))

	var buf bytes.Buffer
	if err := WritePPM(&buf, img); err != nil {
		t.Fatalf("WritePPM failed: %v", err)
	}

	expected := strings.Join([]string{
		"P3",
		"2 2",
		"255",
		"255 0 0 0 255 0",
		"0 0 255 128 128 128",
		"",
	}, "\n")
	if buf.String() != expected {
		t.Errorf("Unexpected PPM output:\n%q\nwant:\n%q", buf.String(), expected)
	}
}

func TestToRGBAAndPNG(t *testing.T) {
	img := NewImage(3, 2)
	img.Set(2, 1, core.NewVec3(1, 0.25, 0))

	rgba := img.ToRGBA()
	c := rgba.RGBAAt(2, 1)
	if c.R != 255 || c.G != 128 || c.B != 0 || c.A != 255 {
		t.Errorf("Unexpected pixel %v", c)
	}

	var buf bytes.Buffer
	if err := WritePNG(&buf, img); err != nil {
		t.Fatalf("WritePNG failed: %v", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Errorf("Expected 3x2 PNG, got %v", b)
	}
}

func TestAssembleImageSortsResults(t *testing.T) {
	width, height := 3, 2
	var pixels []PixelResult
	// Arrive in reverse order, as if the last row finished first
	for row := height - 1; row >= 0; row-- {
		for col := width - 1; col >= 0; col-- {
			pixels = append(pixels, PixelResult{Row: row, Col: col, Color: core.NewVec3(float64(row), float64(col), 0)})
		}
	}

	img, err := assembleImage(pixels, width, height)
	if err != nil {
		t.Fatalf("assembleImage failed: %v", err)
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if got := img.At(col, row); !got.Equals(core.NewVec3(float64(row), float64(col), 0)) {
				t.Errorf("Pixel (%d,%d) = %v", col, row, got)
			}
		}
	}
}

func TestAssembleImageRejectsIncompleteResults(t *testing.T) {
	tests := []struct {
		name   string
		pixels []PixelResult
	}{
		{"missing pixel", []PixelResult{{Row: 0, Col: 0}}},
		{"duplicated pixel", []PixelResult{{Row: 0, Col: 0}, {Row: 0, Col: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := assembleImage(tt.pixels, 2, 1); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
