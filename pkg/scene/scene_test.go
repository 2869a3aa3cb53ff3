package scene

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Printf(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

// sphereCenters lists the center (or start and end centers) of every sphere in the list
func sphereCenters(list *geometry.HittableList) []core.Vec3 {
	var centers []core.Vec3
	for _, object := range list.Objects {
		switch s := object.(type) {
		case *geometry.Sphere:
			centers = append(centers, s.Center)
		case *geometry.MovingSphere:
			centers = append(centers, s.Center0, s.Center1)
		}
	}
	return centers
}

func TestRandomSpheresSceneDeterministic(t *testing.T) {
	opts := DefaultOptions()
	a := NewRandomSpheresScene(opts)
	b := NewRandomSpheresScene(opts)

	centersA := sphereCenters(a.Objects)
	centersB := sphereCenters(b.Objects)
	if len(centersA) != len(centersB) {
		t.Fatalf("Same seed produced %d and %d centers", len(centersA), len(centersB))
	}
	for i := range centersA {
		if !centersA[i].Equals(centersB[i]) {
			t.Fatalf("Center %d differs: %v vs %v", i, centersA[i], centersB[i])
		}
	}

	opts.Seed = 7
	c := NewRandomSpheresScene(opts)
	centersC := sphereCenters(c.Objects)
	same := len(centersA) == len(centersC)
	for i := 0; same && i < len(centersA); i++ {
		same = centersA[i].Equals(centersC[i])
	}
	if same {
		t.Error("Expected a different seed to produce a different layout")
	}
}

func TestRandomSpheresSceneLayout(t *testing.T) {
	s := NewRandomSpheresScene(DefaultOptions())

	moving := 0
	clearing := core.NewVec3(4, 0.2, 0)
	for _, object := range s.Objects.Objects {
		switch sphere := object.(type) {
		case *geometry.MovingSphere:
			moving++
			if sphere.Time0 != 0 || sphere.Time1 != 1 {
				t.Errorf("Expected moving sphere over [0,1], got [%v,%v]", sphere.Time0, sphere.Time1)
			}
			rise := sphere.Center1.Subtract(sphere.Center0)
			if rise.X != 0 || rise.Z != 0 || rise.Y < 0 || rise.Y > 0.5 {
				t.Errorf("Expected vertical rise within [0,0.5], got %v", rise)
			}
		case *geometry.Sphere:
			if sphere.Radius == 0.2 && sphere.Center.Subtract(clearing).Length() <= 0.9 {
				t.Errorf("Small sphere at %v intrudes on the clearing", sphere.Center)
			}
		}
	}

	if moving == 0 {
		t.Error("Expected some moving spheres")
	}
	// Ground + at most 22x22 small spheres + 3 feature spheres
	if n := s.GetPrimitiveCount(); n < 4 || n > 1+22*22+3 {
		t.Errorf("Unexpected object count %d", n)
	}
	if s.CameraConfig.Time1 != 1.0 || s.CameraConfig.Aperture != 0.1 {
		t.Errorf("Expected shutter [0,1] and aperture 0.1, got %+v", s.CameraConfig)
	}
}

func TestCameraOverrides(t *testing.T) {
	opts := DefaultOptions()
	opts.Camera.VFov = 30
	opts.Camera.LookFrom = core.NewVec3(1, 2, 3)

	s := NewTwoSpheresScene(opts)

	if s.CameraConfig.VFov != 30 {
		t.Errorf("Expected overridden VFov 30, got %v", s.CameraConfig.VFov)
	}
	if !s.CameraConfig.LookFrom.Equals(core.NewVec3(1, 2, 3)) {
		t.Errorf("Expected overridden LookFrom, got %v", s.CameraConfig.LookFrom)
	}
	if !s.CameraConfig.LookAt.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected LookAt to keep the scene default, got %v", s.CameraConfig.LookAt)
	}
	if s.Camera.Config().VFov != 30 {
		t.Errorf("Expected camera built from merged config, got VFov %v", s.Camera.Config().VFov)
	}
}

func TestSetWidth(t *testing.T) {
	tests := []struct {
		name           string
		create         func(Options) *Scene
		width          int
		expectedHeight int
	}{
		{"wide", NewTwoSpheresScene, 320, 180},
		{"square", NewCornellBoxScene, 100, 100},
		{"tiny", NewTwoSpheresScene, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.create(DefaultOptions())
			s.SetWidth(tt.width)
			if s.SamplingConfig.Width != tt.width || s.SamplingConfig.Height != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.width, tt.expectedHeight,
					s.SamplingConfig.Width, s.SamplingConfig.Height)
			}
		})
	}
}

func TestRenderConfig(t *testing.T) {
	s := NewCornellBoxScene(DefaultOptions())

	config := s.RenderConfig(3)
	if config.Width != 600 || config.Height != 600 {
		t.Errorf("Expected 600x600, got %dx%d", config.Width, config.Height)
	}
	if config.SamplesPerPixel != s.SamplingConfig.SamplesPerPixel || config.Seed != s.SamplingConfig.Seed {
		t.Errorf("Render config does not match sampling config: %+v vs %+v", config, s.SamplingConfig)
	}
	if config.NumWorkers != 3 {
		t.Errorf("Expected 3 workers, got %d", config.NumWorkers)
	}

	if defaulted := s.RenderConfig(0); defaulted.NumWorkers <= 0 {
		t.Errorf("Expected default worker count, got %d", defaulted.NumWorkers)
	}

	if got := s.Integrator().MaxDepth; got != s.SamplingConfig.MaxDepth {
		t.Errorf("Expected integrator depth %d, got %d", s.SamplingConfig.MaxDepth, got)
	}
}

func TestEarthTextureFallback(t *testing.T) {
	logger := &recordingLogger{}
	opts := DefaultOptions()
	opts.TexturePath = "testdata/missing-earth.jpg"
	opts.Logger = logger

	s := NewEarthScene(opts)
	if s.GetPrimitiveCount() != 1 {
		t.Fatalf("Expected a single globe, got %d objects", s.GetPrimitiveCount())
	}

	if len(logger.messages) != 1 {
		t.Fatalf("Expected one warning, got %v", logger.messages)
	}
	if !strings.Contains(logger.messages[0], "missing-earth.jpg") {
		t.Errorf("Expected warning to name the missing file, got %q", logger.messages[0])
	}

	globe, ok := s.Objects.Objects[0].(*geometry.Sphere)
	if !ok {
		t.Fatalf("Expected a sphere, got %T", s.Objects.Objects[0])
	}
	surface, ok := globe.Material.(*material.Lambertian)
	if !ok {
		t.Fatalf("Expected a Lambertian globe, got %T", globe.Material)
	}
	if _, ok := surface.Albedo.(*material.EarthTexture); !ok {
		t.Errorf("Expected the procedural earth texture, got %T", surface.Albedo)
	}
}

func TestCornellSmokeUsesMedia(t *testing.T) {
	s := NewCornellSmokeScene(DefaultOptions())

	media := 0
	for _, object := range s.Objects.Objects {
		if _, ok := object.(*geometry.ConstantMedium); ok {
			media++
		}
	}
	if media != 2 {
		t.Errorf("Expected 2 smoke volumes, got %d", media)
	}
}

func TestSceneRender(t *testing.T) {
	render := func() []core.Color {
		s := NewCornellBoxScene(DefaultOptions())
		s.SetWidth(8)
		s.SamplingConfig.SamplesPerPixel = 2
		s.SamplingConfig.MaxDepth = 4

		img, stats, err := s.NewRaytracer(2, nil).Render(context.Background())
		if err != nil {
			t.Fatalf("Render failed: %v", err)
		}
		if img.Width != 8 || img.Height != 8 {
			t.Fatalf("Expected 8x8 image, got %dx%d", img.Width, img.Height)
		}
		if stats.TotalPixels != 64 {
			t.Errorf("Expected 64 pixels, got %d", stats.TotalPixels)
		}
		return img.Pixels
	}

	first := render()
	second := render()
	for i := range first {
		if first[i].HasNaN() {
			t.Fatalf("Pixel %d is NaN", i)
		}
		if !first[i].Equals(second[i]) {
			t.Fatalf("Pixel %d differs between renders: %v vs %v", i, first[i], second[i])
		}
	}
}
