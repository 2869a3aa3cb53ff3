package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

// RenderConfig contains rendering configuration
type RenderConfig struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Number of rays per pixel
	Seed            int64 // Base seed; each row derives its own generator from it
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		Seed:            42,
		NumWorkers:      runtime.NumCPU(),
	}
}

// RenderPixel averages samples jittered estimates for pixel (x, y), with y counted from the bottom row
func RenderPixel(camera *Camera, world geometry.Hittable, integ integrator.Integrator, x, y, width, height, samples int, sampler core.Sampler) core.Color {
	colorAccum := core.Vec3{}

	for sample := 0; sample < samples; sample++ {
		// Convert pixel coordinates to normalized coordinates with jitter
		s := (float64(x) + sampler.Get1D()) / float64(width-1)
		t := (float64(y) + sampler.Get1D()) / float64(height-1)

		ray := camera.GetRay(s, t, sampler)
		colorAccum = colorAccum.Add(integ.RayColor(ray, world, sampler))
	}

	return colorAccum.Divide(float64(samples))
}

// Raytracer renders a world through a camera into an Image
type Raytracer struct {
	camera     *Camera
	world      geometry.Hittable
	integrator integrator.Integrator
	config     RenderConfig
	logger     core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(camera *Camera, world geometry.Hittable, integ integrator.Integrator, config RenderConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		camera:     camera,
		world:      world,
		integrator: integ,
		config:     config,
		logger:     logger,
	}
}

// Render traces every pixel and returns the averaged linear radiance image.
// Output depends only on the configuration and seed, not on worker scheduling.
func (rt *Raytracer) Render(ctx context.Context) (*Image, RenderStats, error) {
	width, height := rt.config.Width, rt.config.Height
	if width < 2 || height < 2 {
		return nil, RenderStats{}, fmt.Errorf("image must be at least 2x2 pixels, got %dx%d", width, height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, fmt.Errorf("samples per pixel must be positive, got %d", rt.config.SamplesPerPixel)
	}

	numWorkers := rt.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	start := time.Now()
	rt.logger.Printf("Rendering %dx%d at %d spp with %d workers\n", width, height, rt.config.SamplesPerPixel, numWorkers)

	pool := NewWorkerPool(rt, numWorkers)
	pixels, err := pool.Run(ctx)
	if err != nil {
		return nil, RenderStats{}, fmt.Errorf("render failed: %w", err)
	}

	img, err := assembleImage(pixels, width, height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	stats := RenderStats{
		Rows:         height,
		TotalPixels:  width * height,
		TotalSamples: width * height * rt.config.SamplesPerPixel,
		Workers:      numWorkers,
		Duration:     time.Since(start),
	}
	rt.logger.Printf("Render complete in %v (%.0f samples/s)\n", stats.Duration, stats.SamplesPerSecond())

	return img, stats, nil
}

// renderRow computes every pixel of one image row (0 = top) and sends it to results
func (rt *Raytracer) renderRow(ctx context.Context, row int, results chan<- PixelResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width, height := rt.config.Width, rt.config.Height
	sampler := core.NewSeededSampler(rowSeed(rt.config.Seed, row))
	y := height - 1 - row

	for x := 0; x < width; x++ {
		color := RenderPixel(rt.camera, rt.world, rt.integrator, x, y, width, height, rt.config.SamplesPerPixel, sampler)
		select {
		case results <- PixelResult{Row: row, Col: x, Color: color}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// rowSeed mixes the base seed with a row index so rows get independent streams
func rowSeed(seed int64, row int) int64 {
	return int64(uint64(seed) + uint64(row+1)*0x9E3779B97F4A7C15)
}
