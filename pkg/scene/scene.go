package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Objects        *geometry.HittableList // Top-level objects, before acceleration
	World          geometry.Hittable      // BVH over Objects
	Background     integrator.Background
	SamplingConfig SamplingConfig
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int   // Image width
	Height          int   // Image height
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed for per-row samplers
}

// Options tune scene construction
type Options struct {
	Seed        int64                 // Seeds scene randomness (sphere layout, BVH axes, Perlin tables)
	TexturePath string                // Image used by texture-mapped spheres; "" uses the default
	Camera      renderer.CameraConfig // Non-zero fields override the scene's camera
	Logger      core.Logger
}

// DefaultTexturePath is the earth image looked up when Options.TexturePath is empty
const DefaultTexturePath = "assets/earthmap.jpg"

// DefaultOptions returns sensible default values
func DefaultOptions() Options {
	return Options{Seed: 42, TexturePath: DefaultTexturePath}
}

func (o Options) logger() core.Logger {
	if o.Logger == nil {
		return core.NopLogger{}
	}
	return o.Logger
}

func (o Options) texturePath() string {
	if o.TexturePath == "" {
		return DefaultTexturePath
	}
	return o.TexturePath
}

// newScene finishes a scene: merges camera overrides, builds the camera and
// wraps the objects in a BVH built with the scene's sampler
func newScene(name string, config renderer.CameraConfig, opts Options, objects *geometry.HittableList,
	background integrator.Background, sampling SamplingConfig, sampler core.Sampler) *Scene {
	config = renderer.MergeCameraConfig(config, opts.Camera)

	if sampling.Height == 0 {
		sampling.Height = heightFor(sampling.Width, config.AspectRatio)
	}
	sampling.Seed = opts.Seed

	return &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(config),
		CameraConfig:   config,
		Objects:        objects,
		World:          geometry.NewBVH(objects, config.Time0, config.Time1, sampler),
		Background:     background,
		SamplingConfig: sampling,
	}
}

func heightFor(width int, aspectRatio float64) int {
	height := int(float64(width) / aspectRatio)
	if height < 1 {
		height = 1
	}
	return height
}

// SetWidth changes the image width and derives the height from the camera's aspect ratio
func (s *Scene) SetWidth(width int) {
	s.SamplingConfig.Width = width
	s.SamplingConfig.Height = heightFor(width, s.CameraConfig.AspectRatio)
}

// Integrator returns a path tracing integrator using the scene's background and depth
func (s *Scene) Integrator() *integrator.PathTracingIntegrator {
	return integrator.NewPathTracingIntegrator(s.Background, s.SamplingConfig.MaxDepth)
}

// RenderConfig converts the sampling configuration into a renderer configuration.
// numWorkers <= 0 keeps the renderer's default worker count.
func (s *Scene) RenderConfig(numWorkers int) renderer.RenderConfig {
	config := renderer.DefaultRenderConfig()
	config.Width = s.SamplingConfig.Width
	config.Height = s.SamplingConfig.Height
	config.SamplesPerPixel = s.SamplingConfig.SamplesPerPixel
	config.Seed = s.SamplingConfig.Seed
	if numWorkers > 0 {
		config.NumWorkers = numWorkers
	}
	return config
}

// NewRaytracer wires the scene into a renderer
func (s *Scene) NewRaytracer(numWorkers int, logger core.Logger) *renderer.Raytracer {
	return renderer.NewRaytracer(s.Camera, s.World, s.Integrator(), s.RenderConfig(numWorkers), logger)
}

// GetPrimitiveCount returns the number of top-level objects in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.Objects.Len()
}
