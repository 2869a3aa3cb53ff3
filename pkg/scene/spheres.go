package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// outdoorCamera is the camera shared by the sphere scenes
func outdoorCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(13, 2, 3),
		LookAt:      core.NewVec3(0, 0, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        20.0,
		AspectRatio: 16.0 / 9.0,
	}
}

func outdoorSampling() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// NewRandomSpheresScene creates a checkered ground covered in small random spheres,
// the diffuse ones bouncing during the shutter interval, plus three large feature spheres
func NewRandomSpheresScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	config := outdoorCamera()
	config.Aperture = 0.1
	config.FocusDistance = 10.0
	config.Time0 = 0.0
	config.Time1 = 1.0

	world := geometry.NewHittableList()

	checker := material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	clearing := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+0.9*sampler.Get1D(),
				0.2,
				float64(b)+0.9*sampler.Get1D(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// Diffuse, moving upward while the shutter is open
				albedo := core.RandomVec3(sampler).MultiplyVec(core.RandomVec3(sampler))
				center1 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center1, 0.0, 1.0, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	return newScene("random-spheres", config, opts, world, integrator.NewSkyBackground(), outdoorSampling(), sampler)
}

// NewTwoSpheresScene creates two large checkered spheres touching at the origin
func NewTwoSpheresScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	checker := material.NewTexturedLambertian(
		material.NewCheckerColors(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)),
	)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return newScene("two-spheres", outdoorCamera(), opts, world, integrator.NewSkyBackground(), outdoorSampling(), sampler)
}

// NewTwoPerlinSpheresScene creates a marble sphere resting on a marble ground
func NewTwoPerlinSpheresScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return newScene("two-perlin-spheres", outdoorCamera(), opts, world, integrator.NewSkyBackground(), outdoorSampling(), sampler)
}

// NewEarthScene creates a single image-textured globe
func NewEarthScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	surface := material.NewTexturedLambertian(earthTexture(opts))
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, surface))

	return newScene("earth", outdoorCamera(), opts, world, integrator.NewSkyBackground(), outdoorSampling(), sampler)
}

// earthTexture loads the configured image, falling back to a procedural map when it can't be read
func earthTexture(opts Options) material.Texture {
	path := opts.texturePath()
	texture, err := loaders.LoadImageTexture(path)
	if err != nil {
		opts.logger().Printf("Warning: %v, using procedural earth texture\n", err)
		// Separate sampler so the scene layout doesn't depend on whether the file exists
		return material.NewEarthTexture(core.NewSeededSampler(opts.Seed))
	}
	return texture
}

// NewSimpleLightScene creates the Perlin spheres lit only by a rectangle and a sphere light
func NewSimpleLightScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	config := outdoorCamera()
	config.LookFrom = core.NewVec3(26, 3, 6)
	config.LookAt = core.NewVec3(0, 2, 0)

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		geometry.NewXYRect(3, 5, 1, 3, -2, light),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
	)

	sampling := outdoorSampling()
	sampling.SamplesPerPixel = 400

	return newScene("simple-light", config, opts, world, integrator.NewSolidBackground(core.NewVec3(0, 0, 0)), sampling, sampler)
}
