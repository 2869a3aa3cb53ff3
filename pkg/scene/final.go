package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

const (
	groundBoxesPerSide = 20
	sphereClusterSize  = 1000
)

// NewFinalScene creates the showcase scene: a field of boxes, a moving sphere,
// glass and metal, subsurface-like and global fog volumes, an earth, marble,
// and a rotated cluster of small spheres
func NewFinalScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	config := renderer.CameraConfig{
		LookFrom:    core.NewVec3(478, 278, -600),
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
		Time0:       0.0,
		Time1:       1.0,
	}

	world := geometry.NewHittableList()

	// Ground of boxes with random heights
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	for i := 0; i < groundBoxesPerSide; i++ {
		for j := 0; j < groundBoxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	world.Add(geometry.NewBVH(boxes, config.Time0, config.Time1, sampler))

	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass shell filled with blue smoke
	shell := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(shell)
	world.Add(geometry.NewConstantMediumColor(shell, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin fog over everything
	fog := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(fog, 0.0001, core.NewVec3(1, 1, 1)))

	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture(opts))))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for i := 0; i < sphereClusterSize; i++ {
		cluster.Add(geometry.NewSphere(core.RandomVec3Range(sampler, 0, 165), 10, white))
	}
	world.Add(geometry.NewTranslate(
		geometry.NewRotateY(geometry.NewBVH(cluster, config.Time0, config.Time1, sampler), 15),
		core.NewVec3(-100, 270, 395),
	))

	sampling := SamplingConfig{
		Width:           800,
		SamplesPerPixel: 1000,
		MaxDepth:        40,
	}

	return newScene("final", config, opts, world, integrator.NewSolidBackground(core.NewVec3(0, 0, 0)), sampling, sampler)
}
