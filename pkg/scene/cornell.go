package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0,
	}
}

func cornellSampling() SamplingConfig {
	return SamplingConfig{
		Width:           600,
		SamplesPerPixel: 200,
		MaxDepth:        50,
	}
}

// cornellRoom adds the walls, floor, ceiling and the given ceiling light, returning the white material
func cornellRoom(world *geometry.HittableList, light *geometry.XZRect) *material.Lambertian {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	world.Add(geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green)) // Left wall, seen from the camera
	world.Add(geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red))
	world.Add(light)
	world.Add(geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white))       // Floor
	world.Add(geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white)) // Ceiling
	world.Add(geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white)) // Back wall

	return white
}

// cornellBlocks returns the tall and short boxes, rotated and moved into place
func cornellBlocks(white material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tall = geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	short = geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))

	return tall, short
}

// NewCornellBoxScene creates the classic Cornell box with two rotated blocks
func NewCornellBoxScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	world := geometry.NewHittableList()
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))
	white := cornellRoom(world, geometry.NewXZRect(213, 343, 227, 332, 554, light))

	tall, short := cornellBlocks(white)
	world.Add(tall)
	world.Add(short)

	return newScene("cornell-box", cornellCamera(), opts, world, integrator.NewSolidBackground(core.NewVec3(0, 0, 0)), cornellSampling(), sampler)
}

// NewCornellSmokeScene replaces the Cornell blocks with dark and light smoke under a larger, dimmer light
func NewCornellSmokeScene(opts Options) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)

	world := geometry.NewHittableList()
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))
	white := cornellRoom(world, geometry.NewXZRect(113, 443, 127, 432, 554, light))

	tall, short := cornellBlocks(white)
	world.Add(geometry.NewConstantMediumColor(tall, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMediumColor(short, 0.01, core.NewVec3(1, 1, 1)))

	return newScene("cornell-smoke", cornellCamera(), opts, world, integrator.NewSolidBackground(core.NewVec3(0, 0, 0)), cornellSampling(), sampler)
}
