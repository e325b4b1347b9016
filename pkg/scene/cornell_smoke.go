package scene

import (
	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/geometry"
	"github.com/df07/go-motion-raytracer/pkg/material"
	"github.com/df07/go-motion-raytracer/pkg/renderer"
)

// cornellSize is the edge length of the Cornell box
const cornellSize = 555.0

// cornellCamera looks into the open side of the Cornell box
func cornellCamera(lookFrom core.Vec3) renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        core.NewVec3(278, 278, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}
}

// NewCornellSmokeScene creates a Cornell box holding a block of dark smoke and a cube of light fog
func NewCornellSmokeScene(sampler core.Sampler) (*Scene, error) {
	sampler = samplerOrDefault(sampler)
	cameraConfig := cornellCamera(core.NewVec3(278, 278, -800))

	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewEmissive(core.NewVec3(7, 7, 7))

	world := geometry.NewHittableList(
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, cornellSize, green),
		geometry.NewYZRect(0, cornellSize, 0, cornellSize, 0, red),
		geometry.NewXZRect(113, 443, 127, 432, 554, light),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, cornellSize, white),
		geometry.NewXZRect(0, cornellSize, 0, cornellSize, 0, white),
		geometry.NewXYRect(0, cornellSize, 0, cornellSize, cornellSize, white),
	)

	tallBox := geometry.NewBox(core.NewVec3(265, 0, 295), core.NewVec3(430, 330, 460), white)
	shortBox := geometry.NewBox(core.NewVec3(130, 0, 65), core.NewVec3(295, 165, 230), white)

	world.Add(geometry.NewConstantMedium(tallBox, 0.01, core.NewVec3(0, 0, 0)))
	world.Add(geometry.NewConstantMedium(shortBox, 0.01, core.NewVec3(1, 1, 1)))

	config := samplingConfigFor(400, cameraConfig.AspectRatio)
	config.SamplesPerPixel = 200

	return newScene(world, cameraConfig, config, core.Vec3{}, sampler)
}
