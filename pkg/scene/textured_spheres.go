package scene

import (
	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/geometry"
	"github.com/df07/go-motion-raytracer/pkg/material"
	"github.com/df07/go-motion-raytracer/pkg/renderer"
)

// outdoorCamera is the shared viewpoint of the textured sphere scenes
func outdoorCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		FocusDistance: 10,
	}
}

// NewTwoPerlinSpheresScene creates a marble sphere resting on a marble ground
func NewTwoPerlinSpheresScene(sampler core.Sampler) (*Scene, error) {
	sampler = samplerOrDefault(sampler)
	cameraConfig := outdoorCamera()

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, sampler))
	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return newScene(world, cameraConfig, samplingConfigFor(400, cameraConfig.AspectRatio), skyBlue, sampler)
}

// NewEarthScene creates a single globe wrapped in the image at texturePath.
// A missing or unreadable image is logged and rendered cyan.
func NewEarthScene(texturePath string, logger core.Logger) (*Scene, error) {
	if logger == nil {
		logger = core.NopLogger{}
	}
	cameraConfig := outdoorCamera()

	earth := material.NewTexturedLambertian(loadImageTexture(texturePath, logger))
	world := geometry.NewHittableList(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, earth))

	// A single object needs no random split axis
	return newScene(world, cameraConfig, samplingConfigFor(400, cameraConfig.AspectRatio), skyBlue, core.NewSequenceSampler(0))
}
