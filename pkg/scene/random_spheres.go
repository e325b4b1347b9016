package scene

import (
	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/geometry"
	"github.com/df07/go-motion-raytracer/pkg/material"
	"github.com/df07/go-motion-raytracer/pkg/renderer"
)

// NewRandomSpheresScene creates a checkered ground covered in small random
// spheres around three large ones. Diffuse spheres bounce upward during the
// shutter interval.
func NewRandomSpheresScene(sampler core.Sampler) (*Scene, error) {
	sampler = samplerOrDefault(sampler)
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	}

	world := geometry.NewHittableList()

	checker := material.NewCheckerTexture(core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	keepClear := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(keepClear).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := sampler.Get3D().MultiplyVec(sampler.Get3D())
				center1 := center.Add(core.NewVec3(0, core.SampleRange(sampler, 0, 0.5), 0))
				world.Add(geometry.NewMovingSphere(center, center1, 0, 1, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomVec(sampler, 0.5, 1)
				fuzz := core.SampleRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)))

	return newScene(world, cameraConfig, samplingConfigFor(400, cameraConfig.AspectRatio), skyBlue, sampler)
}

// skyBlue is the flat sky color of the outdoor scenes
var skyBlue = core.NewVec3(0.70, 0.80, 1.00)

// randomVec returns a vector with each component drawn from [min, max)
func randomVec(sampler core.Sampler, min, max float64) core.Vec3 {
	return core.NewVec3(
		core.SampleRange(sampler, min, max),
		core.SampleRange(sampler, min, max),
		core.SampleRange(sampler, min, max),
	)
}
