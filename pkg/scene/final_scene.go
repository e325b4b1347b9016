package scene

import (
	"fmt"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/geometry"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

// NewFinalScene combines every feature of the renderer in one image. Ground
// boxes and the small sphere cluster are nested BVHs inside the world BVH.
func NewFinalScene(sampler core.Sampler, texturePath string, logger core.Logger) (*Scene, error) {
	sampler = samplerOrDefault(sampler)
	if logger == nil {
		logger = core.NopLogger{}
	}
	cameraConfig := cornellCamera(core.NewVec3(478, 278, -600))

	world := geometry.NewHittableList()

	// Ground: a 20x20 grid of boxes with random heights, grouped in their own BVH
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	const boxWidth = 100.0
	groundBoxes := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000 + float64(i)*boxWidth
			z0 := -1000 + float64(j)*boxWidth
			y1 := core.SampleRange(sampler, 1, 101)
			groundBoxes = append(groundBoxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+boxWidth, y1, z0+boxWidth),
				ground,
			))
		}
	}
	groundBVH, err := geometry.NewBVHNode(groundBoxes, cameraConfig.Time0, cameraConfig.Time1, sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to build ground boxes: %w", err)
	}
	world.Add(groundBVH)

	light := material.NewEmissive(core.NewVec3(7, 7, 7))
	world.Add(geometry.NewXZRect(123, 423, 147, 412, 554, light))

	center0 := core.NewVec3(400, 400, 200)
	center1 := center0.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(center0, center1, 0, 1, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)))

	// Glass shell filled with blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary)
	world.Add(geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMedium(mist, 0.0001, core.NewVec3(1, 1, 1)))

	earth := material.NewTexturedLambertian(loadImageTexture(texturePath, logger))
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, earth))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(0.1, sampler))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	// A cube of small white spheres, offset into the upper left of the frame
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	offset := core.NewVec3(-100, 270, 395)
	const clusterSize = 1000
	cluster := make([]geometry.Hittable, 0, clusterSize)
	for i := 0; i < clusterSize; i++ {
		center := randomVec(sampler, 0, 165).Add(offset)
		cluster = append(cluster, geometry.NewSphere(center, 10, white))
	}
	clusterBVH, err := geometry.NewBVHNode(cluster, cameraConfig.Time0, cameraConfig.Time1, sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to build sphere cluster: %w", err)
	}
	world.Add(clusterBVH)

	config := samplingConfigFor(400, cameraConfig.AspectRatio)
	config.SamplesPerPixel = 250

	return newScene(world, cameraConfig, config, core.Vec3{}, sampler)
}
