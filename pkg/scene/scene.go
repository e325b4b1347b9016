package scene

import (
	"fmt"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/geometry"
	"github.com/df07/go-motion-raytracer/pkg/loaders"
	"github.com/df07/go-motion-raytracer/pkg/material"
	"github.com/df07/go-motion-raytracer/pkg/renderer"
)

// maxTextureSize bounds the edge length of image textures loaded by scenes
const maxTextureSize = 2048

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	World          geometry.Hittable // BVH over every object in the scene
	Background     core.Vec3         // Radiance returned by rays that escape
	SamplingConfig renderer.SamplingConfig
	BVHStats       geometry.BVHStats
	ObjectCount    int // Top-level objects before BVH construction
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera { return s.Camera }

// GetWorld returns the root of the scene's hittable hierarchy
func (s *Scene) GetWorld() geometry.Hittable { return s.World }

// GetBackground returns the background radiance
func (s *Scene) GetBackground() core.Vec3 { return s.Background }

// samplerOrDefault returns sampler, or one seeded with DefaultSeed when sampler is nil
func samplerOrDefault(sampler core.Sampler) core.Sampler {
	if sampler == nil {
		return core.NewSeededSampler(DefaultSeed)
	}
	return sampler
}

// newScene builds the world BVH over the camera's shutter window and assembles the scene
func newScene(objects *geometry.HittableList, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig, background core.Vec3, sampler core.Sampler) (*Scene, error) {
	bvh, err := geometry.NewBVHFromList(objects, cameraConfig.Time0, cameraConfig.Time1, sampler)
	if err != nil {
		return nil, fmt.Errorf("failed to build scene BVH: %w", err)
	}

	camera := renderer.NewCamera(cameraConfig)
	return &Scene{
		Camera:         camera,
		CameraConfig:   camera.Config(),
		World:          bvh,
		Background:     background,
		SamplingConfig: samplingConfig,
		BVHStats:       bvh.Stats(),
		ObjectCount:    objects.Len(),
	}, nil
}

// samplingConfigFor returns the default sampling config resized to the given width and aspect ratio
func samplingConfigFor(width int, aspectRatio float64) renderer.SamplingConfig {
	config := renderer.DefaultSamplingConfig()
	config.Width = width
	config.Height = max(1, int(float64(width)/aspectRatio))
	return config
}

// loadImageTexture loads a texture image, falling back to an empty texture
// (rendered cyan) when the file can't be read
func loadImageTexture(path string, logger core.Logger) *material.ImageTexture {
	imageData, err := loaders.LoadImageMaxSize(path, maxTextureSize)
	if err != nil {
		logger.Printf("Warning: using fallback texture: %v\n", err)
		return material.NewImageTexture(0, 0, nil)
	}
	return material.NewImageTexture(imageData.Width, imageData.Height, imageData.Pixels)
}
