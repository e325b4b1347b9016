package renderer

import (
	"context"
	"fmt"
	"image"
	"log"
	"math"
	"os"
	"time"

	"github.com/df07/go-motion-raytracer/pkg/core"
	"github.com/df07/go-motion-raytracer/pkg/geometry"
	"github.com/df07/go-motion-raytracer/pkg/material"
)

// DefaultTileSize is the edge length of render tiles in pixels
const DefaultTileSize = 32

// rayEpsilon keeps secondary rays from re-hitting the surface they leave
const rayEpsilon = 0.001

// DefaultLogger implements core.Logger on top of the standard logger
type DefaultLogger struct {
	logger *log.Logger
}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	dl.logger.Printf(format, args...)
}

// NewDefaultLogger creates a logger writing to stdout with a [raytracer] prefix
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{logger: log.New(os.Stdout, "[raytracer] ", log.LstdFlags)}
}

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// RenderOptions controls how a pass is split across workers
type RenderOptions struct {
	NumWorkers int   // Number of parallel workers (0 = physical core count)
	TileSize   int   // Tile edge length (0 = DefaultTileSize)
	Seed       int64 // Base seed; tile i samples from Seed+i
}

// DefaultRenderOptions returns sensible default values
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		NumWorkers: 0,
		TileSize:   DefaultTileSize,
		Seed:       42,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetWorld() geometry.Hittable
	GetBackground() core.Vec3
}

// Raytracer handles the rendering process
type Raytracer struct {
	scene   Scene
	config  SamplingConfig
	options RenderOptions
	logger  core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(scene Scene, config SamplingConfig, options RenderOptions, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:   scene,
		config:  config,
		options: options,
		logger:  logger,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// GetSamplingConfig returns the current sampling configuration
func (rt *Raytracer) GetSamplingConfig() SamplingConfig {
	return rt.config
}

// RayColor returns the radiance carried back along ray. Misses return the
// scene background; hits add the material's emission to its attenuated scatter.
func (rt *Raytracer) RayColor(ray core.Ray, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.GetWorld().Hit(ray, rayEpsilon, math.Inf(1), sampler)
	if !isHit {
		return rt.scene.GetBackground()
	}
	if hit.Material == nil {
		return core.Vec3{}
	}

	var emitted core.Vec3
	if emitter, ok := hit.Material.(material.Emitter); ok {
		emitted = emitter.Emit(ray, *hit)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	return emitted.Add(scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth-1, sampler)))
}

// RenderPass renders the full image once, splitting it into tiles that are
// rendered in parallel. The result is identical for any worker count.
func (rt *Raytracer) RenderPass(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if rt.config.Width <= 0 || rt.config.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", rt.config.Width, rt.config.Height)
	}
	if rt.config.SamplesPerPixel <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid samples per pixel %d", rt.config.SamplesPerPixel)
	}

	startTime := time.Now()
	img := image.NewRGBA(image.Rect(0, 0, rt.config.Width, rt.config.Height))
	tiles := NewTileGrid(rt.config.Width, rt.config.Height, rt.options.TileSize)

	pool := NewWorkerPool(NewTileRenderer(rt), rt.options.Seed, len(tiles), rt.options.NumWorkers)
	rt.logger.Printf("Rendering %dx%d, %d samples per pixel, %d tiles on %d workers...\n",
		rt.config.Width, rt.config.Height, rt.config.SamplesPerPixel, len(tiles), pool.GetNumWorkers())

	pool.Start(ctx)
	for i, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, Image: img, TaskID: i})
	}
	pool.Stop()

	var stats RenderStats
	var firstErr error
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.add(result.Stats)
	}
	stats.finalize(time.Since(startTime))

	if firstErr != nil {
		rt.logger.Printf("Render stopped after %d of %d tiles: %v\n", stats.Tiles, len(tiles), firstErr)
		return nil, stats, fmt.Errorf("render pass: %w", firstErr)
	}

	rt.logger.Printf("Render completed in %v (%.1f samples/pixel)\n", stats.Elapsed, stats.AverageSamples)
	return img, stats, nil
}
