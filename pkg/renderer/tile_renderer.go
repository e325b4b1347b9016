package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-motion-raytracer/pkg/core"
)

// TileRenderer renders individual tiles of a pass into a shared image
type TileRenderer struct {
	raytracer *Raytracer
	camera    *Camera
	config    SamplingConfig
}

// NewTileRenderer creates a tile renderer for the raytracer's scene and current sampling config
func NewTileRenderer(raytracer *Raytracer) *TileRenderer {
	return &TileRenderer{
		raytracer: raytracer,
		camera:    raytracer.scene.GetCamera(),
		config:    raytracer.config,
	}
}

// RenderTileBounds renders pixels within bounds into img. Tiles never
// overlap, so concurrent calls on distinct bounds are safe.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, img *image.RGBA, sampler core.Sampler) RenderStats {
	stats := RenderStats{
		TotalPixels: bounds.Dx() * bounds.Dy(),
		Tiles:       1,
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			var ps PixelStats
			tr.samplePixel(x, y, &ps, sampler)
			img.SetRGBA(x, y, vec3ToColor(ps.GetColor()))
			stats.TotalSamples += ps.SampleCount
		}
	}

	return stats
}

// samplePixel takes SamplesPerPixel jittered samples of image pixel (x, y).
// Image rows run top to bottom while camera t runs bottom to top.
func (tr *TileRenderer) samplePixel(x, y int, ps *PixelStats, sampler core.Sampler) {
	width := float64(tr.config.Width)
	height := float64(tr.config.Height)
	row := float64(tr.config.Height - 1 - y)

	for ps.SampleCount < tr.config.SamplesPerPixel {
		jitter := sampler.Get2D()
		s := (float64(x) + jitter.X) / width
		t := (row + jitter.Y) / height

		ray := tr.camera.GetRay(s, t, sampler)
		ps.AddSample(tr.raytracer.RayColor(ray, tr.config.MaxDepth, sampler))
	}
}

// vec3ToColor converts a linear Vec3 color to RGBA with gamma correction and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}
