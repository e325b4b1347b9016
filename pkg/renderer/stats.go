package renderer

import (
	"math"
	"time"

	"github.com/df07/go-motion-raytracer/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels    int           // Total number of pixels rendered
	TotalSamples   int           // Total number of samples taken
	AverageSamples float64       // Average samples per pixel
	Tiles          int           // Number of tiles rendered
	Elapsed        time.Duration // Wall time of the pass
}

// add folds the counters of a tile into the pass totals
func (rs *RenderStats) add(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.TotalSamples += other.TotalSamples
	rs.Tiles += other.Tiles
}

// finalize computes derived values once all tiles are in
func (rs *RenderStats) finalize(elapsed time.Duration) {
	rs.Elapsed = elapsed
	if rs.TotalPixels > 0 {
		rs.AverageSamples = float64(rs.TotalSamples) / float64(rs.TotalPixels)
	}
}

// PixelStats accumulates the samples of a single pixel
type PixelStats struct {
	ColorAccum  core.Vec3 // RGB accumulator
	SampleCount int       // Number of samples taken
}

// AddSample adds a new color sample to the pixel statistics.
// A sample containing NaN counts as black.
func (ps *PixelStats) AddSample(color core.Vec3) {
	if math.IsNaN(color.X) || math.IsNaN(color.Y) || math.IsNaN(color.Z) {
		color = core.Vec3{}
	}
	ps.ColorAccum = ps.ColorAccum.Add(color)
	ps.SampleCount++
}

// GetColor returns the current average color for this pixel
func (ps *PixelStats) GetColor() core.Vec3 {
	if ps.SampleCount == 0 {
		return core.Vec3{}
	}
	return ps.ColorAccum.Multiply(1.0 / float64(ps.SampleCount))
}
