package material

import (
	"math"

	"github.com/df07/go-motion-raytracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns color at given UV coordinates and 3D point
	// UV is used for image textures, point for procedural textures
	Evaluate(uv core.Vec2, point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV or position
func (s *SolidColor) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	return s.Color
}

// CheckerTexture alternates between two sources in a 3D pattern formed by the
// sign of sin(kx)·sin(ky)·sin(kz)
type CheckerTexture struct {
	Even      ColorSource
	Odd       ColorSource
	Frequency float64
}

// NewCheckerTexture creates a checker pattern from two colors with the default frequency of 10
func NewCheckerTexture(even, odd core.Vec3) *CheckerTexture {
	return NewCheckerTextureFrom(NewSolidColor(even), NewSolidColor(odd))
}

// NewCheckerTextureFrom creates a checker pattern alternating between two color sources
func NewCheckerTextureFrom(even, odd ColorSource) *CheckerTexture {
	return &CheckerTexture{Even: even, Odd: odd, Frequency: 10}
}

// Evaluate picks the even or odd source depending on the sign of the sine product at point
func (c *CheckerTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	k := c.Frequency
	sines := math.Sin(k*point.X) * math.Sin(k*point.Y) * math.Sin(k*point.Z)
	if sines < 0 {
		return c.Odd.Evaluate(uv, point)
	}
	return c.Even.Evaluate(uv, point)
}
