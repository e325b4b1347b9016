package material

import (
	"github.com/df07/go-motion-raytracer/pkg/core"
)

// missingTextureColor is returned by an ImageTexture with no pixel data so a
// failed load is visible in the render
var missingTextureColor = core.NewVec3(0, 1, 1)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x], y=0 is the top row
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Evaluate samples the texture at given UV coordinates using nearest-neighbor filtering.
// UV is clamped to [0,1]; V=0 is the bottom of the image.
func (t *ImageTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return missingTextureColor
	}

	u := core.Clamp(uv.X, 0.0, 1.0)
	v := 1.0 - core.Clamp(uv.Y, 0.0, 1.0)

	x := core.Clamp(int(u*float64(t.Width)), 0, t.Width-1)
	y := core.Clamp(int(v*float64(t.Height)), 0, t.Height-1)

	return t.Pixels[y*t.Width+x]
}
