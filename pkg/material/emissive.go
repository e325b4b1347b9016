package material

import (
	"github.com/df07/go-motion-raytracer/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission ColorSource // Emitted light color/intensity
}

// NewEmissive creates a new emissive material with a constant emission
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: NewSolidColor(emission)}
}

// NewTexturedEmissive creates an emissive material whose emission varies over the surface
func NewTexturedEmissive(emission ColorSource) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface for emissive materials.
// Emissive materials don't scatter rays - they only emit light
func (e *Emissive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted light at the hit point
func (e *Emissive) Emit(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return e.Emission.Evaluate(hit.UV, hit.Point)
}
