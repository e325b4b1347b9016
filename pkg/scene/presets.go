package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-motion-raytracer/pkg/core"
)

// ErrUnknownScene is returned by ByName for names that match no preset
var ErrUnknownScene = errors.New("unknown scene")

// DefaultSeed seeds scene construction when Options carries no sampler
const DefaultSeed = 42

// Options configures preset construction
type Options struct {
	Sampler      core.Sampler // Drives random placement and BVH split axes (nil = seeded with DefaultSeed)
	EarthTexture string       // Image used by the earth and final scenes
	Logger       core.Logger  // Receives texture fallback warnings (nil = discard)
}

type presetFunc func(opts Options) (*Scene, error)

var presets = map[string]presetFunc{
	"random-spheres": func(opts Options) (*Scene, error) { return NewRandomSpheresScene(opts.Sampler) },
	"perlin":         func(opts Options) (*Scene, error) { return NewTwoPerlinSpheresScene(opts.Sampler) },
	"earth":          func(opts Options) (*Scene, error) { return NewEarthScene(opts.EarthTexture, opts.Logger) },
	"cornell-smoke":  func(opts Options) (*Scene, error) { return NewCornellSmokeScene(opts.Sampler) },
	"final": func(opts Options) (*Scene, error) {
		return NewFinalScene(opts.Sampler, opts.EarthTexture, opts.Logger)
	},
}

// Names returns the preset names in sorted order
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName builds the named preset
func ByName(name string, opts Options) (*Scene, error) {
	build, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}

	opts.Sampler = samplerOrDefault(opts.Sampler)
	if opts.Logger == nil {
		opts.Logger = core.NopLogger{}
	}

	return build(opts)
}
