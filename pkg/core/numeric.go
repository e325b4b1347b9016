package core

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp restricts x to [lo, hi]
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp linearly interpolates between a (t=0) and b (t=1)
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// DegreesToRadians converts an angle in degrees to radians
func DegreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}
