package math32

import (
	"math/rand"

	m32 "github.com/chewxy/math32"
)

const Pi = float32(m32.Pi)

func Lerp(a, b, f float32) float32 {
	return a*(1-f) + b*f
}

// Range is a closed interval [Min, Max] that values can be sampled from uniformly.
type Range struct {
	Min, Max float32
}

// Symmetric returns the range [-halfWidth, +halfWidth].
func Symmetric(halfWidth float32) Range {
	return Range{Min: -halfWidth, Max: +halfWidth}
}

// Sample returns a uniformly distributed value from the range using r.
func (v Range) Sample(r *rand.Rand) float32 {
	return Lerp(v.Min, v.Max, r.Float32())
}

func (v Range) Contains(x float32) bool {
	return x >= v.Min && x <= v.Max
}
