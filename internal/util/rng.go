package util

import (
	"math"
	"math/rand"
)

// Source supplies uniform samples in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	src := rand.NewSource(seed)
	return rand.New(src)
}

type globalSource struct{}

func (globalSource) Float64() float64 { return rand.Float64() }

// Default returns the process-wide source. It is safe for concurrent use
// and seeded by the runtime, so its output is not reproducible.
func Default() Source { return globalSource{} }

const grid = 1 << 52

// Symmetric draws a uniform value from the open interval (-|amount|, |amount|).
// A zero amount returns 0 without drawing from src.
func Symmetric(src Source, amount float32) float32 {
	if amount == 0 {
		return 0
	}
	a := math.Abs(float64(amount))
	// bin midpoints of a 2^52 grid keep u strictly inside (0, 1)
	u := (math.Floor(src.Float64()*grid) + 0.5) / grid
	roll := float32((2*u - 1) * a)

	limit := float32(a)
	if math.IsInf(float64(limit), 0) || math.IsNaN(float64(limit)) {
		return roll
	}
	// float32 rounding can land on the bound itself
	if roll >= limit {
		return math.Nextafter32(limit, 0)
	}
	if roll <= -limit {
		return math.Nextafter32(-limit, 0)
	}
	return roll
}
