package model

import (
	"math/rand"
	"time"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// FloatRange is the float64 counterpart of Range.
type FloatRange struct {
	Min float64
	Max float64
}

// Random returns a random value in [Min, Max).
func (value FloatRange) Random(rng *rand.Rand) float64 {
	if value.Max <= value.Min {
		return value.Min
	}
	return value.Min + rng.Float64()*(value.Max-value.Min)
}

// Contains reports whether v lies in [Min, Max].
func (value FloatRange) Contains(v float64) bool {
	return v >= value.Min && v <= value.Max
}
