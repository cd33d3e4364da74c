package office

import (
	"math/rand"

	"officesim/internal/core/model"
)

// Need is a value clamped to [0,1]. The zero Need is empty.
// The only way to change it is Add, so IsEmpty and IsFull can compare
// against the clamp bounds exactly.
type Need struct {
	value float64
}

// NewNeed returns a clamped need.
func NewNeed(value float64) Need {
	return Need{value: clampUnit(value)}
}

// Add returns the need shifted by delta and clamped.
func (need Need) Add(delta float64) Need {
	return NewNeed(need.value + delta)
}

// Value returns the raw level.
func (need Need) Value() float64 {
	return need.value
}

// IsEmpty reports whether the need was clamped to 0.
func (need Need) IsEmpty() bool {
	return need.value == 0
}

// IsFull reports whether the need was clamped to 1.
func (need Need) IsFull() bool {
	return need.value == 1
}

// NeedKind identifies one of the four needs.
type NeedKind uint8

const (
	NeedSatisfaction NeedKind = iota
	NeedHope
	NeedEnergy
	NeedSatiety

	needCount
)

func (kind NeedKind) String() string {
	switch kind {
	case NeedSatisfaction:
		return "satisfaction"
	case NeedHope:
		return "hope"
	case NeedEnergy:
		return "energy"
	case NeedSatiety:
		return "satiety"
	default:
		return "unknown"
	}
}

// NeedKinds lists every need in display order.
var NeedKinds = [needCount]NeedKind{NeedSatisfaction, NeedHope, NeedEnergy, NeedSatiety}

// Needs is the need vector of one employee.
type Needs [needCount]Need

func randomNeeds(rng *rand.Rand, band model.FloatRange) Needs {
	var needs Needs
	for _, kind := range NeedKinds {
		needs[kind] = NewNeed(band.Random(rng))
	}
	return needs
}

// Get returns the level of one need.
func (needs Needs) Get(kind NeedKind) float64 {
	return needs[kind].Value()
}

// Satisfaction returns the satisfaction level.
func (needs Needs) Satisfaction() float64 {
	return needs[NeedSatisfaction].Value()
}

// Hope returns the hope level.
func (needs Needs) Hope() float64 {
	return needs[NeedHope].Value()
}

// Energy returns the energy level.
func (needs Needs) Energy() float64 {
	return needs[NeedEnergy].Value()
}

// Satiety returns the satiety level.
func (needs Needs) Satiety() float64 {
	return needs[NeedSatiety].Value()
}

func (needs *Needs) apply(effect model.Effect) {
	needs[NeedSatisfaction] = needs[NeedSatisfaction].Add(effect.Satisfaction)
	needs[NeedHope] = needs[NeedHope].Add(effect.Hope)
	needs[NeedEnergy] = needs[NeedEnergy].Add(effect.Energy)
	needs[NeedSatiety] = needs[NeedSatiety].Add(effect.Satiety)
}

// Factors scales the decay of each need for one employee.
type Factors [needCount]float64

func randomFactors(rng *rand.Rand, band model.FloatRange) Factors {
	var factors Factors
	for _, kind := range NeedKinds {
		factors[kind] = band.Random(rng)
	}
	return factors
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
