package model

// Effect is a set of deltas applied to the office as a whole.
// Need deltas go to every living employee, Money to the office balance,
// and Employees spawns (positive) or kills (negative) that many employees.
type Effect struct {
	Satisfaction float64
	Energy       float64
	Satiety      float64
	Hope         float64
	Money        float64
	Employees    int
}

// NewEffect builds an Effect in satisfaction, energy, satiety, hope, money,
// employee order.
func NewEffect(satisfaction, energy, satiety, hope, money float64, employees int) Effect {
	return Effect{
		Satisfaction: satisfaction,
		Energy:       energy,
		Satiety:      satiety,
		Hope:         hope,
		Money:        money,
		Employees:    employees,
	}
}

// IsZero reports whether applying the effect would change nothing.
func (effect Effect) IsZero() bool {
	return effect == Effect{}
}
