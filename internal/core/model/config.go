package model

import "time"

// NeedConfig defines how employee needs decay and replenish.
type NeedConfig struct {
	// BaseDecay is subtracted from every need each tick before factors apply.
	BaseDecay       float64
	HopeDecayFactor float64
	ReplenishFactor float64
	FactorRange     FloatRange
	InitialRange    FloatRange
}

// MovementConfig contains per-tick speeds in office units.
type MovementConfig struct {
	WalkSpeed     float64
	RunSpeed      float64
	PickRadius    float64
	FallVelocityX float64
	FallVelocityY float64
}

// ShopActionConfig describes a paid action with its own cooldown.
type ShopActionConfig struct {
	Cost     float64
	Cooldown time.Duration
	Effect   Effect
}

// EconomyConfig contains money related settings.
type EconomyConfig struct {
	StartingMoney    float64
	WorkIncome       float64
	ComplacentIncome float64
	Boost            ShopActionConfig
	Hire             ShopActionConfig
}

// QTEConfig contains quick-time event scheduling settings.
type QTEConfig struct {
	Gap           Range
	AnswerDisplay time.Duration
}

// SimulationConfig contains runtime settings for one office simulation.
type SimulationConfig struct {
	TickInterval      time.Duration
	StartingEmployees int
	Seed              int64

	Needs    NeedConfig
	Movement MovementConfig
	Economy  EconomyConfig
	QTE      QTEConfig

	AutoPauseOnIdle   bool
	IdlePauseAfter    time.Duration
	IdleCheckInterval time.Duration
}

// DefaultConfig returns the stock office settings.
func DefaultConfig() SimulationConfig {
	return SimulationConfig{
		TickInterval:      time.Second / 60,
		StartingEmployees: 1,
		Needs: NeedConfig{
			BaseDecay:       0.0001,
			HopeDecayFactor: 2,
			ReplenishFactor: 10,
			FactorRange:     FloatRange{Min: 0.7, Max: 1.3},
			InitialRange:    FloatRange{Min: 0.3, Max: 0.7},
		},
		Movement: MovementConfig{
			WalkSpeed:     0.05,
			RunSpeed:      0.12,
			PickRadius:    0.5,
			FallVelocityX: 0.03,
			FallVelocityY: -0.1,
		},
		Economy: EconomyConfig{
			StartingMoney:    100,
			WorkIncome:       0.01,
			ComplacentIncome: 0.005,
			Boost: ShopActionConfig{
				Cost:     50,
				Cooldown: 10 * time.Second,
				Effect:   NewEffect(0.1, 0.4, 0, -0.05, 0, 0),
			},
			Hire: ShopActionConfig{
				Cost:     30,
				Cooldown: 5 * time.Second,
				Effect:   NewEffect(0, 0, 0, 0, 0, 1),
			},
		},
		QTE: QTEConfig{
			Gap: Range{
				Min: 4 * time.Second,
				Max: 6 * time.Second,
			},
			AnswerDisplay: 2500 * time.Millisecond,
		},
		AutoPauseOnIdle:   true,
		IdlePauseAfter:    2 * time.Minute,
		IdleCheckInterval: 5 * time.Second,
	}
}
