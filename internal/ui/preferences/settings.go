package preferences

import (
	"time"

	"officesim/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	StartingMoney     int
	StartingEmployees int
	QTEGapMin         time.Duration
	QTEGapMax         time.Duration
	// Difficulty scales how fast needs decay.
	Difficulty float64
	// EventOpacity is the opacity of the event window background, in [0,1].
	EventOpacity    float64
	AutoPauseOnIdle bool
	// Seed fixes the random sequence of a game; zero picks one per run.
	Seed int64
}

// DefaultSettings returns default settings for the office.
func DefaultSettings() Settings {
	return Settings{
		StartingMoney:     100,
		StartingEmployees: 1,
		QTEGapMin:         4 * time.Second,
		QTEGapMax:         6 * time.Second,
		Difficulty:        1,
		EventOpacity:      0.85,
		AutoPauseOnIdle:   true,
	}
}

// EventAlpha converts EventOpacity to an 8-bit alpha.
func (settings Settings) EventAlpha() uint8 {
	opacity := settings.EventOpacity
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	return uint8(opacity * 255)
}

// SimulationConfig converts settings to SimulationConfig.
func (settings Settings) SimulationConfig() model.SimulationConfig {
	config := model.DefaultConfig()
	config.Economy.StartingMoney = float64(settings.StartingMoney)
	config.StartingEmployees = settings.StartingEmployees
	config.QTE.Gap = model.Range{Min: settings.QTEGapMin, Max: settings.QTEGapMax}
	if settings.QTEGapMax < settings.QTEGapMin {
		config.QTE.Gap.Max = settings.QTEGapMin
	}
	if settings.Difficulty > 0 {
		config.Needs.BaseDecay *= settings.Difficulty
	}
	config.AutoPauseOnIdle = settings.AutoPauseOnIdle
	config.Seed = settings.Seed
	return config
}
