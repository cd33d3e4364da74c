package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"officesim/internal/core/model"
)

func TestSimulationConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.StartingMoney = 250
	settings.StartingEmployees = 3
	settings.Difficulty = 2
	settings.Seed = 42

	config := settings.SimulationConfig()
	defaults := model.DefaultConfig()

	if config.Economy.StartingMoney != 250 {
		t.Errorf("StartingMoney = %f, want 250", config.Economy.StartingMoney)
	}
	if config.StartingEmployees != 3 {
		t.Errorf("StartingEmployees = %d, want 3", config.StartingEmployees)
	}
	if config.Needs.BaseDecay != defaults.Needs.BaseDecay*2 {
		t.Errorf("BaseDecay = %f, want %f", config.Needs.BaseDecay, defaults.Needs.BaseDecay*2)
	}
	if config.QTE.Gap != defaults.QTE.Gap {
		t.Errorf("Gap = %v, want %v", config.QTE.Gap, defaults.QTE.Gap)
	}
	if config.Seed != 42 {
		t.Errorf("Seed = %d, want 42", config.Seed)
	}
}

func TestSimulationConfig_InvertedGap(t *testing.T) {
	settings := DefaultSettings()
	settings.QTEGapMin = 8 * time.Second
	settings.QTEGapMax = 2 * time.Second

	gap := settings.SimulationConfig().QTE.Gap
	if gap.Min != 8*time.Second || gap.Max != 8*time.Second {
		t.Errorf("Gap = %v, want [8s, 8s]", gap)
	}
}

func TestEventAlpha(t *testing.T) {
	tests := []struct {
		opacity float64
		want    uint8
	}{
		{opacity: 0, want: 0},
		{opacity: 1, want: 255},
		{opacity: 0.5, want: 127},
		{opacity: -1, want: 0},
		{opacity: 2, want: 255},
	}
	for _, tt := range tests {
		settings := Settings{EventOpacity: tt.opacity}
		if got := settings.EventAlpha(); got != tt.want {
			t.Errorf("EventAlpha(%v) = %d, want %d", tt.opacity, got, tt.want)
		}
	}
}

func TestWindow_Save(t *testing.T) {
	app := test.NewTempApp(t)

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = settings
	})

	prefs.money.SetText("500")
	prefs.employees.SetText("40")
	prefs.gapMin.SetText("10")
	prefs.gapMax.SetText("3")
	prefs.seed.SetText("not a number")
	prefs.idleCheck.SetChecked(false)
	prefs.opacity.SetValue(0.5)
	prefs.handleSave()

	if saved.StartingMoney != 500 {
		t.Errorf("StartingMoney = %d, want 500", saved.StartingMoney)
	}
	if saved.StartingEmployees != 1 {
		t.Errorf("StartingEmployees = %d, want 1 (40 is more than the desks)", saved.StartingEmployees)
	}
	if saved.QTEGapMin != 10*time.Second || saved.QTEGapMax != 10*time.Second {
		t.Errorf("gap = [%v, %v], want [10s, 10s]", saved.QTEGapMin, saved.QTEGapMax)
	}
	if saved.Seed != 0 {
		t.Errorf("Seed = %d, want 0", saved.Seed)
	}
	if saved.AutoPauseOnIdle {
		t.Error("AutoPauseOnIdle = true, want false")
	}
	if saved.EventOpacity != 0.5 {
		t.Errorf("EventOpacity = %f, want 0.5", saved.EventOpacity)
	}
	if prefs.Settings() != saved {
		t.Error("window did not keep the saved settings")
	}
}
