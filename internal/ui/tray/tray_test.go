package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

type fakeApp struct {
	menu *fyne.Menu
	icon fyne.Resource
}

func (app *fakeApp) SetSystemTrayMenu(menu *fyne.Menu)    { app.menu = menu }
func (app *fakeApp) SetSystemTrayIcon(icon fyne.Resource) { app.icon = icon }

func newFakeApp(t *testing.T) *fakeApp {
	t.Helper()
	test.NewTempApp(t)
	return &fakeApp{}
}

func (app *fakeApp) hasIcon(icon fyne.Resource) bool {
	return app.icon != nil && app.icon.Name() == icon.Name()
}

func (app *fakeApp) item(t *testing.T, label string) *fyne.MenuItem {
	t.Helper()
	for _, item := range app.menu.Items {
		if item.Label == label {
			return item
		}
	}
	t.Fatalf("menu has no %q item", label)
	return nil
}

func TestNew_InstallsMenu(t *testing.T) {
	app := newFakeApp(t)
	New(app, Callbacks{})

	if app.menu == nil || app.menu.Label != menuTitle {
		t.Fatalf("menu = %+v, want %q", app.menu, menuTitle)
	}
	if !app.hasIcon(theme.MediaPlayIcon()) {
		t.Error("running icon not set")
	}
	status := app.item(t, "Status: starting...")
	if !status.Disabled {
		t.Error("status item is clickable")
	}
}

func TestCallbacks(t *testing.T) {
	app := newFakeApp(t)
	var calls []string
	New(app, Callbacks{
		OnShowOffice:  func() { calls = append(calls, "show") },
		OnPreferences: func() { calls = append(calls, "preferences") },
		OnTogglePause: func() { calls = append(calls, "pause") },
		OnNewGame:     func() { calls = append(calls, "new") },
		OnQuit:        func() { calls = append(calls, "quit") },
	})

	for _, label := range []string{"Show office", "Preferences", "Pause", "New game", "Quit"} {
		app.item(t, label).Action()
	}

	want := []string{"show", "preferences", "pause", "new", "quit"}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %s, want %s", i, calls[i], want[i])
		}
	}
}

func TestSetPaused(t *testing.T) {
	app := newFakeApp(t)
	manager := New(app, Callbacks{})
	manager.SetStatus("money 120")

	manager.SetPaused(true)
	app.item(t, "Resume")
	if manager.Status() != "Status: money 120 (paused)" {
		t.Errorf("status = %q", manager.Status())
	}
	if !app.hasIcon(theme.MediaPauseIcon()) {
		t.Error("paused icon not set")
	}

	manager.SetPaused(false)
	app.item(t, "Pause")
	if manager.Status() != "Status: money 120" {
		t.Errorf("status = %q", manager.Status())
	}
}

func TestSetGameOver(t *testing.T) {
	app := newFakeApp(t)
	manager := New(app, Callbacks{})

	manager.SetGameOver(true)
	if !app.item(t, "Pause").Disabled {
		t.Error("pause enabled after game over")
	}
	if manager.Status() != "Status: game over" {
		t.Errorf("status = %q", manager.Status())
	}
	if !app.hasIcon(theme.MediaStopIcon()) {
		t.Error("game over icon not set")
	}

	manager.SetGameOver(false)
	if app.item(t, "Pause").Disabled {
		t.Error("pause still disabled in a new game")
	}
}
