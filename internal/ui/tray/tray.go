package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const menuTitle = "Office"

// App is the part of desktop.App the tray needs.
type App interface {
	SetSystemTrayMenu(menu *fyne.Menu)
	SetSystemTrayIcon(icon fyne.Resource)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowOffice  func()
	OnPreferences func()
	OnTogglePause func()
	OnNewGame     func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         App
	statusItem  *fyne.MenuItem
	pauseItem   *fyne.MenuItem
	callbacks   Callbacks
	paused      bool
	gameOver    bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks.
func New(app App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "starting...",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.pauseItem = fyne.NewMenuItem("Pause", func() { call(manager.callbacks.OnTogglePause) })

	manager.refreshStatus()
	manager.refreshIcon()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetPaused updates pause state.
func (manager *Manager) SetPaused(paused bool) {
	if manager.paused == paused {
		return
	}
	manager.paused = paused
	if paused {
		manager.pauseItem.Label = "Resume"
	} else {
		manager.pauseItem.Label = "Pause"
	}
	manager.refreshStatus()
	manager.refreshIcon()
}

// SetGameOver disables pausing until the next game.
func (manager *Manager) SetGameOver(over bool) {
	if manager.gameOver == over {
		return
	}
	manager.gameOver = over
	manager.pauseItem.Disabled = over
	manager.refreshStatus()
	manager.refreshIcon()
}

// Paused reports the pause state shown in the menu.
func (manager *Manager) Paused() bool {
	return manager.paused
}

// Status returns the status line shown in the menu.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	switch {
	case manager.gameOver:
		status = "game over"
	case manager.paused:
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

func (manager *Manager) refreshIcon() {
	if manager.app == nil {
		return
	}
	icon := theme.MediaPlayIcon()
	switch {
	case manager.gameOver:
		icon = theme.MediaStopIcon()
	case manager.paused:
		icon = theme.MediaPauseIcon()
	}
	manager.app.SetSystemTrayIcon(icon)
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle,
		manager.statusItem,
		fyne.NewMenuItem("Show office", func() { call(manager.callbacks.OnShowOffice) }),
		fyne.NewMenuItem("Preferences", func() { call(manager.callbacks.OnPreferences) }),
		manager.pauseItem,
		fyne.NewMenuItem("New game", func() { call(manager.callbacks.OnNewGame) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() { call(manager.callbacks.OnQuit) }),
	))
}

func call(handler func()) {
	if handler != nil {
		handler()
	}
}
