package game

import (
	"time"

	"officesim/internal/core/office"
)

// State represents the current Runner mode.
type State string

const (
	StateRunning  State = "running"
	StatePaused   State = "paused"
	StateGameOver State = "game_over"
	StateStopped  State = "stopped"
)

// EventType defines the type of Runner event.
type EventType string

const (
	EventStateChange     EventType = "state_change"
	EventProgress        EventType = "progress"
	EventQTEStarted      EventType = "qte_started"
	EventQTEResolved     EventType = "qte_resolved"
	EventEmployeeRemoved EventType = "employee_removed"
	EventGameOver        EventType = "game_over"
	EventIdlePause       EventType = "idle_pause"
	EventIdleError       EventType = "idle_error"
)

// Event represents a Runner update for observers.
type Event struct {
	Type      EventType
	State     State
	Tick      uint64
	Money     float64
	Employees int
	Employee  office.EmployeeID
	Remaining time.Duration
	Progress  float64
	Message   string
	At        time.Time
}
