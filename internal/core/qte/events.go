package qte

import "time"

// State represents the current scheduler mode.
type State string

const (
	StateIdle     State = "idle"
	StateActive   State = "active"
	StateResolved State = "resolved"
)

// EventType defines the type of scheduler event.
type EventType string

const (
	EventStarted  EventType = "qte_started"
	EventResolved EventType = "qte_resolved"
	EventCleared  EventType = "qte_cleared"
)

// Event represents a scheduler transition for observers.
type Event struct {
	Type     EventType
	State    State
	Text     string
	Choice   Choice
	TimedOut bool
	Answer   string
	Time     time.Duration
}
