package qte

import (
	"fmt"
	"math/rand"
	"slices"
	"time"

	"officesim/internal/core/model"
)

// Applier receives the effect of a resolved event.
type Applier interface {
	ApplyEffect(effect model.Effect)
}

// Scheduler launches quick-time events at random intervals and resolves
// them when the player answers or time runs out. It is not safe for
// concurrent use; the game owning it serializes access.
type Scheduler struct {
	catalog []Template
	config  model.QTEConfig
	rng     *rand.Rand

	state     State
	waited    time.Duration
	threshold time.Duration
	active    int
	elapsed   time.Duration
	answer    string

	events []Event
}

// New creates an idle scheduler drawing from catalog. The first event
// fires once the idle time passes the upper bound of the gap band.
func New(catalog []Template, config model.QTEConfig, rng *rand.Rand) (*Scheduler, error) {
	if err := ValidateCatalog(catalog); err != nil {
		return nil, fmt.Errorf("new qte scheduler: %w", err)
	}
	if config.Gap.Max < config.Gap.Min {
		config.Gap.Max = config.Gap.Min
	}
	return &Scheduler{
		catalog:   slices.Clone(catalog),
		config:    config,
		rng:       rng,
		state:     StateIdle,
		threshold: config.Gap.Max,
	}, nil
}

// Advance moves the scheduler forward by delta. A timed-out event applies
// its first effect to target.
func (scheduler *Scheduler) Advance(delta time.Duration, target Applier) {
	switch scheduler.state {
	case StateIdle:
		scheduler.waited += delta
		if scheduler.waited > scheduler.threshold {
			scheduler.launch()
		}
	case StateActive:
		scheduler.elapsed += delta
		if scheduler.elapsed > scheduler.catalog[scheduler.active].Time {
			scheduler.resolve(Choice1, true, target)
		}
	case StateResolved:
		scheduler.elapsed += delta
		if scheduler.elapsed > scheduler.config.AnswerDisplay {
			scheduler.clear()
		}
	}
}

// Choose answers the active event. It does nothing unless an event is
// active and choice is Choice1 or Choice2.
func (scheduler *Scheduler) Choose(choice Choice, target Applier) bool {
	if scheduler.state != StateActive {
		return false
	}
	if choice != Choice1 && choice != Choice2 {
		return false
	}
	scheduler.resolve(choice, false, target)
	return true
}

// State returns the current scheduler mode.
func (scheduler *Scheduler) State() State {
	return scheduler.state
}

// Active returns the event waiting for an answer.
func (scheduler *Scheduler) Active() (Template, bool) {
	if scheduler.state != StateActive {
		return Template{}, false
	}
	return scheduler.catalog[scheduler.active], true
}

// Remaining returns the time left to answer the active event.
func (scheduler *Scheduler) Remaining() time.Duration {
	if scheduler.state != StateActive {
		return 0
	}
	remaining := scheduler.catalog[scheduler.active].Time - scheduler.elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RemainingFraction returns the share of answer time left, in [0,1].
func (scheduler *Scheduler) RemainingFraction() float64 {
	if scheduler.state != StateActive {
		return 0
	}
	total := scheduler.catalog[scheduler.active].Time
	return float64(scheduler.Remaining()) / float64(total)
}

// Answer returns the explanation shown after the last resolution.
func (scheduler *Scheduler) Answer() (string, bool) {
	if scheduler.state != StateResolved {
		return "", false
	}
	return scheduler.answer, true
}

// Events drains the transitions recorded since the last call.
func (scheduler *Scheduler) Events() []Event {
	events := scheduler.events
	scheduler.events = nil
	return events
}

func (scheduler *Scheduler) launch() {
	scheduler.active = scheduler.rng.Intn(len(scheduler.catalog))
	scheduler.state = StateActive
	scheduler.waited = 0
	scheduler.elapsed = 0

	template := scheduler.catalog[scheduler.active]
	scheduler.events = append(scheduler.events, Event{
		Type:  EventStarted,
		State: StateActive,
		Text:  template.Text,
		Time:  template.Time,
	})
}

func (scheduler *Scheduler) resolve(choice Choice, timedOut bool, target Applier) {
	template := scheduler.catalog[scheduler.active]
	if target != nil {
		target.ApplyEffect(template.Effect(choice))
	}
	scheduler.state = StateResolved
	scheduler.elapsed = 0
	scheduler.answer = template.Explanation(choice)

	scheduler.events = append(scheduler.events, Event{
		Type:     EventResolved,
		State:    StateResolved,
		Text:     template.Text,
		Choice:   choice,
		TimedOut: timedOut,
		Answer:   scheduler.answer,
	})
}

func (scheduler *Scheduler) clear() {
	scheduler.state = StateIdle
	scheduler.elapsed = 0
	scheduler.waited = 0
	scheduler.answer = ""
	scheduler.threshold = scheduler.config.Gap.Random(scheduler.rng)

	scheduler.events = append(scheduler.events, Event{
		Type:  EventCleared,
		State: StateIdle,
	})
}
