package game

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"officesim/internal/core/office"
	"officesim/internal/core/qte"
)

var (
	// ErrIdleUnsupported indicates idle detection is not available on this system.
	ErrIdleUnsupported = errors.New("idle detection unsupported")
	// ErrNotRunning is returned when stopping a runner that is not ticking.
	ErrNotRunning = errors.New("runner: not running")
	// ErrAlreadyRunning is returned when starting a runner twice.
	ErrAlreadyRunning = errors.New("runner: already running")
)

// IdleChecker reports the duration of user inactivity.
type IdleChecker interface {
	IdleDuration() (time.Duration, error)
}

// Options contains runtime options for Runner.
type Options struct {
	// TickInterval is the wall-clock period of the ticker. Defaults to the
	// game's simulated tick interval.
	TickInterval time.Duration
	// ProgressInterval rate-limits progress events.
	ProgressInterval time.Duration
	Logger           *slog.Logger
}

// Runner drives a Game from a ticker and serializes every access to it.
type Runner struct {
	mu      sync.Mutex
	game    *Game
	options Options
	logger  *slog.Logger

	idleChecker   IdleChecker
	idleEnabled   bool
	idlePaused    bool
	lastIdleCheck time.Time

	events           []chan Event
	stopCh           chan struct{}
	done             chan struct{}
	running          bool
	paused           bool
	lastProgressSent time.Time
}

// NewRunner creates a stopped Runner for game.
func NewRunner(game *Game, options Options) *Runner {
	if options.TickInterval <= 0 {
		options.TickInterval = game.Config().TickInterval
	}
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second / 60
	}
	if options.ProgressInterval <= 0 {
		options.ProgressInterval = 250 * time.Millisecond
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		game:        game,
		options:     options,
		logger:      logger,
		idleEnabled: game.Config().AutoPauseOnIdle,
	}
}

// SetIdleChecker injects an idle checker.
func (runner *Runner) SetIdleChecker(checker IdleChecker) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	runner.idleChecker = checker
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than stall the simulation.
func (runner *Runner) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	runner.mu.Lock()
	runner.events = append(runner.events, ch)
	runner.mu.Unlock()
	return ch
}

// Start launches the ticking loop. It ends on Stop or when ctx is done.
func (runner *Runner) Start(ctx context.Context) error {
	stopCh, done, err := runner.begin()
	if err != nil {
		return err
	}
	go runner.run(ctx, stopCh, done)
	return nil
}

// RunTicks advances the game ticks times as fast as possible, stopping
// early on game over. Observers are closed when it returns.
func (runner *Runner) RunTicks(ctx context.Context, ticks int) error {
	stopCh, done, err := runner.begin()
	if err != nil {
		return err
	}
	defer runner.finish(done)

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stopCh:
			return nil
		default:
		}
		if runner.step(time.Now()) == StateGameOver {
			return nil
		}
	}
	return nil
}

// Stop terminates the ticking loop and closes observers.
func (runner *Runner) Stop() error {
	runner.mu.Lock()
	if !runner.running || runner.stopCh == nil {
		runner.mu.Unlock()
		return ErrNotRunning
	}
	close(runner.stopCh)
	runner.stopCh = nil
	done := runner.done
	runner.mu.Unlock()

	<-done
	return nil
}

// Pause freezes the simulation.
func (runner *Runner) Pause() {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	runner.pauseLocked(false, time.Now())
}

// Resume unfreezes the simulation.
func (runner *Runner) Resume() {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	runner.resumeLocked(time.Now())
}

// Do runs fn with exclusive access to the game, between two ticks.
func (runner *Runner) Do(fn func(*Game)) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	fn(runner.game)
}

// Restart starts a new game with the current configuration.
func (runner *Runner) Restart() error {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if err := runner.game.Restart(); err != nil {
		return err
	}
	runner.restartedLocked(time.Now())
	return nil
}

// Replace swaps in a game built elsewhere, typically from new settings.
func (runner *Runner) Replace(game *Game) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	runner.game = game
	runner.idleEnabled = game.Config().AutoPauseOnIdle
	runner.restartedLocked(time.Now())
}

// Snapshot copies the current game state.
func (runner *Runner) Snapshot() Snapshot {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	snapshot := runner.game.Snapshot()
	snapshot.Paused = runner.paused
	return snapshot
}

// Paused reports whether the simulation is frozen.
func (runner *Runner) Paused() bool {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.paused
}

// Running reports whether a ticking loop is active.
func (runner *Runner) Running() bool {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	return runner.running
}

func (runner *Runner) begin() (chan struct{}, chan struct{}, error) {
	runner.mu.Lock()
	defer runner.mu.Unlock()
	if runner.running {
		return nil, nil, ErrAlreadyRunning
	}
	runner.running = true
	runner.stopCh = make(chan struct{})
	runner.done = make(chan struct{})
	runner.lastIdleCheck = time.Time{}

	runner.logger.Info("runner started", "tick_interval", runner.options.TickInterval)
	runner.emitLocked(Event{
		Type:  EventStateChange,
		State: runner.stateLocked(),
		Tick:  runner.game.Ticks(),
		At:    time.Now(),
	})
	return runner.stopCh, runner.done, nil
}

func (runner *Runner) run(ctx context.Context, stopCh <-chan struct{}, done chan struct{}) {
	defer runner.finish(done)

	ticker := time.NewTicker(runner.options.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			runner.logger.Info("runner context done", "err", ctx.Err())
			return
		case <-stopCh:
			return
		case tickTime := <-ticker.C:
			runner.step(tickTime)
		}
	}
}

func (runner *Runner) finish(done chan struct{}) {
	runner.mu.Lock()
	runner.running = false
	runner.stopCh = nil
	runner.emitLocked(Event{
		Type:  EventStateChange,
		State: StateStopped,
		Tick:  runner.game.Ticks(),
		Money: runner.game.Office().Money(),
		At:    time.Now(),
	})
	events := runner.events
	runner.events = nil
	ticks := runner.game.Ticks()
	runner.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
	close(done)
	runner.logger.Info("runner stopped", "tick", ticks)
}

func (runner *Runner) step(tickTime time.Time) State {
	runner.mu.Lock()
	defer runner.mu.Unlock()

	runner.handleIdleCheckLocked(tickTime)
	if runner.paused {
		return StatePaused
	}

	result := runner.game.Tick()
	runner.publishLocked(result, tickTime)
	return runner.stateLocked()
}

func (runner *Runner) publishLocked(result TickResult, now time.Time) {
	current := runner.game.Office()

	for _, id := range result.Office.Removed {
		runner.emitLocked(Event{
			Type:     EventEmployeeRemoved,
			State:    StateRunning,
			Tick:     result.Tick,
			Employee: id,
			At:       now,
		})
	}

	for _, event := range result.QTE {
		switch event.Type {
		case qte.EventStarted:
			runner.logger.Info("qte started", "text", event.Text, "time", event.Time)
			runner.emitLocked(Event{
				Type:      EventQTEStarted,
				State:     StateRunning,
				Tick:      result.Tick,
				Remaining: event.Time,
				Progress:  1,
				Message:   event.Text,
				At:        now,
			})
		case qte.EventResolved:
			runner.logger.Info("qte resolved",
				"choice", event.Choice.String(),
				"timed_out", event.TimedOut,
				"answer", event.Answer,
			)
			runner.emitLocked(Event{
				Type:    EventQTEResolved,
				State:   StateRunning,
				Tick:    result.Tick,
				Money:   current.Money(),
				Message: event.Answer,
				At:      now,
			})
		}
	}

	if result.Office.GameOver {
		runner.logger.Info("game over", "tick", result.Tick, "money", current.Money())
		runner.emitLocked(Event{
			Type:      EventGameOver,
			State:     StateGameOver,
			Tick:      result.Tick,
			Money:     current.Money(),
			Employees: current.EmployeeCount(),
			At:        now,
		})
		return
	}

	if !runner.lastProgressSent.IsZero() && now.Sub(runner.lastProgressSent) < runner.options.ProgressInterval {
		return
	}
	runner.lastProgressSent = now
	scheduler := runner.game.Scheduler()
	runner.emitLocked(Event{
		Type:      EventProgress,
		State:     runner.stateLocked(),
		Tick:      result.Tick,
		Money:     current.Money(),
		Employees: current.EmployeeCount(),
		Remaining: scheduler.Remaining(),
		Progress:  scheduler.RemainingFraction(),
		At:        now,
	})
}

func (runner *Runner) handleIdleCheckLocked(now time.Time) {
	if !runner.idleEnabled || runner.idleChecker == nil {
		return
	}
	if runner.paused && !runner.idlePaused {
		return
	}
	config := runner.game.Config()
	interval := config.IdleCheckInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if !runner.lastIdleCheck.IsZero() && now.Sub(runner.lastIdleCheck) < interval {
		return
	}
	runner.lastIdleCheck = now

	idleDuration, err := runner.idleChecker.IdleDuration()
	if err != nil {
		if errors.Is(err, ErrIdleUnsupported) {
			runner.idleEnabled = false
		}
		runner.logger.Warn("idle check failed", "err", err)
		runner.emitLocked(Event{
			Type:    EventIdleError,
			State:   runner.stateLocked(),
			Message: err.Error(),
			At:      now,
		})
		return
	}

	switch {
	case !runner.paused && idleDuration >= config.IdlePauseAfter:
		runner.pauseLocked(true, now)
		runner.logger.Info("paused on idle", "idle", idleDuration)
		runner.emitLocked(Event{
			Type:    EventIdlePause,
			State:   StatePaused,
			Message: "idle pause",
			At:      now,
		})
	case runner.idlePaused && idleDuration < config.IdlePauseAfter:
		runner.resumeLocked(now)
	}
}

func (runner *Runner) pauseLocked(idle bool, now time.Time) {
	if runner.paused {
		return
	}
	runner.paused = true
	runner.idlePaused = idle
	runner.emitLocked(Event{
		Type:  EventStateChange,
		State: StatePaused,
		Tick:  runner.game.Ticks(),
		At:    now,
	})
}

func (runner *Runner) resumeLocked(now time.Time) {
	if !runner.paused {
		return
	}
	runner.paused = false
	runner.idlePaused = false
	runner.emitLocked(Event{
		Type:  EventStateChange,
		State: runner.stateLocked(),
		Tick:  runner.game.Ticks(),
		At:    now,
	})
}

func (runner *Runner) restartedLocked(now time.Time) {
	runner.lastProgressSent = time.Time{}
	runner.logger.Info("game restarted", "employees", runner.game.Office().EmployeeCount())
	runner.emitLocked(Event{
		Type:      EventStateChange,
		State:     runner.stateLocked(),
		Money:     runner.game.Office().Money(),
		Employees: runner.game.Office().EmployeeCount(),
		At:        now,
	})
}

func (runner *Runner) stateLocked() State {
	switch {
	case runner.paused:
		return StatePaused
	case runner.game.Office().GameState() == office.GameOver:
		return StateGameOver
	default:
		return StateRunning
	}
}

func (runner *Runner) emitLocked(event Event) {
	for _, ch := range runner.events {
		select {
		case ch <- event:
		default:
		}
	}
}
