package game

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"officesim/internal/core/model"
)

type fakeIdle struct {
	mu       sync.Mutex
	duration time.Duration
	err      error
	calls    int
}

func (idle *fakeIdle) IdleDuration() (time.Duration, error) {
	idle.mu.Lock()
	defer idle.mu.Unlock()
	idle.calls++
	return idle.duration, idle.err
}

func (idle *fakeIdle) set(duration time.Duration) {
	idle.mu.Lock()
	defer idle.mu.Unlock()
	idle.duration = duration
}

func newTestRunner(t *testing.T, config model.SimulationConfig) (*Runner, *Game) {
	t.Helper()
	game := newTestGame(t, config)
	runner := NewRunner(game, Options{
		TickInterval: time.Millisecond,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	return runner, game
}

func drain(ch <-chan Event) []Event {
	var events []Event
	for event := range ch {
		events = append(events, event)
	}
	return events
}

func hasEvent(events []Event, eventType EventType) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}
	return false
}

func TestRunTicks(t *testing.T) {
	runner, game := newTestRunner(t, model.DefaultConfig())
	events := runner.Subscribe(1024)

	if err := runner.RunTicks(context.Background(), 10); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}
	if game.Ticks() != 10 {
		t.Errorf("Ticks = %d, want 10", game.Ticks())
	}

	received := drain(events)
	if len(received) == 0 || received[0].Type != EventStateChange || received[0].State != StateRunning {
		t.Fatalf("first event = %+v, want running state change", received)
	}
	if !hasEvent(received, EventProgress) {
		t.Error("no progress event")
	}
	if last := received[len(received)-1]; last.State != StateStopped {
		t.Errorf("last event state = %v, want stopped", last.State)
	}
	if runner.Running() {
		t.Error("runner still running after RunTicks")
	}
}

func TestRunTicks_StopsOnGameOver(t *testing.T) {
	runner, game := newTestRunner(t, model.DefaultConfig())
	runner.Do(func(game *Game) {
		game.ApplyEffect(model.NewEffect(0, 0, -1, 0, 0, 0))
	})
	events := runner.Subscribe(1024)

	if err := runner.RunTicks(context.Background(), 100); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}
	if game.Ticks() != 1 {
		t.Errorf("Ticks = %d, want 1", game.Ticks())
	}
	if !hasEvent(drain(events), EventGameOver) {
		t.Error("no game over event")
	}
}

func TestRunTicks_Cancelled(t *testing.T) {
	runner, _ := newTestRunner(t, model.DefaultConfig())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runner.RunTicks(ctx, 10); !errors.Is(err, context.Canceled) {
		t.Errorf("RunTicks error = %v, want context.Canceled", err)
	}
}

func TestStartStop(t *testing.T) {
	runner, _ := newTestRunner(t, model.DefaultConfig())
	events := runner.Subscribe(1024)

	if err := runner.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := runner.Start(context.Background()); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second Start error = %v, want ErrAlreadyRunning", err)
	}

	deadline := time.After(2 * time.Second)
	for progressed := false; !progressed; {
		select {
		case event := <-events:
			progressed = event.Type == EventProgress
		case <-deadline:
			t.Fatal("no progress event before the deadline")
		}
	}

	if err := runner.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if err := runner.Stop(); !errors.Is(err, ErrNotRunning) {
		t.Errorf("second Stop error = %v, want ErrNotRunning", err)
	}
	drain(events)
}

func TestPauseResume(t *testing.T) {
	runner, game := newTestRunner(t, model.DefaultConfig())

	runner.Pause()
	if !runner.Snapshot().Paused {
		t.Fatal("snapshot not paused")
	}
	if err := runner.RunTicks(context.Background(), 5); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}
	if game.Ticks() != 0 {
		t.Errorf("Ticks = %d while paused, want 0", game.Ticks())
	}

	runner.Resume()
	if err := runner.RunTicks(context.Background(), 5); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}
	if game.Ticks() != 5 {
		t.Errorf("Ticks = %d, want 5", game.Ticks())
	}
}

func TestIdlePause(t *testing.T) {
	config := model.DefaultConfig()
	config.IdlePauseAfter = time.Minute
	config.IdleCheckInterval = time.Nanosecond
	runner, game := newTestRunner(t, config)
	idle := &fakeIdle{duration: 2 * time.Minute}
	runner.SetIdleChecker(idle)

	events := runner.Subscribe(1024)
	if err := runner.RunTicks(context.Background(), 3); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}
	if !runner.Paused() {
		t.Fatal("runner did not pause on idle")
	}
	if game.Ticks() != 0 {
		t.Errorf("Ticks = %d, want 0", game.Ticks())
	}
	if !hasEvent(drain(events), EventIdlePause) {
		t.Error("no idle pause event")
	}

	idle.set(0)
	time.Sleep(time.Millisecond)
	if err := runner.RunTicks(context.Background(), 3); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}
	if runner.Paused() {
		t.Fatal("runner did not resume after activity")
	}
	if game.Ticks() == 0 {
		t.Error("game did not tick after resuming")
	}
}

func TestIdleUnsupported(t *testing.T) {
	config := model.DefaultConfig()
	config.IdleCheckInterval = time.Nanosecond
	runner, _ := newTestRunner(t, config)
	idle := &fakeIdle{err: ErrIdleUnsupported}
	runner.SetIdleChecker(idle)

	events := runner.Subscribe(1024)
	if err := runner.RunTicks(context.Background(), 5); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}

	if idle.calls != 1 {
		t.Errorf("IdleDuration called %d times, want 1", idle.calls)
	}
	if !hasEvent(drain(events), EventIdleError) {
		t.Error("no idle error event")
	}
}

func TestManualPauseIgnoresIdle(t *testing.T) {
	config := model.DefaultConfig()
	config.IdleCheckInterval = time.Nanosecond
	runner, _ := newTestRunner(t, config)
	idle := &fakeIdle{}
	runner.SetIdleChecker(idle)

	runner.Pause()
	if err := runner.RunTicks(context.Background(), 3); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}
	if !runner.Paused() {
		t.Error("activity resumed a manual pause")
	}
}

func TestRunnerRestart(t *testing.T) {
	runner, game := newTestRunner(t, model.DefaultConfig())
	if err := runner.RunTicks(context.Background(), 3); err != nil {
		t.Fatalf("RunTicks: %v", err)
	}

	if err := runner.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if game.Ticks() != 0 {
		t.Errorf("Ticks = %d, want 0", game.Ticks())
	}

	replacement := newTestGame(t, model.DefaultConfig())
	runner.Replace(replacement)
	runner.Do(func(current *Game) {
		if current != replacement {
			t.Error("Replace did not swap the game")
		}
	})
}
