package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"officesim/internal/core/model"
	"officesim/internal/core/office"
	"officesim/internal/core/qte"
)

func testTemplate() qte.Template {
	return qte.Template{
		Text:         "Voulez vous perdre\nde l'argent ?",
		Effect1:      model.NewEffect(0, 0, 0, 0, -10000, 0),
		Effect2:      model.NewEffect(0, 0, 0, 0, 50, 0),
		Choice1:      "Oui",
		Choice2:      "Non",
		Explanation1: "Vous êtes con",
		Explanation2: "Bravo",
		Time:         time.Second,
	}
}

func fastConfig() model.SimulationConfig {
	config := model.DefaultConfig()
	config.QTE.Gap = model.Range{Min: 100 * time.Millisecond, Max: 100 * time.Millisecond}
	return config
}

func newTestGame(t *testing.T, config model.SimulationConfig) *Game {
	t.Helper()
	game, err := New(config, []qte.Template{testTemplate()}, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return game
}

func tickUntil(game *Game, limit int, done func() bool) {
	for i := 0; i < limit && !done(); i++ {
		game.Tick()
	}
}

func TestNew(t *testing.T) {
	game := newTestGame(t, model.DefaultConfig())

	if game.Office().EmployeeCount() != 1 {
		t.Errorf("EmployeeCount = %d, want 1", game.Office().EmployeeCount())
	}
	if game.Office().Money() != 100 {
		t.Errorf("Money = %f, want 100", game.Office().Money())
	}
	if game.Scheduler().State() != qte.StateIdle {
		t.Errorf("scheduler state = %v, want idle", game.Scheduler().State())
	}
}

func TestNew_EmptyCatalog(t *testing.T) {
	_, err := New(model.DefaultConfig(), nil, rand.New(rand.NewSource(1)))
	if !errors.Is(err, qte.ErrEmptyCatalog) {
		t.Errorf("error = %v, want ErrEmptyCatalog", err)
	}
}

func TestTick_TimeoutAppliesFirstEffect(t *testing.T) {
	game := newTestGame(t, fastConfig())

	var started, resolved bool
	for i := 0; i < 300 && game.Office().GameState() == office.GameRunning; i++ {
		result := game.Tick()
		for _, event := range result.QTE {
			switch event.Type {
			case qte.EventStarted:
				started = true
			case qte.EventResolved:
				resolved = event.TimedOut
			}
		}
	}

	if !started || !resolved {
		t.Fatalf("started = %v, timed out = %v; want both", started, resolved)
	}
	if game.Office().Money() >= 0 {
		t.Errorf("Money = %f, want negative", game.Office().Money())
	}
	if game.Office().GameState() != office.GameOver {
		t.Errorf("GameState = %v, want game over", game.Office().GameState())
	}

	ticks := game.Ticks()
	game.Tick()
	if game.Ticks() != ticks {
		t.Error("a finished game kept ticking")
	}
}

func TestChoose(t *testing.T) {
	game := newTestGame(t, fastConfig())
	if game.Choose(qte.Choice2) {
		t.Fatal("Choose succeeded with no active event")
	}

	tickUntil(game, 100, func() bool { return game.Scheduler().State() == qte.StateActive })
	before := game.Office().Money()
	if !game.Choose(qte.Choice2) {
		t.Fatal("Choose failed")
	}
	if game.Office().Money() != before+50 {
		t.Errorf("Money = %f, want %f", game.Office().Money(), before+50)
	}

	snapshot := game.Snapshot()
	if snapshot.QTE.State != qte.StateResolved || snapshot.QTE.Answer != "Bravo" {
		t.Errorf("QTE = %+v, want resolved with Bravo", snapshot.QTE)
	}
}

func TestRestart(t *testing.T) {
	game := newTestGame(t, model.DefaultConfig())
	game.ApplyEffect(model.NewEffect(0, 0, -1, 0, 0, 0))
	game.Tick()
	if game.Office().GameState() != office.GameOver {
		t.Fatalf("GameState = %v, want game over", game.Office().GameState())
	}

	if err := game.Restart(); err != nil {
		t.Fatalf("Restart: %v", err)
	}
	if game.Office().GameState() != office.GameRunning {
		t.Errorf("GameState = %v, want running", game.Office().GameState())
	}
	if game.Office().EmployeeCount() != 1 || game.Office().Money() != 100 {
		t.Errorf("restarted office has %d employees and %f money", game.Office().EmployeeCount(), game.Office().Money())
	}
	if game.Ticks() != 0 {
		t.Errorf("Ticks = %d, want 0", game.Ticks())
	}
}

func TestEmployeeCommands(t *testing.T) {
	game := newTestGame(t, model.DefaultConfig())
	id := game.Office().Employees()[0].ID()

	if !game.SetAction(id, office.ActionEat) {
		t.Fatal("SetAction failed")
	}
	if game.Clean(id) {
		t.Error("cleaned a living employee")
	}
	if game.SetAction(office.EmployeeID{}, office.ActionEat) {
		t.Error("SetAction accepted an unknown id")
	}

	game.KillRandomEmployee()
	if !game.Clean(id) {
		t.Fatal("Clean failed on a dead employee")
	}
}

func TestSetMenu(t *testing.T) {
	game := newTestGame(t, model.DefaultConfig())

	if !game.SetMenu(true) {
		t.Fatal("SetMenu(true) failed")
	}
	if result := game.Tick(); result.Tick != 0 {
		t.Errorf("Tick = %d while in the menu, want 0", result.Tick)
	}
	if !game.SetMenu(false) {
		t.Fatal("SetMenu(false) failed")
	}
	if result := game.Tick(); result.Tick != 1 {
		t.Errorf("Tick = %d, want 1", result.Tick)
	}
}

func TestSnapshot(t *testing.T) {
	game := newTestGame(t, model.DefaultConfig())
	game.AddEmployee()
	id := game.Office().Employees()[1].ID()
	game.Select(id)

	snapshot := game.Snapshot()
	if len(snapshot.Employees) != 2 {
		t.Fatalf("len(Employees) = %d, want 2", len(snapshot.Employees))
	}
	selected, ok := snapshot.Selected()
	if !ok || selected.ID != id {
		t.Errorf("Selected = %v, %v; want %v", selected.ID, ok, id)
	}
	if len(snapshot.Workstations) != 16 {
		t.Errorf("len(Workstations) = %d, want 16", len(snapshot.Workstations))
	}
	if snapshot.Money != 100 || snapshot.GameState != office.GameRunning {
		t.Errorf("Money = %f, GameState = %v", snapshot.Money, snapshot.GameState)
	}

	snapshot.Employees[0].Name = "changed"
	if game.Office().Employees()[0].Name() == "changed" {
		t.Error("snapshot shares memory with the game")
	}
}

func TestTick_MoneyAccounting(t *testing.T) {
	template := qte.Template{
		Text:         "Prime ?",
		Effect1:      model.NewEffect(0, 0, 0, 0, 7, 0),
		Effect2:      model.NewEffect(0, 0, 0, 0, 3, 0),
		Choice1:      "Oui",
		Choice2:      "Non",
		Explanation1: "Sept",
		Explanation2: "Trois",
		Time:         200 * time.Millisecond,
	}
	game, err := New(fastConfig(), []qte.Template{template}, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	resolved := 0
	for i := 0; i < 400 && game.Office().GameState() == office.GameRunning; i++ {
		if _, active := game.Scheduler().Active(); active && resolved%2 == 1 {
			before := game.Office().Money()
			if !game.Choose(qte.Choice2) {
				t.Fatal("Choose ignored while an event is active")
			}
			if got, want := game.Office().Money(), before+template.Effect2.Money; got != want {
				t.Fatalf("Money after choice = %f, want %f", got, want)
			}
			resolved++
		}

		before := game.Office().Money()
		result := game.Tick()

		applied := 0.0
		for _, event := range result.QTE {
			if event.Type == qte.EventResolved {
				applied += template.Effect(event.Choice).Money
				resolved++
			}
		}
		if got, want := game.Office().Money(), before+result.Office.Income+applied; got != want {
			t.Fatalf("tick %d: Money = %f, want %f (income %f, events %f)",
				result.Tick, got, want, result.Office.Income, applied)
		}
	}

	if resolved < 2 {
		t.Errorf("resolved %d events, want at least one timeout and one choice", resolved)
	}
}
