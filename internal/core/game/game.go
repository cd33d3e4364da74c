package game

import (
	"fmt"
	"math/rand"
	"slices"

	"officesim/internal/core/model"
	"officesim/internal/core/office"
	"officesim/internal/core/qte"
)

// TickResult is what one game tick produced.
type TickResult struct {
	Tick   uint64
	Office office.TickReport
	QTE    []qte.Event
}

// Game owns one office and the quick-time event scheduler acting on it.
type Game struct {
	config  model.SimulationConfig
	catalog []qte.Template
	rng     *rand.Rand

	office    *office.Office
	scheduler *qte.Scheduler
	ticks     uint64
}

// New builds a game and hires the starting employees.
func New(config model.SimulationConfig, catalog []qte.Template, rng *rand.Rand) (*Game, error) {
	game := &Game{
		config:  config,
		catalog: slices.Clone(catalog),
		rng:     rng,
	}
	if err := game.Restart(); err != nil {
		return nil, err
	}
	return game, nil
}

// Restart throws the current office away and starts over with the same
// configuration.
func (game *Game) Restart() error {
	scheduler, err := qte.New(game.catalog, game.config.QTE, game.rng)
	if err != nil {
		return fmt.Errorf("restart game: %w", err)
	}
	game.office = office.New(game.config, game.rng)
	game.scheduler = scheduler
	game.ticks = 0
	for i := 0; i < game.config.StartingEmployees; i++ {
		game.office.AddEmployee()
	}
	return nil
}

// Tick advances the office, then the scheduler, by one tick interval.
func (game *Game) Tick() TickResult {
	result := TickResult{Tick: game.ticks}
	if game.office.GameState() != office.GameRunning {
		return result
	}

	result.Office = game.office.Tick()
	if !result.Office.GameOver {
		game.scheduler.Advance(game.config.TickInterval, game.office)
	}
	result.QTE = game.scheduler.Events()
	game.ticks++
	result.Tick = game.ticks
	return result
}

// Choose answers the active quick-time event.
func (game *Game) Choose(choice qte.Choice) bool {
	if game.office.GameState() != office.GameRunning {
		return false
	}
	return game.scheduler.Choose(choice, game.office)
}

// SetAction toggles an action on an employee.
func (game *Game) SetAction(id office.EmployeeID, action office.Action) bool {
	employee, ok := game.office.Employee(id)
	if !ok {
		return false
	}
	return employee.SetAction(action)
}

// Clean disposes of a dead employee.
func (game *Game) Clean(id office.EmployeeID) bool {
	employee, ok := game.office.Employee(id)
	if !ok {
		return false
	}
	return employee.Clean()
}

// SetMenu pauses the office behind the menu, or brings it back.
func (game *Game) SetMenu(open bool) bool {
	if open {
		return game.office.SetGameState(office.GameMenu)
	}
	return game.office.SetGameState(office.GameRunning)
}

// AddEmployee hires an employee if a workstation is free.
func (game *Game) AddEmployee() (office.EmployeeID, bool) {
	return game.office.AddEmployee()
}

// KillRandomEmployee kills one living employee.
func (game *Game) KillRandomEmployee() bool {
	return game.office.KillRandomEmployee()
}

// UpdateDoor toggles the door.
func (game *Game) UpdateDoor() bool {
	return game.office.UpdateDoor()
}

// UpdateWindow toggles the player-held window.
func (game *Game) UpdateWindow() {
	game.office.UpdateWindow()
}

// Click selects the employee nearest to pos.
func (game *Game) Click(pos office.Vec2) bool {
	return game.office.Click(pos)
}

// Select selects an employee by id.
func (game *Game) Select(id office.EmployeeID) bool {
	return game.office.Select(id)
}

// ClearSelection drops the selection.
func (game *Game) ClearSelection() {
	game.office.ClearSelection()
}

// Boost buys the boost shop action.
func (game *Game) Boost() bool {
	return game.office.Boost()
}

// Hire buys the hire shop action.
func (game *Game) Hire() bool {
	return game.office.Hire()
}

// ApplyEffect applies an effect to the office.
func (game *Game) ApplyEffect(effect model.Effect) {
	game.office.ApplyEffect(effect)
}

// Office returns the owned office. Callers must not keep it across a
// Restart.
func (game *Game) Office() *office.Office {
	return game.office
}

// Scheduler returns the owned scheduler.
func (game *Game) Scheduler() *qte.Scheduler {
	return game.scheduler
}

// Config returns the configuration the game was built with.
func (game *Game) Config() model.SimulationConfig {
	return game.config
}

// Ticks returns the number of ticks since the last restart.
func (game *Game) Ticks() uint64 {
	return game.ticks
}
