package office

import (
	"math/rand"
	"slices"
	"time"

	"officesim/internal/core/model"
)

// DoorState is the state of the office door.
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpen
	// DoorBroken is never entered by the simulation itself.
	DoorBroken
)

func (door DoorState) String() string {
	switch door {
	case DoorClosed:
		return "closed"
	case DoorOpen:
		return "open"
	case DoorBroken:
		return "broken"
	default:
		return "unknown"
	}
}

// GameState is the overall state of a game. Menu and Intro belong to the
// front end; the office only advances while Running.
type GameState uint8

const (
	GameRunning GameState = iota
	GameOver
	GameMenu
	GameIntro
)

func (state GameState) String() string {
	switch state {
	case GameRunning:
		return "running"
	case GameOver:
		return "game_over"
	case GameMenu:
		return "menu"
	case GameIntro:
		return "intro"
	default:
		return "unknown"
	}
}

// TickReport summarizes one office tick.
type TickReport struct {
	Income   float64
	Removed  []EmployeeID
	GameOver bool
}

// Office owns the workstations, the employees and the money.
type Office struct {
	config model.SimulationConfig
	layout Layout
	rng    *rand.Rand

	pool      *Pool
	employees []*Employee

	selected    EmployeeID
	hasSelected bool

	money float64
	door  DoorState

	windowForced  bool
	windowDerived bool

	cooldowns [shopActionCount]time.Duration
	state     GameState
}

// New creates an empty running office.
func New(config model.SimulationConfig, rng *rand.Rand) *Office {
	return NewWithLayout(config, DefaultLayout(), DefaultWorkstations(), rng)
}

// NewWithLayout creates an office on a custom floor.
func NewWithLayout(config model.SimulationConfig, layout Layout, stations []Workstation, rng *rand.Rand) *Office {
	return &Office{
		config: config,
		layout: layout,
		rng:    rng,
		pool:   NewPool(stations),
		money:  config.Economy.StartingMoney,
		door:   DoorClosed,
		state:  GameRunning,
	}
}

// AddEmployee hires an employee at the entry if a workstation is free.
func (office *Office) AddEmployee() (EmployeeID, bool) {
	id, ok := office.pool.Acquire(office.rng)
	if !ok {
		return EmployeeID{}, false
	}
	station := office.pool.stations[id]
	employee := newEmployee(office.rng, office.config.Needs, station, office.layout.Entry)
	office.employees = append(office.employees, employee)
	return employee.id, true
}

// KillRandomEmployee kills one living employee chosen uniformly.
func (office *Office) KillRandomEmployee() bool {
	alive := office.living()
	if len(alive) == 0 {
		return false
	}
	return alive[office.rng.Intn(len(alive))].kill()
}

// UpdateDoor toggles the door between open and closed.
func (office *Office) UpdateDoor() bool {
	switch office.door {
	case DoorOpen:
		office.door = DoorClosed
	case DoorClosed:
		office.door = DoorOpen
	default:
		return false
	}
	return true
}

// UpdateWindow toggles the window the player controls. The window is also
// open while anyone stands past the window line, whatever this flag says.
func (office *Office) UpdateWindow() {
	office.windowForced = !office.windowForced
}

// ApplyEffect applies an effect to the office and every living employee.
func (office *Office) ApplyEffect(effect model.Effect) {
	office.money += effect.Money
	for _, employee := range office.living() {
		employee.needs.apply(effect)
	}
	for i := 0; i < effect.Employees; i++ {
		office.AddEmployee()
	}
	for i := 0; i < -effect.Employees; i++ {
		office.KillRandomEmployee()
	}
}

// Tick advances every employee once and settles the office.
func (office *Office) Tick() TickReport {
	var report TickReport
	if office.state != GameRunning {
		return report
	}

	ctx := tickContext{
		needs:    office.config.Needs,
		movement: office.config.Movement,
		economy:  office.config.Economy,
		layout:   office.layout,
		doorOpen: office.door == DoorOpen,
	}
	for _, employee := range office.employees {
		report.Income += employee.tick(ctx, office.pool.station(employee.workstation))
	}
	office.money += report.Income
	office.advanceCooldowns()

	report.Removed = office.removeClean()
	office.windowDerived = office.anyPastWindowLine()

	if office.NonDeadCount() == 0 || office.money < 0 {
		office.state = GameOver
		report.GameOver = true
	}
	return report
}

func (office *Office) removeClean() []EmployeeID {
	var removed []EmployeeID
	kept := office.employees[:0]
	for _, employee := range office.employees {
		if employee.state != StateClean {
			kept = append(kept, employee)
			continue
		}
		office.pool.Release(employee.workstation)
		if office.hasSelected && office.selected == employee.id {
			office.ClearSelection()
		}
		removed = append(removed, employee.id)
	}
	clear(office.employees[len(kept):])
	office.employees = kept
	return removed
}

func (office *Office) anyPastWindowLine() bool {
	for _, employee := range office.employees {
		if employee.position.Y < office.layout.WindowThresholdY {
			return true
		}
	}
	return false
}

func (office *Office) living() []*Employee {
	alive := make([]*Employee, 0, len(office.employees))
	for _, employee := range office.employees {
		if employee.state == StateAlive {
			alive = append(alive, employee)
		}
	}
	return alive
}

// Click selects the employee nearest to pos within the pick radius.
func (office *Office) Click(pos Vec2) bool {
	var (
		nearest  *Employee
		distance = office.config.Movement.PickRadius
	)
	for _, employee := range office.employees {
		if d := employee.position.Dist(pos); d <= distance {
			nearest, distance = employee, d
		}
	}
	if nearest == nil {
		return false
	}
	office.selected, office.hasSelected = nearest.id, true
	return true
}

// Select selects an employee by id.
func (office *Office) Select(id EmployeeID) bool {
	if _, ok := office.Employee(id); !ok {
		return false
	}
	office.selected, office.hasSelected = id, true
	return true
}

// ClearSelection drops the current selection.
func (office *Office) ClearSelection() {
	office.selected, office.hasSelected = EmployeeID{}, false
}

// Selected looks up the selected employee.
func (office *Office) Selected() (*Employee, bool) {
	if !office.hasSelected {
		return nil, false
	}
	employee, ok := office.Employee(office.selected)
	if !ok {
		office.ClearSelection()
	}
	return employee, ok
}

// Employee looks up an employee by id.
func (office *Office) Employee(id EmployeeID) (*Employee, bool) {
	index := slices.IndexFunc(office.employees, func(employee *Employee) bool {
		return employee.id == id
	})
	if index < 0 {
		return nil, false
	}
	return office.employees[index], true
}

// Employees returns the employees in hiring order. The slice is a copy;
// the employees are not.
func (office *Office) Employees() []*Employee {
	return slices.Clone(office.employees)
}

// SetGameState moves between the running and menu states. A finished game
// stays over until a new office is built.
func (office *Office) SetGameState(state GameState) bool {
	if office.state == GameOver || state == GameOver {
		return false
	}
	office.state = state
	return true
}

// NonDeadCount counts employees that are not dead.
func (office *Office) NonDeadCount() int {
	count := 0
	for _, employee := range office.employees {
		if employee.state != StateDead {
			count++
		}
	}
	return count
}

// EmployeeCount returns how many employees are in the office, dead ones included.
func (office *Office) EmployeeCount() int {
	return len(office.employees)
}

// Money returns the balance.
func (office *Office) Money() float64 {
	return office.money
}

// Door returns the door state.
func (office *Office) Door() DoorState {
	return office.door
}

// WindowOpen reports whether the window is open, either held by the player
// or opened by someone past the window line.
func (office *Office) WindowOpen() bool {
	return office.windowForced || office.windowDerived
}

// WindowForced reports whether the player holds the window open.
func (office *Office) WindowForced() bool {
	return office.windowForced
}

// GameState returns the overall game state.
func (office *Office) GameState() GameState {
	return office.state
}

// Layout returns the floor way-points.
func (office *Office) Layout() Layout {
	return office.layout
}

// Pool returns the workstation pool.
func (office *Office) Pool() *Pool {
	return office.pool
}

// Workstations returns a copy of every workstation.
func (office *Office) Workstations() []Workstation {
	return office.pool.All()
}
