package office

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"officesim/internal/core/model"
)

// EmployeeID identifies an employee for the lifetime of an office. Holders
// of an id must look the employee up again; it may have been removed.
type EmployeeID = uuid.UUID

// State is the lifecycle state of an employee.
type State uint8

const (
	StateAlive State = iota
	StateDead
	StateFalling
	StateSuicide
	// StateClean marks an employee for removal on the next office tick.
	StateClean
)

func (state State) String() string {
	switch state {
	case StateAlive:
		return "alive"
	case StateDead:
		return "dead"
	case StateFalling:
		return "falling"
	case StateSuicide:
		return "suicide"
	case StateClean:
		return "clean"
	default:
		return "unknown"
	}
}

// Action is what the player told an employee to do. Each action
// replenishes one need.
type Action uint8

const (
	ActionNone Action = iota
	ActionBreak
	ActionEat
	ActionSleep
	ActionFamilyCall
)

func (action Action) String() string {
	switch action {
	case ActionNone:
		return "none"
	case ActionBreak:
		return "break"
	case ActionEat:
		return "eat"
	case ActionSleep:
		return "sleep"
	case ActionFamilyCall:
		return "family_call"
	default:
		return "unknown"
	}
}

// Need returns the need replenished by the action.
func (action Action) Need() (NeedKind, bool) {
	switch action {
	case ActionBreak:
		return NeedSatisfaction, true
	case ActionEat:
		return NeedSatiety, true
	case ActionSleep:
		return NeedEnergy, true
	case ActionFamilyCall:
		return NeedHope, true
	default:
		return 0, false
	}
}

// Employee is one simulated worker.
type Employee struct {
	id          EmployeeID
	name        string
	needs       Needs
	factors     Factors
	position    Vec2
	rotation    float64
	workstation WorkstationID
	phase       Phase
	state       State
	action      Action
}

// tickContext carries the read-only inputs of one employee tick.
type tickContext struct {
	needs    model.NeedConfig
	movement model.MovementConfig
	economy  model.EconomyConfig
	layout   Layout
	doorOpen bool
}

func newEmployee(rng *rand.Rand, config model.NeedConfig, station Workstation, entry Vec2) *Employee {
	return &Employee{
		id:          newEmployeeID(rng),
		name:        randomName(rng),
		needs:       randomNeeds(rng, config.InitialRange),
		factors:     randomFactors(rng, config.FactorRange),
		position:    entry,
		rotation:    math.Pi,
		workstation: station.ID,
		phase:       PhaseEnterRow,
		state:       StateAlive,
	}
}

func newEmployeeID(rng *rand.Rand) EmployeeID {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		return uuid.New()
	}
	return id
}

// ID returns the employee id.
func (employee *Employee) ID() EmployeeID {
	return employee.id
}

// Name returns the display name.
func (employee *Employee) Name() string {
	return employee.name
}

// Needs returns a copy of the need levels.
func (employee *Employee) Needs() Needs {
	return employee.needs
}

// Factors returns the per-need decay factors.
func (employee *Employee) Factors() Factors {
	return employee.factors
}

// Position returns the position on the office floor.
func (employee *Employee) Position() Vec2 {
	return employee.position
}

// Rotation returns the facing angle in radians.
func (employee *Employee) Rotation() float64 {
	return employee.rotation
}

// Workstation returns the assigned workstation.
func (employee *Employee) Workstation() WorkstationID {
	return employee.workstation
}

// Phase returns the movement phase.
func (employee *Employee) Phase() Phase {
	return employee.phase
}

// State returns the lifecycle state.
func (employee *Employee) State() State {
	return employee.state
}

// Action returns the action the player set, if any.
func (employee *Employee) Action() Action {
	return employee.action
}

// IsWorking reports whether the employee is seated and alive.
func (employee *Employee) IsWorking() bool {
	return employee.state == StateAlive && employee.phase == PhaseWorking
}

// SetAction toggles an action: setting the current action clears it.
// Only living employees accept actions.
func (employee *Employee) SetAction(action Action) bool {
	if employee.state != StateAlive {
		return false
	}
	if employee.action == action {
		employee.action = ActionNone
		return true
	}
	employee.action = action
	return true
}

// Clean disposes of a dead employee.
func (employee *Employee) Clean() bool {
	if employee.state != StateDead {
		return false
	}
	employee.state = StateClean
	employee.phase = PhaseGone
	return true
}

func (employee *Employee) kill() bool {
	if employee.state != StateAlive {
		return false
	}
	employee.state = StateDead
	employee.action = ActionNone
	return true
}

// tick advances the employee by one step and returns the money it made.
// station is the employee's own workstation.
func (employee *Employee) tick(ctx tickContext, station *Workstation) float64 {
	if employee.state == StateClean {
		return 0
	}

	employee.updateNeeds(ctx.needs)
	if employee.state == StateAlive {
		employee.checkThresholds(station)
	}
	employee.move(ctx, *station)
	return employee.income(ctx.economy, *station)
}

func (employee *Employee) updateNeeds(config model.NeedConfig) {
	for _, kind := range NeedKinds {
		rate := config.BaseDecay * employee.factors[kind]
		if kind == NeedHope {
			rate *= config.HopeDecayFactor
		}
		employee.needs[kind] = employee.needs[kind].Add(-rate)
	}
	if kind, ok := employee.action.Need(); ok {
		employee.needs[kind] = employee.needs[kind].Add(config.BaseDecay * config.ReplenishFactor)
	}
}

func (employee *Employee) checkThresholds(station *Workstation) {
	if employee.needs[NeedEnergy].IsEmpty() {
		employee.action = ActionSleep
	}
	if employee.needs[NeedSatiety].IsEmpty() {
		employee.kill()
		return
	}
	if employee.phase != PhaseWorking {
		return
	}
	if employee.needs[NeedSatisfaction].IsEmpty() {
		station.Broken = true
		employee.phase = PhaseReturnToCorridor
	}
	if employee.needs[NeedHope].IsEmpty() {
		employee.state = StateSuicide
		employee.action = ActionNone
		employee.phase = PhaseSuicideToCorridor
	}
}

func (employee *Employee) move(ctx tickContext, station Workstation) {
	switch employee.state {
	case StateAlive, StateSuicide:
		employee.follow(ctx, station)
	case StateFalling:
		employee.position = employee.position.Add(Vec2{
			X: ctx.movement.FallVelocityX,
			Y: ctx.movement.FallVelocityY,
		})
		if employee.position.Y < ctx.layout.FallBound {
			employee.enter(PhaseGone)
		}
	}
}

func (employee *Employee) follow(ctx tickContext, station Workstation) {
	step := route(employee.phase, station, ctx.layout, ctx.movement)
	switch step.kind {
	case legHold:
		if employee.phase == PhaseWorking {
			employee.rotation = station.Rotation
		}
	case legWaitDoor:
		if ctx.doorOpen {
			employee.enter(step.next)
		}
	default:
		delta := step.target.Sub(employee.position)
		if delta.Len() > 0 {
			employee.rotation = math.Atan2(delta.Y, delta.X)
		}
		var arrived bool
		employee.position, arrived = moveToward(employee.position, step.target, step.speed)
		if arrived {
			employee.enter(step.next)
		}
	}
}

func (employee *Employee) enter(phase Phase) {
	employee.phase = phase
	switch phase {
	case PhaseFall:
		employee.state = StateFalling
	case PhaseGone:
		employee.state = StateClean
	}
}

func (employee *Employee) income(config model.EconomyConfig, station Workstation) float64 {
	if !employee.IsWorking() || station.Broken {
		return 0
	}
	if employee.needs[NeedSatisfaction].IsFull() {
		return config.ComplacentIncome
	}
	return config.WorkIncome
}
