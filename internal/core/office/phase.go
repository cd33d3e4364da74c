package office

import "officesim/internal/core/model"

// Phase is the discrete movement stage of an employee. It is plain data so
// a run can be replayed from the phase, position and needs alone.
type Phase uint8

const (
	PhaseEnterRow Phase = iota
	PhaseAlignRow
	PhaseApproachSeat
	PhaseTakeSeat
	PhaseWorking
	PhaseReturnToCorridor
	PhaseApproachDoor
	PhaseWaitDoor
	PhaseExit
	PhaseLeaveFrame
	PhaseSuicideToCorridor
	PhaseSuicideToWindow
	PhaseFall
	PhaseGone

	phaseCount
)

var phaseNames = [phaseCount]string{
	"enter_row",
	"align_row",
	"approach_seat",
	"take_seat",
	"working",
	"return_to_corridor",
	"approach_door",
	"wait_door",
	"exit",
	"leave_frame",
	"suicide_to_corridor",
	"suicide_to_window",
	"fall",
	"gone",
}

func (phase Phase) String() string {
	if !phase.Valid() {
		return "invalid"
	}
	return phaseNames[phase]
}

// Valid reports whether phase is one of the known stages.
func (phase Phase) Valid() bool {
	return phase < phaseCount
}

type legKind uint8

const (
	legMove legKind = iota
	legHold
	legWaitDoor
)

// leg is one step of a route: move toward target at speed, then enter next.
type leg struct {
	kind   legKind
	target Vec2
	speed  float64
	next   Phase
}

// route maps a phase to its leg. It only reads its arguments.
func route(phase Phase, station Workstation, layout Layout, movement model.MovementConfig) leg {
	walk, run := movement.WalkSpeed, movement.RunSpeed
	corridorAtSeat := Vec2{X: layout.CorridorX, Y: station.Seat.Y}

	switch phase {
	case PhaseEnterRow:
		return leg{target: Vec2{X: layout.CorridorX, Y: layout.Entry.Y}, speed: walk, next: PhaseAlignRow}
	case PhaseAlignRow:
		return leg{target: Vec2{X: layout.CorridorX, Y: station.Arrival.Y}, speed: walk, next: PhaseApproachSeat}
	case PhaseApproachSeat:
		return leg{target: station.Arrival, speed: walk, next: PhaseTakeSeat}
	case PhaseTakeSeat:
		return leg{target: station.Seat, speed: walk, next: PhaseWorking}
	case PhaseReturnToCorridor:
		return leg{target: corridorAtSeat, speed: run, next: PhaseApproachDoor}
	case PhaseApproachDoor:
		return leg{target: layout.DoorInside, speed: run, next: PhaseWaitDoor}
	case PhaseWaitDoor:
		return leg{kind: legWaitDoor, next: PhaseExit}
	case PhaseExit:
		return leg{target: layout.DoorOutside, speed: run, next: PhaseLeaveFrame}
	case PhaseLeaveFrame:
		return leg{target: layout.Offstage, speed: run, next: PhaseGone}
	case PhaseSuicideToCorridor:
		return leg{target: corridorAtSeat, speed: run, next: PhaseSuicideToWindow}
	case PhaseSuicideToWindow:
		return leg{target: layout.Window, speed: run, next: PhaseFall}
	default:
		return leg{kind: legHold, next: phase}
	}
}

// moveToward advances pos by speed toward target, snapping when the
// remaining distance is within one step.
func moveToward(pos, target Vec2, speed float64) (Vec2, bool) {
	delta := target.Sub(pos)
	distance := delta.Len()
	if distance <= speed {
		return target, true
	}
	return pos.Add(delta.Scale(speed / distance)), false
}
