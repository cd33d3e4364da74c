package game

import (
	"time"

	"officesim/internal/core/office"
	"officesim/internal/core/qte"
)

// EmployeeView is a read-only copy of one employee.
type EmployeeView struct {
	ID          office.EmployeeID
	Name        string
	State       office.State
	Phase       office.Phase
	Action      office.Action
	Needs       office.Needs
	Position    office.Vec2
	Rotation    float64
	Workstation office.WorkstationID
	Selected    bool
}

// QTEView is a read-only copy of the scheduler.
type QTEView struct {
	State             qte.State
	Text              string
	Choice1           string
	Choice2           string
	Remaining         time.Duration
	RemainingFraction float64
	Answer            string
}

// Snapshot is everything the front end draws, copied out of the game.
type Snapshot struct {
	Tick         uint64
	Money        float64
	Door         office.DoorState
	WindowOpen   bool
	WindowForced bool
	GameState    office.GameState
	Paused       bool

	Employees    []EmployeeView
	Workstations []office.Workstation
	Layout       office.Layout

	BoostCooldown time.Duration
	HireCooldown  time.Duration

	QTE QTEView
}

// Selected returns the view of the selected employee.
func (snapshot Snapshot) Selected() (EmployeeView, bool) {
	for _, employee := range snapshot.Employees {
		if employee.Selected {
			return employee, true
		}
	}
	return EmployeeView{}, false
}

// Snapshot copies the current game state.
func (game *Game) Snapshot() Snapshot {
	current := game.office
	snapshot := Snapshot{
		Tick:          game.ticks,
		Money:         current.Money(),
		Door:          current.Door(),
		WindowOpen:    current.WindowOpen(),
		WindowForced:  current.WindowForced(),
		GameState:     current.GameState(),
		Workstations:  current.Workstations(),
		Layout:        current.Layout(),
		BoostCooldown: current.Cooldown(office.ShopBoost),
		HireCooldown:  current.Cooldown(office.ShopHire),
		QTE:           game.qteView(),
	}

	selected, hasSelected := current.Selected()
	for _, employee := range current.Employees() {
		snapshot.Employees = append(snapshot.Employees, EmployeeView{
			ID:          employee.ID(),
			Name:        employee.Name(),
			State:       employee.State(),
			Phase:       employee.Phase(),
			Action:      employee.Action(),
			Needs:       employee.Needs(),
			Position:    employee.Position(),
			Rotation:    employee.Rotation(),
			Workstation: employee.Workstation(),
			Selected:    hasSelected && employee == selected,
		})
	}
	return snapshot
}

func (game *Game) qteView() QTEView {
	scheduler := game.scheduler
	view := QTEView{
		State:             scheduler.State(),
		Remaining:         scheduler.Remaining(),
		RemainingFraction: scheduler.RemainingFraction(),
	}
	if active, ok := scheduler.Active(); ok {
		view.Text = active.Text
		view.Choice1 = active.Choice1
		view.Choice2 = active.Choice2
	}
	if answer, ok := scheduler.Answer(); ok {
		view.Answer = answer
	}
	return view
}
