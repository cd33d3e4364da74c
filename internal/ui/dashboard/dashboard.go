package dashboard

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"officesim/internal/core/game"
	"officesim/internal/core/office"
)

// Controller is the part of the runner the dashboard drives.
type Controller interface {
	Do(fn func(*game.Game))
	Snapshot() game.Snapshot
	Restart() error
}

var playerActions = []office.Action{
	office.ActionBreak,
	office.ActionEat,
	office.ActionSleep,
	office.ActionFamilyCall,
}

// Dashboard is the main window: office figures, the employee list and
// every player command.
type Dashboard struct {
	window     fyne.Window
	controller Controller
	snapshot   game.Snapshot
	onError    func(error)

	money      *widget.Label
	doorState  *widget.Label
	windowOpen *widget.Label
	gameState  *widget.Label
	cooldowns  *widget.Label

	employees *widget.List

	selectedName *widget.Label
	needs        map[office.NeedKind]*widget.ProgressBar
	actions      map[office.Action]*widget.Button
	clean        *widget.Button

	addEmployee *widget.Button
	door        *widget.Button
	windowFlag  *widget.Button
	boost       *widget.Button
	hire        *widget.Button
	newGame     *widget.Button
}

// New builds the dashboard window. It stays hidden until Show.
func New(app fyne.App, controller Controller) *Dashboard {
	dashboard := &Dashboard{
		window:       app.NewWindow("Office"),
		controller:   controller,
		money:        widget.NewLabel(""),
		doorState:    widget.NewLabel(""),
		windowOpen:   widget.NewLabel(""),
		gameState:    widget.NewLabel(""),
		cooldowns:    widget.NewLabel(""),
		selectedName: widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		needs:        make(map[office.NeedKind]*widget.ProgressBar),
		actions:      make(map[office.Action]*widget.Button),
	}

	dashboard.employees = widget.NewList(
		func() int { return len(dashboard.snapshot.Employees) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, item fyne.CanvasObject) {
			if id < len(dashboard.snapshot.Employees) {
				item.(*widget.Label).SetText(employeeSummary(dashboard.snapshot.Employees[id]))
			}
		},
	)
	dashboard.employees.OnSelected = dashboard.selectRow

	details := container.NewVBox(dashboard.selectedName)
	for _, kind := range office.NeedKinds {
		bar := widget.NewProgressBar()
		dashboard.needs[kind] = bar
		details.Add(container.NewBorder(nil, nil, widget.NewLabel(kind.String()), nil, bar))
	}
	actionRow := container.NewHBox()
	for _, action := range playerActions {
		action := action
		button := widget.NewButton(action.String(), func() { dashboard.toggleAction(action) })
		dashboard.actions[action] = button
		actionRow.Add(button)
	}
	dashboard.clean = widget.NewButton("clean", dashboard.cleanSelected)
	actionRow.Add(dashboard.clean)
	details.Add(actionRow)

	dashboard.addEmployee = widget.NewButton("Add employee", func() {
		dashboard.command(func(current *game.Game) { current.AddEmployee() })
	})
	dashboard.door = widget.NewButton("Door", func() {
		dashboard.command(func(current *game.Game) { current.UpdateDoor() })
	})
	dashboard.windowFlag = widget.NewButton("Window", func() {
		dashboard.command(func(current *game.Game) { current.UpdateWindow() })
	})
	dashboard.boost = widget.NewButton("Boost", func() {
		dashboard.command(func(current *game.Game) { current.Boost() })
	})
	dashboard.hire = widget.NewButton("Hire", func() {
		dashboard.command(func(current *game.Game) { current.Hire() })
	})
	dashboard.newGame = widget.NewButton("New game", dashboard.restart)

	status := container.NewVBox(
		dashboard.gameState,
		dashboard.money,
		dashboard.doorState,
		dashboard.windowOpen,
		dashboard.cooldowns,
	)
	commands := container.NewGridWithColumns(3,
		dashboard.addEmployee, dashboard.door, dashboard.windowFlag,
		dashboard.boost, dashboard.hire, dashboard.newGame,
	)

	content := container.NewBorder(
		container.NewVBox(status, commands),
		details,
		nil,
		nil,
		dashboard.employees,
	)
	dashboard.window.SetContent(content)
	dashboard.window.Resize(fyne.NewSize(640, 560))

	dashboard.Refresh(controller.Snapshot())
	return dashboard
}

// Window returns the underlying fyne window.
func (dashboard *Dashboard) Window() fyne.Window {
	return dashboard.window
}

// Show displays the dashboard.
func (dashboard *Dashboard) Show() {
	dashboard.window.Show()
}

// SetOnError sets the handler for failed commands.
func (dashboard *Dashboard) SetOnError(handler func(error)) {
	dashboard.onError = handler
}

// RefreshAsync schedules Refresh on the fyne goroutine.
func (dashboard *Dashboard) RefreshAsync(snapshot game.Snapshot) {
	fyne.Do(func() {
		dashboard.Refresh(snapshot)
	})
}

// Refresh redraws every widget from snapshot. It must run on the fyne
// goroutine.
func (dashboard *Dashboard) Refresh(snapshot game.Snapshot) {
	dashboard.snapshot = snapshot

	state := snapshot.GameState.String()
	if snapshot.Paused {
		state += " (paused)"
	}
	dashboard.gameState.SetText("Game: " + state)
	dashboard.money.SetText(fmt.Sprintf("Money: %.2f", snapshot.Money))
	dashboard.doorState.SetText("Door: " + snapshot.Door.String())
	dashboard.windowOpen.SetText(windowText(snapshot))
	dashboard.cooldowns.SetText(fmt.Sprintf("Boost in %s, hire in %s",
		formatCooldown(snapshot.BoostCooldown), formatCooldown(snapshot.HireCooldown)))

	running := snapshot.GameState == office.GameRunning
	setEnabled(dashboard.addEmployee, running)
	setEnabled(dashboard.door, running)
	setEnabled(dashboard.windowFlag, running)
	setEnabled(dashboard.boost, running && snapshot.BoostCooldown == 0)
	setEnabled(dashboard.hire, running && snapshot.HireCooldown == 0)

	dashboard.employees.Refresh()
	dashboard.refreshSelected()
}

func (dashboard *Dashboard) refreshSelected() {
	selected, ok := dashboard.snapshot.Selected()
	if !ok {
		dashboard.selectedName.SetText("No employee selected")
		for _, bar := range dashboard.needs {
			bar.SetValue(0)
		}
		for _, button := range dashboard.actions {
			button.Disable()
		}
		dashboard.clean.Disable()
		return
	}

	dashboard.selectedName.SetText(fmt.Sprintf("%s (%s, %s)", selected.Name, selected.State, selected.Phase))
	for kind, bar := range dashboard.needs {
		bar.SetValue(selected.Needs.Get(kind))
	}
	alive := selected.State == office.StateAlive
	for action, button := range dashboard.actions {
		importance := widget.MediumImportance
		if selected.Action == action {
			importance = widget.HighImportance
		}
		if button.Importance != importance {
			button.Importance = importance
			button.Refresh()
		}
		setEnabled(button, alive)
	}
	setEnabled(dashboard.clean, selected.State == office.StateDead)
}

func (dashboard *Dashboard) selectRow(id widget.ListItemID) {
	if id < 0 || id >= len(dashboard.snapshot.Employees) {
		return
	}
	employee := dashboard.snapshot.Employees[id].ID
	dashboard.command(func(current *game.Game) { current.Select(employee) })
}

func (dashboard *Dashboard) toggleAction(action office.Action) {
	selected, ok := dashboard.snapshot.Selected()
	if !ok {
		return
	}
	dashboard.command(func(current *game.Game) { current.SetAction(selected.ID, action) })
}

func (dashboard *Dashboard) cleanSelected() {
	selected, ok := dashboard.snapshot.Selected()
	if !ok {
		return
	}
	dashboard.command(func(current *game.Game) { current.Clean(selected.ID) })
}

func (dashboard *Dashboard) restart() {
	if err := dashboard.controller.Restart(); err != nil && dashboard.onError != nil {
		dashboard.onError(err)
	}
	dashboard.employees.UnselectAll()
	dashboard.Refresh(dashboard.controller.Snapshot())
}

func (dashboard *Dashboard) command(fn func(*game.Game)) {
	dashboard.controller.Do(fn)
	dashboard.Refresh(dashboard.controller.Snapshot())
}

func employeeSummary(employee game.EmployeeView) string {
	needs := employee.Needs
	return fmt.Sprintf("%-10s %-8s sat %3.0f%%  hope %3.0f%%  energy %3.0f%%  food %3.0f%%",
		employee.Name,
		employee.State,
		needs.Satisfaction()*100,
		needs.Hope()*100,
		needs.Energy()*100,
		needs.Satiety()*100,
	)
}

func windowText(snapshot game.Snapshot) string {
	text := "Window: closed"
	if snapshot.WindowOpen {
		text = "Window: open"
	}
	if snapshot.WindowForced {
		text += " (held open)"
	}
	return text
}

func formatCooldown(value time.Duration) string {
	if value <= 0 {
		return "ready"
	}
	return fmt.Sprintf("%.0fs", value.Seconds())
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled == !button.Disabled() {
		return
	}
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
