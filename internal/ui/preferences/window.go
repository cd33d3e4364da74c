package preferences

import (
	"fmt"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings)
	money      *widget.Entry
	employees  *widget.Entry
	gapMin     *widget.Entry
	gapMax     *widget.Entry
	seed       *widget.Entry
	difficulty *widget.Slider
	opacity    *widget.Slider
	idleCheck  *widget.Check
}

// New creates a preferences window. onSave receives the edited settings;
// the caller decides whether to start a new game with them.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Office Settings")

	money := widget.NewEntry()
	employees := widget.NewEntry()
	gapMin := widget.NewEntry()
	gapMax := widget.NewEntry()
	seed := widget.NewEntry()

	difficulty := widget.NewSlider(0.5, 3)
	difficulty.Step = 0.1

	opacity := widget.NewSlider(0.2, 1)
	opacity.Step = 0.05

	idleCheck := widget.NewCheck("Pause when the computer is idle", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("New game", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Starting money"), money),
		container.NewHBox(widget.NewLabel("Starting employees"), employees),
		container.NewHBox(widget.NewLabel("Events every"), gapMin, widget.NewLabel("to"), gapMax, widget.NewLabel("sec")),
		container.NewHBox(widget.NewLabel("Seed (0 = random)"), seed),
		widget.NewLabel("Difficulty"),
		difficulty,
		widget.NewLabel("Event window opacity"),
		opacity,
		idleCheck,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(420, 420))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		money:      money,
		employees:  employees,
		gapMin:     gapMin,
		gapMax:     gapMax,
		seed:       seed,
		difficulty: difficulty,
		opacity:    opacity,
		idleCheck:  idleCheck,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = window.Hide

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.money.SetText(strconv.Itoa(settings.StartingMoney))
	prefs.employees.SetText(strconv.Itoa(settings.StartingEmployees))
	prefs.gapMin.SetText(fmt.Sprintf("%d", int(settings.QTEGapMin.Seconds())))
	prefs.gapMax.SetText(fmt.Sprintf("%d", int(settings.QTEGapMax.Seconds())))
	prefs.seed.SetText(strconv.FormatInt(settings.Seed, 10))
	prefs.difficulty.SetValue(settings.Difficulty)
	prefs.opacity.SetValue(settings.EventOpacity)
	prefs.idleCheck.SetChecked(settings.AutoPauseOnIdle)
}

// Settings returns the last saved values.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if money, ok := parsePositiveInt(prefs.money.Text); ok {
		settings.StartingMoney = money
	}
	if count, ok := parsePositiveInt(prefs.employees.Text); ok && count <= 16 {
		settings.StartingEmployees = count
	}
	if seconds, ok := parsePositiveInt(prefs.gapMin.Text); ok {
		settings.QTEGapMin = time.Duration(seconds) * time.Second
	}
	if seconds, ok := parsePositiveInt(prefs.gapMax.Text); ok {
		settings.QTEGapMax = time.Duration(seconds) * time.Second
	}
	if settings.QTEGapMax < settings.QTEGapMin {
		settings.QTEGapMax = settings.QTEGapMin
	}
	if seed, err := strconv.ParseInt(prefs.seed.Text, 10, 64); err == nil {
		settings.Seed = seed
	}

	settings.Difficulty = prefs.difficulty.Value
	settings.EventOpacity = prefs.opacity.Value
	settings.AutoPauseOnIdle = prefs.idleCheck.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
