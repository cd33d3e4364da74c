package overlay

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"officesim/internal/core/game"
	"officesim/internal/core/qte"
)

// Config defines overlay visuals.
type Config struct {
	Opacity uint8
}

// Window shows the quick-time event prompt with its two answers.
type Window struct {
	window     fyne.Window
	config     Config
	background *canvas.Rectangle
	prompt     *widget.Label
	answer     *canvas.Text
	timer      *canvas.Text
	progress   *widget.ProgressBar
	choice1    *widget.Button
	choice2    *widget.Button
	onChoose   func(qte.Choice)
	visible    bool
}

const (
	overlayWidthFraction  = float32(0.25)
	overlayHeightFraction = float32(0.25)
	defaultScreenWidth    = float32(1920)
	defaultScreenHeight   = float32(1080)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates a hidden event window.
func New(app fyne.App, config Config) *Window {
	window := app.NewWindow("Office event")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated (no native frame/buttons).
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	background := canvas.NewRectangle(color.NRGBA{R: 0, G: 0, B: 0, A: config.Opacity})

	prompt := widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	prompt.Wrapping = fyne.TextWrapWord

	answer := canvas.NewText("", color.NRGBA{R: 232, G: 190, B: 66, A: 255})
	answer.Alignment = fyne.TextAlignCenter
	answer.TextStyle = fyne.TextStyle{Bold: true}
	answer.TextSize = 21

	timer := canvas.NewText("", color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	timer.Alignment = fyne.TextAlignTrailing
	timer.TextSize = 14

	progress := widget.NewProgressBar()
	progress.TextFormatter = func() string { return "" }

	overlay := &Window{
		window:     window,
		config:     config,
		background: background,
		prompt:     prompt,
		answer:     answer,
		timer:      timer,
		progress:   progress,
	}
	overlay.choice1 = widget.NewButton("", func() { overlay.choose(qte.Choice1) })
	overlay.choice2 = widget.NewButton("", func() { overlay.choose(qte.Choice2) })

	buttons := container.NewHBox(layout.NewSpacer(), overlay.choice1, overlay.choice2, layout.NewSpacer())
	content := container.NewVBox(prompt, progress, timer, buttons, answer)
	window.SetContent(container.NewStack(background, container.NewPadded(content)))

	return overlay
}

// SetOnChoose sets the answer handler.
func (overlay *Window) SetOnChoose(handler func(qte.Choice)) {
	overlay.onChoose = handler
}

// Update shows, refreshes or hides the window for view. It must run on
// the fyne goroutine; UpdateAsync schedules it there.
func (overlay *Window) Update(view game.QTEView) {
	switch view.State {
	case qte.StateActive:
		overlay.prompt.SetText(view.Text)
		overlay.choice1.SetText(view.Choice1)
		overlay.choice2.SetText(view.Choice2)
		overlay.choice1.Enable()
		overlay.choice2.Enable()
		overlay.progress.SetValue(view.RemainingFraction)
		overlay.setText(overlay.timer, formatDuration(view.Remaining))
		overlay.setText(overlay.answer, "")
		overlay.show()
	case qte.StateResolved:
		overlay.choice1.Disable()
		overlay.choice2.Disable()
		overlay.progress.SetValue(0)
		overlay.setText(overlay.timer, "")
		overlay.setText(overlay.answer, view.Answer)
		overlay.show()
	default:
		overlay.Hide()
	}
}

// UpdateAsync schedules Update on the fyne goroutine.
func (overlay *Window) UpdateAsync(view game.QTEView) {
	fyne.Do(func() {
		overlay.Update(view)
	})
}

// Hide closes the window.
func (overlay *Window) Hide() {
	if !overlay.visible {
		return
	}
	overlay.visible = false
	overlay.window.Hide()
}

// Visible reports whether the window is shown.
func (overlay *Window) Visible() bool {
	return overlay.visible
}

// UpdateConfig updates overlay visuals.
func (overlay *Window) UpdateConfig(config Config) {
	overlay.config = config
	overlay.background.FillColor = color.NRGBA{R: 0, G: 0, B: 0, A: config.Opacity}
	canvas.Refresh(overlay.background)
}

func (overlay *Window) choose(choice qte.Choice) {
	if overlay.onChoose != nil {
		overlay.onChoose(choice)
	}
}

func (overlay *Window) show() {
	if overlay.visible {
		return
	}
	overlay.visible = true
	overlay.resizeToScreenFraction()
	overlay.window.Show()
	overlay.window.RequestFocus()
}

func (overlay *Window) setText(text *canvas.Text, value string) {
	if text.Text == value {
		return
	}
	text.Text = value
	text.Refresh()
}

func (overlay *Window) resizeToScreenFraction() {
	screenSize := fyne.NewSize(defaultScreenWidth, defaultScreenHeight)
	canvasSize := overlay.window.Canvas().Size()
	// Canvas size can be reused as a proxy for monitor size when it is clearly screen-like.
	if canvasSize.Width >= 1024 && canvasSize.Height >= 720 {
		screenSize = canvasSize
	}

	width := screenSize.Width * overlayWidthFraction
	height := screenSize.Height * overlayHeightFraction
	minSize := overlay.window.Content().MinSize()
	if width < minSize.Width {
		width = minSize.Width
	}
	if height < minSize.Height {
		height = minSize.Height
	}

	overlay.window.Resize(fyne.NewSize(width, height))
	overlay.window.CenterOnScreen()
}

func formatDuration(value time.Duration) string {
	if value < 0 {
		value = 0
	}
	return fmt.Sprintf("%.1fs", value.Seconds())
}
