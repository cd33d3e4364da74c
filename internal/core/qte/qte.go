package qte

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"officesim/internal/core/model"
)

var (
	// ErrEmptyCatalog is returned when a scheduler is built without templates.
	ErrEmptyCatalog = errors.New("qte catalog is empty")
	// ErrInvalidTemplate is returned for templates that cannot be shown.
	ErrInvalidTemplate = errors.New("invalid qte template")
)

// Choice is the answer given to an active event.
type Choice uint8

const (
	ChoiceNone Choice = iota
	Choice1
	Choice2
)

func (choice Choice) String() string {
	switch choice {
	case Choice1:
		return "choice_1"
	case Choice2:
		return "choice_2"
	default:
		return "none"
	}
}

// Template is one quick-time event: a prompt with two answers, each with
// its own effect and explanation. Letting Time run out picks Choice1.
type Template struct {
	Text         string
	Effect1      model.Effect
	Effect2      model.Effect
	Choice1      string
	Choice2      string
	Explanation1 string
	Explanation2 string
	Time         time.Duration
}

// Validate reports whether the template can be scheduled.
func (template Template) Validate() error {
	if strings.TrimSpace(template.Text) == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidTemplate)
	}
	if template.Time <= 0 {
		return fmt.Errorf("%w: %q has non-positive time %v", ErrInvalidTemplate, template.Text, template.Time)
	}
	return nil
}

// Effect returns the effect bound to choice.
func (template Template) Effect(choice Choice) model.Effect {
	if choice == Choice2 {
		return template.Effect2
	}
	return template.Effect1
}

// Explanation returns the text shown after choice was applied.
func (template Template) Explanation(choice Choice) string {
	if choice == Choice2 {
		return template.Explanation2
	}
	return template.Explanation1
}

// Label returns the button label of choice.
func (template Template) Label(choice Choice) string {
	if choice == Choice2 {
		return template.Choice2
	}
	return template.Choice1
}
