package platform

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"officesim/internal/core/game"
)

// NewIdleProvider returns the idle checker for this OS. Where user
// inactivity cannot be measured it reports game.ErrIdleUnsupported, which
// turns the runner's auto-pause off.
func NewIdleProvider() game.IdleChecker {
	return newIdleProvider()
}

type unsupportedIdleProvider struct{}

func (unsupportedIdleProvider) IdleDuration() (time.Duration, error) {
	return 0, game.ErrIdleUnsupported
}

// parseIdleValue reads one integer idle counter expressed in unit.
func parseIdleValue(raw string, unit time.Duration) (time.Duration, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse idle value %q: %w", raw, err)
	}
	if value < 0 {
		value = 0
	}
	return time.Duration(value) * unit, nil
}
