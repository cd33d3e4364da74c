//go:build !linux && !darwin && !windows

package platform

import "officesim/internal/core/game"

func newIdleProvider() game.IdleChecker {
	return unsupportedIdleProvider{}
}
