package platform

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"officesim/internal/core/game"
)

type ioregProvider struct {
	path string
}

func newIdleProvider() game.IdleChecker {
	path, err := exec.LookPath("ioreg")
	if err != nil {
		return unsupportedIdleProvider{}
	}
	return &ioregProvider{path: path}
}

func (provider *ioregProvider) IdleDuration() (time.Duration, error) {
	output, err := exec.Command(provider.path, "-c", "IOHIDSystem", "-d", "4").Output()
	if err != nil {
		return 0, fmt.Errorf("ioreg: %w", err)
	}
	return parseHIDIdleTime(string(output))
}

// parseHIDIdleTime extracts the HIDIdleTime counter, in nanoseconds, from
// ioreg output.
func parseHIDIdleTime(output string) (time.Duration, error) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, `"HIDIdleTime"`) {
			continue
		}
		_, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}
		return parseIdleValue(value, time.Nanosecond)
	}
	return 0, fmt.Errorf("ioreg: HIDIdleTime not found: %w", game.ErrIdleUnsupported)
}
