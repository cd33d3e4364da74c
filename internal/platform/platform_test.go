package platform

import (
	"errors"
	"testing"
	"time"

	"officesim/internal/core/game"
)

func TestPortFromName(t *testing.T) {
	port := portFromName("OfficeSim")
	if port < minLockPort || port > maxLockPort {
		t.Fatalf("port = %d, want within [%d, %d]", port, minLockPort, maxLockPort)
	}
	if other := portFromName("  officesim "); other != port {
		t.Errorf("port for normalized name = %d, want %d", other, port)
	}
}

func TestAcquireSingleInstance(t *testing.T) {
	name := "officesim-test-" + t.Name()
	guard, err := AcquireSingleInstance(name)
	if err != nil {
		t.Skipf("cannot bind lock port: %v", err)
	}

	if _, err := AcquireSingleInstance(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Errorf("second acquire error = %v, want ErrAlreadyRunning", err)
	}
	if guard.Address() == "" {
		t.Error("guard has no address")
	}

	if err := guard.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := guard.Release(); err != nil {
		t.Errorf("second Release: %v", err)
	}

	again, err := AcquireSingleInstance(name)
	if err != nil {
		t.Fatalf("acquire after release: %v", err)
	}
	_ = again.Release()
}

func TestParseIdleValue(t *testing.T) {
	got, err := parseIdleValue(" 1500\n", time.Millisecond)
	if err != nil {
		t.Fatalf("parseIdleValue: %v", err)
	}
	if got != 1500*time.Millisecond {
		t.Errorf("idle = %v, want 1.5s", got)
	}

	if got, _ := parseIdleValue("-3", time.Millisecond); got != 0 {
		t.Errorf("negative idle = %v, want 0", got)
	}
	if _, err := parseIdleValue("soon", time.Millisecond); err == nil {
		t.Error("parseIdleValue accepted garbage")
	}
}

func TestUnsupportedIdleProvider(t *testing.T) {
	if _, err := (unsupportedIdleProvider{}).IdleDuration(); !errors.Is(err, game.ErrIdleUnsupported) {
		t.Errorf("error = %v, want ErrIdleUnsupported", err)
	}
}

func TestNewIdleProvider(t *testing.T) {
	if NewIdleProvider() == nil {
		t.Fatal("NewIdleProvider returned nil")
	}
}
