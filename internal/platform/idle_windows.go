package platform

import (
	"errors"
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"officesim/internal/core/game"
)

var (
	user32           = syscall.NewLazyDLL("user32.dll")
	kernel32         = syscall.NewLazyDLL("kernel32.dll")
	getLastInputInfo = user32.NewProc("GetLastInputInfo")
	getTickCount     = kernel32.NewProc("GetTickCount")
)

type lastInputInfo struct {
	cbSize uint32
	dwTime uint32
}

type lastInputProvider struct{}

func newIdleProvider() game.IdleChecker {
	if getLastInputInfo.Find() != nil || getTickCount.Find() != nil {
		return unsupportedIdleProvider{}
	}
	return lastInputProvider{}
}

func (lastInputProvider) IdleDuration() (time.Duration, error) {
	info := lastInputInfo{cbSize: uint32(unsafe.Sizeof(lastInputInfo{}))}
	result, _, err := getLastInputInfo.Call(uintptr(unsafe.Pointer(&info)))
	if result == 0 {
		if err == nil || errors.Is(err, syscall.Errno(0)) {
			err = errors.New("unknown error")
		}
		return 0, fmt.Errorf("get last input info: %w", err)
	}
	now, _, _ := getTickCount.Call()
	return sinceTick(uint32(now), info.dwTime), nil
}

// sinceTick returns the time between two 32-bit millisecond tick counts.
// Unsigned subtraction absorbs the wrap every 49.7 days.
func sinceTick(now, last uint32) time.Duration {
	return time.Duration(now-last) * time.Millisecond
}
