//go:build windows

package desktop

import (
	"golang.org/x/sys/windows"
)

var (
	user32               = windows.NewLazySystemDLL("user32.dll")
	getSystemMetrics     = user32.NewProc("GetSystemMetrics")
	systemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

const (
	smCXScreen = 0
	smCYScreen = 1
)

// systemMetrics returns the primary desktop size in pixels.
func systemMetrics() (int, int, error) {
	if err := getSystemMetrics.Find(); err != nil {
		return 0, 0, err
	}
	w, _, _ := getSystemMetrics.Call(uintptr(smCXScreen))
	h, _, _ := getSystemMetrics.Call(uintptr(smCYScreen))
	return int(w), int(h), nil
}
