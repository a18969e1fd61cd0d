package domain

import (
	"fmt"
	"strings"
)

// ThemeMode is the OS-wide light/dark appearance.
type ThemeMode int

const (
	Light ThemeMode = iota
	Dark
)

// ParseThemeMode parses "light" or "dark", ignoring case.
func ParseThemeMode(s string) (ThemeMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("%w: %q", ErrInvalidTheme, s)
	}
}

func (t ThemeMode) String() string {
	switch t {
	case Light:
		return "Light"
	case Dark:
		return "Dark"
	default:
		return "Unknown"
	}
}
