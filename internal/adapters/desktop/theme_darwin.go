//go:build darwin

package desktop

import (
	"context"
	"strings"

	"github.com/bft-labs/wallpick/internal/domain"
)

// Theme implements ports.ThemeProvider using AppleInterfaceStyle.
type Theme struct{}

// NewTheme creates a Theme.
func NewTheme() *Theme {
	return &Theme{}
}

func (t *Theme) ThemeMode(ctx context.Context) (domain.ThemeMode, error) {
	out, err := runCommand(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
	if err != nil {
		// The key is absent in light mode.
		return domain.Light, nil
	}
	if strings.TrimSpace(string(out)) == "Dark" {
		return domain.Dark, nil
	}
	return domain.Light, nil
}
