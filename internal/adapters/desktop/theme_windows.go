//go:build windows

package desktop

import (
	"context"
	"fmt"

	"golang.org/x/sys/windows/registry"

	"github.com/bft-labs/wallpick/internal/domain"
)

const personalizeKey = `Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`

// Theme implements ports.ThemeProvider using the AppsUseLightTheme registry value.
type Theme struct{}

// NewTheme creates a Theme.
func NewTheme() *Theme {
	return &Theme{}
}

func (t *Theme) ThemeMode(ctx context.Context) (domain.ThemeMode, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, personalizeKey, registry.QUERY_VALUE)
	if err != nil {
		return domain.Light, fmt.Errorf("open personalize key: %w", err)
	}
	defer key.Close()

	light, _, err := key.GetIntegerValue("AppsUseLightTheme")
	if err != nil {
		return domain.Light, fmt.Errorf("read AppsUseLightTheme: %w", err)
	}
	if light == 0 {
		return domain.Dark, nil
	}
	return domain.Light, nil
}
