//go:build !windows && !linux && !darwin

package desktop

import (
	"context"

	"github.com/bft-labs/wallpick/internal/domain"
)

// Theme reports Light on platforms without a known theme setting.
type Theme struct{}

// NewTheme creates a Theme.
func NewTheme() *Theme {
	return &Theme{}
}

func (t *Theme) ThemeMode(ctx context.Context) (domain.ThemeMode, error) {
	return domain.Light, nil
}

// Desktop reports domain.ErrUnsupportedPlatform for every operation.
type Desktop struct{}

// NewDesktop creates a Desktop.
func NewDesktop() *Desktop {
	return &Desktop{}
}

func (d *Desktop) StyleConfig(ctx context.Context) (domain.StyleConfig, error) {
	return domain.StyleConfig{}, domain.ErrUnsupportedPlatform
}

func (d *Desktop) SetStyleConfig(ctx context.Context, cfg domain.StyleConfig) error {
	return domain.ErrUnsupportedPlatform
}

func (d *Desktop) SetWallpaper(ctx context.Context, path string) error {
	return domain.ErrUnsupportedPlatform
}
