//go:build darwin

package desktop

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bft-labs/wallpick/internal/domain"
)

// Desktop implements ports.DesktopConfigurator with osascript.
// macOS has no persisted style equivalent, so style access is unsupported.
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
	script := `tell application "System Events" to tell every desktop to set picture to ` + strconv.Quote(path)
	if _, err := runCommand(ctx, "osascript", "-e", script); err != nil {
		return fmt.Errorf("osascript: %w", err)
	}
	return nil
}
