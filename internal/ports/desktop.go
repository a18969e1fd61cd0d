package ports

import (
	"context"

	"github.com/bft-labs/wallpick/internal/domain"
)

// DesktopConfigurator wraps the OS desktop theming service.
type DesktopConfigurator interface {
	// StyleConfig returns the currently persisted wallpaper style encoding.
	StyleConfig(ctx context.Context) (domain.StyleConfig, error)

	// SetStyleConfig persists a new wallpaper style encoding.
	SetStyleConfig(ctx context.Context, cfg domain.StyleConfig) error

	// SetWallpaper applies the image at path as the desktop background.
	// Platform failures should carry their native error code
	// (syscall.Errno or *exec.ExitError).
	SetWallpaper(ctx context.Context, path string) error
}
