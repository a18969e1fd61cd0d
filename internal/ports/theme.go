package ports

import (
	"context"

	"github.com/bft-labs/wallpick/internal/domain"
)

// ThemeProvider reports the OS-wide light/dark appearance.
type ThemeProvider interface {
	ThemeMode(ctx context.Context) (domain.ThemeMode, error)
}
