package ports

import (
	"context"

	"github.com/bft-labs/wallpick/internal/domain"
)

// DisplayQuery reports the size of the primary display.
type DisplayQuery interface {
	// PrimaryResolution returns the primary display size in pixels.
	PrimaryResolution(ctx context.Context) (domain.Resolution, error)
}
