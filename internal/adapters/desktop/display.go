package desktop

import (
	"context"
	"errors"
	"fmt"

	"github.com/kbinani/screenshot"

	"github.com/bft-labs/wallpick/internal/domain"
)

// Display implements ports.DisplayQuery for the primary monitor.
type Display struct{}

// NewDisplay creates a Display.
func NewDisplay() *Display {
	return &Display{}
}

// PrimaryResolution returns the primary display size. The native system
// metrics are preferred where available, with the screenshot bounds of
// display 0 as the portable path.
func (d *Display) PrimaryResolution(ctx context.Context) (domain.Resolution, error) {
	if w, h, err := systemMetrics(); err == nil {
		if r, err := domain.NewResolution(w, h); err == nil {
			return r, nil
		}
	} else if !errors.Is(err, domain.ErrUnsupportedPlatform) {
		return domain.Resolution{}, fmt.Errorf("system metrics: %w", err)
	}

	if screenshot.NumActiveDisplays() <= 0 {
		return domain.Resolution{}, errors.New("no active display")
	}
	bounds := screenshot.GetDisplayBounds(0)
	return domain.NewResolution(bounds.Dx(), bounds.Dy())
}
