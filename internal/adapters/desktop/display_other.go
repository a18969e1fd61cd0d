//go:build !windows

package desktop

import "github.com/bft-labs/wallpick/internal/domain"

func systemMetrics() (int, int, error) {
	return 0, 0, domain.ErrUnsupportedPlatform
}
