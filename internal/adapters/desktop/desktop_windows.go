//go:build windows

package desktop

import (
	"context"
	"fmt"
	"strconv"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/bft-labs/wallpick/internal/domain"
)

const desktopKey = `Control Panel\Desktop`

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateIniFile   = 0x01
	spifSendChange      = 0x02
)

// Desktop implements ports.DesktopConfigurator with the WallpaperStyle and
// TileWallpaper registry values and SystemParametersInfoW.
type Desktop struct{}

// NewDesktop creates a Desktop.
func NewDesktop() *Desktop {
	return &Desktop{}
}

func (d *Desktop) StyleConfig(ctx context.Context) (domain.StyleConfig, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, desktopKey, registry.QUERY_VALUE)
	if err != nil {
		return domain.StyleConfig{}, fmt.Errorf("open desktop key: %w", err)
	}
	defer key.Close()

	style, _, err := key.GetStringValue("WallpaperStyle")
	if err != nil {
		return domain.StyleConfig{}, fmt.Errorf("read WallpaperStyle: %w", err)
	}
	tile, _, err := key.GetStringValue("TileWallpaper")
	if err != nil {
		return domain.StyleConfig{}, fmt.Errorf("read TileWallpaper: %w", err)
	}

	code, err := strconv.Atoi(style)
	if err != nil {
		return domain.StyleConfig{}, fmt.Errorf("parse WallpaperStyle %q: %w", style, err)
	}
	return domain.StyleConfig{Code: code, Tile: tile == "1"}, nil
}

func (d *Desktop) SetStyleConfig(ctx context.Context, cfg domain.StyleConfig) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, desktopKey, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("open desktop key: %w", err)
	}
	defer key.Close()

	if err := key.SetStringValue("WallpaperStyle", strconv.Itoa(cfg.Code)); err != nil {
		return fmt.Errorf("write WallpaperStyle: %w", err)
	}
	tile := "0"
	if cfg.Tile {
		tile = "1"
	}
	if err := key.SetStringValue("TileWallpaper", tile); err != nil {
		return fmt.Errorf("write TileWallpaper: %w", err)
	}
	return nil
}

// SetWallpaper returns the Win32 error (a syscall.Errno) when the call fails.
func (d *Desktop) SetWallpaper(ctx context.Context, path string) error {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return err
	}
	ret, _, callErr := systemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(p)),
		uintptr(spifUpdateIniFile|spifSendChange),
	)
	if ret == 0 {
		return callErr
	}
	return nil
}
