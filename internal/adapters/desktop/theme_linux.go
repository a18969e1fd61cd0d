//go:build linux

package desktop

import (
	"context"
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"

	"github.com/bft-labs/wallpick/internal/domain"
)

const (
	portalDest      = "org.freedesktop.portal.Desktop"
	portalPath      = "/org/freedesktop/portal/desktop"
	portalReadCall  = "org.freedesktop.portal.Settings.Read"
	appearanceNS    = "org.freedesktop.appearance"
	colorSchemeName = "color-scheme"
)

// Theme implements ports.ThemeProvider through the freedesktop settings portal,
// falling back to the GNOME color-scheme setting.
type Theme struct{}

// NewTheme creates a Theme.
func NewTheme() *Theme {
	return &Theme{}
}

func (t *Theme) ThemeMode(ctx context.Context) (domain.ThemeMode, error) {
	mode, portalErr := portalThemeMode(ctx)
	if portalErr == nil {
		return mode, nil
	}

	out, err := runCommand(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
	if err != nil {
		return domain.Light, errors.Join(portalErr, fmt.Errorf("gsettings color-scheme: %w", err))
	}
	return colorSchemeMode(string(out)), nil
}

func portalThemeMode(ctx context.Context) (domain.ThemeMode, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return domain.Light, fmt.Errorf("session bus: %w", err)
	}
	defer conn.Close()

	var v dbus.Variant
	obj := conn.Object(portalDest, dbus.ObjectPath(portalPath))
	if err := obj.CallWithContext(ctx, portalReadCall, 0, appearanceNS, colorSchemeName).Store(&v); err != nil {
		return domain.Light, fmt.Errorf("portal read: %w", err)
	}

	// Settings.Read wraps the value in an extra variant.
	value := v.Value()
	for {
		inner, ok := value.(dbus.Variant)
		if !ok {
			break
		}
		value = inner.Value()
	}

	scheme, ok := value.(uint32)
	if !ok {
		return domain.Light, fmt.Errorf("portal color-scheme has type %T", value)
	}
	mode, ok := portalColorScheme(scheme)
	if !ok {
		return domain.Light, errors.New("portal reports no color-scheme preference")
	}
	return mode, nil
}
