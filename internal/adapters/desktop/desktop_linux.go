//go:build linux

package desktop

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/bft-labs/wallpick/internal/domain"
)

const backgroundSchema = "org.gnome.desktop.background"

// Desktop implements ports.DesktopConfigurator for GNOME-compatible desktops
// through gsettings.
type Desktop struct{}

// NewDesktop creates a Desktop.
func NewDesktop() *Desktop {
	return &Desktop{}
}

func (d *Desktop) StyleConfig(ctx context.Context) (domain.StyleConfig, error) {
	out, err := runCommand(ctx, "gsettings", "get", backgroundSchema, "picture-options")
	if err != nil {
		return domain.StyleConfig{}, fmt.Errorf("gsettings get picture-options: %w", err)
	}
	return styleConfigFromPictureOption(string(out))
}

func (d *Desktop) SetStyleConfig(ctx context.Context, cfg domain.StyleConfig) error {
	option, err := pictureOption(cfg)
	if err != nil {
		return err
	}
	if _, err := runCommand(ctx, "gsettings", "set", backgroundSchema, "picture-options", option); err != nil {
		return fmt.Errorf("gsettings set picture-options: %w", err)
	}
	return nil
}

// SetWallpaper sets picture-uri, and picture-uri-dark where the schema has it.
// A failure carries the gsettings exit status.
func (d *Desktop) SetWallpaper(ctx context.Context, path string) error {
	uri := fileURI(path)
	if _, err := runCommand(ctx, "gsettings", "set", backgroundSchema, "picture-uri", uri); err != nil {
		return fmt.Errorf("gsettings set picture-uri: %w", err)
	}
	// GNOME < 42 has no picture-uri-dark key.
	if _, err := runCommand(ctx, "gsettings", "set", backgroundSchema, "picture-uri-dark", uri); err != nil && !isMissingKey(err) {
		return fmt.Errorf("gsettings set picture-uri-dark: %w", err)
	}
	return nil
}

// isMissingKey reports whether gsettings failed because the schema lacks the key.
func isMissingKey(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr) && bytes.Contains(exitErr.Stderr, []byte("No such key"))
}
