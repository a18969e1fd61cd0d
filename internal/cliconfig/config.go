package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bft-labs/wallpick/internal/domain"
)

// AppName names the config and log directories.
const AppName = "wallpick"

// ThemeAuto asks the OS for the current theme.
const ThemeAuto = "auto"

// Config holds CLI configuration for wallpick.
type Config struct {
	WallpaperDir string
	LogDir       string

	Style     string
	Tolerance float64
	Theme     string

	DryRun  bool
	Strict  bool
	DiagLog string
	Verbose bool
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogDir:    DefaultLogDir(),
		Style:     string(domain.StyleFill),
		Tolerance: domain.DefaultTolerance,
		Theme:     ThemeAuto,
	}
}

// Validate checks the configuration for errors and normalizes values.
// The style is only normalized; an unknown style is left for the run to report.
func (c *Config) Validate() error {
	if c.WallpaperDir == "" {
		return fmt.Errorf("wallpaper-dir is required")
	}
	c.WallpaperDir = filepath.Clean(expandHome(c.WallpaperDir))

	if c.LogDir == "" {
		c.LogDir = DefaultLogDir()
	}
	c.LogDir = filepath.Clean(expandHome(c.LogDir))

	c.Style = strings.TrimSpace(c.Style)
	if style, err := domain.ParseStyle(c.Style); err == nil {
		c.Style = string(style)
	}

	if c.Tolerance <= 0 {
		c.Tolerance = domain.DefaultTolerance
	}

	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	if c.Theme == "" {
		c.Theme = ThemeAuto
	}
	if c.Theme != ThemeAuto {
		if _, err := domain.ParseThemeMode(c.Theme); err != nil {
			return err
		}
	}

	if c.DiagLog != "" {
		c.DiagLog = filepath.Clean(expandHome(c.DiagLog))
	}
	return nil
}

// ThemeOverride returns the forced theme, or nil when the OS should be asked.
func (c Config) ThemeOverride() *domain.ThemeMode {
	if c.Theme == "" || c.Theme == ThemeAuto {
		return nil
	}
	mode, err := domain.ParseThemeMode(c.Theme)
	if err != nil {
		return nil
	}
	return &mode
}

// DefaultLogDir returns the per-user local application data directory
// (LocalAppData on Windows).
func DefaultLogDir() string {
	if dir, err := os.UserCacheDir(); err == nil && dir != "" {
		return filepath.Join(dir, AppName)
	}
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, "."+AppName, "logs")
	}
	return AppName + "-logs"
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	h, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(h, strings.TrimPrefix(p, "~"))
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setFloat sets a float64 value if positive and flag not changed.
func (s *configSetter) setFloat(flag string, value float64, dst *float64) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatFromString parses a string to float64 and sets the destination if valid.
// Used for environment variables that come as strings.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if f <= 0 {
		return nil
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
