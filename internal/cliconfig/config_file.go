package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// FileConfig is the persisted settings store. TOML is the default format;
// files ending in .yaml or .yml are read as YAML.
type FileConfig struct {
	WallpaperDir string  `toml:"wallpaper_dir" yaml:"wallpaper_dir"`
	LogDir       string  `toml:"log_dir,omitempty" yaml:"log_dir,omitempty"`
	Style        string  `toml:"style,omitempty" yaml:"style,omitempty"`
	Tolerance    float64 `toml:"tolerance,omitempty" yaml:"tolerance,omitempty"`
	Theme        string  `toml:"theme,omitempty" yaml:"theme,omitempty"`
	DryRun       *bool   `toml:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Strict       *bool   `toml:"strict,omitempty" yaml:"strict,omitempty"`
	DiagLog      string  `toml:"diag_log,omitempty" yaml:"diag_log,omitempty"`
	Verbose      *bool   `toml:"verbose,omitempty" yaml:"verbose,omitempty"`
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadFileConfig reads and parses a config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if isYAML(path) {
		err = yaml.Unmarshal(b, &fc)
	} else {
		err = toml.Unmarshal(b, &fc)
	}
	if err != nil {
		return fc, fmt.Errorf("parse %s: %w", path, err)
	}
	return fc, nil
}

// SaveFileConfig writes cfg to path atomically (temp file, then rename).
func SaveFileConfig(path string, cfg Config) error {
	fc := FileConfigFrom(cfg)

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(fc)
	} else {
		data, err = toml.Marshal(fc)
	}
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// FileConfigFrom converts a Config into its persisted form.
// Run-scoped switches (dry run, verbose) are not persisted.
func FileConfigFrom(cfg Config) FileConfig {
	fc := FileConfig{
		WallpaperDir: cfg.WallpaperDir,
		LogDir:       cfg.LogDir,
		Style:        cfg.Style,
		Tolerance:    cfg.Tolerance,
		Theme:        cfg.Theme,
		DiagLog:      cfg.DiagLog,
	}
	if cfg.Strict {
		strict := true
		fc.Strict = &strict
	}
	return fc
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.wallpick/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, "."+AppName, "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("wallpaper-dir", fc.WallpaperDir, &cfg.WallpaperDir)
	s.setString("log-dir", fc.LogDir, &cfg.LogDir)
	s.setString("style", fc.Style, &cfg.Style)
	s.setString("theme", fc.Theme, &cfg.Theme)
	s.setString("diag-log", fc.DiagLog, &cfg.DiagLog)

	s.setFloat("tolerance", fc.Tolerance, &cfg.Tolerance)

	s.setBool("dry-run", fc.DryRun, &cfg.DryRun)
	s.setBool("strict", fc.Strict, &cfg.Strict)
	s.setBool("verbose", fc.Verbose, &cfg.Verbose)

	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
