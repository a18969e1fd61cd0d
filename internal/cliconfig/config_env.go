package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (WALLPICK_*).
// It respects flags that have been explicitly set (changed map).
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("wallpaper-dir", os.Getenv("WALLPICK_WALLPAPER_DIR"), &cfg.WallpaperDir)
	s.setString("log-dir", os.Getenv("WALLPICK_LOG_DIR"), &cfg.LogDir)
	s.setString("style", os.Getenv("WALLPICK_STYLE"), &cfg.Style)
	s.setString("theme", os.Getenv("WALLPICK_THEME"), &cfg.Theme)
	s.setString("diag-log", os.Getenv("WALLPICK_DIAG_LOG"), &cfg.DiagLog)

	if err := s.setFloatFromString("tolerance", os.Getenv("WALLPICK_TOLERANCE"), &cfg.Tolerance); err != nil {
		return err
	}

	s.setBoolFromString("dry-run", os.Getenv("WALLPICK_DRY_RUN"), &cfg.DryRun)
	s.setBoolFromString("strict", os.Getenv("WALLPICK_STRICT"), &cfg.Strict)
	s.setBoolFromString("verbose", os.Getenv("WALLPICK_VERBOSE"), &cfg.Verbose)

	return nil
}
