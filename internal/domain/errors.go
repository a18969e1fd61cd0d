package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent outcome conditions of a wallpick run.
// They can be checked with errors.Is.
var (
	// ErrInvalidResolution is returned for non-positive display dimensions.
	ErrInvalidResolution = errors.New("wallpick: invalid resolution")

	// ErrInvalidStyle is returned for a style name outside the supported set.
	ErrInvalidStyle = errors.New("wallpick: invalid wallpaper style")

	// ErrInvalidTheme is returned for a theme name other than light or dark.
	ErrInvalidTheme = errors.New("wallpick: invalid theme mode")

	// ErrFileNotFound is returned when the resolved wallpaper file is absent.
	ErrFileNotFound = errors.New("wallpick: wallpaper file not found")

	// ErrApplyFailed is returned when the OS rejects the set-background call.
	ErrApplyFailed = errors.New("wallpick: apply wallpaper failed")

	// ErrLogWrite is returned when the daily log cannot be pruned or appended.
	ErrLogWrite = errors.New("wallpick: log write failed")

	// ErrUnsupportedPlatform is returned by adapters with no implementation for
	// the running operating system.
	ErrUnsupportedPlatform = errors.New("wallpick: unsupported platform")
)

// ApplyError carries the platform error code of a failed set-background call.
type ApplyError struct {
	Path string
	Code int
	Err  error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("failed to set wallpaper %s: error code %d: %v", e.Path, e.Code, e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// Is reports ErrApplyFailed as a match.
func (e *ApplyError) Is(target error) bool { return target == ErrApplyFailed }

// LogWriteError describes a failed file system operation in the daily log.
type LogWriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *LogWriteError) Error() string {
	return fmt.Sprintf("log %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *LogWriteError) Unwrap() error { return e.Err }

// Is reports ErrLogWrite as a match.
func (e *LogWriteError) Is(target error) bool { return target == ErrLogWrite }
