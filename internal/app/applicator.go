package app

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/bft-labs/wallpick/internal/domain"
	"github.com/bft-labs/wallpick/internal/ports"
	"github.com/bft-labs/wallpick/pkg/log"
)

// Applicator sets a resolved wallpaper through the desktop theming service.
type Applicator struct {
	desktop ports.DesktopConfigurator
	probe   ports.FileProber
	out     outcome
}

// NewApplicator creates an Applicator.
func NewApplicator(desktop ports.DesktopConfigurator, probe ports.FileProber, logger log.Logger, journal ports.Journal) *Applicator {
	return &Applicator{
		desktop: desktop,
		probe:   probe,
		out:     outcome{logger: logger, journal: journal},
	}
}

// Apply sets path as the desktop background using styleName.
//
// It returns nil when the wallpaper was applied, an error matching
// domain.ErrInvalidStyle or domain.ErrFileNotFound when nothing was sent to the
// OS, or a *domain.ApplyError when the OS rejected the call.
func (a *Applicator) Apply(ctx context.Context, path, styleName string) error {
	style, err := domain.ParseStyle(styleName)
	if err != nil {
		a.out.error(fmt.Sprintf("Invalid wallpaper style %q", styleName), log.Err(err))
		return err
	}

	a.ensureStyle(ctx, style)

	if !a.probe.Exists(path) {
		a.out.error(fmt.Sprintf("Wallpaper file %s does not exist.", path), log.Path(path))
		return fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
	}

	if err := a.desktop.SetWallpaper(ctx, path); err != nil {
		applyErr := &domain.ApplyError{Path: path, Code: errorCode(err), Err: err}
		a.out.error(fmt.Sprintf("Failed to set wallpaper. Error code: %d", applyErr.Code),
			log.Path(path), log.Int("code", applyErr.Code), log.Err(err))
		return applyErr
	}

	a.out.info(fmt.Sprintf("Wallpaper set to %s", path), log.Path(path), log.Stringer("style", style))
	return nil
}

// ensureStyle writes the style encoding only when it differs from the OS.
// Failures are logged; they never block applying the wallpaper.
func (a *Applicator) ensureStyle(ctx context.Context, style domain.Style) {
	want := style.Config()

	current, err := a.desktop.StyleConfig(ctx)
	if err != nil {
		a.out.logger.Warn("read wallpaper style failed", log.Err(err))
	} else if current == want {
		a.out.logger.Debug("wallpaper style unchanged", log.Stringer("style", style))
		return
	}

	if err := a.desktop.SetStyleConfig(ctx, want); err != nil {
		a.out.warn(fmt.Sprintf("Failed to update wallpaper style to %s", style), log.Err(err))
		return
	}
	a.out.info(fmt.Sprintf("Wallpaper style updated to %s", style),
		log.Int("code", want.Code), log.Bool("tile", want.Tile))
}

// errorCode extracts the platform error code from a set-background failure,
// or -1 when none is available.
func errorCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
