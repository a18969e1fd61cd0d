package wallpick

import (
	"github.com/bft-labs/wallpick/internal/ports"
	"github.com/bft-labs/wallpick/pkg/log"
)

// Ports re-exported so embedders can supply their own implementations.
type (
	DisplayQuery        = ports.DisplayQuery
	ThemeProvider       = ports.ThemeProvider
	DesktopConfigurator = ports.DesktopConfigurator
	Journal             = ports.Journal
	FileProber          = ports.FileProber
)

// Option configures optional behavior of Wallpick.
type Option func(*options)

// options holds the optional configuration for a Wallpick instance.
type options struct {
	logger       log.Logger
	display      ports.DisplayQuery
	theme        ports.ThemeProvider
	desktop      ports.DesktopConfigurator
	journal      ports.Journal
	prober       ports.FileProber
	eventHandler EventHandler
}

// WithLogger sets a custom logger for structured logging.
// If not provided, a no-op logger is used (no output).
func WithLogger(logger log.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDisplay replaces the primary display query.
func WithDisplay(d DisplayQuery) Option {
	return func(o *options) {
		o.display = d
	}
}

// WithTheme replaces the OS theme query.
func WithTheme(t ThemeProvider) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithDesktop replaces the desktop theming service.
func WithDesktop(d DesktopConfigurator) Option {
	return func(o *options) {
		o.desktop = d
	}
}

// WithJournal replaces the daily log. If not provided, a daily log in
// Config.LogDir is used.
func WithJournal(j Journal) Option {
	return func(o *options) {
		o.journal = j
	}
}

// WithFileProber replaces the wallpaper existence check.
func WithFileProber(p FileProber) Option {
	return func(o *options) {
		o.prober = p
	}
}

// WithEventHandler sets a handler for run state changes.
func WithEventHandler(handler EventHandler) Option {
	return func(o *options) {
		o.eventHandler = handler
	}
}
