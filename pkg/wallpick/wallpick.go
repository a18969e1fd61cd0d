package wallpick

import (
	"context"
	"errors"

	"github.com/bft-labs/wallpick/internal/adapters/desktop"
	"github.com/bft-labs/wallpick/internal/adapters/fs"
	"github.com/bft-labs/wallpick/internal/app"
	"github.com/bft-labs/wallpick/internal/domain"
	"github.com/bft-labs/wallpick/internal/ports"
	"github.com/bft-labs/wallpick/pkg/log"
)

// Re-exported domain and run types.
type (
	ThemeMode   = domain.ThemeMode
	AspectRatio = domain.AspectRatio
	Resolution  = domain.Resolution
	State       = app.State
	Report      = app.Report
)

const (
	Light = domain.Light
	Dark  = domain.Dark
)

// Run states.
const (
	StateStart              = app.StateStart
	StateResolutionDetected = app.StateResolutionDetected
	StateAspectClassified   = app.StateAspectClassified
	StateThemeDetected      = app.StateThemeDetected
	StatePathResolved       = app.StatePathResolved
	StateApplied            = app.StateApplied
	StateFailed             = app.StateFailed
)

// Outcome errors, checkable with errors.Is on Report.Err.
var (
	ErrInvalidResolution = domain.ErrInvalidResolution
	ErrInvalidStyle      = domain.ErrInvalidStyle
	ErrFileNotFound      = domain.ErrFileNotFound
	ErrApplyFailed       = domain.ErrApplyFailed
	ErrLogWrite          = domain.ErrLogWrite
)

// ErrInvalidConfig is returned by New when the configuration is unusable.
var ErrInvalidConfig = errors.New("wallpick: invalid configuration")

// Config holds the settings of a run.
type Config struct {
	// WallpaperDir holds the wallpaper_{label}.png files. Required.
	WallpaperDir string

	// LogDir receives one {YYYY-MM-DD}.log file per day. Required unless
	// WithJournal is used.
	LogDir string

	// Style is one of Fill, Fit, Stretch, Tile, Center, Span. It is validated
	// when applying, so an unknown style is a run outcome, not a config error.
	Style string

	// Tolerance bounds the aspect-ratio match; non-positive means the default.
	Tolerance float64

	// ThemeOverride skips the OS theme query when set.
	ThemeOverride *ThemeMode

	// DryRun resolves the path without applying it.
	DryRun bool
}

// EventHandler receives run state changes.
type EventHandler interface {
	OnStateChange(previous, current State, reason string)
}

// Wallpick runs the wallpaper selection once per Run call.
type Wallpick struct {
	runner *app.Runner
}

// New creates a Wallpick with OS adapters for every dependency not supplied
// through options.
func New(cfg Config, opts ...Option) (*Wallpick, error) {
	if cfg.WallpaperDir == "" {
		return nil, errors.Join(ErrInvalidConfig, errors.New("wallpaper dir is required"))
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}
	if o.display == nil {
		o.display = desktop.NewDisplay()
	}
	if o.theme == nil {
		o.theme = desktop.NewTheme()
	}
	if o.desktop == nil {
		o.desktop = desktop.NewDesktop()
	}
	if o.prober == nil {
		o.prober = ports.FileProberFunc(fs.Exists)
	}
	if o.journal == nil {
		if cfg.LogDir == "" {
			return nil, errors.Join(ErrInvalidConfig, errors.New("log dir is required"))
		}
		o.journal = fs.NewDailyLog(cfg.LogDir)
	}

	var emitter app.EventEmitter
	if o.eventHandler != nil {
		emitter = o.eventHandler
	}

	runCfg := app.RunConfig{
		WallpaperDir:  cfg.WallpaperDir,
		Style:         cfg.Style,
		Tolerance:     cfg.Tolerance,
		ThemeOverride: cfg.ThemeOverride,
		DryRun:        cfg.DryRun,
	}

	return &Wallpick{
		runner: app.NewRunner(runCfg, o.display, o.theme, o.desktop, o.prober, o.journal, o.logger, emitter),
	}, nil
}

// Run performs one detection and apply pass. It never returns an error:
// outcomes, including failures, are described by the Report.
func (w *Wallpick) Run(ctx context.Context) Report {
	return w.runner.Run(ctx)
}

// Classify maps a resolution to its aspect-ratio label.
func Classify(width, height int, tolerance float64) (AspectRatio, error) {
	r, err := domain.NewResolution(width, height)
	if err != nil {
		return domain.Default, err
	}
	return domain.Classify(r, tolerance), nil
}

// CandidatePaths returns the light and dark wallpaper paths for label under dir.
func CandidatePaths(dir string, label AspectRatio) (light, dark string) {
	return app.CandidatePaths(dir, label)
}
