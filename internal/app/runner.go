package app

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bft-labs/wallpick/internal/domain"
	"github.com/bft-labs/wallpick/internal/ports"
	"github.com/bft-labs/wallpick/pkg/log"
)

// RunConfig contains configuration for a single run.
type RunConfig struct {
	WallpaperDir string
	Style        string
	Tolerance    float64

	// ThemeOverride, when set, replaces the OS theme query.
	ThemeOverride *domain.ThemeMode

	// DryRun stops after the path is resolved.
	DryRun bool
}

// Report summarizes a finished run.
type Report struct {
	// RunID tags the structured log lines of one run.
	RunID      string
	State      State
	Resolution domain.Resolution
	Label      domain.AspectRatio
	Theme      domain.ThemeMode
	Path       string
	Err        error
}

// Failed reports whether the run ended in StateFailed.
func (r Report) Failed() bool {
	return r.State == StateFailed
}

// Runner sequences detection, classification, resolution and application.
type Runner struct {
	config     RunConfig
	display    ports.DisplayQuery
	theme      ports.ThemeProvider
	resolver   *Resolver
	applicator *Applicator
	logger     log.Logger
	out        outcome
	emitter    EventEmitter
}

// NewRunner creates a Runner with the given dependencies.
func NewRunner(
	config RunConfig,
	display ports.DisplayQuery,
	theme ports.ThemeProvider,
	desktop ports.DesktopConfigurator,
	probe ports.FileProber,
	journal ports.Journal,
	logger log.Logger,
	emitter EventEmitter,
) *Runner {
	return &Runner{
		config:     config,
		display:    display,
		theme:      theme,
		resolver:   NewResolver(probe, logger, journal),
		applicator: NewApplicator(desktop, probe, logger, journal),
		logger:     logger,
		out:        outcome{logger: logger, journal: journal},
		emitter:    emitter,
	}
}

// Run performs one pass. Outcome errors are recorded in the report and the
// logs; Run itself never retries.
func (r *Runner) Run(ctx context.Context) Report {
	lc := NewLifecycle(r.logger, r.emitter)
	rep := Report{RunID: uuid.NewString(), State: StateStart}
	r.logger.Debug("run started", log.String("run_id", rep.RunID), log.String("wallpaper_dir", r.config.WallpaperDir))

	fail := func(err error, msg string, fields ...log.Field) Report {
		r.out.error(msg, append(fields, log.Err(err))...)
		_ = lc.TransitionTo(StateFailed, err.Error())
		rep.State = lc.State()
		rep.Err = err
		return rep
	}
	advance := func(s State, reason string) {
		_ = lc.TransitionTo(s, reason)
		rep.State = lc.State()
	}

	res, err := r.display.PrimaryResolution(ctx)
	if err != nil {
		return fail(err, fmt.Sprintf("Failed to read display resolution: %v", err))
	}
	if !res.Valid() {
		err := fmt.Errorf("%w: %s", domain.ErrInvalidResolution, res)
		return fail(err, fmt.Sprintf("Display reported invalid resolution %s", res))
	}
	rep.Resolution = res
	advance(StateResolutionDetected, res.String())

	rep.Label = domain.Classify(res, r.config.Tolerance)
	r.logger.Info("aspect ratio classified",
		log.Stringer("resolution", res),
		log.Float64("ratio", res.Ratio()),
		log.Stringer("label", rep.Label))
	advance(StateAspectClassified, rep.Label.String())

	rep.Theme = r.detectTheme(ctx)
	advance(StateThemeDetected, rep.Theme.String())

	rep.Path = r.resolver.Resolve(r.config.WallpaperDir, rep.Label, rep.Theme)
	r.out.info(fmt.Sprintf("Constructed wallpaper path: %s", rep.Path), log.Path(rep.Path))
	advance(StatePathResolved, rep.Path)

	if r.config.DryRun {
		r.logger.Info("dry run, wallpaper not applied", log.Path(rep.Path))
		return rep
	}

	if err := r.applicator.Apply(ctx, rep.Path, r.config.Style); err != nil {
		_ = lc.TransitionTo(StateFailed, err.Error())
		rep.State = lc.State()
		rep.Err = err
		return rep
	}
	advance(StateApplied, rep.Path)
	return rep
}

// detectTheme honors the override, and degrades to Light when the OS query fails.
func (r *Runner) detectTheme(ctx context.Context) domain.ThemeMode {
	if r.config.ThemeOverride != nil {
		r.logger.Info("theme override", log.Stringer("theme", *r.config.ThemeOverride))
		return *r.config.ThemeOverride
	}
	mode, err := r.theme.ThemeMode(ctx)
	if err != nil {
		r.logger.Warn("theme query failed, assuming light", log.Err(err))
		return domain.Light
	}
	r.logger.Info("theme detected", log.Stringer("theme", mode))
	return mode
}
