package app

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/wallpick/internal/adapters/memory"
	"github.com/bft-labs/wallpick/internal/domain"
	"github.com/bft-labs/wallpick/pkg/log"
)

type runnerFixture struct {
	display *memory.Display
	theme   *memory.Theme
	desktop *memory.Desktop
	files   *memory.Files
	journal *memory.Journal
	emitter *mockEmitter
}

func newRunnerFixture(width, height int, mode domain.ThemeMode, files ...string) *runnerFixture {
	return &runnerFixture{
		display: &memory.Display{Resolution: domain.Resolution{Width: width, Height: height}},
		theme:   &memory.Theme{Mode: mode},
		desktop: &memory.Desktop{Style: domain.StyleFill.Config()},
		files:   memory.NewFiles(files...),
		journal: &memory.Journal{},
		emitter: &mockEmitter{},
	}
}

func (f *runnerFixture) runner(cfg RunConfig) *Runner {
	return NewRunner(cfg, f.display, f.theme, f.desktop, f.files, f.journal, log.NewNoopLogger(), f.emitter)
}

func baseConfig() RunConfig {
	return RunConfig{WallpaperDir: "walls", Style: "Fill", Tolerance: domain.DefaultTolerance}
}

func TestRunner_AppliesDarkVariant(t *testing.T) {
	dark := filepath.Join("walls", "wallpaper_16_9_Dark.png")
	f := newRunnerFixture(1920, 1080, domain.Dark, dark)

	rep := f.runner(baseConfig()).Run(context.Background())

	require.NoError(t, rep.Err)
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, StateApplied, rep.State)
	assert.Equal(t, domain.Ratio16x9, rep.Label)
	assert.Equal(t, domain.Dark, rep.Theme)
	assert.Equal(t, dark, rep.Path)
	assert.Equal(t, dark, f.desktop.Path)
	assert.Equal(t, []State{
		StateResolutionDetected, StateAspectClassified, StateThemeDetected, StatePathResolved, StateApplied,
	}, f.emitter.path())
	assert.Contains(t, f.journal.Lines(), "Constructed wallpaper path: "+dark)
	assert.Contains(t, f.journal.Lines(), "Wallpaper set to "+dark)
}

func TestRunner_MissingFileFails(t *testing.T) {
	f := newRunnerFixture(1000, 1000, domain.Light)

	rep := f.runner(baseConfig()).Run(context.Background())

	assert.Equal(t, StateFailed, rep.State)
	assert.True(t, rep.Failed())
	assert.ErrorIs(t, rep.Err, domain.ErrFileNotFound)
	assert.Equal(t, domain.Default, rep.Label)
	assert.Equal(t, filepath.Join("walls", "wallpaper_Default.png"), rep.Path)
	assert.Zero(t, f.desktop.WallpaperCalls)
}

func TestRunner_DisplayFailure(t *testing.T) {
	f := newRunnerFixture(0, 0, domain.Light)
	f.display.Err = errors.New("no display")

	rep := f.runner(baseConfig()).Run(context.Background())

	assert.Equal(t, StateFailed, rep.State)
	assert.EqualError(t, rep.Err, "no display")
	assert.Equal(t, []State{StateFailed}, f.emitter.path())
	assert.Zero(t, f.theme.Calls)
}

func TestRunner_InvalidResolution(t *testing.T) {
	f := newRunnerFixture(1920, 0, domain.Light)

	rep := f.runner(baseConfig()).Run(context.Background())

	assert.Equal(t, StateFailed, rep.State)
	assert.ErrorIs(t, rep.Err, domain.ErrInvalidResolution)
}

func TestRunner_ThemeFailureDegradesToLight(t *testing.T) {
	light := filepath.Join("walls", "wallpaper_16_10.png")
	f := newRunnerFixture(1680, 1050, domain.Dark, light)
	f.theme.Err = errors.New("portal unavailable")

	rep := f.runner(baseConfig()).Run(context.Background())

	require.NoError(t, rep.Err)
	assert.Equal(t, domain.Light, rep.Theme)
	assert.Equal(t, light, f.desktop.Path)
}

func TestRunner_ThemeOverrideSkipsQuery(t *testing.T) {
	dark := filepath.Join("walls", "wallpaper_32_9_Dark.png")
	f := newRunnerFixture(5120, 1440, domain.Light, dark)
	override := domain.Dark
	cfg := baseConfig()
	cfg.ThemeOverride = &override

	rep := f.runner(cfg).Run(context.Background())

	require.NoError(t, rep.Err)
	assert.Zero(t, f.theme.Calls)
	assert.Equal(t, dark, rep.Path)
}

func TestRunner_DryRunStopsBeforeApplying(t *testing.T) {
	light := filepath.Join("walls", "wallpaper_16_9.png")
	f := newRunnerFixture(2560, 1440, domain.Light, light)
	cfg := baseConfig()
	cfg.DryRun = true

	rep := f.runner(cfg).Run(context.Background())

	assert.Equal(t, StatePathResolved, rep.State)
	assert.NoError(t, rep.Err)
	assert.Equal(t, light, rep.Path)
	assert.Zero(t, f.desktop.WallpaperCalls)
	assert.False(t, f.desktop.Touched())
}

func TestRunner_InvalidStyleFails(t *testing.T) {
	light := filepath.Join("walls", "wallpaper_16_9.png")
	f := newRunnerFixture(1920, 1080, domain.Light, light)
	cfg := baseConfig()
	cfg.Style = "Zoom"

	rep := f.runner(cfg).Run(context.Background())

	assert.Equal(t, StateFailed, rep.State)
	assert.ErrorIs(t, rep.Err, domain.ErrInvalidStyle)
	assert.False(t, f.desktop.Touched())
}
