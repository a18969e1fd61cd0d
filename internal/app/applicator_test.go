package app

import (
	"context"
	"errors"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/wallpick/internal/adapters/memory"
	"github.com/bft-labs/wallpick/internal/domain"
)

const testWallpaper = "/walls/wallpaper_16_9.png"

func newTestApplicator(desktop *memory.Desktop, files *memory.Files) (*Applicator, *memory.Journal, *memory.Logger) {
	journal := &memory.Journal{}
	rec := &memory.Logger{}
	return NewApplicator(desktop, files, rec, journal), journal, rec
}

func TestApplicator_InvalidStyleTouchesNothing(t *testing.T) {
	desktop := &memory.Desktop{}
	a, journal, _ := newTestApplicator(desktop, memory.NewFiles(testWallpaper))

	err := a.Apply(context.Background(), testWallpaper, "Zoom")

	require.ErrorIs(t, err, domain.ErrInvalidStyle)
	assert.False(t, desktop.Touched())
	assert.Zero(t, desktop.WallpaperCalls)
	if assert.Len(t, journal.Lines(), 1) {
		assert.Contains(t, journal.Lines()[0], `Invalid wallpaper style "Zoom"`)
	}
}

func TestApplicator_FileNotFound(t *testing.T) {
	desktop := &memory.Desktop{Style: domain.StyleFill.Config()}
	a, journal, _ := newTestApplicator(desktop, memory.NewFiles())

	err := a.Apply(context.Background(), testWallpaper, "Fill")

	require.ErrorIs(t, err, domain.ErrFileNotFound)
	assert.Zero(t, desktop.WallpaperCalls)
	assert.Contains(t, journal.Lines(), "Wallpaper file "+testWallpaper+" does not exist.")
}

func TestApplicator_Applied(t *testing.T) {
	desktop := &memory.Desktop{Style: domain.StyleFill.Config()}
	a, journal, _ := newTestApplicator(desktop, memory.NewFiles(testWallpaper))

	require.NoError(t, a.Apply(context.Background(), testWallpaper, "Fill"))

	assert.Equal(t, testWallpaper, desktop.Path)
	assert.Equal(t, 1, desktop.StyleReads)
	assert.Zero(t, desktop.StyleWrites, "matching style is not rewritten")
	assert.Equal(t, []string{"Wallpaper set to " + testWallpaper}, journal.Lines())
}

func TestApplicator_UpdatesDifferingStyle(t *testing.T) {
	desktop := &memory.Desktop{Style: domain.StyleFill.Config()}
	a, journal, _ := newTestApplicator(desktop, memory.NewFiles(testWallpaper))

	require.NoError(t, a.Apply(context.Background(), testWallpaper, "tile"))

	assert.Equal(t, domain.StyleConfig{Code: 0, Tile: true}, desktop.Style)
	assert.Equal(t, 1, desktop.StyleWrites)
	assert.Contains(t, journal.Lines(), "Wallpaper style updated to Tile")
}

func TestApplicator_StyleReadFailureStillApplies(t *testing.T) {
	desktop := &memory.Desktop{StyleErr: errors.New("registry locked")}
	a, _, rec := newTestApplicator(desktop, memory.NewFiles(testWallpaper))

	require.NoError(t, a.Apply(context.Background(), testWallpaper, "Span"))

	assert.Equal(t, domain.StyleSpan.Config(), desktop.Style)
	assert.Equal(t, testWallpaper, desktop.Path)
	assert.Contains(t, rec.Messages("warn"), "read wallpaper style failed")
}

func TestApplicator_StyleWriteFailureStillApplies(t *testing.T) {
	desktop := &memory.Desktop{SetStyleErr: errors.New("access denied")}
	a, _, _ := newTestApplicator(desktop, memory.NewFiles(testWallpaper))

	require.NoError(t, a.Apply(context.Background(), testWallpaper, "Fit"))
	assert.Equal(t, testWallpaper, desktop.Path)
}

func TestApplicator_ApplyFailedCarriesCode(t *testing.T) {
	desktop := &memory.Desktop{WallpaperErr: syscall.Errno(5)}
	a, journal, _ := newTestApplicator(desktop, memory.NewFiles(testWallpaper))

	err := a.Apply(context.Background(), testWallpaper, "Fill")

	require.ErrorIs(t, err, domain.ErrApplyFailed)
	var applyErr *domain.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, 5, applyErr.Code)
	assert.Equal(t, testWallpaper, applyErr.Path)
	assert.Contains(t, journal.Lines(), "Failed to set wallpaper. Error code: 5")
}

func TestApplicator_JournalFailureDoesNotBlock(t *testing.T) {
	desktop := &memory.Desktop{}
	journal := &memory.Journal{Err: &domain.LogWriteError{Op: "append", Path: "x.log", Err: errors.New("disk full")}}
	rec := &memory.Logger{}
	a := NewApplicator(desktop, memory.NewFiles(testWallpaper), rec, journal)

	require.NoError(t, a.Apply(context.Background(), testWallpaper, "Fill"))
	assert.Equal(t, testWallpaper, desktop.Path)
	assert.Contains(t, rec.Messages("warn"), "daily log write failed")
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, 2, errorCode(syscall.Errno(2)))
	assert.Equal(t, -1, errorCode(errors.New("opaque")))
}
