package fs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/wallpick/internal/domain"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("old\n"), 0o644))
}

func TestDailyLog_CreatesDirectoryAndAppends(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "wallpick")
	now := time.Date(2025, 12, 6, 9, 30, 0, 0, time.Local)
	l := NewDailyLog(dir).WithClock(clockwork.NewFakeClockAt(now))

	require.NoError(t, l.Write("first"))
	require.NoError(t, l.Write("second"))

	b, err := os.ReadFile(filepath.Join(dir, "2025-12-06.log"))
	require.NoError(t, err)
	assert.Equal(t,
		"Log entry for 2025-12-06 09:30:00\n2025-12-06 09:30:00 - first\n"+
			"Log entry for 2025-12-06 09:30:00\n2025-12-06 09:30:00 - second\n",
		string(b))
	assert.Equal(t, filepath.Join(dir, "2025-12-06.log"), l.Path())
}

func TestDailyLog_RoundTripKeepsPriorEntries(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 12, 6, 9, 30, 0, 0, time.Local)
	writeFile(t, dir, "2025-12-06.log")

	l := NewDailyLog(dir).WithClock(clockwork.NewFakeClockAt(now))
	require.NoError(t, l.Write("Wallpaper set to C:\\w\\wallpaper_16_9.png"))

	b, err := os.ReadFile(l.Path())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "old", lines[0])
	assert.Equal(t, "Log entry for 2025-12-06 09:30:00", lines[1])
	assert.Equal(t, "2025-12-06 09:30:00 - Wallpaper set to C:\\w\\wallpaper_16_9.png", lines[2])
}

func TestDailyLog_PrunesOlderDatedFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2025-12-05.log")
	writeFile(t, dir, "2023-01-01.log")
	writeFile(t, dir, "2025-12-07.log")
	writeFile(t, dir, "notes.txt")
	writeFile(t, dir, "wallpick-diag.log")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "2020-01-01"), 0o755))

	now := time.Date(2025, 12, 6, 0, 0, 1, 0, time.Local)
	l := NewDailyLog(dir).WithClock(clockwork.NewFakeClockAt(now))
	require.NoError(t, l.Write("run"))

	assert.NoFileExists(t, filepath.Join(dir, "2025-12-05.log"))
	assert.NoFileExists(t, filepath.Join(dir, "2023-01-01.log"))
	assert.FileExists(t, filepath.Join(dir, "2025-12-06.log"))
	assert.FileExists(t, filepath.Join(dir, "2025-12-07.log"))
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
	assert.FileExists(t, filepath.Join(dir, "wallpick-diag.log"))
	assert.DirExists(t, filepath.Join(dir, "2020-01-01"))
}

func TestDailyLog_NextDayRemovesPreviousLog(t *testing.T) {
	dir := t.TempDir()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 12, 6, 23, 59, 0, 0, time.Local))
	l := NewDailyLog(dir).WithClock(clock)

	require.NoError(t, l.Write("evening"))
	assert.FileExists(t, filepath.Join(dir, "2025-12-06.log"))

	clock.Advance(2 * time.Minute)
	require.NoError(t, l.Write("after midnight"))

	assert.NoFileExists(t, filepath.Join(dir, "2025-12-06.log"))
	b, err := os.ReadFile(filepath.Join(dir, "2025-12-07.log"))
	require.NoError(t, err)
	assert.Equal(t, "Log entry for 2025-12-07 00:01:00\n2025-12-07 00:01:00 - after midnight\n", string(b))
}

func TestDailyLog_PruneIdempotentWithinDay(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2025-12-01.log")
	writeFile(t, dir, "2025-12-06.log")
	l := NewDailyLog(dir)
	today := time.Date(2025, 12, 6, 12, 0, 0, 0, time.Local)

	removed, err := l.Prune(today)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-12-01.log"}, removed)

	removed, err = l.Prune(today)
	require.NoError(t, err)
	assert.Empty(t, removed)
	assert.FileExists(t, filepath.Join(dir, "2025-12-06.log"))
}

func TestDailyLog_PruneMissingDirectory(t *testing.T) {
	l := NewDailyLog(filepath.Join(t.TempDir(), "absent"))
	removed, err := l.Prune(time.Now())
	assert.NoError(t, err)
	assert.Empty(t, removed)
}

func TestDailyLog_UnwritableDirectory(t *testing.T) {
	parent := t.TempDir()
	blocker := filepath.Join(parent, "file")
	writeFile(t, parent, "file")

	l := NewDailyLog(filepath.Join(blocker, "logs"))
	err := l.Write("unreachable")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLogWrite)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wallpaper_16_9.png")
	assert.True(t, Exists(filepath.Join(dir, "wallpaper_16_9.png")))
	assert.False(t, Exists(filepath.Join(dir, "wallpaper_16_9_Dark.png")))
	assert.False(t, Exists(dir))
}
