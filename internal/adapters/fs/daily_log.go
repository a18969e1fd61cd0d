package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bft-labs/wallpick/internal/domain"
)

// DailyLog implements ports.Journal with one append-only file per calendar day.
// Every write prunes log files dated before today.
type DailyLog struct {
	dir   string
	clock clockwork.Clock
}

// NewDailyLog creates a DailyLog rooted at dir.
func NewDailyLog(dir string) *DailyLog {
	return &DailyLog{dir: dir, clock: clockwork.NewRealClock()}
}

// WithClock replaces the time source.
func (l *DailyLog) WithClock(clock clockwork.Clock) *DailyLog {
	l.clock = clock
	return l
}

// Path returns today's log file path.
func (l *DailyLog) Path() string {
	return filepath.Join(l.dir, domain.LogFileName(l.clock.Now()))
}

// Write prunes expired log files and appends message to today's file.
// Retention failures do not prevent the append; they are reported together
// with any append failure.
func (l *DailyLog) Write(message string) error {
	now := l.clock.Now()

	if err := os.MkdirAll(l.dir, 0o755); err != nil {
		return &domain.LogWriteError{Op: "mkdir", Path: l.dir, Err: err}
	}

	_, pruneErr := l.Prune(now)
	appendErr := l.append(domain.LogEntry{Time: now, Message: message})
	return errors.Join(appendErr, pruneErr)
}

// Prune deletes every dated file in the directory whose date precedes today.
// Files whose names are not dates are left untouched. It returns the names removed.
func (l *DailyLog) Prune(today time.Time) ([]string, error) {
	ents, err := os.ReadDir(l.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, &domain.LogWriteError{Op: "list", Path: l.dir, Err: err}
	}

	var dated []domain.DatedFile
	for _, e := range ents {
		if !e.Type().IsRegular() {
			continue
		}
		if d, ok := domain.ParseLogDate(e.Name()); ok {
			dated = append(dated, domain.DatedFile{Name: e.Name(), Date: d})
		}
	}

	var (
		removed []string
		errs    []error
	)
	for _, f := range domain.ExpiredLogs(today, dated) {
		path := filepath.Join(l.dir, f.Name)
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, &domain.LogWriteError{Op: "remove", Path: path, Err: err})
			continue
		}
		removed = append(removed, f.Name)
	}
	return removed, errors.Join(errs...)
}

func (l *DailyLog) append(entry domain.LogEntry) (err error) {
	path := filepath.Join(l.dir, domain.LogFileName(entry.Time))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return &domain.LogWriteError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &domain.LogWriteError{Op: "close", Path: path, Err: cerr}
		}
	}()

	if _, err := f.WriteString(entry.Lines()); err != nil {
		return &domain.LogWriteError{Op: "append", Path: path, Err: err}
	}
	return nil
}
