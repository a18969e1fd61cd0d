// Package memory provides in-memory implementations of the ports for tests
// and dry runs.
package memory

import (
	"context"
	"sync"

	"github.com/bft-labs/wallpick/internal/domain"
	"github.com/bft-labs/wallpick/pkg/log"
)

// Display implements ports.DisplayQuery with a fixed answer.
type Display struct {
	Resolution domain.Resolution
	Err        error
}

func (d *Display) PrimaryResolution(ctx context.Context) (domain.Resolution, error) {
	if d.Err != nil {
		return domain.Resolution{}, d.Err
	}
	return d.Resolution, nil
}

// Theme implements ports.ThemeProvider with a fixed answer.
type Theme struct {
	Mode  domain.ThemeMode
	Err   error
	Calls int
}

func (t *Theme) ThemeMode(ctx context.Context) (domain.ThemeMode, error) {
	t.Calls++
	if t.Err != nil {
		return domain.Light, t.Err
	}
	return t.Mode, nil
}

// Desktop implements ports.DesktopConfigurator and records every call.
type Desktop struct {
	mu sync.Mutex

	Style domain.StyleConfig
	Path  string

	StyleErr     error
	SetStyleErr  error
	WallpaperErr error

	StyleReads     int
	StyleWrites    int
	WallpaperCalls int
}

func (d *Desktop) StyleConfig(ctx context.Context) (domain.StyleConfig, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.StyleReads++
	if d.StyleErr != nil {
		return domain.StyleConfig{}, d.StyleErr
	}
	return d.Style, nil
}

func (d *Desktop) SetStyleConfig(ctx context.Context, cfg domain.StyleConfig) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.StyleWrites++
	if d.SetStyleErr != nil {
		return d.SetStyleErr
	}
	d.Style = cfg
	return nil
}

func (d *Desktop) SetWallpaper(ctx context.Context, path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.WallpaperCalls++
	if d.WallpaperErr != nil {
		return d.WallpaperErr
	}
	d.Path = path
	return nil
}

// Touched reports whether any style read or write was attempted.
func (d *Desktop) Touched() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.StyleReads > 0 || d.StyleWrites > 0
}

// Journal implements ports.Journal by keeping messages in memory.
type Journal struct {
	mu       sync.Mutex
	Messages []string
	Err      error
}

func (j *Journal) Write(message string) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Messages = append(j.Messages, message)
	return j.Err
}

// Lines returns a copy of the written messages.
func (j *Journal) Lines() []string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]string(nil), j.Messages...)
}

// Files implements ports.FileProber over a fixed set of paths.
type Files struct {
	mu     sync.Mutex
	Paths  map[string]bool
	Probes []string
}

// NewFiles returns a Files prober reporting the given paths as present.
func NewFiles(paths ...string) *Files {
	f := &Files{Paths: map[string]bool{}}
	for _, p := range paths {
		f.Paths[p] = true
	}
	return f
}

func (f *Files) Exists(path string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Probes = append(f.Probes, path)
	return f.Paths[path]
}

// Probed returns a copy of every path checked so far.
func (f *Files) Probed() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.Probes...)
}

// LogRecord is one message captured by Logger.
type LogRecord struct {
	Level   string
	Message string
	Fields  []log.Field
}

// Logger implements log.Logger by keeping every message in memory.
type Logger struct {
	mu      sync.Mutex
	records []LogRecord
}

func (l *Logger) Debug(msg string, fields ...log.Field) { l.add("debug", msg, fields) }
func (l *Logger) Info(msg string, fields ...log.Field)  { l.add("info", msg, fields) }
func (l *Logger) Warn(msg string, fields ...log.Field)  { l.add("warn", msg, fields) }
func (l *Logger) Error(msg string, fields ...log.Field) { l.add("error", msg, fields) }

func (l *Logger) add(level, msg string, fields []log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, LogRecord{Level: level, Message: msg, Fields: fields})
}

// Records returns a copy of the captured messages.
func (l *Logger) Records() []LogRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]LogRecord(nil), l.records...)
}

// Messages returns the captured messages at level, or at every level when
// level is empty.
func (l *Logger) Messages(level string) []string {
	var out []string
	for _, r := range l.Records() {
		if level == "" || r.Level == level {
			out = append(out, r.Message)
		}
	}
	return out
}
