package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// DatedFile is a file whose name, minus extension, is a calendar date.
type DatedFile struct {
	Name string
	Date time.Time
}

// ParseLogDate parses a filename such as "2025-01-31.log" into its calendar date,
// returned as midnight UTC. Names that are not dates report false.
func ParseLogDate(name string) (time.Time, bool) {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	if len(base) != len(LogDateLayout) {
		return time.Time{}, false
	}
	d, err := time.Parse(LogDateLayout, base)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// ExpiredLogs returns the files dated strictly before the calendar day of today.
// Today's file and future-dated files are retained.
func ExpiredLogs(today time.Time, files []DatedFile) []DatedFile {
	cutoff := calendarDay(today)
	var out []DatedFile
	for _, f := range files {
		if calendarDay(f.Date).Before(cutoff) {
			out = append(out, f)
		}
	}
	return out
}

func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
