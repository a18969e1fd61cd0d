package domain

import (
	"fmt"
	"time"
)

// LogDateLayout names daily log files.
const LogDateLayout = "2006-01-02"

// LogTimestampLayout prefixes each daily log record.
const LogTimestampLayout = "2006-01-02 15:04:05"

// LogExt is the extension of daily log files.
const LogExt = ".log"

// LogEntry is one record of the daily log.
type LogEntry struct {
	Time    time.Time
	Message string
}

// Lines renders the record as a separator line followed by the message line.
func (e LogEntry) Lines() string {
	ts := e.Time.Format(LogTimestampLayout)
	return fmt.Sprintf("Log entry for %s\n%s - %s\n", ts, ts, e.Message)
}

// LogFileName returns the daily log filename for the day containing t.
func LogFileName(t time.Time) string {
	return t.Format(LogDateLayout) + LogExt
}
