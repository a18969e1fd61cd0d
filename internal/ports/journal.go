package ports

// Journal appends human-readable outcome messages to persistent storage.
// Failures are reported but callers treat them as best-effort.
type Journal interface {
	Write(message string) error
}

// FileProber checks for the existence of a file.
type FileProber interface {
	Exists(path string) bool
}

// FileProberFunc adapts a function to FileProber.
type FileProberFunc func(path string) bool

// Exists calls f(path).
func (f FileProberFunc) Exists(path string) bool { return f(path) }
