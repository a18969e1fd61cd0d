package log

// Logger is the structured logger used across wallpick. Implementations
// must be safe to call with no fields.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field is one key/value attached to a log line.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field { return Field{Key: key, Value: value} }

func Int(key string, value int) Field { return Field{Key: key, Value: value} }

func Float64(key string, value float64) Field { return Field{Key: key, Value: value} }

func Bool(key string, value bool) Field { return Field{Key: key, Value: value} }

// Stringer renders value eagerly, so the field holds a plain string.
func Stringer(key string, value interface{ String() string }) Field {
	return Field{Key: key, Value: value.String()}
}

// Path is the field used for wallpaper and log file paths.
func Path(value string) Field { return String("path", value) }

// Err attaches err under the "error" key.
func Err(err error) Field { return Field{Key: "error", Value: err} }
