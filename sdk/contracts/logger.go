package contracts

// LogLevel represents the severity level for logging.
type LogLevel int

const (
	// DebugLevel indicates messages useful for troubleshooting. The zero
	// value is reserved so option defaulting can tell "unset" apart.
	DebugLevel LogLevel = iota + 1
	// InfoLevel indicates informational messages that highlight progress.
	InfoLevel
	// WarnLevel indicates potentially harmful situations that should be monitored.
	WarnLevel
	// ErrorLevel indicates serious issues that need attention.
	ErrorLevel
)

// Field is a single structured logging attribute.
type Field struct {
	Key   string
	Value any
}

// String builds a string field.
func String(key, val string) Field { return Field{Key: key, Value: val} }

// Int builds an int field.
func Int(key string, val int) Field { return Field{Key: key, Value: val} }

// Uint8 builds a uint8 field.
func Uint8(key string, val uint8) Field { return Field{Key: key, Value: val} }

// Uint32 builds a uint32 field.
func Uint32(key string, val uint32) Field { return Field{Key: key, Value: val} }

// Bool builds a bool field.
func Bool(key string, val bool) Field { return Field{Key: key, Value: val} }

// Err builds an error field under the conventional "error" key.
func Err(val error) Field { return Field{Key: "error", Value: val} }

// Logger provides leveled, structured logging.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	SetLevel(level LogLevel)
}
