package log

import "errors"

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

func NewLevel(l string) (Level, error) {
	switch l {
	case LevelDebug.String():
		return LevelDebug, nil
	case LevelInfo.String():
		return LevelInfo, nil
	case LevelWarn.String():
		return LevelWarn, nil
	case LevelError.String():
		return LevelError, nil
	case LevelFatal.String():
		return LevelFatal, nil
	default:
		return LevelInfo, errors.New("invalid log level")
	}
}

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		panic("invalid level")
	}
}

// Logger is a leveled logger carrying structured key-value fields.
// Fields are passed as alternating key/value arguments; Sub returns a
// child logger with the fields pre-bound.
type Logger interface {
	Debug(string, ...interface{})
	Info(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Fatal(string, ...interface{})
	Sub(...interface{}) Logger
}

// WithModule returns a logger tagged with the given module name.
func WithModule(name string) Logger {
	return rootLogger.Sub("module", name)
}
