package log

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var rootLogger = &logrusLogger{
	backend: logrus.New(),
}

// Init configures the root logger's level, output, and formatter.
// Colors are enabled only when w is a terminal.
func Init(level string, w io.Writer) error {
	lvl, err := NewLevel(level)
	if err != nil {
		return err
	}
	backend := rootLogger.backend.(*logrus.Logger)
	backend.SetOutput(w)
	backend.SetLevel(logrusLevel(lvl))

	formatter := &logrus.TextFormatter{
		DisableColors: true,
	}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		formatter.DisableColors = false
	}
	backend.SetFormatter(formatter)
	return nil
}

func logrusLevel(level Level) logrus.Level {
	switch level {
	case LevelDebug:
		return logrus.DebugLevel
	case LevelInfo:
		return logrus.InfoLevel
	case LevelWarn:
		return logrus.WarnLevel
	case LevelError:
		return logrus.ErrorLevel
	default:
		return logrus.PanicLevel
	}
}

type logrusLogger struct {
	backend logrus.FieldLogger
}

var _ Logger = (*logrusLogger)(nil)

func (l *logrusLogger) Debug(msg string, fields ...interface{}) {
	l.withFields(fields).Debug(msg)
}

func (l *logrusLogger) Info(msg string, fields ...interface{}) {
	l.withFields(fields).Info(msg)
}

func (l *logrusLogger) Warn(msg string, fields ...interface{}) {
	l.withFields(fields).Warn(msg)
}

func (l *logrusLogger) Error(msg string, fields ...interface{}) {
	l.withFields(fields).Error(msg)
}

func (l *logrusLogger) Fatal(msg string, fields ...interface{}) {
	l.withFields(fields).Fatal(msg)
}

func (l *logrusLogger) Sub(fields ...interface{}) Logger {
	return &logrusLogger{
		backend: l.withFields(fields),
	}
}

func (l *logrusLogger) withFields(fields []interface{}) logrus.FieldLogger {
	if len(fields) == 0 {
		return l.backend
	}
	if len(fields)%2 != 0 {
		panic("must specify fields as key/value tuples")
	}

	lFields := make(logrus.Fields)
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			panic("field keys must be strings")
		}
		lFields[key] = fields[i+1]
	}
	return l.backend.WithFields(lFields)
}
