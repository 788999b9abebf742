// Package logrusbackend provides a logging backend built on logrus.
//
// Importing the package registers the backend with the facade:
//
//	import _ "github.com/couchbase/tools-logging/backend/logrusbackend"
package logrusbackend

import (
	"reflect"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/couchbase/tools-logging/backend/config"
	"github.com/couchbase/tools-logging/log"
)

// LoggerField is the field holding the logger name.
const LoggerField = "logger"

func init() {
	log.Register(New(nil))
}

// Factory produces loggers which write through a shared logrus logger.
type Factory struct {
	logger *logrus.Logger
}

// New returns a factory writing through the given logger, if nil a logger is created from the environment (see the
// 'config' package).
//
// NOTE: A hook is added to the logger so that, when caller reporting is enabled, the caller is the code using the
// facade rather than this package.
func New(logger *logrus.Logger) *Factory {
	if logger == nil {
		logger = newLogger(config.FromEnv())
	}

	logger.AddHook(callerHook{})

	return &Factory{logger: logger}
}

func newLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cfg.Writer())
	logger.SetLevel(toLogrusLevel(cfg.Level))
	logger.SetReportCaller(cfg.Caller)

	if cfg.Format == config.FormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

func (f *Factory) Logger(name string) log.Logger {
	entry := logrus.NewEntry(f.logger)
	if name != "" {
		entry = entry.WithField(LoggerField, name)
	}

	return log.NewLogger(&sink{entry: entry, name: name}, log.LevelInfo)
}

type sink struct {
	entry *logrus.Entry
	name  string
}

func (s *sink) Name() string {
	return s.name
}

func (s *sink) Enabled(level log.Level) bool {
	return s.entry.Logger.IsLevelEnabled(toLogrusLevel(level))
}

func (s *sink) Log(level log.Level, err error, msg string) {
	entry := s.entry
	if err != nil {
		entry = entry.WithError(err)
	}

	entry.Log(toLogrusLevel(level), msg)
}

// toLogrusLevel maps facade levels onto logrus, off maps to the panic level which the facade never writes at.
func toLogrusLevel(level log.Level) logrus.Level {
	switch level {
	case log.LevelTrace:
		return logrus.TraceLevel
	case log.LevelDebug:
		return logrus.DebugLevel
	case log.LevelInfo:
		return logrus.InfoLevel
	case log.LevelWarning:
		return logrus.WarnLevel
	case log.LevelError:
		return logrus.ErrorLevel
	}

	return logrus.PanicLevel
}

var (
	sinkLogFunc  = reflect.TypeOf(sink{}).PkgPath() + ".(*sink).Log"
	facadePrefix = reflect.TypeOf(log.WrappedLogger{}).PkgPath() + "."
)

// callerHook replaces the caller found by logrus, which is the first frame outside logrus and therefore always 'Log' in
// this package.
type callerHook struct{}

func (callerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire updates the frame in place since other hooks may already hold a copy of the entry.
func (callerHook) Fire(entry *logrus.Entry) error {
	if entry.Caller == nil {
		return nil
	}

	if frame, ok := facadeCaller(); ok {
		*entry.Caller = frame
	}

	return nil
}

// facadeCaller returns the first frame after 'sink.Log' which isn't part of the facade.
func facadeCaller() (runtime.Frame, bool) {
	pcs := make([]uintptr, 32)
	frames := runtime.CallersFrames(pcs[:runtime.Callers(2, pcs)])

	var inSink bool

	for {
		frame, more := frames.Next()

		switch {
		case frame.Function == sinkLogFunc:
			inSink = true
		case inSink && !strings.HasPrefix(frame.Function, facadePrefix):
			return frame, true
		}

		if !more {
			return runtime.Frame{}, false
		}
	}
}
