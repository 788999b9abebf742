// Package slogbackend provides a logging backend which writes through 'log/slog'.
//
// Importing the package registers the backend with the facade:
//
//	import _ "github.com/couchbase/tools-logging/backend/slogbackend"
package slogbackend

import (
	"context"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/couchbase/tools-logging/backend/config"
	"github.com/couchbase/tools-logging/log"
)

const (
	// LevelTrace is the slog level used for 'log.LevelTrace', slog doesn't define a level below debug.
	LevelTrace = slog.LevelDebug - 4

	// LoggerKey is the attribute key holding the logger name.
	LoggerKey = "logger"

	// ErrorKey is the attribute key holding an attached error.
	ErrorKey = "error"
)

func init() {
	log.Register(New(nil))
}

// Factory produces loggers which write to a shared 'slog.Handler'.
type Factory struct {
	logger *slog.Logger
}

// New returns a factory writing to the given handler, if nil a text or JSON handler is created from the environment
// (see the 'config' package).
func New(handler slog.Handler) *Factory {
	if handler != nil {
		return &Factory{logger: slog.New(handler)}
	}

	cfg := config.FromEnv()

	return &Factory{logger: slog.New(newHandler(cfg, cfg.Writer()))}
}

func newHandler(cfg config.Config, w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource:   cfg.Caller,
		Level:       toSlogLevel(cfg.Level),
		ReplaceAttr: replaceLevel,
	}

	if cfg.Format == config.FormatJSON {
		return slog.NewJSONHandler(w, opts)
	}

	return slog.NewTextHandler(w, opts)
}

func (f *Factory) Logger(name string) log.Logger {
	logger := f.logger
	if name != "" {
		logger = logger.With(LoggerKey, name)
	}

	return log.NewLogger(&sink{logger: logger, name: name}, log.LevelInfo)
}

type sink struct {
	logger *slog.Logger
	name   string
}

func (s *sink) Name() string {
	return s.name
}

func (s *sink) Enabled(level log.Level) bool {
	return s.logger.Enabled(context.Background(), toSlogLevel(level))
}

func (s *sink) Log(level log.Level, err error, msg string) {
	ctx := context.Background()

	lvl := toSlogLevel(level)
	if !s.logger.Enabled(ctx, lvl) {
		return
	}

	// Skip 'runtime.Callers', this function and the 'log.Logger' method, so the source is the facade's caller.
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), lvl, msg, pcs[0])
	if err != nil {
		record.AddAttrs(slog.Any(ErrorKey, err))
	}

	_ = s.logger.Handler().Handle(ctx, record)
}

func toSlogLevel(level log.Level) slog.Level {
	switch level {
	case log.LevelTrace:
		return LevelTrace
	case log.LevelDebug:
		return slog.LevelDebug
	case log.LevelInfo:
		return slog.LevelInfo
	case log.LevelWarning:
		return slog.LevelWarn
	case log.LevelError:
		return slog.LevelError
	}

	return slog.LevelError + 4
}

// replaceLevel names the trace level, which slog would otherwise print as 'DEBUG-4'.
func replaceLevel(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}

	if level, ok := a.Value.Any().(slog.Level); ok && level == LevelTrace {
		return slog.String(slog.LevelKey, "TRACE")
	}

	return a
}
