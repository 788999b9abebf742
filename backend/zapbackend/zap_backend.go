// Package zapbackend provides a logging backend built on Uber's zap logger, supporting console, JSON and logfmt output.
//
// Importing the package registers the backend with the facade:
//
//	import _ "github.com/couchbase/tools-logging/backend/zapbackend"
package zapbackend

import (
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/couchbase/tools-logging/backend/config"
	"github.com/couchbase/tools-logging/log"
)

func init() {
	log.Register(New())
}

// Option customizes a 'Factory' created with 'New'.
type Option func(o *options)

type options struct {
	cfg        config.Config
	core       zapcore.Core
	registerer prometheus.Registerer
}

// WithConfig overrides the configuration read from the environment.
func WithConfig(cfg config.Config) Option {
	return func(o *options) { o.cfg = cfg }
}

// WithCore uses the given core instead of building one from the configuration.
func WithCore(core zapcore.Core) Option {
	return func(o *options) { o.core = core }
}

// WithRegisterer counts every written entry, by level, in a 'cb_log_entries_total' counter registered with the given
// registerer.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(o *options) { o.registerer = registerer }
}

// Factory produces named loggers from a shared zap logger.
type Factory struct {
	logger *zap.Logger
}

// New returns a factory configured from the environment (see the 'config' package) and then the given options.
func New(opts ...Option) *Factory {
	o := options{cfg: config.FromEnv()}
	for _, opt := range opts {
		opt(&o)
	}

	core := o.core
	if core == nil {
		core = newCore(o.cfg)
	}

	zapOpts := make([]zap.Option, 0, 2)

	if o.cfg.Caller {
		zapOpts = append(zapOpts, zap.AddCaller(), zap.AddCallerSkip(2))
	}

	if o.registerer != nil {
		zapOpts = append(zapOpts, zap.Hooks(newEntryCounter(o.registerer).hook))
	}

	return &Factory{logger: zap.New(core, zapOpts...)}
}

func newCore(cfg config.Config) zapcore.Core {
	return zapcore.NewCore(encoderFor(cfg.Format), zapcore.Lock(zapcore.AddSync(cfg.Writer())), toZapLevel(cfg.Level))
}

// encoderFor returns the encoder for the given format, defaulting to the console encoder.
func encoderFor(format string) zapcore.Encoder {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}

	switch format {
	case config.FormatLogfmt:
		return zaplogfmt.NewEncoder(encCfg)
	case config.FormatJSON:
		return zapcore.NewJSONEncoder(encCfg)
	}

	return zapcore.NewConsoleEncoder(encCfg)
}

func (f *Factory) Logger(name string) log.Logger {
	logger := f.logger
	if name != "" {
		logger = logger.Named(name)
	}

	return log.NewLogger(&sink{logger: logger, name: name}, log.LevelInfo)
}

// Sync flushes any buffered entries.
func (f *Factory) Sync() error {
	return f.logger.Sync()
}

type sink struct {
	logger *zap.Logger
	name   string
}

func (s *sink) Name() string {
	return s.name
}

func (s *sink) Enabled(level log.Level) bool {
	return s.logger.Core().Enabled(toZapLevel(level))
}

func (s *sink) Log(level log.Level, err error, msg string) {
	ce := s.logger.Check(toZapLevel(level), msg)
	if ce == nil {
		return
	}

	if err == nil {
		ce.Write()
		return
	}

	ce.Write(zap.Error(err))
}

// toZapLevel maps facade levels onto zap, which has no trace level so trace is written as debug. Off maps above fatal so
// that a core configured at the off level writes nothing.
func toZapLevel(level log.Level) zapcore.Level {
	switch level {
	case log.LevelTrace, log.LevelDebug:
		return zapcore.DebugLevel
	case log.LevelInfo:
		return zapcore.InfoLevel
	case log.LevelWarning:
		return zapcore.WarnLevel
	case log.LevelError:
		return zapcore.ErrorLevel
	}

	return zapcore.FatalLevel + 1
}
