// Package gologbackend provides a logging backend built on 'github.com/ipfs/go-log/v2', where each named logger is a
// go-log subsystem whose level can be changed independently at runtime.
//
// Importing the package registers the backend with the facade:
//
//	import _ "github.com/couchbase/tools-logging/backend/gologbackend"
package gologbackend

import (
	"sync"

	golog "github.com/ipfs/go-log/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/couchbase/tools-logging/backend/config"
	"github.com/couchbase/tools-logging/log"
)

// DefaultSystem is the subsystem used for the root logger.
const DefaultSystem = "cb"

func init() {
	log.Register(New())
}

// Option customizes a 'Factory' created with 'New'.
type Option func(f *Factory)

// WithRootSystem sets the subsystem used for the root logger.
func WithRootSystem(system string) Option {
	return func(f *Factory) { f.root = system }
}

// WithLevel sets the level applied to each subsystem the first time a logger is created for it.
func WithLevel(level log.Level) Option {
	return func(f *Factory) { f.threshold = level }
}

// WithCaller sets whether entries are annotated with the location of the code using the facade.
func WithCaller(caller bool) Option {
	return func(f *Factory) { f.caller = caller }
}

// Factory produces loggers backed by go-log subsystems.
type Factory struct {
	root      string
	threshold log.Level
	caller    bool
	zapOpts   []zap.Option

	lock       sync.Mutex
	configured map[string]struct{}
}

// New returns a factory whose subsystems default to the level from the environment (see the 'config' package).
func New(opts ...Option) *Factory {
	cfg := config.FromEnv()

	factory := &Factory{
		root:       DefaultSystem,
		threshold:  cfg.Level,
		caller:     cfg.Caller,
		configured: make(map[string]struct{}),
	}

	for _, opt := range opts {
		opt(factory)
	}

	return factory
}

func (f *Factory) Logger(name string) log.Logger {
	system := name
	if system == "" {
		system = f.root
	}

	logger := golog.Logger(system)

	f.configure(system)

	opts := append([]zap.Option{zap.WithCaller(f.caller), zap.AddCallerSkip(2)}, f.zapOpts...)

	return log.NewLogger(&sink{logger: logger.Desugar().WithOptions(opts...), name: name}, log.LevelInfo)
}

// configure applies the threshold to a subsystem once, later changes made through go-log (for example using
// 'golog.SetLogLevel') are left untouched.
func (f *Factory) configure(system string) {
	f.lock.Lock()
	defer f.lock.Unlock()

	if _, ok := f.configured[system]; ok {
		return
	}

	f.configured[system] = struct{}{}

	// The error is only returned for unknown subsystems, the subsystem was created above.
	_ = golog.SetLogLevel(system, toGologLevel(f.threshold))
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

// toGologLevel returns the go-log name of the given level, go-log has neither trace nor off levels so they map to
// debug and fatal respectively.
func toGologLevel(level log.Level) string {
	switch level {
	case log.LevelTrace, log.LevelDebug:
		return "debug"
	case log.LevelInfo:
		return "info"
	case log.LevelWarning:
		return "warn"
	case log.LevelError:
		return "error"
	}

	return "fatal"
}

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

	return zapcore.FatalLevel
}
