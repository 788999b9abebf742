// Package stdoutbackend provides a dependency free logging backend which writes one line per entry, either as plain
// text or as JSON.
//
// Importing the package registers the backend with the facade:
//
//	import _ "github.com/couchbase/tools-logging/backend/stdoutbackend"
package stdoutbackend

import (
	"io"
	"strings"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/couchbase/tools-logging/backend/config"
	"github.com/couchbase/tools-logging/log"
	"github.com/couchbase/tools-logging/types/timeprovider"
)

func init() {
	log.Register(New())
}

// Option customizes a 'Factory' created with 'New'.
type Option func(f *Factory)

// WithWriter sets the writer entries are written to.
func WithWriter(w io.Writer) Option {
	return func(f *Factory) { f.out = w }
}

// WithLevel sets the minimum level which is written.
func WithLevel(level log.Level) Option {
	return func(f *Factory) { f.threshold = level }
}

// WithJSON selects JSON output instead of plain text.
func WithJSON(enabled bool) Option {
	return func(f *Factory) { f.json = enabled }
}

// WithTimeProvider sets the source of entry timestamps.
func WithTimeProvider(tp timeprovider.TimeProvider) Option {
	return func(f *Factory) { f.clock = tp }
}

// Factory produces loggers which share a single writer, entries are written atomically with respect to each other.
type Factory struct {
	lock      sync.Mutex
	out       io.Writer
	threshold log.Level
	json      bool
	clock     timeprovider.TimeProvider
}

// New returns a factory configured from the environment (see the 'config' package) and then the given options.
func New(opts ...Option) *Factory {
	cfg := config.FromEnv()

	factory := &Factory{
		out:       cfg.Writer(),
		threshold: cfg.Level,
		json:      cfg.Format == config.FormatJSON,
		clock:     timeprovider.CurrentTimeProvider{},
	}

	for _, opt := range opts {
		opt(factory)
	}

	return factory
}

func (f *Factory) Logger(name string) log.Logger {
	return log.NewLogger(&sink{factory: f, name: name}, log.LevelInfo)
}

// entry is the JSON representation of a log entry.
type entry struct {
	Time    string `json:"time"`
	Level   string `json:"level"`
	Logger  string `json:"logger,omitempty"`
	Message string `json:"msg,omitempty"`
	Error   string `json:"error,omitempty"`
}

type sink struct {
	factory *Factory
	name    string
}

func (s *sink) Name() string {
	return s.name
}

func (s *sink) Enabled(level log.Level) bool {
	return level >= s.factory.threshold && level < log.LevelOff
}

// Log writes the entry prefixed dependant on the level.
func (s *sink) Log(level log.Level, err error, msg string) {
	e := entry{
		Time:    s.factory.clock.Now().Format(time.RFC3339Nano),
		Level:   level.String(),
		Logger:  s.name,
		Message: msg,
	}

	if err != nil {
		e.Error = err.Error()
	}

	line := s.text(level, e)
	if s.factory.json {
		line = s.marshal(e)
	}

	s.factory.lock.Lock()
	defer s.factory.lock.Unlock()

	_, _ = io.WriteString(s.factory.out, line)
}

func (s *sink) text(level log.Level, e entry) string {
	var builder strings.Builder

	builder.WriteString(e.Time)
	builder.WriteString(" ")
	builder.WriteString(prefix(level))

	if e.Logger != "" {
		builder.WriteString(" [" + e.Logger + "]")
	}

	builder.WriteString(": ")
	builder.WriteString(e.Message)

	if e.Error != "" {
		if e.Message != "" {
			builder.WriteString(": ")
		}

		builder.WriteString(e.Error)
	}

	builder.WriteString("\n")

	return builder.String()
}

func (s *sink) marshal(e entry) string {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(e)
	if err != nil {
		return s.text(log.LevelError, entry{Time: e.Time, Logger: e.Logger, Error: err.Error()})
	}

	return string(data) + "\n"
}

func prefix(level log.Level) string {
	switch level {
	case log.LevelTrace:
		return "TRAC"
	case log.LevelDebug:
		return "DEBU"
	case log.LevelInfo:
		return "INFO"
	case log.LevelWarning:
		return "WARN"
	case log.LevelError:
		return "ERRO"
	}

	return "????"
}
