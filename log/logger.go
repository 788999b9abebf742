// Package log provides a logging facade which binds a single backend at runtime.
//
// Backends register a 'Factory' from an 'init' function, and applications select them with a blank import, in the same
// way 'database/sql' drivers are selected:
//
//	import _ "github.com/couchbase/tools-logging/backend/zapbackend"
//
//	logger := log.For(server)
//	logger.AtWarn().Logf("retrying request to '%s'", host)
//
// The first call to any of the entry points ('Root', 'Named', 'For' or 'Bound') resolves which of the registered
// factories is used for the remainder of the process, see 'Resolve' for the rules. When there is no single confident
// choice, logging falls back to a no-op factory rather than failing.
package log

// Logger is the call-site logging interface. Every logger writes at a single level which may be changed using
// 'AtLevel' or one of the 'At*' helpers; loggers are immutable so these return new loggers.
type Logger interface {
	// Name returns the name the logger was created with, the root logger has an empty name.
	Name() string

	// Level returns the level at which this logger writes.
	Level() Level

	// Enabled returns a boolean indicating whether a call to one of the 'Log*' functions will produce output.
	Enabled() bool

	AtLevel(level Level) Logger
	AtTrace() Logger
	AtDebug() Logger
	AtInfo() Logger
	AtWarn() Logger
	AtError() Logger

	// WithError returns a logger which attaches the given error to every entry it writes.
	WithError(err error) Logger

	// Log writes the given message, formatted using the default formats for its type.
	Log(msg any)

	// LogFunc writes the message returned by the given function, which is only called if the logger is enabled.
	LogFunc(msg func() any)

	// Logf writes a message formatted according to the given format specifier.
	Logf(format string, args ...any)

	// LogLazyf is the same as 'Logf' except that each argument is produced by calling the provided functions; the
	// functions are only called if the logger is enabled.
	LogLazyf(format string, args ...func() any)

	// LogError writes the given error without an accompanying message.
	LogError(err error)
}

// Sink is implemented by logging backends, it receives fully formatted messages which have already passed the call-site
// level check.
//
// NOTE: 'Log' is always called directly by the 'Logger' method used at the call site, so backends reporting the caller
// skip exactly two frames.
type Sink interface {
	Name() string
	Enabled(level Level) bool
	Log(level Level, err error, msg string)
}
