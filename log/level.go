package log

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLevel is returned by 'ParseLevel' when given a string which doesn't name a level.
var ErrUnknownLevel = errors.New("unknown log level")

// Level indicates the severity of a log statement.
type Level uint8

const (
	// LevelTrace is the most verbose log level including finer grained informational events than debug level.
	LevelTrace Level = iota

	// LevelDebug includes fine-grained informational events that are the most useful to debug an application.
	LevelDebug

	// LevelInfo includes informational messages that highlight the progress of an application at a course-grained
	// level.
	LevelInfo

	// LevelWarning includes expected but potentially harmful/interesting events.
	LevelWarning

	// LevelError includes error events which may still allow the application to continue running.
	LevelError

	// LevelOff disables logging entirely, a logger at this level never writes anything.
	LevelOff
)

// String returns the lowercase name of the level, as accepted by 'ParseLevel'.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warn"
	case LevelError:
		return "error"
	case LevelOff:
		return "off"
	}

	return fmt.Sprintf("level(%d)", uint8(l))
}

// ParseLevel returns the level named by the given string, the comparison is case-insensitive and ignores surrounding
// whitespace.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	case "off", "none":
		return LevelOff, nil
	}

	return LevelOff, fmt.Errorf("%w '%s'", ErrUnknownLevel, s)
}
