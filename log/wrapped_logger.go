package log

import "fmt"

// WrappedLogger implements 'Logger' on top of a backend 'Sink', handling level changes, lazy evaluation and message
// formatting so that backends only need to write entries.
type WrappedLogger struct {
	sink  Sink
	level Level
	err   error
}

// NewLogger returns a Logger writing to the given sink at the given level. If sink is nil then a no-op logger is
// returned.
func NewLogger(sink Sink, level Level) Logger {
	if sink == nil {
		return nopLogger{level: level}
	}

	return &WrappedLogger{sink: sink, level: level}
}

func (w *WrappedLogger) Name() string {
	return w.sink.Name()
}

func (w *WrappedLogger) Level() Level {
	return w.level
}

func (w *WrappedLogger) Enabled() bool {
	return w.level < LevelOff && w.sink.Enabled(w.level)
}

// AtLevel returns a logger writing at the given level, the receiver is returned when the level is unchanged.
func (w *WrappedLogger) AtLevel(level Level) Logger {
	if level == w.level {
		return w
	}

	return &WrappedLogger{sink: w.sink, level: level, err: w.err}
}

// AtTrace returns a logger writing at the trace level.
func (w *WrappedLogger) AtTrace() Logger {
	return w.AtLevel(LevelTrace)
}

// AtDebug returns a logger writing at the debug level.
func (w *WrappedLogger) AtDebug() Logger {
	return w.AtLevel(LevelDebug)
}

// AtInfo returns a logger writing at the info level.
func (w *WrappedLogger) AtInfo() Logger {
	return w.AtLevel(LevelInfo)
}

// AtWarn returns a logger writing at the warn level.
func (w *WrappedLogger) AtWarn() Logger {
	return w.AtLevel(LevelWarning)
}

// AtError returns a logger writing at the error level.
func (w *WrappedLogger) AtError() Logger {
	return w.AtLevel(LevelError)
}

func (w *WrappedLogger) WithError(err error) Logger {
	return &WrappedLogger{sink: w.sink, level: w.level, err: err}
}

func (w *WrappedLogger) Log(msg any) {
	if !w.Enabled() {
		return
	}

	w.sink.Log(w.level, w.err, fmt.Sprint(msg))
}

func (w *WrappedLogger) LogFunc(msg func() any) {
	if !w.Enabled() {
		return
	}

	w.sink.Log(w.level, w.err, fmt.Sprint(call(msg)))
}

func (w *WrappedLogger) Logf(format string, args ...any) {
	if !w.Enabled() {
		return
	}

	w.sink.Log(w.level, w.err, fmt.Sprintf(format, args...))
}

func (w *WrappedLogger) LogLazyf(format string, args ...func() any) {
	if !w.Enabled() {
		return
	}

	evaluated := make([]any, 0, len(args))
	for _, arg := range args {
		evaluated = append(evaluated, call(arg))
	}

	w.sink.Log(w.level, w.err, fmt.Sprintf(format, evaluated...))
}

func (w *WrappedLogger) LogError(err error) {
	if !w.Enabled() {
		return
	}

	w.sink.Log(w.level, err, "")
}

// call returns the result of the given function, a nil function produces a nil value.
func call(fn func() any) any {
	if fn == nil {
		return nil
	}

	return fn()
}
