package log

// NopFactory is the factory bound when no single backend could be chosen, the loggers it produces discard everything.
var NopFactory Factory = nopFactory{}

// NopHandle is the handle for 'NopFactory'.
var NopHandle = NewHandle(NopFactory)

type nopFactory struct{}

func (nopFactory) Logger(name string) Logger {
	return nopLogger{name: name, level: LevelInfo}
}

// nopLogger is the no operations logger, a logger that doesn't log anything. It is disabled at every level and
// never calls any of the functions it's given.
type nopLogger struct {
	name  string
	level Level
}

func (n nopLogger) Name() string {
	return n.name
}

func (n nopLogger) Level() Level {
	return n.level
}

func (n nopLogger) Enabled() bool {
	return false
}

func (n nopLogger) AtLevel(level Level) Logger {
	return nopLogger{name: n.name, level: level}
}

func (n nopLogger) AtTrace() Logger {
	return n.AtLevel(LevelTrace)
}

func (n nopLogger) AtDebug() Logger {
	return n.AtLevel(LevelDebug)
}

func (n nopLogger) AtInfo() Logger {
	return n.AtLevel(LevelInfo)
}

func (n nopLogger) AtWarn() Logger {
	return n.AtLevel(LevelWarning)
}

func (n nopLogger) AtError() Logger {
	return n.AtLevel(LevelError)
}

func (n nopLogger) WithError(_ error) Logger {
	return n
}

func (n nopLogger) Log(_ any) {}

func (n nopLogger) LogFunc(_ func() any) {}

func (n nopLogger) Logf(_ string, _ ...any) {}

func (n nopLogger) LogLazyf(_ string, _ ...func() any) {}

func (n nopLogger) LogError(_ error) {}
