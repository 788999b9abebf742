// Package config provides the environment driven configuration shared by the logging backends.
package config

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/couchbase/tools-logging/envvar"
	"github.com/couchbase/tools-logging/log"
)

const (
	// LevelVar sets the minimum level written by a backend, defaults to 'info'.
	LevelVar = "CB_LOG_LEVEL"

	// FormatVar selects the output format of a backend, the formats supported depend on the backend.
	FormatVar = "CB_LOG_FORMAT"

	// OutputVar selects where a backend writes, one of 'stderr' (the default), 'stdout' or a file path.
	OutputVar = "CB_LOG_OUTPUT"

	// CallerVar enables annotating entries with the calling function, for backends which support it.
	CallerVar = "CB_LOG_CALLER"
)

// Formats understood by one or more backends.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatLogfmt  = "logfmt"
	FormatConsole = "console"
)

// Config is the backend agnostic configuration for a logging backend.
type Config struct {
	Level  log.Level
	Format string
	Output string
	Caller bool
}

// FromEnv returns the configuration from the environment, unset or invalid values are replaced by their defaults.
func FromEnv() Config {
	cfg := Config{Level: log.LevelInfo, Format: FormatText, Output: "stderr"}

	if val, ok := envvar.GetTrimmed(LevelVar); ok {
		if level, err := log.ParseLevel(val); err == nil {
			cfg.Level = level
		}
	}

	if val, ok := envvar.GetTrimmed(FormatVar); ok {
		cfg.Format = strings.ToLower(val)
	}

	if val, ok := envvar.GetTrimmed(OutputVar); ok {
		cfg.Output = val
	}

	if val, ok := envvar.GetBool(CallerVar); ok {
		cfg.Caller = val
	}

	return cfg
}

// Writer returns the writer selected by 'Output'. Files are opened for appending on the first write, if that fails
// writes go to stderr instead.
func (c Config) Writer() io.Writer {
	switch strings.ToLower(c.Output) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	}

	return &fileWriter{path: c.Output}
}

// fileWriter lazily opens a log file so that merely registering a backend never touches the filesystem.
type fileWriter struct {
	path string
	once sync.Once
	w    io.Writer
}

func (f *fileWriter) Write(p []byte) (int, error) {
	f.once.Do(f.open)
	return f.w.Write(p)
}

func (f *fileWriter) open() {
	file, err := os.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		f.w = os.Stderr
		return
	}

	f.w = file
}
