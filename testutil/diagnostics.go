package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// Record is a simplified 'slog.Record' captured by a 'DiagnosticsRecorder'.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// DiagnosticsRecorder is a 'slog.Handler' which keeps every record it handles, allowing tests to assert on the
// diagnostics emitted by a component.
type DiagnosticsRecorder struct {
	lock    sync.Mutex
	records []Record
}

var _ slog.Handler = (*DiagnosticsRecorder)(nil)

// NewDiagnostics returns a recorder along with a logger writing to it.
func NewDiagnostics() (*DiagnosticsRecorder, *slog.Logger) {
	recorder := &DiagnosticsRecorder{}
	return recorder, slog.New(recorder)
}

func (d *DiagnosticsRecorder) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

func (d *DiagnosticsRecorder) Handle(_ context.Context, r slog.Record) error {
	record := Record{Level: r.Level, Message: r.Message, Attrs: make(map[string]any)}

	r.Attrs(func(a slog.Attr) bool {
		record.Attrs[a.Key] = a.Value.Any()
		return true
	})

	d.lock.Lock()
	defer d.lock.Unlock()

	d.records = append(d.records, record)

	return nil
}

// WithAttrs is unsupported, the diagnostics under test don't use derived loggers.
func (d *DiagnosticsRecorder) WithAttrs(_ []slog.Attr) slog.Handler {
	return d
}

func (d *DiagnosticsRecorder) WithGroup(_ string) slog.Handler {
	return d
}

// Records returns a copy of the records handled so far.
func (d *DiagnosticsRecorder) Records() []Record {
	d.lock.Lock()
	defer d.lock.Unlock()

	return append([]Record(nil), d.records...)
}
