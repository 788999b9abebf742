package zapbackend

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap/zapcore"
)

// entryCounter counts written entries by level.
type entryCounter struct {
	entries *prometheus.CounterVec
}

func newEntryCounter(registerer prometheus.Registerer) *entryCounter {
	entries := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cb_log_entries_total",
		Help: "The total number of log entries written, by level",
	}, []string{"level"})

	// Allow several factories to share a registerer by reusing the collector which is already registered.
	var already prometheus.AlreadyRegisteredError
	if err := registerer.Register(entries); errors.As(err, &already) {
		entries = already.ExistingCollector.(*prometheus.CounterVec)
	}

	return &entryCounter{entries: entries}
}

func (c *entryCounter) hook(entry zapcore.Entry) error {
	c.entries.WithLabelValues(entry.Level.String()).Inc()
	return nil
}
