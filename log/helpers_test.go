package log_test

import (
	"github.com/couchbase/tools-logging/log"
)

// stubFactory is a factory with a fixed identifier, loggers it produces are no-ops.
type stubFactory struct {
	id string
}

func (s *stubFactory) Identifier() string {
	return s.id
}

func (s *stubFactory) Logger(name string) log.Logger {
	return log.NopFactory.Logger(name)
}

func handles(ids ...string) []log.Handle {
	handles := make([]log.Handle, 0, len(ids))
	for _, id := range ids {
		handles = append(handles, log.NewHandle(&stubFactory{id: id}))
	}

	return handles
}
