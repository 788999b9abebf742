package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/couchbase/tools-logging/log"
)

// MockSink is a 'log.Sink' backed by 'testify/mock'.
type MockSink struct {
	mock.Mock
}

var _ log.Sink = (*MockSink)(nil)

func (m *MockSink) Name() string {
	return m.Called().String(0)
}

func (m *MockSink) Enabled(level log.Level) bool {
	return m.Called(level).Bool(0)
}

func (m *MockSink) Log(level log.Level, err error, msg string) {
	m.Called(level, err, msg)
}

// MockFactory is a 'log.Factory' backed by 'testify/mock'.
type MockFactory struct {
	mock.Mock
}

var _ log.Factory = (*MockFactory)(nil)

func (m *MockFactory) Logger(name string) log.Logger {
	return m.Called(name).Get(0).(log.Logger)
}
