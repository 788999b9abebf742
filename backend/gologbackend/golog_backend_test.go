package gologbackend

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	golog "github.com/ipfs/go-log/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/couchbase/tools-logging/log"
)

func TestLoggerName(t *testing.T) {
	factory := New(WithRootSystem("cb-test-root"))

	require.Equal(t, "", factory.Logger("").Name())
	require.Equal(t, "cb-test-name", factory.Logger("cb-test-name").Name())
	require.Contains(t, golog.GetSubsystems(), "cb-test-root")
	require.Contains(t, golog.GetSubsystems(), "cb-test-name")
}

func TestEnabled(t *testing.T) {
	logger := New(WithLevel(log.LevelWarning)).Logger("cb-test-enabled")

	require.False(t, logger.AtTrace().Enabled())
	require.False(t, logger.AtInfo().Enabled())
	require.True(t, logger.AtWarn().Enabled())
	require.True(t, logger.AtError().Enabled())
	require.False(t, logger.AtLevel(log.LevelOff).Enabled())
}

func TestLevelOnlyAppliedOnce(t *testing.T) {
	factory := New(WithLevel(log.LevelError))

	logger := factory.Logger("cb-test-once")
	require.False(t, logger.AtInfo().Enabled())

	require.NoError(t, golog.SetLogLevel("cb-test-once", "debug"))

	require.True(t, factory.Logger("cb-test-once").AtDebug().Enabled())
	require.True(t, logger.AtDebug().Enabled())
}

func TestLogDoesNotPanic(t *testing.T) {
	logger := New(WithLevel(log.LevelDebug)).Logger("cb-test-log")

	require.NotPanics(t, func() {
		logger.AtDebug().Logf("polling %s", "node1")
		logger.AtError().WithError(errors.New("connection refused")).Log("failed to connect")
		logger.AtTrace().LogError(errors.New("EOF"))
	})
}

func TestCaller(t *testing.T) {
	type test struct {
		name   string
		caller bool
	}

	tests := []test{
		{name: "Enabled", caller: true},
		{name: "Disabled"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)

			factory := New(WithLevel(log.LevelDebug), WithCaller(test.caller))
			factory.zapOpts = []zap.Option{zap.WrapCore(func(zapcore.Core) zapcore.Core { return core })}

			logger := factory.Logger("cb-test-caller")
			logger.Log("server started")
			logger.AtWarn().Logf("disk %d%% full", 90)

			entries := logs.AllUntimed()
			require.Len(t, entries, 2)

			for _, entry := range entries {
				require.Equal(t, test.caller, entry.Caller.Defined)

				if test.caller {
					require.Equal(t, "golog_backend_test.go", filepath.Base(entry.Caller.File))
					require.True(t, strings.HasSuffix(entry.Caller.Function, ".TestCaller.func1"))
				}
			}
		})
	}
}

func TestRegistered(t *testing.T) {
	require.Equal(t, "github.com/couchbase/tools-logging/backend/gologbackend.Factory", log.Bound().ID)
}
