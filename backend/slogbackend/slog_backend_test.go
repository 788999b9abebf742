package slogbackend

import (
	"bytes"
	"errors"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-logging/backend/config"
	"github.com/couchbase/tools-logging/log"
	"github.com/couchbase/tools-logging/testutil"
)

func removeTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}

	return replaceLevel(groups, a)
}

func newTestFactory(buf *bytes.Buffer, level slog.Level) *Factory {
	return New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level, ReplaceAttr: removeTime}))
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newTestFactory(&buf, LevelTrace).Logger("rest")
	logger.Log("let's print out the node")
	logger.AtTrace().Logf("polling %s", "node1")
	logger.AtError().WithError(errors.New("connection refused")).Log("failed to connect")

	require.Equal(t, `level=INFO msg="let's print out the node" logger=rest
level=TRACE msg="polling node1" logger=rest
level=ERROR msg="failed to connect" logger=rest error="connection refused"
`, buf.String())
}

func TestRootLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := newTestFactory(&buf, slog.LevelInfo).Logger("")
	logger.Log("hello")

	require.Equal(t, "level=INFO msg=hello\n", buf.String())
	require.Equal(t, "", logger.Name())
}

func TestEnabled(t *testing.T) {
	logger := newTestFactory(&bytes.Buffer{}, slog.LevelWarn).Logger("rest")

	require.False(t, logger.AtTrace().Enabled())
	require.False(t, logger.AtDebug().Enabled())
	require.False(t, logger.AtInfo().Enabled())
	require.True(t, logger.AtWarn().Enabled())
	require.True(t, logger.AtError().Enabled())
	require.False(t, logger.AtLevel(log.LevelOff).Enabled())
}

func TestNewFromEnvJSON(t *testing.T) {
	var buf bytes.Buffer

	handler := newHandler(config.Config{Level: log.LevelInfo, Format: config.FormatJSON}, &buf)
	New(handler).Logger("rest").AtWarn().Log("disk almost full")

	entries := testutil.DecodeJSONLines(t, buf.Bytes())
	require.Len(t, entries, 1)
	require.Equal(t, "WARN", entries[0]["level"])
	require.Equal(t, "disk almost full", entries[0]["msg"])
	require.Equal(t, "rest", entries[0]["logger"])
}

func TestCaller(t *testing.T) {
	var buf bytes.Buffer

	handler := newHandler(config.Config{Level: log.LevelTrace, Format: config.FormatJSON, Caller: true}, &buf)
	logger := New(handler).Logger("rest")

	logger.Log("server started")
	logger.AtError().WithError(errors.New("connection refused")).Logf("failed to connect to %s", "node1")

	entries := testutil.DecodeJSONLines(t, buf.Bytes())
	require.Len(t, entries, 2)

	for _, entry := range entries {
		source, ok := entry[slog.SourceKey].(map[string]any)
		require.True(t, ok)
		require.Equal(t, "slog_backend_test.go", filepath.Base(source["file"].(string)))
		require.True(t, strings.HasSuffix(source["function"].(string), ".TestCaller"))
	}

	require.Equal(t, "connection refused", entries[1][ErrorKey])
}

func TestRegistered(t *testing.T) {
	require.Equal(t, "github.com/couchbase/tools-logging/backend/slogbackend.Factory", log.Bound().ID)
}
