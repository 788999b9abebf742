package log_test

import (
	"net/http"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/couchbase/tools-logging/log"
	"github.com/couchbase/tools-logging/testutil"
)

func TestProviderResolvesOnceConcurrently(t *testing.T) {
	var (
		scans     atomic.Int32
		overrides atomic.Int32
		candidate = handles("a")
	)

	recorder, diagnostics := testutil.NewDiagnostics()

	provider := log.NewProvider(
		log.WithScanner(func() []log.Handle { scans.Add(1); return candidate }),
		log.WithOverride(func() (string, bool) { overrides.Add(1); return "", false }),
		log.WithDiagnostics(diagnostics),
	)

	const callers = 64

	var (
		wg    sync.WaitGroup
		bound = make([]log.Handle, callers)
		start = make(chan struct{})
	)

	for i := 0; i < callers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()
			<-start
			bound[i] = provider.Bound()
		}(i)
	}

	close(start)
	wg.Wait()

	require.Equal(t, int32(1), scans.Load())
	require.Equal(t, int32(1), overrides.Load())
	require.Len(t, recorder.Records(), 1)

	for _, handle := range bound {
		require.Same(t, candidate[0].Factory, handle.Factory)
	}
}

func TestProviderBindingIsNotReevaluated(t *testing.T) {
	var (
		candidates = handles("a")
		override   = ""
	)

	_, diagnostics := testutil.NewDiagnostics()

	provider := log.NewProvider(
		log.WithScanner(func() []log.Handle { return candidates }),
		log.WithOverride(func() (string, bool) { return override, override != "" }),
		log.WithDiagnostics(diagnostics),
	)

	require.Equal(t, "a", provider.Bound().ID)

	candidates, override = handles("a", "b"), "b"

	require.Equal(t, "a", provider.Bound().ID)
}

func TestProviderScanPanicPropagates(t *testing.T) {
	var attempts int

	_, diagnostics := testutil.NewDiagnostics()

	provider := log.NewProvider(
		log.WithScanner(func() []log.Handle {
			attempts++
			if attempts == 1 {
				panic("registry unavailable")
			}

			return handles("a")
		}),
		log.WithOverride(func() (string, bool) { return "", false }),
		log.WithDiagnostics(diagnostics),
	)

	require.PanicsWithValue(t, "registry unavailable", func() { provider.Bound() })
	require.Equal(t, "a", provider.Bound().ID)
	require.Equal(t, 2, attempts)
}

func TestProviderOverrideFromEnvironment(t *testing.T) {
	t.Setenv(log.FactoryKey, "  b  ")

	_, diagnostics := testutil.NewDiagnostics()

	provider := log.NewProvider(
		log.WithScanner(func() []log.Handle { return handles("a", "b") }),
		log.WithDiagnostics(diagnostics),
	)

	require.Equal(t, "b", provider.Bound().ID)
}

func TestProviderLogger(t *testing.T) {
	var (
		factory = &testutil.MockFactory{}
		logger  = log.NopFactory.Logger("cbrest")
	)

	factory.On("Logger", "cbrest").Return(logger).Once()

	_, diagnostics := testutil.NewDiagnostics()

	provider := log.NewProvider(
		log.WithScanner(func() []log.Handle { return []log.Handle{log.NewHandle(factory)} }),
		log.WithOverride(func() (string, bool) { return "", false }),
		log.WithDiagnostics(diagnostics),
	)

	require.Equal(t, logger, provider.Logger("cbrest"))
	factory.AssertExpectations(t)
}

func TestPackageLevelEntryPoints(t *testing.T) {
	// Nothing is registered in this test binary, so the process wide binding must be the no-op factory.
	require.Equal(t, log.NopHandle, log.Bound())

	require.Equal(t, "", log.Root().Name())
	require.Equal(t, log.LevelInfo, log.Root().Level())
	require.Equal(t, "cbrest", log.Named("cbrest").Name())
	require.Equal(t, "net/http.Client", log.For(&http.Client{}).Name())
	require.Equal(t, "net/http.Client", log.For(reflect.TypeOf(http.Client{})).Name())
	require.Equal(t, "", log.For(nil).Name())
	require.False(t, log.Root().AtError().Enabled())
}
