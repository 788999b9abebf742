package log

import (
	"log/slog"
	"reflect"

	"github.com/couchbase/tools-logging/envvar"
	"github.com/couchbase/tools-logging/syncutil"
)

// ProviderOption allows overriding where a 'Provider' discovers its candidates, override and diagnostics logger.
type ProviderOption func(p *Provider)

// WithScanner sets the function used to discover candidate factories, by default 'Registered' is used.
func WithScanner(scan func() []Handle) ProviderOption {
	return func(p *Provider) { p.scan = scan }
}

// WithOverride sets the function used to read the override identifier, by default it's read from the environment
// using 'FactoryKey'.
func WithOverride(override func() (string, bool)) ProviderOption {
	return func(p *Provider) { p.override = override }
}

// WithDiagnostics sets the logger which binding notices are written to, by default 'slog.Default' is used.
func WithDiagnostics(diagnostics *slog.Logger) ProviderOption {
	return func(p *Provider) { p.diagnostics = diagnostics }
}

// Provider lazily binds a single factory the first time it's accessed, every subsequent access returns the same
// handle.
type Provider struct {
	scan        func() []Handle
	override    func() (string, bool)
	diagnostics *slog.Logger

	barrier syncutil.InitBarrier
	bound   Handle
}

// NewProvider returns a provider which hasn't been bound yet.
func NewProvider(opts ...ProviderOption) *Provider {
	provider := &Provider{
		scan:     Registered,
		override: lookupOverride,
		barrier:  syncutil.NewInitBarrier(),
	}

	for _, opt := range opts {
		opt(provider)
	}

	return provider
}

// Bound returns the bound handle, resolving it if this is the first call. Concurrent first calls block until a single
// resolution has completed.
//
// NOTE: A panic raised while discovering candidates is propagated and leaves the provider unbound.
func (p *Provider) Bound() Handle {
	p.barrier.Do(p.bind)
	return p.bound
}

// Logger returns a logger with the given name from the bound factory.
func (p *Provider) Logger(name string) Logger {
	return p.Bound().Factory.Logger(name)
}

func (p *Provider) bind() {
	override, _ := p.override()
	p.bound = Resolve(p.scan(), override, p.diagnostics)
}

// lookupOverride returns the trimmed override from the environment, blank values are treated as unset.
func lookupOverride() (string, bool) {
	return envvar.GetTrimmed(FactoryKey)
}

// provider is the process wide provider used by the package level functions.
var provider = NewProvider()

// Bound returns the handle bound for this process, resolving it on first use.
func Bound() Handle {
	return provider.Bound()
}

// Root returns the root logger, at the info level.
func Root() Logger {
	return provider.Logger("")
}

// Named returns a logger with the given name, at the info level.
func Named(name string) Logger {
	return provider.Logger(name)
}

// For returns a logger named after the type of v, for example a '*http.Client' produces a logger named
// 'net/http.Client'. A 'reflect.Type' may be passed directly, a nil value returns the root logger.
func For(v any) Logger {
	return provider.Logger(scopeName(v))
}

func scopeName(v any) string {
	if t, ok := v.(reflect.Type); ok {
		return typeName(t)
	}

	return typeName(reflect.TypeOf(v))
}
