// Command cblogbind reports which logger factory the facade binds when every bundled backend is linked in, and writes a
// probe message through it. It's intended to check a deployment's CB_LOG_FACTORY setting without having to start the
// application itself.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	flags "github.com/jessevdk/go-flags"

	_ "github.com/couchbase/tools-logging/backend/gologbackend"
	_ "github.com/couchbase/tools-logging/backend/logrusbackend"
	_ "github.com/couchbase/tools-logging/backend/slogbackend"
	_ "github.com/couchbase/tools-logging/backend/stdoutbackend"
	_ "github.com/couchbase/tools-logging/backend/zapbackend"
	"github.com/couchbase/tools-logging/errutil"
	"github.com/couchbase/tools-logging/log"
)

// options are the command line options accepted by cblogbind.
type options struct {
	Factory string `short:"f" long:"factory" description:"Identifier of the factory to bind, takes precedence over CB_LOG_FACTORY"`
	List    bool   `short:"l" long:"list" description:"Print the identifiers of the registered factories and exit"`
	Name    string `short:"n" long:"name" description:"Name of the logger the probe message is written with"`
	Level   string `long:"level" default:"info" description:"Level the probe message is written at"`
	Message string `short:"m" long:"message" default:"logger binding probe" description:"The probe message"`
}

// validate checks the parsed options, returning the probe level.
func (o options) validate(args []string) (log.Level, error) {
	errs := errutil.MultiError{Prefix: "invalid options: "}

	level, err := log.ParseLevel(o.Level)
	errs.Add(err)

	if len(args) > 0 {
		errs.Add(fmt.Errorf("unexpected arguments %q", args))
	}

	return level, errs.ErrOrNil()
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, slog.Default()))
}

func run(args []string, stdout, stderr io.Writer, diagnostics *slog.Logger) int {
	var opts options

	parser := flags.NewParser(&opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "cblogbind"

	rest, err := parser.ParseArgs(args)
	if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
		fmt.Fprintln(stdout, flagsErr.Message)
		return 0
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	level, err := opts.validate(rest)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if opts.List {
		for _, handle := range log.Registered() {
			fmt.Fprintln(stdout, handle.ID)
		}

		return 0
	}

	providerOpts := []log.ProviderOption{log.WithDiagnostics(diagnostics)}
	if opts.Factory != "" {
		providerOpts = append(providerOpts, log.WithOverride(func() (string, bool) { return opts.Factory, true }))
	}

	bound := log.NewProvider(providerOpts...).Bound()

	logger := bound.Factory.Logger(opts.Name).AtLevel(level)
	logger.Log(opts.Message)

	fmt.Fprintf(stdout, "bound: %s\nenabled: %t\n", bound.ID, logger.Enabled())

	if syncer, ok := bound.Factory.(interface{ Sync() error }); ok {
		_ = syncer.Sync()
	}

	return 0
}
