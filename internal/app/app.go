// Package app wires configuration, logging and tracing around the two
// PetriBench programs and turns their outcome into a process exit code.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/petribench/internal/config"
	apperrors "github.com/agbru/petribench/internal/errors"
	"github.com/agbru/petribench/internal/logging"
)

const instrumentationName = "github.com/agbru/petribench/internal/app"

// Application represents one invocation of a PetriBench program.
type Application struct {
	Config    config.AppConfig
	Logger    logging.Logger
	ErrWriter io.Writer

	tracer trace.Tracer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithLogger replaces the logger built from the configuration.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithTracerProvider sets the provider used for run spans. Without it the
// global provider is used, which is a no-op unless the embedder installs one.
func WithTracerProvider(tp trace.TracerProvider) AppOption {
	return func(a *Application) { a.tracer = tp.Tracer(instrumentationName) }
}

// New creates an Application for program by parsing args, where args[0] is
// the program name as in os.Args.
func New(program config.Program, args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	programName := string(program)
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(program, programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	app := &Application{Config: cfg, ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Logger == nil {
		logger, err := logging.NewLeveledLogger(errWriter, string(program), cfg.LogLevel)
		if err != nil {
			return nil, apperrors.NewConfigError("%v", err)
		}
		app.Logger = logger
	}
	if app.tracer == nil {
		app.tracer = otel.Tracer(instrumentationName)
	}
	return app, nil
}

// Run executes the configured program, writing its measured output to out.
// It returns a process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	if a.Config.ShowVersion {
		PrintVersion(out, a.Config.Program)
		return apperrors.ExitSuccess
	}

	a.Logger.Debug("configuration resolved",
		logging.String("program", string(a.Config.Program)),
		logging.String("config_file", a.Config.ConfigFile),
		logging.String("log_level", a.Config.LogLevel),
	)

	switch a.Config.Program {
	case config.ProgramBenchmark:
		return a.runBenchmark(ctx, out)
	case config.ProgramFizzBuzz:
		return a.runFizzBuzz(ctx, out)
	}
	return a.fail(nil, apperrors.NewConfigError("unknown program %q", a.Config.Program))
}

// fail reports err on the span and on stderr, then maps it to an exit code.
func (a *Application) fail(span trace.Span, err error) int {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	a.Logger.Error("run failed", err, logging.String("program", string(a.Config.Program)))
	fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
	return apperrors.ExitCodeFor(err)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
