package yamlvars

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/yamlvars/build"
	"github.com/0xalexb/yamlvars/build/local"
	"github.com/0xalexb/yamlvars/config"
	filefetcher "github.com/0xalexb/yamlvars/config/fetcher/file"
	yamlparser "github.com/0xalexb/yamlvars/config/parser/yaml"
	"github.com/0xalexb/yamlvars/logging"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// Result is the outcome of running the step.
type Result struct {
	// Success reports whether the step completed. Failures are in the build log.
	Success bool
	// Build is the build the step ran in.
	Build *local.Build
}

// App runs the YAML variables step with its dependencies wired by Fx.
type App struct {
	app   *fx.App
	step  *build.Step
	build *local.Build
}

// NewApp creates a new instance of App with Fx configured.
// Construction errors, such as an invalid step configuration, are returned by Start and Perform.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	app := &App{
		app:   nil,
		step:  nil,
		build: nil,
	}
	app.app = configure(&options, app)

	return app
}

func configure(options *Options, target *App) *fx.App {
	output := options.LogOutput
	if output == nil {
		output = os.Stderr
	}

	environ := options.Environ
	if environ == nil {
		environ = os.Environ()
	}

	logger := createLogger(options.LogLevel, options.LogFormat, output)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			fxLogger := &fxevent.SlogLogger{Logger: logger}
			fxLogger.UseLogLevel(slog.LevelDebug)

			return fxLogger
		}),
		fx.Supply(logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}),
		fx.Supply(logger),
		fx.Provide(
			fx.Annotate(
				yamlparser.NewParser,
				fx.As(new(config.Parser)),
				fx.As(new(build.Extractor)),
			),
		),
		stepConfigModule(options),
		fx.Module("build",
			fx.Provide(func(logger *slog.Logger) *local.Build {
				return local.New(environ, options.Variables, logging.NewBuildListener(logger))
			}),
			fx.Provide(build.NewStep),
		),
		fx.Options(options.Modules...),
		fx.Populate(&target.step, &target.build),
	)
}

//nolint:ireturn // fx.Option is the standard return type for Fx modules
func stepConfigModule(options *Options) fx.Option {
	if options.JobFile == "" {
		step := options.Step

		return fx.Module("step-config",
			fx.Provide(config.Static(&step)),
		)
	}

	return fx.Module("step-config",
		fx.Provide(
			fx.Annotate(
				filefetcher.NewFetcher(options.JobFile),
				fx.As(new(config.DataFetcher)),
			),
		),
		fx.Provide(config.Provider(new(config.StepConfig), options.JobPath)),
	)
}

func createLogger(level, format string, w io.Writer) *slog.Logger {
	config := logging.LoggerConfig{Level: level, Format: format}

	return logging.NewLogger(config, w)
}

// Err returns the error that prevented the application from being built, if any.
func (app *App) Err() error {
	if app == nil || app.app == nil {
		return errAppNotInitialized
	}

	return app.app.Err()
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Perform runs the step once in the application's build.
func (app *App) Perform(ctx context.Context) (*Result, error) {
	err := app.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to build app: %w", err)
	}

	success, err := app.step.Perform(ctx, app.build)
	if err != nil {
		return nil, fmt.Errorf("step failed: %w", err)
	}

	return &Result{Success: success, Build: app.build}, nil
}

// Step returns the configured step. It is nil when the application failed to build.
func (app *App) Step() *build.Step {
	if app == nil {
		return nil
	}

	return app.step
}
