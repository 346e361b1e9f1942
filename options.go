package yamlvars

import (
	"io"
	"maps"

	"github.com/0xalexb/yamlvars/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	LogOutput io.Writer
	Step      config.StepConfig
	JobFile   string
	JobPath   string
	Variables map[string]string
	Environ   []string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log format: "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// WithLogOutput sets the log destination. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}

// WithStep configures the step directly.
func WithStep(yamlFile, mapLocation string) Option {
	return func(opts *Options) {
		opts.Step = config.StepConfig{YAMLFile: yamlFile, MapLocation: mapLocation}
	}
}

// WithJobFile loads the step configuration from the section at path of a job definition file.
// It takes precedence over WithStep.
func WithJobFile(file, path string) Option {
	return func(opts *Options) {
		opts.JobFile = file
		opts.JobPath = path
	}
}

// WithVariables sets the build variables used for macro expansion. Later calls add to earlier ones.
func WithVariables(variables map[string]string) Option {
	return func(opts *Options) {
		if opts.Variables == nil {
			opts.Variables = make(map[string]string, len(variables))
		}

		maps.Copy(opts.Variables, variables)
	}
}

// WithEnviron sets the base build environment in os.Environ format. Defaults to os.Environ().
func WithEnviron(environ []string) Option {
	return func(opts *Options) {
		opts.Environ = environ
	}
}
