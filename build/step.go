package build

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/0xalexb/yamlvars/config"
	filefetcher "github.com/0xalexb/yamlvars/config/fetcher/file"
	"github.com/0xalexb/yamlvars/envvars"
	"github.com/0xalexb/yamlvars/macro"
)

// Step extends the build environment with the variables of a YAML mapping.
type Step struct {
	config    config.StepConfig
	extractor Extractor
	logger    *slog.Logger
}

// NewStep creates a Step. A nil logger falls back to slog.Default.
func NewStep(cfg *config.StepConfig, extractor Extractor, logger *slog.Logger) *Step {
	if logger == nil {
		logger = slog.Default()
	}

	return &Step{
		config:    *cfg,
		extractor: extractor,
		logger:    logger,
	}
}

// Config returns the step configuration.
func (s *Step) Config() config.StepConfig {
	return s.config
}

// Perform runs the step in b.
//
// It returns false with a nil error when the environment or the file could not
// be read; the cause is reported to the build listener. Extraction failures are
// returned as errors.
func (s *Step) Perform(ctx context.Context, b Build) (bool, error) {
	env, err := b.Environment(ctx)
	if err == nil && env == nil {
		err = ErrEnvironmentUnavailable
	}

	if err != nil {
		b.Listener().Error(MsgEnvironmentUnavailable, err)

		return false, nil
	}

	yamlFile := s.ResolveFile(env, b.VariableResolver())

	s.logger.Debug("reading YAML file",
		slog.String("file", yamlFile),
		slog.String("location", s.config.MapLocation),
	)

	fetcher, err := filefetcher.NewFetcher(yamlFile)()
	if err != nil {
		b.Listener().Error(MsgFileUnreadable, err)

		return false, nil
	}

	data, err := fetcher.Fetch()
	if err != nil {
		b.Listener().Error(MsgFileUnreadable, err)

		return false, nil
	}

	params, err := s.extractor.Extract(data, s.config.MapLocation)
	if err != nil {
		return false, fmt.Errorf("extracting %q from %q: %w", s.config.MapLocation, yamlFile, err)
	}

	if params.Len() > 0 {
		b.AddAction(envvars.NewAction(params))
	}

	s.logger.Info("build environment extended",
		slog.String("file", yamlFile),
		slog.String("location", s.config.MapLocation),
		slog.Int("variables", params.Len()),
	)

	return true, nil
}

// ResolveFile expands the configured file path against env, then against variables.
func (s *Step) ResolveFile(env *envvars.Vars, variables macro.Resolver) string {
	return macro.Replace(env.Expand(s.config.YAMLFile), variables)
}
