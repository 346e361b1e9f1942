package main

import (
	"errors"
	"fmt"

	"github.com/0xalexb/yamlvars/config"
	filefetcher "github.com/0xalexb/yamlvars/config/fetcher/file"
	yamlparser "github.com/0xalexb/yamlvars/config/parser/yaml"

	"github.com/spf13/cobra"
)

var errInvalidFields = errors.New("configuration has errors")

// newCmdCheck returns a command that validates the step configuration fields.
func newCmdCheck(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the step configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadStepConfig(flags)
			if err != nil {
				return err
			}

			failed := false

			for _, result := range cfg.Check() {
				line := fmt.Sprintf("%-7s %s", result.Kind, result.Field)
				if result.Message != "" {
					line += ": " + result.Message
				}

				fmt.Fprintln(cmd.OutOrStdout(), line)

				if result.Kind == config.KindError {
					failed = true
				}
			}

			if failed {
				return errInvalidFields
			}

			return nil
		},
	}
}

// loadStepConfig reads the step configuration without validating it.
func loadStepConfig(flags *rootFlags) (*config.StepConfig, error) {
	if flags.job == "" {
		return &config.StepConfig{YAMLFile: flags.yamlFile, MapLocation: flags.mapLocation}, nil
	}

	fetcher, err := filefetcher.NewFetcher(flags.job)()
	if err != nil {
		return nil, err
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, err
	}

	cfg := &config.StepConfig{}

	err = yamlparser.NewParser().Parse(data, cfg, flags.jobPath)
	if err != nil {
		return nil, fmt.Errorf("reading job file %q: %w", flags.job, err)
	}

	return cfg, nil
}
