package main

import (
	"errors"
	"fmt"

	"github.com/0xalexb/yamlvars"

	"github.com/spf13/cobra"
)

var errStepFailed = errors.New("build step failed, see the log for details")

// exitCodeError carries the exit status of a command run by exec.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("command exited with status %d", e.code)
}

type rootFlags struct {
	yamlFile    string
	mapLocation string
	job         string
	jobPath     string
	variables   map[string]string
	logLevel    string
	logFormat   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "yamlvars",
		Short: "Extend build variables from a YAML file",
		Long: "yamlvars reads a YAML file, locates a nested mapping by a dot-separated path\n" +
			"and contributes its string entries as environment variables to later build steps.",
		Version: yamlvars.Version,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	persistent := cmd.PersistentFlags()
	persistent.StringVarP(&flags.yamlFile, "yaml-file", "f", "", "YAML file to read; $VAR and ${VAR} are expanded")
	persistent.StringVarP(&flags.mapLocation, "map-location", "m", "", "dot-separated location of the mapping, e.g. deploy.staging")
	persistent.StringVar(&flags.job, "job", "", "job definition file holding yamlFile and mapLocation")
	persistent.StringVar(&flags.jobPath, "job-path", "", "dot-separated section of the job file holding the step (default: whole file)")
	persistent.StringToStringVar(&flags.variables, "var", nil, "build variable KEY=VALUE for macro expansion (repeatable)")
	persistent.StringVar(&flags.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	persistent.StringVar(&flags.logFormat, "log-format", "text", "log format (text|json)")

	cmd.MarkFlagsMutuallyExclusive("job", "yaml-file")
	cmd.MarkFlagsMutuallyExclusive("job", "map-location")

	cmd.AddCommand(newCmdExport(flags))
	cmd.AddCommand(newCmdExec(flags))
	cmd.AddCommand(newCmdCheck(flags))
	cmd.AddCommand(newCmdVersion())

	return cmd
}

// performStep runs the step and fails unless it succeeded.
func performStep(cmd *cobra.Command, flags *rootFlags) (*yamlvars.Result, error) {
	options := []yamlvars.Option{
		yamlvars.WithLogLevel(flags.logLevel),
		yamlvars.WithLogFormat(flags.logFormat),
		yamlvars.WithLogOutput(cmd.ErrOrStderr()),
		yamlvars.WithStep(flags.yamlFile, flags.mapLocation),
		yamlvars.WithVariables(flags.variables),
	}

	if flags.job != "" {
		options = append(options, yamlvars.WithJobFile(flags.job, flags.jobPath))
	}

	app := yamlvars.NewApp(options...)

	result, err := app.Perform(cmd.Context())
	if err != nil {
		return nil, err
	}

	if !result.Success {
		return nil, errStepFailed
	}

	return result, nil
}
