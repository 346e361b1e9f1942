package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/0xalexb/yamlvars/envvars"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Export formats.
const (
	formatShell  = "shell"
	formatDotenv = "dotenv"
	formatYAML   = "yaml"
)

var errInvalidShellName = errors.New("not a valid shell variable name")

// shellNamePattern matches names a POSIX shell accepts in an export statement.
var shellNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// exportFormat is a pflag.Value restricted to the supported formats.
type exportFormat string

var _ pflag.Value = (*exportFormat)(nil)

func (f *exportFormat) String() string {
	return string(*f)
}

func (f *exportFormat) Set(value string) error {
	switch value {
	case formatShell, formatDotenv, formatYAML:
		*f = exportFormat(value)

		return nil
	default:
		return fmt.Errorf("unsupported format %q (want %s, %s or %s)", value, formatShell, formatDotenv, formatYAML)
	}
}

func (f *exportFormat) Type() string {
	return "format"
}

// newCmdExport returns a command that prints the contributed variables.
func newCmdExport(flags *rootFlags) *cobra.Command {
	format := exportFormat(formatShell)

	var output string

	c := &cobra.Command{
		Use:   "export",
		Short: "Print the variables the step contributes",
		Long: "Runs the step and prints the contributed variables, in document order for shell and yaml.\n" +
			"Use --output to write them to a file that later build steps can load.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := performStep(cmd, flags)
			if err != nil {
				return err
			}

			rendered, err := render(result.Build.Contributed(), string(format))
			if err != nil {
				return err
			}

			if output == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)

				return err
			}

			err = os.WriteFile(output, []byte(rendered), 0o600)
			if err != nil {
				return fmt.Errorf("writing %q: %w", output, err)
			}

			return nil
		},
	}

	c.Flags().Var(&format, "format", "output format (shell|dotenv|yaml)")
	c.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")

	return c
}

func render(vars *envvars.Vars, format string) (string, error) {
	switch format {
	case formatDotenv:
		values := make(map[string]string, vars.Len())
		for key, value := range vars.All() {
			values[key] = value
		}

		content, err := godotenv.Marshal(values)
		if err != nil {
			return "", fmt.Errorf("rendering dotenv: %w", err)
		}

		if content == "" {
			return "", nil
		}

		return content + "\n", nil
	case formatYAML:
		if vars.Len() == 0 {
			return "{}\n", nil
		}

		items := make(yaml.MapSlice, 0, vars.Len())
		for key, value := range vars.All() {
			items = append(items, yaml.MapItem{Key: key, Value: value})
		}

		content, err := yaml.Marshal(items)
		if err != nil {
			return "", fmt.Errorf("rendering yaml: %w", err)
		}

		return string(content), nil
	default:
		var builder strings.Builder

		for key, value := range vars.All() {
			if !shellNamePattern.MatchString(key) {
				return "", fmt.Errorf("rendering shell: %q: %w", key, errInvalidShellName)
			}

			fmt.Fprintf(&builder, "export %s=%s\n", key, shellQuote(value))
		}

		return builder.String(), nil
	}
}

// shellQuote wraps value in single quotes for POSIX shells.
func shellQuote(value string) string {
	return "'" + strings.ReplaceAll(value, "'", `'\''`) + "'"
}
