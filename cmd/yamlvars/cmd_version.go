package main

import (
	"fmt"

	"github.com/0xalexb/yamlvars"

	"github.com/spf13/cobra"
)

// newCmdVersion returns a command that prints the application version.
func newCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "yamlvars version %s (compiled %s)\n", yamlvars.Version, yamlvars.CompiledAt)
		},
	}
}
