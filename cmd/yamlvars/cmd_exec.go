package main

import (
	"errors"
	"fmt"
	"os/exec"
	"syscall"

	"github.com/spf13/cobra"
)

// newCmdExec returns a command that runs a program in the extended build environment.
func newCmdExec(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- command [args...]",
		Short: "Run a command with the extended build environment",
		Long: "Runs the step, then runs command with the build environment: the process\n" +
			"environment, the --var build variables and the contributed variables.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := performStep(cmd, flags)
			if err != nil {
				return err
			}

			env, err := result.Build.Environment(cmd.Context())
			if err != nil {
				return err
			}

			child := exec.CommandContext(cmd.Context(), args[0], args[1:]...) // #nosec G204 -- the command is the user's
			child.Env = env.Environ()
			child.Stdin = cmd.InOrStdin()
			child.Stdout = cmd.OutOrStdout()
			child.Stderr = cmd.ErrOrStderr()

			err = child.Run()
			if err != nil {
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					return &exitCodeError{code: exitCode(exitErr)}
				}

				return fmt.Errorf("running %q: %w", args[0], err)
			}

			return nil
		},
	}
}

// signalExitBase is added to the signal number of a child killed by a signal, as shells do.
const signalExitBase = 128

// exitCode maps the status of a finished child to the status yamlvars exits with.
func exitCode(exitErr *exec.ExitError) int {
	code := exitErr.ExitCode()
	if code >= 0 {
		return code
	}

	status, ok := exitErr.Sys().(syscall.WaitStatus)
	if ok && status.Signaled() {
		return signalExitBase + int(status.Signal())
	}

	return 1
}
