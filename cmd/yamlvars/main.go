// Command yamlvars extends a build environment with variables read from a YAML file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	root := newRootCmd()

	err := root.ExecuteContext(context.Background())
	if err == nil {
		return
	}

	var exitErr *exitCodeError
	if errors.As(err, &exitErr) {
		os.Exit(exitErr.code)
	}

	fmt.Fprintf(os.Stderr, "yamlvars: %s\n", err)
	os.Exit(1)
}
