package build

import (
	"context"
	"errors"

	"github.com/0xalexb/yamlvars/envvars"
	"github.com/0xalexb/yamlvars/macro"
)

// Build log messages.
const (
	MsgEnvironmentUnavailable = "Unable to get the build parameters."
	MsgFileUnreadable         = "Unable to read the YAML file."
)

// ErrEnvironmentUnavailable is returned by hosts that cannot supply the build environment.
var ErrEnvironmentUnavailable = errors.New("build environment unavailable")

// Action is attached to a build and may be shown by the host.
type Action interface {
	DisplayName() string
	IconFileName() string
	URLName() string
}

// Listener receives diagnostics for the build log.
type Listener interface {
	Error(msg string, err error)
}

// Build is the host build a step runs in.
type Build interface {
	// Environment returns a snapshot of the current build environment.
	Environment(ctx context.Context) (*envvars.Vars, error)
	// VariableResolver resolves build variables for macro expansion.
	VariableResolver() macro.Resolver
	// AddAction attaches action to the build.
	AddAction(action Action)
	// Listener returns the build log.
	Listener() Listener
}

// Extractor reads the parameters at path from a YAML document.
type Extractor interface {
	Extract(data []byte, path string) (*envvars.Parameters, error)
}
