// Package local implements build.Build for a build running on the local machine.
//
// The environment of a local build is the process environment, overlaid with
// the build variables, overlaid with every attached envvars.Contributor in the
// order they were attached.
package local

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/0xalexb/yamlvars/build"
	"github.com/0xalexb/yamlvars/envvars"
	"github.com/0xalexb/yamlvars/logging"
	"github.com/0xalexb/yamlvars/macro"
)

// Build is a build.Build backed by in-memory state.
type Build struct {
	base      *envvars.Vars
	variables macro.MapResolver
	listener  build.Listener
	actions   []build.Action
}

// New creates a local build.
// environ uses the os.Environ format; variables are the build variables.
// A nil listener logs to slog.Default.
func New(environ []string, variables map[string]string, listener build.Listener) *Build {
	if listener == nil {
		listener = logging.NewBuildListener(nil)
	}

	return &Build{
		base:      envvars.FromEnviron(environ),
		variables: maps.Clone(macro.MapResolver(variables)),
		listener:  listener,
		actions:   nil,
	}
}

// Environment returns the current build environment.
func (b *Build) Environment(ctx context.Context) (*envvars.Vars, error) {
	err := ctx.Err()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", build.ErrEnvironmentUnavailable, err)
	}

	env := b.base.Clone()

	for _, name := range slices.Sorted(maps.Keys(b.variables)) {
		env.Set(name, b.variables[name])
	}

	b.contribute(env)

	return env, nil
}

// Contributed returns only the variables contributed by attached actions.
func (b *Build) Contributed() *envvars.Vars {
	env := envvars.NewVars()
	b.contribute(env)

	return env
}

func (b *Build) contribute(env *envvars.Vars) {
	for _, action := range b.actions {
		contributor, ok := action.(envvars.Contributor)
		if ok {
			contributor.Apply(env)
		}
	}
}

// VariableResolver resolves the build variables.
func (b *Build) VariableResolver() macro.Resolver {
	return b.variables
}

// AddAction attaches action to the build.
func (b *Build) AddAction(action build.Action) {
	b.actions = append(b.actions, action)
}

// Actions returns the attached actions in order.
func (b *Build) Actions() []build.Action {
	return slices.Clone(b.actions)
}

// Listener returns the build log.
func (b *Build) Listener() build.Listener {
	return b.listener
}
