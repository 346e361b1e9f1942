// Package build runs the YAML variables step inside a host build.
//
// The host is abstracted by the Build interface: it supplies the current
// environment, a resolver for build variables, a listener for the build log,
// and accepts actions to attach to the build. Step.Perform expands the
// configured file path, extracts the parameters and, when there are any,
// attaches an envvars.Action that contributes them to later steps.
//
// Failures are split in two groups. Reading the environment or the file is
// reported to the listener and turned into an unsuccessful step. Malformed
// YAML and unresolvable locations abort the step with an error.
package build
