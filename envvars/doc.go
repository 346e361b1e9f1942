// Package envvars holds the extended build parameters and the environment they are contributed to.
//
// Parameters is the immutable, ordered result of reading a YAML mapping.
// Action wraps Parameters and implements Contributor: when the host build
// invokes Apply with its Environment, every parameter is written into it.
// Vars is an ordered Environment implementation used by hosts and tests.
package envvars
