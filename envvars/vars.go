package envvars

import (
	"iter"
	"strings"

	"github.com/0xalexb/yamlvars/macro"
)

// Environment is a mutable set of environment variables.
type Environment interface {
	Set(key, value string)
}

// Vars is an insertion-ordered Environment.
// Overwriting a key keeps its original position.
type Vars struct {
	keys   []string
	values map[string]string
}

// NewVars returns an empty Vars.
func NewVars() *Vars {
	return &Vars{
		keys:   nil,
		values: make(map[string]string),
	}
}

// FromEnviron builds Vars from "KEY=value" strings as returned by os.Environ.
// Entries without "=" are ignored.
func FromEnviron(environ []string) *Vars {
	vars := NewVars()

	for _, raw := range environ {
		key, value, found := strings.Cut(raw, "=")
		if !found {
			continue
		}

		vars.Set(key, value)
	}

	return vars
}

// Set stores value under key.
func (v *Vars) Set(key, value string) {
	if v.values == nil {
		v.values = make(map[string]string)
	}

	if _, exists := v.values[key]; !exists {
		v.keys = append(v.keys, key)
	}

	v.values[key] = value
}

// Get returns the value stored under key.
func (v *Vars) Get(key string) (string, bool) {
	value, ok := v.values[key]

	return value, ok
}

// Resolve implements macro.Resolver.
func (v *Vars) Resolve(name string) (string, bool) {
	return v.Get(name)
}

// Len returns the number of variables.
func (v *Vars) Len() int {
	return len(v.keys)
}

// All iterates the variables in insertion order.
func (v *Vars) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, key := range v.keys {
			if !yield(key, v.values[key]) {
				return
			}
		}
	}
}

// Environ returns the variables as "KEY=value" strings, suitable for exec.Cmd.Env.
func (v *Vars) Environ() []string {
	environ := make([]string, 0, len(v.keys))

	for key, value := range v.All() {
		environ = append(environ, key+"="+value)
	}

	return environ
}

// Clone returns an independent copy.
func (v *Vars) Clone() *Vars {
	clone := NewVars()

	for key, value := range v.All() {
		clone.Set(key, value)
	}

	return clone
}

// Expand substitutes $NAME and ${NAME} references with the variables' values.
// Unknown references are left as they are.
func (v *Vars) Expand(s string) string {
	return macro.Replace(s, v)
}
