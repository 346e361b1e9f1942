package envvars

import (
	"iter"
	"maps"
)

// Entry is a single key/value pair.
type Entry struct {
	Key   string
	Value string
}

// Parameters is an immutable, insertion-ordered mapping of string keys to string values.
// The zero value and a nil *Parameters are both empty.
type Parameters struct {
	keys   []string
	values map[string]string
}

// NewParameters builds Parameters from entries.
// A repeated key keeps the position of its first occurrence and the value of its last.
func NewParameters(entries ...Entry) *Parameters {
	params := &Parameters{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]string, len(entries)),
	}

	for _, entry := range entries {
		if _, exists := params.values[entry.Key]; !exists {
			params.keys = append(params.keys, entry.Key)
		}

		params.values[entry.Key] = entry.Value
	}

	return params
}

// Len returns the number of parameters.
func (p *Parameters) Len() int {
	if p == nil {
		return 0
	}

	return len(p.keys)
}

// Get returns the value for key.
func (p *Parameters) Get(key string) (string, bool) {
	if p == nil {
		return "", false
	}

	value, ok := p.values[key]

	return value, ok
}

// Keys returns the keys in insertion order.
func (p *Parameters) Keys() []string {
	if p == nil {
		return nil
	}

	keys := make([]string, len(p.keys))
	copy(keys, p.keys)

	return keys
}

// All iterates the parameters in insertion order.
func (p *Parameters) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if p == nil {
			return
		}

		for _, key := range p.keys {
			if !yield(key, p.values[key]) {
				return
			}
		}
	}
}

// Map returns a copy of the parameters as a plain map.
func (p *Parameters) Map() map[string]string {
	if p == nil {
		return map[string]string{}
	}

	return maps.Clone(p.values)
}
