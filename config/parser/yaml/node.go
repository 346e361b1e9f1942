package yaml

import (
	"bytes"
	"fmt"
	"slices"

	"github.com/goccy/go-yaml"
)

// Node is a parsed YAML value: Mapping, Sequence or Scalar.
type Node interface {
	node()
}

// MappingEntry is one key/value pair of a Mapping.
type MappingEntry struct {
	Key   string
	Value Node
}

// Mapping is a YAML mapping in document order.
type Mapping []MappingEntry

// Sequence is a YAML sequence.
type Sequence []Node

// Scalar is a YAML scalar. Value holds the decoded Go value: string, integer,
// float, bool or nil.
type Scalar struct {
	Value any
}

func (Mapping) node() {}
func (Sequence) node() {}
func (Scalar) node() {}

// Lookup returns the value stored under key.
func (m Mapping) Lookup(key string) (Node, bool) {
	for _, entry := range m {
		if entry.Key == key {
			return entry.Value, true
		}
	}

	return nil, false
}

// Text returns the scalar's value when it is a plain string.
func (s Scalar) Text() (string, bool) {
	str, ok := s.Value.(string)

	return str, ok
}

// decodeDocument parses the first document in data.
// An empty document decodes to a null Scalar. Repeated mapping keys are
// accepted; the last value wins.
func decodeDocument(data []byte) (Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Scalar{Value: nil}, nil
	}

	var raw any

	err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap(), yaml.AllowDuplicateMapKey())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return toNode(raw), nil
}

func toNode(raw any) Node {
	switch value := raw.(type) {
	case yaml.MapSlice:
		mapping := make(Mapping, 0, len(value))
		positions := make(map[string]int, len(value))

		for _, item := range value {
			key, ok := item.Key.(string)
			if !ok {
				continue
			}

			if index, seen := positions[key]; seen {
				mapping[index].Value = toNode(item.Value)

				continue
			}

			positions[key] = len(mapping)
			mapping = append(mapping, MappingEntry{Key: key, Value: toNode(item.Value)})
		}

		return mapping
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}

		slices.Sort(keys)

		mapping := make(Mapping, 0, len(keys))
		for _, key := range keys {
			mapping = append(mapping, MappingEntry{Key: key, Value: toNode(value[key])})
		}

		return mapping
	case []any:
		sequence := make(Sequence, 0, len(value))
		for _, item := range value {
			sequence = append(sequence, toNode(item))
		}

		return sequence
	default:
		return Scalar{Value: value}
	}
}
