package yaml

import (
	"fmt"

	"github.com/0xalexb/yamlvars/envvars"
)

// Extract parses data and returns the plain string entries of the mapping found at path.
//
// Every segment of path must name a key whose value is a mapping. Trailing
// separators are ignored; other empty segments never match, so "", "." and
// "a..b" fail. Errors wrap ErrParse or
// ErrPathNotFound; the latter always names the whole path.
func (p *Parser) Extract(data []byte, path string) (*envvars.Parameters, error) {
	root, err := decodeDocument(data)
	if err != nil {
		return nil, err
	}

	node := root

	for _, segment := range locationSegments(path) {
		parent, ok := node.(Mapping)
		if !ok || segment == "" {
			return nil, pathNotFound(path)
		}

		child, found := parent.Lookup(segment)
		if !found {
			return nil, pathNotFound(path)
		}

		node = child
	}

	mapping, ok := node.(Mapping)
	if !ok {
		return nil, pathNotFound(path)
	}

	entries := make([]envvars.Entry, 0, len(mapping))

	for _, entry := range mapping {
		scalar, isScalar := entry.Value.(Scalar)
		if !isScalar {
			continue
		}

		value, isString := scalar.Text()
		if !isString {
			continue
		}

		entries = append(entries, envvars.Entry{Key: entry.Key, Value: value})
	}

	return envvars.NewParameters(entries...), nil
}

// locationSegments splits path and drops trailing empty segments, keeping at least one.
func locationSegments(path string) []string {
	segments := splitPath(path)
	for len(segments) > 1 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	return segments
}

func pathNotFound(path string) error {
	return fmt.Errorf("%w: unable to find a possible map in location [%s]", ErrPathNotFound, path)
}
