package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// PathSeparator separates the keys of a path.
const PathSeparator = "."

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrParse is returned when the input is not well-formed YAML.
var ErrParse = errors.New("malformed YAML")

// ErrPathNotFound is returned when a path does not lead to the expected node.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser and build.Extractor for YAML data.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the section at path into target.
// Empty path decodes the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrParse, err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(toYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

func splitPath(path string) []string {
	return strings.Split(path, PathSeparator)
}

// toYAMLPath converts "deploy.staging" to the goccy/go-yaml form "$.deploy.staging".
func toYAMLPath(path string) string {
	return "$." + path
}
