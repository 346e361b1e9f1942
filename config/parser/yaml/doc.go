// Package yaml reads YAML documents with github.com/goccy/go-yaml.
//
// Two entry points share the dot-separated path syntax ("deploy.staging"):
//
//   - Extract walks the document to a nested mapping and returns its string
//     entries as envvars.Parameters. Values that are not plain strings are
//     skipped. This is the data source of the build step.
//   - Parse decodes the section at a path into a Go value. It implements
//     config.Parser and is used to load step configuration from job files.
//
// Usage:
//
//	parser := yaml.NewParser()
//	params, err := parser.Extract(data, "deploy.staging")
//	if errors.Is(err, yaml.ErrPathNotFound) {
//	    // the path does not lead to a mapping
//	}
package yaml
