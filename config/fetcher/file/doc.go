// Package file provides a file-based DataFetcher implementation for the config package.
//
// The build step uses it to read the YAML file holding the extended parameters,
// and the application uses it to read job definition files. The file is opened,
// read and closed at construction time; Fetch serves the cached bytes.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/vars.yaml")()
//	if err != nil {
//	    // errors.Is(err, file.ErrFileAccess) holds for every failure
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Every construction error wraps ErrFileAccess and names the cleaned path
//   - Directories additionally wrap ErrPathIsDirectory
package file
