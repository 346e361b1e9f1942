package file

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrFileAccess is returned when the file is missing, unreadable or not a regular file.
var ErrFileAccess = errors.New("file access error")

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a single file.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor that reads fpath and caches its contents.
// The constructor shape lets fx decide when the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		data, err := readFile(cleanPath)
		if err != nil {
			return nil, err
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

func readFile(cleanPath string) (data []byte, err error) {
	handle, err := os.Open(cleanPath) // #nosec G304 -- path comes from the step configuration
	if err != nil {
		return nil, fmt.Errorf("%w: open file %q: %w", ErrFileAccess, cleanPath, err)
	}

	defer func() {
		closeErr := handle.Close()
		if closeErr != nil && err == nil {
			data = nil
			err = fmt.Errorf("%w: close file %q: %w", ErrFileAccess, cleanPath, closeErr)
		}
	}()

	stat, err := handle.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat file %q: %w", ErrFileAccess, cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("%w: path %q: %w", ErrFileAccess, cleanPath, ErrPathIsDirectory)
	}

	data, err = io.ReadAll(handle)
	if err != nil {
		return nil, fmt.Errorf("%w: reading file %q: %w", ErrFileAccess, cleanPath, err)
	}

	return data, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached file contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}
