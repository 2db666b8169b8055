package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for file-based raw options.
// The file is read once, at construction time.
type Fetcher struct {
	source string
	data   []byte
}

// NewFetcher returns a constructor function that reads the file at fpath and
// returns a Fetcher serving its contents. Returning a constructor lets an Fx
// container decide when the file is read.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			source: cleanPath,
			data:   data,
		}, nil
	}
}

// Fetch returns a copy of the file contents.
func (f *Fetcher) Fetch() ([]byte, error) {
	return slices.Clone(f.data), nil
}

// Source returns the cleaned path the data was read from.
func (f *Fetcher) Source() string {
	return f.source
}
