// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read when the Fetcher is constructed; Fetch returns a copy of
// those bytes, so every reconciliation sees the same raw options even if the
// file changes on disk.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/myapp/options.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors.
package file
