// Package input loads puzzle input files.
package input

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DefaultName is the file name looked up when no input path is given.
const DefaultName = "input"

// Stdin is the path that selects standard input.
const Stdin = "-"

// Resolve returns the input path to read. An empty path selects DefaultName
// inside dir; relative paths are left relative to the working directory.
func Resolve(path, dir string) string {
	if path != "" {
		return path
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, DefaultName)
}

// Open opens path for reading, or returns stdin for "-".
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	return f, nil
}

// Read returns the full contents of path.
func Read(path string) ([]byte, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return data, nil
}

// FirstLine returns the first non-empty line of data with surrounding
// whitespace removed.
func FirstLine(data []byte) string {
	for _, line := range bytes.Split(data, []byte("\n")) {
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			return string(trimmed)
		}
	}
	return ""
}
