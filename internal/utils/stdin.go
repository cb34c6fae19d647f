package utils

import (
	"fmt"
	"io"
	"os"
)

// OpenInput opens path for reading. "-" reads from standard input.
// The caller must close the returned reader.
func OpenInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file %q: %w", path, err)
	}
	return f, nil
}
