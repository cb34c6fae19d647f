// Package demo provides a sample family for trying offspring without a
// records file of your own.
package demo

import (
	"io"
	"os"
	"strings"
)

// Records is a four-generation family in record form
const Records = `Grace, Henry, Iris, Jack
Henry, Kate, Liam
Iris, Maya
Jack, Noah, Olive, Paul
Kate, Quinn
Olive, Ruth, Sam
`

// IsDemoMode returns true if OFFSPRING_DEMO environment variable is set
func IsDemoMode() bool {
	return os.Getenv("OFFSPRING_DEMO") != ""
}

// NewReader returns a reader over Records
func NewReader() io.Reader {
	return strings.NewReader(Records)
}
