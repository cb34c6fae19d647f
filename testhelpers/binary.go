// Package testhelpers provides testing utilities for offspring: family
// fixtures, tree assertions and a lazily built CLI binary.
package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	binaryOnce sync.Once
	binaryPath string
	binaryDir  string
	binaryErr  error
)

// Binary returns the path of the offspring binary, building it on first use.
// The test fails if the build fails.
func Binary(t *testing.T) string {
	t.Helper()
	binaryOnce.Do(func() {
		binaryPath, binaryDir, binaryErr = buildBinary()
	})
	if binaryErr != nil {
		t.Fatalf("failed to build offspring binary: %v", binaryErr)
	}
	return binaryPath
}

// TestMain runs the package's tests and removes the built binary afterwards.
// Packages can use this by calling testhelpers.TestMain(m) in their own TestMain.
func TestMain(m *testing.M) {
	code := m.Run()
	if binaryDir != "" {
		_ = os.RemoveAll(binaryDir)
	}
	os.Exit(code)
}

// buildBinary compiles ./cmd/offspring into a temp directory
func buildBinary() (string, string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "offspring-test-binary-*")
	if err != nil {
		return "", "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	path := filepath.Join(tmpDir, "offspring")
	cmd := exec.Command("go", "build", "-o", path, "./cmd/offspring")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return path, tmpDir, nil
}

// findModuleRoot walks up from startDir to the directory holding go.mod
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
