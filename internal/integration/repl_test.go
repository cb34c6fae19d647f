package integration

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"offspring.dev/offspring/testhelpers"
)

// runBinary runs the offspring binary with stdin and an isolated environment
func runBinary(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	dir := t.TempDir()

	cmd := exec.Command(testhelpers.Binary(t), args...)
	cmd.Dir = dir
	cmd.Env = append(cmd.Environ(),
		"OFFSPRING_CONFIG="+filepath.Join(dir, "config.json"),
		"OFFSPRING_LOG_FILE="+filepath.Join(dir, "offspring.log"),
		"OFFSPRING_NON_INTERACTIVE=1",
		"OFFSPRING_MAX_NODES=",
		"OFFSPRING_DEMO=",
	)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func TestREPLSession(t *testing.T) {
	t.Parallel()

	t.Run("builds, re-roots and reports a tree", func(t *testing.T) {
		t.Parallel()
		script := strings.Join([]string{
			"add Alice, Bob, Carol",
			"add Bob, Dave",
			"add Eve, Alice",
			"height Dave",
			"size",
			"print",
			"quit",
		}, "\n")

		stdout, stderr, err := runBinary(t, script)
		require.NoError(t, err, stderr)
		require.Contains(t, stdout, "The height for 'Dave' is 3")
		require.Contains(t, stdout, "Tree size for 'Eve': 4")
		require.Contains(t, stdout, "Eve had Alice.\nAlice had Bob and Carol.\nBob had Dave.\n")
		require.Empty(t, stderr)
	})

	t.Run("rejected insertions leave the tree unchanged", func(t *testing.T) {
		t.Parallel()
		script := "add Alice, Bob\nadd Alice, Bob\nadd Xavier, Yvonne\nsize\n"

		stdout, stderr, err := runBinary(t, script)
		require.NoError(t, err)
		require.Contains(t, stderr, "Error: Alice already has a child named Bob")
		require.Contains(t, stderr, "Error: Neither Xavier or Yvonne is in the tree.")
		require.Contains(t, stdout, "Tree size for 'Alice': 1")
	})

	t.Run("loads a records file before reading commands", func(t *testing.T) {
		t.Parallel()
		path := testhelpers.WriteRecords(t, t.TempDir(), testhelpers.FamilyRecords)

		stdout, stderr, err := runBinary(t, "find Erin\nquit\n", path)
		require.NoError(t, err, stderr)
		require.Contains(t, stdout, "Erin is part of the family tree. Here is their children.\nErin had no offspring.\n")
	})
}

func TestOneShotCommands(t *testing.T) {
	t.Parallel()
	path := testhelpers.WriteRecords(t, t.TempDir(), testhelpers.FamilyRecords)

	stdout, stderr, err := runBinary(t, "", "size", path, "Bob")
	require.NoError(t, err, stderr)
	require.Equal(t, "Tree size for 'Bob': 2\n\n", stdout)

	stdout, _, err = runBinary(t, "", "show", "--no-color", path, "Carol")
	require.NoError(t, err)
	require.Equal(t, "Carol\n└── Frank\n", stdout)

	_, _, err = runBinary(t, "", "print")
	require.Error(t, err)
}
