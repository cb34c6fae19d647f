package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"offspring.dev/offspring/internal/engine"
	"offspring.dev/offspring/internal/parser"
)

// FamilyRecords is the family most tests share:
//
//	Alice
//	├── Bob
//	│   ├── Dave
//	│   └── Erin
//	└── Carol
//	    └── Frank
const FamilyRecords = `Alice, Bob, Carol
Bob, Dave, Erin
Carol, Frank
`

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// BuildFamily loads records into a fresh unlimited engine and returns the
// engine and root. Every record must be accepted.
func BuildFamily(t *testing.T, records string) (engine.Engine, *engine.Node) {
	t.Helper()
	eng := engine.NewEngine(engine.Options{})
	root, err := parser.Load(eng, nil, strings.NewReader(records), ",")
	require.NoError(t, err)
	return eng, root
}

// NamesBreadthFirst lists the names of root and its descendants in
// breadth-first order
func NamesBreadthFirst(root *engine.Node) []string {
	names := []string{}
	for node := range engine.BreadthFirst(root) {
		names = append(names, node.Name())
	}
	return names
}

// ExpectNames asserts the breadth-first order of names in the tree
func ExpectNames(t *testing.T, root *engine.Node, expected ...string) {
	t.Helper()
	if expected == nil {
		expected = []string{}
	}
	require.Equal(t, expected, NamesBreadthFirst(root), "Names do not match")
}

// ExpectDepths asserts that every node's cached depth equals its distance
// from root
func ExpectDepths(t *testing.T, root *engine.Node) {
	t.Helper()
	if root == nil {
		return
	}
	type entry struct {
		node  *engine.Node
		depth int
	}
	queue := []entry{{root, 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		require.Equal(t, current.depth, current.node.Depth(), "depth of %s", current.node.Name())
		for _, child := range current.node.Children() {
			queue = append(queue, entry{child, current.depth + 1})
		}
	}
}

// WriteRecords writes content to family.txt in dir and returns its path
func WriteRecords(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "family.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}
