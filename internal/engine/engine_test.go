package engine_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"offspring.dev/offspring/internal/engine"
	"offspring.dev/offspring/internal/errors"
	"offspring.dev/offspring/testhelpers"
)

// buildFamily returns Alice -> (Bob -> (Dave, Erin), Carol -> Frank)
func buildFamily(t *testing.T, eng engine.Engine) *engine.Node {
	t.Helper()
	var root *engine.Node
	var err error
	for _, pair := range [][2]string{
		{"Alice", "Bob"},
		{"Alice", "Carol"},
		{"Bob", "Dave"},
		{"Bob", "Erin"},
		{"Carol", "Frank"},
	} {
		root, err = eng.AddChild(root, pair[0], pair[1])
		require.NoError(t, err)
	}
	return root
}

func TestCreate(t *testing.T) {
	t.Run("creates detached leaf", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})

		node, err := eng.Create("Alice")
		require.NoError(t, err)
		require.Equal(t, "Alice", node.Name())
		require.Equal(t, 0, node.Depth())
		require.Equal(t, 0, node.ChildCount())
		require.NotNil(t, node.Children())
		require.Equal(t, 1, eng.LiveNodes())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})

		_, err := eng.Create("")
		require.ErrorIs(t, err, errors.ErrInvalidName)
		require.Equal(t, 0, eng.LiveNodes())
	})

	t.Run("fails when node budget is exhausted", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{MaxNodes: 1})

		_, err := eng.Create("Alice")
		require.NoError(t, err)

		_, err = eng.Create("Bob")
		require.ErrorIs(t, err, errors.ErrAllocation)

		var allocErr *errors.AllocationError
		require.ErrorAs(t, err, &allocErr)
		require.Equal(t, "Bob", allocErr.Name)
		require.Equal(t, 1, allocErr.Limit)
	})
}

func TestAddChild(t *testing.T) {
	t.Run("first insertion creates root and child", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})

		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)
		require.Equal(t, "Alice", root.Name())
		require.Equal(t, []string{"Bob"}, root.ChildNames())

		height, err := eng.Height(root, "Alice")
		require.NoError(t, err)
		require.Equal(t, 0, height)

		height, err = eng.Height(root, "Bob")
		require.NoError(t, err)
		require.Equal(t, 1, height)

		size, err := eng.Size(root, "Alice")
		require.NoError(t, err)
		require.Equal(t, 1, size)

		lines, err := eng.Report(root, "Alice")
		require.NoError(t, err)
		require.Equal(t, []string{"Alice had Bob.", "Bob had no offspring."}, lines)
	})

	t.Run("parent only on empty tree establishes root", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})

		root, err := eng.AddChild(nil, "Alice", "")
		require.NoError(t, err)
		require.Equal(t, "Alice", root.Name())
		require.True(t, root.IsLeaf())
	})

	t.Run("parent only with unknown parent is not found", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)

		same, err := eng.AddChild(root, "Zed", "")
		require.ErrorIs(t, err, errors.ErrNodeNotFound)
		require.Same(t, root, same)
	})

	t.Run("appends siblings in insertion order", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)

		root, err = eng.AddChild(root, "Alice", "Carol")
		require.NoError(t, err)
		require.Equal(t, []string{"Bob", "Carol"}, root.ChildNames())

		lines, err := eng.Report(root, "Alice")
		require.NoError(t, err)
		require.Equal(t, "Alice had Bob and Carol.", lines[0])
	})

	t.Run("rejects duplicate child and leaves tree unchanged", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root := buildFamily(t, eng)

		sizeBefore, err := eng.Size(root, "")
		require.NoError(t, err)
		reportBefore, err := eng.Report(root, "")
		require.NoError(t, err)
		liveBefore := eng.LiveNodes()

		same, err := eng.AddChild(root, "Bob", "Dave")
		require.ErrorIs(t, err, errors.ErrDuplicateChild)
		require.Same(t, root, same)

		var dupErr *errors.DuplicateChildError
		require.ErrorAs(t, err, &dupErr)
		require.Equal(t, "Bob", dupErr.Parent)
		require.Equal(t, "Dave", dupErr.Child)

		sizeAfter, err := eng.Size(root, "")
		require.NoError(t, err)
		reportAfter, err := eng.Report(root, "")
		require.NoError(t, err)
		require.Equal(t, sizeBefore, sizeAfter)
		require.Equal(t, reportBefore, reportAfter)
		require.Equal(t, liveBefore, eng.LiveNodes())
	})

	t.Run("same child name under different parents is allowed", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root := buildFamily(t, eng)

		root, err := eng.AddChild(root, "Carol", "Dave")
		require.NoError(t, err)
		require.Equal(t, []string{"Frank", "Dave"}, mustFind(t, root, "Carol").ChildNames())
	})

	t.Run("rejects dangling reference", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)
		reportBefore, err := eng.Report(root, "")
		require.NoError(t, err)

		same, err := eng.AddChild(root, "X", "Y")
		require.ErrorIs(t, err, errors.ErrDanglingReference)
		require.Same(t, root, same)

		reportAfter, err := eng.Report(root, "")
		require.NoError(t, err)
		require.Equal(t, reportBefore, reportAfter)
		require.Equal(t, 2, eng.LiveNodes())
	})

	t.Run("unknown parent with non-root child is dangling", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root := buildFamily(t, eng)

		_, err := eng.AddChild(root, "Zed", "Bob")
		require.ErrorIs(t, err, errors.ErrDanglingReference)
	})

	t.Run("rejects empty parent name", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})

		root, err := eng.AddChild(nil, "", "Bob")
		require.ErrorIs(t, err, errors.ErrInvalidName)
		require.Nil(t, root)
	})

	t.Run("allocation failure leaves tree unchanged", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{MaxNodes: 2})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)

		same, err := eng.AddChild(root, "Alice", "Carol")
		require.ErrorIs(t, err, errors.ErrAllocation)
		require.Same(t, root, same)
		require.Equal(t, []string{"Bob"}, root.ChildNames())
	})

	t.Run("allocation failure on first insertion releases new root", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{MaxNodes: 1})

		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.ErrorIs(t, err, errors.ErrAllocation)
		require.Nil(t, root)
		require.Equal(t, 0, eng.LiveNodes())
	})
}

func TestAddChildReroot(t *testing.T) {
	t.Run("declaring a parent of the root re-roots the tree", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)

		before, err := eng.Height(root, "Bob")
		require.NoError(t, err)
		require.Equal(t, 1, before)

		oldRoot := root
		root, err = eng.AddChild(root, "Eve", "Alice")
		require.NoError(t, err)
		require.Equal(t, "Eve", root.Name())
		require.Equal(t, 0, root.Depth())
		require.Len(t, root.Children(), 1)
		require.Same(t, oldRoot, root.Children()[0])

		after, err := eng.Height(root, "Bob")
		require.NoError(t, err)
		require.Equal(t, 2, after)
	})

	t.Run("preserves identity, names and children of every node", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root := buildFamily(t, eng)

		type snapshot struct {
			node     *engine.Node
			name     string
			depth    int
			children []string
		}
		var before []snapshot
		for node := range engine.BreadthFirst(root) {
			before = append(before, snapshot{node, node.Name(), node.Depth(), node.ChildNames()})
		}

		root, err := eng.AddChild(root, "Eve", "Alice")
		require.NoError(t, err)

		for _, snap := range before {
			found, err := eng.Find(root, snap.name)
			require.NoError(t, err)
			require.Same(t, snap.node, found)
			require.Equal(t, snap.children, found.ChildNames())
			require.Equal(t, snap.depth+1, found.Depth())
		}

		size, err := eng.Size(root, "")
		require.NoError(t, err)
		require.Equal(t, len(before), size)

		testhelpers.ExpectNames(t, root, "Eve", "Alice", "Bob", "Carol", "Dave", "Erin", "Frank")
		testhelpers.ExpectDepths(t, root)
	})

	t.Run("repeated re-rooting keeps shifting depths", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)

		root, err = eng.AddChild(root, "Eve", "Alice")
		require.NoError(t, err)
		root, err = eng.AddChild(root, "Grace", "Eve")
		require.NoError(t, err)

		require.Equal(t, "Grace", root.Name())
		for name, want := range map[string]int{"Grace": 0, "Eve": 1, "Alice": 2, "Bob": 3} {
			got, err := eng.Height(root, name)
			require.NoError(t, err)
			require.Equal(t, want, got, name)
		}
	})

	t.Run("children added after re-root get correct depth", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)
		root, err = eng.AddChild(root, "Eve", "Alice")
		require.NoError(t, err)

		root, err = eng.AddChild(root, "Bob", "Henry")
		require.NoError(t, err)

		height, err := eng.Height(root, "Henry")
		require.NoError(t, err)
		require.Equal(t, 3, height)
	})

	t.Run("re-root allocation failure keeps old root", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{MaxNodes: 2})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)

		same, err := eng.AddChild(root, "Eve", "Alice")
		require.ErrorIs(t, err, errors.ErrAllocation)
		require.Same(t, root, same)
		require.Equal(t, 1, mustFind(t, root, "Bob").Depth())
	})
}

func TestDestroy(t *testing.T) {
	t.Run("releases every node", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root := buildFamily(t, eng)
		require.Equal(t, 6, eng.LiveNodes())

		eng.Destroy(root)
		require.Equal(t, 0, eng.LiveNodes())
	})

	t.Run("nil and repeated destroy are no-ops", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		root := buildFamily(t, eng)

		eng.Destroy(nil)
		require.Equal(t, 6, eng.LiveNodes())

		eng.Destroy(root)
		eng.Destroy(root)
		require.Equal(t, 0, eng.LiveNodes())
	})

	t.Run("rebuilding after destroy behaves like a new tree", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})
		fresh := engine.NewEngine(engine.Options{})

		root := buildFamily(t, eng)
		eng.Destroy(root)
		root = nil

		root, err := eng.AddChild(root, "Alice", "Bob")
		require.NoError(t, err)
		want, err := fresh.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)

		got, err := eng.Report(root, "")
		require.NoError(t, err)
		expected, err := fresh.Report(want, "")
		require.NoError(t, err)
		require.Equal(t, expected, got)
		require.Equal(t, fresh.LiveNodes(), eng.LiveNodes())
	})

	t.Run("returns nodes to the budget", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{MaxNodes: 2})
		root, err := eng.AddChild(nil, "Alice", "Bob")
		require.NoError(t, err)

		eng.Destroy(root)

		_, err = eng.AddChild(nil, "Carol", "Dave")
		require.NoError(t, err)
	})

	t.Run("handles very deep trees", func(t *testing.T) {
		eng := engine.NewEngine(engine.Options{})

		var root *engine.Node
		var err error
		for i := 1; i < 5000; i++ {
			root, err = eng.AddChild(root, "n"+strconv.Itoa(i-1), "n"+strconv.Itoa(i))
			require.NoError(t, err)
		}
		require.Equal(t, 5000, eng.LiveNodes())

		height, err := eng.Height(root, "n4999")
		require.NoError(t, err)
		require.Equal(t, 4999, height)

		eng.Destroy(root)
		require.Equal(t, 0, eng.LiveNodes())
	})
}

func mustFind(t *testing.T, root *engine.Node, name string) *engine.Node {
	t.Helper()
	node, err := engine.Find(root, name)
	require.NoError(t, err)
	return node
}
