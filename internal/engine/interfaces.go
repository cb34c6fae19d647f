package engine

// TreeReader provides read-only queries against a tree handle
type TreeReader interface {
	Find(root *Node, name string) (*Node, error)
	Size(root *Node, name string) (int, error)
	Height(root *Node, name string) (int, error)
	Report(root *Node, name string) ([]string, error)
}

// TreeWriter provides the operations that create, grow and release trees.
// Every call that may change the root returns the root the caller must use from then on.
type TreeWriter interface {
	Create(name string) (*Node, error)
	Destroy(root *Node)
	AddChild(root *Node, parentName, childName string) (*Node, error)
}

// Engine is the core interface for tree management.
// It is not safe for concurrent use.
type Engine interface {
	TreeReader
	TreeWriter

	// LiveNodes returns the number of nodes created and not yet destroyed
	LiveNodes() int
}
