package engine

import "slices"

// Node is one named entity in the hierarchy.
// A node exclusively owns its children; the structure is always a tree.
type Node struct {
	name     string
	children []*Node
	depth    int // edges from the root as of the last structural change
	released bool
}

func newNode(name string) *Node {
	return &Node{
		name:     name,
		children: []*Node{},
	}
}

// Name returns the node's name
func (n *Node) Name() string {
	return n.name
}

// Depth returns the cached number of edges between the root and this node
func (n *Node) Depth() int {
	return n.depth
}

// ChildCount returns the number of immediate children
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Children returns the immediate children in insertion order.
// The returned slice is a copy; the nodes themselves are shared.
func (n *Node) Children() []*Node {
	return slices.Clone(n.children)
}

// ChildNames returns the names of the immediate children in insertion order
func (n *Node) ChildNames() []string {
	names := make([]string, 0, len(n.children))
	for _, child := range n.children {
		names = append(names, child.name)
	}
	return names
}

// IsLeaf reports whether the node has no children
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

func (n *Node) hasChild(name string) bool {
	for _, child := range n.children {
		if child.name == name {
			return true
		}
	}
	return false
}

// attach appends child as the last child of n and sets its depth.
func (n *Node) attach(child *Node) {
	child.depth = n.depth + 1
	n.children = append(n.children, child)
}
