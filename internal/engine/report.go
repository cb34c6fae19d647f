package engine

import (
	"fmt"
	"strings"

	"offspring.dev/offspring/internal/errors"
)

// Size returns the number of descendants of the named node, not counting the
// node itself. An empty name resolves to the root.
func Size(root *Node, name string) (int, error) {
	node, err := Find(root, name)
	if err != nil {
		return 0, err
	}

	size := 0
	for current := range BreadthFirst(node) {
		size += len(current.children)
	}
	return size, nil
}

// Height returns the cached depth of the named node: the number of edges
// between it and the current root. It is not the height of the subtree below it.
func Height(root *Node, name string) (int, error) {
	node, err := Find(root, name)
	if err != nil {
		return 0, err
	}
	return node.depth, nil
}

// Report returns one line per node below and including the named node, in
// breadth-first order, each naming that node's children.
//
// When the tree is empty or the name is unknown, a single explanatory line is
// returned together with the lookup error.
func Report(root *Node, name string) ([]string, error) {
	if root == nil {
		return []string{"Tree is empty."}, errors.ErrEmptyTree
	}
	if name == "" {
		name = root.name
	}

	node, err := Find(root, name)
	if err != nil {
		return []string{fmt.Sprintf("'%s' is not part of the family tree.", name)}, err
	}

	var lines []string
	for current := range BreadthFirst(node) {
		lines = append(lines, DescribeOffspring(current))
	}
	return lines, nil
}

// DescribeOffspring formats the "<name> had ..." sentence for a single node
func DescribeOffspring(n *Node) string {
	if len(n.children) == 0 {
		return n.name + " had no offspring."
	}
	return n.name + " had " + JoinNames(n.ChildNames()) + "."
}

// JoinNames joins names with commas, using "and" between the last two
func JoinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	}
	return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
}
