package engine

import (
	"iter"

	"offspring.dev/offspring/internal/errors"
)

// BreadthFirst returns an iterator that yields every node below and including
// root in breadth-first order, children left to right.
// Each call starts a fresh traversal. Breaking out of the range loop releases
// the queue.
func BreadthFirst(root *Node) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if root == nil {
			return
		}
		queue := []*Node{root}
		for len(queue) > 0 {
			current := queue[0]
			queue[0] = nil
			queue = queue[1:]

			if !yield(current) {
				return
			}
			queue = append(queue, current.children...)
		}
	}
}

// Find returns the first node named name in breadth-first order.
// An empty name resolves to root itself. Matching is exact and case-sensitive.
func Find(root *Node, name string) (*Node, error) {
	if root == nil {
		return nil, errors.ErrEmptyTree
	}
	if name == "" {
		return root, nil
	}
	for node := range BreadthFirst(root) {
		if node.name == name {
			return node, nil
		}
	}
	return nil, errors.NewNodeNotFoundError(name)
}
