package engine

import (
	"fmt"

	"offspring.dev/offspring/internal/errors"
)

// engineImpl is the default Engine implementation
type engineImpl struct {
	maxNodes int
	live     int
}

// NewEngine creates a new engine instance
func NewEngine(opts Options) Engine {
	return &engineImpl{maxNodes: opts.MaxNodes}
}

// LiveNodes returns the number of nodes created and not yet destroyed
func (e *engineImpl) LiveNodes() int {
	return e.live
}

// Create allocates a detached node with no children and depth 0
func (e *engineImpl) Create(name string) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: node name is empty", errors.ErrInvalidName)
	}
	if e.maxNodes > 0 && e.live >= e.maxNodes {
		return nil, errors.NewAllocationError(name, e.maxNodes)
	}
	e.live++
	return newNode(name), nil
}

// Destroy releases root and every node below it, children before parents.
// Destroying nil or an already destroyed tree is a no-op.
func (e *engineImpl) Destroy(root *Node) {
	if root == nil || root.released {
		return
	}

	// Reversed pre-order visits every node after all of its descendants.
	var order []*Node
	stack := []*Node{root}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, current)
		stack = append(stack, current.children...)
	}

	for i := len(order) - 1; i >= 0; i-- {
		node := order[i]
		node.children = nil
		node.name = ""
		node.released = true
		e.live--
	}
}

// AddChild finds the named parent and appends a new child to it, returning
// the possibly new root.
//
// On an empty tree the parent is created as the root first. When the parent
// is unknown but the current root is named childName, a new root named
// parentName adopts the whole tree. A failed call leaves the tree unchanged.
func (e *engineImpl) AddChild(root *Node, parentName, childName string) (*Node, error) {
	if parentName == "" {
		return root, fmt.Errorf("%w: parent name is empty", errors.ErrInvalidName)
	}

	createdRoot := false
	if root == nil {
		created, err := e.Create(parentName)
		if err != nil {
			return nil, err
		}
		root = created
		createdRoot = true
	}

	if childName == "" {
		if _, err := Find(root, parentName); err != nil {
			return root, err
		}
		return root, nil
	}

	parent, err := Find(root, parentName)
	if err == nil {
		if parent.hasChild(childName) {
			return root, errors.NewDuplicateChildError(parentName, childName)
		}
		child, err := e.Create(childName)
		if err != nil {
			if createdRoot {
				e.Destroy(root)
				return nil, err
			}
			return root, err
		}
		parent.attach(child)
		return root, nil
	}

	if root.name == childName {
		return e.reroot(root, parentName)
	}

	return root, errors.NewDanglingReferenceError(parentName, childName)
}

// reroot makes a new node named name the parent of oldRoot and shifts every
// existing node one level down.
func (e *engineImpl) reroot(oldRoot *Node, name string) (*Node, error) {
	newRoot, err := e.Create(name)
	if err != nil {
		return oldRoot, err
	}

	newRoot.children = append(newRoot.children, oldRoot)
	for node := range BreadthFirst(oldRoot) {
		node.depth++
	}

	return newRoot, nil
}

// Find returns the first node named name in breadth-first order
func (e *engineImpl) Find(root *Node, name string) (*Node, error) {
	return Find(root, name)
}

// Size returns the number of nodes strictly below the named node
func (e *engineImpl) Size(root *Node, name string) (int, error) {
	return Size(root, name)
}

// Height returns the cached depth of the named node
func (e *engineImpl) Height(root *Node, name string) (int, error) {
	return Height(root, name)
}

// Report describes the children of every node below the named node, breadth first
func (e *engineImpl) Report(root *Node, name string) ([]string, error) {
	return Report(root, name)
}
