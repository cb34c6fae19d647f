// Package errors provides sentinel errors and custom error types for the offspring application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNodeNotFound indicates that no node with the requested name is in the tree
	ErrNodeNotFound = errors.New("node not found")

	// ErrEmptyTree indicates that the tree has no root yet
	ErrEmptyTree = fmt.Errorf("tree is empty: %w", ErrNodeNotFound)

	// ErrDuplicateChild indicates that a parent already has a child with the same name
	ErrDuplicateChild = errors.New("duplicate child")

	// ErrDanglingReference indicates that neither name of an insertion is in the tree
	ErrDanglingReference = errors.New("dangling reference")

	// ErrAllocation indicates that the node budget is exhausted
	ErrAllocation = errors.New("node allocation failed")

	// ErrInvalidName indicates an empty node name
	ErrInvalidName = errors.New("invalid name")

	// ErrInvalidRecord indicates an input record that cannot be turned into relations
	ErrInvalidRecord = errors.New("invalid record")
)

// NodeNotFoundError represents an error when a name is not in the tree
type NodeNotFoundError struct {
	Name string
}

func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("%s is not part of the tree", e.Name)
}

// Is returns true if the target error is ErrNodeNotFound
func (e *NodeNotFoundError) Is(target error) bool {
	return target == ErrNodeNotFound
}

// NewNodeNotFoundError creates a new NodeNotFoundError
func NewNodeNotFoundError(name string) *NodeNotFoundError {
	return &NodeNotFoundError{Name: name}
}

// DuplicateChildError represents a rejected insertion of an already present child
type DuplicateChildError struct {
	Parent string
	Child  string
}

func (e *DuplicateChildError) Error() string {
	return fmt.Sprintf("%s already has a child named %s", e.Parent, e.Child)
}

// Is returns true if the target error is ErrDuplicateChild
func (e *DuplicateChildError) Is(target error) bool {
	return target == ErrDuplicateChild
}

// NewDuplicateChildError creates a new DuplicateChildError
func NewDuplicateChildError(parent, child string) *DuplicateChildError {
	return &DuplicateChildError{Parent: parent, Child: child}
}

// DanglingReferenceError represents an insertion where neither name is a tree member
type DanglingReferenceError struct {
	Parent string
	Child  string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("neither %s or %s is in the tree", e.Parent, e.Child)
}

// Is returns true if the target error is ErrDanglingReference
func (e *DanglingReferenceError) Is(target error) bool {
	return target == ErrDanglingReference
}

// NewDanglingReferenceError creates a new DanglingReferenceError
func NewDanglingReferenceError(parent, child string) *DanglingReferenceError {
	return &DanglingReferenceError{Parent: parent, Child: child}
}

// AllocationError represents a node creation refused by the node budget
type AllocationError struct {
	Name  string
	Limit int
}

func (e *AllocationError) Error() string {
	return fmt.Sprintf("cannot allocate node %s: limit of %d nodes reached", e.Name, e.Limit)
}

// Is returns true if the target error is ErrAllocation
func (e *AllocationError) Is(target error) bool {
	return target == ErrAllocation
}

// NewAllocationError creates a new AllocationError
func NewAllocationError(name string, limit int) *AllocationError {
	return &AllocationError{Name: name, Limit: limit}
}

// InvalidRecordError represents a malformed input record
type InvalidRecordError struct {
	Line    int
	Record  string
	Message string
}

func (e *InvalidRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: invalid record %q: %s", e.Line, e.Record, e.Message)
	}
	return fmt.Sprintf("invalid record %q: %s", e.Record, e.Message)
}

// Is returns true if the target error is ErrInvalidRecord
func (e *InvalidRecordError) Is(target error) bool {
	return target == ErrInvalidRecord
}

// NewInvalidRecordError creates a new InvalidRecordError
func NewInvalidRecordError(line int, record, message string) *InvalidRecordError {
	return &InvalidRecordError{
		Line:    line,
		Record:  record,
		Message: message,
	}
}
