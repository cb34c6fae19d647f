// Package engine manages an in-memory hierarchy of named people.
//
// It is the core of offspring, responsible for:
//   - Creating and destroying nodes and whole trees
//   - Breadth-first enumeration and lookup by name
//   - Inserting children under a named parent, including re-rooting the
//     tree when a new ancestor of the current root is declared
//   - Reporting subtree size, cached depth and breadth-first descriptions
//
// The engine performs no I/O. Callers hold a handle to the current root and
// must always replace it with the root returned by a mutating call.
package engine
