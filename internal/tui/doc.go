// Package tui provides the terminal user interface for offspring.
//
// It handles:
//   - Terminal detection
//   - The interactive family tree browser (using bubbletea and lipgloss)
package tui
