// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Terminal detection
//   - Opening record input from files or standard input
package utils
