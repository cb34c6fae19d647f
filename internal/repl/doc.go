// Package repl implements the interactive offspring command loop.
//
// A Session owns the current root handle and the engine, reads one command
// per line, and prints the same messages the batch commands produce.
package repl
