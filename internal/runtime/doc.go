// Package runtime provides the execution context shared by offspring commands.
//
// The Context type bundles the engine, the logger and the resolved user
// configuration, so commands don't need to pass them individually.
package runtime
