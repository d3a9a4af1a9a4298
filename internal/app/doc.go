// Package app holds the process-level wiring shared by the ccopts binaries:
// configuration read from the environment and construction of the logger.
// It is decoupled from the pure formatting packages so they can be used
// and tested without any process state.
package app
