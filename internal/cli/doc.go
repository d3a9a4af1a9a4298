// Package cli runs the ccopts commands against a list of positional
// arguments and handles process-level concerns like exit codes. None of the
// commands parse flags: every argument is passed through as a token.
package cli
