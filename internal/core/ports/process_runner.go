package ports

import "github.com/dbradf/epithet/internal/core/domain/execution"

/*
ProcessRunner defines an interface for spawning a single child process from a
resolved token list and waiting for it to terminate.
*/
type ProcessRunner interface {
	// Run spawns tokens[0] with tokens[1:] as its argument vector and blocks
	// until the child terminates. tokens must be non-empty. A child that
	// could not be started at all fails with *execution.SpawnError; a child
	// that ran and exited non-zero is a Status, not an error.
	Run(tokens []string) (execution.Status, error)
}
