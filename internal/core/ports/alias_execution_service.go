package ports

import "github.com/dbradf/epithet/internal/core/domain/execution"

/*
AliasExecutionService defines an interface for running an alias end to end:
resolution, substitution, and sequencing of the resulting child processes.
*/
type AliasExecutionService interface {
	// Run executes the alias registered under name with the caller's
	// arguments and returns the Outcome whose code the process should exit
	// with. A non-nil error reports a failure of the tool itself (unknown
	// alias, unsupported execution, a child that could not be spawned); a
	// child that ran and failed is a non-zero Outcome, not an error.
	Run(name string, args []string) (execution.Outcome, error)
}
