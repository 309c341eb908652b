package cli

import (
	"fmt"

	"github.com/dbradf/epithet/internal/core/ports"
)

/*
RunAlias executes the named alias and converts its outcome into the error
contract main understands: nil for success, an *ExitError carrying the exit
code otherwise. Both invocation styles end up here, whether the alias name
arrived as argv[0] of an installed symlink or as the first argument of the
primary command.
*/
func RunAlias(executionService ports.AliasExecutionService, name string, args []string) error {
	if executionService == nil {
		return fmt.Errorf("alias execution service not initialized")
	}

	outcome, err := executionService.Run(name, args)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}
	if !outcome.Success() {
		return &ExitError{Code: outcome.Code}
	}
	return nil
}
