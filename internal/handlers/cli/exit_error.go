package cli

import "fmt"

/*
ExitError carries a specific process exit code from a command handler up to
main, which performs the one os.Exit for the whole program. A nil Err means
the code belongs to a child process that already reported its own failure,
so nothing further should be printed.
*/
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the wrapped error, if any.
func (e *ExitError) Unwrap() error {
	return e.Err
}
