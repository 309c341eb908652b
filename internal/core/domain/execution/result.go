package execution

import "fmt"

/*
Status is the termination status of one invoked child process. Signaled marks
a child killed by a signal, for which no exit code exists.
*/
type Status struct {
	Code     int
	Signaled bool
}

// Success reports whether the child exited normally with code zero.
func (s Status) Success() bool {
	return !s.Signaled && s.Code == 0
}

// ExitCode returns the code to propagate for this status, substituting 1
// when the child did not exit normally.
func (s Status) ExitCode() int {
	if s.Signaled || s.Code < 0 {
		return 1
	}
	return s.Code
}

/*
Outcome is the aggregated result of running an alias's full execution
sequence. The process exits with Code exactly once, at the top level.
*/
type Outcome struct {
	Code int
}

// Success reports whether the whole sequence succeeded.
func (o Outcome) Success() bool {
	return o.Code == 0
}

/*
SpawnError reports a child process that could not be started at all, as
opposed to one that started and exited non-zero.
*/
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to execute command %q: %v", e.Command, e.Err)
}

// Unwrap returns the underlying spawn failure.
func (e *SpawnError) Unwrap() error {
	return e.Err
}
