package osprocess

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dbradf/epithet/internal/core/domain/execution"
	"github.com/dbradf/epithet/internal/core/ports"
)

// OSProcessRunner implements the ProcessRunner interface by spawning real
// child processes with inherited standard streams.
type OSProcessRunner struct{}

// NewOSProcessRunner creates a new OSProcessRunner.
func NewOSProcessRunner() ports.ProcessRunner {
	return &OSProcessRunner{}
}

// Run spawns tokens[0] with the remaining tokens as its argument vector and
// blocks until the child terminates. No shell sits in between: the token
// list is the argv. The executable name goes through the system's normal
// PATH lookup after a leading ~ is expanded to the user's home directory,
// and the child shares the parent's stdin, stdout, and stderr.
func (r *OSProcessRunner) Run(tokens []string) (execution.Status, error) {
	cmd := exec.Command(expandTilde(tokens[0]), tokens[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Exited() {
				return execution.Status{Code: exitErr.ExitCode()}, nil
			}
			// Killed by a signal; ExitCode reports -1 here.
			return execution.Status{Code: exitErr.ExitCode(), Signaled: true}, nil
		}
		return execution.Status{}, &execution.SpawnError{Command: tokens[0], Err: err}
	}

	return execution.Status{}, nil
}

// expandTilde resolves a leading home shorthand (~ alone or ~/...) to the
// user's home directory. Anything else, including ~user forms, passes
// through untouched.
func expandTilde(name string) string {
	if name != "~" && !strings.HasPrefix(name, "~/") {
		return name
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return name
	}
	if name == "~" {
		return home
	}
	return filepath.Join(home, name[2:])
}
