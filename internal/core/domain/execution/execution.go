/*
Package execution defines the closed set of execution forms an alias can
carry, plus the result types produced by running them.
*/
package execution

import (
	"errors"
	"fmt"
	"strings"
)

// ErrPipelineUnsupported reports an attempt to run a pipeline execution,
// which is declared in configuration but not implemented yet.
var ErrPipelineUnsupported = errors.New("pipeline executions are not supported yet")

/*
Execution is one of the command forms an alias or sub-alias can carry. The
concrete types are Command, And, Or, and Pipeline; a nil Execution means the
alias resolves to nothing and invoking it is a successful no-op.
*/
type Execution interface {
	fmt.Stringer
	sealed()
}

// Command is a single command template.
type Command string

// And is an ordered template sequence where every item must succeed; the
// first failure stops the sequence.
type And []string

// Or is an ordered template sequence run until the first item succeeds.
type Or []string

// Pipeline is an ordered template sequence meant to be connected
// stdout-to-stdin. Running one fails with ErrPipelineUnsupported.
type Pipeline []string

func (Command) sealed()  {}
func (And) sealed()      {}
func (Or) sealed()       {}
func (Pipeline) sealed() {}

// String renders the template as written in the configuration.
func (c Command) String() string { return string(c) }

// String renders the sequence with shell-style && separators.
func (a And) String() string { return strings.Join(a, " && ") }

// String renders the sequence with shell-style || separators.
func (o Or) String() string { return strings.Join(o, " || ") }

// String renders the sequence with shell-style pipe separators.
func (p Pipeline) String() string { return strings.Join(p, " | ") }
