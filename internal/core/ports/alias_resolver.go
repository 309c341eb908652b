package ports

import "github.com/dbradf/epithet/internal/core/domain/execution"

/*
Resolution is the product of resolving an alias name against the loaded
configuration: the execution to run, the arguments remaining after sub-alias
dispatch, and the expansion table in effect for them.
*/
type Resolution struct {
	Exec       execution.Execution
	Args       []string
	Expansions map[string]string
}

/*
AliasResolver defines an interface for dispatching an alias name plus raw
arguments to the execution they select.
*/
type AliasResolver interface {
	// Resolve looks up name and applies one level of sub-alias dispatch on
	// the first argument. A nil Resolution.Exec means the alias resolves to
	// nothing; an unknown name fails with alias.ErrNotFound.
	Resolve(name string, args []string) (Resolution, error)
}
