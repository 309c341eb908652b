/*
Package aliasresolution dispatches alias invocations against the loaded
configuration.
*/
package aliasresolution

import (
	"fmt"

	"github.com/dbradf/epithet/internal/core/domain/alias"
	"github.com/dbradf/epithet/internal/core/ports"
)

type service struct {
	config *alias.Config
}

// NewService creates a new alias resolver over the loaded configuration.
// It panics if the configuration is nil.
func NewService(config *alias.Config) ports.AliasResolver {
	if config == nil {
		panic("config cannot be nil")
	}
	return &service{config: config}
}

/*
Resolve looks up name and applies one level of sub-alias dispatch: when the
first argument matches a sub-alias name, that sub-alias's execution is
selected and the matching argument consumed. Otherwise the alias's own
execution runs with the arguments untouched. Sub-aliases inherit the merged
expansion table of their parent.
*/
func (s *service) Resolve(name string, args []string) (ports.Resolution, error) {
	entry, ok := s.config.Find(name)
	if !ok {
		return ports.Resolution{}, fmt.Errorf("%w: %s", alias.ErrNotFound, name)
	}

	expansions := entry.MergedExpansions(s.config.GlobalExpansions)

	if len(args) > 0 {
		if sub, ok := entry.FindSub(args[0]); ok {
			return ports.Resolution{Exec: sub.Exec, Args: args[1:], Expansions: expansions}, nil
		}
	}

	return ports.Resolution{Exec: entry.Exec, Args: args, Expansions: expansions}, nil
}
