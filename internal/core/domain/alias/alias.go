/*
Package alias defines the core domain entities for the loaded alias
configuration.
*/
package alias

import (
	"errors"
	"sort"

	"github.com/dbradf/epithet/internal/core/domain/execution"
)

// ErrNotFound reports a lookup of an alias name the configuration does not
// define.
var ErrNotFound = errors.New("alias not found")

/*
Config is the fully loaded alias configuration: every named alias plus the
configuration-wide expansion table. It is read once at process start and held
read-only for the duration of a single invocation.
*/
type Config struct {
	GlobalExpansions map[string]string
	Aliases          map[string]Alias
}

// Find returns the alias registered under name.
func (c *Config) Find(name string) (Alias, bool) {
	entry, ok := c.Aliases[name]
	return entry, ok
}

// Names returns every alias name in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Aliases))
	for name := range c.Aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*
Alias is a single named entry. It carries at most one direct execution (nil
means the alias is dispatch-only), an ordered list of sub-aliases matched
against the first invocation argument, and an optional local expansion table
that overrides the global one key by key.
*/
type Alias struct {
	Exec       execution.Execution
	SubAliases []SubAlias
	Expansions map[string]string
}

// FindSub returns the first sub-alias whose name equals arg, honoring
// declaration order when names are duplicated.
func (a Alias) FindSub(arg string) (SubAlias, bool) {
	for _, sub := range a.SubAliases {
		if sub.Name == arg {
			return sub, true
		}
	}
	return SubAlias{}, false
}

// MergedExpansions combines the global expansion table with the alias-local
// one, alias-local keys winning on collision. The result is a fresh map; the
// inputs are never mutated.
func (a Alias) MergedExpansions(global map[string]string) map[string]string {
	merged := make(map[string]string, len(global)+len(a.Expansions))
	for key, value := range global {
		merged[key] = value
	}
	for key, value := range a.Expansions {
		merged[key] = value
	}
	return merged
}

// SubAlias is a named, nested alternative reachable only when the first
// remaining argument matches its name exactly.
type SubAlias struct {
	Name string
	Exec execution.Execution
}
