package configfile

import (
	"errors"
	"fmt"

	"github.com/dbradf/epithet/internal/core/domain/alias"
	"github.com/dbradf/epithet/internal/core/domain/execution"
)

/*
aliasDoc is the raw file shape of one alias entry. The execution form fields
are mutually exclusive; Command is a pointer so an explicitly empty command
can be told apart from an absent one.
*/
type aliasDoc struct {
	Command    *string        `toml:"command" yaml:"command"`
	And        []string       `toml:"and" yaml:"and"`
	Or         []string       `toml:"or" yaml:"or"`
	Pipeline   []string       `toml:"pipeline" yaml:"pipeline"`
	SubAliases []subAliasDoc  `toml:"sub_aliases" yaml:"sub_aliases"`
	Expansions []expansionDoc `toml:"expansions" yaml:"expansions"`
}

type subAliasDoc struct {
	Name     string   `toml:"name" yaml:"name"`
	Command  *string  `toml:"command" yaml:"command"`
	And      []string `toml:"and" yaml:"and"`
	Or       []string `toml:"or" yaml:"or"`
	Pipeline []string `toml:"pipeline" yaml:"pipeline"`
}

type expansionDoc struct {
	Key   string `toml:"key" yaml:"key"`
	Value string `toml:"value" yaml:"value"`
}

// toAlias converts the raw document into the domain entity, validating the
// constraints the file shape cannot express.
func (d aliasDoc) toAlias() (alias.Alias, error) {
	exec, err := executionFromForms(d.Command, d.And, d.Or, d.Pipeline)
	if err != nil {
		return alias.Alias{}, err
	}

	entry := alias.Alias{Exec: exec}

	for _, sub := range d.SubAliases {
		if sub.Name == "" {
			return alias.Alias{}, errors.New("sub-alias is missing a name")
		}
		subExec, err := executionFromForms(sub.Command, sub.And, sub.Or, sub.Pipeline)
		if err != nil {
			return alias.Alias{}, fmt.Errorf("sub-alias %s: %w", sub.Name, err)
		}
		if subExec == nil {
			return alias.Alias{}, fmt.Errorf("sub-alias %s has no command, and, or, or pipeline", sub.Name)
		}
		entry.SubAliases = append(entry.SubAliases, alias.SubAlias{Name: sub.Name, Exec: subExec})
	}

	if len(d.Expansions) > 0 {
		entry.Expansions = make(map[string]string, len(d.Expansions))
		for _, exp := range d.Expansions {
			entry.Expansions[exp.Key] = exp.Value
		}
	}

	return entry, nil
}

// executionFromForms picks the one execution form present among the four
// mutually exclusive fields. All absent means nil, the no-op execution.
func executionFromForms(command *string, and, or, pipeline []string) (execution.Execution, error) {
	var forms []execution.Execution
	if command != nil {
		forms = append(forms, execution.Command(*command))
	}
	if and != nil {
		forms = append(forms, execution.And(and))
	}
	if or != nil {
		forms = append(forms, execution.Or(or))
	}
	if pipeline != nil {
		forms = append(forms, execution.Pipeline(pipeline))
	}

	switch len(forms) {
	case 0:
		return nil, nil
	case 1:
		return forms[0], nil
	default:
		return nil, errors.New("more than one of command, and, or, pipeline given")
	}
}
