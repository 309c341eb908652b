package configfile

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/dbradf/epithet/internal/core/domain/alias"
)

const globalExpansionsKey = "global_expansions"

/*
decodeTOML parses a TOML configuration document. Every top-level table except
global_expansions is an alias named by its key, so the document is decoded in
two phases: first into raw primitives keyed by name, then each primitive into
its concrete shape. Unknown keys inside any table are rejected.
*/
func decodeTOML(data []byte) (*alias.Config, error) {
	var raw map[string]toml.Primitive
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return nil, err
	}

	cfg := &alias.Config{Aliases: make(map[string]alias.Alias, len(raw))}
	for key, primitive := range raw {
		if key == globalExpansionsKey {
			if err := md.PrimitiveDecode(primitive, &cfg.GlobalExpansions); err != nil {
				return nil, fmt.Errorf("%s: %w", globalExpansionsKey, err)
			}
			continue
		}

		var doc aliasDoc
		if err := md.PrimitiveDecode(primitive, &doc); err != nil {
			return nil, fmt.Errorf("alias %s: %w", key, err)
		}
		entry, err := doc.toAlias()
		if err != nil {
			return nil, fmt.Errorf("alias %s: %w", key, err)
		}
		cfg.Aliases[key] = entry
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown key %s", undecoded[0])
	}

	return cfg, nil
}
