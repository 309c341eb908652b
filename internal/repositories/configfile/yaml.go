package configfile

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/dbradf/epithet/internal/core/domain/alias"
)

/*
decodeYAML parses a YAML configuration document with the same shape rules as
the TOML form: every top-level mapping except global_expansions is an alias
named by its key. Each entry is decoded through a yaml.Node so alias names
stay opaque while their bodies are checked strictly.
*/
func decodeYAML(data []byte) (*alias.Config, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	cfg := &alias.Config{Aliases: make(map[string]alias.Alias, len(raw))}
	for key, node := range raw {
		if key == globalExpansionsKey {
			if err := node.Decode(&cfg.GlobalExpansions); err != nil {
				return nil, fmt.Errorf("%s: %w", globalExpansionsKey, err)
			}
			continue
		}

		var doc aliasDoc
		if err := decodeNodeStrict(&node, &doc); err != nil {
			return nil, fmt.Errorf("alias %s: %w", key, err)
		}
		entry, err := doc.toAlias()
		if err != nil {
			return nil, fmt.Errorf("alias %s: %w", key, err)
		}
		cfg.Aliases[key] = entry
	}

	return cfg, nil
}

// decodeNodeStrict decodes node into out with unknown fields rejected, which
// plain node.Decode does not support.
func decodeNodeStrict(node *yaml.Node, out any) error {
	encoded, err := yaml.Marshal(node)
	if err != nil {
		return err
	}

	decoder := yaml.NewDecoder(bytes.NewReader(encoded))
	decoder.KnownFields(true)
	return decoder.Decode(out)
}
