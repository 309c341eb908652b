/*
Package substitution resolves command templates into concrete token lists,
applying named @key expansions and positional {N} placeholders.
*/
package substitution

import (
	"strconv"
	"strings"

	"github.com/dbradf/epithet/internal/core/ports"
)

// Engine implements the SubstitutionEngine interface.
type Engine struct {
	tokenizer ports.Tokenizer
}

// NewEngine creates a new substitution engine.
// It panics if the tokenizer is nil.
func NewEngine(tokenizer ports.Tokenizer) ports.SubstitutionEngine {
	if tokenizer == nil {
		panic("tokenizer cannot be nil")
	}
	return &Engine{tokenizer: tokenizer}
}

/*
Expand produces the final token list for one command template.

Caller arguments are resolved first: an argument of the form @key becomes the
tokenized value of that key in expansions, while an unknown key leaves the
argument untouched. Each original argument keeps its identity as one group of
tokens through this pass.

The template is then tokenized, and every token of the exact shape {N} naming
an argument position is replaced in place by that argument's group. Groups
that no placeholder consumed are appended at the end, in caller order.
*/
func (e *Engine) Expand(template string, args []string, expansions map[string]string) []string {
	resolved := e.resolveArgs(args, expansions)

	consumed := make([]bool, len(resolved))
	var out []string
	for _, token := range e.tokenizer.Tokenize(template) {
		if n, ok := placeholderIndex(token); ok && n < len(resolved) {
			out = append(out, resolved[n]...)
			consumed[n] = true
			continue
		}
		out = append(out, token)
	}

	for i, group := range resolved {
		if !consumed[i] {
			out = append(out, group...)
		}
	}

	return out
}

// resolveArgs applies the @key pre-pass, keeping one token group per caller
// argument so positional placeholders stay anchored to argument positions.
func (e *Engine) resolveArgs(args []string, expansions map[string]string) [][]string {
	resolved := make([][]string, len(args))
	for i, arg := range args {
		if key, ok := strings.CutPrefix(arg, "@"); ok {
			if value, found := expansions[key]; found {
				resolved[i] = e.tokenizer.Tokenize(value)
				continue
			}
		}
		resolved[i] = []string{arg}
	}
	return resolved
}

// placeholderIndex reports whether token has the exact shape {N} for a
// non-negative integer N.
func placeholderIndex(token string) (int, bool) {
	if len(token) < 3 || token[0] != '{' || token[len(token)-1] != '}' {
		return 0, false
	}
	n, err := strconv.Atoi(token[1 : len(token)-1])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
