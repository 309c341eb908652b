/*
Package tokenization splits command templates and expansion values into
argument tokens.
*/
package tokenization

import (
	"strings"
	"unicode"

	"github.com/dbradf/epithet/internal/core/ports"
)

// Tokenizer implements the Tokenizer interface with a single left-to-right
// scan over the input.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() ports.Tokenizer {
	return &Tokenizer{}
}

/*
Tokenize splits input into tokens on unquoted whitespace. Double quotes group
text without appearing in the output, and a backslash makes the following
character literal, itself disappearing. Escapes work inside quotes, so an
embedded quote can be written as \".

Malformed input is tolerated rather than rejected: an unterminated quote runs
to the end of the string and a trailing backslash is dropped, the accumulated
text becoming the final token either way.
*/
func (t *Tokenizer) Tokenize(input string) []string {
	var tokens []string
	var current strings.Builder
	inQuotes := false
	inEscape := false

	for _, r := range input {
		switch {
		case inEscape:
			current.WriteRune(r)
			inEscape = false
		case r == '\\':
			inEscape = true
		case r == '"':
			inQuotes = !inQuotes
		case unicode.IsSpace(r) && !inQuotes:
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}
