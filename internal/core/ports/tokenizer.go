package ports

/*
Tokenizer defines an interface for splitting a command template or expansion
value into argument tokens.
*/
type Tokenizer interface {
	// Tokenize splits input on whitespace, honoring double-quote grouping
	// and backslash escaping. It never fails: malformed input (an
	// unterminated quote, a trailing escape) is tolerated and whatever has
	// accumulated becomes the final token.
	Tokenize(input string) []string
}
