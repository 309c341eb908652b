package ports

/*
SubstitutionEngine defines an interface for resolving a command template
against caller arguments and an expansion table, producing the final token
list to execute.
*/
type SubstitutionEngine interface {
	// Expand resolves @key arguments through expansions, tokenizes template,
	// splices positional {N} placeholders, and appends leftover arguments.
	Expand(template string, args []string, expansions map[string]string) []string
}
