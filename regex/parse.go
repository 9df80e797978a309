package regex

// Warning is a non-fatal note surfaced while parsing a pattern — in this
// port, always an epsilon fill applied to a degenerate STAR or UNION.
// spec.md requires these never be returned as an error: parse_regex's
// warnings.warn calls in the original are advisory, not failures.
type Warning struct {
	Message string
}

// ParseResult is the syntax tree produced by parsing a pattern, together
// with any epsilon-fill warnings collected along the way.
type ParseResult struct {
	Tree     *Node
	Warnings []Warning
}

// parsePattern runs the full parse_regex pipeline: tokenize, epsilon-fill,
// postfix-bubble, then build the tree.
func parsePattern(pattern string, maxGroupDepth int) (*ParseResult, error) {
	runes := []rune(pattern)
	pos := 0
	tokens, err := tokenize(runes, &pos, 0, maxGroupDepth)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Pattern = pattern
		}
		return nil, err
	}
	tokens, warnings := applyEpsilonFill(tokens)
	recursiveToPostfix(tokens)
	tree, err := buildTree(tokens)
	if err != nil {
		if pe, ok := err.(*ParseError); ok {
			pe.Pattern = pattern
		}
		return nil, err
	}
	return &ParseResult{Tree: tree, Warnings: warnings}, nil
}
