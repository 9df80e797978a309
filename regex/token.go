package regex

import "github.com/jmaarleveld/automata/symbol"

type tokenKind int

const (
	tokSymbol tokenKind = iota
	tokStar
	tokUnion
	tokGroup
)

// token is one lexical unit of the pattern, mirroring simple_regex_parser's
// Token/TokenType. A tokGroup token carries its parenthesized contents as a
// nested token slice rather than raw text, already tokenized one level down.
type token struct {
	kind  tokenKind
	sym   symbol.Symbol
	group []token
}

func epsilonToken() token {
	return token{kind: tokSymbol, sym: symbol.Epsilon}
}

// tokenize lexes runes[*pos:] into a flat token slice, consuming a matching
// close-paren when recursive is true (a nested group) and erroring on an
// unmatched one otherwise. It mirrors _tokenize, including the one-rune
// lookahead escape handling for '\\', with one deliberate difference: the
// original lets a trailing backslash escape out as an uncaught
// StopIteration; this port reports it as ErrTrailingEscape instead of
// letting the zero value of a missing rune stand in for "nothing to
// escape".
func tokenize(runes []rune, pos *int, depth, maxDepth int) ([]token, error) {
	var tokens []token
	for {
		if *pos >= len(runes) {
			if depth > 0 {
				return nil, &ParseError{Pos: *pos, Err: ErrUnterminatedGroup}
			}
			return tokens, nil
		}
		c := runes[*pos]
		*pos++
		switch c {
		case '*':
			tokens = append(tokens, token{kind: tokStar})
		case '(':
			if depth+1 > maxDepth {
				return nil, &ParseError{Pos: *pos - 1, Err: ErrMaxGroupDepthExceeded}
			}
			sub, err := tokenize(runes, pos, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token{kind: tokGroup, group: sub})
		case ')':
			if depth == 0 {
				return nil, &ParseError{Pos: *pos - 1, Err: ErrUnbalancedParens}
			}
			return tokens, nil
		case '|':
			tokens = append(tokens, token{kind: tokUnion})
		case '\\':
			if *pos >= len(runes) {
				return nil, &ParseError{Pos: *pos, Err: ErrTrailingEscape}
			}
			esc := runes[*pos]
			*pos++
			tokens = append(tokens, token{kind: tokSymbol, sym: symbol.Of(esc)})
		default:
			tokens = append(tokens, token{kind: tokSymbol, sym: symbol.Of(c)})
		}
	}
}

// applyEpsilonFill inserts an explicit empty-string token wherever a
// degenerate STAR or UNION would otherwise have no left operand, mirroring
// _apply_epsilon_fill: a leading '*' or '|', two adjacent '|'s, and a
// trailing '|' (or an empty pattern) all fill in an epsilon leaf so the
// postfix/tree stages never see an operator short an operand. Each fill is
// reported as a non-fatal Warning rather than the original's warnings.warn.
func applyEpsilonFill(tokens []token) ([]token, []Warning) {
	var warnings []Warning
	out := make([]token, 0, len(tokens))
	for i, tok := range tokens {
		switch tok.kind {
		case tokGroup:
			filled, w := applyEpsilonFill(tok.group)
			warnings = append(warnings, w...)
			tok.group = filled
			out = append(out, tok)
		case tokStar:
			if i == 0 || tokens[i-1].kind == tokUnion {
				out = append(out, epsilonToken())
				warnings = append(warnings, Warning{Message: "epsilon fill applied before a leading or post-union kleene star"})
			}
			out = append(out, tok)
		case tokUnion:
			if i == 0 || tokens[i-1].kind == tokUnion {
				out = append(out, epsilonToken())
				warnings = append(warnings, Warning{Message: "epsilon fill applied before a leading or doubled union"})
			}
			out = append(out, tok)
		default:
			out = append(out, tok)
		}
	}
	if len(out) == 0 || out[len(out)-1].kind == tokUnion {
		warnings = append(warnings, Warning{Message: "trailing epsilon fill applied"})
		out = append(out, epsilonToken())
	}
	return out, warnings
}

// toPostfix bubbles every UNION token rightward past its right-hand
// operand and any STAR tokens immediately following that operand, so a
// later stack-based tree build sees STAR bind tighter than UNION without
// either stage needing an explicit precedence table. Mirrors _to_postfix.
func toPostfix(tokens []token) {
	n := len(tokens)
	for index := 0; index < n; index++ {
		if tokens[index].kind != tokUnion {
			continue
		}
		original := index
		index++
		for index+1 < n && tokens[index+1].kind == tokStar {
			index++
		}
		for i := original; i < index; i++ {
			tokens[i], tokens[i+1] = tokens[i+1], tokens[i]
		}
	}
}

// recursiveToPostfix bubbles tokens at this level, then recurses into every
// group's own payload, mirroring _recursive_to_postfix.
func recursiveToPostfix(tokens []token) {
	toPostfix(tokens)
	for i := range tokens {
		if tokens[i].kind == tokGroup {
			recursiveToPostfix(tokens[i].group)
		}
	}
}
