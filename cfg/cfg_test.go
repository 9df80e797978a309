package cfg

import "testing"

func balancedParensGrammar() Grammar {
	return Grammar{
		Nonterminals: []rune{'S'},
		Terminals:    []rune{'a', 'b'},
		Rules: []Rule{
			{Nonterminal: 'S', Expansion: "aSb"},
			{Nonterminal: 'S', Expansion: ""},
		},
		Start: 'S',
	}
}

func TestFromCFGBalancedParens(t *testing.T) {
	m, err := FromCFG(balancedParensGrammar())
	if err != nil {
		t.Fatalf("FromCFG: %v", err)
	}
	tests := []struct {
		word string
		want bool
	}{
		{"", true},
		{"ab", true},
		{"aabb", true},
		{"aaabbb", true},
		{"a", false},
		{"b", false},
		{"ba", false},
		{"abab", false},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestFromCFGAlternation(t *testing.T) {
	// S -> a | b, a tiny grammar for a two-word language.
	g := Grammar{
		Nonterminals: []rune{'S'},
		Terminals:    []rune{'a', 'b'},
		Rules: []Rule{
			{Nonterminal: 'S', Expansion: "a"},
			{Nonterminal: 'S', Expansion: "b"},
		},
		Start: 'S',
	}
	m, err := FromCFG(g)
	if err != nil {
		t.Fatalf("FromCFG: %v", err)
	}
	if !m.Run("a") || !m.Run("b") {
		t.Error("expected both 'a' and 'b' to be accepted")
	}
	if m.Run("") || m.Run("ab") || m.Run("c") {
		t.Error("expected '', 'ab', and 'c' to be rejected")
	}
}

func TestFromCFGRejectsUndeclaredStart(t *testing.T) {
	g := Grammar{
		Nonterminals: []rune{'S'},
		Terminals:    []rune{'a'},
		Rules:        []Rule{{Nonterminal: 'S', Expansion: "a"}},
		Start:        'X',
	}
	if _, err := FromCFG(g); err == nil {
		t.Error("expected an error for an undeclared start symbol")
	}
}

func TestFromCFGRejectsUndeclaredSymbolInExpansion(t *testing.T) {
	g := Grammar{
		Nonterminals: []rune{'S'},
		Terminals:    []rune{'a'},
		Rules:        []Rule{{Nonterminal: 'S', Expansion: "ac"}},
		Start:        'S',
	}
	if _, err := FromCFG(g); err == nil {
		t.Error("expected an error for a rule referencing an undeclared symbol")
	}
}

func TestFromCFGRejectsNoRules(t *testing.T) {
	g := Grammar{Nonterminals: []rune{'S'}, Start: 'S'}
	if _, err := FromCFG(g); err == nil {
		t.Error("expected an error for a grammar with no rules")
	}
}
