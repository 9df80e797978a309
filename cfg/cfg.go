// Package cfg bridges a context-free grammar to package pdm via the
// classical one-state pushdown-automaton construction, grounded on
// automata/pdm/cfg.py's PDM.from_cfg — which that source leaves as an
// incomplete stub (it assembles a transitions map but never constructs or
// returns a PDM). This package completes the construction rather than
// reproducing the stub, and deliberately does not port cfg.py's
// grammar-normalization machinery (Chomsky/Greibach normal form,
// useless-symbol removal, nullable/chain-rule elimination): normalizing a
// grammar before translating it is out of scope, per spec.md's Non-goals.
package cfg

import (
	"errors"
	"fmt"

	"github.com/jmaarleveld/automata/pdm"
	"github.com/jmaarleveld/automata/symbol"
)

// ErrNoRules is returned by FromCFG when a grammar has no rules at all.
var ErrNoRules = errors.New("cfg: grammar has no rules")

// GrammarError reports a structural problem in a Grammar, such as a rule
// referencing a symbol outside the declared nonterminal/terminal sets.
type GrammarError struct {
	Message string
}

func (e *GrammarError) Error() string { return "cfg: " + e.Message }

// Rule is a single production Nonterminal -> Expansion. Expansion is a
// string over nonterminals and terminals; an empty Expansion is the
// epsilon production.
type Rule struct {
	Nonterminal rune
	Expansion   string
}

// Grammar is a context-free grammar: single-rune nonterminals and
// terminals (mirroring cfg.py's CFGBuilder.add_rule assertion that every
// nonterminal is exactly one character), a rule set, and a start symbol.
type Grammar struct {
	Nonterminals []rune
	Terminals    []rune
	Rules        []Rule
	Start        rune
}

func (g Grammar) validate() error {
	nonterminals := make(map[rune]struct{}, len(g.Nonterminals))
	for _, n := range g.Nonterminals {
		nonterminals[n] = struct{}{}
	}
	terminals := make(map[rune]struct{}, len(g.Terminals))
	for _, t := range g.Terminals {
		terminals[t] = struct{}{}
	}
	if _, ok := nonterminals[g.Start]; !ok {
		return &GrammarError{Message: fmt.Sprintf("start symbol %q is not a declared nonterminal", g.Start)}
	}
	if len(g.Rules) == 0 {
		return ErrNoRules
	}
	for _, r := range g.Rules {
		if _, ok := nonterminals[r.Nonterminal]; !ok {
			return &GrammarError{Message: fmt.Sprintf("rule left-hand side %q is not a declared nonterminal", r.Nonterminal)}
		}
		for _, sym := range r.Expansion {
			_, isNonterminal := nonterminals[sym]
			_, isTerminal := terminals[sym]
			if !isNonterminal && !isTerminal {
				return &GrammarError{Message: fmt.Sprintf("rule %q -> %q uses undeclared symbol %q", r.Nonterminal, r.Expansion, sym)}
			}
		}
	}
	return nil
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// FromCFG builds the pushdown machine recognizing g's language via the
// classical one-state construction: push the start symbol, then
// repeatedly either pop a stack-top nonterminal and push one of its rule
// expansions in reverse (so the expansion's leftmost symbol ends up on
// top), or pop a stack-top terminal while consuming the matching input
// symbol. The machine accepts once both the input and the stack are
// exhausted.
//
// The construction uses two states rather than cfg.py's single one: an
// init state whose only transition pushes the start symbol and moves to a
// loop state where every rule/terminal transition lives. A single
// self-looping state would leave the start-symbol push permanently
// enabled (its pop condition is epsilon, so it never becomes
// unavailable), letting the search push an unbounded number of spurious
// start symbols without ever terminating.
func FromCFG(g Grammar) (*pdm.PDM, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}

	b := pdm.NewBuilder()
	init := b.AddState()
	loop := b.AddState()
	b.SetStart(init)
	b.AddAccepting(loop)

	b.AddTransition(init, symbol.Epsilon, symbol.Epsilon, loop, string(g.Start))

	for _, r := range g.Rules {
		b.AddTransition(loop, symbol.Epsilon, symbol.Of(r.Nonterminal), loop, reverse(r.Expansion))
	}

	for _, t := range g.Terminals {
		b.AddTransition(loop, symbol.Of(t), symbol.Of(t), loop, "")
	}

	return b.Build()
}
