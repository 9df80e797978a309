// Package prefilter wraps github.com/coregx/ahocorasick into a
// candidate-offset finder for patterns that are a pure alternation of
// fixed literals, letting regex.Regexp skip ahead to plausible start
// offsets during a search instead of sliding one rune at a time.
//
// It has no equivalent in the original Python implementation: spec.md's
// ambient stack calls for wiring the teacher's Aho-Corasick dependency in
// wherever a pattern shape can use it, and a literal alternation is
// exactly that shape, mirroring how meta.Engine dispatches to
// ahocorasick.Automaton for large literal alternations in the teacher's
// compile.go/find.go.
package prefilter

import "github.com/coregx/ahocorasick"

// Candidate is one candidate match location found by the prefilter: one
// of the literal branches matched starting at Start and ending at End
// (exclusive), both measured in bytes of the haystack passed to
// Find/IsMatch.
type Candidate struct {
	Start int
	End   int
}

// Prefilter finds candidate byte offsets at which one of a fixed set of
// literals occurs in a haystack.
type Prefilter struct {
	automaton *ahocorasick.Automaton
	literals  []string
}

// Build constructs a Prefilter over literals. It returns an error if the
// underlying Aho-Corasick automaton cannot be built (e.g. an empty literal
// set); callers should treat that as "no prefilter available" and fall
// back to scanning every offset, not as a fatal condition.
func Build(literals []string) (*Prefilter, error) {
	builder := ahocorasick.NewBuilder()
	for _, lit := range literals {
		builder.AddPattern([]byte(lit))
	}
	automaton, err := builder.Build()
	if err != nil {
		return nil, err
	}
	return &Prefilter{automaton: automaton, literals: literals}, nil
}

// Find returns the first candidate at or after byte offset at in
// haystack, or nil if none of the literals occur there.
func (p *Prefilter) Find(haystack []byte, at int) *Candidate {
	m := p.automaton.Find(haystack, at)
	if m == nil {
		return nil
	}
	return &Candidate{Start: m.Start, End: m.End}
}

// IsMatch reports whether any literal occurs anywhere in haystack.
func (p *Prefilter) IsMatch(haystack []byte) bool {
	return p.automaton.IsMatch(haystack)
}

// Literals returns the fixed strings the prefilter was built from.
func (p *Prefilter) Literals() []string {
	return p.literals
}
