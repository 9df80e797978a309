package pdm

import (
	"github.com/jmaarleveld/automata/internal/frozenmap"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

func unionAlphabet(a, b map[symbol.Symbol]struct{}) map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{}, len(a)+len(b))
	for k := range a {
		out[k] = struct{}{}
	}
	for k := range b {
		out[k] = struct{}{}
	}
	return out
}

func mergedTransitions(machines ...*PDM) *frozenmap.MultiMapBuilder[Key, Target] {
	builder := frozenmap.NewMultiMapBuilder[Key, Target]()
	for _, m := range machines {
		m.transitions.Range(func(key Key, targets []Target) {
			for _, t := range targets {
				builder.Add(key, t)
			}
		})
	}
	return builder
}

// Concat builds the pushdown machine recognizing the language of p
// followed by the language of other, mirroring PDM.concat: p and other
// are each put in normal form, their transition relations merged, and an
// epsilon edge added from p's sole accepting state to other's start.
func (p *PDM) Concat(other *PDM) *PDM {
	a := p.ToNormalForm()
	b := other.ToNormalForm()
	builder := mergedTransitions(a, b)
	addEpsilonTransition(builder, firstOf(a.accepting), b.start)

	states := make(map[state.ID]struct{}, len(a.states)+len(b.states))
	for s := range a.states {
		states[s] = struct{}{}
	}
	for s := range b.states {
		states[s] = struct{}{}
	}
	return newRaw(states, unionAlphabet(a.alphabet, b.alphabet), unionAlphabet(a.stackAlphabet, b.stackAlphabet), builder.Freeze(), a.start, map[state.ID]struct{}{firstOf(b.accepting): {}})
}

// Union builds the pushdown machine recognizing the language of p or the
// language of other, mirroring PDM.union.
//
// This corrects a bug in the original: its new state set is built as
// `a.states | b.start | {start, accept}`, unioning a state set with a
// single State value (b.start) rather than b's whole state set
// (b.states) — the right-hand operand of that union needed to be a set of
// states, as every other operand in the expression is. This port unions
// a.states, b.states, and {start, accept}.
func (p *PDM) Union(other *PDM) *PDM {
	a := p.ToNormalForm()
	b := other.ToNormalForm()
	builder := mergedTransitions(a, b)

	start := state.New()
	accept := state.New()
	addEpsilonTransition(builder, start, a.start)
	addEpsilonTransition(builder, start, b.start)
	for s := range a.accepting {
		addEpsilonTransition(builder, s, accept)
	}
	for s := range b.accepting {
		addEpsilonTransition(builder, s, accept)
	}

	states := make(map[state.ID]struct{}, len(a.states)+len(b.states)+2)
	for s := range a.states {
		states[s] = struct{}{}
	}
	for s := range b.states {
		states[s] = struct{}{}
	}
	states[start] = struct{}{}
	states[accept] = struct{}{}

	return newRaw(states, unionAlphabet(a.alphabet, b.alphabet), unionAlphabet(a.stackAlphabet, b.stackAlphabet), builder.Freeze(), start, map[state.ID]struct{}{accept: {}})
}

// KleeneStar builds the pushdown machine recognizing zero or more
// repetitions of p's language, mirroring PDM.kleene_star.
func (p *PDM) KleeneStar() *PDM {
	x := p.ToNormalForm()
	builder := frozenmap.NewMultiMapBuilder[Key, Target]()
	x.transitions.Range(func(key Key, targets []Target) {
		for _, t := range targets {
			builder.Add(key, t)
		}
	})

	start := state.New()
	accept := state.New()
	addEpsilonTransition(builder, start, x.start)
	for s := range x.accepting {
		addEpsilonTransition(builder, s, start)
	}
	addEpsilonTransition(builder, start, accept)

	states := make(map[state.ID]struct{}, len(x.states)+2)
	for s := range x.states {
		states[s] = struct{}{}
	}
	states[start] = struct{}{}
	states[accept] = struct{}{}

	return newRaw(states, copySet(x.alphabet), copySet(x.stackAlphabet), builder.Freeze(), start, map[state.ID]struct{}{accept: {}})
}
