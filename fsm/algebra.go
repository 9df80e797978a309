package fsm

import (
	"github.com/jmaarleveld/automata/internal/frozenmap"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// AtomMatcher builds the two-state machine that accepts exactly the single
// symbol sym, mirroring NeFSM.atom_matcher: the base case Thompson's
// construction builds every regex literal from.
func AtomMatcher(sym symbol.Symbol) *FSM {
	start, accept := state.New(), state.New()
	builder := frozenmap.NewMultiMapBuilder[Edge, state.ID]()
	builder.Add(Edge{From: start, Symbol: sym}, accept)
	return newRaw(
		map[state.ID]struct{}{start: {}, accept: {}},
		map[symbol.Symbol]struct{}{sym: {}},
		builder.Freeze(),
		start,
		map[state.ID]struct{}{accept: {}},
		true,
	)
}

// asNondeterministic lifts a deterministic machine to a nondeterministic
// one with no structural change (transitions are already stored
// multi-valued internally regardless of the flag), mirroring
// NeFSM.from_dfsm.
func (f *FSM) asNondeterministic() *FSM {
	if f.nondeterministic {
		return f
	}
	clone := *f
	clone.nondeterministic = true
	return &clone
}

func unionStates(a, b map[state.ID]struct{}, extra ...state.ID) map[state.ID]struct{} {
	out := make(map[state.ID]struct{}, len(a)+len(b)+len(extra))
	for s := range a {
		out[s] = struct{}{}
	}
	for s := range b {
		out[s] = struct{}{}
	}
	for _, s := range extra {
		out[s] = struct{}{}
	}
	return out
}

func unionAlphabet(a, b map[symbol.Symbol]struct{}) map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{}, len(a)+len(b))
	for s := range a {
		out[s] = struct{}{}
	}
	for s := range b {
		out[s] = struct{}{}
	}
	return out
}

// mergedTransitionsBuilder seeds a fresh multimap builder with every edge
// already present on a and b, mirroring the original's `{**a.transitions,
// **b.transitions}` dict merge — except using the real multi-valued union
// rather than last-write-wins, since distinct source machines built by
// separate state.New() calls never share state IDs and so never actually
// collide, but a genuine union is the correct generalization regardless.
func mergedTransitionsBuilder(machines ...*FSM) *frozenmap.MultiMapBuilder[Edge, state.ID] {
	b := frozenmap.NewMultiMapBuilder[Edge, state.ID]()
	for _, m := range machines {
		m.transitions.Range(func(edge Edge, targets []state.ID) {
			b.AddAll(edge, targets)
		})
	}
	return b
}

// Concat returns a machine accepting the concatenation of the languages of
// f and other, mirroring NeFSM.concat.
func (f *FSM) Concat(other *FSM) *FSM {
	a := f.asNondeterministic().ToNormalForm()
	b := other.asNondeterministic().ToNormalForm()
	builder := mergedTransitionsBuilder(a, b)
	aAccept := firstOf(a.accepting)
	bAccept := firstOf(b.accepting)
	builder.Add(Edge{From: aAccept, Symbol: symbol.Epsilon}, b.start)
	return newRaw(
		unionStates(a.states, b.states),
		unionAlphabet(a.alphabet, b.alphabet),
		builder.Freeze(),
		a.start,
		map[state.ID]struct{}{bAccept: {}},
		true,
	)
}

// Union returns a machine accepting the union of the languages of f and
// other, mirroring NeFSM.union.
func (f *FSM) Union(other *FSM) *FSM {
	a := f.asNondeterministic().ToNormalForm()
	b := other.asNondeterministic().ToNormalForm()
	builder := mergedTransitionsBuilder(a, b)
	aAccept := firstOf(a.accepting)
	bAccept := firstOf(b.accepting)
	start, accept := state.New(), state.New()
	builder.Add(Edge{From: start, Symbol: symbol.Epsilon}, a.start)
	builder.Add(Edge{From: start, Symbol: symbol.Epsilon}, b.start)
	builder.Add(Edge{From: aAccept, Symbol: symbol.Epsilon}, accept)
	builder.Add(Edge{From: bAccept, Symbol: symbol.Epsilon}, accept)
	return newRaw(
		unionStates(a.states, b.states, start, accept),
		unionAlphabet(a.alphabet, b.alphabet),
		builder.Freeze(),
		start,
		map[state.ID]struct{}{accept: {}},
		true,
	)
}

// KleeneStar returns a machine accepting zero or more repetitions of f's
// language, mirroring NeFSM.kleene_star.
func (f *FSM) KleeneStar() *FSM {
	x := f.asNondeterministic().ToNormalForm()
	newStart := state.New()
	accept := firstOf(x.accepting)
	builder := frozenmap.NewMultiMapBuilder[Edge, state.ID]()
	x.transitions.Range(func(edge Edge, targets []state.ID) {
		builder.AddAll(edge, targets)
	})
	builder.Add(Edge{From: newStart, Symbol: symbol.Epsilon}, x.start)
	builder.Add(Edge{From: accept, Symbol: symbol.Epsilon}, newStart)
	result := newRaw(
		unionStates(x.states, nil, newStart),
		x.alphabet,
		builder.Freeze(),
		newStart,
		map[state.ID]struct{}{newStart: {}},
		true,
	)
	return result.ToNormalForm()
}

// Intersection returns a machine accepting the intersection of the
// languages of f and other, mirroring NeFSM.intersection's De Morgan
// construction: ~(~f | ~other). Both operands are complemented over the
// union of their two alphabets, so a word using a symbol that only one
// operand knows is not accepted by the other operand's complement.
func (f *FSM) Intersection(other *FSM) *FSM {
	alphabet := unionAlphabet(f.alphabet, other.alphabet)
	a, b := *f, *other
	a.alphabet, b.alphabet = alphabet, alphabet
	return a.Complement().Union(b.Complement()).Complement()
}

// Difference returns a machine accepting words in f's language but not
// other's, mirroring NeFSM.__sub__ (self & ~other). other is complemented
// over the union of both alphabets.
func (f *FSM) Difference(other *FSM) *FSM {
	o := *other
	o.alphabet = unionAlphabet(f.alphabet, other.alphabet)
	return f.Intersection(o.Complement())
}

// Complement returns a machine accepting the complement of f's language.
// A nondeterministic machine is first reduced to a total deterministic one
// (complementing an NFSM directly would be incorrect: NeFSM.complement
// delegates to to_dfsm().complement() for exactly this reason), then the
// complement of a deterministic machine is its total form with the
// accepting states flipped. The complement is taken over f's own alphabet:
// a word containing a symbol outside that alphabet is rejected by both f
// and its complement.
func (f *FSM) Complement() *FSM {
	if f.nondeterministic {
		return f.ToDFSM().Complement()
	}
	total := f.MakeTotal()
	flipped := make(map[state.ID]struct{}, len(total.states))
	for s := range total.states {
		if _, ok := total.accepting[s]; !ok {
			flipped[s] = struct{}{}
		}
	}
	return newRaw(total.states, total.alphabet, total.transitions, total.start, flipped, false)
}

// ToNormalForm returns an equivalent machine with exactly one start state
// (no incoming edges) and exactly one accepting state (no outgoing
// edges), mirroring NeFSM.to_normal_form. Normalization is idempotent: if
// f is already in normal form the returned machine recognizes the same
// language (a structurally identical copy, not necessarily the same
// states — matching the original, which always builds a new machine too).
func (f *FSM) ToNormalForm() *FSM {
	builder := frozenmap.NewMultiMapBuilder[Edge, state.ID]()
	f.transitions.Range(func(edge Edge, targets []state.ID) {
		builder.AddAll(edge, targets)
	})

	var start state.ID
	if len(f.allPrevStates(f.start)) > 0 {
		start = state.New()
		builder.Add(Edge{From: start, Symbol: symbol.Epsilon}, f.start)
	} else {
		start = f.start
	}

	var accept state.ID
	if f.acceptingInNormalForm() {
		accept = firstOf(f.accepting)
	} else {
		accept = state.New()
		for a := range f.accepting {
			builder.Add(Edge{From: a, Symbol: symbol.Epsilon}, accept)
		}
	}

	return newRaw(
		unionStates(f.states, map[state.ID]struct{}{start: {}, accept: {}}),
		f.alphabet,
		builder.Freeze(),
		start,
		map[state.ID]struct{}{accept: {}},
		true,
	)
}

// acceptingInNormalForm mirrors
// NeFSM._accepting_states_in_normal_form: true only if f already has
// exactly one accepting state with no outgoing transitions on any symbol
// (including epsilon).
func (f *FSM) acceptingInNormalForm() bool {
	if len(f.accepting) != 1 {
		return false
	}
	accept := firstOf(f.accepting)
	for sym := range f.alphabet {
		if f.transitions.Has(Edge{From: accept, Symbol: sym}) {
			return false
		}
	}
	return !f.transitions.Has(Edge{From: accept, Symbol: symbol.Epsilon})
}

// allPrevStates mirrors DFSM._get_all_prev_states: every state with a
// transition whose target set includes s.
func (f *FSM) allPrevStates(s state.ID) []state.ID {
	var out []state.ID
	f.transitions.Range(func(edge Edge, targets []state.ID) {
		for _, t := range targets {
			if t == s {
				out = append(out, edge.From)
				return
			}
		}
	})
	return out
}
