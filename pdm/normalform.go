package pdm

import (
	"github.com/jmaarleveld/automata/internal/frozenmap"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// allPrevStates returns every state with a transition targeting s,
// mirroring PDM._get_all_prev_states.
//
// This corrects a bug in the original: it iterates
// `for (old, _, _), (news, _) in self.transitions.items()`, destructuring
// each stored value as a single (state, push) pair — which only holds if
// every key happens to have exactly one target. The transitions map is
// multi-valued by construction (a pushdown machine, like an NFSM, may
// have several targets per key), so that unpacking would raise on any key
// with more than one target. This port ranges over every target of every
// key explicitly instead of assuming a single one.
func (p *PDM) allPrevStates(s state.ID) []state.ID {
	var out []state.ID
	p.transitions.Range(func(key Key, targets []Target) {
		for _, t := range targets {
			if t.To == s {
				out = append(out, key.From)
			}
		}
	})
	return out
}

func addEpsilonTransition(builder *frozenmap.MultiMapBuilder[Key, Target], from, to state.ID) {
	builder.Add(Key{From: from, Input: symbol.Epsilon, Pop: symbol.Epsilon}, Target{To: to})
}

// acceptingInNormalForm mirrors PDM._accepting_states_in_normal_form:
// the machine already has exactly one accepting state with no outgoing
// transition of any kind.
func (p *PDM) acceptingInNormalForm() bool {
	if len(p.accepting) != 1 {
		return false
	}
	accept := firstOf(p.accepting)
	found := false
	p.transitions.Range(func(key Key, _ []Target) {
		if key.From == accept {
			found = true
		}
	})
	return !found
}

func firstOf(set map[state.ID]struct{}) state.ID {
	for id := range set {
		return id
	}
	return 0
}

// ToNormalForm rebuilds the machine so it has exactly one initial state
// with no incoming edges and exactly one accepting state with no outgoing
// edges, mirroring PDM.to_normal_form.
func (p *PDM) ToNormalForm() *PDM {
	builder := frozenmap.NewMultiMapBuilder[Key, Target]()
	p.transitions.Range(func(key Key, targets []Target) {
		for _, t := range targets {
			builder.Add(key, t)
		}
	})

	states := make(map[state.ID]struct{}, len(p.states)+2)
	for s := range p.states {
		states[s] = struct{}{}
	}

	start := p.start
	if len(p.allPrevStates(p.start)) > 0 {
		start = state.New()
		states[start] = struct{}{}
		addEpsilonTransition(builder, start, p.start)
	}

	var accept state.ID
	if p.acceptingInNormalForm() {
		accept = firstOf(p.accepting)
	} else {
		accept = state.New()
		states[accept] = struct{}{}
		for s := range p.accepting {
			addEpsilonTransition(builder, s, accept)
		}
	}

	return newRaw(states, copySet(p.alphabet), copySet(p.stackAlphabet), builder.Freeze(), start, map[state.ID]struct{}{accept: {}})
}

func copySet(m map[symbol.Symbol]struct{}) map[symbol.Symbol]struct{} {
	out := make(map[symbol.Symbol]struct{}, len(m))
	for k := range m {
		out[k] = struct{}{}
	}
	return out
}
