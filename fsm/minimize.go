package fsm

import (
	"github.com/jmaarleveld/automata/internal/frozenmap"
	"github.com/jmaarleveld/automata/state"
)

// Simplify removes unreachable and useless states, mirroring DFSM.simplify.
// If the start state itself is useless the canonical single-state empty
// machine is returned.
//
// This corrects a bug observed in the original: DFSM.simplify builds its
// result's accepting set as `self.__states - remove` (every surviving
// state, accepting or not) rather than intersecting the surviving states
// with the machine's actual accepting set. Left as-is, every retained
// state would become accepting. This port instead intersects the original
// accepting set with the retained states, which is what "remove useless
// and unreachable states without changing the recognized language" must
// mean.
func (f *FSM) Simplify() *FSM {
	useless := f.getUselessStates()
	if _, ok := useless[f.start]; ok {
		return f.emptyMachine()
	}
	unreachable := f.getUnreachableStates()
	remove := make(map[state.ID]struct{}, len(unreachable)+len(useless))
	for s := range unreachable {
		remove[s] = struct{}{}
	}
	for s := range useless {
		remove[s] = struct{}{}
	}

	builder := frozenmap.NewMultiMapBuilder[Edge, state.ID]()
	f.transitions.Range(func(edge Edge, targets []state.ID) {
		for _, t := range targets {
			if _, dead := remove[t]; dead {
				continue
			}
			builder.Add(edge, t)
		}
	})

	retained := make(map[state.ID]struct{}, len(f.states))
	for s := range f.states {
		if _, dead := remove[s]; !dead {
			retained[s] = struct{}{}
		}
	}
	accepting := make(map[state.ID]struct{}, len(f.accepting))
	for s := range f.accepting {
		if _, ok := retained[s]; ok {
			accepting[s] = struct{}{}
		}
	}

	return newRaw(retained, f.alphabet, builder.Freeze(), f.start, accepting, f.nondeterministic)
}

func (f *FSM) emptyMachine() *FSM {
	s := state.New()
	return newRaw(
		map[state.ID]struct{}{s: {}},
		f.alphabet,
		frozenmap.NewMultiMapBuilder[Edge, state.ID]().Freeze(),
		s,
		map[state.ID]struct{}{},
		f.nondeterministic,
	)
}

// IsEmpty reports whether the machine recognizes the empty language,
// mirroring DFSM.__bool__ (inverted, since Python's truthiness there means
// "non-empty").
func (f *FSM) IsEmpty() bool {
	m := f.Simplify()
	return len(m.accepting) == 0 && m.transitions.Len() == 0
}

// MakeTotal returns an equivalent machine where every (state, symbol) pair
// has at least one transition, adding a trash state with self-loops on
// every symbol where needed. If f is already total, f itself is returned,
// mirroring DFSM.make_total.
func (f *FSM) MakeTotal() *FSM {
	if f.IsTotal() {
		return f
	}
	trash := state.New()
	builder := frozenmap.NewMultiMapBuilder[Edge, state.ID]()
	f.transitions.Range(func(edge Edge, targets []state.ID) {
		builder.AddAll(edge, targets)
	})
	for s := range f.states {
		for sym := range f.alphabet {
			if !f.transitions.Has((Edge{From: s, Symbol: sym})) {
				builder.Add(Edge{From: s, Symbol: sym}, trash)
			}
		}
	}
	for sym := range f.alphabet {
		builder.Add(Edge{From: trash, Symbol: sym}, trash)
	}
	return newRaw(
		unionStates(f.states, nil, trash),
		f.alphabet,
		builder.Freeze(),
		f.start,
		f.accepting,
		f.nondeterministic,
	)
}

// IsTotal reports whether every (state, symbol) pair has at least one
// transition, mirroring DFSM.is_total.
func (f *FSM) IsTotal() bool {
	for s := range f.states {
		for sym := range f.alphabet {
			if !f.transitions.Has(Edge{From: s, Symbol: sym}) {
				return false
			}
		}
	}
	return true
}

// getUnreachableStates mirrors DFSM._get_unreachable_states: a forward BFS
// from the start state over alphabet transitions (epsilon is deliberately
// excluded, exactly as in the original — in practice Simplify runs on
// already subset-constructed DFSMs, which never contain epsilon edges, so
// this omission never under-counts reachability for the machines this
// module actually simplifies).
func (f *FSM) getUnreachableStates() map[state.ID]struct{} {
	reachable := make(map[state.ID]struct{})
	frontier := []state.ID{f.start}
	for len(frontier) > 0 {
		var next []state.ID
		for _, s := range frontier {
			if _, ok := reachable[s]; ok {
				continue
			}
			reachable[s] = struct{}{}
			for sym := range f.alphabet {
				next = append(next, f.transitions.Get(Edge{From: s, Symbol: sym})...)
			}
		}
		frontier = next
	}
	out := make(map[state.ID]struct{})
	for s := range f.states {
		if _, ok := reachable[s]; !ok {
			out[s] = struct{}{}
		}
	}
	return out
}

// getUselessStates mirrors DFSM._get_useless_states: a reverse BFS from
// the accepting states over allPrevStates.
func (f *FSM) getUselessStates() map[state.ID]struct{} {
	useful := make(map[state.ID]struct{})
	frontier := keysOf(f.accepting)
	for len(frontier) > 0 {
		var next []state.ID
		for _, s := range frontier {
			if _, ok := useful[s]; ok {
				continue
			}
			useful[s] = struct{}{}
			next = append(next, f.allPrevStates(s)...)
		}
		frontier = next
	}
	out := make(map[state.ID]struct{})
	for s := range f.states {
		if _, ok := useful[s]; !ok {
			out[s] = struct{}{}
		}
	}
	return out
}
