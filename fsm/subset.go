package fsm

import (
	"github.com/jmaarleveld/automata/internal/frozenmap"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// ToDFSM performs subset construction, returning an equivalent
// deterministic machine, mirroring NeFSM.to_dfsm.
//
// The original keys its worklist map by `tuple(closure)` — the states of a
// superstate in whatever order Python's set iteration happened to produce
// them — so the same logical superstate discovered twice via different
// exploration orders can be keyed by two different tuples and mint two
// distinct DFSM states for what should be one. This is spec.md's Open
// Question 1. This port instead canonicalizes every superstate as its
// sorted, deduplicated state.ID sequence before it is ever used as a map
// key, and always looks up that canonical key before minting a new
// state.ID, so two discoveries of the same superstate always land on the
// same DFSM state.
func (f *FSM) ToDFSM() *FSM {
	supersets := make(map[string]state.ID)      // canonical key -> assigned DFSM state
	members := make(map[string][]state.ID)      // canonical key -> sorted member NFSM states
	accepting := make(map[state.ID]struct{})

	startClosure := f.epsilonClosure([]state.ID{f.start})
	startKey := canonicalKey(startClosure)
	initial := state.New()
	supersets[startKey] = initial
	members[startKey] = startClosure
	if anyInSet(startClosure, f.accepting) {
		accepting[initial] = struct{}{}
	}

	builder := frozenmap.NewMultiMapBuilder[Edge, state.ID]()
	stack := []string{startKey}
	for len(stack) > 0 {
		key := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		currentID := supersets[key]
		currentMembers := members[key]

		for sym := range f.alphabet {
			if sym.IsEpsilon() {
				continue
			}
			superstate := f.constructSuperset(currentMembers, sym)
			if len(superstate) == 0 {
				continue
			}
			skey := canonicalKey(superstate)
			targetID, exists := supersets[skey]
			if !exists {
				targetID = state.New()
				supersets[skey] = targetID
				members[skey] = superstate
				stack = append(stack, skey)
				if anyInSet(superstate, f.accepting) {
					accepting[targetID] = struct{}{}
				}
			}
			builder.Add(Edge{From: currentID, Symbol: sym}, targetID)
		}
	}

	states := make(map[state.ID]struct{}, len(supersets))
	for _, id := range supersets {
		states[id] = struct{}{}
	}

	return newRaw(states, f.alphabet, builder.Freeze(), initial, accepting, false)
}

// epsilonClosure returns the sorted, deduplicated set of states reachable
// from seed via zero or more epsilon transitions, mirroring
// NeFSM._get_epsilon_closure generalized to a set of seed states (used
// directly by constructSuperset, which needs the closure of several
// states at once).
func (f *FSM) epsilonClosure(seed []state.ID) []state.ID {
	seen := make(map[state.ID]struct{}, len(seed))
	queue := make([]state.ID, 0, len(seed))
	for _, s := range seed {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range f.transitions.Get(Edge{From: cur, Symbol: symbol.Epsilon}) {
			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				queue = append(queue, next)
			}
		}
	}
	out := make([]state.ID, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	return sortedUnique(out)
}

// constructSuperset mirrors NeFSM._construct_superset: the epsilon closure
// of every state reachable from any state in old via a single symbol
// transition.
func (f *FSM) constructSuperset(old []state.ID, sym symbol.Symbol) []state.ID {
	var raw []state.ID
	for _, s := range old {
		targets := f.transitions.Get(Edge{From: s, Symbol: sym})
		if len(targets) == 0 {
			continue
		}
		raw = append(raw, f.epsilonClosure(targets)...)
	}
	if len(raw) == 0 {
		return nil
	}
	return sortedUnique(raw)
}
