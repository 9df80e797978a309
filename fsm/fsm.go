// Package fsm implements the deterministic and nondeterministic
// finite-state machine data model: construction, the algebraic operations
// (Concat, Union, KleeneStar, Complement, Intersection, Difference), normal
// form conversion, subset construction (NFSM to DFSM), minimization, and
// DFSM-to-regex state elimination.
//
// It is a direct generalization of automata.fsm.fsm from the original
// implementation. Rather than a DFSM base class with a NeFSM subclass, this
// package follows the design note that the two runner variants should not
// inherit from one another: there is a single FSM type carrying a
// nondeterministic flag, matching how the runner package is parameterized
// by generics rather than class hierarchy.
package fsm

import (
	"sort"
	"strings"

	"github.com/jmaarleveld/automata/internal/frozenmap"
	"github.com/jmaarleveld/automata/match"
	"github.com/jmaarleveld/automata/runner"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// Edge is a transition key: the source state and the symbol consumed
// (symbol.Epsilon for an unobservable move). It plays the role of the
// (state, char) tuple keys used throughout the original's transitions
// dict.
type Edge struct {
	From   state.ID
	Symbol symbol.Symbol
}

// FSM is either a deterministic or a nondeterministic finite-state machine,
// distinguished by Nondeterministic. Both variants share the same
// representation — states, an input alphabet, and a multi-valued
// transition relation — because the original's DFSM already stores
// transitions as a multi-valued mapping internally regardless of whether
// the machine is "really" deterministic; the distinction only changes how
// a machine is run (whether epsilon moves are explored) and which
// operations are meaningful (the algebra in algebra.go always produces a
// nondeterministic result, lifting a deterministic operand first).
type FSM struct {
	states           map[state.ID]struct{}
	alphabet         map[symbol.Symbol]struct{}
	transitions      frozenmap.MultiMap[Edge, state.ID]
	start            state.ID
	accepting        map[state.ID]struct{}
	nondeterministic bool
}

// NewDFSM builds a deterministic FSM: every (state, symbol) pair names at
// most one successor and no transition may consume epsilon.
func NewDFSM(states []state.ID, alphabet []symbol.Symbol, transitions map[Edge]state.ID, start state.ID, accepting []state.ID) (*FSM, error) {
	multi := make(map[Edge][]state.ID, len(transitions))
	for k, v := range transitions {
		if k.Symbol.IsEpsilon() {
			return nil, &BuildError{Message: "DFSM transition may not consume epsilon", StateID: k.From, Err: ErrEpsilonNotAllowed}
		}
		multi[k] = []state.ID{v}
	}
	f, err := newFSMFromSets(states, alphabet, multi, start, accepting, false)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// NewNFSM builds a nondeterministic FSM: (state, symbol-or-epsilon) pairs
// may name any number of successors.
func NewNFSM(states []state.ID, alphabet []symbol.Symbol, transitions map[Edge][]state.ID, start state.ID, accepting []state.ID) (*FSM, error) {
	return newFSMFromSets(states, alphabet, transitions, start, accepting, true)
}

func newFSMFromSets(states_ []state.ID, alphabet []symbol.Symbol, transitions map[Edge][]state.ID, start state.ID, accepting []state.ID, nondeterministic bool) (*FSM, error) {
	stateSet := make(map[state.ID]struct{}, len(states_))
	for _, s := range states_ {
		stateSet[s] = struct{}{}
	}
	if _, ok := stateSet[start]; !ok {
		return nil, &BuildError{Message: "start state not in state set", StateID: start, Err: ErrInvalidState}
	}
	alphaSet := make(map[symbol.Symbol]struct{}, len(alphabet))
	for _, sym := range alphabet {
		alphaSet[sym] = struct{}{}
	}
	acceptSet := make(map[state.ID]struct{}, len(accepting))
	for _, s := range accepting {
		if _, ok := stateSet[s]; !ok {
			return nil, &BuildError{Message: "accepting state not in state set", StateID: s, Err: ErrInvalidState}
		}
		acceptSet[s] = struct{}{}
	}
	builder := frozenmap.NewMultiMapBuilder[Edge, state.ID]()
	for edge, targets := range transitions {
		if _, ok := stateSet[edge.From]; !ok {
			return nil, &BuildError{Message: "transition source not in state set", StateID: edge.From, Err: ErrInvalidState}
		}
		if !nondeterministic && edge.Symbol.IsEpsilon() {
			return nil, &BuildError{Message: "DFSM transition may not consume epsilon", StateID: edge.From, Err: ErrEpsilonNotAllowed}
		}
		if !nondeterministic && len(targets) > 1 {
			return nil, &BuildError{Message: "DFSM transition has more than one target", StateID: edge.From, Err: ErrMultipleTargetsNotAllowed}
		}
		for _, to := range targets {
			if _, ok := stateSet[to]; !ok {
				return nil, &BuildError{Message: "transition target not in state set", StateID: to, Err: ErrInvalidState}
			}
			builder.Add(edge, to)
		}
	}
	return &FSM{
		states:           stateSet,
		alphabet:         alphaSet,
		transitions:      builder.Freeze(),
		start:            start,
		accepting:        acceptSet,
		nondeterministic: nondeterministic,
	}, nil
}

// newRaw constructs an FSM directly from already-validated internal parts,
// used by the algebraic operations which build their result's transition
// relation incrementally and know it is well-formed by construction.
func newRaw(states map[state.ID]struct{}, alphabet map[symbol.Symbol]struct{}, transitions frozenmap.MultiMap[Edge, state.ID], start state.ID, accepting map[state.ID]struct{}, nondeterministic bool) *FSM {
	return &FSM{
		states:           states,
		alphabet:         alphabet,
		transitions:      transitions,
		start:            start,
		accepting:        accepting,
		nondeterministic: nondeterministic,
	}
}

// States returns the machine's state set.
func (f *FSM) States() []state.ID {
	return keysOf(f.states)
}

// Alphabet returns the machine's input alphabet.
func (f *FSM) Alphabet() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(f.alphabet))
	for s := range f.alphabet {
		out = append(out, s)
	}
	return out
}

// Start returns the machine's initial state.
func (f *FSM) Start() state.ID {
	return f.start
}

// Accepting returns the machine's accepting states.
func (f *FSM) Accepting() []state.ID {
	return keysOf(f.accepting)
}

// Nondeterministic reports whether the machine is allowed epsilon moves
// and multi-valued transitions when it was constructed.
func (f *FSM) Nondeterministic() bool {
	return f.nondeterministic
}

// Transitions calls fn once per (Edge, targets) pair in the machine's
// transition relation.
func (f *FSM) Transitions(fn func(Edge, []state.ID)) {
	f.transitions.Range(fn)
}

func (f *FSM) isAccepting(s state.ID) bool {
	_, ok := f.accepting[s]
	return ok
}

func keysOf[K comparable](m map[K]struct{}) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Run reports whether the machine accepts word in full, mirroring
// DFSM.run / NeFSM.run_with.
func (f *FSM) Run(word string) bool {
	return f.newRunner().RunWith(word) == runner.Accept
}

// FindFirst returns the first sliding match found in word, or nil.
func (f *FSM) FindFirst(word string) *match.Match {
	return f.newRunner().FindFirst(word)
}

// FindLast returns the best sliding match found before the search
// terminates, or nil. See runner.Runner.FindLast for the exact termination
// semantics this resolves (spec.md Open Question 2).
func (f *FSM) FindLast(word string) *match.Match {
	return f.newRunner().FindLast(word)
}

// FindAll returns every sliding match found while running over word.
func (f *FSM) FindAll(word string) []match.Match {
	return f.newRunner().FindAll(word)
}

// SearchFirst returns the match found at the earliest start offset in word
// that matches at all.
func (f *FSM) SearchFirst(word string) *match.Match {
	return f.newRunner().SearchFirst(word)
}

// SearchLast returns the match found by scanning start offsets from the
// end of word backwards.
func (f *FSM) SearchLast(word string) *match.Match {
	return f.newRunner().SearchLast(word)
}

// SearchLongest returns the longest match found anywhere in word.
func (f *FSM) SearchLongest(word string) *match.Match {
	return f.newRunner().SearchLongest(word)
}

// SearchShortest returns the shortest match found anywhere in word.
func (f *FSM) SearchShortest(word string) *match.Match {
	return f.newRunner().SearchShortest(word)
}

// SearchAll returns every match found at every start offset in word.
func (f *FSM) SearchAll(word string) []match.Match {
	return f.newRunner().SearchAll(word)
}

// canonicalKey renders a sorted, deduplicated slice of state IDs into a
// stable map key. Subset construction looks up a superstate's canonical
// key before minting a new state.ID for it (see ToDFSM), which is what
// guarantees that two explorations of the same logical superstate via
// different paths collapse onto the same DFSM state instead of minting a
// duplicate — the fix for spec.md's Open Question 1.
func canonicalKey(sorted []state.ID) string {
	var b strings.Builder
	for i, id := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(id.String())
	}
	return b.String()
}

func sortedUnique(ids []state.ID) []state.ID {
	seen := make(map[state.ID]struct{}, len(ids))
	out := make([]state.ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func anyInSet(ids []state.ID, set map[state.ID]struct{}) bool {
	for _, id := range ids {
		if _, ok := set[id]; ok {
			return true
		}
	}
	return false
}

func firstOf(set map[state.ID]struct{}) state.ID {
	for id := range set {
		return id
	}
	return 0
}
