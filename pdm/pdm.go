// Package pdm implements pushdown machines: the same configuration-graph
// model as package fsm, extended with a stack over a (possibly distinct)
// stack alphabet. A transition consumes an input symbol (or epsilon) and
// the top stack symbol (or epsilon), and replaces the popped symbol with
// zero or more pushed symbols.
//
// It is a direct generalization of automata.pdm.pdm from the original
// implementation, reusing package runner the same way package fsm does —
// per spec.md's design note, PDM and FSM share the generic runner rather
// than inheriting from each other or from a common base.
package pdm

import (
	"github.com/jmaarleveld/automata/internal/frozenmap"
	"github.com/jmaarleveld/automata/match"
	"github.com/jmaarleveld/automata/runner"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// Key is a transition key: the source state, the input symbol consumed
// (symbol.Epsilon for an unobservable move), and the stack symbol popped
// (symbol.Epsilon for no pop). It mirrors the original's
// (state, input, stack-top) tuple keys.
type Key struct {
	From  state.ID
	Input symbol.Symbol
	Pop   symbol.Symbol
}

// Target is a transition destination: the new state and the string of
// stack symbols pushed (possibly empty, for "push nothing").
type Target struct {
	To   state.ID
	Push string
}

// PDM is a pushdown machine.
type PDM struct {
	states        map[state.ID]struct{}
	alphabet      map[symbol.Symbol]struct{}
	stackAlphabet map[symbol.Symbol]struct{}
	transitions   frozenmap.MultiMap[Key, Target]
	start         state.ID
	accepting     map[state.ID]struct{}
}

// New builds a PDM from explicit state, alphabet, and transition sets,
// mirroring the original's PDM.__init__.
func New(states []state.ID, alphabet, stackAlphabet []symbol.Symbol, transitions map[Key][]Target, start state.ID, accepting []state.ID) (*PDM, error) {
	stateSet := make(map[state.ID]struct{}, len(states))
	for _, s := range states {
		stateSet[s] = struct{}{}
	}
	if _, ok := stateSet[start]; !ok {
		return nil, &BuildError{Message: "start state not in state set", Err: ErrInvalidState}
	}
	alphaSet := make(map[symbol.Symbol]struct{}, len(alphabet))
	for _, sym := range alphabet {
		alphaSet[sym] = struct{}{}
	}
	stackSet := make(map[symbol.Symbol]struct{}, len(stackAlphabet))
	for _, sym := range stackAlphabet {
		stackSet[sym] = struct{}{}
	}
	acceptSet := make(map[state.ID]struct{}, len(accepting))
	for _, s := range accepting {
		if _, ok := stateSet[s]; !ok {
			return nil, &BuildError{Message: "accepting state not in state set", Err: ErrInvalidState}
		}
		acceptSet[s] = struct{}{}
	}
	builder := frozenmap.NewMultiMapBuilder[Key, Target]()
	for key, targets := range transitions {
		if _, ok := stateSet[key.From]; !ok {
			return nil, &BuildError{Message: "transition source not in state set", Err: ErrInvalidState}
		}
		for _, t := range targets {
			if _, ok := stateSet[t.To]; !ok {
				return nil, &BuildError{Message: "transition target not in state set", Err: ErrInvalidState}
			}
			builder.Add(key, t)
		}
	}
	return &PDM{
		states:        stateSet,
		alphabet:      alphaSet,
		stackAlphabet: stackSet,
		transitions:   builder.Freeze(),
		start:         start,
		accepting:     acceptSet,
	}, nil
}

func newRaw(states map[state.ID]struct{}, alphabet, stackAlphabet map[symbol.Symbol]struct{}, transitions frozenmap.MultiMap[Key, Target], start state.ID, accepting map[state.ID]struct{}) *PDM {
	return &PDM{
		states:        states,
		alphabet:      alphabet,
		stackAlphabet: stackAlphabet,
		transitions:   transitions,
		start:         start,
		accepting:     accepting,
	}
}

// States returns the machine's state set.
func (p *PDM) States() []state.ID { return keysOf(p.states) }

// Alphabet returns the machine's input alphabet.
func (p *PDM) Alphabet() []symbol.Symbol { return symbolKeysOf(p.alphabet) }

// StackAlphabet returns the machine's stack alphabet.
func (p *PDM) StackAlphabet() []symbol.Symbol { return symbolKeysOf(p.stackAlphabet) }

// Start returns the machine's initial state.
func (p *PDM) Start() state.ID { return p.start }

// Accepting returns the machine's accepting states.
func (p *PDM) Accepting() []state.ID { return keysOf(p.accepting) }

// Transitions calls fn once per (Key, targets) pair.
func (p *PDM) Transitions(fn func(Key, []Target)) {
	p.transitions.Range(fn)
}

func (p *PDM) isAccepting(s state.ID) bool {
	_, ok := p.accepting[s]
	return ok
}

func keysOf(m map[state.ID]struct{}) []state.ID {
	out := make([]state.ID, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func symbolKeysOf(m map[symbol.Symbol]struct{}) []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// Run reports whether the machine accepts word in full: the whole input
// consumed, the stack empty, and the reached state accepting.
func (p *PDM) Run(word string) bool {
	return p.newRunner().RunWith(word) == runner.Accept
}

// FindFirst returns the first sliding match found in word, or nil.
func (p *PDM) FindFirst(word string) *match.Match {
	return p.newRunner().FindFirst(word)
}
