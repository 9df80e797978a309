package pdm

import (
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// Builder incrementally assembles a PDM, mirroring fsm.Builder's
// functional idiom.
type Builder struct {
	states        map[state.ID]struct{}
	alphabet      map[symbol.Symbol]struct{}
	stackAlphabet map[symbol.Symbol]struct{}
	transitions   map[Key][]Target
	start         *state.ID
	accepting     map[state.ID]struct{}
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		states:        make(map[state.ID]struct{}),
		alphabet:      make(map[symbol.Symbol]struct{}),
		stackAlphabet: make(map[symbol.Symbol]struct{}),
		transitions:   make(map[Key][]Target),
		accepting:     make(map[state.ID]struct{}),
	}
}

// AddState allocates and registers a fresh state, returning its ID.
func (b *Builder) AddState() state.ID {
	id := state.New()
	b.states[id] = struct{}{}
	return id
}

// AddTransition records a transition: from `from`, consuming input
// (or symbol.Epsilon) and popping pop (or symbol.Epsilon) off the stack,
// moving to `to` and pushing push (possibly empty).
func (b *Builder) AddTransition(from state.ID, input, pop symbol.Symbol, to state.ID, push string) {
	if !input.IsEpsilon() {
		b.alphabet[input] = struct{}{}
	}
	if !pop.IsEpsilon() {
		b.stackAlphabet[pop] = struct{}{}
	}
	for _, r := range push {
		b.stackAlphabet[symbol.Of(r)] = struct{}{}
	}
	key := Key{From: from, Input: input, Pop: pop}
	b.transitions[key] = append(b.transitions[key], Target{To: to, Push: push})
}

// SetStart designates the machine's initial state.
func (b *Builder) SetStart(s state.ID) {
	b.start = &s
}

// AddAccepting marks one or more states as accepting.
func (b *Builder) AddAccepting(states ...state.ID) {
	for _, s := range states {
		b.accepting[s] = struct{}{}
	}
}

// Build validates and returns the resulting PDM.
func (b *Builder) Build() (*PDM, error) {
	if b.start == nil {
		return nil, &BuildError{Message: "no start state set", Err: ErrNoStartState}
	}
	return New(keysOf(b.states), symbolKeysOf(b.alphabet), symbolKeysOf(b.stackAlphabet), b.transitions, *b.start, keysOf(b.accepting))
}
