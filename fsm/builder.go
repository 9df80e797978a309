package fsm

import (
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// Builder incrementally assembles an FSM, in the functional-option
// Build(opts ...BuildOption) idiom coregx/nfa.Builder uses: add states and
// transitions freely, then Validate (implicitly run by Build) catches
// dangling references before a malformed machine can escape the package.
type Builder struct {
	nondeterministic bool
	states           map[state.ID]struct{}
	alphabet         map[symbol.Symbol]struct{}
	transitions      map[Edge][]state.ID
	start            *state.ID
	accepting        map[state.ID]struct{}
}

// NewBuilder returns an empty Builder. When nondeterministic is false, the
// built machine must have no epsilon transitions and at most one target
// per (state, symbol) pair.
func NewBuilder(nondeterministic bool) *Builder {
	return &Builder{
		nondeterministic: nondeterministic,
		states:           make(map[state.ID]struct{}),
		alphabet:         make(map[symbol.Symbol]struct{}),
		transitions:      make(map[Edge][]state.ID),
		accepting:        make(map[state.ID]struct{}),
	}
}

// AddState allocates and registers a fresh state, returning its ID.
func (b *Builder) AddState() state.ID {
	id := state.New()
	b.states[id] = struct{}{}
	return id
}

// AddTransition records an edge from `from` to `to` on sym. sym may be
// symbol.Epsilon only for a nondeterministic builder.
func (b *Builder) AddTransition(from state.ID, sym symbol.Symbol, to state.ID) {
	if !sym.IsEpsilon() {
		b.alphabet[sym] = struct{}{}
	}
	b.transitions[Edge{From: from, Symbol: sym}] = append(b.transitions[Edge{From: from, Symbol: sym}], to)
}

// AddEpsilon records an epsilon transition from `from` to `to`. Only valid
// for a nondeterministic builder; Build reports ErrEpsilonNotAllowed
// otherwise.
func (b *Builder) AddEpsilon(from, to state.ID) {
	b.transitions[Edge{From: from, Symbol: symbol.Epsilon}] = append(b.transitions[Edge{From: from, Symbol: symbol.Epsilon}], to)
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

// BuildOption customizes Build's behavior beyond the states and
// transitions already recorded on the Builder.
type BuildOption func(*buildConfig)

type buildConfig struct {
	extraAlphabet []symbol.Symbol
}

// WithAlphabet extends the built machine's declared alphabet with symbols
// that may not appear on any transition (useful when the caller wants
// MakeTotal/IsTotal to reason about a symbol the machine never actually
// transitions on from any reachable state).
func WithAlphabet(symbols ...symbol.Symbol) BuildOption {
	return func(c *buildConfig) {
		c.extraAlphabet = append(c.extraAlphabet, symbols...)
	}
}

// Validate checks that the builder describes a well-formed machine:
// a start state has been set, the start and every accepting state belong
// to the registered state set, and a deterministic builder has neither
// epsilon transitions nor multi-target transitions.
func (b *Builder) Validate() error {
	if b.start == nil {
		return &BuildError{Message: "no start state set", Err: ErrNoStartState}
	}
	if _, ok := b.states[*b.start]; !ok {
		return &BuildError{Message: "start state not registered", StateID: *b.start, Err: ErrInvalidState}
	}
	for s := range b.accepting {
		if _, ok := b.states[s]; !ok {
			return &BuildError{Message: "accepting state not registered", StateID: s, Err: ErrInvalidState}
		}
	}
	for edge, targets := range b.transitions {
		if _, ok := b.states[edge.From]; !ok {
			return &BuildError{Message: "transition source not registered", StateID: edge.From, Err: ErrInvalidState}
		}
		if !b.nondeterministic && edge.Symbol.IsEpsilon() {
			return &BuildError{Message: "epsilon transition in deterministic builder", StateID: edge.From, Err: ErrEpsilonNotAllowed}
		}
		if !b.nondeterministic && len(targets) > 1 {
			return &BuildError{Message: "multiple targets in deterministic builder", StateID: edge.From, Err: ErrMultipleTargetsNotAllowed}
		}
		for _, to := range targets {
			if _, ok := b.states[to]; !ok {
				return &BuildError{Message: "transition target not registered", StateID: to, Err: ErrInvalidState}
			}
		}
	}
	return nil
}

// Build validates the builder's contents and, if valid, returns the
// resulting FSM.
func (b *Builder) Build(opts ...BuildOption) (*FSM, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	alphabet := make(map[symbol.Symbol]struct{}, len(b.alphabet)+len(cfg.extraAlphabet))
	for s := range b.alphabet {
		alphabet[s] = struct{}{}
	}
	for _, s := range cfg.extraAlphabet {
		alphabet[s] = struct{}{}
	}
	transitions := make(map[Edge][]state.ID, len(b.transitions))
	for k, v := range b.transitions {
		transitions[k] = append([]state.ID(nil), v...)
	}
	return newFSMFromSets(keysOf(b.states), alphabetSlice(alphabet), transitions, *b.start, keysOf(b.accepting), b.nondeterministic)
}

func alphabetSlice(m map[symbol.Symbol]struct{}) []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(m))
	for s := range m {
		out = append(out, s)
	}
	return out
}
