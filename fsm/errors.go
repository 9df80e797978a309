package fsm

import (
	"errors"
	"fmt"

	"github.com/jmaarleveld/automata/state"
)

// Sentinel errors for common, uncontextualized failure modes, in the
// two-tier error style used throughout this module (a sentinel for simple
// callers that just want errors.Is, a typed error alongside it for callers
// that want structured context).
var (
	// ErrInvalidState is wrapped by BuildError when a transition,
	// start, or accepting state references a state.ID the builder never
	// saw added.
	ErrInvalidState = errors.New("fsm: invalid state")
	// ErrNoStartState is returned by Build when no start state was set.
	ErrNoStartState = errors.New("fsm: no start state set")
	// ErrEpsilonNotAllowed is returned when a deterministic builder is
	// asked to add an epsilon transition.
	ErrEpsilonNotAllowed = errors.New("fsm: epsilon transitions are not allowed in a DFSM")
	// ErrMultipleTargetsNotAllowed is returned when a deterministic
	// builder is asked to add a second target for a (state, symbol) pair
	// that already has one.
	ErrMultipleTargetsNotAllowed = errors.New("fsm: a DFSM transition must have exactly one target")
	// ErrInfiniteLanguage is returned by cardinality-style queries when the
	// language recognized by the machine is infinite (contains a Kleene
	// star reachable from the start state), per spec.md's "infinite set
	// queries" error-handling note.
	ErrInfiniteLanguage = errors.New("fsm: language is infinite")
)

// BuildError reports a structural problem discovered by Builder.Validate
// or Builder.Build, naming the offending state where one is available.
type BuildError struct {
	Message string
	StateID state.ID
	Err     error
}

func (e *BuildError) Error() string {
	if e.StateID != 0 {
		return fmt.Sprintf("fsm: build error: %s (state %s)", e.Message, e.StateID)
	}
	return fmt.Sprintf("fsm: build error: %s", e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
