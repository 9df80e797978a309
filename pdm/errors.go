package pdm

import "errors"

// Sentinel and typed errors, in the same two-tier style as fsm.BuildError.
var (
	ErrInvalidState = errors.New("pdm: state not registered")
	ErrNoStartState = errors.New("pdm: no start state set")
)

// BuildError reports a malformed PDM construction.
type BuildError struct {
	Message string
	Err     error
}

func (e *BuildError) Error() string {
	return "pdm: " + e.Message + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error {
	return e.Err
}
