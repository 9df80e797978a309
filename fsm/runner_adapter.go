package fsm

import (
	"github.com/jmaarleveld/automata/match"
	"github.com/jmaarleveld/automata/runner"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// fsmConfig is the configuration-graph node explored by the generic
// runner: the current state plus the input still to be consumed,
// mirroring automata.fsm.fsm._FSMConfig (string, state). Both fields are
// comparable, as runner.Machine requires.
type fsmConfig struct {
	st   state.ID
	rest string
}

// fsmMachine adapts an *FSM to runner.Machine, unifying the original's
// _DFSMRunner and _NeFSMRunner into a single implementation gated on
// Nondeterministic: _NeFSMRunner only ever adds behavior on top of
// _DFSMRunner (an extra epsilon key, an epsilon-aware check_accept), so a
// single type branching on a bool is a direct, non-duplicating
// translation of "NeFSMRunner is DFSMRunner plus a bit more", without
// standing up a parallel class hierarchy runner-side.
type fsmMachine struct {
	fsm *FSM
}

func (f *FSM) newRunner() *runner.Runner[fsmConfig, Edge, state.ID] {
	return runner.New[fsmConfig, Edge, state.ID](fsmMachine{fsm: f})
}

func (m fsmMachine) InitialConfig(word string) fsmConfig {
	return fsmConfig{st: m.fsm.start, rest: word}
}

func (m fsmMachine) Keys(c fsmConfig) []Edge {
	var keys []Edge
	if len(c.rest) > 0 {
		keys = append(keys, Edge{From: c.st, Symbol: symbol.Of([]rune(c.rest)[0])})
	} else {
		keys = append(keys, Edge{From: c.st, Symbol: symbol.Epsilon})
	}
	if m.fsm.nondeterministic {
		// _NeFSMRunner.get_keys always yields an epsilon key in addition
		// to whatever the DFSM half already yielded.
		keys = append(keys, Edge{From: c.st, Symbol: symbol.Epsilon})
	}
	return keys
}

func (m fsmMachine) Targets(key Edge) []state.ID {
	return m.fsm.transitions.Get(key)
}

func (m fsmMachine) NextConfig(c fsmConfig, key Edge, target state.ID) fsmConfig {
	if key.Symbol.IsEpsilon() {
		if !m.fsm.nondeterministic {
			// _DFSMRunner.get_next_config unconditionally strips the
			// first input symbol regardless of which key triggered the
			// move; when it's the epsilon key, rest is already empty
			// (that is the only time a DFSM runner reaches for it), so
			// stripping is a no-op.
			return fsmConfig{st: target, rest: stripFirst(c.rest)}
		}
		return fsmConfig{st: target, rest: c.rest}
	}
	return fsmConfig{st: target, rest: stripFirst(c.rest)}
}

func stripFirst(rest string) string {
	if len(rest) == 0 {
		return rest
	}
	return string([]rune(rest)[1:])
}

func (m fsmMachine) CheckAccept(c fsmConfig) runner.RunnerState {
	if len(c.rest) > 0 {
		return runner.Continue
	}
	result := runner.FromBool(m.fsm.isAccepting(c.st))
	if !m.fsm.nondeterministic {
		return result
	}
	if result == runner.Reject && m.fsm.transitions.Has(Edge{From: c.st, Symbol: symbol.Epsilon}) {
		return runner.Continue
	}
	return result
}

func (m fsmMachine) CheckAcceptSliding(c fsmConfig) runner.RunnerState {
	if m.fsm.isAccepting(c.st) {
		return runner.Accept
	}
	return runner.Continue
}

func (m fsmMachine) MakeMatch(word string, c fsmConfig) match.Match {
	total := len(symbol.FromString(word))
	consumed := total - len([]rune(c.rest))
	return match.New(0, consumed, word)
}
