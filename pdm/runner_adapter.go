package pdm

import (
	"github.com/jmaarleveld/automata/match"
	"github.com/jmaarleveld/automata/runner"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// pdmConfig is the search-graph node for a pushdown machine run: the
// remaining unconsumed input, the current stack contents (bottom to top,
// left to right, mirroring the original's plain-string stack
// representation), and the current state. All three fields are plain
// strings/state.ID so pdmConfig is comparable, as runner.Machine requires.
type pdmConfig struct {
	remaining string
	stack     string
	st        state.ID
}

type pdmMachine struct {
	pdm *PDM
}

func (p *PDM) newRunner() *runner.Runner[pdmConfig, Key, Target] {
	return runner.New[pdmConfig, Key, Target](&pdmMachine{pdm: p})
}

func (m *pdmMachine) InitialConfig(word string) pdmConfig {
	return pdmConfig{remaining: word, stack: "", st: m.pdm.start}
}

// Keys lists the outgoing transition keys from config's state, mirroring
// _PDMRunner.get_keys: an always-present pure-epsilon key, an
// input-consuming key when input remains, a combined input+pop key when
// both input and stack remain, and a pure-pop key when the stack is
// non-empty.
func (m *pdmMachine) Keys(config pdmConfig) []Key {
	keys := []Key{{From: config.st, Input: symbol.Epsilon, Pop: symbol.Epsilon}}
	var firstInput symbol.Symbol
	hasInput := config.remaining != ""
	if hasInput {
		firstInput = symbol.Of([]rune(config.remaining)[0])
		keys = append(keys, Key{From: config.st, Input: firstInput, Pop: symbol.Epsilon})
	}
	hasStack := config.stack != ""
	var top symbol.Symbol
	if hasStack {
		stackRunes := []rune(config.stack)
		top = symbol.Of(stackRunes[len(stackRunes)-1])
		if hasInput {
			keys = append(keys, Key{From: config.st, Input: firstInput, Pop: top})
		}
		keys = append(keys, Key{From: config.st, Input: symbol.Epsilon, Pop: top})
	}
	return keys
}

func (m *pdmMachine) Targets(key Key) []Target {
	return m.pdm.transitions.Get(key)
}

// NextConfig mirrors _PDMRunner.get_next_config: pop the stack top when
// key.Pop is not epsilon, consume the first input rune when key.Input is
// not epsilon, then append target.Push to the (possibly just-popped)
// stack.
func (m *pdmMachine) NextConfig(config pdmConfig, key Key, target Target) pdmConfig {
	stack := config.stack
	if !key.Pop.IsEpsilon() {
		stackRunes := []rune(stack)
		stack = string(stackRunes[:len(stackRunes)-1])
	}
	remaining := config.remaining
	if !key.Input.IsEpsilon() {
		remaining = string([]rune(remaining)[1:])
	}
	if target.Push != "" {
		stack = stack + target.Push
	}
	return pdmConfig{remaining: remaining, stack: stack, st: target.To}
}

// CheckAccept mirrors _PDMRunner.check_accept: accept only once both the
// input and the stack are fully consumed and the current state is
// accepting; otherwise keep exploring.
func (m *pdmMachine) CheckAccept(config pdmConfig) runner.RunnerState {
	if config.remaining == "" && config.stack == "" && m.pdm.isAccepting(config.st) {
		return runner.Accept
	}
	return runner.Continue
}

// CheckAcceptSliding mirrors check_accept_sliding, which in the original
// delegates straight to check_accept rather than ignoring remaining input
// the way fsm's sliding check does — a PDM's "end of match" is defined by
// stack exhaustion, not input position, so there is no weaker sliding
// notion to apply here.
func (m *pdmMachine) CheckAcceptSliding(config pdmConfig) runner.RunnerState {
	return m.CheckAccept(config)
}

func (m *pdmMachine) MakeMatch(word string, config pdmConfig) match.Match {
	runes := []rune(word)
	remainingRunes := []rune(config.remaining)
	stop := len(runes) - len(remainingRunes)
	return match.New(0, stop, word)
}
