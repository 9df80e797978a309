// Package runner implements the generic configuration-graph search shared
// by every automaton this module runs: finite-state machines and pushdown
// machines alike explore a graph of "configurations" (whatever state a
// machine-specific Machine implementation wants to carry: remaining input,
// a stack, a state ID) reachable from an initial configuration via
// ε-closure-aware breadth-first search.
//
// This is a direct generalization of automata.runners.Runner from the
// original implementation, using Go generics instead of an abstract base
// class: per the design note that the two concrete runners (FSM and PDM)
// should not inherit from one another, Machine is implemented once per
// domain and Runner is parameterized over it rather than subclassed.
package runner

import "github.com/jmaarleveld/automata/match"

// RunnerState is the three-valued verdict a Machine reports for a
// configuration during a run, mirroring automata.runners.RunnerState.
type RunnerState int

const (
	// Continue means the configuration is neither accepting nor rejecting;
	// exploration should proceed to its successors.
	Continue RunnerState = iota
	// Accept means the configuration is a successful final result.
	Accept
	// Reject means the configuration is a dead end; exploration of this
	// branch stops without success.
	Reject
)

// FromBool mirrors RunnerState.from_bool: true maps to Accept, false to
// Reject. There is no bool value that means Continue.
func FromBool(accept bool) RunnerState {
	if accept {
		return Accept
	}
	return Reject
}

// String renders the state for debug output.
func (s RunnerState) String() string {
	switch s {
	case Continue:
		return "Continue"
	case Accept:
		return "Accept"
	case Reject:
		return "Reject"
	default:
		return "RunnerState(?)"
	}
}

// Machine is the per-domain protocol a configuration-graph search runs
// against. Config is the node type of the search graph (e.g. "remaining
// input plus current state"); Key is whatever a machine groups outgoing
// edges by (typically the current state, or a (state, symbol) pair); Target
// is the raw transition destination a Key resolves to (typically a state,
// or a (state, push-string) pair for a pushdown machine).
//
// Targets returning zero elements for a Key is equivalent to a KeyError
// miss in the original implementation's transition lookup: the runner
// silently treats it as "no successors via this key" rather than an error.
type Machine[Config comparable, Key comparable, Target any] interface {
	// InitialConfig builds the configuration exploration starts from for
	// the given input word.
	InitialConfig(word string) Config
	// Keys lists the keys to explore from config. For an NFSM this is
	// typically "every key whose first component is config's current
	// state", including the epsilon key when present.
	Keys(config Config) []Key
	// Targets resolves a key to its (possibly empty) set of destinations.
	Targets(key Key) []Target
	// NextConfig builds the successor configuration reached by following
	// key to target from config.
	NextConfig(config Config, key Key, target Target) Config
	// CheckAccept reports whether config is a final success (full input
	// consumed and an accepting state reached), a dead end, or neither.
	CheckAccept(config Config) RunnerState
	// CheckAcceptSliding is like CheckAccept but does not require the full
	// input to have been consumed; it is used to find the best match
	// ending at the current point while a sliding search continues past
	// it looking for a longer one.
	CheckAcceptSliding(config Config) RunnerState
	// MakeMatch builds the Match value for a successful configuration
	// reached while running over word.
	MakeMatch(word string, config Config) match.Match
}

// Runner drives a configuration-graph search for a specific Machine. A
// Runner holds only its Machine, which is expected to be an immutable view
// over a constructed automaton; the mutable scratch state of a run (the
// work queue and the precursor-lineage seen-sets) is allocated afresh
// inside each call, so separate runs never share it.
type Runner[Config comparable, Key comparable, Target any] struct {
	machine Machine[Config, Key, Target]
}

// New constructs a Runner over the given Machine.
func New[Config comparable, Key comparable, Target any](machine Machine[Config, Key, Target]) *Runner[Config, Key, Target] {
	return &Runner[Config, Key, Target]{machine: machine}
}

// queueItem pairs a configuration with the id of the precursor seen-set it
// was discovered from, mirroring the (precursor, current) tuples enqueued
// by the original's __backlog deque.
type queueItem[Config any] struct {
	precursor int
	config    Config
}

// run is the shared BFS core used by RunWith/FindFirst/FindLast/FindAll: it
// walks the configuration graph in FIFO order, invoking onConfig for every
// configuration it visits (in the order __setup_run/__advance_states would
// visit them) until onConfig asks it to stop by returning true, or the
// queue is exhausted. Only a configuration whose CheckAccept verdict is
// Continue has its successors enqueued.
//
// Cycle detection mirrors __push_to_backlog exactly: every enqueued
// configuration carries a fresh precursor id whose seen-set is its parent
// precursor's seen-set plus the new configuration itself; a successor is
// only enqueued if it is not already in its parent's seen-set. Because each
// precursor's seen-set embeds the whole chain of ancestors back to the
// initial configuration, this terminates even in the presence of ε-cycles
// without needing a single global visited set (which would incorrectly
// prune configurations reachable via two different paths that both still
// need to be explored independently for, e.g., find_all).
func (r *Runner[Config, Key, Target]) run(word string, onConfig func(config Config) (stop bool)) {
	type queue = []queueItem[Config]
	var backlog queue
	seen := make(map[int]map[Config]bool)

	nextUID := 0
	allocUID := func() int {
		id := nextUID
		nextUID++
		return id
	}

	initial := r.machine.InitialConfig(word)
	rootUID := allocUID()
	seen[rootUID] = map[Config]bool{initial: true}
	backlog = append(backlog, queueItem[Config]{precursor: rootUID, config: initial})

	pushToBacklog := func(config Config, precursor int) {
		if seen[precursor][config] {
			return
		}
		uid := allocUID()
		parent := seen[precursor]
		fresh := make(map[Config]bool, len(parent)+1)
		for c := range parent {
			fresh[c] = true
		}
		fresh[config] = true
		seen[uid] = fresh
		backlog = append(backlog, queueItem[Config]{precursor: uid, config: config})
	}

	advance := func(current Config, precursor int) {
		for _, key := range r.machine.Keys(current) {
			for _, target := range r.machine.Targets(key) {
				next := r.machine.NextConfig(current, key, target)
				pushToBacklog(next, precursor)
			}
		}
	}

	for len(backlog) > 0 {
		item := backlog[0]
		backlog = backlog[1:]
		if onConfig(item.config) {
			return
		}
		if r.machine.CheckAccept(item.config) != Continue {
			continue
		}
		advance(item.config, item.precursor)
	}
}

// RunWith runs the machine over word and reports whether the whole input
// is accepted, mirroring Runner.run_with.
func (r *Runner[Config, Key, Target]) RunWith(word string) RunnerState {
	result := Reject
	r.run(word, func(config Config) bool {
		state := r.machine.CheckAccept(config)
		if state == Continue {
			return false
		}
		if state == Accept {
			result = Accept
			return true
		}
		return false
	})
	return result
}

// FindLast runs a sliding search over word and returns the best (i.e. most
// recently improved) match found before the search terminates at
// end-of-input, or nil if no match was ever found. This resolves spec.md's
// Open Question 2: the search stops the instant a configuration's
// CheckAccept result leaves Continue (matching find_last's break), so a
// longer sliding match appearing only after that point is never
// considered — the original implementation commits to this shape and this
// module follows it.
func (r *Runner[Config, Key, Target]) FindLast(word string) *match.Match {
	var best *match.Match
	r.run(word, func(config Config) bool {
		slide := r.machine.CheckAcceptSliding(config)
		end := r.machine.CheckAccept(config)
		if end != Continue {
			if end == Accept {
				m := r.machine.MakeMatch(word, config)
				best = &m
			}
			return true
		}
		if slide == Accept {
			m := r.machine.MakeMatch(word, config)
			best = &m
		}
		return false
	})
	return best
}

// FindFirst runs a sliding search over word and returns the first match
// found, or nil if none exists, mirroring Runner.find_first.
func (r *Runner[Config, Key, Target]) FindFirst(word string) *match.Match {
	var found *match.Match
	r.run(word, func(config Config) bool {
		slide := r.machine.CheckAcceptSliding(config)
		end := r.machine.CheckAccept(config)
		if end != Continue {
			if end == Accept {
				m := r.machine.MakeMatch(word, config)
				found = &m
			}
			return true
		}
		if slide == Accept {
			m := r.machine.MakeMatch(word, config)
			found = &m
			return true
		}
		return false
	})
	return found
}

// FindAll runs a sliding search over word and returns every match found
// along the way, mirroring Runner.find_all.
func (r *Runner[Config, Key, Target]) FindAll(word string) []match.Match {
	var matches []match.Match
	r.run(word, func(config Config) bool {
		slide := r.machine.CheckAcceptSliding(config)
		end := r.machine.CheckAccept(config)
		if end != Continue {
			if end == Accept {
				matches = append(matches, r.machine.MakeMatch(word, config))
			}
			return true
		}
		if slide == Accept {
			matches = append(matches, r.machine.MakeMatch(word, config))
		}
		return false
	})
	return matches
}

// offsetMatch re-anchors a match found against word[offset:] back onto the
// original word, mirroring Runner.__make_match.
func offsetMatch(m match.Match, offset int, word string) match.Match {
	return match.New(m.Start+offset, m.Stop+offset, word)
}

// searchBest mirrors Runner._search_best: it slides a start offset across
// the whole word, keeps the best of all matches finder(word[x:]) produces
// according to better, and returns nil if no offset produced a match.
func (r *Runner[Config, Key, Target]) searchBest(word string, finder func(string) *match.Match, better func(a, b match.Match) match.Match) *match.Match {
	var best *match.Match
	runes := []rune(word)
	for x := 0; x < len(runes); x++ {
		result := finder(string(runes[x:]))
		if result == nil {
			continue
		}
		candidate := offsetMatch(*result, x, word)
		if best == nil {
			best = &candidate
		} else {
			merged := better(*best, candidate)
			best = &merged
		}
	}
	return best
}

// SearchLongest returns the longest sliding match found anywhere in word,
// mirroring Runner.search_longest.
func (r *Runner[Config, Key, Target]) SearchLongest(word string) *match.Match {
	return r.searchBest(word, r.FindLast, func(a, b match.Match) match.Match {
		if b.Len() > a.Len() {
			return b
		}
		return a
	})
}

// SearchShortest returns the shortest sliding match found anywhere in word,
// mirroring Runner.search_shortest.
func (r *Runner[Config, Key, Target]) SearchShortest(word string) *match.Match {
	return r.searchBest(word, r.FindLast, func(a, b match.Match) match.Match {
		if b.Len() < a.Len() {
			return b
		}
		return a
	})
}

// SearchFirst scans start offsets in ascending order and returns the first
// match found at the earliest offset that matches at all, mirroring
// Runner.search_first.
func (r *Runner[Config, Key, Target]) SearchFirst(word string) *match.Match {
	runes := []rune(word)
	for i := 0; i < len(runes); i++ {
		if result := r.FindFirst(string(runes[i:])); result != nil {
			m := offsetMatch(*result, i, word)
			return &m
		}
	}
	return nil
}

// SearchLast scans start offsets in descending order and returns the first
// match found, mirroring Runner.search_last's reversed(range(...)) scan
// direction — this deliberately differs from SearchFirst's scan direction,
// matching the original source exactly.
func (r *Runner[Config, Key, Target]) SearchLast(word string) *match.Match {
	runes := []rune(word)
	for i := len(runes) - 1; i >= 0; i-- {
		if result := r.FindLast(string(runes[i:])); result != nil {
			m := offsetMatch(*result, i, word)
			return &m
		}
	}
	return nil
}

// SearchAll returns every sliding match found at every start offset in
// word, mirroring Runner.search_all.
func (r *Runner[Config, Key, Target]) SearchAll(word string) []match.Match {
	var matches []match.Match
	runes := []rune(word)
	for i := 0; i < len(runes); i++ {
		for _, result := range r.FindAll(string(runes[i:])) {
			matches = append(matches, offsetMatch(result, i, word))
		}
	}
	return matches
}
