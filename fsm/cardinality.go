package fsm

import "github.com/jmaarleveld/automata/state"

// Cardinality returns the number of distinct strings f accepts, or
// ErrInfiniteLanguage if the language is infinite.
//
// The original implementation computes this over a regex syntax tree
// instead of a machine (RegularSet.cardinality, a convenience façade this
// spec explicitly drops): Concat multiplies, Union adds, and a reachable
// Kleene star makes the tree size infinite. This port computes the
// equivalent machine-level property directly from the graph instead,
// which works for any FSM (hand-built or regex-derived) rather than only
// ones still carrying their originating syntax tree: f is reduced to its
// deterministic, reachable-and-co-reachable core (ToDFSM().Simplify()),
// which trims away every state that cannot lie on any accepted word's
// path. The reduced graph accepts an infinite language if and only if it
// contains a cycle (the classical criterion for a trimmed automaton,
// equivalent to "a Kleene star is reachable" for a regex-derived
// machine); otherwise it's a DAG and the count of accepted words is a
// straightforward topological-order path count.
func (f *FSM) Cardinality() (int, error) {
	d := f.ToDFSM().Simplify()

	order, ok := d.topologicalOrder()
	if !ok {
		return 0, ErrInfiniteLanguage
	}

	ways := make(map[state.ID]int, len(order))
	ways[d.start] = 1
	for _, s := range order {
		count := ways[s]
		if count == 0 {
			continue
		}
		d.transitions.Range(func(key Edge, targets []state.ID) {
			if key.From != s {
				return
			}
			for _, t := range targets {
				ways[t] += count
			}
		})
	}

	total := 0
	for s := range d.accepting {
		total += ways[s]
	}
	return total, nil
}

// topologicalOrder returns d's states in topological order, or ok=false
// if the transition graph (restricted to d's states) contains a cycle.
func (d *FSM) topologicalOrder() ([]state.ID, bool) {
	const (
		white = iota
		gray
		black
	)
	color := make(map[state.ID]int, len(d.states))
	for s := range d.states {
		color[s] = white
	}
	adjacency := make(map[state.ID][]state.ID, len(d.states))
	d.transitions.Range(func(key Edge, targets []state.ID) {
		adjacency[key.From] = append(adjacency[key.From], targets...)
	})

	var order []state.ID
	var acyclic = true
	var visit func(state.ID)
	visit = func(s state.ID) {
		if !acyclic || color[s] != white {
			return
		}
		color[s] = gray
		for _, next := range adjacency[s] {
			if color[next] == gray {
				acyclic = false
				return
			}
			if color[next] == white {
				visit(next)
				if !acyclic {
					return
				}
			}
		}
		color[s] = black
		order = append(order, s)
	}
	for s := range d.states {
		visit(s)
		if !acyclic {
			return nil, false
		}
	}
	// order is in post-order (reverse-topological); reverse it.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, true
}
