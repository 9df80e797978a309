// Package debug provides a machine-agnostic way to walk an automaton's
// transition relation and render it as a stream of labeled edges,
// grounded on automata/debug.py's render(), which walks an FSM's states
// and transitions and feeds them to a graphviz.Digraph.
//
// This port drops the graphviz dependency entirely: none of the example
// repos in this corpus pull in a graph-rendering library (the one
// DOT-adjacent package in the pack parses a different grammar entirely),
// so Emit stays an interface-only collaborator that returns the formatted
// triples as a slice, leaving the choice of rendering target (WriteDOT's
// DOT text on an io.Writer, a log line, a test assertion) to the caller.
package debug

import (
	"fmt"
	"io"
)

// Formatter renders the pieces of a single transition edge into caller-
// chosen identifiers and labels, mirroring automata.debug.Formatter's
// get_source_uid/get_target_uid/get_label trio.
type Formatter[Key any, Target any] interface {
	// SourceID renders the identifier of the edge's source, derived from
	// the transition key (e.g. a state ID, or a (state, input) pair).
	SourceID(key Key) string
	// TargetID renders the identifier of the edge's destination, derived
	// from the transition target.
	TargetID(target Target) string
	// Label renders the edge's label from the key/target pair.
	Label(key Key, target Target) string
}

// Edge is one rendered transition: an edge from Source to Target carrying
// Label, the triple automata.debug.render feeds to dot.edge(...).
type Edge struct {
	Source string
	Target string
	Label  string
}

// Emit walks every (key, targets) pair reported by rangeFn — typically a
// machine's Transitions method, e.g. (*fsm.FSM).Transitions or
// (*pdm.PDM).Transitions — and calls formatter once per edge, mirroring
// the inner loop of automata.debug.render:
//
//	for key, values in transitions.items():
//	    for value in values:
//	        dot.edge(formatter.get_source_uid(key), ...)
//
// It returns the full ordered slice of rendered edges rather than writing
// to a Digraph directly, so callers can feed them to whatever sink they
// want (DOT text, a log, a test assertion).
func Emit[Key any, Target any](rangeFn func(func(Key, []Target)), formatter Formatter[Key, Target]) []Edge {
	var edges []Edge
	rangeFn(func(key Key, targets []Target) {
		for _, target := range targets {
			edges = append(edges, Edge{
				Source: formatter.SourceID(key),
				Target: formatter.TargetID(target),
				Label:  formatter.Label(key, target),
			})
		}
	})
	return edges
}

// WriteDOT renders edges as a minimal Graphviz DOT digraph body, the one
// concrete sink this package ships: a plain-text rendering any DOT
// toolchain can consume, with no graphviz dependency of its own.
func WriteDOT(w io.Writer, edges []Edge) error {
	if _, err := fmt.Fprintln(w, "digraph {"); err != nil {
		return err
	}
	for _, e := range edges {
		if _, err := fmt.Fprintf(w, "\t%q -> %q [label=%q];\n", e.Source, e.Target, e.Label); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
