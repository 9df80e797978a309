package debug_test

import (
	"strings"
	"testing"

	"github.com/jmaarleveld/automata/debug"
	"github.com/jmaarleveld/automata/fsm"
	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

type fsmFormatter struct{}

func (fsmFormatter) SourceID(key fsm.Edge) string       { return key.From.String() }
func (fsmFormatter) TargetID(target state.ID) string    { return target.String() }
func (fsmFormatter) Label(key fsm.Edge, _ state.ID) string { return key.Symbol.String() }

func TestEmitFSM(t *testing.T) {
	m := fsm.AtomMatcher(symbol.Of('a'))
	edges := debug.Emit[fsm.Edge, state.ID](m.Transitions, fsmFormatter{})
	if len(edges) == 0 {
		t.Fatal("expected at least one edge from a single-symbol matcher")
	}
	for _, e := range edges {
		if e.Label != "a" {
			t.Errorf("Label = %q, want \"a\"", e.Label)
		}
	}
}

func TestWriteDOT(t *testing.T) {
	edges := []debug.Edge{
		{Source: "0", Target: "1", Label: "a"},
	}
	var buf strings.Builder
	if err := debug.WriteDOT(&buf, edges); err != nil {
		t.Fatalf("WriteDOT: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"0" -> "1" [label="a"]`) {
		t.Errorf("WriteDOT output missing expected edge: %q", out)
	}
	if !strings.HasPrefix(out, "digraph {") {
		t.Errorf("WriteDOT output missing digraph header: %q", out)
	}
}
