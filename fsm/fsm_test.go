package fsm

import (
	"testing"

	"github.com/jmaarleveld/automata/symbol"
)

func mustAtom(r rune) *FSM {
	return AtomMatcher(symbol.Of(r))
}

func TestAtomMatcherRun(t *testing.T) {
	m := mustAtom('a')
	tests := []struct {
		word string
		want bool
	}{
		{"a", true},
		{"", false},
		{"aa", false},
		{"b", false},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestConcat(t *testing.T) {
	m := mustAtom('a').Concat(mustAtom('b'))
	tests := []struct {
		word string
		want bool
	}{
		{"ab", true},
		{"a", false},
		{"b", false},
		{"abc", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestUnion(t *testing.T) {
	m := mustAtom('a').Union(mustAtom('b'))
	tests := []struct {
		word string
		want bool
	}{
		{"a", true},
		{"b", true},
		{"c", false},
		{"ab", false},
		{"", false},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestKleeneStar(t *testing.T) {
	m := mustAtom('a').KleeneStar()
	tests := []struct {
		word string
		want bool
	}{
		{"", true},
		{"a", true},
		{"aaaa", true},
		{"b", false},
		{"aab", false},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

// TestNestedKleeneStarTerminates guards invariant 11 (runner termination
// under ε-cycles): (a*)* wires a KleeneStar loop edge directly onto
// another KleeneStar's own loop edge, producing a genuine ε-cycle in the
// resulting NFSM. If the runner's precursor/seen-set cycle detection were
// broken, this would hang rather than return.
func TestNestedKleeneStarTerminates(t *testing.T) {
	m := mustAtom('a').KleeneStar().KleeneStar()
	tests := []struct {
		word string
		want bool
	}{
		{"", true},
		{"a", true},
		{"aaaaa", true},
		{"b", false},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestComplement(t *testing.T) {
	m := mustAtom('a').ToDFSM().Complement()
	tests := []struct {
		word string
		want bool
	}{
		{"a", false},
		{"b", false}, // 'b' is outside the alphabet {a}, so no word over {a} is "b"
		{"", true},
		{"aa", true},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestIntersection(t *testing.T) {
	// (a|b)* intersected with (b|c)* accepts only strings over {b}.
	ab := mustAtom('a').Union(mustAtom('b')).KleeneStar()
	bc := mustAtom('b').Union(mustAtom('c')).KleeneStar()
	m := ab.Intersection(bc)
	tests := []struct {
		word string
		want bool
	}{
		{"", true},
		{"b", true},
		{"bb", true},
		{"a", false},
		{"c", false},
		{"ab", false},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestDifference(t *testing.T) {
	ab := mustAtom('a').Union(mustAtom('b'))
	m := ab.Difference(mustAtom('a'))
	tests := []struct {
		word string
		want bool
	}{
		{"a", false},
		{"b", true},
		{"c", false},
	}
	for _, tc := range tests {
		if got := m.Run(tc.word); got != tc.want {
			t.Errorf("Run(%q) = %v, want %v", tc.word, got, tc.want)
		}
	}
}

func TestToDFSMIsDeterministic(t *testing.T) {
	m := mustAtom('a').Union(mustAtom('b')).ToDFSM()
	if m.Nondeterministic() {
		t.Fatal("ToDFSM() result reports Nondeterministic() = true")
	}
	for _, word := range []string{"a", "b", "", "ab", "c"} {
		if got, want := m.Run(word), mustAtom('a').Union(mustAtom('b')).Run(word); got != want {
			t.Errorf("Run(%q) = %v, want %v (mismatch with NFSM)", word, got, want)
		}
	}
}

func TestToDFSMCanonicalSuperstates(t *testing.T) {
	// A union of many branches explores several distinct superstates that
	// should still collapse correctly regardless of discovery order.
	m := mustAtom('a').Union(mustAtom('a')).Union(mustAtom('a')).ToDFSM()
	if !m.Run("a") {
		t.Error("Run(\"a\") = false, want true")
	}
	if m.Run("aa") {
		t.Error("Run(\"aa\") = true, want false")
	}
}

func TestSimplifyPreservesLanguage(t *testing.T) {
	d := mustAtom('a').Union(mustAtom('b')).ToDFSM()
	total := d.MakeTotal()
	simplified := total.Simplify()
	for _, word := range []string{"a", "b", "c", "", "ab"} {
		if got, want := simplified.Run(word), d.Run(word); got != want {
			t.Errorf("Simplify-then-Run(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestSimplifyAcceptingIntersectsRetained(t *testing.T) {
	// Regression test for the accepting-set bug in the original: after
	// Simplify, a retained non-accepting state must stay non-accepting.
	b := NewBuilder(false)
	s0 := b.AddState()
	s1 := b.AddState()
	s2 := b.AddState() // unreachable dead state, should be removed
	b.AddTransition(s0, symbol.Of('a'), s1)
	b.SetStart(s0)
	b.AddAccepting(s1)
	_ = s2
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	simplified := m.Simplify()
	if simplified.Run("") {
		t.Error("Run(\"\") = true after Simplify, want false: start state must not become accepting")
	}
	if !simplified.Run("a") {
		t.Error("Run(\"a\") = false after Simplify, want true")
	}
}

func TestMakeTotalIsTotal(t *testing.T) {
	d := mustAtom('a').ToDFSM()
	total := d.MakeTotal()
	if !total.IsTotal() {
		t.Error("MakeTotal() result reports IsTotal() = false")
	}
}

func TestEqual(t *testing.T) {
	a := mustAtom('a').Union(mustAtom('b'))
	b := mustAtom('b').Union(mustAtom('a'))
	c := mustAtom('a')
	if !a.Equal(b) {
		t.Error("Equal: (a|b) vs (b|a) should be equal")
	}
	if a.Equal(c) {
		t.Error("Equal: (a|b) vs a should not be equal")
	}
}

func TestIsSubset(t *testing.T) {
	a := mustAtom('a')
	ab := mustAtom('a').Union(mustAtom('b'))
	if !a.IsSubset(ab) {
		t.Error("IsSubset: a should be a subset of (a|b)")
	}
	if ab.IsSubset(a) {
		t.Error("IsSubset: (a|b) should not be a subset of a")
	}
	if !a.IsProperSubset(ab) {
		t.Error("IsProperSubset: a should be a proper subset of (a|b)")
	}
	if a.IsProperSubset(a) {
		t.Error("IsProperSubset: a should not be a proper subset of itself")
	}
}

func TestToRegexNonEmptyForNonEmptyLanguage(t *testing.T) {
	m := mustAtom('a').Concat(mustAtom('b'))
	text := m.ToRegex()
	if text == "" {
		t.Fatal("ToRegex() = \"\", want a non-empty pattern for a non-empty language")
	}
}

func TestToRegexEmptyLanguage(t *testing.T) {
	b := NewBuilder(false)
	s0 := b.AddState()
	b.SetStart(s0)
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	if text := m.ToRegex(); text != "" {
		t.Errorf("ToRegex() = %q for empty language, want \"\"", text)
	}
}

func TestBuilderValidateRejectsDanglingState(t *testing.T) {
	b := NewBuilder(false)
	s0 := b.AddState()
	b.SetStart(s0)
	b.AddAccepting(999)
	if err := b.Validate(); err == nil {
		t.Error("Validate() = nil, want an error for an unregistered accepting state")
	}
}

func TestBuilderRejectsEpsilonInDeterministicMachine(t *testing.T) {
	b := NewBuilder(false)
	s0 := b.AddState()
	s1 := b.AddState()
	b.SetStart(s0)
	b.AddEpsilon(s0, s1)
	if _, err := b.Build(); err == nil {
		t.Error("Build() = nil error, want ErrEpsilonNotAllowed for a deterministic builder")
	}
}

func TestFindFirst(t *testing.T) {
	m := mustAtom('a').Concat(mustAtom('b'))
	match := m.FindFirst("abc")
	if match == nil {
		t.Fatal("FindFirst(\"abc\") = nil, want a match")
	}
	if match.Start != 0 || match.Stop != 2 {
		t.Errorf("FindFirst(\"abc\") = [%d,%d), want [0,2)", match.Start, match.Stop)
	}
}

func TestCardinalityFiniteLanguage(t *testing.T) {
	tests := []struct {
		name string
		m    *FSM
		want int
	}{
		{"single atom", mustAtom('a'), 1},
		{"concat", mustAtom('a').Concat(mustAtom('b')), 1},
		{"union", mustAtom('a').Union(mustAtom('b')), 2},
		{"union of concats", mustAtom('a').Concat(mustAtom('b')).Union(mustAtom('c').Concat(mustAtom('d'))), 2},
	}
	for _, tc := range tests {
		got, err := tc.m.Cardinality()
		if err != nil {
			t.Errorf("%s: Cardinality() error = %v, want nil", tc.name, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%s: Cardinality() = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestCardinalityInfiniteLanguage(t *testing.T) {
	m := mustAtom('a').KleeneStar()
	if _, err := m.Cardinality(); err != ErrInfiniteLanguage {
		t.Errorf("Cardinality() error = %v, want ErrInfiniteLanguage", err)
	}
}

func TestCardinalityIgnoresUnreachableCycle(t *testing.T) {
	// A cycle that cannot be reached from the start state must not make
	// the language appear infinite: ToDFSM only builds superstates reachable
	// from the start, so the cycle never reaches the cycle check.
	b := NewBuilder(true)
	s0 := b.AddState()
	dead := b.AddState()
	b.SetStart(s0)
	b.AddAccepting(s0)
	b.AddTransition(dead, symbol.Of('z'), dead) // self-loop, unreachable from s0
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	got, err := m.Cardinality()
	if err != nil {
		t.Fatalf("Cardinality() error = %v, want nil", err)
	}
	if got != 1 {
		t.Errorf("Cardinality() = %d, want 1 (just the empty string)", got)
	}
}
