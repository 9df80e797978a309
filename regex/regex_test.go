package regex

import (
	"testing"

	"github.com/jmaarleveld/automata/fsm"
)

func TestScenarios(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
		accept  []string
		reject  []string
	}{
		{"literal a", "a", []string{"a"}, []string{"", "b", "aa", "ab"}},
		{"concat ab", "ab", []string{"ab"}, []string{"", "a", "b", "ba", "aab"}},
		{"star a*", "a*", []string{"", "a", "aaa"}, []string{"ab", "baa"}},
		{"union a|b", "a|b", []string{"a", "b"}, []string{"", "ab", "ba", "aa"}},
		{"star of union (a|b)*", "(a|b)*", []string{"", "abba", "aaaa"}, []string{"abc"}},
		{"star of group (ab)*", "(ab)*", []string{"", "ab", "abab"}, []string{"a", "abb", "aba"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			re, err := Compile(tc.pattern)
			if err != nil {
				t.Fatalf("Compile(%q) error: %v", tc.pattern, err)
			}
			for _, word := range tc.accept {
				if !re.Match(word) {
					t.Errorf("Compile(%q).Match(%q) = false, want true", tc.pattern, word)
				}
			}
			for _, word := range tc.reject {
				if re.Match(word) {
					t.Errorf("Compile(%q).Match(%q) = true, want false", tc.pattern, word)
				}
			}
		})
	}
}

func TestSubsetConstructionRoundTripsThroughRegex(t *testing.T) {
	re, err := Compile("a|b")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	dfsm := re.machine.ToDFSM()
	text := dfsm.ToRegex()
	if text != "(a)|(b)" && text != "(b)|(a)" {
		t.Errorf("ToRegex(ToDFSM(compile(\"a|b\"))) = %q, want one of \"(a)|(b)\", \"(b)|(a)\"", text)
	}
}

func TestStateEliminationOnConcatIsLanguageEquivalent(t *testing.T) {
	re, err := Compile("abc")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	dfsm := re.machine.ToDFSM()
	text := dfsm.ToRegex()
	roundTrip, err := Compile(text)
	if err != nil {
		t.Fatalf("Compile(%q) (the eliminated regex) error: %v", text, err)
	}
	for _, word := range []string{"abc", "", "ab", "abcd", "abcc"} {
		if got, want := roundTrip.Match(word), re.Match(word); got != want {
			t.Errorf("round-tripped pattern %q: Match(%q) = %v, want %v (from original \"abc\")", text, word, got, want)
		}
	}
}

func TestUnbalancedParens(t *testing.T) {
	if _, err := Compile("(a"); err == nil {
		t.Error("Compile(\"(a\") = nil error, want ErrUnterminatedGroup")
	}
	if _, err := Compile("a)"); err == nil {
		t.Error("Compile(\"a)\") = nil error, want ErrUnbalancedParens")
	}
}

func TestTrailingEscape(t *testing.T) {
	if _, err := Compile(`a\`); err == nil {
		t.Error(`Compile("a\\") = nil error, want ErrTrailingEscape`)
	}
}

func TestEscapedMetacharacter(t *testing.T) {
	re, err := Compile(`a\*b`)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if !re.Match("a*b") {
		t.Error(`Match("a*b") = false, want true for pattern a\*b`)
	}
	if re.Match("aab") {
		t.Error(`Match("aab") = true, want false for pattern a\*b`)
	}
}

func TestDegenerateOperatorsWarnAndCompile(t *testing.T) {
	cases := []struct {
		pattern string
		accept  string
	}{
		{"*a", "a"},   // leading star: epsilon-filled, so *a means (epsilon)*a? actually leads to star having epsilon operand
		{"|a", "a"},   // leading union: epsilon|a accepts "" and "a"
		{"a|", "a"},   // trailing union: a|epsilon accepts "a" and ""
		{"a||b", "a"}, // doubled union
		{"", ""},      // empty pattern is pure epsilon
	}
	for _, tc := range cases {
		re, err := Compile(tc.pattern)
		if err != nil {
			t.Fatalf("Compile(%q) error: %v", tc.pattern, err)
		}
		if !re.Match(tc.accept) {
			t.Errorf("Compile(%q).Match(%q) = false, want true", tc.pattern, tc.accept)
		}
		if len(re.Warnings()) == 0 {
			t.Errorf("Compile(%q).Warnings() is empty, want at least one epsilon-fill warning", tc.pattern)
		}
	}
}

func TestEmptyPatternMatchesOnlyEmptyString(t *testing.T) {
	re, err := Compile("")
	if err != nil {
		t.Fatalf("Compile(\"\") error: %v", err)
	}
	if !re.Match("") {
		t.Error("Compile(\"\").Match(\"\") = false, want true")
	}
	if re.Match("a") {
		t.Error("Compile(\"\").Match(\"a\") = true, want false")
	}
}

func TestStarBindsTighterThanUnion(t *testing.T) {
	// a|b* should parse as a|(b*), not (a|b)*: "" and "bbb" match via b*,
	// "a" matches via the a branch, but "ab" must not match.
	re, err := Compile("a|b*")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	for _, word := range []string{"", "a", "b", "bbb"} {
		if !re.Match(word) {
			t.Errorf("Match(%q) = false, want true", word)
		}
	}
	if re.Match("ab") {
		t.Error("Match(\"ab\") = true, want false (a|b* must not equal (a|b)*)")
	}
}

func TestSearchAll(t *testing.T) {
	re, err := Compile("ab")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	matches := re.SearchAll("xxabxxab")
	if len(matches) != 2 {
		t.Fatalf("SearchAll found %d matches, want 2", len(matches))
	}
	if matches[0].Start != 2 || matches[1].Start != 6 {
		t.Errorf("SearchAll starts = [%d, %d], want [2, 6]", matches[0].Start, matches[1].Start)
	}
}

func TestPrefilterBuildsForLiteralAlternation(t *testing.T) {
	re, err := Compile("cat|dog|bird")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if !re.HasPrefilter() {
		t.Error("HasPrefilter() = false, want true for a pure literal alternation")
	}
	if !re.Match("dog") {
		t.Error("Match(\"dog\") = false, want true")
	}
	m := re.SearchFirst("the quick brown fox has a cat")
	if m == nil {
		t.Fatal("SearchFirst found no match, want one at \"cat\"")
	}
	if m.Text() != "cat" {
		t.Errorf("SearchFirst matched %q, want \"cat\"", m.Text())
	}
}

func TestPrefilterSearchHandlesMultibyteRunesBeforeMatch(t *testing.T) {
	// "café " is 5 runes but 6 bytes (é is 2 bytes in UTF-8): the correct
	// rune-indexed match for "cat" is [5,8), not the byte-indexed [6,9).
	re, err := Compile("cat|dog")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if !re.HasPrefilter() {
		t.Fatal("HasPrefilter() = false, want true for a pure literal alternation")
	}
	word := "café cat"
	m := re.SearchFirst(word)
	if m == nil {
		t.Fatal("SearchFirst found no match, want one at \"cat\"")
	}
	if m.Start != 5 || m.Stop != 8 {
		t.Errorf("SearchFirst(%q) = [%d,%d), want [5,8)", word, m.Start, m.Stop)
	}
	if m.Text() != "cat" {
		t.Errorf("SearchFirst(%q).Text() = %q, want \"cat\"", word, m.Text())
	}

	all := re.SearchAll(word)
	if len(all) != 1 {
		t.Fatalf("SearchAll(%q) found %d matches, want 1", word, len(all))
	}
	if all[0].Start != 5 || all[0].Stop != 8 {
		t.Errorf("SearchAll(%q)[0] = [%d,%d), want [5,8)", word, all[0].Start, all[0].Stop)
	}
	if all[0].Text() != "cat" {
		t.Errorf("SearchAll(%q)[0].Text() = %q, want \"cat\"", word, all[0].Text())
	}
}

func TestPrefilterNotBuiltForNonLiteralPattern(t *testing.T) {
	re, err := Compile("a*")
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	if re.HasPrefilter() {
		t.Error("HasPrefilter() = true, want false for a* (not a literal alternation)")
	}
}

func TestCardinality(t *testing.T) {
	re := MustCompile("a|b")
	got, err := re.Cardinality()
	if err != nil {
		t.Fatalf("Cardinality() error = %v, want nil", err)
	}
	if got != 2 {
		t.Errorf("Cardinality() = %d, want 2", got)
	}
}

func TestCardinalityInfiniteForKleeneStar(t *testing.T) {
	re := MustCompile("a*")
	if _, err := re.Cardinality(); err != fsm.ErrInfiniteLanguage {
		t.Errorf("Cardinality() error = %v, want fsm.ErrInfiniteLanguage", err)
	}
}
