// Package regex implements the surface regex dialect this module compiles
// into an NFSM via Thompson's construction: concatenation, alternation
// ('|'), Kleene star ('*'), grouping, and backslash-escaped literals.
// Anchors, character classes, backreferences, capture groups and Unicode
// categories are out of scope, mirroring spec.md's Non-goals.
//
// The public entry points, Compile/MustCompile/CompileWithConfig and the
// resulting Regexp's Match/Find*/Search* methods, mirror coregex's root
// Regex facade's naming register.
package regex

import (
	"github.com/jmaarleveld/automata/fsm"
	"github.com/jmaarleveld/automata/match"
	"github.com/jmaarleveld/automata/prefilter"
)

// Regexp is a compiled pattern: an NFSM built by Thompson's construction
// from the pattern's syntax tree, plus (when Config.EnablePrefilter and
// the pattern qualifies) an Aho-Corasick prefilter over its literal
// branches.
//
// A Regexp is safe for concurrent read-only use: the underlying FSM and
// Prefilter are immutable once built, and Find/Search methods build a
// fresh runner.Runner per call.
type Regexp struct {
	pattern   string
	machine   *fsm.FSM
	warnings  []Warning
	prefilter *prefilter.Prefilter
}

// Compile parses and compiles pattern with DefaultConfig.
func Compile(pattern string) (*Regexp, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern fails to compile.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic("regex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig parses and compiles pattern under the given Config.
func CompileWithConfig(pattern string, config Config) (*Regexp, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	result, err := parsePattern(pattern, config.MaxGroupDepth)
	if err != nil {
		return nil, err
	}
	re := &Regexp{
		pattern:  pattern,
		machine:  result.Tree.toNFSM(),
		warnings: result.Warnings,
	}
	if config.EnablePrefilter {
		if literals, ok := extractLiteralAlternation(result.Tree); ok {
			if pf, err := prefilter.Build(literals); err == nil {
				re.prefilter = pf
			}
		}
	}
	return re, nil
}

// String returns the source pattern re was compiled from.
func (re *Regexp) String() string {
	return re.pattern
}

// Warnings returns the non-fatal epsilon-fill notes collected while
// parsing re's pattern.
func (re *Regexp) Warnings() []Warning {
	return re.warnings
}

// HasPrefilter reports whether re built an Aho-Corasick prefilter over a
// pure literal alternation.
func (re *Regexp) HasPrefilter() bool {
	return re.prefilter != nil
}

// Match reports whether re matches word in its entirety.
func (re *Regexp) Match(word string) bool {
	return re.machine.Run(word)
}

// MatchString reports whether re matches word in its entirety. It is an
// alias for Match: coregx distinguishes byte-oriented Match from
// string-oriented MatchString, but this port works in strings throughout,
// so the two verbs coincide.
func (re *Regexp) MatchString(word string) bool {
	return re.Match(word)
}

// FindFirst returns the first sliding match in word, or nil.
func (re *Regexp) FindFirst(word string) *match.Match {
	return re.machine.FindFirst(word)
}

// FindLast returns the best sliding match found before the search
// terminates, or nil.
func (re *Regexp) FindLast(word string) *match.Match {
	return re.machine.FindLast(word)
}

// FindAll returns every sliding match found while scanning word.
func (re *Regexp) FindAll(word string) []match.Match {
	return re.machine.FindAll(word)
}

// SearchFirst returns the match starting at the earliest offset in word
// at which re matches at all. When re has a prefilter, candidate offsets
// from the Aho-Corasick automaton are checked in order and the machine is
// only invoked to confirm a candidate, rather than probing every offset.
func (re *Regexp) SearchFirst(word string) *match.Match {
	if re.prefilter == nil {
		return re.machine.SearchFirst(word)
	}
	return re.searchWithPrefilter(word)
}

// SearchLast returns the match found by scanning start offsets from the
// end of word backwards.
func (re *Regexp) SearchLast(word string) *match.Match {
	return re.machine.SearchLast(word)
}

// SearchLongest returns the longest match found anywhere in word.
func (re *Regexp) SearchLongest(word string) *match.Match {
	return re.machine.SearchLongest(word)
}

// SearchShortest returns the shortest match found anywhere in word.
func (re *Regexp) SearchShortest(word string) *match.Match {
	return re.machine.SearchShortest(word)
}

// Cardinality returns the number of distinct strings re matches in full,
// or fsm.ErrInfiniteLanguage if the language is infinite (e.g. re's
// pattern uses a Kleene star over a non-empty branch).
func (re *Regexp) Cardinality() (int, error) {
	return re.machine.Cardinality()
}

// SearchAll returns every match found at every start offset in word.
func (re *Regexp) SearchAll(word string) []match.Match {
	if re.prefilter == nil {
		return re.machine.SearchAll(word)
	}
	haystack := []byte(word)
	var out []match.Match
	at := 0
	for at <= len(haystack) {
		c := re.prefilter.Find(haystack, at)
		if c == nil {
			break
		}
		runeStart := runeOffset(word, c.Start)
		for _, m := range re.machine.FindAll(word[c.Start:]) {
			out = append(out, match.New(runeStart+m.Start, runeStart+m.Stop, word))
		}
		at = c.Start + 1
	}
	return out
}

// runeOffset converts byteOffset, a byte index into word (as produced by
// prefilter.Prefilter.Find, which operates on []byte(word)), into the
// equivalent rune index, matching the rune-indexed offsets used throughout
// fsm/runner/match for multi-byte-safe slicing.
func runeOffset(word string, byteOffset int) int {
	return len([]rune(word[:byteOffset]))
}

// searchWithPrefilter confirms Aho-Corasick candidates with the underlying
// machine in order and returns the first confirmed match. It returns nil
// once the candidates run out, without scanning the remaining offsets: a
// prefilter is only built for a pure alternation of literals, so every
// match starts where one of those literals occurs.
func (re *Regexp) searchWithPrefilter(word string) *match.Match {
	haystack := []byte(word)
	at := 0
	for at <= len(haystack) {
		c := re.prefilter.Find(haystack, at)
		if c == nil {
			return nil
		}
		if m := re.machine.FindFirst(word[c.Start:]); m != nil {
			runeStart := runeOffset(word, c.Start)
			confirmed := match.New(runeStart+m.Start, runeStart+m.Stop, word)
			return &confirmed
		}
		at = c.Start + 1
	}
	return nil
}
