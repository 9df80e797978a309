// Package match defines the result record returned by a completed run of
// the generic runner, mirroring automata.match.SimpleMatch from the
// original implementation.
package match

// Match describes a matched region of an input string: the half-open range
// [Start, Stop) within Source that the run consumed.
type Match struct {
	Start  int
	Stop   int
	Source string
}

// New constructs a Match, matching SimpleMatch's constructor signature
// (start, stop, string).
func New(start, stop int, source string) Match {
	return Match{Start: start, Stop: stop, Source: source}
}

// Len returns the number of runes spanned by the match, i.e. Stop - Start.
func (m Match) Len() int {
	return m.Stop - m.Start
}

// Text returns the substring of Source the match covers.
func (m Match) Text() string {
	runes := []rune(m.Source)
	if m.Start < 0 || m.Stop > len(runes) || m.Start > m.Stop {
		return ""
	}
	return string(runes[m.Start:m.Stop])
}

// String renders the match for debug output.
func (m Match) String() string {
	return m.Text()
}
