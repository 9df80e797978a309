package fsm

import (
	"sort"
	"strings"

	"github.com/jmaarleveld/automata/state"
	"github.com/jmaarleveld/automata/symbol"
)

// statePair is a (source, target) lookup key used while building the
// regexes map in ToRegex, mirroring the original's (old, new) tuple keys.
type statePair struct {
	From, To state.ID
}

// metaChars are the characters this module's own regex dialect (see the
// regex package) treats specially. ToRegex escapes them when rendering a
// literal symbol so the text it produces can be fed back into
// regex.Compile and round-trip to an equivalent machine.
const metaChars = `*|()\`

func renderSymbol(sym symbol.Symbol) string {
	if sym.IsEpsilon() {
		return ""
	}
	r := rune(sym)
	if strings.ContainsRune(metaChars, r) {
		return "\\" + string(r)
	}
	return string(r)
}

// ToRegex converts the machine to an equivalent regex pattern via state
// elimination, mirroring NeFSM.to_regex. States are eliminated in
// ascending state.ID order rather than the original's arbitrary
// `states.pop()` (a Python set, whose iteration order is not part of the
// language's contract); this only changes the textual shape of
// intermediate alternations, never the recognized language, and makes the
// output reproducible.
//
// This also corrects a bug in the original: its initial regexes map is
// built with a plain assignment (`regexes[(old, new)] = symbol`), so when
// two distinct symbols both lead directly from the same source state to
// the same target state, only the symbol processed last survives — the
// other edge is silently dropped from the resulting pattern. This port
// alternation-merges parallel edges between the same state pair from the
// start, the same way the elimination step itself merges repeated (r, s)
// pairs.
func (f *FSM) ToRegex() string {
	m := f.asNondeterministic().ToNormalForm()
	accept := firstOf(m.accepting)

	regexes := make(map[statePair]string)
	m.transitions.Range(func(edge Edge, targets []state.ID) {
		text := renderSymbol(edge.Symbol)
		for _, to := range targets {
			pair := statePair{edge.From, to}
			if existing, ok := regexes[pair]; ok {
				regexes[pair] = "(" + existing + ")|(" + text + ")"
			} else {
				regexes[pair] = text
			}
		}
	})

	pool := make(map[state.ID]struct{}, len(m.states))
	for s := range m.states {
		pool[s] = struct{}{}
	}

	var toEliminate []state.ID
	for s := range m.states {
		if s != m.start && s != accept {
			toEliminate = append(toEliminate, s)
		}
	}
	sort.Slice(toEliminate, func(i, j int) bool { return toEliminate[i] < toEliminate[j] })

	for _, q := range toEliminate {
		delete(pool, q)
		loop, hasLoop := regexes[statePair{q, q}]
		middle := ""
		if hasLoop {
			middle = loop + "*"
		}
		for r := range pool {
			rq, ok := regexes[statePair{r, q}]
			if !ok {
				continue
			}
			for s := range pool {
				qs, ok := regexes[statePair{q, s}]
				if !ok {
					continue
				}
				combined := rq + middle + qs
				rs := statePair{r, s}
				if existing, ok := regexes[rs]; ok {
					regexes[rs] = "(" + existing + ")|(" + combined + ")"
				} else {
					regexes[rs] = combined
				}
			}
		}
	}

	if text, ok := regexes[statePair{m.start, accept}]; ok {
		return text
	}
	return ""
}
