package regex

import "github.com/jmaarleveld/automata/fsm"

// toNFSM lowers a syntax tree into an NFSM via Thompson's construction,
// mirroring _tree_to_fsm: a leaf becomes fsm.AtomMatcher (an epsilon leaf,
// left behind by an epsilon fill, produces a two-state machine recognizing
// just the empty string, since AtomMatcher(symbol.Epsilon) places an
// unobservable edge from its start straight to its accepting state), and the
// three operator kinds delegate directly to the corresponding NFSM algebra
// operation.
func (n *Node) toNFSM() *fsm.FSM {
	switch n.Kind {
	case Leaf:
		return fsm.AtomMatcher(n.Symbol)
	case Union:
		return n.Left.toNFSM().Union(n.Right.toNFSM())
	case Concat:
		return n.Left.toNFSM().Concat(n.Right.toNFSM())
	case KleeneStar:
		return n.Left.toNFSM().KleeneStar()
	default:
		panic("regex: unreachable node kind")
	}
}

// collectUnionBranches flattens a (possibly nested) Union tree into its
// leaf branches, left to right.
func collectUnionBranches(n *Node) []*Node {
	if n.Kind != Union {
		return []*Node{n}
	}
	return append(collectUnionBranches(n.Left), collectUnionBranches(n.Right)...)
}

// literalText returns the fixed string a Concat/Leaf-only subtree matches,
// and false if the subtree contains a Union or KleeneStar (i.e. is not a
// single fixed string).
func literalText(n *Node) (string, bool) {
	switch n.Kind {
	case Leaf:
		if n.Symbol.IsEpsilon() {
			return "", true
		}
		return string(rune(n.Symbol)), true
	case Concat:
		left, ok := literalText(n.Left)
		if !ok {
			return "", false
		}
		right, ok := literalText(n.Right)
		if !ok {
			return "", false
		}
		return left + right, true
	default:
		return "", false
	}
}

// extractLiteralAlternation reports the fixed-string branches of a tree
// that is purely an alternation of fixed strings (no nested union or star
// inside any branch), and whether the tree qualifies at all. A tree with
// fewer than two branches, or any branch containing its own union/star, is
// not a candidate for Aho-Corasick prefiltering.
func extractLiteralAlternation(n *Node) ([]string, bool) {
	branches := collectUnionBranches(n)
	if len(branches) < 2 {
		return nil, false
	}
	literals := make([]string, 0, len(branches))
	for _, b := range branches {
		text, ok := literalText(b)
		if !ok || text == "" {
			return nil, false
		}
		literals = append(literals, text)
	}
	return literals, true
}
