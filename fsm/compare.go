package fsm

// IsSubset reports whether f's language is a subset of other's,
// mirroring DFSM.is_subset.
func (f *FSM) IsSubset(other *FSM) bool {
	return f.Difference(other).IsEmpty()
}

// IsProperSubset reports whether f's language is a proper subset of
// other's, mirroring DFSM.is_proper_subset.
func (f *FSM) IsProperSubset(other *FSM) bool {
	return f.IsSubset(other) && !other.Difference(f).IsEmpty()
}

// IsSuperset reports whether f's language is a superset of other's,
// mirroring DFSM.is_superset.
func (f *FSM) IsSuperset(other *FSM) bool {
	return other.IsSubset(f)
}

// IsProperSuperset reports whether f's language is a proper superset of
// other's, mirroring DFSM.is_proper_superset.
func (f *FSM) IsProperSuperset(other *FSM) bool {
	return f.IsSuperset(other) && !f.Difference(other).IsEmpty()
}

// Equal reports whether f and other recognize the same language.
//
// This corrects a bug in the original: DFSM.__eq__ returns
// `bool(self - other) and bool(other - self)`, i.e. it is true exactly
// when BOTH differences are non-empty — the opposite of language
// equality, which requires both differences to be EMPTY. This port
// requires both differences to vanish, matching what every other
// comparison method in this file (and the original source itself, for
// is_subset/is_superset) already does correctly.
func (f *FSM) Equal(other *FSM) bool {
	return f.Difference(other).IsEmpty() && other.Difference(f).IsEmpty()
}
