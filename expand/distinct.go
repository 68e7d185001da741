package expand

import (
	"github.com/frenchy64/quotefold/form"
)

// DistinctConstantKeys reports whether every key is a constant and no
// two keys are equivalent.  Equivalence is structural value equality
// (form.Equal), matching the host's own notion of key equality.
//
// The check is pairwise, O(k^2) in key count.  Source-code map literals
// rarely exceed a handful of entries, and exact host equivalence
// matters more here than asymptotics.
func DistinctConstantKeys(keys []*form.Node) bool {
	return distinctConstants(keys)
}

// DistinctConstants is the set variant of DistinctConstantKeys, applied
// to all elements instead of alternating keys.
func DistinctConstants(elems []*form.Node) bool {
	return distinctConstants(elems)
}

func distinctConstants(elems []*form.Node) bool {
	for i, e := range elems {
		if !IsConstant(e) {
			return false
		}
		for j := 0; j < i; j++ {
			if form.Equal(elems[j], e) {
				return false
			}
		}
	}
	return true
}

// findConstantDuplicate returns the second occurrence of a
// compile-time-equal pair in elems, or nil.  An entry participates when
// its value is fully decided at expansion time (Liftable); realizing a
// liftable form only swaps empty collections for the shared canonical
// instances, which form.Equal already treats as equal, so entries
// compare unrealized.  This keeps the check independent of the folding
// level: whether or not the lift path runs, the same templates are
// rejected.  Entries with runtime content are skipped: duplicates among
// those are only knowable at runtime, where the constructors make them
// legal.
func findConstantDuplicate(elems []*form.Node) *form.Node {
	for i, e := range elems {
		if !Liftable(e) {
			continue
		}
		for j := 0; j < i; j++ {
			if Liftable(elems[j]) && form.Equal(elems[j], e) {
				return e
			}
		}
	}
	return nil
}
