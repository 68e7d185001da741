package expand

import (
	"github.com/frenchy64/quotefold/form"
)

// Liftable reports whether n can be collapsed to a single literal
// value with no runtime computation.  The rule is recursive over the
// form tree: a collection is liftable iff it has no top-level splice
// and every element is a constant or a liftable nested collection.
// Unquotes and symbols at any level defeat lifting for the collections
// containing them.
//
// Liftable does not check key or element distinctness; lifting a map or
// set with duplicate constant keys fails later, loudly, when the
// literal is built.
func Liftable(n *form.Node) bool {
	if IsConstant(n) {
		return true
	}
	if !n.Type.IsColl() {
		return false
	}
	return AllLiftable(Elements(n))
}

// AllLiftable reports whether a top-level element sequence permits
// lifting the collection that holds it.  It is compositional:
// AllLiftable(xs ++ ys) == AllLiftable(xs) && AllLiftable(ys).
func AllLiftable(elems []*form.Node) bool {
	if hasSplice(elems) {
		return false
	}
	for _, e := range elems {
		if IsConstant(e) {
			continue
		}
		if e.Type.IsColl() && Liftable(e) {
			continue
		}
		// unquote, splice, symbol
		return false
	}
	return true
}
