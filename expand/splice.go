package expand

import (
	"github.com/frenchy64/quotefold/form"
)

// HasTopSplice reports whether any top-level element of a collection
// node is an unquote-splicing marker.  It does not recurse: a splice
// two levels down blocks only the collection it appears in.
func HasTopSplice(n *form.Node) bool {
	return hasSplice(Elements(n))
}

func hasSplice(elems []*form.Node) bool {
	for _, e := range elems {
		if e.Type == form.SpliceType {
			return true
		}
	}
	return false
}
