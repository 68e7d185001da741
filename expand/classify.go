package expand

import (
	"github.com/frenchy64/quotefold/form"
)

// IsConstant reports whether n is a self-evaluating constant: nil,
// booleans, numbers, characters, strings, keywords, or an empty
// collection.
//
// Symbols are never constants, even though a resolved symbol evaluates
// to itself: the value an unquoted symbol stands for is not known until
// namespace resolution, so treating one as a constant key or element
// would fold away a runtime dependency.
func IsConstant(n *form.Node) bool {
	switch n.Type {
	case form.NilType, form.BoolType, form.NumberType,
		form.CharType, form.StringType, form.KeywordType:
		return true
	case form.ListType, form.VectorType, form.MapType, form.SetType:
		return n.Count() == 0
	default:
		return false
	}
}

// Elements returns the top-level element sequence of a collection node:
// the flattened key/value sequence for maps, Values otherwise.
func Elements(n *form.Node) []*form.Node {
	if n.Type != form.MapType {
		return n.Values
	}
	res := make([]*form.Node, 0, 2*len(n.Keys))
	for i := range n.Keys {
		res = append(res, n.Keys[i], n.Values[i])
	}
	return res
}
