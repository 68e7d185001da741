// Package form defines the representation of quote template forms.
//
// # Overview
//
// A quote template (the body of a syntax-quote) is represented as a tree
// of [Node] values.  The tree is produced by the reader
// (github.com/frenchy64/quotefold/parse) and consumed exactly once by the
// expander (github.com/frenchy64/quotefold/expand).
//
// The Node works as a recursive tagged union, where values are placed in
// fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NilType: nil
//   - BoolType: true/false
//   - NumberType: numeric value (int64 or float64)
//   - CharType: character literal
//   - StringType: string value
//   - KeywordType: keyword, name stored with its leading colon
//   - SymbolType: symbol, possibly namespace-qualified
//   - ListType, VectorType, SetType: ordered elements in Values
//   - MapType: parallel Keys and Values slices
//   - UnquoteType, SpliceType: escape markers with one child in Values[0]
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	n := form.FromInt(42)
//	k := form.Keyword("a")
//	v := form.FromSlice(form.VectorType, []*form.Node{n})
//	m := form.FromKeyVals([]form.KeyVal{{Key: k, Val: n}})
//
// # Equivalence
//
// [Compare] defines a structural total order over nodes and
// [Compare](a, b) == 0 is the value-equivalence relation used for
// duplicate key and duplicate element detection during expansion.
// Integers and floats are never equivalent.  [Node.Hash] is consistent
// with this relation.
//
// # Empty Collections
//
// [EmptyList], [EmptyVector], [EmptyMap] and [EmptySet] are canonical
// shared instances.  They must not be mutated.
//
// # Thread Safety
//
// Node trees are not thread-safe.  Independent trees may be processed
// concurrently without coordination.
package form
