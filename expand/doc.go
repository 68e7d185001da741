// Package expand implements syntax-quote expansion with constant folding.
//
// # Overview
//
// [Expand] takes a quote template (a form tree, see
// github.com/frenchy64/quotefold/form) and decides, for every node,
// whether the result can be emitted as a compile-time literal or must be
// built by a runtime construction expression.  The result is an [Expr]
// tree: literals carry fully realized constant values, calls name the
// runtime collection constructor primitives (list, vector, hash-map,
// hash-set, array-map, concat, seq, apply).
//
// # Folding
//
// The folding optimizations are individually selectable via [Folding]
// flags, from [FoldNone] (every collection is built through the generic
// apply/concat path) to [FoldAll]:
//
//   - [FoldEmpty]: empty collections become shared literal instances
//   - [FoldCollections]: collections whose entire subtree is constant
//     collapse to a single literal value
//   - [DirectConstructors]: splice-free collections use a direct
//     constructor call instead of apply over concat
//   - [DirectMaps]: singleton and distinct-constant-key maps use
//     array-backed map construction
//   - [DirectSets]: singleton and distinct-constant sets use direct set
//     construction
//
// # Correctness rules
//
// Symbols are never constants: an unqualified symbol expands to its
// namespace-resolved (or gensym-renamed) form, and a symbol used as a
// map key or set element always forces runtime construction.  Duplicate
// compile-time-equal keys or elements in a raw map or set literal are a
// compile-time error, never silently collapsed.  A splice may only
// appear as an element of a collection.
//
// Expansion is pure: no I/O, no shared mutable state.  Independent
// templates may be expanded concurrently.
package expand
