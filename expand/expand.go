package expand

import (
	"github.com/frenchy64/quotefold/debug"
	"github.com/frenchy64/quotefold/form"
)

type expander struct {
	opts    *options
	gensyms map[string]*form.Node
	depth   int
}

// Expand expands a quote template into an output expression.
//
// The rule order per node is fixed: symbols resolve to literals,
// unquotes pass their payload through verbatim, then each collection
// picks the first applicable strategy among literal lift, direct
// constructor call, and the generic apply-over-concat fallback.
func Expand(n *form.Node, opts ...Option) (*Expr, error) {
	ex := &expander{
		opts:    newOptions(opts),
		gensyms: map[string]*form.Node{},
	}
	return ex.expand(n)
}

func (ex *expander) expand(n *form.Node) (*Expr, error) {
	if ex.depth >= ex.opts.maxDepth {
		return nil, NewExpandErr(ErrDepth, n)
	}
	ex.depth++
	defer func() { ex.depth-- }()

	if debug.Expand() {
		debug.Logf("expand %s depth=%d\n", n.Type, ex.depth)
	}

	switch n.Type {
	case form.SymbolType:
		if isGensym(n) {
			return NewLiteral(ex.gensym(n)), nil
		}
		sym, err := ex.opts.resolver.Resolve(n)
		if err != nil {
			return nil, err
		}
		return NewLiteral(sym), nil
	case form.UnquoteType:
		child := n.Child()
		if child.Type == form.SpliceType {
			return nil, NewExpandErr(ErrSplice, child)
		}
		return NewVerbatim(child), nil
	case form.SpliceType:
		// legal only as a collection element
		return nil, NewExpandErr(ErrSplice, n)
	case form.ListType:
		return ex.expandSeq(n, PrimList)
	case form.VectorType:
		return ex.expandSeq(n, PrimVector)
	case form.MapType:
		return ex.expandMap(n)
	case form.SetType:
		return ex.expandSet(n)
	default:
		// nil, booleans, numbers, chars, strings, keywords
		return NewLiteral(n), nil
	}
}

func (ex *expander) expandSeq(n *form.Node, prim Primitive) (*Expr, error) {
	elems := n.Values
	fold := ex.opts.folding
	if len(elems) == 0 && fold.Has(FoldEmpty) {
		return NewLiteral(form.Empty(n.Type)), nil
	}
	if fold.Has(FoldCollections) && AllLiftable(elems) {
		lit, err := ex.makeLiteral(n)
		if err != nil {
			return nil, err
		}
		if debug.Lift() {
			debug.Logf("lift %s of %d elements\n", n.Type, len(elems))
		}
		return NewLiteral(lit), nil
	}
	if !hasSplice(elems) && fold.Has(DirectConstructors) {
		args, err := ex.expandEach(elems)
		if err != nil {
			return nil, err
		}
		return NewCall(prim, args...), nil
	}
	return ex.concatFallback(elems, prim)
}

func (ex *expander) expandMap(n *form.Node) (*Expr, error) {
	if dup := findConstantDuplicate(n.Keys); dup != nil {
		return nil, NewExpandErr(ErrDuplicateKey, dup)
	}
	fold := ex.opts.folding
	kvs := Elements(n)
	if len(kvs) == 0 && fold.Has(FoldEmpty) {
		return NewLiteral(form.EmptyMap), nil
	}
	if fold.Has(FoldCollections) && AllLiftable(kvs) {
		lit, err := ex.makeLiteral(n)
		if err != nil {
			return nil, err
		}
		return NewLiteral(lit), nil
	}
	if !hasSplice(kvs) {
		// singleton maps have trivially distinct keys
		if fold.Has(DirectMaps) && (len(n.Keys) == 1 || DistinctConstantKeys(n.Keys)) {
			args, err := ex.expandEach(kvs)
			if err != nil {
				return nil, err
			}
			return NewCall(PrimArrayMap, args...), nil
		}
		if fold.Has(DirectConstructors) {
			args, err := ex.expandEach(kvs)
			if err != nil {
				return nil, err
			}
			return NewCall(PrimHashMap, args...), nil
		}
	}
	return ex.concatFallback(kvs, PrimHashMap)
}

func (ex *expander) expandSet(n *form.Node) (*Expr, error) {
	if dup := findConstantDuplicate(n.Values); dup != nil {
		return nil, NewExpandErr(ErrDuplicateElement, dup)
	}
	elems := n.Values
	fold := ex.opts.folding
	if len(elems) == 0 && fold.Has(FoldEmpty) {
		return NewLiteral(form.EmptySet), nil
	}
	if fold.Has(FoldCollections) && AllLiftable(elems) {
		lit, err := ex.makeLiteral(n)
		if err != nil {
			return nil, err
		}
		return NewLiteral(lit), nil
	}
	if !hasSplice(elems) {
		if fold.Has(DirectSets) && (len(elems) == 1 || DistinctConstants(elems)) {
			args, err := ex.expandEach(elems)
			if err != nil {
				return nil, err
			}
			return NewCall(PrimHashSet, args...), nil
		}
		if fold.Has(DirectConstructors) {
			args, err := ex.expandEach(elems)
			if err != nil {
				return nil, err
			}
			return NewCall(PrimHashSet, args...), nil
		}
	}
	return ex.concatFallback(elems, PrimHashSet)
}

// concatFallback is the verbose construction path: every non-splice
// element becomes a singleton sequence, splice payloads pass through
// unwrapped, and the concatenation is coerced back into the target
// collection.
func (ex *expander) concatFallback(elems []*form.Node, prim Primitive) (*Expr, error) {
	units, err := ex.spliceUnits(elems)
	if err != nil {
		return nil, err
	}
	seq := NewCall(PrimSeq, NewCall(PrimConcat, units...))
	if prim == PrimList {
		return seq, nil
	}
	return NewApply(prim, seq), nil
}

func (ex *expander) spliceUnits(elems []*form.Node) ([]*Expr, error) {
	units := make([]*Expr, 0, len(elems))
	for _, e := range elems {
		if e.Type == form.SpliceType {
			child := e.Child()
			if child.Type == form.SpliceType {
				return nil, NewExpandErr(ErrSplice, child)
			}
			units = append(units, NewVerbatim(child))
			continue
		}
		x, err := ex.expand(e)
		if err != nil {
			return nil, err
		}
		units = append(units, NewCall(PrimList, x))
	}
	return units, nil
}

func (ex *expander) expandEach(elems []*form.Node) ([]*Expr, error) {
	res := make([]*Expr, len(elems))
	for i, e := range elems {
		x, err := ex.expand(e)
		if err != nil {
			return nil, err
		}
		res[i] = x
	}
	return res, nil
}

// makeLiteral realizes a liftable form as its constant value.  Empty
// collections become the canonical shared instances.  Duplicate
// constant keys or elements surface here as compile-time errors rather
// than silently collapsing.
func (ex *expander) makeLiteral(n *form.Node) (*form.Node, error) {
	if IsConstant(n) {
		if n.Type.IsColl() {
			return form.Empty(n.Type), nil
		}
		return n, nil
	}
	switch n.Type {
	case form.ListType, form.VectorType:
		vals, err := ex.makeLiterals(n.Values)
		if err != nil {
			return nil, err
		}
		return form.FromSlice(n.Type, vals), nil
	case form.SetType:
		vals, err := ex.makeLiterals(n.Values)
		if err != nil {
			return nil, err
		}
		if dup := literalDuplicate(vals); dup != nil {
			return nil, NewExpandErr(ErrDuplicateElement, dup)
		}
		return form.FromSlice(form.SetType, vals), nil
	case form.MapType:
		keys, err := ex.makeLiterals(n.Keys)
		if err != nil {
			return nil, err
		}
		vals, err := ex.makeLiterals(n.Values)
		if err != nil {
			return nil, err
		}
		if dup := literalDuplicate(keys); dup != nil {
			return nil, NewExpandErr(ErrDuplicateKey, dup)
		}
		kvs := make([]form.KeyVal, len(keys))
		for i := range keys {
			kvs[i] = form.KeyVal{Key: keys[i], Val: vals[i]}
		}
		return form.FromKeyVals(kvs), nil
	}
	return nil, NewExpandErr(ErrSplice, n)
}

func (ex *expander) makeLiterals(elems []*form.Node) ([]*form.Node, error) {
	res := make([]*form.Node, len(elems))
	for i, e := range elems {
		v, err := ex.makeLiteral(e)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// literalDuplicate is the fully-realized variant of
// findConstantDuplicate: after lifting, every entry is a value, so
// nothing is exempt.
func literalDuplicate(vals []*form.Node) *form.Node {
	for i, v := range vals {
		for j := 0; j < i; j++ {
			if form.Equal(vals[j], v) {
				return v
			}
		}
	}
	return nil
}
