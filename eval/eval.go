// Package eval runs expanded quote templates against an environment of
// unquote bindings.  It is an executable model of the runtime the
// expander targets, small enough to check expansion output end to end:
// expand a template, evaluate both the verbose and folded output, and
// the values must agree.
package eval

import (
	"fmt"

	"github.com/frenchy64/quotefold/debug"
	"github.com/frenchy64/quotefold/encode"
	"github.com/frenchy64/quotefold/expand"
	"github.com/frenchy64/quotefold/form"
)

// Eval evaluates an output expression.  Literals are their own value,
// verbatims evaluate under env, and calls dispatch to the registered
// primitives.
func Eval(e *expand.Expr, env Env) (*form.Node, error) {
	switch e.Kind {
	case expand.Literal:
		return e.Literal, nil
	case expand.Verbatim:
		return evalForm(e.Verbatim, env)
	case expand.Call:
		args, err := evalArgs(e.Args, env)
		if err != nil {
			return nil, err
		}
		fn := e.Fn
		if fn == expand.PrimApply {
			args, err = spreadLast(args)
			if err != nil {
				return nil, err
			}
			fn = e.Target
		}
		p := Lookup(fn.String())
		if p == nil {
			return nil, fmt.Errorf("%w: no primitive %s", ErrEval, fn)
		}
		if debug.Eval() {
			debug.Logf("eval %s/%d\n", fn, len(args))
		}
		return p.Eval(args)
	}
	return nil, fmt.Errorf("%w: %s expression", ErrEval, e.Kind)
}

func evalArgs(args []*expand.Expr, env Env) ([]*form.Node, error) {
	res := make([]*form.Node, len(args))
	for i, a := range args {
		v, err := Eval(a, env)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}

// spreadLast implements apply: the final argument is a sequence whose
// elements become the tail of the argument list.
func spreadLast(args []*form.Node) ([]*form.Node, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("%w: apply got none", ErrArity)
	}
	last := args[len(args)-1]
	tail, err := seqElems(last)
	if err != nil {
		return nil, err
	}
	return append(args[:len(args)-1:len(args)-1], tail...), nil
}

// evalForm evaluates an escaped form: symbols look up their binding,
// collections evaluate elementwise, and a (quote x) list is x.  General
// calls are outside the model.
func evalForm(n *form.Node, env Env) (*form.Node, error) {
	switch n.Type {
	case form.SymbolType:
		v, ok := env[n.String]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnbound, n.String)
		}
		return v, nil
	case form.ListType:
		if len(n.Values) == 2 &&
			n.Values[0].Type == form.SymbolType && n.Values[0].String == "quote" {
			return n.Values[1], nil
		}
		if len(n.Values) > 0 {
			return nil, fmt.Errorf("%w: call to %s", ErrEval, encode.MustString(n.Values[0]))
		}
		return n, nil
	case form.VectorType:
		elems, err := evalEach(n.Values, env)
		if err != nil {
			return nil, err
		}
		return form.FromSlice(n.Type, elems), nil
	case form.SetType:
		elems, err := evalEach(n.Values, env)
		if err != nil {
			return nil, err
		}
		var b setBuilder
		for _, e := range elems {
			b.add(e)
		}
		return b.node(), nil
	case form.MapType:
		keys, err := evalEach(n.Keys, env)
		if err != nil {
			return nil, err
		}
		vals, err := evalEach(n.Values, env)
		if err != nil {
			return nil, err
		}
		var b mapBuilder
		for i := range keys {
			b.put(keys[i], vals[i])
		}
		return b.node(), nil
	case form.UnquoteType, form.SpliceType:
		return nil, fmt.Errorf("%w: stray %s", ErrEval, n.Type)
	}
	return n, nil
}

func evalEach(elems []*form.Node, env Env) ([]*form.Node, error) {
	res := make([]*form.Node, len(elems))
	for i, e := range elems {
		v, err := evalForm(e, env)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
