package expand

import (
	"github.com/frenchy64/quotefold/form"
)

// Kind discriminates output expressions.
type Kind int

const (
	// Literal is a fully realized constant value, directly embeddable
	// by the compiler.
	Literal Kind = iota
	// Verbatim is an unquote payload, compiled and evaluated at
	// macro-use time with no further expansion.
	Verbatim
	// Call is a runtime constructor invocation.
	Call
)

func (k Kind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Verbatim:
		return "Verbatim"
	case Call:
		return "Call"
	}
	return "<unknown kind>"
}

// Primitive names a runtime collection constructor.
type Primitive int

const (
	PrimNone Primitive = iota
	PrimList
	PrimVector
	PrimHashMap
	PrimHashSet
	PrimArrayMap
	PrimConcat
	PrimSeq
	PrimApply
)

func (p Primitive) String() string {
	switch p {
	case PrimList:
		return "list"
	case PrimVector:
		return "vector"
	case PrimHashMap:
		return "hash-map"
	case PrimHashSet:
		return "hash-set"
	case PrimArrayMap:
		return "array-map"
	case PrimConcat:
		return "concat"
	case PrimSeq:
		return "seq"
	case PrimApply:
		return "apply"
	}
	return "<unknown primitive>"
}

// Sym returns the fully qualified var naming the primitive.
func (p Primitive) Sym() *form.Node {
	return form.Symbol("clojure.core/" + p.String())
}

// Expr is an output expression: what the expander hands to the
// compiler.  A Literal carries its value; a Verbatim carries the
// escaped form; a Call carries the primitive and its argument
// expressions.  For apply calls, Target is the applied constructor.
type Expr struct {
	Kind     Kind
	Literal  *form.Node
	Verbatim *form.Node
	Fn       Primitive
	Target   Primitive
	Args     []*Expr
}

func NewLiteral(n *form.Node) *Expr {
	return &Expr{Kind: Literal, Literal: n}
}

func NewVerbatim(n *form.Node) *Expr {
	return &Expr{Kind: Verbatim, Verbatim: n}
}

func NewCall(fn Primitive, args ...*Expr) *Expr {
	return &Expr{Kind: Call, Fn: fn, Args: args}
}

func NewApply(target Primitive, args ...*Expr) *Expr {
	return &Expr{Kind: Call, Fn: PrimApply, Target: target, Args: args}
}

// Size returns the number of expression nodes, counting literal and
// verbatim payload forms as one each.
func (e *Expr) Size() int {
	n := 1
	for _, a := range e.Args {
		n += a.Size()
	}
	return n
}

// IsLiteral reports whether e is a compile-time constant.
func (e *Expr) IsLiteral() bool {
	return e.Kind == Literal
}

// Form renders the expression as code-as-data: literals quote
// themselves where evaluation would not be the identity, verbatims
// appear unchanged, and calls become lists headed by the primitive's
// qualified var.
func (e *Expr) Form() *form.Node {
	switch e.Kind {
	case Literal:
		if needsQuote(e.Literal) {
			return form.FromSlice(form.ListType, []*form.Node{
				form.Symbol("quote"), e.Literal,
			})
		}
		return e.Literal
	case Verbatim:
		return e.Verbatim
	case Call:
		elems := make([]*form.Node, 0, len(e.Args)+2)
		elems = append(elems, e.Fn.Sym())
		if e.Fn == PrimApply {
			elems = append(elems, e.Target.Sym())
		}
		for _, a := range e.Args {
			elems = append(elems, a.Form())
		}
		return form.FromSlice(form.ListType, elems)
	}
	return nil
}

// needsQuote reports whether evaluating the literal would not return
// the literal itself: symbols resolve, and non-empty lists would be
// calls.
func needsQuote(n *form.Node) bool {
	switch n.Type {
	case form.SymbolType:
		return true
	case form.ListType:
		return len(n.Values) > 0
	case form.VectorType, form.SetType:
		for _, v := range n.Values {
			if needsQuote(v) {
				return true
			}
		}
	case form.MapType:
		for i := range n.Keys {
			if needsQuote(n.Keys[i]) || needsQuote(n.Values[i]) {
				return true
			}
		}
	}
	return false
}
