package form

import (
	"strings"

	"github.com/frenchy64/quotefold/token"
)

// Node is one form in a quote template.  The Type field discriminates;
// the remaining fields carry the payload for that type:
//
//   - Nil: no payload
//   - Bool: Bool
//   - Number: Int64 or Float64, with Number holding the source lexeme
//   - Char: Char
//   - String: String
//   - Keyword, Symbol: String holds the (possibly namespace-qualified) name
//   - List, Vector, Set: Values
//   - Map: Keys and Values, parallel
//   - Unquote, Splice: the single escaped child in Values[0]
type Node struct {
	Type Type
	Pos  *token.Pos

	String  string
	Bool    bool
	Char    rune
	Number  string
	Int64   *int64
	Float64 *float64

	Keys   []*Node
	Values []*Node
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Pos = n.Pos
	dst.String = n.String
	dst.Bool = n.Bool
	dst.Char = n.Char
	dst.Number = n.Number
	if n.Int64 != nil {
		i := *n.Int64
		dst.Int64 = &i
	}
	if n.Float64 != nil {
		f := *n.Float64
		dst.Float64 = &f
	}
	if n.Keys != nil {
		dst.Keys = make([]*Node, len(n.Keys))
		for i, k := range n.Keys {
			dst.Keys[i] = k.Clone()
		}
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dst.Values[i] = v.Clone()
		}
	}
	return dst
}

// Count returns the number of entries of a collection node: pairs for
// maps, elements otherwise.
func (n *Node) Count() int {
	if n.Type == MapType {
		return len(n.Keys)
	}
	return len(n.Values)
}

// Child returns the escaped child of an Unquote or Splice node.
func (n *Node) Child() *Node {
	if len(n.Values) == 0 {
		return nil
	}
	return n.Values[0]
}

// Namespace returns the namespace part of a symbol or keyword name, or
// "" when unqualified.  The division symbol "/" has no namespace.
func (n *Node) Namespace() string {
	name := n.String
	if n.Type == KeywordType {
		name = strings.TrimPrefix(name, ":")
	}
	i := strings.Index(name, "/")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[:i]
}

// Name returns the name part of a symbol or keyword, without any
// namespace or leading colon.
func (n *Node) Name() string {
	name := n.String
	if n.Type == KeywordType {
		name = strings.TrimPrefix(name, ":")
	}
	i := strings.Index(name, "/")
	if i <= 0 || i == len(name)-1 {
		return name
	}
	return name[i+1:]
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromChar(r rune) *Node {
	return &Node{
		Type: CharType,
		Char: r,
	}
}

func Keyword(name string) *Node {
	if !strings.HasPrefix(name, ":") {
		name = ":" + name
	}
	return &Node{
		Type:   KeywordType,
		String: name,
	}
}

func Symbol(name string) *Node {
	return &Node{
		Type:   SymbolType,
		String: name,
	}
}

func Nil() *Node {
	return &Node{Type: NilType}
}

// FromSlice builds a List, Vector or Set node over elems.
func FromSlice(t Type, elems []*Node) *Node {
	return &Node{
		Type:   t,
		Values: elems,
	}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   MapType,
		Keys:   make([]*Node, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func Unquote(child *Node) *Node {
	return &Node{
		Type:   UnquoteType,
		Values: []*Node{child},
	}
}

func Splice(child *Node) *Node {
	return &Node{
		Type:   SpliceType,
		Values: []*Node{child},
	}
}

// Canonical empty collection instances.  Shared and immutable: literal
// lifting of an empty collection reuses these rather than allocating.
var (
	EmptyList   = &Node{Type: ListType}
	EmptyVector = &Node{Type: VectorType}
	EmptyMap    = &Node{Type: MapType}
	EmptySet    = &Node{Type: SetType}
)

// Empty returns the canonical empty instance for a collection type, or
// nil for non-collection types.
func Empty(t Type) *Node {
	switch t {
	case ListType:
		return EmptyList
	case VectorType:
		return EmptyVector
	case MapType:
		return EmptyMap
	case SetType:
		return EmptySet
	}
	return nil
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, k := range n.Keys {
			if err := k.Visit(f); err != nil {
				return err
			}
		}
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
