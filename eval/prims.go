package eval

import (
	"fmt"

	"github.com/frenchy64/quotefold/form"
)

var listPrimSym = &listPrim{name: "list"}

func List() Prim {
	return listPrimSym
}

type listPrim struct {
	name
}

func (p listPrim) Eval(args []*form.Node) (*form.Node, error) {
	return form.FromSlice(form.ListType, args), nil
}

var vectorPrimSym = &vectorPrim{name: "vector"}

func Vector() Prim {
	return vectorPrimSym
}

type vectorPrim struct {
	name
}

func (p vectorPrim) Eval(args []*form.Node) (*form.Node, error) {
	return form.FromSlice(form.VectorType, args), nil
}

var (
	hashMapPrimSym  = &mapPrim{name: "hash-map"}
	arrayMapPrimSym = &mapPrim{name: "array-map"}
)

func HashMap() Prim {
	return hashMapPrimSym
}

func ArrayMap() Prim {
	return arrayMapPrimSym
}

type mapPrim struct {
	name
}

// Eval pairs args into entries.  A repeated key is legal at runtime and
// the last value wins, matching the host constructors.
func (p mapPrim) Eval(args []*form.Node) (*form.Node, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("%w: %s got %d", ErrArity, p, len(args))
	}
	var b mapBuilder
	for i := 0; i < len(args); i += 2 {
		b.put(args[i], args[i+1])
	}
	return b.node(), nil
}

// mapBuilder accumulates entries in insertion order with last-wins key
// replacement.  Keys bucket by form's Hash, with form.Equal confirming
// matches within a bucket.
type mapBuilder struct {
	kvs   []form.KeyVal
	index map[uint64][]int
}

func (b *mapBuilder) put(k, v *form.Node) {
	h := k.Hash()
	for _, i := range b.index[h] {
		if form.Equal(b.kvs[i].Key, k) {
			b.kvs[i].Val = v
			return
		}
	}
	if b.index == nil {
		b.index = map[uint64][]int{}
	}
	b.index[h] = append(b.index[h], len(b.kvs))
	b.kvs = append(b.kvs, form.KeyVal{Key: k, Val: v})
}

func (b *mapBuilder) node() *form.Node {
	return form.FromKeyVals(b.kvs)
}

var hashSetPrimSym = &hashSetPrim{name: "hash-set"}

func HashSet() Prim {
	return hashSetPrimSym
}

type hashSetPrim struct {
	name
}

// Eval drops repeated elements, keeping the first occurrence.
func (p hashSetPrim) Eval(args []*form.Node) (*form.Node, error) {
	var b setBuilder
	for _, a := range args {
		b.add(a)
	}
	return b.node(), nil
}

// setBuilder is the set counterpart of mapBuilder: first occurrence
// wins, hash-bucketed membership.
type setBuilder struct {
	elems []*form.Node
	index map[uint64][]*form.Node
}

func (b *setBuilder) add(e *form.Node) {
	h := e.Hash()
	for _, prev := range b.index[h] {
		if form.Equal(prev, e) {
			return
		}
	}
	if b.index == nil {
		b.index = map[uint64][]*form.Node{}
	}
	b.index[h] = append(b.index[h], e)
	b.elems = append(b.elems, e)
}

func (b *setBuilder) node() *form.Node {
	return form.FromSlice(form.SetType, b.elems)
}

var concatPrimSym = &concatPrim{name: "concat"}

func Concat() Prim {
	return concatPrimSym
}

type concatPrim struct {
	name
}

func (p concatPrim) Eval(args []*form.Node) (*form.Node, error) {
	var elems []*form.Node
	for _, a := range args {
		seq, err := seqElems(a)
		if err != nil {
			return nil, err
		}
		elems = append(elems, seq...)
	}
	return form.FromSlice(form.ListType, elems), nil
}

var seqPrimSym = &seqPrim{name: "seq"}

func Seq() Prim {
	return seqPrimSym
}

type seqPrim struct {
	name
}

func (p seqPrim) Eval(args []*form.Node) (*form.Node, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: %s got %d", ErrArity, p, len(args))
	}
	elems, err := seqElems(args[0])
	if err != nil {
		return nil, err
	}
	return form.FromSlice(form.ListType, elems), nil
}

// seqElems views a collection as its element sequence; maps flatten to
// alternating keys and values.
func seqElems(n *form.Node) ([]*form.Node, error) {
	switch n.Type {
	case form.NilType:
		return nil, nil
	case form.ListType, form.VectorType, form.SetType:
		return n.Values, nil
	case form.MapType:
		res := make([]*form.Node, 0, 2*len(n.Keys))
		for i := range n.Keys {
			res = append(res, n.Keys[i], n.Values[i])
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotSeq, n.Type)
}
