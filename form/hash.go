package form

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, consistent with Equal.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("form: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	n.hashInto(&h)
	return h.Sum64()
}

func (n *Node) hashInto(h *maphash.Hash) {
	h.WriteByte(byte(n.Type))
	switch n.Type {
	case NilType:
	case BoolType:
		if n.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case NumberType:
		var b [8]byte
		if n.Int64 != nil {
			binary.LittleEndian.PutUint64(b[:], uint64(*n.Int64))
			h.Write(b[:])
		} else if n.Float64 != nil {
			binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float64))
			h.Write(b[:])
		} else {
			h.WriteString(n.Number)
		}
	case CharType:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(n.Char))
		h.Write(b[:])
	case StringType, KeywordType, SymbolType:
		h.WriteString(n.String)
	case MapType:
		for i := range n.Keys {
			n.Keys[i].hashInto(h)
			n.Values[i].hashInto(h)
		}
	default:
		for _, v := range n.Values {
			v.hashInto(h)
		}
	}
}
