package form

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Compare(a, b) == 0 is the value-equivalence relation used for
// duplicate key and element detection.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NilType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case NumberType:
		return compareNumbers(a, b)
	case CharType:
		return cmp.Compare(a.Char, b.Char)
	case StringType, KeywordType, SymbolType:
		return strings.Compare(a.String, b.String)
	case ListType, VectorType, SetType:
		return compareElems(a, b)
	case MapType:
		return compareMaps(a, b)
	case UnquoteType, SpliceType:
		return compareElems(a, b)
	}
	return 0
}

// Equal reports structural value equivalence.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

// rank returns the sorting rank of a type.
// Order: Nil < Bool < Number < Char < String < Keyword < Symbol
// < List < Vector < Map < Set < Unquote < Splice.
func rank(t Type) int {
	switch t {
	case NilType:
		return 0
	case BoolType:
		return 1
	case NumberType:
		return 2
	case CharType:
		return 3
	case StringType:
		return 4
	case KeywordType:
		return 5
	case SymbolType:
		return 6
	case ListType:
		return 7
	case VectorType:
		return 8
	case MapType:
		return 9
	case SetType:
		return 10
	case UnquoteType:
		return 11
	case SpliceType:
		return 12
	}
	return 100
}

func compareNumbers(a, b *Node) int {
	// Integers and floats are never equivalent, matching the host's
	// hashed-collection key semantics: {1 :a 1.0 :b} has two entries.
	subRankA := numberSubRank(a)
	subRankB := numberSubRank(b)
	if subRankA != subRankB {
		return cmp.Compare(subRankA, subRankB)
	}
	if a.Int64 != nil {
		return cmp.Compare(*a.Int64, *b.Int64)
	}
	if a.Float64 != nil {
		return cmp.Compare(*a.Float64, *b.Float64)
	}
	return strings.Compare(a.Number, b.Number)
}

func numberSubRank(n *Node) int {
	if n.Int64 != nil {
		return 0
	}
	if n.Float64 != nil {
		return 1
	}
	return 2
}

func compareElems(a, b *Node) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func compareMaps(a, b *Node) int {
	lenA := len(a.Keys)
	lenB := len(b.Keys)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.Keys[i], b.Keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
