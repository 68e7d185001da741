package form

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Node
		expected int
	}{
		// Type ranking: Nil < Bool < Number < Char < String < Keyword
		// < Symbol < List < Vector < Map < Set
		{"Nil < Bool", Nil(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(1), -1},
		{"Number < Char", FromInt(1), FromChar('a'), -1},
		{"Char < String", FromChar('a'), FromString("a"), -1},
		{"String < Keyword", FromString("a"), Keyword("a"), -1},
		{"Keyword < Symbol", Keyword("a"), Symbol("a"), -1},
		{"Symbol < List", Symbol("a"), FromSlice(ListType, nil), -1},
		{"List < Vector", FromSlice(ListType, nil), FromSlice(VectorType, nil), -1},
		{"Vector < Map", FromSlice(VectorType, nil), FromKeyVals(nil), -1},
		{"Map < Set", FromKeyVals(nil), FromSlice(SetType, nil), -1},

		// Bool comparison
		{"false < true", FromBool(false), FromBool(true), -1},
		{"true == true", FromBool(true), FromBool(true), 0},

		// Number comparison: ints and floats are never equivalent
		{"Int < Float", FromInt(1), FromFloat(1.0), -1},
		{"Int < Int", FromInt(1), FromInt(2), -1},
		{"Float < Float", FromFloat(1.0), FromFloat(2.0), -1},
		{"Int == Int", FromInt(3), FromInt(3), 0},

		// Scalars
		{"Char < Char", FromChar('a'), FromChar('b'), -1},
		{"String < String", FromString("a"), FromString("b"), -1},
		{"Keyword == Keyword", Keyword("a"), Keyword("a"), 0},
		{"Keyword < Keyword", Keyword("a"), Keyword("b"), -1},
		{"Symbol == Symbol", Symbol("x"), Symbol("x"), 0},

		// Keywords and symbols of the same printed name never collide
		{"Keyword != Symbol", Keyword("a"), Symbol(":a"), -1},

		// Collections
		{"Empty vector == Empty vector", FromSlice(VectorType, nil), FromSlice(VectorType, nil), 0},
		{"Short vector < Long vector",
			FromSlice(VectorType, []*Node{FromInt(1)}),
			FromSlice(VectorType, []*Node{FromInt(1), FromInt(2)}), -1},
		{"Element comparison",
			FromSlice(ListType, []*Node{FromInt(1)}),
			FromSlice(ListType, []*Node{FromInt(2)}), -1},
		{"Map key comparison",
			FromKeyVals([]KeyVal{{Key: Keyword("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: Keyword("b"), Val: FromInt(1)}}), -1},
		{"Map value comparison",
			FromKeyVals([]KeyVal{{Key: Keyword("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: Keyword("a"), Val: FromInt(2)}}), -1},
		{"Nested equality",
			FromSlice(VectorType, []*Node{FromSlice(ListType, []*Node{Keyword("a")})}),
			FromSlice(VectorType, []*Node{FromSlice(ListType, []*Node{Keyword("a")})}), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %v, want %v", got, tt.expected)
			}
			// symmetry
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(b, a) = %v, want %v", got, -tt.expected)
			}
		})
	}
}

func TestHashConsistentWithEqual(t *testing.T) {
	pairs := [][2]*Node{
		{FromInt(1), FromInt(1)},
		{Keyword("a"), Keyword("a")},
		{FromString("s"), FromString("s")},
		{
			FromSlice(VectorType, []*Node{FromInt(1), Keyword("a")}),
			FromSlice(VectorType, []*Node{FromInt(1), Keyword("a")}),
		},
		{
			FromKeyVals([]KeyVal{{Key: Keyword("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: Keyword("a"), Val: FromInt(1)}}),
		},
	}
	for _, p := range pairs {
		if !Equal(p[0], p[1]) {
			t.Fatalf("expected %v == %v", p[0], p[1])
		}
		if p[0].Hash() != p[1].Hash() {
			t.Errorf("equal nodes with unequal hashes: %v", p[0])
		}
	}
	if FromInt(1).Hash() == FromFloat(1.0).Hash() {
		t.Error("int and float hashes should differ")
	}
	if Keyword("a").Hash() == Symbol(":a").Hash() {
		t.Error("keyword and symbol hashes should differ")
	}
}

func TestClone(t *testing.T) {
	orig := FromKeyVals([]KeyVal{
		{Key: Keyword("a"), Val: FromSlice(VectorType, []*Node{FromInt(1), FromFloat(2.5)})},
	})
	cp := orig.Clone()
	if !Equal(orig, cp) {
		t.Fatal("clone not equal to original")
	}
	*cp.Values[0].Values[0].Int64 = 99
	if Equal(orig, cp) {
		t.Error("clone shares number storage with original")
	}
}

func TestNamespaceName(t *testing.T) {
	tests := []struct {
		node   *Node
		ns     string
		name   string
	}{
		{Symbol("foo"), "", "foo"},
		{Symbol("my.ns/foo"), "my.ns", "foo"},
		{Symbol("/"), "", "/"},
		{Keyword("a"), "", "a"},
		{Keyword("ns/a"), "ns", "a"},
	}
	for _, tt := range tests {
		if got := tt.node.Namespace(); got != tt.ns {
			t.Errorf("%q Namespace() = %q, want %q", tt.node.String, got, tt.ns)
		}
		if got := tt.node.Name(); got != tt.name {
			t.Errorf("%q Name() = %q, want %q", tt.node.String, got, tt.name)
		}
	}
}
