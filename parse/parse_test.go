package parse

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/token"
)

func mustParse(t *testing.T, input string) *form.Node {
	t.Helper()
	n, err := Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%q): %v", input, err)
	}
	return n
}

var ignorePosAndLexeme = []cmp.Option{
	cmpopts.IgnoreFields(form.Node{}, "Pos", "Number"),
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *form.Node
	}{
		{"nil", "nil", form.Nil()},
		{"bool", "true", form.FromBool(true)},
		{"int", "42", form.FromInt(42)},
		{"negative int", "-7", form.FromInt(-7)},
		{"float", "2.5", form.FromFloat(2.5)},
		{"string", `"a b"`, form.FromString("a b")},
		{"char", `\c`, form.FromChar('c')},
		{"keyword", ":a", form.Keyword("a")},
		{"qualified keyword", ":ns/a", form.Keyword("ns/a")},
		{"symbol", "x", form.Symbol("x")},
		{"qualified symbol", "my.ns/x", form.Symbol("my.ns/x")},
		{"empty list", "()", form.FromSlice(form.ListType, nil)},
		{"empty map", "{}", form.FromKeyVals(nil)},
		{"empty set", "#{}", form.FromSlice(form.SetType, nil)},
		{
			"vector", "[1 2 3]",
			form.FromSlice(form.VectorType, []*form.Node{form.FromInt(1), form.FromInt(2), form.FromInt(3)}),
		},
		{
			"leading backtick stripped", "`[1 2]",
			form.FromSlice(form.VectorType, []*form.Node{form.FromInt(1), form.FromInt(2)}),
		},
		{
			"unquote", "~x",
			form.Unquote(form.Symbol("x")),
		},
		{
			"splice in vector", "[~@xs 2]",
			form.FromSlice(form.VectorType, []*form.Node{
				form.Splice(form.Symbol("xs")),
				form.FromInt(2),
			}),
		},
		{
			"map", "{:a 1 :b ~x}",
			form.FromKeyVals([]form.KeyVal{
				{Key: form.Keyword("a"), Val: form.FromInt(1)},
				{Key: form.Keyword("b"), Val: form.Unquote(form.Symbol("x"))},
			}),
		},
		{
			"set", "#{:a :b}",
			form.FromSlice(form.SetType, []*form.Node{form.Keyword("a"), form.Keyword("b")}),
		},
		{
			"quote marker", "'x",
			form.FromSlice(form.ListType, []*form.Node{form.Symbol("quote"), form.Symbol("x")}),
		},
		{
			"nested", "(f [1 ~x] {:k #{2}})",
			form.FromSlice(form.ListType, []*form.Node{
				form.Symbol("f"),
				form.FromSlice(form.VectorType, []*form.Node{form.FromInt(1), form.Unquote(form.Symbol("x"))}),
				form.FromKeyVals([]form.KeyVal{
					{Key: form.Keyword("k"), Val: form.FromSlice(form.SetType, []*form.Node{form.FromInt(2)})},
				}),
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustParse(t, tt.input)
			if diff := cmp.Diff(tt.want, got, ignorePosAndLexeme...); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", ErrEmpty},
		{"lone backtick", "`", ErrEmpty},
		{"nested backtick", "[`x]", ErrNestedQuote},
		{"odd map", "{:a}", ErrOddMap},
		{"odd map with splice", "{:a 1 ~@kvs}", ErrOddMap},
		{"trailing", "1 2", ErrTrailing},
		{"unterminated list", "(1 2", token.ErrUnterminated},
		{"unterminated set", "#{", token.ErrUnterminated},
		{"bare colon", ":", ErrKeyword},
		{"auto-resolved keyword", "::a", ErrKeyword},
		{"unmatched close", ")", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.input)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) err = %v, want %v", tt.input, err, tt.want)
			}
		})
	}
}

func TestParsePositions(t *testing.T) {
	positions := map[*form.Node]*token.Pos{}
	n, err := Parse([]byte("[1\n :a]"), ParsePositions(positions))
	if err != nil {
		t.Fatal(err)
	}
	kw := n.Values[1]
	pos := positions[kw]
	if pos == nil {
		t.Fatal("no position recorded for keyword")
	}
	line, col := pos.LineCol()
	if line != 1 || col != 1 {
		t.Errorf("keyword at line=%d col=%d, want 1,1", line, col)
	}
	if kw.Pos == nil {
		t.Error("node Pos not set")
	}
}
