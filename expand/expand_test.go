package expand

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/parse"
)

func mustParse(t *testing.T, input string) *form.Node {
	t.Helper()
	n, err := parse.Parse([]byte(input))
	if err != nil {
		t.Fatalf("parse %q: %v", input, err)
	}
	return n
}

func diffForms(want, got *form.Node) string {
	return cmp.Diff(want, got,
		cmpopts.IgnoreFields(form.Node{}, "Pos", "Number"))
}

func TestExpand(t *testing.T) {
	type testCase struct {
		name    string
		in      string
		folding *Folding // nil means FoldAll
		want    string
	}
	fold := func(f Folding) *Folding { return &f }
	cases := []testCase{
		{
			name: "constant vector",
			in:   "`[1 2 3]",
			want: "[1 2 3]",
		},
		{
			name: "constant list quotes itself",
			in:   "`(1 2)",
			want: "(quote (1 2))",
		},
		{
			name: "empty list",
			in:   "`()",
			want: "()",
		},
		{
			name: "empty map",
			in:   "`{}",
			want: "{}",
		},
		{
			name: "empty set",
			in:   "`#{}",
			want: "#{}",
		},
		{
			name: "nested constant collection",
			in:   "`{:a [1 2] :b #{true nil}}",
			want: "{:a [1 2] :b #{true nil}}",
		},
		{
			name: "symbol resolves and quotes",
			in:   "`x",
			want: "(quote user/x)",
		},
		{
			name: "qualified symbol untouched",
			in:   "`other.ns/x",
			want: "(quote other.ns/x)",
		},
		{
			name: "unquote passes through",
			in:   "`~x",
			want: "x",
		},
		{
			name: "unquote blocks lifting",
			in:   "`[~x 2 3]",
			want: "(clojure.core/vector x 2 3)",
		},
		{
			name: "list of unquotes",
			in:   "`(~a ~b)",
			want: "(clojure.core/list a b)",
		},
		{
			name: "symbol blocks lifting",
			in:   "`[a 1]",
			want: "(clojure.core/vector (quote user/a) 1)",
		},
		{
			name: "vector splice",
			in:   "`[~@xs 2]",
			want: "(clojure.core/apply clojure.core/vector" +
				" (clojure.core/seq (clojure.core/concat xs (clojure.core/list 2))))",
		},
		{
			name: "list splice",
			in:   "`(1 ~@xs)",
			want: "(clojure.core/seq (clojure.core/concat (clojure.core/list 1) xs))",
		},
		{
			name: "set splice",
			in:   "`#{1 ~@xs}",
			want: "(clojure.core/apply clojure.core/hash-set" +
				" (clojure.core/seq (clojure.core/concat (clojure.core/list 1) xs)))",
		},
		{
			name: "map splice",
			in:   "`{~@kvs ~@more}",
			want: "(clojure.core/apply clojure.core/hash-map" +
				" (clojure.core/seq (clojure.core/concat kvs more)))",
		},
		{
			name: "constant map literal",
			in:   "`{:a 1 :b 2}",
			want: "{:a 1 :b 2}",
		},
		{
			name: "singleton map direct",
			in:   "`{:a ~x}",
			want: "(clojure.core/array-map :a x)",
		},
		{
			name: "distinct constant keys direct",
			in:   "`{:a ~x :b 2}",
			want: "(clojure.core/array-map :a x :b 2)",
		},
		{
			name: "symbol key singleton routes through resolution",
			in:   "`{a :a}",
			want: "(clojure.core/array-map (quote user/a) :a)",
		},
		{
			name: "unquoted keys need runtime map",
			in:   "`{~k 1 ~j 2}",
			want: "(clojure.core/hash-map k 1 j 2)",
		},
		{
			name: "singleton set direct",
			in:   "`#{~x}",
			want: "(clojure.core/hash-set x)",
		},
		{
			name: "set with unquote",
			in:   "`#{:a ~x}",
			want: "(clojure.core/hash-set :a x)",
		},
		{
			name: "mixed nesting",
			in:   "`[[1 2] [~x]]",
			want: "(clojure.core/vector [1 2] (clojure.core/vector x))",
		},
		{
			name:    "verbose list",
			in:      "`(1)",
			folding: fold(FoldNone),
			want:    "(clojure.core/seq (clojure.core/concat (clojure.core/list 1)))",
		},
		{
			name:    "verbose vector",
			in:      "`[1 2]",
			folding: fold(FoldNone),
			want: "(clojure.core/apply clojure.core/vector" +
				" (clojure.core/seq (clojure.core/concat" +
				" (clojure.core/list 1) (clojure.core/list 2))))",
		},
		{
			name:    "verbose empty map",
			in:      "`{}",
			folding: fold(FoldNone),
			want: "(clojure.core/apply clojure.core/hash-map" +
				" (clojure.core/seq (clojure.core/concat)))",
		},
		{
			name:    "empty fold only",
			in:      "`[]",
			folding: fold(FoldEmpty),
			want:    "[]",
		},
		{
			name:    "empty fold leaves nonempty verbose",
			in:      "`[1]",
			folding: fold(FoldEmpty),
			want: "(clojure.core/apply clojure.core/vector" +
				" (clojure.core/seq (clojure.core/concat (clojure.core/list 1))))",
		},
		{
			name:    "direct constructors without lifting",
			in:      "`[1 2]",
			folding: fold(DirectConstructors),
			want:    "(clojure.core/vector 1 2)",
		},
		{
			name:    "direct maps needs its flag",
			in:      "`{:a ~x}",
			folding: fold(DirectConstructors),
			want:    "(clojure.core/hash-map :a x)",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := []Option{}
			if tc.folding != nil {
				opts = append(opts, WithFolding(*tc.folding))
			}
			x, err := Expand(mustParse(t, tc.in), opts...)
			if err != nil {
				t.Fatalf("expand %q: %v", tc.in, err)
			}
			want := mustParse(t, tc.want)
			got := x.Form()
			if !form.Equal(want, got) {
				t.Errorf("expand %q:\n%s", tc.in, diffForms(want, got))
			}
		})
	}
}

// A template with no unquotes folds to a single literal equal to the
// template body under full folding.
func TestExpandConstantRoundTrip(t *testing.T) {
	inputs := []string{
		"`nil",
		"`42",
		"`2.5",
		"`\\newline",
		"`\"hi\"",
		"`:k",
		"`[1 [2 [3]]]",
		"`{:a {:b []} 2 \"s\"}",
		"`#{#{} [nil] :x}",
	}
	for _, in := range inputs {
		x, err := Expand(mustParse(t, in))
		if err != nil {
			t.Fatalf("expand %q: %v", in, err)
		}
		if !x.IsLiteral() {
			t.Errorf("expand %q: got %s, want Literal", in, x.Kind)
			continue
		}
		want := mustParse(t, strings.TrimPrefix(in, "`"))
		if !form.Equal(want, x.Literal) {
			t.Errorf("expand %q:\n%s", in, diffForms(want, x.Literal))
		}
	}
}

func TestExpandErrs(t *testing.T) {
	type testCase struct {
		name string
		in   string
		opts []Option
		want error
	}
	cases := []testCase{
		{
			name: "top-level splice",
			in:   "`~@xs",
			want: ErrSplice,
		},
		{
			name: "splice under unquote",
			in:   "`[~~@xs]",
			want: ErrSplice,
		},
		{
			name: "splice under splice",
			in:   "`[~@~@xs]",
			want: ErrSplice,
		},
		{
			name: "duplicate set constants",
			in:   "`#{:a :a}",
			want: ErrDuplicateElement,
		},
		{
			name: "duplicate set constants survive disabled folding",
			in:   "`#{:a :a}",
			opts: []Option{WithFolding(FoldNone)},
			want: ErrDuplicateElement,
		},
		{
			name: "duplicate lifted set elements",
			in:   "`#{[1] [1]}",
			want: ErrDuplicateElement,
		},
		{
			name: "duplicate lifted set elements survive disabled folding",
			in:   "`#{[1] [1]}",
			opts: []Option{WithFolding(FoldNone)},
			want: ErrDuplicateElement,
		},
		{
			name: "duplicate map keys",
			in:   "`{:a 1 :a 2}",
			want: ErrDuplicateKey,
		},
		{
			name: "duplicate lifted map keys",
			in:   "`{[1] :a [1] :b}",
			want: ErrDuplicateKey,
		},
		{
			name: "duplicate lifted keys beside runtime value",
			in:   "`{[1] :a [1] ~x}",
			want: ErrDuplicateKey,
		},
		{
			name: "duplicate lifted keys survive disabled folding",
			in:   "`{[1] :a [1] ~x}",
			opts: []Option{WithFolding(FoldNone)},
			want: ErrDuplicateKey,
		},
		{
			name: "depth limit",
			in:   "`[[[[1]]]]",
			opts: []Option{WithMaxDepth(3), WithFolding(FoldNone)},
			want: ErrDepth,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Expand(mustParse(t, tc.in), tc.opts...)
			if !errors.Is(err, tc.want) {
				t.Errorf("expand %q: err %v, want %v", tc.in, err, tc.want)
			}
		})
	}
}

// Integer and float keys are never equivalent, so {1 :a 1.0 :b} is a
// legal constant map.
func TestExpandNumericKeys(t *testing.T) {
	x, err := Expand(mustParse(t, "`{1 :a 1.0 :b}"))
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if !x.IsLiteral() {
		t.Fatalf("got %s, want Literal", x.Kind)
	}
	if n := x.Literal.Count(); n != 2 {
		t.Errorf("got %d entries, want 2", n)
	}
}

func TestExpandGensym(t *testing.T) {
	x, err := Expand(mustParse(t, "`(x# x# y#)"))
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if x.Kind != Call || x.Fn != PrimList || len(x.Args) != 3 {
		t.Fatalf("unexpected shape: %s %s/%d", x.Kind, x.Fn, len(x.Args))
	}
	syms := make([]*form.Node, 3)
	for i, a := range x.Args {
		n := a.Form()
		if n.Type != form.ListType || len(n.Values) != 2 {
			t.Fatalf("arg %d: not a quote form", i)
		}
		syms[i] = n.Values[1]
		if !strings.Contains(syms[i].String, "__auto__") {
			t.Errorf("arg %d: %q lacks auto suffix", i, syms[i].String)
		}
	}
	if !form.Equal(syms[0], syms[1]) {
		t.Errorf("x# occurrences differ: %q vs %q", syms[0].String, syms[1].String)
	}
	if form.Equal(syms[0], syms[2]) {
		t.Errorf("x# and y# collide on %q", syms[0].String)
	}

	// a second expansion of the same template gets fresh names
	y, err := Expand(mustParse(t, "`(x# x# y#)"))
	if err != nil {
		t.Fatalf("expand: %v", err)
	}
	if form.Equal(syms[0], y.Args[0].Form().Values[1]) {
		t.Errorf("expansions share gensym %q", syms[0].String)
	}
}

func TestExpandResolver(t *testing.T) {
	r := &NsResolver{
		Namespace: "app.core",
		Aliases:   map[string]string{"str": "clojure.string"},
	}
	cases := map[string]string{
		"`x":        "(quote app.core/x)",
		"`str/join": "(quote clojure.string/join)",
		"`q/x":      "(quote q/x)",
		"`/":        "(quote /)",
		"`java.util.Date": "(quote java.util.Date)",
	}
	for in, want := range cases {
		x, err := Expand(mustParse(t, in), WithResolver(r))
		if err != nil {
			t.Fatalf("expand %q: %v", in, err)
		}
		if got := x.Form(); !form.Equal(mustParse(t, want), got) {
			t.Errorf("expand %q:\n%s", in, diffForms(mustParse(t, want), got))
		}
	}
}

// Folding never changes the set of valid templates, only the shape of
// the output.
func TestExpandFoldingIndependence(t *testing.T) {
	inputs := []string{
		"`[1 ~x [2 ~@ys]]",
		"`{:a [1 2] :b ~v}",
		"`#{~a ~b}",
		"`(~@xs ~@ys)",
	}
	levels := []Folding{
		FoldNone,
		FoldEmpty,
		FoldEmpty | FoldCollections,
		FoldEmpty | FoldCollections | DirectConstructors,
		FoldAll,
	}
	for _, in := range inputs {
		var sizes []int
		for _, lvl := range levels {
			x, err := Expand(mustParse(t, in), WithFolding(lvl))
			if err != nil {
				t.Fatalf("expand %q at %b: %v", in, lvl, err)
			}
			sizes = append(sizes, x.Size())
		}
		// each added optimization can only shrink or preserve the output
		for i := 1; i < len(sizes); i++ {
			if sizes[i] > sizes[i-1] {
				t.Errorf("expand %q: size grew %v", in, sizes)
			}
		}
	}
}
