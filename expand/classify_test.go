package expand

import (
	"testing"
)

func TestClassify(t *testing.T) {
	type testCase struct {
		in       string
		constant bool
		liftable bool
	}
	cases := []testCase{
		{in: "nil", constant: true, liftable: true},
		{in: "42", constant: true, liftable: true},
		{in: `"s"`, constant: true, liftable: true},
		{in: ":k", constant: true, liftable: true},
		{in: "\\c", constant: true, liftable: true},
		{in: "sym", constant: false, liftable: false},
		{in: "()", constant: true, liftable: true},
		{in: "{}", constant: true, liftable: true},
		{in: "[1 2]", constant: false, liftable: true},
		{in: "[1 [2 :k]]", constant: false, liftable: true},
		{in: "[1 sym]", constant: false, liftable: false},
		{in: "[~x]", constant: false, liftable: false},
		{in: "[1 [~x]]", constant: false, liftable: false},
		{in: "[~@xs]", constant: false, liftable: false},
		{in: "{:a [1]}", constant: false, liftable: true},
		{in: "{:a ~v}", constant: false, liftable: false},
		{in: "#{[] [1]}", constant: false, liftable: true},
	}
	for _, tc := range cases {
		n := mustParse(t, tc.in)
		if got := IsConstant(n); got != tc.constant {
			t.Errorf("IsConstant(%q) = %v, want %v", tc.in, got, tc.constant)
		}
		if got := Liftable(n); got != tc.liftable {
			t.Errorf("Liftable(%q) = %v, want %v", tc.in, got, tc.liftable)
		}
	}
}

func TestTopSplice(t *testing.T) {
	cases := map[string]bool{
		"[1 2]":       false,
		"[~x]":        false,
		"[~@xs]":      true,
		"[1 ~@xs 2]":  true,
		"[[~@xs]]":    false, // nested, not top level
		"{~@kvs ~@m}": true,
	}
	for in, want := range cases {
		if got := HasTopSplice(mustParse(t, in)); got != want {
			t.Errorf("HasTopSplice(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestDistinctConstants(t *testing.T) {
	type testCase struct {
		in   string
		want bool
	}
	cases := []testCase{
		{in: "[:a :b]", want: true},
		{in: "[:a :a]", want: false},
		{in: "[1 1.0]", want: true},
		{in: "[1 ~x]", want: false},
		{in: "[:a sym]", want: false},
		{in: "[]", want: true},
	}
	for _, tc := range cases {
		n := mustParse(t, tc.in)
		if got := DistinctConstants(n.Values); got != tc.want {
			t.Errorf("DistinctConstants(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
