package encode

import (
	"bytes"
	"testing"

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

func TestEncodeRoundTrip(t *testing.T) {
	// normalized inputs: single spaces, lexemes kept
	inputs := []string{
		"nil",
		"true",
		"false",
		"42",
		"-17",
		"2.5",
		"1.5e3",
		"\\a",
		"\\newline",
		"\\space",
		`"hi there"`,
		`"tab\there"`,
		":kw",
		":ns/kw",
		"sym",
		"my.ns/sym",
		"()",
		"(1 2 3)",
		"[1 [2] []]",
		"{}",
		"{:a 1 :b [2 3]}",
		"#{}",
		"#{:x}",
		"~x",
		"~@xs",
		"(f ~a ~@bs)",
		"[nil true \\c \"s\" :k q/s]",
	}
	for _, in := range inputs {
		got := MustString(mustParse(t, in))
		if got != in {
			t.Errorf("encode: got %q, want %q", got, in)
		}
	}
}

func TestEncodeFloatText(t *testing.T) {
	// a float built programmatically still reads back as a float
	n := form.FromFloat(2)
	if got := MustString(n); got != "2.0" {
		t.Errorf("got %q, want %q", got, "2.0")
	}
	back := mustParse(t, MustString(n))
	if back.Float64 == nil {
		t.Errorf("re-read %q: not a float", MustString(n))
	}
}

func TestEncodePretty(t *testing.T) {
	in := "{:alpha [1 2 3] :beta {:gamma 4}}"
	want := "{\n  :alpha [1 2 3]\n  :beta {:gamma 4}\n}"
	var buf bytes.Buffer
	err := Encode(mustParse(t, in), &buf, EncodePretty(true), EncodeWidth(20))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := buf.String(); got != want {
		t.Errorf("encode:\ngot  %q\nwant %q", got, want)
	}
}

func TestEncodePrettyUnderWidth(t *testing.T) {
	in := "[1 2 3]"
	var buf bytes.Buffer
	err := Encode(mustParse(t, in), &buf, EncodePretty(true))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := buf.String(); got != in {
		t.Errorf("encode: got %q, want %q", got, in)
	}
}

func TestEncodeColorsIdentityWhenDisabled(t *testing.T) {
	// color.NoColor is forced in tests (no tty), so colored output
	// degrades to plain text
	c := NewColors()
	var buf bytes.Buffer
	in := "[1 :a \"s\"]"
	err := Encode(mustParse(t, in), &buf, EncodeColors(c))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if got := buf.String(); got != in {
		t.Errorf("encode: got %q, want %q", got, in)
	}
}
