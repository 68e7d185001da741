package encode

import (
	"io"
	"strconv"
	"strings"

	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/token"
)

type EncState struct {
	line, col     int
	depth, indent int
	pretty        bool
	width         int

	Color func(form.Type, ColorAttr, string) string
}

// Encode writes node in reader syntax.  The default is a single line;
// pretty mode breaks collections wider than the target width across
// indented lines.
func Encode(node *form.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
		width:  80,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *form.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case form.NilType:
		return writeValue(w, es, form.NilType, "nil")
	case form.BoolType:
		return writeValue(w, es, form.BoolType, strconv.FormatBool(node.Bool))
	case form.NumberType:
		return writeValue(w, es, form.NumberType, numberText(node))
	case form.CharType:
		return writeValue(w, es, form.CharType, token.EncodeChar(node.Char))
	case form.StringType:
		return writeValue(w, es, form.StringType, token.Quote(node.String))
	case form.KeywordType:
		return writeValue(w, es, form.KeywordType, node.String)
	case form.SymbolType:
		return writeValue(w, es, form.SymbolType, node.String)
	case form.ListType:
		return encodeSeq(node, w, es, "(", ")")
	case form.VectorType:
		return encodeSeq(node, w, es, "[", "]")
	case form.SetType:
		return encodeSeq(node, w, es, "#{", "}")
	case form.MapType:
		return encodeMap(node, w, es)
	case form.UnquoteType:
		if err := writeDelim(w, es, form.UnquoteType, "~"); err != nil {
			return err
		}
		return encode(node.Child(), w, es)
	case form.SpliceType:
		if err := writeDelim(w, es, form.SpliceType, "~@"); err != nil {
			return err
		}
		return encode(node.Child(), w, es)
	}
	return NewEncodeErr(node)
}

func numberText(node *form.Node) string {
	// the source lexeme, when present, round-trips exactly
	if node.Number != "" {
		return node.Number
	}
	if node.Int64 != nil {
		return strconv.FormatInt(*node.Int64, 10)
	}
	v := strconv.FormatFloat(*node.Float64, 'g', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

func encodeSeq(node *form.Node, w io.Writer, es *EncState, open, close string) error {
	if err := writeDelim(w, es, node.Type, open); err != nil {
		return err
	}
	breakLines := es.pretty && es.col+flatLen(node) > es.width
	es.depth++
	for i, v := range node.Values {
		if err := writeElemSep(w, es, i, breakLines); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if breakLines && len(node.Values) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeDelim(w, es, node.Type, close)
}

func encodeMap(node *form.Node, w io.Writer, es *EncState) error {
	if err := writeDelim(w, es, form.MapType, "{"); err != nil {
		return err
	}
	breakLines := es.pretty && es.col+flatLen(node) > es.width
	es.depth++
	for i := range node.Keys {
		if err := writeElemSep(w, es, i, breakLines); err != nil {
			return err
		}
		if err := encode(node.Keys[i], w, es); err != nil {
			return err
		}
		if err := writeString(w, es, " "); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	es.depth--
	if breakLines && len(node.Keys) > 0 {
		if err := writeNL(w, es); err != nil {
			return err
		}
	}
	return writeDelim(w, es, form.MapType, "}")
}

func writeElemSep(w io.Writer, es *EncState, i int, breakLines bool) error {
	if breakLines {
		return writeNL(w, es)
	}
	if i == 0 {
		return nil
	}
	return writeString(w, es, " ")
}

func writeNL(w io.Writer, es *EncState) error {
	indentString := strings.Repeat(strings.Repeat(" ", es.indent), es.depth)
	if _, err := w.Write([]byte("\n" + indentString)); err != nil {
		return err
	}
	es.line++
	es.col = len(indentString)
	return nil
}

func writeString(w io.Writer, es *EncState, s string) error {
	es.col += len(s)
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t form.Type, v string) error {
	es.col += len(v)
	if es.Color != nil {
		v = es.Color(t, ValueColor, v)
	}
	_, err := w.Write([]byte(v))
	return err
}

func writeDelim(w io.Writer, es *EncState, t form.Type, v string) error {
	es.col += len(v)
	if es.Color != nil {
		v = es.Color(t, DelimColor, v)
	}
	_, err := w.Write([]byte(v))
	return err
}

// flatLen is the single-line rendering width of node, used to decide
// where pretty mode breaks.
func flatLen(node *form.Node) int {
	switch node.Type {
	case form.NilType:
		return 3
	case form.BoolType:
		if node.Bool {
			return 4
		}
		return 5
	case form.NumberType:
		return len(numberText(node))
	case form.CharType:
		return len(token.EncodeChar(node.Char))
	case form.StringType:
		return len(token.Quote(node.String))
	case form.KeywordType, form.SymbolType:
		return len(node.String)
	case form.UnquoteType:
		return 1 + flatLen(node.Child())
	case form.SpliceType:
		return 2 + flatLen(node.Child())
	case form.MapType:
		n := 2
		for i := range node.Keys {
			if i > 0 {
				n++
			}
			n += flatLen(node.Keys[i]) + 1 + flatLen(node.Values[i])
		}
		return n
	default:
		n := 2
		if node.Type == form.SetType {
			n++
		}
		for i, v := range node.Values {
			if i > 0 {
				n++
			}
			n += flatLen(v)
		}
		return n
	}
}
