package form

import "fmt"

type Type int

const (
	NilType Type = iota
	BoolType
	NumberType
	CharType
	StringType
	KeywordType
	SymbolType
	ListType
	VectorType
	MapType
	SetType
	UnquoteType
	SpliceType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NilType:     "Nil",
		BoolType:    "Bool",
		NumberType:  "Number",
		CharType:    "Char",
		StringType:  "String",
		KeywordType: "Keyword",
		SymbolType:  "Symbol",
		ListType:    "List",
		VectorType:  "Vector",
		MapType:     "Map",
		SetType:     "Set",
		UnquoteType: "Unquote",
		SpliceType:  "Splice",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Nil":     NilType,
		"Bool":    BoolType,
		"Number":  NumberType,
		"Char":    CharType,
		"String":  StringType,
		"Keyword": KeywordType,
		"Symbol":  SymbolType,
		"List":    ListType,
		"Vector":  VectorType,
		"Map":     MapType,
		"Set":     SetType,
		"Unquote": UnquoteType,
		"Splice":  SpliceType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NilType,
		BoolType,
		NumberType,
		CharType,
		StringType,
		KeywordType,
		SymbolType,
		ListType,
		VectorType,
		MapType,
		SetType,
		UnquoteType,
		SpliceType,
	}
}

// IsColl reports whether t is one of the four collection types.
func (t Type) IsColl() bool {
	switch t {
	case ListType, VectorType, MapType, SetType:
		return true
	default:
		return false
	}
}

// IsAtom reports whether t is a scalar, i.e. neither a collection nor
// an escape marker.
func (t Type) IsAtom() bool {
	switch t {
	case ListType, VectorType, MapType, SetType, UnquoteType, SpliceType:
		return false
	default:
		return true
	}
}
