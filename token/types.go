package token

import (
	"fmt"
)

type TokenType int

const (
	TLParen = iota
	TRParen
	TLSquare
	TRSquare
	TLCurl
	TRCurl
	TSetOpen
	TBacktick
	TUnquote
	TUnquoteSplicing
	TQuote
	TInteger
	TFloat
	TString
	TChar
	TKeyword
	TSymbol
	TNil
	TTrue
	TFalse
	TComment
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TLParen:          "TLParen",
		TRParen:          "TRParen",
		TLSquare:         "TLSquare",
		TRSquare:         "TRSquare",
		TLCurl:           "TLCurl",
		TRCurl:           "TRCurl",
		TSetOpen:         "TSetOpen",
		TBacktick:        "TBacktick",
		TUnquote:         "TUnquote",
		TUnquoteSplicing: "TUnquoteSplicing",
		TQuote:           "TQuote",
		TInteger:         "TInteger",
		TFloat:           "TFloat",
		TString:          "TString",
		TChar:            "TChar",
		TKeyword:         "TKeyword",
		TSymbol:          "TSymbol",
		TNil:             "TNil",
		TTrue:            "TTrue",
		TFalse:           "TFalse",
		TComment:         "TComment",
	}[t]
}

type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}

// IsOpen reports whether the token opens a collection.
func (t *Token) IsOpen() bool {
	switch t.Type {
	case TLParen, TLSquare, TLCurl, TSetOpen:
		return true
	}
	return false
}

// Close returns the closing token type matching an opening token.
func (t *Token) Close() TokenType {
	switch t.Type {
	case TLParen:
		return TRParen
	case TLSquare:
		return TRSquare
	case TLCurl, TSetOpen:
		return TRCurl
	}
	return -1
}
