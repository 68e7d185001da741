// Package token provides tokenization support for quote templates.
//
// [Tokenize] is a function for tokenizing bytes.
//
// Literal lexemes are carried verbatim in [Token.Bytes]; [DecodeString]
// and [DecodeChar] translate them to values.
package token
