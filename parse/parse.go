// Package parse provides template reading support.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/token"
)

// Parse reads a quote template from d and returns its form tree.  A
// single leading backtick is accepted and stripped; the template body
// is what the expander consumes.  Backticks anywhere else are an error:
// nested syntax-quote is outside the template grammar.
func Parse(d []byte, opts ...ParseOption) (*form.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, ErrEmpty
	}
	off := 0
	if toks[off].Type == token.TBacktick {
		off++
		if off == len(toks) {
			return nil, ErrEmpty
		}
	}
	res, err := parseForm(toks, &off, pOpts)
	if err != nil {
		return nil, err
	}
	if off != len(toks) {
		return nil, fmt.Errorf("%w: at %s", ErrTrailing, toks[off].Pos)
	}
	return res, nil
}

func trackPos(node *form.Node, pos *token.Pos, opts *parseOpts) *form.Node {
	node.Pos = pos
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
	return node
}

func parseForm(toks []token.Token, pi *int, opts *parseOpts) (*form.Node, error) {
	if *pi >= len(toks) {
		return nil, token.ExpectedErr("form", toks[len(toks)-1].Pos)
	}
	tok := &toks[*pi]
	*pi++
	switch tok.Type {
	case token.TNil:
		return trackPos(form.Nil(), tok.Pos, opts), nil
	case token.TTrue:
		return trackPos(form.FromBool(true), tok.Pos, opts), nil
	case token.TFalse:
		return trackPos(form.FromBool(false), tok.Pos, opts), nil
	case token.TInteger:
		i, err := strconv.ParseInt(string(tok.Bytes), 10, 64)
		if err != nil {
			return nil, token.NewTokenizeErr(token.ErrNumber, tok.Pos)
		}
		n := form.FromInt(i)
		n.Number = string(tok.Bytes)
		return trackPos(n, tok.Pos, opts), nil
	case token.TFloat:
		f, err := strconv.ParseFloat(string(tok.Bytes), 64)
		if err != nil {
			return nil, token.NewTokenizeErr(token.ErrNumber, tok.Pos)
		}
		n := form.FromFloat(f)
		n.Number = string(tok.Bytes)
		return trackPos(n, tok.Pos, opts), nil
	case token.TString:
		s, err := token.DecodeString(tok.Bytes)
		if err != nil {
			return nil, err
		}
		return trackPos(form.FromString(s), tok.Pos, opts), nil
	case token.TChar:
		r, err := token.DecodeChar(tok.Bytes)
		if err != nil {
			return nil, err
		}
		return trackPos(form.FromChar(r), tok.Pos, opts), nil
	case token.TKeyword:
		name := string(tok.Bytes)
		if name == ":" || strings.HasPrefix(name, "::") {
			return nil, fmt.Errorf("%w: %q at %s", ErrKeyword, name, tok.Pos)
		}
		return trackPos(form.Keyword(name), tok.Pos, opts), nil
	case token.TSymbol:
		return trackPos(form.Symbol(string(tok.Bytes)), tok.Pos, opts), nil
	case token.TUnquote:
		child, err := parseForm(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		return trackPos(form.Unquote(child), tok.Pos, opts), nil
	case token.TUnquoteSplicing:
		child, err := parseForm(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		return trackPos(form.Splice(child), tok.Pos, opts), nil
	case token.TQuote:
		// 'x reads as (quote x), like the host reader.
		child, err := parseForm(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		lst := form.FromSlice(form.ListType, []*form.Node{form.Symbol("quote"), child})
		return trackPos(lst, tok.Pos, opts), nil
	case token.TBacktick:
		return nil, fmt.Errorf("%w: at %s", ErrNestedQuote, tok.Pos)
	case token.TLParen:
		return parseColl(toks, pi, opts, tok, form.ListType, token.TRParen)
	case token.TLSquare:
		return parseColl(toks, pi, opts, tok, form.VectorType, token.TRSquare)
	case token.TSetOpen:
		return parseColl(toks, pi, opts, tok, form.SetType, token.TRCurl)
	case token.TLCurl:
		return parseMap(toks, pi, opts, tok)
	}
	return nil, token.UnexpectedErr(string(tok.Bytes), tok.Pos)
}

func parseColl(toks []token.Token, pi *int, opts *parseOpts, open *token.Token, t form.Type, close token.TokenType) (*form.Node, error) {
	var elems []*form.Node
	for {
		if *pi >= len(toks) {
			return nil, token.NewTokenizeErr(token.ErrUnterminated, open.Pos)
		}
		if toks[*pi].Type == close {
			*pi++
			return trackPos(form.FromSlice(t, elems), open.Pos, opts), nil
		}
		elem, err := parseForm(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
}

func parseMap(toks []token.Token, pi *int, opts *parseOpts, open *token.Token) (*form.Node, error) {
	var flat []*form.Node
	for {
		if *pi >= len(toks) {
			return nil, token.NewTokenizeErr(token.ErrUnterminated, open.Pos)
		}
		if toks[*pi].Type == token.TRCurl {
			*pi++
			break
		}
		elem, err := parseForm(toks, pi, opts)
		if err != nil {
			return nil, err
		}
		flat = append(flat, elem)
	}
	if len(flat)%2 != 0 {
		return nil, fmt.Errorf("%w: at %s", ErrOddMap, open.Pos)
	}
	kvs := make([]form.KeyVal, len(flat)/2)
	for i := range kvs {
		kvs[i] = form.KeyVal{Key: flat[2*i], Val: flat[2*i+1]}
	}
	return trackPos(form.FromKeyVals(kvs), open.Pos, opts), nil
}
