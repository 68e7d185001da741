package token

type tokenizeOpts struct {
	comments bool
}

type TokenizeOption func(*tokenizeOpts)

// Comments requests that comment tokens be emitted rather than skipped.
func Comments(v bool) TokenizeOption {
	return func(o *tokenizeOpts) { o.comments = v }
}

// Tokenize appends the tokens of d to dst and returns the result.  All
// returned tokens share one PosDoc over d, so their positions can report
// line/column pairs.
func Tokenize(dst []Token, d []byte, opts ...TokenizeOption) ([]Token, error) {
	tOpts := &tokenizeOpts{}
	for _, f := range opts {
		f(tOpts)
	}
	doc := NewPosDoc(d)
	i := 0
	for i < len(d) {
		c := d[i]
		switch {
		case c == '\n':
			doc.nl(i)
			i++
		case c == ' ' || c == '\t' || c == '\r' || c == ',':
			i++
		case c == ';':
			start := i
			for i < len(d) && d[i] != '\n' {
				i++
			}
			if tOpts.comments {
				dst = append(dst, Token{Type: TComment, Pos: doc.Pos(start), Bytes: d[start:i]})
			}
		case c == '(':
			dst = append(dst, Token{Type: TLParen, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ')':
			dst = append(dst, Token{Type: TRParen, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '[':
			dst = append(dst, Token{Type: TLSquare, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == ']':
			dst = append(dst, Token{Type: TRSquare, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '{':
			dst = append(dst, Token{Type: TLCurl, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '}':
			dst = append(dst, Token{Type: TRCurl, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '#':
			if i+1 < len(d) && d[i+1] == '{' {
				dst = append(dst, Token{Type: TSetOpen, Pos: doc.Pos(i), Bytes: d[i : i+2]})
				i += 2
				break
			}
			return nil, NewTokenizeErr(ErrDispatch, doc.Pos(i))
		case c == '`':
			dst = append(dst, Token{Type: TBacktick, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '\'':
			dst = append(dst, Token{Type: TQuote, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '~':
			if i+1 < len(d) && d[i+1] == '@' {
				dst = append(dst, Token{Type: TUnquoteSplicing, Pos: doc.Pos(i), Bytes: d[i : i+2]})
				i += 2
				break
			}
			dst = append(dst, Token{Type: TUnquote, Pos: doc.Pos(i), Bytes: d[i : i+1]})
			i++
		case c == '"':
			tok, n, err := readString(doc, d, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = n
		case c == '\\':
			tok, n, err := readChar(doc, d, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = n
		case isDigit(c) || ((c == '+' || c == '-') && i+1 < len(d) && isDigit(d[i+1])):
			tok, n := readNumber(doc, d, i)
			dst = append(dst, tok)
			i = n
		default:
			tok, n, err := readSymbolic(doc, d, i)
			if err != nil {
				return nil, err
			}
			dst = append(dst, tok)
			i = n
		}
	}
	return dst, nil
}

func readString(doc *PosDoc, d []byte, i int) (Token, int, error) {
	start := i
	i++ // opening quote
	for i < len(d) {
		switch d[i] {
		case '\\':
			if i+1 >= len(d) {
				return Token{}, 0, NewTokenizeErr(ErrUnterminated, doc.Pos(start))
			}
			// an escaped newline still ends a source line
			if d[i+1] == '\n' {
				doc.nl(i + 1)
			}
			i += 2
		case '\n':
			doc.nl(i)
			i++
		case '"':
			i++
			return Token{Type: TString, Pos: doc.Pos(start), Bytes: d[start:i]}, i, nil
		default:
			i++
		}
	}
	return Token{}, 0, NewTokenizeErr(ErrUnterminated, doc.Pos(start))
}

func readChar(doc *PosDoc, d []byte, i int) (Token, int, error) {
	start := i
	i++ // backslash
	if i >= len(d) {
		return Token{}, 0, NewTokenizeErr(ErrBadChar, doc.Pos(start))
	}
	// a single non-letter character, e.g. \*
	if !isLetter(d[i]) {
		i++
		return Token{Type: TChar, Pos: doc.Pos(start), Bytes: d[start:i]}, i, nil
	}
	for i < len(d) && !isTerminator(d[i]) {
		i++
	}
	return Token{Type: TChar, Pos: doc.Pos(start), Bytes: d[start:i]}, i, nil
}

func readNumber(doc *PosDoc, d []byte, i int) (Token, int) {
	start := i
	if d[i] == '+' || d[i] == '-' {
		i++
	}
	isFloat := false
	for i < len(d) && !isTerminator(d[i]) {
		switch d[i] {
		case '.', 'e', 'E':
			isFloat = true
		}
		i++
	}
	tt := TokenType(TInteger)
	if isFloat {
		tt = TFloat
	}
	return Token{Type: tt, Pos: doc.Pos(start), Bytes: d[start:i]}, i
}

func readSymbolic(doc *PosDoc, d []byte, i int) (Token, int, error) {
	start := i
	for i < len(d) && !isTerminator(d[i]) {
		i++
	}
	if i == start {
		return Token{}, 0, UnexpectedErr(string(d[i:i+1]), doc.Pos(i))
	}
	lex := d[start:i]
	tt := TokenType(TSymbol)
	switch {
	case lex[0] == ':':
		tt = TKeyword
	case string(lex) == "nil":
		tt = TNil
	case string(lex) == "true":
		tt = TTrue
	case string(lex) == "false":
		tt = TFalse
	}
	return Token{Type: tt, Pos: doc.Pos(start), Bytes: lex}, i, nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'
}

func isTerminator(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', ',',
		'(', ')', '[', ']', '{', '}',
		'"', ';', '`', '~', '\'', '@', '^', '\\':
		return true
	}
	return false
}
