package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecodeString decodes a TString lexeme, including its surrounding
// quotes, into the string value it denotes.
func DecodeString(b []byte) (string, error) {
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return "", fmt.Errorf("%w: string literal %q", ErrUnterminated, b)
	}
	body := b[1 : len(b)-1]
	var sb strings.Builder
	sb.Grow(len(body))
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			sb.WriteByte(c)
			continue
		}
		i++
		if i >= len(body) {
			return "", fmt.Errorf("%w: in %q", ErrBadEscape, b)
		}
		switch body[i] {
		case '"':
			sb.WriteByte('"')
		case '\\':
			sb.WriteByte('\\')
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case '0':
			sb.WriteByte(0)
		case 'u':
			if i+4 >= len(body) {
				return "", fmt.Errorf("%w: in %q", ErrBadUnicode, b)
			}
			cp, err := strconv.ParseUint(string(body[i+1:i+5]), 16, 32)
			if err != nil {
				return "", fmt.Errorf("%w: in %q", ErrBadUnicode, b)
			}
			sb.WriteRune(rune(cp))
			i += 4
		default:
			return "", fmt.Errorf("%w: \\%c in %q", ErrBadEscape, body[i], b)
		}
	}
	return sb.String(), nil
}

var namedChars = map[string]rune{
	"newline":   '\n',
	"space":     ' ',
	"tab":       '\t',
	"return":    '\r',
	"backspace": '\b',
	"formfeed":  '\f',
}

// DecodeChar decodes a TChar lexeme, including its leading backslash,
// into the rune it denotes.
func DecodeChar(b []byte) (rune, error) {
	if len(b) < 2 || b[0] != '\\' {
		return 0, fmt.Errorf("%w: %q", ErrBadChar, b)
	}
	body := string(b[1:])
	r, size := utf8.DecodeRuneInString(body)
	if size == len(body) {
		return r, nil
	}
	if r, ok := namedChars[body]; ok {
		return r, nil
	}
	if body[0] == 'u' && len(body) == 5 {
		cp, err := strconv.ParseUint(body[1:], 16, 32)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrBadUnicode, b)
		}
		return rune(cp), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadChar, b)
}

// EncodeChar renders a rune as a character literal lexeme.
func EncodeChar(r rune) string {
	switch r {
	case '\n':
		return `\newline`
	case ' ':
		return `\space`
	case '\t':
		return `\tab`
	case '\r':
		return `\return`
	case '\b':
		return `\backspace`
	case '\f':
		return `\formfeed`
	}
	return "\\" + string(r)
}

// Quote renders a string value as a double-quoted lexeme.
func Quote(v string) string {
	var sb strings.Builder
	sb.Grow(len(v) + 2)
	sb.WriteByte('"')
	for _, r := range v {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
