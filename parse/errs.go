package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrOddMap      = fmt.Errorf("%w: map literal requires an even number of forms", ErrParse)
	ErrNestedQuote = fmt.Errorf("%w: nested syntax-quote is not supported", ErrParse)
	ErrKeyword     = fmt.Errorf("%w: invalid keyword", ErrParse)
	ErrTrailing    = fmt.Errorf("%w: trailing forms after template", ErrParse)
	ErrEmpty       = fmt.Errorf("%w: empty input", ErrParse)
)
