package token

import (
	"errors"
	"fmt"
)

var (
	ErrUnterminated = errors.New("unterminated")
	ErrBadEscape    = errors.New("bad escape")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrBadChar      = errors.New("bad character literal")
	ErrDispatch     = errors.New("unsupported dispatch macro")
	ErrNumber       = errors.New("bad number")
)

type TokenizeErr struct {
	Err error
	Pos Pos
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("expected %s", what), p)
}

func UnexpectedErr(what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("unexpected %s", what), p)
}
