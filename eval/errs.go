package eval

import "errors"

var (
	ErrUnbound = errors.New("unbound symbol")
	ErrEval    = errors.New("cannot evaluate")
	ErrArity   = errors.New("wrong number of arguments")
	ErrNotSeq  = errors.New("not a sequence")
	ErrBinding = errors.New("bad binding")
)
