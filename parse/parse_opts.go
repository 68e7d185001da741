package parse

import (
	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/token"
)

type parseOpts struct {
	positions map[*form.Node]*token.Pos
}

type ParseOption func(*parseOpts)

// ParsePositions requests that the position of each parsed node be
// recorded in m, keyed by node identity.
func ParsePositions(m map[*form.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}
