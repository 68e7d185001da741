package expand

import (
	"errors"
	"fmt"

	"github.com/frenchy64/quotefold/form"
)

var (
	ErrSplice           = errors.New("splice outside collection")
	ErrDuplicateKey     = errors.New("duplicate constant key")
	ErrDuplicateElement = errors.New("duplicate constant element")
	ErrDepth            = errors.New("expansion depth exceeded")
)

// ExpandErr wraps an expansion error with the offending form, so the
// template author can locate it.
type ExpandErr struct {
	Err  error
	Form *form.Node
}

func NewExpandErr(e error, n *form.Node) *ExpandErr {
	return &ExpandErr{Err: e, Form: n}
}

func (e *ExpandErr) Unwrap() error {
	return e.Err
}

func (e *ExpandErr) Error() string {
	if e.Form != nil && e.Form.Pos != nil {
		return fmt.Sprintf("%s at %s", e.Err.Error(), e.Form.Pos.String())
	}
	return e.Err.Error()
}
