package encode

import (
	"errors"
	"fmt"

	"github.com/frenchy64/quotefold/form"
)

var ErrEncoding = errors.New("cannot encode")

func NewEncodeErr(n *form.Node) error {
	return fmt.Errorf("%w: %s node", ErrEncoding, n.Type)
}
