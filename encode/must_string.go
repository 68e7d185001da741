package encode

import (
	"bytes"

	"github.com/frenchy64/quotefold/form"
)

func MustString(node *form.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
