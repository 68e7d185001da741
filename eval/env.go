package eval

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/frenchy64/quotefold/form"
)

// Env maps unquote symbols to their runtime values.
type Env map[string]*form.Node

// ParseBinding parses a "name=expr" binding, evaluating the right hand
// side as an expression.
//
//	x=1+2
//	xs=[1, 2, 3]
//	m={"a": 1}
func ParseBinding(s string) (string, *form.Node, error) {
	name, src, ok := strings.Cut(s, "=")
	if !ok {
		return "", nil, fmt.Errorf("%w: %q has no =", ErrBinding, s)
	}
	program, err := expr.Compile(src, exprOpts()...)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrBinding, s, err)
	}
	v, err := expr.Run(program, map[string]any{})
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrBinding, s, err)
	}
	node, err := FromAny(v)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %q: %v", ErrBinding, s, err)
	}
	return strings.TrimSpace(name), node, nil
}

// ParseBindings builds an Env from name=expr bindings.
func ParseBindings(bindings []string) (Env, error) {
	env := Env{}
	for _, b := range bindings {
		name, node, err := ParseBinding(b)
		if err != nil {
			return nil, err
		}
		env[name] = node
	}
	return env, nil
}

func exprOpts() []expr.Option {
	return []expr.Option{
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// FromAny converts an expression value into a form.  Slices become
// vectors and string-keyed maps become keyword maps.
func FromAny(v any) (*form.Node, error) {
	switch x := v.(type) {
	case nil:
		return form.Nil(), nil
	case bool:
		return form.FromBool(x), nil
	case int:
		return form.FromInt(int64(x)), nil
	case int64:
		return form.FromInt(x), nil
	case float32:
		return form.FromFloat(float64(x)), nil
	case float64:
		return form.FromFloat(x), nil
	case string:
		return form.FromString(x), nil
	case []any:
		elems := make([]*form.Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			elems[i] = n
		}
		return form.FromSlice(form.VectorType, elems), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		kvs := make([]form.KeyVal, len(keys))
		for i, k := range keys {
			n, err := FromAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs[i] = form.KeyVal{Key: form.Keyword(k), Val: n}
		}
		return form.FromKeyVals(kvs), nil
	}
	return nil, fmt.Errorf("%w: %T value", ErrBinding, v)
}
