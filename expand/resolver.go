package expand

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/frenchy64/quotefold/form"
)

// Resolver supplies the namespace-qualified form of a bare symbol found
// inside a template.  The expander handles gensym suffixes itself;
// Resolve never sees a trailing-# symbol.
type Resolver interface {
	Resolve(sym *form.Node) (*form.Node, error)
}

// NsResolver qualifies unqualified symbols with a namespace and maps
// namespace aliases to their full names.
type NsResolver struct {
	Namespace string
	Aliases   map[string]string
}

func (r *NsResolver) Resolve(sym *form.Node) (*form.Node, error) {
	if ns := sym.Namespace(); ns != "" {
		full, ok := r.Aliases[ns]
		if !ok {
			return sym, nil
		}
		return form.Symbol(full + "/" + sym.Name()), nil
	}
	if sym.String == "/" || strings.Contains(sym.String, ".") {
		// division and class-like names pass through unqualified
		return sym, nil
	}
	return form.Symbol(r.Namespace + "/" + sym.String), nil
}

var gensymID atomic.Int64

// gensym returns a stable renamed symbol for a trailing-# template
// symbol.  The table is per-expansion, so every x# in one template
// names the same generated symbol, and distinct expansions never
// collide.
func (ex *expander) gensym(sym *form.Node) *form.Node {
	name := sym.String
	if g, ok := ex.gensyms[name]; ok {
		return g
	}
	base := strings.TrimSuffix(name, "#")
	g := form.Symbol(base + "__" + strconv.FormatInt(gensymID.Add(1), 10) + "__auto__")
	ex.gensyms[name] = g
	return g
}

func isGensym(sym *form.Node) bool {
	return strings.HasSuffix(sym.String, "#") && sym.Namespace() == ""
}
