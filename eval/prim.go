package eval

import (
	"errors"
	"fmt"
	"sync"

	"github.com/frenchy64/quotefold/form"
)

// Prim is a runtime collection constructor.
type Prim interface {
	String() string
	Eval(args []*form.Node) (*form.Node, error)
}

type name string

func (s name) String() string {
	return string(s)
}

var (
	mu sync.RWMutex
	d  = map[string]Prim{}
)

var ErrPrimExists = errors.New("primitive exists")

func Register(p Prim) error {
	mu.Lock()
	defer mu.Unlock()
	_, present := d[p.String()]
	if present {
		return fmt.Errorf("%s: %w", p, ErrPrimExists)
	}
	d[p.String()] = p
	return nil
}

func init() {
	Register(List())
	Register(Vector())
	Register(HashMap())
	Register(ArrayMap())
	Register(HashSet())
	Register(Concat())
	Register(Seq())
}

func Lookup(s string) Prim {
	mu.RLock()
	defer mu.RUnlock()
	return d[s]
}

func Prims() []Prim {
	mu.RLock()
	defer mu.RUnlock()
	res := make([]Prim, 0, len(d))
	for _, p := range d {
		res = append(res, p)
	}
	return res
}
