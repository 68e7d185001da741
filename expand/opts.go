package expand

// Folding selects which constant-folding optimizations the expander
// applies.  The flags correspond to the incremental stages the
// optimization was developed in; FoldNone reproduces the fully verbose
// apply/concat output and FoldAll the final policy.
type Folding uint

const (
	// FoldEmpty emits empty collections as shared literal instances.
	FoldEmpty Folding = 1 << iota
	// FoldCollections collapses fully constant subtrees to one literal.
	FoldCollections
	// DirectConstructors calls collection constructors directly when no
	// splice is present, instead of applying them over concat.
	DirectConstructors
	// DirectMaps builds singleton and distinct-constant-key maps with
	// array-backed construction.
	DirectMaps
	// DirectSets builds singleton and distinct-constant sets directly.
	DirectSets
)

const (
	FoldNone Folding = 0
	FoldAll          = FoldEmpty | FoldCollections | DirectConstructors | DirectMaps | DirectSets
)

func (f Folding) Has(flag Folding) bool {
	return f&flag != 0
}

// DefaultMaxDepth bounds template nesting.  Realistic templates are a
// few levels deep; the bound exists to turn pathological inputs into an
// error instead of a stack fault.
const DefaultMaxDepth = 1000

type options struct {
	folding  Folding
	resolver Resolver
	maxDepth int
}

type Option func(*options)

func newOptions(opts []Option) *options {
	o := &options{
		folding:  FoldAll,
		resolver: &NsResolver{Namespace: "user"},
		maxDepth: DefaultMaxDepth,
	}
	for _, f := range opts {
		f(o)
	}
	return o
}

func WithFolding(f Folding) Option {
	return func(o *options) { o.folding = f }
}

func WithResolver(r Resolver) Option {
	return func(o *options) { o.resolver = r }
}

func WithMaxDepth(n int) Option {
	return func(o *options) { o.maxDepth = n }
}
