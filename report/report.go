// Package report compares the verbose and folded expansions of a
// template: output sizes, the savings the folding buys, and a text
// diff between the two renderings.
package report

import (
	"fmt"
	"io"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/frenchy64/quotefold/encode"
	"github.com/frenchy64/quotefold/expand"
	"github.com/frenchy64/quotefold/form"
)

type Report struct {
	Verbose     string
	Folded      string
	VerboseSize int
	FoldedSize  int
	Diffs       []diffpatch.Diff
}

type options struct {
	folding    expand.Folding
	expandOpts []expand.Option
	encodeOpts []encode.EncodeOption
}

type Option func(*options)

func WithFolding(f expand.Folding) Option {
	return func(o *options) { o.folding = f }
}

// WithExpandOptions forwards options to both expansions.  A folding
// option here is overridden by the report's own folding choice.
func WithExpandOptions(opts ...expand.Option) Option {
	return func(o *options) { o.expandOpts = append(o.expandOpts, opts...) }
}

func WithEncodeOptions(opts ...encode.EncodeOption) Option {
	return func(o *options) { o.encodeOpts = append(o.encodeOpts, opts...) }
}

// Build expands n twice, once verbose and once at the requested
// folding, and diffs the renderings.
func Build(n *form.Node, opts ...Option) (*Report, error) {
	o := &options{folding: expand.FoldAll}
	for _, f := range opts {
		f(o)
	}
	verbose, err := expandAt(n, expand.FoldNone, o)
	if err != nil {
		return nil, err
	}
	folded, err := expandAt(n, o.folding, o)
	if err != nil {
		return nil, err
	}
	res := &Report{
		Verbose:     encode.MustString(verbose.Form(), o.encodeOpts...),
		Folded:      encode.MustString(folded.Form(), o.encodeOpts...),
		VerboseSize: verbose.Size(),
		FoldedSize:  folded.Size(),
	}
	diffCfg := diffpatch.New()
	res.Diffs = diffCfg.DiffMain(res.Verbose, res.Folded, false)
	return res, nil
}

func expandAt(n *form.Node, fold expand.Folding, o *options) (*expand.Expr, error) {
	opts := make([]expand.Option, 0, len(o.expandOpts)+1)
	opts = append(opts, o.expandOpts...)
	opts = append(opts, expand.WithFolding(fold))
	return expand.Expand(n, opts...)
}

// Savings is the fraction of expression nodes the folding removed.
func (r *Report) Savings() float64 {
	if r.VerboseSize == 0 {
		return 0
	}
	return 1 - float64(r.FoldedSize)/float64(r.VerboseSize)
}

func (r *Report) Write(w io.Writer, colors bool) error {
	_, err := fmt.Fprintf(w, "verbose: %d nodes\nfolded:  %d nodes\nsavings: %.1f%%\n",
		r.VerboseSize, r.FoldedSize, 100*r.Savings())
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	text := diffCfg.DiffPrettyText(r.Diffs)
	if !colors {
		text = plainDiff(r.Diffs)
	}
	_, err = fmt.Fprintf(w, "%s\n", text)
	return err
}

func plainDiff(diffs []diffpatch.Diff) string {
	res := ""
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			res += "[-" + d.Text + "-]"
		case diffpatch.DiffInsert:
			res += "[+" + d.Text + "+]"
		case diffpatch.DiffEqual:
			res += d.Text
		}
	}
	return res
}
