package main

import (
	"github.com/scott-cotton/cli"

	"github.com/frenchy64/quotefold/encode"
	"github.com/frenchy64/quotefold/expand"
	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/report"
)

func reportRun(cfg *ReportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Report.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachTemplate(cc, args, func(n *form.Node) error {
		// the renderings feed the diff, so they stay uncolored; Write
		// colors the diff itself
		opts := []report.Option{
			report.WithExpandOptions(cfg.expandOpts()...),
			report.WithEncodeOptions(encode.EncodePretty(cfg.Pretty)),
		}
		if cfg.Folding != nil {
			opts = append(opts, report.WithFolding(*cfg.Folding))
		} else {
			opts = append(opts, report.WithFolding(expand.FoldAll))
		}
		r, err := report.Build(n, opts...)
		if err != nil {
			return err
		}
		return r.Write(cc.Out, cfg.Color)
	})
}
