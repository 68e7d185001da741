package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/frenchy64/quotefold/expand"
	"github.com/frenchy64/quotefold/form"
)

func checkRun(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	failed := false
	err = eachTemplate(cc, args, func(n *form.Node) error {
		x, err := expand.Expand(n, cfg.expandOpts()...)
		if err != nil {
			failed = true
			if !cfg.Quiet {
				fmt.Fprintf(cc.Out, "error: %v\n", err)
			}
			return nil
		}
		if cfg.Quiet {
			return nil
		}
		_, err = fmt.Fprintf(cc.Out, "%s, %d nodes\n", classify(n), x.Size())
		return err
	})
	if err != nil {
		return err
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func classify(n *form.Node) string {
	switch {
	case expand.IsConstant(n):
		return "constant"
	case expand.Liftable(n):
		return "liftable"
	case expand.HasTopSplice(n):
		return "spliced"
	default:
		return "dynamic"
	}
}
