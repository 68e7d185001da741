package main

import (
	"github.com/scott-cotton/cli"

	"github.com/frenchy64/quotefold/encode"
	"github.com/frenchy64/quotefold/eval"
	"github.com/frenchy64/quotefold/expand"
	"github.com/frenchy64/quotefold/form"
)

func evalRun(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachTemplate(cc, args, func(n *form.Node) error {
		x, err := expand.Expand(n, cfg.expandOpts()...)
		if err != nil {
			return err
		}
		v, err := eval.Eval(x, cfg.Env)
		if err != nil {
			return err
		}
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		_, err = cc.Out.Write([]byte("\n"))
		return err
	})
}
