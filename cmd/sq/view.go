package main

import (
	"github.com/scott-cotton/cli"

	"github.com/frenchy64/quotefold/encode"
	"github.com/frenchy64/quotefold/form"
)

func viewRun(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachTemplate(cc, args, func(n *form.Node) error {
		if err := encode.Encode(n, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
		_, err := cc.Out.Write([]byte("\n"))
		return err
	})
}
