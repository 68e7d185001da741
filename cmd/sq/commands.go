package main

import (
	"github.com/scott-cotton/cli"

	"github.com/frenchy64/quotefold/eval"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Aliases: map[string]string{}}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "ns",
			Description: "namespace qualifying bare symbols (default user)",
			Type:        cli.NamedFuncOpt(cfg.nsOpt, "(namespace)"),
		},
		&cli.Opt{
			Name:        "alias",
			Description: "namespace alias, repeatable",
			Type:        cli.NamedFuncOpt(cfg.aliasOpt, "(name=namespace)"),
		},
		&cli.Opt{
			Name:        "fold",
			Description: "folding flags: all, none, or a comma list of empty,collections,constructors,maps,sets",
			Type:        cli.NamedFuncOpt(cfg.foldOpt, "(flags)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "sq").
		WithSynopsis("sq [opts] command [opts]").
		WithDescription("sq expands quote templates with constant folding.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sqMain(cfg, cc, args)
		}).
		WithSubs(
			ExpandCommand(cfg),
			ReportCommand(cfg),
			CheckCommand(cfg),
			EvalCommand(cfg),
			ViewCommand(cfg))
}

func ExpandCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ExpandConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("expand").
		WithAliases("x", "ex").
		WithSynopsis("expand [files]").
		WithDescription("expand quote templates into output expressions").
		WithRun(func(cc *cli.Context, args []string) error {
			return expandRun(cfg, cc, args)
		})
	cfg.Expand = cmd
	return cmd
}

func ReportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReportConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("report").
		WithAliases("r").
		WithSynopsis("report [files]").
		WithDescription("compare verbose and folded expansions").
		WithRun(func(cc *cli.Context, args []string) error {
			return reportRun(cfg, cc, args)
		})
	cfg.Report = cmd
	return cmd
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("check").
		WithAliases("c").
		WithSynopsis("check [files]").
		WithDescription("classify templates and report expansion errors").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return checkRun(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg, Env: eval.Env{}}
	cmd := cli.NewCommand("eval").
		WithAliases("e", "ev").
		WithSynopsis("eval [-e name=expr [ -e name2=expr2 ]...] [files]").
		WithDescription("expand templates and evaluate the output").
		WithOpts(&cli.Opt{
			Name: "e",
			Type: cli.NamedFuncOpt(envOptTypeFunc(cfg.Env), "(name=expr)"),
		}).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalRun(cfg, cc, args)
		})
	cfg.Eval = cmd
	return cmd
}

func envOptTypeFunc(env eval.Env) func(cc *cli.Context, a string) (any, error) {
	return func(cc *cli.Context, a string) (any, error) {
		name, node, err := eval.ParseBinding(a)
		if err != nil {
			return nil, err
		}
		env[name] = node
		return 0, nil
	}
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view templates re-rendered, with color on a tty").
		WithRun(func(cc *cli.Context, args []string) error {
			return viewRun(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}
