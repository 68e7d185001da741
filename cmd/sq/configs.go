package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/frenchy64/quotefold/encode"
	"github.com/frenchy64/quotefold/eval"
	"github.com/frenchy64/quotefold/expand"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Pretty bool `cli:"name=pretty desc='break wide output across lines'"`

	Namespace string
	Aliases   map[string]string
	Folding   *expand.Folding

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) nsOpt(cc *cli.Context, a string) (any, error) {
	cfg.Namespace = a
	return nil, nil
}

func (cfg *MainConfig) aliasOpt(cc *cli.Context, a string) (any, error) {
	name, full, ok := strings.Cut(a, "=")
	if !ok {
		return nil, fmt.Errorf("%w: alias %q is not name=namespace", cli.ErrUsage, a)
	}
	cfg.Aliases[name] = full
	return nil, nil
}

func (cfg *MainConfig) foldOpt(cc *cli.Context, a string) (any, error) {
	f, err := parseFolding(a)
	if err != nil {
		return nil, err
	}
	cfg.Folding = &f
	return nil, nil
}

func parseFolding(v string) (expand.Folding, error) {
	switch v {
	case "all":
		return expand.FoldAll, nil
	case "none":
		return expand.FoldNone, nil
	}
	var f expand.Folding
	for _, name := range strings.Split(v, ",") {
		switch strings.TrimSpace(name) {
		case "empty":
			f |= expand.FoldEmpty
		case "collections":
			f |= expand.FoldCollections
		case "constructors":
			f |= expand.DirectConstructors
		case "maps":
			f |= expand.DirectMaps
		case "sets":
			f |= expand.DirectSets
		default:
			return 0, fmt.Errorf("%w: unknown folding flag %q", cli.ErrUsage, name)
		}
	}
	return f, nil
}

func (cfg *MainConfig) expandOpts() []expand.Option {
	r := &expand.NsResolver{Namespace: "user", Aliases: cfg.Aliases}
	if cfg.Namespace != "" {
		r.Namespace = cfg.Namespace
	}
	res := []expand.Option{expand.WithResolver(r)}
	if cfg.Folding != nil {
		res = append(res, expand.WithFolding(*cfg.Folding))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodePretty(cfg.Pretty),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	return res
}

type ExpandConfig struct {
	*MainConfig

	Expand *cli.Command
}

type ReportConfig struct {
	*MainConfig

	Report *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='suppress per-template output'"`

	Check *cli.Command
}

type EvalConfig struct {
	*MainConfig
	Env eval.Env

	Eval *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}
