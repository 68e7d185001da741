package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/frenchy64/quotefold/form"
	"github.com/frenchy64/quotefold/parse"
)

func getTemplate(cc *cli.Context, path string, opts ...parse.ParseOption) (*form.Node, error) {
	var (
		r io.Reader
	)
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, opts...)
}

// eachTemplate runs f on the template in every file argument, stdin
// when there are none.
func eachTemplate(cc *cli.Context, args []string, f func(*form.Node) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		n, err := getTemplate(cc, arg)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
		if err := f(n); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
