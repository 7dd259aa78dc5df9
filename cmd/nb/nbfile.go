package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/gridbook/nbfmt/ir"
	"github.com/gridbook/nbfmt/nbformat"
)

func readNotebookFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", path, err)
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
	return d, nil
}

func getNotebook(cfg *MainConfig, cc *cli.Context, path string) (*ir.Root, []byte, error) {
	d, err := readNotebookFile(cc, path)
	if err != nil {
		return nil, nil, err
	}
	root, err := nbformat.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, nil, fmt.Errorf("error decoding %q: %w", path, err)
	}
	return root, d, nil
}

func argsOrStdin(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}
