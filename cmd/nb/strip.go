package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/gridbook/nbfmt/nbformat"
)

// strip edits the raw document rather than re-serializing the tree:
// unknown fields and formatting survive, only outputs and execution
// counts change.
func strip(cfg *StripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Strip.Parse(cc, args)
	if err != nil {
		return err
	}
	for _, file := range argsOrStdin(args) {
		if err := stripFile(cfg, cc, file); err != nil {
			return fmt.Errorf("error stripping %s: %w", file, err)
		}
	}
	return nil
}

func stripFile(cfg *StripConfig, cc *cli.Context, file string) error {
	d, err := readNotebookFile(cc, file)
	if err != nil {
		return err
	}
	if _, err := nbformat.Parse(d, cfg.parseOpts()...); err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(d, &doc); err != nil {
		return err
	}
	cells, ok := doc["cells"].([]any)
	if !ok {
		return fmt.Errorf("%w: no v4 cells array", nbformat.ErrBadFormat)
	}
	for _, c := range cells {
		cell, ok := c.(map[string]any)
		if !ok {
			continue
		}
		if cell["cell_type"] == "code" {
			cell["outputs"] = []any{}
			cell["execution_count"] = nil
		}
	}
	return writeDoc(cc, doc)
}

func writeDoc(cc *cli.Context, doc map[string]any) error {
	out, err := json.MarshalIndent(doc, "", " ")
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = cc.Out.Write(out)
	return err
}
