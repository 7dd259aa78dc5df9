package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gridbook/nbfmt/nbdiff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 notebook files", cli.ErrUsage)
	}
	cfg.setupColor()
	a, _, err := getNotebook(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, _, err := getNotebook(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	for _, d := range nbdiff.Diff(a, b) {
		if d.Kind == nbdiff.Equal && !cfg.Equal {
			continue
		}
		fmt.Fprintf(cc.Out, "%s\n", headerColor("--- cell %d (%s)", d.Index, d.Kind))
		if color.NoColor {
			fmt.Fprintln(cc.Out, d.Text())
			continue
		}
		for i := range d.Diffs {
			dd := &d.Diffs[i]
			switch dd.Type {
			case diffpatch.DiffInsert:
				fmt.Fprint(cc.Out, color.GreenString("%s", dd.Text))
			case diffpatch.DiffDelete:
				fmt.Fprint(cc.Out, color.RedString("%s", dd.Text))
			case diffpatch.DiffEqual:
				fmt.Fprint(cc.Out, dd.Text)
			}
		}
		fmt.Fprintln(cc.Out)
	}
	return nil
}

var headerColor = color.New(color.FgMagenta).SprintfFunc()
