package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "nb").
		WithSynopsis("nb [opts] command [opts]").
		WithDescription("nb is a tool for working with notebook documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DumpCommand(cfg),
			StripCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func nbMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	cfg.Main.Usage(cc, nil)
	return nil
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [opts] [files]").
		WithDescription("view notebooks, picking the best representation of each output").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithSynopsis("dump [files]").
		WithDescription("dump the typed notebook tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func StripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StripConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Strip, "strip").
		WithSynopsis("strip [files]").
		WithDescription("remove outputs and execution counts from code cells").
		WithRun(func(cc *cli.Context, args []string) error {
			return strip(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("filter").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("filter <expr> [files]").
		WithDescription(filterDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return filterCells(cfg, cc, args)
		})
	cfg.Filter = cmd
	return cmd
}

const filterDescription = `filter keeps the cells for which a boolean expression holds and
writes the resulting notebook document.

The expression is evaluated per cell with these variables in scope:

  index            cell position in the notebook
  type             "code", "markdown" or "raw"
  source           the cell's source text
  empty            whether the source text is empty
  tags             the cell's metadata tags
  execution_count  the code cell's counter, 0 when unset
  output_count     number of outputs, 0 for non-code cells

Examples:

  nb filter 'type == "code" and not empty' a.ipynb
  nb filter '"keep" in tags' a.ipynb
  nb filter -v 'output_count == 0' a.ipynb`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff a.ipynb b.ipynb").
		WithDescription("diff the cell sources of two notebooks").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("patch [opts] <patch> <file>").
		WithDescription("apply an RFC 6902 patch to a notebook document").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}
