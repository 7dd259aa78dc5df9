package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/gridbook/nbfmt"
	"github.com/gridbook/nbfmt/ir"
	"github.com/gridbook/nbfmt/md"
	"github.com/gridbook/nbfmt/mimetype"
	"github.com/gridbook/nbfmt/textutil"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	rc, err := cfg.loadRC()
	if err != nil {
		return err
	}
	if rc.Plain {
		cfg.Plain = true
	}
	cfg.setupColor()
	if cfg.MaxLines == 0 {
		cfg.MaxLines = rc.MaxLines
	}
	var engine *md.Engine
	if cfg.HTML || rc.HTML {
		engine, err = md.New(rc.Extensions...)
		if err != nil {
			return err
		}
	}
	for _, file := range argsOrStdin(args) {
		root, _, err := getNotebook(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := viewNotebook(cfg, cc.Out, engine, root); err != nil {
			return fmt.Errorf("error viewing %s: %w", file, err)
		}
	}
	return nil
}

var (
	promptColor = color.New(color.FgCyan).SprintfFunc()
	errColor    = color.New(color.FgRed).SprintfFunc()
	dimColor    = color.New(color.Faint).SprintfFunc()
)

func viewNotebook(cfg *ViewConfig, w io.Writer, engine *md.Engine, root *ir.Root) error {
	for _, cell := range root.Children() {
		switch c := cell.(type) {
		case *ir.CodeCell:
			if err := viewCodeCell(cfg, w, c); err != nil {
				return err
			}
		case *ir.MarkdownCell:
			src := ir.CellSource(c)
			if engine != nil {
				html, err := engine.Render(context.Background(), src)
				if err != nil {
					return err
				}
				fmt.Fprint(w, html)
			} else {
				fmt.Fprintln(w, src)
			}
		default:
			fmt.Fprintln(w, ir.CellSource(cell))
		}
		fmt.Fprintln(w)
	}
	return nil
}

func viewCodeCell(cfg *ViewConfig, w io.Writer, cell *ir.CodeCell) error {
	prompt := " "
	if cell.ExecutionCount != nil {
		prompt = fmt.Sprintf("%d", *cell.ExecutionCount)
	}
	fmt.Fprintf(w, "%s\n%s\n", promptColor("In [%s]:", prompt), ir.CellSource(cell))
	for _, out := range cell.Outputs() {
		viewOutput(cfg, w, out)
	}
	return nil
}

func viewOutput(cfg *ViewConfig, w io.Writer, out ir.Node) {
	switch o := out.(type) {
	case *ir.Stream:
		text := textutil.StripANSI(o.Text)
		if o.Name == "stderr" {
			text = errColor("%s", text)
		}
		fmt.Fprint(w, truncateLines(text, cfg.MaxLines))
	case *ir.Error:
		fmt.Fprintf(w, "%s\n", errColor("%s: %s", o.Name, o.Message))
		tb := textutil.StripANSI(strings.Join(o.Traceback, "\n"))
		fmt.Fprintln(w, truncateLines(tb, cfg.MaxLines))
	default:
		id, payload, ok := nbfmt.ResolveOutput(out)
		if !ok {
			return
		}
		if s, isString := payload.(string); isString && mimetype.Classify(id) == mimetype.Text {
			fmt.Fprintln(w, truncateLines(textutil.StripANSI(s), cfg.MaxLines))
			return
		}
		fmt.Fprintln(w, dimColor("[%s]", id))
	}
}

func truncateLines(s string, maxLines int) string {
	if maxLines <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	if len(lines) <= maxLines {
		return s
	}
	return strings.Join(lines[:maxLines], "\n") + "\n" + dimColor("... (%d more lines)", len(lines)-maxLines)
}
