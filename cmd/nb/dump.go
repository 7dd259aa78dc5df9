package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/gridbook/nbfmt/ir"
	"github.com/gridbook/nbfmt/walk"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	cfg.setupColor()
	for _, file := range argsOrStdin(args) {
		root, _, err := getNotebook(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := dumpTree(cc.Out, root); err != nil {
			return fmt.Errorf("error dumping %s: %w", file, err)
		}
	}
	return nil
}

var typeColor = color.New(color.FgCyan).SprintFunc()

func dumpTree(w io.Writer, root *ir.Root) error {
	depths := map[ir.Parent]int{}
	return walk.Visit(context.Background(), root,
		func(_ context.Context, n ir.Node, index int, parent ir.Parent) (walk.Action, error) {
			depth := 0
			if parent != nil {
				depth = depths[parent] + 1
			}
			if p, ok := n.(ir.Parent); ok {
				depths[p] = depth
			}
			fmt.Fprintf(w, "%s%s%s\n",
				strings.Repeat("  ", depth), typeColor(n.NodeType().String()), summary(n))
			return walk.Continue, nil
		})
}

func summary(n ir.Node) string {
	switch x := n.(type) {
	case *ir.Root:
		return fmt.Sprintf(" v%d.%d", x.NBFormat, x.NBFormatMinor)
	case *ir.CodeCell:
		if x.ExecutionCount != nil {
			return fmt.Sprintf(" [%d]", *x.ExecutionCount)
		}
		return ""
	case *ir.Stream:
		return fmt.Sprintf(" %s %s", x.Name, excerpt(x.Text))
	case *ir.DisplayData:
		return " {" + strings.Join(x.Bundle.Keys, ", ") + "}"
	case *ir.ExecuteResult:
		return " {" + strings.Join(x.Bundle.Keys, ", ") + "}"
	case *ir.Error:
		return " " + x.Name
	case *ir.Opaque:
		if x.Text == "" {
			return " " + x.Kind
		}
		return fmt.Sprintf(" %s %s", x.Kind, excerpt(x.Text))
	}
	if lit, ok := n.(ir.Literal); ok {
		return " " + excerpt(lit.Value())
	}
	return ""
}

func excerpt(s string) string {
	const limit = 40
	q := strconv.Quote(s)
	if len(q) <= limit {
		return q
	}
	return q[:limit-4] + `..."`
}
