package main

import (
	"encoding/json"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/gridbook/nbfmt/ir"
	"github.com/gridbook/nbfmt/nbformat"
)

func filterCells(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 {
		return fmt.Errorf("%w: filter requires an expression", cli.ErrUsage)
	}
	program, err := expr.Compile(args[0], expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return fmt.Errorf("%w: bad expression: %w", cli.ErrUsage, err)
	}
	for _, file := range argsOrStdin(args[1:]) {
		if err := filterFile(cfg, cc, program, file); err != nil {
			return fmt.Errorf("error filtering %s: %w", file, err)
		}
	}
	return nil
}

func filterFile(cfg *FilterConfig, cc *cli.Context, program *vm.Program, file string) error {
	root, raw, err := getNotebook(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	cells, ok := doc["cells"].([]any)
	if !ok {
		return fmt.Errorf("%w: no v4 cells array", nbformat.ErrBadFormat)
	}
	kept := make([]any, 0, len(cells))
	for i, cell := range root.Children() {
		if i >= len(cells) {
			break
		}
		out, err := expr.Run(program, cellEnv(i, cell))
		if err != nil {
			return fmt.Errorf("cell %d: %w", i, err)
		}
		keep, _ := out.(bool)
		if cfg.Drop {
			keep = !keep
		}
		if keep {
			kept = append(kept, cells[i])
		}
	}
	doc["cells"] = kept
	return writeDoc(cc, doc)
}

func cellEnv(i int, n ir.Node) map[string]any {
	src := ir.CellSource(n)
	env := map[string]any{
		"index":           i,
		"source":          src,
		"empty":           src == "",
		"tags":            cellTags(n),
		"execution_count": 0,
		"output_count":    0,
	}
	switch cell := n.(type) {
	case *ir.CodeCell:
		env["type"] = "code"
		if cell.ExecutionCount != nil {
			env["execution_count"] = *cell.ExecutionCount
		}
		env["output_count"] = len(cell.Outputs())
	case *ir.MarkdownCell:
		env["type"] = "markdown"
	case *ir.RawCell:
		env["type"] = "raw"
	default:
		env["type"] = n.NodeType().String()
	}
	return env
}

func cellTags(n ir.Node) []string {
	data := n.NodeData()
	if data == nil {
		return nil
	}
	switch tags := data["tags"].(type) {
	case []string:
		return tags
	case []any:
		res := make([]string, 0, len(tags))
		for _, t := range tags {
			if s, ok := t.(string); ok {
				res = append(res, s)
			}
		}
		return res
	default:
		return nil
	}
}
