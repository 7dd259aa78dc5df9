package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/gridbook/nbfmt/nbformat"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	patchBytes := []byte(args[0])
	if !cfg.String {
		patchBytes, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("could not read patch %q: %w", args[0], err)
		}
	}
	p, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return fmt.Errorf("error decoding patch: %w", err)
	}
	raw, err := readNotebookFile(cc, args[1])
	if err != nil {
		return err
	}
	res, err := p.Apply(raw)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	if _, err := nbformat.Parse(res, cfg.parseOpts()...); err != nil {
		return fmt.Errorf("patched document is not a notebook: %w", err)
	}
	buf := bytes.NewBuffer(nil)
	if err := json.Indent(buf, res, "", " "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	_, err = cc.Out.Write(buf.Bytes())
	return err
}
