package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/gridbook/nbfmt/nbformat"
)

type MainConfig struct {
	Plain   bool `cli:"name=plain desc='disable color output'"`
	Lenient bool `cli:"name=lenient desc='tolerate unknown cell and output types'"`

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []nbformat.ParseOption {
	if cfg.Lenient {
		return []nbformat.ParseOption{nbformat.ParseLenient()}
	}
	return nil
}

func (cfg *MainConfig) setupColor() {
	if cfg.Plain || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

type ViewConfig struct {
	*MainConfig

	MaxLines   int    `cli:"name=maxLines desc='truncate each output after this many lines'"`
	HTML       bool   `cli:"name=html desc='render markdown cells to html'"`
	ConfigFile string `cli:"name=config desc='view configuration file (yaml)'"`

	View *cli.Command
}

// ViewRC is the optional view configuration file, the same shape as
// the flags plus the markdown extension list.
type ViewRC struct {
	Plain      bool     `yaml:"plain"`
	MaxLines   int      `yaml:"maxLines"`
	HTML       bool     `yaml:"html"`
	Extensions []string `yaml:"extensions"`
}

func (cfg *ViewConfig) loadRC() (*ViewRC, error) {
	rc := &ViewRC{Extensions: []string{"gfm"}}
	path := cfg.ConfigFile
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return rc, nil
		}
		path = home + "/.config/nbfmt/view.yaml"
		if _, err := os.Stat(path); err != nil {
			return rc, nil
		}
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	if err := yaml.Unmarshal(d, rc); err != nil {
		return nil, fmt.Errorf("could not parse %q: %w", path, err)
	}
	if len(rc.Extensions) == 0 {
		rc.Extensions = []string{"gfm"}
	}
	return rc, nil
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type StripConfig struct {
	*MainConfig

	Strip *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Drop bool `cli:"name=v desc='drop matching cells instead of keeping them'"`

	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Equal bool `cli:"name=equal desc='also print unchanged cells'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	String bool `cli:"name=s desc='consider patch a string argument'"`

	Patch *cli.Command
}
