package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"

	"github.com/webgrove/rendertree/desc"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render listings with color'"`

	Y bool `cli:"name=y aliases=yaml desc='output records as yaml'"`
	J bool `cli:"name=j aliases=json desc='output records as json'"`
	T bool `cli:"name=t aliases=term desc='output a one line per node listing'"`

	OutFormat *desc.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **desc.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := desc.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) format() desc.Format {
	var fmat desc.Format
	switch {
	case cfg.Y:
		fmat = desc.YAMLFormat
	case cfg.J:
		fmat = desc.JSONFormat
	case cfg.T:
		fmat = desc.TermFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	return fmat
}

func (cfg *MainConfig) renderOpts(w io.Writer) []desc.RenderOption {
	res := []desc.RenderOption{
		desc.RenderFormat(cfg.format()),
	}
	if cfg.Color {
		res = append(res, desc.RenderColors(desc.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, desc.RenderColors(desc.NewColors()))
		return res
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ListConfig struct {
	*MainConfig

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Plain bool `cli:"name=plain desc='mark changes with [-..-] and {+..+} instead of color'"`

	Diff *cli.Command
}

type ConfigConfig struct {
	*MainConfig
	File string `cli:"name=f aliases=file desc='settings file (default rendertree.yaml)'"`

	Config *cli.Command
}

type ServeConfig struct {
	*MainConfig
	Addr    string `cli:"name=addr desc='listen address for the inspector (default stdio)'"`
	Metrics string `cli:"name=metrics desc='listen address for prometheus metrics'"`

	Serve *cli.Command
}
