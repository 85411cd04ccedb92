package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/webgrove/rendertree/desc"
	"github.com/webgrove/rendertree/treediff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := diffSide(cfg, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := diffSide(cfg, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	if a == b {
		return nil
	}
	out := treediff.Dumps(a, b)
	if cfg.Plain {
		out = treediff.Plain(a, b)
	}
	if _, err := io.WriteString(cc.Out, out); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// diffSide renders one input as yaml records so the diff works on
// stable text regardless of the main output format.
func diffSide(cfg *DiffConfig, cc *cli.Context, file string) (string, error) {
	recs, err := describeFile(cc, file)
	if err != nil {
		return "", err
	}
	buf := bytes.NewBuffer(nil)
	if err := desc.Render(buf, recs, desc.RenderFormat(desc.YAMLFormat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
