package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/webgrove/rendertree/config"
)

func configCmd(cfg *ConfigConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Config.Parse(cc, args)
	if err != nil {
		cfg.Config.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: config requires a verb: get, set, del, list, patch", cli.ErrUsage)
	}
	st, err := config.OpenFile(cfg.File)
	if err != nil {
		return err
	}
	verb, args := args[0], args[1:]
	switch verb {
	case "list":
		for _, k := range st.Keys() {
			s, _ := st.Get(k)
			fmt.Fprintf(cc.Out, "%s: %s\n", k, s)
		}
		return nil
	case "get":
		if len(args) != 1 {
			return fmt.Errorf("%w: config get <key>", cli.ErrUsage)
		}
		s, ok := st.Get(args[0])
		if !ok {
			return fmt.Errorf("no setting %q in %s", args[0], cfg.File)
		}
		fmt.Fprintln(cc.Out, s)
		return nil
	case "set":
		if len(args) != 2 {
			return fmt.Errorf("%w: config set <key> <value>", cli.ErrUsage)
		}
		s, err := config.ParseSetting(args[1])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		st.Set(args[0], s)
		return st.SaveFile(cfg.File)
	case "del":
		if len(args) != 1 {
			return fmt.Errorf("%w: config del <key>", cli.ErrUsage)
		}
		st.Delete(args[0])
		return st.SaveFile(cfg.File)
	case "patch":
		if len(args) != 1 {
			return fmt.Errorf("%w: config patch <merge-patch>", cli.ErrUsage)
		}
		if err := st.MergeJSON([]byte(args[0])); err != nil {
			return err
		}
		return st.SaveFile(cfg.File)
	}
	return fmt.Errorf("%w: unknown verb %q", cli.ErrUsage, verb)
}
