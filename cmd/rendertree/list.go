package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/webgrove/rendertree"
	"github.com/webgrove/rendertree/desc"
	"github.com/webgrove/rendertree/query"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a filter expression", cli.ErrUsage)
	}
	q, err := query.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	var recs []desc.Record
	for _, file := range args {
		markup, err := readMarkup(cc, file)
		if err != nil {
			return err
		}
		matched, err := listMarkup(q, markup)
		if err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		recs = append(recs, matched...)
	}
	return desc.Render(cc.Out, recs, cfg.renderOpts(cc.Out)...)
}

func listMarkup(q *query.Query, markup string) ([]desc.Record, error) {
	s, err := rendertree.Open(markup)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	var recs []desc.Record
	for {
		node, err := s.Next()
		if errors.Is(err, io.EOF) {
			return recs, nil
		}
		if err != nil {
			return nil, err
		}
		ok, err := q.Match(node)
		if err != nil {
			return nil, err
		}
		if ok {
			recs = append(recs, desc.FromNode(node))
		}
	}
}
