package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/webgrove/rendertree"
	"github.com/webgrove/rendertree/desc"
)

func readMarkup(cc *cli.Context, path string) (string, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return "", fmt.Errorf("could not open %q: %w", path, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("error reading %q: %w", path, err)
	}
	return string(d), nil
}

func describeMarkup(markup string) ([]desc.Record, error) {
	s, err := rendertree.Open(markup)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return desc.Of(s)
}

func describeFile(cc *cli.Context, path string) ([]desc.Record, error) {
	markup, err := readMarkup(cc, path)
	if err != nil {
		return nil, err
	}
	recs, err := describeMarkup(markup)
	if err != nil {
		return nil, fmt.Errorf("error processing %s: %w", path, err)
	}
	return recs, nil
}
