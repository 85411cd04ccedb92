package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/scott-cotton/cli"

	"github.com/webgrove/rendertree/engine"
	"github.com/webgrove/rendertree/inspector"
	"github.com/webgrove/rendertree/metrics"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		cfg.Serve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: serve takes no arguments, got %v", cli.ErrUsage, args)
	}
	eng := engine.New()
	var iOpts []inspector.ServerOption
	if cfg.Metrics != "" {
		reg := prometheus.NewRegistry()
		iOpts = append(iOpts, inspector.WithMetrics(metrics.New(reg, eng)))
		go http.ListenAndServe(cfg.Metrics, metrics.Handler(reg))
	}
	ctx := context.Background()
	srv := inspector.NewServer(eng, iOpts...)
	if cfg.Addr != "" {
		return srv.ListenAndServe(ctx, cfg.Addr)
	}
	return srv.ServeStdio(ctx)
}
