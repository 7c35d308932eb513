package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/jaundice"
)

// Dependencies holds the services and configuration commands run against.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Config   Config
	Analyzer jaundice.BatchAnalyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" help:"Serve the analysis HTTP API"`
	Rate  RateCmd  `cmd:"" help:"Rate one or more article URLs and print the results"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" help:"Listen address (overrides config)"`
}

// RateCmd is the "rate" subcommand.
type RateCmd struct {
	URLs []string `arg:"" help:"Article URLs to rate"`
}
