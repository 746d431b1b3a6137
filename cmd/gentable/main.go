// Generate the heads-up preflop equity table by exhaustive enumeration.
package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/golang/glog"

	"github.com/timpalpant/go-dcfr/equity"
	"github.com/timpalpant/go-dcfr/internal/cli"
)

type CLI struct {
	cli.Common

	Out     string `help:"Output file. A .zst or .gz suffix compresses the table." default:"static/headsup_preflop_equity.bin" type:"path"`
	Workers int    `short:"w" help:"Number of rows to compute concurrently (0 = one per CPU)." default:"0"`
}

func main() {
	var c CLI
	kong.Parse(&c, kong.Description("Generate the heads-up preflop equity table."))
	c.Setup()

	workers := c.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	glog.Infof("Generating equity table with %d workers", workers)
	table, err := equity.Generate(ctx, workers)
	if err != nil {
		glog.Fatalf("Unable to generate equity table: %v", err)
	}
	glog.Infof("Generated table in %v", time.Since(start))

	if err := table.Verify(); err != nil {
		glog.Fatalf("Generated table is invalid: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(c.Out), 0755); err != nil {
		glog.Fatalf("Unable to create output directory: %v", err)
	}

	if err := table.Save(c.Out); err != nil {
		glog.Fatalf("Unable to save equity table: %v", err)
	}
	glog.Infof("Saved equity table to %s", c.Out)
}
