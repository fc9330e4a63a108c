// Command xfermodes renders a grid showing every blend mode applied to a
// disc and a square over a checkerboard, and saves it as PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/gogpu/xfermodes"
	"github.com/gogpu/xfermodes/sample"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML layout file")
		output     = flag.String("output", "", "output file (overrides config)")
		cell       = flag.Int("cell", 0, "cell size in pixels (overrides config)")
		columns    = flag.Int("columns", 0, "cells per row (overrides config)")
		workers    = flag.Int("workers", 0, "concurrent cells, 0 for no limit")
		modeName   = flag.String("mode", "", "render only this mode, e.g. src_over")
		verbose    = flag.Bool("v", false, "debug logging")
		version    = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *version {
		fmt.Println("xfermodes", xfermodes.Version)
		return
	}

	if *verbose {
		xfermodes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := sample.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = sample.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "output":
			cfg.Output = *output
		case "cell":
			cfg.Cell = *cell
		case "columns":
			cfg.Columns = *columns
		case "workers":
			cfg.Workers = *workers
		}
	})

	modes := xfermodes.Modes()
	if *modeName != "" {
		m, err := xfermodes.ParseMode(*modeName)
		if err != nil {
			log.Fatalf("Invalid -mode: %v", err)
		}
		modes = []xfermodes.Mode{m}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	canvas, err := sample.RenderModes(ctx, cfg, modes)
	if err != nil {
		log.Fatalf("Failed to render: %v", err)
	}

	if err := canvas.SavePNG(cfg.Output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Saved %s (%dx%d, %d modes)\n", cfg.Output, canvas.Width(), canvas.Height(), len(modes))
}
