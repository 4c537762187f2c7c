package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/ironvale/retropix/internal/cli"
	"github.com/ironvale/retropix/internal/filter"
	"github.com/ironvale/retropix/internal/imageio"
	"github.com/ironvale/retropix/internal/palette"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("retropix %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Print(cli.Usage())
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  RETROPIX_LOG_LEVEL=debug    Enable debug logging")
			return
		}
	}

	// All diagnostics go to stderr; stdout stays quiet.
	level := slog.LevelInfo
	if os.Getenv("RETROPIX_LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	inv, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		fmt.Fprint(os.Stderr, cli.Usage())
		os.Exit(2)
	}

	raster, err := imageio.Decode(inv.InputPath)
	if err != nil {
		slog.Error("failed to load input image", "path", inv.InputPath, "error", err)
		os.Exit(1)
	}

	store := palette.NewStore()
	result, err := filter.NewPipeline(store, inv.Ops).Run(raster)
	if err != nil {
		slog.Error("pipeline failed", "error", err)
		os.Exit(1)
	}

	if err := imageio.Encode(result, inv.OutputPath); err != nil {
		slog.Error("failed to save output image", "path", inv.OutputPath, "error", err)
		os.Exit(1)
	}
	slog.Info("image saved", "path", inv.OutputPath, "format", result.Kind().String())
}
