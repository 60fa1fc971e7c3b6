package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/floodline/searise/internal/config"
	"github.com/floodline/searise/internal/fetch"
	"github.com/floodline/searise/internal/log"
	"github.com/floodline/searise/internal/pipeline"
	"github.com/joho/godotenv"
)

func main() {
	// Command line flags
	var (
		configFlag     = flag.String("config", "", "Path to config file")
		dataFlag       = flag.String("data", "", "Dataset cache directory (overrides config)")
		outFlag        = flag.String("out", "", "Video output directory (overrides config)")
		fetchOnlyFlag  = flag.Bool("fetch-only", false, "Acquire datasets and exit without rendering")
		renderOnlyFlag = flag.Bool("render-only", false, "Skip acquisition and render from the existing cache")
		verboseFlag    = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if err := log.Init(*verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Optional .env overrides, looked up after flags are parsed so flags win.
	godotenv.Load()

	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	if v := os.Getenv("SEARISE_DATA_DIR"); v != "" {
		settings.DataDir = v
	}
	if v := os.Getenv("SEARISE_OUT_DIR"); v != "" {
		settings.OutputDir = v
	}
	if *dataFlag != "" {
		settings.DataDir = *dataFlag
	}
	if *outFlag != "" {
		settings.OutputDir = *outFlag
	}

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		fmt.Println("\nInterrupted, shutting down...")
		cancel()
	}()

	onProgress := func(event fetch.ProgressEvent) {
		if event.Level == fetch.LevelVerbose && !*verboseFlag {
			return
		}
		fmt.Println(event.Message)
	}

	if !*renderOnlyFlag {
		outcomes := pipeline.Fetch(ctx, settings, onProgress)
		if failed := fetch.Failed(outcomes); len(failed) > 0 {
			fmt.Fprintf(os.Stderr, "%d fetches failed; re-run to retry the missing resources\n", len(failed))
		}
	}

	if *fetchOnlyFlag {
		return
	}

	if err := pipeline.Render(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
