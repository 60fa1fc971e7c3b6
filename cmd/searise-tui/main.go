package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/floodline/searise/internal/config"
	"github.com/floodline/searise/internal/log"
	"github.com/floodline/searise/internal/tui"
	"github.com/joho/godotenv"
)

func main() {
	configFlag := flag.String("config", "", "Path to config file")
	flag.Parse()

	if err := log.Init(false); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

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

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
