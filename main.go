package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-mars-life/model"
	"github.com/sheikhrachel/go-mars-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	presetName := flag.String("preset", "", "starting pattern (1-3 or still, oscillator, glider); prompts when empty")
	flag.Parse()

	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Println("Error loading config:", err)
			os.Exit(1)
		}
		fmt.Printf("Using default configuration (%s not found)\n", *configPath)
		config = utils.DefaultConfig()
	}

	var preset model.Preset
	if *presetName != "" {
		preset, err = model.ParsePreset(*presetName)
	} else {
		preset, err = promptPreset(bufio.NewReader(os.Stdin), os.Stdout)
	}
	if err != nil {
		fmt.Println("Error selecting preset:", err)
		os.Exit(1)
	}

	seed, err := preset.Seed(config.Rows, config.Cols)
	if err != nil {
		fmt.Println("Error seeding grid:", err)
		os.Exit(1)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	stats, err := runSimulation(ctx, config, seed, newRenderer(config, os.Stdout), os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Println("Simulation failed:", err)
		stop()
		os.Exit(1)
	}
	if err != nil {
		fmt.Println("\nShutting down gracefully...")
	}
	displaySummary(os.Stdout, stats)
}
