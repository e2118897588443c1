package main

import (
	"fmt"
	"os"

	"github.com/tatianab/text-adventure/internal/config"
	"github.com/tatianab/text-adventure/internal/logger"
	"github.com/tatianab/text-adventure/internal/tui"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	log, closer, err := logger.New(cfg)
	if err != nil {
		fmt.Printf("Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	log.Info().Bool("alt_screen", cfg.AltScreen).Msg("starting game")

	if err := tui.Run(tui.DefaultSession(log), cfg.AltScreen); err != nil {
		errLog := logger.WithError(log, err)
		errLog.Error().Msg("TUI exited")
		fmt.Printf("Error running TUI: %v\n", err)
		closer.Close()
		os.Exit(1)
	}
}
