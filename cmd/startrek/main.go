package main

import (
	"fmt"
	"log/slog"
	"os"

	"startrek/internal/cli"
	"startrek/internal/shared/config"
	"startrek/internal/shared/logger"
	"startrek/internal/universe"
)

func main() {
	if err := config.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to initialize configuration:", err)
		os.Exit(1)
	}

	logger.Init()
	log := slog.With("component", "main")

	// One registry for the whole run.
	registry := universe.NewRegistry(slog.Default())

	if err := cli.NewRootCommand(registry, slog.Default()).Execute(); err != nil {
		log.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
