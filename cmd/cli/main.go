package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/solodynamo/1-billion-row-challenge/internal/adapters/factory"
	adapterutils "github.com/solodynamo/1-billion-row-challenge/internal/adapters/utils"
	"github.com/solodynamo/1-billion-row-challenge/internal/application"
	"github.com/solodynamo/1-billion-row-challenge/internal/config"
	"github.com/solodynamo/1-billion-row-challenge/internal/logger"
)

func main() {
	// --- Composition Root: Initialize Config, Logger, Adapters and Core Logic ---
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	log, err := logger.NewLogger(cfg.LogsPath, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	sinkFactory := factory.NewStaticSinkFactory()
	countParser := adapterutils.NewUtilCountParser()
	service := application.NewGeneratorService(sinkFactory, countParser, log)
	// --- End Composition Root ---

	if err := newRootCmd(cfg, service, log).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config, service *application.GeneratorService, log zerolog.Logger) *cobra.Command {
	rootCmd := newGenerateCmd(cfg, service)
	rootCmd.AddCommand(newVerifyCmd(cfg), newStatsCmd(cfg, log))
	return rootCmd
}
