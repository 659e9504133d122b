package main

import (
	"fmt"
	"os"

	"github.com/solodynamo/1-billion-row-challenge/internal/adapters/factory"
	adapterutils "github.com/solodynamo/1-billion-row-challenge/internal/adapters/utils"
	"github.com/solodynamo/1-billion-row-challenge/internal/application"
	"github.com/solodynamo/1-billion-row-challenge/internal/config"
	"github.com/solodynamo/1-billion-row-challenge/internal/logger"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: gendata <output-path> <rows>")
		os.Exit(1)
	}
	outputPath, rowSpec := os.Args[1], os.Args[2]

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

	service := application.NewGeneratorService(factory.NewStaticSinkFactory(), adapterutils.NewUtilCountParser(), log)
	if err := service.CreateFile(outputPath, rowSpec, cfg.Options()); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating file: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated %s (%s rows)\n", outputPath, rowSpec)
}
