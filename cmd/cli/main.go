package main

import (
	"context"
	"log"
	"os"

	"github.com/raghhhava7/devclimate/internal/buildinfo"
	"github.com/raghhhava7/devclimate/internal/client/cli"
	"github.com/raghhhava7/devclimate/internal/client/config"
	"github.com/raghhhava7/devclimate/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger, err := logging.NewZapLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
