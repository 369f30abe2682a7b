package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/facturascan/pipeline/internal/common"
	"github.com/facturascan/pipeline/internal/repository"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := common.NewLogger(*debug)
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Connect(ctx, cfg, false, logger)
	if err != nil {
		logger.Error("database health: FAIL", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	logger.Info("database health: OK")
}
