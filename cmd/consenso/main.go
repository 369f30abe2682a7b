package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/facturascan/pipeline/internal/common"
	processor "github.com/facturascan/pipeline/internal/pipeline"
	"github.com/facturascan/pipeline/internal/repository"
)

func main() {
	var (
		id    = flag.Int("id", 0, "evaluate agreement for one document")
		all   = flag.Bool("all", false, "evaluate every document past scoring")
		inmem = flag.Bool("inmem", false, "use an in-memory database (demo mode)")
		debug = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := common.NewLogger(*debug)
	if *id <= 0 && !*all {
		logger.Error("one of -id or -all is required")
		os.Exit(2)
	}
	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.DSN = "inmem"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	entc, pool, err := repository.Connect(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	docsRepo := repository.NewDocumentRepository(entc, logger)
	camposRepo := repository.NewCampoRepository(entc, logger)
	stage := processor.NewConsensusStage(docsRepo, camposRepo, logger)

	var stats processor.ConsensusStats
	if *all {
		stats, err = stage.RunAll(ctx)
	} else {
		stats, err = stage.Run(ctx, *id)
	}
	if err != nil {
		logger.Error("consensus failed", "error", err)
		os.Exit(1)
	}
	logger.Info("consensus done", "campos", stats.Campos, "filas", stats.Filas)
}
