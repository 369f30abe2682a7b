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
		id        = flag.Int("id", 0, "consolidate one document in estado evaluado")
		all       = flag.Bool("all", false, "consolidate every document in estado evaluado")
		forzarID  = flag.Int("forzar_id", 0, "re-consolidate a document regardless of its state")
		soloCampo = flag.String("solo_campo", "", "limit the pass to one field")
		inmem     = flag.Bool("inmem", false, "use an in-memory database (demo mode)")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := common.NewLogger(*debug)
	if *id <= 0 && !*all && *forzarID <= 0 {
		logger.Error("one of -id, -all or -forzar_id is required")
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
	consRepo := repository.NewConsolidadoRepository(entc, logger)
	stage := processor.NewConsolidateStage(docsRepo, camposRepo, consRepo, cfg.Pipeline.PrioridadMetodos, logger)
	stage.ScoreMinimo = cfg.Scoring.ScoreMinimoAceptable

	var stats processor.ConsolidateStats
	switch {
	case *forzarID > 0:
		stats, err = stage.Run(ctx, *forzarID, *soloCampo, true)
	case *all:
		stats, err = stage.RunAll(ctx, *soloCampo)
	default:
		stats, err = stage.Run(ctx, *id, *soloCampo, false)
	}
	if err != nil {
		logger.Error("consolidate failed", "error", err)
		os.Exit(1)
	}
	logger.Info("consolidate done", "documentos", stats.Documentos, "campos", stats.Campos)
}
