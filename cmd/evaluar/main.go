package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/facturascan/pipeline/internal/common"
	processor "github.com/facturascan/pipeline/internal/pipeline"
	"github.com/facturascan/pipeline/internal/repository"
	"github.com/facturascan/pipeline/internal/scoring"
)

func main() {
	var (
		id    = flag.Int("id", 0, "score the candidates of one document")
		all   = flag.Bool("all", false, "score every document with pending candidates")
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

	scorerCfg := scoring.Config{
		MetodoPrimario: cfg.Scoring.MetodoPrimario,
		BonusTipoDoc:   cfg.Scoring.BonusTipoDoc,
	}
	if cfg.Scoring.RutaDiccionario != "" {
		marcas, err := scoring.LoadMarcasCSV(cfg.Scoring.RutaDiccionario)
		if err != nil {
			logger.Error("failed to load brand dictionary", "path", cfg.Scoring.RutaDiccionario, "error", err)
			os.Exit(2)
		}
		scorerCfg.Marcas = marcas
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
	stage := processor.NewScoreStage(docsRepo, camposRepo, scoring.NewScorer(scorerCfg), logger)

	var stats processor.ScoreStats
	if *all {
		stats, err = stage.RunAll(ctx)
	} else {
		stats, err = stage.Run(ctx, *id)
	}
	if err != nil {
		logger.Error("score failed", "error", err)
		os.Exit(1)
	}
	logger.Info("score done", "documentos", stats.Documentos, "filas", stats.Filas)
}
