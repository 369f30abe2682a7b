package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/facturascan/pipeline/internal/common"
	"github.com/facturascan/pipeline/internal/export"
	processor "github.com/facturascan/pipeline/internal/pipeline"
	"github.com/facturascan/pipeline/internal/repository"
	"github.com/facturascan/pipeline/internal/scoring"
)

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use an in-memory database (demo mode)")
		debug = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := common.NewLogger(*debug)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
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

	score := processor.NewScoreStage(docsRepo, camposRepo, scoring.NewScorer(scorerCfg), logger)
	consensus := processor.NewConsensusStage(docsRepo, camposRepo, logger)
	consolidate := processor.NewConsolidateStage(docsRepo, camposRepo, consRepo, cfg.Pipeline.PrioridadMetodos, logger)
	consolidate.ScoreMinimo = cfg.Scoring.ScoreMinimoAceptable
	deliver := export.NewService(docsRepo, consRepo, export.DirDeliverer{Dir: cfg.Paths.Salida}, logger)
	deliver.OrigenDir = cfg.Paths.ParaProcesar
	deliver.ProcesadosDir = cfg.Paths.Procesados

	proc := processor.NewProcessor(logger, docsRepo, score, consensus, consolidate, deliver, cfg.Pipeline.Paralelismo)
	sum, err := proc.Run(ctx)
	if err != nil {
		logger.Error("pipeline run failed", "run_id", sum.RunID, "error", err)
		os.Exit(1)
	}
	if sum.Fallidos > 0 {
		os.Exit(1)
	}
}
