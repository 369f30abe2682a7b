package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/facturascan/pipeline/internal/common"
	"github.com/facturascan/pipeline/internal/export"
	"github.com/facturascan/pipeline/internal/repository"
)

func main() {
	var (
		id    = flag.Int("id", 0, "deliver one consolidated document")
		all   = flag.Bool("all", false, "deliver every document in estado consolidado")
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
	consRepo := repository.NewConsolidadoRepository(entc, logger)
	svc := export.NewService(docsRepo, consRepo, export.DirDeliverer{Dir: cfg.Paths.Salida}, logger)
	svc.OrigenDir = cfg.Paths.ParaProcesar
	svc.ProcesadosDir = cfg.Paths.Procesados

	if *all {
		n, err := svc.DeliverAll(ctx)
		if err != nil {
			logger.Error("deliver failed", "error", err)
			os.Exit(1)
		}
		logger.Info("deliver done", "entregados", n)
		return
	}
	ok, err := svc.Deliver(ctx, *id)
	if err != nil {
		logger.Error("deliver failed", "documento_id", *id, "error", err)
		os.Exit(1)
	}
	logger.Info("deliver done", "documento_id", *id, "entregado", ok)
}
