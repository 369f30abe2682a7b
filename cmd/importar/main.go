package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"github.com/facturascan/pipeline/internal/common"
	"github.com/facturascan/pipeline/internal/importer"
	"github.com/facturascan/pipeline/internal/repository"
)

func main() {
	var (
		archivo = flag.String("archivo", "", "candidate batch to import (JSONL)")
		textos  = flag.String("textos", "", "full-text batch to import (JSONL)")
		reproc  = flag.Bool("reprocesar", false, "supersede existing candidates before importing")
		inmem   = flag.Bool("inmem", false, "use an in-memory database (demo mode)")
		debug   = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := common.NewLogger(*debug)
	if *archivo == "" && *textos == "" {
		logger.Error("one of -archivo or -textos is required")
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
	textosRepo := repository.NewTextoRepository(entc, logger)

	svc := importer.NewService(docsRepo, camposRepo, textosRepo, logger)

	if *textos != "" {
		stats, err := svc.ImportTextosJSONL(ctx, *textos)
		if err != nil {
			logger.Error("import failed", "archivo", *textos, "error", err)
			os.Exit(1)
		}
		logger.Info("import done",
			"archivo", *textos,
			"lineas", stats.Lineas,
			"invalidas", stats.Invalidas,
			"insertadas", stats.Insertadas,
			"documentos", stats.Documentos,
		)
	}

	if *archivo != "" {
		stats, err := svc.ImportJSONL(ctx, *archivo, *reproc)
		if err != nil {
			logger.Error("import failed", "archivo", *archivo, "error", err)
			os.Exit(1)
		}
		logger.Info("import done",
			"archivo", *archivo,
			"lineas", stats.Lineas,
			"invalidas", stats.Invalidas,
			"insertadas", stats.Insertadas,
			"documentos", stats.Documentos,
		)
	}
}
