package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facturascan/pipeline/internal/async"
	"github.com/facturascan/pipeline/internal/common"
	"github.com/facturascan/pipeline/internal/ingest"
	"github.com/facturascan/pipeline/internal/repository"
)

func main() {
	var (
		archivo = flag.String("archivo", "", "register a single PDF")
		dir     = flag.String("dir", "", "register every PDF under a directory (default: DIR_PARA_PROCESAR)")
		watch   = flag.Bool("watch", false, "keep watching DIR_ENTRADA for new PDFs")
		inmem   = flag.Bool("inmem", false, "use an in-memory database (demo mode)")
		debug   = flag.Bool("debug", false, "enable debug logging")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Connect(ctx, cfg, *inmem, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)

	docsRepo := repository.NewDocumentRepository(entc, logger)
	registrar := ingest.NewFSRegistrar(docsRepo, cfg.Paths, logger)

	switch {
	case *archivo != "":
		res, err := registrar.RegisterPath(ctx, *archivo)
		if err != nil {
			logger.Error("register failed", "archivo", *archivo, "error", err)
			os.Exit(1)
		}
		logger.Info("register ok",
			"archivo", *archivo, "documentos", len(res.DocumentIDs), "dedup", res.Deduplicated)

	case *watch:
		runWatch(ctx, logger, registrar, cfg)

	default:
		root := *dir
		if root == "" {
			root = cfg.Paths.ParaProcesar
		}
		_, stats, err := registrar.RegisterDirectory(ctx, root, true)
		if err != nil {
			logger.Error("register directory failed", "dir", root, "error", err)
			os.Exit(1)
		}
		logger.Info("register directory ok",
			"dir", root,
			"scanned", stats.Scanned,
			"matched", stats.Matched,
			"succeeded", stats.Succeeded,
			"deduplicated", stats.Deduplicated,
			"failed", stats.Failed,
		)
	}
}

func runWatch(ctx context.Context, logger *slog.Logger, registrar *ingest.FSRegistrar, cfg *common.Config) {
	evCh, errCh, err := ingest.StartWatcher(ctx, ingest.WatchConfig{
		Roots:       []string{cfg.Paths.Entrada},
		InitialScan: true,
		Debounce:    2 * time.Second,
	})
	if err != nil {
		logger.Error("watcher start failed", "error", err)
		os.Exit(1)
	}
	queue := async.NewRegisterQueue(registrar, logger,
		async.WithWorkers(cfg.Pipeline.Paralelismo),
		async.WithQueueSize(cfg.Pipeline.MaxArchivosPorLote*4),
	)
	logger.Info("watching", "dir", cfg.Paths.Entrada)
	for {
		select {
		case <-ctx.Done():
			drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			queue.Shutdown(drainCtx)
			cancel()
			return
		case err, ok := <-errCh:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", err)
		case path, ok := <-evCh:
			if !ok {
				return
			}
			_ = queue.Enqueue(ctx, async.NewJob(path))
		}
	}
}
