package processor

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/internal/export"
	"github.com/facturascan/pipeline/internal/repository"
)

// Processor drives the in-database stages in order: score, consensus,
// consolidate, deliver. Registration and candidate import feed the pipeline
// from their own commands.
type Processor struct {
	Logger      *slog.Logger
	DocsRepo    repository.DocumentRepository
	Score       *ScoreStage
	Consensus   *ConsensusStage
	Consolidate *ConsolidateStage
	Deliver     *export.Service
	Paralelismo int
}

func NewProcessor(logger *slog.Logger, docs repository.DocumentRepository, score *ScoreStage, consensus *ConsensusStage, consolidate *ConsolidateStage, deliver *export.Service, paralelismo int) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if paralelismo <= 0 {
		paralelismo = 4
	}
	return &Processor{
		Logger:      logger,
		DocsRepo:    docs,
		Score:       score,
		Consensus:   consensus,
		Consolidate: consolidate,
		Deliver:     deliver,
		Paralelismo: paralelismo,
	}
}

// RunSummary counts what one pipeline run accomplished.
type RunSummary struct {
	RunID        string
	Documentos   int
	Evaluados    int
	Consolidados int
	Entregados   int
	Fallidos     int
	Elapsed      time.Duration
}

// ProcessDocument walks one document through every stage it is eligible for.
// The document is re-read between stages so a run started mid-lifecycle
// (say at estado evaluado) picks up from there.
func (p *Processor) ProcessDocument(ctx context.Context, log *slog.Logger, documentoID int, sum *RunSummary) error {
	doc, err := p.DocsRepo.GetByID(ctx, documentoID)
	if err != nil {
		return err
	}

	if doc.Estado == constants.EstadoCamposOK {
		if _, err := p.Score.Run(ctx, documentoID); err != nil {
			log.Error("processor.score.failed", "documento_id", documentoID, "err", err)
			return err
		}
		sum.Evaluados++
	}

	doc, err = p.DocsRepo.GetByID(ctx, documentoID)
	if err != nil {
		return err
	}
	if doc.Estado == constants.EstadoEvaluado {
		if _, err := p.Consensus.Run(ctx, documentoID); err != nil {
			log.Error("processor.consensus.failed", "documento_id", documentoID, "err", err)
			return err
		}
		if _, err := p.Consolidate.Run(ctx, documentoID, "", false); err != nil {
			log.Error("processor.consolidate.failed", "documento_id", documentoID, "err", err)
			return err
		}
		sum.Consolidados++
	}

	doc, err = p.DocsRepo.GetByID(ctx, documentoID)
	if err != nil {
		return err
	}
	if doc.Estado == constants.EstadoConsolidado {
		ok, err := p.Deliver.Deliver(ctx, documentoID)
		if err != nil {
			log.Error("processor.deliver.failed", "documento_id", documentoID, "err", err)
			return err
		}
		if ok {
			sum.Entregados++
		}
	}
	return nil
}

// Run processes every eligible document with bounded parallelism. Per-document
// failures mark the document as errored and do not stop the batch.
func (p *Processor) Run(ctx context.Context) (RunSummary, error) {
	start := time.Now()
	sum := RunSummary{RunID: uuid.NewString()}
	log := p.Logger.With("run_id", sum.RunID)

	var pendientes []int
	seen := make(map[int]struct{})
	for _, estado := range []constants.Estado{
		constants.EstadoCamposOK,
		constants.EstadoEvaluado,
		constants.EstadoConsolidado,
	} {
		docs, err := p.DocsRepo.ListByEstado(ctx, estado)
		if err != nil {
			return sum, err
		}
		for _, d := range docs {
			if _, dup := seen[d.ID]; dup {
				continue
			}
			seen[d.ID] = struct{}{}
			pendientes = append(pendientes, d.ID)
		}
	}
	sum.Documentos = len(pendientes)
	log.Info("processor.run.start", "documentos", sum.Documentos, "paralelismo", p.Paralelismo)

	// Counting into the shared summary from the workers would race, so each
	// worker gets its own and the totals are merged afterward.
	sums := make([]RunSummary, len(pendientes))
	fallidos := make([]bool, len(pendientes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Paralelismo)
	for i, id := range pendientes {
		g.Go(func() error {
			if err := p.ProcessDocument(gctx, log, id, &sums[i]); err != nil {
				fallidos[i] = true
				if merr := p.DocsRepo.MarkError(gctx, id); merr != nil {
					log.Error("processor.mark_error.failed", "documento_id", id, "err", merr)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sum, err
	}

	for i := range sums {
		sum.Evaluados += sums[i].Evaluados
		sum.Consolidados += sums[i].Consolidados
		sum.Entregados += sums[i].Entregados
		if fallidos[i] {
			sum.Fallidos++
		}
	}
	sum.Elapsed = time.Since(start)
	log.Info("processor.run.ok",
		"documentos", sum.Documentos,
		"evaluados", sum.Evaluados,
		"consolidados", sum.Consolidados,
		"entregados", sum.Entregados,
		"fallidos", sum.Fallidos,
		"elapsed_ms", sum.Elapsed.Milliseconds(),
	)
	return sum, nil
}
