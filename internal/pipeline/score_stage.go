package processor

import (
	"context"
	"log/slog"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/internal/repository"
	"github.com/facturascan/pipeline/internal/scoring"
)

// ScoreStage grades every unscored candidate row and then advances the
// document to estado evaluado.
type ScoreStage struct {
	DocsRepo   repository.DocumentRepository
	CamposRepo repository.CampoRepository
	Scorer     *scoring.Scorer
	Logger     *slog.Logger
}

func NewScoreStage(docs repository.DocumentRepository, campos repository.CampoRepository, sc *scoring.Scorer, logger *slog.Logger) *ScoreStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScoreStage{DocsRepo: docs, CamposRepo: campos, Scorer: sc, Logger: logger}
}

// ScoreStats summarizes one scoring pass.
type ScoreStats struct {
	Documentos int
	Filas      int
}

// Run scores the pending rows of a single document. Only rows with no score
// yet (NULL or 0) are touched, so re-running after a partial failure picks up
// where the previous run stopped.
func (s *ScoreStage) Run(ctx context.Context, documentoID int) (ScoreStats, error) {
	rows, err := s.CamposRepo.ListSinScore(ctx, documentoID)
	if err != nil {
		return ScoreStats{}, err
	}
	var st ScoreStats
	for _, row := range rows {
		score := s.Scorer.ScoreForMethod(row.Campo, row.Valor, row.Metodo)
		if err := s.CamposRepo.SetScore(ctx, row.ID, score); err != nil {
			return st, err
		}
		st.Filas++
	}

	claimed, err := s.DocsRepo.Transition(ctx, documentoID, constants.EstadoCamposOK, constants.EstadoEvaluado)
	if err != nil {
		return st, err
	}
	if !claimed {
		s.Logger.Warn("score.claim.lost", "documento_id", documentoID)
		return st, nil
	}
	st.Documentos = 1
	s.Logger.Info("score.ok", "documento_id", documentoID, "filas", st.Filas)
	return st, nil
}

// RunAll scores every document that still owns unscored rows. Per-document
// failures are logged and skipped so one bad document cannot stall the batch.
func (s *ScoreStage) RunAll(ctx context.Context) (ScoreStats, error) {
	ids, err := s.CamposRepo.DocumentosSinScore(ctx)
	if err != nil {
		return ScoreStats{}, err
	}
	var total ScoreStats
	for _, id := range ids {
		st, err := s.Run(ctx, id)
		total.Filas += st.Filas
		total.Documentos += st.Documentos
		if err != nil {
			s.Logger.Error("score.documento.failed", "documento_id", id, "err", err)
			if merrr := s.DocsRepo.MarkError(ctx, id); merrr != nil {
				s.Logger.Error("score.mark_error.failed", "documento_id", id, "err", merrr)
			}
		}
	}
	return total, nil
}
