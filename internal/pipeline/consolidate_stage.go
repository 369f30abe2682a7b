package processor

import (
	"context"
	"log/slog"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/internal/consolidate"
	"github.com/facturascan/pipeline/internal/repository"
)

// ConsolidateStage commits one winning value per field into the consolidated
// table and advances the document to estado consolidado.
type ConsolidateStage struct {
	DocsRepo        repository.DocumentRepository
	CamposRepo      repository.CampoRepository
	ConsolidadoRepo repository.ConsolidadoRepository
	Prioridad       []string
	// ScoreMinimo flags winners below this confidence in the log so weak
	// consolidations can be audited. 0 disables the check.
	ScoreMinimo float64
	Logger      *slog.Logger
}

func NewConsolidateStage(docs repository.DocumentRepository, campos repository.CampoRepository, cons repository.ConsolidadoRepository, prioridad []string, logger *slog.Logger) *ConsolidateStage {
	if logger == nil {
		logger = slog.Default()
	}
	if len(prioridad) == 0 {
		prioridad = constants.PrioridadMetodos
	}
	return &ConsolidateStage{
		DocsRepo:        docs,
		CamposRepo:      campos,
		ConsolidadoRepo: cons,
		Prioridad:       prioridad,
		Logger:          logger,
	}
}

type ConsolidateStats struct {
	Documentos int
	Campos     int
}

// Run consolidates one document. soloCampo narrows the pass to a single
// field; forzar repeats consolidation even when the document already moved
// past estado evaluado (winners are upserted in place, the state is left
// alone in that case).
func (s *ConsolidateStage) Run(ctx context.Context, documentoID int, soloCampo string, forzar bool) (ConsolidateStats, error) {
	doc, err := s.DocsRepo.GetByID(ctx, documentoID)
	if err != nil {
		return ConsolidateStats{}, err
	}
	if doc.Estado != constants.EstadoEvaluado && !forzar {
		s.Logger.Warn("consolidate.skip.estado",
			"documento_id", documentoID, "estado", doc.Estado.String())
		return ConsolidateStats{}, nil
	}

	campos, err := s.CamposRepo.CamposDeDocumento(ctx, documentoID, soloCampo)
	if err != nil {
		return ConsolidateStats{}, err
	}

	var st ConsolidateStats
	for _, campo := range campos {
		rows, err := s.CamposRepo.ListByDocumentoCampo(ctx, documentoID, campo)
		if err != nil {
			return st, err
		}
		cands := make([]consolidate.Candidate, len(rows))
		for i, row := range rows {
			cands[i] = consolidate.Candidate{Metodo: row.Metodo, Valor: row.Valor, Score: row.Score}
		}
		winner, ok := consolidate.PickWinner(cands, s.Prioridad)
		if !ok {
			s.Logger.Debug("consolidate.campo.sin_ganador", "documento_id", documentoID, "campo", campo)
			continue
		}
		if s.ScoreMinimo > 0 && (winner.Score == nil || *winner.Score < s.ScoreMinimo) {
			s.Logger.Warn("consolidate.campo.score_bajo",
				"documento_id", documentoID, "campo", campo, "metodo", winner.Metodo)
		}
		if err := s.ConsolidadoRepo.Upsert(ctx, documentoID, winner.Metodo, campo, winner.Valor); err != nil {
			return st, err
		}
		st.Campos++
	}

	// A narrowed or forced pass repairs rows without owning the transition.
	if soloCampo == "" && doc.Estado == constants.EstadoEvaluado {
		claimed, err := s.DocsRepo.Transition(ctx, documentoID, constants.EstadoEvaluado, constants.EstadoConsolidado)
		if err != nil {
			return st, err
		}
		if !claimed {
			s.Logger.Warn("consolidate.claim.lost", "documento_id", documentoID)
			return st, nil
		}
		st.Documentos = 1
	}
	s.Logger.Info("consolidate.ok", "documento_id", documentoID, "campos", st.Campos)
	return st, nil
}

// RunAll consolidates every document in estado evaluado. A non-empty
// soloCampo narrows every document's pass to that one field, leaving the
// documents in estado evaluado.
func (s *ConsolidateStage) RunAll(ctx context.Context, soloCampo string) (ConsolidateStats, error) {
	docs, err := s.DocsRepo.ListByEstado(ctx, constants.EstadoEvaluado)
	if err != nil {
		return ConsolidateStats{}, err
	}
	var total ConsolidateStats
	for _, d := range docs {
		st, err := s.Run(ctx, d.ID, soloCampo, false)
		total.Documentos += st.Documentos
		total.Campos += st.Campos
		if err != nil {
			s.Logger.Error("consolidate.documento.failed", "documento_id", d.ID, "err", err)
			if merr := s.DocsRepo.MarkError(ctx, d.ID); merr != nil {
				s.Logger.Error("consolidate.mark_error.failed", "documento_id", d.ID, "err", merr)
			}
		}
	}
	return total, nil
}
