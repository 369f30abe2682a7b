package processor

import (
	"context"
	"log/slog"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/internal/consensus"
	"github.com/facturascan/pipeline/internal/repository"
)

// ConsensusStage re-grades the relevant fields of a document by cross-engine
// agreement, overwriting the per-field scores the validator assigned. It does
// not move the document state; it may run any number of times between
// scoring and consolidation.
type ConsensusStage struct {
	DocsRepo   repository.DocumentRepository
	CamposRepo repository.CampoRepository
	Logger     *slog.Logger
}

func NewConsensusStage(docs repository.DocumentRepository, campos repository.CampoRepository, logger *slog.Logger) *ConsensusStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ConsensusStage{DocsRepo: docs, CamposRepo: campos, Logger: logger}
}

type ConsensusStats struct {
	Campos int
	Filas  int
}

// Run evaluates every relevant field of one document.
func (s *ConsensusStage) Run(ctx context.Context, documentoID int) (ConsensusStats, error) {
	campos, err := s.CamposRepo.CamposDeDocumento(ctx, documentoID, "")
	if err != nil {
		return ConsensusStats{}, err
	}
	var st ConsensusStats
	for _, campo := range campos {
		if !constants.EsCampoRelevante(campo) {
			continue
		}
		n, err := s.runCampo(ctx, documentoID, campo)
		if err != nil {
			return st, err
		}
		if n > 0 {
			st.Campos++
			st.Filas += n
		}
	}
	s.Logger.Info("consensus.ok", "documento_id", documentoID, "campos", st.Campos, "filas", st.Filas)
	return st, nil
}

func (s *ConsensusStage) runCampo(ctx context.Context, documentoID int, campo string) (int, error) {
	rows, err := s.CamposRepo.ListByDocumentoCampo(ctx, documentoID, campo)
	if err != nil {
		return 0, err
	}
	cands := make([]consensus.Candidate, len(rows))
	for i, row := range rows {
		cands[i] = consensus.Candidate{Metodo: row.Metodo, Valor: row.Valor}
	}
	scores, ok := consensus.Evaluate(cands)
	if !ok {
		s.Logger.Debug("consensus.campo.empty", "documento_id", documentoID, "campo", campo)
		return 0, nil
	}
	for i, row := range rows {
		if err := s.CamposRepo.SetScore(ctx, row.ID, scores[i]); err != nil {
			return 0, err
		}
	}
	return len(rows), nil
}

// RunAll evaluates every document already past scoring.
func (s *ConsensusStage) RunAll(ctx context.Context) (ConsensusStats, error) {
	docs, err := s.DocsRepo.ListByEstado(ctx, constants.EstadoEvaluado)
	if err != nil {
		return ConsensusStats{}, err
	}
	var total ConsensusStats
	for _, d := range docs {
		st, err := s.Run(ctx, d.ID)
		total.Campos += st.Campos
		total.Filas += st.Filas
		if err != nil {
			s.Logger.Error("consensus.documento.failed", "documento_id", d.ID, "err", err)
		}
	}
	return total, nil
}
