package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/gen/ent"
	facturasv1 "github.com/facturascan/pipeline/gen/facturas/v1"
	"github.com/facturascan/pipeline/internal/common"
	"github.com/facturascan/pipeline/internal/repository"
)

// FacturasService is the read-only gRPC surface over the document store.
// Mutations stay with the stage commands; the daemon only answers status
// and consolidated-output queries.
type FacturasService struct {
	facturasv1.UnimplementedFacturasServiceServer
	docsRepo repository.DocumentRepository
	consRepo repository.ConsolidadoRepository
	logger   *slog.Logger
}

func NewFacturasService(docs repository.DocumentRepository, cons repository.ConsolidadoRepository, logger *slog.Logger) *FacturasService {
	if logger == nil {
		logger = slog.Default()
	}
	return &FacturasService{docsRepo: docs, consRepo: cons, logger: logger}
}

func (s *FacturasService) GetDocument(ctx context.Context, req *facturasv1.GetDocumentRequest) (*facturasv1.GetDocumentResponse, error) {
	if req.GetId() <= 0 {
		return nil, common.InvalidArgumentError("id is required")
	}
	doc, err := s.docsRepo.GetByID(ctx, int(req.GetId()))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.NotFoundError("document not found")
		}
		s.logger.Warn("get document failed", "id", req.GetId(), "err", err)
		return nil, common.InternalError("get document failed")
	}
	return &facturasv1.GetDocumentResponse{Document: toProtoDocument(doc)}, nil
}

func (s *FacturasService) ListConsolidatedFields(ctx context.Context, req *facturasv1.ListConsolidatedFieldsRequest) (*facturasv1.ListConsolidatedFieldsResponse, error) {
	if req.GetDocumentId() <= 0 {
		return nil, common.InvalidArgumentError("document_id is required")
	}
	rows, err := s.consRepo.ListByDocumento(ctx, int(req.GetDocumentId()))
	if err != nil {
		s.logger.Warn("list consolidated failed", "document_id", req.GetDocumentId(), "err", err)
		return nil, common.InternalError("list consolidated fields failed")
	}
	out := make([]*facturasv1.ConsolidatedField, 0, len(rows))
	for _, r := range rows {
		out = append(out, &facturasv1.ConsolidatedField{
			Campo:  r.Campo,
			Valor:  r.Valor,
			Metodo: r.Metodo,
		})
	}
	return &facturasv1.ListConsolidatedFieldsResponse{Fields: out}, nil
}

func (s *FacturasService) ListDocuments(ctx context.Context, req *facturasv1.ListDocumentsRequest) (*facturasv1.ListDocumentsResponse, error) {
	estado := constants.Estado(req.GetEstado())
	if !estado.Valido() {
		return nil, common.InvalidArgumentError("unknown estado")
	}
	docs, err := s.docsRepo.ListByEstado(ctx, estado)
	if err != nil {
		s.logger.Warn("list documents failed", "estado", estado.String(), "err", err)
		return nil, common.InternalError("list documents failed")
	}
	out := make([]*facturasv1.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, toProtoDocument(d))
	}
	return &facturasv1.ListDocumentsResponse{Documents: out}, nil
}

func toProtoDocument(d *ent.Document) *facturasv1.Document {
	return &facturasv1.Document{
		Id:            int64(d.ID),
		NombreArchivo: d.NombreArchivo,
		ArchivoPadre:  d.ArchivoPadre,
		HashArchivo:   d.HashArchivo,
		TamanoBytes:   d.TamanoBytes,
		NumeroPaginas: int32(d.NumeroPaginas),
		TipoDocumento: d.TipoDocumento,
		Estado:        int32(d.Estado),
		EstadoNombre:  d.Estado.String(),
		CreatedAt:     d.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:     d.UpdatedAt.Format(time.RFC3339Nano),
	}
}
