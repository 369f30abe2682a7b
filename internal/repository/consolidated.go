package repository

import (
	"context"
	"log/slog"

	"github.com/facturascan/pipeline/gen/ent"
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
)

type ConsolidadoRepository interface {
	// Upsert records the winning candidate for one document field. Re-running
	// consolidation replaces the previous winner in place.
	Upsert(ctx context.Context, documentoID int, metodo, campo, valor string) error
	ListByDocumento(ctx context.Context, documentoID int) ([]*ent.CampoConsolidado, error)
}

type consolidadoRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewConsolidadoRepository(entc *ent.Client, log *slog.Logger) ConsolidadoRepository {
	return &consolidadoRepo{ent: entc, log: log}
}

func (r *consolidadoRepo) Upsert(ctx context.Context, documentoID int, metodo, campo, valor string) error {
	err := r.ent.CampoConsolidado.Create().
		SetDocumentoID(documentoID).
		SetMetodo(metodo).
		SetCampo(campo).
		SetValor(valor).
		OnConflictColumns(campoconsolidado.FieldDocumentoID, campoconsolidado.FieldCampo).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.log.Error("consolidated upsert failed",
			"documento_id", documentoID, "campo", campo, "error", err)
		return err
	}
	return nil
}

func (r *consolidadoRepo) ListByDocumento(ctx context.Context, documentoID int) ([]*ent.CampoConsolidado, error) {
	return r.ent.CampoConsolidado.Query().
		Where(campoconsolidado.DocumentoID(documentoID)).
		Order(campoconsolidado.ByCampo()).
		All(ctx)
}
