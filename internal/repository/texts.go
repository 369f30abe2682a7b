package repository

import (
	"context"
	"log/slog"

	"github.com/facturascan/pipeline/gen/ent"
	"github.com/facturascan/pipeline/gen/ent/extracciontexto"
	"github.com/facturascan/pipeline/internal/extract"
)

type TextoRepository interface {
	// Upsert stores one engine's full-text output, overwriting a previous
	// run of the same engine on the same document. Entropy is computed here
	// so every stored text carries its quality proxy.
	Upsert(ctx context.Context, documentoID int, metodo, texto string) error
	ListByDocumento(ctx context.Context, documentoID int) ([]*ent.ExtraccionTexto, error)
	// MarkParsed flips the listed rows to estado 3 once their candidate
	// fields have been extracted.
	MarkParsed(ctx context.Context, ids []int) error
}

type textoRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewTextoRepository(entc *ent.Client, log *slog.Logger) TextoRepository {
	return &textoRepo{ent: entc, log: log}
}

func (r *textoRepo) Upsert(ctx context.Context, documentoID int, metodo, texto string) error {
	err := r.ent.ExtraccionTexto.Create().
		SetDocumentoID(documentoID).
		SetMetodo(metodo).
		SetTextoExtraccion(texto).
		SetEntropia(extract.Entropy(texto)).
		OnConflictColumns(extracciontexto.FieldDocumentoID, extracciontexto.FieldMetodo).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.log.Error("texto upsert failed", "documento_id", documentoID, "metodo", metodo, "error", err)
		return err
	}
	r.log.Debug("texto stored", "documento_id", documentoID, "metodo", metodo, "bytes", len(texto))
	return nil
}

func (r *textoRepo) ListByDocumento(ctx context.Context, documentoID int) ([]*ent.ExtraccionTexto, error) {
	return r.ent.ExtraccionTexto.Query().
		Where(
			extracciontexto.DocumentoID(documentoID),
			extracciontexto.DeletedAtIsNil(),
		).
		Order(extracciontexto.ByMetodo()).
		All(ctx)
}

func (r *textoRepo) MarkParsed(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}
	n, err := r.ent.ExtraccionTexto.Update().
		Where(extracciontexto.IDIn(ids...)).
		SetEstado(3).
		Save(ctx)
	if err != nil {
		r.log.Error("mark parsed failed", "ids", len(ids), "error", err)
		return err
	}
	r.log.Info("textos marked as parsed", "updated", n)
	return nil
}
