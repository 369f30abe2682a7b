package repository

import (
	"context"
	"log/slog"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/facturascan/pipeline/gen/ent"
	"github.com/facturascan/pipeline/gen/ent/extraccioncampo"
	"github.com/facturascan/pipeline/internal/extract"
)

type CampoRepository interface {
	// BulkInsert stores the raw candidates one extractor produced for one
	// document at the given generation.
	BulkInsert(ctx context.Context, documentoID int, metodo, archivoOrigen string, generacion int, campos []extract.RawField) error
	// ListSinScore returns live candidate rows still waiting for a score
	// (score IS NULL or 0). documentoID 0 means all documents.
	ListSinScore(ctx context.Context, documentoID int) ([]*ent.ExtraccionCampo, error)
	// DocumentosSinScore returns the distinct documents owning unscored rows.
	DocumentosSinScore(ctx context.Context) ([]int, error)
	ListByDocumentoCampo(ctx context.Context, documentoID int, campo string) ([]*ent.ExtraccionCampo, error)
	// CamposDeDocumento returns the distinct live field names of a document,
	// optionally narrowed to one field.
	CamposDeDocumento(ctx context.Context, documentoID int, soloCampo string) ([]string, error)
	SetScore(ctx context.Context, id int, score float64) error
	// GeneracionActual returns the generation new candidate rows of a
	// document must join: the highest live generation, or 1 for a document
	// with no rows yet.
	GeneracionActual(ctx context.Context, documentoID int) (int, error)
	// Supersede tombstones every live candidate row of a document and
	// returns the generation number replacement rows must carry. This is the
	// only sanctioned path for forced reprocessing.
	Supersede(ctx context.Context, documentoID int) (int, error)
}

type campoRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewCampoRepository(entc *ent.Client, log *slog.Logger) CampoRepository {
	return &campoRepo{ent: entc, log: log}
}

func (r *campoRepo) BulkInsert(ctx context.Context, documentoID int, metodo, archivoOrigen string, generacion int, campos []extract.RawField) error {
	if len(campos) == 0 {
		return nil
	}
	builders := make([]*ent.ExtraccionCampoCreate, len(campos))
	for i, c := range campos {
		builders[i] = r.ent.ExtraccionCampo.Create().
			SetDocumentoID(documentoID).
			SetMetodo(metodo).
			SetCampo(c.Campo).
			SetValor(c.Valor).
			SetArchivoOrigen(archivoOrigen).
			SetGeneracion(generacion)
	}
	if err := r.ent.ExtraccionCampo.CreateBulk(builders...).Exec(ctx); err != nil {
		r.log.Error("bulk insert of candidates failed",
			"documento_id", documentoID, "metodo", metodo, "error", err)
		return err
	}
	r.log.Debug("candidates stored",
		"documento_id", documentoID, "metodo", metodo, "campos", len(campos), "generacion", generacion)
	return nil
}

func (r *campoRepo) ListSinScore(ctx context.Context, documentoID int) ([]*ent.ExtraccionCampo, error) {
	q := r.ent.ExtraccionCampo.Query().
		Where(
			extraccioncampo.DeletedAtIsNil(),
			extraccioncampo.Or(
				extraccioncampo.ScoreIsNil(),
				extraccioncampo.Score(0),
			),
		)
	if documentoID > 0 {
		q = q.Where(extraccioncampo.DocumentoID(documentoID))
	}
	return q.Order(extraccioncampo.ByID()).All(ctx)
}

func (r *campoRepo) DocumentosSinScore(ctx context.Context) ([]int, error) {
	return r.ent.ExtraccionCampo.Query().
		Where(
			extraccioncampo.DeletedAtIsNil(),
			extraccioncampo.Or(
				extraccioncampo.ScoreIsNil(),
				extraccioncampo.Score(0),
			),
		).
		GroupBy(extraccioncampo.FieldDocumentoID).
		Ints(ctx)
}

func (r *campoRepo) ListByDocumentoCampo(ctx context.Context, documentoID int, campo string) ([]*ent.ExtraccionCampo, error) {
	return r.ent.ExtraccionCampo.Query().
		Where(
			extraccioncampo.DocumentoID(documentoID),
			extraccioncampo.Campo(campo),
			extraccioncampo.DeletedAtIsNil(),
		).
		Order(extraccioncampo.ByID()).
		All(ctx)
}

func (r *campoRepo) CamposDeDocumento(ctx context.Context, documentoID int, soloCampo string) ([]string, error) {
	q := r.ent.ExtraccionCampo.Query().
		Where(
			extraccioncampo.DocumentoID(documentoID),
			extraccioncampo.DeletedAtIsNil(),
		)
	if soloCampo != "" {
		q = q.Where(extraccioncampo.Campo(soloCampo))
	}
	return q.GroupBy(extraccioncampo.FieldCampo).Strings(ctx)
}

func (r *campoRepo) SetScore(ctx context.Context, id int, score float64) error {
	if err := r.ent.ExtraccionCampo.UpdateOneID(id).SetScore(score).Exec(ctx); err != nil {
		r.log.Error("set score failed", "id", id, "error", err)
		return err
	}
	return nil
}

func (r *campoRepo) GeneracionActual(ctx context.Context, documentoID int) (int, error) {
	row, err := r.ent.ExtraccionCampo.Query().
		Where(
			extraccioncampo.DocumentoID(documentoID),
			extraccioncampo.DeletedAtIsNil(),
		).
		Order(extraccioncampo.ByGeneracion(sql.OrderDesc())).
		First(ctx)
	if ent.IsNotFound(err) {
		return 1, nil
	}
	if err != nil {
		r.log.Error("generacion lookup failed", "documento_id", documentoID, "error", err)
		return 0, err
	}
	if row.Generacion < 1 {
		return 1, nil
	}
	return row.Generacion, nil
}

func (r *campoRepo) Supersede(ctx context.Context, documentoID int) (int, error) {
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	actual := 0
	row, err := tx.ExtraccionCampo.Query().
		Where(
			extraccioncampo.DocumentoID(documentoID),
			extraccioncampo.DeletedAtIsNil(),
		).
		Order(extraccioncampo.ByGeneracion(sql.OrderDesc())).
		First(ctx)
	switch {
	case ent.IsNotFound(err):
		// no live rows, the next batch starts the first generation
	case err != nil:
		r.log.Error("supersede lookup failed", "documento_id", documentoID, "error", err)
		return 0, err
	default:
		actual = row.Generacion
	}

	n, err := tx.ExtraccionCampo.Update().
		Where(
			extraccioncampo.DocumentoID(documentoID),
			extraccioncampo.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		r.log.Error("supersede failed", "documento_id", documentoID, "error", err)
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	r.log.Info("candidates superseded", "documento_id", documentoID, "rows", n, "nueva_generacion", actual+1)
	return actual + 1, nil
}
