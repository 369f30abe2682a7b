package repository

import (
	"context"
	"log/slog"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/gen/ent"
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/internal/common"
)

// RegisterParams carries the metadata captured when a PDF is registered.
type RegisterParams struct {
	NombreArchivo     string
	ArchivoPadre      string
	HashArchivo       string
	TamanoBytes       int64
	NumeroPaginas     int
	TipoDocumento     string // escaneado | nativo
	ResolucionPPI     float64
	CalidadEstimativa int
}

type DocumentRepository interface {
	Register(ctx context.Context, p RegisterParams) (*ent.Document, bool, error)
	GetByID(ctx context.Context, id int) (*ent.Document, error)
	ListByEstado(ctx context.Context, estado constants.Estado) ([]*ent.Document, error)
	// Transition is the atomic claim: it advances id from exactly `from` to
	// `to` and reports whether this caller won the row. A false return with
	// nil error means another worker got there first or the document moved on.
	Transition(ctx context.Context, id int, from, to constants.Estado) (bool, error)
	// MarkError jumps a non-terminal document to the terminal error state.
	MarkError(ctx context.Context, id int) error
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	return &documentRepo{ent: entc, log: log}
}

// Register inserts a new document in estado registrado. Duplicate content
// under the same name (hash + nombre_archivo) is skipped; the existing row
// and dup=true are returned instead.
func (r *documentRepo) Register(ctx context.Context, p RegisterParams) (*ent.Document, bool, error) {
	existing, err := r.ent.Document.Query().
		Where(
			document.HashArchivo(p.HashArchivo),
			document.NombreArchivo(p.NombreArchivo),
		).
		First(ctx)
	if err == nil {
		r.log.Warn("duplicate document skipped", "nombre_archivo", p.NombreArchivo, "id", existing.ID)
		return existing, true, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, err
	}

	padre := p.ArchivoPadre
	if padre == "" {
		padre = p.NombreArchivo
	}
	doc, err := r.ent.Document.Create().
		SetNombreArchivo(p.NombreArchivo).
		SetArchivoPadre(padre).
		SetHashArchivo(p.HashArchivo).
		SetTamanoBytes(p.TamanoBytes).
		SetNumeroPaginas(p.NumeroPaginas).
		SetTipoDocumento(p.TipoDocumento).
		SetResolucionPpi(p.ResolucionPPI).
		SetCalidadEstimativa(p.CalidadEstimativa).
		SetEstado(constants.EstadoRegistrado).
		Save(ctx)
	if err != nil {
		r.log.Error("document insert failed", "nombre_archivo", p.NombreArchivo, "error", err)
		return nil, false, err
	}
	r.log.Info("document registered", "id", doc.ID, "nombre_archivo", doc.NombreArchivo)
	return doc, false, nil
}

func (r *documentRepo) GetByID(ctx context.Context, id int) (*ent.Document, error) {
	doc, err := r.ent.Document.Query().
		Where(document.ID(id), document.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return doc, nil
}

func (r *documentRepo) ListByEstado(ctx context.Context, estado constants.Estado) ([]*ent.Document, error) {
	return r.ent.Document.Query().
		Where(document.EstadoEQ(estado), document.DeletedAtIsNil()).
		Order(document.ByID()).
		All(ctx)
}

func (r *documentRepo) Transition(ctx context.Context, id int, from, to constants.Estado) (bool, error) {
	if !constants.PuedeAvanzar(from, to) {
		return false, common.ErrEstadoInvalido
	}
	n, err := r.ent.Document.Update().
		Where(
			document.ID(id),
			document.EstadoEQ(from),
			document.DeletedAtIsNil(),
		).
		SetEstado(to).
		Save(ctx)
	if err != nil {
		r.log.Error("state transition failed", "id", id, "from", from, "to", to, "error", err)
		return false, err
	}
	if n != 1 {
		r.log.Debug("state claim lost", "id", id, "from", from, "to", to)
		return false, nil
	}
	r.log.Info("state advanced", "id", id, "from", from.String(), "to", to.String())
	return true, nil
}

func (r *documentRepo) MarkError(ctx context.Context, id int) error {
	_, err := r.ent.Document.Update().
		Where(
			document.ID(id),
			document.EstadoNotIn(constants.EstadoEntregado, constants.EstadoError),
		).
		SetEstado(constants.EstadoError).
		Save(ctx)
	if err != nil {
		r.log.Error("mark error failed", "id", id, "error", err)
		return err
	}
	r.log.Warn("document marked as error", "id", id)
	return nil
}
