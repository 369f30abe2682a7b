package processor

import (
	"context"
	"log/slog"
	"testing"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/gen/ent"
	"github.com/facturascan/pipeline/internal/repository"
)

type fakeDocsRepo struct {
	docs        map[int]*ent.Document
	transitions [][3]int // id, from, to
}

func (f *fakeDocsRepo) Register(context.Context, repository.RegisterParams) (*ent.Document, bool, error) {
	panic("not used")
}

func (f *fakeDocsRepo) GetByID(_ context.Context, id int) (*ent.Document, error) {
	return f.docs[id], nil
}

func (f *fakeDocsRepo) ListByEstado(_ context.Context, estado constants.Estado) ([]*ent.Document, error) {
	var out []*ent.Document
	for _, d := range f.docs {
		if d.Estado == estado {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDocsRepo) Transition(_ context.Context, id int, from, to constants.Estado) (bool, error) {
	f.transitions = append(f.transitions, [3]int{id, int(from), int(to)})
	d := f.docs[id]
	if d == nil || d.Estado != from {
		return false, nil
	}
	d.Estado = to
	return true, nil
}

func (f *fakeDocsRepo) MarkError(_ context.Context, id int) error {
	f.docs[id].Estado = constants.EstadoError
	return nil
}

type fakeCamposRepo struct {
	repository.CampoRepository // unimplemented methods panic

	rows map[string][]*ent.ExtraccionCampo // keyed by campo
}

func (f *fakeCamposRepo) CamposDeDocumento(_ context.Context, _ int, soloCampo string) ([]string, error) {
	if soloCampo != "" {
		if _, ok := f.rows[soloCampo]; !ok {
			return nil, nil
		}
		return []string{soloCampo}, nil
	}
	var out []string
	for campo := range f.rows {
		out = append(out, campo)
	}
	return out, nil
}

func (f *fakeCamposRepo) ListByDocumentoCampo(_ context.Context, _ int, campo string) ([]*ent.ExtraccionCampo, error) {
	return f.rows[campo], nil
}

type fakeConsRepo struct {
	upserts map[string]string // campo -> valor
}

func (f *fakeConsRepo) Upsert(_ context.Context, _ int, _, campo, valor string) error {
	f.upserts[campo] = valor
	return nil
}

func (f *fakeConsRepo) ListByDocumento(context.Context, int) ([]*ent.CampoConsolidado, error) {
	return nil, nil
}

func scored(metodo, valor string, score float64) *ent.ExtraccionCampo {
	return &ent.ExtraccionCampo{Metodo: metodo, Valor: valor, Score: &score}
}

func newConsolidateFixture() (*fakeDocsRepo, *fakeCamposRepo, *fakeConsRepo, *ConsolidateStage) {
	docs := &fakeDocsRepo{docs: map[int]*ent.Document{
		7: {ID: 7, Estado: constants.EstadoEvaluado},
	}}
	campos := &fakeCamposRepo{rows: map[string][]*ent.ExtraccionCampo{
		"marca": {
			scored(constants.MetodoPaddleOCR, "TOYOTA", 1.0),
			scored(constants.MetodoEasyOCR, "T0YOTA", 0.3),
		},
		"color": {
			scored(constants.MetodoDocTR, "ROJO", 0.6),
		},
	}}
	cons := &fakeConsRepo{upserts: map[string]string{}}
	stage := NewConsolidateStage(docs, campos, cons, nil, slog.Default())
	return docs, campos, cons, stage
}

func TestConsolidateRunAllAdvancesEstado(t *testing.T) {
	docs, _, cons, stage := newConsolidateFixture()

	stats, err := stage.RunAll(context.Background(), "")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Documentos != 1 || stats.Campos != 2 {
		t.Fatalf("stats = %+v, want 1 documento / 2 campos", stats)
	}
	if got := cons.upserts["marca"]; got != "TOYOTA" {
		t.Fatalf("marca consolidated as %q, want TOYOTA", got)
	}
	if docs.docs[7].Estado != constants.EstadoConsolidado {
		t.Fatalf("estado = %v, want consolidado", docs.docs[7].Estado)
	}
}

func TestConsolidateRunAllSoloCampo(t *testing.T) {
	docs, _, cons, stage := newConsolidateFixture()

	stats, err := stage.RunAll(context.Background(), "marca")
	if err != nil {
		t.Fatal(err)
	}
	if stats.Campos != 1 {
		t.Fatalf("stats = %+v, want exactly the narrowed field", stats)
	}
	if _, ok := cons.upserts["color"]; ok {
		t.Fatal("color consolidated despite the marca-only pass")
	}
	// a narrowed pass repairs rows without owning the transition
	if docs.docs[7].Estado != constants.EstadoEvaluado {
		t.Fatalf("estado = %v, want evaluado untouched", docs.docs[7].Estado)
	}
	if len(docs.transitions) != 0 {
		t.Fatalf("unexpected transitions: %v", docs.transitions)
	}
}

func TestConsolidateSkipsWrongEstado(t *testing.T) {
	docs, _, cons, stage := newConsolidateFixture()
	docs.docs[7].Estado = constants.EstadoCamposOK

	stats, err := stage.Run(context.Background(), 7, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Campos != 0 || len(cons.upserts) != 0 {
		t.Fatalf("consolidation ran on estado campos_ok: %+v", stats)
	}
}

func TestConsolidateForcedPastEstado(t *testing.T) {
	docs, _, cons, stage := newConsolidateFixture()
	docs.docs[7].Estado = constants.EstadoEntregado

	if _, err := stage.Run(context.Background(), 7, "marca", true); err != nil {
		t.Fatal(err)
	}
	if got := cons.upserts["marca"]; got != "TOYOTA" {
		t.Fatalf("forced pass upserted %q, want TOYOTA", got)
	}
	if docs.docs[7].Estado != constants.EstadoEntregado {
		t.Fatalf("forced pass moved estado to %v", docs.docs[7].Estado)
	}
}
