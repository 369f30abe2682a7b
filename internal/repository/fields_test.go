package repository

import (
	"context"
	"log/slog"
	"testing"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/gen/ent"
	"github.com/facturascan/pipeline/internal/extract"
)

func newTestClient(t *testing.T) *ent.Client {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	client, err := OpenSQLite(context.Background(), dsn, slog.Default())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func registerTestDoc(t *testing.T, client *ent.Client) int {
	t.Helper()
	doc, _, err := NewDocumentRepository(client, slog.Default()).Register(context.Background(), RegisterParams{
		NombreArchivo: t.Name() + ".pdf",
		HashArchivo:   "deadbeef",
		TamanoBytes:   1024,
		NumeroPaginas: 1,
		TipoDocumento: "escaneado",
	})
	if err != nil {
		t.Fatal(err)
	}
	return doc.ID
}

func TestGeneracionActual(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	repo := NewCampoRepository(client, slog.Default())
	docID := registerTestDoc(t, client)

	gen, err := repo.GeneracionActual(ctx, docID)
	if err != nil || gen != 1 {
		t.Fatalf("empty table: generacion = %d, err = %v, want 1/nil", gen, err)
	}

	campos := []extract.RawField{{Campo: "marca", Valor: "TOYOTA"}}
	if err := repo.BulkInsert(ctx, docID, constants.MetodoPaddleOCR, "a.pdf", 3, campos); err != nil {
		t.Fatal(err)
	}
	gen, err = repo.GeneracionActual(ctx, docID)
	if err != nil || gen != 3 {
		t.Fatalf("generacion = %d, err = %v, want 3/nil", gen, err)
	}
}

func TestGeneracionActualPropagatesErrors(t *testing.T) {
	client := newTestClient(t)
	repo := NewCampoRepository(client, slog.Default())
	docID := registerTestDoc(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.GeneracionActual(ctx, docID); err == nil {
		t.Fatal("a failed lookup must not silently report generation 1")
	}
}

func TestSupersedeTombstonesAndAdvances(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	repo := NewCampoRepository(client, slog.Default())
	docID := registerTestDoc(t, client)

	campos := []extract.RawField{
		{Campo: "marca", Valor: "TOYOTA"},
		{Campo: "color", Valor: "ROJO"},
	}
	if err := repo.BulkInsert(ctx, docID, constants.MetodoPaddleOCR, "a.pdf", 1, campos); err != nil {
		t.Fatal(err)
	}

	next, err := repo.Supersede(ctx, docID)
	if err != nil {
		t.Fatal(err)
	}
	if next != 2 {
		t.Fatalf("next generation = %d, want 2", next)
	}
	live, err := repo.ListSinScore(ctx, docID)
	if err != nil {
		t.Fatal(err)
	}
	if len(live) != 0 {
		t.Fatalf("superseded rows still live: %d", len(live))
	}

	// superseding again moves on from the tombstoned generation
	next, err = repo.Supersede(ctx, docID)
	if err != nil || next != 1 {
		t.Fatalf("supersede with no live rows = %d, err = %v, want 1/nil", next, err)
	}
}
