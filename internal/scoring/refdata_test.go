package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMarcasCSV(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "marcas.csv")
	contenido := "marca\ntoyota\n HYUNDAI \n\nFord\n"
	if err := os.WriteFile(p, []byte(contenido), 0o644); err != nil {
		t.Fatal(err)
	}

	marcas, err := LoadMarcasCSV(p)
	if err != nil {
		t.Fatalf("LoadMarcasCSV: %v", err)
	}
	want := []string{"TOYOTA", "HYUNDAI", "FORD"}
	if len(marcas) != len(want) {
		t.Fatalf("got %d marcas, want %d (%v)", len(marcas), len(want), marcas)
	}
	for i := range want {
		if marcas[i] != want[i] {
			t.Errorf("marcas[%d] = %q, want %q", i, marcas[i], want[i])
		}
	}
}

func TestLoadMarcasCSVWithBOM(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "marcas.csv")
	if err := os.WriteFile(p, []byte("\ufeffmarca\nKIA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	marcas, err := LoadMarcasCSV(p)
	if err != nil {
		t.Fatalf("LoadMarcasCSV: %v", err)
	}
	if len(marcas) != 1 || marcas[0] != "KIA" {
		t.Errorf("got %v, want [KIA]", marcas)
	}
}

func TestLoadMarcasCSVMissingColumn(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "marcas.csv")
	if err := os.WriteFile(p, []byte("brand\nKIA\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadMarcasCSV(p); err == nil {
		t.Error("expected error for missing 'marca' column")
	}
}
