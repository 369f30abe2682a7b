package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAllowedExt(t *testing.T) {
	for _, ext := range []string{".pdf", ".PDF", "pdf"} {
		if !AllowedExt(ext) {
			t.Errorf("AllowedExt(%q) = false, want true", ext)
		}
	}
	for _, ext := range []string{".jpg", ".png", "", ".pdf.exe"} {
		if AllowedExt(ext) {
			t.Errorf("AllowedExt(%q) = true, want false", ext)
		}
	}
}

func TestIsHidden(t *testing.T) {
	if !IsHidden("/data/.incoming") {
		t.Error("dotted directory not flagged as hidden")
	}
	if IsHidden("/data/factura.pdf") {
		t.Error("plain file flagged as hidden")
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name      string
		size      int64
		paginas   int
		wantTipo  string
		wantPPI   float64
		wantCalid int
	}{
		{"small native pdf", 40 * 1024, 1, "nativo", 0, 5},
		{"native multi page", 300 * 1024, 4, "nativo", 0, 5},
		{"low res scan", 200 * 1024, 1, "escaneado", 150, 2},
		{"mid res scan", 600 * 1024, 1, "escaneado", 200, 3},
		{"high res scan", 3 << 20, 1, "escaneado", 300, 4},
		{"zero pages treated as one", 3 << 20, 0, "escaneado", 300, 4},
	}
	for _, tc := range cases {
		tipo, ppi, calidad := classify(tc.size, tc.paginas)
		if tipo != tc.wantTipo || ppi != tc.wantPPI || calidad != tc.wantCalid {
			t.Errorf("%s: classify(%d, %d) = (%s, %v, %d), want (%s, %v, %d)",
				tc.name, tc.size, tc.paginas, tipo, ppi, calidad, tc.wantTipo, tc.wantPPI, tc.wantCalid)
		}
	}
}

func TestMoveFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src", "factura.pdf")
	if err := os.MkdirAll(filepath.Dir(src), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(src, []byte("contenido"), 0o644); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dir, "dst", "anidado", "factura.pdf")
	if err := moveFile(src, dst); err != nil {
		t.Fatalf("moveFile: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Error("source still exists after move")
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read moved file: %v", err)
	}
	if string(got) != "contenido" {
		t.Errorf("moved content = %q", got)
	}
}

func TestHashFileStable(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "a.pdf")
	if err := os.WriteFile(p, []byte("same bytes"), 0o644); err != nil {
		t.Fatal(err)
	}
	h1, n1, err := hashFile(p)
	if err != nil {
		t.Fatal(err)
	}
	h2, n2, err := hashFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if n1 != n2 || n1 != int64(len("same bytes")) {
		t.Errorf("sizes differ: %d vs %d", n1, n2)
	}
	if string(h1) != string(h2) {
		t.Error("hash of identical content differs")
	}
}
