package constants

import "testing"

func TestPuedeAvanzarForwardOnly(t *testing.T) {
	cases := []struct {
		from, to Estado
		want     bool
	}{
		{EstadoRegistrado, EstadoTextoOK, true},
		{EstadoTextoOK, EstadoCamposOK, true},
		{EstadoCamposOK, EstadoEvaluado, true},
		{EstadoEvaluado, EstadoConsolidado, true},
		{EstadoConsolidado, EstadoEntregado, true},
		{EstadoConsolidado, EstadoCamposOK, false}, // no regression
		{EstadoRegistrado, EstadoCamposOK, false},  // no stage skipping
		{EstadoEntregado, EstadoError, false},      // terminal stays terminal
		{EstadoRegistrado, EstadoError, true},
		{EstadoEvaluado, EstadoError, true},
		{EstadoError, EstadoRegistrado, false},
		{Estado(7), EstadoError, false},
	}
	for _, c := range cases {
		if got := PuedeAvanzar(c.from, c.to); got != c.want {
			t.Errorf("PuedeAvanzar(%d, %d) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestEstadoNames(t *testing.T) {
	if EstadoError.String() != "error" {
		t.Fatalf("unexpected name for 500: %q", EstadoError.String())
	}
	if Estado(42).String() != "desconocido" {
		t.Fatalf("unknown code should map to desconocido")
	}
	if Estado(42).Valido() {
		t.Fatalf("42 is not a member of the closed state set")
	}
}

func TestRangoPrioridad(t *testing.T) {
	if r := RangoPrioridad(MetodoPaddleOCR, PrioridadMetodos); r != 0 {
		t.Fatalf("paddleocr rank = %d, want 0", r)
	}
	if r := RangoPrioridad("mystery-engine", PrioridadMetodos); r != len(PrioridadMetodos) {
		t.Fatalf("unlisted engine rank = %d, want %d", r, len(PrioridadMetodos))
	}
}
