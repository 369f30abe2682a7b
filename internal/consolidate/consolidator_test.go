package consolidate

import (
	"testing"

	"github.com/facturascan/pipeline/constants"
)

func ptr(f float64) *float64 { return &f }

func TestPickWinnerHighestScore(t *testing.T) {
	cands := []Candidate{
		{Metodo: constants.MetodoEasyOCR, Valor: "TOY0TA", Score: ptr(0.3)},
		{Metodo: constants.MetodoDocTR, Valor: "TOYOTA", Score: ptr(1.0)},
		{Metodo: constants.MetodoPaddleOCR, Valor: "TOYOTA", Score: ptr(0.6)},
	}
	w, ok := PickWinner(cands, constants.PrioridadMetodos)
	if !ok || w.Metodo != constants.MetodoDocTR || w.Valor != "TOYOTA" {
		t.Fatalf("winner = %+v (ok=%v), want doctr/TOYOTA", w, ok)
	}
}

func TestPickWinnerTieBreakByPriority(t *testing.T) {
	cands := []Candidate{
		{Metodo: constants.MetodoEasyOCR, Valor: "AZUL", Score: ptr(0.8)},
		{Metodo: constants.MetodoPaddleOCR, Valor: "ROJO", Score: ptr(0.8)},
	}
	w, ok := PickWinner(cands, constants.PrioridadMetodos)
	if !ok || w.Metodo != constants.MetodoPaddleOCR {
		t.Fatalf("winner = %+v (ok=%v), want paddleocr on tie", w, ok)
	}
}

func TestPickWinnerUnlistedEnginesRankLast(t *testing.T) {
	cands := []Candidate{
		{Metodo: "mystery-engine", Valor: "A", Score: ptr(0.9)},
		{Metodo: constants.MetodoEasyOCR, Valor: "B", Score: ptr(0.9)},
	}
	w, _ := PickWinner(cands, constants.PrioridadMetodos)
	if w.Metodo != constants.MetodoEasyOCR {
		t.Fatalf("winner = %+v, want listed engine over unlisted on tie", w)
	}
}

func TestPickWinnerSkipsEmptyValues(t *testing.T) {
	cands := []Candidate{
		{Metodo: constants.MetodoPaddleOCR, Valor: "  ", Score: ptr(1.0)},
		{Metodo: constants.MetodoEasyOCR, Valor: "1234567-4", Score: ptr(0.6)},
	}
	w, ok := PickWinner(cands, constants.PrioridadMetodos)
	if !ok || w.Metodo != constants.MetodoEasyOCR {
		t.Fatalf("winner = %+v (ok=%v), blank value must never win", w, ok)
	}

	if _, ok := PickWinner([]Candidate{{Metodo: "x", Valor: ""}}, nil); ok {
		t.Fatal("no non-empty candidate, want ok=false")
	}
}

func TestPickWinnerUnscoredLosesToScored(t *testing.T) {
	cands := []Candidate{
		{Metodo: constants.MetodoPaddleOCR, Valor: "SIN SCORE"},
		{Metodo: constants.MetodoEasyOCR, Valor: "CON SCORE", Score: ptr(0.1)},
	}
	w, _ := PickWinner(cands, constants.PrioridadMetodos)
	if w.Valor != "CON SCORE" {
		t.Fatalf("winner = %+v, scored row must beat unscored", w)
	}
}

func TestPickWinnerIdempotent(t *testing.T) {
	cands := []Candidate{
		{Metodo: constants.MetodoDocTR, Valor: "X", Score: ptr(0.5)},
		{Metodo: constants.MetodoPaddleOCR, Valor: "Y", Score: ptr(0.5)},
	}
	first, _ := PickWinner(cands, constants.PrioridadMetodos)
	second, _ := PickWinner(cands, constants.PrioridadMetodos)
	if first != second {
		t.Fatalf("winner changed between runs: %+v then %+v", first, second)
	}
}

func TestPickWinnerEndToEndScenario(t *testing.T) {
	// marca candidates for document 42 after consensus evaluation
	prioridad := []string{"engineA", "engineB", "engineC"}
	cands := []Candidate{
		{Metodo: "engineA", Valor: "TOYOTA", Score: ptr(1.0)},
		{Metodo: "engineB", Valor: "T0YOTA", Score: ptr(0.3)},
		{Metodo: "engineC", Valor: "TOYOTA", Score: ptr(1.0)},
	}
	w, ok := PickWinner(cands, prioridad)
	if !ok || w.Valor != "TOYOTA" || w.Metodo != "engineA" {
		t.Fatalf("winner = %+v (ok=%v), want TOYOTA from engineA", w, ok)
	}
}
