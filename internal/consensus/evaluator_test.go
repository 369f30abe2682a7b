package consensus

import "testing"

func cands(valores ...string) []Candidate {
	metodos := []string{"paddleocr", "doctr", "easyocr", "tesseract4", "tesseract6"}
	out := make([]Candidate, len(valores))
	for i, v := range valores {
		out[i] = Candidate{Metodo: metodos[i%len(metodos)], Valor: v}
	}
	return out
}

func TestEvaluateMajority(t *testing.T) {
	scores, ok := Evaluate(cands("A", "A", "B"))
	if !ok {
		t.Fatal("expected an evaluation")
	}
	want := []float64{1.0, 1.0, 0.3}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("scores[%d] = %v, want %v", i, scores[i], want[i])
		}
	}
}

func TestEvaluateAllDistinct(t *testing.T) {
	scores, ok := Evaluate(cands("A", "B", "C"))
	if !ok {
		t.Fatal("expected an evaluation")
	}
	for i, s := range scores {
		if s != 0.2 {
			t.Errorf("scores[%d] = %v, want 0.2", i, s)
		}
	}
}

func TestEvaluateEmptyRows(t *testing.T) {
	scores, ok := Evaluate(cands("TOYOTA", "", "TOYOTA", "  "))
	if !ok {
		t.Fatal("expected an evaluation")
	}
	want := []float64{1.0, 0.0, 1.0, 0.0}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("scores[%d] = %v, want %v", i, scores[i], want[i])
		}
	}
}

func TestEvaluateAllEmptySkips(t *testing.T) {
	if _, ok := Evaluate(cands("", "  ", "")); ok {
		t.Fatal("all-empty candidate set must be skipped, not scored")
	}
	if _, ok := Evaluate(nil); ok {
		t.Fatal("nil candidate set must be skipped")
	}
}

func TestEvaluateSingleCandidate(t *testing.T) {
	// one engine, one value: distinct-values rule applies
	scores, ok := Evaluate(cands("TOYOTA"))
	if !ok || scores[0] != 0.2 {
		t.Fatalf("single candidate = %v (ok=%v), want 0.2", scores, ok)
	}
}

func TestEvaluateIdempotent(t *testing.T) {
	in := cands("T0YOTA", "TOYOTA", "TOYOTA", "VOLVO", "")
	first, ok1 := Evaluate(in)
	second, ok2 := Evaluate(in)
	if ok1 != ok2 || len(first) != len(second) {
		t.Fatal("re-evaluation changed shape")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("scores[%d] changed between runs: %v then %v", i, first[i], second[i])
		}
	}
}

func TestEvaluateEndToEndScenario(t *testing.T) {
	in := []Candidate{
		{Metodo: "engineA", Valor: "TOYOTA"},
		{Metodo: "engineB", Valor: "T0YOTA"},
		{Metodo: "engineC", Valor: "TOYOTA"},
	}
	scores, ok := Evaluate(in)
	if !ok {
		t.Fatal("expected an evaluation")
	}
	want := []float64{1.0, 0.3, 1.0}
	for i := range want {
		if scores[i] != want[i] {
			t.Errorf("%s = %v, want %v", in[i].Metodo, scores[i], want[i])
		}
	}
}
