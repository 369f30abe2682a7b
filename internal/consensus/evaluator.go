// Package consensus cross-checks the candidate values different OCR engines
// produced for the same (document, field) pair. Agreement between independent
// engines is the only confidence signal available without ground truth.
package consensus

import "strings"

// Candidate is one engine's raw value for a (document, field) pair.
type Candidate struct {
	Metodo string
	Valor  string
}

// Evaluate assigns a consensus score to every candidate. The returned slice
// is index-aligned with cands. ok is false when no candidate carries a
// non-empty value, in which case the rows must be left unscored.
//
// Rules:
//   - every value distinct: 0.2 for each non-empty row, 0.0 for empty ones
//   - rows matching the modal value: 1.0 when at least two engines agree,
//     otherwise 0.6, except for an exact two-way split which scores 0.6 when
//     exactly one rival value ties the modal count and 0.5 otherwise
//   - rows with any other non-empty value: 0.3
//   - empty rows: 0.0
//
// Evaluate is deterministic and idempotent over an unchanged candidate set.
func Evaluate(cands []Candidate) (scores []float64, ok bool) {
	trimmed := make([]string, len(cands))
	conteo := make(map[string]int)
	total := 0
	for i, c := range cands {
		v := strings.TrimSpace(c.Valor)
		trimmed[i] = v
		if v != "" {
			conteo[v]++
			total++
		}
	}
	if total == 0 {
		return nil, false
	}

	scores = make([]float64, len(cands))

	// No two engines agree: weak signal across the board.
	if len(conteo) == total {
		for i, v := range trimmed {
			if v != "" {
				scores[i] = 0.2
			}
		}
		return scores, true
	}

	modal, maxCount := modalValue(trimmed, conteo)

	for i, v := range trimmed {
		switch {
		case v == "":
			scores[i] = 0.0
		case v == modal:
			scores[i] = modalScore(modal, maxCount, total, conteo)
		default:
			scores[i] = 0.3
		}
	}
	return scores, true
}

// modalValue picks the most frequent value; ties go to the value seen first.
func modalValue(trimmed []string, conteo map[string]int) (string, int) {
	modal, maxCount := "", 0
	for _, v := range trimmed {
		if v != "" && conteo[v] > maxCount {
			modal, maxCount = v, conteo[v]
		}
	}
	return modal, maxCount
}

func modalScore(modal string, maxCount, total int, conteo map[string]int) float64 {
	if maxCount >= 2 {
		return 1.0
	}
	if total > 2 && maxCount == total/2 {
		rivales := 0
		for v, n := range conteo {
			if v != modal && n == maxCount {
				rivales++
			}
		}
		if rivales == 1 {
			return 0.6
		}
		return 0.5
	}
	return 0.6
}
