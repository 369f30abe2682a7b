// Package consolidate reduces the per-engine candidates of a (document,
// field) pair into the single authoritative value.
package consolidate

import (
	"strings"

	"github.com/facturascan/pipeline/constants"
)

// Candidate is a scored extraction row competing for a (document, field) slot.
type Candidate struct {
	Metodo string
	Valor  string
	Score  *float64 // nil until the scorer or the consensus evaluator ran
}

// PickWinner selects the candidate with the highest confidence among the
// non-empty ones. Score ties are broken by the engine priority order: listed
// engines in list position, unlisted engines last, and among equals the first
// row encountered. Unscored rows only win when no scored row exists for the
// pair, mirroring NULLs sorting last on a score DESC ordering.
//
// ok is false when no candidate carries a non-empty value.
func PickWinner(cands []Candidate, prioridad []string) (winner Candidate, ok bool) {
	bestScore := -1.0
	bestRank := int(^uint(0) >> 1)

	for _, c := range cands {
		if strings.TrimSpace(c.Valor) == "" {
			continue
		}
		score := -0.5 // below every real score, above the initial sentinel
		if c.Score != nil {
			score = *c.Score
		}
		rank := constants.RangoPrioridad(c.Metodo, prioridad)
		if score > bestScore || (score == bestScore && rank < bestRank) {
			winner, ok = c, true
			bestScore, bestRank = score, rank
		}
	}
	return winner, ok
}
