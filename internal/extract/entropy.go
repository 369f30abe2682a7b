package extract

import "math"

// Entropy returns the Shannon entropy (bits per rune) of a text. OCR output
// that collapsed into a few repeated glyphs scores near zero, which makes
// entropy a cheap quality proxy recorded alongside each extraction.
func Entropy(texto string) float64 {
	if texto == "" {
		return 0.0
	}
	freq := make(map[rune]int)
	total := 0
	for _, r := range texto {
		freq[r]++
		total++
	}
	var h float64
	for _, f := range freq {
		p := float64(f) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}
