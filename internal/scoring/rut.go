package scoring

import (
	"math"
	"regexp"
	"strings"
)

var (
	reRUT      = regexp.MustCompile(`^\d{7,8}-[\dkK]$`)
	reNoDigito = regexp.MustCompile(`[^\d]`)
)

// CheckDigit computes the modulo-11 verification digit for the numeric body
// of a Chilean RUT. Weights start at 2 on the rightmost digit and grow by one
// per position, skipping 8 after 7. Remainder 10 maps to "K" and 11 to "0".
func CheckDigit(body string) string {
	sum := 0
	mult := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * mult
		if mult == 7 {
			mult = 9
		} else {
			mult++
		}
	}
	switch v := 11 - sum%11; v {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return string(rune('0' + v))
	}
}

// ValidRUT reports whether a NNNNNNNN-DV value carries the right check digit.
func ValidRUT(valor string) bool {
	cuerpo, dv, ok := strings.Cut(valor, "-")
	if !ok || cuerpo == "" {
		return false
	}
	for i := 0; i < len(cuerpo); i++ {
		if cuerpo[i] < '0' || cuerpo[i] > '9' {
			return false
		}
	}
	return strings.ToUpper(dv) == CheckDigit(cuerpo)
}

// scoreRUT grades a tax id in stages: base for any content, digit volume,
// NNNNNNNN-DV shape, and finally a verified check digit. Capped at 1.0.
// The staged sum is snapped to one decimal so scores stay exactly comparable;
// consolidation breaks ties with ==.
func scoreRUT(valor string) float64 {
	score := 0.1

	digitos := reNoDigito.ReplaceAllString(valor, "")
	if len(digitos) >= 7 {
		score += 0.2
	}

	if reRUT.MatchString(valor) {
		score += 0.3
		if ValidRUT(valor) {
			score += 0.4
		}
	}

	return min(math.Round(score*10)/10, 1.0)
}
