package scoring

import (
	"regexp"
	"strings"
)

// vinYearCode maps position 10 of a VIN to its model year.
// I, O and Q are excluded from the VIN alphabet entirely.
var vinYearCode = map[byte]int{
	'A': 1980, 'B': 1981, 'C': 1982, 'D': 1983, 'E': 1984, 'F': 1985,
	'G': 1986, 'H': 1987, 'J': 1988, 'K': 1989, 'L': 1990, 'M': 1991,
	'N': 1992, 'P': 1993, 'R': 1994, 'S': 1995, 'T': 1996, 'V': 1997,
	'W': 1998, 'X': 1999, 'Y': 2000,
	'1': 2001, '2': 2002, '3': 2003, '4': 2004, '5': 2005,
	'6': 2006, '7': 2007, '8': 2008, '9': 2009,
}

var reIOQ = regexp.MustCompile(`[IOQ]`)

// scoreVIN: 1.0 for a well-formed 17-char VIN whose model-year code is known,
// 0.5 when only the year code is off, 0.3 for anything with the wrong shape.
func scoreVIN(valor string) float64 {
	v := strings.ToUpper(valor)
	if len(v) != 17 || reIOQ.MatchString(v) {
		return 0.3
	}
	if _, ok := vinYearCode[v[9]]; ok {
		return 1.0
	}
	return 0.5
}
