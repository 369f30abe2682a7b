// Package scoring grades raw extracted field values with a confidence in
// [0,1]. Scoring is a total function: malformed or unexpected input lands in
// the lowest confidence bucket, it never fails.
package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/agext/levenshtein"

	"github.com/facturascan/pipeline/constants"
)

var rePatente = regexp.MustCompile(`^[A-Z]{2,4}\d{2,4}$`)

// Kind is the closed set of validation strategies. Every known field maps to
// exactly one kind; unknown fields fall through to KindGenerico explicitly.
type Kind int

const (
	KindGenerico Kind = iota
	KindRUT
	KindAnio
	KindFecha
	KindVIN
	KindEnum
	KindNumerico
	KindAlfabetico
	KindPatente
	KindTipoVehiculo
)

// Config carries the tunables of the scorer. The zero value is usable;
// NewScorer fills in defaults.
type Config struct {
	// MetodoPrimario is the engine whose tipo_doc candidates receive
	// BonusTipoDoc on top of the regular score. Historically paddleocr reads
	// document-type headers more reliably than the other engines.
	MetodoPrimario string
	BonusTipoDoc   float64

	// Marcas overrides the built-in brand dictionary when non-empty.
	Marcas []string
}

type enumSpec struct {
	valores map[string]struct{}
	lista   []string
	umbral  float64
}

// Scorer evaluates one (field, value) pair at a time. It holds no state
// besides configuration and reference lists, so it is safe for concurrent use.
type Scorer struct {
	cfg    Config
	kinds  map[string]Kind
	enums  map[string]enumSpec
	numMin map[string]int
	lev    *levenshtein.Params
	now    func() time.Time
}

func NewScorer(cfg Config) *Scorer {
	if cfg.MetodoPrimario == "" {
		cfg.MetodoPrimario = constants.MetodoPaddleOCR
	}
	if cfg.BonusTipoDoc == 0 {
		cfg.BonusTipoDoc = 0.20
	}
	marcas := cfg.Marcas
	if len(marcas) == 0 {
		marcas = DefaultMarcas
	}

	s := &Scorer{
		cfg:    cfg,
		kinds:  make(map[string]Kind),
		enums:  make(map[string]enumSpec),
		numMin: make(map[string]int),
		lev:    levenshtein.NewParams(),
		now:    time.Now,
	}

	s.register(KindRUT, "rut_proveedor", "rut_comprador")
	s.register(KindAnio, "anio")
	s.register(KindFecha, "fecha_documento")
	s.register(KindVIN, "vin", "n_chasis")
	s.register(KindPatente, "placa_patente")
	s.register(KindTipoVehiculo, "tipo_vehiculo")
	s.register(KindAlfabetico, "transmision", "combustible", "traccion", "tipo_carroceria")

	s.registerEnum("marca", marcas, 0.80)
	s.registerEnum(constants.CampoTipoDoc, DefaultTiposDocumento, 0.75)
	s.registerEnum("color", DefaultColores, 0.80)
	for _, campo := range []string{"unidad_pbv", "unidad_carga", "unidad_potencia"} {
		s.registerEnum(campo, DefaultUnidades, 0.80)
	}

	s.registerNum(1, "numero_documento", "monto_total", "monto_neto", "monto_iva",
		"asientos", "puertas", "potencia_motor", "ejes", "cilindrada",
		"cit", "serie", "pbv", "n_motor")
	s.registerNum(2, "carga")

	return s
}

func (s *Scorer) register(k Kind, campos ...string) {
	for _, c := range campos {
		s.kinds[c] = k
	}
}

func (s *Scorer) registerEnum(campo string, valores []string, umbral float64) {
	set := make(map[string]struct{}, len(valores))
	for _, v := range valores {
		set[strings.ToUpper(v)] = struct{}{}
	}
	s.kinds[campo] = KindEnum
	s.enums[campo] = enumSpec{valores: set, lista: valores, umbral: umbral}
}

func (s *Scorer) registerNum(minDigits int, campos ...string) {
	for _, c := range campos {
		s.kinds[c] = KindNumerico
		s.numMin[c] = minDigits
	}
}

// KindOf returns the validation strategy for a field name. Unregistered
// fields map to KindGenerico.
func (s *Scorer) KindOf(campo string) Kind {
	if k, ok := s.kinds[campo]; ok {
		return k
	}
	return KindGenerico
}

// Score grades a raw value for a field. Empty or blank input always scores 0.
func (s *Scorer) Score(campo, valor string) float64 {
	valor = strings.TrimSpace(valor)
	if valor == "" {
		return 0.0
	}

	switch s.KindOf(campo) {
	case KindRUT:
		return scoreRUT(valor)
	case KindAnio:
		return s.scoreAnio(valor)
	case KindFecha:
		return s.scoreFecha(valor)
	case KindVIN:
		return scoreVIN(valor)
	case KindEnum:
		return s.scoreEnum(campo, valor)
	case KindNumerico:
		return s.scoreNumerico(campo, valor)
	case KindAlfabetico:
		return scoreAlfabetico(valor, 2)
	case KindPatente:
		return scorePatente(valor)
	case KindTipoVehiculo:
		return scoreTipoVehiculo(valor)
	default:
		return scoreGenerico(valor)
	}
}

// ScoreForMethod is Score plus the primary-engine prior: tipo_doc candidates
// from the configured primary engine get an additive bonus, capped at 1.0.
func (s *Scorer) ScoreForMethod(campo, valor, metodo string) float64 {
	score := s.Score(campo, valor)
	if campo == constants.CampoTipoDoc && metodo == s.cfg.MetodoPrimario {
		score = min(score+s.cfg.BonusTipoDoc, 1.0)
	}
	return score
}

func (s *Scorer) scoreAnio(valor string) float64 {
	if !allDigits(valor) {
		return 0.0
	}
	anio, err := strconv.Atoi(valor)
	if err != nil {
		// more digits than an int holds is never a plausible year
		return 0.1
	}
	if anio >= 1900 && anio <= s.now().Year()+1 {
		return 1.0
	}
	return 0.1
}

func (s *Scorer) scoreFecha(valor string) float64 {
	for _, layout := range []string{"02/01/2006", "2006-01-02"} {
		fecha, err := time.Parse(layout, valor)
		if err != nil {
			continue
		}
		if fecha.Year() >= 2000 && fecha.Year() <= s.now().Year() {
			return 1.0
		}
		return 0.3
	}
	return 0.0
}

func (s *Scorer) scoreEnum(campo, valor string) float64 {
	spec := s.enums[campo]
	v := strings.ToUpper(valor)
	if _, ok := spec.valores[v]; ok {
		return 1.0
	}
	for _, ref := range spec.lista {
		if levenshtein.Similarity(v, strings.ToUpper(ref), s.lev) >= spec.umbral {
			return 0.6
		}
	}
	return 0.1
}

func (s *Scorer) scoreNumerico(campo, valor string) float64 {
	if allDigits(valor) && len(valor) >= s.numMin[campo] {
		return 1.0
	}
	return 0.1
}

func scoreAlfabetico(valor string, minLen int) float64 {
	if allLetters(valor) && len([]rune(valor)) >= minLen {
		return 1.0
	}
	return 0.1
}

func scorePatente(valor string) float64 {
	if rePatente.MatchString(strings.ToUpper(valor)) {
		return 1.0
	}
	return 0.3
}

func scoreTipoVehiculo(valor string) float64 {
	v := strings.ToUpper(valor)
	for _, generica := range []string{"AUTO", "VEHICULO", "VEHICULO MOTORIZADO"} {
		if strings.Contains(v, generica) {
			return 0.2
		}
	}
	return scoreAlfabetico(valor, 3)
}

func scoreGenerico(valor string) float64 {
	if len(strings.TrimSpace(valor)) >= 3 {
		return 0.6
	}
	return 0.1
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func allLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
