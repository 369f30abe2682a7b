package scoring

import (
	"testing"

	"github.com/facturascan/pipeline/constants"
)

func TestScoreTotalityOnBlankInput(t *testing.T) {
	s := NewScorer(Config{})
	campos := []string{
		"rut_proveedor", "anio", "fecha_documento", "vin", "marca", "color",
		"tipo_doc", "unidad_pbv", "monto_total", "carga", "placa_patente",
		"tipo_vehiculo", "transmision", "campo_inventado",
	}
	for _, campo := range campos {
		for _, valor := range []string{"", "   ", "\t"} {
			if got := s.Score(campo, valor); got != 0.0 {
				t.Errorf("Score(%q, %q) = %v, want 0.0", campo, valor, got)
			}
		}
	}
}

func TestScoreAnio(t *testing.T) {
	s := NewScorer(Config{})
	if got := s.Score("anio", "2020"); got != 1.0 {
		t.Errorf("anio 2020 = %v, want 1.0", got)
	}
	if got := s.Score("anio", "1899"); got != 0.1 {
		t.Errorf("anio 1899 = %v, want 0.1", got)
	}
	if got := s.Score("anio", "9999"); got != 0.1 {
		t.Errorf("anio 9999 = %v, want 0.1", got)
	}
	if got := s.Score("anio", "20x0"); got != 0.0 {
		t.Errorf("anio 20x0 = %v, want 0.0", got)
	}
	// a digit string past int range must not wrap into a plausible year
	if got := s.Score("anio", "99999999999999999999992020"); got != 0.1 {
		t.Errorf("anio overflow = %v, want 0.1", got)
	}
}

func TestScoreVIN(t *testing.T) {
	s := NewScorer(Config{})
	cases := []struct {
		valor string
		want  float64
	}{
		{"ABCDEFGHJALMNPRST", 1.0}, // position 10 = 'A' (1980)
		{"ABCDEFGHJ0LMNPRST", 0.5}, // position 10 = '0', unknown year code
		{"ABCDEFGHIALMNPRST", 0.3}, // contains 'I'
		{"TOOSHORT", 0.3},
	}
	for _, c := range cases {
		if got := s.Score("vin", c.valor); got != c.want {
			t.Errorf("vin %q = %v, want %v", c.valor, got, c.want)
		}
	}
}

func TestScoreEnumMarca(t *testing.T) {
	s := NewScorer(Config{})
	if got := s.Score("marca", "TOYOTA"); got != 1.0 {
		t.Errorf("marca TOYOTA = %v, want 1.0", got)
	}
	if got := s.Score("marca", "toyota"); got != 1.0 {
		t.Errorf("marca toyota = %v, want 1.0 (case-insensitive)", got)
	}
	if got := s.Score("marca", "T0YOTA"); got != 0.6 {
		t.Errorf("marca T0YOTA = %v, want 0.6 (fuzzy)", got)
	}
	if got := s.Score("marca", "ZZZZZZ"); got != 0.1 {
		t.Errorf("marca ZZZZZZ = %v, want 0.1", got)
	}
}

func TestScoreEnumTipoDoc(t *testing.T) {
	s := NewScorer(Config{})
	if got := s.Score("tipo_doc", "FACTURA ELECTRONICA"); got != 1.0 {
		t.Errorf("tipo_doc exact = %v, want 1.0", got)
	}
	if got := s.Score("tipo_doc", "FACTURA ELECTRONICO"); got != 0.6 {
		t.Errorf("tipo_doc fuzzy = %v, want 0.6", got)
	}
	if got := s.Score("tipo_doc", "42"); got != 0.1 {
		t.Errorf("tipo_doc junk = %v, want 0.1", got)
	}
}

func TestScoreNumerico(t *testing.T) {
	s := NewScorer(Config{})
	if got := s.Score("monto_total", "1250000"); got != 1.0 {
		t.Errorf("monto_total digits = %v, want 1.0", got)
	}
	if got := s.Score("monto_total", "1.250.000"); got != 0.1 {
		t.Errorf("monto_total with separators = %v, want 0.1", got)
	}
	if got := s.Score("carga", "7"); got != 0.1 {
		t.Errorf("carga single digit = %v, want 0.1", got)
	}
	if got := s.Score("carga", "750"); got != 1.0 {
		t.Errorf("carga 750 = %v, want 1.0", got)
	}
}

func TestScoreGenericoFallback(t *testing.T) {
	s := NewScorer(Config{})
	if got := s.Score("observaciones", "texto libre"); got != 0.6 {
		t.Errorf("unknown field long value = %v, want 0.6", got)
	}
	if got := s.Score("observaciones", "ab"); got != 0.1 {
		t.Errorf("unknown field short value = %v, want 0.1", got)
	}
	if s.KindOf("observaciones") != KindGenerico {
		t.Errorf("unregistered field should dispatch to KindGenerico")
	}
}

func TestScoreForMethodPrimaryBonus(t *testing.T) {
	s := NewScorer(Config{})

	base := s.Score(constants.CampoTipoDoc, "42")
	primario := s.ScoreForMethod(constants.CampoTipoDoc, "42", constants.MetodoPaddleOCR)
	otro := s.ScoreForMethod(constants.CampoTipoDoc, "42", constants.MetodoEasyOCR)

	if diff := primario - base; diff < 0.199 || diff > 0.201 {
		t.Errorf("primary engine bonus = %v, want 0.20", diff)
	}
	if otro != base {
		t.Errorf("non-primary engine got a bonus: %v != %v", otro, base)
	}

	// capped at 1.0
	if got := s.ScoreForMethod(constants.CampoTipoDoc, "FACTURA ELECTRONICA", constants.MetodoPaddleOCR); got != 1.0 {
		t.Errorf("bonus must cap at 1.0, got %v", got)
	}

	// the bonus applies to tipo_doc only
	if got := s.ScoreForMethod("marca", "TOYOTA", constants.MetodoPaddleOCR); got != 1.0 {
		t.Errorf("marca with primary engine = %v, want plain 1.0", got)
	}
	if got := s.ScoreForMethod("observaciones", "ab", constants.MetodoPaddleOCR); got != 0.1 {
		t.Errorf("generic with primary engine = %v, want plain 0.1", got)
	}
}

func TestScoreConfigurableBonus(t *testing.T) {
	s := NewScorer(Config{MetodoPrimario: constants.MetodoDocTR, BonusTipoDoc: 0.10})
	base := s.Score(constants.CampoTipoDoc, "42")
	got := s.ScoreForMethod(constants.CampoTipoDoc, "42", constants.MetodoDocTR)
	if diff := got - base; diff < 0.099 || diff > 0.101 {
		t.Errorf("configured bonus = %v, want 0.10", diff)
	}
	if s.ScoreForMethod(constants.CampoTipoDoc, "42", constants.MetodoPaddleOCR) != base {
		t.Errorf("paddleocr must not get the bonus when doctr is primary")
	}
}
