package constants

// Estado is the lifecycle state code stored in documentos.estado.
type Estado int

// Stable values (store these exact codes in DB).
const (
	EstadoRegistrado  Estado = 1   // PDF registered, pending OCR
	EstadoTextoOK     Estado = 2   // full text extracted by at least one engine
	EstadoCamposOK    Estado = 3   // candidate fields extracted
	EstadoEvaluado    Estado = 4   // candidates scored
	EstadoConsolidado Estado = 5   // one value per field committed
	EstadoEntregado   Estado = 6   // consolidated output delivered downstream
	EstadoError       Estado = 500 // terminal failure
)

var estadoNombres = map[Estado]string{
	EstadoRegistrado:  "registrado",
	EstadoTextoOK:     "texto_ok",
	EstadoCamposOK:    "campos_ok",
	EstadoEvaluado:    "evaluado",
	EstadoConsolidado: "consolidado",
	EstadoEntregado:   "entregado",
	EstadoError:       "error",
}

func (e Estado) String() string {
	if n, ok := estadoNombres[e]; ok {
		return n
	}
	return "desconocido"
}

// Valido reports whether e is a member of the closed state set.
func (e Estado) Valido() bool {
	_, ok := estadoNombres[e]
	return ok
}

// Terminal reports whether no further pipeline stage may claim the document.
func (e Estado) Terminal() bool {
	return e == EstadoEntregado || e == EstadoError
}

// PuedeAvanzar reports whether the transition from -> to is legal.
// The pipeline only moves forward one stage at a time, or jumps to the
// terminal error code from any non-terminal state.
func PuedeAvanzar(from, to Estado) bool {
	if !from.Valido() || !to.Valido() {
		return false
	}
	if to == EstadoError {
		return !from.Terminal()
	}
	return to == from+1 && !from.Terminal()
}
