package constants

// Known OCR engine identifiers as stored in the metodo column.
const (
	MetodoPaddleOCR  = "paddleocr"
	MetodoDocTR      = "doctr"
	MetodoEasyOCR    = "easyocr"
	MetodoTesseract4 = "tesseract4"
	MetodoTesseract6 = "tesseract6"
	MetodoNativo     = "nativo"
)

// PrioridadMetodos is the default engine preference used only to break
// score ties during consolidation. Engines not listed rank last.
var PrioridadMetodos = []string{MetodoPaddleOCR, MetodoDocTR, MetodoEasyOCR}

// RangoPrioridad returns the tie-break rank of an engine within prioridad:
// 0 for the most preferred, len(prioridad) for any unlisted engine.
func RangoPrioridad(metodo string, prioridad []string) int {
	for i, m := range prioridad {
		if m == metodo {
			return i
		}
	}
	return len(prioridad)
}
