package importer

import "github.com/facturascan/pipeline/constants"

// BuildCandidateJSONSchema returns the JSON-Schema (draft 2020-12 subset)
// every imported candidate record must satisfy.
func BuildCandidateJSONSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"documento_id": map[string]any{"type": "integer", "minimum": 1},
			"metodo": map[string]any{
				"type": "string",
				"enum": []any{
					constants.MetodoPaddleOCR,
					constants.MetodoDocTR,
					constants.MetodoEasyOCR,
					constants.MetodoTesseract4,
					constants.MetodoTesseract6,
					constants.MetodoNativo,
				},
			},
			"campo":          map[string]any{"type": "string", "minLength": 1},
			"valor":          map[string]any{"type": "string"},
			"archivo_origen": map[string]any{"type": "string"},
		},
		"required": []string{"documento_id", "metodo", "campo"},
	}
}
