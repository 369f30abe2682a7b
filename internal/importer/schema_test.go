package importer

import (
	"testing"
)

func TestCandidateSchemaAcceptsWellFormedRecord(t *testing.T) {
	schema, err := CompileSchema(BuildCandidateJSONSchema())
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	line := `{"documento_id": 12, "metodo": "paddleocr", "campo": "marca", "valor": "TOYOTA", "archivo_origen": "doc_12.pdf"}`
	if err := ValidateLine(schema, []byte(line)); err != nil {
		t.Fatalf("valid record rejected: %v", err)
	}
}

func TestCandidateSchemaRejectsBadRecords(t *testing.T) {
	schema, err := CompileSchema(BuildCandidateJSONSchema())
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	cases := []struct {
		name string
		line string
	}{
		{"missing campo", `{"documento_id": 1, "metodo": "paddleocr"}`},
		{"missing documento_id", `{"metodo": "paddleocr", "campo": "marca"}`},
		{"unknown metodo", `{"documento_id": 1, "metodo": "gpt4", "campo": "marca"}`},
		{"documento_id zero", `{"documento_id": 0, "metodo": "doctr", "campo": "marca"}`},
		{"extra property", `{"documento_id": 1, "metodo": "doctr", "campo": "marca", "score": 1.0}`},
		{"not json", `marca=TOYOTA`},
	}
	for _, tc := range cases {
		if err := ValidateLine(schema, []byte(tc.line)); err == nil {
			t.Errorf("%s: expected rejection, got pass", tc.name)
		}
	}
}

func TestTextSchema(t *testing.T) {
	schema, err := CompileSchema(BuildTextJSONSchema())
	if err != nil {
		t.Fatalf("compile schema: %v", err)
	}
	ok := `{"documento_id": 3, "metodo": "easyocr", "texto": "FACTURA ELECTRONICA"}`
	if err := ValidateLine(schema, []byte(ok)); err != nil {
		t.Fatalf("valid text record rejected: %v", err)
	}
	// empty texto is legal (an engine can fail to read anything)
	vacio := `{"documento_id": 3, "metodo": "easyocr", "texto": ""}`
	if err := ValidateLine(schema, []byte(vacio)); err != nil {
		t.Fatalf("empty text record rejected: %v", err)
	}
	bad := `{"metodo": "easyocr", "texto": "x"}`
	if err := ValidateLine(schema, []byte(bad)); err == nil {
		t.Error("record without documento_id accepted")
	}
}
