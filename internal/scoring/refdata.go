package scoring

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Built-in reference lists. Marcas can be overridden from a CSV dictionary;
// the rest change rarely enough to live here.
var (
	DefaultMarcas = []string{
		"TOYOTA", "HYUNDAI", "FORD", "CHEVROLET", "NISSAN", "MITSUBISHI",
		"JEEP", "KIA", "PEUGEOT", "RENAULT", "FIAT", "VOLKSWAGEN", "BMW",
		"MERCEDES", "HONDA", "MAZDA", "SSANGYONG", "CITROEN", "JAC", "DFSK",
		"SUBARU", "CHERY", "SUZUKI", "BYD", "VOLVO", "FOTON", "MAXUS",
		"GEELY", "CHANGAN", "JETOUR", "FAW", "IVECO", "SCANIA", "DAEWOO",
		"MAN", "ISUZU", "RAM",
	}

	DefaultTiposDocumento = []string{
		"FACTURA ELECTRONICA", "NOTA DE CREDITO ELECTRONICA", "NOTA DE CREDITO",
		"ORDEN DE COMPRA", "HOMOLOGADO", "CEDULA DE IDENTIDAD", "CONTRATO",
		"ROL UNICO TRIBUTARIO",
	}

	DefaultColores = []string{
		"ROJO", "AZUL", "VERDE", "GRIS", "NEGRO", "BLANCO", "AMARILLO",
		"BEIGE", "CAFÉ", "PLATEADO",
	}

	DefaultUnidades = []string{"KG", "CV", "KW"}
)

// LoadMarcasCSV reads a one-column brand dictionary (header "marca").
// Values are trimmed and uppercased; blank rows are dropped.
func LoadMarcasCSV(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open marcas dictionary: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read marcas header: %w", err)
	}
	col := -1
	for i, h := range header {
		// tolerate a UTF-8 BOM on the first header cell
		if strings.TrimPrefix(strings.TrimSpace(h), "\ufeff") == "marca" {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("marcas dictionary %s: no 'marca' column", path)
	}

	var marcas []string
	for {
		rec, err := r.Read()
		if err != nil {
			break
		}
		if col >= len(rec) {
			continue
		}
		m := strings.ToUpper(strings.TrimSpace(rec[col]))
		if m != "" {
			marcas = append(marcas, m)
		}
	}
	return marcas, nil
}
