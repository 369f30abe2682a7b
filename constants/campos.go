package constants

// CampoTipoDoc receives the configurable primary-engine bonus during scoring.
const CampoTipoDoc = "tipo_doc"

// CamposRelevantes is the set of fields the consensus evaluator considers.
// Candidates for fields outside this list keep whatever score they already have.
var CamposRelevantes = []string{
	"tipo_doc", "numero_documento", "localidad", "fecha_documento",
	"nombre_proveedor", "rut_proveedor", "nombre_comprador", "rut_comprador",
	"direccion_comprador", "telefono_comprador", "comuna_comprador",
	"ciudad_comprador", "placa_patente", "tipo_vehiculo", "marca", "modelo",
	"n_motor", "n_chasis", "vin", "serie", "color", "anio", "unidad_pbv",
	"pbv", "cit", "combustible", "unidad_carga", "carga", "asientos",
	"puertas", "unidad_potencia", "potencia_motor", "ejes", "traccion",
	"tipo_carroceria", "cilindrada", "transmision", "monto_neto",
	"monto_iva", "monto_total",
}

// EsCampoRelevante reports membership in CamposRelevantes.
func EsCampoRelevante(campo string) bool {
	for _, c := range CamposRelevantes {
		if c == campo {
			return true
		}
	}
	return false
}
