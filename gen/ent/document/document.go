// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/facturascan/pipeline/constants"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldNombreArchivo holds the string denoting the nombre_archivo field in the database.
	FieldNombreArchivo = "nombre_archivo"
	// FieldArchivoPadre holds the string denoting the archivo_padre field in the database.
	FieldArchivoPadre = "archivo_padre"
	// FieldHashArchivo holds the string denoting the hash_archivo field in the database.
	FieldHashArchivo = "hash_archivo"
	// FieldTamanoBytes holds the string denoting the tamano_bytes field in the database.
	FieldTamanoBytes = "tamano_bytes"
	// FieldNumeroPaginas holds the string denoting the numero_paginas field in the database.
	FieldNumeroPaginas = "numero_paginas"
	// FieldTipoDocumento holds the string denoting the tipo_documento field in the database.
	FieldTipoDocumento = "tipo_documento"
	// FieldResolucionPpi holds the string denoting the resolucion_ppi field in the database.
	FieldResolucionPpi = "resolucion_ppi"
	// FieldCalidadEstimativa holds the string denoting the calidad_estimativa field in the database.
	FieldCalidadEstimativa = "calidad_estimativa"
	// FieldEstado holds the string denoting the estado field in the database.
	FieldEstado = "estado"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeTextos holds the string denoting the textos edge name in mutations.
	EdgeTextos = "textos"
	// EdgeCampos holds the string denoting the campos edge name in mutations.
	EdgeCampos = "campos"
	// EdgeConsolidados holds the string denoting the consolidados edge name in mutations.
	EdgeConsolidados = "consolidados"
	// Table holds the table name of the document in the database.
	Table = "documentos"
	// TextosTable is the table that holds the textos relation/edge.
	TextosTable = "extracciones_texto_total"
	// TextosInverseTable is the table name for the ExtraccionTexto entity.
	// It exists in this package in order to avoid circular dependency with the "extracciontexto" package.
	TextosInverseTable = "extracciones_texto_total"
	// TextosColumn is the table column denoting the textos relation/edge.
	TextosColumn = "documento_id"
	// CamposTable is the table that holds the campos relation/edge.
	CamposTable = "extracciones_campos"
	// CamposInverseTable is the table name for the ExtraccionCampo entity.
	// It exists in this package in order to avoid circular dependency with the "extraccioncampo" package.
	CamposInverseTable = "extracciones_campos"
	// CamposColumn is the table column denoting the campos relation/edge.
	CamposColumn = "documento_id"
	// ConsolidadosTable is the table that holds the consolidados relation/edge.
	ConsolidadosTable = "extraccion_campos_consolidada"
	// ConsolidadosInverseTable is the table name for the CampoConsolidado entity.
	// It exists in this package in order to avoid circular dependency with the "campoconsolidado" package.
	ConsolidadosInverseTable = "extraccion_campos_consolidada"
	// ConsolidadosColumn is the table column denoting the consolidados relation/edge.
	ConsolidadosColumn = "documento_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldNombreArchivo,
	FieldArchivoPadre,
	FieldHashArchivo,
	FieldTamanoBytes,
	FieldNumeroPaginas,
	FieldTipoDocumento,
	FieldResolucionPpi,
	FieldCalidadEstimativa,
	FieldEstado,
	FieldDeletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// NombreArchivoValidator is a validator for the "nombre_archivo" field. It is called by the builders before save.
	NombreArchivoValidator func(string) error
	// HashArchivoValidator is a validator for the "hash_archivo" field. It is called by the builders before save.
	HashArchivoValidator func(string) error
	// TamanoBytesValidator is a validator for the "tamano_bytes" field. It is called by the builders before save.
	TamanoBytesValidator func(int64) error
	// DefaultNumeroPaginas holds the default value on creation for the "numero_paginas" field.
	DefaultNumeroPaginas int
	// DefaultTipoDocumento holds the default value on creation for the "tipo_documento" field.
	DefaultTipoDocumento string
	// DefaultResolucionPpi holds the default value on creation for the "resolucion_ppi" field.
	DefaultResolucionPpi float64
	// DefaultCalidadEstimativa holds the default value on creation for the "calidad_estimativa" field.
	DefaultCalidadEstimativa int
	// DefaultEstado holds the default value on creation for the "estado" field.
	DefaultEstado constants.Estado
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByNombreArchivo orders the results by the nombre_archivo field.
func ByNombreArchivo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombreArchivo, opts...).ToFunc()
}

// ByArchivoPadre orders the results by the archivo_padre field.
func ByArchivoPadre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArchivoPadre, opts...).ToFunc()
}

// ByHashArchivo orders the results by the hash_archivo field.
func ByHashArchivo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashArchivo, opts...).ToFunc()
}

// ByTamanoBytes orders the results by the tamano_bytes field.
func ByTamanoBytes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTamanoBytes, opts...).ToFunc()
}

// ByNumeroPaginas orders the results by the numero_paginas field.
func ByNumeroPaginas(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumeroPaginas, opts...).ToFunc()
}

// ByTipoDocumento orders the results by the tipo_documento field.
func ByTipoDocumento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTipoDocumento, opts...).ToFunc()
}

// ByResolucionPpi orders the results by the resolucion_ppi field.
func ByResolucionPpi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResolucionPpi, opts...).ToFunc()
}

// ByCalidadEstimativa orders the results by the calidad_estimativa field.
func ByCalidadEstimativa(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCalidadEstimativa, opts...).ToFunc()
}

// ByEstado orders the results by the estado field.
func ByEstado(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEstado, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTextosCount orders the results by textos count.
func ByTextosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTextosStep(), opts...)
	}
}

// ByTextos orders the results by textos terms.
func ByTextos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTextosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCamposCount orders the results by campos count.
func ByCamposCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCamposStep(), opts...)
	}
}

// ByCampos orders the results by campos terms.
func ByCampos(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCamposStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByConsolidadosCount orders the results by consolidados count.
func ByConsolidadosCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newConsolidadosStep(), opts...)
	}
}

// ByConsolidados orders the results by consolidados terms.
func ByConsolidados(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConsolidadosStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newTextosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TextosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TextosTable, TextosColumn),
	)
}
func newCamposStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CamposInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CamposTable, CamposColumn),
	)
}
func newConsolidadosStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConsolidadosInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ConsolidadosTable, ConsolidadosColumn),
	)
}
