// Code generated by ent, DO NOT EDIT.

package campoconsolidado

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campoconsolidado type in the database.
	Label = "campo_consolidado"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentoID holds the string denoting the documento_id field in the database.
	FieldDocumentoID = "documento_id"
	// FieldMetodo holds the string denoting the metodo field in the database.
	FieldMetodo = "metodo"
	// FieldCampo holds the string denoting the campo field in the database.
	FieldCampo = "campo"
	// FieldValor holds the string denoting the valor field in the database.
	FieldValor = "valor"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumento holds the string denoting the documento edge name in mutations.
	EdgeDocumento = "documento"
	// Table holds the table name of the campoconsolidado in the database.
	Table = "extraccion_campos_consolidada"
	// DocumentoTable is the table that holds the documento relation/edge.
	DocumentoTable = "extraccion_campos_consolidada"
	// DocumentoInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentoInverseTable = "documentos"
	// DocumentoColumn is the table column denoting the documento relation/edge.
	DocumentoColumn = "documento_id"
)

// Columns holds all SQL columns for campoconsolidado fields.
var Columns = []string{
	FieldID,
	FieldDocumentoID,
	FieldMetodo,
	FieldCampo,
	FieldValor,
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
	// MetodoValidator is a validator for the "metodo" field. It is called by the builders before save.
	MetodoValidator func(string) error
	// CampoValidator is a validator for the "campo" field. It is called by the builders before save.
	CampoValidator func(string) error
	// DefaultValor holds the default value on creation for the "valor" field.
	DefaultValor string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the CampoConsolidado queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDocumentoID orders the results by the documento_id field.
func ByDocumentoID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocumentoID, opts...).ToFunc()
}

// ByMetodo orders the results by the metodo field.
func ByMetodo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetodo, opts...).ToFunc()
}

// ByCampo orders the results by the campo field.
func ByCampo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCampo, opts...).ToFunc()
}

// ByValor orders the results by the valor field.
func ByValor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldValor, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByDocumentoField orders the results by documento field.
func ByDocumentoField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDocumentoStep(), sql.OrderByField(field, opts...))
	}
}
func newDocumentoStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DocumentoInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, DocumentoTable, DocumentoColumn),
	)
}
