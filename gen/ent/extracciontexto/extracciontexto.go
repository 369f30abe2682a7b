// Code generated by ent, DO NOT EDIT.

package extracciontexto

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extracciontexto type in the database.
	Label = "extraccion_texto"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDocumentoID holds the string denoting the documento_id field in the database.
	FieldDocumentoID = "documento_id"
	// FieldMetodo holds the string denoting the metodo field in the database.
	FieldMetodo = "metodo"
	// FieldTextoExtraccion holds the string denoting the texto_extraccion field in the database.
	FieldTextoExtraccion = "texto_extraccion"
	// FieldEntropia holds the string denoting the entropia field in the database.
	FieldEntropia = "entropia"
	// FieldEstado holds the string denoting the estado field in the database.
	FieldEstado = "estado"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeDocumento holds the string denoting the documento edge name in mutations.
	EdgeDocumento = "documento"
	// Table holds the table name of the extracciontexto in the database.
	Table = "extracciones_texto_total"
	// DocumentoTable is the table that holds the documento relation/edge.
	DocumentoTable = "extracciones_texto_total"
	// DocumentoInverseTable is the table name for the Document entity.
	// It exists in this package in order to avoid circular dependency with the "document" package.
	DocumentoInverseTable = "documentos"
	// DocumentoColumn is the table column denoting the documento relation/edge.
	DocumentoColumn = "documento_id"
)

// Columns holds all SQL columns for extracciontexto fields.
var Columns = []string{
	FieldID,
	FieldDocumentoID,
	FieldMetodo,
	FieldTextoExtraccion,
	FieldEntropia,
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
	// MetodoValidator is a validator for the "metodo" field. It is called by the builders before save.
	MetodoValidator func(string) error
	// DefaultTextoExtraccion holds the default value on creation for the "texto_extraccion" field.
	DefaultTextoExtraccion string
	// DefaultEntropia holds the default value on creation for the "entropia" field.
	DefaultEntropia float64
	// DefaultEstado holds the default value on creation for the "estado" field.
	DefaultEstado int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtraccionTexto queries.
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

// ByTextoExtraccion orders the results by the texto_extraccion field.
func ByTextoExtraccion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTextoExtraccion, opts...).ToFunc()
}

// ByEntropia orders the results by the entropia field.
func ByEntropia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntropia, opts...).ToFunc()
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
