// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/gen/ent/extracciontexto"
)

// ExtraccionTexto is the model entity for the ExtraccionTexto schema.
type ExtraccionTexto struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentoID holds the value of the "documento_id" field.
	DocumentoID int `json:"documento_id,omitempty"`
	// Metodo holds the value of the "metodo" field.
	Metodo string `json:"metodo,omitempty"`
	// TextoExtraccion holds the value of the "texto_extraccion" field.
	TextoExtraccion string `json:"texto_extraccion,omitempty"`
	// Entropia holds the value of the "entropia" field.
	Entropia float64 `json:"entropia,omitempty"`
	// Estado holds the value of the "estado" field.
	Estado int `json:"estado,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtraccionTextoQuery when eager-loading is set.
	Edges        ExtraccionTextoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtraccionTextoEdges holds the relations/edges for other nodes in the graph.
type ExtraccionTextoEdges struct {
	// Documento holds the value of the documento edge.
	Documento *Document `json:"documento,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentoOrErr returns the Documento value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtraccionTextoEdges) DocumentoOrErr() (*Document, error) {
	if e.Documento != nil {
		return e.Documento, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "documento"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtraccionTexto) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extracciontexto.FieldEntropia:
			values[i] = new(sql.NullFloat64)
		case extracciontexto.FieldID, extracciontexto.FieldDocumentoID, extracciontexto.FieldEstado:
			values[i] = new(sql.NullInt64)
		case extracciontexto.FieldMetodo, extracciontexto.FieldTextoExtraccion:
			values[i] = new(sql.NullString)
		case extracciontexto.FieldDeletedAt, extracciontexto.FieldCreatedAt, extracciontexto.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtraccionTexto fields.
func (_m *ExtraccionTexto) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extracciontexto.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extracciontexto.FieldDocumentoID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field documento_id", values[i])
			} else if value.Valid {
				_m.DocumentoID = int(value.Int64)
			}
		case extracciontexto.FieldMetodo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metodo", values[i])
			} else if value.Valid {
				_m.Metodo = value.String
			}
		case extracciontexto.FieldTextoExtraccion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field texto_extraccion", values[i])
			} else if value.Valid {
				_m.TextoExtraccion = value.String
			}
		case extracciontexto.FieldEntropia:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field entropia", values[i])
			} else if value.Valid {
				_m.Entropia = value.Float64
			}
		case extracciontexto.FieldEstado:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estado", values[i])
			} else if value.Valid {
				_m.Estado = int(value.Int64)
			}
		case extracciontexto.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case extracciontexto.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extracciontexto.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ExtraccionTexto.
// This includes values selected through modifiers, order, etc.
func (_m *ExtraccionTexto) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocumento queries the "documento" edge of the ExtraccionTexto entity.
func (_m *ExtraccionTexto) QueryDocumento() *DocumentQuery {
	return NewExtraccionTextoClient(_m.config).QueryDocumento(_m)
}

// Update returns a builder for updating this ExtraccionTexto.
// Note that you need to call ExtraccionTexto.Unwrap() before calling this method if this ExtraccionTexto
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtraccionTexto) Update() *ExtraccionTextoUpdateOne {
	return NewExtraccionTextoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtraccionTexto entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtraccionTexto) Unwrap() *ExtraccionTexto {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtraccionTexto is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtraccionTexto) String() string {
	var builder strings.Builder
	builder.WriteString("ExtraccionTexto(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("documento_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentoID))
	builder.WriteString(", ")
	builder.WriteString("metodo=")
	builder.WriteString(_m.Metodo)
	builder.WriteString(", ")
	builder.WriteString("texto_extraccion=")
	builder.WriteString(_m.TextoExtraccion)
	builder.WriteString(", ")
	builder.WriteString("entropia=")
	builder.WriteString(fmt.Sprintf("%v", _m.Entropia))
	builder.WriteString(", ")
	builder.WriteString("estado=")
	builder.WriteString(fmt.Sprintf("%v", _m.Estado))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtraccionTextos is a parsable slice of ExtraccionTexto.
type ExtraccionTextos []*ExtraccionTexto
