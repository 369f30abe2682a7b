// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
	"github.com/facturascan/pipeline/gen/ent/document"
)

// CampoConsolidado is the model entity for the CampoConsolidado schema.
type CampoConsolidado struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// DocumentoID holds the value of the "documento_id" field.
	DocumentoID int `json:"documento_id,omitempty"`
	// Metodo holds the value of the "metodo" field.
	Metodo string `json:"metodo,omitempty"`
	// Campo holds the value of the "campo" field.
	Campo string `json:"campo,omitempty"`
	// Valor holds the value of the "valor" field.
	Valor string `json:"valor,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CampoConsolidadoQuery when eager-loading is set.
	Edges        CampoConsolidadoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// CampoConsolidadoEdges holds the relations/edges for other nodes in the graph.
type CampoConsolidadoEdges struct {
	// Documento holds the value of the documento edge.
	Documento *Document `json:"documento,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentoOrErr returns the Documento value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CampoConsolidadoEdges) DocumentoOrErr() (*Document, error) {
	if e.Documento != nil {
		return e.Documento, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "documento"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CampoConsolidado) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case campoconsolidado.FieldID, campoconsolidado.FieldDocumentoID:
			values[i] = new(sql.NullInt64)
		case campoconsolidado.FieldMetodo, campoconsolidado.FieldCampo, campoconsolidado.FieldValor:
			values[i] = new(sql.NullString)
		case campoconsolidado.FieldCreatedAt, campoconsolidado.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CampoConsolidado fields.
func (_m *CampoConsolidado) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case campoconsolidado.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case campoconsolidado.FieldDocumentoID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field documento_id", values[i])
			} else if value.Valid {
				_m.DocumentoID = int(value.Int64)
			}
		case campoconsolidado.FieldMetodo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metodo", values[i])
			} else if value.Valid {
				_m.Metodo = value.String
			}
		case campoconsolidado.FieldCampo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campo", values[i])
			} else if value.Valid {
				_m.Campo = value.String
			}
		case campoconsolidado.FieldValor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field valor", values[i])
			} else if value.Valid {
				_m.Valor = value.String
			}
		case campoconsolidado.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case campoconsolidado.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CampoConsolidado.
// This includes values selected through modifiers, order, etc.
func (_m *CampoConsolidado) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocumento queries the "documento" edge of the CampoConsolidado entity.
func (_m *CampoConsolidado) QueryDocumento() *DocumentQuery {
	return NewCampoConsolidadoClient(_m.config).QueryDocumento(_m)
}

// Update returns a builder for updating this CampoConsolidado.
// Note that you need to call CampoConsolidado.Unwrap() before calling this method if this CampoConsolidado
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CampoConsolidado) Update() *CampoConsolidadoUpdateOne {
	return NewCampoConsolidadoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CampoConsolidado entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CampoConsolidado) Unwrap() *CampoConsolidado {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CampoConsolidado is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CampoConsolidado) String() string {
	var builder strings.Builder
	builder.WriteString("CampoConsolidado(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("documento_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentoID))
	builder.WriteString(", ")
	builder.WriteString("metodo=")
	builder.WriteString(_m.Metodo)
	builder.WriteString(", ")
	builder.WriteString("campo=")
	builder.WriteString(_m.Campo)
	builder.WriteString(", ")
	builder.WriteString("valor=")
	builder.WriteString(_m.Valor)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CampoConsolidados is a parsable slice of CampoConsolidado.
type CampoConsolidados []*CampoConsolidado
