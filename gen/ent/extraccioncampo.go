// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/gen/ent/extraccioncampo"
)

// ExtraccionCampo is the model entity for the ExtraccionCampo schema.
type ExtraccionCampo struct {
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
	// Score holds the value of the "score" field.
	Score *float64 `json:"score,omitempty"`
	// ArchivoOrigen holds the value of the "archivo_origen" field.
	ArchivoOrigen string `json:"archivo_origen,omitempty"`
	// Generacion holds the value of the "generacion" field.
	Generacion int `json:"generacion,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtraccionCampoQuery when eager-loading is set.
	Edges        ExtraccionCampoEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtraccionCampoEdges holds the relations/edges for other nodes in the graph.
type ExtraccionCampoEdges struct {
	// Documento holds the value of the documento edge.
	Documento *Document `json:"documento,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// DocumentoOrErr returns the Documento value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtraccionCampoEdges) DocumentoOrErr() (*Document, error) {
	if e.Documento != nil {
		return e.Documento, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: document.Label}
	}
	return nil, &NotLoadedError{edge: "documento"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtraccionCampo) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extraccioncampo.FieldScore:
			values[i] = new(sql.NullFloat64)
		case extraccioncampo.FieldID, extraccioncampo.FieldDocumentoID, extraccioncampo.FieldGeneracion:
			values[i] = new(sql.NullInt64)
		case extraccioncampo.FieldMetodo, extraccioncampo.FieldCampo, extraccioncampo.FieldValor, extraccioncampo.FieldArchivoOrigen:
			values[i] = new(sql.NullString)
		case extraccioncampo.FieldDeletedAt, extraccioncampo.FieldCreatedAt, extraccioncampo.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtraccionCampo fields.
func (_m *ExtraccionCampo) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extraccioncampo.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case extraccioncampo.FieldDocumentoID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field documento_id", values[i])
			} else if value.Valid {
				_m.DocumentoID = int(value.Int64)
			}
		case extraccioncampo.FieldMetodo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field metodo", values[i])
			} else if value.Valid {
				_m.Metodo = value.String
			}
		case extraccioncampo.FieldCampo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field campo", values[i])
			} else if value.Valid {
				_m.Campo = value.String
			}
		case extraccioncampo.FieldValor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field valor", values[i])
			} else if value.Valid {
				_m.Valor = value.String
			}
		case extraccioncampo.FieldScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = new(float64)
				*_m.Score = value.Float64
			}
		case extraccioncampo.FieldArchivoOrigen:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archivo_origen", values[i])
			} else if value.Valid {
				_m.ArchivoOrigen = value.String
			}
		case extraccioncampo.FieldGeneracion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field generacion", values[i])
			} else if value.Valid {
				_m.Generacion = int(value.Int64)
			}
		case extraccioncampo.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case extraccioncampo.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extraccioncampo.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtraccionCampo.
// This includes values selected through modifiers, order, etc.
func (_m *ExtraccionCampo) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryDocumento queries the "documento" edge of the ExtraccionCampo entity.
func (_m *ExtraccionCampo) QueryDocumento() *DocumentQuery {
	return NewExtraccionCampoClient(_m.config).QueryDocumento(_m)
}

// Update returns a builder for updating this ExtraccionCampo.
// Note that you need to call ExtraccionCampo.Unwrap() before calling this method if this ExtraccionCampo
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtraccionCampo) Update() *ExtraccionCampoUpdateOne {
	return NewExtraccionCampoClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtraccionCampo entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtraccionCampo) Unwrap() *ExtraccionCampo {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtraccionCampo is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtraccionCampo) String() string {
	var builder strings.Builder
	builder.WriteString("ExtraccionCampo(")
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
	if v := _m.Score; v != nil {
		builder.WriteString("score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("archivo_origen=")
	builder.WriteString(_m.ArchivoOrigen)
	builder.WriteString(", ")
	builder.WriteString("generacion=")
	builder.WriteString(fmt.Sprintf("%v", _m.Generacion))
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

// ExtraccionCampos is a parsable slice of ExtraccionCampo.
type ExtraccionCampos []*ExtraccionCampo
