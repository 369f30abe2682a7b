// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/gen/ent/document"
)

// Document is the model entity for the Document schema.
type Document struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// NombreArchivo holds the value of the "nombre_archivo" field.
	NombreArchivo string `json:"nombre_archivo,omitempty"`
	// ArchivoPadre holds the value of the "archivo_padre" field.
	ArchivoPadre string `json:"archivo_padre,omitempty"`
	// HashArchivo holds the value of the "hash_archivo" field.
	HashArchivo string `json:"hash_archivo,omitempty"`
	// TamanoBytes holds the value of the "tamano_bytes" field.
	TamanoBytes int64 `json:"tamano_bytes,omitempty"`
	// NumeroPaginas holds the value of the "numero_paginas" field.
	NumeroPaginas int `json:"numero_paginas,omitempty"`
	// TipoDocumento holds the value of the "tipo_documento" field.
	TipoDocumento string `json:"tipo_documento,omitempty"`
	// ResolucionPpi holds the value of the "resolucion_ppi" field.
	ResolucionPpi float64 `json:"resolucion_ppi,omitempty"`
	// CalidadEstimativa holds the value of the "calidad_estimativa" field.
	CalidadEstimativa int `json:"calidad_estimativa,omitempty"`
	// Estado holds the value of the "estado" field.
	Estado constants.Estado `json:"estado,omitempty"`
	// DeletedAt holds the value of the "deleted_at" field.
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DocumentQuery when eager-loading is set.
	Edges        DocumentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DocumentEdges holds the relations/edges for other nodes in the graph.
type DocumentEdges struct {
	// Textos holds the value of the textos edge.
	Textos []*ExtraccionTexto `json:"textos,omitempty"`
	// Campos holds the value of the campos edge.
	Campos []*ExtraccionCampo `json:"campos,omitempty"`
	// Consolidados holds the value of the consolidados edge.
	Consolidados []*CampoConsolidado `json:"consolidados,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TextosOrErr returns the Textos value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) TextosOrErr() ([]*ExtraccionTexto, error) {
	if e.loadedTypes[0] {
		return e.Textos, nil
	}
	return nil, &NotLoadedError{edge: "textos"}
}

// CamposOrErr returns the Campos value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) CamposOrErr() ([]*ExtraccionCampo, error) {
	if e.loadedTypes[1] {
		return e.Campos, nil
	}
	return nil, &NotLoadedError{edge: "campos"}
}

// ConsolidadosOrErr returns the Consolidados value or an error if the edge
// was not loaded in eager-loading.
func (e DocumentEdges) ConsolidadosOrErr() ([]*CampoConsolidado, error) {
	if e.loadedTypes[2] {
		return e.Consolidados, nil
	}
	return nil, &NotLoadedError{edge: "consolidados"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Document) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case document.FieldResolucionPpi:
			values[i] = new(sql.NullFloat64)
		case document.FieldID, document.FieldTamanoBytes, document.FieldNumeroPaginas, document.FieldCalidadEstimativa, document.FieldEstado:
			values[i] = new(sql.NullInt64)
		case document.FieldNombreArchivo, document.FieldArchivoPadre, document.FieldHashArchivo, document.FieldTipoDocumento:
			values[i] = new(sql.NullString)
		case document.FieldDeletedAt, document.FieldCreatedAt, document.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Document fields.
func (_m *Document) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case document.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case document.FieldNombreArchivo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_archivo", values[i])
			} else if value.Valid {
				_m.NombreArchivo = value.String
			}
		case document.FieldArchivoPadre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field archivo_padre", values[i])
			} else if value.Valid {
				_m.ArchivoPadre = value.String
			}
		case document.FieldHashArchivo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash_archivo", values[i])
			} else if value.Valid {
				_m.HashArchivo = value.String
			}
		case document.FieldTamanoBytes:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tamano_bytes", values[i])
			} else if value.Valid {
				_m.TamanoBytes = value.Int64
			}
		case document.FieldNumeroPaginas:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field numero_paginas", values[i])
			} else if value.Valid {
				_m.NumeroPaginas = int(value.Int64)
			}
		case document.FieldTipoDocumento:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tipo_documento", values[i])
			} else if value.Valid {
				_m.TipoDocumento = value.String
			}
		case document.FieldResolucionPpi:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field resolucion_ppi", values[i])
			} else if value.Valid {
				_m.ResolucionPpi = value.Float64
			}
		case document.FieldCalidadEstimativa:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field calidad_estimativa", values[i])
			} else if value.Valid {
				_m.CalidadEstimativa = int(value.Int64)
			}
		case document.FieldEstado:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estado", values[i])
			} else if value.Valid {
				_m.Estado = constants.Estado(value.Int64)
			}
		case document.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		case document.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case document.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Document.
// This includes values selected through modifiers, order, etc.
func (_m *Document) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTextos queries the "textos" edge of the Document entity.
func (_m *Document) QueryTextos() *ExtraccionTextoQuery {
	return NewDocumentClient(_m.config).QueryTextos(_m)
}

// QueryCampos queries the "campos" edge of the Document entity.
func (_m *Document) QueryCampos() *ExtraccionCampoQuery {
	return NewDocumentClient(_m.config).QueryCampos(_m)
}

// QueryConsolidados queries the "consolidados" edge of the Document entity.
func (_m *Document) QueryConsolidados() *CampoConsolidadoQuery {
	return NewDocumentClient(_m.config).QueryConsolidados(_m)
}

// Update returns a builder for updating this Document.
// Note that you need to call Document.Unwrap() before calling this method if this Document
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Document) Update() *DocumentUpdateOne {
	return NewDocumentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Document entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Document) Unwrap() *Document {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Document is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Document) String() string {
	var builder strings.Builder
	builder.WriteString("Document(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("nombre_archivo=")
	builder.WriteString(_m.NombreArchivo)
	builder.WriteString(", ")
	builder.WriteString("archivo_padre=")
	builder.WriteString(_m.ArchivoPadre)
	builder.WriteString(", ")
	builder.WriteString("hash_archivo=")
	builder.WriteString(_m.HashArchivo)
	builder.WriteString(", ")
	builder.WriteString("tamano_bytes=")
	builder.WriteString(fmt.Sprintf("%v", _m.TamanoBytes))
	builder.WriteString(", ")
	builder.WriteString("numero_paginas=")
	builder.WriteString(fmt.Sprintf("%v", _m.NumeroPaginas))
	builder.WriteString(", ")
	builder.WriteString("tipo_documento=")
	builder.WriteString(_m.TipoDocumento)
	builder.WriteString(", ")
	builder.WriteString("resolucion_ppi=")
	builder.WriteString(fmt.Sprintf("%v", _m.ResolucionPpi))
	builder.WriteString(", ")
	builder.WriteString("calidad_estimativa=")
	builder.WriteString(fmt.Sprintf("%v", _m.CalidadEstimativa))
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

// Documents is a parsable slice of Document.
type Documents []*Document
