// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CampoConsolidado is the predicate function for campoconsolidado builders.
type CampoConsolidado func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// ExtraccionCampo is the predicate function for extraccioncampo builders.
type ExtraccionCampo func(*sql.Selector)

// ExtraccionTexto is the predicate function for extracciontexto builders.
type ExtraccionTexto func(*sql.Selector)
