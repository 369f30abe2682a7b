package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/facturascan/pipeline/constants"
)

// Document is one logical invoice page. Multi-page source PDFs are split at
// registration time, one Document per page, with archivo_padre keeping the
// original file name. Rows are never physically deleted; deleted_at is the
// tombstone.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documentos"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.String("nombre_archivo").NotEmpty(),
		field.String("archivo_padre").Optional(),
		field.String("hash_archivo").MaxLen(64),
		field.Int64("tamano_bytes").NonNegative(),
		field.Int("numero_paginas").Default(1),
		field.String("tipo_documento").Default("escaneado"), // escaneado | nativo
		field.Float("resolucion_ppi").Default(0),
		field.Int("calidad_estimativa").Default(0),
		field.Int("estado").
			GoType(constants.Estado(0)).
			Default(int(constants.EstadoRegistrado)),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("textos", ExtraccionTexto.Type),
		edge.To("campos", ExtraccionCampo.Type),
		edge.To("consolidados", CampoConsolidado.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		// dedupe guard: same content under the same name registers once
		index.Fields("hash_archivo", "nombre_archivo").Unique(),
		index.Fields("estado"),
	}
}
