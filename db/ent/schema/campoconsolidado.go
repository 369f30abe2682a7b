package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CampoConsolidado is the single authoritative value per (document, field),
// upserted by the consolidator. metodo records which engine won.
type CampoConsolidado struct{ ent.Schema }

func (CampoConsolidado) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraccion_campos_consolidada"},
	}
}

func (CampoConsolidado) Fields() []ent.Field {
	return []ent.Field{
		field.Int("documento_id"),
		field.String("metodo").NotEmpty(),
		field.String("campo").NotEmpty(),
		field.String("valor").Default(""),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CampoConsolidado) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("documento", Document.Type).
			Ref("consolidados").
			Field("documento_id").
			Unique().
			Required(),
	}
}

func (CampoConsolidado) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("documento_id", "campo").Unique(),
	}
}
