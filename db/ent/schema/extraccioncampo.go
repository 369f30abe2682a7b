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

// ExtraccionCampo is one candidate value: what one engine's extractor read
// for one field of one document. score stays NULL until the scorer or the
// consensus evaluator grades the row.
//
// Forced reprocessing supersedes rows instead of mutating them: the live
// generation gets a deleted_at tombstone and replacement rows are inserted
// with generacion+1, so concurrent reprocess runs never resurrect old data.
type ExtraccionCampo struct{ ent.Schema }

func (ExtraccionCampo) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracciones_campos"},
	}
}

func (ExtraccionCampo) Fields() []ent.Field {
	return []ent.Field{
		field.Int("documento_id"),
		field.String("metodo").NotEmpty(),
		field.String("campo").NotEmpty(),
		field.String("valor").Default(""),
		field.Float("score").Optional().Nillable(),
		field.String("archivo_origen").Default(""),
		field.Int("generacion").Default(1).Positive(),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtraccionCampo) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("documento", Document.Type).
			Ref("campos").
			Field("documento_id").
			Unique().
			Required(),
	}
}

func (ExtraccionCampo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("documento_id", "metodo", "campo", "generacion").Unique(),
		index.Fields("documento_id", "campo"),
		index.Fields("score"),
	}
}
