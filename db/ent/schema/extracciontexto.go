package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtraccionTexto is one OCR engine's full-text output for one document.
// Re-running an engine overwrites its row (upsert on documento_id + metodo).
type ExtraccionTexto struct{ ent.Schema }

func (ExtraccionTexto) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extracciones_texto_total"},
	}
}

func (ExtraccionTexto) Fields() []ent.Field {
	return []ent.Field{
		field.Int("documento_id"),
		field.String("metodo").NotEmpty(),
		field.String("texto_extraccion").
			SchemaType(map[string]string{dialect.Postgres: "text"}).
			Default(""),
		// Shannon entropy of texto_extraccion, a cheap OCR quality proxy
		field.Float("entropia").Default(0),
		// 2 = pending field parse, 3 = fields extracted
		field.Int("estado").Default(2),
		field.Time("deleted_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtraccionTexto) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("documento", Document.Type).
			Ref("textos").
			Field("documento_id").
			Unique().
			Required(),
	}
}

func (ExtraccionTexto) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("documento_id", "metodo").Unique(),
	}
}
