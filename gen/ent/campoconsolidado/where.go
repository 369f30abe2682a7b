// Code generated by ent, DO NOT EDIT.

package campoconsolidado

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLTE(FieldID, id))
}

// DocumentoID applies equality check predicate on the "documento_id" field. It's identical to DocumentoIDEQ.
func DocumentoID(v int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldDocumentoID, v))
}

// Metodo applies equality check predicate on the "metodo" field. It's identical to MetodoEQ.
func Metodo(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldMetodo, v))
}

// Campo applies equality check predicate on the "campo" field. It's identical to CampoEQ.
func Campo(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldCampo, v))
}

// Valor applies equality check predicate on the "valor" field. It's identical to ValorEQ.
func Valor(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldValor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentoIDEQ applies the EQ predicate on the "documento_id" field.
func DocumentoIDEQ(v int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldDocumentoID, v))
}

// DocumentoIDNEQ applies the NEQ predicate on the "documento_id" field.
func DocumentoIDNEQ(v int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNEQ(FieldDocumentoID, v))
}

// DocumentoIDIn applies the In predicate on the "documento_id" field.
func DocumentoIDIn(vs ...int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldIn(FieldDocumentoID, vs...))
}

// DocumentoIDNotIn applies the NotIn predicate on the "documento_id" field.
func DocumentoIDNotIn(vs ...int) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNotIn(FieldDocumentoID, vs...))
}

// MetodoEQ applies the EQ predicate on the "metodo" field.
func MetodoEQ(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldMetodo, v))
}

// MetodoNEQ applies the NEQ predicate on the "metodo" field.
func MetodoNEQ(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNEQ(FieldMetodo, v))
}

// MetodoIn applies the In predicate on the "metodo" field.
func MetodoIn(vs ...string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldIn(FieldMetodo, vs...))
}

// MetodoNotIn applies the NotIn predicate on the "metodo" field.
func MetodoNotIn(vs ...string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNotIn(FieldMetodo, vs...))
}

// MetodoGT applies the GT predicate on the "metodo" field.
func MetodoGT(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGT(FieldMetodo, v))
}

// MetodoGTE applies the GTE predicate on the "metodo" field.
func MetodoGTE(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGTE(FieldMetodo, v))
}

// MetodoLT applies the LT predicate on the "metodo" field.
func MetodoLT(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLT(FieldMetodo, v))
}

// MetodoLTE applies the LTE predicate on the "metodo" field.
func MetodoLTE(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLTE(FieldMetodo, v))
}

// MetodoContains applies the Contains predicate on the "metodo" field.
func MetodoContains(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldContains(FieldMetodo, v))
}

// MetodoHasPrefix applies the HasPrefix predicate on the "metodo" field.
func MetodoHasPrefix(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldHasPrefix(FieldMetodo, v))
}

// MetodoHasSuffix applies the HasSuffix predicate on the "metodo" field.
func MetodoHasSuffix(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldHasSuffix(FieldMetodo, v))
}

// MetodoEqualFold applies the EqualFold predicate on the "metodo" field.
func MetodoEqualFold(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEqualFold(FieldMetodo, v))
}

// MetodoContainsFold applies the ContainsFold predicate on the "metodo" field.
func MetodoContainsFold(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldContainsFold(FieldMetodo, v))
}

// CampoEQ applies the EQ predicate on the "campo" field.
func CampoEQ(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldCampo, v))
}

// CampoNEQ applies the NEQ predicate on the "campo" field.
func CampoNEQ(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNEQ(FieldCampo, v))
}

// CampoIn applies the In predicate on the "campo" field.
func CampoIn(vs ...string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldIn(FieldCampo, vs...))
}

// CampoNotIn applies the NotIn predicate on the "campo" field.
func CampoNotIn(vs ...string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNotIn(FieldCampo, vs...))
}

// CampoGT applies the GT predicate on the "campo" field.
func CampoGT(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGT(FieldCampo, v))
}

// CampoGTE applies the GTE predicate on the "campo" field.
func CampoGTE(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGTE(FieldCampo, v))
}

// CampoLT applies the LT predicate on the "campo" field.
func CampoLT(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLT(FieldCampo, v))
}

// CampoLTE applies the LTE predicate on the "campo" field.
func CampoLTE(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLTE(FieldCampo, v))
}

// CampoContains applies the Contains predicate on the "campo" field.
func CampoContains(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldContains(FieldCampo, v))
}

// CampoHasPrefix applies the HasPrefix predicate on the "campo" field.
func CampoHasPrefix(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldHasPrefix(FieldCampo, v))
}

// CampoHasSuffix applies the HasSuffix predicate on the "campo" field.
func CampoHasSuffix(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldHasSuffix(FieldCampo, v))
}

// CampoEqualFold applies the EqualFold predicate on the "campo" field.
func CampoEqualFold(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEqualFold(FieldCampo, v))
}

// CampoContainsFold applies the ContainsFold predicate on the "campo" field.
func CampoContainsFold(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldContainsFold(FieldCampo, v))
}

// ValorEQ applies the EQ predicate on the "valor" field.
func ValorEQ(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldValor, v))
}

// ValorNEQ applies the NEQ predicate on the "valor" field.
func ValorNEQ(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNEQ(FieldValor, v))
}

// ValorIn applies the In predicate on the "valor" field.
func ValorIn(vs ...string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldIn(FieldValor, vs...))
}

// ValorNotIn applies the NotIn predicate on the "valor" field.
func ValorNotIn(vs ...string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNotIn(FieldValor, vs...))
}

// ValorGT applies the GT predicate on the "valor" field.
func ValorGT(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGT(FieldValor, v))
}

// ValorGTE applies the GTE predicate on the "valor" field.
func ValorGTE(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGTE(FieldValor, v))
}

// ValorLT applies the LT predicate on the "valor" field.
func ValorLT(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLT(FieldValor, v))
}

// ValorLTE applies the LTE predicate on the "valor" field.
func ValorLTE(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLTE(FieldValor, v))
}

// ValorContains applies the Contains predicate on the "valor" field.
func ValorContains(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldContains(FieldValor, v))
}

// ValorHasPrefix applies the HasPrefix predicate on the "valor" field.
func ValorHasPrefix(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldHasPrefix(FieldValor, v))
}

// ValorHasSuffix applies the HasSuffix predicate on the "valor" field.
func ValorHasSuffix(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldHasSuffix(FieldValor, v))
}

// ValorEqualFold applies the EqualFold predicate on the "valor" field.
func ValorEqualFold(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEqualFold(FieldValor, v))
}

// ValorContainsFold applies the ContainsFold predicate on the "valor" field.
func ValorContainsFold(v string) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldContainsFold(FieldValor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocumento applies the HasEdge predicate on the "documento" edge.
func HasDocumento() predicate.CampoConsolidado {
	return predicate.CampoConsolidado(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentoTable, DocumentoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentoWith applies the HasEdge predicate on the "documento" edge with a given conditions (other predicates).
func HasDocumentoWith(preds ...predicate.Document) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(func(s *sql.Selector) {
		step := newDocumentoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CampoConsolidado) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CampoConsolidado) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CampoConsolidado) predicate.CampoConsolidado {
	return predicate.CampoConsolidado(sql.NotPredicates(p))
}
