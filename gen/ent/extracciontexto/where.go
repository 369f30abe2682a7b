// Code generated by ent, DO NOT EDIT.

package extracciontexto

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLTE(FieldID, id))
}

// DocumentoID applies equality check predicate on the "documento_id" field. It's identical to DocumentoIDEQ.
func DocumentoID(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldDocumentoID, v))
}

// Metodo applies equality check predicate on the "metodo" field. It's identical to MetodoEQ.
func Metodo(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldMetodo, v))
}

// TextoExtraccion applies equality check predicate on the "texto_extraccion" field. It's identical to TextoExtraccionEQ.
func TextoExtraccion(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldTextoExtraccion, v))
}

// Entropia applies equality check predicate on the "entropia" field. It's identical to EntropiaEQ.
func Entropia(v float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldEntropia, v))
}

// Estado applies equality check predicate on the "estado" field. It's identical to EstadoEQ.
func Estado(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldEstado, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentoIDEQ applies the EQ predicate on the "documento_id" field.
func DocumentoIDEQ(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldDocumentoID, v))
}

// DocumentoIDNEQ applies the NEQ predicate on the "documento_id" field.
func DocumentoIDNEQ(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldDocumentoID, v))
}

// DocumentoIDIn applies the In predicate on the "documento_id" field.
func DocumentoIDIn(vs ...int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldDocumentoID, vs...))
}

// DocumentoIDNotIn applies the NotIn predicate on the "documento_id" field.
func DocumentoIDNotIn(vs ...int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldDocumentoID, vs...))
}

// MetodoEQ applies the EQ predicate on the "metodo" field.
func MetodoEQ(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldMetodo, v))
}

// MetodoNEQ applies the NEQ predicate on the "metodo" field.
func MetodoNEQ(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldMetodo, v))
}

// MetodoIn applies the In predicate on the "metodo" field.
func MetodoIn(vs ...string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldMetodo, vs...))
}

// MetodoNotIn applies the NotIn predicate on the "metodo" field.
func MetodoNotIn(vs ...string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldMetodo, vs...))
}

// MetodoGT applies the GT predicate on the "metodo" field.
func MetodoGT(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGT(FieldMetodo, v))
}

// MetodoGTE applies the GTE predicate on the "metodo" field.
func MetodoGTE(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGTE(FieldMetodo, v))
}

// MetodoLT applies the LT predicate on the "metodo" field.
func MetodoLT(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLT(FieldMetodo, v))
}

// MetodoLTE applies the LTE predicate on the "metodo" field.
func MetodoLTE(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLTE(FieldMetodo, v))
}

// MetodoContains applies the Contains predicate on the "metodo" field.
func MetodoContains(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldContains(FieldMetodo, v))
}

// MetodoHasPrefix applies the HasPrefix predicate on the "metodo" field.
func MetodoHasPrefix(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldHasPrefix(FieldMetodo, v))
}

// MetodoHasSuffix applies the HasSuffix predicate on the "metodo" field.
func MetodoHasSuffix(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldHasSuffix(FieldMetodo, v))
}

// MetodoEqualFold applies the EqualFold predicate on the "metodo" field.
func MetodoEqualFold(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEqualFold(FieldMetodo, v))
}

// MetodoContainsFold applies the ContainsFold predicate on the "metodo" field.
func MetodoContainsFold(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldContainsFold(FieldMetodo, v))
}

// TextoExtraccionEQ applies the EQ predicate on the "texto_extraccion" field.
func TextoExtraccionEQ(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldTextoExtraccion, v))
}

// TextoExtraccionNEQ applies the NEQ predicate on the "texto_extraccion" field.
func TextoExtraccionNEQ(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldTextoExtraccion, v))
}

// TextoExtraccionIn applies the In predicate on the "texto_extraccion" field.
func TextoExtraccionIn(vs ...string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldTextoExtraccion, vs...))
}

// TextoExtraccionNotIn applies the NotIn predicate on the "texto_extraccion" field.
func TextoExtraccionNotIn(vs ...string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldTextoExtraccion, vs...))
}

// TextoExtraccionGT applies the GT predicate on the "texto_extraccion" field.
func TextoExtraccionGT(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGT(FieldTextoExtraccion, v))
}

// TextoExtraccionGTE applies the GTE predicate on the "texto_extraccion" field.
func TextoExtraccionGTE(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGTE(FieldTextoExtraccion, v))
}

// TextoExtraccionLT applies the LT predicate on the "texto_extraccion" field.
func TextoExtraccionLT(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLT(FieldTextoExtraccion, v))
}

// TextoExtraccionLTE applies the LTE predicate on the "texto_extraccion" field.
func TextoExtraccionLTE(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLTE(FieldTextoExtraccion, v))
}

// TextoExtraccionContains applies the Contains predicate on the "texto_extraccion" field.
func TextoExtraccionContains(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldContains(FieldTextoExtraccion, v))
}

// TextoExtraccionHasPrefix applies the HasPrefix predicate on the "texto_extraccion" field.
func TextoExtraccionHasPrefix(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldHasPrefix(FieldTextoExtraccion, v))
}

// TextoExtraccionHasSuffix applies the HasSuffix predicate on the "texto_extraccion" field.
func TextoExtraccionHasSuffix(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldHasSuffix(FieldTextoExtraccion, v))
}

// TextoExtraccionEqualFold applies the EqualFold predicate on the "texto_extraccion" field.
func TextoExtraccionEqualFold(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEqualFold(FieldTextoExtraccion, v))
}

// TextoExtraccionContainsFold applies the ContainsFold predicate on the "texto_extraccion" field.
func TextoExtraccionContainsFold(v string) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldContainsFold(FieldTextoExtraccion, v))
}

// EntropiaEQ applies the EQ predicate on the "entropia" field.
func EntropiaEQ(v float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldEntropia, v))
}

// EntropiaNEQ applies the NEQ predicate on the "entropia" field.
func EntropiaNEQ(v float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldEntropia, v))
}

// EntropiaIn applies the In predicate on the "entropia" field.
func EntropiaIn(vs ...float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldEntropia, vs...))
}

// EntropiaNotIn applies the NotIn predicate on the "entropia" field.
func EntropiaNotIn(vs ...float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldEntropia, vs...))
}

// EntropiaGT applies the GT predicate on the "entropia" field.
func EntropiaGT(v float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGT(FieldEntropia, v))
}

// EntropiaGTE applies the GTE predicate on the "entropia" field.
func EntropiaGTE(v float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGTE(FieldEntropia, v))
}

// EntropiaLT applies the LT predicate on the "entropia" field.
func EntropiaLT(v float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLT(FieldEntropia, v))
}

// EntropiaLTE applies the LTE predicate on the "entropia" field.
func EntropiaLTE(v float64) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLTE(FieldEntropia, v))
}

// EstadoEQ applies the EQ predicate on the "estado" field.
func EstadoEQ(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldEstado, v))
}

// EstadoNEQ applies the NEQ predicate on the "estado" field.
func EstadoNEQ(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldEstado, v))
}

// EstadoIn applies the In predicate on the "estado" field.
func EstadoIn(vs ...int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldEstado, vs...))
}

// EstadoNotIn applies the NotIn predicate on the "estado" field.
func EstadoNotIn(vs ...int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldEstado, vs...))
}

// EstadoGT applies the GT predicate on the "estado" field.
func EstadoGT(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGT(FieldEstado, v))
}

// EstadoGTE applies the GTE predicate on the "estado" field.
func EstadoGTE(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGTE(FieldEstado, v))
}

// EstadoLT applies the LT predicate on the "estado" field.
func EstadoLT(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLT(FieldEstado, v))
}

// EstadoLTE applies the LTE predicate on the "estado" field.
func EstadoLTE(v int) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLTE(FieldEstado, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocumento applies the HasEdge predicate on the "documento" edge.
func HasDocumento() predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentoTable, DocumentoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentoWith applies the HasEdge predicate on the "documento" edge with a given conditions (other predicates).
func HasDocumentoWith(preds ...predicate.Document) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(func(s *sql.Selector) {
		step := newDocumentoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtraccionTexto) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtraccionTexto) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtraccionTexto) predicate.ExtraccionTexto {
	return predicate.ExtraccionTexto(sql.NotPredicates(p))
}
