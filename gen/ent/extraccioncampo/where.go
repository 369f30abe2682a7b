// Code generated by ent, DO NOT EDIT.

package extraccioncampo

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldID, id))
}

// DocumentoID applies equality check predicate on the "documento_id" field. It's identical to DocumentoIDEQ.
func DocumentoID(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldDocumentoID, v))
}

// Metodo applies equality check predicate on the "metodo" field. It's identical to MetodoEQ.
func Metodo(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldMetodo, v))
}

// Campo applies equality check predicate on the "campo" field. It's identical to CampoEQ.
func Campo(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldCampo, v))
}

// Valor applies equality check predicate on the "valor" field. It's identical to ValorEQ.
func Valor(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldValor, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldScore, v))
}

// ArchivoOrigen applies equality check predicate on the "archivo_origen" field. It's identical to ArchivoOrigenEQ.
func ArchivoOrigen(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldArchivoOrigen, v))
}

// Generacion applies equality check predicate on the "generacion" field. It's identical to GeneracionEQ.
func Generacion(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldGeneracion, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldUpdatedAt, v))
}

// DocumentoIDEQ applies the EQ predicate on the "documento_id" field.
func DocumentoIDEQ(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldDocumentoID, v))
}

// DocumentoIDNEQ applies the NEQ predicate on the "documento_id" field.
func DocumentoIDNEQ(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldDocumentoID, v))
}

// DocumentoIDIn applies the In predicate on the "documento_id" field.
func DocumentoIDIn(vs ...int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldDocumentoID, vs...))
}

// DocumentoIDNotIn applies the NotIn predicate on the "documento_id" field.
func DocumentoIDNotIn(vs ...int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldDocumentoID, vs...))
}

// MetodoEQ applies the EQ predicate on the "metodo" field.
func MetodoEQ(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldMetodo, v))
}

// MetodoNEQ applies the NEQ predicate on the "metodo" field.
func MetodoNEQ(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldMetodo, v))
}

// MetodoIn applies the In predicate on the "metodo" field.
func MetodoIn(vs ...string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldMetodo, vs...))
}

// MetodoNotIn applies the NotIn predicate on the "metodo" field.
func MetodoNotIn(vs ...string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldMetodo, vs...))
}

// MetodoGT applies the GT predicate on the "metodo" field.
func MetodoGT(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldMetodo, v))
}

// MetodoGTE applies the GTE predicate on the "metodo" field.
func MetodoGTE(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldMetodo, v))
}

// MetodoLT applies the LT predicate on the "metodo" field.
func MetodoLT(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldMetodo, v))
}

// MetodoLTE applies the LTE predicate on the "metodo" field.
func MetodoLTE(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldMetodo, v))
}

// MetodoContains applies the Contains predicate on the "metodo" field.
func MetodoContains(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldContains(FieldMetodo, v))
}

// MetodoHasPrefix applies the HasPrefix predicate on the "metodo" field.
func MetodoHasPrefix(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldHasPrefix(FieldMetodo, v))
}

// MetodoHasSuffix applies the HasSuffix predicate on the "metodo" field.
func MetodoHasSuffix(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldHasSuffix(FieldMetodo, v))
}

// MetodoEqualFold applies the EqualFold predicate on the "metodo" field.
func MetodoEqualFold(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEqualFold(FieldMetodo, v))
}

// MetodoContainsFold applies the ContainsFold predicate on the "metodo" field.
func MetodoContainsFold(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldContainsFold(FieldMetodo, v))
}

// CampoEQ applies the EQ predicate on the "campo" field.
func CampoEQ(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldCampo, v))
}

// CampoNEQ applies the NEQ predicate on the "campo" field.
func CampoNEQ(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldCampo, v))
}

// CampoIn applies the In predicate on the "campo" field.
func CampoIn(vs ...string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldCampo, vs...))
}

// CampoNotIn applies the NotIn predicate on the "campo" field.
func CampoNotIn(vs ...string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldCampo, vs...))
}

// CampoGT applies the GT predicate on the "campo" field.
func CampoGT(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldCampo, v))
}

// CampoGTE applies the GTE predicate on the "campo" field.
func CampoGTE(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldCampo, v))
}

// CampoLT applies the LT predicate on the "campo" field.
func CampoLT(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldCampo, v))
}

// CampoLTE applies the LTE predicate on the "campo" field.
func CampoLTE(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldCampo, v))
}

// CampoContains applies the Contains predicate on the "campo" field.
func CampoContains(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldContains(FieldCampo, v))
}

// CampoHasPrefix applies the HasPrefix predicate on the "campo" field.
func CampoHasPrefix(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldHasPrefix(FieldCampo, v))
}

// CampoHasSuffix applies the HasSuffix predicate on the "campo" field.
func CampoHasSuffix(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldHasSuffix(FieldCampo, v))
}

// CampoEqualFold applies the EqualFold predicate on the "campo" field.
func CampoEqualFold(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEqualFold(FieldCampo, v))
}

// CampoContainsFold applies the ContainsFold predicate on the "campo" field.
func CampoContainsFold(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldContainsFold(FieldCampo, v))
}

// ValorEQ applies the EQ predicate on the "valor" field.
func ValorEQ(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldValor, v))
}

// ValorNEQ applies the NEQ predicate on the "valor" field.
func ValorNEQ(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldValor, v))
}

// ValorIn applies the In predicate on the "valor" field.
func ValorIn(vs ...string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldValor, vs...))
}

// ValorNotIn applies the NotIn predicate on the "valor" field.
func ValorNotIn(vs ...string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldValor, vs...))
}

// ValorGT applies the GT predicate on the "valor" field.
func ValorGT(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldValor, v))
}

// ValorGTE applies the GTE predicate on the "valor" field.
func ValorGTE(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldValor, v))
}

// ValorLT applies the LT predicate on the "valor" field.
func ValorLT(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldValor, v))
}

// ValorLTE applies the LTE predicate on the "valor" field.
func ValorLTE(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldValor, v))
}

// ValorContains applies the Contains predicate on the "valor" field.
func ValorContains(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldContains(FieldValor, v))
}

// ValorHasPrefix applies the HasPrefix predicate on the "valor" field.
func ValorHasPrefix(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldHasPrefix(FieldValor, v))
}

// ValorHasSuffix applies the HasSuffix predicate on the "valor" field.
func ValorHasSuffix(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldHasSuffix(FieldValor, v))
}

// ValorEqualFold applies the EqualFold predicate on the "valor" field.
func ValorEqualFold(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEqualFold(FieldValor, v))
}

// ValorContainsFold applies the ContainsFold predicate on the "valor" field.
func ValorContainsFold(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldContainsFold(FieldValor, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotNull(FieldScore))
}

// ArchivoOrigenEQ applies the EQ predicate on the "archivo_origen" field.
func ArchivoOrigenEQ(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldArchivoOrigen, v))
}

// ArchivoOrigenNEQ applies the NEQ predicate on the "archivo_origen" field.
func ArchivoOrigenNEQ(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldArchivoOrigen, v))
}

// ArchivoOrigenIn applies the In predicate on the "archivo_origen" field.
func ArchivoOrigenIn(vs ...string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldArchivoOrigen, vs...))
}

// ArchivoOrigenNotIn applies the NotIn predicate on the "archivo_origen" field.
func ArchivoOrigenNotIn(vs ...string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldArchivoOrigen, vs...))
}

// ArchivoOrigenGT applies the GT predicate on the "archivo_origen" field.
func ArchivoOrigenGT(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldArchivoOrigen, v))
}

// ArchivoOrigenGTE applies the GTE predicate on the "archivo_origen" field.
func ArchivoOrigenGTE(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldArchivoOrigen, v))
}

// ArchivoOrigenLT applies the LT predicate on the "archivo_origen" field.
func ArchivoOrigenLT(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldArchivoOrigen, v))
}

// ArchivoOrigenLTE applies the LTE predicate on the "archivo_origen" field.
func ArchivoOrigenLTE(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldArchivoOrigen, v))
}

// ArchivoOrigenContains applies the Contains predicate on the "archivo_origen" field.
func ArchivoOrigenContains(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldContains(FieldArchivoOrigen, v))
}

// ArchivoOrigenHasPrefix applies the HasPrefix predicate on the "archivo_origen" field.
func ArchivoOrigenHasPrefix(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldHasPrefix(FieldArchivoOrigen, v))
}

// ArchivoOrigenHasSuffix applies the HasSuffix predicate on the "archivo_origen" field.
func ArchivoOrigenHasSuffix(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldHasSuffix(FieldArchivoOrigen, v))
}

// ArchivoOrigenEqualFold applies the EqualFold predicate on the "archivo_origen" field.
func ArchivoOrigenEqualFold(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEqualFold(FieldArchivoOrigen, v))
}

// ArchivoOrigenContainsFold applies the ContainsFold predicate on the "archivo_origen" field.
func ArchivoOrigenContainsFold(v string) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldContainsFold(FieldArchivoOrigen, v))
}

// GeneracionEQ applies the EQ predicate on the "generacion" field.
func GeneracionEQ(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldGeneracion, v))
}

// GeneracionNEQ applies the NEQ predicate on the "generacion" field.
func GeneracionNEQ(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldGeneracion, v))
}

// GeneracionIn applies the In predicate on the "generacion" field.
func GeneracionIn(vs ...int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldGeneracion, vs...))
}

// GeneracionNotIn applies the NotIn predicate on the "generacion" field.
func GeneracionNotIn(vs ...int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldGeneracion, vs...))
}

// GeneracionGT applies the GT predicate on the "generacion" field.
func GeneracionGT(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldGeneracion, v))
}

// GeneracionGTE applies the GTE predicate on the "generacion" field.
func GeneracionGTE(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldGeneracion, v))
}

// GeneracionLT applies the LT predicate on the "generacion" field.
func GeneracionLT(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldGeneracion, v))
}

// GeneracionLTE applies the LTE predicate on the "generacion" field.
func GeneracionLTE(v int) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldGeneracion, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasDocumento applies the HasEdge predicate on the "documento" edge.
func HasDocumento() predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, DocumentoTable, DocumentoColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDocumentoWith applies the HasEdge predicate on the "documento" edge with a given conditions (other predicates).
func HasDocumentoWith(preds ...predicate.Document) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(func(s *sql.Selector) {
		step := newDocumentoStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtraccionCampo) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtraccionCampo) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtraccionCampo) predicate.ExtraccionCampo {
	return predicate.ExtraccionCampo(sql.NotPredicates(p))
}
