// Code generated by ent, DO NOT EDIT.

package document

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldID, id))
}

// NombreArchivo applies equality check predicate on the "nombre_archivo" field. It's identical to NombreArchivoEQ.
func NombreArchivo(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNombreArchivo, v))
}

// ArchivoPadre applies equality check predicate on the "archivo_padre" field. It's identical to ArchivoPadreEQ.
func ArchivoPadre(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldArchivoPadre, v))
}

// HashArchivo applies equality check predicate on the "hash_archivo" field. It's identical to HashArchivoEQ.
func HashArchivo(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldHashArchivo, v))
}

// TamanoBytes applies equality check predicate on the "tamano_bytes" field. It's identical to TamanoBytesEQ.
func TamanoBytes(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTamanoBytes, v))
}

// NumeroPaginas applies equality check predicate on the "numero_paginas" field. It's identical to NumeroPaginasEQ.
func NumeroPaginas(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNumeroPaginas, v))
}

// TipoDocumento applies equality check predicate on the "tipo_documento" field. It's identical to TipoDocumentoEQ.
func TipoDocumento(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTipoDocumento, v))
}

// ResolucionPpi applies equality check predicate on the "resolucion_ppi" field. It's identical to ResolucionPpiEQ.
func ResolucionPpi(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldResolucionPpi, v))
}

// CalidadEstimativa applies equality check predicate on the "calidad_estimativa" field. It's identical to CalidadEstimativaEQ.
func CalidadEstimativa(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCalidadEstimativa, v))
}

// Estado applies equality check predicate on the "estado" field. It's identical to EstadoEQ.
func Estado(v constants.Estado) predicate.Document {
	vc := int(v)
	return predicate.Document(sql.FieldEQ(FieldEstado, vc))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// NombreArchivoEQ applies the EQ predicate on the "nombre_archivo" field.
func NombreArchivoEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNombreArchivo, v))
}

// NombreArchivoNEQ applies the NEQ predicate on the "nombre_archivo" field.
func NombreArchivoNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldNombreArchivo, v))
}

// NombreArchivoIn applies the In predicate on the "nombre_archivo" field.
func NombreArchivoIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldNombreArchivo, vs...))
}

// NombreArchivoNotIn applies the NotIn predicate on the "nombre_archivo" field.
func NombreArchivoNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldNombreArchivo, vs...))
}

// NombreArchivoGT applies the GT predicate on the "nombre_archivo" field.
func NombreArchivoGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldNombreArchivo, v))
}

// NombreArchivoGTE applies the GTE predicate on the "nombre_archivo" field.
func NombreArchivoGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldNombreArchivo, v))
}

// NombreArchivoLT applies the LT predicate on the "nombre_archivo" field.
func NombreArchivoLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldNombreArchivo, v))
}

// NombreArchivoLTE applies the LTE predicate on the "nombre_archivo" field.
func NombreArchivoLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldNombreArchivo, v))
}

// NombreArchivoContains applies the Contains predicate on the "nombre_archivo" field.
func NombreArchivoContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldNombreArchivo, v))
}

// NombreArchivoHasPrefix applies the HasPrefix predicate on the "nombre_archivo" field.
func NombreArchivoHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldNombreArchivo, v))
}

// NombreArchivoHasSuffix applies the HasSuffix predicate on the "nombre_archivo" field.
func NombreArchivoHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldNombreArchivo, v))
}

// NombreArchivoEqualFold applies the EqualFold predicate on the "nombre_archivo" field.
func NombreArchivoEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldNombreArchivo, v))
}

// NombreArchivoContainsFold applies the ContainsFold predicate on the "nombre_archivo" field.
func NombreArchivoContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldNombreArchivo, v))
}

// ArchivoPadreEQ applies the EQ predicate on the "archivo_padre" field.
func ArchivoPadreEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldArchivoPadre, v))
}

// ArchivoPadreNEQ applies the NEQ predicate on the "archivo_padre" field.
func ArchivoPadreNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldArchivoPadre, v))
}

// ArchivoPadreIn applies the In predicate on the "archivo_padre" field.
func ArchivoPadreIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldArchivoPadre, vs...))
}

// ArchivoPadreNotIn applies the NotIn predicate on the "archivo_padre" field.
func ArchivoPadreNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldArchivoPadre, vs...))
}

// ArchivoPadreGT applies the GT predicate on the "archivo_padre" field.
func ArchivoPadreGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldArchivoPadre, v))
}

// ArchivoPadreGTE applies the GTE predicate on the "archivo_padre" field.
func ArchivoPadreGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldArchivoPadre, v))
}

// ArchivoPadreLT applies the LT predicate on the "archivo_padre" field.
func ArchivoPadreLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldArchivoPadre, v))
}

// ArchivoPadreLTE applies the LTE predicate on the "archivo_padre" field.
func ArchivoPadreLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldArchivoPadre, v))
}

// ArchivoPadreContains applies the Contains predicate on the "archivo_padre" field.
func ArchivoPadreContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldArchivoPadre, v))
}

// ArchivoPadreHasPrefix applies the HasPrefix predicate on the "archivo_padre" field.
func ArchivoPadreHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldArchivoPadre, v))
}

// ArchivoPadreHasSuffix applies the HasSuffix predicate on the "archivo_padre" field.
func ArchivoPadreHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldArchivoPadre, v))
}

// ArchivoPadreIsNil applies the IsNil predicate on the "archivo_padre" field.
func ArchivoPadreIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldArchivoPadre))
}

// ArchivoPadreNotNil applies the NotNil predicate on the "archivo_padre" field.
func ArchivoPadreNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldArchivoPadre))
}

// ArchivoPadreEqualFold applies the EqualFold predicate on the "archivo_padre" field.
func ArchivoPadreEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldArchivoPadre, v))
}

// ArchivoPadreContainsFold applies the ContainsFold predicate on the "archivo_padre" field.
func ArchivoPadreContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldArchivoPadre, v))
}

// HashArchivoEQ applies the EQ predicate on the "hash_archivo" field.
func HashArchivoEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldHashArchivo, v))
}

// HashArchivoNEQ applies the NEQ predicate on the "hash_archivo" field.
func HashArchivoNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldHashArchivo, v))
}

// HashArchivoIn applies the In predicate on the "hash_archivo" field.
func HashArchivoIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldHashArchivo, vs...))
}

// HashArchivoNotIn applies the NotIn predicate on the "hash_archivo" field.
func HashArchivoNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldHashArchivo, vs...))
}

// HashArchivoGT applies the GT predicate on the "hash_archivo" field.
func HashArchivoGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldHashArchivo, v))
}

// HashArchivoGTE applies the GTE predicate on the "hash_archivo" field.
func HashArchivoGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldHashArchivo, v))
}

// HashArchivoLT applies the LT predicate on the "hash_archivo" field.
func HashArchivoLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldHashArchivo, v))
}

// HashArchivoLTE applies the LTE predicate on the "hash_archivo" field.
func HashArchivoLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldHashArchivo, v))
}

// HashArchivoContains applies the Contains predicate on the "hash_archivo" field.
func HashArchivoContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldHashArchivo, v))
}

// HashArchivoHasPrefix applies the HasPrefix predicate on the "hash_archivo" field.
func HashArchivoHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldHashArchivo, v))
}

// HashArchivoHasSuffix applies the HasSuffix predicate on the "hash_archivo" field.
func HashArchivoHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldHashArchivo, v))
}

// HashArchivoEqualFold applies the EqualFold predicate on the "hash_archivo" field.
func HashArchivoEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldHashArchivo, v))
}

// HashArchivoContainsFold applies the ContainsFold predicate on the "hash_archivo" field.
func HashArchivoContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldHashArchivo, v))
}

// TamanoBytesEQ applies the EQ predicate on the "tamano_bytes" field.
func TamanoBytesEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTamanoBytes, v))
}

// TamanoBytesNEQ applies the NEQ predicate on the "tamano_bytes" field.
func TamanoBytesNEQ(v int64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTamanoBytes, v))
}

// TamanoBytesIn applies the In predicate on the "tamano_bytes" field.
func TamanoBytesIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTamanoBytes, vs...))
}

// TamanoBytesNotIn applies the NotIn predicate on the "tamano_bytes" field.
func TamanoBytesNotIn(vs ...int64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTamanoBytes, vs...))
}

// TamanoBytesGT applies the GT predicate on the "tamano_bytes" field.
func TamanoBytesGT(v int64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTamanoBytes, v))
}

// TamanoBytesGTE applies the GTE predicate on the "tamano_bytes" field.
func TamanoBytesGTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTamanoBytes, v))
}

// TamanoBytesLT applies the LT predicate on the "tamano_bytes" field.
func TamanoBytesLT(v int64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTamanoBytes, v))
}

// TamanoBytesLTE applies the LTE predicate on the "tamano_bytes" field.
func TamanoBytesLTE(v int64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTamanoBytes, v))
}

// NumeroPaginasEQ applies the EQ predicate on the "numero_paginas" field.
func NumeroPaginasEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldNumeroPaginas, v))
}

// NumeroPaginasNEQ applies the NEQ predicate on the "numero_paginas" field.
func NumeroPaginasNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldNumeroPaginas, v))
}

// NumeroPaginasIn applies the In predicate on the "numero_paginas" field.
func NumeroPaginasIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldNumeroPaginas, vs...))
}

// NumeroPaginasNotIn applies the NotIn predicate on the "numero_paginas" field.
func NumeroPaginasNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldNumeroPaginas, vs...))
}

// NumeroPaginasGT applies the GT predicate on the "numero_paginas" field.
func NumeroPaginasGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldNumeroPaginas, v))
}

// NumeroPaginasGTE applies the GTE predicate on the "numero_paginas" field.
func NumeroPaginasGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldNumeroPaginas, v))
}

// NumeroPaginasLT applies the LT predicate on the "numero_paginas" field.
func NumeroPaginasLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldNumeroPaginas, v))
}

// NumeroPaginasLTE applies the LTE predicate on the "numero_paginas" field.
func NumeroPaginasLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldNumeroPaginas, v))
}

// TipoDocumentoEQ applies the EQ predicate on the "tipo_documento" field.
func TipoDocumentoEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldTipoDocumento, v))
}

// TipoDocumentoNEQ applies the NEQ predicate on the "tipo_documento" field.
func TipoDocumentoNEQ(v string) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldTipoDocumento, v))
}

// TipoDocumentoIn applies the In predicate on the "tipo_documento" field.
func TipoDocumentoIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldTipoDocumento, vs...))
}

// TipoDocumentoNotIn applies the NotIn predicate on the "tipo_documento" field.
func TipoDocumentoNotIn(vs ...string) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldTipoDocumento, vs...))
}

// TipoDocumentoGT applies the GT predicate on the "tipo_documento" field.
func TipoDocumentoGT(v string) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldTipoDocumento, v))
}

// TipoDocumentoGTE applies the GTE predicate on the "tipo_documento" field.
func TipoDocumentoGTE(v string) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldTipoDocumento, v))
}

// TipoDocumentoLT applies the LT predicate on the "tipo_documento" field.
func TipoDocumentoLT(v string) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldTipoDocumento, v))
}

// TipoDocumentoLTE applies the LTE predicate on the "tipo_documento" field.
func TipoDocumentoLTE(v string) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldTipoDocumento, v))
}

// TipoDocumentoContains applies the Contains predicate on the "tipo_documento" field.
func TipoDocumentoContains(v string) predicate.Document {
	return predicate.Document(sql.FieldContains(FieldTipoDocumento, v))
}

// TipoDocumentoHasPrefix applies the HasPrefix predicate on the "tipo_documento" field.
func TipoDocumentoHasPrefix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasPrefix(FieldTipoDocumento, v))
}

// TipoDocumentoHasSuffix applies the HasSuffix predicate on the "tipo_documento" field.
func TipoDocumentoHasSuffix(v string) predicate.Document {
	return predicate.Document(sql.FieldHasSuffix(FieldTipoDocumento, v))
}

// TipoDocumentoEqualFold applies the EqualFold predicate on the "tipo_documento" field.
func TipoDocumentoEqualFold(v string) predicate.Document {
	return predicate.Document(sql.FieldEqualFold(FieldTipoDocumento, v))
}

// TipoDocumentoContainsFold applies the ContainsFold predicate on the "tipo_documento" field.
func TipoDocumentoContainsFold(v string) predicate.Document {
	return predicate.Document(sql.FieldContainsFold(FieldTipoDocumento, v))
}

// ResolucionPpiEQ applies the EQ predicate on the "resolucion_ppi" field.
func ResolucionPpiEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldResolucionPpi, v))
}

// ResolucionPpiNEQ applies the NEQ predicate on the "resolucion_ppi" field.
func ResolucionPpiNEQ(v float64) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldResolucionPpi, v))
}

// ResolucionPpiIn applies the In predicate on the "resolucion_ppi" field.
func ResolucionPpiIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldResolucionPpi, vs...))
}

// ResolucionPpiNotIn applies the NotIn predicate on the "resolucion_ppi" field.
func ResolucionPpiNotIn(vs ...float64) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldResolucionPpi, vs...))
}

// ResolucionPpiGT applies the GT predicate on the "resolucion_ppi" field.
func ResolucionPpiGT(v float64) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldResolucionPpi, v))
}

// ResolucionPpiGTE applies the GTE predicate on the "resolucion_ppi" field.
func ResolucionPpiGTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldResolucionPpi, v))
}

// ResolucionPpiLT applies the LT predicate on the "resolucion_ppi" field.
func ResolucionPpiLT(v float64) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldResolucionPpi, v))
}

// ResolucionPpiLTE applies the LTE predicate on the "resolucion_ppi" field.
func ResolucionPpiLTE(v float64) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldResolucionPpi, v))
}

// CalidadEstimativaEQ applies the EQ predicate on the "calidad_estimativa" field.
func CalidadEstimativaEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCalidadEstimativa, v))
}

// CalidadEstimativaNEQ applies the NEQ predicate on the "calidad_estimativa" field.
func CalidadEstimativaNEQ(v int) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCalidadEstimativa, v))
}

// CalidadEstimativaIn applies the In predicate on the "calidad_estimativa" field.
func CalidadEstimativaIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCalidadEstimativa, vs...))
}

// CalidadEstimativaNotIn applies the NotIn predicate on the "calidad_estimativa" field.
func CalidadEstimativaNotIn(vs ...int) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCalidadEstimativa, vs...))
}

// CalidadEstimativaGT applies the GT predicate on the "calidad_estimativa" field.
func CalidadEstimativaGT(v int) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCalidadEstimativa, v))
}

// CalidadEstimativaGTE applies the GTE predicate on the "calidad_estimativa" field.
func CalidadEstimativaGTE(v int) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCalidadEstimativa, v))
}

// CalidadEstimativaLT applies the LT predicate on the "calidad_estimativa" field.
func CalidadEstimativaLT(v int) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCalidadEstimativa, v))
}

// CalidadEstimativaLTE applies the LTE predicate on the "calidad_estimativa" field.
func CalidadEstimativaLTE(v int) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCalidadEstimativa, v))
}

// EstadoEQ applies the EQ predicate on the "estado" field.
func EstadoEQ(v constants.Estado) predicate.Document {
	vc := int(v)
	return predicate.Document(sql.FieldEQ(FieldEstado, vc))
}

// EstadoNEQ applies the NEQ predicate on the "estado" field.
func EstadoNEQ(v constants.Estado) predicate.Document {
	vc := int(v)
	return predicate.Document(sql.FieldNEQ(FieldEstado, vc))
}

// EstadoIn applies the In predicate on the "estado" field.
func EstadoIn(vs ...constants.Estado) predicate.Document {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.Document(sql.FieldIn(FieldEstado, v...))
}

// EstadoNotIn applies the NotIn predicate on the "estado" field.
func EstadoNotIn(vs ...constants.Estado) predicate.Document {
	v := make([]any, len(vs))
	for i := range v {
		v[i] = int(vs[i])
	}
	return predicate.Document(sql.FieldNotIn(FieldEstado, v...))
}

// EstadoGT applies the GT predicate on the "estado" field.
func EstadoGT(v constants.Estado) predicate.Document {
	vc := int(v)
	return predicate.Document(sql.FieldGT(FieldEstado, vc))
}

// EstadoGTE applies the GTE predicate on the "estado" field.
func EstadoGTE(v constants.Estado) predicate.Document {
	vc := int(v)
	return predicate.Document(sql.FieldGTE(FieldEstado, vc))
}

// EstadoLT applies the LT predicate on the "estado" field.
func EstadoLT(v constants.Estado) predicate.Document {
	vc := int(v)
	return predicate.Document(sql.FieldLT(FieldEstado, vc))
}

// EstadoLTE applies the LTE predicate on the "estado" field.
func EstadoLTE(v constants.Estado) predicate.Document {
	vc := int(v)
	return predicate.Document(sql.FieldLTE(FieldEstado, vc))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Document {
	return predicate.Document(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Document {
	return predicate.Document(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Document {
	return predicate.Document(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Document {
	return predicate.Document(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasTextos applies the HasEdge predicate on the "textos" edge.
func HasTextos() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TextosTable, TextosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTextosWith applies the HasEdge predicate on the "textos" edge with a given conditions (other predicates).
func HasTextosWith(preds ...predicate.ExtraccionTexto) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newTextosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCampos applies the HasEdge predicate on the "campos" edge.
func HasCampos() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CamposTable, CamposColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCamposWith applies the HasEdge predicate on the "campos" edge with a given conditions (other predicates).
func HasCamposWith(preds ...predicate.ExtraccionCampo) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newCamposStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasConsolidados applies the HasEdge predicate on the "consolidados" edge.
func HasConsolidados() predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConsolidadosTable, ConsolidadosColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConsolidadosWith applies the HasEdge predicate on the "consolidados" edge with a given conditions (other predicates).
func HasConsolidadosWith(preds ...predicate.CampoConsolidado) predicate.Document {
	return predicate.Document(func(s *sql.Selector) {
		step := newConsolidadosStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Document) predicate.Document {
	return predicate.Document(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Document) predicate.Document {
	return predicate.Document(sql.NotPredicates(p))
}
