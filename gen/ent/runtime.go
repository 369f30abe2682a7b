// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/db/ent/schema"
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/gen/ent/extraccioncampo"
	"github.com/facturascan/pipeline/gen/ent/extracciontexto"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	campoconsolidadoFields := schema.CampoConsolidado{}.Fields()
	_ = campoconsolidadoFields
	// campoconsolidadoDescMetodo is the schema descriptor for metodo field.
	campoconsolidadoDescMetodo := campoconsolidadoFields[1].Descriptor()
	// campoconsolidado.MetodoValidator is a validator for the "metodo" field. It is called by the builders before save.
	campoconsolidado.MetodoValidator = campoconsolidadoDescMetodo.Validators[0].(func(string) error)
	// campoconsolidadoDescCampo is the schema descriptor for campo field.
	campoconsolidadoDescCampo := campoconsolidadoFields[2].Descriptor()
	// campoconsolidado.CampoValidator is a validator for the "campo" field. It is called by the builders before save.
	campoconsolidado.CampoValidator = campoconsolidadoDescCampo.Validators[0].(func(string) error)
	// campoconsolidadoDescValor is the schema descriptor for valor field.
	campoconsolidadoDescValor := campoconsolidadoFields[3].Descriptor()
	// campoconsolidado.DefaultValor holds the default value on creation for the valor field.
	campoconsolidado.DefaultValor = campoconsolidadoDescValor.Default.(string)
	// campoconsolidadoDescCreatedAt is the schema descriptor for created_at field.
	campoconsolidadoDescCreatedAt := campoconsolidadoFields[4].Descriptor()
	// campoconsolidado.DefaultCreatedAt holds the default value on creation for the created_at field.
	campoconsolidado.DefaultCreatedAt = campoconsolidadoDescCreatedAt.Default.(func() time.Time)
	// campoconsolidadoDescUpdatedAt is the schema descriptor for updated_at field.
	campoconsolidadoDescUpdatedAt := campoconsolidadoFields[5].Descriptor()
	// campoconsolidado.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	campoconsolidado.DefaultUpdatedAt = campoconsolidadoDescUpdatedAt.Default.(func() time.Time)
	// campoconsolidado.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	campoconsolidado.UpdateDefaultUpdatedAt = campoconsolidadoDescUpdatedAt.UpdateDefault.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescNombreArchivo is the schema descriptor for nombre_archivo field.
	documentDescNombreArchivo := documentFields[0].Descriptor()
	// document.NombreArchivoValidator is a validator for the "nombre_archivo" field. It is called by the builders before save.
	document.NombreArchivoValidator = documentDescNombreArchivo.Validators[0].(func(string) error)
	// documentDescHashArchivo is the schema descriptor for hash_archivo field.
	documentDescHashArchivo := documentFields[2].Descriptor()
	// document.HashArchivoValidator is a validator for the "hash_archivo" field. It is called by the builders before save.
	document.HashArchivoValidator = documentDescHashArchivo.Validators[0].(func(string) error)
	// documentDescTamanoBytes is the schema descriptor for tamano_bytes field.
	documentDescTamanoBytes := documentFields[3].Descriptor()
	// document.TamanoBytesValidator is a validator for the "tamano_bytes" field. It is called by the builders before save.
	document.TamanoBytesValidator = documentDescTamanoBytes.Validators[0].(func(int64) error)
	// documentDescNumeroPaginas is the schema descriptor for numero_paginas field.
	documentDescNumeroPaginas := documentFields[4].Descriptor()
	// document.DefaultNumeroPaginas holds the default value on creation for the numero_paginas field.
	document.DefaultNumeroPaginas = documentDescNumeroPaginas.Default.(int)
	// documentDescTipoDocumento is the schema descriptor for tipo_documento field.
	documentDescTipoDocumento := documentFields[5].Descriptor()
	// document.DefaultTipoDocumento holds the default value on creation for the tipo_documento field.
	document.DefaultTipoDocumento = documentDescTipoDocumento.Default.(string)
	// documentDescResolucionPpi is the schema descriptor for resolucion_ppi field.
	documentDescResolucionPpi := documentFields[6].Descriptor()
	// document.DefaultResolucionPpi holds the default value on creation for the resolucion_ppi field.
	document.DefaultResolucionPpi = documentDescResolucionPpi.Default.(float64)
	// documentDescCalidadEstimativa is the schema descriptor for calidad_estimativa field.
	documentDescCalidadEstimativa := documentFields[7].Descriptor()
	// document.DefaultCalidadEstimativa holds the default value on creation for the calidad_estimativa field.
	document.DefaultCalidadEstimativa = documentDescCalidadEstimativa.Default.(int)
	// documentDescEstado is the schema descriptor for estado field.
	documentDescEstado := documentFields[8].Descriptor()
	// document.DefaultEstado holds the default value on creation for the estado field.
	document.DefaultEstado = constants.Estado(documentDescEstado.Default.(int))
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[10].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	// documentDescUpdatedAt is the schema descriptor for updated_at field.
	documentDescUpdatedAt := documentFields[11].Descriptor()
	// document.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	document.DefaultUpdatedAt = documentDescUpdatedAt.Default.(func() time.Time)
	// document.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	document.UpdateDefaultUpdatedAt = documentDescUpdatedAt.UpdateDefault.(func() time.Time)
	extraccioncampoFields := schema.ExtraccionCampo{}.Fields()
	_ = extraccioncampoFields
	// extraccioncampoDescMetodo is the schema descriptor for metodo field.
	extraccioncampoDescMetodo := extraccioncampoFields[1].Descriptor()
	// extraccioncampo.MetodoValidator is a validator for the "metodo" field. It is called by the builders before save.
	extraccioncampo.MetodoValidator = extraccioncampoDescMetodo.Validators[0].(func(string) error)
	// extraccioncampoDescCampo is the schema descriptor for campo field.
	extraccioncampoDescCampo := extraccioncampoFields[2].Descriptor()
	// extraccioncampo.CampoValidator is a validator for the "campo" field. It is called by the builders before save.
	extraccioncampo.CampoValidator = extraccioncampoDescCampo.Validators[0].(func(string) error)
	// extraccioncampoDescValor is the schema descriptor for valor field.
	extraccioncampoDescValor := extraccioncampoFields[3].Descriptor()
	// extraccioncampo.DefaultValor holds the default value on creation for the valor field.
	extraccioncampo.DefaultValor = extraccioncampoDescValor.Default.(string)
	// extraccioncampoDescArchivoOrigen is the schema descriptor for archivo_origen field.
	extraccioncampoDescArchivoOrigen := extraccioncampoFields[5].Descriptor()
	// extraccioncampo.DefaultArchivoOrigen holds the default value on creation for the archivo_origen field.
	extraccioncampo.DefaultArchivoOrigen = extraccioncampoDescArchivoOrigen.Default.(string)
	// extraccioncampoDescGeneracion is the schema descriptor for generacion field.
	extraccioncampoDescGeneracion := extraccioncampoFields[6].Descriptor()
	// extraccioncampo.DefaultGeneracion holds the default value on creation for the generacion field.
	extraccioncampo.DefaultGeneracion = extraccioncampoDescGeneracion.Default.(int)
	// extraccioncampo.GeneracionValidator is a validator for the "generacion" field. It is called by the builders before save.
	extraccioncampo.GeneracionValidator = extraccioncampoDescGeneracion.Validators[0].(func(int) error)
	// extraccioncampoDescCreatedAt is the schema descriptor for created_at field.
	extraccioncampoDescCreatedAt := extraccioncampoFields[8].Descriptor()
	// extraccioncampo.DefaultCreatedAt holds the default value on creation for the created_at field.
	extraccioncampo.DefaultCreatedAt = extraccioncampoDescCreatedAt.Default.(func() time.Time)
	// extraccioncampoDescUpdatedAt is the schema descriptor for updated_at field.
	extraccioncampoDescUpdatedAt := extraccioncampoFields[9].Descriptor()
	// extraccioncampo.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extraccioncampo.DefaultUpdatedAt = extraccioncampoDescUpdatedAt.Default.(func() time.Time)
	// extraccioncampo.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extraccioncampo.UpdateDefaultUpdatedAt = extraccioncampoDescUpdatedAt.UpdateDefault.(func() time.Time)
	extracciontextoFields := schema.ExtraccionTexto{}.Fields()
	_ = extracciontextoFields
	// extracciontextoDescMetodo is the schema descriptor for metodo field.
	extracciontextoDescMetodo := extracciontextoFields[1].Descriptor()
	// extracciontexto.MetodoValidator is a validator for the "metodo" field. It is called by the builders before save.
	extracciontexto.MetodoValidator = extracciontextoDescMetodo.Validators[0].(func(string) error)
	// extracciontextoDescTextoExtraccion is the schema descriptor for texto_extraccion field.
	extracciontextoDescTextoExtraccion := extracciontextoFields[2].Descriptor()
	// extracciontexto.DefaultTextoExtraccion holds the default value on creation for the texto_extraccion field.
	extracciontexto.DefaultTextoExtraccion = extracciontextoDescTextoExtraccion.Default.(string)
	// extracciontextoDescEntropia is the schema descriptor for entropia field.
	extracciontextoDescEntropia := extracciontextoFields[3].Descriptor()
	// extracciontexto.DefaultEntropia holds the default value on creation for the entropia field.
	extracciontexto.DefaultEntropia = extracciontextoDescEntropia.Default.(float64)
	// extracciontextoDescEstado is the schema descriptor for estado field.
	extracciontextoDescEstado := extracciontextoFields[4].Descriptor()
	// extracciontexto.DefaultEstado holds the default value on creation for the estado field.
	extracciontexto.DefaultEstado = extracciontextoDescEstado.Default.(int)
	// extracciontextoDescCreatedAt is the schema descriptor for created_at field.
	extracciontextoDescCreatedAt := extracciontextoFields[6].Descriptor()
	// extracciontexto.DefaultCreatedAt holds the default value on creation for the created_at field.
	extracciontexto.DefaultCreatedAt = extracciontextoDescCreatedAt.Default.(func() time.Time)
	// extracciontextoDescUpdatedAt is the schema descriptor for updated_at field.
	extracciontextoDescUpdatedAt := extracciontextoFields[7].Descriptor()
	// extracciontexto.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extracciontexto.DefaultUpdatedAt = extracciontextoDescUpdatedAt.Default.(func() time.Time)
	// extracciontexto.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extracciontexto.UpdateDefaultUpdatedAt = extracciontextoDescUpdatedAt.UpdateDefault.(func() time.Time)
}
