// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtraccionCamposConsolidadaColumns holds the columns for the "extraccion_campos_consolidada" table.
	ExtraccionCamposConsolidadaColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "metodo", Type: field.TypeString},
		{Name: "campo", Type: field.TypeString},
		{Name: "valor", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "documento_id", Type: field.TypeInt},
	}
	// ExtraccionCamposConsolidadaTable holds the schema information for the "extraccion_campos_consolidada" table.
	ExtraccionCamposConsolidadaTable = &schema.Table{
		Name:       "extraccion_campos_consolidada",
		Columns:    ExtraccionCamposConsolidadaColumns,
		PrimaryKey: []*schema.Column{ExtraccionCamposConsolidadaColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraccion_campos_consolidada_documentos_consolidados",
				Columns:    []*schema.Column{ExtraccionCamposConsolidadaColumns[6]},
				RefColumns: []*schema.Column{DocumentosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "campoconsolidado_documento_id_campo",
				Unique:  true,
				Columns: []*schema.Column{ExtraccionCamposConsolidadaColumns[6], ExtraccionCamposConsolidadaColumns[2]},
			},
		},
	}
	// DocumentosColumns holds the columns for the "documentos" table.
	DocumentosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "nombre_archivo", Type: field.TypeString},
		{Name: "archivo_padre", Type: field.TypeString, Nullable: true},
		{Name: "hash_archivo", Type: field.TypeString, Size: 64},
		{Name: "tamano_bytes", Type: field.TypeInt64},
		{Name: "numero_paginas", Type: field.TypeInt, Default: 1},
		{Name: "tipo_documento", Type: field.TypeString, Default: "escaneado"},
		{Name: "resolucion_ppi", Type: field.TypeFloat64, Default: 0},
		{Name: "calidad_estimativa", Type: field.TypeInt, Default: 0},
		{Name: "estado", Type: field.TypeInt, Default: 1},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentosTable holds the schema information for the "documentos" table.
	DocumentosTable = &schema.Table{
		Name:       "documentos",
		Columns:    DocumentosColumns,
		PrimaryKey: []*schema.Column{DocumentosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_hash_archivo_nombre_archivo",
				Unique:  true,
				Columns: []*schema.Column{DocumentosColumns[3], DocumentosColumns[1]},
			},
			{
				Name:    "document_estado",
				Unique:  false,
				Columns: []*schema.Column{DocumentosColumns[9]},
			},
		},
	}
	// ExtraccionesCamposColumns holds the columns for the "extracciones_campos" table.
	ExtraccionesCamposColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "metodo", Type: field.TypeString},
		{Name: "campo", Type: field.TypeString},
		{Name: "valor", Type: field.TypeString, Default: ""},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "archivo_origen", Type: field.TypeString, Default: ""},
		{Name: "generacion", Type: field.TypeInt, Default: 1},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "documento_id", Type: field.TypeInt},
	}
	// ExtraccionesCamposTable holds the schema information for the "extracciones_campos" table.
	ExtraccionesCamposTable = &schema.Table{
		Name:       "extracciones_campos",
		Columns:    ExtraccionesCamposColumns,
		PrimaryKey: []*schema.Column{ExtraccionesCamposColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracciones_campos_documentos_campos",
				Columns:    []*schema.Column{ExtraccionesCamposColumns[10]},
				RefColumns: []*schema.Column{DocumentosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extraccioncampo_documento_id_metodo_campo_generacion",
				Unique:  true,
				Columns: []*schema.Column{ExtraccionesCamposColumns[10], ExtraccionesCamposColumns[1], ExtraccionesCamposColumns[2], ExtraccionesCamposColumns[6]},
			},
			{
				Name:    "extraccioncampo_documento_id_campo",
				Unique:  false,
				Columns: []*schema.Column{ExtraccionesCamposColumns[10], ExtraccionesCamposColumns[2]},
			},
			{
				Name:    "extraccioncampo_score",
				Unique:  false,
				Columns: []*schema.Column{ExtraccionesCamposColumns[4]},
			},
		},
	}
	// ExtraccionesTextoTotalColumns holds the columns for the "extracciones_texto_total" table.
	ExtraccionesTextoTotalColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "metodo", Type: field.TypeString},
		{Name: "texto_extraccion", Type: field.TypeString, Default: "", SchemaType: map[string]string{"postgres": "text"}},
		{Name: "entropia", Type: field.TypeFloat64, Default: 0},
		{Name: "estado", Type: field.TypeInt, Default: 2},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "documento_id", Type: field.TypeInt},
	}
	// ExtraccionesTextoTotalTable holds the schema information for the "extracciones_texto_total" table.
	ExtraccionesTextoTotalTable = &schema.Table{
		Name:       "extracciones_texto_total",
		Columns:    ExtraccionesTextoTotalColumns,
		PrimaryKey: []*schema.Column{ExtraccionesTextoTotalColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracciones_texto_total_documentos_textos",
				Columns:    []*schema.Column{ExtraccionesTextoTotalColumns[8]},
				RefColumns: []*schema.Column{DocumentosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extracciontexto_documento_id_metodo",
				Unique:  true,
				Columns: []*schema.Column{ExtraccionesTextoTotalColumns[8], ExtraccionesTextoTotalColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtraccionCamposConsolidadaTable,
		DocumentosTable,
		ExtraccionesCamposTable,
		ExtraccionesTextoTotalTable,
	}
)

func init() {
	ExtraccionCamposConsolidadaTable.ForeignKeys[0].RefTable = DocumentosTable
	ExtraccionCamposConsolidadaTable.Annotation = &entsql.Annotation{
		Table: "extraccion_campos_consolidada",
	}
	DocumentosTable.Annotation = &entsql.Annotation{
		Table: "documentos",
	}
	ExtraccionesCamposTable.ForeignKeys[0].RefTable = DocumentosTable
	ExtraccionesCamposTable.Annotation = &entsql.Annotation{
		Table: "extracciones_campos",
	}
	ExtraccionesTextoTotalTable.ForeignKeys[0].RefTable = DocumentosTable
	ExtraccionesTextoTotalTable.Annotation = &entsql.Annotation{
		Table: "extracciones_texto_total",
	}
}
