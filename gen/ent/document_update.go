// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/gen/ent/extraccioncampo"
	"github.com/facturascan/pipeline/gen/ent/extracciontexto"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// DocumentUpdate is the builder for updating Document entities.
type DocumentUpdate struct {
	config
	hooks    []Hook
	mutation *DocumentMutation
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdate) Where(ps ...predicate.Document) *DocumentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_u *DocumentUpdate) SetNombreArchivo(v string) *DocumentUpdate {
	_u.mutation.SetNombreArchivo(v)
	return _u
}

// SetNillableNombreArchivo sets the "nombre_archivo" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNombreArchivo(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetNombreArchivo(*v)
	}
	return _u
}

// SetArchivoPadre sets the "archivo_padre" field.
func (_u *DocumentUpdate) SetArchivoPadre(v string) *DocumentUpdate {
	_u.mutation.SetArchivoPadre(v)
	return _u
}

// SetNillableArchivoPadre sets the "archivo_padre" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableArchivoPadre(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetArchivoPadre(*v)
	}
	return _u
}

// ClearArchivoPadre clears the value of the "archivo_padre" field.
func (_u *DocumentUpdate) ClearArchivoPadre() *DocumentUpdate {
	_u.mutation.ClearArchivoPadre()
	return _u
}

// SetHashArchivo sets the "hash_archivo" field.
func (_u *DocumentUpdate) SetHashArchivo(v string) *DocumentUpdate {
	_u.mutation.SetHashArchivo(v)
	return _u
}

// SetNillableHashArchivo sets the "hash_archivo" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableHashArchivo(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetHashArchivo(*v)
	}
	return _u
}

// SetTamanoBytes sets the "tamano_bytes" field.
func (_u *DocumentUpdate) SetTamanoBytes(v int64) *DocumentUpdate {
	_u.mutation.ResetTamanoBytes()
	_u.mutation.SetTamanoBytes(v)
	return _u
}

// SetNillableTamanoBytes sets the "tamano_bytes" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTamanoBytes(v *int64) *DocumentUpdate {
	if v != nil {
		_u.SetTamanoBytes(*v)
	}
	return _u
}

// AddTamanoBytes adds value to the "tamano_bytes" field.
func (_u *DocumentUpdate) AddTamanoBytes(v int64) *DocumentUpdate {
	_u.mutation.AddTamanoBytes(v)
	return _u
}

// SetNumeroPaginas sets the "numero_paginas" field.
func (_u *DocumentUpdate) SetNumeroPaginas(v int) *DocumentUpdate {
	_u.mutation.ResetNumeroPaginas()
	_u.mutation.SetNumeroPaginas(v)
	return _u
}

// SetNillableNumeroPaginas sets the "numero_paginas" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableNumeroPaginas(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetNumeroPaginas(*v)
	}
	return _u
}

// AddNumeroPaginas adds value to the "numero_paginas" field.
func (_u *DocumentUpdate) AddNumeroPaginas(v int) *DocumentUpdate {
	_u.mutation.AddNumeroPaginas(v)
	return _u
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_u *DocumentUpdate) SetTipoDocumento(v string) *DocumentUpdate {
	_u.mutation.SetTipoDocumento(v)
	return _u
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableTipoDocumento(v *string) *DocumentUpdate {
	if v != nil {
		_u.SetTipoDocumento(*v)
	}
	return _u
}

// SetResolucionPpi sets the "resolucion_ppi" field.
func (_u *DocumentUpdate) SetResolucionPpi(v float64) *DocumentUpdate {
	_u.mutation.ResetResolucionPpi()
	_u.mutation.SetResolucionPpi(v)
	return _u
}

// SetNillableResolucionPpi sets the "resolucion_ppi" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableResolucionPpi(v *float64) *DocumentUpdate {
	if v != nil {
		_u.SetResolucionPpi(*v)
	}
	return _u
}

// AddResolucionPpi adds value to the "resolucion_ppi" field.
func (_u *DocumentUpdate) AddResolucionPpi(v float64) *DocumentUpdate {
	_u.mutation.AddResolucionPpi(v)
	return _u
}

// SetCalidadEstimativa sets the "calidad_estimativa" field.
func (_u *DocumentUpdate) SetCalidadEstimativa(v int) *DocumentUpdate {
	_u.mutation.ResetCalidadEstimativa()
	_u.mutation.SetCalidadEstimativa(v)
	return _u
}

// SetNillableCalidadEstimativa sets the "calidad_estimativa" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableCalidadEstimativa(v *int) *DocumentUpdate {
	if v != nil {
		_u.SetCalidadEstimativa(*v)
	}
	return _u
}

// AddCalidadEstimativa adds value to the "calidad_estimativa" field.
func (_u *DocumentUpdate) AddCalidadEstimativa(v int) *DocumentUpdate {
	_u.mutation.AddCalidadEstimativa(v)
	return _u
}

// SetEstado sets the "estado" field.
func (_u *DocumentUpdate) SetEstado(v constants.Estado) *DocumentUpdate {
	_u.mutation.ResetEstado()
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableEstado(v *constants.Estado) *DocumentUpdate {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// AddEstado adds value to the "estado" field.
func (_u *DocumentUpdate) AddEstado(v constants.Estado) *DocumentUpdate {
	_u.mutation.AddEstado(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DocumentUpdate) SetDeletedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DocumentUpdate) SetNillableDeletedAt(v *time.Time) *DocumentUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DocumentUpdate) ClearDeletedAt() *DocumentUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdate) SetUpdatedAt(v time.Time) *DocumentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTextoIDs adds the "textos" edge to the ExtraccionTexto entity by IDs.
func (_u *DocumentUpdate) AddTextoIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddTextoIDs(ids...)
	return _u
}

// AddTextos adds the "textos" edges to the ExtraccionTexto entity.
func (_u *DocumentUpdate) AddTextos(v ...*ExtraccionTexto) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTextoIDs(ids...)
}

// AddCampoIDs adds the "campos" edge to the ExtraccionCampo entity by IDs.
func (_u *DocumentUpdate) AddCampoIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddCampoIDs(ids...)
	return _u
}

// AddCampos adds the "campos" edges to the ExtraccionCampo entity.
func (_u *DocumentUpdate) AddCampos(v ...*ExtraccionCampo) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampoIDs(ids...)
}

// AddConsolidadoIDs adds the "consolidados" edge to the CampoConsolidado entity by IDs.
func (_u *DocumentUpdate) AddConsolidadoIDs(ids ...int) *DocumentUpdate {
	_u.mutation.AddConsolidadoIDs(ids...)
	return _u
}

// AddConsolidados adds the "consolidados" edges to the CampoConsolidado entity.
func (_u *DocumentUpdate) AddConsolidados(v ...*CampoConsolidado) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsolidadoIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdate) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearTextos clears all "textos" edges to the ExtraccionTexto entity.
func (_u *DocumentUpdate) ClearTextos() *DocumentUpdate {
	_u.mutation.ClearTextos()
	return _u
}

// RemoveTextoIDs removes the "textos" edge to ExtraccionTexto entities by IDs.
func (_u *DocumentUpdate) RemoveTextoIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveTextoIDs(ids...)
	return _u
}

// RemoveTextos removes "textos" edges to ExtraccionTexto entities.
func (_u *DocumentUpdate) RemoveTextos(v ...*ExtraccionTexto) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTextoIDs(ids...)
}

// ClearCampos clears all "campos" edges to the ExtraccionCampo entity.
func (_u *DocumentUpdate) ClearCampos() *DocumentUpdate {
	_u.mutation.ClearCampos()
	return _u
}

// RemoveCampoIDs removes the "campos" edge to ExtraccionCampo entities by IDs.
func (_u *DocumentUpdate) RemoveCampoIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveCampoIDs(ids...)
	return _u
}

// RemoveCampos removes "campos" edges to ExtraccionCampo entities.
func (_u *DocumentUpdate) RemoveCampos(v ...*ExtraccionCampo) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampoIDs(ids...)
}

// ClearConsolidados clears all "consolidados" edges to the CampoConsolidado entity.
func (_u *DocumentUpdate) ClearConsolidados() *DocumentUpdate {
	_u.mutation.ClearConsolidados()
	return _u
}

// RemoveConsolidadoIDs removes the "consolidados" edge to CampoConsolidado entities by IDs.
func (_u *DocumentUpdate) RemoveConsolidadoIDs(ids ...int) *DocumentUpdate {
	_u.mutation.RemoveConsolidadoIDs(ids...)
	return _u
}

// RemoveConsolidados removes "consolidados" edges to CampoConsolidado entities.
func (_u *DocumentUpdate) RemoveConsolidados(v ...*CampoConsolidado) *DocumentUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsolidadoIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DocumentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DocumentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdate) check() error {
	if v, ok := _u.mutation.NombreArchivo(); ok {
		if err := document.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`ent: validator failed for field "Document.nombre_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashArchivo(); ok {
		if err := document.HashArchivoValidator(v); err != nil {
			return &ValidationError{Name: "hash_archivo", err: fmt.Errorf(`ent: validator failed for field "Document.hash_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TamanoBytes(); ok {
		if err := document.TamanoBytesValidator(v); err != nil {
			return &ValidationError{Name: "tamano_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.tamano_bytes": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NombreArchivo(); ok {
		_spec.SetField(document.FieldNombreArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchivoPadre(); ok {
		_spec.SetField(document.FieldArchivoPadre, field.TypeString, value)
	}
	if _u.mutation.ArchivoPadreCleared() {
		_spec.ClearField(document.FieldArchivoPadre, field.TypeString)
	}
	if value, ok := _u.mutation.HashArchivo(); ok {
		_spec.SetField(document.FieldHashArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.TamanoBytes(); ok {
		_spec.SetField(document.FieldTamanoBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTamanoBytes(); ok {
		_spec.AddField(document.FieldTamanoBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NumeroPaginas(); ok {
		_spec.SetField(document.FieldNumeroPaginas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumeroPaginas(); ok {
		_spec.AddField(document.FieldNumeroPaginas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TipoDocumento(); ok {
		_spec.SetField(document.FieldTipoDocumento, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolucionPpi(); ok {
		_spec.SetField(document.FieldResolucionPpi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResolucionPpi(); ok {
		_spec.AddField(document.FieldResolucionPpi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CalidadEstimativa(); ok {
		_spec.SetField(document.FieldCalidadEstimativa, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalidadEstimativa(); ok {
		_spec.AddField(document.FieldCalidadEstimativa, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(document.FieldEstado, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstado(); ok {
		_spec.AddField(document.FieldEstado, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(document.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TextosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TextosTable,
			Columns: []string{document.TextosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTextosIDs(); len(nodes) > 0 && !_u.mutation.TextosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TextosTable,
			Columns: []string{document.TextosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TextosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TextosTable,
			Columns: []string{document.TextosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CamposCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.CamposTable,
			Columns: []string{document.CamposColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCamposIDs(); len(nodes) > 0 && !_u.mutation.CamposCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.CamposTable,
			Columns: []string{document.CamposColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CamposIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.CamposTable,
			Columns: []string{document.CamposColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsolidadosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ConsolidadosTable,
			Columns: []string{document.ConsolidadosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsolidadosIDs(); len(nodes) > 0 && !_u.mutation.ConsolidadosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ConsolidadosTable,
			Columns: []string{document.ConsolidadosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsolidadosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ConsolidadosTable,
			Columns: []string{document.ConsolidadosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DocumentUpdateOne is the builder for updating a single Document entity.
type DocumentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DocumentMutation
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_u *DocumentUpdateOne) SetNombreArchivo(v string) *DocumentUpdateOne {
	_u.mutation.SetNombreArchivo(v)
	return _u
}

// SetNillableNombreArchivo sets the "nombre_archivo" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNombreArchivo(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetNombreArchivo(*v)
	}
	return _u
}

// SetArchivoPadre sets the "archivo_padre" field.
func (_u *DocumentUpdateOne) SetArchivoPadre(v string) *DocumentUpdateOne {
	_u.mutation.SetArchivoPadre(v)
	return _u
}

// SetNillableArchivoPadre sets the "archivo_padre" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableArchivoPadre(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetArchivoPadre(*v)
	}
	return _u
}

// ClearArchivoPadre clears the value of the "archivo_padre" field.
func (_u *DocumentUpdateOne) ClearArchivoPadre() *DocumentUpdateOne {
	_u.mutation.ClearArchivoPadre()
	return _u
}

// SetHashArchivo sets the "hash_archivo" field.
func (_u *DocumentUpdateOne) SetHashArchivo(v string) *DocumentUpdateOne {
	_u.mutation.SetHashArchivo(v)
	return _u
}

// SetNillableHashArchivo sets the "hash_archivo" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableHashArchivo(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetHashArchivo(*v)
	}
	return _u
}

// SetTamanoBytes sets the "tamano_bytes" field.
func (_u *DocumentUpdateOne) SetTamanoBytes(v int64) *DocumentUpdateOne {
	_u.mutation.ResetTamanoBytes()
	_u.mutation.SetTamanoBytes(v)
	return _u
}

// SetNillableTamanoBytes sets the "tamano_bytes" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTamanoBytes(v *int64) *DocumentUpdateOne {
	if v != nil {
		_u.SetTamanoBytes(*v)
	}
	return _u
}

// AddTamanoBytes adds value to the "tamano_bytes" field.
func (_u *DocumentUpdateOne) AddTamanoBytes(v int64) *DocumentUpdateOne {
	_u.mutation.AddTamanoBytes(v)
	return _u
}

// SetNumeroPaginas sets the "numero_paginas" field.
func (_u *DocumentUpdateOne) SetNumeroPaginas(v int) *DocumentUpdateOne {
	_u.mutation.ResetNumeroPaginas()
	_u.mutation.SetNumeroPaginas(v)
	return _u
}

// SetNillableNumeroPaginas sets the "numero_paginas" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableNumeroPaginas(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetNumeroPaginas(*v)
	}
	return _u
}

// AddNumeroPaginas adds value to the "numero_paginas" field.
func (_u *DocumentUpdateOne) AddNumeroPaginas(v int) *DocumentUpdateOne {
	_u.mutation.AddNumeroPaginas(v)
	return _u
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_u *DocumentUpdateOne) SetTipoDocumento(v string) *DocumentUpdateOne {
	_u.mutation.SetTipoDocumento(v)
	return _u
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableTipoDocumento(v *string) *DocumentUpdateOne {
	if v != nil {
		_u.SetTipoDocumento(*v)
	}
	return _u
}

// SetResolucionPpi sets the "resolucion_ppi" field.
func (_u *DocumentUpdateOne) SetResolucionPpi(v float64) *DocumentUpdateOne {
	_u.mutation.ResetResolucionPpi()
	_u.mutation.SetResolucionPpi(v)
	return _u
}

// SetNillableResolucionPpi sets the "resolucion_ppi" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableResolucionPpi(v *float64) *DocumentUpdateOne {
	if v != nil {
		_u.SetResolucionPpi(*v)
	}
	return _u
}

// AddResolucionPpi adds value to the "resolucion_ppi" field.
func (_u *DocumentUpdateOne) AddResolucionPpi(v float64) *DocumentUpdateOne {
	_u.mutation.AddResolucionPpi(v)
	return _u
}

// SetCalidadEstimativa sets the "calidad_estimativa" field.
func (_u *DocumentUpdateOne) SetCalidadEstimativa(v int) *DocumentUpdateOne {
	_u.mutation.ResetCalidadEstimativa()
	_u.mutation.SetCalidadEstimativa(v)
	return _u
}

// SetNillableCalidadEstimativa sets the "calidad_estimativa" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableCalidadEstimativa(v *int) *DocumentUpdateOne {
	if v != nil {
		_u.SetCalidadEstimativa(*v)
	}
	return _u
}

// AddCalidadEstimativa adds value to the "calidad_estimativa" field.
func (_u *DocumentUpdateOne) AddCalidadEstimativa(v int) *DocumentUpdateOne {
	_u.mutation.AddCalidadEstimativa(v)
	return _u
}

// SetEstado sets the "estado" field.
func (_u *DocumentUpdateOne) SetEstado(v constants.Estado) *DocumentUpdateOne {
	_u.mutation.ResetEstado()
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableEstado(v *constants.Estado) *DocumentUpdateOne {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// AddEstado adds value to the "estado" field.
func (_u *DocumentUpdateOne) AddEstado(v constants.Estado) *DocumentUpdateOne {
	_u.mutation.AddEstado(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *DocumentUpdateOne) SetDeletedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *DocumentUpdateOne) SetNillableDeletedAt(v *time.Time) *DocumentUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *DocumentUpdateOne) ClearDeletedAt() *DocumentUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DocumentUpdateOne) SetUpdatedAt(v time.Time) *DocumentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddTextoIDs adds the "textos" edge to the ExtraccionTexto entity by IDs.
func (_u *DocumentUpdateOne) AddTextoIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddTextoIDs(ids...)
	return _u
}

// AddTextos adds the "textos" edges to the ExtraccionTexto entity.
func (_u *DocumentUpdateOne) AddTextos(v ...*ExtraccionTexto) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTextoIDs(ids...)
}

// AddCampoIDs adds the "campos" edge to the ExtraccionCampo entity by IDs.
func (_u *DocumentUpdateOne) AddCampoIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddCampoIDs(ids...)
	return _u
}

// AddCampos adds the "campos" edges to the ExtraccionCampo entity.
func (_u *DocumentUpdateOne) AddCampos(v ...*ExtraccionCampo) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampoIDs(ids...)
}

// AddConsolidadoIDs adds the "consolidados" edge to the CampoConsolidado entity by IDs.
func (_u *DocumentUpdateOne) AddConsolidadoIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.AddConsolidadoIDs(ids...)
	return _u
}

// AddConsolidados adds the "consolidados" edges to the CampoConsolidado entity.
func (_u *DocumentUpdateOne) AddConsolidados(v ...*CampoConsolidado) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConsolidadoIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_u *DocumentUpdateOne) Mutation() *DocumentMutation {
	return _u.mutation
}

// ClearTextos clears all "textos" edges to the ExtraccionTexto entity.
func (_u *DocumentUpdateOne) ClearTextos() *DocumentUpdateOne {
	_u.mutation.ClearTextos()
	return _u
}

// RemoveTextoIDs removes the "textos" edge to ExtraccionTexto entities by IDs.
func (_u *DocumentUpdateOne) RemoveTextoIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveTextoIDs(ids...)
	return _u
}

// RemoveTextos removes "textos" edges to ExtraccionTexto entities.
func (_u *DocumentUpdateOne) RemoveTextos(v ...*ExtraccionTexto) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTextoIDs(ids...)
}

// ClearCampos clears all "campos" edges to the ExtraccionCampo entity.
func (_u *DocumentUpdateOne) ClearCampos() *DocumentUpdateOne {
	_u.mutation.ClearCampos()
	return _u
}

// RemoveCampoIDs removes the "campos" edge to ExtraccionCampo entities by IDs.
func (_u *DocumentUpdateOne) RemoveCampoIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveCampoIDs(ids...)
	return _u
}

// RemoveCampos removes "campos" edges to ExtraccionCampo entities.
func (_u *DocumentUpdateOne) RemoveCampos(v ...*ExtraccionCampo) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampoIDs(ids...)
}

// ClearConsolidados clears all "consolidados" edges to the CampoConsolidado entity.
func (_u *DocumentUpdateOne) ClearConsolidados() *DocumentUpdateOne {
	_u.mutation.ClearConsolidados()
	return _u
}

// RemoveConsolidadoIDs removes the "consolidados" edge to CampoConsolidado entities by IDs.
func (_u *DocumentUpdateOne) RemoveConsolidadoIDs(ids ...int) *DocumentUpdateOne {
	_u.mutation.RemoveConsolidadoIDs(ids...)
	return _u
}

// RemoveConsolidados removes "consolidados" edges to CampoConsolidado entities.
func (_u *DocumentUpdateOne) RemoveConsolidados(v ...*CampoConsolidado) *DocumentUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConsolidadoIDs(ids...)
}

// Where appends a list predicates to the DocumentUpdate builder.
func (_u *DocumentUpdateOne) Where(ps ...predicate.Document) *DocumentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DocumentUpdateOne) Select(field string, fields ...string) *DocumentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Document entity.
func (_u *DocumentUpdateOne) Save(ctx context.Context) (*Document, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DocumentUpdateOne) SaveX(ctx context.Context) *Document {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DocumentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DocumentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DocumentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := document.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DocumentUpdateOne) check() error {
	if v, ok := _u.mutation.NombreArchivo(); ok {
		if err := document.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`ent: validator failed for field "Document.nombre_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.HashArchivo(); ok {
		if err := document.HashArchivoValidator(v); err != nil {
			return &ValidationError{Name: "hash_archivo", err: fmt.Errorf(`ent: validator failed for field "Document.hash_archivo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TamanoBytes(); ok {
		if err := document.TamanoBytesValidator(v); err != nil {
			return &ValidationError{Name: "tamano_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.tamano_bytes": %w`, err)}
		}
	}
	return nil
}

func (_u *DocumentUpdateOne) sqlSave(ctx context.Context) (_node *Document, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(document.Table, document.Columns, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Document.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, document.FieldID)
		for _, f := range fields {
			if !document.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != document.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NombreArchivo(); ok {
		_spec.SetField(document.FieldNombreArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.ArchivoPadre(); ok {
		_spec.SetField(document.FieldArchivoPadre, field.TypeString, value)
	}
	if _u.mutation.ArchivoPadreCleared() {
		_spec.ClearField(document.FieldArchivoPadre, field.TypeString)
	}
	if value, ok := _u.mutation.HashArchivo(); ok {
		_spec.SetField(document.FieldHashArchivo, field.TypeString, value)
	}
	if value, ok := _u.mutation.TamanoBytes(); ok {
		_spec.SetField(document.FieldTamanoBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTamanoBytes(); ok {
		_spec.AddField(document.FieldTamanoBytes, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.NumeroPaginas(); ok {
		_spec.SetField(document.FieldNumeroPaginas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNumeroPaginas(); ok {
		_spec.AddField(document.FieldNumeroPaginas, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TipoDocumento(); ok {
		_spec.SetField(document.FieldTipoDocumento, field.TypeString, value)
	}
	if value, ok := _u.mutation.ResolucionPpi(); ok {
		_spec.SetField(document.FieldResolucionPpi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResolucionPpi(); ok {
		_spec.AddField(document.FieldResolucionPpi, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CalidadEstimativa(); ok {
		_spec.SetField(document.FieldCalidadEstimativa, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCalidadEstimativa(); ok {
		_spec.AddField(document.FieldCalidadEstimativa, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(document.FieldEstado, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstado(); ok {
		_spec.AddField(document.FieldEstado, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(document.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.TextosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TextosTable,
			Columns: []string{document.TextosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTextosIDs(); len(nodes) > 0 && !_u.mutation.TextosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TextosTable,
			Columns: []string{document.TextosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TextosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.TextosTable,
			Columns: []string{document.TextosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CamposCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.CamposTable,
			Columns: []string{document.CamposColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCamposIDs(); len(nodes) > 0 && !_u.mutation.CamposCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.CamposTable,
			Columns: []string{document.CamposColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CamposIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.CamposTable,
			Columns: []string{document.CamposColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ConsolidadosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ConsolidadosTable,
			Columns: []string{document.ConsolidadosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConsolidadosIDs(); len(nodes) > 0 && !_u.mutation.ConsolidadosCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ConsolidadosTable,
			Columns: []string{document.ConsolidadosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConsolidadosIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   document.ConsolidadosTable,
			Columns: []string{document.ConsolidadosColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Document{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{document.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
