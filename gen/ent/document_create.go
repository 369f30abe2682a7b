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
)

// DocumentCreate is the builder for creating a Document entity.
type DocumentCreate struct {
	config
	mutation *DocumentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (_c *DocumentCreate) SetNombreArchivo(v string) *DocumentCreate {
	_c.mutation.SetNombreArchivo(v)
	return _c
}

// SetArchivoPadre sets the "archivo_padre" field.
func (_c *DocumentCreate) SetArchivoPadre(v string) *DocumentCreate {
	_c.mutation.SetArchivoPadre(v)
	return _c
}

// SetNillableArchivoPadre sets the "archivo_padre" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableArchivoPadre(v *string) *DocumentCreate {
	if v != nil {
		_c.SetArchivoPadre(*v)
	}
	return _c
}

// SetHashArchivo sets the "hash_archivo" field.
func (_c *DocumentCreate) SetHashArchivo(v string) *DocumentCreate {
	_c.mutation.SetHashArchivo(v)
	return _c
}

// SetTamanoBytes sets the "tamano_bytes" field.
func (_c *DocumentCreate) SetTamanoBytes(v int64) *DocumentCreate {
	_c.mutation.SetTamanoBytes(v)
	return _c
}

// SetNumeroPaginas sets the "numero_paginas" field.
func (_c *DocumentCreate) SetNumeroPaginas(v int) *DocumentCreate {
	_c.mutation.SetNumeroPaginas(v)
	return _c
}

// SetNillableNumeroPaginas sets the "numero_paginas" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableNumeroPaginas(v *int) *DocumentCreate {
	if v != nil {
		_c.SetNumeroPaginas(*v)
	}
	return _c
}

// SetTipoDocumento sets the "tipo_documento" field.
func (_c *DocumentCreate) SetTipoDocumento(v string) *DocumentCreate {
	_c.mutation.SetTipoDocumento(v)
	return _c
}

// SetNillableTipoDocumento sets the "tipo_documento" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableTipoDocumento(v *string) *DocumentCreate {
	if v != nil {
		_c.SetTipoDocumento(*v)
	}
	return _c
}

// SetResolucionPpi sets the "resolucion_ppi" field.
func (_c *DocumentCreate) SetResolucionPpi(v float64) *DocumentCreate {
	_c.mutation.SetResolucionPpi(v)
	return _c
}

// SetNillableResolucionPpi sets the "resolucion_ppi" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableResolucionPpi(v *float64) *DocumentCreate {
	if v != nil {
		_c.SetResolucionPpi(*v)
	}
	return _c
}

// SetCalidadEstimativa sets the "calidad_estimativa" field.
func (_c *DocumentCreate) SetCalidadEstimativa(v int) *DocumentCreate {
	_c.mutation.SetCalidadEstimativa(v)
	return _c
}

// SetNillableCalidadEstimativa sets the "calidad_estimativa" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCalidadEstimativa(v *int) *DocumentCreate {
	if v != nil {
		_c.SetCalidadEstimativa(*v)
	}
	return _c
}

// SetEstado sets the "estado" field.
func (_c *DocumentCreate) SetEstado(v constants.Estado) *DocumentCreate {
	_c.mutation.SetEstado(v)
	return _c
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableEstado(v *constants.Estado) *DocumentCreate {
	if v != nil {
		_c.SetEstado(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *DocumentCreate) SetDeletedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableDeletedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DocumentCreate) SetCreatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableCreatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DocumentCreate) SetUpdatedAt(v time.Time) *DocumentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DocumentCreate) SetNillableUpdatedAt(v *time.Time) *DocumentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddTextoIDs adds the "textos" edge to the ExtraccionTexto entity by IDs.
func (_c *DocumentCreate) AddTextoIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddTextoIDs(ids...)
	return _c
}

// AddTextos adds the "textos" edges to the ExtraccionTexto entity.
func (_c *DocumentCreate) AddTextos(v ...*ExtraccionTexto) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTextoIDs(ids...)
}

// AddCampoIDs adds the "campos" edge to the ExtraccionCampo entity by IDs.
func (_c *DocumentCreate) AddCampoIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddCampoIDs(ids...)
	return _c
}

// AddCampos adds the "campos" edges to the ExtraccionCampo entity.
func (_c *DocumentCreate) AddCampos(v ...*ExtraccionCampo) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCampoIDs(ids...)
}

// AddConsolidadoIDs adds the "consolidados" edge to the CampoConsolidado entity by IDs.
func (_c *DocumentCreate) AddConsolidadoIDs(ids ...int) *DocumentCreate {
	_c.mutation.AddConsolidadoIDs(ids...)
	return _c
}

// AddConsolidados adds the "consolidados" edges to the CampoConsolidado entity.
func (_c *DocumentCreate) AddConsolidados(v ...*CampoConsolidado) *DocumentCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConsolidadoIDs(ids...)
}

// Mutation returns the DocumentMutation object of the builder.
func (_c *DocumentCreate) Mutation() *DocumentMutation {
	return _c.mutation
}

// Save creates the Document in the database.
func (_c *DocumentCreate) Save(ctx context.Context) (*Document, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DocumentCreate) SaveX(ctx context.Context) *Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DocumentCreate) defaults() {
	if _, ok := _c.mutation.NumeroPaginas(); !ok {
		v := document.DefaultNumeroPaginas
		_c.mutation.SetNumeroPaginas(v)
	}
	if _, ok := _c.mutation.TipoDocumento(); !ok {
		v := document.DefaultTipoDocumento
		_c.mutation.SetTipoDocumento(v)
	}
	if _, ok := _c.mutation.ResolucionPpi(); !ok {
		v := document.DefaultResolucionPpi
		_c.mutation.SetResolucionPpi(v)
	}
	if _, ok := _c.mutation.CalidadEstimativa(); !ok {
		v := document.DefaultCalidadEstimativa
		_c.mutation.SetCalidadEstimativa(v)
	}
	if _, ok := _c.mutation.Estado(); !ok {
		v := document.DefaultEstado
		_c.mutation.SetEstado(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := document.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := document.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DocumentCreate) check() error {
	if _, ok := _c.mutation.NombreArchivo(); !ok {
		return &ValidationError{Name: "nombre_archivo", err: errors.New(`ent: missing required field "Document.nombre_archivo"`)}
	}
	if v, ok := _c.mutation.NombreArchivo(); ok {
		if err := document.NombreArchivoValidator(v); err != nil {
			return &ValidationError{Name: "nombre_archivo", err: fmt.Errorf(`ent: validator failed for field "Document.nombre_archivo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HashArchivo(); !ok {
		return &ValidationError{Name: "hash_archivo", err: errors.New(`ent: missing required field "Document.hash_archivo"`)}
	}
	if v, ok := _c.mutation.HashArchivo(); ok {
		if err := document.HashArchivoValidator(v); err != nil {
			return &ValidationError{Name: "hash_archivo", err: fmt.Errorf(`ent: validator failed for field "Document.hash_archivo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TamanoBytes(); !ok {
		return &ValidationError{Name: "tamano_bytes", err: errors.New(`ent: missing required field "Document.tamano_bytes"`)}
	}
	if v, ok := _c.mutation.TamanoBytes(); ok {
		if err := document.TamanoBytesValidator(v); err != nil {
			return &ValidationError{Name: "tamano_bytes", err: fmt.Errorf(`ent: validator failed for field "Document.tamano_bytes": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumeroPaginas(); !ok {
		return &ValidationError{Name: "numero_paginas", err: errors.New(`ent: missing required field "Document.numero_paginas"`)}
	}
	if _, ok := _c.mutation.TipoDocumento(); !ok {
		return &ValidationError{Name: "tipo_documento", err: errors.New(`ent: missing required field "Document.tipo_documento"`)}
	}
	if _, ok := _c.mutation.ResolucionPpi(); !ok {
		return &ValidationError{Name: "resolucion_ppi", err: errors.New(`ent: missing required field "Document.resolucion_ppi"`)}
	}
	if _, ok := _c.mutation.CalidadEstimativa(); !ok {
		return &ValidationError{Name: "calidad_estimativa", err: errors.New(`ent: missing required field "Document.calidad_estimativa"`)}
	}
	if _, ok := _c.mutation.Estado(); !ok {
		return &ValidationError{Name: "estado", err: errors.New(`ent: missing required field "Document.estado"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Document.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Document.updated_at"`)}
	}
	return nil
}

func (_c *DocumentCreate) sqlSave(ctx context.Context) (*Document, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DocumentCreate) createSpec() (*Document, *sqlgraph.CreateSpec) {
	var (
		_node = &Document{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(document.Table, sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.NombreArchivo(); ok {
		_spec.SetField(document.FieldNombreArchivo, field.TypeString, value)
		_node.NombreArchivo = value
	}
	if value, ok := _c.mutation.ArchivoPadre(); ok {
		_spec.SetField(document.FieldArchivoPadre, field.TypeString, value)
		_node.ArchivoPadre = value
	}
	if value, ok := _c.mutation.HashArchivo(); ok {
		_spec.SetField(document.FieldHashArchivo, field.TypeString, value)
		_node.HashArchivo = value
	}
	if value, ok := _c.mutation.TamanoBytes(); ok {
		_spec.SetField(document.FieldTamanoBytes, field.TypeInt64, value)
		_node.TamanoBytes = value
	}
	if value, ok := _c.mutation.NumeroPaginas(); ok {
		_spec.SetField(document.FieldNumeroPaginas, field.TypeInt, value)
		_node.NumeroPaginas = value
	}
	if value, ok := _c.mutation.TipoDocumento(); ok {
		_spec.SetField(document.FieldTipoDocumento, field.TypeString, value)
		_node.TipoDocumento = value
	}
	if value, ok := _c.mutation.ResolucionPpi(); ok {
		_spec.SetField(document.FieldResolucionPpi, field.TypeFloat64, value)
		_node.ResolucionPpi = value
	}
	if value, ok := _c.mutation.CalidadEstimativa(); ok {
		_spec.SetField(document.FieldCalidadEstimativa, field.TypeInt, value)
		_node.CalidadEstimativa = value
	}
	if value, ok := _c.mutation.Estado(); ok {
		_spec.SetField(document.FieldEstado, field.TypeInt, value)
		_node.Estado = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(document.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(document.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(document.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TextosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CamposIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ConsolidadosIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.Create().
//		SetNombreArchivo(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetNombreArchivo(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertOne {
	_c.conflict = opts
	return &DocumentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreate) OnConflictColumns(columns ...string) *DocumentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertOne{
		create: _c,
	}
}

type (
	// DocumentUpsertOne is the builder for "upsert"-ing
	//  one Document node.
	DocumentUpsertOne struct {
		create *DocumentCreate
	}

	// DocumentUpsert is the "OnConflict" setter.
	DocumentUpsert struct {
		*sql.UpdateSet
	}
)

// SetNombreArchivo sets the "nombre_archivo" field.
func (u *DocumentUpsert) SetNombreArchivo(v string) *DocumentUpsert {
	u.Set(document.FieldNombreArchivo, v)
	return u
}

// UpdateNombreArchivo sets the "nombre_archivo" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateNombreArchivo() *DocumentUpsert {
	u.SetExcluded(document.FieldNombreArchivo)
	return u
}

// SetArchivoPadre sets the "archivo_padre" field.
func (u *DocumentUpsert) SetArchivoPadre(v string) *DocumentUpsert {
	u.Set(document.FieldArchivoPadre, v)
	return u
}

// UpdateArchivoPadre sets the "archivo_padre" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateArchivoPadre() *DocumentUpsert {
	u.SetExcluded(document.FieldArchivoPadre)
	return u
}

// ClearArchivoPadre clears the value of the "archivo_padre" field.
func (u *DocumentUpsert) ClearArchivoPadre() *DocumentUpsert {
	u.SetNull(document.FieldArchivoPadre)
	return u
}

// SetHashArchivo sets the "hash_archivo" field.
func (u *DocumentUpsert) SetHashArchivo(v string) *DocumentUpsert {
	u.Set(document.FieldHashArchivo, v)
	return u
}

// UpdateHashArchivo sets the "hash_archivo" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateHashArchivo() *DocumentUpsert {
	u.SetExcluded(document.FieldHashArchivo)
	return u
}

// SetTamanoBytes sets the "tamano_bytes" field.
func (u *DocumentUpsert) SetTamanoBytes(v int64) *DocumentUpsert {
	u.Set(document.FieldTamanoBytes, v)
	return u
}

// UpdateTamanoBytes sets the "tamano_bytes" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTamanoBytes() *DocumentUpsert {
	u.SetExcluded(document.FieldTamanoBytes)
	return u
}

// AddTamanoBytes adds v to the "tamano_bytes" field.
func (u *DocumentUpsert) AddTamanoBytes(v int64) *DocumentUpsert {
	u.Add(document.FieldTamanoBytes, v)
	return u
}

// SetNumeroPaginas sets the "numero_paginas" field.
func (u *DocumentUpsert) SetNumeroPaginas(v int) *DocumentUpsert {
	u.Set(document.FieldNumeroPaginas, v)
	return u
}

// UpdateNumeroPaginas sets the "numero_paginas" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateNumeroPaginas() *DocumentUpsert {
	u.SetExcluded(document.FieldNumeroPaginas)
	return u
}

// AddNumeroPaginas adds v to the "numero_paginas" field.
func (u *DocumentUpsert) AddNumeroPaginas(v int) *DocumentUpsert {
	u.Add(document.FieldNumeroPaginas, v)
	return u
}

// SetTipoDocumento sets the "tipo_documento" field.
func (u *DocumentUpsert) SetTipoDocumento(v string) *DocumentUpsert {
	u.Set(document.FieldTipoDocumento, v)
	return u
}

// UpdateTipoDocumento sets the "tipo_documento" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateTipoDocumento() *DocumentUpsert {
	u.SetExcluded(document.FieldTipoDocumento)
	return u
}

// SetResolucionPpi sets the "resolucion_ppi" field.
func (u *DocumentUpsert) SetResolucionPpi(v float64) *DocumentUpsert {
	u.Set(document.FieldResolucionPpi, v)
	return u
}

// UpdateResolucionPpi sets the "resolucion_ppi" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateResolucionPpi() *DocumentUpsert {
	u.SetExcluded(document.FieldResolucionPpi)
	return u
}

// AddResolucionPpi adds v to the "resolucion_ppi" field.
func (u *DocumentUpsert) AddResolucionPpi(v float64) *DocumentUpsert {
	u.Add(document.FieldResolucionPpi, v)
	return u
}

// SetCalidadEstimativa sets the "calidad_estimativa" field.
func (u *DocumentUpsert) SetCalidadEstimativa(v int) *DocumentUpsert {
	u.Set(document.FieldCalidadEstimativa, v)
	return u
}

// UpdateCalidadEstimativa sets the "calidad_estimativa" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateCalidadEstimativa() *DocumentUpsert {
	u.SetExcluded(document.FieldCalidadEstimativa)
	return u
}

// AddCalidadEstimativa adds v to the "calidad_estimativa" field.
func (u *DocumentUpsert) AddCalidadEstimativa(v int) *DocumentUpsert {
	u.Add(document.FieldCalidadEstimativa, v)
	return u
}

// SetEstado sets the "estado" field.
func (u *DocumentUpsert) SetEstado(v constants.Estado) *DocumentUpsert {
	u.Set(document.FieldEstado, v)
	return u
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateEstado() *DocumentUpsert {
	u.SetExcluded(document.FieldEstado)
	return u
}

// AddEstado adds v to the "estado" field.
func (u *DocumentUpsert) AddEstado(v constants.Estado) *DocumentUpsert {
	u.Add(document.FieldEstado, v)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DocumentUpsert) SetDeletedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateDeletedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DocumentUpsert) ClearDeletedAt() *DocumentUpsert {
	u.SetNull(document.FieldDeletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsert) SetUpdatedAt(v time.Time) *DocumentUpsert {
	u.Set(document.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsert) UpdateUpdatedAt() *DocumentUpsert {
	u.SetExcluded(document.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocumentUpsertOne) UpdateNewValues() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(document.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DocumentUpsertOne) Ignore() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertOne) DoNothing() *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreate.OnConflict
// documentation for more info.
func (u *DocumentUpsertOne) Update(set func(*DocumentUpsert)) *DocumentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (u *DocumentUpsertOne) SetNombreArchivo(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetNombreArchivo(v)
	})
}

// UpdateNombreArchivo sets the "nombre_archivo" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateNombreArchivo() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateNombreArchivo()
	})
}

// SetArchivoPadre sets the "archivo_padre" field.
func (u *DocumentUpsertOne) SetArchivoPadre(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetArchivoPadre(v)
	})
}

// UpdateArchivoPadre sets the "archivo_padre" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateArchivoPadre() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateArchivoPadre()
	})
}

// ClearArchivoPadre clears the value of the "archivo_padre" field.
func (u *DocumentUpsertOne) ClearArchivoPadre() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearArchivoPadre()
	})
}

// SetHashArchivo sets the "hash_archivo" field.
func (u *DocumentUpsertOne) SetHashArchivo(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetHashArchivo(v)
	})
}

// UpdateHashArchivo sets the "hash_archivo" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateHashArchivo() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateHashArchivo()
	})
}

// SetTamanoBytes sets the "tamano_bytes" field.
func (u *DocumentUpsertOne) SetTamanoBytes(v int64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTamanoBytes(v)
	})
}

// AddTamanoBytes adds v to the "tamano_bytes" field.
func (u *DocumentUpsertOne) AddTamanoBytes(v int64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddTamanoBytes(v)
	})
}

// UpdateTamanoBytes sets the "tamano_bytes" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTamanoBytes() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTamanoBytes()
	})
}

// SetNumeroPaginas sets the "numero_paginas" field.
func (u *DocumentUpsertOne) SetNumeroPaginas(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetNumeroPaginas(v)
	})
}

// AddNumeroPaginas adds v to the "numero_paginas" field.
func (u *DocumentUpsertOne) AddNumeroPaginas(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddNumeroPaginas(v)
	})
}

// UpdateNumeroPaginas sets the "numero_paginas" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateNumeroPaginas() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateNumeroPaginas()
	})
}

// SetTipoDocumento sets the "tipo_documento" field.
func (u *DocumentUpsertOne) SetTipoDocumento(v string) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTipoDocumento(v)
	})
}

// UpdateTipoDocumento sets the "tipo_documento" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateTipoDocumento() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTipoDocumento()
	})
}

// SetResolucionPpi sets the "resolucion_ppi" field.
func (u *DocumentUpsertOne) SetResolucionPpi(v float64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetResolucionPpi(v)
	})
}

// AddResolucionPpi adds v to the "resolucion_ppi" field.
func (u *DocumentUpsertOne) AddResolucionPpi(v float64) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddResolucionPpi(v)
	})
}

// UpdateResolucionPpi sets the "resolucion_ppi" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateResolucionPpi() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateResolucionPpi()
	})
}

// SetCalidadEstimativa sets the "calidad_estimativa" field.
func (u *DocumentUpsertOne) SetCalidadEstimativa(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCalidadEstimativa(v)
	})
}

// AddCalidadEstimativa adds v to the "calidad_estimativa" field.
func (u *DocumentUpsertOne) AddCalidadEstimativa(v int) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddCalidadEstimativa(v)
	})
}

// UpdateCalidadEstimativa sets the "calidad_estimativa" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateCalidadEstimativa() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCalidadEstimativa()
	})
}

// SetEstado sets the "estado" field.
func (u *DocumentUpsertOne) SetEstado(v constants.Estado) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetEstado(v)
	})
}

// AddEstado adds v to the "estado" field.
func (u *DocumentUpsertOne) AddEstado(v constants.Estado) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.AddEstado(v)
	})
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateEstado() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateEstado()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DocumentUpsertOne) SetDeletedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateDeletedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DocumentUpsertOne) ClearDeletedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertOne) SetUpdatedAt(v time.Time) *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertOne) UpdateUpdatedAt() *DocumentUpsertOne {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DocumentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DocumentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DocumentCreateBulk is the builder for creating many Document entities in bulk.
type DocumentCreateBulk struct {
	config
	err      error
	builders []*DocumentCreate
	conflict []sql.ConflictOption
}

// Save creates the Document entities in the database.
func (_c *DocumentCreateBulk) Save(ctx context.Context) ([]*Document, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Document, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DocumentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DocumentCreateBulk) SaveX(ctx context.Context) []*Document {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DocumentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DocumentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Document.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DocumentUpsert) {
//			SetNombreArchivo(v+v).
//		}).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflict(opts ...sql.ConflictOption) *DocumentUpsertBulk {
	_c.conflict = opts
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DocumentCreateBulk) OnConflictColumns(columns ...string) *DocumentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DocumentUpsertBulk{
		create: _c,
	}
}

// DocumentUpsertBulk is the builder for "upsert"-ing
// a bulk of Document nodes.
type DocumentUpsertBulk struct {
	create *DocumentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *DocumentUpsertBulk) UpdateNewValues() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(document.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Document.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DocumentUpsertBulk) Ignore() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DocumentUpsertBulk) DoNothing() *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DocumentCreateBulk.OnConflict
// documentation for more info.
func (u *DocumentUpsertBulk) Update(set func(*DocumentUpsert)) *DocumentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DocumentUpsert{UpdateSet: update})
	}))
	return u
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (u *DocumentUpsertBulk) SetNombreArchivo(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetNombreArchivo(v)
	})
}

// UpdateNombreArchivo sets the "nombre_archivo" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateNombreArchivo() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateNombreArchivo()
	})
}

// SetArchivoPadre sets the "archivo_padre" field.
func (u *DocumentUpsertBulk) SetArchivoPadre(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetArchivoPadre(v)
	})
}

// UpdateArchivoPadre sets the "archivo_padre" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateArchivoPadre() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateArchivoPadre()
	})
}

// ClearArchivoPadre clears the value of the "archivo_padre" field.
func (u *DocumentUpsertBulk) ClearArchivoPadre() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearArchivoPadre()
	})
}

// SetHashArchivo sets the "hash_archivo" field.
func (u *DocumentUpsertBulk) SetHashArchivo(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetHashArchivo(v)
	})
}

// UpdateHashArchivo sets the "hash_archivo" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateHashArchivo() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateHashArchivo()
	})
}

// SetTamanoBytes sets the "tamano_bytes" field.
func (u *DocumentUpsertBulk) SetTamanoBytes(v int64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTamanoBytes(v)
	})
}

// AddTamanoBytes adds v to the "tamano_bytes" field.
func (u *DocumentUpsertBulk) AddTamanoBytes(v int64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddTamanoBytes(v)
	})
}

// UpdateTamanoBytes sets the "tamano_bytes" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTamanoBytes() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTamanoBytes()
	})
}

// SetNumeroPaginas sets the "numero_paginas" field.
func (u *DocumentUpsertBulk) SetNumeroPaginas(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetNumeroPaginas(v)
	})
}

// AddNumeroPaginas adds v to the "numero_paginas" field.
func (u *DocumentUpsertBulk) AddNumeroPaginas(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddNumeroPaginas(v)
	})
}

// UpdateNumeroPaginas sets the "numero_paginas" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateNumeroPaginas() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateNumeroPaginas()
	})
}

// SetTipoDocumento sets the "tipo_documento" field.
func (u *DocumentUpsertBulk) SetTipoDocumento(v string) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetTipoDocumento(v)
	})
}

// UpdateTipoDocumento sets the "tipo_documento" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateTipoDocumento() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateTipoDocumento()
	})
}

// SetResolucionPpi sets the "resolucion_ppi" field.
func (u *DocumentUpsertBulk) SetResolucionPpi(v float64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetResolucionPpi(v)
	})
}

// AddResolucionPpi adds v to the "resolucion_ppi" field.
func (u *DocumentUpsertBulk) AddResolucionPpi(v float64) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddResolucionPpi(v)
	})
}

// UpdateResolucionPpi sets the "resolucion_ppi" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateResolucionPpi() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateResolucionPpi()
	})
}

// SetCalidadEstimativa sets the "calidad_estimativa" field.
func (u *DocumentUpsertBulk) SetCalidadEstimativa(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetCalidadEstimativa(v)
	})
}

// AddCalidadEstimativa adds v to the "calidad_estimativa" field.
func (u *DocumentUpsertBulk) AddCalidadEstimativa(v int) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddCalidadEstimativa(v)
	})
}

// UpdateCalidadEstimativa sets the "calidad_estimativa" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateCalidadEstimativa() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateCalidadEstimativa()
	})
}

// SetEstado sets the "estado" field.
func (u *DocumentUpsertBulk) SetEstado(v constants.Estado) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetEstado(v)
	})
}

// AddEstado adds v to the "estado" field.
func (u *DocumentUpsertBulk) AddEstado(v constants.Estado) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.AddEstado(v)
	})
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateEstado() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateEstado()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *DocumentUpsertBulk) SetDeletedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateDeletedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *DocumentUpsertBulk) ClearDeletedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *DocumentUpsertBulk) SetUpdatedAt(v time.Time) *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *DocumentUpsertBulk) UpdateUpdatedAt() *DocumentUpsertBulk {
	return u.Update(func(s *DocumentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *DocumentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DocumentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DocumentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DocumentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
