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
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/gen/ent/extraccioncampo"
)

// ExtraccionCampoCreate is the builder for creating a ExtraccionCampo entity.
type ExtraccionCampoCreate struct {
	config
	mutation *ExtraccionCampoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentoID sets the "documento_id" field.
func (_c *ExtraccionCampoCreate) SetDocumentoID(v int) *ExtraccionCampoCreate {
	_c.mutation.SetDocumentoID(v)
	return _c
}

// SetMetodo sets the "metodo" field.
func (_c *ExtraccionCampoCreate) SetMetodo(v string) *ExtraccionCampoCreate {
	_c.mutation.SetMetodo(v)
	return _c
}

// SetCampo sets the "campo" field.
func (_c *ExtraccionCampoCreate) SetCampo(v string) *ExtraccionCampoCreate {
	_c.mutation.SetCampo(v)
	return _c
}

// SetValor sets the "valor" field.
func (_c *ExtraccionCampoCreate) SetValor(v string) *ExtraccionCampoCreate {
	_c.mutation.SetValor(v)
	return _c
}

// SetNillableValor sets the "valor" field if the given value is not nil.
func (_c *ExtraccionCampoCreate) SetNillableValor(v *string) *ExtraccionCampoCreate {
	if v != nil {
		_c.SetValor(*v)
	}
	return _c
}

// SetScore sets the "score" field.
func (_c *ExtraccionCampoCreate) SetScore(v float64) *ExtraccionCampoCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *ExtraccionCampoCreate) SetNillableScore(v *float64) *ExtraccionCampoCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (_c *ExtraccionCampoCreate) SetArchivoOrigen(v string) *ExtraccionCampoCreate {
	_c.mutation.SetArchivoOrigen(v)
	return _c
}

// SetNillableArchivoOrigen sets the "archivo_origen" field if the given value is not nil.
func (_c *ExtraccionCampoCreate) SetNillableArchivoOrigen(v *string) *ExtraccionCampoCreate {
	if v != nil {
		_c.SetArchivoOrigen(*v)
	}
	return _c
}

// SetGeneracion sets the "generacion" field.
func (_c *ExtraccionCampoCreate) SetGeneracion(v int) *ExtraccionCampoCreate {
	_c.mutation.SetGeneracion(v)
	return _c
}

// SetNillableGeneracion sets the "generacion" field if the given value is not nil.
func (_c *ExtraccionCampoCreate) SetNillableGeneracion(v *int) *ExtraccionCampoCreate {
	if v != nil {
		_c.SetGeneracion(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ExtraccionCampoCreate) SetDeletedAt(v time.Time) *ExtraccionCampoCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ExtraccionCampoCreate) SetNillableDeletedAt(v *time.Time) *ExtraccionCampoCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtraccionCampoCreate) SetCreatedAt(v time.Time) *ExtraccionCampoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtraccionCampoCreate) SetNillableCreatedAt(v *time.Time) *ExtraccionCampoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtraccionCampoCreate) SetUpdatedAt(v time.Time) *ExtraccionCampoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtraccionCampoCreate) SetNillableUpdatedAt(v *time.Time) *ExtraccionCampoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_c *ExtraccionCampoCreate) SetDocumento(v *Document) *ExtraccionCampoCreate {
	return _c.SetDocumentoID(v.ID)
}

// Mutation returns the ExtraccionCampoMutation object of the builder.
func (_c *ExtraccionCampoCreate) Mutation() *ExtraccionCampoMutation {
	return _c.mutation
}

// Save creates the ExtraccionCampo in the database.
func (_c *ExtraccionCampoCreate) Save(ctx context.Context) (*ExtraccionCampo, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtraccionCampoCreate) SaveX(ctx context.Context) *ExtraccionCampo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtraccionCampoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtraccionCampoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtraccionCampoCreate) defaults() {
	if _, ok := _c.mutation.Valor(); !ok {
		v := extraccioncampo.DefaultValor
		_c.mutation.SetValor(v)
	}
	if _, ok := _c.mutation.ArchivoOrigen(); !ok {
		v := extraccioncampo.DefaultArchivoOrigen
		_c.mutation.SetArchivoOrigen(v)
	}
	if _, ok := _c.mutation.Generacion(); !ok {
		v := extraccioncampo.DefaultGeneracion
		_c.mutation.SetGeneracion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extraccioncampo.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extraccioncampo.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtraccionCampoCreate) check() error {
	if _, ok := _c.mutation.DocumentoID(); !ok {
		return &ValidationError{Name: "documento_id", err: errors.New(`ent: missing required field "ExtraccionCampo.documento_id"`)}
	}
	if _, ok := _c.mutation.Metodo(); !ok {
		return &ValidationError{Name: "metodo", err: errors.New(`ent: missing required field "ExtraccionCampo.metodo"`)}
	}
	if v, ok := _c.mutation.Metodo(); ok {
		if err := extraccioncampo.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.metodo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Campo(); !ok {
		return &ValidationError{Name: "campo", err: errors.New(`ent: missing required field "ExtraccionCampo.campo"`)}
	}
	if v, ok := _c.mutation.Campo(); ok {
		if err := extraccioncampo.CampoValidator(v); err != nil {
			return &ValidationError{Name: "campo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.campo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Valor(); !ok {
		return &ValidationError{Name: "valor", err: errors.New(`ent: missing required field "ExtraccionCampo.valor"`)}
	}
	if _, ok := _c.mutation.ArchivoOrigen(); !ok {
		return &ValidationError{Name: "archivo_origen", err: errors.New(`ent: missing required field "ExtraccionCampo.archivo_origen"`)}
	}
	if _, ok := _c.mutation.Generacion(); !ok {
		return &ValidationError{Name: "generacion", err: errors.New(`ent: missing required field "ExtraccionCampo.generacion"`)}
	}
	if v, ok := _c.mutation.Generacion(); ok {
		if err := extraccioncampo.GeneracionValidator(v); err != nil {
			return &ValidationError{Name: "generacion", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.generacion": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtraccionCampo.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtraccionCampo.updated_at"`)}
	}
	if len(_c.mutation.DocumentoIDs()) == 0 {
		return &ValidationError{Name: "documento", err: errors.New(`ent: missing required edge "ExtraccionCampo.documento"`)}
	}
	return nil
}

func (_c *ExtraccionCampoCreate) sqlSave(ctx context.Context) (*ExtraccionCampo, error) {
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

func (_c *ExtraccionCampoCreate) createSpec() (*ExtraccionCampo, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtraccionCampo{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extraccioncampo.Table, sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Metodo(); ok {
		_spec.SetField(extraccioncampo.FieldMetodo, field.TypeString, value)
		_node.Metodo = value
	}
	if value, ok := _c.mutation.Campo(); ok {
		_spec.SetField(extraccioncampo.FieldCampo, field.TypeString, value)
		_node.Campo = value
	}
	if value, ok := _c.mutation.Valor(); ok {
		_spec.SetField(extraccioncampo.FieldValor, field.TypeString, value)
		_node.Valor = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(extraccioncampo.FieldScore, field.TypeFloat64, value)
		_node.Score = &value
	}
	if value, ok := _c.mutation.ArchivoOrigen(); ok {
		_spec.SetField(extraccioncampo.FieldArchivoOrigen, field.TypeString, value)
		_node.ArchivoOrigen = value
	}
	if value, ok := _c.mutation.Generacion(); ok {
		_spec.SetField(extraccioncampo.FieldGeneracion, field.TypeInt, value)
		_node.Generacion = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(extraccioncampo.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extraccioncampo.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extraccioncampo.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extraccioncampo.DocumentoTable,
			Columns: []string{extraccioncampo.DocumentoColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(document.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.DocumentoID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtraccionCampo.Create().
//		SetDocumentoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtraccionCampoUpsert) {
//			SetDocumentoID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtraccionCampoCreate) OnConflict(opts ...sql.ConflictOption) *ExtraccionCampoUpsertOne {
	_c.conflict = opts
	return &ExtraccionCampoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtraccionCampo.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtraccionCampoCreate) OnConflictColumns(columns ...string) *ExtraccionCampoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtraccionCampoUpsertOne{
		create: _c,
	}
}

type (
	// ExtraccionCampoUpsertOne is the builder for "upsert"-ing
	//  one ExtraccionCampo node.
	ExtraccionCampoUpsertOne struct {
		create *ExtraccionCampoCreate
	}

	// ExtraccionCampoUpsert is the "OnConflict" setter.
	ExtraccionCampoUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentoID sets the "documento_id" field.
func (u *ExtraccionCampoUpsert) SetDocumentoID(v int) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldDocumentoID, v)
	return u
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateDocumentoID() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldDocumentoID)
	return u
}

// SetMetodo sets the "metodo" field.
func (u *ExtraccionCampoUpsert) SetMetodo(v string) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldMetodo, v)
	return u
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateMetodo() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldMetodo)
	return u
}

// SetCampo sets the "campo" field.
func (u *ExtraccionCampoUpsert) SetCampo(v string) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldCampo, v)
	return u
}

// UpdateCampo sets the "campo" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateCampo() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldCampo)
	return u
}

// SetValor sets the "valor" field.
func (u *ExtraccionCampoUpsert) SetValor(v string) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldValor, v)
	return u
}

// UpdateValor sets the "valor" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateValor() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldValor)
	return u
}

// SetScore sets the "score" field.
func (u *ExtraccionCampoUpsert) SetScore(v float64) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldScore, v)
	return u
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateScore() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldScore)
	return u
}

// AddScore adds v to the "score" field.
func (u *ExtraccionCampoUpsert) AddScore(v float64) *ExtraccionCampoUpsert {
	u.Add(extraccioncampo.FieldScore, v)
	return u
}

// ClearScore clears the value of the "score" field.
func (u *ExtraccionCampoUpsert) ClearScore() *ExtraccionCampoUpsert {
	u.SetNull(extraccioncampo.FieldScore)
	return u
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (u *ExtraccionCampoUpsert) SetArchivoOrigen(v string) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldArchivoOrigen, v)
	return u
}

// UpdateArchivoOrigen sets the "archivo_origen" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateArchivoOrigen() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldArchivoOrigen)
	return u
}

// SetGeneracion sets the "generacion" field.
func (u *ExtraccionCampoUpsert) SetGeneracion(v int) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldGeneracion, v)
	return u
}

// UpdateGeneracion sets the "generacion" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateGeneracion() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldGeneracion)
	return u
}

// AddGeneracion adds v to the "generacion" field.
func (u *ExtraccionCampoUpsert) AddGeneracion(v int) *ExtraccionCampoUpsert {
	u.Add(extraccioncampo.FieldGeneracion, v)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExtraccionCampoUpsert) SetDeletedAt(v time.Time) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateDeletedAt() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExtraccionCampoUpsert) ClearDeletedAt() *ExtraccionCampoUpsert {
	u.SetNull(extraccioncampo.FieldDeletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtraccionCampoUpsert) SetUpdatedAt(v time.Time) *ExtraccionCampoUpsert {
	u.Set(extraccioncampo.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtraccionCampoUpsert) UpdateUpdatedAt() *ExtraccionCampoUpsert {
	u.SetExcluded(extraccioncampo.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExtraccionCampo.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtraccionCampoUpsertOne) UpdateNewValues() *ExtraccionCampoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extraccioncampo.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtraccionCampo.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtraccionCampoUpsertOne) Ignore() *ExtraccionCampoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtraccionCampoUpsertOne) DoNothing() *ExtraccionCampoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtraccionCampoCreate.OnConflict
// documentation for more info.
func (u *ExtraccionCampoUpsertOne) Update(set func(*ExtraccionCampoUpsert)) *ExtraccionCampoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtraccionCampoUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentoID sets the "documento_id" field.
func (u *ExtraccionCampoUpsertOne) SetDocumentoID(v int) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetDocumentoID(v)
	})
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateDocumentoID() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateDocumentoID()
	})
}

// SetMetodo sets the "metodo" field.
func (u *ExtraccionCampoUpsertOne) SetMetodo(v string) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetMetodo(v)
	})
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateMetodo() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateMetodo()
	})
}

// SetCampo sets the "campo" field.
func (u *ExtraccionCampoUpsertOne) SetCampo(v string) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetCampo(v)
	})
}

// UpdateCampo sets the "campo" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateCampo() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateCampo()
	})
}

// SetValor sets the "valor" field.
func (u *ExtraccionCampoUpsertOne) SetValor(v string) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetValor(v)
	})
}

// UpdateValor sets the "valor" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateValor() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateValor()
	})
}

// SetScore sets the "score" field.
func (u *ExtraccionCampoUpsertOne) SetScore(v float64) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ExtraccionCampoUpsertOne) AddScore(v float64) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateScore() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *ExtraccionCampoUpsertOne) ClearScore() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.ClearScore()
	})
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (u *ExtraccionCampoUpsertOne) SetArchivoOrigen(v string) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetArchivoOrigen(v)
	})
}

// UpdateArchivoOrigen sets the "archivo_origen" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateArchivoOrigen() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateArchivoOrigen()
	})
}

// SetGeneracion sets the "generacion" field.
func (u *ExtraccionCampoUpsertOne) SetGeneracion(v int) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetGeneracion(v)
	})
}

// AddGeneracion adds v to the "generacion" field.
func (u *ExtraccionCampoUpsertOne) AddGeneracion(v int) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.AddGeneracion(v)
	})
}

// UpdateGeneracion sets the "generacion" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateGeneracion() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateGeneracion()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExtraccionCampoUpsertOne) SetDeletedAt(v time.Time) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateDeletedAt() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExtraccionCampoUpsertOne) ClearDeletedAt() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtraccionCampoUpsertOne) SetUpdatedAt(v time.Time) *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertOne) UpdateUpdatedAt() *ExtraccionCampoUpsertOne {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtraccionCampoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtraccionCampoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtraccionCampoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtraccionCampoUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtraccionCampoUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtraccionCampoCreateBulk is the builder for creating many ExtraccionCampo entities in bulk.
type ExtraccionCampoCreateBulk struct {
	config
	err      error
	builders []*ExtraccionCampoCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtraccionCampo entities in the database.
func (_c *ExtraccionCampoCreateBulk) Save(ctx context.Context) ([]*ExtraccionCampo, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtraccionCampo, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtraccionCampoMutation)
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
func (_c *ExtraccionCampoCreateBulk) SaveX(ctx context.Context) []*ExtraccionCampo {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtraccionCampoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtraccionCampoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtraccionCampo.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtraccionCampoUpsert) {
//			SetDocumentoID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtraccionCampoCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtraccionCampoUpsertBulk {
	_c.conflict = opts
	return &ExtraccionCampoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtraccionCampo.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtraccionCampoCreateBulk) OnConflictColumns(columns ...string) *ExtraccionCampoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtraccionCampoUpsertBulk{
		create: _c,
	}
}

// ExtraccionCampoUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtraccionCampo nodes.
type ExtraccionCampoUpsertBulk struct {
	create *ExtraccionCampoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtraccionCampo.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtraccionCampoUpsertBulk) UpdateNewValues() *ExtraccionCampoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extraccioncampo.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtraccionCampo.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtraccionCampoUpsertBulk) Ignore() *ExtraccionCampoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtraccionCampoUpsertBulk) DoNothing() *ExtraccionCampoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtraccionCampoCreateBulk.OnConflict
// documentation for more info.
func (u *ExtraccionCampoUpsertBulk) Update(set func(*ExtraccionCampoUpsert)) *ExtraccionCampoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtraccionCampoUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentoID sets the "documento_id" field.
func (u *ExtraccionCampoUpsertBulk) SetDocumentoID(v int) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetDocumentoID(v)
	})
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateDocumentoID() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateDocumentoID()
	})
}

// SetMetodo sets the "metodo" field.
func (u *ExtraccionCampoUpsertBulk) SetMetodo(v string) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetMetodo(v)
	})
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateMetodo() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateMetodo()
	})
}

// SetCampo sets the "campo" field.
func (u *ExtraccionCampoUpsertBulk) SetCampo(v string) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetCampo(v)
	})
}

// UpdateCampo sets the "campo" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateCampo() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateCampo()
	})
}

// SetValor sets the "valor" field.
func (u *ExtraccionCampoUpsertBulk) SetValor(v string) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetValor(v)
	})
}

// UpdateValor sets the "valor" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateValor() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateValor()
	})
}

// SetScore sets the "score" field.
func (u *ExtraccionCampoUpsertBulk) SetScore(v float64) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetScore(v)
	})
}

// AddScore adds v to the "score" field.
func (u *ExtraccionCampoUpsertBulk) AddScore(v float64) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.AddScore(v)
	})
}

// UpdateScore sets the "score" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateScore() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateScore()
	})
}

// ClearScore clears the value of the "score" field.
func (u *ExtraccionCampoUpsertBulk) ClearScore() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.ClearScore()
	})
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (u *ExtraccionCampoUpsertBulk) SetArchivoOrigen(v string) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetArchivoOrigen(v)
	})
}

// UpdateArchivoOrigen sets the "archivo_origen" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateArchivoOrigen() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateArchivoOrigen()
	})
}

// SetGeneracion sets the "generacion" field.
func (u *ExtraccionCampoUpsertBulk) SetGeneracion(v int) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetGeneracion(v)
	})
}

// AddGeneracion adds v to the "generacion" field.
func (u *ExtraccionCampoUpsertBulk) AddGeneracion(v int) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.AddGeneracion(v)
	})
}

// UpdateGeneracion sets the "generacion" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateGeneracion() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateGeneracion()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExtraccionCampoUpsertBulk) SetDeletedAt(v time.Time) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateDeletedAt() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExtraccionCampoUpsertBulk) ClearDeletedAt() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtraccionCampoUpsertBulk) SetUpdatedAt(v time.Time) *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtraccionCampoUpsertBulk) UpdateUpdatedAt() *ExtraccionCampoUpsertBulk {
	return u.Update(func(s *ExtraccionCampoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtraccionCampoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtraccionCampoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtraccionCampoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtraccionCampoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
