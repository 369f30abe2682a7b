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
	"github.com/facturascan/pipeline/gen/ent/extracciontexto"
)

// ExtraccionTextoCreate is the builder for creating a ExtraccionTexto entity.
type ExtraccionTextoCreate struct {
	config
	mutation *ExtraccionTextoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentoID sets the "documento_id" field.
func (_c *ExtraccionTextoCreate) SetDocumentoID(v int) *ExtraccionTextoCreate {
	_c.mutation.SetDocumentoID(v)
	return _c
}

// SetMetodo sets the "metodo" field.
func (_c *ExtraccionTextoCreate) SetMetodo(v string) *ExtraccionTextoCreate {
	_c.mutation.SetMetodo(v)
	return _c
}

// SetTextoExtraccion sets the "texto_extraccion" field.
func (_c *ExtraccionTextoCreate) SetTextoExtraccion(v string) *ExtraccionTextoCreate {
	_c.mutation.SetTextoExtraccion(v)
	return _c
}

// SetNillableTextoExtraccion sets the "texto_extraccion" field if the given value is not nil.
func (_c *ExtraccionTextoCreate) SetNillableTextoExtraccion(v *string) *ExtraccionTextoCreate {
	if v != nil {
		_c.SetTextoExtraccion(*v)
	}
	return _c
}

// SetEntropia sets the "entropia" field.
func (_c *ExtraccionTextoCreate) SetEntropia(v float64) *ExtraccionTextoCreate {
	_c.mutation.SetEntropia(v)
	return _c
}

// SetNillableEntropia sets the "entropia" field if the given value is not nil.
func (_c *ExtraccionTextoCreate) SetNillableEntropia(v *float64) *ExtraccionTextoCreate {
	if v != nil {
		_c.SetEntropia(*v)
	}
	return _c
}

// SetEstado sets the "estado" field.
func (_c *ExtraccionTextoCreate) SetEstado(v int) *ExtraccionTextoCreate {
	_c.mutation.SetEstado(v)
	return _c
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_c *ExtraccionTextoCreate) SetNillableEstado(v *int) *ExtraccionTextoCreate {
	if v != nil {
		_c.SetEstado(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *ExtraccionTextoCreate) SetDeletedAt(v time.Time) *ExtraccionTextoCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *ExtraccionTextoCreate) SetNillableDeletedAt(v *time.Time) *ExtraccionTextoCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtraccionTextoCreate) SetCreatedAt(v time.Time) *ExtraccionTextoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtraccionTextoCreate) SetNillableCreatedAt(v *time.Time) *ExtraccionTextoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtraccionTextoCreate) SetUpdatedAt(v time.Time) *ExtraccionTextoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtraccionTextoCreate) SetNillableUpdatedAt(v *time.Time) *ExtraccionTextoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_c *ExtraccionTextoCreate) SetDocumento(v *Document) *ExtraccionTextoCreate {
	return _c.SetDocumentoID(v.ID)
}

// Mutation returns the ExtraccionTextoMutation object of the builder.
func (_c *ExtraccionTextoCreate) Mutation() *ExtraccionTextoMutation {
	return _c.mutation
}

// Save creates the ExtraccionTexto in the database.
func (_c *ExtraccionTextoCreate) Save(ctx context.Context) (*ExtraccionTexto, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtraccionTextoCreate) SaveX(ctx context.Context) *ExtraccionTexto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtraccionTextoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtraccionTextoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtraccionTextoCreate) defaults() {
	if _, ok := _c.mutation.TextoExtraccion(); !ok {
		v := extracciontexto.DefaultTextoExtraccion
		_c.mutation.SetTextoExtraccion(v)
	}
	if _, ok := _c.mutation.Entropia(); !ok {
		v := extracciontexto.DefaultEntropia
		_c.mutation.SetEntropia(v)
	}
	if _, ok := _c.mutation.Estado(); !ok {
		v := extracciontexto.DefaultEstado
		_c.mutation.SetEstado(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extracciontexto.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extracciontexto.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtraccionTextoCreate) check() error {
	if _, ok := _c.mutation.DocumentoID(); !ok {
		return &ValidationError{Name: "documento_id", err: errors.New(`ent: missing required field "ExtraccionTexto.documento_id"`)}
	}
	if _, ok := _c.mutation.Metodo(); !ok {
		return &ValidationError{Name: "metodo", err: errors.New(`ent: missing required field "ExtraccionTexto.metodo"`)}
	}
	if v, ok := _c.mutation.Metodo(); ok {
		if err := extracciontexto.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionTexto.metodo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TextoExtraccion(); !ok {
		return &ValidationError{Name: "texto_extraccion", err: errors.New(`ent: missing required field "ExtraccionTexto.texto_extraccion"`)}
	}
	if _, ok := _c.mutation.Entropia(); !ok {
		return &ValidationError{Name: "entropia", err: errors.New(`ent: missing required field "ExtraccionTexto.entropia"`)}
	}
	if _, ok := _c.mutation.Estado(); !ok {
		return &ValidationError{Name: "estado", err: errors.New(`ent: missing required field "ExtraccionTexto.estado"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtraccionTexto.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtraccionTexto.updated_at"`)}
	}
	if len(_c.mutation.DocumentoIDs()) == 0 {
		return &ValidationError{Name: "documento", err: errors.New(`ent: missing required edge "ExtraccionTexto.documento"`)}
	}
	return nil
}

func (_c *ExtraccionTextoCreate) sqlSave(ctx context.Context) (*ExtraccionTexto, error) {
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

func (_c *ExtraccionTextoCreate) createSpec() (*ExtraccionTexto, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtraccionTexto{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extracciontexto.Table, sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Metodo(); ok {
		_spec.SetField(extracciontexto.FieldMetodo, field.TypeString, value)
		_node.Metodo = value
	}
	if value, ok := _c.mutation.TextoExtraccion(); ok {
		_spec.SetField(extracciontexto.FieldTextoExtraccion, field.TypeString, value)
		_node.TextoExtraccion = value
	}
	if value, ok := _c.mutation.Entropia(); ok {
		_spec.SetField(extracciontexto.FieldEntropia, field.TypeFloat64, value)
		_node.Entropia = value
	}
	if value, ok := _c.mutation.Estado(); ok {
		_spec.SetField(extracciontexto.FieldEstado, field.TypeInt, value)
		_node.Estado = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(extracciontexto.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extracciontexto.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extracciontexto.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extracciontexto.DocumentoTable,
			Columns: []string{extracciontexto.DocumentoColumn},
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
//	client.ExtraccionTexto.Create().
//		SetDocumentoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtraccionTextoUpsert) {
//			SetDocumentoID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtraccionTextoCreate) OnConflict(opts ...sql.ConflictOption) *ExtraccionTextoUpsertOne {
	_c.conflict = opts
	return &ExtraccionTextoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtraccionTexto.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtraccionTextoCreate) OnConflictColumns(columns ...string) *ExtraccionTextoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtraccionTextoUpsertOne{
		create: _c,
	}
}

type (
	// ExtraccionTextoUpsertOne is the builder for "upsert"-ing
	//  one ExtraccionTexto node.
	ExtraccionTextoUpsertOne struct {
		create *ExtraccionTextoCreate
	}

	// ExtraccionTextoUpsert is the "OnConflict" setter.
	ExtraccionTextoUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentoID sets the "documento_id" field.
func (u *ExtraccionTextoUpsert) SetDocumentoID(v int) *ExtraccionTextoUpsert {
	u.Set(extracciontexto.FieldDocumentoID, v)
	return u
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *ExtraccionTextoUpsert) UpdateDocumentoID() *ExtraccionTextoUpsert {
	u.SetExcluded(extracciontexto.FieldDocumentoID)
	return u
}

// SetMetodo sets the "metodo" field.
func (u *ExtraccionTextoUpsert) SetMetodo(v string) *ExtraccionTextoUpsert {
	u.Set(extracciontexto.FieldMetodo, v)
	return u
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *ExtraccionTextoUpsert) UpdateMetodo() *ExtraccionTextoUpsert {
	u.SetExcluded(extracciontexto.FieldMetodo)
	return u
}

// SetTextoExtraccion sets the "texto_extraccion" field.
func (u *ExtraccionTextoUpsert) SetTextoExtraccion(v string) *ExtraccionTextoUpsert {
	u.Set(extracciontexto.FieldTextoExtraccion, v)
	return u
}

// UpdateTextoExtraccion sets the "texto_extraccion" field to the value that was provided on create.
func (u *ExtraccionTextoUpsert) UpdateTextoExtraccion() *ExtraccionTextoUpsert {
	u.SetExcluded(extracciontexto.FieldTextoExtraccion)
	return u
}

// SetEntropia sets the "entropia" field.
func (u *ExtraccionTextoUpsert) SetEntropia(v float64) *ExtraccionTextoUpsert {
	u.Set(extracciontexto.FieldEntropia, v)
	return u
}

// UpdateEntropia sets the "entropia" field to the value that was provided on create.
func (u *ExtraccionTextoUpsert) UpdateEntropia() *ExtraccionTextoUpsert {
	u.SetExcluded(extracciontexto.FieldEntropia)
	return u
}

// AddEntropia adds v to the "entropia" field.
func (u *ExtraccionTextoUpsert) AddEntropia(v float64) *ExtraccionTextoUpsert {
	u.Add(extracciontexto.FieldEntropia, v)
	return u
}

// SetEstado sets the "estado" field.
func (u *ExtraccionTextoUpsert) SetEstado(v int) *ExtraccionTextoUpsert {
	u.Set(extracciontexto.FieldEstado, v)
	return u
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *ExtraccionTextoUpsert) UpdateEstado() *ExtraccionTextoUpsert {
	u.SetExcluded(extracciontexto.FieldEstado)
	return u
}

// AddEstado adds v to the "estado" field.
func (u *ExtraccionTextoUpsert) AddEstado(v int) *ExtraccionTextoUpsert {
	u.Add(extracciontexto.FieldEstado, v)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExtraccionTextoUpsert) SetDeletedAt(v time.Time) *ExtraccionTextoUpsert {
	u.Set(extracciontexto.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExtraccionTextoUpsert) UpdateDeletedAt() *ExtraccionTextoUpsert {
	u.SetExcluded(extracciontexto.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExtraccionTextoUpsert) ClearDeletedAt() *ExtraccionTextoUpsert {
	u.SetNull(extracciontexto.FieldDeletedAt)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtraccionTextoUpsert) SetUpdatedAt(v time.Time) *ExtraccionTextoUpsert {
	u.Set(extracciontexto.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtraccionTextoUpsert) UpdateUpdatedAt() *ExtraccionTextoUpsert {
	u.SetExcluded(extracciontexto.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExtraccionTexto.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtraccionTextoUpsertOne) UpdateNewValues() *ExtraccionTextoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(extracciontexto.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtraccionTexto.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtraccionTextoUpsertOne) Ignore() *ExtraccionTextoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtraccionTextoUpsertOne) DoNothing() *ExtraccionTextoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtraccionTextoCreate.OnConflict
// documentation for more info.
func (u *ExtraccionTextoUpsertOne) Update(set func(*ExtraccionTextoUpsert)) *ExtraccionTextoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtraccionTextoUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentoID sets the "documento_id" field.
func (u *ExtraccionTextoUpsertOne) SetDocumentoID(v int) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetDocumentoID(v)
	})
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertOne) UpdateDocumentoID() *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateDocumentoID()
	})
}

// SetMetodo sets the "metodo" field.
func (u *ExtraccionTextoUpsertOne) SetMetodo(v string) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetMetodo(v)
	})
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertOne) UpdateMetodo() *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateMetodo()
	})
}

// SetTextoExtraccion sets the "texto_extraccion" field.
func (u *ExtraccionTextoUpsertOne) SetTextoExtraccion(v string) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetTextoExtraccion(v)
	})
}

// UpdateTextoExtraccion sets the "texto_extraccion" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertOne) UpdateTextoExtraccion() *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateTextoExtraccion()
	})
}

// SetEntropia sets the "entropia" field.
func (u *ExtraccionTextoUpsertOne) SetEntropia(v float64) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetEntropia(v)
	})
}

// AddEntropia adds v to the "entropia" field.
func (u *ExtraccionTextoUpsertOne) AddEntropia(v float64) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.AddEntropia(v)
	})
}

// UpdateEntropia sets the "entropia" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertOne) UpdateEntropia() *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateEntropia()
	})
}

// SetEstado sets the "estado" field.
func (u *ExtraccionTextoUpsertOne) SetEstado(v int) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetEstado(v)
	})
}

// AddEstado adds v to the "estado" field.
func (u *ExtraccionTextoUpsertOne) AddEstado(v int) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.AddEstado(v)
	})
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertOne) UpdateEstado() *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateEstado()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExtraccionTextoUpsertOne) SetDeletedAt(v time.Time) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertOne) UpdateDeletedAt() *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExtraccionTextoUpsertOne) ClearDeletedAt() *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtraccionTextoUpsertOne) SetUpdatedAt(v time.Time) *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertOne) UpdateUpdatedAt() *ExtraccionTextoUpsertOne {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtraccionTextoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtraccionTextoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtraccionTextoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtraccionTextoUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtraccionTextoUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtraccionTextoCreateBulk is the builder for creating many ExtraccionTexto entities in bulk.
type ExtraccionTextoCreateBulk struct {
	config
	err      error
	builders []*ExtraccionTextoCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtraccionTexto entities in the database.
func (_c *ExtraccionTextoCreateBulk) Save(ctx context.Context) ([]*ExtraccionTexto, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtraccionTexto, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtraccionTextoMutation)
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
func (_c *ExtraccionTextoCreateBulk) SaveX(ctx context.Context) []*ExtraccionTexto {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtraccionTextoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtraccionTextoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtraccionTexto.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtraccionTextoUpsert) {
//			SetDocumentoID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtraccionTextoCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtraccionTextoUpsertBulk {
	_c.conflict = opts
	return &ExtraccionTextoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtraccionTexto.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtraccionTextoCreateBulk) OnConflictColumns(columns ...string) *ExtraccionTextoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtraccionTextoUpsertBulk{
		create: _c,
	}
}

// ExtraccionTextoUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtraccionTexto nodes.
type ExtraccionTextoUpsertBulk struct {
	create *ExtraccionTextoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtraccionTexto.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtraccionTextoUpsertBulk) UpdateNewValues() *ExtraccionTextoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(extracciontexto.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtraccionTexto.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtraccionTextoUpsertBulk) Ignore() *ExtraccionTextoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtraccionTextoUpsertBulk) DoNothing() *ExtraccionTextoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtraccionTextoCreateBulk.OnConflict
// documentation for more info.
func (u *ExtraccionTextoUpsertBulk) Update(set func(*ExtraccionTextoUpsert)) *ExtraccionTextoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtraccionTextoUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentoID sets the "documento_id" field.
func (u *ExtraccionTextoUpsertBulk) SetDocumentoID(v int) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetDocumentoID(v)
	})
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertBulk) UpdateDocumentoID() *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateDocumentoID()
	})
}

// SetMetodo sets the "metodo" field.
func (u *ExtraccionTextoUpsertBulk) SetMetodo(v string) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetMetodo(v)
	})
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertBulk) UpdateMetodo() *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateMetodo()
	})
}

// SetTextoExtraccion sets the "texto_extraccion" field.
func (u *ExtraccionTextoUpsertBulk) SetTextoExtraccion(v string) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetTextoExtraccion(v)
	})
}

// UpdateTextoExtraccion sets the "texto_extraccion" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertBulk) UpdateTextoExtraccion() *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateTextoExtraccion()
	})
}

// SetEntropia sets the "entropia" field.
func (u *ExtraccionTextoUpsertBulk) SetEntropia(v float64) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetEntropia(v)
	})
}

// AddEntropia adds v to the "entropia" field.
func (u *ExtraccionTextoUpsertBulk) AddEntropia(v float64) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.AddEntropia(v)
	})
}

// UpdateEntropia sets the "entropia" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertBulk) UpdateEntropia() *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateEntropia()
	})
}

// SetEstado sets the "estado" field.
func (u *ExtraccionTextoUpsertBulk) SetEstado(v int) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetEstado(v)
	})
}

// AddEstado adds v to the "estado" field.
func (u *ExtraccionTextoUpsertBulk) AddEstado(v int) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.AddEstado(v)
	})
}

// UpdateEstado sets the "estado" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertBulk) UpdateEstado() *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateEstado()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *ExtraccionTextoUpsertBulk) SetDeletedAt(v time.Time) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertBulk) UpdateDeletedAt() *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *ExtraccionTextoUpsertBulk) ClearDeletedAt() *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.ClearDeletedAt()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ExtraccionTextoUpsertBulk) SetUpdatedAt(v time.Time) *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ExtraccionTextoUpsertBulk) UpdateUpdatedAt() *ExtraccionTextoUpsertBulk {
	return u.Update(func(s *ExtraccionTextoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ExtraccionTextoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtraccionTextoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtraccionTextoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtraccionTextoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
