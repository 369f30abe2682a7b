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
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
	"github.com/facturascan/pipeline/gen/ent/document"
)

// CampoConsolidadoCreate is the builder for creating a CampoConsolidado entity.
type CampoConsolidadoCreate struct {
	config
	mutation *CampoConsolidadoMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetDocumentoID sets the "documento_id" field.
func (_c *CampoConsolidadoCreate) SetDocumentoID(v int) *CampoConsolidadoCreate {
	_c.mutation.SetDocumentoID(v)
	return _c
}

// SetMetodo sets the "metodo" field.
func (_c *CampoConsolidadoCreate) SetMetodo(v string) *CampoConsolidadoCreate {
	_c.mutation.SetMetodo(v)
	return _c
}

// SetCampo sets the "campo" field.
func (_c *CampoConsolidadoCreate) SetCampo(v string) *CampoConsolidadoCreate {
	_c.mutation.SetCampo(v)
	return _c
}

// SetValor sets the "valor" field.
func (_c *CampoConsolidadoCreate) SetValor(v string) *CampoConsolidadoCreate {
	_c.mutation.SetValor(v)
	return _c
}

// SetNillableValor sets the "valor" field if the given value is not nil.
func (_c *CampoConsolidadoCreate) SetNillableValor(v *string) *CampoConsolidadoCreate {
	if v != nil {
		_c.SetValor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CampoConsolidadoCreate) SetCreatedAt(v time.Time) *CampoConsolidadoCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CampoConsolidadoCreate) SetNillableCreatedAt(v *time.Time) *CampoConsolidadoCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CampoConsolidadoCreate) SetUpdatedAt(v time.Time) *CampoConsolidadoCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CampoConsolidadoCreate) SetNillableUpdatedAt(v *time.Time) *CampoConsolidadoCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_c *CampoConsolidadoCreate) SetDocumento(v *Document) *CampoConsolidadoCreate {
	return _c.SetDocumentoID(v.ID)
}

// Mutation returns the CampoConsolidadoMutation object of the builder.
func (_c *CampoConsolidadoCreate) Mutation() *CampoConsolidadoMutation {
	return _c.mutation
}

// Save creates the CampoConsolidado in the database.
func (_c *CampoConsolidadoCreate) Save(ctx context.Context) (*CampoConsolidado, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CampoConsolidadoCreate) SaveX(ctx context.Context) *CampoConsolidado {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampoConsolidadoCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampoConsolidadoCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CampoConsolidadoCreate) defaults() {
	if _, ok := _c.mutation.Valor(); !ok {
		v := campoconsolidado.DefaultValor
		_c.mutation.SetValor(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := campoconsolidado.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := campoconsolidado.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CampoConsolidadoCreate) check() error {
	if _, ok := _c.mutation.DocumentoID(); !ok {
		return &ValidationError{Name: "documento_id", err: errors.New(`ent: missing required field "CampoConsolidado.documento_id"`)}
	}
	if _, ok := _c.mutation.Metodo(); !ok {
		return &ValidationError{Name: "metodo", err: errors.New(`ent: missing required field "CampoConsolidado.metodo"`)}
	}
	if v, ok := _c.mutation.Metodo(); ok {
		if err := campoconsolidado.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "CampoConsolidado.metodo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Campo(); !ok {
		return &ValidationError{Name: "campo", err: errors.New(`ent: missing required field "CampoConsolidado.campo"`)}
	}
	if v, ok := _c.mutation.Campo(); ok {
		if err := campoconsolidado.CampoValidator(v); err != nil {
			return &ValidationError{Name: "campo", err: fmt.Errorf(`ent: validator failed for field "CampoConsolidado.campo": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Valor(); !ok {
		return &ValidationError{Name: "valor", err: errors.New(`ent: missing required field "CampoConsolidado.valor"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CampoConsolidado.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CampoConsolidado.updated_at"`)}
	}
	if len(_c.mutation.DocumentoIDs()) == 0 {
		return &ValidationError{Name: "documento", err: errors.New(`ent: missing required edge "CampoConsolidado.documento"`)}
	}
	return nil
}

func (_c *CampoConsolidadoCreate) sqlSave(ctx context.Context) (*CampoConsolidado, error) {
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

func (_c *CampoConsolidadoCreate) createSpec() (*CampoConsolidado, *sqlgraph.CreateSpec) {
	var (
		_node = &CampoConsolidado{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(campoconsolidado.Table, sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Metodo(); ok {
		_spec.SetField(campoconsolidado.FieldMetodo, field.TypeString, value)
		_node.Metodo = value
	}
	if value, ok := _c.mutation.Campo(); ok {
		_spec.SetField(campoconsolidado.FieldCampo, field.TypeString, value)
		_node.Campo = value
	}
	if value, ok := _c.mutation.Valor(); ok {
		_spec.SetField(campoconsolidado.FieldValor, field.TypeString, value)
		_node.Valor = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(campoconsolidado.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(campoconsolidado.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.DocumentoIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   campoconsolidado.DocumentoTable,
			Columns: []string{campoconsolidado.DocumentoColumn},
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
//	client.CampoConsolidado.Create().
//		SetDocumentoID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CampoConsolidadoUpsert) {
//			SetDocumentoID(v+v).
//		}).
//		Exec(ctx)
func (_c *CampoConsolidadoCreate) OnConflict(opts ...sql.ConflictOption) *CampoConsolidadoUpsertOne {
	_c.conflict = opts
	return &CampoConsolidadoUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CampoConsolidado.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CampoConsolidadoCreate) OnConflictColumns(columns ...string) *CampoConsolidadoUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CampoConsolidadoUpsertOne{
		create: _c,
	}
}

type (
	// CampoConsolidadoUpsertOne is the builder for "upsert"-ing
	//  one CampoConsolidado node.
	CampoConsolidadoUpsertOne struct {
		create *CampoConsolidadoCreate
	}

	// CampoConsolidadoUpsert is the "OnConflict" setter.
	CampoConsolidadoUpsert struct {
		*sql.UpdateSet
	}
)

// SetDocumentoID sets the "documento_id" field.
func (u *CampoConsolidadoUpsert) SetDocumentoID(v int) *CampoConsolidadoUpsert {
	u.Set(campoconsolidado.FieldDocumentoID, v)
	return u
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *CampoConsolidadoUpsert) UpdateDocumentoID() *CampoConsolidadoUpsert {
	u.SetExcluded(campoconsolidado.FieldDocumentoID)
	return u
}

// SetMetodo sets the "metodo" field.
func (u *CampoConsolidadoUpsert) SetMetodo(v string) *CampoConsolidadoUpsert {
	u.Set(campoconsolidado.FieldMetodo, v)
	return u
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *CampoConsolidadoUpsert) UpdateMetodo() *CampoConsolidadoUpsert {
	u.SetExcluded(campoconsolidado.FieldMetodo)
	return u
}

// SetCampo sets the "campo" field.
func (u *CampoConsolidadoUpsert) SetCampo(v string) *CampoConsolidadoUpsert {
	u.Set(campoconsolidado.FieldCampo, v)
	return u
}

// UpdateCampo sets the "campo" field to the value that was provided on create.
func (u *CampoConsolidadoUpsert) UpdateCampo() *CampoConsolidadoUpsert {
	u.SetExcluded(campoconsolidado.FieldCampo)
	return u
}

// SetValor sets the "valor" field.
func (u *CampoConsolidadoUpsert) SetValor(v string) *CampoConsolidadoUpsert {
	u.Set(campoconsolidado.FieldValor, v)
	return u
}

// UpdateValor sets the "valor" field to the value that was provided on create.
func (u *CampoConsolidadoUpsert) UpdateValor() *CampoConsolidadoUpsert {
	u.SetExcluded(campoconsolidado.FieldValor)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CampoConsolidadoUpsert) SetUpdatedAt(v time.Time) *CampoConsolidadoUpsert {
	u.Set(campoconsolidado.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CampoConsolidadoUpsert) UpdateUpdatedAt() *CampoConsolidadoUpsert {
	u.SetExcluded(campoconsolidado.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CampoConsolidado.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CampoConsolidadoUpsertOne) UpdateNewValues() *CampoConsolidadoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(campoconsolidado.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CampoConsolidado.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CampoConsolidadoUpsertOne) Ignore() *CampoConsolidadoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CampoConsolidadoUpsertOne) DoNothing() *CampoConsolidadoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CampoConsolidadoCreate.OnConflict
// documentation for more info.
func (u *CampoConsolidadoUpsertOne) Update(set func(*CampoConsolidadoUpsert)) *CampoConsolidadoUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CampoConsolidadoUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentoID sets the "documento_id" field.
func (u *CampoConsolidadoUpsertOne) SetDocumentoID(v int) *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetDocumentoID(v)
	})
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertOne) UpdateDocumentoID() *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateDocumentoID()
	})
}

// SetMetodo sets the "metodo" field.
func (u *CampoConsolidadoUpsertOne) SetMetodo(v string) *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetMetodo(v)
	})
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertOne) UpdateMetodo() *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateMetodo()
	})
}

// SetCampo sets the "campo" field.
func (u *CampoConsolidadoUpsertOne) SetCampo(v string) *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetCampo(v)
	})
}

// UpdateCampo sets the "campo" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertOne) UpdateCampo() *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateCampo()
	})
}

// SetValor sets the "valor" field.
func (u *CampoConsolidadoUpsertOne) SetValor(v string) *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetValor(v)
	})
}

// UpdateValor sets the "valor" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertOne) UpdateValor() *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateValor()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CampoConsolidadoUpsertOne) SetUpdatedAt(v time.Time) *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertOne) UpdateUpdatedAt() *CampoConsolidadoUpsertOne {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CampoConsolidadoUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CampoConsolidadoCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CampoConsolidadoUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CampoConsolidadoUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CampoConsolidadoUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CampoConsolidadoCreateBulk is the builder for creating many CampoConsolidado entities in bulk.
type CampoConsolidadoCreateBulk struct {
	config
	err      error
	builders []*CampoConsolidadoCreate
	conflict []sql.ConflictOption
}

// Save creates the CampoConsolidado entities in the database.
func (_c *CampoConsolidadoCreateBulk) Save(ctx context.Context) ([]*CampoConsolidado, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CampoConsolidado, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CampoConsolidadoMutation)
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
func (_c *CampoConsolidadoCreateBulk) SaveX(ctx context.Context) []*CampoConsolidado {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CampoConsolidadoCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CampoConsolidadoCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CampoConsolidado.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CampoConsolidadoUpsert) {
//			SetDocumentoID(v+v).
//		}).
//		Exec(ctx)
func (_c *CampoConsolidadoCreateBulk) OnConflict(opts ...sql.ConflictOption) *CampoConsolidadoUpsertBulk {
	_c.conflict = opts
	return &CampoConsolidadoUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CampoConsolidado.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CampoConsolidadoCreateBulk) OnConflictColumns(columns ...string) *CampoConsolidadoUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CampoConsolidadoUpsertBulk{
		create: _c,
	}
}

// CampoConsolidadoUpsertBulk is the builder for "upsert"-ing
// a bulk of CampoConsolidado nodes.
type CampoConsolidadoUpsertBulk struct {
	create *CampoConsolidadoCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CampoConsolidado.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CampoConsolidadoUpsertBulk) UpdateNewValues() *CampoConsolidadoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(campoconsolidado.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CampoConsolidado.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CampoConsolidadoUpsertBulk) Ignore() *CampoConsolidadoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CampoConsolidadoUpsertBulk) DoNothing() *CampoConsolidadoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CampoConsolidadoCreateBulk.OnConflict
// documentation for more info.
func (u *CampoConsolidadoUpsertBulk) Update(set func(*CampoConsolidadoUpsert)) *CampoConsolidadoUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CampoConsolidadoUpsert{UpdateSet: update})
	}))
	return u
}

// SetDocumentoID sets the "documento_id" field.
func (u *CampoConsolidadoUpsertBulk) SetDocumentoID(v int) *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetDocumentoID(v)
	})
}

// UpdateDocumentoID sets the "documento_id" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertBulk) UpdateDocumentoID() *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateDocumentoID()
	})
}

// SetMetodo sets the "metodo" field.
func (u *CampoConsolidadoUpsertBulk) SetMetodo(v string) *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetMetodo(v)
	})
}

// UpdateMetodo sets the "metodo" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertBulk) UpdateMetodo() *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateMetodo()
	})
}

// SetCampo sets the "campo" field.
func (u *CampoConsolidadoUpsertBulk) SetCampo(v string) *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetCampo(v)
	})
}

// UpdateCampo sets the "campo" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertBulk) UpdateCampo() *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateCampo()
	})
}

// SetValor sets the "valor" field.
func (u *CampoConsolidadoUpsertBulk) SetValor(v string) *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetValor(v)
	})
}

// UpdateValor sets the "valor" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertBulk) UpdateValor() *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateValor()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *CampoConsolidadoUpsertBulk) SetUpdatedAt(v time.Time) *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *CampoConsolidadoUpsertBulk) UpdateUpdatedAt() *CampoConsolidadoUpsertBulk {
	return u.Update(func(s *CampoConsolidadoUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *CampoConsolidadoUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CampoConsolidadoCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CampoConsolidadoCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CampoConsolidadoUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
