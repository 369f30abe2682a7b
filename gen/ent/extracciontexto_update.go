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
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// ExtraccionTextoUpdate is the builder for updating ExtraccionTexto entities.
type ExtraccionTextoUpdate struct {
	config
	hooks    []Hook
	mutation *ExtraccionTextoMutation
}

// Where appends a list predicates to the ExtraccionTextoUpdate builder.
func (_u *ExtraccionTextoUpdate) Where(ps ...predicate.ExtraccionTexto) *ExtraccionTextoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentoID sets the "documento_id" field.
func (_u *ExtraccionTextoUpdate) SetDocumentoID(v int) *ExtraccionTextoUpdate {
	_u.mutation.SetDocumentoID(v)
	return _u
}

// SetNillableDocumentoID sets the "documento_id" field if the given value is not nil.
func (_u *ExtraccionTextoUpdate) SetNillableDocumentoID(v *int) *ExtraccionTextoUpdate {
	if v != nil {
		_u.SetDocumentoID(*v)
	}
	return _u
}

// SetMetodo sets the "metodo" field.
func (_u *ExtraccionTextoUpdate) SetMetodo(v string) *ExtraccionTextoUpdate {
	_u.mutation.SetMetodo(v)
	return _u
}

// SetNillableMetodo sets the "metodo" field if the given value is not nil.
func (_u *ExtraccionTextoUpdate) SetNillableMetodo(v *string) *ExtraccionTextoUpdate {
	if v != nil {
		_u.SetMetodo(*v)
	}
	return _u
}

// SetTextoExtraccion sets the "texto_extraccion" field.
func (_u *ExtraccionTextoUpdate) SetTextoExtraccion(v string) *ExtraccionTextoUpdate {
	_u.mutation.SetTextoExtraccion(v)
	return _u
}

// SetNillableTextoExtraccion sets the "texto_extraccion" field if the given value is not nil.
func (_u *ExtraccionTextoUpdate) SetNillableTextoExtraccion(v *string) *ExtraccionTextoUpdate {
	if v != nil {
		_u.SetTextoExtraccion(*v)
	}
	return _u
}

// SetEntropia sets the "entropia" field.
func (_u *ExtraccionTextoUpdate) SetEntropia(v float64) *ExtraccionTextoUpdate {
	_u.mutation.ResetEntropia()
	_u.mutation.SetEntropia(v)
	return _u
}

// SetNillableEntropia sets the "entropia" field if the given value is not nil.
func (_u *ExtraccionTextoUpdate) SetNillableEntropia(v *float64) *ExtraccionTextoUpdate {
	if v != nil {
		_u.SetEntropia(*v)
	}
	return _u
}

// AddEntropia adds value to the "entropia" field.
func (_u *ExtraccionTextoUpdate) AddEntropia(v float64) *ExtraccionTextoUpdate {
	_u.mutation.AddEntropia(v)
	return _u
}

// SetEstado sets the "estado" field.
func (_u *ExtraccionTextoUpdate) SetEstado(v int) *ExtraccionTextoUpdate {
	_u.mutation.ResetEstado()
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *ExtraccionTextoUpdate) SetNillableEstado(v *int) *ExtraccionTextoUpdate {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// AddEstado adds value to the "estado" field.
func (_u *ExtraccionTextoUpdate) AddEstado(v int) *ExtraccionTextoUpdate {
	_u.mutation.AddEstado(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ExtraccionTextoUpdate) SetDeletedAt(v time.Time) *ExtraccionTextoUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ExtraccionTextoUpdate) SetNillableDeletedAt(v *time.Time) *ExtraccionTextoUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ExtraccionTextoUpdate) ClearDeletedAt() *ExtraccionTextoUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtraccionTextoUpdate) SetUpdatedAt(v time.Time) *ExtraccionTextoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_u *ExtraccionTextoUpdate) SetDocumento(v *Document) *ExtraccionTextoUpdate {
	return _u.SetDocumentoID(v.ID)
}

// Mutation returns the ExtraccionTextoMutation object of the builder.
func (_u *ExtraccionTextoUpdate) Mutation() *ExtraccionTextoMutation {
	return _u.mutation
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (_u *ExtraccionTextoUpdate) ClearDocumento() *ExtraccionTextoUpdate {
	_u.mutation.ClearDocumento()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtraccionTextoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtraccionTextoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtraccionTextoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtraccionTextoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtraccionTextoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extracciontexto.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtraccionTextoUpdate) check() error {
	if v, ok := _u.mutation.Metodo(); ok {
		if err := extracciontexto.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionTexto.metodo": %w`, err)}
		}
	}
	if _u.mutation.DocumentoCleared() && len(_u.mutation.DocumentoIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtraccionTexto.documento"`)
	}
	return nil
}

func (_u *ExtraccionTextoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracciontexto.Table, extracciontexto.Columns, sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metodo(); ok {
		_spec.SetField(extracciontexto.FieldMetodo, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextoExtraccion(); ok {
		_spec.SetField(extracciontexto.FieldTextoExtraccion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entropia(); ok {
		_spec.SetField(extracciontexto.FieldEntropia, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEntropia(); ok {
		_spec.AddField(extracciontexto.FieldEntropia, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(extracciontexto.FieldEstado, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstado(); ok {
		_spec.AddField(extracciontexto.FieldEstado, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(extracciontexto.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(extracciontexto.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extracciontexto.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracciontexto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtraccionTextoUpdateOne is the builder for updating a single ExtraccionTexto entity.
type ExtraccionTextoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtraccionTextoMutation
}

// SetDocumentoID sets the "documento_id" field.
func (_u *ExtraccionTextoUpdateOne) SetDocumentoID(v int) *ExtraccionTextoUpdateOne {
	_u.mutation.SetDocumentoID(v)
	return _u
}

// SetNillableDocumentoID sets the "documento_id" field if the given value is not nil.
func (_u *ExtraccionTextoUpdateOne) SetNillableDocumentoID(v *int) *ExtraccionTextoUpdateOne {
	if v != nil {
		_u.SetDocumentoID(*v)
	}
	return _u
}

// SetMetodo sets the "metodo" field.
func (_u *ExtraccionTextoUpdateOne) SetMetodo(v string) *ExtraccionTextoUpdateOne {
	_u.mutation.SetMetodo(v)
	return _u
}

// SetNillableMetodo sets the "metodo" field if the given value is not nil.
func (_u *ExtraccionTextoUpdateOne) SetNillableMetodo(v *string) *ExtraccionTextoUpdateOne {
	if v != nil {
		_u.SetMetodo(*v)
	}
	return _u
}

// SetTextoExtraccion sets the "texto_extraccion" field.
func (_u *ExtraccionTextoUpdateOne) SetTextoExtraccion(v string) *ExtraccionTextoUpdateOne {
	_u.mutation.SetTextoExtraccion(v)
	return _u
}

// SetNillableTextoExtraccion sets the "texto_extraccion" field if the given value is not nil.
func (_u *ExtraccionTextoUpdateOne) SetNillableTextoExtraccion(v *string) *ExtraccionTextoUpdateOne {
	if v != nil {
		_u.SetTextoExtraccion(*v)
	}
	return _u
}

// SetEntropia sets the "entropia" field.
func (_u *ExtraccionTextoUpdateOne) SetEntropia(v float64) *ExtraccionTextoUpdateOne {
	_u.mutation.ResetEntropia()
	_u.mutation.SetEntropia(v)
	return _u
}

// SetNillableEntropia sets the "entropia" field if the given value is not nil.
func (_u *ExtraccionTextoUpdateOne) SetNillableEntropia(v *float64) *ExtraccionTextoUpdateOne {
	if v != nil {
		_u.SetEntropia(*v)
	}
	return _u
}

// AddEntropia adds value to the "entropia" field.
func (_u *ExtraccionTextoUpdateOne) AddEntropia(v float64) *ExtraccionTextoUpdateOne {
	_u.mutation.AddEntropia(v)
	return _u
}

// SetEstado sets the "estado" field.
func (_u *ExtraccionTextoUpdateOne) SetEstado(v int) *ExtraccionTextoUpdateOne {
	_u.mutation.ResetEstado()
	_u.mutation.SetEstado(v)
	return _u
}

// SetNillableEstado sets the "estado" field if the given value is not nil.
func (_u *ExtraccionTextoUpdateOne) SetNillableEstado(v *int) *ExtraccionTextoUpdateOne {
	if v != nil {
		_u.SetEstado(*v)
	}
	return _u
}

// AddEstado adds value to the "estado" field.
func (_u *ExtraccionTextoUpdateOne) AddEstado(v int) *ExtraccionTextoUpdateOne {
	_u.mutation.AddEstado(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ExtraccionTextoUpdateOne) SetDeletedAt(v time.Time) *ExtraccionTextoUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ExtraccionTextoUpdateOne) SetNillableDeletedAt(v *time.Time) *ExtraccionTextoUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ExtraccionTextoUpdateOne) ClearDeletedAt() *ExtraccionTextoUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtraccionTextoUpdateOne) SetUpdatedAt(v time.Time) *ExtraccionTextoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_u *ExtraccionTextoUpdateOne) SetDocumento(v *Document) *ExtraccionTextoUpdateOne {
	return _u.SetDocumentoID(v.ID)
}

// Mutation returns the ExtraccionTextoMutation object of the builder.
func (_u *ExtraccionTextoUpdateOne) Mutation() *ExtraccionTextoMutation {
	return _u.mutation
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (_u *ExtraccionTextoUpdateOne) ClearDocumento() *ExtraccionTextoUpdateOne {
	_u.mutation.ClearDocumento()
	return _u
}

// Where appends a list predicates to the ExtraccionTextoUpdate builder.
func (_u *ExtraccionTextoUpdateOne) Where(ps ...predicate.ExtraccionTexto) *ExtraccionTextoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtraccionTextoUpdateOne) Select(field string, fields ...string) *ExtraccionTextoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtraccionTexto entity.
func (_u *ExtraccionTextoUpdateOne) Save(ctx context.Context) (*ExtraccionTexto, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtraccionTextoUpdateOne) SaveX(ctx context.Context) *ExtraccionTexto {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtraccionTextoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtraccionTextoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtraccionTextoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extracciontexto.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtraccionTextoUpdateOne) check() error {
	if v, ok := _u.mutation.Metodo(); ok {
		if err := extracciontexto.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionTexto.metodo": %w`, err)}
		}
	}
	if _u.mutation.DocumentoCleared() && len(_u.mutation.DocumentoIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtraccionTexto.documento"`)
	}
	return nil
}

func (_u *ExtraccionTextoUpdateOne) sqlSave(ctx context.Context) (_node *ExtraccionTexto, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extracciontexto.Table, extracciontexto.Columns, sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtraccionTexto.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extracciontexto.FieldID)
		for _, f := range fields {
			if !extracciontexto.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extracciontexto.FieldID {
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
	if value, ok := _u.mutation.Metodo(); ok {
		_spec.SetField(extracciontexto.FieldMetodo, field.TypeString, value)
	}
	if value, ok := _u.mutation.TextoExtraccion(); ok {
		_spec.SetField(extracciontexto.FieldTextoExtraccion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Entropia(); ok {
		_spec.SetField(extracciontexto.FieldEntropia, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEntropia(); ok {
		_spec.AddField(extracciontexto.FieldEntropia, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Estado(); ok {
		_spec.SetField(extracciontexto.FieldEstado, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstado(); ok {
		_spec.AddField(extracciontexto.FieldEstado, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(extracciontexto.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(extracciontexto.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extracciontexto.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtraccionTexto{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extracciontexto.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
