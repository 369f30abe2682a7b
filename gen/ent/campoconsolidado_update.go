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
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// CampoConsolidadoUpdate is the builder for updating CampoConsolidado entities.
type CampoConsolidadoUpdate struct {
	config
	hooks    []Hook
	mutation *CampoConsolidadoMutation
}

// Where appends a list predicates to the CampoConsolidadoUpdate builder.
func (_u *CampoConsolidadoUpdate) Where(ps ...predicate.CampoConsolidado) *CampoConsolidadoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentoID sets the "documento_id" field.
func (_u *CampoConsolidadoUpdate) SetDocumentoID(v int) *CampoConsolidadoUpdate {
	_u.mutation.SetDocumentoID(v)
	return _u
}

// SetNillableDocumentoID sets the "documento_id" field if the given value is not nil.
func (_u *CampoConsolidadoUpdate) SetNillableDocumentoID(v *int) *CampoConsolidadoUpdate {
	if v != nil {
		_u.SetDocumentoID(*v)
	}
	return _u
}

// SetMetodo sets the "metodo" field.
func (_u *CampoConsolidadoUpdate) SetMetodo(v string) *CampoConsolidadoUpdate {
	_u.mutation.SetMetodo(v)
	return _u
}

// SetNillableMetodo sets the "metodo" field if the given value is not nil.
func (_u *CampoConsolidadoUpdate) SetNillableMetodo(v *string) *CampoConsolidadoUpdate {
	if v != nil {
		_u.SetMetodo(*v)
	}
	return _u
}

// SetCampo sets the "campo" field.
func (_u *CampoConsolidadoUpdate) SetCampo(v string) *CampoConsolidadoUpdate {
	_u.mutation.SetCampo(v)
	return _u
}

// SetNillableCampo sets the "campo" field if the given value is not nil.
func (_u *CampoConsolidadoUpdate) SetNillableCampo(v *string) *CampoConsolidadoUpdate {
	if v != nil {
		_u.SetCampo(*v)
	}
	return _u
}

// SetValor sets the "valor" field.
func (_u *CampoConsolidadoUpdate) SetValor(v string) *CampoConsolidadoUpdate {
	_u.mutation.SetValor(v)
	return _u
}

// SetNillableValor sets the "valor" field if the given value is not nil.
func (_u *CampoConsolidadoUpdate) SetNillableValor(v *string) *CampoConsolidadoUpdate {
	if v != nil {
		_u.SetValor(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampoConsolidadoUpdate) SetUpdatedAt(v time.Time) *CampoConsolidadoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_u *CampoConsolidadoUpdate) SetDocumento(v *Document) *CampoConsolidadoUpdate {
	return _u.SetDocumentoID(v.ID)
}

// Mutation returns the CampoConsolidadoMutation object of the builder.
func (_u *CampoConsolidadoUpdate) Mutation() *CampoConsolidadoMutation {
	return _u.mutation
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (_u *CampoConsolidadoUpdate) ClearDocumento() *CampoConsolidadoUpdate {
	_u.mutation.ClearDocumento()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CampoConsolidadoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampoConsolidadoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CampoConsolidadoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampoConsolidadoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampoConsolidadoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campoconsolidado.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampoConsolidadoUpdate) check() error {
	if v, ok := _u.mutation.Metodo(); ok {
		if err := campoconsolidado.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "CampoConsolidado.metodo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Campo(); ok {
		if err := campoconsolidado.CampoValidator(v); err != nil {
			return &ValidationError{Name: "campo", err: fmt.Errorf(`ent: validator failed for field "CampoConsolidado.campo": %w`, err)}
		}
	}
	if _u.mutation.DocumentoCleared() && len(_u.mutation.DocumentoIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampoConsolidado.documento"`)
	}
	return nil
}

func (_u *CampoConsolidadoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campoconsolidado.Table, campoconsolidado.Columns, sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metodo(); ok {
		_spec.SetField(campoconsolidado.FieldMetodo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Campo(); ok {
		_spec.SetField(campoconsolidado.FieldCampo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Valor(); ok {
		_spec.SetField(campoconsolidado.FieldValor, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campoconsolidado.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campoconsolidado.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CampoConsolidadoUpdateOne is the builder for updating a single CampoConsolidado entity.
type CampoConsolidadoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CampoConsolidadoMutation
}

// SetDocumentoID sets the "documento_id" field.
func (_u *CampoConsolidadoUpdateOne) SetDocumentoID(v int) *CampoConsolidadoUpdateOne {
	_u.mutation.SetDocumentoID(v)
	return _u
}

// SetNillableDocumentoID sets the "documento_id" field if the given value is not nil.
func (_u *CampoConsolidadoUpdateOne) SetNillableDocumentoID(v *int) *CampoConsolidadoUpdateOne {
	if v != nil {
		_u.SetDocumentoID(*v)
	}
	return _u
}

// SetMetodo sets the "metodo" field.
func (_u *CampoConsolidadoUpdateOne) SetMetodo(v string) *CampoConsolidadoUpdateOne {
	_u.mutation.SetMetodo(v)
	return _u
}

// SetNillableMetodo sets the "metodo" field if the given value is not nil.
func (_u *CampoConsolidadoUpdateOne) SetNillableMetodo(v *string) *CampoConsolidadoUpdateOne {
	if v != nil {
		_u.SetMetodo(*v)
	}
	return _u
}

// SetCampo sets the "campo" field.
func (_u *CampoConsolidadoUpdateOne) SetCampo(v string) *CampoConsolidadoUpdateOne {
	_u.mutation.SetCampo(v)
	return _u
}

// SetNillableCampo sets the "campo" field if the given value is not nil.
func (_u *CampoConsolidadoUpdateOne) SetNillableCampo(v *string) *CampoConsolidadoUpdateOne {
	if v != nil {
		_u.SetCampo(*v)
	}
	return _u
}

// SetValor sets the "valor" field.
func (_u *CampoConsolidadoUpdateOne) SetValor(v string) *CampoConsolidadoUpdateOne {
	_u.mutation.SetValor(v)
	return _u
}

// SetNillableValor sets the "valor" field if the given value is not nil.
func (_u *CampoConsolidadoUpdateOne) SetNillableValor(v *string) *CampoConsolidadoUpdateOne {
	if v != nil {
		_u.SetValor(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CampoConsolidadoUpdateOne) SetUpdatedAt(v time.Time) *CampoConsolidadoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_u *CampoConsolidadoUpdateOne) SetDocumento(v *Document) *CampoConsolidadoUpdateOne {
	return _u.SetDocumentoID(v.ID)
}

// Mutation returns the CampoConsolidadoMutation object of the builder.
func (_u *CampoConsolidadoUpdateOne) Mutation() *CampoConsolidadoMutation {
	return _u.mutation
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (_u *CampoConsolidadoUpdateOne) ClearDocumento() *CampoConsolidadoUpdateOne {
	_u.mutation.ClearDocumento()
	return _u
}

// Where appends a list predicates to the CampoConsolidadoUpdate builder.
func (_u *CampoConsolidadoUpdateOne) Where(ps ...predicate.CampoConsolidado) *CampoConsolidadoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CampoConsolidadoUpdateOne) Select(field string, fields ...string) *CampoConsolidadoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CampoConsolidado entity.
func (_u *CampoConsolidadoUpdateOne) Save(ctx context.Context) (*CampoConsolidado, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CampoConsolidadoUpdateOne) SaveX(ctx context.Context) *CampoConsolidado {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CampoConsolidadoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CampoConsolidadoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CampoConsolidadoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := campoconsolidado.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CampoConsolidadoUpdateOne) check() error {
	if v, ok := _u.mutation.Metodo(); ok {
		if err := campoconsolidado.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "CampoConsolidado.metodo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Campo(); ok {
		if err := campoconsolidado.CampoValidator(v); err != nil {
			return &ValidationError{Name: "campo", err: fmt.Errorf(`ent: validator failed for field "CampoConsolidado.campo": %w`, err)}
		}
	}
	if _u.mutation.DocumentoCleared() && len(_u.mutation.DocumentoIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CampoConsolidado.documento"`)
	}
	return nil
}

func (_u *CampoConsolidadoUpdateOne) sqlSave(ctx context.Context) (_node *CampoConsolidado, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(campoconsolidado.Table, campoconsolidado.Columns, sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CampoConsolidado.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campoconsolidado.FieldID)
		for _, f := range fields {
			if !campoconsolidado.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != campoconsolidado.FieldID {
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
		_spec.SetField(campoconsolidado.FieldMetodo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Campo(); ok {
		_spec.SetField(campoconsolidado.FieldCampo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Valor(); ok {
		_spec.SetField(campoconsolidado.FieldValor, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(campoconsolidado.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &CampoConsolidado{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{campoconsolidado.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
