// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/facturascan/pipeline/gen/ent/extracciontexto"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// ExtraccionTextoDelete is the builder for deleting a ExtraccionTexto entity.
type ExtraccionTextoDelete struct {
	config
	hooks    []Hook
	mutation *ExtraccionTextoMutation
}

// Where appends a list predicates to the ExtraccionTextoDelete builder.
func (_d *ExtraccionTextoDelete) Where(ps ...predicate.ExtraccionTexto) *ExtraccionTextoDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtraccionTextoDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtraccionTextoDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtraccionTextoDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extracciontexto.Table, sqlgraph.NewFieldSpec(extracciontexto.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ExtraccionTextoDeleteOne is the builder for deleting a single ExtraccionTexto entity.
type ExtraccionTextoDeleteOne struct {
	_d *ExtraccionTextoDelete
}

// Where appends a list predicates to the ExtraccionTextoDelete builder.
func (_d *ExtraccionTextoDeleteOne) Where(ps ...predicate.ExtraccionTexto) *ExtraccionTextoDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtraccionTextoDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extracciontexto.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtraccionTextoDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
