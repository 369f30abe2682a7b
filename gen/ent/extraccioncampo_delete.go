// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/facturascan/pipeline/gen/ent/extraccioncampo"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// ExtraccionCampoDelete is the builder for deleting a ExtraccionCampo entity.
type ExtraccionCampoDelete struct {
	config
	hooks    []Hook
	mutation *ExtraccionCampoMutation
}

// Where appends a list predicates to the ExtraccionCampoDelete builder.
func (_d *ExtraccionCampoDelete) Where(ps ...predicate.ExtraccionCampo) *ExtraccionCampoDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ExtraccionCampoDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtraccionCampoDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ExtraccionCampoDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(extraccioncampo.Table, sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt))
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

// ExtraccionCampoDeleteOne is the builder for deleting a single ExtraccionCampo entity.
type ExtraccionCampoDeleteOne struct {
	_d *ExtraccionCampoDelete
}

// Where appends a list predicates to the ExtraccionCampoDelete builder.
func (_d *ExtraccionCampoDeleteOne) Where(ps ...predicate.ExtraccionCampo) *ExtraccionCampoDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ExtraccionCampoDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{extraccioncampo.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ExtraccionCampoDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
