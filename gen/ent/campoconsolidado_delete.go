// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// CampoConsolidadoDelete is the builder for deleting a CampoConsolidado entity.
type CampoConsolidadoDelete struct {
	config
	hooks    []Hook
	mutation *CampoConsolidadoMutation
}

// Where appends a list predicates to the CampoConsolidadoDelete builder.
func (_d *CampoConsolidadoDelete) Where(ps ...predicate.CampoConsolidado) *CampoConsolidadoDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CampoConsolidadoDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CampoConsolidadoDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CampoConsolidadoDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(campoconsolidado.Table, sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt))
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

// CampoConsolidadoDeleteOne is the builder for deleting a single CampoConsolidado entity.
type CampoConsolidadoDeleteOne struct {
	_d *CampoConsolidadoDelete
}

// Where appends a list predicates to the CampoConsolidadoDelete builder.
func (_d *CampoConsolidadoDeleteOne) Where(ps ...predicate.CampoConsolidado) *CampoConsolidadoDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CampoConsolidadoDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{campoconsolidado.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CampoConsolidadoDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
