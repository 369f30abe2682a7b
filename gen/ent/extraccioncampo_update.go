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
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// ExtraccionCampoUpdate is the builder for updating ExtraccionCampo entities.
type ExtraccionCampoUpdate struct {
	config
	hooks    []Hook
	mutation *ExtraccionCampoMutation
}

// Where appends a list predicates to the ExtraccionCampoUpdate builder.
func (_u *ExtraccionCampoUpdate) Where(ps ...predicate.ExtraccionCampo) *ExtraccionCampoUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocumentoID sets the "documento_id" field.
func (_u *ExtraccionCampoUpdate) SetDocumentoID(v int) *ExtraccionCampoUpdate {
	_u.mutation.SetDocumentoID(v)
	return _u
}

// SetNillableDocumentoID sets the "documento_id" field if the given value is not nil.
func (_u *ExtraccionCampoUpdate) SetNillableDocumentoID(v *int) *ExtraccionCampoUpdate {
	if v != nil {
		_u.SetDocumentoID(*v)
	}
	return _u
}

// SetMetodo sets the "metodo" field.
func (_u *ExtraccionCampoUpdate) SetMetodo(v string) *ExtraccionCampoUpdate {
	_u.mutation.SetMetodo(v)
	return _u
}

// SetNillableMetodo sets the "metodo" field if the given value is not nil.
func (_u *ExtraccionCampoUpdate) SetNillableMetodo(v *string) *ExtraccionCampoUpdate {
	if v != nil {
		_u.SetMetodo(*v)
	}
	return _u
}

// SetCampo sets the "campo" field.
func (_u *ExtraccionCampoUpdate) SetCampo(v string) *ExtraccionCampoUpdate {
	_u.mutation.SetCampo(v)
	return _u
}

// SetNillableCampo sets the "campo" field if the given value is not nil.
func (_u *ExtraccionCampoUpdate) SetNillableCampo(v *string) *ExtraccionCampoUpdate {
	if v != nil {
		_u.SetCampo(*v)
	}
	return _u
}

// SetValor sets the "valor" field.
func (_u *ExtraccionCampoUpdate) SetValor(v string) *ExtraccionCampoUpdate {
	_u.mutation.SetValor(v)
	return _u
}

// SetNillableValor sets the "valor" field if the given value is not nil.
func (_u *ExtraccionCampoUpdate) SetNillableValor(v *string) *ExtraccionCampoUpdate {
	if v != nil {
		_u.SetValor(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExtraccionCampoUpdate) SetScore(v float64) *ExtraccionCampoUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExtraccionCampoUpdate) SetNillableScore(v *float64) *ExtraccionCampoUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExtraccionCampoUpdate) AddScore(v float64) *ExtraccionCampoUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ExtraccionCampoUpdate) ClearScore() *ExtraccionCampoUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (_u *ExtraccionCampoUpdate) SetArchivoOrigen(v string) *ExtraccionCampoUpdate {
	_u.mutation.SetArchivoOrigen(v)
	return _u
}

// SetNillableArchivoOrigen sets the "archivo_origen" field if the given value is not nil.
func (_u *ExtraccionCampoUpdate) SetNillableArchivoOrigen(v *string) *ExtraccionCampoUpdate {
	if v != nil {
		_u.SetArchivoOrigen(*v)
	}
	return _u
}

// SetGeneracion sets the "generacion" field.
func (_u *ExtraccionCampoUpdate) SetGeneracion(v int) *ExtraccionCampoUpdate {
	_u.mutation.ResetGeneracion()
	_u.mutation.SetGeneracion(v)
	return _u
}

// SetNillableGeneracion sets the "generacion" field if the given value is not nil.
func (_u *ExtraccionCampoUpdate) SetNillableGeneracion(v *int) *ExtraccionCampoUpdate {
	if v != nil {
		_u.SetGeneracion(*v)
	}
	return _u
}

// AddGeneracion adds value to the "generacion" field.
func (_u *ExtraccionCampoUpdate) AddGeneracion(v int) *ExtraccionCampoUpdate {
	_u.mutation.AddGeneracion(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ExtraccionCampoUpdate) SetDeletedAt(v time.Time) *ExtraccionCampoUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ExtraccionCampoUpdate) SetNillableDeletedAt(v *time.Time) *ExtraccionCampoUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ExtraccionCampoUpdate) ClearDeletedAt() *ExtraccionCampoUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtraccionCampoUpdate) SetUpdatedAt(v time.Time) *ExtraccionCampoUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_u *ExtraccionCampoUpdate) SetDocumento(v *Document) *ExtraccionCampoUpdate {
	return _u.SetDocumentoID(v.ID)
}

// Mutation returns the ExtraccionCampoMutation object of the builder.
func (_u *ExtraccionCampoUpdate) Mutation() *ExtraccionCampoMutation {
	return _u.mutation
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (_u *ExtraccionCampoUpdate) ClearDocumento() *ExtraccionCampoUpdate {
	_u.mutation.ClearDocumento()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtraccionCampoUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtraccionCampoUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtraccionCampoUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtraccionCampoUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtraccionCampoUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extraccioncampo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtraccionCampoUpdate) check() error {
	if v, ok := _u.mutation.Metodo(); ok {
		if err := extraccioncampo.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.metodo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Campo(); ok {
		if err := extraccioncampo.CampoValidator(v); err != nil {
			return &ValidationError{Name: "campo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.campo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Generacion(); ok {
		if err := extraccioncampo.GeneracionValidator(v); err != nil {
			return &ValidationError{Name: "generacion", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.generacion": %w`, err)}
		}
	}
	if _u.mutation.DocumentoCleared() && len(_u.mutation.DocumentoIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtraccionCampo.documento"`)
	}
	return nil
}

func (_u *ExtraccionCampoUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraccioncampo.Table, extraccioncampo.Columns, sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metodo(); ok {
		_spec.SetField(extraccioncampo.FieldMetodo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Campo(); ok {
		_spec.SetField(extraccioncampo.FieldCampo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Valor(); ok {
		_spec.SetField(extraccioncampo.FieldValor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(extraccioncampo.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(extraccioncampo.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(extraccioncampo.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ArchivoOrigen(); ok {
		_spec.SetField(extraccioncampo.FieldArchivoOrigen, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generacion(); ok {
		_spec.SetField(extraccioncampo.FieldGeneracion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGeneracion(); ok {
		_spec.AddField(extraccioncampo.FieldGeneracion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(extraccioncampo.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(extraccioncampo.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extraccioncampo.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraccioncampo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtraccionCampoUpdateOne is the builder for updating a single ExtraccionCampo entity.
type ExtraccionCampoUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtraccionCampoMutation
}

// SetDocumentoID sets the "documento_id" field.
func (_u *ExtraccionCampoUpdateOne) SetDocumentoID(v int) *ExtraccionCampoUpdateOne {
	_u.mutation.SetDocumentoID(v)
	return _u
}

// SetNillableDocumentoID sets the "documento_id" field if the given value is not nil.
func (_u *ExtraccionCampoUpdateOne) SetNillableDocumentoID(v *int) *ExtraccionCampoUpdateOne {
	if v != nil {
		_u.SetDocumentoID(*v)
	}
	return _u
}

// SetMetodo sets the "metodo" field.
func (_u *ExtraccionCampoUpdateOne) SetMetodo(v string) *ExtraccionCampoUpdateOne {
	_u.mutation.SetMetodo(v)
	return _u
}

// SetNillableMetodo sets the "metodo" field if the given value is not nil.
func (_u *ExtraccionCampoUpdateOne) SetNillableMetodo(v *string) *ExtraccionCampoUpdateOne {
	if v != nil {
		_u.SetMetodo(*v)
	}
	return _u
}

// SetCampo sets the "campo" field.
func (_u *ExtraccionCampoUpdateOne) SetCampo(v string) *ExtraccionCampoUpdateOne {
	_u.mutation.SetCampo(v)
	return _u
}

// SetNillableCampo sets the "campo" field if the given value is not nil.
func (_u *ExtraccionCampoUpdateOne) SetNillableCampo(v *string) *ExtraccionCampoUpdateOne {
	if v != nil {
		_u.SetCampo(*v)
	}
	return _u
}

// SetValor sets the "valor" field.
func (_u *ExtraccionCampoUpdateOne) SetValor(v string) *ExtraccionCampoUpdateOne {
	_u.mutation.SetValor(v)
	return _u
}

// SetNillableValor sets the "valor" field if the given value is not nil.
func (_u *ExtraccionCampoUpdateOne) SetNillableValor(v *string) *ExtraccionCampoUpdateOne {
	if v != nil {
		_u.SetValor(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *ExtraccionCampoUpdateOne) SetScore(v float64) *ExtraccionCampoUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *ExtraccionCampoUpdateOne) SetNillableScore(v *float64) *ExtraccionCampoUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *ExtraccionCampoUpdateOne) AddScore(v float64) *ExtraccionCampoUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *ExtraccionCampoUpdateOne) ClearScore() *ExtraccionCampoUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (_u *ExtraccionCampoUpdateOne) SetArchivoOrigen(v string) *ExtraccionCampoUpdateOne {
	_u.mutation.SetArchivoOrigen(v)
	return _u
}

// SetNillableArchivoOrigen sets the "archivo_origen" field if the given value is not nil.
func (_u *ExtraccionCampoUpdateOne) SetNillableArchivoOrigen(v *string) *ExtraccionCampoUpdateOne {
	if v != nil {
		_u.SetArchivoOrigen(*v)
	}
	return _u
}

// SetGeneracion sets the "generacion" field.
func (_u *ExtraccionCampoUpdateOne) SetGeneracion(v int) *ExtraccionCampoUpdateOne {
	_u.mutation.ResetGeneracion()
	_u.mutation.SetGeneracion(v)
	return _u
}

// SetNillableGeneracion sets the "generacion" field if the given value is not nil.
func (_u *ExtraccionCampoUpdateOne) SetNillableGeneracion(v *int) *ExtraccionCampoUpdateOne {
	if v != nil {
		_u.SetGeneracion(*v)
	}
	return _u
}

// AddGeneracion adds value to the "generacion" field.
func (_u *ExtraccionCampoUpdateOne) AddGeneracion(v int) *ExtraccionCampoUpdateOne {
	_u.mutation.AddGeneracion(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *ExtraccionCampoUpdateOne) SetDeletedAt(v time.Time) *ExtraccionCampoUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *ExtraccionCampoUpdateOne) SetNillableDeletedAt(v *time.Time) *ExtraccionCampoUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *ExtraccionCampoUpdateOne) ClearDeletedAt() *ExtraccionCampoUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtraccionCampoUpdateOne) SetUpdatedAt(v time.Time) *ExtraccionCampoUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDocumento sets the "documento" edge to the Document entity.
func (_u *ExtraccionCampoUpdateOne) SetDocumento(v *Document) *ExtraccionCampoUpdateOne {
	return _u.SetDocumentoID(v.ID)
}

// Mutation returns the ExtraccionCampoMutation object of the builder.
func (_u *ExtraccionCampoUpdateOne) Mutation() *ExtraccionCampoMutation {
	return _u.mutation
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (_u *ExtraccionCampoUpdateOne) ClearDocumento() *ExtraccionCampoUpdateOne {
	_u.mutation.ClearDocumento()
	return _u
}

// Where appends a list predicates to the ExtraccionCampoUpdate builder.
func (_u *ExtraccionCampoUpdateOne) Where(ps ...predicate.ExtraccionCampo) *ExtraccionCampoUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtraccionCampoUpdateOne) Select(field string, fields ...string) *ExtraccionCampoUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtraccionCampo entity.
func (_u *ExtraccionCampoUpdateOne) Save(ctx context.Context) (*ExtraccionCampo, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtraccionCampoUpdateOne) SaveX(ctx context.Context) *ExtraccionCampo {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtraccionCampoUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtraccionCampoUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtraccionCampoUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extraccioncampo.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtraccionCampoUpdateOne) check() error {
	if v, ok := _u.mutation.Metodo(); ok {
		if err := extraccioncampo.MetodoValidator(v); err != nil {
			return &ValidationError{Name: "metodo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.metodo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Campo(); ok {
		if err := extraccioncampo.CampoValidator(v); err != nil {
			return &ValidationError{Name: "campo", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.campo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Generacion(); ok {
		if err := extraccioncampo.GeneracionValidator(v); err != nil {
			return &ValidationError{Name: "generacion", err: fmt.Errorf(`ent: validator failed for field "ExtraccionCampo.generacion": %w`, err)}
		}
	}
	if _u.mutation.DocumentoCleared() && len(_u.mutation.DocumentoIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtraccionCampo.documento"`)
	}
	return nil
}

func (_u *ExtraccionCampoUpdateOne) sqlSave(ctx context.Context) (_node *ExtraccionCampo, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extraccioncampo.Table, extraccioncampo.Columns, sqlgraph.NewFieldSpec(extraccioncampo.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtraccionCampo.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extraccioncampo.FieldID)
		for _, f := range fields {
			if !extraccioncampo.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extraccioncampo.FieldID {
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
		_spec.SetField(extraccioncampo.FieldMetodo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Campo(); ok {
		_spec.SetField(extraccioncampo.FieldCampo, field.TypeString, value)
	}
	if value, ok := _u.mutation.Valor(); ok {
		_spec.SetField(extraccioncampo.FieldValor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(extraccioncampo.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(extraccioncampo.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(extraccioncampo.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ArchivoOrigen(); ok {
		_spec.SetField(extraccioncampo.FieldArchivoOrigen, field.TypeString, value)
	}
	if value, ok := _u.mutation.Generacion(); ok {
		_spec.SetField(extraccioncampo.FieldGeneracion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGeneracion(); ok {
		_spec.AddField(extraccioncampo.FieldGeneracion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(extraccioncampo.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(extraccioncampo.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extraccioncampo.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.DocumentoCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DocumentoIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtraccionCampo{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extraccioncampo.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
