// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

// CampoConsolidadoQuery is the builder for querying CampoConsolidado entities.
type CampoConsolidadoQuery struct {
	config
	ctx           *QueryContext
	order         []campoconsolidado.OrderOption
	inters        []Interceptor
	predicates    []predicate.CampoConsolidado
	withDocumento *DocumentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CampoConsolidadoQuery builder.
func (_q *CampoConsolidadoQuery) Where(ps ...predicate.CampoConsolidado) *CampoConsolidadoQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CampoConsolidadoQuery) Limit(limit int) *CampoConsolidadoQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CampoConsolidadoQuery) Offset(offset int) *CampoConsolidadoQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CampoConsolidadoQuery) Unique(unique bool) *CampoConsolidadoQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CampoConsolidadoQuery) Order(o ...campoconsolidado.OrderOption) *CampoConsolidadoQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDocumento chains the current query on the "documento" edge.
func (_q *CampoConsolidadoQuery) QueryDocumento() *DocumentQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(campoconsolidado.Table, campoconsolidado.FieldID, selector),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, campoconsolidado.DocumentoTable, campoconsolidado.DocumentoColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CampoConsolidado entity from the query.
// Returns a *NotFoundError when no CampoConsolidado was found.
func (_q *CampoConsolidadoQuery) First(ctx context.Context) (*CampoConsolidado, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{campoconsolidado.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CampoConsolidadoQuery) FirstX(ctx context.Context) *CampoConsolidado {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CampoConsolidado ID from the query.
// Returns a *NotFoundError when no CampoConsolidado ID was found.
func (_q *CampoConsolidadoQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{campoconsolidado.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CampoConsolidadoQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CampoConsolidado entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CampoConsolidado entity is found.
// Returns a *NotFoundError when no CampoConsolidado entities are found.
func (_q *CampoConsolidadoQuery) Only(ctx context.Context) (*CampoConsolidado, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{campoconsolidado.Label}
	default:
		return nil, &NotSingularError{campoconsolidado.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CampoConsolidadoQuery) OnlyX(ctx context.Context) *CampoConsolidado {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CampoConsolidado ID in the query.
// Returns a *NotSingularError when more than one CampoConsolidado ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CampoConsolidadoQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{campoconsolidado.Label}
	default:
		err = &NotSingularError{campoconsolidado.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CampoConsolidadoQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CampoConsolidados.
func (_q *CampoConsolidadoQuery) All(ctx context.Context) ([]*CampoConsolidado, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CampoConsolidado, *CampoConsolidadoQuery]()
	return withInterceptors[[]*CampoConsolidado](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CampoConsolidadoQuery) AllX(ctx context.Context) []*CampoConsolidado {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CampoConsolidado IDs.
func (_q *CampoConsolidadoQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(campoconsolidado.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CampoConsolidadoQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CampoConsolidadoQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CampoConsolidadoQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CampoConsolidadoQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CampoConsolidadoQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CampoConsolidadoQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CampoConsolidadoQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CampoConsolidadoQuery) Clone() *CampoConsolidadoQuery {
	if _q == nil {
		return nil
	}
	return &CampoConsolidadoQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]campoconsolidado.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.CampoConsolidado{}, _q.predicates...),
		withDocumento: _q.withDocumento.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDocumento tells the query-builder to eager-load the nodes that are connected to
// the "documento" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CampoConsolidadoQuery) WithDocumento(opts ...func(*DocumentQuery)) *CampoConsolidadoQuery {
	query := (&DocumentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDocumento = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		DocumentoID int `json:"documento_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CampoConsolidado.Query().
//		GroupBy(campoconsolidado.FieldDocumentoID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CampoConsolidadoQuery) GroupBy(field string, fields ...string) *CampoConsolidadoGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CampoConsolidadoGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = campoconsolidado.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		DocumentoID int `json:"documento_id,omitempty"`
//	}
//
//	client.CampoConsolidado.Query().
//		Select(campoconsolidado.FieldDocumentoID).
//		Scan(ctx, &v)
func (_q *CampoConsolidadoQuery) Select(fields ...string) *CampoConsolidadoSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CampoConsolidadoSelect{CampoConsolidadoQuery: _q}
	sbuild.label = campoconsolidado.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CampoConsolidadoSelect configured with the given aggregations.
func (_q *CampoConsolidadoQuery) Aggregate(fns ...AggregateFunc) *CampoConsolidadoSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CampoConsolidadoQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !campoconsolidado.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *CampoConsolidadoQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CampoConsolidado, error) {
	var (
		nodes       = []*CampoConsolidado{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withDocumento != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CampoConsolidado).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CampoConsolidado{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withDocumento; query != nil {
		if err := _q.loadDocumento(ctx, query, nodes, nil,
			func(n *CampoConsolidado, e *Document) { n.Edges.Documento = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CampoConsolidadoQuery) loadDocumento(ctx context.Context, query *DocumentQuery, nodes []*CampoConsolidado, init func(*CampoConsolidado), assign func(*CampoConsolidado, *Document)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CampoConsolidado)
	for i := range nodes {
		fk := nodes[i].DocumentoID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(document.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "documento_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CampoConsolidadoQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CampoConsolidadoQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(campoconsolidado.Table, campoconsolidado.Columns, sqlgraph.NewFieldSpec(campoconsolidado.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campoconsolidado.FieldID)
		for i := range fields {
			if fields[i] != campoconsolidado.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withDocumento != nil {
			_spec.Node.AddColumnOnce(campoconsolidado.FieldDocumentoID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *CampoConsolidadoQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(campoconsolidado.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = campoconsolidado.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// CampoConsolidadoGroupBy is the group-by builder for CampoConsolidado entities.
type CampoConsolidadoGroupBy struct {
	selector
	build *CampoConsolidadoQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CampoConsolidadoGroupBy) Aggregate(fns ...AggregateFunc) *CampoConsolidadoGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CampoConsolidadoGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CampoConsolidadoQuery, *CampoConsolidadoGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CampoConsolidadoGroupBy) sqlScan(ctx context.Context, root *CampoConsolidadoQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// CampoConsolidadoSelect is the builder for selecting fields of CampoConsolidado entities.
type CampoConsolidadoSelect struct {
	*CampoConsolidadoQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CampoConsolidadoSelect) Aggregate(fns ...AggregateFunc) *CampoConsolidadoSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CampoConsolidadoSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CampoConsolidadoQuery, *CampoConsolidadoSelect](ctx, _s.CampoConsolidadoQuery, _s, _s.inters, v)
}

func (_s *CampoConsolidadoSelect) sqlScan(ctx context.Context, root *CampoConsolidadoQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
