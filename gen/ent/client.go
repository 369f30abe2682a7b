// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/facturascan/pipeline/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/gen/ent/extraccioncampo"
	"github.com/facturascan/pipeline/gen/ent/extracciontexto"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CampoConsolidado is the client for interacting with the CampoConsolidado builders.
	CampoConsolidado *CampoConsolidadoClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// ExtraccionCampo is the client for interacting with the ExtraccionCampo builders.
	ExtraccionCampo *ExtraccionCampoClient
	// ExtraccionTexto is the client for interacting with the ExtraccionTexto builders.
	ExtraccionTexto *ExtraccionTextoClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CampoConsolidado = NewCampoConsolidadoClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.ExtraccionCampo = NewExtraccionCampoClient(c.config)
	c.ExtraccionTexto = NewExtraccionTextoClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CampoConsolidado: NewCampoConsolidadoClient(cfg),
		Document:         NewDocumentClient(cfg),
		ExtraccionCampo:  NewExtraccionCampoClient(cfg),
		ExtraccionTexto:  NewExtraccionTextoClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:              ctx,
		config:           cfg,
		CampoConsolidado: NewCampoConsolidadoClient(cfg),
		Document:         NewDocumentClient(cfg),
		ExtraccionCampo:  NewExtraccionCampoClient(cfg),
		ExtraccionTexto:  NewExtraccionTextoClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CampoConsolidado.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.CampoConsolidado.Use(hooks...)
	c.Document.Use(hooks...)
	c.ExtraccionCampo.Use(hooks...)
	c.ExtraccionTexto.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CampoConsolidado.Intercept(interceptors...)
	c.Document.Intercept(interceptors...)
	c.ExtraccionCampo.Intercept(interceptors...)
	c.ExtraccionTexto.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CampoConsolidadoMutation:
		return c.CampoConsolidado.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *ExtraccionCampoMutation:
		return c.ExtraccionCampo.mutate(ctx, m)
	case *ExtraccionTextoMutation:
		return c.ExtraccionTexto.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CampoConsolidadoClient is a client for the CampoConsolidado schema.
type CampoConsolidadoClient struct {
	config
}

// NewCampoConsolidadoClient returns a client for the CampoConsolidado from the given config.
func NewCampoConsolidadoClient(c config) *CampoConsolidadoClient {
	return &CampoConsolidadoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `campoconsolidado.Hooks(f(g(h())))`.
func (c *CampoConsolidadoClient) Use(hooks ...Hook) {
	c.hooks.CampoConsolidado = append(c.hooks.CampoConsolidado, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `campoconsolidado.Intercept(f(g(h())))`.
func (c *CampoConsolidadoClient) Intercept(interceptors ...Interceptor) {
	c.inters.CampoConsolidado = append(c.inters.CampoConsolidado, interceptors...)
}

// Create returns a builder for creating a CampoConsolidado entity.
func (c *CampoConsolidadoClient) Create() *CampoConsolidadoCreate {
	mutation := newCampoConsolidadoMutation(c.config, OpCreate)
	return &CampoConsolidadoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CampoConsolidado entities.
func (c *CampoConsolidadoClient) CreateBulk(builders ...*CampoConsolidadoCreate) *CampoConsolidadoCreateBulk {
	return &CampoConsolidadoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CampoConsolidadoClient) MapCreateBulk(slice any, setFunc func(*CampoConsolidadoCreate, int)) *CampoConsolidadoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CampoConsolidadoCreateBulk{err: fmt.Errorf("calling to CampoConsolidadoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CampoConsolidadoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CampoConsolidadoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CampoConsolidado.
func (c *CampoConsolidadoClient) Update() *CampoConsolidadoUpdate {
	mutation := newCampoConsolidadoMutation(c.config, OpUpdate)
	return &CampoConsolidadoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CampoConsolidadoClient) UpdateOne(_m *CampoConsolidado) *CampoConsolidadoUpdateOne {
	mutation := newCampoConsolidadoMutation(c.config, OpUpdateOne, withCampoConsolidado(_m))
	return &CampoConsolidadoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CampoConsolidadoClient) UpdateOneID(id int) *CampoConsolidadoUpdateOne {
	mutation := newCampoConsolidadoMutation(c.config, OpUpdateOne, withCampoConsolidadoID(id))
	return &CampoConsolidadoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CampoConsolidado.
func (c *CampoConsolidadoClient) Delete() *CampoConsolidadoDelete {
	mutation := newCampoConsolidadoMutation(c.config, OpDelete)
	return &CampoConsolidadoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CampoConsolidadoClient) DeleteOne(_m *CampoConsolidado) *CampoConsolidadoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CampoConsolidadoClient) DeleteOneID(id int) *CampoConsolidadoDeleteOne {
	builder := c.Delete().Where(campoconsolidado.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CampoConsolidadoDeleteOne{builder}
}

// Query returns a query builder for CampoConsolidado.
func (c *CampoConsolidadoClient) Query() *CampoConsolidadoQuery {
	return &CampoConsolidadoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCampoConsolidado},
		inters: c.Interceptors(),
	}
}

// Get returns a CampoConsolidado entity by its id.
func (c *CampoConsolidadoClient) Get(ctx context.Context, id int) (*CampoConsolidado, error) {
	return c.Query().Where(campoconsolidado.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CampoConsolidadoClient) GetX(ctx context.Context, id int) *CampoConsolidado {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumento queries the documento edge of a CampoConsolidado.
func (c *CampoConsolidadoClient) QueryDocumento(_m *CampoConsolidado) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campoconsolidado.Table, campoconsolidado.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, campoconsolidado.DocumentoTable, campoconsolidado.DocumentoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CampoConsolidadoClient) Hooks() []Hook {
	return c.hooks.CampoConsolidado
}

// Interceptors returns the client interceptors.
func (c *CampoConsolidadoClient) Interceptors() []Interceptor {
	return c.inters.CampoConsolidado
}

func (c *CampoConsolidadoClient) mutate(ctx context.Context, m *CampoConsolidadoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CampoConsolidadoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CampoConsolidadoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CampoConsolidadoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CampoConsolidadoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CampoConsolidado mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id int) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id int) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id int) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id int) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTextos queries the textos edge of a Document.
func (c *DocumentClient) QueryTextos(_m *Document) *ExtraccionTextoQuery {
	query := (&ExtraccionTextoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extracciontexto.Table, extracciontexto.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.TextosTable, document.TextosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCampos queries the campos edge of a Document.
func (c *DocumentClient) QueryCampos(_m *Document) *ExtraccionCampoQuery {
	query := (&ExtraccionCampoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(extraccioncampo.Table, extraccioncampo.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.CamposTable, document.CamposColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryConsolidados queries the consolidados edge of a Document.
func (c *DocumentClient) QueryConsolidados(_m *Document) *CampoConsolidadoQuery {
	query := (&CampoConsolidadoClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(document.Table, document.FieldID, id),
			sqlgraph.To(campoconsolidado.Table, campoconsolidado.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, document.ConsolidadosTable, document.ConsolidadosColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// ExtraccionCampoClient is a client for the ExtraccionCampo schema.
type ExtraccionCampoClient struct {
	config
}

// NewExtraccionCampoClient returns a client for the ExtraccionCampo from the given config.
func NewExtraccionCampoClient(c config) *ExtraccionCampoClient {
	return &ExtraccionCampoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extraccioncampo.Hooks(f(g(h())))`.
func (c *ExtraccionCampoClient) Use(hooks ...Hook) {
	c.hooks.ExtraccionCampo = append(c.hooks.ExtraccionCampo, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extraccioncampo.Intercept(f(g(h())))`.
func (c *ExtraccionCampoClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtraccionCampo = append(c.inters.ExtraccionCampo, interceptors...)
}

// Create returns a builder for creating a ExtraccionCampo entity.
func (c *ExtraccionCampoClient) Create() *ExtraccionCampoCreate {
	mutation := newExtraccionCampoMutation(c.config, OpCreate)
	return &ExtraccionCampoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtraccionCampo entities.
func (c *ExtraccionCampoClient) CreateBulk(builders ...*ExtraccionCampoCreate) *ExtraccionCampoCreateBulk {
	return &ExtraccionCampoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtraccionCampoClient) MapCreateBulk(slice any, setFunc func(*ExtraccionCampoCreate, int)) *ExtraccionCampoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtraccionCampoCreateBulk{err: fmt.Errorf("calling to ExtraccionCampoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtraccionCampoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtraccionCampoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtraccionCampo.
func (c *ExtraccionCampoClient) Update() *ExtraccionCampoUpdate {
	mutation := newExtraccionCampoMutation(c.config, OpUpdate)
	return &ExtraccionCampoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtraccionCampoClient) UpdateOne(_m *ExtraccionCampo) *ExtraccionCampoUpdateOne {
	mutation := newExtraccionCampoMutation(c.config, OpUpdateOne, withExtraccionCampo(_m))
	return &ExtraccionCampoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtraccionCampoClient) UpdateOneID(id int) *ExtraccionCampoUpdateOne {
	mutation := newExtraccionCampoMutation(c.config, OpUpdateOne, withExtraccionCampoID(id))
	return &ExtraccionCampoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtraccionCampo.
func (c *ExtraccionCampoClient) Delete() *ExtraccionCampoDelete {
	mutation := newExtraccionCampoMutation(c.config, OpDelete)
	return &ExtraccionCampoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtraccionCampoClient) DeleteOne(_m *ExtraccionCampo) *ExtraccionCampoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtraccionCampoClient) DeleteOneID(id int) *ExtraccionCampoDeleteOne {
	builder := c.Delete().Where(extraccioncampo.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtraccionCampoDeleteOne{builder}
}

// Query returns a query builder for ExtraccionCampo.
func (c *ExtraccionCampoClient) Query() *ExtraccionCampoQuery {
	return &ExtraccionCampoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtraccionCampo},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtraccionCampo entity by its id.
func (c *ExtraccionCampoClient) Get(ctx context.Context, id int) (*ExtraccionCampo, error) {
	return c.Query().Where(extraccioncampo.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtraccionCampoClient) GetX(ctx context.Context, id int) *ExtraccionCampo {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumento queries the documento edge of a ExtraccionCampo.
func (c *ExtraccionCampoClient) QueryDocumento(_m *ExtraccionCampo) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extraccioncampo.Table, extraccioncampo.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extraccioncampo.DocumentoTable, extraccioncampo.DocumentoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtraccionCampoClient) Hooks() []Hook {
	return c.hooks.ExtraccionCampo
}

// Interceptors returns the client interceptors.
func (c *ExtraccionCampoClient) Interceptors() []Interceptor {
	return c.inters.ExtraccionCampo
}

func (c *ExtraccionCampoClient) mutate(ctx context.Context, m *ExtraccionCampoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtraccionCampoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtraccionCampoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtraccionCampoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtraccionCampoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtraccionCampo mutation op: %q", m.Op())
	}
}

// ExtraccionTextoClient is a client for the ExtraccionTexto schema.
type ExtraccionTextoClient struct {
	config
}

// NewExtraccionTextoClient returns a client for the ExtraccionTexto from the given config.
func NewExtraccionTextoClient(c config) *ExtraccionTextoClient {
	return &ExtraccionTextoClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extracciontexto.Hooks(f(g(h())))`.
func (c *ExtraccionTextoClient) Use(hooks ...Hook) {
	c.hooks.ExtraccionTexto = append(c.hooks.ExtraccionTexto, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extracciontexto.Intercept(f(g(h())))`.
func (c *ExtraccionTextoClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtraccionTexto = append(c.inters.ExtraccionTexto, interceptors...)
}

// Create returns a builder for creating a ExtraccionTexto entity.
func (c *ExtraccionTextoClient) Create() *ExtraccionTextoCreate {
	mutation := newExtraccionTextoMutation(c.config, OpCreate)
	return &ExtraccionTextoCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtraccionTexto entities.
func (c *ExtraccionTextoClient) CreateBulk(builders ...*ExtraccionTextoCreate) *ExtraccionTextoCreateBulk {
	return &ExtraccionTextoCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtraccionTextoClient) MapCreateBulk(slice any, setFunc func(*ExtraccionTextoCreate, int)) *ExtraccionTextoCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtraccionTextoCreateBulk{err: fmt.Errorf("calling to ExtraccionTextoClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtraccionTextoCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtraccionTextoCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtraccionTexto.
func (c *ExtraccionTextoClient) Update() *ExtraccionTextoUpdate {
	mutation := newExtraccionTextoMutation(c.config, OpUpdate)
	return &ExtraccionTextoUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtraccionTextoClient) UpdateOne(_m *ExtraccionTexto) *ExtraccionTextoUpdateOne {
	mutation := newExtraccionTextoMutation(c.config, OpUpdateOne, withExtraccionTexto(_m))
	return &ExtraccionTextoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtraccionTextoClient) UpdateOneID(id int) *ExtraccionTextoUpdateOne {
	mutation := newExtraccionTextoMutation(c.config, OpUpdateOne, withExtraccionTextoID(id))
	return &ExtraccionTextoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtraccionTexto.
func (c *ExtraccionTextoClient) Delete() *ExtraccionTextoDelete {
	mutation := newExtraccionTextoMutation(c.config, OpDelete)
	return &ExtraccionTextoDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtraccionTextoClient) DeleteOne(_m *ExtraccionTexto) *ExtraccionTextoDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtraccionTextoClient) DeleteOneID(id int) *ExtraccionTextoDeleteOne {
	builder := c.Delete().Where(extracciontexto.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtraccionTextoDeleteOne{builder}
}

// Query returns a query builder for ExtraccionTexto.
func (c *ExtraccionTextoClient) Query() *ExtraccionTextoQuery {
	return &ExtraccionTextoQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtraccionTexto},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtraccionTexto entity by its id.
func (c *ExtraccionTextoClient) Get(ctx context.Context, id int) (*ExtraccionTexto, error) {
	return c.Query().Where(extracciontexto.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtraccionTextoClient) GetX(ctx context.Context, id int) *ExtraccionTexto {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDocumento queries the documento edge of a ExtraccionTexto.
func (c *ExtraccionTextoClient) QueryDocumento(_m *ExtraccionTexto) *DocumentQuery {
	query := (&DocumentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extracciontexto.Table, extracciontexto.FieldID, id),
			sqlgraph.To(document.Table, document.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extracciontexto.DocumentoTable, extracciontexto.DocumentoColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtraccionTextoClient) Hooks() []Hook {
	return c.hooks.ExtraccionTexto
}

// Interceptors returns the client interceptors.
func (c *ExtraccionTextoClient) Interceptors() []Interceptor {
	return c.inters.ExtraccionTexto
}

func (c *ExtraccionTextoClient) mutate(ctx context.Context, m *ExtraccionTextoMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtraccionTextoCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtraccionTextoUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtraccionTextoUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtraccionTextoDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtraccionTexto mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CampoConsolidado, Document, ExtraccionCampo, ExtraccionTexto []ent.Hook
	}
	inters struct {
		CampoConsolidado, Document, ExtraccionCampo, ExtraccionTexto []ent.Interceptor
	}
)
