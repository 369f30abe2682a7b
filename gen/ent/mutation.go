// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/facturascan/pipeline/constants"
	"github.com/facturascan/pipeline/gen/ent/campoconsolidado"
	"github.com/facturascan/pipeline/gen/ent/document"
	"github.com/facturascan/pipeline/gen/ent/extraccioncampo"
	"github.com/facturascan/pipeline/gen/ent/extracciontexto"
	"github.com/facturascan/pipeline/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCampoConsolidado = "CampoConsolidado"
	TypeDocument         = "Document"
	TypeExtraccionCampo  = "ExtraccionCampo"
	TypeExtraccionTexto  = "ExtraccionTexto"
)

// CampoConsolidadoMutation represents an operation that mutates the CampoConsolidado nodes in the graph.
type CampoConsolidadoMutation struct {
	config
	op               Op
	typ              string
	id               *int
	metodo           *string
	campo            *string
	valor            *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	documento        *int
	cleareddocumento bool
	done             bool
	oldValue         func(context.Context) (*CampoConsolidado, error)
	predicates       []predicate.CampoConsolidado
}

var _ ent.Mutation = (*CampoConsolidadoMutation)(nil)

// campoconsolidadoOption allows management of the mutation configuration using functional options.
type campoconsolidadoOption func(*CampoConsolidadoMutation)

// newCampoConsolidadoMutation creates new mutation for the CampoConsolidado entity.
func newCampoConsolidadoMutation(c config, op Op, opts ...campoconsolidadoOption) *CampoConsolidadoMutation {
	m := &CampoConsolidadoMutation{
		config:        c,
		op:            op,
		typ:           TypeCampoConsolidado,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCampoConsolidadoID sets the ID field of the mutation.
func withCampoConsolidadoID(id int) campoconsolidadoOption {
	return func(m *CampoConsolidadoMutation) {
		var (
			err   error
			once  sync.Once
			value *CampoConsolidado
		)
		m.oldValue = func(ctx context.Context) (*CampoConsolidado, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CampoConsolidado.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCampoConsolidado sets the old CampoConsolidado of the mutation.
func withCampoConsolidado(node *CampoConsolidado) campoconsolidadoOption {
	return func(m *CampoConsolidadoMutation) {
		m.oldValue = func(context.Context) (*CampoConsolidado, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CampoConsolidadoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CampoConsolidadoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CampoConsolidadoMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CampoConsolidadoMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CampoConsolidado.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentoID sets the "documento_id" field.
func (m *CampoConsolidadoMutation) SetDocumentoID(i int) {
	m.documento = &i
}

// DocumentoID returns the value of the "documento_id" field in the mutation.
func (m *CampoConsolidadoMutation) DocumentoID() (r int, exists bool) {
	v := m.documento
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentoID returns the old "documento_id" field's value of the CampoConsolidado entity.
// If the CampoConsolidado object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampoConsolidadoMutation) OldDocumentoID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentoID: %w", err)
	}
	return oldValue.DocumentoID, nil
}

// ResetDocumentoID resets all changes to the "documento_id" field.
func (m *CampoConsolidadoMutation) ResetDocumentoID() {
	m.documento = nil
}

// SetMetodo sets the "metodo" field.
func (m *CampoConsolidadoMutation) SetMetodo(s string) {
	m.metodo = &s
}

// Metodo returns the value of the "metodo" field in the mutation.
func (m *CampoConsolidadoMutation) Metodo() (r string, exists bool) {
	v := m.metodo
	if v == nil {
		return
	}
	return *v, true
}

// OldMetodo returns the old "metodo" field's value of the CampoConsolidado entity.
// If the CampoConsolidado object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampoConsolidadoMutation) OldMetodo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetodo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetodo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetodo: %w", err)
	}
	return oldValue.Metodo, nil
}

// ResetMetodo resets all changes to the "metodo" field.
func (m *CampoConsolidadoMutation) ResetMetodo() {
	m.metodo = nil
}

// SetCampo sets the "campo" field.
func (m *CampoConsolidadoMutation) SetCampo(s string) {
	m.campo = &s
}

// Campo returns the value of the "campo" field in the mutation.
func (m *CampoConsolidadoMutation) Campo() (r string, exists bool) {
	v := m.campo
	if v == nil {
		return
	}
	return *v, true
}

// OldCampo returns the old "campo" field's value of the CampoConsolidado entity.
// If the CampoConsolidado object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampoConsolidadoMutation) OldCampo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampo: %w", err)
	}
	return oldValue.Campo, nil
}

// ResetCampo resets all changes to the "campo" field.
func (m *CampoConsolidadoMutation) ResetCampo() {
	m.campo = nil
}

// SetValor sets the "valor" field.
func (m *CampoConsolidadoMutation) SetValor(s string) {
	m.valor = &s
}

// Valor returns the value of the "valor" field in the mutation.
func (m *CampoConsolidadoMutation) Valor() (r string, exists bool) {
	v := m.valor
	if v == nil {
		return
	}
	return *v, true
}

// OldValor returns the old "valor" field's value of the CampoConsolidado entity.
// If the CampoConsolidado object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampoConsolidadoMutation) OldValor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValor: %w", err)
	}
	return oldValue.Valor, nil
}

// ResetValor resets all changes to the "valor" field.
func (m *CampoConsolidadoMutation) ResetValor() {
	m.valor = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CampoConsolidadoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CampoConsolidadoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CampoConsolidado entity.
// If the CampoConsolidado object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampoConsolidadoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CampoConsolidadoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *CampoConsolidadoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *CampoConsolidadoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the CampoConsolidado entity.
// If the CampoConsolidado object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CampoConsolidadoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *CampoConsolidadoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (m *CampoConsolidadoMutation) ClearDocumento() {
	m.cleareddocumento = true
	m.clearedFields[campoconsolidado.FieldDocumentoID] = struct{}{}
}

// DocumentoCleared reports if the "documento" edge to the Document entity was cleared.
func (m *CampoConsolidadoMutation) DocumentoCleared() bool {
	return m.cleareddocumento
}

// DocumentoIDs returns the "documento" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentoID instead. It exists only for internal usage by the builders.
func (m *CampoConsolidadoMutation) DocumentoIDs() (ids []int) {
	if id := m.documento; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocumento resets all changes to the "documento" edge.
func (m *CampoConsolidadoMutation) ResetDocumento() {
	m.documento = nil
	m.cleareddocumento = false
}

// Where appends a list predicates to the CampoConsolidadoMutation builder.
func (m *CampoConsolidadoMutation) Where(ps ...predicate.CampoConsolidado) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CampoConsolidadoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CampoConsolidadoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CampoConsolidado, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CampoConsolidadoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CampoConsolidadoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CampoConsolidado).
func (m *CampoConsolidadoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CampoConsolidadoMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.documento != nil {
		fields = append(fields, campoconsolidado.FieldDocumentoID)
	}
	if m.metodo != nil {
		fields = append(fields, campoconsolidado.FieldMetodo)
	}
	if m.campo != nil {
		fields = append(fields, campoconsolidado.FieldCampo)
	}
	if m.valor != nil {
		fields = append(fields, campoconsolidado.FieldValor)
	}
	if m.created_at != nil {
		fields = append(fields, campoconsolidado.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, campoconsolidado.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CampoConsolidadoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case campoconsolidado.FieldDocumentoID:
		return m.DocumentoID()
	case campoconsolidado.FieldMetodo:
		return m.Metodo()
	case campoconsolidado.FieldCampo:
		return m.Campo()
	case campoconsolidado.FieldValor:
		return m.Valor()
	case campoconsolidado.FieldCreatedAt:
		return m.CreatedAt()
	case campoconsolidado.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CampoConsolidadoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case campoconsolidado.FieldDocumentoID:
		return m.OldDocumentoID(ctx)
	case campoconsolidado.FieldMetodo:
		return m.OldMetodo(ctx)
	case campoconsolidado.FieldCampo:
		return m.OldCampo(ctx)
	case campoconsolidado.FieldValor:
		return m.OldValor(ctx)
	case campoconsolidado.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case campoconsolidado.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CampoConsolidado field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampoConsolidadoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case campoconsolidado.FieldDocumentoID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentoID(v)
		return nil
	case campoconsolidado.FieldMetodo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetodo(v)
		return nil
	case campoconsolidado.FieldCampo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampo(v)
		return nil
	case campoconsolidado.FieldValor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValor(v)
		return nil
	case campoconsolidado.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case campoconsolidado.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CampoConsolidado field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CampoConsolidadoMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CampoConsolidadoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CampoConsolidadoMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CampoConsolidado numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CampoConsolidadoMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CampoConsolidadoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CampoConsolidadoMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CampoConsolidado nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CampoConsolidadoMutation) ResetField(name string) error {
	switch name {
	case campoconsolidado.FieldDocumentoID:
		m.ResetDocumentoID()
		return nil
	case campoconsolidado.FieldMetodo:
		m.ResetMetodo()
		return nil
	case campoconsolidado.FieldCampo:
		m.ResetCampo()
		return nil
	case campoconsolidado.FieldValor:
		m.ResetValor()
		return nil
	case campoconsolidado.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case campoconsolidado.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CampoConsolidado field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CampoConsolidadoMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.documento != nil {
		edges = append(edges, campoconsolidado.EdgeDocumento)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CampoConsolidadoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case campoconsolidado.EdgeDocumento:
		if id := m.documento; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CampoConsolidadoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CampoConsolidadoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CampoConsolidadoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocumento {
		edges = append(edges, campoconsolidado.EdgeDocumento)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CampoConsolidadoMutation) EdgeCleared(name string) bool {
	switch name {
	case campoconsolidado.EdgeDocumento:
		return m.cleareddocumento
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CampoConsolidadoMutation) ClearEdge(name string) error {
	switch name {
	case campoconsolidado.EdgeDocumento:
		m.ClearDocumento()
		return nil
	}
	return fmt.Errorf("unknown CampoConsolidado unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CampoConsolidadoMutation) ResetEdge(name string) error {
	switch name {
	case campoconsolidado.EdgeDocumento:
		m.ResetDocumento()
		return nil
	}
	return fmt.Errorf("unknown CampoConsolidado edge %s", name)
}

// DocumentMutation represents an operation that mutates the Document nodes in the graph.
type DocumentMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	nombre_archivo        *string
	archivo_padre         *string
	hash_archivo          *string
	tamano_bytes          *int64
	addtamano_bytes       *int64
	numero_paginas        *int
	addnumero_paginas     *int
	tipo_documento        *string
	resolucion_ppi        *float64
	addresolucion_ppi     *float64
	calidad_estimativa    *int
	addcalidad_estimativa *int
	estado                *constants.Estado
	addestado             *constants.Estado
	deleted_at            *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	textos                map[int]struct{}
	removedtextos         map[int]struct{}
	clearedtextos         bool
	campos                map[int]struct{}
	removedcampos         map[int]struct{}
	clearedcampos         bool
	consolidados          map[int]struct{}
	removedconsolidados   map[int]struct{}
	clearedconsolidados   bool
	done                  bool
	oldValue              func(context.Context) (*Document, error)
	predicates            []predicate.Document
}

var _ ent.Mutation = (*DocumentMutation)(nil)

// documentOption allows management of the mutation configuration using functional options.
type documentOption func(*DocumentMutation)

// newDocumentMutation creates new mutation for the Document entity.
func newDocumentMutation(c config, op Op, opts ...documentOption) *DocumentMutation {
	m := &DocumentMutation{
		config:        c,
		op:            op,
		typ:           TypeDocument,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDocumentID sets the ID field of the mutation.
func withDocumentID(id int) documentOption {
	return func(m *DocumentMutation) {
		var (
			err   error
			once  sync.Once
			value *Document
		)
		m.oldValue = func(ctx context.Context) (*Document, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Document.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDocument sets the old Document of the mutation.
func withDocument(node *Document) documentOption {
	return func(m *DocumentMutation) {
		m.oldValue = func(context.Context) (*Document, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DocumentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DocumentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DocumentMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DocumentMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Document.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetNombreArchivo sets the "nombre_archivo" field.
func (m *DocumentMutation) SetNombreArchivo(s string) {
	m.nombre_archivo = &s
}

// NombreArchivo returns the value of the "nombre_archivo" field in the mutation.
func (m *DocumentMutation) NombreArchivo() (r string, exists bool) {
	v := m.nombre_archivo
	if v == nil {
		return
	}
	return *v, true
}

// OldNombreArchivo returns the old "nombre_archivo" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNombreArchivo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNombreArchivo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNombreArchivo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNombreArchivo: %w", err)
	}
	return oldValue.NombreArchivo, nil
}

// ResetNombreArchivo resets all changes to the "nombre_archivo" field.
func (m *DocumentMutation) ResetNombreArchivo() {
	m.nombre_archivo = nil
}

// SetArchivoPadre sets the "archivo_padre" field.
func (m *DocumentMutation) SetArchivoPadre(s string) {
	m.archivo_padre = &s
}

// ArchivoPadre returns the value of the "archivo_padre" field in the mutation.
func (m *DocumentMutation) ArchivoPadre() (r string, exists bool) {
	v := m.archivo_padre
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivoPadre returns the old "archivo_padre" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldArchivoPadre(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivoPadre is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivoPadre requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivoPadre: %w", err)
	}
	return oldValue.ArchivoPadre, nil
}

// ClearArchivoPadre clears the value of the "archivo_padre" field.
func (m *DocumentMutation) ClearArchivoPadre() {
	m.archivo_padre = nil
	m.clearedFields[document.FieldArchivoPadre] = struct{}{}
}

// ArchivoPadreCleared returns if the "archivo_padre" field was cleared in this mutation.
func (m *DocumentMutation) ArchivoPadreCleared() bool {
	_, ok := m.clearedFields[document.FieldArchivoPadre]
	return ok
}

// ResetArchivoPadre resets all changes to the "archivo_padre" field.
func (m *DocumentMutation) ResetArchivoPadre() {
	m.archivo_padre = nil
	delete(m.clearedFields, document.FieldArchivoPadre)
}

// SetHashArchivo sets the "hash_archivo" field.
func (m *DocumentMutation) SetHashArchivo(s string) {
	m.hash_archivo = &s
}

// HashArchivo returns the value of the "hash_archivo" field in the mutation.
func (m *DocumentMutation) HashArchivo() (r string, exists bool) {
	v := m.hash_archivo
	if v == nil {
		return
	}
	return *v, true
}

// OldHashArchivo returns the old "hash_archivo" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldHashArchivo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHashArchivo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHashArchivo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHashArchivo: %w", err)
	}
	return oldValue.HashArchivo, nil
}

// ResetHashArchivo resets all changes to the "hash_archivo" field.
func (m *DocumentMutation) ResetHashArchivo() {
	m.hash_archivo = nil
}

// SetTamanoBytes sets the "tamano_bytes" field.
func (m *DocumentMutation) SetTamanoBytes(i int64) {
	m.tamano_bytes = &i
	m.addtamano_bytes = nil
}

// TamanoBytes returns the value of the "tamano_bytes" field in the mutation.
func (m *DocumentMutation) TamanoBytes() (r int64, exists bool) {
	v := m.tamano_bytes
	if v == nil {
		return
	}
	return *v, true
}

// OldTamanoBytes returns the old "tamano_bytes" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTamanoBytes(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTamanoBytes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTamanoBytes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTamanoBytes: %w", err)
	}
	return oldValue.TamanoBytes, nil
}

// AddTamanoBytes adds i to the "tamano_bytes" field.
func (m *DocumentMutation) AddTamanoBytes(i int64) {
	if m.addtamano_bytes != nil {
		*m.addtamano_bytes += i
	} else {
		m.addtamano_bytes = &i
	}
}

// AddedTamanoBytes returns the value that was added to the "tamano_bytes" field in this mutation.
func (m *DocumentMutation) AddedTamanoBytes() (r int64, exists bool) {
	v := m.addtamano_bytes
	if v == nil {
		return
	}
	return *v, true
}

// ResetTamanoBytes resets all changes to the "tamano_bytes" field.
func (m *DocumentMutation) ResetTamanoBytes() {
	m.tamano_bytes = nil
	m.addtamano_bytes = nil
}

// SetNumeroPaginas sets the "numero_paginas" field.
func (m *DocumentMutation) SetNumeroPaginas(i int) {
	m.numero_paginas = &i
	m.addnumero_paginas = nil
}

// NumeroPaginas returns the value of the "numero_paginas" field in the mutation.
func (m *DocumentMutation) NumeroPaginas() (r int, exists bool) {
	v := m.numero_paginas
	if v == nil {
		return
	}
	return *v, true
}

// OldNumeroPaginas returns the old "numero_paginas" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldNumeroPaginas(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNumeroPaginas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNumeroPaginas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNumeroPaginas: %w", err)
	}
	return oldValue.NumeroPaginas, nil
}

// AddNumeroPaginas adds i to the "numero_paginas" field.
func (m *DocumentMutation) AddNumeroPaginas(i int) {
	if m.addnumero_paginas != nil {
		*m.addnumero_paginas += i
	} else {
		m.addnumero_paginas = &i
	}
}

// AddedNumeroPaginas returns the value that was added to the "numero_paginas" field in this mutation.
func (m *DocumentMutation) AddedNumeroPaginas() (r int, exists bool) {
	v := m.addnumero_paginas
	if v == nil {
		return
	}
	return *v, true
}

// ResetNumeroPaginas resets all changes to the "numero_paginas" field.
func (m *DocumentMutation) ResetNumeroPaginas() {
	m.numero_paginas = nil
	m.addnumero_paginas = nil
}

// SetTipoDocumento sets the "tipo_documento" field.
func (m *DocumentMutation) SetTipoDocumento(s string) {
	m.tipo_documento = &s
}

// TipoDocumento returns the value of the "tipo_documento" field in the mutation.
func (m *DocumentMutation) TipoDocumento() (r string, exists bool) {
	v := m.tipo_documento
	if v == nil {
		return
	}
	return *v, true
}

// OldTipoDocumento returns the old "tipo_documento" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldTipoDocumento(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTipoDocumento is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTipoDocumento requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTipoDocumento: %w", err)
	}
	return oldValue.TipoDocumento, nil
}

// ResetTipoDocumento resets all changes to the "tipo_documento" field.
func (m *DocumentMutation) ResetTipoDocumento() {
	m.tipo_documento = nil
}

// SetResolucionPpi sets the "resolucion_ppi" field.
func (m *DocumentMutation) SetResolucionPpi(f float64) {
	m.resolucion_ppi = &f
	m.addresolucion_ppi = nil
}

// ResolucionPpi returns the value of the "resolucion_ppi" field in the mutation.
func (m *DocumentMutation) ResolucionPpi() (r float64, exists bool) {
	v := m.resolucion_ppi
	if v == nil {
		return
	}
	return *v, true
}

// OldResolucionPpi returns the old "resolucion_ppi" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldResolucionPpi(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResolucionPpi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResolucionPpi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResolucionPpi: %w", err)
	}
	return oldValue.ResolucionPpi, nil
}

// AddResolucionPpi adds f to the "resolucion_ppi" field.
func (m *DocumentMutation) AddResolucionPpi(f float64) {
	if m.addresolucion_ppi != nil {
		*m.addresolucion_ppi += f
	} else {
		m.addresolucion_ppi = &f
	}
}

// AddedResolucionPpi returns the value that was added to the "resolucion_ppi" field in this mutation.
func (m *DocumentMutation) AddedResolucionPpi() (r float64, exists bool) {
	v := m.addresolucion_ppi
	if v == nil {
		return
	}
	return *v, true
}

// ResetResolucionPpi resets all changes to the "resolucion_ppi" field.
func (m *DocumentMutation) ResetResolucionPpi() {
	m.resolucion_ppi = nil
	m.addresolucion_ppi = nil
}

// SetCalidadEstimativa sets the "calidad_estimativa" field.
func (m *DocumentMutation) SetCalidadEstimativa(i int) {
	m.calidad_estimativa = &i
	m.addcalidad_estimativa = nil
}

// CalidadEstimativa returns the value of the "calidad_estimativa" field in the mutation.
func (m *DocumentMutation) CalidadEstimativa() (r int, exists bool) {
	v := m.calidad_estimativa
	if v == nil {
		return
	}
	return *v, true
}

// OldCalidadEstimativa returns the old "calidad_estimativa" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCalidadEstimativa(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCalidadEstimativa is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCalidadEstimativa requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCalidadEstimativa: %w", err)
	}
	return oldValue.CalidadEstimativa, nil
}

// AddCalidadEstimativa adds i to the "calidad_estimativa" field.
func (m *DocumentMutation) AddCalidadEstimativa(i int) {
	if m.addcalidad_estimativa != nil {
		*m.addcalidad_estimativa += i
	} else {
		m.addcalidad_estimativa = &i
	}
}

// AddedCalidadEstimativa returns the value that was added to the "calidad_estimativa" field in this mutation.
func (m *DocumentMutation) AddedCalidadEstimativa() (r int, exists bool) {
	v := m.addcalidad_estimativa
	if v == nil {
		return
	}
	return *v, true
}

// ResetCalidadEstimativa resets all changes to the "calidad_estimativa" field.
func (m *DocumentMutation) ResetCalidadEstimativa() {
	m.calidad_estimativa = nil
	m.addcalidad_estimativa = nil
}

// SetEstado sets the "estado" field.
func (m *DocumentMutation) SetEstado(c constants.Estado) {
	m.estado = &c
	m.addestado = nil
}

// Estado returns the value of the "estado" field in the mutation.
func (m *DocumentMutation) Estado() (r constants.Estado, exists bool) {
	v := m.estado
	if v == nil {
		return
	}
	return *v, true
}

// OldEstado returns the old "estado" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldEstado(ctx context.Context) (v constants.Estado, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstado: %w", err)
	}
	return oldValue.Estado, nil
}

// AddEstado adds c to the "estado" field.
func (m *DocumentMutation) AddEstado(c constants.Estado) {
	if m.addestado != nil {
		*m.addestado += c
	} else {
		m.addestado = &c
	}
}

// AddedEstado returns the value that was added to the "estado" field in this mutation.
func (m *DocumentMutation) AddedEstado() (r constants.Estado, exists bool) {
	v := m.addestado
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstado resets all changes to the "estado" field.
func (m *DocumentMutation) ResetEstado() {
	m.estado = nil
	m.addestado = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *DocumentMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *DocumentMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *DocumentMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[document.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *DocumentMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[document.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *DocumentMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, document.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *DocumentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DocumentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DocumentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DocumentMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DocumentMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Document entity.
// If the Document object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DocumentMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DocumentMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddTextoIDs adds the "textos" edge to the ExtraccionTexto entity by ids.
func (m *DocumentMutation) AddTextoIDs(ids ...int) {
	if m.textos == nil {
		m.textos = make(map[int]struct{})
	}
	for i := range ids {
		m.textos[ids[i]] = struct{}{}
	}
}

// ClearTextos clears the "textos" edge to the ExtraccionTexto entity.
func (m *DocumentMutation) ClearTextos() {
	m.clearedtextos = true
}

// TextosCleared reports if the "textos" edge to the ExtraccionTexto entity was cleared.
func (m *DocumentMutation) TextosCleared() bool {
	return m.clearedtextos
}

// RemoveTextoIDs removes the "textos" edge to the ExtraccionTexto entity by IDs.
func (m *DocumentMutation) RemoveTextoIDs(ids ...int) {
	if m.removedtextos == nil {
		m.removedtextos = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.textos, ids[i])
		m.removedtextos[ids[i]] = struct{}{}
	}
}

// RemovedTextos returns the removed IDs of the "textos" edge to the ExtraccionTexto entity.
func (m *DocumentMutation) RemovedTextosIDs() (ids []int) {
	for id := range m.removedtextos {
		ids = append(ids, id)
	}
	return
}

// TextosIDs returns the "textos" edge IDs in the mutation.
func (m *DocumentMutation) TextosIDs() (ids []int) {
	for id := range m.textos {
		ids = append(ids, id)
	}
	return
}

// ResetTextos resets all changes to the "textos" edge.
func (m *DocumentMutation) ResetTextos() {
	m.textos = nil
	m.clearedtextos = false
	m.removedtextos = nil
}

// AddCampoIDs adds the "campos" edge to the ExtraccionCampo entity by ids.
func (m *DocumentMutation) AddCampoIDs(ids ...int) {
	if m.campos == nil {
		m.campos = make(map[int]struct{})
	}
	for i := range ids {
		m.campos[ids[i]] = struct{}{}
	}
}

// ClearCampos clears the "campos" edge to the ExtraccionCampo entity.
func (m *DocumentMutation) ClearCampos() {
	m.clearedcampos = true
}

// CamposCleared reports if the "campos" edge to the ExtraccionCampo entity was cleared.
func (m *DocumentMutation) CamposCleared() bool {
	return m.clearedcampos
}

// RemoveCampoIDs removes the "campos" edge to the ExtraccionCampo entity by IDs.
func (m *DocumentMutation) RemoveCampoIDs(ids ...int) {
	if m.removedcampos == nil {
		m.removedcampos = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.campos, ids[i])
		m.removedcampos[ids[i]] = struct{}{}
	}
}

// RemovedCampos returns the removed IDs of the "campos" edge to the ExtraccionCampo entity.
func (m *DocumentMutation) RemovedCamposIDs() (ids []int) {
	for id := range m.removedcampos {
		ids = append(ids, id)
	}
	return
}

// CamposIDs returns the "campos" edge IDs in the mutation.
func (m *DocumentMutation) CamposIDs() (ids []int) {
	for id := range m.campos {
		ids = append(ids, id)
	}
	return
}

// ResetCampos resets all changes to the "campos" edge.
func (m *DocumentMutation) ResetCampos() {
	m.campos = nil
	m.clearedcampos = false
	m.removedcampos = nil
}

// AddConsolidadoIDs adds the "consolidados" edge to the CampoConsolidado entity by ids.
func (m *DocumentMutation) AddConsolidadoIDs(ids ...int) {
	if m.consolidados == nil {
		m.consolidados = make(map[int]struct{})
	}
	for i := range ids {
		m.consolidados[ids[i]] = struct{}{}
	}
}

// ClearConsolidados clears the "consolidados" edge to the CampoConsolidado entity.
func (m *DocumentMutation) ClearConsolidados() {
	m.clearedconsolidados = true
}

// ConsolidadosCleared reports if the "consolidados" edge to the CampoConsolidado entity was cleared.
func (m *DocumentMutation) ConsolidadosCleared() bool {
	return m.clearedconsolidados
}

// RemoveConsolidadoIDs removes the "consolidados" edge to the CampoConsolidado entity by IDs.
func (m *DocumentMutation) RemoveConsolidadoIDs(ids ...int) {
	if m.removedconsolidados == nil {
		m.removedconsolidados = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.consolidados, ids[i])
		m.removedconsolidados[ids[i]] = struct{}{}
	}
}

// RemovedConsolidados returns the removed IDs of the "consolidados" edge to the CampoConsolidado entity.
func (m *DocumentMutation) RemovedConsolidadosIDs() (ids []int) {
	for id := range m.removedconsolidados {
		ids = append(ids, id)
	}
	return
}

// ConsolidadosIDs returns the "consolidados" edge IDs in the mutation.
func (m *DocumentMutation) ConsolidadosIDs() (ids []int) {
	for id := range m.consolidados {
		ids = append(ids, id)
	}
	return
}

// ResetConsolidados resets all changes to the "consolidados" edge.
func (m *DocumentMutation) ResetConsolidados() {
	m.consolidados = nil
	m.clearedconsolidados = false
	m.removedconsolidados = nil
}

// Where appends a list predicates to the DocumentMutation builder.
func (m *DocumentMutation) Where(ps ...predicate.Document) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DocumentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DocumentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Document, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DocumentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DocumentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Document).
func (m *DocumentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DocumentMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.nombre_archivo != nil {
		fields = append(fields, document.FieldNombreArchivo)
	}
	if m.archivo_padre != nil {
		fields = append(fields, document.FieldArchivoPadre)
	}
	if m.hash_archivo != nil {
		fields = append(fields, document.FieldHashArchivo)
	}
	if m.tamano_bytes != nil {
		fields = append(fields, document.FieldTamanoBytes)
	}
	if m.numero_paginas != nil {
		fields = append(fields, document.FieldNumeroPaginas)
	}
	if m.tipo_documento != nil {
		fields = append(fields, document.FieldTipoDocumento)
	}
	if m.resolucion_ppi != nil {
		fields = append(fields, document.FieldResolucionPpi)
	}
	if m.calidad_estimativa != nil {
		fields = append(fields, document.FieldCalidadEstimativa)
	}
	if m.estado != nil {
		fields = append(fields, document.FieldEstado)
	}
	if m.deleted_at != nil {
		fields = append(fields, document.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, document.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, document.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DocumentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case document.FieldNombreArchivo:
		return m.NombreArchivo()
	case document.FieldArchivoPadre:
		return m.ArchivoPadre()
	case document.FieldHashArchivo:
		return m.HashArchivo()
	case document.FieldTamanoBytes:
		return m.TamanoBytes()
	case document.FieldNumeroPaginas:
		return m.NumeroPaginas()
	case document.FieldTipoDocumento:
		return m.TipoDocumento()
	case document.FieldResolucionPpi:
		return m.ResolucionPpi()
	case document.FieldCalidadEstimativa:
		return m.CalidadEstimativa()
	case document.FieldEstado:
		return m.Estado()
	case document.FieldDeletedAt:
		return m.DeletedAt()
	case document.FieldCreatedAt:
		return m.CreatedAt()
	case document.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DocumentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case document.FieldNombreArchivo:
		return m.OldNombreArchivo(ctx)
	case document.FieldArchivoPadre:
		return m.OldArchivoPadre(ctx)
	case document.FieldHashArchivo:
		return m.OldHashArchivo(ctx)
	case document.FieldTamanoBytes:
		return m.OldTamanoBytes(ctx)
	case document.FieldNumeroPaginas:
		return m.OldNumeroPaginas(ctx)
	case document.FieldTipoDocumento:
		return m.OldTipoDocumento(ctx)
	case document.FieldResolucionPpi:
		return m.OldResolucionPpi(ctx)
	case document.FieldCalidadEstimativa:
		return m.OldCalidadEstimativa(ctx)
	case document.FieldEstado:
		return m.OldEstado(ctx)
	case document.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case document.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case document.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Document field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case document.FieldNombreArchivo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNombreArchivo(v)
		return nil
	case document.FieldArchivoPadre:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivoPadre(v)
		return nil
	case document.FieldHashArchivo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHashArchivo(v)
		return nil
	case document.FieldTamanoBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTamanoBytes(v)
		return nil
	case document.FieldNumeroPaginas:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNumeroPaginas(v)
		return nil
	case document.FieldTipoDocumento:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTipoDocumento(v)
		return nil
	case document.FieldResolucionPpi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResolucionPpi(v)
		return nil
	case document.FieldCalidadEstimativa:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCalidadEstimativa(v)
		return nil
	case document.FieldEstado:
		v, ok := value.(constants.Estado)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstado(v)
		return nil
	case document.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case document.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case document.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DocumentMutation) AddedFields() []string {
	var fields []string
	if m.addtamano_bytes != nil {
		fields = append(fields, document.FieldTamanoBytes)
	}
	if m.addnumero_paginas != nil {
		fields = append(fields, document.FieldNumeroPaginas)
	}
	if m.addresolucion_ppi != nil {
		fields = append(fields, document.FieldResolucionPpi)
	}
	if m.addcalidad_estimativa != nil {
		fields = append(fields, document.FieldCalidadEstimativa)
	}
	if m.addestado != nil {
		fields = append(fields, document.FieldEstado)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DocumentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case document.FieldTamanoBytes:
		return m.AddedTamanoBytes()
	case document.FieldNumeroPaginas:
		return m.AddedNumeroPaginas()
	case document.FieldResolucionPpi:
		return m.AddedResolucionPpi()
	case document.FieldCalidadEstimativa:
		return m.AddedCalidadEstimativa()
	case document.FieldEstado:
		return m.AddedEstado()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DocumentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case document.FieldTamanoBytes:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTamanoBytes(v)
		return nil
	case document.FieldNumeroPaginas:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNumeroPaginas(v)
		return nil
	case document.FieldResolucionPpi:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddResolucionPpi(v)
		return nil
	case document.FieldCalidadEstimativa:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCalidadEstimativa(v)
		return nil
	case document.FieldEstado:
		v, ok := value.(constants.Estado)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstado(v)
		return nil
	}
	return fmt.Errorf("unknown Document numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DocumentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(document.FieldArchivoPadre) {
		fields = append(fields, document.FieldArchivoPadre)
	}
	if m.FieldCleared(document.FieldDeletedAt) {
		fields = append(fields, document.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DocumentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DocumentMutation) ClearField(name string) error {
	switch name {
	case document.FieldArchivoPadre:
		m.ClearArchivoPadre()
		return nil
	case document.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Document nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DocumentMutation) ResetField(name string) error {
	switch name {
	case document.FieldNombreArchivo:
		m.ResetNombreArchivo()
		return nil
	case document.FieldArchivoPadre:
		m.ResetArchivoPadre()
		return nil
	case document.FieldHashArchivo:
		m.ResetHashArchivo()
		return nil
	case document.FieldTamanoBytes:
		m.ResetTamanoBytes()
		return nil
	case document.FieldNumeroPaginas:
		m.ResetNumeroPaginas()
		return nil
	case document.FieldTipoDocumento:
		m.ResetTipoDocumento()
		return nil
	case document.FieldResolucionPpi:
		m.ResetResolucionPpi()
		return nil
	case document.FieldCalidadEstimativa:
		m.ResetCalidadEstimativa()
		return nil
	case document.FieldEstado:
		m.ResetEstado()
		return nil
	case document.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case document.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case document.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Document field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DocumentMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.textos != nil {
		edges = append(edges, document.EdgeTextos)
	}
	if m.campos != nil {
		edges = append(edges, document.EdgeCampos)
	}
	if m.consolidados != nil {
		edges = append(edges, document.EdgeConsolidados)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DocumentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeTextos:
		ids := make([]ent.Value, 0, len(m.textos))
		for id := range m.textos {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeCampos:
		ids := make([]ent.Value, 0, len(m.campos))
		for id := range m.campos {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeConsolidados:
		ids := make([]ent.Value, 0, len(m.consolidados))
		for id := range m.consolidados {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DocumentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedtextos != nil {
		edges = append(edges, document.EdgeTextos)
	}
	if m.removedcampos != nil {
		edges = append(edges, document.EdgeCampos)
	}
	if m.removedconsolidados != nil {
		edges = append(edges, document.EdgeConsolidados)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DocumentMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case document.EdgeTextos:
		ids := make([]ent.Value, 0, len(m.removedtextos))
		for id := range m.removedtextos {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeCampos:
		ids := make([]ent.Value, 0, len(m.removedcampos))
		for id := range m.removedcampos {
			ids = append(ids, id)
		}
		return ids
	case document.EdgeConsolidados:
		ids := make([]ent.Value, 0, len(m.removedconsolidados))
		for id := range m.removedconsolidados {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DocumentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedtextos {
		edges = append(edges, document.EdgeTextos)
	}
	if m.clearedcampos {
		edges = append(edges, document.EdgeCampos)
	}
	if m.clearedconsolidados {
		edges = append(edges, document.EdgeConsolidados)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DocumentMutation) EdgeCleared(name string) bool {
	switch name {
	case document.EdgeTextos:
		return m.clearedtextos
	case document.EdgeCampos:
		return m.clearedcampos
	case document.EdgeConsolidados:
		return m.clearedconsolidados
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DocumentMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Document unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DocumentMutation) ResetEdge(name string) error {
	switch name {
	case document.EdgeTextos:
		m.ResetTextos()
		return nil
	case document.EdgeCampos:
		m.ResetCampos()
		return nil
	case document.EdgeConsolidados:
		m.ResetConsolidados()
		return nil
	}
	return fmt.Errorf("unknown Document edge %s", name)
}

// ExtraccionCampoMutation represents an operation that mutates the ExtraccionCampo nodes in the graph.
type ExtraccionCampoMutation struct {
	config
	op               Op
	typ              string
	id               *int
	metodo           *string
	campo            *string
	valor            *string
	score            *float64
	addscore         *float64
	archivo_origen   *string
	generacion       *int
	addgeneracion    *int
	deleted_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	documento        *int
	cleareddocumento bool
	done             bool
	oldValue         func(context.Context) (*ExtraccionCampo, error)
	predicates       []predicate.ExtraccionCampo
}

var _ ent.Mutation = (*ExtraccionCampoMutation)(nil)

// extraccioncampoOption allows management of the mutation configuration using functional options.
type extraccioncampoOption func(*ExtraccionCampoMutation)

// newExtraccionCampoMutation creates new mutation for the ExtraccionCampo entity.
func newExtraccionCampoMutation(c config, op Op, opts ...extraccioncampoOption) *ExtraccionCampoMutation {
	m := &ExtraccionCampoMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraccionCampo,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtraccionCampoID sets the ID field of the mutation.
func withExtraccionCampoID(id int) extraccioncampoOption {
	return func(m *ExtraccionCampoMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtraccionCampo
		)
		m.oldValue = func(ctx context.Context) (*ExtraccionCampo, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtraccionCampo.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraccionCampo sets the old ExtraccionCampo of the mutation.
func withExtraccionCampo(node *ExtraccionCampo) extraccioncampoOption {
	return func(m *ExtraccionCampoMutation) {
		m.oldValue = func(context.Context) (*ExtraccionCampo, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtraccionCampoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtraccionCampoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtraccionCampoMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtraccionCampoMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtraccionCampo.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentoID sets the "documento_id" field.
func (m *ExtraccionCampoMutation) SetDocumentoID(i int) {
	m.documento = &i
}

// DocumentoID returns the value of the "documento_id" field in the mutation.
func (m *ExtraccionCampoMutation) DocumentoID() (r int, exists bool) {
	v := m.documento
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentoID returns the old "documento_id" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldDocumentoID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentoID: %w", err)
	}
	return oldValue.DocumentoID, nil
}

// ResetDocumentoID resets all changes to the "documento_id" field.
func (m *ExtraccionCampoMutation) ResetDocumentoID() {
	m.documento = nil
}

// SetMetodo sets the "metodo" field.
func (m *ExtraccionCampoMutation) SetMetodo(s string) {
	m.metodo = &s
}

// Metodo returns the value of the "metodo" field in the mutation.
func (m *ExtraccionCampoMutation) Metodo() (r string, exists bool) {
	v := m.metodo
	if v == nil {
		return
	}
	return *v, true
}

// OldMetodo returns the old "metodo" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldMetodo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetodo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetodo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetodo: %w", err)
	}
	return oldValue.Metodo, nil
}

// ResetMetodo resets all changes to the "metodo" field.
func (m *ExtraccionCampoMutation) ResetMetodo() {
	m.metodo = nil
}

// SetCampo sets the "campo" field.
func (m *ExtraccionCampoMutation) SetCampo(s string) {
	m.campo = &s
}

// Campo returns the value of the "campo" field in the mutation.
func (m *ExtraccionCampoMutation) Campo() (r string, exists bool) {
	v := m.campo
	if v == nil {
		return
	}
	return *v, true
}

// OldCampo returns the old "campo" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldCampo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCampo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCampo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCampo: %w", err)
	}
	return oldValue.Campo, nil
}

// ResetCampo resets all changes to the "campo" field.
func (m *ExtraccionCampoMutation) ResetCampo() {
	m.campo = nil
}

// SetValor sets the "valor" field.
func (m *ExtraccionCampoMutation) SetValor(s string) {
	m.valor = &s
}

// Valor returns the value of the "valor" field in the mutation.
func (m *ExtraccionCampoMutation) Valor() (r string, exists bool) {
	v := m.valor
	if v == nil {
		return
	}
	return *v, true
}

// OldValor returns the old "valor" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldValor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValor: %w", err)
	}
	return oldValue.Valor, nil
}

// ResetValor resets all changes to the "valor" field.
func (m *ExtraccionCampoMutation) ResetValor() {
	m.valor = nil
}

// SetScore sets the "score" field.
func (m *ExtraccionCampoMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *ExtraccionCampoMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *ExtraccionCampoMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *ExtraccionCampoMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *ExtraccionCampoMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[extraccioncampo.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *ExtraccionCampoMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[extraccioncampo.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *ExtraccionCampoMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, extraccioncampo.FieldScore)
}

// SetArchivoOrigen sets the "archivo_origen" field.
func (m *ExtraccionCampoMutation) SetArchivoOrigen(s string) {
	m.archivo_origen = &s
}

// ArchivoOrigen returns the value of the "archivo_origen" field in the mutation.
func (m *ExtraccionCampoMutation) ArchivoOrigen() (r string, exists bool) {
	v := m.archivo_origen
	if v == nil {
		return
	}
	return *v, true
}

// OldArchivoOrigen returns the old "archivo_origen" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldArchivoOrigen(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArchivoOrigen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArchivoOrigen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArchivoOrigen: %w", err)
	}
	return oldValue.ArchivoOrigen, nil
}

// ResetArchivoOrigen resets all changes to the "archivo_origen" field.
func (m *ExtraccionCampoMutation) ResetArchivoOrigen() {
	m.archivo_origen = nil
}

// SetGeneracion sets the "generacion" field.
func (m *ExtraccionCampoMutation) SetGeneracion(i int) {
	m.generacion = &i
	m.addgeneracion = nil
}

// Generacion returns the value of the "generacion" field in the mutation.
func (m *ExtraccionCampoMutation) Generacion() (r int, exists bool) {
	v := m.generacion
	if v == nil {
		return
	}
	return *v, true
}

// OldGeneracion returns the old "generacion" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldGeneracion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGeneracion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGeneracion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGeneracion: %w", err)
	}
	return oldValue.Generacion, nil
}

// AddGeneracion adds i to the "generacion" field.
func (m *ExtraccionCampoMutation) AddGeneracion(i int) {
	if m.addgeneracion != nil {
		*m.addgeneracion += i
	} else {
		m.addgeneracion = &i
	}
}

// AddedGeneracion returns the value that was added to the "generacion" field in this mutation.
func (m *ExtraccionCampoMutation) AddedGeneracion() (r int, exists bool) {
	v := m.addgeneracion
	if v == nil {
		return
	}
	return *v, true
}

// ResetGeneracion resets all changes to the "generacion" field.
func (m *ExtraccionCampoMutation) ResetGeneracion() {
	m.generacion = nil
	m.addgeneracion = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ExtraccionCampoMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ExtraccionCampoMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ExtraccionCampoMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[extraccioncampo.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ExtraccionCampoMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[extraccioncampo.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ExtraccionCampoMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, extraccioncampo.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtraccionCampoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtraccionCampoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtraccionCampoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtraccionCampoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtraccionCampoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtraccionCampo entity.
// If the ExtraccionCampo object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionCampoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtraccionCampoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (m *ExtraccionCampoMutation) ClearDocumento() {
	m.cleareddocumento = true
	m.clearedFields[extraccioncampo.FieldDocumentoID] = struct{}{}
}

// DocumentoCleared reports if the "documento" edge to the Document entity was cleared.
func (m *ExtraccionCampoMutation) DocumentoCleared() bool {
	return m.cleareddocumento
}

// DocumentoIDs returns the "documento" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentoID instead. It exists only for internal usage by the builders.
func (m *ExtraccionCampoMutation) DocumentoIDs() (ids []int) {
	if id := m.documento; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocumento resets all changes to the "documento" edge.
func (m *ExtraccionCampoMutation) ResetDocumento() {
	m.documento = nil
	m.cleareddocumento = false
}

// Where appends a list predicates to the ExtraccionCampoMutation builder.
func (m *ExtraccionCampoMutation) Where(ps ...predicate.ExtraccionCampo) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtraccionCampoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtraccionCampoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtraccionCampo, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtraccionCampoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtraccionCampoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtraccionCampo).
func (m *ExtraccionCampoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtraccionCampoMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.documento != nil {
		fields = append(fields, extraccioncampo.FieldDocumentoID)
	}
	if m.metodo != nil {
		fields = append(fields, extraccioncampo.FieldMetodo)
	}
	if m.campo != nil {
		fields = append(fields, extraccioncampo.FieldCampo)
	}
	if m.valor != nil {
		fields = append(fields, extraccioncampo.FieldValor)
	}
	if m.score != nil {
		fields = append(fields, extraccioncampo.FieldScore)
	}
	if m.archivo_origen != nil {
		fields = append(fields, extraccioncampo.FieldArchivoOrigen)
	}
	if m.generacion != nil {
		fields = append(fields, extraccioncampo.FieldGeneracion)
	}
	if m.deleted_at != nil {
		fields = append(fields, extraccioncampo.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, extraccioncampo.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extraccioncampo.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtraccionCampoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extraccioncampo.FieldDocumentoID:
		return m.DocumentoID()
	case extraccioncampo.FieldMetodo:
		return m.Metodo()
	case extraccioncampo.FieldCampo:
		return m.Campo()
	case extraccioncampo.FieldValor:
		return m.Valor()
	case extraccioncampo.FieldScore:
		return m.Score()
	case extraccioncampo.FieldArchivoOrigen:
		return m.ArchivoOrigen()
	case extraccioncampo.FieldGeneracion:
		return m.Generacion()
	case extraccioncampo.FieldDeletedAt:
		return m.DeletedAt()
	case extraccioncampo.FieldCreatedAt:
		return m.CreatedAt()
	case extraccioncampo.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtraccionCampoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extraccioncampo.FieldDocumentoID:
		return m.OldDocumentoID(ctx)
	case extraccioncampo.FieldMetodo:
		return m.OldMetodo(ctx)
	case extraccioncampo.FieldCampo:
		return m.OldCampo(ctx)
	case extraccioncampo.FieldValor:
		return m.OldValor(ctx)
	case extraccioncampo.FieldScore:
		return m.OldScore(ctx)
	case extraccioncampo.FieldArchivoOrigen:
		return m.OldArchivoOrigen(ctx)
	case extraccioncampo.FieldGeneracion:
		return m.OldGeneracion(ctx)
	case extraccioncampo.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case extraccioncampo.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extraccioncampo.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtraccionCampo field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtraccionCampoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extraccioncampo.FieldDocumentoID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentoID(v)
		return nil
	case extraccioncampo.FieldMetodo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetodo(v)
		return nil
	case extraccioncampo.FieldCampo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCampo(v)
		return nil
	case extraccioncampo.FieldValor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValor(v)
		return nil
	case extraccioncampo.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case extraccioncampo.FieldArchivoOrigen:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArchivoOrigen(v)
		return nil
	case extraccioncampo.FieldGeneracion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGeneracion(v)
		return nil
	case extraccioncampo.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case extraccioncampo.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extraccioncampo.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtraccionCampo field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtraccionCampoMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, extraccioncampo.FieldScore)
	}
	if m.addgeneracion != nil {
		fields = append(fields, extraccioncampo.FieldGeneracion)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtraccionCampoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extraccioncampo.FieldScore:
		return m.AddedScore()
	case extraccioncampo.FieldGeneracion:
		return m.AddedGeneracion()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtraccionCampoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extraccioncampo.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case extraccioncampo.FieldGeneracion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGeneracion(v)
		return nil
	}
	return fmt.Errorf("unknown ExtraccionCampo numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtraccionCampoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extraccioncampo.FieldScore) {
		fields = append(fields, extraccioncampo.FieldScore)
	}
	if m.FieldCleared(extraccioncampo.FieldDeletedAt) {
		fields = append(fields, extraccioncampo.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtraccionCampoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtraccionCampoMutation) ClearField(name string) error {
	switch name {
	case extraccioncampo.FieldScore:
		m.ClearScore()
		return nil
	case extraccioncampo.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtraccionCampo nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtraccionCampoMutation) ResetField(name string) error {
	switch name {
	case extraccioncampo.FieldDocumentoID:
		m.ResetDocumentoID()
		return nil
	case extraccioncampo.FieldMetodo:
		m.ResetMetodo()
		return nil
	case extraccioncampo.FieldCampo:
		m.ResetCampo()
		return nil
	case extraccioncampo.FieldValor:
		m.ResetValor()
		return nil
	case extraccioncampo.FieldScore:
		m.ResetScore()
		return nil
	case extraccioncampo.FieldArchivoOrigen:
		m.ResetArchivoOrigen()
		return nil
	case extraccioncampo.FieldGeneracion:
		m.ResetGeneracion()
		return nil
	case extraccioncampo.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case extraccioncampo.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extraccioncampo.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtraccionCampo field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtraccionCampoMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.documento != nil {
		edges = append(edges, extraccioncampo.EdgeDocumento)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtraccionCampoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extraccioncampo.EdgeDocumento:
		if id := m.documento; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtraccionCampoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtraccionCampoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtraccionCampoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocumento {
		edges = append(edges, extraccioncampo.EdgeDocumento)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtraccionCampoMutation) EdgeCleared(name string) bool {
	switch name {
	case extraccioncampo.EdgeDocumento:
		return m.cleareddocumento
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtraccionCampoMutation) ClearEdge(name string) error {
	switch name {
	case extraccioncampo.EdgeDocumento:
		m.ClearDocumento()
		return nil
	}
	return fmt.Errorf("unknown ExtraccionCampo unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtraccionCampoMutation) ResetEdge(name string) error {
	switch name {
	case extraccioncampo.EdgeDocumento:
		m.ResetDocumento()
		return nil
	}
	return fmt.Errorf("unknown ExtraccionCampo edge %s", name)
}

// ExtraccionTextoMutation represents an operation that mutates the ExtraccionTexto nodes in the graph.
type ExtraccionTextoMutation struct {
	config
	op               Op
	typ              string
	id               *int
	metodo           *string
	texto_extraccion *string
	entropia         *float64
	addentropia      *float64
	estado           *int
	addestado        *int
	deleted_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	documento        *int
	cleareddocumento bool
	done             bool
	oldValue         func(context.Context) (*ExtraccionTexto, error)
	predicates       []predicate.ExtraccionTexto
}

var _ ent.Mutation = (*ExtraccionTextoMutation)(nil)

// extracciontextoOption allows management of the mutation configuration using functional options.
type extracciontextoOption func(*ExtraccionTextoMutation)

// newExtraccionTextoMutation creates new mutation for the ExtraccionTexto entity.
func newExtraccionTextoMutation(c config, op Op, opts ...extracciontextoOption) *ExtraccionTextoMutation {
	m := &ExtraccionTextoMutation{
		config:        c,
		op:            op,
		typ:           TypeExtraccionTexto,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtraccionTextoID sets the ID field of the mutation.
func withExtraccionTextoID(id int) extracciontextoOption {
	return func(m *ExtraccionTextoMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtraccionTexto
		)
		m.oldValue = func(ctx context.Context) (*ExtraccionTexto, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtraccionTexto.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtraccionTexto sets the old ExtraccionTexto of the mutation.
func withExtraccionTexto(node *ExtraccionTexto) extracciontextoOption {
	return func(m *ExtraccionTextoMutation) {
		m.oldValue = func(context.Context) (*ExtraccionTexto, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtraccionTextoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtraccionTextoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtraccionTextoMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtraccionTextoMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtraccionTexto.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDocumentoID sets the "documento_id" field.
func (m *ExtraccionTextoMutation) SetDocumentoID(i int) {
	m.documento = &i
}

// DocumentoID returns the value of the "documento_id" field in the mutation.
func (m *ExtraccionTextoMutation) DocumentoID() (r int, exists bool) {
	v := m.documento
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentoID returns the old "documento_id" field's value of the ExtraccionTexto entity.
// If the ExtraccionTexto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionTextoMutation) OldDocumentoID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentoID: %w", err)
	}
	return oldValue.DocumentoID, nil
}

// ResetDocumentoID resets all changes to the "documento_id" field.
func (m *ExtraccionTextoMutation) ResetDocumentoID() {
	m.documento = nil
}

// SetMetodo sets the "metodo" field.
func (m *ExtraccionTextoMutation) SetMetodo(s string) {
	m.metodo = &s
}

// Metodo returns the value of the "metodo" field in the mutation.
func (m *ExtraccionTextoMutation) Metodo() (r string, exists bool) {
	v := m.metodo
	if v == nil {
		return
	}
	return *v, true
}

// OldMetodo returns the old "metodo" field's value of the ExtraccionTexto entity.
// If the ExtraccionTexto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionTextoMutation) OldMetodo(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetodo is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetodo requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetodo: %w", err)
	}
	return oldValue.Metodo, nil
}

// ResetMetodo resets all changes to the "metodo" field.
func (m *ExtraccionTextoMutation) ResetMetodo() {
	m.metodo = nil
}

// SetTextoExtraccion sets the "texto_extraccion" field.
func (m *ExtraccionTextoMutation) SetTextoExtraccion(s string) {
	m.texto_extraccion = &s
}

// TextoExtraccion returns the value of the "texto_extraccion" field in the mutation.
func (m *ExtraccionTextoMutation) TextoExtraccion() (r string, exists bool) {
	v := m.texto_extraccion
	if v == nil {
		return
	}
	return *v, true
}

// OldTextoExtraccion returns the old "texto_extraccion" field's value of the ExtraccionTexto entity.
// If the ExtraccionTexto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionTextoMutation) OldTextoExtraccion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTextoExtraccion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTextoExtraccion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTextoExtraccion: %w", err)
	}
	return oldValue.TextoExtraccion, nil
}

// ResetTextoExtraccion resets all changes to the "texto_extraccion" field.
func (m *ExtraccionTextoMutation) ResetTextoExtraccion() {
	m.texto_extraccion = nil
}

// SetEntropia sets the "entropia" field.
func (m *ExtraccionTextoMutation) SetEntropia(f float64) {
	m.entropia = &f
	m.addentropia = nil
}

// Entropia returns the value of the "entropia" field in the mutation.
func (m *ExtraccionTextoMutation) Entropia() (r float64, exists bool) {
	v := m.entropia
	if v == nil {
		return
	}
	return *v, true
}

// OldEntropia returns the old "entropia" field's value of the ExtraccionTexto entity.
// If the ExtraccionTexto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionTextoMutation) OldEntropia(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntropia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntropia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntropia: %w", err)
	}
	return oldValue.Entropia, nil
}

// AddEntropia adds f to the "entropia" field.
func (m *ExtraccionTextoMutation) AddEntropia(f float64) {
	if m.addentropia != nil {
		*m.addentropia += f
	} else {
		m.addentropia = &f
	}
}

// AddedEntropia returns the value that was added to the "entropia" field in this mutation.
func (m *ExtraccionTextoMutation) AddedEntropia() (r float64, exists bool) {
	v := m.addentropia
	if v == nil {
		return
	}
	return *v, true
}

// ResetEntropia resets all changes to the "entropia" field.
func (m *ExtraccionTextoMutation) ResetEntropia() {
	m.entropia = nil
	m.addentropia = nil
}

// SetEstado sets the "estado" field.
func (m *ExtraccionTextoMutation) SetEstado(i int) {
	m.estado = &i
	m.addestado = nil
}

// Estado returns the value of the "estado" field in the mutation.
func (m *ExtraccionTextoMutation) Estado() (r int, exists bool) {
	v := m.estado
	if v == nil {
		return
	}
	return *v, true
}

// OldEstado returns the old "estado" field's value of the ExtraccionTexto entity.
// If the ExtraccionTexto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionTextoMutation) OldEstado(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstado is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstado requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstado: %w", err)
	}
	return oldValue.Estado, nil
}

// AddEstado adds i to the "estado" field.
func (m *ExtraccionTextoMutation) AddEstado(i int) {
	if m.addestado != nil {
		*m.addestado += i
	} else {
		m.addestado = &i
	}
}

// AddedEstado returns the value that was added to the "estado" field in this mutation.
func (m *ExtraccionTextoMutation) AddedEstado() (r int, exists bool) {
	v := m.addestado
	if v == nil {
		return
	}
	return *v, true
}

// ResetEstado resets all changes to the "estado" field.
func (m *ExtraccionTextoMutation) ResetEstado() {
	m.estado = nil
	m.addestado = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ExtraccionTextoMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ExtraccionTextoMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the ExtraccionTexto entity.
// If the ExtraccionTexto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionTextoMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ExtraccionTextoMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[extracciontexto.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ExtraccionTextoMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[extracciontexto.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ExtraccionTextoMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, extracciontexto.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtraccionTextoMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtraccionTextoMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtraccionTexto entity.
// If the ExtraccionTexto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionTextoMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtraccionTextoMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtraccionTextoMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtraccionTextoMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtraccionTexto entity.
// If the ExtraccionTexto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtraccionTextoMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtraccionTextoMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearDocumento clears the "documento" edge to the Document entity.
func (m *ExtraccionTextoMutation) ClearDocumento() {
	m.cleareddocumento = true
	m.clearedFields[extracciontexto.FieldDocumentoID] = struct{}{}
}

// DocumentoCleared reports if the "documento" edge to the Document entity was cleared.
func (m *ExtraccionTextoMutation) DocumentoCleared() bool {
	return m.cleareddocumento
}

// DocumentoIDs returns the "documento" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// DocumentoID instead. It exists only for internal usage by the builders.
func (m *ExtraccionTextoMutation) DocumentoIDs() (ids []int) {
	if id := m.documento; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetDocumento resets all changes to the "documento" edge.
func (m *ExtraccionTextoMutation) ResetDocumento() {
	m.documento = nil
	m.cleareddocumento = false
}

// Where appends a list predicates to the ExtraccionTextoMutation builder.
func (m *ExtraccionTextoMutation) Where(ps ...predicate.ExtraccionTexto) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtraccionTextoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtraccionTextoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtraccionTexto, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtraccionTextoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtraccionTextoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtraccionTexto).
func (m *ExtraccionTextoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtraccionTextoMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.documento != nil {
		fields = append(fields, extracciontexto.FieldDocumentoID)
	}
	if m.metodo != nil {
		fields = append(fields, extracciontexto.FieldMetodo)
	}
	if m.texto_extraccion != nil {
		fields = append(fields, extracciontexto.FieldTextoExtraccion)
	}
	if m.entropia != nil {
		fields = append(fields, extracciontexto.FieldEntropia)
	}
	if m.estado != nil {
		fields = append(fields, extracciontexto.FieldEstado)
	}
	if m.deleted_at != nil {
		fields = append(fields, extracciontexto.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, extracciontexto.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extracciontexto.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtraccionTextoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extracciontexto.FieldDocumentoID:
		return m.DocumentoID()
	case extracciontexto.FieldMetodo:
		return m.Metodo()
	case extracciontexto.FieldTextoExtraccion:
		return m.TextoExtraccion()
	case extracciontexto.FieldEntropia:
		return m.Entropia()
	case extracciontexto.FieldEstado:
		return m.Estado()
	case extracciontexto.FieldDeletedAt:
		return m.DeletedAt()
	case extracciontexto.FieldCreatedAt:
		return m.CreatedAt()
	case extracciontexto.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtraccionTextoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extracciontexto.FieldDocumentoID:
		return m.OldDocumentoID(ctx)
	case extracciontexto.FieldMetodo:
		return m.OldMetodo(ctx)
	case extracciontexto.FieldTextoExtraccion:
		return m.OldTextoExtraccion(ctx)
	case extracciontexto.FieldEntropia:
		return m.OldEntropia(ctx)
	case extracciontexto.FieldEstado:
		return m.OldEstado(ctx)
	case extracciontexto.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case extracciontexto.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extracciontexto.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtraccionTexto field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtraccionTextoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extracciontexto.FieldDocumentoID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentoID(v)
		return nil
	case extracciontexto.FieldMetodo:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetodo(v)
		return nil
	case extracciontexto.FieldTextoExtraccion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTextoExtraccion(v)
		return nil
	case extracciontexto.FieldEntropia:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntropia(v)
		return nil
	case extracciontexto.FieldEstado:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstado(v)
		return nil
	case extracciontexto.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case extracciontexto.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extracciontexto.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtraccionTexto field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtraccionTextoMutation) AddedFields() []string {
	var fields []string
	if m.addentropia != nil {
		fields = append(fields, extracciontexto.FieldEntropia)
	}
	if m.addestado != nil {
		fields = append(fields, extracciontexto.FieldEstado)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtraccionTextoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extracciontexto.FieldEntropia:
		return m.AddedEntropia()
	case extracciontexto.FieldEstado:
		return m.AddedEstado()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtraccionTextoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extracciontexto.FieldEntropia:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEntropia(v)
		return nil
	case extracciontexto.FieldEstado:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEstado(v)
		return nil
	}
	return fmt.Errorf("unknown ExtraccionTexto numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtraccionTextoMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extracciontexto.FieldDeletedAt) {
		fields = append(fields, extracciontexto.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtraccionTextoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtraccionTextoMutation) ClearField(name string) error {
	switch name {
	case extracciontexto.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtraccionTexto nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtraccionTextoMutation) ResetField(name string) error {
	switch name {
	case extracciontexto.FieldDocumentoID:
		m.ResetDocumentoID()
		return nil
	case extracciontexto.FieldMetodo:
		m.ResetMetodo()
		return nil
	case extracciontexto.FieldTextoExtraccion:
		m.ResetTextoExtraccion()
		return nil
	case extracciontexto.FieldEntropia:
		m.ResetEntropia()
		return nil
	case extracciontexto.FieldEstado:
		m.ResetEstado()
		return nil
	case extracciontexto.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case extracciontexto.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extracciontexto.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtraccionTexto field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtraccionTextoMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.documento != nil {
		edges = append(edges, extracciontexto.EdgeDocumento)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtraccionTextoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extracciontexto.EdgeDocumento:
		if id := m.documento; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtraccionTextoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtraccionTextoMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtraccionTextoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareddocumento {
		edges = append(edges, extracciontexto.EdgeDocumento)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtraccionTextoMutation) EdgeCleared(name string) bool {
	switch name {
	case extracciontexto.EdgeDocumento:
		return m.cleareddocumento
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtraccionTextoMutation) ClearEdge(name string) error {
	switch name {
	case extracciontexto.EdgeDocumento:
		m.ClearDocumento()
		return nil
	}
	return fmt.Errorf("unknown ExtraccionTexto unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtraccionTextoMutation) ResetEdge(name string) error {
	switch name {
	case extracciontexto.EdgeDocumento:
		m.ResetDocumento()
		return nil
	}
	return fmt.Errorf("unknown ExtraccionTexto edge %s", name)
}
