// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/billfold/invoice-ingest/gen/ent/contentblob"
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/invoice"
	"github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/billfold/invoice-ingest/gen/ent/predicate"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeContentBlob = "ContentBlob"
	TypeIngestJob   = "IngestJob"
	TypeInvoice     = "Invoice"
	TypeJobBatch    = "JobBatch"
	TypeProfile     = "Profile"
)

// ContentBlobMutation represents an operation that mutates the ContentBlob nodes in the graph.
type ContentBlobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	hash            *[]byte
	byte_size       *int64
	addbyte_size    *int64
	storage_ref     *string
	first_seen_at   *time.Time
	clearedFields   map[string]struct{}
	profile         *uuid.UUID
	clearedprofile  bool
	invoices        map[uuid.UUID]struct{}
	removedinvoices map[uuid.UUID]struct{}
	clearedinvoices bool
	done            bool
	oldValue        func(context.Context) (*ContentBlob, error)
	predicates      []predicate.ContentBlob
}

var _ ent.Mutation = (*ContentBlobMutation)(nil)

// contentblobOption allows management of the mutation configuration using functional options.
type contentblobOption func(*ContentBlobMutation)

// newContentBlobMutation creates new mutation for the ContentBlob entity.
func newContentBlobMutation(c config, op Op, opts ...contentblobOption) *ContentBlobMutation {
	m := &ContentBlobMutation{
		config:        c,
		op:            op,
		typ:           TypeContentBlob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentBlobID sets the ID field of the mutation.
func withContentBlobID(id uuid.UUID) contentblobOption {
	return func(m *ContentBlobMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentBlob
		)
		m.oldValue = func(ctx context.Context) (*ContentBlob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentBlob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentBlob sets the old ContentBlob of the mutation.
func withContentBlob(node *ContentBlob) contentblobOption {
	return func(m *ContentBlobMutation) {
		m.oldValue = func(context.Context) (*ContentBlob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentBlobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentBlobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ContentBlob entities.
func (m *ContentBlobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentBlobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentBlobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentBlob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *ContentBlobMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *ContentBlobMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *ContentBlobMutation) ResetProfileID() {
	m.profile = nil
}

// SetHash sets the "hash" field.
func (m *ContentBlobMutation) SetHash(b []byte) {
	m.hash = &b
}

// Hash returns the value of the "hash" field in the mutation.
func (m *ContentBlobMutation) Hash() (r []byte, exists bool) {
	v := m.hash
	if v == nil {
		return
	}
	return *v, true
}

// OldHash returns the old "hash" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHash: %w", err)
	}
	return oldValue.Hash, nil
}

// ResetHash resets all changes to the "hash" field.
func (m *ContentBlobMutation) ResetHash() {
	m.hash = nil
}

// SetByteSize sets the "byte_size" field.
func (m *ContentBlobMutation) SetByteSize(i int64) {
	m.byte_size = &i
	m.addbyte_size = nil
}

// ByteSize returns the value of the "byte_size" field in the mutation.
func (m *ContentBlobMutation) ByteSize() (r int64, exists bool) {
	v := m.byte_size
	if v == nil {
		return
	}
	return *v, true
}

// OldByteSize returns the old "byte_size" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldByteSize(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldByteSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldByteSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldByteSize: %w", err)
	}
	return oldValue.ByteSize, nil
}

// AddByteSize adds i to the "byte_size" field.
func (m *ContentBlobMutation) AddByteSize(i int64) {
	if m.addbyte_size != nil {
		*m.addbyte_size += i
	} else {
		m.addbyte_size = &i
	}
}

// AddedByteSize returns the value that was added to the "byte_size" field in this mutation.
func (m *ContentBlobMutation) AddedByteSize() (r int64, exists bool) {
	v := m.addbyte_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetByteSize resets all changes to the "byte_size" field.
func (m *ContentBlobMutation) ResetByteSize() {
	m.byte_size = nil
	m.addbyte_size = nil
}

// SetStorageRef sets the "storage_ref" field.
func (m *ContentBlobMutation) SetStorageRef(s string) {
	m.storage_ref = &s
}

// StorageRef returns the value of the "storage_ref" field in the mutation.
func (m *ContentBlobMutation) StorageRef() (r string, exists bool) {
	v := m.storage_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageRef returns the old "storage_ref" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldStorageRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageRef: %w", err)
	}
	return oldValue.StorageRef, nil
}

// ResetStorageRef resets all changes to the "storage_ref" field.
func (m *ContentBlobMutation) ResetStorageRef() {
	m.storage_ref = nil
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (m *ContentBlobMutation) SetFirstSeenAt(t time.Time) {
	m.first_seen_at = &t
}

// FirstSeenAt returns the value of the "first_seen_at" field in the mutation.
func (m *ContentBlobMutation) FirstSeenAt() (r time.Time, exists bool) {
	v := m.first_seen_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFirstSeenAt returns the old "first_seen_at" field's value of the ContentBlob entity.
// If the ContentBlob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentBlobMutation) OldFirstSeenAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFirstSeenAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFirstSeenAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFirstSeenAt: %w", err)
	}
	return oldValue.FirstSeenAt, nil
}

// ResetFirstSeenAt resets all changes to the "first_seen_at" field.
func (m *ContentBlobMutation) ResetFirstSeenAt() {
	m.first_seen_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *ContentBlobMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[contentblob.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *ContentBlobMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *ContentBlobMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *ContentBlobMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *ContentBlobMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *ContentBlobMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *ContentBlobMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *ContentBlobMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *ContentBlobMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *ContentBlobMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *ContentBlobMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// Where appends a list predicates to the ContentBlobMutation builder.
func (m *ContentBlobMutation) Where(ps ...predicate.ContentBlob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentBlobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentBlobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentBlob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentBlobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentBlobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentBlob).
func (m *ContentBlobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentBlobMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.profile != nil {
		fields = append(fields, contentblob.FieldProfileID)
	}
	if m.hash != nil {
		fields = append(fields, contentblob.FieldHash)
	}
	if m.byte_size != nil {
		fields = append(fields, contentblob.FieldByteSize)
	}
	if m.storage_ref != nil {
		fields = append(fields, contentblob.FieldStorageRef)
	}
	if m.first_seen_at != nil {
		fields = append(fields, contentblob.FieldFirstSeenAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentBlobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentblob.FieldProfileID:
		return m.ProfileID()
	case contentblob.FieldHash:
		return m.Hash()
	case contentblob.FieldByteSize:
		return m.ByteSize()
	case contentblob.FieldStorageRef:
		return m.StorageRef()
	case contentblob.FieldFirstSeenAt:
		return m.FirstSeenAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentBlobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentblob.FieldProfileID:
		return m.OldProfileID(ctx)
	case contentblob.FieldHash:
		return m.OldHash(ctx)
	case contentblob.FieldByteSize:
		return m.OldByteSize(ctx)
	case contentblob.FieldStorageRef:
		return m.OldStorageRef(ctx)
	case contentblob.FieldFirstSeenAt:
		return m.OldFirstSeenAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContentBlob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentBlobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentblob.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case contentblob.FieldHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHash(v)
		return nil
	case contentblob.FieldByteSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetByteSize(v)
		return nil
	case contentblob.FieldStorageRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageRef(v)
		return nil
	case contentblob.FieldFirstSeenAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFirstSeenAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContentBlob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentBlobMutation) AddedFields() []string {
	var fields []string
	if m.addbyte_size != nil {
		fields = append(fields, contentblob.FieldByteSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentBlobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contentblob.FieldByteSize:
		return m.AddedByteSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentBlobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contentblob.FieldByteSize:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddByteSize(v)
		return nil
	}
	return fmt.Errorf("unknown ContentBlob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentBlobMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentBlobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentBlobMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContentBlob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentBlobMutation) ResetField(name string) error {
	switch name {
	case contentblob.FieldProfileID:
		m.ResetProfileID()
		return nil
	case contentblob.FieldHash:
		m.ResetHash()
		return nil
	case contentblob.FieldByteSize:
		m.ResetByteSize()
		return nil
	case contentblob.FieldStorageRef:
		m.ResetStorageRef()
		return nil
	case contentblob.FieldFirstSeenAt:
		m.ResetFirstSeenAt()
		return nil
	}
	return fmt.Errorf("unknown ContentBlob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentBlobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.profile != nil {
		edges = append(edges, contentblob.EdgeProfile)
	}
	if m.invoices != nil {
		edges = append(edges, contentblob.EdgeInvoices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentBlobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contentblob.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case contentblob.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentBlobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedinvoices != nil {
		edges = append(edges, contentblob.EdgeInvoices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentBlobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case contentblob.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentBlobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprofile {
		edges = append(edges, contentblob.EdgeProfile)
	}
	if m.clearedinvoices {
		edges = append(edges, contentblob.EdgeInvoices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentBlobMutation) EdgeCleared(name string) bool {
	switch name {
	case contentblob.EdgeProfile:
		return m.clearedprofile
	case contentblob.EdgeInvoices:
		return m.clearedinvoices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentBlobMutation) ClearEdge(name string) error {
	switch name {
	case contentblob.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown ContentBlob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentBlobMutation) ResetEdge(name string) error {
	switch name {
	case contentblob.EdgeProfile:
		m.ResetProfile()
		return nil
	case contentblob.EdgeInvoices:
		m.ResetInvoices()
		return nil
	}
	return fmt.Errorf("unknown ContentBlob edge %s", name)
}

// IngestJobMutation represents an operation that mutates the IngestJob nodes in the graph.
type IngestJobMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	phase           *string
	folder          *string
	criteria        *string
	cursor          *uint32
	addcursor       *int32
	scanned         *uint32
	addscanned      *int32
	matched         *uint32
	addmatched      *int32
	extracted       *uint32
	addextracted    *int32
	duplicates      *uint32
	addduplicates   *int32
	failed          *uint32
	addfailed       *int32
	error_log       *json.RawMessage
	appenderror_log json.RawMessage
	cancelled       *bool
	started_at      *time.Time
	finished_at     *time.Time
	clearedFields   map[string]struct{}
	profile         *uuid.UUID
	clearedprofile  bool
	batches         map[uuid.UUID]struct{}
	removedbatches  map[uuid.UUID]struct{}
	clearedbatches  bool
	done            bool
	oldValue        func(context.Context) (*IngestJob, error)
	predicates      []predicate.IngestJob
}

var _ ent.Mutation = (*IngestJobMutation)(nil)

// ingestjobOption allows management of the mutation configuration using functional options.
type ingestjobOption func(*IngestJobMutation)

// newIngestJobMutation creates new mutation for the IngestJob entity.
func newIngestJobMutation(c config, op Op, opts ...ingestjobOption) *IngestJobMutation {
	m := &IngestJobMutation{
		config:        c,
		op:            op,
		typ:           TypeIngestJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIngestJobID sets the ID field of the mutation.
func withIngestJobID(id uuid.UUID) ingestjobOption {
	return func(m *IngestJobMutation) {
		var (
			err   error
			once  sync.Once
			value *IngestJob
		)
		m.oldValue = func(ctx context.Context) (*IngestJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().IngestJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIngestJob sets the old IngestJob of the mutation.
func withIngestJob(node *IngestJob) ingestjobOption {
	return func(m *IngestJobMutation) {
		m.oldValue = func(context.Context) (*IngestJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IngestJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IngestJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of IngestJob entities.
func (m *IngestJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IngestJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IngestJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().IngestJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *IngestJobMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *IngestJobMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *IngestJobMutation) ResetProfileID() {
	m.profile = nil
}

// SetPhase sets the "phase" field.
func (m *IngestJobMutation) SetPhase(s string) {
	m.phase = &s
}

// Phase returns the value of the "phase" field in the mutation.
func (m *IngestJobMutation) Phase() (r string, exists bool) {
	v := m.phase
	if v == nil {
		return
	}
	return *v, true
}

// OldPhase returns the old "phase" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldPhase(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhase is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhase requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhase: %w", err)
	}
	return oldValue.Phase, nil
}

// ResetPhase resets all changes to the "phase" field.
func (m *IngestJobMutation) ResetPhase() {
	m.phase = nil
}

// SetFolder sets the "folder" field.
func (m *IngestJobMutation) SetFolder(s string) {
	m.folder = &s
}

// Folder returns the value of the "folder" field in the mutation.
func (m *IngestJobMutation) Folder() (r string, exists bool) {
	v := m.folder
	if v == nil {
		return
	}
	return *v, true
}

// OldFolder returns the old "folder" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldFolder(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFolder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFolder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFolder: %w", err)
	}
	return oldValue.Folder, nil
}

// ResetFolder resets all changes to the "folder" field.
func (m *IngestJobMutation) ResetFolder() {
	m.folder = nil
}

// SetCriteria sets the "criteria" field.
func (m *IngestJobMutation) SetCriteria(s string) {
	m.criteria = &s
}

// Criteria returns the value of the "criteria" field in the mutation.
func (m *IngestJobMutation) Criteria() (r string, exists bool) {
	v := m.criteria
	if v == nil {
		return
	}
	return *v, true
}

// OldCriteria returns the old "criteria" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldCriteria(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCriteria is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCriteria requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCriteria: %w", err)
	}
	return oldValue.Criteria, nil
}

// ClearCriteria clears the value of the "criteria" field.
func (m *IngestJobMutation) ClearCriteria() {
	m.criteria = nil
	m.clearedFields[ingestjob.FieldCriteria] = struct{}{}
}

// CriteriaCleared returns if the "criteria" field was cleared in this mutation.
func (m *IngestJobMutation) CriteriaCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldCriteria]
	return ok
}

// ResetCriteria resets all changes to the "criteria" field.
func (m *IngestJobMutation) ResetCriteria() {
	m.criteria = nil
	delete(m.clearedFields, ingestjob.FieldCriteria)
}

// SetCursor sets the "cursor" field.
func (m *IngestJobMutation) SetCursor(u uint32) {
	m.cursor = &u
	m.addcursor = nil
}

// Cursor returns the value of the "cursor" field in the mutation.
func (m *IngestJobMutation) Cursor() (r uint32, exists bool) {
	v := m.cursor
	if v == nil {
		return
	}
	return *v, true
}

// OldCursor returns the old "cursor" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldCursor(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCursor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCursor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCursor: %w", err)
	}
	return oldValue.Cursor, nil
}

// AddCursor adds u to the "cursor" field.
func (m *IngestJobMutation) AddCursor(u int32) {
	if m.addcursor != nil {
		*m.addcursor += u
	} else {
		m.addcursor = &u
	}
}

// AddedCursor returns the value that was added to the "cursor" field in this mutation.
func (m *IngestJobMutation) AddedCursor() (r int32, exists bool) {
	v := m.addcursor
	if v == nil {
		return
	}
	return *v, true
}

// ResetCursor resets all changes to the "cursor" field.
func (m *IngestJobMutation) ResetCursor() {
	m.cursor = nil
	m.addcursor = nil
}

// SetScanned sets the "scanned" field.
func (m *IngestJobMutation) SetScanned(u uint32) {
	m.scanned = &u
	m.addscanned = nil
}

// Scanned returns the value of the "scanned" field in the mutation.
func (m *IngestJobMutation) Scanned() (r uint32, exists bool) {
	v := m.scanned
	if v == nil {
		return
	}
	return *v, true
}

// OldScanned returns the old "scanned" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldScanned(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScanned is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScanned requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScanned: %w", err)
	}
	return oldValue.Scanned, nil
}

// AddScanned adds u to the "scanned" field.
func (m *IngestJobMutation) AddScanned(u int32) {
	if m.addscanned != nil {
		*m.addscanned += u
	} else {
		m.addscanned = &u
	}
}

// AddedScanned returns the value that was added to the "scanned" field in this mutation.
func (m *IngestJobMutation) AddedScanned() (r int32, exists bool) {
	v := m.addscanned
	if v == nil {
		return
	}
	return *v, true
}

// ResetScanned resets all changes to the "scanned" field.
func (m *IngestJobMutation) ResetScanned() {
	m.scanned = nil
	m.addscanned = nil
}

// SetMatched sets the "matched" field.
func (m *IngestJobMutation) SetMatched(u uint32) {
	m.matched = &u
	m.addmatched = nil
}

// Matched returns the value of the "matched" field in the mutation.
func (m *IngestJobMutation) Matched() (r uint32, exists bool) {
	v := m.matched
	if v == nil {
		return
	}
	return *v, true
}

// OldMatched returns the old "matched" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldMatched(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMatched is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMatched requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMatched: %w", err)
	}
	return oldValue.Matched, nil
}

// AddMatched adds u to the "matched" field.
func (m *IngestJobMutation) AddMatched(u int32) {
	if m.addmatched != nil {
		*m.addmatched += u
	} else {
		m.addmatched = &u
	}
}

// AddedMatched returns the value that was added to the "matched" field in this mutation.
func (m *IngestJobMutation) AddedMatched() (r int32, exists bool) {
	v := m.addmatched
	if v == nil {
		return
	}
	return *v, true
}

// ResetMatched resets all changes to the "matched" field.
func (m *IngestJobMutation) ResetMatched() {
	m.matched = nil
	m.addmatched = nil
}

// SetExtracted sets the "extracted" field.
func (m *IngestJobMutation) SetExtracted(u uint32) {
	m.extracted = &u
	m.addextracted = nil
}

// Extracted returns the value of the "extracted" field in the mutation.
func (m *IngestJobMutation) Extracted() (r uint32, exists bool) {
	v := m.extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldExtracted returns the old "extracted" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldExtracted(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtracted: %w", err)
	}
	return oldValue.Extracted, nil
}

// AddExtracted adds u to the "extracted" field.
func (m *IngestJobMutation) AddExtracted(u int32) {
	if m.addextracted != nil {
		*m.addextracted += u
	} else {
		m.addextracted = &u
	}
}

// AddedExtracted returns the value that was added to the "extracted" field in this mutation.
func (m *IngestJobMutation) AddedExtracted() (r int32, exists bool) {
	v := m.addextracted
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtracted resets all changes to the "extracted" field.
func (m *IngestJobMutation) ResetExtracted() {
	m.extracted = nil
	m.addextracted = nil
}

// SetDuplicates sets the "duplicates" field.
func (m *IngestJobMutation) SetDuplicates(u uint32) {
	m.duplicates = &u
	m.addduplicates = nil
}

// Duplicates returns the value of the "duplicates" field in the mutation.
func (m *IngestJobMutation) Duplicates() (r uint32, exists bool) {
	v := m.duplicates
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicates returns the old "duplicates" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldDuplicates(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicates: %w", err)
	}
	return oldValue.Duplicates, nil
}

// AddDuplicates adds u to the "duplicates" field.
func (m *IngestJobMutation) AddDuplicates(u int32) {
	if m.addduplicates != nil {
		*m.addduplicates += u
	} else {
		m.addduplicates = &u
	}
}

// AddedDuplicates returns the value that was added to the "duplicates" field in this mutation.
func (m *IngestJobMutation) AddedDuplicates() (r int32, exists bool) {
	v := m.addduplicates
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuplicates resets all changes to the "duplicates" field.
func (m *IngestJobMutation) ResetDuplicates() {
	m.duplicates = nil
	m.addduplicates = nil
}

// SetFailed sets the "failed" field.
func (m *IngestJobMutation) SetFailed(u uint32) {
	m.failed = &u
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *IngestJobMutation) Failed() (r uint32, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldFailed(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds u to the "failed" field.
func (m *IngestJobMutation) AddFailed(u int32) {
	if m.addfailed != nil {
		*m.addfailed += u
	} else {
		m.addfailed = &u
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *IngestJobMutation) AddedFailed() (r int32, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *IngestJobMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// SetErrorLog sets the "error_log" field.
func (m *IngestJobMutation) SetErrorLog(jm json.RawMessage) {
	m.error_log = &jm
	m.appenderror_log = nil
}

// ErrorLog returns the value of the "error_log" field in the mutation.
func (m *IngestJobMutation) ErrorLog() (r json.RawMessage, exists bool) {
	v := m.error_log
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorLog returns the old "error_log" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldErrorLog(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorLog: %w", err)
	}
	return oldValue.ErrorLog, nil
}

// AppendErrorLog adds jm to the "error_log" field.
func (m *IngestJobMutation) AppendErrorLog(jm json.RawMessage) {
	m.appenderror_log = append(m.appenderror_log, jm...)
}

// AppendedErrorLog returns the list of values that were appended to the "error_log" field in this mutation.
func (m *IngestJobMutation) AppendedErrorLog() (json.RawMessage, bool) {
	if len(m.appenderror_log) == 0 {
		return nil, false
	}
	return m.appenderror_log, true
}

// ClearErrorLog clears the value of the "error_log" field.
func (m *IngestJobMutation) ClearErrorLog() {
	m.error_log = nil
	m.appenderror_log = nil
	m.clearedFields[ingestjob.FieldErrorLog] = struct{}{}
}

// ErrorLogCleared returns if the "error_log" field was cleared in this mutation.
func (m *IngestJobMutation) ErrorLogCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldErrorLog]
	return ok
}

// ResetErrorLog resets all changes to the "error_log" field.
func (m *IngestJobMutation) ResetErrorLog() {
	m.error_log = nil
	m.appenderror_log = nil
	delete(m.clearedFields, ingestjob.FieldErrorLog)
}

// SetCancelled sets the "cancelled" field.
func (m *IngestJobMutation) SetCancelled(b bool) {
	m.cancelled = &b
}

// Cancelled returns the value of the "cancelled" field in the mutation.
func (m *IngestJobMutation) Cancelled() (r bool, exists bool) {
	v := m.cancelled
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelled returns the old "cancelled" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldCancelled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelled: %w", err)
	}
	return oldValue.Cancelled, nil
}

// ResetCancelled resets all changes to the "cancelled" field.
func (m *IngestJobMutation) ResetCancelled() {
	m.cancelled = nil
}

// SetStartedAt sets the "started_at" field.
func (m *IngestJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *IngestJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *IngestJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *IngestJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *IngestJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the IngestJob entity.
// If the IngestJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IngestJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *IngestJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[ingestjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *IngestJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[ingestjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *IngestJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, ingestjob.FieldFinishedAt)
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *IngestJobMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[ingestjob.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *IngestJobMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *IngestJobMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *IngestJobMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// AddBatchIDs adds the "batches" edge to the JobBatch entity by ids.
func (m *IngestJobMutation) AddBatchIDs(ids ...uuid.UUID) {
	if m.batches == nil {
		m.batches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.batches[ids[i]] = struct{}{}
	}
}

// ClearBatches clears the "batches" edge to the JobBatch entity.
func (m *IngestJobMutation) ClearBatches() {
	m.clearedbatches = true
}

// BatchesCleared reports if the "batches" edge to the JobBatch entity was cleared.
func (m *IngestJobMutation) BatchesCleared() bool {
	return m.clearedbatches
}

// RemoveBatchIDs removes the "batches" edge to the JobBatch entity by IDs.
func (m *IngestJobMutation) RemoveBatchIDs(ids ...uuid.UUID) {
	if m.removedbatches == nil {
		m.removedbatches = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.batches, ids[i])
		m.removedbatches[ids[i]] = struct{}{}
	}
}

// RemovedBatches returns the removed IDs of the "batches" edge to the JobBatch entity.
func (m *IngestJobMutation) RemovedBatchesIDs() (ids []uuid.UUID) {
	for id := range m.removedbatches {
		ids = append(ids, id)
	}
	return
}

// BatchesIDs returns the "batches" edge IDs in the mutation.
func (m *IngestJobMutation) BatchesIDs() (ids []uuid.UUID) {
	for id := range m.batches {
		ids = append(ids, id)
	}
	return
}

// ResetBatches resets all changes to the "batches" edge.
func (m *IngestJobMutation) ResetBatches() {
	m.batches = nil
	m.clearedbatches = false
	m.removedbatches = nil
}

// Where appends a list predicates to the IngestJobMutation builder.
func (m *IngestJobMutation) Where(ps ...predicate.IngestJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IngestJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IngestJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.IngestJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IngestJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IngestJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (IngestJob).
func (m *IngestJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IngestJobMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.profile != nil {
		fields = append(fields, ingestjob.FieldProfileID)
	}
	if m.phase != nil {
		fields = append(fields, ingestjob.FieldPhase)
	}
	if m.folder != nil {
		fields = append(fields, ingestjob.FieldFolder)
	}
	if m.criteria != nil {
		fields = append(fields, ingestjob.FieldCriteria)
	}
	if m.cursor != nil {
		fields = append(fields, ingestjob.FieldCursor)
	}
	if m.scanned != nil {
		fields = append(fields, ingestjob.FieldScanned)
	}
	if m.matched != nil {
		fields = append(fields, ingestjob.FieldMatched)
	}
	if m.extracted != nil {
		fields = append(fields, ingestjob.FieldExtracted)
	}
	if m.duplicates != nil {
		fields = append(fields, ingestjob.FieldDuplicates)
	}
	if m.failed != nil {
		fields = append(fields, ingestjob.FieldFailed)
	}
	if m.error_log != nil {
		fields = append(fields, ingestjob.FieldErrorLog)
	}
	if m.cancelled != nil {
		fields = append(fields, ingestjob.FieldCancelled)
	}
	if m.started_at != nil {
		fields = append(fields, ingestjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, ingestjob.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IngestJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case ingestjob.FieldProfileID:
		return m.ProfileID()
	case ingestjob.FieldPhase:
		return m.Phase()
	case ingestjob.FieldFolder:
		return m.Folder()
	case ingestjob.FieldCriteria:
		return m.Criteria()
	case ingestjob.FieldCursor:
		return m.Cursor()
	case ingestjob.FieldScanned:
		return m.Scanned()
	case ingestjob.FieldMatched:
		return m.Matched()
	case ingestjob.FieldExtracted:
		return m.Extracted()
	case ingestjob.FieldDuplicates:
		return m.Duplicates()
	case ingestjob.FieldFailed:
		return m.Failed()
	case ingestjob.FieldErrorLog:
		return m.ErrorLog()
	case ingestjob.FieldCancelled:
		return m.Cancelled()
	case ingestjob.FieldStartedAt:
		return m.StartedAt()
	case ingestjob.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IngestJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case ingestjob.FieldProfileID:
		return m.OldProfileID(ctx)
	case ingestjob.FieldPhase:
		return m.OldPhase(ctx)
	case ingestjob.FieldFolder:
		return m.OldFolder(ctx)
	case ingestjob.FieldCriteria:
		return m.OldCriteria(ctx)
	case ingestjob.FieldCursor:
		return m.OldCursor(ctx)
	case ingestjob.FieldScanned:
		return m.OldScanned(ctx)
	case ingestjob.FieldMatched:
		return m.OldMatched(ctx)
	case ingestjob.FieldExtracted:
		return m.OldExtracted(ctx)
	case ingestjob.FieldDuplicates:
		return m.OldDuplicates(ctx)
	case ingestjob.FieldFailed:
		return m.OldFailed(ctx)
	case ingestjob.FieldErrorLog:
		return m.OldErrorLog(ctx)
	case ingestjob.FieldCancelled:
		return m.OldCancelled(ctx)
	case ingestjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case ingestjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown IngestJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case ingestjob.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case ingestjob.FieldPhase:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhase(v)
		return nil
	case ingestjob.FieldFolder:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFolder(v)
		return nil
	case ingestjob.FieldCriteria:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCriteria(v)
		return nil
	case ingestjob.FieldCursor:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCursor(v)
		return nil
	case ingestjob.FieldScanned:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScanned(v)
		return nil
	case ingestjob.FieldMatched:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMatched(v)
		return nil
	case ingestjob.FieldExtracted:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtracted(v)
		return nil
	case ingestjob.FieldDuplicates:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicates(v)
		return nil
	case ingestjob.FieldFailed:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	case ingestjob.FieldErrorLog:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorLog(v)
		return nil
	case ingestjob.FieldCancelled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelled(v)
		return nil
	case ingestjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case ingestjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown IngestJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IngestJobMutation) AddedFields() []string {
	var fields []string
	if m.addcursor != nil {
		fields = append(fields, ingestjob.FieldCursor)
	}
	if m.addscanned != nil {
		fields = append(fields, ingestjob.FieldScanned)
	}
	if m.addmatched != nil {
		fields = append(fields, ingestjob.FieldMatched)
	}
	if m.addextracted != nil {
		fields = append(fields, ingestjob.FieldExtracted)
	}
	if m.addduplicates != nil {
		fields = append(fields, ingestjob.FieldDuplicates)
	}
	if m.addfailed != nil {
		fields = append(fields, ingestjob.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IngestJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case ingestjob.FieldCursor:
		return m.AddedCursor()
	case ingestjob.FieldScanned:
		return m.AddedScanned()
	case ingestjob.FieldMatched:
		return m.AddedMatched()
	case ingestjob.FieldExtracted:
		return m.AddedExtracted()
	case ingestjob.FieldDuplicates:
		return m.AddedDuplicates()
	case ingestjob.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IngestJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case ingestjob.FieldCursor:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCursor(v)
		return nil
	case ingestjob.FieldScanned:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScanned(v)
		return nil
	case ingestjob.FieldMatched:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMatched(v)
		return nil
	case ingestjob.FieldExtracted:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtracted(v)
		return nil
	case ingestjob.FieldDuplicates:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuplicates(v)
		return nil
	case ingestjob.FieldFailed:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown IngestJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IngestJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(ingestjob.FieldCriteria) {
		fields = append(fields, ingestjob.FieldCriteria)
	}
	if m.FieldCleared(ingestjob.FieldErrorLog) {
		fields = append(fields, ingestjob.FieldErrorLog)
	}
	if m.FieldCleared(ingestjob.FieldFinishedAt) {
		fields = append(fields, ingestjob.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IngestJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IngestJobMutation) ClearField(name string) error {
	switch name {
	case ingestjob.FieldCriteria:
		m.ClearCriteria()
		return nil
	case ingestjob.FieldErrorLog:
		m.ClearErrorLog()
		return nil
	case ingestjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IngestJobMutation) ResetField(name string) error {
	switch name {
	case ingestjob.FieldProfileID:
		m.ResetProfileID()
		return nil
	case ingestjob.FieldPhase:
		m.ResetPhase()
		return nil
	case ingestjob.FieldFolder:
		m.ResetFolder()
		return nil
	case ingestjob.FieldCriteria:
		m.ResetCriteria()
		return nil
	case ingestjob.FieldCursor:
		m.ResetCursor()
		return nil
	case ingestjob.FieldScanned:
		m.ResetScanned()
		return nil
	case ingestjob.FieldMatched:
		m.ResetMatched()
		return nil
	case ingestjob.FieldExtracted:
		m.ResetExtracted()
		return nil
	case ingestjob.FieldDuplicates:
		m.ResetDuplicates()
		return nil
	case ingestjob.FieldFailed:
		m.ResetFailed()
		return nil
	case ingestjob.FieldErrorLog:
		m.ResetErrorLog()
		return nil
	case ingestjob.FieldCancelled:
		m.ResetCancelled()
		return nil
	case ingestjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case ingestjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown IngestJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IngestJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.profile != nil {
		edges = append(edges, ingestjob.EdgeProfile)
	}
	if m.batches != nil {
		edges = append(edges, ingestjob.EdgeBatches)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IngestJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case ingestjob.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case ingestjob.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.batches))
		for id := range m.batches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IngestJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedbatches != nil {
		edges = append(edges, ingestjob.EdgeBatches)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IngestJobMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case ingestjob.EdgeBatches:
		ids := make([]ent.Value, 0, len(m.removedbatches))
		for id := range m.removedbatches {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IngestJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprofile {
		edges = append(edges, ingestjob.EdgeProfile)
	}
	if m.clearedbatches {
		edges = append(edges, ingestjob.EdgeBatches)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IngestJobMutation) EdgeCleared(name string) bool {
	switch name {
	case ingestjob.EdgeProfile:
		return m.clearedprofile
	case ingestjob.EdgeBatches:
		return m.clearedbatches
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IngestJobMutation) ClearEdge(name string) error {
	switch name {
	case ingestjob.EdgeProfile:
		m.ClearProfile()
		return nil
	}
	return fmt.Errorf("unknown IngestJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IngestJobMutation) ResetEdge(name string) error {
	switch name {
	case ingestjob.EdgeProfile:
		m.ResetProfile()
		return nil
	case ingestjob.EdgeBatches:
		m.ResetBatches()
		return nil
	}
	return fmt.Errorf("unknown IngestJob edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op                      Op
	typ                     string
	id                      *uuid.UUID
	content_hash            *[]byte
	invoice_type            *string
	canonical_fields        *json.RawMessage
	appendcanonical_fields  json.RawMessage
	raw_engine_output       *json.RawMessage
	appendraw_engine_output json.RawMessage
	confidence_scores       *json.RawMessage
	appendconfidence_scores json.RawMessage
	validation              *json.RawMessage
	appendvalidation        json.RawMessage
	source                  *string
	lifecycle_state         *string
	deleted_at              *time.Time
	created_at              *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	profile                 *uuid.UUID
	clearedprofile          bool
	blob                    *uuid.UUID
	clearedblob             bool
	done                    bool
	oldValue                func(context.Context) (*Invoice, error)
	predicates              []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetProfileID sets the "profile_id" field.
func (m *InvoiceMutation) SetProfileID(u uuid.UUID) {
	m.profile = &u
}

// ProfileID returns the value of the "profile_id" field in the mutation.
func (m *InvoiceMutation) ProfileID() (r uuid.UUID, exists bool) {
	v := m.profile
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileID returns the old "profile_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldProfileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileID: %w", err)
	}
	return oldValue.ProfileID, nil
}

// ResetProfileID resets all changes to the "profile_id" field.
func (m *InvoiceMutation) ResetProfileID() {
	m.profile = nil
}

// SetBlobID sets the "blob_id" field.
func (m *InvoiceMutation) SetBlobID(u uuid.UUID) {
	m.blob = &u
}

// BlobID returns the value of the "blob_id" field in the mutation.
func (m *InvoiceMutation) BlobID() (r uuid.UUID, exists bool) {
	v := m.blob
	if v == nil {
		return
	}
	return *v, true
}

// OldBlobID returns the old "blob_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBlobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlobID: %w", err)
	}
	return oldValue.BlobID, nil
}

// ResetBlobID resets all changes to the "blob_id" field.
func (m *InvoiceMutation) ResetBlobID() {
	m.blob = nil
}

// SetContentHash sets the "content_hash" field.
func (m *InvoiceMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *InvoiceMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *InvoiceMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetInvoiceType sets the "invoice_type" field.
func (m *InvoiceMutation) SetInvoiceType(s string) {
	m.invoice_type = &s
}

// InvoiceType returns the value of the "invoice_type" field in the mutation.
func (m *InvoiceMutation) InvoiceType() (r string, exists bool) {
	v := m.invoice_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInvoiceType returns the old "invoice_type" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldInvoiceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInvoiceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInvoiceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInvoiceType: %w", err)
	}
	return oldValue.InvoiceType, nil
}

// ResetInvoiceType resets all changes to the "invoice_type" field.
func (m *InvoiceMutation) ResetInvoiceType() {
	m.invoice_type = nil
}

// SetCanonicalFields sets the "canonical_fields" field.
func (m *InvoiceMutation) SetCanonicalFields(jm json.RawMessage) {
	m.canonical_fields = &jm
	m.appendcanonical_fields = nil
}

// CanonicalFields returns the value of the "canonical_fields" field in the mutation.
func (m *InvoiceMutation) CanonicalFields() (r json.RawMessage, exists bool) {
	v := m.canonical_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalFields returns the old "canonical_fields" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCanonicalFields(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalFields: %w", err)
	}
	return oldValue.CanonicalFields, nil
}

// AppendCanonicalFields adds jm to the "canonical_fields" field.
func (m *InvoiceMutation) AppendCanonicalFields(jm json.RawMessage) {
	m.appendcanonical_fields = append(m.appendcanonical_fields, jm...)
}

// AppendedCanonicalFields returns the list of values that were appended to the "canonical_fields" field in this mutation.
func (m *InvoiceMutation) AppendedCanonicalFields() (json.RawMessage, bool) {
	if len(m.appendcanonical_fields) == 0 {
		return nil, false
	}
	return m.appendcanonical_fields, true
}

// ResetCanonicalFields resets all changes to the "canonical_fields" field.
func (m *InvoiceMutation) ResetCanonicalFields() {
	m.canonical_fields = nil
	m.appendcanonical_fields = nil
}

// SetRawEngineOutput sets the "raw_engine_output" field.
func (m *InvoiceMutation) SetRawEngineOutput(jm json.RawMessage) {
	m.raw_engine_output = &jm
	m.appendraw_engine_output = nil
}

// RawEngineOutput returns the value of the "raw_engine_output" field in the mutation.
func (m *InvoiceMutation) RawEngineOutput() (r json.RawMessage, exists bool) {
	v := m.raw_engine_output
	if v == nil {
		return
	}
	return *v, true
}

// OldRawEngineOutput returns the old "raw_engine_output" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldRawEngineOutput(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawEngineOutput is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawEngineOutput requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawEngineOutput: %w", err)
	}
	return oldValue.RawEngineOutput, nil
}

// AppendRawEngineOutput adds jm to the "raw_engine_output" field.
func (m *InvoiceMutation) AppendRawEngineOutput(jm json.RawMessage) {
	m.appendraw_engine_output = append(m.appendraw_engine_output, jm...)
}

// AppendedRawEngineOutput returns the list of values that were appended to the "raw_engine_output" field in this mutation.
func (m *InvoiceMutation) AppendedRawEngineOutput() (json.RawMessage, bool) {
	if len(m.appendraw_engine_output) == 0 {
		return nil, false
	}
	return m.appendraw_engine_output, true
}

// ClearRawEngineOutput clears the value of the "raw_engine_output" field.
func (m *InvoiceMutation) ClearRawEngineOutput() {
	m.raw_engine_output = nil
	m.appendraw_engine_output = nil
	m.clearedFields[invoice.FieldRawEngineOutput] = struct{}{}
}

// RawEngineOutputCleared returns if the "raw_engine_output" field was cleared in this mutation.
func (m *InvoiceMutation) RawEngineOutputCleared() bool {
	_, ok := m.clearedFields[invoice.FieldRawEngineOutput]
	return ok
}

// ResetRawEngineOutput resets all changes to the "raw_engine_output" field.
func (m *InvoiceMutation) ResetRawEngineOutput() {
	m.raw_engine_output = nil
	m.appendraw_engine_output = nil
	delete(m.clearedFields, invoice.FieldRawEngineOutput)
}

// SetConfidenceScores sets the "confidence_scores" field.
func (m *InvoiceMutation) SetConfidenceScores(jm json.RawMessage) {
	m.confidence_scores = &jm
	m.appendconfidence_scores = nil
}

// ConfidenceScores returns the value of the "confidence_scores" field in the mutation.
func (m *InvoiceMutation) ConfidenceScores() (r json.RawMessage, exists bool) {
	v := m.confidence_scores
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidenceScores returns the old "confidence_scores" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldConfidenceScores(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidenceScores is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidenceScores requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidenceScores: %w", err)
	}
	return oldValue.ConfidenceScores, nil
}

// AppendConfidenceScores adds jm to the "confidence_scores" field.
func (m *InvoiceMutation) AppendConfidenceScores(jm json.RawMessage) {
	m.appendconfidence_scores = append(m.appendconfidence_scores, jm...)
}

// AppendedConfidenceScores returns the list of values that were appended to the "confidence_scores" field in this mutation.
func (m *InvoiceMutation) AppendedConfidenceScores() (json.RawMessage, bool) {
	if len(m.appendconfidence_scores) == 0 {
		return nil, false
	}
	return m.appendconfidence_scores, true
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (m *InvoiceMutation) ClearConfidenceScores() {
	m.confidence_scores = nil
	m.appendconfidence_scores = nil
	m.clearedFields[invoice.FieldConfidenceScores] = struct{}{}
}

// ConfidenceScoresCleared returns if the "confidence_scores" field was cleared in this mutation.
func (m *InvoiceMutation) ConfidenceScoresCleared() bool {
	_, ok := m.clearedFields[invoice.FieldConfidenceScores]
	return ok
}

// ResetConfidenceScores resets all changes to the "confidence_scores" field.
func (m *InvoiceMutation) ResetConfidenceScores() {
	m.confidence_scores = nil
	m.appendconfidence_scores = nil
	delete(m.clearedFields, invoice.FieldConfidenceScores)
}

// SetValidation sets the "validation" field.
func (m *InvoiceMutation) SetValidation(jm json.RawMessage) {
	m.validation = &jm
	m.appendvalidation = nil
}

// Validation returns the value of the "validation" field in the mutation.
func (m *InvoiceMutation) Validation() (r json.RawMessage, exists bool) {
	v := m.validation
	if v == nil {
		return
	}
	return *v, true
}

// OldValidation returns the old "validation" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldValidation(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidation: %w", err)
	}
	return oldValue.Validation, nil
}

// AppendValidation adds jm to the "validation" field.
func (m *InvoiceMutation) AppendValidation(jm json.RawMessage) {
	m.appendvalidation = append(m.appendvalidation, jm...)
}

// AppendedValidation returns the list of values that were appended to the "validation" field in this mutation.
func (m *InvoiceMutation) AppendedValidation() (json.RawMessage, bool) {
	if len(m.appendvalidation) == 0 {
		return nil, false
	}
	return m.appendvalidation, true
}

// ClearValidation clears the value of the "validation" field.
func (m *InvoiceMutation) ClearValidation() {
	m.validation = nil
	m.appendvalidation = nil
	m.clearedFields[invoice.FieldValidation] = struct{}{}
}

// ValidationCleared returns if the "validation" field was cleared in this mutation.
func (m *InvoiceMutation) ValidationCleared() bool {
	_, ok := m.clearedFields[invoice.FieldValidation]
	return ok
}

// ResetValidation resets all changes to the "validation" field.
func (m *InvoiceMutation) ResetValidation() {
	m.validation = nil
	m.appendvalidation = nil
	delete(m.clearedFields, invoice.FieldValidation)
}

// SetSource sets the "source" field.
func (m *InvoiceMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *InvoiceMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ResetSource resets all changes to the "source" field.
func (m *InvoiceMutation) ResetSource() {
	m.source = nil
}

// SetLifecycleState sets the "lifecycle_state" field.
func (m *InvoiceMutation) SetLifecycleState(s string) {
	m.lifecycle_state = &s
}

// LifecycleState returns the value of the "lifecycle_state" field in the mutation.
func (m *InvoiceMutation) LifecycleState() (r string, exists bool) {
	v := m.lifecycle_state
	if v == nil {
		return
	}
	return *v, true
}

// OldLifecycleState returns the old "lifecycle_state" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldLifecycleState(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLifecycleState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLifecycleState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLifecycleState: %w", err)
	}
	return oldValue.LifecycleState, nil
}

// ResetLifecycleState resets all changes to the "lifecycle_state" field.
func (m *InvoiceMutation) ResetLifecycleState() {
	m.lifecycle_state = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *InvoiceMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *InvoiceMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
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
func (m *InvoiceMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[invoice.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *InvoiceMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[invoice.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *InvoiceMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, invoice.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (m *InvoiceMutation) ClearProfile() {
	m.clearedprofile = true
	m.clearedFields[invoice.FieldProfileID] = struct{}{}
}

// ProfileCleared reports if the "profile" edge to the Profile entity was cleared.
func (m *InvoiceMutation) ProfileCleared() bool {
	return m.clearedprofile
}

// ProfileIDs returns the "profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ProfileID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) ProfileIDs() (ids []uuid.UUID) {
	if id := m.profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetProfile resets all changes to the "profile" edge.
func (m *InvoiceMutation) ResetProfile() {
	m.profile = nil
	m.clearedprofile = false
}

// ClearBlob clears the "blob" edge to the ContentBlob entity.
func (m *InvoiceMutation) ClearBlob() {
	m.clearedblob = true
	m.clearedFields[invoice.FieldBlobID] = struct{}{}
}

// BlobCleared reports if the "blob" edge to the ContentBlob entity was cleared.
func (m *InvoiceMutation) BlobCleared() bool {
	return m.clearedblob
}

// BlobIDs returns the "blob" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BlobID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) BlobIDs() (ids []uuid.UUID) {
	if id := m.blob; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBlob resets all changes to the "blob" edge.
func (m *InvoiceMutation) ResetBlob() {
	m.blob = nil
	m.clearedblob = false
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.profile != nil {
		fields = append(fields, invoice.FieldProfileID)
	}
	if m.blob != nil {
		fields = append(fields, invoice.FieldBlobID)
	}
	if m.content_hash != nil {
		fields = append(fields, invoice.FieldContentHash)
	}
	if m.invoice_type != nil {
		fields = append(fields, invoice.FieldInvoiceType)
	}
	if m.canonical_fields != nil {
		fields = append(fields, invoice.FieldCanonicalFields)
	}
	if m.raw_engine_output != nil {
		fields = append(fields, invoice.FieldRawEngineOutput)
	}
	if m.confidence_scores != nil {
		fields = append(fields, invoice.FieldConfidenceScores)
	}
	if m.validation != nil {
		fields = append(fields, invoice.FieldValidation)
	}
	if m.source != nil {
		fields = append(fields, invoice.FieldSource)
	}
	if m.lifecycle_state != nil {
		fields = append(fields, invoice.FieldLifecycleState)
	}
	if m.deleted_at != nil {
		fields = append(fields, invoice.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldProfileID:
		return m.ProfileID()
	case invoice.FieldBlobID:
		return m.BlobID()
	case invoice.FieldContentHash:
		return m.ContentHash()
	case invoice.FieldInvoiceType:
		return m.InvoiceType()
	case invoice.FieldCanonicalFields:
		return m.CanonicalFields()
	case invoice.FieldRawEngineOutput:
		return m.RawEngineOutput()
	case invoice.FieldConfidenceScores:
		return m.ConfidenceScores()
	case invoice.FieldValidation:
		return m.Validation()
	case invoice.FieldSource:
		return m.Source()
	case invoice.FieldLifecycleState:
		return m.LifecycleState()
	case invoice.FieldDeletedAt:
		return m.DeletedAt()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldProfileID:
		return m.OldProfileID(ctx)
	case invoice.FieldBlobID:
		return m.OldBlobID(ctx)
	case invoice.FieldContentHash:
		return m.OldContentHash(ctx)
	case invoice.FieldInvoiceType:
		return m.OldInvoiceType(ctx)
	case invoice.FieldCanonicalFields:
		return m.OldCanonicalFields(ctx)
	case invoice.FieldRawEngineOutput:
		return m.OldRawEngineOutput(ctx)
	case invoice.FieldConfidenceScores:
		return m.OldConfidenceScores(ctx)
	case invoice.FieldValidation:
		return m.OldValidation(ctx)
	case invoice.FieldSource:
		return m.OldSource(ctx)
	case invoice.FieldLifecycleState:
		return m.OldLifecycleState(ctx)
	case invoice.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldProfileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileID(v)
		return nil
	case invoice.FieldBlobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlobID(v)
		return nil
	case invoice.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case invoice.FieldInvoiceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInvoiceType(v)
		return nil
	case invoice.FieldCanonicalFields:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalFields(v)
		return nil
	case invoice.FieldRawEngineOutput:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawEngineOutput(v)
		return nil
	case invoice.FieldConfidenceScores:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidenceScores(v)
		return nil
	case invoice.FieldValidation:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidation(v)
		return nil
	case invoice.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case invoice.FieldLifecycleState:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLifecycleState(v)
		return nil
	case invoice.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldRawEngineOutput) {
		fields = append(fields, invoice.FieldRawEngineOutput)
	}
	if m.FieldCleared(invoice.FieldConfidenceScores) {
		fields = append(fields, invoice.FieldConfidenceScores)
	}
	if m.FieldCleared(invoice.FieldValidation) {
		fields = append(fields, invoice.FieldValidation)
	}
	if m.FieldCleared(invoice.FieldDeletedAt) {
		fields = append(fields, invoice.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldRawEngineOutput:
		m.ClearRawEngineOutput()
		return nil
	case invoice.FieldConfidenceScores:
		m.ClearConfidenceScores()
		return nil
	case invoice.FieldValidation:
		m.ClearValidation()
		return nil
	case invoice.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldProfileID:
		m.ResetProfileID()
		return nil
	case invoice.FieldBlobID:
		m.ResetBlobID()
		return nil
	case invoice.FieldContentHash:
		m.ResetContentHash()
		return nil
	case invoice.FieldInvoiceType:
		m.ResetInvoiceType()
		return nil
	case invoice.FieldCanonicalFields:
		m.ResetCanonicalFields()
		return nil
	case invoice.FieldRawEngineOutput:
		m.ResetRawEngineOutput()
		return nil
	case invoice.FieldConfidenceScores:
		m.ResetConfidenceScores()
		return nil
	case invoice.FieldValidation:
		m.ResetValidation()
		return nil
	case invoice.FieldSource:
		m.ResetSource()
		return nil
	case invoice.FieldLifecycleState:
		m.ResetLifecycleState()
		return nil
	case invoice.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.profile != nil {
		edges = append(edges, invoice.EdgeProfile)
	}
	if m.blob != nil {
		edges = append(edges, invoice.EdgeBlob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeProfile:
		if id := m.profile; id != nil {
			return []ent.Value{*id}
		}
	case invoice.EdgeBlob:
		if id := m.blob; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedprofile {
		edges = append(edges, invoice.EdgeProfile)
	}
	if m.clearedblob {
		edges = append(edges, invoice.EdgeBlob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeProfile:
		return m.clearedprofile
	case invoice.EdgeBlob:
		return m.clearedblob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	case invoice.EdgeProfile:
		m.ClearProfile()
		return nil
	case invoice.EdgeBlob:
		m.ClearBlob()
		return nil
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeProfile:
		m.ResetProfile()
		return nil
	case invoice.EdgeBlob:
		m.ResetBlob()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}

// JobBatchMutation represents an operation that mutates the JobBatch nodes in the graph.
type JobBatchMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	seq           *int
	addseq        *int
	uids          *json.RawMessage
	appenduids    json.RawMessage
	status        *string
	extracted     *uint32
	addextracted  *int32
	duplicates    *uint32
	addduplicates *int32
	failed        *uint32
	addfailed     *int32
	clearedFields map[string]struct{}
	job           *uuid.UUID
	clearedjob    bool
	done          bool
	oldValue      func(context.Context) (*JobBatch, error)
	predicates    []predicate.JobBatch
}

var _ ent.Mutation = (*JobBatchMutation)(nil)

// jobbatchOption allows management of the mutation configuration using functional options.
type jobbatchOption func(*JobBatchMutation)

// newJobBatchMutation creates new mutation for the JobBatch entity.
func newJobBatchMutation(c config, op Op, opts ...jobbatchOption) *JobBatchMutation {
	m := &JobBatchMutation{
		config:        c,
		op:            op,
		typ:           TypeJobBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobBatchID sets the ID field of the mutation.
func withJobBatchID(id uuid.UUID) jobbatchOption {
	return func(m *JobBatchMutation) {
		var (
			err   error
			once  sync.Once
			value *JobBatch
		)
		m.oldValue = func(ctx context.Context) (*JobBatch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().JobBatch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJobBatch sets the old JobBatch of the mutation.
func withJobBatch(node *JobBatch) jobbatchOption {
	return func(m *JobBatchMutation) {
		m.oldValue = func(context.Context) (*JobBatch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobBatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobBatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of JobBatch entities.
func (m *JobBatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobBatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobBatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().JobBatch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetJobID sets the "job_id" field.
func (m *JobBatchMutation) SetJobID(u uuid.UUID) {
	m.job = &u
}

// JobID returns the value of the "job_id" field in the mutation.
func (m *JobBatchMutation) JobID() (r uuid.UUID, exists bool) {
	v := m.job
	if v == nil {
		return
	}
	return *v, true
}

// OldJobID returns the old "job_id" field's value of the JobBatch entity.
// If the JobBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobBatchMutation) OldJobID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldJobID: %w", err)
	}
	return oldValue.JobID, nil
}

// ResetJobID resets all changes to the "job_id" field.
func (m *JobBatchMutation) ResetJobID() {
	m.job = nil
}

// SetSeq sets the "seq" field.
func (m *JobBatchMutation) SetSeq(i int) {
	m.seq = &i
	m.addseq = nil
}

// Seq returns the value of the "seq" field in the mutation.
func (m *JobBatchMutation) Seq() (r int, exists bool) {
	v := m.seq
	if v == nil {
		return
	}
	return *v, true
}

// OldSeq returns the old "seq" field's value of the JobBatch entity.
// If the JobBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobBatchMutation) OldSeq(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeq is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeq requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeq: %w", err)
	}
	return oldValue.Seq, nil
}

// AddSeq adds i to the "seq" field.
func (m *JobBatchMutation) AddSeq(i int) {
	if m.addseq != nil {
		*m.addseq += i
	} else {
		m.addseq = &i
	}
}

// AddedSeq returns the value that was added to the "seq" field in this mutation.
func (m *JobBatchMutation) AddedSeq() (r int, exists bool) {
	v := m.addseq
	if v == nil {
		return
	}
	return *v, true
}

// ResetSeq resets all changes to the "seq" field.
func (m *JobBatchMutation) ResetSeq() {
	m.seq = nil
	m.addseq = nil
}

// SetUids sets the "uids" field.
func (m *JobBatchMutation) SetUids(jm json.RawMessage) {
	m.uids = &jm
	m.appenduids = nil
}

// Uids returns the value of the "uids" field in the mutation.
func (m *JobBatchMutation) Uids() (r json.RawMessage, exists bool) {
	v := m.uids
	if v == nil {
		return
	}
	return *v, true
}

// OldUids returns the old "uids" field's value of the JobBatch entity.
// If the JobBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobBatchMutation) OldUids(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUids is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUids requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUids: %w", err)
	}
	return oldValue.Uids, nil
}

// AppendUids adds jm to the "uids" field.
func (m *JobBatchMutation) AppendUids(jm json.RawMessage) {
	m.appenduids = append(m.appenduids, jm...)
}

// AppendedUids returns the list of values that were appended to the "uids" field in this mutation.
func (m *JobBatchMutation) AppendedUids() (json.RawMessage, bool) {
	if len(m.appenduids) == 0 {
		return nil, false
	}
	return m.appenduids, true
}

// ResetUids resets all changes to the "uids" field.
func (m *JobBatchMutation) ResetUids() {
	m.uids = nil
	m.appenduids = nil
}

// SetStatus sets the "status" field.
func (m *JobBatchMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *JobBatchMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the JobBatch entity.
// If the JobBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobBatchMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *JobBatchMutation) ResetStatus() {
	m.status = nil
}

// SetExtracted sets the "extracted" field.
func (m *JobBatchMutation) SetExtracted(u uint32) {
	m.extracted = &u
	m.addextracted = nil
}

// Extracted returns the value of the "extracted" field in the mutation.
func (m *JobBatchMutation) Extracted() (r uint32, exists bool) {
	v := m.extracted
	if v == nil {
		return
	}
	return *v, true
}

// OldExtracted returns the old "extracted" field's value of the JobBatch entity.
// If the JobBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobBatchMutation) OldExtracted(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtracted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtracted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtracted: %w", err)
	}
	return oldValue.Extracted, nil
}

// AddExtracted adds u to the "extracted" field.
func (m *JobBatchMutation) AddExtracted(u int32) {
	if m.addextracted != nil {
		*m.addextracted += u
	} else {
		m.addextracted = &u
	}
}

// AddedExtracted returns the value that was added to the "extracted" field in this mutation.
func (m *JobBatchMutation) AddedExtracted() (r int32, exists bool) {
	v := m.addextracted
	if v == nil {
		return
	}
	return *v, true
}

// ResetExtracted resets all changes to the "extracted" field.
func (m *JobBatchMutation) ResetExtracted() {
	m.extracted = nil
	m.addextracted = nil
}

// SetDuplicates sets the "duplicates" field.
func (m *JobBatchMutation) SetDuplicates(u uint32) {
	m.duplicates = &u
	m.addduplicates = nil
}

// Duplicates returns the value of the "duplicates" field in the mutation.
func (m *JobBatchMutation) Duplicates() (r uint32, exists bool) {
	v := m.duplicates
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicates returns the old "duplicates" field's value of the JobBatch entity.
// If the JobBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobBatchMutation) OldDuplicates(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicates: %w", err)
	}
	return oldValue.Duplicates, nil
}

// AddDuplicates adds u to the "duplicates" field.
func (m *JobBatchMutation) AddDuplicates(u int32) {
	if m.addduplicates != nil {
		*m.addduplicates += u
	} else {
		m.addduplicates = &u
	}
}

// AddedDuplicates returns the value that was added to the "duplicates" field in this mutation.
func (m *JobBatchMutation) AddedDuplicates() (r int32, exists bool) {
	v := m.addduplicates
	if v == nil {
		return
	}
	return *v, true
}

// ResetDuplicates resets all changes to the "duplicates" field.
func (m *JobBatchMutation) ResetDuplicates() {
	m.duplicates = nil
	m.addduplicates = nil
}

// SetFailed sets the "failed" field.
func (m *JobBatchMutation) SetFailed(u uint32) {
	m.failed = &u
	m.addfailed = nil
}

// Failed returns the value of the "failed" field in the mutation.
func (m *JobBatchMutation) Failed() (r uint32, exists bool) {
	v := m.failed
	if v == nil {
		return
	}
	return *v, true
}

// OldFailed returns the old "failed" field's value of the JobBatch entity.
// If the JobBatch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobBatchMutation) OldFailed(ctx context.Context) (v uint32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailed: %w", err)
	}
	return oldValue.Failed, nil
}

// AddFailed adds u to the "failed" field.
func (m *JobBatchMutation) AddFailed(u int32) {
	if m.addfailed != nil {
		*m.addfailed += u
	} else {
		m.addfailed = &u
	}
}

// AddedFailed returns the value that was added to the "failed" field in this mutation.
func (m *JobBatchMutation) AddedFailed() (r int32, exists bool) {
	v := m.addfailed
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailed resets all changes to the "failed" field.
func (m *JobBatchMutation) ResetFailed() {
	m.failed = nil
	m.addfailed = nil
}

// ClearJob clears the "job" edge to the IngestJob entity.
func (m *JobBatchMutation) ClearJob() {
	m.clearedjob = true
	m.clearedFields[jobbatch.FieldJobID] = struct{}{}
}

// JobCleared reports if the "job" edge to the IngestJob entity was cleared.
func (m *JobBatchMutation) JobCleared() bool {
	return m.clearedjob
}

// JobIDs returns the "job" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// JobID instead. It exists only for internal usage by the builders.
func (m *JobBatchMutation) JobIDs() (ids []uuid.UUID) {
	if id := m.job; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetJob resets all changes to the "job" edge.
func (m *JobBatchMutation) ResetJob() {
	m.job = nil
	m.clearedjob = false
}

// Where appends a list predicates to the JobBatchMutation builder.
func (m *JobBatchMutation) Where(ps ...predicate.JobBatch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobBatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobBatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.JobBatch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobBatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobBatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (JobBatch).
func (m *JobBatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobBatchMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.job != nil {
		fields = append(fields, jobbatch.FieldJobID)
	}
	if m.seq != nil {
		fields = append(fields, jobbatch.FieldSeq)
	}
	if m.uids != nil {
		fields = append(fields, jobbatch.FieldUids)
	}
	if m.status != nil {
		fields = append(fields, jobbatch.FieldStatus)
	}
	if m.extracted != nil {
		fields = append(fields, jobbatch.FieldExtracted)
	}
	if m.duplicates != nil {
		fields = append(fields, jobbatch.FieldDuplicates)
	}
	if m.failed != nil {
		fields = append(fields, jobbatch.FieldFailed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobBatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case jobbatch.FieldJobID:
		return m.JobID()
	case jobbatch.FieldSeq:
		return m.Seq()
	case jobbatch.FieldUids:
		return m.Uids()
	case jobbatch.FieldStatus:
		return m.Status()
	case jobbatch.FieldExtracted:
		return m.Extracted()
	case jobbatch.FieldDuplicates:
		return m.Duplicates()
	case jobbatch.FieldFailed:
		return m.Failed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobBatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case jobbatch.FieldJobID:
		return m.OldJobID(ctx)
	case jobbatch.FieldSeq:
		return m.OldSeq(ctx)
	case jobbatch.FieldUids:
		return m.OldUids(ctx)
	case jobbatch.FieldStatus:
		return m.OldStatus(ctx)
	case jobbatch.FieldExtracted:
		return m.OldExtracted(ctx)
	case jobbatch.FieldDuplicates:
		return m.OldDuplicates(ctx)
	case jobbatch.FieldFailed:
		return m.OldFailed(ctx)
	}
	return nil, fmt.Errorf("unknown JobBatch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobBatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case jobbatch.FieldJobID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetJobID(v)
		return nil
	case jobbatch.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeq(v)
		return nil
	case jobbatch.FieldUids:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUids(v)
		return nil
	case jobbatch.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case jobbatch.FieldExtracted:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtracted(v)
		return nil
	case jobbatch.FieldDuplicates:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicates(v)
		return nil
	case jobbatch.FieldFailed:
		v, ok := value.(uint32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailed(v)
		return nil
	}
	return fmt.Errorf("unknown JobBatch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobBatchMutation) AddedFields() []string {
	var fields []string
	if m.addseq != nil {
		fields = append(fields, jobbatch.FieldSeq)
	}
	if m.addextracted != nil {
		fields = append(fields, jobbatch.FieldExtracted)
	}
	if m.addduplicates != nil {
		fields = append(fields, jobbatch.FieldDuplicates)
	}
	if m.addfailed != nil {
		fields = append(fields, jobbatch.FieldFailed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobBatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case jobbatch.FieldSeq:
		return m.AddedSeq()
	case jobbatch.FieldExtracted:
		return m.AddedExtracted()
	case jobbatch.FieldDuplicates:
		return m.AddedDuplicates()
	case jobbatch.FieldFailed:
		return m.AddedFailed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobBatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case jobbatch.FieldSeq:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSeq(v)
		return nil
	case jobbatch.FieldExtracted:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtracted(v)
		return nil
	case jobbatch.FieldDuplicates:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuplicates(v)
		return nil
	case jobbatch.FieldFailed:
		v, ok := value.(int32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailed(v)
		return nil
	}
	return fmt.Errorf("unknown JobBatch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobBatchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobBatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobBatchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown JobBatch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobBatchMutation) ResetField(name string) error {
	switch name {
	case jobbatch.FieldJobID:
		m.ResetJobID()
		return nil
	case jobbatch.FieldSeq:
		m.ResetSeq()
		return nil
	case jobbatch.FieldUids:
		m.ResetUids()
		return nil
	case jobbatch.FieldStatus:
		m.ResetStatus()
		return nil
	case jobbatch.FieldExtracted:
		m.ResetExtracted()
		return nil
	case jobbatch.FieldDuplicates:
		m.ResetDuplicates()
		return nil
	case jobbatch.FieldFailed:
		m.ResetFailed()
		return nil
	}
	return fmt.Errorf("unknown JobBatch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobBatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.job != nil {
		edges = append(edges, jobbatch.EdgeJob)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobBatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case jobbatch.EdgeJob:
		if id := m.job; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobBatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobBatchMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobBatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjob {
		edges = append(edges, jobbatch.EdgeJob)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobBatchMutation) EdgeCleared(name string) bool {
	switch name {
	case jobbatch.EdgeJob:
		return m.clearedjob
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobBatchMutation) ClearEdge(name string) error {
	switch name {
	case jobbatch.EdgeJob:
		m.ClearJob()
		return nil
	}
	return fmt.Errorf("unknown JobBatch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobBatchMutation) ResetEdge(name string) error {
	switch name {
	case jobbatch.EdgeJob:
		m.ResetJob()
		return nil
	}
	return fmt.Errorf("unknown JobBatch edge %s", name)
}

// ProfileMutation represents an operation that mutates the Profile nodes in the graph.
type ProfileMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	blobs           map[uuid.UUID]struct{}
	removedblobs    map[uuid.UUID]struct{}
	clearedblobs    bool
	invoices        map[uuid.UUID]struct{}
	removedinvoices map[uuid.UUID]struct{}
	clearedinvoices bool
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Profile, error)
	predicates      []predicate.Profile
}

var _ ent.Mutation = (*ProfileMutation)(nil)

// profileOption allows management of the mutation configuration using functional options.
type profileOption func(*ProfileMutation)

// newProfileMutation creates new mutation for the Profile entity.
func newProfileMutation(c config, op Op, opts ...profileOption) *ProfileMutation {
	m := &ProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProfileID sets the ID field of the mutation.
func withProfileID(id uuid.UUID) profileOption {
	return func(m *ProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *Profile
		)
		m.oldValue = func(ctx context.Context) (*Profile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Profile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProfile sets the old Profile of the mutation.
func withProfile(node *Profile) profileOption {
	return func(m *ProfileMutation) {
		m.oldValue = func(context.Context) (*Profile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Profile entities.
func (m *ProfileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProfileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProfileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Profile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *ProfileMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *ProfileMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *ProfileMutation) ResetName() {
	m.name = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Profile entity.
// If the Profile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddBlobIDs adds the "blobs" edge to the ContentBlob entity by ids.
func (m *ProfileMutation) AddBlobIDs(ids ...uuid.UUID) {
	if m.blobs == nil {
		m.blobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.blobs[ids[i]] = struct{}{}
	}
}

// ClearBlobs clears the "blobs" edge to the ContentBlob entity.
func (m *ProfileMutation) ClearBlobs() {
	m.clearedblobs = true
}

// BlobsCleared reports if the "blobs" edge to the ContentBlob entity was cleared.
func (m *ProfileMutation) BlobsCleared() bool {
	return m.clearedblobs
}

// RemoveBlobIDs removes the "blobs" edge to the ContentBlob entity by IDs.
func (m *ProfileMutation) RemoveBlobIDs(ids ...uuid.UUID) {
	if m.removedblobs == nil {
		m.removedblobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.blobs, ids[i])
		m.removedblobs[ids[i]] = struct{}{}
	}
}

// RemovedBlobs returns the removed IDs of the "blobs" edge to the ContentBlob entity.
func (m *ProfileMutation) RemovedBlobsIDs() (ids []uuid.UUID) {
	for id := range m.removedblobs {
		ids = append(ids, id)
	}
	return
}

// BlobsIDs returns the "blobs" edge IDs in the mutation.
func (m *ProfileMutation) BlobsIDs() (ids []uuid.UUID) {
	for id := range m.blobs {
		ids = append(ids, id)
	}
	return
}

// ResetBlobs resets all changes to the "blobs" edge.
func (m *ProfileMutation) ResetBlobs() {
	m.blobs = nil
	m.clearedblobs = false
	m.removedblobs = nil
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *ProfileMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *ProfileMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *ProfileMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *ProfileMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *ProfileMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *ProfileMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *ProfileMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// AddJobIDs adds the "jobs" edge to the IngestJob entity by ids.
func (m *ProfileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the IngestJob entity.
func (m *ProfileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the IngestJob entity was cleared.
func (m *ProfileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the IngestJob entity by IDs.
func (m *ProfileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the IngestJob entity.
func (m *ProfileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *ProfileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *ProfileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the ProfileMutation builder.
func (m *ProfileMutation) Where(ps ...predicate.Profile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Profile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Profile).
func (m *ProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProfileMutation) Fields() []string {
	fields := make([]string, 0, 3)
	if m.name != nil {
		fields = append(fields, profile.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, profile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, profile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case profile.FieldName:
		return m.Name()
	case profile.FieldCreatedAt:
		return m.CreatedAt()
	case profile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case profile.FieldName:
		return m.OldName(ctx)
	case profile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case profile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Profile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case profile.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case profile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case profile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProfileMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProfileMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProfileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProfileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Profile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProfileMutation) ResetField(name string) error {
	switch name {
	case profile.FieldName:
		m.ResetName()
		return nil
	case profile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case profile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Profile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.blobs != nil {
		edges = append(edges, profile.EdgeBlobs)
	}
	if m.invoices != nil {
		edges = append(edges, profile.EdgeInvoices)
	}
	if m.jobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeBlobs:
		ids := make([]ent.Value, 0, len(m.blobs))
		for id := range m.blobs {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedblobs != nil {
		edges = append(edges, profile.EdgeBlobs)
	}
	if m.removedinvoices != nil {
		edges = append(edges, profile.EdgeInvoices)
	}
	if m.removedjobs != nil {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case profile.EdgeBlobs:
		ids := make([]ent.Value, 0, len(m.removedblobs))
		for id := range m.removedblobs {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	case profile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedblobs {
		edges = append(edges, profile.EdgeBlobs)
	}
	if m.clearedinvoices {
		edges = append(edges, profile.EdgeInvoices)
	}
	if m.clearedjobs {
		edges = append(edges, profile.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case profile.EdgeBlobs:
		return m.clearedblobs
	case profile.EdgeInvoices:
		return m.clearedinvoices
	case profile.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Profile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProfileMutation) ResetEdge(name string) error {
	switch name {
	case profile.EdgeBlobs:
		m.ResetBlobs()
		return nil
	case profile.EdgeInvoices:
		m.ResetInvoices()
		return nil
	case profile.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Profile edge %s", name)
}
