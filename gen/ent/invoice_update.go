// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/billfold/invoice-ingest/gen/ent/contentblob"
	"github.com/billfold/invoice-ingest/gen/ent/invoice"
	"github.com/billfold/invoice-ingest/gen/ent/predicate"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
	"github.com/google/uuid"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceUpdate) SetProfileID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableProfileID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetBlobID sets the "blob_id" field.
func (_u *InvoiceUpdate) SetBlobID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetBlobID(v)
	return _u
}

// SetNillableBlobID sets the "blob_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBlobID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetBlobID(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *InvoiceUpdate) SetContentHash(v []byte) *InvoiceUpdate {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetInvoiceType sets the "invoice_type" field.
func (_u *InvoiceUpdate) SetInvoiceType(v string) *InvoiceUpdate {
	_u.mutation.SetInvoiceType(v)
	return _u
}

// SetNillableInvoiceType sets the "invoice_type" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableInvoiceType(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetInvoiceType(*v)
	}
	return _u
}

// SetCanonicalFields sets the "canonical_fields" field.
func (_u *InvoiceUpdate) SetCanonicalFields(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetCanonicalFields(v)
	return _u
}

// AppendCanonicalFields appends value to the "canonical_fields" field.
func (_u *InvoiceUpdate) AppendCanonicalFields(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendCanonicalFields(v)
	return _u
}

// SetRawEngineOutput sets the "raw_engine_output" field.
func (_u *InvoiceUpdate) SetRawEngineOutput(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetRawEngineOutput(v)
	return _u
}

// AppendRawEngineOutput appends value to the "raw_engine_output" field.
func (_u *InvoiceUpdate) AppendRawEngineOutput(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendRawEngineOutput(v)
	return _u
}

// ClearRawEngineOutput clears the value of the "raw_engine_output" field.
func (_u *InvoiceUpdate) ClearRawEngineOutput() *InvoiceUpdate {
	_u.mutation.ClearRawEngineOutput()
	return _u
}

// SetConfidenceScores sets the "confidence_scores" field.
func (_u *InvoiceUpdate) SetConfidenceScores(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetConfidenceScores(v)
	return _u
}

// AppendConfidenceScores appends value to the "confidence_scores" field.
func (_u *InvoiceUpdate) AppendConfidenceScores(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendConfidenceScores(v)
	return _u
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (_u *InvoiceUpdate) ClearConfidenceScores() *InvoiceUpdate {
	_u.mutation.ClearConfidenceScores()
	return _u
}

// SetValidation sets the "validation" field.
func (_u *InvoiceUpdate) SetValidation(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.SetValidation(v)
	return _u
}

// AppendValidation appends value to the "validation" field.
func (_u *InvoiceUpdate) AppendValidation(v json.RawMessage) *InvoiceUpdate {
	_u.mutation.AppendValidation(v)
	return _u
}

// ClearValidation clears the value of the "validation" field.
func (_u *InvoiceUpdate) ClearValidation() *InvoiceUpdate {
	_u.mutation.ClearValidation()
	return _u
}

// SetSource sets the "source" field.
func (_u *InvoiceUpdate) SetSource(v string) *InvoiceUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableSource(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_u *InvoiceUpdate) SetLifecycleState(v string) *InvoiceUpdate {
	_u.mutation.SetLifecycleState(v)
	return _u
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableLifecycleState(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetLifecycleState(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvoiceUpdate) SetDeletedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableDeletedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvoiceUpdate) ClearDeletedAt() *InvoiceUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdate) SetCreatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableCreatedAt(v *time.Time) *InvoiceUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *InvoiceUpdate) SetProfile(v *Profile) *InvoiceUpdate {
	return _u.SetProfileID(v.ID)
}

// SetBlob sets the "blob" edge to the ContentBlob entity.
func (_u *InvoiceUpdate) SetBlob(v *ContentBlob) *InvoiceUpdate {
	return _u.SetBlobID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *InvoiceUpdate) ClearProfile() *InvoiceUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearBlob clears the "blob" edge to the ContentBlob entity.
func (_u *InvoiceUpdate) ClearBlob() *InvoiceUpdate {
	_u.mutation.ClearBlob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := invoice.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Invoice.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceType(); ok {
		if err := invoice.InvoiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "invoice_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := invoice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Invoice.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LifecycleState(); ok {
		if err := invoice.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "Invoice.lifecycle_state": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.profile"`)
	}
	if _u.mutation.BlobCleared() && len(_u.mutation.BlobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.blob"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(invoice.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.InvoiceType(); ok {
		_spec.SetField(invoice.FieldInvoiceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalFields(); ok {
		_spec.SetField(invoice.FieldCanonicalFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCanonicalFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldCanonicalFields, value)
		})
	}
	if value, ok := _u.mutation.RawEngineOutput(); ok {
		_spec.SetField(invoice.FieldRawEngineOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawEngineOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldRawEngineOutput, value)
		})
	}
	if _u.mutation.RawEngineOutputCleared() {
		_spec.ClearField(invoice.FieldRawEngineOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScores(); ok {
		_spec.SetField(invoice.FieldConfidenceScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfidenceScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldConfidenceScores, value)
		})
	}
	if _u.mutation.ConfidenceScoresCleared() {
		_spec.ClearField(invoice.FieldConfidenceScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validation(); ok {
		_spec.SetField(invoice.FieldValidation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldValidation, value)
		})
	}
	if _u.mutation.ValidationCleared() {
		_spec.ClearField(invoice.FieldValidation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(invoice.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.LifecycleState(); ok {
		_spec.SetField(invoice.FieldLifecycleState, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(invoice.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(invoice.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.BlobTable,
			Columns: []string{invoice.BlobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.BlobTable,
			Columns: []string{invoice.BlobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *InvoiceUpdateOne) SetProfileID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableProfileID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetBlobID sets the "blob_id" field.
func (_u *InvoiceUpdateOne) SetBlobID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetBlobID(v)
	return _u
}

// SetNillableBlobID sets the "blob_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBlobID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBlobID(*v)
	}
	return _u
}

// SetContentHash sets the "content_hash" field.
func (_u *InvoiceUpdateOne) SetContentHash(v []byte) *InvoiceUpdateOne {
	_u.mutation.SetContentHash(v)
	return _u
}

// SetInvoiceType sets the "invoice_type" field.
func (_u *InvoiceUpdateOne) SetInvoiceType(v string) *InvoiceUpdateOne {
	_u.mutation.SetInvoiceType(v)
	return _u
}

// SetNillableInvoiceType sets the "invoice_type" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableInvoiceType(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetInvoiceType(*v)
	}
	return _u
}

// SetCanonicalFields sets the "canonical_fields" field.
func (_u *InvoiceUpdateOne) SetCanonicalFields(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetCanonicalFields(v)
	return _u
}

// AppendCanonicalFields appends value to the "canonical_fields" field.
func (_u *InvoiceUpdateOne) AppendCanonicalFields(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendCanonicalFields(v)
	return _u
}

// SetRawEngineOutput sets the "raw_engine_output" field.
func (_u *InvoiceUpdateOne) SetRawEngineOutput(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetRawEngineOutput(v)
	return _u
}

// AppendRawEngineOutput appends value to the "raw_engine_output" field.
func (_u *InvoiceUpdateOne) AppendRawEngineOutput(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendRawEngineOutput(v)
	return _u
}

// ClearRawEngineOutput clears the value of the "raw_engine_output" field.
func (_u *InvoiceUpdateOne) ClearRawEngineOutput() *InvoiceUpdateOne {
	_u.mutation.ClearRawEngineOutput()
	return _u
}

// SetConfidenceScores sets the "confidence_scores" field.
func (_u *InvoiceUpdateOne) SetConfidenceScores(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetConfidenceScores(v)
	return _u
}

// AppendConfidenceScores appends value to the "confidence_scores" field.
func (_u *InvoiceUpdateOne) AppendConfidenceScores(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendConfidenceScores(v)
	return _u
}

// ClearConfidenceScores clears the value of the "confidence_scores" field.
func (_u *InvoiceUpdateOne) ClearConfidenceScores() *InvoiceUpdateOne {
	_u.mutation.ClearConfidenceScores()
	return _u
}

// SetValidation sets the "validation" field.
func (_u *InvoiceUpdateOne) SetValidation(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.SetValidation(v)
	return _u
}

// AppendValidation appends value to the "validation" field.
func (_u *InvoiceUpdateOne) AppendValidation(v json.RawMessage) *InvoiceUpdateOne {
	_u.mutation.AppendValidation(v)
	return _u
}

// ClearValidation clears the value of the "validation" field.
func (_u *InvoiceUpdateOne) ClearValidation() *InvoiceUpdateOne {
	_u.mutation.ClearValidation()
	return _u
}

// SetSource sets the "source" field.
func (_u *InvoiceUpdateOne) SetSource(v string) *InvoiceUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableSource(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_u *InvoiceUpdateOne) SetLifecycleState(v string) *InvoiceUpdateOne {
	_u.mutation.SetLifecycleState(v)
	return _u
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableLifecycleState(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetLifecycleState(*v)
	}
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvoiceUpdateOne) SetDeletedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableDeletedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvoiceUpdateOne) ClearDeletedAt() *InvoiceUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *InvoiceUpdateOne) SetCreatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableCreatedAt(v *time.Time) *InvoiceUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *InvoiceUpdateOne) SetProfile(v *Profile) *InvoiceUpdateOne {
	return _u.SetProfileID(v.ID)
}

// SetBlob sets the "blob" edge to the ContentBlob entity.
func (_u *InvoiceUpdateOne) SetBlob(v *ContentBlob) *InvoiceUpdateOne {
	return _u.SetBlobID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *InvoiceUpdateOne) ClearProfile() *InvoiceUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearBlob clears the "blob" edge to the ContentBlob entity.
func (_u *InvoiceUpdateOne) ClearBlob() *InvoiceUpdateOne {
	_u.mutation.ClearBlob()
	return _u
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.ContentHash(); ok {
		if err := invoice.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Invoice.content_hash": %w`, err)}
		}
	}
	if v, ok := _u.mutation.InvoiceType(); ok {
		if err := invoice.InvoiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "invoice_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := invoice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Invoice.source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LifecycleState(); ok {
		if err := invoice.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "Invoice.lifecycle_state": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.profile"`)
	}
	if _u.mutation.BlobCleared() && len(_u.mutation.BlobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.blob"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.ContentHash(); ok {
		_spec.SetField(invoice.FieldContentHash, field.TypeBytes, value)
	}
	if value, ok := _u.mutation.InvoiceType(); ok {
		_spec.SetField(invoice.FieldInvoiceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.CanonicalFields(); ok {
		_spec.SetField(invoice.FieldCanonicalFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCanonicalFields(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldCanonicalFields, value)
		})
	}
	if value, ok := _u.mutation.RawEngineOutput(); ok {
		_spec.SetField(invoice.FieldRawEngineOutput, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRawEngineOutput(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldRawEngineOutput, value)
		})
	}
	if _u.mutation.RawEngineOutputCleared() {
		_spec.ClearField(invoice.FieldRawEngineOutput, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConfidenceScores(); ok {
		_spec.SetField(invoice.FieldConfidenceScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedConfidenceScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldConfidenceScores, value)
		})
	}
	if _u.mutation.ConfidenceScoresCleared() {
		_spec.ClearField(invoice.FieldConfidenceScores, field.TypeJSON)
	}
	if value, ok := _u.mutation.Validation(); ok {
		_spec.SetField(invoice.FieldValidation, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedValidation(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, invoice.FieldValidation, value)
		})
	}
	if _u.mutation.ValidationCleared() {
		_spec.ClearField(invoice.FieldValidation, field.TypeJSON)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(invoice.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.LifecycleState(); ok {
		_spec.SetField(invoice.FieldLifecycleState, field.TypeString, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(invoice.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(invoice.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ProfileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.ProfileTable,
			Columns: []string{invoice.ProfileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(profile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BlobCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.BlobTable,
			Columns: []string{invoice.BlobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BlobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.BlobTable,
			Columns: []string{invoice.BlobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
