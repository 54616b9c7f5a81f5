// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billfold/invoice-ingest/gen/ent/contentblob"
	"github.com/billfold/invoice-ingest/gen/ent/invoice"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
	"github.com/google/uuid"
)

// InvoiceCreate is the builder for creating a Invoice entity.
type InvoiceCreate struct {
	config
	mutation *InvoiceMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *InvoiceCreate) SetProfileID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetBlobID sets the "blob_id" field.
func (_c *InvoiceCreate) SetBlobID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetBlobID(v)
	return _c
}

// SetContentHash sets the "content_hash" field.
func (_c *InvoiceCreate) SetContentHash(v []byte) *InvoiceCreate {
	_c.mutation.SetContentHash(v)
	return _c
}

// SetInvoiceType sets the "invoice_type" field.
func (_c *InvoiceCreate) SetInvoiceType(v string) *InvoiceCreate {
	_c.mutation.SetInvoiceType(v)
	return _c
}

// SetCanonicalFields sets the "canonical_fields" field.
func (_c *InvoiceCreate) SetCanonicalFields(v json.RawMessage) *InvoiceCreate {
	_c.mutation.SetCanonicalFields(v)
	return _c
}

// SetRawEngineOutput sets the "raw_engine_output" field.
func (_c *InvoiceCreate) SetRawEngineOutput(v json.RawMessage) *InvoiceCreate {
	_c.mutation.SetRawEngineOutput(v)
	return _c
}

// SetConfidenceScores sets the "confidence_scores" field.
func (_c *InvoiceCreate) SetConfidenceScores(v json.RawMessage) *InvoiceCreate {
	_c.mutation.SetConfidenceScores(v)
	return _c
}

// SetValidation sets the "validation" field.
func (_c *InvoiceCreate) SetValidation(v json.RawMessage) *InvoiceCreate {
	_c.mutation.SetValidation(v)
	return _c
}

// SetSource sets the "source" field.
func (_c *InvoiceCreate) SetSource(v string) *InvoiceCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetLifecycleState sets the "lifecycle_state" field.
func (_c *InvoiceCreate) SetLifecycleState(v string) *InvoiceCreate {
	_c.mutation.SetLifecycleState(v)
	return _c
}

// SetNillableLifecycleState sets the "lifecycle_state" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableLifecycleState(v *string) *InvoiceCreate {
	if v != nil {
		_c.SetLifecycleState(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *InvoiceCreate) SetDeletedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableDeletedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvoiceCreate) SetCreatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableCreatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InvoiceCreate) SetUpdatedAt(v time.Time) *InvoiceCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableUpdatedAt(v *time.Time) *InvoiceCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvoiceCreate) SetID(v uuid.UUID) *InvoiceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InvoiceCreate) SetNillableID(v *uuid.UUID) *InvoiceCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *InvoiceCreate) SetProfile(v *Profile) *InvoiceCreate {
	return _c.SetProfileID(v.ID)
}

// SetBlob sets the "blob" edge to the ContentBlob entity.
func (_c *InvoiceCreate) SetBlob(v *ContentBlob) *InvoiceCreate {
	return _c.SetBlobID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_c *InvoiceCreate) Mutation() *InvoiceMutation {
	return _c.mutation
}

// Save creates the Invoice in the database.
func (_c *InvoiceCreate) Save(ctx context.Context) (*Invoice, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvoiceCreate) SaveX(ctx context.Context) *Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvoiceCreate) defaults() {
	if _, ok := _c.mutation.LifecycleState(); !ok {
		v := invoice.DefaultLifecycleState
		_c.mutation.SetLifecycleState(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := invoice.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := invoice.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := invoice.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvoiceCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "Invoice.profile_id"`)}
	}
	if _, ok := _c.mutation.BlobID(); !ok {
		return &ValidationError{Name: "blob_id", err: errors.New(`ent: missing required field "Invoice.blob_id"`)}
	}
	if _, ok := _c.mutation.ContentHash(); !ok {
		return &ValidationError{Name: "content_hash", err: errors.New(`ent: missing required field "Invoice.content_hash"`)}
	}
	if v, ok := _c.mutation.ContentHash(); ok {
		if err := invoice.ContentHashValidator(v); err != nil {
			return &ValidationError{Name: "content_hash", err: fmt.Errorf(`ent: validator failed for field "Invoice.content_hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InvoiceType(); !ok {
		return &ValidationError{Name: "invoice_type", err: errors.New(`ent: missing required field "Invoice.invoice_type"`)}
	}
	if v, ok := _c.mutation.InvoiceType(); ok {
		if err := invoice.InvoiceTypeValidator(v); err != nil {
			return &ValidationError{Name: "invoice_type", err: fmt.Errorf(`ent: validator failed for field "Invoice.invoice_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CanonicalFields(); !ok {
		return &ValidationError{Name: "canonical_fields", err: errors.New(`ent: missing required field "Invoice.canonical_fields"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Invoice.source"`)}
	}
	if v, ok := _c.mutation.Source(); ok {
		if err := invoice.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "Invoice.source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LifecycleState(); !ok {
		return &ValidationError{Name: "lifecycle_state", err: errors.New(`ent: missing required field "Invoice.lifecycle_state"`)}
	}
	if v, ok := _c.mutation.LifecycleState(); ok {
		if err := invoice.LifecycleStateValidator(v); err != nil {
			return &ValidationError{Name: "lifecycle_state", err: fmt.Errorf(`ent: validator failed for field "Invoice.lifecycle_state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Invoice.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Invoice.updated_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "Invoice.profile"`)}
	}
	if len(_c.mutation.BlobIDs()) == 0 {
		return &ValidationError{Name: "blob", err: errors.New(`ent: missing required edge "Invoice.blob"`)}
	}
	return nil
}

func (_c *InvoiceCreate) sqlSave(ctx context.Context) (*Invoice, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvoiceCreate) createSpec() (*Invoice, *sqlgraph.CreateSpec) {
	var (
		_node = &Invoice{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(invoice.Table, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ContentHash(); ok {
		_spec.SetField(invoice.FieldContentHash, field.TypeBytes, value)
		_node.ContentHash = value
	}
	if value, ok := _c.mutation.InvoiceType(); ok {
		_spec.SetField(invoice.FieldInvoiceType, field.TypeString, value)
		_node.InvoiceType = value
	}
	if value, ok := _c.mutation.CanonicalFields(); ok {
		_spec.SetField(invoice.FieldCanonicalFields, field.TypeJSON, value)
		_node.CanonicalFields = value
	}
	if value, ok := _c.mutation.RawEngineOutput(); ok {
		_spec.SetField(invoice.FieldRawEngineOutput, field.TypeJSON, value)
		_node.RawEngineOutput = value
	}
	if value, ok := _c.mutation.ConfidenceScores(); ok {
		_spec.SetField(invoice.FieldConfidenceScores, field.TypeJSON, value)
		_node.ConfidenceScores = value
	}
	if value, ok := _c.mutation.Validation(); ok {
		_spec.SetField(invoice.FieldValidation, field.TypeJSON, value)
		_node.Validation = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(invoice.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.LifecycleState(); ok {
		_spec.SetField(invoice.FieldLifecycleState, field.TypeString, value)
		_node.LifecycleState = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(invoice.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(invoice.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_node.ProfileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BlobIDs(); len(nodes) > 0 {
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
		_node.BlobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// InvoiceCreateBulk is the builder for creating many Invoice entities in bulk.
type InvoiceCreateBulk struct {
	config
	err      error
	builders []*InvoiceCreate
}

// Save creates the Invoice entities in the database.
func (_c *InvoiceCreateBulk) Save(ctx context.Context) ([]*Invoice, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Invoice, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvoiceMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvoiceCreateBulk) SaveX(ctx context.Context) []*Invoice {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvoiceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvoiceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
