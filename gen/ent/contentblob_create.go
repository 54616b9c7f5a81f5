// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
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

// ContentBlobCreate is the builder for creating a ContentBlob entity.
type ContentBlobCreate struct {
	config
	mutation *ContentBlobMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *ContentBlobCreate) SetProfileID(v uuid.UUID) *ContentBlobCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetHash sets the "hash" field.
func (_c *ContentBlobCreate) SetHash(v []byte) *ContentBlobCreate {
	_c.mutation.SetHash(v)
	return _c
}

// SetByteSize sets the "byte_size" field.
func (_c *ContentBlobCreate) SetByteSize(v int64) *ContentBlobCreate {
	_c.mutation.SetByteSize(v)
	return _c
}

// SetStorageRef sets the "storage_ref" field.
func (_c *ContentBlobCreate) SetStorageRef(v string) *ContentBlobCreate {
	_c.mutation.SetStorageRef(v)
	return _c
}

// SetFirstSeenAt sets the "first_seen_at" field.
func (_c *ContentBlobCreate) SetFirstSeenAt(v time.Time) *ContentBlobCreate {
	_c.mutation.SetFirstSeenAt(v)
	return _c
}

// SetNillableFirstSeenAt sets the "first_seen_at" field if the given value is not nil.
func (_c *ContentBlobCreate) SetNillableFirstSeenAt(v *time.Time) *ContentBlobCreate {
	if v != nil {
		_c.SetFirstSeenAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ContentBlobCreate) SetID(v uuid.UUID) *ContentBlobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ContentBlobCreate) SetNillableID(v *uuid.UUID) *ContentBlobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *ContentBlobCreate) SetProfile(v *Profile) *ContentBlobCreate {
	return _c.SetProfileID(v.ID)
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_c *ContentBlobCreate) AddInvoiceIDs(ids ...uuid.UUID) *ContentBlobCreate {
	_c.mutation.AddInvoiceIDs(ids...)
	return _c
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_c *ContentBlobCreate) AddInvoices(v ...*Invoice) *ContentBlobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvoiceIDs(ids...)
}

// Mutation returns the ContentBlobMutation object of the builder.
func (_c *ContentBlobCreate) Mutation() *ContentBlobMutation {
	return _c.mutation
}

// Save creates the ContentBlob in the database.
func (_c *ContentBlobCreate) Save(ctx context.Context) (*ContentBlob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentBlobCreate) SaveX(ctx context.Context) *ContentBlob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentBlobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentBlobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentBlobCreate) defaults() {
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		v := contentblob.DefaultFirstSeenAt()
		_c.mutation.SetFirstSeenAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := contentblob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentBlobCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "ContentBlob.profile_id"`)}
	}
	if _, ok := _c.mutation.Hash(); !ok {
		return &ValidationError{Name: "hash", err: errors.New(`ent: missing required field "ContentBlob.hash"`)}
	}
	if v, ok := _c.mutation.Hash(); ok {
		if err := contentblob.HashValidator(v); err != nil {
			return &ValidationError{Name: "hash", err: fmt.Errorf(`ent: validator failed for field "ContentBlob.hash": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ByteSize(); !ok {
		return &ValidationError{Name: "byte_size", err: errors.New(`ent: missing required field "ContentBlob.byte_size"`)}
	}
	if v, ok := _c.mutation.ByteSize(); ok {
		if err := contentblob.ByteSizeValidator(v); err != nil {
			return &ValidationError{Name: "byte_size", err: fmt.Errorf(`ent: validator failed for field "ContentBlob.byte_size": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StorageRef(); !ok {
		return &ValidationError{Name: "storage_ref", err: errors.New(`ent: missing required field "ContentBlob.storage_ref"`)}
	}
	if v, ok := _c.mutation.StorageRef(); ok {
		if err := contentblob.StorageRefValidator(v); err != nil {
			return &ValidationError{Name: "storage_ref", err: fmt.Errorf(`ent: validator failed for field "ContentBlob.storage_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FirstSeenAt(); !ok {
		return &ValidationError{Name: "first_seen_at", err: errors.New(`ent: missing required field "ContentBlob.first_seen_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "ContentBlob.profile"`)}
	}
	return nil
}

func (_c *ContentBlobCreate) sqlSave(ctx context.Context) (*ContentBlob, error) {
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

func (_c *ContentBlobCreate) createSpec() (*ContentBlob, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentBlob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentblob.Table, sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Hash(); ok {
		_spec.SetField(contentblob.FieldHash, field.TypeBytes, value)
		_node.Hash = value
	}
	if value, ok := _c.mutation.ByteSize(); ok {
		_spec.SetField(contentblob.FieldByteSize, field.TypeInt64, value)
		_node.ByteSize = value
	}
	if value, ok := _c.mutation.StorageRef(); ok {
		_spec.SetField(contentblob.FieldStorageRef, field.TypeString, value)
		_node.StorageRef = value
	}
	if value, ok := _c.mutation.FirstSeenAt(); ok {
		_spec.SetField(contentblob.FieldFirstSeenAt, field.TypeTime, value)
		_node.FirstSeenAt = value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   contentblob.ProfileTable,
			Columns: []string{contentblob.ProfileColumn},
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
	if nodes := _c.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   contentblob.InvoicesTable,
			Columns: []string{contentblob.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ContentBlobCreateBulk is the builder for creating many ContentBlob entities in bulk.
type ContentBlobCreateBulk struct {
	config
	err      error
	builders []*ContentBlobCreate
}

// Save creates the ContentBlob entities in the database.
func (_c *ContentBlobCreateBulk) Save(ctx context.Context) ([]*ContentBlob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentBlob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentBlobMutation)
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
func (_c *ContentBlobCreateBulk) SaveX(ctx context.Context) []*ContentBlob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentBlobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentBlobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
