// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/google/uuid"
)

// JobBatchCreate is the builder for creating a JobBatch entity.
type JobBatchCreate struct {
	config
	mutation *JobBatchMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *JobBatchCreate) SetJobID(v uuid.UUID) *JobBatchCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetSeq sets the "seq" field.
func (_c *JobBatchCreate) SetSeq(v int) *JobBatchCreate {
	_c.mutation.SetSeq(v)
	return _c
}

// SetUids sets the "uids" field.
func (_c *JobBatchCreate) SetUids(v json.RawMessage) *JobBatchCreate {
	_c.mutation.SetUids(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobBatchCreate) SetStatus(v string) *JobBatchCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobBatchCreate) SetNillableStatus(v *string) *JobBatchCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExtracted sets the "extracted" field.
func (_c *JobBatchCreate) SetExtracted(v uint32) *JobBatchCreate {
	_c.mutation.SetExtracted(v)
	return _c
}

// SetNillableExtracted sets the "extracted" field if the given value is not nil.
func (_c *JobBatchCreate) SetNillableExtracted(v *uint32) *JobBatchCreate {
	if v != nil {
		_c.SetExtracted(*v)
	}
	return _c
}

// SetDuplicates sets the "duplicates" field.
func (_c *JobBatchCreate) SetDuplicates(v uint32) *JobBatchCreate {
	_c.mutation.SetDuplicates(v)
	return _c
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_c *JobBatchCreate) SetNillableDuplicates(v *uint32) *JobBatchCreate {
	if v != nil {
		_c.SetDuplicates(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *JobBatchCreate) SetFailed(v uint32) *JobBatchCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *JobBatchCreate) SetNillableFailed(v *uint32) *JobBatchCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobBatchCreate) SetID(v uuid.UUID) *JobBatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobBatchCreate) SetNillableID(v *uuid.UUID) *JobBatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetJob sets the "job" edge to the IngestJob entity.
func (_c *JobBatchCreate) SetJob(v *IngestJob) *JobBatchCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the JobBatchMutation object of the builder.
func (_c *JobBatchCreate) Mutation() *JobBatchMutation {
	return _c.mutation
}

// Save creates the JobBatch in the database.
func (_c *JobBatchCreate) Save(ctx context.Context) (*JobBatch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobBatchCreate) SaveX(ctx context.Context) *JobBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobBatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobBatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobBatchCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := jobbatch.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Extracted(); !ok {
		v := jobbatch.DefaultExtracted
		_c.mutation.SetExtracted(v)
	}
	if _, ok := _c.mutation.Duplicates(); !ok {
		v := jobbatch.DefaultDuplicates
		_c.mutation.SetDuplicates(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := jobbatch.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := jobbatch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobBatchCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "JobBatch.job_id"`)}
	}
	if _, ok := _c.mutation.Seq(); !ok {
		return &ValidationError{Name: "seq", err: errors.New(`ent: missing required field "JobBatch.seq"`)}
	}
	if v, ok := _c.mutation.Seq(); ok {
		if err := jobbatch.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "JobBatch.seq": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Uids(); !ok {
		return &ValidationError{Name: "uids", err: errors.New(`ent: missing required field "JobBatch.uids"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "JobBatch.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := jobbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobBatch.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Extracted(); !ok {
		return &ValidationError{Name: "extracted", err: errors.New(`ent: missing required field "JobBatch.extracted"`)}
	}
	if _, ok := _c.mutation.Duplicates(); !ok {
		return &ValidationError{Name: "duplicates", err: errors.New(`ent: missing required field "JobBatch.duplicates"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "JobBatch.failed"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "JobBatch.job"`)}
	}
	return nil
}

func (_c *JobBatchCreate) sqlSave(ctx context.Context) (*JobBatch, error) {
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

func (_c *JobBatchCreate) createSpec() (*JobBatch, *sqlgraph.CreateSpec) {
	var (
		_node = &JobBatch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(jobbatch.Table, sqlgraph.NewFieldSpec(jobbatch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Seq(); ok {
		_spec.SetField(jobbatch.FieldSeq, field.TypeInt, value)
		_node.Seq = value
	}
	if value, ok := _c.mutation.Uids(); ok {
		_spec.SetField(jobbatch.FieldUids, field.TypeJSON, value)
		_node.Uids = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(jobbatch.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Extracted(); ok {
		_spec.SetField(jobbatch.FieldExtracted, field.TypeUint32, value)
		_node.Extracted = value
	}
	if value, ok := _c.mutation.Duplicates(); ok {
		_spec.SetField(jobbatch.FieldDuplicates, field.TypeUint32, value)
		_node.Duplicates = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(jobbatch.FieldFailed, field.TypeUint32, value)
		_node.Failed = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   jobbatch.JobTable,
			Columns: []string{jobbatch.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobBatchCreateBulk is the builder for creating many JobBatch entities in bulk.
type JobBatchCreateBulk struct {
	config
	err      error
	builders []*JobBatchCreate
}

// Save creates the JobBatch entities in the database.
func (_c *JobBatchCreateBulk) Save(ctx context.Context) ([]*JobBatch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*JobBatch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobBatchMutation)
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
func (_c *JobBatchCreateBulk) SaveX(ctx context.Context) []*JobBatch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobBatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobBatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
