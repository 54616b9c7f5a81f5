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
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
	"github.com/google/uuid"
)

// IngestJobCreate is the builder for creating a IngestJob entity.
type IngestJobCreate struct {
	config
	mutation *IngestJobMutation
	hooks    []Hook
}

// SetProfileID sets the "profile_id" field.
func (_c *IngestJobCreate) SetProfileID(v uuid.UUID) *IngestJobCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetPhase sets the "phase" field.
func (_c *IngestJobCreate) SetPhase(v string) *IngestJobCreate {
	_c.mutation.SetPhase(v)
	return _c
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillablePhase(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetPhase(*v)
	}
	return _c
}

// SetFolder sets the "folder" field.
func (_c *IngestJobCreate) SetFolder(v string) *IngestJobCreate {
	_c.mutation.SetFolder(v)
	return _c
}

// SetCriteria sets the "criteria" field.
func (_c *IngestJobCreate) SetCriteria(v string) *IngestJobCreate {
	_c.mutation.SetCriteria(v)
	return _c
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableCriteria(v *string) *IngestJobCreate {
	if v != nil {
		_c.SetCriteria(*v)
	}
	return _c
}

// SetCursor sets the "cursor" field.
func (_c *IngestJobCreate) SetCursor(v uint32) *IngestJobCreate {
	_c.mutation.SetCursor(v)
	return _c
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableCursor(v *uint32) *IngestJobCreate {
	if v != nil {
		_c.SetCursor(*v)
	}
	return _c
}

// SetScanned sets the "scanned" field.
func (_c *IngestJobCreate) SetScanned(v uint32) *IngestJobCreate {
	_c.mutation.SetScanned(v)
	return _c
}

// SetNillableScanned sets the "scanned" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableScanned(v *uint32) *IngestJobCreate {
	if v != nil {
		_c.SetScanned(*v)
	}
	return _c
}

// SetMatched sets the "matched" field.
func (_c *IngestJobCreate) SetMatched(v uint32) *IngestJobCreate {
	_c.mutation.SetMatched(v)
	return _c
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableMatched(v *uint32) *IngestJobCreate {
	if v != nil {
		_c.SetMatched(*v)
	}
	return _c
}

// SetExtracted sets the "extracted" field.
func (_c *IngestJobCreate) SetExtracted(v uint32) *IngestJobCreate {
	_c.mutation.SetExtracted(v)
	return _c
}

// SetNillableExtracted sets the "extracted" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableExtracted(v *uint32) *IngestJobCreate {
	if v != nil {
		_c.SetExtracted(*v)
	}
	return _c
}

// SetDuplicates sets the "duplicates" field.
func (_c *IngestJobCreate) SetDuplicates(v uint32) *IngestJobCreate {
	_c.mutation.SetDuplicates(v)
	return _c
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableDuplicates(v *uint32) *IngestJobCreate {
	if v != nil {
		_c.SetDuplicates(*v)
	}
	return _c
}

// SetFailed sets the "failed" field.
func (_c *IngestJobCreate) SetFailed(v uint32) *IngestJobCreate {
	_c.mutation.SetFailed(v)
	return _c
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableFailed(v *uint32) *IngestJobCreate {
	if v != nil {
		_c.SetFailed(*v)
	}
	return _c
}

// SetErrorLog sets the "error_log" field.
func (_c *IngestJobCreate) SetErrorLog(v json.RawMessage) *IngestJobCreate {
	_c.mutation.SetErrorLog(v)
	return _c
}

// SetCancelled sets the "cancelled" field.
func (_c *IngestJobCreate) SetCancelled(v bool) *IngestJobCreate {
	_c.mutation.SetCancelled(v)
	return _c
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableCancelled(v *bool) *IngestJobCreate {
	if v != nil {
		_c.SetCancelled(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *IngestJobCreate) SetStartedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableStartedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *IngestJobCreate) SetFinishedAt(v time.Time) *IngestJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableFinishedAt(v *time.Time) *IngestJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IngestJobCreate) SetID(v uuid.UUID) *IngestJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *IngestJobCreate) SetNillableID(v *uuid.UUID) *IngestJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_c *IngestJobCreate) SetProfile(v *Profile) *IngestJobCreate {
	return _c.SetProfileID(v.ID)
}

// AddBatchIDs adds the "batches" edge to the JobBatch entity by IDs.
func (_c *IngestJobCreate) AddBatchIDs(ids ...uuid.UUID) *IngestJobCreate {
	_c.mutation.AddBatchIDs(ids...)
	return _c
}

// AddBatches adds the "batches" edges to the JobBatch entity.
func (_c *IngestJobCreate) AddBatches(v ...*JobBatch) *IngestJobCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBatchIDs(ids...)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_c *IngestJobCreate) Mutation() *IngestJobMutation {
	return _c.mutation
}

// Save creates the IngestJob in the database.
func (_c *IngestJobCreate) Save(ctx context.Context) (*IngestJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IngestJobCreate) SaveX(ctx context.Context) *IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IngestJobCreate) defaults() {
	if _, ok := _c.mutation.Phase(); !ok {
		v := ingestjob.DefaultPhase
		_c.mutation.SetPhase(v)
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		v := ingestjob.DefaultCursor
		_c.mutation.SetCursor(v)
	}
	if _, ok := _c.mutation.Scanned(); !ok {
		v := ingestjob.DefaultScanned
		_c.mutation.SetScanned(v)
	}
	if _, ok := _c.mutation.Matched(); !ok {
		v := ingestjob.DefaultMatched
		_c.mutation.SetMatched(v)
	}
	if _, ok := _c.mutation.Extracted(); !ok {
		v := ingestjob.DefaultExtracted
		_c.mutation.SetExtracted(v)
	}
	if _, ok := _c.mutation.Duplicates(); !ok {
		v := ingestjob.DefaultDuplicates
		_c.mutation.SetDuplicates(v)
	}
	if _, ok := _c.mutation.Failed(); !ok {
		v := ingestjob.DefaultFailed
		_c.mutation.SetFailed(v)
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		v := ingestjob.DefaultCancelled
		_c.mutation.SetCancelled(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := ingestjob.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := ingestjob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IngestJobCreate) check() error {
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "IngestJob.profile_id"`)}
	}
	if _, ok := _c.mutation.Phase(); !ok {
		return &ValidationError{Name: "phase", err: errors.New(`ent: missing required field "IngestJob.phase"`)}
	}
	if v, ok := _c.mutation.Phase(); ok {
		if err := ingestjob.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "IngestJob.phase": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Folder(); !ok {
		return &ValidationError{Name: "folder", err: errors.New(`ent: missing required field "IngestJob.folder"`)}
	}
	if v, ok := _c.mutation.Folder(); ok {
		if err := ingestjob.FolderValidator(v); err != nil {
			return &ValidationError{Name: "folder", err: fmt.Errorf(`ent: validator failed for field "IngestJob.folder": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Cursor(); !ok {
		return &ValidationError{Name: "cursor", err: errors.New(`ent: missing required field "IngestJob.cursor"`)}
	}
	if _, ok := _c.mutation.Scanned(); !ok {
		return &ValidationError{Name: "scanned", err: errors.New(`ent: missing required field "IngestJob.scanned"`)}
	}
	if _, ok := _c.mutation.Matched(); !ok {
		return &ValidationError{Name: "matched", err: errors.New(`ent: missing required field "IngestJob.matched"`)}
	}
	if _, ok := _c.mutation.Extracted(); !ok {
		return &ValidationError{Name: "extracted", err: errors.New(`ent: missing required field "IngestJob.extracted"`)}
	}
	if _, ok := _c.mutation.Duplicates(); !ok {
		return &ValidationError{Name: "duplicates", err: errors.New(`ent: missing required field "IngestJob.duplicates"`)}
	}
	if _, ok := _c.mutation.Failed(); !ok {
		return &ValidationError{Name: "failed", err: errors.New(`ent: missing required field "IngestJob.failed"`)}
	}
	if _, ok := _c.mutation.Cancelled(); !ok {
		return &ValidationError{Name: "cancelled", err: errors.New(`ent: missing required field "IngestJob.cancelled"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "IngestJob.started_at"`)}
	}
	if len(_c.mutation.ProfileIDs()) == 0 {
		return &ValidationError{Name: "profile", err: errors.New(`ent: missing required edge "IngestJob.profile"`)}
	}
	return nil
}

func (_c *IngestJobCreate) sqlSave(ctx context.Context) (*IngestJob, error) {
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

func (_c *IngestJobCreate) createSpec() (*IngestJob, *sqlgraph.CreateSpec) {
	var (
		_node = &IngestJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ingestjob.Table, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Phase(); ok {
		_spec.SetField(ingestjob.FieldPhase, field.TypeString, value)
		_node.Phase = value
	}
	if value, ok := _c.mutation.Folder(); ok {
		_spec.SetField(ingestjob.FieldFolder, field.TypeString, value)
		_node.Folder = value
	}
	if value, ok := _c.mutation.Criteria(); ok {
		_spec.SetField(ingestjob.FieldCriteria, field.TypeString, value)
		_node.Criteria = value
	}
	if value, ok := _c.mutation.Cursor(); ok {
		_spec.SetField(ingestjob.FieldCursor, field.TypeUint32, value)
		_node.Cursor = value
	}
	if value, ok := _c.mutation.Scanned(); ok {
		_spec.SetField(ingestjob.FieldScanned, field.TypeUint32, value)
		_node.Scanned = value
	}
	if value, ok := _c.mutation.Matched(); ok {
		_spec.SetField(ingestjob.FieldMatched, field.TypeUint32, value)
		_node.Matched = value
	}
	if value, ok := _c.mutation.Extracted(); ok {
		_spec.SetField(ingestjob.FieldExtracted, field.TypeUint32, value)
		_node.Extracted = value
	}
	if value, ok := _c.mutation.Duplicates(); ok {
		_spec.SetField(ingestjob.FieldDuplicates, field.TypeUint32, value)
		_node.Duplicates = value
	}
	if value, ok := _c.mutation.Failed(); ok {
		_spec.SetField(ingestjob.FieldFailed, field.TypeUint32, value)
		_node.Failed = value
	}
	if value, ok := _c.mutation.ErrorLog(); ok {
		_spec.SetField(ingestjob.FieldErrorLog, field.TypeJSON, value)
		_node.ErrorLog = value
	}
	if value, ok := _c.mutation.Cancelled(); ok {
		_spec.SetField(ingestjob.FieldCancelled, field.TypeBool, value)
		_node.Cancelled = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if nodes := _c.mutation.ProfileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ingestjob.ProfileTable,
			Columns: []string{ingestjob.ProfileColumn},
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
	if nodes := _c.mutation.BatchesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   ingestjob.BatchesTable,
			Columns: []string{ingestjob.BatchesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobbatch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// IngestJobCreateBulk is the builder for creating many IngestJob entities in bulk.
type IngestJobCreateBulk struct {
	config
	err      error
	builders []*IngestJobCreate
}

// Save creates the IngestJob entities in the database.
func (_c *IngestJobCreateBulk) Save(ctx context.Context) ([]*IngestJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*IngestJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IngestJobMutation)
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
func (_c *IngestJobCreateBulk) SaveX(ctx context.Context) []*IngestJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IngestJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IngestJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
