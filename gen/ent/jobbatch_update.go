// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/billfold/invoice-ingest/gen/ent/predicate"
	"github.com/google/uuid"
)

// JobBatchUpdate is the builder for updating JobBatch entities.
type JobBatchUpdate struct {
	config
	hooks    []Hook
	mutation *JobBatchMutation
}

// Where appends a list predicates to the JobBatchUpdate builder.
func (_u *JobBatchUpdate) Where(ps ...predicate.JobBatch) *JobBatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetJobID sets the "job_id" field.
func (_u *JobBatchUpdate) SetJobID(v uuid.UUID) *JobBatchUpdate {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobBatchUpdate) SetNillableJobID(v *uuid.UUID) *JobBatchUpdate {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *JobBatchUpdate) SetSeq(v int) *JobBatchUpdate {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *JobBatchUpdate) SetNillableSeq(v *int) *JobBatchUpdate {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *JobBatchUpdate) AddSeq(v int) *JobBatchUpdate {
	_u.mutation.AddSeq(v)
	return _u
}

// SetUids sets the "uids" field.
func (_u *JobBatchUpdate) SetUids(v json.RawMessage) *JobBatchUpdate {
	_u.mutation.SetUids(v)
	return _u
}

// AppendUids appends value to the "uids" field.
func (_u *JobBatchUpdate) AppendUids(v json.RawMessage) *JobBatchUpdate {
	_u.mutation.AppendUids(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobBatchUpdate) SetStatus(v string) *JobBatchUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobBatchUpdate) SetNillableStatus(v *string) *JobBatchUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtracted sets the "extracted" field.
func (_u *JobBatchUpdate) SetExtracted(v uint32) *JobBatchUpdate {
	_u.mutation.ResetExtracted()
	_u.mutation.SetExtracted(v)
	return _u
}

// SetNillableExtracted sets the "extracted" field if the given value is not nil.
func (_u *JobBatchUpdate) SetNillableExtracted(v *uint32) *JobBatchUpdate {
	if v != nil {
		_u.SetExtracted(*v)
	}
	return _u
}

// AddExtracted adds value to the "extracted" field.
func (_u *JobBatchUpdate) AddExtracted(v int32) *JobBatchUpdate {
	_u.mutation.AddExtracted(v)
	return _u
}

// SetDuplicates sets the "duplicates" field.
func (_u *JobBatchUpdate) SetDuplicates(v uint32) *JobBatchUpdate {
	_u.mutation.ResetDuplicates()
	_u.mutation.SetDuplicates(v)
	return _u
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_u *JobBatchUpdate) SetNillableDuplicates(v *uint32) *JobBatchUpdate {
	if v != nil {
		_u.SetDuplicates(*v)
	}
	return _u
}

// AddDuplicates adds value to the "duplicates" field.
func (_u *JobBatchUpdate) AddDuplicates(v int32) *JobBatchUpdate {
	_u.mutation.AddDuplicates(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *JobBatchUpdate) SetFailed(v uint32) *JobBatchUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *JobBatchUpdate) SetNillableFailed(v *uint32) *JobBatchUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *JobBatchUpdate) AddFailed(v int32) *JobBatchUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetJob sets the "job" edge to the IngestJob entity.
func (_u *JobBatchUpdate) SetJob(v *IngestJob) *JobBatchUpdate {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobBatchMutation object of the builder.
func (_u *JobBatchUpdate) Mutation() *JobBatchMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the IngestJob entity.
func (_u *JobBatchUpdate) ClearJob() *JobBatchUpdate {
	_u.mutation.ClearJob()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobBatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobBatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobBatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobBatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobBatchUpdate) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := jobbatch.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "JobBatch.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := jobbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobBatch.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobBatch.job"`)
	}
	return nil
}

func (_u *JobBatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobbatch.Table, jobbatch.Columns, sqlgraph.NewFieldSpec(jobbatch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(jobbatch.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(jobbatch.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Uids(); ok {
		_spec.SetField(jobbatch.FieldUids, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUids(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobbatch.FieldUids, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobbatch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extracted(); ok {
		_spec.SetField(jobbatch.FieldExtracted, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedExtracted(); ok {
		_spec.AddField(jobbatch.FieldExtracted, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Duplicates(); ok {
		_spec.SetField(jobbatch.FieldDuplicates, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedDuplicates(); ok {
		_spec.AddField(jobbatch.FieldDuplicates, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(jobbatch.FieldFailed, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(jobbatch.FieldFailed, field.TypeUint32, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobBatchUpdateOne is the builder for updating a single JobBatch entity.
type JobBatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobBatchMutation
}

// SetJobID sets the "job_id" field.
func (_u *JobBatchUpdateOne) SetJobID(v uuid.UUID) *JobBatchUpdateOne {
	_u.mutation.SetJobID(v)
	return _u
}

// SetNillableJobID sets the "job_id" field if the given value is not nil.
func (_u *JobBatchUpdateOne) SetNillableJobID(v *uuid.UUID) *JobBatchUpdateOne {
	if v != nil {
		_u.SetJobID(*v)
	}
	return _u
}

// SetSeq sets the "seq" field.
func (_u *JobBatchUpdateOne) SetSeq(v int) *JobBatchUpdateOne {
	_u.mutation.ResetSeq()
	_u.mutation.SetSeq(v)
	return _u
}

// SetNillableSeq sets the "seq" field if the given value is not nil.
func (_u *JobBatchUpdateOne) SetNillableSeq(v *int) *JobBatchUpdateOne {
	if v != nil {
		_u.SetSeq(*v)
	}
	return _u
}

// AddSeq adds value to the "seq" field.
func (_u *JobBatchUpdateOne) AddSeq(v int) *JobBatchUpdateOne {
	_u.mutation.AddSeq(v)
	return _u
}

// SetUids sets the "uids" field.
func (_u *JobBatchUpdateOne) SetUids(v json.RawMessage) *JobBatchUpdateOne {
	_u.mutation.SetUids(v)
	return _u
}

// AppendUids appends value to the "uids" field.
func (_u *JobBatchUpdateOne) AppendUids(v json.RawMessage) *JobBatchUpdateOne {
	_u.mutation.AppendUids(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobBatchUpdateOne) SetStatus(v string) *JobBatchUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobBatchUpdateOne) SetNillableStatus(v *string) *JobBatchUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExtracted sets the "extracted" field.
func (_u *JobBatchUpdateOne) SetExtracted(v uint32) *JobBatchUpdateOne {
	_u.mutation.ResetExtracted()
	_u.mutation.SetExtracted(v)
	return _u
}

// SetNillableExtracted sets the "extracted" field if the given value is not nil.
func (_u *JobBatchUpdateOne) SetNillableExtracted(v *uint32) *JobBatchUpdateOne {
	if v != nil {
		_u.SetExtracted(*v)
	}
	return _u
}

// AddExtracted adds value to the "extracted" field.
func (_u *JobBatchUpdateOne) AddExtracted(v int32) *JobBatchUpdateOne {
	_u.mutation.AddExtracted(v)
	return _u
}

// SetDuplicates sets the "duplicates" field.
func (_u *JobBatchUpdateOne) SetDuplicates(v uint32) *JobBatchUpdateOne {
	_u.mutation.ResetDuplicates()
	_u.mutation.SetDuplicates(v)
	return _u
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_u *JobBatchUpdateOne) SetNillableDuplicates(v *uint32) *JobBatchUpdateOne {
	if v != nil {
		_u.SetDuplicates(*v)
	}
	return _u
}

// AddDuplicates adds value to the "duplicates" field.
func (_u *JobBatchUpdateOne) AddDuplicates(v int32) *JobBatchUpdateOne {
	_u.mutation.AddDuplicates(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *JobBatchUpdateOne) SetFailed(v uint32) *JobBatchUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *JobBatchUpdateOne) SetNillableFailed(v *uint32) *JobBatchUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *JobBatchUpdateOne) AddFailed(v int32) *JobBatchUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetJob sets the "job" edge to the IngestJob entity.
func (_u *JobBatchUpdateOne) SetJob(v *IngestJob) *JobBatchUpdateOne {
	return _u.SetJobID(v.ID)
}

// Mutation returns the JobBatchMutation object of the builder.
func (_u *JobBatchUpdateOne) Mutation() *JobBatchMutation {
	return _u.mutation
}

// ClearJob clears the "job" edge to the IngestJob entity.
func (_u *JobBatchUpdateOne) ClearJob() *JobBatchUpdateOne {
	_u.mutation.ClearJob()
	return _u
}

// Where appends a list predicates to the JobBatchUpdate builder.
func (_u *JobBatchUpdateOne) Where(ps ...predicate.JobBatch) *JobBatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobBatchUpdateOne) Select(field string, fields ...string) *JobBatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated JobBatch entity.
func (_u *JobBatchUpdateOne) Save(ctx context.Context) (*JobBatch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobBatchUpdateOne) SaveX(ctx context.Context) *JobBatch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobBatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobBatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobBatchUpdateOne) check() error {
	if v, ok := _u.mutation.Seq(); ok {
		if err := jobbatch.SeqValidator(v); err != nil {
			return &ValidationError{Name: "seq", err: fmt.Errorf(`ent: validator failed for field "JobBatch.seq": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := jobbatch.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "JobBatch.status": %w`, err)}
		}
	}
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "JobBatch.job"`)
	}
	return nil
}

func (_u *JobBatchUpdateOne) sqlSave(ctx context.Context) (_node *JobBatch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(jobbatch.Table, jobbatch.Columns, sqlgraph.NewFieldSpec(jobbatch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "JobBatch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, jobbatch.FieldID)
		for _, f := range fields {
			if !jobbatch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != jobbatch.FieldID {
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
	if value, ok := _u.mutation.Seq(); ok {
		_spec.SetField(jobbatch.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSeq(); ok {
		_spec.AddField(jobbatch.FieldSeq, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Uids(); ok {
		_spec.SetField(jobbatch.FieldUids, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedUids(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, jobbatch.FieldUids, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(jobbatch.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Extracted(); ok {
		_spec.SetField(jobbatch.FieldExtracted, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedExtracted(); ok {
		_spec.AddField(jobbatch.FieldExtracted, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Duplicates(); ok {
		_spec.SetField(jobbatch.FieldDuplicates, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedDuplicates(); ok {
		_spec.AddField(jobbatch.FieldDuplicates, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(jobbatch.FieldFailed, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(jobbatch.FieldFailed, field.TypeUint32, value)
	}
	if _u.mutation.JobCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &JobBatch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{jobbatch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
