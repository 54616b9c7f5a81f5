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
	"github.com/billfold/invoice-ingest/gen/ent/ingestjob"
	"github.com/billfold/invoice-ingest/gen/ent/jobbatch"
	"github.com/billfold/invoice-ingest/gen/ent/predicate"
	"github.com/billfold/invoice-ingest/gen/ent/profile"
	"github.com/google/uuid"
)

// IngestJobUpdate is the builder for updating IngestJob entities.
type IngestJobUpdate struct {
	config
	hooks    []Hook
	mutation *IngestJobMutation
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdate) Where(ps ...predicate.IngestJob) *IngestJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *IngestJobUpdate) SetProfileID(v uuid.UUID) *IngestJobUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableProfileID(v *uuid.UUID) *IngestJobUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *IngestJobUpdate) SetPhase(v string) *IngestJobUpdate {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillablePhase(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetFolder sets the "folder" field.
func (_u *IngestJobUpdate) SetFolder(v string) *IngestJobUpdate {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFolder(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *IngestJobUpdate) SetCriteria(v string) *IngestJobUpdate {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableCriteria(v *string) *IngestJobUpdate {
	if v != nil {
		_u.SetCriteria(*v)
	}
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *IngestJobUpdate) ClearCriteria() *IngestJobUpdate {
	_u.mutation.ClearCriteria()
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *IngestJobUpdate) SetCursor(v uint32) *IngestJobUpdate {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableCursor(v *uint32) *IngestJobUpdate {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *IngestJobUpdate) AddCursor(v int32) *IngestJobUpdate {
	_u.mutation.AddCursor(v)
	return _u
}

// SetScanned sets the "scanned" field.
func (_u *IngestJobUpdate) SetScanned(v uint32) *IngestJobUpdate {
	_u.mutation.ResetScanned()
	_u.mutation.SetScanned(v)
	return _u
}

// SetNillableScanned sets the "scanned" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableScanned(v *uint32) *IngestJobUpdate {
	if v != nil {
		_u.SetScanned(*v)
	}
	return _u
}

// AddScanned adds value to the "scanned" field.
func (_u *IngestJobUpdate) AddScanned(v int32) *IngestJobUpdate {
	_u.mutation.AddScanned(v)
	return _u
}

// SetMatched sets the "matched" field.
func (_u *IngestJobUpdate) SetMatched(v uint32) *IngestJobUpdate {
	_u.mutation.ResetMatched()
	_u.mutation.SetMatched(v)
	return _u
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableMatched(v *uint32) *IngestJobUpdate {
	if v != nil {
		_u.SetMatched(*v)
	}
	return _u
}

// AddMatched adds value to the "matched" field.
func (_u *IngestJobUpdate) AddMatched(v int32) *IngestJobUpdate {
	_u.mutation.AddMatched(v)
	return _u
}

// SetExtracted sets the "extracted" field.
func (_u *IngestJobUpdate) SetExtracted(v uint32) *IngestJobUpdate {
	_u.mutation.ResetExtracted()
	_u.mutation.SetExtracted(v)
	return _u
}

// SetNillableExtracted sets the "extracted" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableExtracted(v *uint32) *IngestJobUpdate {
	if v != nil {
		_u.SetExtracted(*v)
	}
	return _u
}

// AddExtracted adds value to the "extracted" field.
func (_u *IngestJobUpdate) AddExtracted(v int32) *IngestJobUpdate {
	_u.mutation.AddExtracted(v)
	return _u
}

// SetDuplicates sets the "duplicates" field.
func (_u *IngestJobUpdate) SetDuplicates(v uint32) *IngestJobUpdate {
	_u.mutation.ResetDuplicates()
	_u.mutation.SetDuplicates(v)
	return _u
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableDuplicates(v *uint32) *IngestJobUpdate {
	if v != nil {
		_u.SetDuplicates(*v)
	}
	return _u
}

// AddDuplicates adds value to the "duplicates" field.
func (_u *IngestJobUpdate) AddDuplicates(v int32) *IngestJobUpdate {
	_u.mutation.AddDuplicates(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *IngestJobUpdate) SetFailed(v uint32) *IngestJobUpdate {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFailed(v *uint32) *IngestJobUpdate {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *IngestJobUpdate) AddFailed(v int32) *IngestJobUpdate {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *IngestJobUpdate) SetErrorLog(v json.RawMessage) *IngestJobUpdate {
	_u.mutation.SetErrorLog(v)
	return _u
}

// AppendErrorLog appends value to the "error_log" field.
func (_u *IngestJobUpdate) AppendErrorLog(v json.RawMessage) *IngestJobUpdate {
	_u.mutation.AppendErrorLog(v)
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *IngestJobUpdate) ClearErrorLog() *IngestJobUpdate {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *IngestJobUpdate) SetCancelled(v bool) *IngestJobUpdate {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableCancelled(v *bool) *IngestJobUpdate {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestJobUpdate) SetStartedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableStartedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdate) SetFinishedAt(v time.Time) *IngestJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdate) SetNillableFinishedAt(v *time.Time) *IngestJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdate) ClearFinishedAt() *IngestJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *IngestJobUpdate) SetProfile(v *Profile) *IngestJobUpdate {
	return _u.SetProfileID(v.ID)
}

// AddBatchIDs adds the "batches" edge to the JobBatch entity by IDs.
func (_u *IngestJobUpdate) AddBatchIDs(ids ...uuid.UUID) *IngestJobUpdate {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the JobBatch entity.
func (_u *IngestJobUpdate) AddBatches(v ...*JobBatch) *IngestJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdate) Mutation() *IngestJobMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *IngestJobUpdate) ClearProfile() *IngestJobUpdate {
	_u.mutation.ClearProfile()
	return _u
}

// ClearBatches clears all "batches" edges to the JobBatch entity.
func (_u *IngestJobUpdate) ClearBatches() *IngestJobUpdate {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to JobBatch entities by IDs.
func (_u *IngestJobUpdate) RemoveBatchIDs(ids ...uuid.UUID) *IngestJobUpdate {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to JobBatch entities.
func (_u *IngestJobUpdate) RemoveBatches(v ...*JobBatch) *IngestJobUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IngestJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IngestJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdate) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := ingestjob.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "IngestJob.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Folder(); ok {
		if err := ingestjob.FolderValidator(v); err != nil {
			return &ValidationError{Name: "folder", err: fmt.Errorf(`ent: validator failed for field "IngestJob.folder": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IngestJob.profile"`)
	}
	return nil
}

func (_u *IngestJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(ingestjob.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(ingestjob.FieldFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(ingestjob.FieldCriteria, field.TypeString, value)
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(ingestjob.FieldCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(ingestjob.FieldCursor, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(ingestjob.FieldCursor, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Scanned(); ok {
		_spec.SetField(ingestjob.FieldScanned, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedScanned(); ok {
		_spec.AddField(ingestjob.FieldScanned, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Matched(); ok {
		_spec.SetField(ingestjob.FieldMatched, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedMatched(); ok {
		_spec.AddField(ingestjob.FieldMatched, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Extracted(); ok {
		_spec.SetField(ingestjob.FieldExtracted, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedExtracted(); ok {
		_spec.AddField(ingestjob.FieldExtracted, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Duplicates(); ok {
		_spec.SetField(ingestjob.FieldDuplicates, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedDuplicates(); ok {
		_spec.AddField(ingestjob.FieldDuplicates, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(ingestjob.FieldFailed, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(ingestjob.FieldFailed, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(ingestjob.FieldErrorLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ingestjob.FieldErrorLog, value)
		})
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(ingestjob.FieldErrorLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(ingestjob.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IngestJobUpdateOne is the builder for updating a single IngestJob entity.
type IngestJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IngestJobMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *IngestJobUpdateOne) SetProfileID(v uuid.UUID) *IngestJobUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableProfileID(v *uuid.UUID) *IngestJobUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetPhase sets the "phase" field.
func (_u *IngestJobUpdateOne) SetPhase(v string) *IngestJobUpdateOne {
	_u.mutation.SetPhase(v)
	return _u
}

// SetNillablePhase sets the "phase" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillablePhase(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetPhase(*v)
	}
	return _u
}

// SetFolder sets the "folder" field.
func (_u *IngestJobUpdateOne) SetFolder(v string) *IngestJobUpdateOne {
	_u.mutation.SetFolder(v)
	return _u
}

// SetNillableFolder sets the "folder" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFolder(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFolder(*v)
	}
	return _u
}

// SetCriteria sets the "criteria" field.
func (_u *IngestJobUpdateOne) SetCriteria(v string) *IngestJobUpdateOne {
	_u.mutation.SetCriteria(v)
	return _u
}

// SetNillableCriteria sets the "criteria" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableCriteria(v *string) *IngestJobUpdateOne {
	if v != nil {
		_u.SetCriteria(*v)
	}
	return _u
}

// ClearCriteria clears the value of the "criteria" field.
func (_u *IngestJobUpdateOne) ClearCriteria() *IngestJobUpdateOne {
	_u.mutation.ClearCriteria()
	return _u
}

// SetCursor sets the "cursor" field.
func (_u *IngestJobUpdateOne) SetCursor(v uint32) *IngestJobUpdateOne {
	_u.mutation.ResetCursor()
	_u.mutation.SetCursor(v)
	return _u
}

// SetNillableCursor sets the "cursor" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableCursor(v *uint32) *IngestJobUpdateOne {
	if v != nil {
		_u.SetCursor(*v)
	}
	return _u
}

// AddCursor adds value to the "cursor" field.
func (_u *IngestJobUpdateOne) AddCursor(v int32) *IngestJobUpdateOne {
	_u.mutation.AddCursor(v)
	return _u
}

// SetScanned sets the "scanned" field.
func (_u *IngestJobUpdateOne) SetScanned(v uint32) *IngestJobUpdateOne {
	_u.mutation.ResetScanned()
	_u.mutation.SetScanned(v)
	return _u
}

// SetNillableScanned sets the "scanned" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableScanned(v *uint32) *IngestJobUpdateOne {
	if v != nil {
		_u.SetScanned(*v)
	}
	return _u
}

// AddScanned adds value to the "scanned" field.
func (_u *IngestJobUpdateOne) AddScanned(v int32) *IngestJobUpdateOne {
	_u.mutation.AddScanned(v)
	return _u
}

// SetMatched sets the "matched" field.
func (_u *IngestJobUpdateOne) SetMatched(v uint32) *IngestJobUpdateOne {
	_u.mutation.ResetMatched()
	_u.mutation.SetMatched(v)
	return _u
}

// SetNillableMatched sets the "matched" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableMatched(v *uint32) *IngestJobUpdateOne {
	if v != nil {
		_u.SetMatched(*v)
	}
	return _u
}

// AddMatched adds value to the "matched" field.
func (_u *IngestJobUpdateOne) AddMatched(v int32) *IngestJobUpdateOne {
	_u.mutation.AddMatched(v)
	return _u
}

// SetExtracted sets the "extracted" field.
func (_u *IngestJobUpdateOne) SetExtracted(v uint32) *IngestJobUpdateOne {
	_u.mutation.ResetExtracted()
	_u.mutation.SetExtracted(v)
	return _u
}

// SetNillableExtracted sets the "extracted" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableExtracted(v *uint32) *IngestJobUpdateOne {
	if v != nil {
		_u.SetExtracted(*v)
	}
	return _u
}

// AddExtracted adds value to the "extracted" field.
func (_u *IngestJobUpdateOne) AddExtracted(v int32) *IngestJobUpdateOne {
	_u.mutation.AddExtracted(v)
	return _u
}

// SetDuplicates sets the "duplicates" field.
func (_u *IngestJobUpdateOne) SetDuplicates(v uint32) *IngestJobUpdateOne {
	_u.mutation.ResetDuplicates()
	_u.mutation.SetDuplicates(v)
	return _u
}

// SetNillableDuplicates sets the "duplicates" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableDuplicates(v *uint32) *IngestJobUpdateOne {
	if v != nil {
		_u.SetDuplicates(*v)
	}
	return _u
}

// AddDuplicates adds value to the "duplicates" field.
func (_u *IngestJobUpdateOne) AddDuplicates(v int32) *IngestJobUpdateOne {
	_u.mutation.AddDuplicates(v)
	return _u
}

// SetFailed sets the "failed" field.
func (_u *IngestJobUpdateOne) SetFailed(v uint32) *IngestJobUpdateOne {
	_u.mutation.ResetFailed()
	_u.mutation.SetFailed(v)
	return _u
}

// SetNillableFailed sets the "failed" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFailed(v *uint32) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFailed(*v)
	}
	return _u
}

// AddFailed adds value to the "failed" field.
func (_u *IngestJobUpdateOne) AddFailed(v int32) *IngestJobUpdateOne {
	_u.mutation.AddFailed(v)
	return _u
}

// SetErrorLog sets the "error_log" field.
func (_u *IngestJobUpdateOne) SetErrorLog(v json.RawMessage) *IngestJobUpdateOne {
	_u.mutation.SetErrorLog(v)
	return _u
}

// AppendErrorLog appends value to the "error_log" field.
func (_u *IngestJobUpdateOne) AppendErrorLog(v json.RawMessage) *IngestJobUpdateOne {
	_u.mutation.AppendErrorLog(v)
	return _u
}

// ClearErrorLog clears the value of the "error_log" field.
func (_u *IngestJobUpdateOne) ClearErrorLog() *IngestJobUpdateOne {
	_u.mutation.ClearErrorLog()
	return _u
}

// SetCancelled sets the "cancelled" field.
func (_u *IngestJobUpdateOne) SetCancelled(v bool) *IngestJobUpdateOne {
	_u.mutation.SetCancelled(v)
	return _u
}

// SetNillableCancelled sets the "cancelled" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableCancelled(v *bool) *IngestJobUpdateOne {
	if v != nil {
		_u.SetCancelled(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *IngestJobUpdateOne) SetStartedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableStartedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *IngestJobUpdateOne) SetFinishedAt(v time.Time) *IngestJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *IngestJobUpdateOne) SetNillableFinishedAt(v *time.Time) *IngestJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *IngestJobUpdateOne) ClearFinishedAt() *IngestJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetProfile sets the "profile" edge to the Profile entity.
func (_u *IngestJobUpdateOne) SetProfile(v *Profile) *IngestJobUpdateOne {
	return _u.SetProfileID(v.ID)
}

// AddBatchIDs adds the "batches" edge to the JobBatch entity by IDs.
func (_u *IngestJobUpdateOne) AddBatchIDs(ids ...uuid.UUID) *IngestJobUpdateOne {
	_u.mutation.AddBatchIDs(ids...)
	return _u
}

// AddBatches adds the "batches" edges to the JobBatch entity.
func (_u *IngestJobUpdateOne) AddBatches(v ...*JobBatch) *IngestJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddBatchIDs(ids...)
}

// Mutation returns the IngestJobMutation object of the builder.
func (_u *IngestJobUpdateOne) Mutation() *IngestJobMutation {
	return _u.mutation
}

// ClearProfile clears the "profile" edge to the Profile entity.
func (_u *IngestJobUpdateOne) ClearProfile() *IngestJobUpdateOne {
	_u.mutation.ClearProfile()
	return _u
}

// ClearBatches clears all "batches" edges to the JobBatch entity.
func (_u *IngestJobUpdateOne) ClearBatches() *IngestJobUpdateOne {
	_u.mutation.ClearBatches()
	return _u
}

// RemoveBatchIDs removes the "batches" edge to JobBatch entities by IDs.
func (_u *IngestJobUpdateOne) RemoveBatchIDs(ids ...uuid.UUID) *IngestJobUpdateOne {
	_u.mutation.RemoveBatchIDs(ids...)
	return _u
}

// RemoveBatches removes "batches" edges to JobBatch entities.
func (_u *IngestJobUpdateOne) RemoveBatches(v ...*JobBatch) *IngestJobUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveBatchIDs(ids...)
}

// Where appends a list predicates to the IngestJobUpdate builder.
func (_u *IngestJobUpdateOne) Where(ps ...predicate.IngestJob) *IngestJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IngestJobUpdateOne) Select(field string, fields ...string) *IngestJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated IngestJob entity.
func (_u *IngestJobUpdateOne) Save(ctx context.Context) (*IngestJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IngestJobUpdateOne) SaveX(ctx context.Context) *IngestJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IngestJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IngestJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *IngestJobUpdateOne) check() error {
	if v, ok := _u.mutation.Phase(); ok {
		if err := ingestjob.PhaseValidator(v); err != nil {
			return &ValidationError{Name: "phase", err: fmt.Errorf(`ent: validator failed for field "IngestJob.phase": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Folder(); ok {
		if err := ingestjob.FolderValidator(v); err != nil {
			return &ValidationError{Name: "folder", err: fmt.Errorf(`ent: validator failed for field "IngestJob.folder": %w`, err)}
		}
	}
	if _u.mutation.ProfileCleared() && len(_u.mutation.ProfileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "IngestJob.profile"`)
	}
	return nil
}

func (_u *IngestJobUpdateOne) sqlSave(ctx context.Context) (_node *IngestJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ingestjob.Table, ingestjob.Columns, sqlgraph.NewFieldSpec(ingestjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "IngestJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ingestjob.FieldID)
		for _, f := range fields {
			if !ingestjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ingestjob.FieldID {
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
	if value, ok := _u.mutation.Phase(); ok {
		_spec.SetField(ingestjob.FieldPhase, field.TypeString, value)
	}
	if value, ok := _u.mutation.Folder(); ok {
		_spec.SetField(ingestjob.FieldFolder, field.TypeString, value)
	}
	if value, ok := _u.mutation.Criteria(); ok {
		_spec.SetField(ingestjob.FieldCriteria, field.TypeString, value)
	}
	if _u.mutation.CriteriaCleared() {
		_spec.ClearField(ingestjob.FieldCriteria, field.TypeString)
	}
	if value, ok := _u.mutation.Cursor(); ok {
		_spec.SetField(ingestjob.FieldCursor, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedCursor(); ok {
		_spec.AddField(ingestjob.FieldCursor, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Scanned(); ok {
		_spec.SetField(ingestjob.FieldScanned, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedScanned(); ok {
		_spec.AddField(ingestjob.FieldScanned, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Matched(); ok {
		_spec.SetField(ingestjob.FieldMatched, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedMatched(); ok {
		_spec.AddField(ingestjob.FieldMatched, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Extracted(); ok {
		_spec.SetField(ingestjob.FieldExtracted, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedExtracted(); ok {
		_spec.AddField(ingestjob.FieldExtracted, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Duplicates(); ok {
		_spec.SetField(ingestjob.FieldDuplicates, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedDuplicates(); ok {
		_spec.AddField(ingestjob.FieldDuplicates, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.Failed(); ok {
		_spec.SetField(ingestjob.FieldFailed, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.AddedFailed(); ok {
		_spec.AddField(ingestjob.FieldFailed, field.TypeUint32, value)
	}
	if value, ok := _u.mutation.ErrorLog(); ok {
		_spec.SetField(ingestjob.FieldErrorLog, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedErrorLog(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, ingestjob.FieldErrorLog, value)
		})
	}
	if _u.mutation.ErrorLogCleared() {
		_spec.ClearField(ingestjob.FieldErrorLog, field.TypeJSON)
	}
	if value, ok := _u.mutation.Cancelled(); ok {
		_spec.SetField(ingestjob.FieldCancelled, field.TypeBool, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(ingestjob.FieldStartedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(ingestjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(ingestjob.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.ProfileCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ProfileIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.BatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedBatchesIDs(); len(nodes) > 0 && !_u.mutation.BatchesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &IngestJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ingestjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
