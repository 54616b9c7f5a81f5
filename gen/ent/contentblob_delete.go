// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/billfold/invoice-ingest/gen/ent/contentblob"
	"github.com/billfold/invoice-ingest/gen/ent/predicate"
)

// ContentBlobDelete is the builder for deleting a ContentBlob entity.
type ContentBlobDelete struct {
	config
	hooks    []Hook
	mutation *ContentBlobMutation
}

// Where appends a list predicates to the ContentBlobDelete builder.
func (_d *ContentBlobDelete) Where(ps ...predicate.ContentBlob) *ContentBlobDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ContentBlobDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContentBlobDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ContentBlobDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(contentblob.Table, sqlgraph.NewFieldSpec(contentblob.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// ContentBlobDeleteOne is the builder for deleting a single ContentBlob entity.
type ContentBlobDeleteOne struct {
	_d *ContentBlobDelete
}

// Where appends a list predicates to the ContentBlobDelete builder.
func (_d *ContentBlobDeleteOne) Where(ps ...predicate.ContentBlob) *ContentBlobDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ContentBlobDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{contentblob.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ContentBlobDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
