// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hiveflow/hiveflow/ent/hierarchy"
	"github.com/hiveflow/hiveflow/ent/predicate"
)

// HierarchyDelete is the builder for deleting a Hierarchy entity.
type HierarchyDelete struct {
	config
	hooks    []Hook
	mutation *HierarchyMutation
}

// Where appends a list predicates to the HierarchyDelete builder.
func (_d *HierarchyDelete) Where(ps ...predicate.Hierarchy) *HierarchyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *HierarchyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HierarchyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *HierarchyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(hierarchy.Table, sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeString))
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

// HierarchyDeleteOne is the builder for deleting a single Hierarchy entity.
type HierarchyDeleteOne struct {
	_d *HierarchyDelete
}

// Where appends a list predicates to the HierarchyDelete builder.
func (_d *HierarchyDeleteOne) Where(ps ...predicate.Hierarchy) *HierarchyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *HierarchyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{hierarchy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *HierarchyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
