// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/hiveflow/hiveflow/ent/hierarchy"
	"github.com/hiveflow/hiveflow/ent/predicate"
	"github.com/hiveflow/hiveflow/ent/run"
	"github.com/hiveflow/hiveflow/pkg/models"
)

// HierarchyUpdate is the builder for updating Hierarchy entities.
type HierarchyUpdate struct {
	config
	hooks    []Hook
	mutation *HierarchyMutation
}

// Where appends a list predicates to the HierarchyUpdate builder.
func (_u *HierarchyUpdate) Where(ps ...predicate.Hierarchy) *HierarchyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *HierarchyUpdate) SetName(v string) *HierarchyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HierarchyUpdate) SetNillableName(v *string) *HierarchyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *HierarchyUpdate) SetDescription(v string) *HierarchyUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *HierarchyUpdate) SetNillableDescription(v *string) *HierarchyUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *HierarchyUpdate) ClearDescription() *HierarchyUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetSupervisor sets the "supervisor" field.
func (_u *HierarchyUpdate) SetSupervisor(v string) *HierarchyUpdate {
	_u.mutation.SetSupervisor(v)
	return _u
}

// SetNillableSupervisor sets the "supervisor" field if the given value is not nil.
func (_u *HierarchyUpdate) SetNillableSupervisor(v *string) *HierarchyUpdate {
	if v != nil {
		_u.SetSupervisor(*v)
	}
	return _u
}

// SetTeams sets the "teams" field.
func (_u *HierarchyUpdate) SetTeams(v []models.Team) *HierarchyUpdate {
	_u.mutation.SetTeams(v)
	return _u
}

// AppendTeams appends value to the "teams" field.
func (_u *HierarchyUpdate) AppendTeams(v []models.Team) *HierarchyUpdate {
	_u.mutation.AppendTeams(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HierarchyUpdate) SetUpdatedAt(v time.Time) *HierarchyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *HierarchyUpdate) AddRunIDs(ids ...string) *HierarchyUpdate {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *HierarchyUpdate) AddRuns(v ...*Run) *HierarchyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the HierarchyMutation object of the builder.
func (_u *HierarchyUpdate) Mutation() *HierarchyMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *HierarchyUpdate) ClearRuns() *HierarchyUpdate {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *HierarchyUpdate) RemoveRunIDs(ids ...string) *HierarchyUpdate {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *HierarchyUpdate) RemoveRuns(v ...*Run) *HierarchyUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HierarchyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HierarchyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HierarchyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HierarchyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HierarchyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hierarchy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *HierarchyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(hierarchy.Table, hierarchy.Columns, sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(hierarchy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(hierarchy.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(hierarchy.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Supervisor(); ok {
		_spec.SetField(hierarchy.FieldSupervisor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Teams(); ok {
		_spec.SetField(hierarchy.FieldTeams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTeams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hierarchy.FieldTeams, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hierarchy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hierarchy.RunsTable,
			Columns: []string{hierarchy.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hierarchy.RunsTable,
			Columns: []string{hierarchy.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hierarchy.RunsTable,
			Columns: []string{hierarchy.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hierarchy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HierarchyUpdateOne is the builder for updating a single Hierarchy entity.
type HierarchyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HierarchyMutation
}

// SetName sets the "name" field.
func (_u *HierarchyUpdateOne) SetName(v string) *HierarchyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HierarchyUpdateOne) SetNillableName(v *string) *HierarchyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *HierarchyUpdateOne) SetDescription(v string) *HierarchyUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *HierarchyUpdateOne) SetNillableDescription(v *string) *HierarchyUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *HierarchyUpdateOne) ClearDescription() *HierarchyUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetSupervisor sets the "supervisor" field.
func (_u *HierarchyUpdateOne) SetSupervisor(v string) *HierarchyUpdateOne {
	_u.mutation.SetSupervisor(v)
	return _u
}

// SetNillableSupervisor sets the "supervisor" field if the given value is not nil.
func (_u *HierarchyUpdateOne) SetNillableSupervisor(v *string) *HierarchyUpdateOne {
	if v != nil {
		_u.SetSupervisor(*v)
	}
	return _u
}

// SetTeams sets the "teams" field.
func (_u *HierarchyUpdateOne) SetTeams(v []models.Team) *HierarchyUpdateOne {
	_u.mutation.SetTeams(v)
	return _u
}

// AppendTeams appends value to the "teams" field.
func (_u *HierarchyUpdateOne) AppendTeams(v []models.Team) *HierarchyUpdateOne {
	_u.mutation.AppendTeams(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HierarchyUpdateOne) SetUpdatedAt(v time.Time) *HierarchyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_u *HierarchyUpdateOne) AddRunIDs(ids ...string) *HierarchyUpdateOne {
	_u.mutation.AddRunIDs(ids...)
	return _u
}

// AddRuns adds the "runs" edges to the Run entity.
func (_u *HierarchyUpdateOne) AddRuns(v ...*Run) *HierarchyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRunIDs(ids...)
}

// Mutation returns the HierarchyMutation object of the builder.
func (_u *HierarchyUpdateOne) Mutation() *HierarchyMutation {
	return _u.mutation
}

// ClearRuns clears all "runs" edges to the Run entity.
func (_u *HierarchyUpdateOne) ClearRuns() *HierarchyUpdateOne {
	_u.mutation.ClearRuns()
	return _u
}

// RemoveRunIDs removes the "runs" edge to Run entities by IDs.
func (_u *HierarchyUpdateOne) RemoveRunIDs(ids ...string) *HierarchyUpdateOne {
	_u.mutation.RemoveRunIDs(ids...)
	return _u
}

// RemoveRuns removes "runs" edges to Run entities.
func (_u *HierarchyUpdateOne) RemoveRuns(v ...*Run) *HierarchyUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRunIDs(ids...)
}

// Where appends a list predicates to the HierarchyUpdate builder.
func (_u *HierarchyUpdateOne) Where(ps ...predicate.Hierarchy) *HierarchyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HierarchyUpdateOne) Select(field string, fields ...string) *HierarchyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Hierarchy entity.
func (_u *HierarchyUpdateOne) Save(ctx context.Context) (*Hierarchy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HierarchyUpdateOne) SaveX(ctx context.Context) *Hierarchy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HierarchyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HierarchyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HierarchyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hierarchy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *HierarchyUpdateOne) sqlSave(ctx context.Context) (_node *Hierarchy, err error) {
	_spec := sqlgraph.NewUpdateSpec(hierarchy.Table, hierarchy.Columns, sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Hierarchy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hierarchy.FieldID)
		for _, f := range fields {
			if !hierarchy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hierarchy.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(hierarchy.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(hierarchy.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(hierarchy.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Supervisor(); ok {
		_spec.SetField(hierarchy.FieldSupervisor, field.TypeString, value)
	}
	if value, ok := _u.mutation.Teams(); ok {
		_spec.SetField(hierarchy.FieldTeams, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTeams(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, hierarchy.FieldTeams, value)
		})
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hierarchy.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hierarchy.RunsTable,
			Columns: []string{hierarchy.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRunsIDs(); len(nodes) > 0 && !_u.mutation.RunsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hierarchy.RunsTable,
			Columns: []string{hierarchy.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RunsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hierarchy.RunsTable,
			Columns: []string{hierarchy.RunsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(run.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Hierarchy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hierarchy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
