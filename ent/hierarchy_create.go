// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/hiveflow/hiveflow/ent/hierarchy"
	"github.com/hiveflow/hiveflow/ent/run"
	"github.com/hiveflow/hiveflow/pkg/models"
)

// HierarchyCreate is the builder for creating a Hierarchy entity.
type HierarchyCreate struct {
	config
	mutation *HierarchyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *HierarchyCreate) SetName(v string) *HierarchyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *HierarchyCreate) SetDescription(v string) *HierarchyCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *HierarchyCreate) SetNillableDescription(v *string) *HierarchyCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetSupervisor sets the "supervisor" field.
func (_c *HierarchyCreate) SetSupervisor(v string) *HierarchyCreate {
	_c.mutation.SetSupervisor(v)
	return _c
}

// SetTeams sets the "teams" field.
func (_c *HierarchyCreate) SetTeams(v []models.Team) *HierarchyCreate {
	_c.mutation.SetTeams(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HierarchyCreate) SetCreatedAt(v time.Time) *HierarchyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HierarchyCreate) SetNillableCreatedAt(v *time.Time) *HierarchyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HierarchyCreate) SetUpdatedAt(v time.Time) *HierarchyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HierarchyCreate) SetNillableUpdatedAt(v *time.Time) *HierarchyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HierarchyCreate) SetID(v string) *HierarchyCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddRunIDs adds the "runs" edge to the Run entity by IDs.
func (_c *HierarchyCreate) AddRunIDs(ids ...string) *HierarchyCreate {
	_c.mutation.AddRunIDs(ids...)
	return _c
}

// AddRuns adds the "runs" edges to the Run entity.
func (_c *HierarchyCreate) AddRuns(v ...*Run) *HierarchyCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRunIDs(ids...)
}

// Mutation returns the HierarchyMutation object of the builder.
func (_c *HierarchyCreate) Mutation() *HierarchyMutation {
	return _c.mutation
}

// Save creates the Hierarchy in the database.
func (_c *HierarchyCreate) Save(ctx context.Context) (*Hierarchy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HierarchyCreate) SaveX(ctx context.Context) *Hierarchy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HierarchyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HierarchyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HierarchyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hierarchy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hierarchy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HierarchyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Hierarchy.name"`)}
	}
	if _, ok := _c.mutation.Supervisor(); !ok {
		return &ValidationError{Name: "supervisor", err: errors.New(`ent: missing required field "Hierarchy.supervisor"`)}
	}
	if _, ok := _c.mutation.Teams(); !ok {
		return &ValidationError{Name: "teams", err: errors.New(`ent: missing required field "Hierarchy.teams"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Hierarchy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Hierarchy.updated_at"`)}
	}
	return nil
}

func (_c *HierarchyCreate) sqlSave(ctx context.Context) (*Hierarchy, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Hierarchy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HierarchyCreate) createSpec() (*Hierarchy, *sqlgraph.CreateSpec) {
	var (
		_node = &Hierarchy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hierarchy.Table, sqlgraph.NewFieldSpec(hierarchy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(hierarchy.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(hierarchy.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Supervisor(); ok {
		_spec.SetField(hierarchy.FieldSupervisor, field.TypeString, value)
		_node.Supervisor = value
	}
	if value, ok := _c.mutation.Teams(); ok {
		_spec.SetField(hierarchy.FieldTeams, field.TypeJSON, value)
		_node.Teams = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hierarchy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hierarchy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RunsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// HierarchyCreateBulk is the builder for creating many Hierarchy entities in bulk.
type HierarchyCreateBulk struct {
	config
	err      error
	builders []*HierarchyCreate
}

// Save creates the Hierarchy entities in the database.
func (_c *HierarchyCreateBulk) Save(ctx context.Context) ([]*Hierarchy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Hierarchy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HierarchyMutation)
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
func (_c *HierarchyCreateBulk) SaveX(ctx context.Context) []*Hierarchy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HierarchyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HierarchyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
