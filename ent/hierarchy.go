// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hiveflow/hiveflow/ent/hierarchy"
	"github.com/hiveflow/hiveflow/pkg/models"
)

// Hierarchy is the model entity for the Hierarchy schema.
type Hierarchy struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Description holds the value of the "description" field.
	Description string `json:"description,omitempty"`
	// Adapter agent reference for the global supervisor
	Supervisor string `json:"supervisor,omitempty"`
	// Teams with their supervisors and workers
	Teams []models.Team `json:"teams,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HierarchyQuery when eager-loading is set.
	Edges        HierarchyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// HierarchyEdges holds the relations/edges for other nodes in the graph.
type HierarchyEdges struct {
	// Runs holds the value of the runs edge.
	Runs []*Run `json:"runs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RunsOrErr returns the Runs value or an error if the edge
// was not loaded in eager-loading.
func (e HierarchyEdges) RunsOrErr() ([]*Run, error) {
	if e.loadedTypes[0] {
		return e.Runs, nil
	}
	return nil, &NotLoadedError{edge: "runs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Hierarchy) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hierarchy.FieldTeams:
			values[i] = new([]byte)
		case hierarchy.FieldID, hierarchy.FieldName, hierarchy.FieldDescription, hierarchy.FieldSupervisor:
			values[i] = new(sql.NullString)
		case hierarchy.FieldCreatedAt, hierarchy.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Hierarchy fields.
func (_m *Hierarchy) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hierarchy.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case hierarchy.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case hierarchy.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				_m.Description = value.String
			}
		case hierarchy.FieldSupervisor:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field supervisor", values[i])
			} else if value.Valid {
				_m.Supervisor = value.String
			}
		case hierarchy.FieldTeams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field teams", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Teams); err != nil {
					return fmt.Errorf("unmarshal field teams: %w", err)
				}
			}
		case hierarchy.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hierarchy.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Hierarchy.
// This includes values selected through modifiers, order, etc.
func (_m *Hierarchy) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRuns queries the "runs" edge of the Hierarchy entity.
func (_m *Hierarchy) QueryRuns() *RunQuery {
	return NewHierarchyClient(_m.config).QueryRuns(_m)
}

// Update returns a builder for updating this Hierarchy.
// Note that you need to call Hierarchy.Unwrap() before calling this method if this Hierarchy
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Hierarchy) Update() *HierarchyUpdateOne {
	return NewHierarchyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Hierarchy entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Hierarchy) Unwrap() *Hierarchy {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Hierarchy is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Hierarchy) String() string {
	var builder strings.Builder
	builder.WriteString("Hierarchy(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(_m.Description)
	builder.WriteString(", ")
	builder.WriteString("supervisor=")
	builder.WriteString(_m.Supervisor)
	builder.WriteString(", ")
	builder.WriteString("teams=")
	builder.WriteString(fmt.Sprintf("%v", _m.Teams))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Hierarchies is a parsable slice of Hierarchy.
type Hierarchies []*Hierarchy
