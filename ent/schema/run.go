package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/hiveflow/hiveflow/pkg/models"
)

// Run holds the schema definition for the Run entity: one execution of a
// hierarchy against a task.
type Run struct {
	ent.Schema
}

// Fields of the Run.
func (Run) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("run_id").
			Unique().
			Immutable(),
		field.String("hierarchy_id").
			Immutable(),
		field.Text("task").
			Immutable(),
		field.Enum("status").
			Values("pending", "running", "completed", "failed", "cancelled").
			Default("pending"),
		field.Text("result").
			Optional().
			Nillable().
			Comment("Global supervisor's final text, set on completion"),
		field.Text("error_message").
			Optional().
			Nillable(),
		field.JSON("statistics", map[string]int{}).
			Optional().
			Comment("Per-category event counts, set on termination"),
		field.JSON("topology_snapshot", &models.Topology{}).
			Optional().
			Comment("Deep copy of the hierarchy at start time"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("When a pool worker claimed the run"),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Run.
func (Run) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hierarchy", Hierarchy.Type).
			Ref("runs").
			Field("hierarchy_id").
			Unique().
			Required().
			Immutable(),
		edge.To("events", RunEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Run.
func (Run) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("hierarchy_id"),
		// FIFO claim path
		index.Fields("status", "created_at"),
	}
}
