package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RunEvent holds the schema definition for the RunEvent entity: one durable
// envelope in a run's event stream.
type RunEvent struct {
	ent.Schema
}

// Fields of the RunEvent.
func (RunEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("run_id").
			Immutable(),
		field.Int64("sequence").
			Immutable().
			Comment("Per-run position, starts at 1, no gaps"),
		field.Time("timestamp").
			Immutable(),
		field.String("category").
			Immutable(),
		field.String("action").
			Immutable(),
		field.JSON("source", map[string]interface{}{}).
			Optional().
			Immutable().
			Comment("Emitting agent (nil for run-level events)"),
		field.JSON("data", map[string]interface{}{}).
			Optional().
			Immutable(),
	}
}

// Edges of the RunEvent.
func (RunEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("run", Run.Type).
			Ref("events").
			Field("run_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the RunEvent.
func (RunEvent) Indexes() []ent.Index {
	return []ent.Index{
		// Stream ordering and replay; uniqueness backs the no-gap invariant.
		index.Fields("run_id", "sequence").
			Unique(),
		index.Fields("timestamp"),
	}
}
