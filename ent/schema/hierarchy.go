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

// Hierarchy holds the schema definition for the Hierarchy entity: the static
// two-level agent tree runs execute against.
type Hierarchy struct {
	ent.Schema
}

// Fields of the Hierarchy.
func (Hierarchy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("hierarchy_id").
			Unique().
			Immutable(),
		field.String("name").
			Unique(),
		field.Text("description").
			Optional(),
		field.String("supervisor").
			Comment("Adapter agent reference for the global supervisor"),
		field.JSON("teams", []models.Team{}).
			Comment("Teams with their supervisors and workers"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Hierarchy.
func (Hierarchy) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("runs", Run.Type).
			Annotations(entsql.OnDelete(entsql.Restrict)),
	}
}

// Indexes of the Hierarchy.
func (Hierarchy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
