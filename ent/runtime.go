// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hiveflow/hiveflow/ent/hierarchy"
	"github.com/hiveflow/hiveflow/ent/run"
	"github.com/hiveflow/hiveflow/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	hierarchyFields := schema.Hierarchy{}.Fields()
	_ = hierarchyFields
	// hierarchyDescCreatedAt is the schema descriptor for created_at field.
	hierarchyDescCreatedAt := hierarchyFields[5].Descriptor()
	// hierarchy.DefaultCreatedAt holds the default value on creation for the created_at field.
	hierarchy.DefaultCreatedAt = hierarchyDescCreatedAt.Default.(func() time.Time)
	// hierarchyDescUpdatedAt is the schema descriptor for updated_at field.
	hierarchyDescUpdatedAt := hierarchyFields[6].Descriptor()
	// hierarchy.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	hierarchy.DefaultUpdatedAt = hierarchyDescUpdatedAt.Default.(func() time.Time)
	// hierarchy.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	hierarchy.UpdateDefaultUpdatedAt = hierarchyDescUpdatedAt.UpdateDefault.(func() time.Time)
	runFields := schema.Run{}.Fields()
	_ = runFields
	// runDescCreatedAt is the schema descriptor for created_at field.
	runDescCreatedAt := runFields[8].Descriptor()
	// run.DefaultCreatedAt holds the default value on creation for the created_at field.
	run.DefaultCreatedAt = runDescCreatedAt.Default.(func() time.Time)
}
