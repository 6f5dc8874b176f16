// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Hierarchy is the predicate function for hierarchy builders.
type Hierarchy func(*sql.Selector)

// Run is the predicate function for run builders.
type Run func(*sql.Selector)

// RunEvent is the predicate function for runevent builders.
type RunEvent func(*sql.Selector)
