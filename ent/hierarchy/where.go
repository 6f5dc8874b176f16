// Code generated by ent, DO NOT EDIT.

package hierarchy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/hiveflow/hiveflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldContainsFold(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldName, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldDescription, v))
}

// Supervisor applies equality check predicate on the "supervisor" field. It's identical to SupervisorEQ.
func Supervisor(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldSupervisor, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldUpdatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldContainsFold(FieldName, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldContainsFold(FieldDescription, v))
}

// SupervisorEQ applies the EQ predicate on the "supervisor" field.
func SupervisorEQ(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldSupervisor, v))
}

// SupervisorNEQ applies the NEQ predicate on the "supervisor" field.
func SupervisorNEQ(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNEQ(FieldSupervisor, v))
}

// SupervisorIn applies the In predicate on the "supervisor" field.
func SupervisorIn(vs ...string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldIn(FieldSupervisor, vs...))
}

// SupervisorNotIn applies the NotIn predicate on the "supervisor" field.
func SupervisorNotIn(vs ...string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNotIn(FieldSupervisor, vs...))
}

// SupervisorGT applies the GT predicate on the "supervisor" field.
func SupervisorGT(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGT(FieldSupervisor, v))
}

// SupervisorGTE applies the GTE predicate on the "supervisor" field.
func SupervisorGTE(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGTE(FieldSupervisor, v))
}

// SupervisorLT applies the LT predicate on the "supervisor" field.
func SupervisorLT(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLT(FieldSupervisor, v))
}

// SupervisorLTE applies the LTE predicate on the "supervisor" field.
func SupervisorLTE(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLTE(FieldSupervisor, v))
}

// SupervisorContains applies the Contains predicate on the "supervisor" field.
func SupervisorContains(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldContains(FieldSupervisor, v))
}

// SupervisorHasPrefix applies the HasPrefix predicate on the "supervisor" field.
func SupervisorHasPrefix(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldHasPrefix(FieldSupervisor, v))
}

// SupervisorHasSuffix applies the HasSuffix predicate on the "supervisor" field.
func SupervisorHasSuffix(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldHasSuffix(FieldSupervisor, v))
}

// SupervisorEqualFold applies the EqualFold predicate on the "supervisor" field.
func SupervisorEqualFold(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEqualFold(FieldSupervisor, v))
}

// SupervisorContainsFold applies the ContainsFold predicate on the "supervisor" field.
func SupervisorContainsFold(v string) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldContainsFold(FieldSupervisor, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Hierarchy {
	return predicate.Hierarchy(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRuns applies the HasEdge predicate on the "runs" edge.
func HasRuns() predicate.Hierarchy {
	return predicate.Hierarchy(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RunsTable, RunsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRunsWith applies the HasEdge predicate on the "runs" edge with a given conditions (other predicates).
func HasRunsWith(preds ...predicate.Run) predicate.Hierarchy {
	return predicate.Hierarchy(func(s *sql.Selector) {
		step := newRunsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Hierarchy) predicate.Hierarchy {
	return predicate.Hierarchy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Hierarchy) predicate.Hierarchy {
	return predicate.Hierarchy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Hierarchy) predicate.Hierarchy {
	return predicate.Hierarchy(sql.NotPredicates(p))
}
