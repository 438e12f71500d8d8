// Code generated by ent, DO NOT EDIT.

package job

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProjectID, v))
}

// PromptSlug applies equality check predicate on the "prompt_slug" field. It's identical to PromptSlugEQ.
func PromptSlug(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPromptSlug, v))
}

// TaskID applies equality check predicate on the "task_id" field. It's identical to TaskIDEQ.
func TaskID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTaskID, v))
}

// TriggeredByUserID applies equality check predicate on the "triggered_by_user_id" field. It's identical to TriggeredByUserIDEQ.
func TriggeredByUserID(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTriggeredByUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldType, vs...))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldProjectID, v))
}

// PromptSlugEQ applies the EQ predicate on the "prompt_slug" field.
func PromptSlugEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldPromptSlug, v))
}

// PromptSlugNEQ applies the NEQ predicate on the "prompt_slug" field.
func PromptSlugNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldPromptSlug, v))
}

// PromptSlugIn applies the In predicate on the "prompt_slug" field.
func PromptSlugIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldPromptSlug, vs...))
}

// PromptSlugNotIn applies the NotIn predicate on the "prompt_slug" field.
func PromptSlugNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldPromptSlug, vs...))
}

// PromptSlugGT applies the GT predicate on the "prompt_slug" field.
func PromptSlugGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldPromptSlug, v))
}

// PromptSlugGTE applies the GTE predicate on the "prompt_slug" field.
func PromptSlugGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldPromptSlug, v))
}

// PromptSlugLT applies the LT predicate on the "prompt_slug" field.
func PromptSlugLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldPromptSlug, v))
}

// PromptSlugLTE applies the LTE predicate on the "prompt_slug" field.
func PromptSlugLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldPromptSlug, v))
}

// PromptSlugContains applies the Contains predicate on the "prompt_slug" field.
func PromptSlugContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldPromptSlug, v))
}

// PromptSlugHasPrefix applies the HasPrefix predicate on the "prompt_slug" field.
func PromptSlugHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldPromptSlug, v))
}

// PromptSlugHasSuffix applies the HasSuffix predicate on the "prompt_slug" field.
func PromptSlugHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldPromptSlug, v))
}

// PromptSlugIsNil applies the IsNil predicate on the "prompt_slug" field.
func PromptSlugIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldPromptSlug))
}

// PromptSlugNotNil applies the NotNil predicate on the "prompt_slug" field.
func PromptSlugNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldPromptSlug))
}

// PromptSlugEqualFold applies the EqualFold predicate on the "prompt_slug" field.
func PromptSlugEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldPromptSlug, v))
}

// PromptSlugContainsFold applies the ContainsFold predicate on the "prompt_slug" field.
func PromptSlugContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldPromptSlug, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldStatus, vs...))
}

// TaskIDEQ applies the EQ predicate on the "task_id" field.
func TaskIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTaskID, v))
}

// TaskIDNEQ applies the NEQ predicate on the "task_id" field.
func TaskIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTaskID, v))
}

// TaskIDIn applies the In predicate on the "task_id" field.
func TaskIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTaskID, vs...))
}

// TaskIDNotIn applies the NotIn predicate on the "task_id" field.
func TaskIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTaskID, vs...))
}

// TaskIDGT applies the GT predicate on the "task_id" field.
func TaskIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTaskID, v))
}

// TaskIDGTE applies the GTE predicate on the "task_id" field.
func TaskIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTaskID, v))
}

// TaskIDLT applies the LT predicate on the "task_id" field.
func TaskIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTaskID, v))
}

// TaskIDLTE applies the LTE predicate on the "task_id" field.
func TaskIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTaskID, v))
}

// TaskIDContains applies the Contains predicate on the "task_id" field.
func TaskIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTaskID, v))
}

// TaskIDHasPrefix applies the HasPrefix predicate on the "task_id" field.
func TaskIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTaskID, v))
}

// TaskIDHasSuffix applies the HasSuffix predicate on the "task_id" field.
func TaskIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTaskID, v))
}

// TaskIDIsNil applies the IsNil predicate on the "task_id" field.
func TaskIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTaskID))
}

// TaskIDNotNil applies the NotNil predicate on the "task_id" field.
func TaskIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTaskID))
}

// TaskIDEqualFold applies the EqualFold predicate on the "task_id" field.
func TaskIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTaskID, v))
}

// TaskIDContainsFold applies the ContainsFold predicate on the "task_id" field.
func TaskIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTaskID, v))
}

// TriggeredByUserIDEQ applies the EQ predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDNEQ applies the NEQ predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDNEQ(v string) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDIn applies the In predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldTriggeredByUserID, vs...))
}

// TriggeredByUserIDNotIn applies the NotIn predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDNotIn(vs ...string) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldTriggeredByUserID, vs...))
}

// TriggeredByUserIDGT applies the GT predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDGT(v string) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDGTE applies the GTE predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDGTE(v string) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDLT applies the LT predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDLT(v string) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDLTE applies the LTE predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDLTE(v string) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDContains applies the Contains predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDContains(v string) predicate.Job {
	return predicate.Job(sql.FieldContains(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDHasPrefix applies the HasPrefix predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDHasPrefix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasPrefix(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDHasSuffix applies the HasSuffix predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDHasSuffix(v string) predicate.Job {
	return predicate.Job(sql.FieldHasSuffix(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDIsNil applies the IsNil predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldTriggeredByUserID))
}

// TriggeredByUserIDNotNil applies the NotNil predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldTriggeredByUserID))
}

// TriggeredByUserIDEqualFold applies the EqualFold predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDEqualFold(v string) predicate.Job {
	return predicate.Job(sql.FieldEqualFold(FieldTriggeredByUserID, v))
}

// TriggeredByUserIDContainsFold applies the ContainsFold predicate on the "triggered_by_user_id" field.
func TriggeredByUserIDContainsFold(v string) predicate.Job {
	return predicate.Job(sql.FieldContainsFold(FieldTriggeredByUserID, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.Job {
	return predicate.Job(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.Job {
	return predicate.Job(sql.FieldNotNull(FieldResult))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Job {
	return predicate.Job(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Job {
	return predicate.Job(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Job {
	return predicate.Job(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Job) predicate.Job {
	return predicate.Job(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Job) predicate.Job {
	return predicate.Job(sql.NotPredicates(p))
}
