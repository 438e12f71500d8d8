// Code generated by ent, DO NOT EDIT.

package suggestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/promptlens/promptlens/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldID, id))
}

// ProjectID applies equality check predicate on the "project_id" field. It's identical to ProjectIDEQ.
func ProjectID(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldProjectID, v))
}

// PromptSlug applies equality check predicate on the "prompt_slug" field. It's identical to PromptSlugEQ.
func PromptSlug(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldPromptSlug, v))
}

// NewPromptText applies equality check predicate on the "new_prompt_text" field. It's identical to NewPromptTextEQ.
func NewPromptText(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldNewPromptText, v))
}

// NewPromptVersion applies equality check predicate on the "new_prompt_version" field. It's identical to NewPromptVersionEQ.
func NewPromptVersion(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldNewPromptVersion, v))
}

// Vote applies equality check predicate on the "vote" field. It's identical to VoteEQ.
func Vote(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldVote, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldFeedback, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// ProjectIDEQ applies the EQ predicate on the "project_id" field.
func ProjectIDEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldProjectID, v))
}

// ProjectIDNEQ applies the NEQ predicate on the "project_id" field.
func ProjectIDNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldProjectID, v))
}

// ProjectIDIn applies the In predicate on the "project_id" field.
func ProjectIDIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldProjectID, vs...))
}

// ProjectIDNotIn applies the NotIn predicate on the "project_id" field.
func ProjectIDNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldProjectID, vs...))
}

// ProjectIDGT applies the GT predicate on the "project_id" field.
func ProjectIDGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldProjectID, v))
}

// ProjectIDGTE applies the GTE predicate on the "project_id" field.
func ProjectIDGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldProjectID, v))
}

// ProjectIDLT applies the LT predicate on the "project_id" field.
func ProjectIDLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldProjectID, v))
}

// ProjectIDLTE applies the LTE predicate on the "project_id" field.
func ProjectIDLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldProjectID, v))
}

// ProjectIDContains applies the Contains predicate on the "project_id" field.
func ProjectIDContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldProjectID, v))
}

// ProjectIDHasPrefix applies the HasPrefix predicate on the "project_id" field.
func ProjectIDHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldProjectID, v))
}

// ProjectIDHasSuffix applies the HasSuffix predicate on the "project_id" field.
func ProjectIDHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldProjectID, v))
}

// ProjectIDEqualFold applies the EqualFold predicate on the "project_id" field.
func ProjectIDEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldProjectID, v))
}

// ProjectIDContainsFold applies the ContainsFold predicate on the "project_id" field.
func ProjectIDContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldProjectID, v))
}

// PromptSlugEQ applies the EQ predicate on the "prompt_slug" field.
func PromptSlugEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldPromptSlug, v))
}

// PromptSlugNEQ applies the NEQ predicate on the "prompt_slug" field.
func PromptSlugNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldPromptSlug, v))
}

// PromptSlugIn applies the In predicate on the "prompt_slug" field.
func PromptSlugIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldPromptSlug, vs...))
}

// PromptSlugNotIn applies the NotIn predicate on the "prompt_slug" field.
func PromptSlugNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldPromptSlug, vs...))
}

// PromptSlugGT applies the GT predicate on the "prompt_slug" field.
func PromptSlugGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldPromptSlug, v))
}

// PromptSlugGTE applies the GTE predicate on the "prompt_slug" field.
func PromptSlugGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldPromptSlug, v))
}

// PromptSlugLT applies the LT predicate on the "prompt_slug" field.
func PromptSlugLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldPromptSlug, v))
}

// PromptSlugLTE applies the LTE predicate on the "prompt_slug" field.
func PromptSlugLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldPromptSlug, v))
}

// PromptSlugContains applies the Contains predicate on the "prompt_slug" field.
func PromptSlugContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldPromptSlug, v))
}

// PromptSlugHasPrefix applies the HasPrefix predicate on the "prompt_slug" field.
func PromptSlugHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldPromptSlug, v))
}

// PromptSlugHasSuffix applies the HasSuffix predicate on the "prompt_slug" field.
func PromptSlugHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldPromptSlug, v))
}

// PromptSlugEqualFold applies the EqualFold predicate on the "prompt_slug" field.
func PromptSlugEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldPromptSlug, v))
}

// PromptSlugContainsFold applies the ContainsFold predicate on the "prompt_slug" field.
func PromptSlugContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldPromptSlug, v))
}

// NewPromptTextEQ applies the EQ predicate on the "new_prompt_text" field.
func NewPromptTextEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldNewPromptText, v))
}

// NewPromptTextNEQ applies the NEQ predicate on the "new_prompt_text" field.
func NewPromptTextNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldNewPromptText, v))
}

// NewPromptTextIn applies the In predicate on the "new_prompt_text" field.
func NewPromptTextIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldNewPromptText, vs...))
}

// NewPromptTextNotIn applies the NotIn predicate on the "new_prompt_text" field.
func NewPromptTextNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldNewPromptText, vs...))
}

// NewPromptTextGT applies the GT predicate on the "new_prompt_text" field.
func NewPromptTextGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldNewPromptText, v))
}

// NewPromptTextGTE applies the GTE predicate on the "new_prompt_text" field.
func NewPromptTextGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldNewPromptText, v))
}

// NewPromptTextLT applies the LT predicate on the "new_prompt_text" field.
func NewPromptTextLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldNewPromptText, v))
}

// NewPromptTextLTE applies the LTE predicate on the "new_prompt_text" field.
func NewPromptTextLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldNewPromptText, v))
}

// NewPromptTextContains applies the Contains predicate on the "new_prompt_text" field.
func NewPromptTextContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldNewPromptText, v))
}

// NewPromptTextHasPrefix applies the HasPrefix predicate on the "new_prompt_text" field.
func NewPromptTextHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldNewPromptText, v))
}

// NewPromptTextHasSuffix applies the HasSuffix predicate on the "new_prompt_text" field.
func NewPromptTextHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldNewPromptText, v))
}

// NewPromptTextIsNil applies the IsNil predicate on the "new_prompt_text" field.
func NewPromptTextIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldNewPromptText))
}

// NewPromptTextNotNil applies the NotNil predicate on the "new_prompt_text" field.
func NewPromptTextNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldNewPromptText))
}

// NewPromptTextEqualFold applies the EqualFold predicate on the "new_prompt_text" field.
func NewPromptTextEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldNewPromptText, v))
}

// NewPromptTextContainsFold applies the ContainsFold predicate on the "new_prompt_text" field.
func NewPromptTextContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldNewPromptText, v))
}

// NewPromptVersionEQ applies the EQ predicate on the "new_prompt_version" field.
func NewPromptVersionEQ(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldNewPromptVersion, v))
}

// NewPromptVersionNEQ applies the NEQ predicate on the "new_prompt_version" field.
func NewPromptVersionNEQ(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldNewPromptVersion, v))
}

// NewPromptVersionIn applies the In predicate on the "new_prompt_version" field.
func NewPromptVersionIn(vs ...int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldNewPromptVersion, vs...))
}

// NewPromptVersionNotIn applies the NotIn predicate on the "new_prompt_version" field.
func NewPromptVersionNotIn(vs ...int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldNewPromptVersion, vs...))
}

// NewPromptVersionGT applies the GT predicate on the "new_prompt_version" field.
func NewPromptVersionGT(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldNewPromptVersion, v))
}

// NewPromptVersionGTE applies the GTE predicate on the "new_prompt_version" field.
func NewPromptVersionGTE(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldNewPromptVersion, v))
}

// NewPromptVersionLT applies the LT predicate on the "new_prompt_version" field.
func NewPromptVersionLT(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldNewPromptVersion, v))
}

// NewPromptVersionLTE applies the LTE predicate on the "new_prompt_version" field.
func NewPromptVersionLTE(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldNewPromptVersion, v))
}

// NewPromptVersionIsNil applies the IsNil predicate on the "new_prompt_version" field.
func NewPromptVersionIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldNewPromptVersion))
}

// NewPromptVersionNotNil applies the NotNil predicate on the "new_prompt_version" field.
func NewPromptVersionNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldNewPromptVersion))
}

// ScoresIsNil applies the IsNil predicate on the "scores" field.
func ScoresIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldScores))
}

// ScoresNotNil applies the NotNil predicate on the "scores" field.
func ScoresNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldScores))
}

// RecommendationsIsNil applies the IsNil predicate on the "recommendations" field.
func RecommendationsIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldRecommendations))
}

// RecommendationsNotNil applies the NotNil predicate on the "recommendations" field.
func RecommendationsNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldRecommendations))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldStatus, vs...))
}

// VoteEQ applies the EQ predicate on the "vote" field.
func VoteEQ(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldVote, v))
}

// VoteNEQ applies the NEQ predicate on the "vote" field.
func VoteNEQ(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldVote, v))
}

// VoteIn applies the In predicate on the "vote" field.
func VoteIn(vs ...int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldVote, vs...))
}

// VoteNotIn applies the NotIn predicate on the "vote" field.
func VoteNotIn(vs ...int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldVote, vs...))
}

// VoteGT applies the GT predicate on the "vote" field.
func VoteGT(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldVote, v))
}

// VoteGTE applies the GTE predicate on the "vote" field.
func VoteGTE(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldVote, v))
}

// VoteLT applies the LT predicate on the "vote" field.
func VoteLT(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldVote, v))
}

// VoteLTE applies the LTE predicate on the "vote" field.
func VoteLTE(v int) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldVote, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackIsNil applies the IsNil predicate on the "feedback" field.
func FeedbackIsNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIsNull(FieldFeedback))
}

// FeedbackNotNil applies the NotNil predicate on the "feedback" field.
func FeedbackNotNil() predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotNull(FieldFeedback))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldContainsFold(FieldFeedback, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Suggestion {
	return predicate.Suggestion(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.Suggestion {
	return predicate.Suggestion(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Suggestion) predicate.Suggestion {
	return predicate.Suggestion(sql.NotPredicates(p))
}
