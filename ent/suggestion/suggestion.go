// Code generated by ent, DO NOT EDIT.

package suggestion

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the suggestion type in the database.
	Label = "suggestion"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "suggestion_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldPromptSlug holds the string denoting the prompt_slug field in the database.
	FieldPromptSlug = "prompt_slug"
	// FieldNewPromptText holds the string denoting the new_prompt_text field in the database.
	FieldNewPromptText = "new_prompt_text"
	// FieldNewPromptVersion holds the string denoting the new_prompt_version field in the database.
	FieldNewPromptVersion = "new_prompt_version"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldRecommendations holds the string denoting the recommendations field in the database.
	FieldRecommendations = "recommendations"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldVote holds the string denoting the vote field in the database.
	FieldVote = "vote"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// ProjectFieldID holds the string denoting the ID field of the Project.
	ProjectFieldID = "project_id"
	// Table holds the table name of the suggestion in the database.
	Table = "suggestions"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "suggestions"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
)

// Columns holds all SQL columns for suggestion fields.
var Columns = []string{
	FieldID,
	FieldProjectID,
	FieldPromptSlug,
	FieldNewPromptText,
	FieldNewPromptVersion,
	FieldScores,
	FieldRecommendations,
	FieldStatus,
	FieldVote,
	FieldFeedback,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultVote holds the default value on creation for the "vote" field.
	DefaultVote int
	// VoteValidator is a validator for the "vote" field. It is called by the builders before save.
	VoteValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDismissed Status = "dismissed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusAccepted, StatusDismissed:
		return nil
	default:
		return fmt.Errorf("suggestion: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Suggestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByPromptSlug orders the results by the prompt_slug field.
func ByPromptSlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptSlug, opts...).ToFunc()
}

// ByNewPromptText orders the results by the new_prompt_text field.
func ByNewPromptText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewPromptText, opts...).ToFunc()
}

// ByNewPromptVersion orders the results by the new_prompt_version field.
func ByNewPromptVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNewPromptVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByVote orders the results by the vote field.
func ByVote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVote, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, ProjectFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
