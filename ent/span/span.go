// Code generated by ent, DO NOT EDIT.

package span

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the span type in the database.
	Label = "span"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "span_id"
	// FieldTraceID holds the string denoting the trace_id field in the database.
	FieldTraceID = "trace_id"
	// FieldProjectID holds the string denoting the project_id field in the database.
	FieldProjectID = "project_id"
	// FieldParentSpanID holds the string denoting the parent_span_id field in the database.
	FieldParentSpanID = "parent_span_id"
	// FieldPromptID holds the string denoting the prompt_id field in the database.
	FieldPromptID = "prompt_id"
	// FieldStartTimeUnixNano holds the string denoting the start_time_unix_nano field in the database.
	FieldStartTimeUnixNano = "start_time_unix_nano"
	// FieldEndTimeUnixNano holds the string denoting the end_time_unix_nano field in the database.
	FieldEndTimeUnixNano = "end_time_unix_nano"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldOutput holds the string denoting the output field in the database.
	FieldOutput = "output"
	// FieldInputParams holds the string denoting the input_params field in the database.
	FieldInputParams = "input_params"
	// FieldOutputParams holds the string denoting the output_params field in the database.
	FieldOutputParams = "output_params"
	// FieldOperation holds the string denoting the operation field in the database.
	FieldOperation = "operation"
	// FieldMetadataAttributes holds the string denoting the metadata_attributes field in the database.
	FieldMetadataAttributes = "metadata_attributes"
	// FieldFeedbackScore holds the string denoting the feedback_score field in the database.
	FieldFeedbackScore = "feedback_score"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeTrace holds the string denoting the trace edge name in mutations.
	EdgeTrace = "trace"
	// TraceFieldID holds the string denoting the ID field of the Trace.
	TraceFieldID = "trace_id"
	// Table holds the table name of the span in the database.
	Table = "spans"
	// TraceTable is the table that holds the trace relation/edge.
	TraceTable = "spans"
	// TraceInverseTable is the table name for the Trace entity.
	// It exists in this package in order to avoid circular dependency with the "trace" package.
	TraceInverseTable = "traces"
	// TraceColumn is the table column denoting the trace relation/edge.
	TraceColumn = "trace_id"
)

// Columns holds all SQL columns for span fields.
var Columns = []string{
	FieldID,
	FieldTraceID,
	FieldProjectID,
	FieldParentSpanID,
	FieldPromptID,
	FieldStartTimeUnixNano,
	FieldEndTimeUnixNano,
	FieldInput,
	FieldOutput,
	FieldInputParams,
	FieldOutputParams,
	FieldOperation,
	FieldMetadataAttributes,
	FieldFeedbackScore,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// IDValidator is a validator for the "id" field. It is called by the builders before save.
	IDValidator func(string) error
)

// OrderOption defines the ordering options for the Span queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTraceID orders the results by the trace_id field.
func ByTraceID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTraceID, opts...).ToFunc()
}

// ByProjectID orders the results by the project_id field.
func ByProjectID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProjectID, opts...).ToFunc()
}

// ByParentSpanID orders the results by the parent_span_id field.
func ByParentSpanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentSpanID, opts...).ToFunc()
}

// ByPromptID orders the results by the prompt_id field.
func ByPromptID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptID, opts...).ToFunc()
}

// ByStartTimeUnixNano orders the results by the start_time_unix_nano field.
func ByStartTimeUnixNano(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTimeUnixNano, opts...).ToFunc()
}

// ByEndTimeUnixNano orders the results by the end_time_unix_nano field.
func ByEndTimeUnixNano(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTimeUnixNano, opts...).ToFunc()
}

// ByInput orders the results by the input field.
func ByInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInput, opts...).ToFunc()
}

// ByOperation orders the results by the operation field.
func ByOperation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperation, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByTraceField orders the results by trace field.
func ByTraceField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTraceStep(), sql.OrderByField(field, opts...))
	}
}
func newTraceStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TraceInverseTable, TraceFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TraceTable, TraceColumn),
	)
}
