// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/span"
	"github.com/promptlens/promptlens/ent/trace"
)

// Span is the model entity for the Span schema.
type Span struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TraceID holds the value of the "trace_id" field.
	TraceID string `json:"trace_id,omitempty"`
	// Denormalised from trace for per-project queries
	ProjectID string `json:"project_id,omitempty"`
	// ParentSpanID holds the value of the "parent_span_id" field.
	ParentSpanID *string `json:"parent_span_id,omitempty"`
	// Composite prompt id once classified by discovery
	PromptID *string `json:"prompt_id,omitempty"`
	// StartTimeUnixNano holds the value of the "start_time_unix_nano" field.
	StartTimeUnixNano int64 `json:"start_time_unix_nano,omitempty"`
	// EndTimeUnixNano holds the value of the "end_time_unix_nano" field.
	EndTimeUnixNano int64 `json:"end_time_unix_nano,omitempty"`
	// Input holds the value of the "input" field.
	Input string `json:"input,omitempty"`
	// Message-list output form
	Output []map[string]interface{} `json:"output,omitempty"`
	// Template variables extracted by discovery
	InputParams map[string]interface{} `json:"input_params,omitempty"`
	// OutputParams holds the value of the "output_params" field.
	OutputParams map[string]interface{} `json:"output_params,omitempty"`
	// e.g. 'chat', 'prompt_tuning', 'backtest:<model>'
	Operation string `json:"operation,omitempty"`
	// is_agentic, response_type, available_tools, cost, gen_ai.*, sentinels
	MetadataAttributes map[string]interface{} `json:"metadata_attributes,omitempty"`
	// correctness, judge_feedback, agent_feedback
	FeedbackScore map[string]interface{} `json:"feedback_score,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SpanQuery when eager-loading is set.
	Edges        SpanEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SpanEdges holds the relations/edges for other nodes in the graph.
type SpanEdges struct {
	// Trace holds the value of the trace edge.
	Trace *Trace `json:"trace,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TraceOrErr returns the Trace value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SpanEdges) TraceOrErr() (*Trace, error) {
	if e.Trace != nil {
		return e.Trace, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: trace.Label}
	}
	return nil, &NotLoadedError{edge: "trace"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Span) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case span.FieldOutput, span.FieldInputParams, span.FieldOutputParams, span.FieldMetadataAttributes, span.FieldFeedbackScore:
			values[i] = new([]byte)
		case span.FieldStartTimeUnixNano, span.FieldEndTimeUnixNano:
			values[i] = new(sql.NullInt64)
		case span.FieldID, span.FieldTraceID, span.FieldProjectID, span.FieldParentSpanID, span.FieldPromptID, span.FieldInput, span.FieldOperation:
			values[i] = new(sql.NullString)
		case span.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Span fields.
func (_m *Span) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case span.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case span.FieldTraceID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trace_id", values[i])
			} else if value.Valid {
				_m.TraceID = value.String
			}
		case span.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case span.FieldParentSpanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parent_span_id", values[i])
			} else if value.Valid {
				_m.ParentSpanID = new(string)
				*_m.ParentSpanID = value.String
			}
		case span.FieldPromptID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_id", values[i])
			} else if value.Valid {
				_m.PromptID = new(string)
				*_m.PromptID = value.String
			}
		case span.FieldStartTimeUnixNano:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field start_time_unix_nano", values[i])
			} else if value.Valid {
				_m.StartTimeUnixNano = value.Int64
			}
		case span.FieldEndTimeUnixNano:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field end_time_unix_nano", values[i])
			} else if value.Valid {
				_m.EndTimeUnixNano = value.Int64
			}
		case span.FieldInput:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input", values[i])
			} else if value.Valid {
				_m.Input = value.String
			}
		case span.FieldOutput:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Output); err != nil {
					return fmt.Errorf("unmarshal field output: %w", err)
				}
			}
		case span.FieldInputParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field input_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.InputParams); err != nil {
					return fmt.Errorf("unmarshal field input_params: %w", err)
				}
			}
		case span.FieldOutputParams:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field output_params", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.OutputParams); err != nil {
					return fmt.Errorf("unmarshal field output_params: %w", err)
				}
			}
		case span.FieldOperation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operation", values[i])
			} else if value.Valid {
				_m.Operation = value.String
			}
		case span.FieldMetadataAttributes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metadata_attributes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.MetadataAttributes); err != nil {
					return fmt.Errorf("unmarshal field metadata_attributes: %w", err)
				}
			}
		case span.FieldFeedbackScore:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field feedback_score", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FeedbackScore); err != nil {
					return fmt.Errorf("unmarshal field feedback_score: %w", err)
				}
			}
		case span.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Span.
// This includes values selected through modifiers, order, etc.
func (_m *Span) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTrace queries the "trace" edge of the Span entity.
func (_m *Span) QueryTrace() *TraceQuery {
	return NewSpanClient(_m.config).QueryTrace(_m)
}

// Update returns a builder for updating this Span.
// Note that you need to call Span.Unwrap() before calling this method if this Span
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Span) Update() *SpanUpdateOne {
	return NewSpanClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Span entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Span) Unwrap() *Span {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Span is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Span) String() string {
	var builder strings.Builder
	builder.WriteString("Span(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trace_id=")
	builder.WriteString(_m.TraceID)
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.ParentSpanID; v != nil {
		builder.WriteString("parent_span_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PromptID; v != nil {
		builder.WriteString("prompt_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("start_time_unix_nano=")
	builder.WriteString(fmt.Sprintf("%v", _m.StartTimeUnixNano))
	builder.WriteString(", ")
	builder.WriteString("end_time_unix_nano=")
	builder.WriteString(fmt.Sprintf("%v", _m.EndTimeUnixNano))
	builder.WriteString(", ")
	builder.WriteString("input=")
	builder.WriteString(_m.Input)
	builder.WriteString(", ")
	builder.WriteString("output=")
	builder.WriteString(fmt.Sprintf("%v", _m.Output))
	builder.WriteString(", ")
	builder.WriteString("input_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.InputParams))
	builder.WriteString(", ")
	builder.WriteString("output_params=")
	builder.WriteString(fmt.Sprintf("%v", _m.OutputParams))
	builder.WriteString(", ")
	builder.WriteString("operation=")
	builder.WriteString(_m.Operation)
	builder.WriteString(", ")
	builder.WriteString("metadata_attributes=")
	builder.WriteString(fmt.Sprintf("%v", _m.MetadataAttributes))
	builder.WriteString(", ")
	builder.WriteString("feedback_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.FeedbackScore))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Spans is a parsable slice of Span.
type Spans []*Span
