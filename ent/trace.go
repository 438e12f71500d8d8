// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/trace"
)

// Trace is the model entity for the Trace schema.
type Trace struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID *string `json:"conversation_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TraceQuery when eager-loading is set.
	Edges        TraceEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TraceEdges holds the relations/edges for other nodes in the graph.
type TraceEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Spans holds the value of the spans edge.
	Spans []*Span `json:"spans,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TraceEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// SpansOrErr returns the Spans value or an error if the edge
// was not loaded in eager-loading.
func (e TraceEdges) SpansOrErr() ([]*Span, error) {
	if e.loadedTypes[1] {
		return e.Spans, nil
	}
	return nil, &NotLoadedError{edge: "spans"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Trace) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trace.FieldID, trace.FieldProjectID, trace.FieldConversationID:
			values[i] = new(sql.NullString)
		case trace.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Trace fields.
func (_m *Trace) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trace.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case trace.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case trace.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = new(string)
				*_m.ConversationID = value.String
			}
		case trace.FieldCreatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Trace.
// This includes values selected through modifiers, order, etc.
func (_m *Trace) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Trace entity.
func (_m *Trace) QueryProject() *ProjectQuery {
	return NewTraceClient(_m.config).QueryProject(_m)
}

// QuerySpans queries the "spans" edge of the Trace entity.
func (_m *Trace) QuerySpans() *SpanQuery {
	return NewTraceClient(_m.config).QuerySpans(_m)
}

// Update returns a builder for updating this Trace.
// Note that you need to call Trace.Unwrap() before calling this method if this Trace
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Trace) Update() *TraceUpdateOne {
	return NewTraceClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Trace entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Trace) Unwrap() *Trace {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Trace is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Trace) String() string {
	var builder strings.Builder
	builder.WriteString("Trace(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	if v := _m.ConversationID; v != nil {
		builder.WriteString("conversation_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Traces is a parsable slice of Trace.
type Traces []*Trace
