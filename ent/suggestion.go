// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/promptlens/promptlens/ent/project"
	"github.com/promptlens/promptlens/ent/suggestion"
)

// Suggestion is the model entity for the Suggestion schema.
type Suggestion struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ProjectID holds the value of the "project_id" field.
	ProjectID string `json:"project_id,omitempty"`
	// PromptSlug holds the value of the "prompt_slug" field.
	PromptSlug string `json:"prompt_slug,omitempty"`
	// NewPromptText holds the value of the "new_prompt_text" field.
	NewPromptText *string `json:"new_prompt_text,omitempty"`
	// NewPromptVersion holds the value of the "new_prompt_version" field.
	NewPromptVersion *int `json:"new_prompt_version,omitempty"`
	// Scores summary; recommended_model for model swaps
	Scores map[string]interface{} `json:"scores,omitempty"`
	// Recommender verdict and summary
	Recommendations map[string]interface{} `json:"recommendations,omitempty"`
	// Status holds the value of the "status" field.
	Status suggestion.Status `json:"status,omitempty"`
	// Vote holds the value of the "vote" field.
	Vote int `json:"vote,omitempty"`
	// Feedback holds the value of the "feedback" field.
	Feedback *string `json:"feedback,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SuggestionQuery when eager-loading is set.
	Edges        SuggestionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SuggestionEdges holds the relations/edges for other nodes in the graph.
type SuggestionEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SuggestionEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Suggestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case suggestion.FieldScores, suggestion.FieldRecommendations:
			values[i] = new([]byte)
		case suggestion.FieldNewPromptVersion, suggestion.FieldVote:
			values[i] = new(sql.NullInt64)
		case suggestion.FieldID, suggestion.FieldProjectID, suggestion.FieldPromptSlug, suggestion.FieldNewPromptText, suggestion.FieldStatus, suggestion.FieldFeedback:
			values[i] = new(sql.NullString)
		case suggestion.FieldCreatedAt, suggestion.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Suggestion fields.
func (_m *Suggestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case suggestion.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case suggestion.FieldProjectID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value.Valid {
				_m.ProjectID = value.String
			}
		case suggestion.FieldPromptSlug:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field prompt_slug", values[i])
			} else if value.Valid {
				_m.PromptSlug = value.String
			}
		case suggestion.FieldNewPromptText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field new_prompt_text", values[i])
			} else if value.Valid {
				_m.NewPromptText = new(string)
				*_m.NewPromptText = value.String
			}
		case suggestion.FieldNewPromptVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field new_prompt_version", values[i])
			} else if value.Valid {
				_m.NewPromptVersion = new(int)
				*_m.NewPromptVersion = int(value.Int64)
			}
		case suggestion.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case suggestion.FieldRecommendations:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recommendations", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Recommendations); err != nil {
					return fmt.Errorf("unmarshal field recommendations: %w", err)
				}
			}
		case suggestion.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = suggestion.Status(value.String)
			}
		case suggestion.FieldVote:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field vote", values[i])
			} else if value.Valid {
				_m.Vote = int(value.Int64)
			}
		case suggestion.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = new(string)
				*_m.Feedback = value.String
			}
		case suggestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case suggestion.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Suggestion.
// This includes values selected through modifiers, order, etc.
func (_m *Suggestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the Suggestion entity.
func (_m *Suggestion) QueryProject() *ProjectQuery {
	return NewSuggestionClient(_m.config).QueryProject(_m)
}

// Update returns a builder for updating this Suggestion.
// Note that you need to call Suggestion.Unwrap() before calling this method if this Suggestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Suggestion) Update() *SuggestionUpdateOne {
	return NewSuggestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Suggestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Suggestion) Unwrap() *Suggestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Suggestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Suggestion) String() string {
	var builder strings.Builder
	builder.WriteString("Suggestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("project_id=")
	builder.WriteString(_m.ProjectID)
	builder.WriteString(", ")
	builder.WriteString("prompt_slug=")
	builder.WriteString(_m.PromptSlug)
	builder.WriteString(", ")
	if v := _m.NewPromptText; v != nil {
		builder.WriteString("new_prompt_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NewPromptVersion; v != nil {
		builder.WriteString("new_prompt_version=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("recommendations=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recommendations))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("vote=")
	builder.WriteString(fmt.Sprintf("%v", _m.Vote))
	builder.WriteString(", ")
	if v := _m.Feedback; v != nil {
		builder.WriteString("feedback=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Suggestions is a parsable slice of Suggestion.
type Suggestions []*Suggestion
