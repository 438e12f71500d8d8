package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Span is one observed LLM call, ingested from OpenTelemetry.
//
// prompt_id is the composite string "{project}_{version}_{slug}" and is set
// by agent discovery once the span has been matched to a template. Synthetic
// spans created by tuning/backtesting carry sentinel metadata keys
// (prompt_improvement_test, backtest) and are excluded from all counts.
type Span struct {
	ent.Schema
}

// Fields of the Span.
func (Span) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("span_id").
			MaxLen(36).
			Unique().
			Immutable(),
		field.String("trace_id").
			Immutable(),
		field.String("project_id").
			Immutable().
			Comment("Denormalised from trace for per-project queries"),
		field.String("parent_span_id").
			Optional().
			Nillable(),
		field.String("prompt_id").
			Optional().
			Nillable().
			Comment("Composite prompt id once classified by discovery"),
		field.Int64("start_time_unix_nano"),
		field.Int64("end_time_unix_nano"),
		field.Text("input").
			Optional(),
		field.JSON("output", []map[string]interface{}{}).
			Optional().
			Comment("Message-list output form"),
		field.JSON("input_params", map[string]interface{}{}).
			Optional().
			Comment("Template variables extracted by discovery"),
		field.JSON("output_params", map[string]interface{}{}).
			Optional(),
		field.String("operation").
			Optional().
			Comment("e.g. 'chat', 'prompt_tuning', 'backtest:<model>'"),
		field.JSON("metadata_attributes", map[string]interface{}{}).
			Optional().
			Comment("is_agentic, response_type, available_tools, cost, gen_ai.*, sentinels"),
		field.JSON("feedback_score", map[string]interface{}{}).
			Optional().
			Comment("correctness, judge_feedback, agent_feedback"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Span.
func (Span) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("trace", Trace.Type).
			Ref("spans").
			Field("trace_id").
			Unique().
			Required().
			Immutable().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Span.
func (Span) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id"),
		index.Fields("prompt_id"),
		index.Fields("project_id", "prompt_id"),
		index.Fields("project_id", "created_at"),
		index.Fields("operation"),
	}
}
