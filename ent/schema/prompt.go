package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Prompt is a discovered or improved template at a specific version.
// Identity is (project_id, slug, version); spans reference it through the
// derived composite string "{project}_{version}_{slug}".
type Prompt struct {
	ent.Schema
}

// Fields of the Prompt.
func (Prompt) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("prompt_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("slug").
			Immutable(),
		field.Int("version").
			Immutable().
			Min(1),
		field.Text("content"),
		field.String("content_hash").
			Comment("Deterministic SHA-256 over content"),
		field.String("display_name").
			Optional().
			Nillable(),
		field.JSON("tags", []string{}).
			Optional(),
		field.JSON("evaluation_criteria", map[string]interface{}{}).
			Optional().
			Comment(`{"correctness": [rule, ...]}`),
		field.JSON("agent_description", map[string]interface{}{}).
			Optional().
			Comment("description, last/next_review_span_count, feedback_history, initial_review_completed"),
		field.JSON("improvement_metadata", map[string]interface{}{}).
			Optional().
			Comment("last_improvement_span_count, improvement_history, criteria_invalidated"),
		field.Bool("is_active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Prompt.
func (Prompt) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "slug", "version").
			Unique(),
		index.Fields("project_id", "content_hash"),
		index.Fields("project_id", "is_active"),
	}
}
