package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Suggestion is a recommendation surfaced to the user: either a prompt-version
// swap (new_prompt_text/new_prompt_version set) or a model swap
// (scores.recommended_model set).
type Suggestion struct {
	ent.Schema
}

// Fields of the Suggestion.
func (Suggestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("suggestion_id").
			Unique().
			Immutable(),
		field.String("project_id").
			Immutable(),
		field.String("prompt_slug").
			Immutable(),
		field.Text("new_prompt_text").
			Optional().
			Nillable(),
		field.Int("new_prompt_version").
			Optional().
			Nillable(),
		field.JSON("scores", map[string]interface{}{}).
			Optional().
			Comment("Scores summary; recommended_model for model swaps"),
		field.JSON("recommendations", map[string]interface{}{}).
			Optional().
			Comment("Recommender verdict and summary"),
		field.Enum("status").
			Values("pending", "accepted", "dismissed").
			Default("pending"),
		field.Int("vote").
			Default(0).
			Min(-1).
			Max(1),
		field.Text("feedback").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Suggestion.
func (Suggestion) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("suggestions").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Suggestion.
func (Suggestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "prompt_slug", "status"),
	}
}
