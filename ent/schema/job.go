package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job is the durable record of one unit of background work and the single
// source of truth for orchestration state.
//
// Permitted transitions:
//
//	pending → running → {completed, partially_completed, failed}
//	pending → cancelled
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.Enum("type").
			Values("agent_discovery", "judge_scoring", "prompt_tuning", "model_backtesting"),
		field.String("project_id").
			Immutable(),
		field.String("prompt_slug").
			Optional().
			Nillable().
			Comment("Required for per-prompt types, null for project-wide ones"),
		field.Enum("status").
			Values("pending", "running", "completed", "partially_completed", "failed", "cancelled").
			Default("pending"),
		field.String("task_id").
			Optional().
			Nillable().
			Comment("Work-queue dispatch handle, set by the reconciler"),
		field.String("triggered_by_user_id").
			Optional().
			Nillable().
			Comment("null = system-triggered"),
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("parameters, validation_stats, and final output stats/errors"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("jobs").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("type", "project_id", "status"),
		index.Fields("type", "project_id", "prompt_slug", "status"),
		index.Fields("triggered_by_user_id"),
	}
}
