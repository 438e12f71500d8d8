package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BacktestRun groups the synthetic spans of one model-backtesting invocation.
type BacktestRun struct {
	ent.Schema
}

// Fields of the BacktestRun.
func (BacktestRun) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("backtest_run_id").
			Unique().
			Immutable(),
		field.String("prompt_id").
			Immutable().
			Comment("Composite prompt id of the prompt under test"),
		field.JSON("models", []string{}),
		field.Enum("status").
			Values("running", "completed", "failed").
			Default("running"),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the BacktestRun.
func (BacktestRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("prompt_id", "created_at"),
	}
}
