// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BacktestRunsColumns holds the columns for the "backtest_runs" table.
	BacktestRunsColumns = []*schema.Column{
		{Name: "backtest_run_id", Type: field.TypeString, Unique: true},
		{Name: "prompt_id", Type: field.TypeString},
		{Name: "models", Type: field.TypeJSON},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BacktestRunsTable holds the schema information for the "backtest_runs" table.
	BacktestRunsTable = &schema.Table{
		Name:       "backtest_runs",
		Columns:    BacktestRunsColumns,
		PrimaryKey: []*schema.Column{BacktestRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "backtestrun_prompt_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BacktestRunsColumns[1], BacktestRunsColumns[5]},
			},
		},
	}
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeEnum, Enums: []string{"agent_discovery", "judge_scoring", "prompt_tuning", "model_backtesting"}},
		{Name: "prompt_slug", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "running", "completed", "partially_completed", "failed", "cancelled"}, Default: "pending"},
		{Name: "task_id", Type: field.TypeString, Nullable: true},
		{Name: "triggered_by_user_id", Type: field.TypeString, Nullable: true},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_projects_jobs",
				Columns:    []*schema.Column{JobsColumns[9]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[3], JobsColumns[7]},
			},
			{
				Name:    "job_type_project_id_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[9], JobsColumns[3]},
			},
			{
				Name:    "job_type_project_id_prompt_slug_status",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[9], JobsColumns[2], JobsColumns[3]},
			},
			{
				Name:    "job_triggered_by_user_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[5]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "project_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// PromptsColumns holds the columns for the "prompts" table.
	PromptsColumns = []*schema.Column{
		{Name: "prompt_id", Type: field.TypeString, Unique: true},
		{Name: "project_id", Type: field.TypeString},
		{Name: "slug", Type: field.TypeString},
		{Name: "version", Type: field.TypeInt},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "content_hash", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "evaluation_criteria", Type: field.TypeJSON, Nullable: true},
		{Name: "agent_description", Type: field.TypeJSON, Nullable: true},
		{Name: "improvement_metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_prompts", Type: field.TypeString, Nullable: true},
	}
	// PromptsTable holds the schema information for the "prompts" table.
	PromptsTable = &schema.Table{
		Name:       "prompts",
		Columns:    PromptsColumns,
		PrimaryKey: []*schema.Column{PromptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "prompts_projects_prompts",
				Columns:    []*schema.Column{PromptsColumns[14]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "prompt_project_id_slug_version",
				Unique:  true,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[2], PromptsColumns[3]},
			},
			{
				Name:    "prompt_project_id_content_hash",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[5]},
			},
			{
				Name:    "prompt_project_id_is_active",
				Unique:  false,
				Columns: []*schema.Column{PromptsColumns[1], PromptsColumns[11]},
			},
		},
	}
	// SpansColumns holds the columns for the "spans" table.
	SpansColumns = []*schema.Column{
		{Name: "span_id", Type: field.TypeString, Unique: true, Size: 36},
		{Name: "project_id", Type: field.TypeString},
		{Name: "parent_span_id", Type: field.TypeString, Nullable: true},
		{Name: "prompt_id", Type: field.TypeString, Nullable: true},
		{Name: "start_time_unix_nano", Type: field.TypeInt64},
		{Name: "end_time_unix_nano", Type: field.TypeInt64},
		{Name: "input", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "output", Type: field.TypeJSON, Nullable: true},
		{Name: "input_params", Type: field.TypeJSON, Nullable: true},
		{Name: "output_params", Type: field.TypeJSON, Nullable: true},
		{Name: "operation", Type: field.TypeString, Nullable: true},
		{Name: "metadata_attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "feedback_score", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "trace_id", Type: field.TypeString},
	}
	// SpansTable holds the schema information for the "spans" table.
	SpansTable = &schema.Table{
		Name:       "spans",
		Columns:    SpansColumns,
		PrimaryKey: []*schema.Column{SpansColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "spans_traces_spans",
				Columns:    []*schema.Column{SpansColumns[14]},
				RefColumns: []*schema.Column{TracesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "span_project_id",
				Unique:  false,
				Columns: []*schema.Column{SpansColumns[1]},
			},
			{
				Name:    "span_prompt_id",
				Unique:  false,
				Columns: []*schema.Column{SpansColumns[3]},
			},
			{
				Name:    "span_project_id_prompt_id",
				Unique:  false,
				Columns: []*schema.Column{SpansColumns[1], SpansColumns[3]},
			},
			{
				Name:    "span_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SpansColumns[1], SpansColumns[13]},
			},
			{
				Name:    "span_operation",
				Unique:  false,
				Columns: []*schema.Column{SpansColumns[10]},
			},
		},
	}
	// SuggestionsColumns holds the columns for the "suggestions" table.
	SuggestionsColumns = []*schema.Column{
		{Name: "suggestion_id", Type: field.TypeString, Unique: true},
		{Name: "prompt_slug", Type: field.TypeString},
		{Name: "new_prompt_text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "new_prompt_version", Type: field.TypeInt, Nullable: true},
		{Name: "scores", Type: field.TypeJSON, Nullable: true},
		{Name: "recommendations", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "accepted", "dismissed"}, Default: "pending"},
		{Name: "vote", Type: field.TypeInt, Default: 0},
		{Name: "feedback", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// SuggestionsTable holds the schema information for the "suggestions" table.
	SuggestionsTable = &schema.Table{
		Name:       "suggestions",
		Columns:    SuggestionsColumns,
		PrimaryKey: []*schema.Column{SuggestionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "suggestions_projects_suggestions",
				Columns:    []*schema.Column{SuggestionsColumns[11]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "suggestion_project_id_prompt_slug_status",
				Unique:  false,
				Columns: []*schema.Column{SuggestionsColumns[11], SuggestionsColumns[1], SuggestionsColumns[6]},
			},
		},
	}
	// TracesColumns holds the columns for the "traces" table.
	TracesColumns = []*schema.Column{
		{Name: "trace_id", Type: field.TypeString, Unique: true},
		{Name: "conversation_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeString},
	}
	// TracesTable holds the schema information for the "traces" table.
	TracesTable = &schema.Table{
		Name:       "traces",
		Columns:    TracesColumns,
		PrimaryKey: []*schema.Column{TracesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "traces_projects_traces",
				Columns:    []*schema.Column{TracesColumns[3]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "trace_project_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TracesColumns[3], TracesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BacktestRunsTable,
		JobsTable,
		ProjectsTable,
		PromptsTable,
		SpansTable,
		SuggestionsTable,
		TracesTable,
	}
)

func init() {
	JobsTable.ForeignKeys[0].RefTable = ProjectsTable
	PromptsTable.ForeignKeys[0].RefTable = ProjectsTable
	SpansTable.ForeignKeys[0].RefTable = TracesTable
	SuggestionsTable.ForeignKeys[0].RefTable = ProjectsTable
	TracesTable.ForeignKeys[0].RefTable = ProjectsTable
}
