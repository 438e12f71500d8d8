// Package tasks declares the stable task names and parameter keys shared by
// the scheduler, the reconciler and the worker handlers. External components
// enqueue by these literal strings, so they must never change.
package tasks

import (
	"fmt"

	"github.com/promptlens/promptlens/ent/job"
)

// Periodic sweep tasks, executed on the beat cadences.
const (
	DiscoverAgents             = "agent_discovery.discover_agents"
	EvaluateUnscoredSpans      = "auto_evaluation.evaluate_unscored_spans"
	ImprovePromptTemplates     = "prompt_improvement.improve_prompt_templates"
	CheckBacktestingCandidates = "backtesting.check_backtesting_candidates"
	ReconcilePendingJobs       = "job_reconciler.reconcile_pending_jobs"
	CleanupOldJobs             = "job_cleanup.cleanup_old_jobs"
	CheckReviewTriggers        = "periodic_reviews.check_review_triggers"
)

// Job execution tasks, dispatched by the reconciler with a job id.
const (
	RunAgentDiscovery   = "agent_discovery.run_agent_discovery"
	EvaluatePromptSpans = "auto_evaluation.evaluate_prompt_spans"
	EvaluateSpans       = "evaluations.evaluate_spans"
	ImproveSinglePrompt = "prompt_improvement.improve_single_prompt"
	RunModelBacktesting = "backtesting.run_model_backtesting"
)

// Fire-and-forget tasks enqueued by discovery for each new prompt.
const (
	GenerateCriteria           = "criteria_generator.generate"
	GenerateInitialDescription = "agent_description_generator.generate_initial_description"
	MarkReviewCompleted        = "periodic_reviews.mark_review_completed"
)

// Parameter keys used in task payloads.
const (
	ParamJobID     = "job_id"
	ParamProjectID = "project_id"
	ParamPromptID  = "prompt_id"
	ParamSlug      = "prompt_slug"
	ParamSpanIDs   = "span_ids"
	ParamModels    = "models"
	ParamSpanCount = "span_count"
)

// ForJobType returns the execution task dispatched for a job type.
func ForJobType(t job.Type) (string, error) {
	switch t {
	case job.TypeAgentDiscovery:
		return RunAgentDiscovery, nil
	case job.TypeJudgeScoring:
		return EvaluatePromptSpans, nil
	case job.TypePromptTuning:
		return ImproveSinglePrompt, nil
	case job.TypeModelBacktesting:
		return RunModelBacktesting, nil
	default:
		return "", fmt.Errorf("no task for job type %q", t)
	}
}
