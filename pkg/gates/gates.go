// Package gates implements the per-job-type eligibility checks. Each gate is
// a read-only predicate over the data model returning (eligible, reason,
// stats); the scheduler and the user-facing create endpoint both consult the
// same gate before a job is inserted.
package gates

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/thresholds"
)

// ReasonInProgress is the shared suffix of every duplicate-scope rejection.
// Schedulers count such rejections as deduped rather than data-starved.
const ReasonInProgress = "already in progress"

// InProgress reports whether a gate rejection is a duplicate-scope one.
func InProgress(reason string) bool {
	return strings.Contains(reason, ReasonInProgress)
}

// Result is the gate verdict plus the observational stats recorded on jobs.
type Result struct {
	Eligible bool
	Reason   string
	Stats    map[string]interface{}
}

func blocked(reason string, stats map[string]interface{}) Result {
	return Result{Eligible: false, Reason: reason, Stats: stats}
}

func eligible(stats map[string]interface{}) Result {
	return Result{Eligible: true, Stats: stats}
}

// SpanStore is the span-side read surface the gates need.
type SpanStore interface {
	CountForProject(ctx context.Context, projectID string) (int, error)
	ListUnmapped(ctx context.Context, projectID string) ([]*ent.Span, error)
	ListUnscored(ctx context.Context, promptID string, limit int) ([]*ent.Span, error)
	CountScored(ctx context.Context, promptID string) (int, error)
	HasActivitySince(ctx context.Context, projectID, slug string, since time.Time) (bool, error)
	AdoptionRatio(ctx context.Context, projectID, slug string, version int) (float64, error)
}

// JobStore is the job-side read surface the gates need.
type JobStore interface {
	HasInFlightForScope(ctx context.Context, t job.Type, projectID string, slug *string) (bool, error)
	LastBacktestScoredCount(ctx context.Context, projectID, slug string) (int, error)
}

// Gates evaluates eligibility for every job type.
type Gates struct {
	spans SpanStore
	jobs  JobStore
}

// New creates the gate evaluator.
func New(spans SpanStore, jobs JobStore) *Gates {
	return &Gates{spans: spans, jobs: jobs}
}

// Discovery gates agent_discovery for a project: enough total traffic, at
// least one unmapped span with usable input, and no duplicate job.
func (g *Gates) Discovery(ctx context.Context, projectID string) (Result, error) {
	total, err := g.spans.CountForProject(ctx, projectID)
	if err != nil {
		return Result{}, err
	}
	stats := map[string]interface{}{"total_spans": total}
	if total < config.MinSpansForDiscovery {
		return blocked(fmt.Sprintf("project has %d spans, need %d", total, config.MinSpansForDiscovery), stats), nil
	}

	unmapped, err := g.spans.ListUnmapped(ctx, projectID)
	if err != nil {
		return Result{}, err
	}
	stats["unmapped_spans"] = len(unmapped)
	if len(unmapped) == 0 {
		return blocked("no unmapped spans", stats), nil
	}

	usable := 0
	for _, sp := range unmapped {
		if strings.TrimSpace(sp.Input) != "" {
			usable++
		}
	}
	stats["usable_spans"] = usable
	if usable == 0 {
		return blocked("no unmapped span has usable input", stats), nil
	}

	inFlight, err := g.jobs.HasInFlightForScope(ctx, job.TypeAgentDiscovery, projectID, nil)
	if err != nil {
		return Result{}, err
	}
	if inFlight {
		return blocked("agent discovery "+ReasonInProgress, stats), nil
	}
	return eligible(stats), nil
}

// Scoring gates judge_scoring for the latest version of a prompt.
func (g *Gates) Scoring(ctx context.Context, p *ent.Prompt) (Result, error) {
	stats := map[string]interface{}{}
	if len(models.EvaluationCriteria(p.EvaluationCriteria)) == 0 {
		return blocked("prompt has no correctness criteria", stats), nil
	}

	unscored, err := g.spans.ListUnscored(ctx, p.ID, config.MinSpansForScoring)
	if err != nil {
		return Result{}, err
	}
	stats["unscored_spans"] = len(unscored)
	if len(unscored) < config.MinSpansForScoring {
		return blocked(fmt.Sprintf("%d unscored spans, need %d", len(unscored), config.MinSpansForScoring), stats), nil
	}

	inFlight, err := g.jobs.HasInFlightForScope(ctx, job.TypeJudgeScoring, p.ProjectID, &p.Slug)
	if err != nil {
		return Result{}, err
	}
	if inFlight {
		return blocked("judge scoring "+ReasonInProgress, stats), nil
	}
	return eligible(stats), nil
}

// Tuning gates prompt_tuning for the latest version of a prompt: recent
// traffic, the improvement ladder crossed, sufficient adoption, criteria
// present, and no duplicate job.
func (g *Gates) Tuning(ctx context.Context, p *ent.Prompt) (Result, error) {
	stats := map[string]interface{}{}

	active, err := g.spans.HasActivitySince(ctx, p.ProjectID, p.Slug, time.Now().Add(-config.ActivityWindow))
	if err != nil {
		return Result{}, err
	}
	if !active {
		return blocked("no traffic in activity window", stats), nil
	}

	meta, err := models.ImprovementMetadataFromMap(p.ImprovementMetadata)
	if err != nil {
		return Result{}, fmt.Errorf("failed to decode improvement metadata: %w", err)
	}
	scored, err := g.spans.CountScored(ctx, p.ID)
	if err != nil {
		return Result{}, err
	}
	next := thresholds.NextImprovement(meta.LastImprovementSpanCount)
	stats["scored_spans"] = scored
	stats["next_threshold"] = next
	if scored < next {
		return blocked(fmt.Sprintf("%d scored spans, next threshold %d", scored, next), stats), nil
	}
	if scored == 0 {
		return blocked("no spans available for comparison", stats), nil
	}

	adoption, err := g.spans.AdoptionRatio(ctx, p.ProjectID, p.Slug, p.Version)
	if err != nil {
		return Result{}, err
	}
	stats["adoption_ratio"] = adoption
	if adoption < config.MinAdoptionRatio {
		return blocked(fmt.Sprintf("latest version adoption %.0f%%, need %.0f%%", adoption*100, config.MinAdoptionRatio*100), stats), nil
	}

	if len(models.EvaluationCriteria(p.EvaluationCriteria)) == 0 {
		return blocked("prompt has no correctness criteria", stats), nil
	}

	inFlight, err := g.jobs.HasInFlightForScope(ctx, job.TypePromptTuning, p.ProjectID, &p.Slug)
	if err != nil {
		return Result{}, err
	}
	if inFlight {
		return blocked("prompt tuning "+ReasonInProgress, stats), nil
	}
	return eligible(stats), nil
}

// Backtesting gates model_backtesting for the latest version of a prompt.
// The ladder is keyed on the scored count recorded by the last finished
// backtest, so each run must earn roughly double the evidence of its
// predecessor.
func (g *Gates) Backtesting(ctx context.Context, p *ent.Prompt) (Result, error) {
	stats := map[string]interface{}{}

	active, err := g.spans.HasActivitySince(ctx, p.ProjectID, p.Slug, time.Now().Add(-config.ActivityWindow))
	if err != nil {
		return Result{}, err
	}
	if !active {
		return blocked("no traffic in activity window", stats), nil
	}

	scored, err := g.spans.CountScored(ctx, p.ID)
	if err != nil {
		return Result{}, err
	}
	stats["scored_spans"] = scored
	if scored < config.MinSpansForBacktesting {
		return blocked(fmt.Sprintf("%d scored spans, need %d", scored, config.MinSpansForBacktesting), stats), nil
	}

	lastCount, err := g.jobs.LastBacktestScoredCount(ctx, p.ProjectID, p.Slug)
	if err != nil {
		return Result{}, err
	}
	next := thresholds.NextImprovement(lastCount)
	stats["next_threshold"] = next
	if scored < next {
		return blocked(fmt.Sprintf("%d scored spans, next threshold %d", scored, next), stats), nil
	}

	if len(models.EvaluationCriteria(p.EvaluationCriteria)) == 0 {
		return blocked("prompt has no correctness criteria", stats), nil
	}

	inFlight, err := g.jobs.HasInFlightForScope(ctx, job.TypeModelBacktesting, p.ProjectID, &p.Slug)
	if err != nil {
		return Result{}, err
	}
	if inFlight {
		return blocked("model backtesting "+ReasonInProgress, stats), nil
	}
	return eligible(stats), nil
}

// ForType dispatches to the gate matching the job type. Discovery scopes on
// the project; the others on the prompt.
func (g *Gates) ForType(ctx context.Context, t job.Type, projectID string, p *ent.Prompt) (Result, error) {
	switch t {
	case job.TypeAgentDiscovery:
		return g.Discovery(ctx, projectID)
	case job.TypeJudgeScoring:
		return g.Scoring(ctx, p)
	case job.TypePromptTuning:
		return g.Tuning(ctx, p)
	case job.TypeModelBacktesting:
		return g.Backtesting(ctx, p)
	default:
		return Result{}, fmt.Errorf("no gate for job type %q", t)
	}
}
