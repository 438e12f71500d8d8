package workers

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/templates"
)

// tuningModel generates improvement suggestions and candidate templates.
const tuningModel = "claude-sonnet-4-5"

// runTuning attempts to produce an improved version of the prompt. Repeating
// the job may yield another candidate but never silently overwrites state.
func (r *Runner) runTuning(ctx context.Context, j *ent.Job, gw llm.Gateway, _ map[string]interface{}) (job.Status, map[string]interface{}, error) {
	if j.PromptSlug == nil {
		return job.StatusFailed, nil, fmt.Errorf("tuning job %s has no prompt slug", j.ID)
	}
	p, err := r.svc.Prompts.GetLatest(ctx, j.ProjectID, *j.PromptSlug)
	if err != nil {
		return job.StatusFailed, nil, err
	}

	scored, err := r.svc.Spans.ListScored(ctx, p.ID, 0)
	if err != nil {
		return job.StatusFailed, nil, err
	}
	scoredCount := len(scored)
	buckets := bucketScored(scored, config.MaxSpansPerScoreBucket)
	poor := append(append([]*ent.Span{}, buckets[0]...), buckets[1]...)
	good := append(append([]*ent.Span{}, buckets[3]...), buckets[4]...)

	if len(poor) == 0 {
		if err := r.advanceLadder(ctx, p, scoredCount); err != nil {
			return job.StatusFailed, nil, err
		}
		return job.StatusCompleted, map[string]interface{}{
			models.ResultStatusDetail: "no_improvement",
			models.ResultReason:       "no low-scoring spans to learn from",
			"scored_spans":            scoredCount,
		}, nil
	}

	suggestions, err := r.generateSuggestions(ctx, gw, p, poor)
	if err != nil {
		return job.StatusFailed, nil, err
	}

	candidate, err := r.generateCandidate(ctx, gw, p, suggestions, good, poor)
	if err != nil {
		return job.StatusFailed, nil, err
	}
	if candidateHashEquals(candidate, p) {
		if err := r.advanceLadder(ctx, p, scoredCount); err != nil {
			return job.StatusFailed, nil, err
		}
		return job.StatusCancelled, map[string]interface{}{
			models.ResultReason: "identical to existing version",
			"scored_spans":      scoredCount,
		}, nil
	}

	comparison := selectComparison(buckets, config.MaxComparisonSpans)
	oldMean, newMean, replayed, replayErrs := r.replayAndScore(ctx, gw, p, candidate, comparison)
	deltaScore := newMean - oldMean

	output := map[string]interface{}{
		"scored_spans":     scoredCount,
		"comparison_spans": len(comparison),
		"replayed":         replayed,
		"replay_errors":    replayErrs,
		"avg_score_old":    oldMean,
		"avg_score_new":    newMean,
		"delta_score":      deltaScore,
	}

	if replayed == 0 {
		return job.StatusFailed, output, nil
	}

	if deltaScore <= 0 {
		if err := r.advanceLadder(ctx, p, scoredCount); err != nil {
			return job.StatusFailed, output, err
		}
		output[models.ResultStatusDetail] = "no_improvement"
		return job.StatusCompleted, output, nil
	}

	version, err := r.persistImprovedVersion(ctx, p, candidate, scoredCount, oldMean, newMean)
	if err != nil {
		return job.StatusFailed, output, err
	}
	output["new_version"] = version

	if _, err := r.svc.Suggestions.Create(ctx, services.CreateSuggestionInput{
		ProjectID:        p.ProjectID,
		PromptSlug:       p.Slug,
		NewPromptText:    &candidate,
		NewPromptVersion: &version,
		Scores: map[string]interface{}{
			models.ScoresAvgScoreOld: oldMean,
			models.ScoresAvgScoreNew: newMean,
		},
	}); err != nil {
		return job.StatusFailed, output, err
	}
	return job.StatusCompleted, output, nil
}

// generateSuggestions asks the LLM what is wrong with the template, routing
// to the tool-aware variant when any poor span carries a response type.
func (r *Runner) generateSuggestions(ctx context.Context, gw llm.Gateway, p *ent.Prompt, poor []*ent.Span) (string, error) {
	examples := formatExamples(poor)

	var prompt string
	if tools := firstToolContext(poor); tools != "" {
		prompt = fmt.Sprintf(suggestionToolPromptTemplate, p.Content, tools, examples)
	} else {
		prompt = fmt.Sprintf(suggestionPromptTemplate, p.Content, examples)
	}

	resp, err := gw.CallLLM(ctx, llm.CallInput{InputText: prompt, Model: tuningModel})
	if err != nil {
		return "", fmt.Errorf("suggestion call failed: %w", err)
	}
	return resp.Content, nil
}

// generateCandidate rewrites the template from the suggestions plus
// representative examples.
func (r *Runner) generateCandidate(ctx context.Context, gw llm.Gateway, p *ent.Prompt, suggestions string, good, poor []*ent.Span) (string, error) {
	prompt := fmt.Sprintf(candidatePromptTemplate, p.Content, suggestions, formatExamples(good), formatExamples(poor))
	resp, err := gw.CallLLM(ctx, llm.CallInput{InputText: prompt, Model: tuningModel})
	if err != nil {
		return "", fmt.Errorf("candidate call failed: %w", err)
	}
	candidate := strings.TrimSpace(resp.Content)
	if candidate == "" {
		return "", fmt.Errorf("candidate generation returned empty template")
	}
	return candidate, nil
}

// replayAndScore replays the comparison set with the candidate, judges each
// replay, and persists every replay as a synthetic span regardless of the
// final verdict.
func (r *Runner) replayAndScore(ctx context.Context, gw llm.Gateway, p *ent.Prompt, candidate string, comparison []*ent.Span) (oldMean, newMean float64, replayed, replayErrs int) {
	var oldSum, newSum float64
	for _, sp := range comparison {
		oldScore, ok := spanScore(sp)
		if !ok {
			continue
		}

		result, err := replaySpan(ctx, gw, candidate, sp, spanModel(sp, tuningModel))
		if err != nil {
			slog.Warn("Tuning replay failed", "span_id", sp.ID, "error", err)
			replayErrs++
			continue
		}

		kind := routeJudge(sp.MetadataAttributes)
		criteria := resolveCriteria(models.EvaluationCriteria(p.EvaluationCriteria), kind)
		newScore, err := scoreOutput(ctx, gw, kind, criteria, sp.Input, renderOutput(result.Output))
		if err != nil {
			slog.Warn("Tuning replay judge failed", "span_id", sp.ID, "error", err)
			replayErrs++
			continue
		}

		r.persistReplaySpan(ctx, p, sp, result, newScore)
		oldSum += oldScore
		newSum += newScore
		replayed++
	}
	if replayed == 0 {
		return 0, 0, 0, replayErrs
	}
	return oldSum / float64(replayed), newSum / float64(replayed), replayed, replayErrs
}

// persistReplaySpan stores a tuning replay as a synthetic span so it never
// counts as real traffic and is never re-scored.
func (r *Runner) persistReplaySpan(ctx context.Context, p *ent.Prompt, original *ent.Span, result *replayResult, score float64) {
	meta := map[string]interface{}{
		models.MetaTuningTest: true,
		models.MetaModel:      spanModel(original, tuningModel),
		models.MetaCost:       result.Raw.Stats.ResponseCost,
	}
	sp, err := r.svc.Spans.CreateSynthetic(ctx, services.CreateSyntheticInput{
		ProjectID:   p.ProjectID,
		PromptID:    p.ID,
		Operation:   models.OperationPromptTuning,
		Input:       original.Input,
		Output:      result.Output,
		InputParams: original.InputParams,
		Metadata:    meta,
	})
	if err != nil {
		slog.Warn("Failed to persist tuning replay span", "error", err)
		return
	}
	if err := r.svc.Spans.SetCorrectness(ctx, sp.ID, score, nil); err != nil {
		slog.Warn("Failed to score tuning replay span", "span_id", sp.ID, "error", err)
	}
}

// advanceLadder moves the improvement threshold forward and clears the
// criteria invalidation flag.
func (r *Runner) advanceLadder(ctx context.Context, p *ent.Prompt, scoredCount int) error {
	meta, err := models.ImprovementMetadataFromMap(p.ImprovementMetadata)
	if err != nil {
		return fmt.Errorf("failed to decode improvement metadata: %w", err)
	}
	meta.LastImprovementSpanCount = scoredCount
	meta.CriteriaInvalidated = false
	return r.svc.Prompts.UpdateImprovementMetadata(ctx, p.ID, meta)
}

// persistImprovedVersion creates the next inactive version carrying the base
// prompt's criteria, deduping on content hash.
func (r *Runner) persistImprovedVersion(ctx context.Context, p *ent.Prompt, candidate string, scoredCount int, oldMean, newMean float64) (int, error) {
	if existing, err := r.svc.Prompts.FindByContentHash(ctx, p.ProjectID, templates.ContentHash(candidate)); err == nil {
		if err := r.advanceLadder(ctx, p, scoredCount); err != nil {
			return 0, err
		}
		return existing.Version, nil
	}

	version, err := r.svc.Prompts.NextVersion(ctx, p.ProjectID, p.Slug)
	if err != nil {
		return 0, err
	}
	created, err := r.svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID:   p.ProjectID,
		Slug:        p.Slug,
		Version:     version,
		Content:     candidate,
		DisplayName: p.DisplayName,
		Criteria:    p.EvaluationCriteria,
		Active:      false,
	})
	if err != nil {
		return 0, err
	}

	meta, err := models.ImprovementMetadataFromMap(p.ImprovementMetadata)
	if err != nil {
		return 0, fmt.Errorf("failed to decode improvement metadata: %w", err)
	}
	meta.LastImprovementSpanCount = scoredCount
	meta.CriteriaInvalidated = false
	meta.ImprovementHistory = append(meta.ImprovementHistory, models.ImprovementRecord{
		Version:        version,
		SpanCount:      scoredCount,
		AvgScoreOld:    oldMean,
		AvgScoreNew:    newMean,
		CreatedAtEpoch: time.Now().Unix(),
	})
	if err := r.svc.Prompts.UpdateImprovementMetadata(ctx, created.ID, meta); err != nil {
		return 0, err
	}
	// The base version's ladder advances too, so the gate re-arms.
	if err := r.svc.Prompts.UpdateImprovementMetadata(ctx, p.ID, meta); err != nil {
		return 0, err
	}
	return version, nil
}

// formatExamples renders spans as (input, output, score) blocks for the
// suggestion prompts.
func formatExamples(spans []*ent.Span) string {
	var b strings.Builder
	for i, sp := range spans {
		score, _ := spanScore(sp)
		fmt.Fprintf(&b, "Example %d (score %.2f):\nInput: %s\nOutput: %s\n\n", i+1, score, sp.Input, renderOutput(sp.Output))
	}
	if b.Len() == 0 {
		return "(none)"
	}
	return strings.TrimRight(b.String(), "\n")
}

// firstToolContext returns the first poor span's tool definitions rendered
// as read-only context, or "" when no poor span carries a response type.
func firstToolContext(poor []*ent.Span) string {
	for _, sp := range poor {
		if models.ResponseType(sp.MetadataAttributes) == "" {
			continue
		}
		tools := models.AvailableTools(sp.MetadataAttributes)
		if len(tools) == 0 {
			return "(no tool definitions recorded)"
		}
		var names []string
		for _, def := range toolDefinitionsFrom(tools) {
			names = append(names, def.Name+": "+def.Description)
		}
		return strings.Join(names, "\n")
	}
	return ""
}

func candidateHashEquals(candidate string, p *ent.Prompt) bool {
	return templates.ContentHash(candidate) == p.ContentHash
}
