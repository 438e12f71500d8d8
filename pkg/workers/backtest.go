package workers

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/recommend"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/tasks"
	"golang.org/x/sync/errgroup"
)

// backtestItem is one (span, model) replay unit.
type backtestItem struct {
	span  *ent.Span
	model string
}

// backtestOutcome is one finished replay.
type backtestOutcome struct {
	model     string
	score     float64
	latencyMS float64
	cost      float64
	tokens    float64
}

// runBacktest replays scored spans against candidate models and turns the
// per-model aggregates into a switch recommendation.
func (r *Runner) runBacktest(ctx context.Context, j *ent.Job, gw llm.Gateway, params map[string]interface{}) (job.Status, map[string]interface{}, error) {
	if j.PromptSlug == nil {
		return job.StatusFailed, nil, fmt.Errorf("backtest job %s has no prompt slug", j.ID)
	}
	p, err := r.svc.Prompts.GetLatest(ctx, j.ProjectID, *j.PromptSlug)
	if err != nil {
		return job.StatusFailed, nil, err
	}

	candidateModels := stringSlice(params[tasks.ParamModels])
	if len(candidateModels) == 0 {
		return job.StatusFailed, nil, fmt.Errorf("backtest job %s has no candidate models", j.ID)
	}

	spanCount := config.MaxSpansForBacktesting
	if n, ok := models.IntAttr(params, tasks.ParamSpanCount); ok && n > 0 && n < spanCount {
		spanCount = n
	}

	run, err := r.svc.Backtests.CreateRun(ctx, p.ID, candidateModels)
	if err != nil {
		return job.StatusFailed, nil, err
	}

	status, output, err := r.executeBacktest(ctx, gw, p, run, candidateModels, spanCount)
	if err != nil {
		if ferr := r.svc.Backtests.FailRun(ctx, run.ID); ferr != nil {
			slog.Warn("Failed to mark backtest run failed", "run_id", run.ID, "error", ferr)
		}
		return job.StatusFailed, output, err
	}
	if err := r.svc.Backtests.CompleteRun(ctx, run.ID); err != nil {
		slog.Warn("Failed to mark backtest run completed", "run_id", run.ID, "error", err)
	}
	return status, output, nil
}

func (r *Runner) executeBacktest(ctx context.Context, gw llm.Gateway, p *ent.Prompt, run *ent.BacktestRun, candidateModels []string, spanCount int) (job.Status, map[string]interface{}, error) {
	sample, err := r.backtestSample(ctx, p, spanCount)
	if err != nil {
		return job.StatusFailed, nil, err
	}
	if len(sample) == 0 {
		return job.StatusFailed, nil, fmt.Errorf("no scored spans available for backtest")
	}
	scoredCount, err := r.svc.Spans.CountScored(ctx, p.ID)
	if err != nil {
		return job.StatusFailed, nil, err
	}

	currentModel, baseline := baselineMetrics(sample)

	// sample × models, interleaved by provider so the fanout spreads across
	// providers instead of hammering one.
	var items []backtestItem
	for _, sp := range sample {
		for _, m := range candidateModels {
			items = append(items, backtestItem{span: sp, model: m})
		}
	}
	items = llm.InterleaveByProvider(items, func(it backtestItem) string { return it.model })

	var (
		mu       sync.Mutex
		outcomes []backtestOutcome
		failures int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.MaxConcurrentBacktests)
	for _, item := range items {
		g.Go(func() error {
			outcome, err := r.replayBacktestItem(gctx, gw, p, run, item)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				slog.Warn("Backtest item failed",
					"span_id", item.span.ID, "model", item.model, "error", err)
				failures++
				return nil
			}
			outcomes = append(outcomes, *outcome)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return job.StatusFailed, nil, err
	}

	metrics := aggregateOutcomes(outcomes, len(sample))
	rec := recommend.Recommend(baseline, metrics)

	output := map[string]interface{}{
		"current_model":                    currentModel,
		"sample_size":                      len(sample),
		"total_items":                      len(items),
		"success_count":                    len(outcomes),
		"recommendation":                   rec.ToMap(),
		models.ResultScoredCountAtCreation: scoredCount,
	}

	if rec.Verdict == recommend.VerdictSwitchRecommended {
		if _, err := r.svc.Suggestions.Create(ctx, services.CreateSuggestionInput{
			ProjectID:  p.ProjectID,
			PromptSlug: p.Slug,
			Scores: map[string]interface{}{
				models.ScoresRecommendedModel: rec.RecommendedModel,
				"baseline_score":              baseline.AvgScore,
			},
			Recommendations: rec.ToMap(),
		}); err != nil {
			return job.StatusFailed, output, err
		}
	}

	return classifyPartial(len(outcomes), len(items)), output, nil
}

// backtestSample selects up to n scored, input-bearing spans for the prompt.
func (r *Runner) backtestSample(ctx context.Context, p *ent.Prompt, n int) ([]*ent.Span, error) {
	scored, err := r.svc.Spans.ListScored(ctx, p.ID, 0)
	if err != nil {
		return nil, err
	}
	var usable []*ent.Span
	for _, sp := range scored {
		if sp.Input != "" {
			usable = append(usable, sp)
		}
	}
	return sampleSpans(usable, n), nil
}

// replayBacktestItem replays one span on one candidate model, judges it, and
// persists the synthetic span.
func (r *Runner) replayBacktestItem(ctx context.Context, gw llm.Gateway, p *ent.Prompt, run *ent.BacktestRun, item backtestItem) (*backtestOutcome, error) {
	result, err := replaySpan(ctx, gw, p.Content, item.span, item.model)
	if err != nil {
		return nil, err
	}

	// A plain-text original must not be judged by the tool-call judge just
	// because the candidate model called tools.
	meta := item.span.MetadataAttributes
	if models.ResponseType(meta) == "" && !models.IsAgentic(meta) {
		meta = nil
	}
	kind := routeJudge(meta)
	criteria := resolveCriteria(models.EvaluationCriteria(p.EvaluationCriteria), kind)
	score, err := scoreOutput(ctx, gw, kind, criteria, item.span.Input, renderOutput(result.Output))
	if err != nil {
		return nil, err
	}

	synthMeta := map[string]interface{}{
		models.MetaBacktest:      true,
		models.MetaBacktestRunID: run.ID,
		models.MetaModel:         item.model,
		models.MetaCost:          result.Raw.Stats.ResponseCost,
	}
	sp, err := r.svc.Spans.CreateSynthetic(ctx, services.CreateSyntheticInput{
		ProjectID:   p.ProjectID,
		PromptID:    p.ID,
		Operation:   models.OperationBacktestPrefix + item.model,
		Input:       item.span.Input,
		Output:      result.Output,
		InputParams: item.span.InputParams,
		Metadata:    synthMeta,
	})
	if err != nil {
		return nil, err
	}
	if err := r.svc.Spans.SetCorrectness(ctx, sp.ID, score, nil); err != nil {
		slog.Warn("Failed to score backtest span", "span_id", sp.ID, "error", err)
	}

	return &backtestOutcome{
		model:     item.model,
		score:     score,
		latencyMS: float64(result.Raw.Stats.ResponseMS),
		cost:      result.Raw.Stats.ResponseCost,
		tokens:    float64(result.Raw.Stats.PromptTokens + result.Raw.Stats.CompletionTokens),
	}, nil
}

// baselineMetrics derives the current model (mode across the sample) and its
// observed score, latency and cost averages.
func baselineMetrics(sample []*ent.Span) (string, recommend.ModelMetrics) {
	counts := map[string]int{}
	for _, sp := range sample {
		if m := models.Model(sp.MetadataAttributes); m != "" {
			counts[m]++
		}
	}
	currentModel := ""
	for m, n := range counts {
		if n > counts[currentModel] || currentModel == "" {
			currentModel = m
		}
	}

	var scoreSum, latencySum, costSum float64
	scoreN, latencyN, costN := 0, 0, 0
	for _, sp := range sample {
		if score, ok := spanScore(sp); ok {
			scoreSum += score
			scoreN++
		}
		if sp.EndTimeUnixNano > sp.StartTimeUnixNano {
			latencySum += float64(sp.EndTimeUnixNano-sp.StartTimeUnixNano) / 1e6
			latencyN++
		}
		if cost, ok := models.Cost(sp.MetadataAttributes); ok {
			costSum += cost
			costN++
		}
	}

	baseline := recommend.ModelMetrics{Model: currentModel}
	if scoreN > 0 {
		baseline.AvgScore = scoreSum / float64(scoreN)
	}
	if latencyN > 0 {
		baseline.AvgLatencyMS = latencySum / float64(latencyN)
	}
	if costN > 0 {
		baseline.AvgCost = costSum / float64(costN)
	}
	return currentModel, baseline
}

// aggregateOutcomes folds per-item outcomes into per-model metrics.
func aggregateOutcomes(outcomes []backtestOutcome, sampleSize int) []recommend.ModelMetrics {
	type agg struct {
		score, latency, cost, tokens float64
		n                            int
	}
	byModel := map[string]*agg{}
	for _, o := range outcomes {
		a := byModel[o.model]
		if a == nil {
			a = &agg{}
			byModel[o.model] = a
		}
		a.score += o.score
		a.latency += o.latencyMS
		a.cost += o.cost
		a.tokens += o.tokens
		a.n++
	}

	var metrics []recommend.ModelMetrics
	for model, a := range byModel {
		n := float64(a.n)
		m := recommend.ModelMetrics{
			Model:        model,
			AvgScore:     a.score / n,
			AvgLatencyMS: a.latency / n,
			AvgCost:      a.cost / n,
			TotalCost:    a.cost,
			AvgTokens:    a.tokens / n,
		}
		if sampleSize > 0 {
			m.SuccessRate = n / float64(sampleSize)
		}
		metrics = append(metrics, m)
	}
	return metrics
}
