package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/config"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/services"
	"golang.org/x/sync/errgroup"
)

// runScoring judges unscored spans. Batch mode samples up to the batch cap
// from the prompt's unscored spans; explicit mode scores the span ids given
// in the parameters.
func (r *Runner) runScoring(ctx context.Context, j *ent.Job, gw llm.Gateway, params map[string]interface{}) (job.Status, map[string]interface{}, error) {
	spans, p, err := r.selectScoringSpans(ctx, j, params)
	if err != nil {
		return job.StatusFailed, nil, err
	}

	selected := sampleSpans(spans, config.MaxSpansPerScoringBatch)

	var (
		mu        sync.Mutex
		evaluated int
		spanErrs  = map[string]string{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.MaxConcurrentScoring)
	for _, sp := range selected {
		g.Go(func() error {
			prompt := p
			if prompt == nil {
				var err error
				prompt, err = r.promptForSpan(gctx, sp)
				if err != nil {
					mu.Lock()
					spanErrs[sp.ID] = err.Error()
					mu.Unlock()
					return nil
				}
			}

			score, err := scoreSpan(gctx, gw, prompt, sp)
			if err != nil {
				mu.Lock()
				spanErrs[sp.ID] = err.Error()
				mu.Unlock()
				return nil
			}
			if err := r.svc.Spans.SetCorrectness(gctx, sp.ID, score, nil); err != nil {
				mu.Lock()
				spanErrs[sp.ID] = err.Error()
				mu.Unlock()
				return nil
			}
			mu.Lock()
			evaluated++
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return job.StatusFailed, nil, err
	}

	// Spans are now scored under the current criteria.
	if p != nil && evaluated > 0 {
		if err := r.svc.Prompts.ClearCriteriaInvalidated(ctx, p.ID); err != nil {
			slog.Warn("Failed to clear criteria invalidation", "prompt_id", p.ID, "error", err)
		}
	}

	output := map[string]interface{}{
		"spans_found":     len(spans),
		"spans_selected":  len(selected),
		"spans_evaluated": evaluated,
		"spans_failed":    len(spanErrs),
	}
	if len(spanErrs) > 0 {
		errMap := make(map[string]interface{}, len(spanErrs))
		for id, msg := range spanErrs {
			errMap[id] = msg
		}
		output["span_errors"] = errMap
	}
	return classifyPartial(evaluated, len(selected)), output, nil
}

// selectScoringSpans resolves the job's span set. Explicit span_ids bypass
// the prompt-scoped query (and its per-scope uniqueness assumptions).
func (r *Runner) selectScoringSpans(ctx context.Context, j *ent.Job, params map[string]interface{}) ([]*ent.Span, *ent.Prompt, error) {
	if ids := stringSlice(params["span_ids"]); len(ids) > 0 {
		var spans []*ent.Span
		for _, id := range ids {
			sp, err := r.svc.Spans.Get(ctx, id)
			if err != nil {
				if errors.Is(err, services.ErrNotFound) {
					slog.Warn("Requested span not found", "span_id", id)
					continue
				}
				return nil, nil, err
			}
			spans = append(spans, sp)
		}
		return spans, nil, nil
	}

	if j.PromptSlug == nil {
		return nil, nil, fmt.Errorf("scoring job %s has neither span_ids nor a prompt slug", j.ID)
	}
	p, err := r.svc.Prompts.GetLatest(ctx, j.ProjectID, *j.PromptSlug)
	if err != nil {
		return nil, nil, err
	}
	spans, err := r.svc.Spans.ListUnscored(ctx, p.ID, config.MaxSpansPerScoringBatch*4)
	if err != nil {
		return nil, nil, err
	}
	return spans, p, nil
}

// promptForSpan resolves the prompt a span is mapped to (explicit mode).
func (r *Runner) promptForSpan(ctx context.Context, sp *ent.Span) (*ent.Prompt, error) {
	if sp.PromptID == nil {
		return nil, fmt.Errorf("span %s is not mapped to a prompt", sp.ID)
	}
	return r.svc.Prompts.Get(ctx, *sp.PromptID)
}

// sampleSpans returns up to limit spans drawn uniformly.
func sampleSpans(spans []*ent.Span, limit int) []*ent.Span {
	if len(spans) <= limit {
		return spans
	}
	shuffled := make([]*ent.Span, len(spans))
	copy(shuffled, spans)
	rand.Shuffle(len(shuffled), func(i, k int) {
		shuffled[i], shuffled[k] = shuffled[k], shuffled[i]
	})
	return shuffled[:limit]
}

func stringSlice(v interface{}) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []interface{}:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
