package workers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/tasks"
	"github.com/promptlens/promptlens/pkg/thresholds"
)

// checkReviewTriggers walks every project's latest prompts and arms the
// review ladder: prompts whose real span count crossed their next review
// threshold surface a badge in the UI (read from agent_description).
func (r *Runner) checkReviewTriggers(ctx context.Context, _ *taskqueue.Task) (map[string]interface{}, error) {
	projects, err := r.svc.Projects.List(ctx)
	if err != nil {
		return nil, err
	}

	checked, due := 0, 0
	for _, project := range projects {
		prompts, err := r.svc.Prompts.LatestVersions(ctx, project.ID)
		if err != nil {
			return nil, err
		}
		for _, p := range prompts {
			desc, err := models.AgentDescriptionFromMap(p.AgentDescription)
			if err != nil {
				slog.Warn("Bad agent description, skipping", "prompt_id", p.ID, "error", err)
				continue
			}
			checked++

			count, err := r.svc.Spans.CountForSlug(ctx, project.ID, p.Slug)
			if err != nil {
				return nil, err
			}

			if desc.NextReviewSpanCount == 0 {
				desc.NextReviewSpanCount = thresholds.NextReview(desc.LastReviewSpanCount)
				if err := r.svc.Prompts.UpdateAgentDescription(ctx, p.ID, desc); err != nil {
					return nil, err
				}
			}
			if count >= desc.NextReviewSpanCount {
				due++
			}
		}
	}
	return map[string]interface{}{"prompts_checked": checked, "reviews_due": due}, nil
}

// markReviewCompleted records a finished review and advances the review
// ladder. Idempotent: repeating the call with no new spans changes nothing.
func (r *Runner) markReviewCompleted(ctx context.Context, task *taskqueue.Task) (map[string]interface{}, error) {
	promptID, _ := task.Params[tasks.ParamPromptID].(string)
	if promptID == "" {
		return nil, fmt.Errorf("mark_review_completed missing %s", tasks.ParamPromptID)
	}

	p, err := r.svc.Prompts.Get(ctx, promptID)
	if err != nil {
		return nil, err
	}
	desc, err := models.AgentDescriptionFromMap(p.AgentDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to decode agent description: %w", err)
	}

	count, err := r.svc.Spans.CountForSlug(ctx, p.ProjectID, p.Slug)
	if err != nil {
		return nil, err
	}

	desc.LastReviewSpanCount = count
	desc.NextReviewSpanCount = thresholds.NextReview(count)
	desc.InitialReviewCompleted = true
	if err := r.svc.Prompts.UpdateAgentDescription(ctx, p.ID, desc); err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"last_review_span_count": count,
		"next_review_span_count": desc.NextReviewSpanCount,
	}, nil
}
