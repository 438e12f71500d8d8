package workers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/tasks"
	"github.com/promptlens/promptlens/pkg/templates"
)

// runDiscovery maps unmapped spans to prompt templates, creating version-1
// prompts for templates it has not seen before. Span mappings are committed
// before any downstream task is enqueued.
func (r *Runner) runDiscovery(ctx context.Context, j *ent.Job, _ llm.Gateway, _ map[string]interface{}) (job.Status, map[string]interface{}, error) {
	projectID := j.ProjectID

	unmapped, err := r.svc.Spans.ListUnmapped(ctx, projectID)
	if err != nil {
		return job.StatusFailed, nil, err
	}

	type spanText struct {
		span *ent.Span
		text string
	}
	var candidates []spanText
	for _, sp := range unmapped {
		text := canonicalPromptText(sp.Input)
		if strings.TrimSpace(text) == "" {
			continue
		}
		candidates = append(candidates, spanText{span: sp, text: text})
	}
	if len(candidates) == 0 {
		return job.StatusCompleted, map[string]interface{}{
			models.ResultReason: "no unmapped spans with usable input",
			"new_templates":     0,
			"mapped":            0,
		}, nil
	}

	existing, err := r.svc.Prompts.LatestVersions(ctx, projectID)
	if err != nil {
		return job.StatusFailed, nil, err
	}

	// First pass: match against templates this project already knows.
	type mapping struct {
		spanID   string
		promptID string
		vars     map[string]string
	}
	var mappings []mapping
	var unmatched []spanText
	for _, c := range candidates {
		if p, vars := matchExisting(existing, c.text); p != nil {
			mappings = append(mappings, mapping{spanID: c.span.ID, promptID: p.ID, vars: vars})
			continue
		}
		unmatched = append(unmatched, c)
	}

	// Second pass: extract fresh templates from the remainder.
	var texts []string
	for _, c := range unmatched {
		texts = append(texts, c.text)
	}
	var newPrompts []*ent.Prompt
	for _, tmpl := range templates.Extract(texts) {
		p, created, err := r.ensurePrompt(ctx, projectID, tmpl)
		if err != nil {
			return job.StatusFailed, nil, err
		}
		if created {
			newPrompts = append(newPrompts, p)
		}
		for _, c := range unmatched {
			if vars, ok := templates.Match(tmpl, c.text); ok {
				mappings = append(mappings, mapping{spanID: c.span.ID, promptID: p.ID, vars: vars})
			}
		}
	}

	mapped := 0
	for _, m := range mappings {
		if err := r.svc.Spans.SetMapping(ctx, m.spanID, m.promptID, m.vars); err != nil {
			slog.Warn("Failed to map span", "span_id", m.spanID, "error", err)
			continue
		}
		mapped++
	}

	// Mappings are durable; downstream enqueues are fire-and-forget.
	for _, p := range newPrompts {
		r.enqueueGenerators(ctx, p.ID)
	}

	output := map[string]interface{}{
		"new_templates": len(newPrompts),
		"mapped":        mapped,
	}
	if len(newPrompts) == 0 {
		output[models.ResultReason] = "no new templates discovered"
	}
	return job.StatusCompleted, output, nil
}

// matchExisting tries each known prompt's template against the text.
func matchExisting(prompts []*ent.Prompt, text string) (*ent.Prompt, map[string]string) {
	for _, p := range prompts {
		if vars, ok := templates.Match(p.Content, text); ok {
			return p, vars
		}
	}
	return nil, nil
}

// ensurePrompt reuses an existing prompt with the same content hash or
// inserts a fresh version-1 prompt under a collision-checked slug.
func (r *Runner) ensurePrompt(ctx context.Context, projectID, tmpl string) (*ent.Prompt, bool, error) {
	hash := templates.ContentHash(tmpl)
	if p, err := r.svc.Prompts.FindByContentHash(ctx, projectID, hash); err == nil {
		return p, false, nil
	} else if !errors.Is(err, services.ErrNotFound) {
		return nil, false, err
	}

	slug, err := r.svc.Prompts.EnsureUniqueSlug(ctx, projectID, templates.NewSlug())
	if err != nil {
		return nil, false, err
	}
	p, err := r.svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: projectID,
		Slug:      slug,
		Version:   1,
		Content:   tmpl,
		Active:    true,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create discovered prompt: %w", err)
	}
	return p, true, nil
}

// enqueueGenerators schedules criteria and description generation for a new
// prompt. At-least-once: failures are logged, never propagated.
func (r *Runner) enqueueGenerators(ctx context.Context, promptID string) {
	params := map[string]interface{}{tasks.ParamPromptID: promptID}
	for _, name := range []string{tasks.GenerateCriteria, tasks.GenerateInitialDescription} {
		if _, err := r.broker.SendTask(ctx, name, params); err != nil && !errors.Is(err, taskqueue.ErrQueueClosed) {
			slog.Warn("Failed to enqueue generator task", "task", name, "prompt_id", promptID, "error", err)
		}
	}
}
