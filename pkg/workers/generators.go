package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/taskqueue"
	"github.com/promptlens/promptlens/pkg/tasks"
	"github.com/promptlens/promptlens/pkg/thresholds"
)

// generateCriteria derives initial evaluation criteria for a freshly
// discovered prompt. Prompts that already have criteria are left alone, so
// at-least-once delivery is safe.
func (r *Runner) generateCriteria(ctx context.Context, task *taskqueue.Task) (map[string]interface{}, error) {
	promptID, _ := task.Params[tasks.ParamPromptID].(string)
	if promptID == "" {
		return nil, fmt.Errorf("criteria generation missing %s", tasks.ParamPromptID)
	}
	p, err := r.svc.Prompts.Get(ctx, promptID)
	if err != nil {
		return nil, err
	}
	if len(models.EvaluationCriteria(p.EvaluationCriteria)) > 0 {
		return map[string]interface{}{models.ResultReason: "criteria already present"}, nil
	}

	gw, dispose := r.newGateway()
	defer dispose()

	resp, err := gw.CallLLM(ctx, llm.CallInput{
		InputText:      fmt.Sprintf(criteriaGenTemplate, p.Content),
		Model:          judgeModel,
		ResponseFormat: map[string]interface{}{"correctness": []string{}},
	})
	if err != nil {
		return nil, fmt.Errorf("criteria generation call failed: %w", err)
	}

	var parsed struct {
		Correctness []string `json:"correctness"`
	}
	if err := json.Unmarshal([]byte(resp.Content), &parsed); err != nil {
		return nil, fmt.Errorf("criteria generation returned unparseable output: %w", err)
	}
	if len(parsed.Correctness) == 0 {
		return nil, fmt.Errorf("criteria generation returned no rules")
	}

	rules := make([]interface{}, 0, len(parsed.Correctness))
	for _, rule := range parsed.Correctness {
		rules = append(rules, rule)
	}
	if err := r.svc.Prompts.SetCriteria(ctx, p.ID, map[string]interface{}{"correctness": rules}); err != nil {
		return nil, err
	}
	return map[string]interface{}{"rules": len(rules)}, nil
}

// generateInitialDescription writes the first agent description and arms the
// review ladder. An existing description is never overwritten.
func (r *Runner) generateInitialDescription(ctx context.Context, task *taskqueue.Task) (map[string]interface{}, error) {
	promptID, _ := task.Params[tasks.ParamPromptID].(string)
	if promptID == "" {
		return nil, fmt.Errorf("description generation missing %s", tasks.ParamPromptID)
	}
	p, err := r.svc.Prompts.Get(ctx, promptID)
	if err != nil {
		return nil, err
	}
	desc, err := models.AgentDescriptionFromMap(p.AgentDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to decode agent description: %w", err)
	}
	if desc.Description != "" {
		return map[string]interface{}{models.ResultReason: "description already present"}, nil
	}

	gw, dispose := r.newGateway()
	defer dispose()

	resp, err := gw.CallLLM(ctx, llm.CallInput{
		InputText: fmt.Sprintf(descriptionGenTemplate, p.Content),
		Model:     judgeModel,
	})
	if err != nil {
		return nil, fmt.Errorf("description generation call failed: %w", err)
	}
	text := strings.TrimSpace(resp.Content)
	if text == "" {
		return nil, fmt.Errorf("description generation returned empty text")
	}

	desc.Description = text
	if desc.NextReviewSpanCount == 0 {
		desc.NextReviewSpanCount = thresholds.NextReview(0)
	}
	if err := r.svc.Prompts.UpdateAgentDescription(ctx, p.ID, desc); err != nil {
		return nil, err
	}
	return map[string]interface{}{"description_chars": len(text)}, nil
}
