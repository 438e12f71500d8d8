package workers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
)

// judgeKind selects the judge template for one span.
type judgeKind int

const (
	judgePlain judgeKind = iota
	judgeToolCall
	judgeToolAnswer
	judgeAgentic
)

// routeJudge picks the judge kind from the span's metadata. Tool-call
// responses always get the tool-call judge; text responses from agentic
// spans get the tool-answer judge; legacy agentic spans without a response
// type get the agentic judge.
func routeJudge(meta map[string]interface{}) judgeKind {
	responseType := models.ResponseType(meta)
	switch {
	case responseType == models.ResponseTypeToolCalls:
		return judgeToolCall
	case responseType == models.ResponseTypeText && models.IsAgentic(meta):
		return judgeToolAnswer
	case responseType == "" && models.IsAgentic(meta):
		return judgeAgentic
	default:
		return judgePlain
	}
}

// resolveCriteria returns the criteria to judge with: the prompt's own rules
// when set, otherwise the kind-specific defaults. Agentic criteria that never
// mention tools get the tool addendum.
func resolveCriteria(promptCriteria []string, kind judgeKind) []string {
	if len(promptCriteria) > 0 {
		if kind == judgeAgentic && !mentionsTools(promptCriteria) {
			return append(append([]string{}, promptCriteria...), toolAddendum)
		}
		return promptCriteria
	}
	switch kind {
	case judgeToolCall:
		return defaultToolCallCriteria
	case judgeToolAnswer:
		return defaultToolAnswerCriteria
	case judgeAgentic:
		return defaultAgenticCriteria
	default:
		return defaultPlainCriteria
	}
}

func mentionsTools(criteria []string) bool {
	for _, c := range criteria {
		if strings.Contains(strings.ToLower(c), "tool") {
			return true
		}
	}
	return false
}

func judgeTemplate(kind judgeKind) string {
	switch kind {
	case judgeToolCall:
		return judgeToolCallTemplate
	case judgeToolAnswer:
		return judgeToolAnswerTemplate
	case judgeAgentic:
		return judgeAgenticTemplate
	default:
		return judgePlainTemplate
	}
}

// judgeVerdict is the structured response every judge call must return.
type judgeVerdict struct {
	Correctness float64 `json:"correctness"`
}

// judgeModel is the model used for all judge calls.
const judgeModel = "gpt-5-mini"

// scoreOutput judges one (input, output) pair against the criteria and
// returns the clamped correctness score.
func scoreOutput(ctx context.Context, gw llm.Gateway, kind judgeKind, criteria []string, input, output string) (float64, error) {
	prompt := fmt.Sprintf(judgeTemplate(kind), formatCriteria(criteria), input, output)

	resp, err := gw.CallLLM(ctx, llm.CallInput{
		InputText:      prompt,
		Model:          judgeModel,
		ResponseFormat: map[string]interface{}{"correctness": "float"},
	})
	if err != nil {
		return 0, fmt.Errorf("judge call failed: %w", err)
	}

	var verdict judgeVerdict
	if err := json.Unmarshal([]byte(resp.Content), &verdict); err != nil {
		return 0, fmt.Errorf("judge returned unparseable verdict: %w", err)
	}
	return clamp01(verdict.Correctness), nil
}

// scoreSpan judges a persisted span using its own routing and the prompt's
// criteria.
func scoreSpan(ctx context.Context, gw llm.Gateway, p *ent.Prompt, sp *ent.Span) (float64, error) {
	kind := routeJudge(sp.MetadataAttributes)
	criteria := resolveCriteria(models.EvaluationCriteria(p.EvaluationCriteria), kind)
	return scoreOutput(ctx, gw, kind, criteria, sp.Input, renderOutput(sp.Output))
}

func formatCriteria(criteria []string) string {
	var b strings.Builder
	for _, c := range criteria {
		b.WriteString("- ")
		b.WriteString(c)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// renderOutput flattens the span's message-list output for the judge prompt.
func renderOutput(output []map[string]interface{}) string {
	raw, err := json.Marshal(output)
	if err != nil {
		return fmt.Sprintf("%v", output)
	}
	return string(raw)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
