package workers

import (
	"context"
	"fmt"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/llm"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/templates"
)

// replayResult is one replayed span: the model's normalised output plus call
// stats.
type replayResult struct {
	Output   []map[string]interface{}
	Raw      *llm.CallOutput
	Rendered string
}

// replaySpan re-runs a span's conversation with the template swapped for the
// candidate text. The original message list is preserved, only the system
// message changes; the span's available tools are forwarded unchanged.
func replaySpan(ctx context.Context, gw llm.Gateway, candidate string, sp *ent.Span, model string) (*replayResult, error) {
	rendered := templates.Render(candidate, templateVars(sp.InputParams))
	msgs := replaceSystemMessage(parseMessages(sp.Input), rendered)
	tools := toolDefinitionsFrom(models.AvailableTools(sp.MetadataAttributes))

	out, err := gw.CallLLM(ctx, llm.CallInput{
		Messages: msgs,
		Model:    model,
		Tools:    tools,
	})
	if err != nil {
		return nil, fmt.Errorf("replay call failed: %w", err)
	}

	normalized, err := llm.NormalizeOutput(out)
	if err != nil {
		return nil, fmt.Errorf("failed to normalise replay output: %w", err)
	}
	return &replayResult{Output: normalized, Raw: out, Rendered: rendered}, nil
}

// spanModel returns the model recorded on the span, or the fallback.
func spanModel(sp *ent.Span, fallback string) string {
	if m := models.Model(sp.MetadataAttributes); m != "" {
		return m
	}
	return fallback
}

// spanScore reads the correctness score of a scored span.
func spanScore(sp *ent.Span) (float64, bool) {
	fs, err := models.FeedbackScoreFromMap(sp.FeedbackScore)
	if err != nil || fs.Correctness == nil {
		return 0, false
	}
	return *fs.Correctness, true
}

// bucketScored splits scored spans into the five score bands
// [0,0.2) [0.2,0.4) [0.4,0.6) [0.6,0.8) [0.8,1.0], capping each band.
func bucketScored(spans []*ent.Span, perBucket int) [5][]*ent.Span {
	var buckets [5][]*ent.Span
	for _, sp := range spans {
		score, ok := spanScore(sp)
		if !ok {
			continue
		}
		idx := int(score / 0.2)
		if idx > 4 {
			idx = 4
		}
		if len(buckets[idx]) < perBucket {
			buckets[idx] = append(buckets[idx], sp)
		}
	}
	return buckets
}

// selectComparison picks up to max spans across the buckets, lower score
// bands first.
func selectComparison(buckets [5][]*ent.Span, max int) []*ent.Span {
	var out []*ent.Span
	for _, bucket := range buckets {
		for _, sp := range bucket {
			if len(out) == max {
				return out
			}
			out = append(out, sp)
		}
	}
	return out
}
