package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/llm"
)

func scoredSpan(id string, score float64) *ent.Span {
	return &ent.Span{
		ID:            id,
		FeedbackScore: map[string]interface{}{"correctness": score},
	}
}

func TestBucketScored(t *testing.T) {
	spans := []*ent.Span{
		scoredSpan("a", 0.05),
		scoredSpan("b", 0.25),
		scoredSpan("c", 0.55),
		scoredSpan("d", 0.75),
		scoredSpan("e", 0.95),
		scoredSpan("f", 1.0), // top band is closed
	}
	buckets := bucketScored(spans, 15)

	assert.Len(t, buckets[0], 1)
	assert.Len(t, buckets[1], 1)
	assert.Len(t, buckets[2], 1)
	assert.Len(t, buckets[3], 1)
	assert.Len(t, buckets[4], 2)
}

func TestBucketScoredCapsPerBucket(t *testing.T) {
	var spans []*ent.Span
	for i := 0; i < 30; i++ {
		spans = append(spans, scoredSpan("x", 0.1))
	}
	buckets := bucketScored(spans, 15)
	assert.Len(t, buckets[0], 15)
}

func TestSelectComparisonPrioritisesLowBands(t *testing.T) {
	var buckets [5][]*ent.Span
	buckets[0] = []*ent.Span{scoredSpan("low1", 0.1), scoredSpan("low2", 0.15)}
	buckets[4] = []*ent.Span{scoredSpan("high1", 0.9), scoredSpan("high2", 0.95)}

	got := selectComparison(buckets, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "low1", got[0].ID)
	assert.Equal(t, "low2", got[1].ID)
	assert.Equal(t, "high1", got[2].ID)
}

func TestCanonicalPromptTextDropsAssistantAndToolTurns(t *testing.T) {
	input := `[
		{"role":"system","content":"You are a helpful bot."},
		{"role":"user","content":"What is my balance?"},
		{"role":"assistant","content":"Let me check."},
		{"role":"tool","content":"{\"balance\": 42}"},
		{"role":"user","content":"Thanks"}
	]`
	got := canonicalPromptText(input)
	assert.Equal(t, "You are a helpful bot.\nWhat is my balance?\nThanks", got)
}

func TestCanonicalPromptTextPlainString(t *testing.T) {
	assert.Equal(t, "just a prompt", canonicalPromptText("just a prompt"))
}

func TestReplaceSystemMessage(t *testing.T) {
	msgs := []llm.Message{
		{Role: llm.RoleSystem, Content: "old"},
		{Role: llm.RoleUser, Content: "hi"},
	}
	got := replaceSystemMessage(msgs, "new")
	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].Content)
	assert.Equal(t, "hi", got[1].Content)
}

func TestReplaceSystemMessagePrependsWhenMissing(t *testing.T) {
	msgs := []llm.Message{{Role: llm.RoleUser, Content: "hi"}}
	got := replaceSystemMessage(msgs, "sys")
	require.Len(t, got, 2)
	assert.Equal(t, llm.RoleSystem, got[0].Role)
	assert.Equal(t, "sys", got[0].Content)
}

func TestTemplateVarsDropsToolsKey(t *testing.T) {
	vars := templateVars(map[string]interface{}{
		"var_0": "alice",
		"count": float64(3),
		"tools": []interface{}{"a"},
	})
	assert.Equal(t, "alice", vars["var_0"])
	assert.Equal(t, "3", vars["count"])
	assert.NotContains(t, vars, "tools")
}

func TestBaselineMetrics(t *testing.T) {
	mk := func(model string, score float64, startNS, endNS int64, cost float64) *ent.Span {
		return &ent.Span{
			StartTimeUnixNano: startNS,
			EndTimeUnixNano:   endNS,
			FeedbackScore:     map[string]interface{}{"correctness": score},
			MetadataAttributes: map[string]interface{}{
				"gen_ai.request.model": model,
				"cost":                 cost,
			},
		}
	}
	sample := []*ent.Span{
		mk("gpt-5-mini", 0.8, 0, 1_000_000_000, 0.01),
		mk("gpt-5-mini", 0.6, 0, 3_000_000_000, 0.03),
		mk("claude-sonnet-4-5", 0.7, 0, 2_000_000_000, 0.02),
	}

	model, baseline := baselineMetrics(sample)
	assert.Equal(t, "gpt-5-mini", model)
	assert.InDelta(t, 0.7, baseline.AvgScore, 1e-9)
	assert.InDelta(t, 2000, baseline.AvgLatencyMS, 1e-9)
	assert.InDelta(t, 0.02, baseline.AvgCost, 1e-9)
}

func TestAggregateOutcomes(t *testing.T) {
	outcomes := []backtestOutcome{
		{model: "m1", score: 0.8, latencyMS: 100, cost: 0.01, tokens: 500},
		{model: "m1", score: 0.6, latencyMS: 300, cost: 0.03, tokens: 700},
		{model: "m2", score: 0.9, latencyMS: 200, cost: 0.02, tokens: 600},
	}
	metrics := aggregateOutcomes(outcomes, 2)

	byModel := map[string]float64{}
	for _, m := range metrics {
		byModel[m.Model] = m.AvgScore
		if m.Model == "m1" {
			assert.InDelta(t, 200, m.AvgLatencyMS, 1e-9)
			assert.InDelta(t, 0.04, m.TotalCost, 1e-9)
			assert.InDelta(t, 1.0, m.SuccessRate, 1e-9)
		}
	}
	assert.InDelta(t, 0.7, byModel["m1"], 1e-9)
	assert.InDelta(t, 0.9, byModel["m2"], 1e-9)
}

func TestSampleSpans(t *testing.T) {
	var spans []*ent.Span
	for i := 0; i < 10; i++ {
		spans = append(spans, &ent.Span{ID: string(rune('a' + i))})
	}
	assert.Len(t, sampleSpans(spans, 4), 4)
	assert.Len(t, sampleSpans(spans, 20), 10)
}
