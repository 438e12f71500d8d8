package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAgenticToolCallsAlwaysAgentic(t *testing.T) {
	meta := map[string]interface{}{
		MetaResponseType: ResponseTypeToolCalls,
		MetaIsAgentic:    false,
	}
	assert.True(t, IsAgentic(meta))
}

func TestIsAgenticFallsBackToAttribute(t *testing.T) {
	assert.True(t, IsAgentic(map[string]interface{}{MetaIsAgentic: true}))
	assert.False(t, IsAgentic(map[string]interface{}{MetaIsAgentic: false}))
	assert.False(t, IsAgentic(map[string]interface{}{}))
}

func TestIsSynthetic(t *testing.T) {
	assert.True(t, IsSynthetic(OperationPromptTuning, nil))
	assert.True(t, IsSynthetic("backtest:claude-sonnet-4-5", nil))
	assert.True(t, IsSynthetic("chat", map[string]interface{}{MetaTuningTest: true}))
	assert.True(t, IsSynthetic("chat", map[string]interface{}{MetaBacktest: true}))
	assert.False(t, IsSynthetic("chat", map[string]interface{}{}))
	assert.False(t, IsSynthetic("", nil))
}

func TestCostAcceptsJSONNumbers(t *testing.T) {
	cost, ok := Cost(map[string]interface{}{MetaCost: 0.0042})
	assert.True(t, ok)
	assert.InDelta(t, 0.0042, cost, 1e-9)

	_, ok = Cost(map[string]interface{}{})
	assert.False(t, ok)
}

func TestFeedbackScoreRoundTrip(t *testing.T) {
	score := 0.85
	fs := &FeedbackScore{
		Correctness:   &score,
		JudgeFeedback: &Feedback{Rating: 1, Text: "good"},
	}
	m, err := fs.ToMap()
	assert.NoError(t, err)

	back, err := FeedbackScoreFromMap(m)
	assert.NoError(t, err)
	assert.InDelta(t, 0.85, *back.Correctness, 1e-9)
	assert.Equal(t, 1, back.JudgeFeedback.Rating)
	assert.Nil(t, back.AgentFeedback)
}

func TestEvaluationCriteria(t *testing.T) {
	rules := EvaluationCriteria(map[string]interface{}{
		"correctness": []interface{}{"Must be accurate", "Must cite sources"},
	})
	assert.Equal(t, []string{"Must be accurate", "Must cite sources"}, rules)

	assert.Nil(t, EvaluationCriteria(nil))
	assert.Nil(t, EvaluationCriteria(map[string]interface{}{}))
	assert.Nil(t, EvaluationCriteria(map[string]interface{}{"correctness": []interface{}{}}))
}
