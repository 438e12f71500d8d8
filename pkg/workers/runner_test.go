package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/promptlens/promptlens/ent/job"
)

func TestClassifyPartial(t *testing.T) {
	assert.Equal(t, job.StatusCompleted, classifyPartial(0, 0))
	assert.Equal(t, job.StatusFailed, classifyPartial(0, 10))
	assert.Equal(t, job.StatusPartiallyCompleted, classifyPartial(3, 10))
	assert.Equal(t, job.StatusCompleted, classifyPartial(10, 10))
}

func TestRouteJudge(t *testing.T) {
	assert.Equal(t, judgeToolCall, routeJudge(map[string]interface{}{
		"response_type": "tool_calls",
	}))
	assert.Equal(t, judgeToolAnswer, routeJudge(map[string]interface{}{
		"response_type": "text",
		"is_agentic":    true,
	}))
	assert.Equal(t, judgeAgentic, routeJudge(map[string]interface{}{
		"is_agentic": true,
	}))
	assert.Equal(t, judgePlain, routeJudge(map[string]interface{}{
		"response_type": "text",
	}))
	assert.Equal(t, judgePlain, routeJudge(nil))
}

func TestResolveCriteriaFallsBackToDefaults(t *testing.T) {
	assert.Equal(t, defaultToolCallCriteria, resolveCriteria(nil, judgeToolCall))
	assert.Equal(t, defaultToolAnswerCriteria, resolveCriteria(nil, judgeToolAnswer))
	assert.Equal(t, defaultAgenticCriteria, resolveCriteria(nil, judgeAgentic))
	assert.Equal(t, defaultPlainCriteria, resolveCriteria(nil, judgePlain))
}

func TestResolveCriteriaPrefersPromptRules(t *testing.T) {
	rules := []string{"the answer cites the tool output"}
	assert.Equal(t, rules, resolveCriteria(rules, judgePlain))
	assert.Equal(t, rules, resolveCriteria(rules, judgeAgentic))
}

func TestResolveCriteriaAddsToolAddendumForAgentic(t *testing.T) {
	rules := []string{"the answer is polite"}
	got := resolveCriteria(rules, judgeAgentic)
	assert.Len(t, got, 2)
	assert.Equal(t, toolAddendum, got[1])
	// Original slice untouched.
	assert.Len(t, rules, 1)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, clamp01(-0.5))
	assert.Equal(t, 1.0, clamp01(1.5))
	assert.Equal(t, 0.7, clamp01(0.7))
}
