package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToolCalls(t *testing.T) {
	s, err := SerializeToolCalls([]ToolCall{
		{ID: "c1", Name: "lookup", Arguments: `{"q":"x"}`},
	})
	require.NoError(t, err)

	var decoded map[string][]map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(s), &decoded))
	require.Len(t, decoded["tool_calls"], 1)
	assert.Equal(t, "lookup", decoded["tool_calls"][0]["name"])
}

func TestNormalizePlainText(t *testing.T) {
	msgs, err := NormalizeOutput(&CallOutput{Content: "The answer is 4."})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, RoleAssistant, msgs[0]["role"])
	assert.Equal(t, "The answer is 4.", msgs[0]["content"])
	assert.NotContains(t, msgs[0], "tool_calls")
}

func TestNormalizeStructuredToolCalls(t *testing.T) {
	msgs, err := NormalizeOutput(&CallOutput{
		ToolCalls: []ToolCall{{ID: "c1", Name: "search", Arguments: "{}"}},
	})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	calls := msgs[0]["tool_calls"].([]map[string]interface{})
	require.Len(t, calls, 1)
	assert.Equal(t, "search", calls[0]["name"])
}

func TestNormalizeSerializedToolCallContent(t *testing.T) {
	content, err := SerializeToolCalls([]ToolCall{{Name: "fetch", Arguments: `{"id":1}`}})
	require.NoError(t, err)

	msgs, err := NormalizeOutput(&CallOutput{Content: content})
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "", msgs[0]["content"])
	calls := msgs[0]["tool_calls"].([]map[string]interface{})
	require.Len(t, calls, 1)
	assert.Equal(t, "fetch", calls[0]["name"])
}

func TestProviderFor(t *testing.T) {
	assert.Equal(t, ProviderOpenAI, ProviderFor("gpt-5-mini"))
	assert.Equal(t, ProviderAnthropic, ProviderFor("claude-sonnet-4-5"))
	assert.Equal(t, ProviderGoogle, ProviderFor("gemini-2.5-flash"))
	assert.Equal(t, ProviderUnknown, ProviderFor("llama-3"))
}

func TestInterleaveByProvider(t *testing.T) {
	models := []string{"gpt-a", "gpt-b", "gpt-c", "claude-a", "claude-b", "gemini-a"}
	got := InterleaveByProvider(models, func(m string) string { return m })
	assert.Equal(t, []string{"gpt-a", "claude-a", "gemini-a", "gpt-b", "claude-b", "gpt-c"}, got)
	assert.Len(t, got, len(models))
}
