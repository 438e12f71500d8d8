package llm

import (
	"encoding/json"
	"fmt"
)

// SerializeToolCalls renders tool calls in the wire form stored when a model
// returns no plain-text content: {"tool_calls": [...]}.
func SerializeToolCalls(calls []ToolCall) (string, error) {
	payload, err := json.Marshal(map[string]interface{}{"tool_calls": calls})
	if err != nil {
		return "", fmt.Errorf("failed to serialise tool calls: %w", err)
	}
	return string(payload), nil
}

// NormalizeOutput converts a gateway response into the span-output message
// list form: [{role: "assistant", content, tool_calls?}]. Content that is
// itself a serialised {"tool_calls": [...]} payload is unpacked.
func NormalizeOutput(out *CallOutput) ([]map[string]interface{}, error) {
	msg := map[string]interface{}{
		"role":    RoleAssistant,
		"content": out.Content,
	}

	calls := out.ToolCalls
	if len(calls) == 0 && out.Content != "" {
		if parsed, ok := parseToolCallContent(out.Content); ok {
			calls = parsed
			msg["content"] = ""
		}
	}

	if len(calls) > 0 {
		encoded := make([]map[string]interface{}, 0, len(calls))
		for _, call := range calls {
			entry := map[string]interface{}{
				"name":      call.Name,
				"arguments": call.Arguments,
			}
			if call.ID != "" {
				entry["id"] = call.ID
			}
			encoded = append(encoded, entry)
		}
		msg["tool_calls"] = encoded
	}

	return []map[string]interface{}{msg}, nil
}

// parseToolCallContent detects the serialised tool-call form.
func parseToolCallContent(content string) ([]ToolCall, bool) {
	var wrapper struct {
		ToolCalls []ToolCall `json:"tool_calls"`
	}
	if err := json.Unmarshal([]byte(content), &wrapper); err != nil {
		return nil, false
	}
	if len(wrapper.ToolCalls) == 0 {
		return nil, false
	}
	return wrapper.ToolCalls, true
}
