package workers

import (
	"encoding/json"
	"strings"

	"github.com/promptlens/promptlens/pkg/llm"
)

// parseMessages decodes a span input into a message list. Inputs that are
// not a JSON message array are treated as a single user message.
func parseMessages(input string) []llm.Message {
	trimmed := strings.TrimSpace(input)
	if strings.HasPrefix(trimmed, "[") {
		var msgs []llm.Message
		if err := json.Unmarshal([]byte(trimmed), &msgs); err == nil && len(msgs) > 0 {
			return msgs
		}
	}
	return []llm.Message{{Role: llm.RoleUser, Content: input}}
}

// canonicalPromptText extracts the template-bearing text of a span input:
// user and system turns joined by newlines, assistant and tool turns dropped.
func canonicalPromptText(input string) string {
	var parts []string
	for _, m := range parseMessages(input) {
		if m.Role == llm.RoleUser || m.Role == llm.RoleSystem {
			if strings.TrimSpace(m.Content) != "" {
				parts = append(parts, m.Content)
			}
		}
	}
	return strings.Join(parts, "\n")
}

// replaceSystemMessage returns the conversation with its system message
// swapped for the given text. A conversation without a system message gets
// one prepended.
func replaceSystemMessage(msgs []llm.Message, system string) []llm.Message {
	out := make([]llm.Message, 0, len(msgs)+1)
	replaced := false
	for _, m := range msgs {
		if m.Role == llm.RoleSystem && !replaced {
			out = append(out, llm.Message{Role: llm.RoleSystem, Content: system})
			replaced = true
			continue
		}
		out = append(out, m)
	}
	if !replaced {
		out = append([]llm.Message{{Role: llm.RoleSystem, Content: system}}, out...)
	}
	return out
}

// toolDefinitionsFrom converts the span's available_tools metadata into
// gateway tool definitions.
func toolDefinitionsFrom(tools []interface{}) []llm.ToolDefinition {
	var defs []llm.ToolDefinition
	for _, t := range tools {
		m, ok := t.(map[string]interface{})
		if !ok {
			continue
		}
		def := llm.ToolDefinition{}
		def.Name, _ = m["name"].(string)
		def.Description, _ = m["description"].(string)
		if schema, ok := m["parameters_schema"].(string); ok {
			def.ParametersSchema = schema
		} else if params, ok := m["parameters"]; ok {
			if raw, err := json.Marshal(params); err == nil {
				def.ParametersSchema = string(raw)
			}
		}
		if def.Name != "" {
			defs = append(defs, def)
		}
	}
	return defs
}

// templateVars converts a span's input_params into render variables,
// dropping the tools key, which is context rather than a template slot.
func templateVars(params map[string]interface{}) map[string]string {
	vars := make(map[string]string, len(params))
	for k, v := range params {
		if k == "tools" {
			continue
		}
		switch s := v.(type) {
		case string:
			vars[k] = s
		default:
			if raw, err := json.Marshal(v); err == nil {
				vars[k] = string(raw)
			}
		}
	}
	return vars
}
