// Package llm defines the gateway contract the orchestration core uses for
// all outbound LLM calls, plus the retry layer, output normalisation, and the
// model → provider routing table. The concrete transport (proxy, SDKs) lives
// behind the Gateway interface and is out of scope for the core.
package llm

import (
	"context"
	"errors"
)

// Message is one turn of a conversation in span-output form.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// Conversation roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is an LLM's request to invoke a tool.
type ToolCall struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ToolDefinition describes a tool made available to the model.
type ToolDefinition struct {
	Name             string `json:"name"`
	Description      string `json:"description,omitempty"`
	ParametersSchema string `json:"parameters_schema,omitempty"`
}

// CallInput is one LLM invocation. Either InputText or Messages is set;
// SystemPrompt is prepended when present.
type CallInput struct {
	InputText      string
	Messages       []Message
	SystemPrompt   string
	Model          string
	ResponseFormat interface{}
	Tools          []ToolDefinition
}

// CallStats reports per-call usage.
type CallStats struct {
	PromptTokens     int     `json:"prompt_tokens"`
	CompletionTokens int     `json:"completion_tokens"`
	ResponseMS       int64   `json:"response_ms"`
	ResponseCost     float64 `json:"response_cost"`
}

// CallOutput is the gateway's response. When the model returned only tool
// calls, Content carries their serialised {"tool_calls": [...]} form.
type CallOutput struct {
	Content   string
	ToolCalls []ToolCall
	Stats     CallStats
}

// Gateway executes LLM calls.
type Gateway interface {
	CallLLM(ctx context.Context, input CallInput) (*CallOutput, error)
}

// RateLimitError marks a provider rate-limit response. The retry layer backs
// off on it; every other error gets exactly one retry.
type RateLimitError struct {
	Err error
}

func (e *RateLimitError) Error() string {
	return "rate limited: " + e.Err.Error()
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// IsRateLimit reports whether err is (or wraps) a rate-limit error.
func IsRateLimit(err error) bool {
	var rl *RateLimitError
	return errors.As(err, &rl)
}
