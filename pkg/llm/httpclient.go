package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// HTTPClientConfig configures the OpenAI-compatible chat-completions
// transport. All providers are reached through one base URL (typically an LLM
// proxy); the key resolver supplies per-provider credentials.
type HTTPClientConfig struct {
	BaseURL string
	// APIKeyFor returns the bearer token for a provider. An empty key sends
	// the request unauthenticated.
	APIKeyFor func(Provider) string
	// Timeout bounds a single HTTP round trip. The retry layer owns the
	// overall call deadline.
	Timeout time.Duration
}

// NewHTTPClientFactory returns a ClientFactory producing chat-completions
// clients over the given transport config.
func NewHTTPClientFactory(cfg HTTPClientConfig) ClientFactory {
	if cfg.Timeout == 0 {
		cfg.Timeout = 120 * time.Second
	}
	return func(provider Provider, model string) (Client, error) {
		return &httpClient{
			cfg:      cfg,
			provider: provider,
			model:    model,
			http:     &http.Client{Timeout: cfg.Timeout},
		}, nil
	}
}

// httpClient speaks the OpenAI chat-completions wire format.
type httpClient struct {
	cfg      HTTPClientConfig
	provider Provider
	model    string
	http     *http.Client
}

type chatMessage struct {
	Role       string         `json:"role"`
	Content    string         `json:"content"`
	ToolCalls  []chatToolCall `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

type chatToolCall struct {
	ID       string `json:"id,omitempty"`
	Type     string `json:"type"`
	Function struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
	} `json:"function"`
}

type chatTool struct {
	Type     string `json:"type"`
	Function struct {
		Name        string          `json:"name"`
		Description string          `json:"description,omitempty"`
		Parameters  json.RawMessage `json:"parameters,omitempty"`
	} `json:"function"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Tools          []chatTool    `json:"tools,omitempty"`
	ResponseFormat interface{}   `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int     `json:"prompt_tokens"`
		CompletionTokens int     `json:"completion_tokens"`
		Cost             float64 `json:"cost,omitempty"`
	} `json:"usage"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CallLLM implements Gateway.
func (c *httpClient) CallLLM(ctx context.Context, input CallInput) (*CallOutput, error) {
	req := chatRequest{
		Model:          c.model,
		Messages:       buildMessages(input),
		ResponseFormat: input.ResponseFormat,
	}
	for _, t := range input.Tools {
		tool := chatTool{Type: "function"}
		tool.Function.Name = t.Name
		tool.Function.Description = t.Description
		if t.ParametersSchema != "" {
			tool.Function.Parameters = json.RawMessage(t.ParametersSchema)
		}
		req.Tools = append(req.Tools, tool)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode llm request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build llm request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKeyFor != nil {
		if key := c.cfg.APIKeyFor(c.provider); key != "" {
			httpReq.Header.Set("Authorization", "Bearer "+key)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("llm request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read llm response: %w", err)
	}
	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &RateLimitError{Err: fmt.Errorf("provider %s returned 429", c.provider)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("llm call returned %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var parsed chatResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode llm response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("llm call failed: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return nil, fmt.Errorf("llm response has no choices")
	}

	msg := parsed.Choices[0].Message
	out := &CallOutput{
		Content: msg.Content,
		Stats: CallStats{
			PromptTokens:     parsed.Usage.PromptTokens,
			CompletionTokens: parsed.Usage.CompletionTokens,
			ResponseMS:       time.Since(start).Milliseconds(),
			ResponseCost:     parsed.Usage.Cost,
		},
	}
	for _, tc := range msg.ToolCalls {
		out.ToolCalls = append(out.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	if out.Content == "" && len(out.ToolCalls) > 0 {
		serialized, err := SerializeToolCalls(out.ToolCalls)
		if err != nil {
			return nil, fmt.Errorf("failed to serialise tool calls: %w", err)
		}
		out.Content = serialized
	}
	return out, nil
}

// Close implements Client. The shared transport needs no teardown beyond
// dropping idle connections.
func (c *httpClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// buildMessages converts CallInput into the wire message list: system prompt
// first, then either the message list or the bare input text as a user turn.
func buildMessages(input CallInput) []chatMessage {
	var msgs []chatMessage
	if input.SystemPrompt != "" {
		msgs = append(msgs, chatMessage{Role: RoleSystem, Content: input.SystemPrompt})
	}
	if len(input.Messages) > 0 {
		for _, m := range input.Messages {
			cm := chatMessage{Role: m.Role, Content: m.Content, ToolCallID: m.ToolCallID}
			for _, tc := range m.ToolCalls {
				wtc := chatToolCall{ID: tc.ID, Type: "function"}
				wtc.Function.Name = tc.Name
				wtc.Function.Arguments = tc.Arguments
				cm.ToolCalls = append(cm.ToolCalls, wtc)
			}
			msgs = append(msgs, cm)
		}
		return msgs
	}
	return append(msgs, chatMessage{Role: RoleUser, Content: input.InputText})
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
