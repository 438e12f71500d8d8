package models

import "strings"

// Metadata keys carried in span.metadata_attributes.
const (
	MetaResponseType  = "response_type"
	MetaIsAgentic     = "is_agentic"
	MetaTools         = "available_tools"
	MetaCost          = "cost"
	MetaModel         = "gen_ai.request.model"
	MetaInputTokens   = "gen_ai.usage.input_tokens"
	MetaOutputTokens  = "gen_ai.usage.output_tokens"
	MetaBacktest      = "backtest"
	MetaBacktestRunID = "backtest_run_id"
	MetaTuningTest    = "prompt_improvement_test"
)

// Response types observed on spans.
const (
	ResponseTypeToolCalls = "tool_calls"
	ResponseTypeText      = "text"
)

// Operations written on synthetic spans.
const (
	OperationPromptTuning   = "prompt_tuning"
	OperationBacktestPrefix = "backtest:"
)

// ResponseType returns the span's response_type attribute, or "".
func ResponseType(meta map[string]interface{}) string {
	s, _ := meta[MetaResponseType].(string)
	return s
}

// IsAgentic reports whether the span is agentic. A tool_calls response type
// always counts as agentic regardless of the is_agentic attribute.
func IsAgentic(meta map[string]interface{}) bool {
	if ResponseType(meta) == ResponseTypeToolCalls {
		return true
	}
	b, _ := meta[MetaIsAgentic].(bool)
	return b
}

// AvailableTools returns the tool definitions attached to the span, if any.
func AvailableTools(meta map[string]interface{}) []interface{} {
	tools, _ := meta[MetaTools].([]interface{})
	return tools
}

// Cost returns the stored per-call cost, if present.
func Cost(meta map[string]interface{}) (float64, bool) {
	return floatAttr(meta, MetaCost)
}

// Model returns the gen_ai request model recorded on the span.
func Model(meta map[string]interface{}) string {
	s, _ := meta[MetaModel].(string)
	return s
}

// IsSynthetic reports whether the span was created by the core itself during
// tuning or backtesting. Synthetic spans are excluded from every eligibility
// count and from all downstream analysis.
func IsSynthetic(operation string, meta map[string]interface{}) bool {
	if operation == OperationPromptTuning || strings.HasPrefix(operation, OperationBacktestPrefix) {
		return true
	}
	if b, _ := meta[MetaTuningTest].(bool); b {
		return true
	}
	if b, _ := meta[MetaBacktest].(bool); b {
		return true
	}
	return false
}

func floatAttr(meta map[string]interface{}, key string) (float64, bool) {
	switch v := meta[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// IntAttr reads an integer-valued metadata attribute. JSON decoding yields
// float64, so both forms are accepted.
func IntAttr(meta map[string]interface{}, key string) (int, bool) {
	f, ok := floatAttr(meta, key)
	if !ok {
		return 0, false
	}
	return int(f), true
}
