package models

import "encoding/json"

// Feedback is a user rating with optional free text.
type Feedback struct {
	Rating int    `json:"rating"`
	Text   string `json:"text,omitempty"`
}

// FeedbackScore is the span.feedback_score JSON column.
// correctness is set by judge scoring; the feedback fields by user action.
type FeedbackScore struct {
	Correctness   *float64  `json:"correctness,omitempty"`
	JudgeFeedback *Feedback `json:"judge_feedback,omitempty"`
	AgentFeedback *Feedback `json:"agent_feedback,omitempty"`
}

// FeedbackScoreFromMap decodes the JSON column value.
func FeedbackScoreFromMap(m map[string]interface{}) (*FeedbackScore, error) {
	return decodeMap[FeedbackScore](m)
}

// ToMap encodes for storage in the JSON column.
func (f *FeedbackScore) ToMap() (map[string]interface{}, error) {
	return encodeMap(f)
}

// decodeMap round-trips a JSON column value into a typed struct.
func decodeMap[T any](m map[string]interface{}) (*T, error) {
	var out T
	if m == nil {
		return &out, nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// encodeMap round-trips a typed struct into a JSON column value.
func encodeMap(v interface{}) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
