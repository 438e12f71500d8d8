package models

// AgentDescription is the prompt.agent_description JSON column.
type AgentDescription struct {
	Description            string                   `json:"description,omitempty"`
	LastReviewSpanCount    int                      `json:"last_review_span_count"`
	NextReviewSpanCount    int                      `json:"next_review_span_count"`
	FeedbackHistory        []map[string]interface{} `json:"feedback_history,omitempty"`
	InitialReviewCompleted bool                     `json:"initial_review_completed,omitempty"`
}

// AgentDescriptionFromMap decodes the JSON column value.
func AgentDescriptionFromMap(m map[string]interface{}) (*AgentDescription, error) {
	return decodeMap[AgentDescription](m)
}

// ToMap encodes for storage in the JSON column.
func (d *AgentDescription) ToMap() (map[string]interface{}, error) {
	return encodeMap(d)
}

// ImprovementRecord is one entry in improvement_history.
type ImprovementRecord struct {
	Version        int     `json:"version"`
	SpanCount      int     `json:"span_count"`
	AvgScoreOld    float64 `json:"avg_score_old"`
	AvgScoreNew    float64 `json:"avg_score_new"`
	CreatedAtEpoch int64   `json:"created_at"`
}

// ImprovementMetadata is the prompt.improvement_metadata JSON column.
type ImprovementMetadata struct {
	LastImprovementSpanCount int                 `json:"last_improvement_span_count"`
	ImprovementHistory       []ImprovementRecord `json:"improvement_history,omitempty"`
	CriteriaInvalidated      bool                `json:"criteria_invalidated,omitempty"`
}

// ImprovementMetadataFromMap decodes the JSON column value.
func ImprovementMetadataFromMap(m map[string]interface{}) (*ImprovementMetadata, error) {
	return decodeMap[ImprovementMetadata](m)
}

// ToMap encodes for storage in the JSON column.
func (im *ImprovementMetadata) ToMap() (map[string]interface{}, error) {
	return encodeMap(im)
}

// EvaluationCriteria extracts the correctness rules from the
// prompt.evaluation_criteria JSON column. Returns nil when absent or empty.
func EvaluationCriteria(criteria map[string]interface{}) []string {
	if criteria == nil {
		return nil
	}
	raw, ok := criteria["correctness"].([]interface{})
	if !ok || len(raw) == 0 {
		return nil
	}
	rules := make([]string, 0, len(raw))
	for _, r := range raw {
		if s, ok := r.(string); ok && s != "" {
			rules = append(rules, s)
		}
	}
	if len(rules) == 0 {
		return nil
	}
	return rules
}
