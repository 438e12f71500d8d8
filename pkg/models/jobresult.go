package models

// Keys of the job.result JSON column. The column carries the worker's input
// parameters, the validation stats captured at creation, and the final output
// stats or error.
const (
	ResultParameters      = "parameters"
	ResultValidationStats = "validation_stats"
	ResultError           = "error"
	ResultReason          = "reason"
	ResultStatusDetail    = "status_detail"

	// ResultScoredCountAtCreation is written by backtesting so the next
	// tick's threshold guard advances.
	ResultScoredCountAtCreation = "scored_count_at_creation"
)

// Keys of the suggestion.scores JSON column.
const (
	ScoresRecommendedModel = "recommended_model"
	ScoresAvgScoreOld      = "avg_score_old"
	ScoresAvgScoreNew      = "avg_score_new"
)

// NewJobResult builds the initial result payload stored when a job is created.
func NewJobResult(parameters, validationStats map[string]interface{}) map[string]interface{} {
	result := map[string]interface{}{}
	if parameters != nil {
		result[ResultParameters] = parameters
	}
	if validationStats != nil {
		result[ResultValidationStats] = validationStats
	}
	return result
}

// JobParameters extracts the parameters sub-object from a job result.
func JobParameters(result map[string]interface{}) map[string]interface{} {
	if result == nil {
		return nil
	}
	params, _ := result[ResultParameters].(map[string]interface{})
	return params
}

// MergeJobResult overlays output fields onto an existing result payload
// without dropping the creation-time parameters and validation stats.
func MergeJobResult(existing, output map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(existing)+len(output))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range output {
		merged[k] = v
	}
	return merged
}
