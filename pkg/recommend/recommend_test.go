package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func baseline() ModelMetrics {
	return ModelMetrics{
		Model:        "gpt-5-mini",
		AvgScore:     0.70,
		AvgLatencyMS: 1200,
		AvgCost:      0.010,
	}
}

func TestRecommendSwitchWhenCandidateDominates(t *testing.T) {
	rec := Recommend(baseline(), []ModelMetrics{
		{Model: "claude-haiku-4-5", AvgScore: 0.78, AvgLatencyMS: 800, AvgCost: 0.004},
	})

	assert.Equal(t, VerdictSwitchRecommended, rec.Verdict)
	assert.Equal(t, "claude-haiku-4-5", rec.RecommendedModel)
	assert.Equal(t, "claude-haiku-4-5", rec.BestOverall)
	assert.Equal(t, "claude-haiku-4-5", rec.TopPerformer)
}

func TestRecommendDisqualifiesBigScoreDrop(t *testing.T) {
	rec := Recommend(baseline(), []ModelMetrics{
		{Model: "cheapo", AvgScore: 0.50, AvgLatencyMS: 100, AvgCost: 0.0001},
	})

	assert.Equal(t, VerdictCurrentIsBest, rec.Verdict)
	assert.Contains(t, rec.Disqualified, "cheapo")
	assert.Empty(t, rec.RecommendedModel)
}

func TestRecommendCurrentIsBestWhenNoGain(t *testing.T) {
	rec := Recommend(baseline(), []ModelMetrics{
		{Model: "slower-twin", AvgScore: 0.70, AvgLatencyMS: 2400, AvgCost: 0.020},
	})

	assert.Equal(t, VerdictCurrentIsBest, rec.Verdict)
	assert.Empty(t, rec.TopPerformer)
}

func TestRecommendFastestAndCheapestWithinTolerance(t *testing.T) {
	rec := Recommend(baseline(), []ModelMetrics{
		{Model: "fast", AvgScore: 0.68, AvgLatencyMS: 300, AvgCost: 0.012},
		{Model: "cheap", AvgScore: 0.67, AvgLatencyMS: 1500, AvgCost: 0.001},
		{Model: "off-band", AvgScore: 0.60, AvgLatencyMS: 100, AvgCost: 0.0001},
	})

	assert.Equal(t, "fast", rec.Fastest)
	assert.Equal(t, "cheap", rec.Cheapest)
	assert.NotContains(t, rec.Disqualified, "off-band")
}

func TestRecommendConsiderTopPerformer(t *testing.T) {
	// Higher score but latency and cost regressions outweigh it in the
	// composite.
	rec := Recommend(baseline(), []ModelMetrics{
		{Model: "premium", AvgScore: 0.71, AvgLatencyMS: 6000, AvgCost: 0.100},
	})

	assert.Equal(t, VerdictConsiderTopPerformer, rec.Verdict)
	assert.Equal(t, "premium", rec.RecommendedModel)
	assert.Equal(t, "premium", rec.TopPerformer)
	assert.Empty(t, rec.BestOverall)
}

func TestRecommendationToMap(t *testing.T) {
	rec := Recommend(baseline(), []ModelMetrics{
		{Model: "claude-haiku-4-5", AvgScore: 0.78, AvgLatencyMS: 800, AvgCost: 0.004},
	})

	m := rec.ToMap()
	assert.Equal(t, VerdictSwitchRecommended, m["verdict"])
	assert.Equal(t, "claude-haiku-4-5", m["recommended_model"])
	assert.NotEmpty(t, m["summary"])
}
