// Package recommend turns per-model backtest metrics into a switch verdict.
package recommend

import (
	"fmt"
	"sort"

	"github.com/promptlens/promptlens/pkg/config"
)

// Verdicts surfaced on model-swap suggestions.
const (
	VerdictSwitchRecommended    = "switch_recommended"
	VerdictConsiderTopPerformer = "consider_top_performer"
	VerdictCurrentIsBest        = "current_is_best"
)

// ModelMetrics aggregates one model's replay outcomes. Scores are in [0, 1];
// latency is milliseconds; cost is per-call dollars.
type ModelMetrics struct {
	Model        string  `json:"model"`
	AvgScore     float64 `json:"avg_score"`
	AvgLatencyMS float64 `json:"avg_latency_ms"`
	AvgCost      float64 `json:"avg_cost"`
	TotalCost    float64 `json:"total_cost"`
	AvgTokens    float64 `json:"avg_tokens"`
	SuccessRate  float64 `json:"success_rate"`
}

// Recommendation is the recommender verdict.
type Recommendation struct {
	Verdict          string   `json:"verdict"`
	Summary          string   `json:"summary"`
	RecommendedModel string   `json:"recommended_model,omitempty"`
	TopPerformer     string   `json:"top_performer,omitempty"`
	Fastest          string   `json:"fastest,omitempty"`
	Cheapest         string   `json:"cheapest,omitempty"`
	BestOverall      string   `json:"best_overall,omitempty"`
	Disqualified     []string `json:"disqualified,omitempty"`
}

// ToMap encodes the recommendation for the suggestion JSON column.
func (r Recommendation) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"verdict": r.Verdict,
		"summary": r.Summary,
	}
	if r.RecommendedModel != "" {
		m["recommended_model"] = r.RecommendedModel
	}
	if r.TopPerformer != "" {
		m["top_performer"] = r.TopPerformer
	}
	if r.Fastest != "" {
		m["fastest"] = r.Fastest
	}
	if r.Cheapest != "" {
		m["cheapest"] = r.Cheapest
	}
	if r.BestOverall != "" {
		m["best_overall"] = r.BestOverall
	}
	if len(r.Disqualified) > 0 {
		m["disqualified"] = r.Disqualified
	}
	return m
}

// Recommend compares candidate models against the baseline (current) model.
//
// Candidates whose score drops more than ScoreDropDisqualifyPct percentage
// points below baseline are disqualified outright. Fastest, cheapest and
// best-overall only consider candidates within ScoreTolerancePct of the
// baseline score. The composite ranking weighs score improvement three times
// as heavily as latency and cost improvements.
func Recommend(baseline ModelMetrics, candidates []ModelMetrics) Recommendation {
	rec := Recommendation{}

	var qualified []ModelMetrics
	for _, c := range candidates {
		dropPP := (baseline.AvgScore - c.AvgScore) * 100
		if dropPP > config.ScoreDropDisqualifyPct {
			rec.Disqualified = append(rec.Disqualified, c.Model)
			continue
		}
		qualified = append(qualified, c)
	}
	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].AvgScore > qualified[j].AvgScore
	})

	if len(qualified) > 0 && qualified[0].AvgScore > baseline.AvgScore {
		rec.TopPerformer = qualified[0].Model
	}

	var within []ModelMetrics
	for _, c := range qualified {
		if (baseline.AvgScore-c.AvgScore)*100 <= config.ScoreTolerancePct {
			within = append(within, c)
		}
	}

	bestComposite := 0.0
	for _, c := range within {
		if rec.Fastest == "" || c.AvgLatencyMS < metricsFor(within, rec.Fastest).AvgLatencyMS {
			rec.Fastest = c.Model
		}
		if rec.Cheapest == "" || c.AvgCost < metricsFor(within, rec.Cheapest).AvgCost {
			rec.Cheapest = c.Model
		}
		weighted := composite(baseline, c)
		if weighted > bestComposite {
			bestComposite = weighted
			rec.BestOverall = c.Model
		}
	}

	switch {
	case rec.BestOverall != "":
		rec.Verdict = VerdictSwitchRecommended
		rec.RecommendedModel = rec.BestOverall
		rec.Summary = fmt.Sprintf(
			"%s outperforms the current model on the weighted score/latency/cost composite (baseline score %.2f)",
			rec.BestOverall, baseline.AvgScore)
	case rec.TopPerformer != "":
		rec.Verdict = VerdictConsiderTopPerformer
		rec.RecommendedModel = rec.TopPerformer
		rec.Summary = fmt.Sprintf(
			"%s scores above the current model but offers no overall gain; consider it if quality matters most",
			rec.TopPerformer)
	default:
		rec.Verdict = VerdictCurrentIsBest
		rec.Summary = fmt.Sprintf(
			"no candidate beats the current model (baseline score %.2f); keeping it",
			baseline.AvgScore)
	}
	return rec
}

// composite is 3·Δscore% + 1·Δlatency% + 1·Δcost%, where latency and cost
// deltas are positive when the candidate is faster or cheaper.
func composite(baseline, c ModelMetrics) float64 {
	scorePct := (c.AvgScore - baseline.AvgScore) * 100
	latencyPct := 0.0
	if baseline.AvgLatencyMS > 0 {
		latencyPct = (baseline.AvgLatencyMS - c.AvgLatencyMS) / baseline.AvgLatencyMS * 100
	}
	costPct := 0.0
	if baseline.AvgCost > 0 {
		costPct = (baseline.AvgCost - c.AvgCost) / baseline.AvgCost * 100
	}
	return 3*scorePct + latencyPct + costPct
}

func metricsFor(list []ModelMetrics, model string) ModelMetrics {
	for _, m := range list {
		if m.Model == model {
			return m
		}
	}
	return ModelMetrics{}
}
