package gates

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/job"
)

type fakeSpanStore struct {
	projectSpans int
	unmapped     []*ent.Span
	unscored     []*ent.Span
	scored       int
	active       bool
	adoption     float64
}

func (f *fakeSpanStore) CountForProject(context.Context, string) (int, error) {
	return f.projectSpans, nil
}

func (f *fakeSpanStore) ListUnmapped(context.Context, string) ([]*ent.Span, error) {
	return f.unmapped, nil
}

func (f *fakeSpanStore) ListUnscored(_ context.Context, _ string, limit int) ([]*ent.Span, error) {
	if len(f.unscored) > limit {
		return f.unscored[:limit], nil
	}
	return f.unscored, nil
}

func (f *fakeSpanStore) CountScored(context.Context, string) (int, error) {
	return f.scored, nil
}

func (f *fakeSpanStore) HasActivitySince(context.Context, string, string, time.Time) (bool, error) {
	return f.active, nil
}

func (f *fakeSpanStore) AdoptionRatio(context.Context, string, string, int) (float64, error) {
	return f.adoption, nil
}

type fakeJobStore struct {
	inFlight          map[job.Type]bool
	lastBacktestCount int
}

func (f *fakeJobStore) HasInFlightForScope(_ context.Context, t job.Type, _ string, _ *string) (bool, error) {
	return f.inFlight[t], nil
}

func (f *fakeJobStore) LastBacktestScoredCount(context.Context, string, string) (int, error) {
	return f.lastBacktestCount, nil
}

func spansWithInput(n int) []*ent.Span {
	out := make([]*ent.Span, n)
	for i := range out {
		out[i] = &ent.Span{Input: "What is the refund policy?"}
	}
	return out
}

func promptWithCriteria() *ent.Prompt {
	return &ent.Prompt{
		ID:        "proj_1_agent-abc",
		ProjectID: "proj",
		Slug:      "agent-abc",
		Version:   1,
		EvaluationCriteria: map[string]interface{}{
			"correctness": []interface{}{"answer must cite the policy"},
		},
	}
}

func TestDiscoveryEligible(t *testing.T) {
	g := New(
		&fakeSpanStore{projectSpans: 25, unmapped: spansWithInput(3)},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Discovery(context.Background(), "proj")
	require.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Equal(t, 25, res.Stats["total_spans"])
	assert.Equal(t, 3, res.Stats["unmapped_spans"])
}

func TestDiscoveryBlockedByTotalSpans(t *testing.T) {
	g := New(
		&fakeSpanStore{projectSpans: 4, unmapped: spansWithInput(4)},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Discovery(context.Background(), "proj")
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "need 10")
}

func TestDiscoveryBlockedByUnusableInput(t *testing.T) {
	g := New(
		&fakeSpanStore{projectSpans: 25, unmapped: []*ent.Span{{Input: "  "}, {Input: ""}}},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Discovery(context.Background(), "proj")
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "usable input")
}

func TestDiscoveryBlockedByInFlightJob(t *testing.T) {
	g := New(
		&fakeSpanStore{projectSpans: 25, unmapped: spansWithInput(3)},
		&fakeJobStore{inFlight: map[job.Type]bool{job.TypeAgentDiscovery: true}},
	)

	res, err := g.Discovery(context.Background(), "proj")
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.True(t, InProgress(res.Reason))
}

func TestScoringEligible(t *testing.T) {
	g := New(
		&fakeSpanStore{unscored: spansWithInput(12)},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Scoring(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.True(t, res.Eligible)
}

func TestScoringBlockedWithoutCriteria(t *testing.T) {
	g := New(
		&fakeSpanStore{unscored: spansWithInput(12)},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	p := promptWithCriteria()
	p.EvaluationCriteria = nil
	res, err := g.Scoring(context.Background(), p)
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "criteria")
}

func TestScoringBlockedByTooFewUnscored(t *testing.T) {
	g := New(
		&fakeSpanStore{unscored: spansWithInput(7)},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Scoring(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, 7, res.Stats["unscored_spans"])
}

func TestTuningEligible(t *testing.T) {
	g := New(
		&fakeSpanStore{active: true, scored: 60, adoption: 0.8},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Tuning(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.True(t, res.Eligible)
	assert.Equal(t, 50, res.Stats["next_threshold"])
}

func TestTuningBlockedBelowThreshold(t *testing.T) {
	g := New(
		&fakeSpanStore{active: true, scored: 30, adoption: 0.8},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Tuning(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "next threshold 50")
}

func TestTuningBlockedByLowAdoption(t *testing.T) {
	g := New(
		&fakeSpanStore{active: true, scored: 60, adoption: 0.1},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Tuning(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "adoption")
}

func TestTuningBlockedWithoutActivity(t *testing.T) {
	g := New(
		&fakeSpanStore{active: false, scored: 60, adoption: 0.8},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Tuning(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Contains(t, res.Reason, "activity window")
}

func TestBacktestingEligibleFirstRun(t *testing.T) {
	g := New(
		&fakeSpanStore{active: true, scored: 55},
		&fakeJobStore{inFlight: map[job.Type]bool{}},
	)

	res, err := g.Backtesting(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.True(t, res.Eligible)
}

func TestBacktestingLadderAdvances(t *testing.T) {
	g := New(
		&fakeSpanStore{active: true, scored: 55},
		&fakeJobStore{inFlight: map[job.Type]bool{}, lastBacktestCount: 55},
	)

	res, err := g.Backtesting(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.Equal(t, 100, res.Stats["next_threshold"])
}

func TestBacktestingBlockedByInFlight(t *testing.T) {
	g := New(
		&fakeSpanStore{active: true, scored: 55},
		&fakeJobStore{inFlight: map[job.Type]bool{job.TypeModelBacktesting: true}},
	)

	res, err := g.Backtesting(context.Background(), promptWithCriteria())
	require.NoError(t, err)
	assert.False(t, res.Eligible)
	assert.True(t, InProgress(res.Reason))
}
