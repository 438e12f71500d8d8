package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
)

func TestCountsExcludeSynthetic(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)
	promptID := models.ComposePromptID(p.ID, 1, "greeter")

	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID)
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetOperation(models.OperationPromptTuning)
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetOperation("backtest:gpt-4o-mini")
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetMetadataAttributes(map[string]interface{}{
			models.MetaBacktest: true,
		})
	})

	n, err := svc.Spans.CountForProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.Spans.CountForSlug(ctx, p.ID, "greeter")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = svc.Spans.CountForPrompt(ctx, promptID)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestCountForSlugSpansVersions(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)

	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(models.ComposePromptID(p.ID, 1, "greeter"))
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(models.ComposePromptID(p.ID, 2, "greeter"))
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(models.ComposePromptID(p.ID, 1, "summarizer"))
	})

	n, err := svc.Spans.CountForSlug(ctx, p.ID, "greeter")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestListUnmappedOrdersOldestFirst(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)

	older := createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetCreatedAt(time.Now().Add(-time.Hour))
	})
	newer := createSpan(t, client, p.ID, tr.ID, nil)
	// Already mapped, must not show up.
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(models.ComposePromptID(p.ID, 1, "greeter"))
	})

	unmapped, err := svc.Spans.ListUnmapped(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, unmapped, 2)
	assert.Equal(t, older.ID, unmapped[0].ID)
	assert.Equal(t, newer.ID, unmapped[1].ID)
}

func TestSetMappingStripsNULs(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)
	sp := createSpan(t, client, p.ID, tr.ID, nil)
	promptID := models.ComposePromptID(p.ID, 1, "greeter")

	err := svc.Spans.SetMapping(ctx, sp.ID, promptID, map[string]string{
		"var_0": "Ada\x00 Lovelace",
	})
	require.NoError(t, err)

	reloaded, err := svc.Spans.Get(ctx, sp.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.PromptID)
	assert.Equal(t, promptID, *reloaded.PromptID)
	assert.Equal(t, "Ada Lovelace", reloaded.InputParams["var_0"])

	assert.ErrorIs(t, svc.Spans.SetMapping(ctx, "missing", promptID, nil), services.ErrNotFound)
}

func TestListUnscoredSkipsScoredAndSynthetic(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)
	promptID := models.ComposePromptID(p.ID, 1, "greeter")

	first := createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetCreatedAt(time.Now().Add(-2 * time.Hour))
	})
	second := createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetCreatedAt(time.Now().Add(-time.Hour))
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetFeedbackScore(scored(0.9))
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetOperation(models.OperationPromptTuning)
	})

	unscored, err := svc.Spans.ListUnscored(ctx, promptID, 10)
	require.NoError(t, err)
	require.Len(t, unscored, 2)
	assert.Equal(t, first.ID, unscored[0].ID)
	assert.Equal(t, second.ID, unscored[1].ID)

	capped, err := svc.Spans.ListUnscored(ctx, promptID, 1)
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, first.ID, capped[0].ID)
}

func TestListScoredNewestFirst(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)
	promptID := models.ComposePromptID(p.ID, 1, "greeter")

	older := createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetFeedbackScore(scored(0.5)).
			SetCreatedAt(time.Now().Add(-time.Hour))
	})
	newer := createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetFeedbackScore(scored(0.8))
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID) // unscored
	})

	spans, err := svc.Spans.ListScored(ctx, promptID, 0)
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, newer.ID, spans[0].ID)
	assert.Equal(t, older.ID, spans[1].ID)

	n, err := svc.Spans.CountScored(ctx, promptID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestSetCorrectnessClampsAndKeepsUserFeedback(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)
	sp := createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetFeedbackScore(map[string]interface{}{
			"agent_feedback": map[string]interface{}{"rating": 1, "text": "solid answer"},
		})
	})

	require.NoError(t, svc.Spans.SetCorrectness(ctx, sp.ID, 1.7, &models.Feedback{
		Rating: 1, Text: "fully correct",
	}))

	reloaded, err := svc.Spans.Get(ctx, sp.ID)
	require.NoError(t, err)
	fs, err := models.FeedbackScoreFromMap(reloaded.FeedbackScore)
	require.NoError(t, err)
	require.NotNil(t, fs.Correctness)
	assert.Equal(t, 1.0, *fs.Correctness)
	require.NotNil(t, fs.JudgeFeedback)
	assert.Equal(t, "fully correct", fs.JudgeFeedback.Text)
	require.NotNil(t, fs.AgentFeedback)
	assert.Equal(t, "solid answer", fs.AgentFeedback.Text)

	require.NoError(t, svc.Spans.SetCorrectness(ctx, sp.ID, -0.4, nil))
	reloaded, err = svc.Spans.Get(ctx, sp.ID)
	require.NoError(t, err)
	fs, err = models.FeedbackScoreFromMap(reloaded.FeedbackScore)
	require.NoError(t, err)
	assert.Equal(t, 0.0, *fs.Correctness)
}

func TestAdoptionRatioOverScoredSpansOnly(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)
	v1 := models.ComposePromptID(p.ID, 1, "greeter")
	v2 := models.ComposePromptID(p.ID, 2, "greeter")

	// Three scored spans: two on v2, one on v1.
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(v2).SetFeedbackScore(scored(0.9))
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(v2).SetFeedbackScore(scored(0.7))
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(v1).SetFeedbackScore(scored(0.4))
	})
	// Unscored and synthetic spans never enter the denominator.
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(v2)
	})
	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(v2).SetFeedbackScore(scored(1)).
			SetOperation(models.OperationPromptTuning)
	})

	ratio, err := svc.Spans.AdoptionRatio(ctx, p.ID, "greeter", 2)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, ratio, 1e-9)

	empty, err := svc.Spans.AdoptionRatio(ctx, p.ID, "summarizer", 1)
	require.NoError(t, err)
	assert.Zero(t, empty)
}

func TestHasActivitySinceIgnoresSynthetic(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	tr := createTrace(t, client, p.ID)
	promptID := models.ComposePromptID(p.ID, 1, "greeter")
	cutoff := time.Now().Add(-time.Hour)

	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID).SetOperation(models.OperationPromptTuning)
	})
	active, err := svc.Spans.HasActivitySince(ctx, p.ID, "greeter", cutoff)
	require.NoError(t, err)
	assert.False(t, active)

	createSpan(t, client, p.ID, tr.ID, func(b *ent.SpanCreate) {
		b.SetPromptID(promptID)
	})
	active, err = svc.Spans.HasActivitySince(ctx, p.ID, "greeter", cutoff)
	require.NoError(t, err)
	assert.True(t, active)
}

func TestCreateSyntheticAndListForBacktestRun(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)
	promptID := models.ComposePromptID(p.ID, 1, "greeter")

	sp, err := svc.Spans.CreateSynthetic(ctx, services.CreateSyntheticInput{
		ProjectID: p.ID,
		PromptID:  promptID,
		Operation: models.OperationBacktestPrefix + "gpt-4o-mini",
		Input:     "Hello Ada\x00, welcome!",
		Metadata: map[string]interface{}{
			models.MetaBacktest:      true,
			models.MetaBacktestRunID: "run-1",
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Hello Ada, welcome!", sp.Input)
	assert.True(t, models.IsSynthetic(sp.Operation, sp.MetadataAttributes))

	// A second run's spans stay separate.
	_, err = svc.Spans.CreateSynthetic(ctx, services.CreateSyntheticInput{
		ProjectID: p.ID,
		PromptID:  promptID,
		Operation: models.OperationBacktestPrefix + "gpt-4o-mini",
		Input:     "Hi again",
		Metadata: map[string]interface{}{
			models.MetaBacktest:      true,
			models.MetaBacktestRunID: "run-2",
		},
	})
	require.NoError(t, err)

	spans, err := svc.Spans.ListForBacktestRun(ctx, p.ID, "run-1")
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, sp.ID, spans[0].ID)
}
