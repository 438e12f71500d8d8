package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/services"
)

func TestCreateVersionComposesIDAndHash(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	created, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   1,
		Content:   "Hello {var_0}, welcome!",
		Active:    true,
	})
	require.NoError(t, err)

	assert.Equal(t, models.ComposePromptID(p.ID, 1, "greeter"), created.ID)
	assert.NotEmpty(t, created.ContentHash)

	// Same content yields the same hash on a new version.
	v2, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   2,
		Content:   "Hello {var_0}, welcome!",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ContentHash, v2.ContentHash)

	found, err := svc.Prompts.FindByContentHash(ctx, p.ID, created.ContentHash)
	require.NoError(t, err)
	assert.Contains(t, []string{created.ID, v2.ID}, found.ID)
}

func TestActivateVersionKeepsSingleActive(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	for v, content := range map[int]string{1: "one", 2: "two", 3: "three"} {
		_, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
			ProjectID: p.ID,
			Slug:      "greeter",
			Version:   v,
			Content:   content,
			Active:    v == 1,
		})
		require.NoError(t, err)
	}

	require.NoError(t, svc.Prompts.ActivateVersion(ctx, p.ID, "greeter", 3))

	active := 0
	for v := 1; v <= 3; v++ {
		pv, err := svc.Prompts.GetVersion(ctx, p.ID, "greeter", v)
		require.NoError(t, err)
		if pv.IsActive {
			active++
			assert.Equal(t, 3, pv.Version)
		}
	}
	assert.Equal(t, 1, active)

	// Activating a missing version fails without touching the current one.
	err := svc.Prompts.ActivateVersion(ctx, p.ID, "greeter", 9)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSetEvaluationCriteriaRollsBackLadder(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	created, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   1,
		Content:   "hi",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Prompts.UpdateImprovementMetadata(ctx, created.ID, &models.ImprovementMetadata{
		LastImprovementSpanCount: 200,
	}))

	require.NoError(t, svc.Prompts.SetEvaluationCriteria(ctx, created.ID, map[string]interface{}{
		"correctness": []string{"must be accurate"},
	}))

	reloaded, err := svc.Prompts.Get(ctx, created.ID)
	require.NoError(t, err)
	meta, err := models.ImprovementMetadataFromMap(reloaded.ImprovementMetadata)
	require.NoError(t, err)
	assert.Equal(t, 100, meta.LastImprovementSpanCount)
	assert.True(t, meta.CriteriaInvalidated)
	assert.Equal(t, []string{"must be accurate"}, models.EvaluationCriteria(reloaded.EvaluationCriteria))

	require.NoError(t, svc.Prompts.ClearCriteriaInvalidated(ctx, created.ID))
	reloaded, err = svc.Prompts.Get(ctx, created.ID)
	require.NoError(t, err)
	meta, err = models.ImprovementMetadataFromMap(reloaded.ImprovementMetadata)
	require.NoError(t, err)
	assert.False(t, meta.CriteriaInvalidated)
}

// Repeated edits before the next tuning pass roll the ladder back one rung
// total, not one rung per edit.
func TestRepeatedEditsRollBackLadderOnce(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	created, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   1,
		Content:   "hi",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Prompts.UpdateImprovementMetadata(ctx, created.ID, &models.ImprovementMetadata{
		LastImprovementSpanCount: 200,
	}))

	require.NoError(t, svc.Prompts.SetEvaluationCriteria(ctx, created.ID, map[string]interface{}{
		"correctness": []string{"must be accurate"},
	}))
	require.NoError(t, svc.Prompts.EditAgentDescription(ctx, created.ID, "Greets users by name", nil))
	require.NoError(t, svc.Prompts.SetEvaluationCriteria(ctx, created.ID, map[string]interface{}{
		"correctness": []string{"must be accurate and polite"},
	}))

	reloaded, err := svc.Prompts.Get(ctx, created.ID)
	require.NoError(t, err)
	meta, err := models.ImprovementMetadataFromMap(reloaded.ImprovementMetadata)
	require.NoError(t, err)
	assert.Equal(t, 100, meta.LastImprovementSpanCount)
	assert.True(t, meta.CriteriaInvalidated)

	// After scoring clears the flag, the next edit rolls back again.
	require.NoError(t, svc.Prompts.ClearCriteriaInvalidated(ctx, created.ID))
	require.NoError(t, svc.Prompts.EditAgentDescription(ctx, created.ID, "Greets users warmly", nil))
	reloaded, err = svc.Prompts.Get(ctx, created.ID)
	require.NoError(t, err)
	meta, err = models.ImprovementMetadataFromMap(reloaded.ImprovementMetadata)
	require.NoError(t, err)
	assert.Equal(t, 50, meta.LastImprovementSpanCount)
}

func TestEditAgentDescriptionAppendsFeedbackAndRollsBack(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	created, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   1,
		Content:   "hi",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Prompts.UpdateImprovementMetadata(ctx, created.ID, &models.ImprovementMetadata{
		LastImprovementSpanCount: 100,
	}))

	require.NoError(t, svc.Prompts.EditAgentDescription(ctx, created.ID, "Greets users by name", strPtr("too vague before")))

	reloaded, err := svc.Prompts.Get(ctx, created.ID)
	require.NoError(t, err)
	desc, err := models.AgentDescriptionFromMap(reloaded.AgentDescription)
	require.NoError(t, err)
	assert.Equal(t, "Greets users by name", desc.Description)
	require.Len(t, desc.FeedbackHistory, 1)
	assert.Equal(t, "too vague before", desc.FeedbackHistory[0]["feedback"])

	meta, err := models.ImprovementMetadataFromMap(reloaded.ImprovementMetadata)
	require.NoError(t, err)
	assert.Equal(t, 50, meta.LastImprovementSpanCount)
	assert.True(t, meta.CriteriaInvalidated)
}

func TestLatestVersionsReturnsHighestPerSlug(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	for _, v := range []struct {
		slug    string
		version int
	}{{"greeter", 1}, {"greeter", 2}, {"summarizer", 1}} {
		_, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
			ProjectID: p.ID,
			Slug:      v.slug,
			Version:   v.version,
			Content:   v.slug + "-content",
		})
		require.NoError(t, err)
	}

	latest, err := svc.Prompts.LatestVersions(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, latest, 2)

	bys := map[string]int{}
	for _, pr := range latest {
		bys[pr.Slug] = pr.Version
	}
	assert.Equal(t, 2, bys["greeter"])
	assert.Equal(t, 1, bys["summarizer"])
}

func TestEnsureUniqueSlugRegeneratesOnCollision(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	p := createProject(t, client)

	_, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
		ProjectID: p.ID,
		Slug:      "greeter",
		Version:   1,
		Content:   "hi",
	})
	require.NoError(t, err)

	slug, err := svc.Prompts.EnsureUniqueSlug(ctx, p.ID, "greeter")
	require.NoError(t, err)
	assert.NotEqual(t, "greeter", slug)
	assert.NotEmpty(t, slug)

	free, err := svc.Prompts.EnsureUniqueSlug(ctx, p.ID, "untaken")
	require.NoError(t, err)
	assert.Equal(t, "untaken", free)
}
