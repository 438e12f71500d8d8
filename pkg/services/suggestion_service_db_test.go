package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/suggestion"
	"github.com/promptlens/promptlens/pkg/services"
)

func intPtr(n int) *int { return &n }

func setupVersions(t *testing.T, svc *services.Services, client *ent.Client) (projectID string) {
	t.Helper()
	ctx := context.Background()
	p := createProject(t, client)
	for v := 1; v <= 2; v++ {
		_, err := svc.Prompts.CreateVersion(ctx, services.CreateVersionInput{
			ProjectID: p.ID,
			Slug:      "greeter",
			Version:   v,
			Content:   map[int]string{1: "old", 2: "new"}[v],
			Active:    v == 1,
		})
		require.NoError(t, err)
	}
	return p.ID
}

func TestAcceptActivatesProposedVersionOnce(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	projectID := setupVersions(t, svc, client)

	sg, err := svc.Suggestions.Create(ctx, services.CreateSuggestionInput{
		ProjectID:        projectID,
		PromptSlug:       "greeter",
		NewPromptText:    strPtr("new"),
		NewPromptVersion: intPtr(2),
	})
	require.NoError(t, err)

	accepted, err := svc.Suggestions.Accept(ctx, sg.ID)
	require.NoError(t, err)
	assert.Equal(t, suggestion.StatusAccepted, accepted.Status)

	v2, err := svc.Prompts.GetVersion(ctx, projectID, "greeter", 2)
	require.NoError(t, err)
	assert.True(t, v2.IsActive)
	v1, err := svc.Prompts.GetVersion(ctx, projectID, "greeter", 1)
	require.NoError(t, err)
	assert.False(t, v1.IsActive)

	// Second accept is a no-op.
	again, err := svc.Suggestions.Accept(ctx, sg.ID)
	require.NoError(t, err)
	assert.Equal(t, suggestion.StatusAccepted, again.Status)
}

func TestDismissNeverUndoesActivation(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	projectID := setupVersions(t, svc, client)

	sg, err := svc.Suggestions.Create(ctx, services.CreateSuggestionInput{
		ProjectID:        projectID,
		PromptSlug:       "greeter",
		NewPromptVersion: intPtr(2),
	})
	require.NoError(t, err)

	_, err = svc.Suggestions.Accept(ctx, sg.ID)
	require.NoError(t, err)

	dismissed, err := svc.Suggestions.Dismiss(ctx, sg.ID)
	require.NoError(t, err)
	assert.Equal(t, suggestion.StatusDismissed, dismissed.Status)

	v2, err := svc.Prompts.GetVersion(ctx, projectID, "greeter", 2)
	require.NoError(t, err)
	assert.True(t, v2.IsActive)
}

func TestVoteValidatesRangeAndStoresFeedback(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	projectID := setupVersions(t, svc, client)

	sg, err := svc.Suggestions.Create(ctx, services.CreateSuggestionInput{
		ProjectID:  projectID,
		PromptSlug: "greeter",
	})
	require.NoError(t, err)

	_, err = svc.Suggestions.Vote(ctx, sg.ID, 2, nil)
	assert.True(t, services.IsValidation(err))

	voted, err := svc.Suggestions.Vote(ctx, sg.ID, -1, strPtr("made things worse"))
	require.NoError(t, err)
	assert.Equal(t, -1, voted.Vote)
	require.NotNil(t, voted.Feedback)
	assert.Equal(t, "made things worse", *voted.Feedback)
}

func TestAcceptModelSwapSuggestionTouchesNoVersions(t *testing.T) {
	svc, client := newServices(t)
	ctx := context.Background()
	projectID := setupVersions(t, svc, client)

	sg, err := svc.Suggestions.Create(ctx, services.CreateSuggestionInput{
		ProjectID:  projectID,
		PromptSlug: "greeter",
		Scores:     map[string]interface{}{"recommended_model": "gpt-4o-mini"},
	})
	require.NoError(t, err)

	accepted, err := svc.Suggestions.Accept(ctx, sg.ID)
	require.NoError(t, err)
	assert.Equal(t, suggestion.StatusAccepted, accepted.Status)
	assert.Equal(t, "gpt-4o-mini", services.RecommendedModel(accepted))

	v1, err := svc.Prompts.GetVersion(ctx, projectID, "greeter", 1)
	require.NoError(t, err)
	assert.True(t, v1.IsActive)
}
