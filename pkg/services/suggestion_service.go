package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/prompt"
	"github.com/promptlens/promptlens/ent/suggestion"
	"github.com/promptlens/promptlens/pkg/models"
)

// SuggestionService manages surfaced recommendations and their user actions.
type SuggestionService struct {
	client *ent.Client
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(client *ent.Client) *SuggestionService {
	return &SuggestionService{client: client}
}

// Get loads a suggestion by id.
func (s *SuggestionService) Get(ctx context.Context, id string) (*ent.Suggestion, error) {
	sg, err := s.client.Suggestion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load suggestion: %w", err)
	}
	return sg, nil
}

// ListByProject returns a project's suggestions, newest first.
func (s *SuggestionService) ListByProject(ctx context.Context, projectID string) ([]*ent.Suggestion, error) {
	out, err := s.client.Suggestion.Query().
		Where(suggestion.ProjectIDEQ(projectID)).
		Order(ent.Desc(suggestion.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return out, nil
}

// CreateSuggestionInput carries a new recommendation.
type CreateSuggestionInput struct {
	ProjectID        string
	PromptSlug       string
	NewPromptText    *string
	NewPromptVersion *int
	Scores           map[string]interface{}
	Recommendations  map[string]interface{}
}

// Create inserts a pending suggestion.
func (s *SuggestionService) Create(ctx context.Context, in CreateSuggestionInput) (*ent.Suggestion, error) {
	builder := s.client.Suggestion.Create().
		SetID(uuid.New().String()).
		SetProjectID(in.ProjectID).
		SetPromptSlug(in.PromptSlug).
		SetStatus(suggestion.StatusPending)
	if in.NewPromptText != nil {
		builder.SetNewPromptText(*in.NewPromptText)
	}
	if in.NewPromptVersion != nil {
		builder.SetNewPromptVersion(*in.NewPromptVersion)
	}
	if in.Scores != nil {
		builder.SetScores(in.Scores)
	}
	if in.Recommendations != nil {
		builder.SetRecommendations(in.Recommendations)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}
	return created, nil
}

// Accept marks a suggestion accepted and, for prompt-version suggestions,
// activates the proposed version in the same transaction. Accepting an
// already-accepted suggestion is a no-op.
func (s *SuggestionService) Accept(ctx context.Context, id string) (*ent.Suggestion, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sg, err := tx.Suggestion.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load suggestion: %w", err)
	}
	if sg.Status == suggestion.StatusAccepted {
		return sg, nil
	}

	if sg.NewPromptVersion != nil {
		if err := activateVersionTx(ctx, tx, sg.ProjectID, sg.PromptSlug, *sg.NewPromptVersion); err != nil {
			return nil, err
		}
	}

	updated, err := sg.Update().
		SetStatus(suggestion.StatusAccepted).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to accept suggestion: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit acceptance: %w", err)
	}
	return updated, nil
}

// Dismiss marks a suggestion dismissed. Version activation is never undone:
// dismissing an accepted suggestion only changes its status.
func (s *SuggestionService) Dismiss(ctx context.Context, id string) (*ent.Suggestion, error) {
	sg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sg.Status == suggestion.StatusDismissed {
		return sg, nil
	}
	updated, err := sg.Update().
		SetStatus(suggestion.StatusDismissed).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to dismiss suggestion: %w", err)
	}
	return updated, nil
}

// Vote records a -1/0/+1 vote with optional free-text feedback.
func (s *SuggestionService) Vote(ctx context.Context, id string, vote int, feedback *string) (*ent.Suggestion, error) {
	if vote < -1 || vote > 1 {
		return nil, NewValidationError("vote", "must be -1, 0, or 1")
	}

	sg, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	builder := sg.Update().SetVote(vote)
	if feedback != nil {
		builder.SetFeedback(*feedback)
	}
	updated, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record vote: %w", err)
	}
	return updated, nil
}

// RecommendedModel extracts the recommended model from a model-swap
// suggestion's scores payload, or "".
func RecommendedModel(sg *ent.Suggestion) string {
	if sg.Scores == nil {
		return ""
	}
	m, _ := sg.Scores[models.ScoresRecommendedModel].(string)
	return m
}

// activateVersionTx is the in-transaction form of prompt version activation
// so suggestion acceptance stays atomic.
func activateVersionTx(ctx context.Context, tx *ent.Tx, projectID, slug string, version int) error {
	if _, err := tx.Prompt.Update().
		Where(
			prompt.ProjectIDEQ(projectID),
			prompt.SlugEQ(slug),
			prompt.VersionNEQ(version),
		).
		SetIsActive(false).
		Save(ctx); err != nil {
		return fmt.Errorf("failed to deactivate versions: %w", err)
	}

	n, err := tx.Prompt.Update().
		Where(
			prompt.ProjectIDEQ(projectID),
			prompt.SlugEQ(slug),
			prompt.VersionEQ(version),
		).
		SetIsActive(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to activate version: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
