package services

import (
	"context"
	"fmt"
	"time"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/prompt"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/templates"
	"github.com/promptlens/promptlens/pkg/thresholds"
)

// PromptService manages prompt versions and their metadata columns.
type PromptService struct {
	client *ent.Client
}

// NewPromptService creates a new PromptService.
func NewPromptService(client *ent.Client) *PromptService {
	return &PromptService{client: client}
}

// Get loads a prompt by its composite id.
func (s *PromptService) Get(ctx context.Context, promptID string) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Get(ctx, promptID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load prompt: %w", err)
	}
	return p, nil
}

// GetLatest returns the highest version of a slug within a project.
func (s *PromptService) GetLatest(ctx context.Context, projectID, slug string) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			prompt.ProjectIDEQ(projectID),
			prompt.SlugEQ(slug),
		).
		Order(ent.Desc(prompt.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load latest prompt: %w", err)
	}
	return p, nil
}

// GetVersion returns one specific version of a slug.
func (s *PromptService) GetVersion(ctx context.Context, projectID, slug string, version int) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			prompt.ProjectIDEQ(projectID),
			prompt.SlugEQ(slug),
			prompt.VersionEQ(version),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load prompt version: %w", err)
	}
	return p, nil
}

// LatestVersions returns, for each slug in the project, its highest version.
func (s *PromptService) LatestVersions(ctx context.Context, projectID string) ([]*ent.Prompt, error) {
	all, err := s.client.Prompt.Query().
		Where(prompt.ProjectIDEQ(projectID)).
		Order(ent.Asc(prompt.FieldSlug), ent.Desc(prompt.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list prompts: %w", err)
	}

	latest := make([]*ent.Prompt, 0, len(all))
	seen := make(map[string]bool, len(all))
	for _, p := range all {
		if seen[p.Slug] {
			continue
		}
		seen[p.Slug] = true
		latest = append(latest, p)
	}
	return latest, nil
}

// FindByContentHash returns the existing prompt with the same template
// content, if any. Used to deduplicate discovery output.
func (s *PromptService) FindByContentHash(ctx context.Context, projectID, hash string) (*ent.Prompt, error) {
	p, err := s.client.Prompt.Query().
		Where(
			prompt.ProjectIDEQ(projectID),
			prompt.ContentHashEQ(hash),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query prompt by hash: %w", err)
	}
	return p, nil
}

// NextVersion returns max(version)+1 for the slug, or 1 when none exist.
func (s *PromptService) NextVersion(ctx context.Context, projectID, slug string) (int, error) {
	latest, err := s.GetLatest(ctx, projectID, slug)
	if err != nil {
		if err == ErrNotFound {
			return 1, nil
		}
		return 0, err
	}
	return latest.Version + 1, nil
}

// CreateVersionInput carries a new prompt version.
type CreateVersionInput struct {
	ProjectID   string
	Slug        string
	Version     int
	Content     string
	DisplayName *string
	Tags        []string
	Criteria    map[string]interface{}
	Active      bool
}

// CreateVersion inserts a new prompt version. The composite id and content
// hash are derived here so all call sites agree on them.
func (s *PromptService) CreateVersion(ctx context.Context, in CreateVersionInput) (*ent.Prompt, error) {
	if in.Version < 1 {
		return nil, NewValidationError("version", "must be >= 1")
	}
	builder := s.client.Prompt.Create().
		SetID(models.ComposePromptID(in.ProjectID, in.Version, in.Slug)).
		SetProjectID(in.ProjectID).
		SetSlug(in.Slug).
		SetVersion(in.Version).
		SetContent(in.Content).
		SetContentHash(templates.ContentHash(in.Content)).
		SetIsActive(in.Active)
	if in.DisplayName != nil {
		builder.SetDisplayName(*in.DisplayName)
	}
	if len(in.Tags) > 0 {
		builder.SetTags(in.Tags)
	}
	if in.Criteria != nil {
		builder.SetEvaluationCriteria(in.Criteria)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt version: %w", err)
	}
	return created, nil
}

// ActivateVersion makes the given version the only active one for its slug,
// in one transaction.
func (s *PromptService) ActivateVersion(ctx context.Context, projectID, slug string, version int) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := activateVersionTx(ctx, tx, projectID, slug, version); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activation: %w", err)
	}
	return nil
}

// UpdateImprovementMetadata overwrites the improvement_metadata column.
func (s *PromptService) UpdateImprovementMetadata(ctx context.Context, promptID string, meta *models.ImprovementMetadata) error {
	m, err := meta.ToMap()
	if err != nil {
		return fmt.Errorf("failed to encode improvement metadata: %w", err)
	}
	if err := s.client.Prompt.UpdateOneID(promptID).
		SetImprovementMetadata(m).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update improvement metadata: %w", err)
	}
	return nil
}

// UpdateAgentDescription overwrites the agent_description column.
func (s *PromptService) UpdateAgentDescription(ctx context.Context, promptID string, desc *models.AgentDescription) error {
	m, err := desc.ToMap()
	if err != nil {
		return fmt.Errorf("failed to encode agent description: %w", err)
	}
	if err := s.client.Prompt.UpdateOneID(promptID).
		SetAgentDescription(m).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update agent description: %w", err)
	}
	return nil
}

// SetCriteria overwrites evaluation_criteria without touching the
// improvement ladder. Used for machine-generated initial criteria; user
// edits go through SetEvaluationCriteria, which applies the invalidation
// rollback.
func (s *PromptService) SetCriteria(ctx context.Context, promptID string, criteria map[string]interface{}) error {
	if err := s.client.Prompt.UpdateOneID(promptID).
		SetEvaluationCriteria(criteria).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set criteria: %w", err)
	}
	return nil
}

// SetEvaluationCriteria replaces the evaluation criteria on a prompt and
// rolls the improvement ladder back one rung so the edited criteria get
// exercised on the next improvement pass. Existing scores are flagged stale
// via criteria_invalidated.
func (s *PromptService) SetEvaluationCriteria(ctx context.Context, promptID string, criteria map[string]interface{}) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Prompt.Get(ctx, promptID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load prompt: %w", err)
	}

	meta, err := models.ImprovementMetadataFromMap(p.ImprovementMetadata)
	if err != nil {
		return fmt.Errorf("failed to decode improvement metadata: %w", err)
	}
	// One rollback per tuning cycle: a second edit before the next pass
	// must not walk the ladder back another rung.
	if !meta.CriteriaInvalidated {
		meta.LastImprovementSpanCount = thresholds.PreviousImprovement(meta.LastImprovementSpanCount)
		meta.CriteriaInvalidated = true
	}
	metaMap, err := meta.ToMap()
	if err != nil {
		return fmt.Errorf("failed to encode improvement metadata: %w", err)
	}

	if err := p.Update().
		SetEvaluationCriteria(criteria).
		SetImprovementMetadata(metaMap).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update criteria: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit criteria update: %w", err)
	}
	return nil
}

// EditAgentDescription applies a user edit to the agent_description column:
// the description text is replaced, optional feedback is appended to the
// history, and the improvement ladder is rolled back one rung exactly as for
// a criteria edit, so the edited description informs the next tuning pass.
func (s *PromptService) EditAgentDescription(ctx context.Context, promptID, description string, feedback *string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := tx.Prompt.Get(ctx, promptID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load prompt: %w", err)
	}

	desc, err := models.AgentDescriptionFromMap(p.AgentDescription)
	if err != nil {
		return fmt.Errorf("failed to decode agent description: %w", err)
	}
	desc.Description = description
	if feedback != nil && *feedback != "" {
		desc.FeedbackHistory = append(desc.FeedbackHistory, map[string]interface{}{
			"feedback":   *feedback,
			"created_at": time.Now().Unix(),
		})
	}
	descMap, err := desc.ToMap()
	if err != nil {
		return fmt.Errorf("failed to encode agent description: %w", err)
	}

	meta, err := models.ImprovementMetadataFromMap(p.ImprovementMetadata)
	if err != nil {
		return fmt.Errorf("failed to decode improvement metadata: %w", err)
	}
	if !meta.CriteriaInvalidated {
		meta.LastImprovementSpanCount = thresholds.PreviousImprovement(meta.LastImprovementSpanCount)
		meta.CriteriaInvalidated = true
	}
	metaMap, err := meta.ToMap()
	if err != nil {
		return fmt.Errorf("failed to encode improvement metadata: %w", err)
	}

	if err := p.Update().
		SetAgentDescription(descMap).
		SetImprovementMetadata(metaMap).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to update agent description: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit description update: %w", err)
	}
	return nil
}

// ClearCriteriaInvalidated resets the staleness flag after a scoring pass has
// re-scored under the edited criteria.
func (s *PromptService) ClearCriteriaInvalidated(ctx context.Context, promptID string) error {
	p, err := s.Get(ctx, promptID)
	if err != nil {
		return err
	}
	meta, err := models.ImprovementMetadataFromMap(p.ImprovementMetadata)
	if err != nil {
		return fmt.Errorf("failed to decode improvement metadata: %w", err)
	}
	if !meta.CriteriaInvalidated {
		return nil
	}
	meta.CriteriaInvalidated = false
	return s.UpdateImprovementMetadata(ctx, promptID, meta)
}

// EnsureUniqueSlug returns a slug unused within the project, regenerating
// when the candidate collides.
func (s *PromptService) EnsureUniqueSlug(ctx context.Context, projectID, candidate string) (string, error) {
	slug := candidate
	for {
		exists, err := s.client.Prompt.Query().
			Where(
				prompt.ProjectIDEQ(projectID),
				prompt.SlugEQ(slug),
			).
			Exist(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to check slug: %w", err)
		}
		if !exists {
			return slug, nil
		}
		slug = templates.NewSlug()
	}
}
