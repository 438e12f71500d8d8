package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/predicate"
	"github.com/promptlens/promptlens/ent/span"
	"github.com/promptlens/promptlens/pkg/models"
	"github.com/promptlens/promptlens/pkg/templates"
)

// SpanService queries and mutates observed LLM call spans.
//
// Synthetic spans (created by tuning and backtesting) are filtered in Go via
// their operation and metadata sentinels rather than SQL, since the sentinels
// live inside the metadata JSON column.
type SpanService struct {
	client *ent.Client
}

// NewSpanService creates a new SpanService.
func NewSpanService(client *ent.Client) *SpanService {
	return &SpanService{client: client}
}

// Get loads a span by id.
func (s *SpanService) Get(ctx context.Context, spanID string) (*ent.Span, error) {
	sp, err := s.client.Span.Get(ctx, spanID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load span: %w", err)
	}
	return sp, nil
}

// slugPredicates matches spans mapped to any version of the slug. The
// composite prompt id is "{project}_{version}_{slug}"; the project has no
// underscores, so prefix+suffix matching is unambiguous.
func slugPredicates(projectID, slug string) []predicate.Span {
	return []predicate.Span{
		span.ProjectIDEQ(projectID),
		span.PromptIDHasPrefix(projectID + "_"),
		span.PromptIDHasSuffix("_" + slug),
	}
}

func isSynthetic(sp *ent.Span) bool {
	return models.IsSynthetic(sp.Operation, sp.MetadataAttributes)
}

func isScored(sp *ent.Span) (bool, error) {
	fs, err := models.FeedbackScoreFromMap(sp.FeedbackScore)
	if err != nil {
		return false, fmt.Errorf("failed to decode feedback score: %w", err)
	}
	return fs.Correctness != nil, nil
}

func dropSynthetic(spans []*ent.Span) []*ent.Span {
	kept := spans[:0]
	for _, sp := range spans {
		if !isSynthetic(sp) {
			kept = append(kept, sp)
		}
	}
	return kept
}

// CountForProject counts every real span in the project, mapped or not.
func (s *SpanService) CountForProject(ctx context.Context, projectID string) (int, error) {
	spans, err := s.client.Span.Query().
		Where(span.ProjectIDEQ(projectID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query project spans: %w", err)
	}
	return len(dropSynthetic(spans)), nil
}

// CountForSlug counts real (non-synthetic) spans mapped to any version of
// the slug.
func (s *SpanService) CountForSlug(ctx context.Context, projectID, slug string) (int, error) {
	spans, err := s.client.Span.Query().
		Where(slugPredicates(projectID, slug)...).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query spans for slug: %w", err)
	}
	return len(dropSynthetic(spans)), nil
}

// CountForPrompt counts real spans mapped to one exact prompt version.
func (s *SpanService) CountForPrompt(ctx context.Context, promptID string) (int, error) {
	spans, err := s.client.Span.Query().
		Where(span.PromptIDEQ(promptID)).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query spans for prompt: %w", err)
	}
	return len(dropSynthetic(spans)), nil
}

// ListUnmapped returns real spans not yet classified by discovery, oldest
// first.
func (s *SpanService) ListUnmapped(ctx context.Context, projectID string) ([]*ent.Span, error) {
	spans, err := s.client.Span.Query().
		Where(
			span.ProjectIDEQ(projectID),
			span.PromptIDIsNil(),
		).
		Order(ent.Asc(span.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list unmapped spans: %w", err)
	}
	return dropSynthetic(spans), nil
}

// SetMapping assigns a span to a prompt version with its extracted template
// variables. NUL bytes are stripped before storage — Postgres rejects them
// inside jsonb.
func (s *SpanService) SetMapping(ctx context.Context, spanID, promptID string, vars map[string]string) error {
	stripped := templates.StripNULsFromVars(vars)
	params := make(map[string]interface{}, len(stripped))
	for k, v := range stripped {
		params[k] = v
	}
	if err := s.client.Span.UpdateOneID(spanID).
		SetPromptID(promptID).
		SetInputParams(params).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to map span: %w", err)
	}
	return nil
}

// ListUnscored returns real spans on the prompt version with no correctness
// score yet, oldest first, capped at limit.
func (s *SpanService) ListUnscored(ctx context.Context, promptID string, limit int) ([]*ent.Span, error) {
	spans, err := s.client.Span.Query().
		Where(span.PromptIDEQ(promptID)).
		Order(ent.Asc(span.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list spans: %w", err)
	}

	out := make([]*ent.Span, 0, limit)
	for _, sp := range spans {
		if isSynthetic(sp) {
			continue
		}
		scored, err := isScored(sp)
		if err != nil {
			return nil, err
		}
		if scored {
			continue
		}
		out = append(out, sp)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ListScored returns real scored spans on the prompt version, newest first.
// limit <= 0 means no cap.
func (s *SpanService) ListScored(ctx context.Context, promptID string, limit int) ([]*ent.Span, error) {
	spans, err := s.client.Span.Query().
		Where(span.PromptIDEQ(promptID)).
		Order(ent.Desc(span.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list spans: %w", err)
	}

	var out []*ent.Span
	for _, sp := range spans {
		if isSynthetic(sp) {
			continue
		}
		scored, err := isScored(sp)
		if err != nil {
			return nil, err
		}
		if !scored {
			continue
		}
		out = append(out, sp)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// CountScored counts real scored spans on the prompt version.
func (s *SpanService) CountScored(ctx context.Context, promptID string) (int, error) {
	scored, err := s.ListScored(ctx, promptID, 0)
	if err != nil {
		return 0, err
	}
	return len(scored), nil
}

// HasActivitySince reports whether any real span landed on the slug after
// the cutoff.
func (s *SpanService) HasActivitySince(ctx context.Context, projectID, slug string, since time.Time) (bool, error) {
	spans, err := s.client.Span.Query().
		Where(slugPredicates(projectID, slug)...).
		Where(span.CreatedAtGTE(since)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query recent spans: %w", err)
	}
	return len(dropSynthetic(spans)) > 0, nil
}

// AdoptionRatio returns the share of the slug's real scored spans that
// landed on the given version, over all time. Returns 0 when the slug has no
// scored spans.
func (s *SpanService) AdoptionRatio(ctx context.Context, projectID, slug string, version int) (float64, error) {
	spans, err := s.client.Span.Query().
		Where(slugPredicates(projectID, slug)...).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query spans for adoption: %w", err)
	}

	versionID := models.ComposePromptID(projectID, version, slug)
	total, onVersion := 0, 0
	for _, sp := range spans {
		if isSynthetic(sp) {
			continue
		}
		scored, err := isScored(sp)
		if err != nil {
			return 0, err
		}
		if !scored {
			continue
		}
		total++
		if sp.PromptID != nil && *sp.PromptID == versionID {
			onVersion++
		}
	}
	if total == 0 {
		return 0, nil
	}
	return float64(onVersion) / float64(total), nil
}

// CreateSyntheticInput describes a span generated by the core itself.
type CreateSyntheticInput struct {
	ProjectID   string
	PromptID    string
	Operation   string
	Input       string
	Output      []map[string]interface{}
	InputParams map[string]interface{}
	Metadata    map[string]interface{}
}

// CreateSynthetic persists a core-generated span under a fresh synthetic
// trace. Callers set the sentinel metadata keys that mark it synthetic.
func (s *SpanService) CreateSynthetic(ctx context.Context, in CreateSyntheticInput) (*ent.Span, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	tr, err := tx.Trace.Create().
		SetID(uuid.New().String()).
		SetProjectID(in.ProjectID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create synthetic trace: %w", err)
	}

	input, _ := templates.StripNULs(in.Input).(string)
	params, _ := templates.StripNULs(in.InputParams).(map[string]interface{})

	now := time.Now().UnixNano()
	sp, err := tx.Span.Create().
		SetID(uuid.New().String()).
		SetTraceID(tr.ID).
		SetProjectID(in.ProjectID).
		SetPromptID(in.PromptID).
		SetStartTimeUnixNano(now).
		SetEndTimeUnixNano(now).
		SetInput(input).
		SetOutput(in.Output).
		SetInputParams(params).
		SetOperation(in.Operation).
		SetMetadataAttributes(in.Metadata).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create synthetic span: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit synthetic span: %w", err)
	}
	return sp, nil
}

// SetCorrectness records a judge score on the span, clamped to [0, 1], with
// optional judge feedback. Existing user feedback is preserved.
func (s *SpanService) SetCorrectness(ctx context.Context, spanID string, score float64, feedback *models.Feedback) error {
	sp, err := s.Get(ctx, spanID)
	if err != nil {
		return err
	}

	fs, err := models.FeedbackScoreFromMap(sp.FeedbackScore)
	if err != nil {
		return fmt.Errorf("failed to decode feedback score: %w", err)
	}
	clamped := score
	if clamped < 0 {
		clamped = 0
	}
	if clamped > 1 {
		clamped = 1
	}
	fs.Correctness = &clamped
	if feedback != nil {
		fs.JudgeFeedback = feedback
	}

	m, err := fs.ToMap()
	if err != nil {
		return fmt.Errorf("failed to encode feedback score: %w", err)
	}
	if err := sp.Update().SetFeedbackScore(m).Exec(ctx); err != nil {
		return fmt.Errorf("failed to store correctness: %w", err)
	}
	return nil
}

// ListForBacktestRun returns the synthetic spans created by one backtest run.
func (s *SpanService) ListForBacktestRun(ctx context.Context, projectID, runID string) ([]*ent.Span, error) {
	spans, err := s.client.Span.Query().
		Where(
			span.ProjectIDEQ(projectID),
			span.OperationHasPrefix(models.OperationBacktestPrefix),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list backtest spans: %w", err)
	}

	var out []*ent.Span
	for _, sp := range spans {
		if id, _ := sp.MetadataAttributes[models.MetaBacktestRunID].(string); id == runID {
			out = append(out, sp)
		}
	}
	return out, nil
}
