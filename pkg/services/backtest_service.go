package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/backtestrun"
)

// BacktestService manages the lifecycle rows that group synthetic
// backtest spans.
type BacktestService struct {
	client *ent.Client
}

// NewBacktestService creates a new BacktestService.
func NewBacktestService(client *ent.Client) *BacktestService {
	return &BacktestService{client: client}
}

// CreateRun inserts a running backtest row for the prompt and model list.
func (s *BacktestService) CreateRun(ctx context.Context, promptID string, candidateModels []string) (*ent.BacktestRun, error) {
	run, err := s.client.BacktestRun.Create().
		SetID(uuid.New().String()).
		SetPromptID(promptID).
		SetModels(candidateModels).
		SetStatus(backtestrun.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create backtest run: %w", err)
	}
	return run, nil
}

// CompleteRun marks a run completed.
func (s *BacktestService) CompleteRun(ctx context.Context, runID string) error {
	return s.finishRun(ctx, runID, backtestrun.StatusCompleted)
}

// FailRun marks a run failed.
func (s *BacktestService) FailRun(ctx context.Context, runID string) error {
	return s.finishRun(ctx, runID, backtestrun.StatusFailed)
}

func (s *BacktestService) finishRun(ctx context.Context, runID string, status backtestrun.Status) error {
	if err := s.client.BacktestRun.UpdateOneID(runID).
		SetStatus(status).
		SetCompletedAt(time.Now()).
		Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish backtest run: %w", err)
	}
	return nil
}

// LatestRun returns the most recent run for a prompt version, if any.
func (s *BacktestService) LatestRun(ctx context.Context, promptID string) (*ent.BacktestRun, error) {
	run, err := s.client.BacktestRun.Query().
		Where(backtestrun.PromptIDEQ(promptID)).
		Order(ent.Desc(backtestrun.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load backtest run: %w", err)
	}
	return run, nil
}
