package services

import (
	"context"
	"fmt"

	"github.com/promptlens/promptlens/ent"
	"github.com/promptlens/promptlens/ent/project"
)

// ProjectService reads the tenant scopes the scheduler enumerates.
type ProjectService struct {
	client *ent.Client
}

// NewProjectService creates a new ProjectService.
func NewProjectService(client *ent.Client) *ProjectService {
	return &ProjectService{client: client}
}

// Get loads a project by id.
func (s *ProjectService) Get(ctx context.Context, id string) (*ent.Project, error) {
	p, err := s.client.Project.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	return p, nil
}

// List returns every project, oldest first.
func (s *ProjectService) List(ctx context.Context) ([]*ent.Project, error) {
	projects, err := s.client.Project.Query().
		Order(ent.Asc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}
