package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/avollmer/siteplan/internal/domain"
	"github.com/avollmer/siteplan/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("project title must not be blank")
	}
	if p.ID == "" {
		p.ID = domain.NewProjectID()
	}
	now := time.Now().UTC()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) Delete(ctx context.Context, id domain.ProjectID) error {
	exists, err := s.projects.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("project %s: %w", id, repository.ErrNotFound)
	}
	return s.projects.Delete(ctx, id)
}
