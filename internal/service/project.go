package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/workhive/backend/internal/domain"
)

// ProjectService handles project listing.
type ProjectService struct {
	projects ProjectRepository
	debug    bool
}

// NewProjectService creates a new project service
func NewProjectService(projects ProjectRepository, debug bool) *ProjectService {
	return &ProjectService{projects: projects, debug: debug}
}

// List returns a page of the user's projects, optionally filtered by client.
func (s *ProjectService) List(ctx context.Context, userID uuid.UUID, params domain.ListProjectsParams) (*domain.ProjectList, error) {
	if params.Page < 1 {
		params.Page = defaultPage
	}
	if params.Limit < 1 {
		params.Limit = defaultLimit
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}

	projects, total, err := s.projects.List(ctx, userID, params)
	if err != nil {
		apiErr := domain.NewError(http.StatusInternalServerError, domain.CodeDatabaseError, "Failed to fetch projects")
		if s.debug {
			apiErr.Details = err.Error()
		}
		return nil, apiErr
	}
	if projects == nil {
		projects = []domain.Project{}
	}

	return &domain.ProjectList{
		Projects:   projects,
		Pagination: domain.NewPagination(params.Page, params.Limit, total),
	}, nil
}
