package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/workhive/backend/internal/domain"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100

	defaultSortBy    = "created_at"
	defaultSortOrder = "desc"
)

// clientSortFields is the allow-list of sortable columns. Anything else
// falls back to the default.
var clientSortFields = map[string]bool{
	"name":       true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

// ClientRepository is the persistence boundary for client records.
type ClientRepository interface {
	List(ctx context.Context, userID uuid.UUID, params domain.ListClientsParams) ([]domain.Client, int, error)
	Create(ctx context.Context, client *domain.Client) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Client, error)
	Update(ctx context.Context, userID, id uuid.UUID, data domain.ClientData) (*domain.Client, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// ProjectRepository is the persistence boundary for project records.
type ProjectRepository interface {
	List(ctx context.Context, userID uuid.UUID, params domain.ListProjectsParams) ([]domain.Project, int, error)
	CountByClient(ctx context.Context, userID, clientID uuid.UUID) (int, error)
}

// ClientService handles client CRUD operations. Inputs are expected to be
// validated and sanitized by the caller.
type ClientService struct {
	clients  ClientRepository
	projects ProjectRepository
	debug    bool
}

// NewClientService creates a new client service. debug controls whether
// upstream error text is echoed in error details.
func NewClientService(clients ClientRepository, projects ProjectRepository, debug bool) *ClientService {
	return &ClientService{clients: clients, projects: projects, debug: debug}
}

func isDuplicate(err error) bool {
	return errors.Is(err, domain.ErrDuplicate)
}

func (s *ClientService) dbError(message string, err error) *domain.Error {
	apiErr := domain.NewError(http.StatusInternalServerError, domain.CodeDatabaseError, message)
	if s.debug {
		apiErr.Details = err.Error()
	}
	return apiErr
}

// NormalizeListParams clamps pagination, applies the sort allow-list and
// trims the search term.
func NormalizeListParams(params domain.ListClientsParams) domain.ListClientsParams {
	if params.Page < 1 {
		params.Page = defaultPage
	}
	if params.Limit < 1 {
		params.Limit = defaultLimit
	}
	if params.Limit > maxLimit {
		params.Limit = maxLimit
	}
	if !clientSortFields[params.SortBy] {
		params.SortBy = defaultSortBy
	}
	if params.SortOrder != "asc" && params.SortOrder != "desc" {
		params.SortOrder = defaultSortOrder
	}
	params.Search = strings.TrimSpace(params.Search)
	return params
}

// List returns a page of the user's clients.
func (s *ClientService) List(ctx context.Context, userID uuid.UUID, params domain.ListClientsParams) (*domain.ClientList, error) {
	params = NormalizeListParams(params)

	clients, total, err := s.clients.List(ctx, userID, params)
	if err != nil {
		return nil, s.dbError("Failed to fetch clients", err)
	}
	if clients == nil {
		clients = []domain.Client{}
	}

	return &domain.ClientList{
		Clients:    clients,
		Pagination: domain.NewPagination(params.Page, params.Limit, total),
	}, nil
}

// Create stores a new client owned by the given user.
func (s *ClientService) Create(ctx context.Context, userID uuid.UUID, data domain.ClientData) (*domain.Client, error) {
	now := time.Now()
	client := &domain.Client{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      *data.Name,
		Email:     data.Email,
		Phone:     data.Phone,
		Address:   data.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.clients.Create(ctx, client); err != nil {
		if isDuplicate(err) {
			return nil, domain.NewError(http.StatusConflict, domain.CodeDuplicateClient, "A client with this information already exists")
		}
		return nil, s.dbError("Failed to create client", err)
	}

	return client, nil
}

// Update applies a partial update to a client owned by the given user.
func (s *ClientService) Update(ctx context.Context, userID, id uuid.UUID, data domain.ClientData) (*domain.Client, error) {
	existing, err := s.clients.GetByID(ctx, userID, id)
	if err != nil {
		return nil, s.dbError("Failed to update client", err)
	}
	if existing == nil {
		return nil, domain.NewError(http.StatusNotFound, domain.CodeClientNotFound, "Client not found or access denied")
	}

	updated, err := s.clients.Update(ctx, userID, id, data)
	if err != nil {
		if isDuplicate(err) {
			return nil, domain.NewError(http.StatusConflict, domain.CodeDuplicateClient, "A client with this information already exists")
		}
		return nil, s.dbError("Failed to update client", err)
	}
	if updated == nil {
		// Deleted between the ownership check and the update.
		return nil, domain.NewError(http.StatusNotFound, domain.CodeClientNotFound, "Client not found or access denied")
	}

	return updated, nil
}

// Delete removes a client owned by the given user. Deletion is refused while
// projects still reference the client.
func (s *ClientService) Delete(ctx context.Context, userID, id uuid.UUID) (*domain.DeletedClient, error) {
	existing, err := s.clients.GetByID(ctx, userID, id)
	if err != nil {
		return nil, s.dbError("Failed to delete client", err)
	}
	if existing == nil {
		return nil, domain.NewError(http.StatusNotFound, domain.CodeClientNotFound, "Client not found or access denied")
	}

	count, err := s.projects.CountByClient(ctx, userID, id)
	if err != nil {
		return nil, s.dbError("Failed to check client dependencies", err)
	}
	if count > 0 {
		return nil, domain.NewError(http.StatusConflict, domain.CodeClientHasProjects,
			"Cannot delete client with associated projects. Please delete or reassign projects first.").
			WithDetails(map[string]int{"projectCount": count})
	}

	if err := s.clients.Delete(ctx, userID, id); err != nil {
		return nil, s.dbError("Failed to delete client", err)
	}

	return &domain.DeletedClient{ID: existing.ID, Name: existing.Name}, nil
}
