package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/workhive/backend/internal/domain"
)

func strptr(s string) *string {
	return &s
}

func asAPIError(t *testing.T, err error) *domain.Error {
	t.Helper()
	var apiErr *domain.Error
	require.ErrorAs(t, err, &apiErr)
	return apiErr
}

func TestClientService_Create_SetsOwner(t *testing.T) {
	clients := new(MockClientRepository)
	projects := new(MockProjectRepository)
	svc := NewClientService(clients, projects, false)

	userID := uuid.New()
	clients.On("Create", mock.Anything, mock.MatchedBy(func(c *domain.Client) bool {
		return c.UserID == userID && c.Name == "Test Client" && c.ID != uuid.Nil
	})).Return(nil)

	client, err := svc.Create(context.Background(), userID, domain.ClientData{
		Name:  strptr("Test Client"),
		Email: strptr("client@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Test Client", client.Name)
	assert.Equal(t, userID, client.UserID)
	require.NotNil(t, client.Email)
	assert.Equal(t, "client@example.com", *client.Email)
	assert.False(t, client.CreatedAt.IsZero())
	clients.AssertExpectations(t)
}

func TestClientService_Create_Duplicate(t *testing.T) {
	clients := new(MockClientRepository)
	svc := NewClientService(clients, new(MockProjectRepository), false)

	clients.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("failed to create client: %w", domain.ErrDuplicate))

	_, err := svc.Create(context.Background(), uuid.New(), domain.ClientData{Name: strptr("Acme")})

	apiErr := asAPIError(t, err)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, domain.CodeDuplicateClient, apiErr.Code)
}

func TestClientService_Create_DatabaseErrorDetail(t *testing.T) {
	boom := errors.New("connection refused")

	for _, debug := range []bool{true, false} {
		clients := new(MockClientRepository)
		svc := NewClientService(clients, new(MockProjectRepository), debug)
		clients.On("Create", mock.Anything, mock.Anything).Return(boom)

		_, err := svc.Create(context.Background(), uuid.New(), domain.ClientData{Name: strptr("Acme")})

		apiErr := asAPIError(t, err)
		assert.Equal(t, domain.CodeDatabaseError, apiErr.Code)
		if debug {
			assert.Equal(t, "connection refused", apiErr.Details)
		} else {
			assert.Nil(t, apiErr.Details, "production must not echo upstream errors")
		}
	}
}

func TestClientService_Delete_BlockedByProjects(t *testing.T) {
	clients := new(MockClientRepository)
	projects := new(MockProjectRepository)
	svc := NewClientService(clients, projects, false)

	userID := uuid.New()
	clientID := uuid.New()

	clients.On("GetByID", mock.Anything, userID, clientID).
		Return(&domain.Client{ID: clientID, UserID: userID, Name: "Acme"}, nil)
	projects.On("CountByClient", mock.Anything, userID, clientID).Return(2, nil)

	_, err := svc.Delete(context.Background(), userID, clientID)

	apiErr := asAPIError(t, err)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, domain.CodeClientHasProjects, apiErr.Code)
	assert.Equal(t, map[string]int{"projectCount": 2}, apiErr.Details)

	clients.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestClientService_Delete_Success(t *testing.T) {
	clients := new(MockClientRepository)
	projects := new(MockProjectRepository)
	svc := NewClientService(clients, projects, false)

	userID := uuid.New()
	clientID := uuid.New()

	clients.On("GetByID", mock.Anything, userID, clientID).
		Return(&domain.Client{ID: clientID, UserID: userID, Name: "Acme"}, nil)
	projects.On("CountByClient", mock.Anything, userID, clientID).Return(0, nil)
	clients.On("Delete", mock.Anything, userID, clientID).Return(nil)

	deleted, err := svc.Delete(context.Background(), userID, clientID)
	require.NoError(t, err)
	assert.Equal(t, clientID, deleted.ID)
	assert.Equal(t, "Acme", deleted.Name)
	clients.AssertExpectations(t)
}

func TestClientService_Delete_NotFound(t *testing.T) {
	clients := new(MockClientRepository)
	svc := NewClientService(clients, new(MockProjectRepository), false)

	userID := uuid.New()
	clientID := uuid.New()
	clients.On("GetByID", mock.Anything, userID, clientID).Return(nil, nil)

	_, err := svc.Delete(context.Background(), userID, clientID)

	apiErr := asAPIError(t, err)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, domain.CodeClientNotFound, apiErr.Code)
}

func TestClientService_Update_NotFound(t *testing.T) {
	clients := new(MockClientRepository)
	svc := NewClientService(clients, new(MockProjectRepository), false)

	userID := uuid.New()
	clientID := uuid.New()
	clients.On("GetByID", mock.Anything, userID, clientID).Return(nil, nil)

	_, err := svc.Update(context.Background(), userID, clientID, domain.ClientData{Name: strptr("Acme")})

	apiErr := asAPIError(t, err)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, domain.CodeClientNotFound, apiErr.Code)
	clients.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestClientService_Update_Success(t *testing.T) {
	clients := new(MockClientRepository)
	svc := NewClientService(clients, new(MockProjectRepository), false)

	userID := uuid.New()
	clientID := uuid.New()
	updated := &domain.Client{ID: clientID, UserID: userID, Name: "Acme Renamed"}

	clients.On("GetByID", mock.Anything, userID, clientID).
		Return(&domain.Client{ID: clientID, UserID: userID, Name: "Acme"}, nil)
	clients.On("Update", mock.Anything, userID, clientID, mock.Anything).Return(updated, nil)

	got, err := svc.Update(context.Background(), userID, clientID, domain.ClientData{Name: strptr("Acme Renamed")})
	require.NoError(t, err)
	assert.Equal(t, "Acme Renamed", got.Name)
}

func TestClientService_List_EmptyPage(t *testing.T) {
	clients := new(MockClientRepository)
	svc := NewClientService(clients, new(MockProjectRepository), false)

	userID := uuid.New()
	clients.On("List", mock.Anything, userID, mock.Anything).Return(nil, 0, nil)

	list, err := svc.List(context.Background(), userID, domain.ListClientsParams{})
	require.NoError(t, err)
	assert.NotNil(t, list.Clients, "clients must serialize as [] rather than null")
	assert.Empty(t, list.Clients)
	assert.Equal(t, 0, list.Pagination.Total)
	assert.Equal(t, 0, list.Pagination.TotalPages)
	assert.False(t, list.Pagination.HasNext)
	assert.False(t, list.Pagination.HasPrev)
}

func TestClientService_List_PaginationMeta(t *testing.T) {
	clients := new(MockClientRepository)
	svc := NewClientService(clients, new(MockProjectRepository), false)

	userID := uuid.New()
	clients.On("List", mock.Anything, userID, mock.MatchedBy(func(p domain.ListClientsParams) bool {
		return p.Page == 2 && p.Limit == 10
	})).Return([]domain.Client{{Name: "A"}}, 25, nil)

	list, err := svc.List(context.Background(), userID, domain.ListClientsParams{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 25, list.Pagination.Total)
	assert.Equal(t, 3, list.Pagination.TotalPages)
	assert.True(t, list.Pagination.HasNext)
	assert.True(t, list.Pagination.HasPrev)
}

func TestNormalizeListParams(t *testing.T) {
	tests := []struct {
		name string
		in   domain.ListClientsParams
		want domain.ListClientsParams
	}{
		{
			"defaults",
			domain.ListClientsParams{},
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"limit clamped high",
			domain.ListClientsParams{Page: 1, Limit: 500},
			domain.ListClientsParams{Page: 1, Limit: 100, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"limit clamped low",
			domain.ListClientsParams{Page: 1, Limit: -3},
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"page floor",
			domain.ListClientsParams{Page: 0, Limit: 20},
			domain.ListClientsParams{Page: 1, Limit: 20, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"sort field outside allow-list",
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "password_hash; DROP TABLE clients"},
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "created_at", SortOrder: "desc"},
		},
		{
			"valid sort preserved",
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "name", SortOrder: "asc"},
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "name", SortOrder: "asc"},
		},
		{
			"bad sort order falls back",
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "name", SortOrder: "sideways"},
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "name", SortOrder: "desc"},
		},
		{
			"search trimmed",
			domain.ListClientsParams{Page: 1, Limit: 10, Search: "  acme  "},
			domain.ListClientsParams{Page: 1, Limit: 10, SortBy: "created_at", SortOrder: "desc", Search: "acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeListParams(tt.in))
		})
	}
}
