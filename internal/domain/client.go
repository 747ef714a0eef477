package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client represents a business client owned by a user
type Client struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateClientRequest is the raw create payload. Pointer fields distinguish
// absent fields from empty ones.
type CreateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// UpdateClientRequest is the raw partial-update payload.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
}

// ClientData holds sanitized client fields ready for storage. A nil field
// means "not provided"; partial updates leave nil fields untouched.
type ClientData struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
}

// DeletedClient is the payload returned after a successful delete.
type DeletedClient struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// ListClientsParams are the normalized query parameters for listing clients.
type ListClientsParams struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
	Search    string
}

// Pagination describes the position of a page within a result set.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewPagination computes pagination metadata for a page of results.
func NewPagination(page, limit, total int) Pagination {
	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}

// ClientList is a page of clients with pagination metadata.
type ClientList struct {
	Clients    []Client   `json:"clients"`
	Pagination Pagination `json:"pagination"`
}
