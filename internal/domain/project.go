package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project represents work done for a client. Existing projects block
// deletion of their client.
type Project struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ClientID    uuid.UUID `json:"client_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListProjectsParams are the normalized query parameters for listing projects.
type ListProjectsParams struct {
	Page     int
	Limit    int
	ClientID *uuid.UUID
}

// ProjectList is a page of projects with pagination metadata.
type ProjectList struct {
	Projects   []Project  `json:"projects"`
	Pagination Pagination `json:"pagination"`
}
