package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/workhive/backend/internal/domain"
)

// ProjectRepository handles project data access
type ProjectRepository struct {
	db *DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List retrieves a page of the user's projects plus the total match count,
// optionally filtered by client.
func (r *ProjectRepository) List(ctx context.Context, userID uuid.UUID, params domain.ListProjectsParams) ([]domain.Project, int, error) {
	where := "WHERE user_id = $1"
	args := []any{userID}

	if params.ClientID != nil {
		where += " AND client_id = $2"
		args = append(args, *params.ClientID)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM projects " + where
	if err := r.db.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, client_id, name, description, status, created_at, updated_at
		FROM projects
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []domain.Project
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ID,
			&project.UserID,
			&project.ClientID,
			&project.Name,
			&project.Description,
			&project.Status,
			&project.CreatedAt,
			&project.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	return projects, total, rows.Err()
}

// CountByClient counts the user's projects referencing the given client
func (r *ProjectRepository) CountByClient(ctx context.Context, userID, clientID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM projects WHERE client_id = $1 AND user_id = $2`

	var count int
	if err := r.db.Pool.QueryRow(ctx, query, clientID, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count projects: %w", err)
	}

	return count, nil
}
