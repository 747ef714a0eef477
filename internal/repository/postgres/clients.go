package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/workhive/backend/internal/domain"
)

// ClientRepository handles client data access
type ClientRepository struct {
	db *DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// List retrieves a page of the user's clients plus the total match count.
// SortBy and SortOrder must already be normalized against the allow-list;
// they are interpolated into the query.
func (r *ClientRepository) List(ctx context.Context, userID uuid.UUID, params domain.ListClientsParams) ([]domain.Client, int, error) {
	where := "WHERE user_id = $1"
	args := []any{userID}

	if params.Search != "" {
		where += " AND (name ILIKE '%' || $2 || '%' OR email ILIKE '%' || $2 || '%')"
		args = append(args, params.Search)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM clients " + where
	if err := r.db.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT id, user_id, name, email, phone, address, created_at, updated_at
		FROM clients
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, params.SortBy, strings.ToUpper(params.SortOrder), len(args)+1, len(args)+2)

	args = append(args, params.Limit, (params.Page-1)*params.Limit)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	var clients []domain.Client
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ID,
			&client.UserID,
			&client.Name,
			&client.Email,
			&client.Phone,
			&client.Address,
			&client.CreatedAt,
			&client.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan client: %w", err)
		}
		clients = append(clients, client)
	}

	return clients, total, rows.Err()
}

// Create inserts a new client
func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (id, user_id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Pool.Exec(ctx, query,
		client.ID,
		client.UserID,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.CreatedAt,
		client.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to create client: %w", domain.ErrDuplicate)
		}
		return fmt.Errorf("failed to create client: %w", err)
	}

	return nil
}

// GetByID retrieves a client owned by the given user, or nil when no such
// row exists.
func (r *ClientRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Client, error) {
	query := `
		SELECT id, user_id, name, email, phone, address, created_at, updated_at
		FROM clients
		WHERE id = $1 AND user_id = $2
	`

	var client domain.Client
	err := r.db.Pool.QueryRow(ctx, query, id, userID).Scan(
		&client.ID,
		&client.UserID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return &client, nil
}

// Update applies the non-nil fields of data to a client owned by the given
// user and returns the updated row, or nil when no such row exists.
func (r *ClientRepository) Update(ctx context.Context, userID, id uuid.UUID, data domain.ClientData) (*domain.Client, error) {
	query := `
		UPDATE clients
		SET name = COALESCE($3, name),
		    email = COALESCE($4, email),
		    phone = COALESCE($5, phone),
		    address = COALESCE($6, address),
		    updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, name, email, phone, address, created_at, updated_at
	`

	var client domain.Client
	err := r.db.Pool.QueryRow(ctx, query, id, userID, data.Name, data.Email, data.Phone, data.Address).Scan(
		&client.ID,
		&client.UserID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.CreatedAt,
		&client.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("failed to update client: %w", domain.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &client, nil
}

// Delete removes a client owned by the given user
func (r *ClientRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := `DELETE FROM clients WHERE id = $1 AND user_id = $2`

	_, err := r.db.Pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	return nil
}
