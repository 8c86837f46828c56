package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ekrsw/knowledge-app-sub000/internal/domain"
)

// PostgresUserDirectory implements UserDirectory using PostgreSQL.
type PostgresUserDirectory struct {
	pool *pgxpool.Pool
}

// NewPostgresUserDirectory creates a new PostgresUserDirectory.
func NewPostgresUserDirectory(pool *pgxpool.Pool) *PostgresUserDirectory {
	return &PostgresUserDirectory{pool: pool}
}

const userColumns = `id, email, name, role, approval_group, is_active, created_at, updated_at`

// GetByID fetches a user by ID. Missing rows surface as
// domain.ErrUserNotFound.
func (r *PostgresUserDirectory) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var u domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.ApprovalGroup,
		&u.Active, &u.CreatedAt, &u.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrUserNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}
	return &u, nil
}

// ListApprovers returns active users eligible to decide revisions in the
// given approval group: the group's approvers plus every admin.
func (r *PostgresUserDirectory) ListApprovers(ctx context.Context, approvalGroup string) ([]domain.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE is_active
		  AND (role = 'admin' OR (role = 'approver' AND approval_group = $1))
		ORDER BY name ASC`, userColumns)

	rows, err := r.pool.Query(ctx, query, approvalGroup)
	if err != nil {
		return nil, fmt.Errorf("list approvers: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.Name, &u.Role, &u.ApprovalGroup,
			&u.Active, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}
