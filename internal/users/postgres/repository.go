// Package postgres provides the PostgreSQL implementation of the users
// repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bissquit/store-rating/internal/domain"
	"github.com/bissquit/store-rating/internal/pkg/postgres"
	"github.com/bissquit/store-rating/internal/pkg/sqlbuilder"
	"github.com/bissquit/store-rating/internal/users"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// userColumns whitelists the filterable and sortable columns of the user
// directory. The password hash is deliberately absent.
var userColumns = sqlbuilder.Whitelist{
	Columns: map[string]string{
		"id":      "u.id",
		"name":    "u.name",
		"email":   "u.email",
		"address": "u.address",
		"role":    "u.role",
	},
	DefaultSort: "id",
}

// Repository implements the users.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateUser inserts a new user. A duplicate email surfaces as
// users.ErrEmailExists.
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (name, email, password_hash, address, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Address,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	if err != nil {
		if postgres.IsUniqueViolation(err, "users_email_key") {
			return users.ErrEmailExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// List returns users matching the filter. Sort directives pass through the
// column whitelist; unknown keys fall back to id ascending.
func (r *Repository) List(ctx context.Context, filter users.Filter) ([]domain.User, error) {
	b := sqlbuilder.New(userColumns).
		Substring("name", filter.Name).
		Substring("email", filter.Email).
		Substring("address", filter.Address).
		Equal("role", filter.Role)

	query := `
		SELECT u.id, u.name, u.email, u.address, u.role, u.created_at, u.updated_at
		FROM users u
	` + b.WhereClause() + sqlbuilder.OrderBy(userColumns, filter.SortBy, filter.Order)

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	result := make([]domain.User, 0)
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID,
			&u.Name,
			&u.Email,
			&u.Address,
			&u.Role,
			&u.CreatedAt,
			&u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		result = append(result, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return result, nil
}

// GetByID returns a user by id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT id, name, email, password_hash, address, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var u domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Address,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, users.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// GetOwnedStore returns the owner's first store by id with its average
// rating, or (nil, nil) when the user owns no store.
func (r *Repository) GetOwnedStore(ctx context.Context, ownerID int64) (*users.StoreInfo, error) {
	query := `
		SELECT
			s.id, s.name,
			(SELECT AVG(rt.rating_value) FROM ratings rt WHERE rt.store_id = s.id) AS average_rating
		FROM stores s
		WHERE s.owner_id = $1
		ORDER BY s.id ASC
		LIMIT 1
	`
	var info users.StoreInfo
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&info.StoreID,
		&info.StoreName,
		&info.AverageRating,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get owned store: %w", err)
	}
	return &info, nil
}
