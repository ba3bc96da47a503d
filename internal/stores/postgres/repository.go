// Package postgres provides the PostgreSQL implementation of the stores
// repository.
package postgres

import (
	"context"
	"fmt"

	"github.com/bissquit/store-rating/internal/domain"
	"github.com/bissquit/store-rating/internal/pkg/postgres"
	"github.com/bissquit/store-rating/internal/pkg/sqlbuilder"
	"github.com/bissquit/store-rating/internal/stores"
	"github.com/jackc/pgx/v5/pgxpool"
)

// storeColumns whitelists the filterable columns of the store listings.
var storeColumns = sqlbuilder.Whitelist{
	Columns: map[string]string{
		"id":      "s.id",
		"name":    "s.name",
		"email":   "s.email",
		"address": "s.address",
	},
	DefaultSort: "id",
}

// Repository implements the stores.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateStore inserts a new store. A duplicate name surfaces as
// stores.ErrStoreNameExists; an unknown owner id as stores.ErrOwnerNotFound.
func (r *Repository) CreateStore(ctx context.Context, store *domain.Store) error {
	query := `
		INSERT INTO stores (name, email, address, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		store.Name,
		store.Email,
		store.Address,
		store.OwnerID,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)

	if err != nil {
		if postgres.IsUniqueViolation(err, "stores_name_key") {
			return stores.ErrStoreNameExists
		}
		if postgres.IsForeignKeyViolation(err, "stores_owner_id_fkey") {
			return stores.ErrOwnerNotFound
		}
		return fmt.Errorf("create store: %w", err)
	}
	return nil
}

// ListWithUserRatings returns all stores with the store-wide average rating
// and the given user's own rating, computed per row by correlated
// subqueries. An optional search term matches name or address.
func (r *Repository) ListWithUserRatings(ctx context.Context, userID int64, search string) ([]stores.ListRow, error) {
	b := sqlbuilder.New(storeColumns, userID).
		SubstringAny([]string{"name", "address"}, search)

	query := `
		SELECT
			s.id, s.name, s.email, s.address,
			(SELECT AVG(r.rating_value) FROM ratings r WHERE r.store_id = s.id) AS overall_rating,
			(SELECT r.rating_value FROM ratings r WHERE r.store_id = s.id AND r.user_id = $1) AS user_rating
		FROM stores s
	` + b.WhereClause() + sqlbuilder.OrderBy(storeColumns, "id", "ASC")

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list stores with user ratings: %w", err)
	}
	defer rows.Close()

	result := make([]stores.ListRow, 0)
	for rows.Next() {
		var row stores.ListRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Email,
			&row.Address,
			&row.OverallRating,
			&row.UserRating,
		); err != nil {
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate store rows: %w", err)
	}
	return result, nil
}

// ListWithAverages returns stores with their overall average rating for the
// admin listing, AND-combining the optional substring filters and ordering
// by id ascending.
func (r *Repository) ListWithAverages(ctx context.Context, filter stores.AdminFilter) ([]stores.AdminRow, error) {
	b := sqlbuilder.New(storeColumns).
		Substring("name", filter.Name).
		Substring("email", filter.Email).
		Substring("address", filter.Address)

	query := `
		SELECT
			s.id, s.name, s.email, s.address,
			(SELECT AVG(r.rating_value) FROM ratings r WHERE r.store_id = s.id) AS overall_rating
		FROM stores s
	` + b.WhereClause() + sqlbuilder.OrderBy(storeColumns, "id", "ASC")

	rows, err := r.db.Query(ctx, query, b.Args()...)
	if err != nil {
		return nil, fmt.Errorf("list stores with averages: %w", err)
	}
	defer rows.Close()

	result := make([]stores.AdminRow, 0)
	for rows.Next() {
		var row stores.AdminRow
		if err := rows.Scan(
			&row.ID,
			&row.Name,
			&row.Email,
			&row.Address,
			&row.OverallRating,
		); err != nil {
			return nil, fmt.Errorf("scan store row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate store rows: %w", err)
	}
	return result, nil
}
