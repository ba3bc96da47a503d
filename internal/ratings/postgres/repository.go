// Package postgres provides the PostgreSQL implementation of the ratings
// repository.
package postgres

import (
	"context"
	"fmt"

	"github.com/bissquit/store-rating/internal/domain"
	"github.com/bissquit/store-rating/internal/pkg/postgres"
	"github.com/bissquit/store-rating/internal/ratings"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the ratings.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or updates a rating in one statement. The xmax system
// column is zero only for rows created by the current statement, which
// distinguishes an insert from a conflict update without a second query.
func (r *Repository) Upsert(ctx context.Context, rating *domain.Rating) (bool, error) {
	query := `
		INSERT INTO ratings (user_id, store_id, rating_value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, store_id)
		DO UPDATE SET rating_value = EXCLUDED.rating_value, updated_at = now()
		RETURNING id, created_at, updated_at, (xmax = 0) AS inserted
	`
	var inserted bool
	err := r.db.QueryRow(ctx, query,
		rating.UserID,
		rating.StoreID,
		rating.Value,
	).Scan(&rating.ID, &rating.CreatedAt, &rating.UpdatedAt, &inserted)

	if err != nil {
		if postgres.IsForeignKeyViolation(err, "ratings_store_id_fkey") {
			return false, ratings.ErrStoreNotFound
		}
		return false, fmt.Errorf("upsert rating: %w", err)
	}
	return inserted, nil
}
