// Package postgres provides the PostgreSQL implementation of the dashboard
// repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/bissquit/store-rating/internal/dashboard"
	"github.com/bissquit/store-rating/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository implements the dashboard.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetOwnedStore returns the owner's first store by id with its average
// rating and rating count.
func (r *Repository) GetOwnedStore(ctx context.Context, ownerID int64) (*dashboard.OwnedStore, error) {
	query := `
		SELECT
			s.id, s.name, s.address,
			AVG(rt.rating_value) AS average_rating,
			COUNT(rt.id) AS total_ratings
		FROM stores s
		LEFT JOIN ratings rt ON rt.store_id = s.id
		WHERE s.owner_id = $1
		GROUP BY s.id
		ORDER BY s.id ASC
		LIMIT 1
	`
	var store dashboard.OwnedStore
	err := r.db.QueryRow(ctx, query, ownerID).Scan(
		&store.StoreID,
		&store.Name,
		&store.Address,
		&store.AverageRating,
		&store.TotalRatings,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dashboard.ErrNoOwnedStore
		}
		return nil, fmt.Errorf("get owned store: %w", err)
	}
	return &store, nil
}

// ListRaters returns the users who rated the owner's store(s), ordered by
// the time their rating last changed, newest first. An owner without a
// store simply matches no rows.
func (r *Repository) ListRaters(ctx context.Context, ownerID int64) ([]domain.RaterEntry, error) {
	query := `
		SELECT u.name, u.email, u.address, rt.rating_value, rt.updated_at
		FROM ratings rt
		JOIN users u ON u.id = rt.user_id
		JOIN stores s ON s.id = rt.store_id
		WHERE s.owner_id = $1
		ORDER BY rt.updated_at DESC
	`
	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list raters: %w", err)
	}
	defer rows.Close()

	result := make([]domain.RaterEntry, 0)
	for rows.Next() {
		var entry domain.RaterEntry
		if err := rows.Scan(
			&entry.Name,
			&entry.Email,
			&entry.Address,
			&entry.Value,
			&entry.RatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rater row: %w", err)
		}
		result = append(result, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rater rows: %w", err)
	}
	return result, nil
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM users")
}

func (r *Repository) CountStores(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM stores")
}

func (r *Repository) CountRatings(ctx context.Context) (int64, error) {
	return r.count(ctx, "SELECT COUNT(*) FROM ratings")
}

func (r *Repository) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count query: %w", err)
	}
	return n, nil
}
