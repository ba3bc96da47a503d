package stores

import (
	"context"

	"github.com/bissquit/store-rating/internal/domain"
)

// Repository defines the interface for store data operations.
type Repository interface {
	CreateStore(ctx context.Context, store *domain.Store) error
	ListWithUserRatings(ctx context.Context, userID int64, search string) ([]ListRow, error)
	ListWithAverages(ctx context.Context, filter AdminFilter) ([]AdminRow, error)
}

// ListRow is a raw store listing row scoped to a requesting user. Averages
// are unformatted; nil means the store has no ratings.
type ListRow struct {
	ID            int64
	Name          string
	Email         string
	Address       string
	OverallRating *float64
	UserRating    *int
}

// AdminRow is a raw admin store listing row.
type AdminRow struct {
	ID            int64
	Name          string
	Email         string
	Address       string
	OverallRating *float64
}

// AdminFilter holds the admin listing's optional substring filters.
type AdminFilter struct {
	Name    string
	Email   string
	Address string
}
