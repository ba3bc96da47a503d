package dashboard

import (
	"context"

	"github.com/bissquit/store-rating/internal/domain"
)

// Repository defines the interface for dashboard aggregation queries.
type Repository interface {
	// GetOwnedStore returns the owner's first store (lowest id) with its
	// rating aggregates, or ErrNoOwnedStore when the user owns none.
	GetOwnedStore(ctx context.Context, ownerID int64) (*OwnedStore, error)
	// ListRaters returns the users who rated the owner's store(s), most
	// recently changed rating first. An owner without a store yields an
	// empty slice, not an error.
	ListRaters(ctx context.Context, ownerID int64) ([]domain.RaterEntry, error)
	CountUsers(ctx context.Context) (int64, error)
	CountStores(ctx context.Context) (int64, error)
	CountRatings(ctx context.Context) (int64, error)
}

// OwnedStore is the raw owner summary row. AverageRating is unformatted;
// nil means the store has no ratings, which TotalRatings then reports as 0.
type OwnedStore struct {
	StoreID       int64
	Name          string
	Address       string
	AverageRating *float64
	TotalRatings  int64
}
