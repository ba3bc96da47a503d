package users

import (
	"context"

	"github.com/bissquit/store-rating/internal/domain"
)

// Repository defines the interface for the admin user directory.
type Repository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	List(ctx context.Context, filter Filter) ([]domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	// GetOwnedStore returns the owner's first store (lowest id) with its
	// average rating, or (nil, nil) when the user owns no store.
	GetOwnedStore(ctx context.Context, ownerID int64) (*StoreInfo, error)
}

// Filter holds the admin listing's optional substring filters, exact role
// filter, and sort directives.
type Filter struct {
	Name    string
	Email   string
	Address string
	Role    string
	SortBy  string
	Order   string
}

// StoreInfo summarizes the store owned by an OWNER user. AverageRating is
// unformatted; nil means the store has no ratings.
type StoreInfo struct {
	StoreID       int64
	StoreName     string
	AverageRating *float64
}
