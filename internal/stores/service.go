// Package stores provides store creation and listing, including the
// rating-enriched listings served to normal users and administrators.
package stores

import (
	"context"
	"fmt"

	"github.com/bissquit/store-rating/internal/domain"
)

// Service implements store business logic.
type Service struct {
	repo Repository
}

// NewService creates a new store service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateStoreInput holds data for creating a store.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address string
	OwnerID *int64
}

// Create adds a new store. The name must be unique; an owner id, when
// present, must reference an existing user.
func (s *Service) Create(ctx context.Context, input CreateStoreInput) (*domain.Store, error) {
	store := &domain.Store{
		Name:    input.Name,
		Email:   input.Email,
		Address: input.Address,
		OwnerID: input.OwnerID,
	}
	if err := s.repo.CreateStore(ctx, store); err != nil {
		return nil, err
	}
	return store, nil
}

// ListForUser returns every store with its overall average rating and the
// requesting user's own rating, optionally narrowed by a search term matched
// against name or address.
func (s *Service) ListForUser(ctx context.Context, userID int64, search string) ([]domain.StoreWithRatings, error) {
	rows, err := s.repo.ListWithUserRatings(ctx, userID, search)
	if err != nil {
		return nil, fmt.Errorf("list stores: %w", err)
	}

	result := make([]domain.StoreWithRatings, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.StoreWithRatings{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			Address:       row.Address,
			OverallRating: domain.FormatAverage(row.OverallRating),
			UserRating:    row.UserRating,
		})
	}
	return result, nil
}

// AdminList returns stores with overall averages, filtered by the admin's
// optional substring filters, ordered by id ascending.
func (s *Service) AdminList(ctx context.Context, filter AdminFilter) ([]domain.StoreWithAverage, error) {
	rows, err := s.repo.ListWithAverages(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("admin list stores: %w", err)
	}

	result := make([]domain.StoreWithAverage, 0, len(rows))
	for _, row := range rows {
		result = append(result, domain.StoreWithAverage{
			ID:            row.ID,
			Name:          row.Name,
			Email:         row.Email,
			Address:       row.Address,
			OverallRating: domain.FormatAverage(row.OverallRating),
		})
	}
	return result, nil
}
