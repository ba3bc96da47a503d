// Package ratings provides the rating submission engine. A submission is an
// upsert keyed on the (user, store) pair, so repeated submissions overwrite
// the caller's previous rating instead of stacking new rows.
package ratings

import (
	"context"

	"github.com/bissquit/store-rating/internal/domain"
)

// Service implements rating business logic.
type Service struct {
	repo Repository
}

// NewService creates a new rating service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// SubmitInput holds data for submitting a rating.
type SubmitInput struct {
	UserID  int64
	StoreID int64
	Value   int
}

// Submit records the user's rating for a store, overwriting any rating the
// same user previously gave it. The returned bool is true when this was the
// user's first rating for the store.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Rating, bool, error) {
	rating := &domain.Rating{
		UserID:  input.UserID,
		StoreID: input.StoreID,
		Value:   input.Value,
	}
	created, err := s.repo.Upsert(ctx, rating)
	if err != nil {
		return nil, false, err
	}
	return rating, created, nil
}
