// Package dashboard provides the owner dashboard (owned store summary and
// rater list) and the administrator's platform-wide counters.
package dashboard

import (
	"context"
	"fmt"
	"sync"

	"github.com/bissquit/store-rating/internal/domain"
)

// Service implements dashboard business logic.
type Service struct {
	repo Repository
}

// NewService creates a new dashboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// OwnerSummary is the owner's store summary payload.
type OwnerSummary struct {
	StoreID       int64   `json:"store_id"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	AverageRating *string `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

// StoreSummary returns the owner's store with its average rating and the
// number of ratings it has received.
func (s *Service) StoreSummary(ctx context.Context, ownerID int64) (*OwnerSummary, error) {
	store, err := s.repo.GetOwnedStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &OwnerSummary{
		StoreID:       store.StoreID,
		Name:          store.Name,
		Address:       store.Address,
		AverageRating: domain.FormatAverage(store.AverageRating),
		TotalRatings:  store.TotalRatings,
	}, nil
}

// Raters lists the users who rated the owner's store, newest rating change
// first. An owner with no store or no ratings gets an empty slice.
func (s *Service) Raters(ctx context.Context, ownerID int64) ([]domain.RaterEntry, error) {
	raters, err := s.repo.ListRaters(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list raters for owner %d: %w", ownerID, err)
	}
	return raters, nil
}

// AdminStats is the administrator dashboard payload.
type AdminStats struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

// AdminDashboard collects the three platform counters. The counts run
// concurrently; the first error wins.
func (s *Service) AdminDashboard(ctx context.Context) (*AdminStats, error) {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		stats    AdminStats
		firstErr error
	)

	count := func(name string, fn func(context.Context) (int64, error), dst *int64) {
		defer wg.Done()
		n, err := fn(ctx)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("count %s: %w", name, err)
			}
			return
		}
		*dst = n
	}

	wg.Add(3)
	go count("users", s.repo.CountUsers, &stats.TotalUsers)
	go count("stores", s.repo.CountStores, &stats.TotalStores)
	go count("ratings", s.repo.CountRatings, &stats.TotalRatings)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return &stats, nil
}
