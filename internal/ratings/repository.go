package ratings

import (
	"context"

	"github.com/bissquit/store-rating/internal/domain"
)

// Repository defines the interface for rating data operations.
type Repository interface {
	// Upsert inserts or updates the rating for the rating's (user, store)
	// pair in a single statement and fills in the stored row. The returned
	// bool is true when a new row was inserted.
	Upsert(ctx context.Context, rating *domain.Rating) (bool, error)
}
