package identity

import (
	"context"

	"github.com/bissquit/store-rating/internal/domain"
)

// Repository defines the interface for identity data operations.
type Repository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error
}
