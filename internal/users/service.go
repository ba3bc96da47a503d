// Package users provides the administrator's user directory: creating users
// with any role, listing with filters and whitelisted sorting, and detail
// lookups that attach the owned store for OWNER accounts.
package users

import (
	"context"
	"fmt"

	"github.com/bissquit/store-rating/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// Service implements user directory business logic.
type Service struct {
	repo Repository
}

// NewService creates a new users service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateUserInput holds data for an admin-created user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  string
	Role     domain.Role
}

// Create adds a new user with the given role.
func (s *Service) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Address:      input.Address,
		Role:         input.Role,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UserSummary is one row of the admin user listing.
type UserSummary struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Address string      `json:"address"`
	Role    domain.Role `json:"role"`
}

// List returns users matching the filter, sorted by the requested whitelisted
// column.
func (s *Service) List(ctx context.Context, filter Filter) ([]UserSummary, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	result := make([]UserSummary, 0, len(rows))
	for _, u := range rows {
		result = append(result, UserSummary{
			ID:      u.ID,
			Name:    u.Name,
			Email:   u.Email,
			Address: u.Address,
			Role:    u.Role,
		})
	}
	return result, nil
}

// OwnedStore is the store block attached to an OWNER's detail view.
type OwnedStore struct {
	StoreID       int64   `json:"store_id"`
	StoreName     string  `json:"store_name"`
	AverageRating *string `json:"average_rating"`
}

// UserDetail is the admin detail view of a user. Store is present only for
// OWNER accounts that own a store.
type UserDetail struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Email   string      `json:"email"`
	Address string      `json:"address"`
	Role    domain.Role `json:"role"`
	Store   *OwnedStore `json:"store,omitempty"`
}

// GetByID returns a user's detail view. For OWNER accounts the owned store
// and its average rating are attached when one exists.
func (s *Service) GetByID(ctx context.Context, id int64) (*UserDetail, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &UserDetail{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Address: user.Address,
		Role:    user.Role,
	}

	if user.Role == domain.RoleOwner {
		info, err := s.repo.GetOwnedStore(ctx, user.ID)
		if err != nil {
			return nil, fmt.Errorf("owned store for user %d: %w", user.ID, err)
		}
		if info != nil {
			detail.Store = &OwnedStore{
				StoreID:       info.StoreID,
				StoreName:     info.StoreName,
				AverageRating: domain.FormatAverage(info.AverageRating),
			}
		}
	}
	return detail, nil
}
