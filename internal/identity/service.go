// Package identity provides signup, login, and password management on top of
// stateless JWT credentials.
package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/bissquit/store-rating/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// TokenIssuer signs a credential token for a user.
type TokenIssuer interface {
	Issue(ctx context.Context, user *domain.User) (string, error)
}

// Service implements identity business logic.
type Service struct {
	repo   Repository
	issuer TokenIssuer
}

// NewService creates a new identity service.
func NewService(repo Repository, issuer TokenIssuer) *Service {
	return &Service{
		repo:   repo,
		issuer: issuer,
	}
}

// SignupInput holds data for self-registration. Role is always NORMAL.
type SignupInput struct {
	Name     string
	Email    string
	Address  string
	Password string
}

// Signup registers a new NORMAL user. The email must be unused.
func (s *Service) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := hashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Address:      input.Address,
		Role:         domain.RoleNormal,
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and issues a signed token. The error
// distinguishes an unknown email from a wrong password, matching the API's
// published messages.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidEmail
		}
		return "", fmt.Errorf("get user by email: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", ErrInvalidPassword
	}

	token, err := s.issuer.Issue(ctx, user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// ChangePassword re-hashes and stores the user's own new password. Existing
// tokens stay valid until expiry; clients are expected to log out themselves.
func (s *Service) ChangePassword(ctx context.Context, userID int64, newPassword string) error {
	hash, err := hashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.repo.UpdatePassword(ctx, userID, hash)
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
