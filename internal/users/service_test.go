package users

import (
	"context"
	"testing"

	"github.com/bissquit/store-rating/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type mockRepository struct {
	createUserFn    func(ctx context.Context, user *domain.User) error
	listFn          func(ctx context.Context, filter Filter) ([]domain.User, error)
	getByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	getOwnedStoreFn func(ctx context.Context, ownerID int64) (*StoreInfo, error)
}

func (m *mockRepository) CreateUser(ctx context.Context, user *domain.User) error {
	return m.createUserFn(ctx, user)
}

func (m *mockRepository) List(ctx context.Context, filter Filter) ([]domain.User, error) {
	return m.listFn(ctx, filter)
}

func (m *mockRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockRepository) GetOwnedStore(ctx context.Context, ownerID int64) (*StoreInfo, error) {
	return m.getOwnedStoreFn(ctx, ownerID)
}

func float64Ptr(v float64) *float64 { return &v }

func TestService_Create(t *testing.T) {
	t.Run("hashes password and keeps requested role", func(t *testing.T) {
		// Arrange
		var stored *domain.User
		repo := &mockRepository{
			createUserFn: func(_ context.Context, user *domain.User) error {
				user.ID = 5
				stored = user
				return nil
			},
		}
		svc := NewService(repo)

		// Act
		user, err := svc.Create(context.Background(), CreateUserInput{
			Name:     "Administrator Account Holder Jane",
			Email:    "jane@example.com",
			Password: "Sup3rSecret!",
			Address:  "1 Admin Way",
			Role:     domain.RoleOwner,
		})

		// Assert
		require.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)
		assert.Equal(t, domain.RoleOwner, stored.Role)
		assert.NotEqual(t, "Sup3rSecret!", stored.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("Sup3rSecret!")))
	})

	t.Run("propagates duplicate email error", func(t *testing.T) {
		// Arrange
		repo := &mockRepository{
			createUserFn: func(_ context.Context, _ *domain.User) error {
				return ErrEmailExists
			},
		}
		svc := NewService(repo)

		// Act
		_, err := svc.Create(context.Background(), CreateUserInput{
			Password: "Sup3rSecret!",
			Role:     domain.RoleNormal,
		})

		// Assert
		assert.ErrorIs(t, err, ErrEmailExists)
	})
}

func TestService_List(t *testing.T) {
	t.Run("maps rows without exposing password material", func(t *testing.T) {
		// Arrange
		repo := &mockRepository{
			listFn: func(_ context.Context, filter Filter) ([]domain.User, error) {
				assert.Equal(t, "OWNER", filter.Role)
				assert.Equal(t, "name", filter.SortBy)
				return []domain.User{
					{ID: 1, Name: "One", Email: "one@example.com", Role: domain.RoleOwner, PasswordHash: "x"},
				}, nil
			},
		}
		svc := NewService(repo)

		// Act
		listing, err := svc.List(context.Background(), Filter{Role: "OWNER", SortBy: "name"})

		// Assert
		require.NoError(t, err)
		require.Len(t, listing, 1)
		assert.Equal(t, UserSummary{ID: 1, Name: "One", Email: "one@example.com", Role: domain.RoleOwner}, listing[0])
	})
}

func TestService_GetByID(t *testing.T) {
	t.Run("attaches owned store for owner with ratings", func(t *testing.T) {
		// Arrange
		repo := &mockRepository{
			getByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: id, Name: "Owner", Role: domain.RoleOwner}, nil
			},
			getOwnedStoreFn: func(_ context.Context, ownerID int64) (*StoreInfo, error) {
				assert.Equal(t, int64(9), ownerID)
				return &StoreInfo{StoreID: 4, StoreName: "Shop", AverageRating: float64Ptr(4.25)}, nil
			},
		}
		svc := NewService(repo)

		// Act
		detail, err := svc.GetByID(context.Background(), 9)

		// Assert
		require.NoError(t, err)
		require.NotNil(t, detail.Store)
		assert.Equal(t, int64(4), detail.Store.StoreID)
		require.NotNil(t, detail.Store.AverageRating)
		assert.Equal(t, "4.2", *detail.Store.AverageRating)
	})

	t.Run("owner without a store has no store block", func(t *testing.T) {
		// Arrange
		repo := &mockRepository{
			getByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: id, Role: domain.RoleOwner}, nil
			},
			getOwnedStoreFn: func(_ context.Context, _ int64) (*StoreInfo, error) {
				return nil, nil
			},
		}
		svc := NewService(repo)

		// Act
		detail, err := svc.GetByID(context.Background(), 9)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, detail.Store)
	})

	t.Run("normal user never queries stores", func(t *testing.T) {
		// Arrange
		repo := &mockRepository{
			getByIDFn: func(_ context.Context, id int64) (*domain.User, error) {
				return &domain.User{ID: id, Role: domain.RoleNormal}, nil
			},
			getOwnedStoreFn: func(_ context.Context, _ int64) (*StoreInfo, error) {
				t.Fatal("GetOwnedStore must not be called for NORMAL users")
				return nil, nil
			},
		}
		svc := NewService(repo)

		// Act
		detail, err := svc.GetByID(context.Background(), 2)

		// Assert
		require.NoError(t, err)
		assert.Nil(t, detail.Store)
	})

	t.Run("unknown user propagates not found", func(t *testing.T) {
		// Arrange
		repo := &mockRepository{
			getByIDFn: func(_ context.Context, _ int64) (*domain.User, error) {
				return nil, ErrUserNotFound
			},
		}
		svc := NewService(repo)

		// Act
		_, err := svc.GetByID(context.Background(), 404)

		// Assert
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
