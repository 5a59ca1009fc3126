package account

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/eshop/backend/internal/domain/account"
	"github.com/eshop/backend/internal/domain/shared"
)

// MockAccountRepository is a mock implementation of account.Repository
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Save(ctx context.Context, acc *account.Account) error {
	args := m.Called(ctx, acc)
	return args.Error(0)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) Authenticate(ctx context.Context, email, password string) (*account.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*account.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context) ([]*account.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*account.Account), args.Error(1)
}

func (m *MockAccountRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestServiceRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new customer", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("EmailExists", ctx, "jean.dupont@example.com").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*account.Account")).Return(nil)

		svc := NewService(repo, zap.NewNop())

		acc, err := svc.Register(ctx, "Dupont", "Jean", "jean.dupont@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, account.RoleUser, acc.Role)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a taken email", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("EmailExists", ctx, "jean.dupont@example.com").Return(true, nil)

		svc := NewService(repo, zap.NewNop())

		acc, err := svc.Register(ctx, "Dupont", "Jean", "jean.dupont@example.com", "secret")
		assert.Error(t, err)
		assert.Nil(t, acc)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an invalid email before touching the store", func(t *testing.T) {
		repo := new(MockAccountRepository)
		svc := NewService(repo, zap.NewNop())

		acc, err := svc.Register(ctx, "Dupont", "Jean", "not-an-email", "secret")
		assert.Error(t, err)
		assert.Nil(t, acc)
		repo.AssertNotCalled(t, "EmailExists", mock.Anything, mock.Anything)
	})

	t.Run("registers an admin", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("EmailExists", ctx, "admin@eshop.com").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*account.Account")).Return(nil)

		svc := NewService(repo, zap.NewNop())

		acc, err := svc.RegisterAdmin(ctx, "Admin", "Super", "admin@eshop.com", "admin123")
		require.NoError(t, err)
		assert.True(t, acc.IsAdmin())
	})
}

func TestServiceLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored account", func(t *testing.T) {
		stored, err := account.NewUser("Dupont", "Jean", "jean.dupont@example.com", "secret")
		require.NoError(t, err)

		repo := new(MockAccountRepository)
		repo.On("Authenticate", ctx, "jean.dupont@example.com", "secret").Return(stored, nil)

		svc := NewService(repo, zap.NewNop())

		acc, err := svc.Login(ctx, "jean.dupont@example.com", "secret")
		require.NoError(t, err)
		assert.Same(t, stored, acc)
	})

	t.Run("propagates invalid credentials", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("Authenticate", ctx, "jean.dupont@example.com", "wrong").
			Return(nil, account.ErrInvalidCredentials)

		svc := NewService(repo, zap.NewNop())

		acc, err := svc.Login(ctx, "jean.dupont@example.com", "wrong")
		assert.ErrorIs(t, err, account.ErrInvalidCredentials)
		assert.Nil(t, acc)
	})
}

func TestServiceAddress(t *testing.T) {
	ctx := context.Background()

	t.Run("sets a customer address", func(t *testing.T) {
		stored, err := account.NewUser("Dupont", "Jean", "jean.dupont@example.com", "secret")
		require.NoError(t, err)

		repo := new(MockAccountRepository)
		repo.On("FindByEmail", ctx, "jean.dupont@example.com").Return(stored, nil)

		svc := NewService(repo, zap.NewNop())

		acc, err := svc.SetAddress(ctx, "jean.dupont@example.com", "Paris", "11e", "Porte B")
		require.NoError(t, err)
		assert.True(t, acc.HasAddress())
	})

	t.Run("unknown email", func(t *testing.T) {
		repo := new(MockAccountRepository)
		repo.On("FindByEmail", ctx, "nobody@example.com").Return(nil, shared.ErrNotFound)

		svc := NewService(repo, zap.NewNop())

		acc, err := svc.SetAddress(ctx, "nobody@example.com", "Paris", "", "")
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Nil(t, acc)
	})

	t.Run("removes an address", func(t *testing.T) {
		stored, err := account.NewUser("Dupont", "Jean", "jean.dupont@example.com", "secret")
		require.NoError(t, err)
		require.NoError(t, stored.SetAddress(account.NewAddress("Paris", "11e", "")))

		repo := new(MockAccountRepository)
		repo.On("FindByEmail", ctx, "jean.dupont@example.com").Return(stored, nil)

		svc := NewService(repo, zap.NewNop())

		acc, err := svc.RemoveAddress(ctx, "jean.dupont@example.com")
		require.NoError(t, err)
		assert.False(t, acc.HasAddress())
	})
}

func TestServiceListCustomers(t *testing.T) {
	ctx := context.Background()

	user, err := account.NewUser("Dupont", "Jean", "jean.dupont@example.com", "secret")
	require.NoError(t, err)
	admin, err := account.NewAdmin("Admin", "Super", "admin@eshop.com", "admin123")
	require.NoError(t, err)

	repo := new(MockAccountRepository)
	repo.On("FindAll", ctx).Return([]*account.Account{user, admin}, nil)

	svc := NewService(repo, zap.NewNop())

	customers, err := svc.ListCustomers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Same(t, user, customers[0])
}
