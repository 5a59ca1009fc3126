package account

import (
	"context"

	"go.uber.org/zap"

	"github.com/eshop/backend/internal/domain/account"
	"github.com/eshop/backend/internal/domain/shared"
)

// Service handles account registration, authentication and profile updates
type Service struct {
	repo   account.Repository
	logger *zap.Logger
}

// NewService creates a new account Service
func NewService(repo account.Repository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Register creates a customer account
// The email must not already be registered
func (s *Service) Register(ctx context.Context, lastName, firstName, email, password string) (*account.Account, error) {
	return s.register(ctx, lastName, firstName, email, password, account.RoleUser)
}

// RegisterAdmin creates an administrator account
func (s *Service) RegisterAdmin(ctx context.Context, lastName, firstName, email, password string) (*account.Account, error) {
	return s.register(ctx, lastName, firstName, email, password, account.RoleAdmin)
}

func (s *Service) register(ctx context.Context, lastName, firstName, email, password string, role account.Role) (*account.Account, error) {
	var (
		acc *account.Account
		err error
	)
	if role == account.RoleAdmin {
		acc, err = account.NewAdmin(lastName, firstName, email, password)
	} else {
		acc, err = account.NewUser(lastName, firstName, email, password)
	}
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.EmailExists(ctx, acc.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		s.logger.Warn("registration rejected, email taken", zap.String("email", acc.Email))
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	}

	if err := s.repo.Save(ctx, acc); err != nil {
		return nil, err
	}

	s.logger.Info("account registered",
		zap.String("email", acc.Email),
		zap.String("role", acc.Role.String()),
	)

	return acc, nil
}

// Login authenticates with an email and password pair
// Returns the stored account on success
func (s *Service) Login(ctx context.Context, email, password string) (*account.Account, error) {
	acc, err := s.repo.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Warn("login failed", zap.String("email", email))
		return nil, err
	}

	s.logger.Info("login succeeded",
		zap.String("email", acc.Email),
		zap.String("role", acc.Role.String()),
	)

	return acc, nil
}

// SetAddress records the customer's delivery address
func (s *Service) SetAddress(ctx context.Context, email, city, sector, description string) (*account.Account, error) {
	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := acc.SetAddress(account.NewAddress(city, sector, description)); err != nil {
		return nil, err
	}

	return acc, nil
}

// RemoveAddress clears the customer's delivery address
func (s *Service) RemoveAddress(ctx context.Context, email string) (*account.Account, error) {
	acc, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	acc.RemoveAddress()

	return acc, nil
}

// Get returns the account registered under the email
func (s *Service) Get(ctx context.Context, email string) (*account.Account, error) {
	return s.repo.FindByEmail(ctx, email)
}

// List returns all registered accounts
func (s *Service) List(ctx context.Context) ([]*account.Account, error) {
	return s.repo.FindAll(ctx)
}

// ListCustomers returns registered customer accounts only
func (s *Service) ListCustomers(ctx context.Context) ([]*account.Account, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	customers := make([]*account.Account, 0, len(all))
	for _, acc := range all {
		if acc.IsUser() {
			customers = append(customers, acc)
		}
	}
	return customers, nil
}
