package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/eshop/backend/internal/domain/account"
	"github.com/eshop/backend/internal/domain/shared"
)

// AccountRepository is an in-memory implementation of account.Repository
// Lookups are keyed by lowercased email
type AccountRepository struct {
	mu       sync.RWMutex
	accounts []*account.Account
	byEmail  map[string]*account.Account
}

var _ account.Repository = (*AccountRepository)(nil)

// NewAccountRepository creates an empty account repository
func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make([]*account.Account, 0),
		byEmail:  make(map[string]*account.Account),
	}
}

// Save registers a new account, rejecting duplicate emails
func (r *AccountRepository) Save(ctx context.Context, acc *account.Account) error {
	if acc == nil {
		return shared.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(acc.Email)
	if _, exists := r.byEmail[key]; exists {
		return shared.ErrAlreadyExists
	}

	r.accounts = append(r.accounts, acc)
	r.byEmail[key] = acc

	return nil
}

// FindByEmail returns the account registered under the email
func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acc, exists := r.byEmail[normalizeEmail(email)]
	if !exists {
		return nil, shared.ErrNotFound
	}
	return acc, nil
}

// EmailExists reports whether the email is already registered
func (r *AccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byEmail[normalizeEmail(email)]
	return exists, nil
}

// Authenticate returns the stored account matching the credentials
func (r *AccountRepository) Authenticate(ctx context.Context, email, password string) (*account.Account, error) {
	r.mu.RLock()
	acc, exists := r.byEmail[normalizeEmail(email)]
	r.mu.RUnlock()

	if !exists || !acc.VerifyPassword(password) {
		return nil, account.ErrInvalidCredentials
	}
	return acc, nil
}

// FindAll returns all accounts in registration order
func (r *AccountRepository) FindAll(ctx context.Context) ([]*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*account.Account, len(r.accounts))
	copy(result, r.accounts)
	return result, nil
}

// Count returns the number of registered accounts
func (r *AccountRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.accounts)), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
