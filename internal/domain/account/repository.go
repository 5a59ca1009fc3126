package account

import (
	"context"

	"github.com/eshop/backend/internal/domain/shared"
)

// ErrInvalidCredentials is returned when authentication fails
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

// Repository defines the interface for account storage
// The store is append-only: accounts are never deleted
type Repository interface {
	// Save registers a new account
	// Fails with shared.ErrAlreadyExists if the email is taken
	Save(ctx context.Context, acc *Account) error

	// FindByEmail finds an account by its email
	FindByEmail(ctx context.Context, email string) (*Account, error)

	// EmailExists checks if an account with the given email exists
	EmailExists(ctx context.Context, email string) (bool, error)

	// Authenticate finds the account matching the (email, password) pair
	// Returns the stored account directly; fails with ErrInvalidCredentials
	Authenticate(ctx context.Context, email, password string) (*Account, error)

	// FindAll returns all accounts as a defensive copy of the collection
	FindAll(ctx context.Context) ([]*Account, error)

	// Count counts registered accounts
	Count(ctx context.Context) (int64, error)
}
