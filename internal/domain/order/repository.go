package order

import "context"

// Repository stores validated carts as the order ledger
type Repository interface {
	// Save appends a freshly validated cart to the ledger and assigns
	// it the next sequential order ID, starting at 1
	// Returns ErrAlreadyExists when the cart already carries an ID
	Save(ctx context.Context, cart *Cart) error
	// FindByID returns the order with the given ID, ErrNotFound when absent
	FindByID(ctx context.Context, id int64) (*Cart, error)
	// FindByCustomer returns all orders placed by the given email,
	// in validation order
	FindByCustomer(ctx context.Context, email string) ([]*Cart, error)
	// FindAll returns every order in validation order
	FindAll(ctx context.Context) ([]*Cart, error)
	// Count returns the number of stored orders
	Count(ctx context.Context) (int64, error)
}
