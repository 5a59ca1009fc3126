package memory

import (
	"context"
	"sync"

	"github.com/eshop/backend/internal/domain/order"
	"github.com/eshop/backend/internal/domain/shared"
)

// OrderRepository is an in-memory implementation of order.Repository
// It owns the order ID sequence; IDs start at 1 and follow validation order
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*order.Cart
	byID   map[int64]*order.Cart
	nextID int64
}

var _ order.Repository = (*OrderRepository)(nil)

// NewOrderRepository creates an empty order repository
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make([]*order.Cart, 0),
		byID:   make(map[int64]*order.Cart),
		nextID: 1,
	}
}

// Save appends a validated cart to the ledger and assigns its order ID
func (r *OrderRepository) Save(ctx context.Context, cart *order.Cart) error {
	if cart == nil {
		return shared.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cart.ID != 0 {
		return shared.ErrAlreadyExists
	}

	cart.ID = r.nextID
	r.nextID++

	r.orders = append(r.orders, cart)
	r.byID[cart.ID] = cart

	return nil
}

// FindByID returns the order with the given ID
func (r *OrderRepository) FindByID(ctx context.Context, id int64) (*order.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, exists := r.byID[id]
	if !exists {
		return nil, shared.ErrNotFound
	}
	return cart, nil
}

// FindByCustomer returns the customer's orders in validation order
func (r *OrderRepository) FindByCustomer(ctx context.Context, email string) ([]*order.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := normalizeEmail(email)
	result := make([]*order.Cart, 0)
	for _, cart := range r.orders {
		if normalizeEmail(cart.CustomerEmail) == key {
			result = append(result, cart)
		}
	}
	return result, nil
}

// FindAll returns every order in validation order
func (r *OrderRepository) FindAll(ctx context.Context) ([]*order.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*order.Cart, len(r.orders))
	copy(result, r.orders)
	return result, nil
}

// Count returns the number of stored orders
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.orders)), nil
}
