package catalog

import (
	"context"

	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

// ProductRepository defines the interface for product storage
type ProductRepository interface {
	// Create assigns the next sequential ID (starting at 0) and stores
	// a new product; no validation is applied to name or price
	Create(ctx context.Context, name, description string, price valueobject.Money) (*Product, error)

	// FindByID finds a product by its ID
	// Fails with shared.ErrNotFound when absent
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindAll returns all products as a defensive copy of the collection
	FindAll(ctx context.Context) ([]*Product, error)

	// Count counts stored products
	Count(ctx context.Context) (int64, error)
}
