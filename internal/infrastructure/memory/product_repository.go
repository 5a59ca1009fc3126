package memory

import (
	"context"
	"sync"

	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/shared"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

// ProductRepository is an in-memory implementation of catalog.ProductRepository
// It owns the product ID sequence, starting at 0
type ProductRepository struct {
	mu       sync.RWMutex
	products []*catalog.Product
	byID     map[int64]*catalog.Product
	nextID   int64
}

var _ catalog.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository creates an empty product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make([]*catalog.Product, 0),
		byID:     make(map[int64]*catalog.Product),
	}
}

// Create assigns the next sequential ID and stores a new product
func (r *ProductRepository) Create(ctx context.Context, name, description string, price valueobject.Money) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product := catalog.NewProduct(r.nextID, name, description, price)
	r.nextID++

	r.products = append(r.products, product)
	r.byID[product.ID] = product

	return product, nil
}

// FindByID returns the product with the given ID
func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.byID[id]
	if !exists {
		return nil, shared.ErrNotFound
	}
	return product, nil
}

// FindAll returns all products in creation order
func (r *ProductRepository) FindAll(ctx context.Context) ([]*catalog.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*catalog.Product, len(r.products))
	copy(result, r.products)
	return result, nil
}

// Count returns the number of stored products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}
