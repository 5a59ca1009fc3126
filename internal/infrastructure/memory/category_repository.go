package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/shared"
)

// normalizeName trims surrounding whitespace so the index key always
// matches the name the category carries
func normalizeName(name string) string {
	return strings.TrimSpace(name)
}

// CategoryRepository is an in-memory implementation of catalog.CategoryRepository
// Categories are keyed by name and kept in insertion order
type CategoryRepository struct {
	mu         sync.RWMutex
	categories []*catalog.Category
	byName     map[string]*catalog.Category
}

var _ catalog.CategoryRepository = (*CategoryRepository)(nil)

// NewCategoryRepository creates an empty category repository
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{
		categories: make([]*catalog.Category, 0),
		byName:     make(map[string]*catalog.Category),
	}
}

// Create stores a new empty category, rejecting duplicate names
func (r *CategoryRepository) Create(ctx context.Context, name, description string) (*catalog.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = normalizeName(name)
	if _, exists := r.byName[name]; exists {
		return nil, shared.ErrAlreadyExists
	}

	category := catalog.NewCategory(name, description)
	r.categories = append(r.categories, category)
	r.byName[name] = category

	return category, nil
}

// Rename changes a category's name, keeping names unique
// Renaming to the current name is an accepted no-op
func (r *CategoryRepository) Rename(ctx context.Context, category *catalog.Category, newName string) error {
	if category == nil {
		return shared.ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	newName = normalizeName(newName)
	if newName == category.Name {
		return nil
	}
	if _, exists := r.byName[newName]; exists {
		return shared.ErrAlreadyExists
	}

	delete(r.byName, category.Name)
	category.SetName(newName)
	r.byName[newName] = category

	return nil
}

// FindByName returns the category registered under the name
func (r *CategoryRepository) FindByName(ctx context.Context, name string) (*catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, exists := r.byName[normalizeName(name)]
	if !exists {
		return nil, shared.ErrNotFound
	}
	return category, nil
}

// FindByProduct returns the first category containing the product
func (r *CategoryRepository) FindByProduct(ctx context.Context, productID int64) (*catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, category := range r.categories {
		if category.ContainsProduct(productID) {
			return category, nil
		}
	}
	return nil, shared.ErrNotFound
}

// FindAll returns all categories in insertion order
func (r *CategoryRepository) FindAll(ctx context.Context) ([]*catalog.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*catalog.Category, len(r.categories))
	copy(result, r.categories)
	return result, nil
}

// Delete removes an empty category
func (r *CategoryRepository) Delete(ctx context.Context, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = normalizeName(name)
	category, exists := r.byName[name]
	if !exists {
		return shared.ErrNotFound
	}
	if !category.IsEmpty() {
		return shared.ErrInvalidState
	}

	delete(r.byName, name)
	for idx, candidate := range r.categories {
		if candidate == category {
			r.categories = append(r.categories[:idx], r.categories[idx+1:]...)
			break
		}
	}

	return nil
}

// RemoveProductFromAll detaches the product from every category holding it
func (r *CategoryRepository) RemoveProductFromAll(ctx context.Context, productID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	touched := 0
	for _, category := range r.categories {
		if category.RemoveProductByID(productID) {
			touched++
		}
	}
	return touched, nil
}

// ExistsByName reports whether a category with the name exists
func (r *CategoryRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.byName[normalizeName(name)]
	return exists, nil
}

// Count returns the number of stored categories
func (r *CategoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.categories)), nil
}
