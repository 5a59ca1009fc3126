package catalog

import (
	"context"
)

// CategoryRepository defines the interface for category storage
// Category names are the unique key across the collection
type CategoryRepository interface {
	// Create stores a new empty category
	// Fails with shared.ErrAlreadyExists if the name is taken
	Create(ctx context.Context, name, description string) (*Category, error)

	// Rename changes a category's name
	// Allowed when newName is unused or equals the current name (no-op);
	// fails with shared.ErrAlreadyExists otherwise
	Rename(ctx context.Context, category *Category, newName string) error

	// FindByName finds a category by its name
	FindByName(ctx context.Context, name string) (*Category, error)

	// FindByProduct finds the first category containing the product,
	// scanning categories in insertion order
	FindByProduct(ctx context.Context, productID int64) (*Category, error)

	// FindAll returns all categories as a defensive copy of the collection
	FindAll(ctx context.Context) ([]*Category, error)

	// Delete removes a category
	// Fails with shared.ErrInvalidState unless its product list is empty
	Delete(ctx context.Context, name string) error

	// RemoveProductFromAll removes the product from every category that
	// holds it and returns how many categories were touched
	RemoveProductFromAll(ctx context.Context, productID int64) (int, error)

	// ExistsByName checks if a category with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Count counts stored categories
	Count(ctx context.Context) (int64, error)
}
