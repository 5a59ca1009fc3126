package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

// Product represents a product in the catalog
// IDs form a monotonic sequence starting at 0, assigned by the repository
// at creation time and never reused
//
// Creation performs no validation on the price sign or name emptiness;
// callers validate upstream when they need to
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       valueobject.Money
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a product with an already-assigned ID
// Only repositories should call this; use ProductRepository.Create elsewhere
func NewProduct(id int64, name, description string, price valueobject.Money) *Product {
	now := time.Now()
	return &Product{
		ID:          id,
		Name:        strings.TrimSpace(name),
		Description: description,
		Price:       price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetName sets the product name
func (p *Product) SetName(name string) {
	p.Name = strings.TrimSpace(name)
	p.UpdatedAt = time.Now()
}

// SetDescription sets the product description
func (p *Product) SetDescription(description string) {
	p.Description = description
	p.UpdatedAt = time.Now()
}

// SetPrice sets the product price
// Line items that already snapshot an earlier price are not affected
func (p *Product) SetPrice(price valueobject.Money) {
	p.Price = price
	p.UpdatedAt = time.Now()
}

// String returns a display summary of the product
func (p *Product) String() string {
	return fmt.Sprintf("Product{id=%d, name=%q, price=%s}", p.ID, p.Name, p.Price)
}
