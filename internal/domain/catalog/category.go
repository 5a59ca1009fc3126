package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/eshop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Category groups products under a unique name
// Products are held by reference: the same product may belong to several
// categories at once, and a price change is visible through every category
type Category struct {
	Name        string
	Description string
	Products    []*Product
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewCategory creates a category with no products
// Name uniqueness is enforced by the repository, not here
func NewCategory(name, description string) *Category {
	now := time.Now()
	return &Category{
		Name:        strings.TrimSpace(name),
		Description: description,
		Products:    make([]*Product, 0),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// SetName sets the category name
// Uniqueness across the collection is enforced by the repository
func (c *Category) SetName(name string) {
	c.Name = strings.TrimSpace(name)
	c.UpdatedAt = time.Now()
}

// SetDescription sets the category description
func (c *Category) SetDescription(description string) {
	c.Description = description
	c.UpdatedAt = time.Now()
}

// AddProduct appends a product to the category, preserving insertion order
// Returns false without modifying anything if a product with the same ID
// is already present
func (c *Category) AddProduct(product *Product) bool {
	if product == nil || c.ContainsProduct(product.ID) {
		return false
	}

	c.Products = append(c.Products, product)
	c.UpdatedAt = time.Now()

	return true
}

// RemoveProduct removes a product by identity
// Returns whether a removal occurred
func (c *Category) RemoveProduct(product *Product) bool {
	if product == nil {
		return false
	}
	return c.RemoveProductByID(product.ID)
}

// RemoveProductByID removes every product with the given ID
// Returns whether a removal occurred
func (c *Category) RemoveProductByID(id int64) bool {
	removed := false
	kept := c.Products[:0]
	for _, p := range c.Products {
		if p.ID == id {
			removed = true
			continue
		}
		kept = append(kept, p)
	}
	c.Products = kept

	if removed {
		c.UpdatedAt = time.Now()
	}
	return removed
}

// ContainsProduct returns true if a product with the given ID is present
func (c *Category) ContainsProduct(id int64) bool {
	for _, p := range c.Products {
		if p.ID == id {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the category holds no products
func (c *Category) IsEmpty() bool {
	return len(c.Products) == 0
}

// ProductCount returns the number of products in the category
func (c *Category) ProductCount() int {
	return len(c.Products)
}

// AveragePrice returns the mean product price, zero when the category is empty
func (c *Category) AveragePrice() valueobject.Money {
	if len(c.Products) == 0 {
		return valueobject.ZeroEUR()
	}

	total := decimal.Zero
	for _, p := range c.Products {
		total = total.Add(p.Price.Amount())
	}
	return valueobject.NewMoneyEUR(total.Div(decimal.NewFromInt(int64(len(c.Products)))))
}

// CheapestProduct returns the lowest-priced product, nil when empty
// The first element wins ties
func (c *Category) CheapestProduct() *Product {
	if len(c.Products) == 0 {
		return nil
	}

	cheapest := c.Products[0]
	for _, p := range c.Products[1:] {
		if p.Price.Amount().LessThan(cheapest.Price.Amount()) {
			cheapest = p
		}
	}
	return cheapest
}

// MostExpensiveProduct returns the highest-priced product, nil when empty
// The first element wins ties
func (c *Category) MostExpensiveProduct() *Product {
	if len(c.Products) == 0 {
		return nil
	}

	expensive := c.Products[0]
	for _, p := range c.Products[1:] {
		if p.Price.Amount().GreaterThan(expensive.Price.Amount()) {
			expensive = p
		}
	}
	return expensive
}

// String returns a display summary of the category
func (c *Category) String() string {
	return fmt.Sprintf("Category{name=%q, products=%d}", c.Name, len(c.Products))
}
