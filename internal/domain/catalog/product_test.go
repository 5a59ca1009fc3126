package catalog

import (
	"testing"

	"github.com/eshop/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
)

func TestNewProduct(t *testing.T) {
	p := NewProduct(0, "Laptop HP", "15-inch HP laptop", valueobject.NewMoneyEURFromFloat(799.99))

	assert.Equal(t, int64(0), p.ID)
	assert.Equal(t, "Laptop HP", p.Name)
	assert.Equal(t, "15-inch HP laptop", p.Description)
	assert.True(t, p.Price.Equals(valueobject.NewMoneyEURFromFloat(799.99)))
}

func TestProductSetters(t *testing.T) {
	p := NewProduct(1, "Phone", "Galaxy S23", valueobject.NewMoneyEURFromFloat(599.99))

	p.SetName("  Smartphone Samsung ")
	assert.Equal(t, "Smartphone Samsung", p.Name)

	p.SetDescription("Galaxy S23 128GB")
	assert.Equal(t, "Galaxy S23 128GB", p.Description)

	p.SetPrice(valueobject.NewMoneyEURFromFloat(549.99))
	assert.True(t, p.Price.Equals(valueobject.NewMoneyEURFromFloat(549.99)))
}

func TestProductCreationSkipsValidation(t *testing.T) {
	// Upstream callers decide what is acceptable; the catalog stores as-is.
	p := NewProduct(2, "", "", valueobject.NewMoneyEURFromFloat(-1))
	assert.Equal(t, "", p.Name)
	assert.True(t, p.Price.IsNegative())
}

func TestProductString(t *testing.T) {
	p := NewProduct(3, "Novel", "French best-seller", valueobject.NewMoneyEURFromFloat(12.99))
	assert.Equal(t, `Product{id=3, name="Novel", price=12.99 EUR}`, p.String())
}
