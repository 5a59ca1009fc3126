package order

import (
	"fmt"
	"time"

	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/shared"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// LineItem represents one product line inside a cart
// The unit price is snapshot at creation time and does NOT track later
// product price changes unless RefreshPrice is called explicitly
type LineItem struct {
	ID          uuid.UUID
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   valueobject.Money
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLineItem creates a line item for the given product and quantity
// Fails with INVALID_PRODUCT / INVALID_QUANTITY when the product is nil
// or the quantity is not positive; there is no clamping fallback
func NewLineItem(product *catalog.Product, quantity int) (*LineItem, error) {
	if product == nil {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product cannot be nil")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	now := time.Now()
	return &LineItem{
		ID:          uuid.New(),
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.Price,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// SetQuantity replaces the quantity
// Rejected when the new quantity is not positive; state is unchanged
func (i *LineItem) SetQuantity(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.UpdatedAt = time.Now()

	return nil
}

// AddQuantity increases the quantity by the given amount
// The frozen unit price is kept as-is
func (i *LineItem) AddQuantity(delta int) error {
	if delta <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity += delta
	i.UpdatedAt = time.Now()

	return nil
}

// TotalPrice returns unit price times quantity
func (i *LineItem) TotalPrice() valueobject.Money {
	return i.UnitPrice.MultiplyByInt(int64(i.Quantity))
}

// RefreshPrice re-reads the current product price into the snapshot
// This is the only way a line item picks up a price change
func (i *LineItem) RefreshPrice(product *catalog.Product) error {
	if product == nil || product.ID != i.ProductID {
		return shared.NewDomainError("INVALID_PRODUCT", "Product does not match this line item")
	}

	i.UnitPrice = product.Price
	i.UpdatedAt = time.Now()

	return nil
}

// String returns a display line for the item
func (i *LineItem) String() string {
	return fmt.Sprintf("%s x%d @ %s = %s", i.ProductName, i.Quantity, i.UnitPrice, i.TotalPrice())
}
