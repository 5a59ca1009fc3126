package order

import (
	"fmt"
	"time"

	"github.com/eshop/backend/internal/domain/account"
	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/shared"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

// Cart is the aggregate serving as both a pending cart and, once
// validated, an immutable order record
//
// A cart starts with ID 0; the order repository assigns the definitive
// sequential ID from its own counter when the cart is validated, so IDs
// can neither collide nor be skipped by abandoned drafts
type Cart struct {
	ID            int64
	CustomerEmail string
	CustomerName  string
	Items         []LineItem
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
	ValidatedAt   *time.Time
	DeliveredAt   *time.Time
}

// NewCart creates an empty draft cart bound to a customer account
func NewCart(customer *account.Account) (*Cart, error) {
	if customer == nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Cart must be bound to an account")
	}

	now := time.Now()
	return &Cart{
		CustomerEmail: customer.Email,
		CustomerName:  customer.FullName(),
		Items:         make([]LineItem, 0),
		Status:        StatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// AddItem adds a product to the cart
// If a line item for this product already exists its quantity is
// increased by the given amount and the original frozen unit price is
// kept; otherwise a new line item snapshots the current product price
func (c *Cart) AddItem(product *catalog.Product, quantity int) error {
	if !c.CanModify() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot add items to a %s cart", c.Status))
	}

	if existing := c.Item(productIDOf(product)); existing != nil {
		if quantity <= 0 {
			return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
		}
		if err := existing.AddQuantity(quantity); err != nil {
			return err
		}
		c.UpdatedAt = time.Now()
		return nil
	}

	item, err := NewLineItem(product, quantity)
	if err != nil {
		return err
	}

	c.Items = append(c.Items, *item)
	c.UpdatedAt = time.Now()

	return nil
}

// RemoveItem removes the line item for the given product ID
// Returns whether a removal occurred
func (c *Cart) RemoveItem(productID int64) bool {
	if !c.CanModify() {
		return false
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			c.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}

// UpdateQuantity sets the quantity of the line item for the product
// A quantity of zero or less is equivalent to RemoveItem
func (c *Cart) UpdateQuantity(productID int64, quantity int) error {
	if !c.CanModify() {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot update items in a %s cart", c.Status))
	}

	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}

	item := c.Item(productID)
	if item == nil {
		return shared.NewDomainError("ITEM_NOT_FOUND", "No line item for this product")
	}

	if err := item.SetQuantity(quantity); err != nil {
		return err
	}
	c.UpdatedAt = time.Now()

	return nil
}

// Item returns the line item for the product ID, nil when absent
func (c *Cart) Item(productID int64) *LineItem {
	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			return &c.Items[idx]
		}
	}
	return nil
}

// TotalPrice returns the sum of all line item totals
func (c *Cart) TotalPrice() valueobject.Money {
	total := valueobject.ZeroEUR()
	for idx := range c.Items {
		total = total.MustAdd(c.Items[idx].TotalPrice())
	}
	return total
}

// ItemCount returns the total number of articles (sum of quantities)
func (c *Cart) ItemCount() int {
	count := 0
	for idx := range c.Items {
		count += c.Items[idx].Quantity
	}
	return count
}

// LineCount returns the number of distinct product lines
func (c *Cart) LineCount() int {
	return len(c.Items)
}

// IsEmpty returns true when the cart holds no line items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Validate commits the cart, transitioning DRAFT -> VALIDATED exactly once
// An empty cart cannot be validated; a second call fails without touching
// state, so the order ledger is never appended to twice
func (c *Cart) Validate() error {
	if !c.Status.CanTransitionTo(StatusValidated) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot validate a %s cart", c.Status))
	}
	if c.IsEmpty() {
		return shared.NewDomainError("EMPTY_CART", "Cannot validate an empty cart")
	}

	now := time.Now()
	c.Status = StatusValidated
	c.ValidatedAt = &now
	c.UpdatedAt = now

	return nil
}

// Deliver marks a validated order as fulfilled
// Fails unless the current status is exactly VALIDATED
func (c *Cart) Deliver() error {
	if !c.Status.CanTransitionTo(StatusDelivered) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot deliver a %s cart", c.Status))
	}

	now := time.Now()
	c.Status = StatusDelivered
	c.DeliveredAt = &now
	c.UpdatedAt = now

	return nil
}

// IsDraft returns true if the cart has not been validated
func (c *Cart) IsDraft() bool {
	return c.Status == StatusDraft
}

// IsValidated returns true if the cart is a committed, undelivered order
func (c *Cart) IsValidated() bool {
	return c.Status == StatusValidated
}

// IsDelivered returns true if the order has been fulfilled
func (c *Cart) IsDelivered() bool {
	return c.Status == StatusDelivered
}

// CanModify returns true while line items may still change
func (c *Cart) CanModify() bool {
	return c.IsDraft()
}

// String returns a display summary of the cart
func (c *Cart) String() string {
	return fmt.Sprintf("Cart{id=%d, customer=%s, items=%d, total=%s, status=%s}",
		c.ID, c.CustomerEmail, c.ItemCount(), c.TotalPrice(), c.Status.Display())
}

func productIDOf(product *catalog.Product) int64 {
	if product == nil {
		return -1
	}
	return product.ID
}
