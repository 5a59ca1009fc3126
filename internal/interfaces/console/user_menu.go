package console

import (
	"context"

	"github.com/eshop/backend/internal/domain/account"
	"github.com/eshop/backend/internal/domain/order"
)

// userMenu is the customer session loop
// The draft cart lives only for the duration of the session; it gets an
// order ID once checked out
func (c *Console) userMenu(ctx context.Context, acc *account.Account) {
	cart, err := c.carts.NewCart(ctx, acc)
	if err != nil {
		c.printf("Could not open a cart: %v\n", err)
		return
	}

	for {
		c.printf("\n--- %s ---\n", acc.FullName())
		c.printf("1) Browse products\n2) Browse categories\n3) Add product to cart\n4) Show cart\n5) Update quantity\n6) Remove from cart\n7) Checkout\n8) My orders\n9) Delivery address\n0) Log out\n")
		choice, ok := c.prompt("Choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			c.listProducts(ctx)
		case "2":
			c.listCategories(ctx)
		case "3":
			c.addToCart(ctx, cart)
		case "4":
			c.showCart(cart)
		case "5":
			c.updateCartQuantity(ctx, cart)
		case "6":
			c.removeFromCart(ctx, cart)
		case "7":
			if c.checkout(ctx, cart) {
				// the old cart is now a placed order; start a fresh draft
				fresh, err := c.carts.NewCart(ctx, acc)
				if err != nil {
					c.printf("Could not open a new cart: %v\n", err)
					return
				}
				cart = fresh
			}
		case "8":
			c.myOrders(ctx, acc)
		case "9":
			c.addressMenu(ctx, acc)
		case "0":
			return
		default:
			c.printf("Unknown choice %q\n", choice)
		}
	}
}

func (c *Console) listProducts(ctx context.Context) {
	products, err := c.products.List(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if len(products) == 0 {
		c.printf("The catalog is empty.\n")
		return
	}
	for _, p := range products {
		c.printf("  [%d] %s - %s (%s)\n", p.ID, p.Name, p.Price, p.Description)
	}
}

func (c *Console) listCategories(ctx context.Context) {
	categories, err := c.categories.List(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if len(categories) == 0 {
		c.printf("No categories yet.\n")
		return
	}
	for _, cat := range categories {
		c.printf("  %s (%d products) - %s\n", cat.Name, cat.ProductCount(), cat.Description)
		for _, p := range cat.Products {
			c.printf("    [%d] %s - %s\n", p.ID, p.Name, p.Price)
		}
	}
}

func (c *Console) addToCart(ctx context.Context, cart *order.Cart) {
	productID, ok := c.promptInt64("Product ID: ")
	if !ok {
		return
	}
	quantity, ok := c.promptInt("Quantity: ")
	if !ok {
		return
	}

	if err := c.carts.AddItem(ctx, cart, productID, quantity); err != nil {
		c.printf("Could not add: %v\n", err)
		return
	}
	c.printf("Added. Cart total: %s\n", cart.TotalPrice())
}

func (c *Console) showCart(cart *order.Cart) {
	if cart.IsEmpty() {
		c.printf("Your cart is empty.\n")
		return
	}
	c.printf("Cart (%d articles):\n", cart.ItemCount())
	for idx := range cart.Items {
		c.printf("  %s\n", cart.Items[idx].String())
	}
	c.printf("Total: %s\n", cart.TotalPrice())
}

func (c *Console) updateCartQuantity(ctx context.Context, cart *order.Cart) {
	productID, ok := c.promptInt64("Product ID: ")
	if !ok {
		return
	}
	quantity, ok := c.promptInt("New quantity (0 removes): ")
	if !ok {
		return
	}

	if err := c.carts.UpdateQuantity(ctx, cart, productID, quantity); err != nil {
		c.printf("Could not update: %v\n", err)
		return
	}
	c.printf("Updated. Cart total: %s\n", cart.TotalPrice())
}

func (c *Console) removeFromCart(ctx context.Context, cart *order.Cart) {
	productID, ok := c.promptInt64("Product ID: ")
	if !ok {
		return
	}

	if c.carts.RemoveItem(ctx, cart, productID) {
		c.printf("Removed. Cart total: %s\n", cart.TotalPrice())
	} else {
		c.printf("That product is not in your cart.\n")
	}
}

// checkout returns true when the cart became a placed order
func (c *Console) checkout(ctx context.Context, cart *order.Cart) bool {
	if err := c.carts.Checkout(ctx, cart); err != nil {
		c.printf("Checkout failed: %v\n", err)
		return false
	}
	c.printf("Order #%d placed. Total: %s\n", cart.ID, cart.TotalPrice())
	return true
}

func (c *Console) myOrders(ctx context.Context, acc *account.Account) {
	orders, err := c.carts.OrdersForCustomer(ctx, acc.Email)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if len(orders) == 0 {
		c.printf("No orders yet.\n")
		return
	}
	for _, o := range orders {
		c.printf("  Order #%d - %s - %d articles - %s\n", o.ID, o.Status.Display(), o.ItemCount(), o.TotalPrice())
	}
}

func (c *Console) addressMenu(ctx context.Context, acc *account.Account) {
	c.printf("Current address: %s\n", acc.FormattedAddress())
	c.printf("1) Set address\n2) Remove address\n0) Back\n")
	choice, ok := c.prompt("Choice: ")
	if !ok {
		return
	}

	switch choice {
	case "1":
		city, ok := c.prompt("City: ")
		if !ok {
			return
		}
		sector, ok := c.prompt("Sector: ")
		if !ok {
			return
		}
		description, ok := c.prompt("Description: ")
		if !ok {
			return
		}
		if _, err := c.accounts.SetAddress(ctx, acc.Email, city, sector, description); err != nil {
			c.printf("Could not set address: %v\n", err)
			return
		}
		c.printf("Address saved: %s\n", acc.FormattedAddress())
	case "2":
		if _, err := c.accounts.RemoveAddress(ctx, acc.Email); err != nil {
			c.printf("Could not remove address: %v\n", err)
			return
		}
		c.printf("Address removed.\n")
	case "0":
	default:
		c.printf("Unknown choice %q\n", choice)
	}
}
