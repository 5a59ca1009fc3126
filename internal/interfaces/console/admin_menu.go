package console

import (
	"context"

	"github.com/eshop/backend/internal/domain/account"
)

// adminMenu is the administrator session loop
func (c *Console) adminMenu(ctx context.Context, acc *account.Account) {
	for {
		c.printf("\n--- Administration (%s) ---\n", acc.Email)
		c.printf("1) List products\n2) Add product\n3) Edit product\n4) Change product price\n5) List categories\n6) Add category\n7) Rename category\n8) Categorize product\n9) Uncategorize product\n10) Category stats\n11) Delete category\n12) Orders\n13) Deliver order\n14) Accounts\n0) Log out\n")
		choice, ok := c.prompt("Choice: ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			c.listProducts(ctx)
		case "2":
			c.addProduct(ctx)
		case "3":
			c.editProduct(ctx)
		case "4":
			c.changePrice(ctx)
		case "5":
			c.listCategories(ctx)
		case "6":
			c.addCategory(ctx)
		case "7":
			c.renameCategory(ctx)
		case "8":
			c.categorizeProduct(ctx)
		case "9":
			c.uncategorizeProduct(ctx)
		case "10":
			c.categoryStats(ctx)
		case "11":
			c.deleteCategory(ctx)
		case "12":
			c.listOrders(ctx)
		case "13":
			c.deliverOrder(ctx)
		case "14":
			c.listAccounts(ctx)
		case "0":
			return
		default:
			c.printf("Unknown choice %q\n", choice)
		}
	}
}

func (c *Console) addProduct(ctx context.Context) {
	name, ok := c.prompt("Name: ")
	if !ok {
		return
	}
	description, ok := c.prompt("Description: ")
	if !ok {
		return
	}
	price, ok := c.promptPrice("Price (EUR): ")
	if !ok {
		return
	}

	product, err := c.products.Create(ctx, name, description, price)
	if err != nil {
		c.printf("Could not create product: %v\n", err)
		return
	}
	c.printf("Created %s\n", product)
}

func (c *Console) editProduct(ctx context.Context) {
	productID, ok := c.promptInt64("Product ID: ")
	if !ok {
		return
	}
	name, ok := c.prompt("New name: ")
	if !ok {
		return
	}
	description, ok := c.prompt("New description: ")
	if !ok {
		return
	}

	product, err := c.products.Update(ctx, productID, name, description)
	if err != nil {
		c.printf("Could not update product: %v\n", err)
		return
	}
	c.printf("Updated %s\n", product)
}

func (c *Console) changePrice(ctx context.Context) {
	productID, ok := c.promptInt64("Product ID: ")
	if !ok {
		return
	}
	price, ok := c.promptPrice("New price (EUR): ")
	if !ok {
		return
	}

	product, err := c.products.ChangePrice(ctx, productID, price)
	if err != nil {
		c.printf("Could not change price: %v\n", err)
		return
	}
	c.printf("Updated %s\n", product)
}

func (c *Console) addCategory(ctx context.Context) {
	name, ok := c.prompt("Name: ")
	if !ok {
		return
	}
	description, ok := c.prompt("Description: ")
	if !ok {
		return
	}

	category, err := c.categories.Create(ctx, name, description)
	if err != nil {
		c.printf("Could not create category: %v\n", err)
		return
	}
	c.printf("Created category %s\n", category.Name)
}

func (c *Console) renameCategory(ctx context.Context) {
	name, ok := c.prompt("Category name: ")
	if !ok {
		return
	}
	newName, ok := c.prompt("New name: ")
	if !ok {
		return
	}

	category, err := c.categories.Rename(ctx, name, newName)
	if err != nil {
		c.printf("Could not rename category: %v\n", err)
		return
	}
	c.printf("Category renamed to %s.\n", category.Name)
}

func (c *Console) categorizeProduct(ctx context.Context) {
	name, ok := c.prompt("Category name: ")
	if !ok {
		return
	}
	productID, ok := c.promptInt64("Product ID: ")
	if !ok {
		return
	}

	added, err := c.categories.AddProduct(ctx, name, productID)
	if err != nil {
		c.printf("Could not categorize: %v\n", err)
		return
	}
	if added {
		c.printf("Product %d added to %s.\n", productID, name)
	} else {
		c.printf("Product %d is already in %s.\n", productID, name)
	}
}

func (c *Console) uncategorizeProduct(ctx context.Context) {
	productID, ok := c.promptInt64("Product ID: ")
	if !ok {
		return
	}

	touched, err := c.products.Uncategorize(ctx, productID)
	if err != nil {
		c.printf("Could not uncategorize: %v\n", err)
		return
	}
	c.printf("Product %d removed from %d categories.\n", productID, touched)
}

func (c *Console) categoryStats(ctx context.Context) {
	name, ok := c.prompt("Category name: ")
	if !ok {
		return
	}

	stats, err := c.categories.Stats(ctx, name)
	if err != nil {
		c.printf("Could not compute stats: %v\n", err)
		return
	}

	c.printf("%s: %d products, average price %s\n", stats.Name, stats.ProductCount, stats.AveragePrice)
	if stats.Cheapest != nil {
		c.printf("  cheapest:       %s\n", stats.Cheapest)
	}
	if stats.MostExpensive != nil {
		c.printf("  most expensive: %s\n", stats.MostExpensive)
	}
}

func (c *Console) deleteCategory(ctx context.Context) {
	name, ok := c.prompt("Category name: ")
	if !ok {
		return
	}

	if err := c.categories.Delete(ctx, name); err != nil {
		c.printf("Could not delete category: %v\n", err)
		return
	}
	c.printf("Category %s deleted.\n", name)
}

func (c *Console) listOrders(ctx context.Context) {
	orders, err := c.carts.Orders(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if len(orders) == 0 {
		c.printf("No orders yet.\n")
		return
	}
	for _, o := range orders {
		c.printf("  Order #%d - %s - %s - %d articles - %s\n",
			o.ID, o.CustomerEmail, o.Status.Display(), o.ItemCount(), o.TotalPrice())
	}
}

func (c *Console) deliverOrder(ctx context.Context) {
	orderID, ok := c.promptInt64("Order ID: ")
	if !ok {
		return
	}

	delivered, err := c.carts.Deliver(ctx, orderID)
	if err != nil {
		c.printf("Could not deliver: %v\n", err)
		return
	}
	c.printf("Order #%d delivered to %s.\n", delivered.ID, delivered.CustomerEmail)
}

func (c *Console) listAccounts(ctx context.Context) {
	accounts, err := c.accounts.List(ctx)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	for _, acc := range accounts {
		c.printf("  %s <%s> [%s] - %s\n", acc.FullName(), acc.Email, acc.Role, acc.FormattedAddress())
	}
}
