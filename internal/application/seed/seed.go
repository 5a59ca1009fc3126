package seed

import (
	"context"

	"go.uber.org/zap"

	accountapp "github.com/eshop/backend/internal/application/account"
	catalogapp "github.com/eshop/backend/internal/application/catalog"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

// Seeder populates an empty store with a demonstration catalog and
// a default administrator account
type Seeder struct {
	accounts   *accountapp.Service
	products   *catalogapp.ProductService
	categories *catalogapp.CategoryService
	logger     *zap.Logger
}

// NewSeeder creates a new Seeder
func NewSeeder(
	accounts *accountapp.Service,
	products *catalogapp.ProductService,
	categories *catalogapp.CategoryService,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		accounts:   accounts,
		products:   products,
		categories: categories,
		logger:     logger,
	}
}

type seedProduct struct {
	name        string
	description string
	price       float64
	category    string
}

// Run loads the sample categories, products and admin account
func (s *Seeder) Run(ctx context.Context, adminEmail string) error {
	categories := []struct {
		name        string
		description string
	}{
		{"Électronique", "Appareils et accessoires électroniques"},
		{"Vêtements", "Vêtements et accessoires de mode"},
		{"Livres", "Livres, romans et bandes dessinées"},
	}
	for _, sc := range categories {
		if _, err := s.categories.Create(ctx, sc.name, sc.description); err != nil {
			return err
		}
	}

	products := []seedProduct{
		{"Laptop HP", "Ordinateur portable 15 pouces", 799.99, "Électronique"},
		{"Smartphone Samsung", "Galaxy dernière génération", 599.99, "Électronique"},
		{"T-Shirt", "T-shirt en coton, taille unique", 19.99, "Vêtements"},
		{"Jeans", "Jean coupe droite", 49.99, "Vêtements"},
		{"Roman", "Roman best-seller", 12.99, "Livres"},
	}
	for _, sp := range products {
		product, err := s.products.Create(ctx, sp.name, sp.description, valueobject.NewMoneyEURFromFloat(sp.price))
		if err != nil {
			return err
		}
		if _, err := s.categories.AddProduct(ctx, sp.category, product.ID); err != nil {
			return err
		}
	}

	if _, err := s.accounts.RegisterAdmin(ctx, "Admin", "Super", adminEmail, "admin123"); err != nil {
		return err
	}

	s.logger.Info("sample data loaded",
		zap.Int("categories", len(categories)),
		zap.Int("products", len(products)),
		zap.String("admin", adminEmail),
	)

	return nil
}
