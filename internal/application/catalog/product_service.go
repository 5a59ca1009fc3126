package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

// ProductService handles product-related business operations
type ProductService struct {
	productRepo  catalog.ProductRepository
	categoryRepo catalog.CategoryRepository
	logger       *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	categoryRepo catalog.CategoryRepository,
	logger *zap.Logger,
) *ProductService {
	return &ProductService{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

// Create registers a new product in the catalog
// The repository assigns the ID; name and price are stored as given
func (s *ProductService) Create(ctx context.Context, name, description string, price valueobject.Money) (*catalog.Product, error) {
	product, err := s.productRepo.Create(ctx, name, description, price)
	if err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("price", product.Price.String()),
	)

	return product, nil
}

// Get retrieves a product by ID
func (s *ProductService) Get(ctx context.Context, id int64) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// List retrieves all products in creation order
func (s *ProductService) List(ctx context.Context) ([]*catalog.Product, error) {
	return s.productRepo.FindAll(ctx)
}

// Update changes a product's name and description
func (s *ProductService) Update(ctx context.Context, id int64, name, description string) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.SetName(name)
	product.SetDescription(description)

	return product, nil
}

// ChangePrice sets a product's current price
// Line items created before the change keep their frozen price
func (s *ProductService) ChangePrice(ctx context.Context, id int64, price valueobject.Money) (*catalog.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	old := product.Price
	product.SetPrice(price)

	s.logger.Info("product price changed",
		zap.Int64("product_id", product.ID),
		zap.String("old_price", old.String()),
		zap.String("new_price", price.String()),
	)

	return product, nil
}

// Uncategorize detaches a product from every category holding it
// Returns how many categories were touched
func (s *ProductService) Uncategorize(ctx context.Context, id int64) (int, error) {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return 0, err
	}

	return s.categoryRepo.RemoveProductFromAll(ctx, id)
}
