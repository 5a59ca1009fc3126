package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/eshop/backend/internal/domain/catalog"
)

// CategoryService handles category-related business operations
type CategoryService struct {
	categoryRepo catalog.CategoryRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(
	categoryRepo catalog.CategoryRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		logger:       logger,
	}
}

// Create creates a new empty category
func (s *CategoryService) Create(ctx context.Context, name, description string) (*catalog.Category, error) {
	category, err := s.categoryRepo.Create(ctx, name, description)
	if err != nil {
		return nil, err
	}

	s.logger.Info("category created", zap.String("name", category.Name))

	return category, nil
}

// Rename changes a category's name, keeping names unique
func (s *CategoryService) Rename(ctx context.Context, name, newName string) (*catalog.Category, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Rename(ctx, category, newName); err != nil {
		return nil, err
	}

	return category, nil
}

// Get retrieves a category by name
func (s *CategoryService) Get(ctx context.Context, name string) (*catalog.Category, error) {
	return s.categoryRepo.FindByName(ctx, name)
}

// List retrieves all categories in creation order
func (s *CategoryService) List(ctx context.Context) ([]*catalog.Category, error) {
	return s.categoryRepo.FindAll(ctx)
}

// AddProduct places an existing product into a category
// Returns false when the product was already present
func (s *CategoryService) AddProduct(ctx context.Context, name string, productID int64) (bool, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return false, err
	}

	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return false, err
	}

	added := category.AddProduct(product)
	if added {
		s.logger.Info("product categorized",
			zap.Int64("product_id", product.ID),
			zap.String("category", category.Name),
		)
	}

	return added, nil
}

// RemoveProduct takes a product out of a category
// Returns false when the product was not in the category
func (s *CategoryService) RemoveProduct(ctx context.Context, name string, productID int64) (bool, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return false, err
	}

	return category.RemoveProductByID(productID), nil
}

// FindContainingProduct returns the first category holding the product
func (s *CategoryService) FindContainingProduct(ctx context.Context, productID int64) (*catalog.Category, error) {
	return s.categoryRepo.FindByProduct(ctx, productID)
}

// Delete removes a category; only empty categories may be deleted
func (s *CategoryService) Delete(ctx context.Context, name string) error {
	if err := s.categoryRepo.Delete(ctx, name); err != nil {
		return err
	}

	s.logger.Info("category deleted", zap.String("name", name))

	return nil
}

// Stats computes aggregate figures over a category's products
func (s *CategoryService) Stats(ctx context.Context, name string) (*CategoryStats, error) {
	category, err := s.categoryRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return &CategoryStats{
		Name:          category.Name,
		ProductCount:  category.ProductCount(),
		AveragePrice:  category.AveragePrice(),
		Cheapest:      category.CheapestProduct(),
		MostExpensive: category.MostExpensiveProduct(),
	}, nil
}
