package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/eshop/backend/internal/domain/account"
	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/order"
)

// CartService drives the cart lifecycle from draft to delivery
type CartService struct {
	orderRepo   order.Repository
	productRepo catalog.ProductRepository
	logger      *zap.Logger
}

// NewCartService creates a new CartService
func NewCartService(
	orderRepo order.Repository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *CartService {
	return &CartService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// NewCart opens an empty draft cart for a customer
func (s *CartService) NewCart(ctx context.Context, customer *account.Account) (*order.Cart, error) {
	return order.NewCart(customer)
}

// AddItem puts a product into the cart at its current catalog price
// Adding a product already in the cart increases its quantity and keeps
// the price frozen when the line was first created
func (s *CartService) AddItem(ctx context.Context, cart *order.Cart, productID int64, quantity int) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	return cart.AddItem(product, quantity)
}

// RemoveItem takes a product line out of the cart
func (s *CartService) RemoveItem(ctx context.Context, cart *order.Cart, productID int64) bool {
	return cart.RemoveItem(productID)
}

// UpdateQuantity replaces a line's quantity; zero or less removes the line
func (s *CartService) UpdateQuantity(ctx context.Context, cart *order.Cart, productID int64, quantity int) error {
	return cart.UpdateQuantity(productID, quantity)
}

// RefreshPrices re-snapshots every line at the current catalog price
// Lines whose product has vanished from the catalog are left untouched
func (s *CartService) RefreshPrices(ctx context.Context, cart *order.Cart) error {
	for idx := range cart.Items {
		product, err := s.productRepo.FindByID(ctx, cart.Items[idx].ProductID)
		if err != nil {
			continue
		}
		if err := cart.Items[idx].RefreshPrice(product); err != nil {
			return err
		}
	}
	return nil
}

// Checkout validates the cart and appends it to the order ledger
// The ledger assigns the definitive order ID at this point
func (s *CartService) Checkout(ctx context.Context, cart *order.Cart) error {
	if err := cart.Validate(); err != nil {
		return err
	}

	if err := s.orderRepo.Save(ctx, cart); err != nil {
		return err
	}

	s.logger.Info("order placed",
		zap.Int64("order_id", cart.ID),
		zap.String("customer", cart.CustomerEmail),
		zap.Int("items", cart.ItemCount()),
		zap.String("total", cart.TotalPrice().String()),
	)

	return nil
}

// Deliver marks a placed order as delivered
func (s *CartService) Deliver(ctx context.Context, orderID int64) (*order.Cart, error) {
	cart, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if err := cart.Deliver(); err != nil {
		return nil, err
	}

	s.logger.Info("order delivered",
		zap.Int64("order_id", cart.ID),
		zap.String("customer", cart.CustomerEmail),
	)

	return cart, nil
}

// Order retrieves a placed order by ID
func (s *CartService) Order(ctx context.Context, orderID int64) (*order.Cart, error) {
	return s.orderRepo.FindByID(ctx, orderID)
}

// Orders returns every placed order, oldest first
func (s *CartService) Orders(ctx context.Context) ([]*order.Cart, error) {
	return s.orderRepo.FindAll(ctx)
}

// OrdersForCustomer returns a customer's placed orders, oldest first
func (s *CartService) OrdersForCustomer(ctx context.Context, email string) ([]*order.Cart, error) {
	return s.orderRepo.FindByCustomer(ctx, email)
}
