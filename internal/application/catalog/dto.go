package catalog

import (
	"github.com/eshop/backend/internal/domain/catalog"
	"github.com/eshop/backend/internal/domain/shared/valueobject"
)

// CategoryStats aggregates pricing figures over a category's products
// Cheapest and MostExpensive are nil for an empty category; AveragePrice
// is zero in that case
type CategoryStats struct {
	Name          string
	ProductCount  int
	AveragePrice  valueobject.Money
	Cheapest      *catalog.Product
	MostExpensive *catalog.Product
}
