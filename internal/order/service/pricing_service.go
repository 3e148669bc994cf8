package service

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"modelforge/internal/domain"
	"modelforge/internal/dto"
	"modelforge/internal/errors"
)

// CatalogReader is the source of truth for product existence and price.
type CatalogReader interface {
	FindByIDs(ctx context.Context, ids []int) ([]domain.Product, error)
}

type PricingService struct {
	catalog CatalogReader
	logger  *zap.Logger
}

func NewPricingService(catalog CatalogReader, logger *zap.Logger) *PricingService {
	return &PricingService{
		catalog: catalog,
		logger:  logger,
	}
}

// PriceItems computes the authoritative order total from catalog prices.
// Duplicate productId lines are looked up once but priced per line. Every
// id without a catalog record is rejected at once via ProductNotFoundError.
func (s *PricingService) PriceItems(ctx context.Context, items []dto.NewOrderItem) (decimal.Decimal, error) {
	distinctIDs := make([]int, 0, len(items))
	seen := make(map[int]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		distinctIDs = append(distinctIDs, item.ProductID)
	}

	products, err := s.catalog.FindByIDs(ctx, distinctIDs)
	if err != nil {
		return decimal.Zero, err
	}

	priceByID := make(map[int]decimal.Decimal, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	if len(priceByID) != len(distinctIDs) {
		var missing []int
		for _, id := range distinctIDs {
			if _, ok := priceByID[id]; !ok {
				missing = append(missing, id)
			}
		}
		s.logger.Warn("order references unknown products", zap.Ints("missingIds", missing))
		return decimal.Zero, errors.NewProductNotFoundError(missing)
	}

	total := decimal.Zero
	for _, item := range items {
		// All ids were verified present above; the guard only protects
		// against a map lookup on a zero value.
		if price, ok := priceByID[item.ProductID]; ok {
			total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
	}

	return total, nil
}
