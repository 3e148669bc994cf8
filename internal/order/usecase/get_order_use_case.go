package usecase

import (
	"context"

	"go.uber.org/zap"

	"modelforge/internal/domain"
	"modelforge/internal/dto"
)

type OrderReader interface {
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
}

type OrderItemReader interface {
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

// GetOrderUseCase loads a persisted order with its items, as shown on
// the order-confirmation page.
type GetOrderUseCase struct {
	orderReader OrderReader
	itemReader  OrderItemReader
	logger      *zap.Logger
}

func NewGetOrderUseCase(
	orderReader OrderReader,
	itemReader OrderItemReader,
	logger *zap.Logger,
) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderReader: orderReader,
		itemReader:  itemReader,
		logger:      logger,
	}
}

func (uc *GetOrderUseCase) GetOrder(ctx context.Context, id uint) (*dto.OrderResponse, error) {
	order, err := uc.orderReader.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemReader.FindByOrderID(ctx, id)
	if err != nil {
		return nil, err
	}

	return toOrderResponse(order, items), nil
}
