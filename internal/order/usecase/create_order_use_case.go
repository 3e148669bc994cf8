package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"modelforge/internal/domain"
	"modelforge/internal/dto"
)

type PricingService interface {
	PriceItems(ctx context.Context, items []dto.NewOrderItem) (decimal.Decimal, error)
}

type OrderWriter interface {
	CreateOrder(
		ctx context.Context,
		userEmail string,
		totalAmount decimal.Decimal,
		items []dto.NewOrderItem,
	) (*domain.Order, []domain.OrderItem, error)
}

// CreateOrderUseCase runs the order-creation pipeline: validate the raw
// request, price it against the catalog, persist it. Each stage
// short-circuits with a typed error; no stage after a failing one runs.
type CreateOrderUseCase struct {
	pricingSvc  PricingService
	orderWriter OrderWriter
	logger      *zap.Logger
}

func NewCreateOrderUseCase(
	pricingSvc PricingService,
	orderWriter OrderWriter,
	logger *zap.Logger,
) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		pricingSvc:  pricingSvc,
		orderWriter: orderWriter,
		logger:      logger,
	}
}

func (uc *CreateOrderUseCase) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	normalized, err := ValidateCreateOrderRequest(req)
	if err != nil {
		return nil, err
	}

	uc.logger.Debug("order request validated",
		zap.String("userEmail", normalized.UserEmail),
		zap.Int("itemCount", len(normalized.Items)),
	)

	totalAmount, err := uc.pricingSvc.PriceItems(ctx, normalized.Items)
	if err != nil {
		return nil, err
	}

	order, items, err := uc.orderWriter.CreateOrder(ctx, normalized.UserEmail, totalAmount, normalized.Items)
	if err != nil {
		return nil, err
	}

	return toOrderResponse(order, items), nil
}

func toOrderResponse(order *domain.Order, items []domain.OrderItem) *dto.OrderResponse {
	itemDTOs := make([]dto.OrderItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = dto.OrderItemDTO{
			ID:                item.ID,
			OrderID:           item.OrderID,
			ProductID:         item.ProductID,
			Quantity:          item.Quantity,
			CustomizationData: item.CustomizationData,
			VoiceFrequencyURL: item.VoiceFrequencyURL,
		}
	}

	return &dto.OrderResponse{
		Order: dto.OrderDTO{
			ID:          order.ID,
			UserEmail:   order.UserEmail,
			TotalAmount: order.TotalAmount,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		},
		Items: itemDTOs,
	}
}
